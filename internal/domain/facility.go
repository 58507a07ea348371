package domain

// FacilityCategory is the coarse grouping used by the discovery client.
type FacilityCategory string

const (
	CategoryEmergency  FacilityCategory = "emergency"
	CategoryEveryday   FacilityCategory = "everyday"
	CategoryGovernment FacilityCategory = "government"
)

// FacilitySubcategory is the disaster-priority bucket a facility lands in.
type FacilitySubcategory string

const (
	SubcategoryEvacuation        FacilitySubcategory = "evacuation"
	SubcategoryMedical           FacilitySubcategory = "medical"
	SubcategoryEmergencyServices FacilitySubcategory = "emergency_services"
	SubcategoryEssential         FacilitySubcategory = "essential"
	SubcategoryOther             FacilitySubcategory = "other"
)

// DistanceMethod tags the provenance of a distance figure.
type DistanceMethod string

const (
	MethodRoad         DistanceMethod = "road"
	MethodRoadCached   DistanceMethod = "road_cached"
	MethodStraightLine DistanceMethod = "straight_line"
)

// Facility is a point of interest discovered around the query location.
// Instances live for a single scoring pipeline run and are never persisted.
type Facility struct {
	ID          int64               `json:"osm_id"`
	SourceType  string              `json:"osm_type"`
	Name        string              `json:"name"`
	RawType     string              `json:"facility_type"`
	TypeDisplay string              `json:"type_display"`
	Category    FacilityCategory    `json:"category"`
	Subcategory FacilitySubcategory `json:"subcategory"`
	Priority    int                 `json:"priority"`
	Lat         float64             `json:"lat"`
	Lng         float64             `json:"lng"`

	// Fields below are filled in by the distance engine.
	DistanceMeters  float64        `json:"distance_meters"`
	DistanceKm      float64        `json:"distance_km"`
	DistanceDisplay string         `json:"distance_display"`
	DurationMinutes float64        `json:"duration_minutes"`
	DurationDisplay string         `json:"duration_display"`
	IsWalkable      bool           `json:"is_walkable"`
	Method          DistanceMethod `json:"method"`
}

// FacilityGroups partitions a facility set into disaster-priority buckets,
// each sorted ascending by distance.
type FacilityGroups struct {
	Evacuation        []*Facility `json:"evacuation_centers"`
	Medical           []*Facility `json:"medical"`
	EmergencyServices []*Facility `json:"emergency_services"`
	Essential         []*Facility `json:"essential_services"`
	Other             []*Facility `json:"other"`
}

// Total returns the number of facilities across all buckets.
func (g *FacilityGroups) Total() int {
	return len(g.Evacuation) + len(g.Medical) + len(g.EmergencyServices) + len(g.Essential) + len(g.Other)
}

// NearestFacility is the nearest-of-type summary entry.
type NearestFacility struct {
	Name            string `json:"name"`
	Distance        string `json:"distance"`
	DurationDisplay string `json:"duration,omitempty"`
	IsWalkable      bool   `json:"is_walkable"`
}

// FacilityCounts carries per-bucket totals for the summary block.
type FacilityCounts struct {
	Evacuation        int `json:"evacuation"`
	Medical           int `json:"medical"`
	EmergencyServices int `json:"emergency_services"`
	Essential         int `json:"essential"`
	Other             int `json:"other"`
	Total             int `json:"total"`
}

// FacilitySummary is the per-request aggregate consumed by the suitability
// engine and returned in the facilities response.
type FacilitySummary struct {
	NearestEvacuation  *NearestFacility `json:"nearest_evacuation"`
	NearestHospital    *NearestFacility `json:"nearest_hospital"`
	NearestFireStation *NearestFacility `json:"nearest_fire_station"`
	Counts             FacilityCounts   `json:"counts"`

	// Raw distances feed the accessibility ramps; zero when absent.
	EvacuationDistanceMeters float64 `json:"-"`
	HospitalDistanceMeters   float64 `json:"-"`
}
