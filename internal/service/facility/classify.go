package facility

import (
	"strings"

	"github.com/negrosgeo/riskmap/internal/domain"
	"github.com/negrosgeo/riskmap/internal/pkg/overpass"
)

// typeInfo describes how one raw facility type is presented.
type typeInfo struct {
	category domain.FacilityCategory
	display  string
}

// Static type tables, built once at process start and never mutated.
var amenityTypes = map[string]typeInfo{
	"hospital":     {domain.CategoryEmergency, "Hospital"},
	"clinic":       {domain.CategoryEmergency, "Clinic"},
	"doctors":      {domain.CategoryEmergency, "Medical Clinic"},
	"dentist":      {domain.CategoryEmergency, "Dental Clinic"},
	"pharmacy":     {domain.CategoryEmergency, "Pharmacy"},
	"fire_station": {domain.CategoryEmergency, "Fire Station"},
	"police":       {domain.CategoryEmergency, "Police Station"},

	"school":       {domain.CategoryEveryday, "School"},
	"kindergarten": {domain.CategoryEveryday, "Kindergarten"},
	"college":      {domain.CategoryEveryday, "College"},
	"university":   {domain.CategoryEveryday, "University"},

	"restaurant": {domain.CategoryEveryday, "Restaurant"},
	"fast_food":  {domain.CategoryEveryday, "Fast Food"},
	"cafe":       {domain.CategoryEveryday, "Cafe"},

	"marketplace": {domain.CategoryEveryday, "Market"},
	"bank":        {domain.CategoryEveryday, "Bank"},
	"atm":         {domain.CategoryEveryday, "ATM"},

	"fuel":           {domain.CategoryEveryday, "Gas Station"},
	"bus_station":    {domain.CategoryEveryday, "Bus Station"},
	"ferry_terminal": {domain.CategoryEveryday, "Ferry Terminal"},
	"post_office":    {domain.CategoryEveryday, "Post Office"},

	"townhall":         {domain.CategoryGovernment, "Municipal/Town Hall"},
	"community_centre": {domain.CategoryGovernment, "Community Center"},
}

var shopTypes = map[string]typeInfo{
	"supermarket":      {domain.CategoryEveryday, "Supermarket"},
	"convenience":      {domain.CategoryEveryday, "Convenience Store"},
	"mall":             {domain.CategoryEveryday, "Shopping Mall"},
	"department_store": {domain.CategoryEveryday, "Department Store"},
}

var officeTypes = map[string]typeInfo{
	"government": {domain.CategoryGovernment, "Government Office"},
}

// Disaster-priority grouping, first match wins.
var (
	evacuationTypes = memberSet("school", "community_centre", "kindergarten", "college", "university")
	medicalTypes    = memberSet("hospital", "clinic", "doctors", "pharmacy")
	emergencyTypes  = memberSet("fire_station", "police")
	essentialTypes  = memberSet("marketplace", "supermarket", "convenience", "bank", "fuel",
		"restaurant", "fast_food", "cafe", "mall", "atm", "department_store")
)

func memberSet(types ...string) map[string]struct{} {
	set := make(map[string]struct{}, len(types))
	for _, t := range types {
		set[t] = struct{}{}
	}
	return set
}

// Classify maps a raw discovery element to a Facility, or nil when the
// element carries no recognized type. Elements whose name contains
// "barangay" are kept as barangay halls even without a matched tag.
func Classify(element *overpass.Element) *domain.Facility {
	rawType, info := resolveType(element.Tags)

	if rawType == "" {
		if strings.Contains(strings.ToLower(element.Tags["name"]), "barangay") {
			rawType = "barangay_hall"
			info = typeInfo{domain.CategoryGovernment, "Barangay Hall"}
		} else {
			return nil
		}
	}

	name := element.Tags["name"]
	if name == "" {
		name = element.Tags["name:en"]
	}
	if name == "" {
		name = "Unnamed " + info.display
	}

	subcategory, priority := groupFor(rawType)

	return &domain.Facility{
		ID:          element.ID,
		SourceType:  element.Type,
		Name:        name,
		RawType:     rawType,
		TypeDisplay: info.display,
		Category:    info.category,
		Subcategory: subcategory,
		Priority:    priority,
		Lat:         element.Lat,
		Lng:         element.Lng,
	}
}

// resolveType checks tags in precedence order: amenity, healthcare,
// shop, office.
func resolveType(tags map[string]string) (string, typeInfo) {
	if amenity, ok := tags["amenity"]; ok {
		if info, ok := amenityTypes[amenity]; ok {
			return amenity, info
		}
		return "", typeInfo{}
	}
	if tags["healthcare"] == "hospital" {
		return "hospital", amenityTypes["hospital"]
	}
	if shop, ok := tags["shop"]; ok {
		if info, ok := shopTypes[shop]; ok {
			return shop, info
		}
		return "", typeInfo{}
	}
	if office, ok := tags["office"]; ok {
		if info, ok := officeTypes[office]; ok {
			return office, info
		}
	}
	return "", typeInfo{}
}

func groupFor(rawType string) (domain.FacilitySubcategory, int) {
	if _, ok := evacuationTypes[rawType]; ok {
		return domain.SubcategoryEvacuation, 1
	}
	if _, ok := medicalTypes[rawType]; ok {
		return domain.SubcategoryMedical, 2
	}
	if _, ok := emergencyTypes[rawType]; ok {
		return domain.SubcategoryEmergencyServices, 3
	}
	if _, ok := essentialTypes[rawType]; ok {
		return domain.SubcategoryEssential, 4
	}
	return domain.SubcategoryOther, 5
}

// Group partitions facilities into their buckets. Input order is
// preserved inside each bucket; callers sort by distance afterwards.
func Group(facilities []*domain.Facility) *domain.FacilityGroups {
	groups := &domain.FacilityGroups{}
	for _, f := range facilities {
		switch f.Subcategory {
		case domain.SubcategoryEvacuation:
			groups.Evacuation = append(groups.Evacuation, f)
		case domain.SubcategoryMedical:
			groups.Medical = append(groups.Medical, f)
		case domain.SubcategoryEmergencyServices:
			groups.EmergencyServices = append(groups.EmergencyServices, f)
		case domain.SubcategoryEssential:
			groups.Essential = append(groups.Essential, f)
		default:
			groups.Other = append(groups.Other, f)
		}
	}
	return groups
}
