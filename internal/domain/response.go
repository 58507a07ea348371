package domain

import "time"

// ErrorResponse is the uniform error payload produced by the HTTP error
// handler.
type ErrorResponse struct {
	Message string `json:"message"`
	Code    int    `json:"code"`
}

// HazardBlock is the per-layer section of the assess response.
type HazardBlock struct {
	Level     HazardLevel `json:"level"`
	Label     string      `json:"label"`
	RiskLabel string      `json:"risk_label"`
}

// LocationInfo carries administrative boundary details resolved via
// reverse geocoding.
type LocationInfo struct {
	Barangay     string `json:"barangay"`
	Municipality string `json:"municipality"`
	Province     string `json:"province"`
	FullAddress  string `json:"full_address"`
	Success      bool   `json:"success"`
}

// AssessResponse is the full scoring payload for a coordinate pair.
type AssessResponse struct {
	OverallRisk  *RiskAssessment        `json:"overall_risk"`
	Suitability  *SuitabilityAssessment `json:"suitability"`
	Flood        HazardBlock            `json:"flood"`
	Landslide    HazardBlock            `json:"landslide"`
	Liquefaction HazardBlock            `json:"liquefaction"`
}

// FacilitiesResponse is the grouped facility payload for a coordinate
// pair and radius.
type FacilitiesResponse struct {
	Summary           *FacilitySummary `json:"summary"`
	EvacuationCenters []*Facility      `json:"evacuation_centers"`
	Medical           []*Facility      `json:"medical"`
	EmergencyServices []*Facility      `json:"emergency_services"`
	EssentialServices []*Facility      `json:"essential_services"`
	Other             []*Facility      `json:"other"`
	Counts            FacilityCounts   `json:"counts"`
}

// Dataset describes one uploaded hazard dataset.
type Dataset struct {
	ID          string    `db:"id" json:"id"`
	Name        string    `db:"name" json:"name"`
	DatasetType string    `db:"dataset_type" json:"dataset_type"`
	FileName    string    `db:"file_name" json:"file_name"`
	UploadDate  time.Time `db:"upload_date" json:"upload_date"`
}
