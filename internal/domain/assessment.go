package domain

// RiskAssessment is the composite output of the risk scoring engine.
// Score is always capped at 100; RawScore keeps the pre-cap value for
// transparency.
type RiskAssessment struct {
	Score                 float64               `json:"score"`
	RawScore              float64               `json:"raw_score"`
	Category              string                `json:"category"`
	Message               string                `json:"message"`
	Color                 string                `json:"color"`
	Icon                  string                `json:"icon"`
	SafetyLevel           string                `json:"safety_level"`
	RecommendationSummary string                `json:"recommendation_summary"`
	RecommendationDetails []RecommendationBlock `json:"recommendation_details"`
}

// RecommendationBlock is one structured mitigation-guidance block.
type RecommendationBlock struct {
	Hazard   string   `json:"hazard"`
	Title    string   `json:"title"`
	Measures []string `json:"measures"`
	Permits  string   `json:"permits"`
}

// SuitabilityBreakdown explains the three suitability components.
type SuitabilityBreakdown struct {
	Safety                    float64 `json:"safety"`
	SafetyDescription         string  `json:"safety_description"`
	Accessibility             float64 `json:"accessibility"`
	AccessibilityDescription  string  `json:"accessibility_description"`
	Infrastructure            float64 `json:"infrastructure"`
	InfrastructureDescription string  `json:"infrastructure_description"`
}

// SuitabilityAssessment is the composite output of the suitability engine.
type SuitabilityAssessment struct {
	Score          float64              `json:"score"`
	Category       string               `json:"category"`
	Color          string               `json:"color"`
	Recommendation string               `json:"recommendation"`
	Breakdown      SuitabilityBreakdown `json:"breakdown"`
}
