package scoring

import (
	"fmt"

	"github.com/negrosgeo/riskmap/internal/domain"
)

// Component weights: hazard safety dominates, facility accessibility and
// facility density share the remainder.
const (
	suitabilityWeightSafety         = 0.6
	suitabilityWeightAccessibility  = 0.2
	suitabilityWeightInfrastructure = 0.2
)

// veryHighRiskPenalty suppresses very-high-risk areas regardless of how
// well-served they are.
const veryHighRiskPenalty = 0.8

// Accessibility ramps: full marks at the near threshold, zero at the far
// threshold, linear in between.
const (
	evacNearMeters = 500
	evacFarMeters  = 5000
	hospNearMeters = 1000
	hospFarMeters  = 10000
)

// ScoreSuitability combines the risk assessment with facility
// accessibility and density into a development-suitability assessment.
func ScoreSuitability(risk *domain.RiskAssessment, facilities *domain.FacilitySummary) *domain.SuitabilityAssessment {
	if risk.SafetyLevel == "EVACUATION REQUIRED" {
		// A debris flow zone is unsuitable no matter how close the
		// hospitals are.
		return &domain.SuitabilityAssessment{
			Score:          0,
			Category:       "NOT SUITABLE",
			Color:          "#ef4444",
			Recommendation: "This location is in a debris flow evacuation zone. Development is prohibited regardless of nearby services.",
			Breakdown: domain.SuitabilityBreakdown{
				Safety:                    0,
				SafetyDescription:         "Critical hazard zone - evacuation required",
				Accessibility:             0,
				AccessibilityDescription:  "Not evaluated - site is not safe for development",
				Infrastructure:            0,
				InfrastructureDescription: "Not evaluated - site is not safe for development",
			},
		}
	}

	safety := (100 - risk.Score) * suitabilityWeightSafety

	evacSub := rampScore(facilities.EvacuationDistanceMeters, evacNearMeters, evacFarMeters)
	if facilities.NearestEvacuation == nil {
		evacSub = 0
	}
	hospSub := rampScore(facilities.HospitalDistanceMeters, hospNearMeters, hospFarMeters)
	if facilities.NearestHospital == nil {
		hospSub = 0
	}
	accessibility := (evacSub*0.5 + hospSub*0.5) * suitabilityWeightAccessibility

	infraPoints := countPoints(facilities.Counts.Evacuation, 3, 1) +
		countPoints(facilities.Counts.Medical, 2, 1) +
		countPoints(facilities.Counts.EmergencyServices, 2, 1) +
		countPoints(facilities.Counts.Essential, 5, 2)
	if infraPoints > 100 {
		infraPoints = 100
	}
	infrastructure := float64(infraPoints) * suitabilityWeightInfrastructure

	total := safety + accessibility + infrastructure
	if risk.Score >= 75 {
		total *= veryHighRiskPenalty
	}
	total = round1(total)

	assessment := categorizeSuitability(total)
	assessment.Score = total
	assessment.Breakdown = domain.SuitabilityBreakdown{
		Safety:                    round1(safety),
		SafetyDescription:         describeSafety(risk.Score),
		Accessibility:             round1(accessibility),
		AccessibilityDescription:  describeAccessibility(facilities),
		Infrastructure:            round1(infrastructure),
		InfrastructureDescription: describeInfrastructure(facilities.Counts),
	}

	return assessment
}

// rampScore is a linear ramp from 100 at or below near to 0 at or beyond
// far.
func rampScore(meters, near, far float64) float64 {
	if meters <= near {
		return 100
	}
	if meters >= far {
		return 0
	}
	score := 100 - ((meters-near)/(far-near))*100
	if score < 0 {
		return 0
	}
	if score > 100 {
		return 100
	}
	return score
}

// countPoints awards 25 at the full threshold, 15 at the partial
// threshold, 0 below.
func countPoints(count, full, partial int) int {
	switch {
	case count >= full:
		return 25
	case count >= partial:
		return 15
	default:
		return 0
	}
}

func categorizeSuitability(score float64) *domain.SuitabilityAssessment {
	switch {
	case score >= 70:
		return &domain.SuitabilityAssessment{
			Category:       "HIGHLY SUITABLE",
			Color:          "#10b981",
			Recommendation: "Excellent location for development. Low hazard exposure with good access to critical facilities.",
		}
	case score >= 50:
		return &domain.SuitabilityAssessment{
			Category:       "MODERATELY SUITABLE",
			Color:          "#f59e0b",
			Recommendation: "Viable location with standard mitigation measures. Verify facility access during emergencies.",
		}
	case score >= 30:
		return &domain.SuitabilityAssessment{
			Category:       "MARGINALLY SUITABLE",
			Color:          "#f97316",
			Recommendation: "Development possible but costly. Significant hazard mitigation or poor facility access must be addressed.",
		}
	default:
		return &domain.SuitabilityAssessment{
			Category:       "NOT SUITABLE",
			Color:          "#ef4444",
			Recommendation: "Development is discouraged. Hazard exposure and service access make this site a poor choice.",
		}
	}
}

func describeSafety(riskScore float64) string {
	switch {
	case riskScore < 25:
		return "Low hazard exposure"
	case riskScore < 50:
		return "Moderate hazard exposure - standard mitigation applies"
	case riskScore < 75:
		return "High hazard exposure - engineering mitigation required"
	default:
		return "Very high hazard exposure - development strongly discouraged"
	}
}

func describeAccessibility(facilities *domain.FacilitySummary) string {
	if facilities.NearestEvacuation == nil && facilities.NearestHospital == nil {
		return "No evacuation center or hospital found within the search radius"
	}
	if facilities.NearestEvacuation == nil {
		return "No evacuation center found within the search radius"
	}
	if facilities.NearestHospital == nil {
		return "No medical facility found within the search radius"
	}
	return fmt.Sprintf("Nearest evacuation center %s, nearest medical facility %s",
		facilities.NearestEvacuation.Distance, facilities.NearestHospital.Distance)
}

func describeInfrastructure(counts domain.FacilityCounts) string {
	switch {
	case counts.Total == 0:
		return "No facilities found within the search radius"
	case counts.Evacuation >= 3 && counts.Medical >= 2:
		return "Well-served area with multiple evacuation and medical options"
	case counts.Evacuation >= 1 && counts.Medical >= 1:
		return "Basic facility coverage - at least one evacuation center and one medical facility"
	default:
		return "Sparse facility coverage - critical facility types are missing"
	}
}
