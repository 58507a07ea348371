// Package scoring holds the pure risk, suitability, and recommendation
// engines. Everything here is a deterministic function of its inputs.
package scoring

import (
	"context"

	"github.com/negrosgeo/riskmap/internal/domain"
	"github.com/negrosgeo/riskmap/internal/pkg/logger"
	"github.com/shopspring/decimal"
)

// Hazard weights, based on Philippine disaster frequency. Flooding is the
// most frequent, liquefaction matters only during earthquakes.
const (
	weightFlood        = 0.6
	weightLandslide    = 0.25
	weightLiquefaction = 0.15
)

// combinedHazardMultiplier models compounding structural vulnerability
// when two or more hazards are simultaneously at high severity.
const combinedHazardMultiplier = 1.25

var severityScores = map[domain.HazardLevel]float64{
	domain.LevelNone: 0,
	domain.LevelLS:   20,
	domain.LevelMS:   40,
	domain.LevelHS:   70,
	domain.LevelVHS:  100,
}

// severity maps a level to its 0-100 severity. Unrecognized codes from
// upstream data are logged and scored as no hazard to keep the request
// serviceable.
func severity(ctx context.Context, hazard domain.HazardType, level domain.HazardLevel) float64 {
	if s, ok := severityScores[level]; ok {
		return s
	}
	logger.Warnf(ctx, "unrecognized %s susceptibility level %q, scoring as no hazard", hazard, level)
	return 0
}

// ScoreRisk combines the three hazard levels into a composite assessment.
//
// Each hazard contributes only when present, and the weighted sum is
// normalized by the weights of present hazards, so a location is never
// penalized for hazards that simply do not reach it. Debris flow
// short-circuits everything: the zone is critical regardless of the
// other layers.
func ScoreRisk(ctx context.Context, levels domain.HazardLevels) *domain.RiskAssessment {
	summary, details := Recommend(levels)

	if levels.Landslide == domain.LevelDF {
		return &domain.RiskAssessment{
			Score:                 100,
			RawScore:              100,
			Category:              "CRITICAL - DEBRIS FLOW ZONE",
			Message:               "EXTREME DANGER - Evacuation zone",
			Color:                 "#ef4444",
			Icon:                  "🚨",
			SafetyLevel:           "EVACUATION REQUIRED",
			RecommendationSummary: summary,
			RecommendationDetails: details,
		}
	}

	var weightedSum, presentWeight float64

	if levels.Flood.Present() {
		weightedSum += severity(ctx, domain.HazardFlood, levels.Flood) * weightFlood
		presentWeight += weightFlood
	}
	if levels.Landslide.Present() {
		weightedSum += severity(ctx, domain.HazardLandslide, levels.Landslide) * weightLandslide
		presentWeight += weightLandslide
	}
	if levels.Liquefaction.Present() {
		weightedSum += severity(ctx, domain.HazardLiquefaction, levels.Liquefaction) * weightLiquefaction
		presentWeight += weightLiquefaction
	}

	var score float64
	if presentWeight > 0 {
		score = weightedSum / presentWeight
	}

	if len(highRisks(levels)) >= 2 {
		score *= combinedHazardMultiplier
	}

	rawScore := round1(score)
	capped := rawScore
	if capped > 100 {
		capped = 100
	}

	assessment := categorize(capped)
	assessment.Score = capped
	assessment.RawScore = rawScore
	assessment.RecommendationSummary = summary
	assessment.RecommendationDetails = details

	return assessment
}

func categorize(score float64) *domain.RiskAssessment {
	switch {
	case score < 25:
		return &domain.RiskAssessment{
			Category:    "LOW RISK",
			Message:     "Generally safe for development",
			Color:       "#10b981",
			Icon:        "✅",
			SafetyLevel: "SAFE",
		}
	case score < 50:
		return &domain.RiskAssessment{
			Category:    "MODERATE RISK",
			Message:     "Acceptable with precautions",
			Color:       "#f59e0b",
			Icon:        "⚠️",
			SafetyLevel: "CAUTION",
		}
	case score < 75:
		return &domain.RiskAssessment{
			Category:    "HIGH RISK",
			Message:     "Significant hazards present",
			Color:       "#f97316",
			Icon:        "⚠️",
			SafetyLevel: "WARNING",
		}
	default:
		return &domain.RiskAssessment{
			Category:    "VERY HIGH RISK",
			Message:     "Not recommended for development",
			Color:       "#ef4444",
			Icon:        "🚫",
			SafetyLevel: "DANGER",
		}
	}
}

func round1(v float64) float64 {
	return decimal.NewFromFloat(v).Round(1).InexactFloat64()
}
