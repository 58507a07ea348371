package scoring

import (
	"strings"

	"github.com/negrosgeo/riskmap/internal/domain"
)

// highRisks returns the hazards present at high severity. This is the
// single source of truth for the severity-to-high-risk mapping; both the
// recommendation branches and the combined-hazard penalty count use it.
func highRisks(levels domain.HazardLevels) []domain.HazardType {
	var risks []domain.HazardType
	if levels.Flood == domain.LevelHS || levels.Flood == domain.LevelVHS {
		risks = append(risks, domain.HazardFlood)
	}
	switch levels.Landslide {
	case domain.LevelHS, domain.LevelVHS, domain.LevelDF:
		risks = append(risks, domain.HazardLandslide)
	}
	if levels.Liquefaction == domain.LevelHS {
		risks = append(risks, domain.HazardLiquefaction)
	}
	return risks
}

func hasModerate(levels domain.HazardLevels) bool {
	return levels.Flood == domain.LevelMS ||
		levels.Landslide == domain.LevelMS ||
		levels.Liquefaction == domain.LevelMS
}

const lowRiskSummary = "LOW DISASTER RISK"

// Recommend produces the hazard-specific mitigation guidance for a
// location. Pure text assembly: no scoring side effects.
func Recommend(levels domain.HazardLevels) (string, []domain.RecommendationBlock) {
	risks := highRisks(levels)

	if len(risks) == 0 {
		if hasModerate(levels) {
			return lowRiskSummary, []domain.RecommendationBlock{standardPrecautionsBlock}
		}
		return lowRiskSummary, []domain.RecommendationBlock{lowRiskBlock}
	}

	labels := make([]string, 0, len(risks))
	blocks := make([]domain.RecommendationBlock, 0, len(risks)+1)

	for _, hazard := range risks {
		switch hazard {
		case domain.HazardFlood:
			if levels.Flood == domain.LevelVHS {
				labels = append(labels, "VERY HIGH FLOOD RISK")
				blocks = append(blocks, floodVHSBlock)
			} else {
				labels = append(labels, "HIGH FLOOD RISK")
				blocks = append(blocks, floodHSBlock)
			}
		case domain.HazardLandslide:
			switch levels.Landslide {
			case domain.LevelDF:
				labels = append(labels, "CRITICAL DEBRIS FLOW RISK")
				blocks = append(blocks, debrisFlowBlock)
			case domain.LevelVHS:
				labels = append(labels, "VERY HIGH LANDSLIDE RISK")
				blocks = append(blocks, landslideVHSBlock)
			default:
				labels = append(labels, "HIGH LANDSLIDE RISK")
				blocks = append(blocks, landslideHSBlock)
			}
		case domain.HazardLiquefaction:
			labels = append(labels, "HIGH LIQUEFACTION RISK")
			blocks = append(blocks, liquefactionHSBlock)
		}
	}

	if len(risks) >= 2 {
		blocks = append(blocks, multiHazardBlock)
	}

	return strings.Join(labels, " + "), blocks
}

var lowRiskBlock = domain.RecommendationBlock{
	Hazard: "general",
	Title:  "Low Disaster Risk",
	Measures: []string{
		"No hazard-specific engineering interventions required",
		"Follow the National Building Code for standard structural design",
		"Maintain site drainage to prevent localized ponding",
	},
	Permits: "Standard building permit from the municipal engineering office.",
}

var standardPrecautionsBlock = domain.RecommendationBlock{
	Hazard: "general",
	Title:  "Standard Precautions",
	Measures: []string{
		"Elevate the lowest floor at least 0.5 m above the highest adjacent grade",
		"Provide perimeter drainage sized for intense rainfall",
		"Use reinforced concrete footings tied to a continuous wall footing",
		"Keep waterways and drainage easements clear of obstruction",
	},
	Permits: "Standard building permit; have the site drainage plan reviewed by the municipal engineering office.",
}

var floodVHSBlock = domain.RecommendationBlock{
	Hazard: "flood",
	Title:  "Very High Flood Susceptibility",
	Measures: []string{
		"Elevate the lowest habitable floor at least 1.5 m above the highest recorded flood level",
		"Use stilt or pile foundations; avoid enclosed ground-floor living spaces",
		"Use flood-resistant materials (concrete, marine plywood) below the design flood elevation",
		"Provide an accessible roof deck or upper floor as vertical evacuation space",
		"Do not obstruct natural waterways or floodplains on the lot",
	},
	Permits: "Secure a development clearance from the municipal zoning office and a certification from MGB; coordinate with the local DRRMO on evacuation routes.",
}

var floodHSBlock = domain.RecommendationBlock{
	Hazard: "flood",
	Title:  "High Flood Susceptibility",
	Measures: []string{
		"Elevate the lowest floor at least 1.0 m above the highest adjacent grade",
		"Provide engineered site drainage with silt traps discharging to a natural waterway",
		"Use water-resistant finishes and elevated electrical outlets on the ground floor",
		"Anchor septic tanks and storage tanks against buoyancy",
	},
	Permits: "Building permit with a drainage plan approved by the municipal engineering office; MGB hazard certification recommended.",
}

var debrisFlowBlock = domain.RecommendationBlock{
	Hazard: "landslide",
	Title:  "Debris Flow Zone - Construction Prohibited",
	Measures: []string{
		"DO NOT BUILD: this site is in a debris flow zone with catastrophic risk",
		"Evacuate immediately during heavy or prolonged rainfall",
		"Relocate permanently to a site outside the delineated debris flow path",
		"Report any planned construction in this zone to the local DRRMO",
	},
	Permits: "No building permit should be issued for this zone. Consult PHIVOLCS and the local DRRMO for relocation guidance.",
}

var landslideVHSBlock = domain.RecommendationBlock{
	Hazard: "landslide",
	Title:  "Very High Landslide Susceptibility",
	Measures: []string{
		"Commission a site-specific geotechnical investigation before any design work",
		"Construct engineered retaining structures with weep holes on all cut slopes",
		"Re-vegetate exposed slopes with deep-rooted species",
		"Intercept and divert surface runoff away from slope faces",
		"Strongly consider an alternative site outside the susceptibility zone",
	},
	Permits: "Geotechnical report and slope protection plan required for the building permit; MGB clearance required.",
}

var landslideHSBlock = domain.RecommendationBlock{
	Hazard: "landslide",
	Title:  "High Landslide Susceptibility",
	Measures: []string{
		"Limit cut-and-fill earthworks; follow the natural grade where possible",
		"Provide slope protection (riprap, gabions, or retaining walls) for cuts over 1.5 m",
		"Install surface drainage to keep slopes from saturating",
		"Set structures back from the crest and toe of steep slopes",
	},
	Permits: "Building permit with a slope protection plan; MGB hazard certification recommended.",
}

var liquefactionHSBlock = domain.RecommendationBlock{
	Hazard: "liquefaction",
	Title:  "High Liquefaction Susceptibility",
	Measures: []string{
		"Commission a soil boring test to at least 15 m depth before design",
		"Use deep foundations (driven or bored piles) bearing on dense strata",
		"Consider ground improvement (compaction piles, vibro-compaction) for shallow foundations",
		"Use a rigid mat foundation with grade beams if piles are not feasible",
		"Avoid unreinforced masonry construction",
	},
	Permits: "Geotechnical report required for the building permit; structural design must be signed by a licensed civil/structural engineer per PHIVOLCS seismic guidance.",
}

var multiHazardBlock = domain.RecommendationBlock{
	Hazard: "multiple",
	Title:  "Multiple Hazard Exposure",
	Measures: []string{
		"This site is exposed to two or more high-severity hazards; mitigation costs compound",
		"Expect significantly higher construction, insurance, and maintenance costs",
		"Resale value and insurability of structures here are likely to be impaired",
		"A comprehensive multi-hazard engineering assessment is strongly advised before committing to the site",
	},
	Permits: "Consolidated hazard clearances (MGB, PHIVOLCS) and a multi-hazard mitigation plan reviewed by the provincial DRRMO.",
}
