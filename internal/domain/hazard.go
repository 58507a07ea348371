package domain

// HazardType identifies one of the three susceptibility layers.
type HazardType string

const (
	HazardFlood        HazardType = "flood"
	HazardLandslide    HazardType = "landslide"
	HazardLiquefaction HazardType = "liquefaction"
)

// HazardLevel is a categorical susceptibility level. LevelNone means the
// point falls outside every polygon of the layer, i.e. the hazard is not
// present there — it never means "unknown".
type HazardLevel string

const (
	LevelNone HazardLevel = ""
	LevelLS   HazardLevel = "LS"
	LevelMS   HazardLevel = "MS"
	LevelHS   HazardLevel = "HS"
	LevelVHS  HazardLevel = "VHS"
	// LevelDF is debris flow, a distinct critical landslide subtype.
	// It is not an ordinal step above VHS.
	LevelDF HazardLevel = "DF"
)

// Present reports whether the location is inside at least one polygon of
// the layer.
func (l HazardLevel) Present() bool {
	return l != LevelNone
}

var levelLabels = map[HazardLevel]string{
	LevelLS:  "Low Susceptibility",
	LevelMS:  "Moderate Susceptibility",
	LevelHS:  "High Susceptibility",
	LevelVHS: "Very High Susceptibility",
	LevelDF:  "Debris Flow - Critical Risk",
}

// Label returns the administrative display label for the level.
func (l HazardLevel) Label() string {
	if label, ok := levelLabels[l]; ok {
		return label
	}
	return "No Data Available"
}

var riskLabels = map[HazardType]map[HazardLevel]string{
	HazardFlood: {
		LevelLS:  "Low risk - Flooding unlikely",
		LevelMS:  "Moderate risk - Occasional flooding possible",
		LevelHS:  "High risk - Frequent flooding expected",
		LevelVHS: "Very high risk - Severe flooding likely",
	},
	HazardLandslide: {
		LevelLS:  "Low risk - Stable terrain",
		LevelMS:  "Moderate risk - Some slope instability",
		LevelHS:  "High risk - Landslide-prone area",
		LevelVHS: "Very high risk - Critical landslide zone",
		LevelDF:  "CRITICAL RISK - Debris Flow zone: Catastrophic rapid movement of rocks, soil and water. Immediate evacuation required during heavy rain.",
	},
	HazardLiquefaction: {
		LevelLS: "Low risk - Soil unlikely to liquefy during earthquakes",
		LevelMS: "Moderate risk - Soil may weaken during strong earthquakes",
		LevelHS: "High risk - Soil highly prone to liquefaction during earthquakes",
	},
}

// RiskLabel converts a level to the user-friendly description shown next
// to each hazard block.
func RiskLabel(hazard HazardType, level HazardLevel) string {
	if !level.Present() {
		return "Not at risk - No hazard data for this area (safe zone)"
	}
	if label, ok := riskLabels[hazard][level]; ok {
		return label
	}
	return "Risk level unknown"
}

// HazardLevels bundles the three per-layer lookup results for a point.
type HazardLevels struct {
	Flood        HazardLevel
	Landslide    HazardLevel
	Liquefaction HazardLevel
}
