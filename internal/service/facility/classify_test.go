package facility

import (
	"testing"

	"github.com/negrosgeo/riskmap/internal/domain"
	"github.com/negrosgeo/riskmap/internal/pkg/overpass"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func element(id int64, tags map[string]string) *overpass.Element {
	return &overpass.Element{ID: id, Type: "node", Tags: tags, Lat: 9.3, Lng: 123.3}
}

func TestClassify_KnownAmenity(t *testing.T) {
	f := Classify(element(1, map[string]string{"amenity": "hospital", "name": "Negros Oriental Provincial Hospital"}))

	require.NotNil(t, f)
	assert.Equal(t, "hospital", f.RawType)
	assert.Equal(t, "Hospital", f.TypeDisplay)
	assert.Equal(t, domain.CategoryEmergency, f.Category)
	assert.Equal(t, domain.SubcategoryMedical, f.Subcategory)
	assert.Equal(t, 2, f.Priority)
}

func TestClassify_UnknownTypeDropped(t *testing.T) {
	assert.Nil(t, Classify(element(2, map[string]string{"amenity": "fountain", "name": "Plaza Fountain"})))
	assert.Nil(t, Classify(element(3, map[string]string{"leisure": "park"})))
}

func TestClassify_BarangayNameFallback(t *testing.T) {
	f := Classify(element(4, map[string]string{"name": "Barangay Looc Hall"}))

	require.NotNil(t, f)
	assert.Equal(t, "barangay_hall", f.RawType)
	assert.Equal(t, "Barangay Hall", f.TypeDisplay)
	assert.Equal(t, domain.CategoryGovernment, f.Category)
	assert.Equal(t, domain.SubcategoryOther, f.Subcategory)
}

func TestClassify_HealthcareTag(t *testing.T) {
	f := Classify(element(5, map[string]string{"healthcare": "hospital", "name": "ACE Dumaguete"}))

	require.NotNil(t, f)
	assert.Equal(t, "hospital", f.RawType)
	assert.Equal(t, domain.SubcategoryMedical, f.Subcategory)
}

func TestClassify_ShopAndOfficeTags(t *testing.T) {
	shop := Classify(element(6, map[string]string{"shop": "supermarket", "name": "Lee Super Plaza"}))
	require.NotNil(t, shop)
	assert.Equal(t, domain.SubcategoryEssential, shop.Subcategory)

	office := Classify(element(7, map[string]string{"office": "government", "name": "DENR Field Office"}))
	require.NotNil(t, office)
	assert.Equal(t, domain.CategoryGovernment, office.Category)
	assert.Equal(t, domain.SubcategoryOther, office.Subcategory)
}

func TestClassify_UnnamedFallbackName(t *testing.T) {
	f := Classify(element(8, map[string]string{"amenity": "pharmacy"}))

	require.NotNil(t, f)
	assert.Equal(t, "Unnamed Pharmacy", f.Name)
}

func TestGroup_Exhaustive(t *testing.T) {
	rawTypes := []string{
		"school", "community_centre", "kindergarten", "college", "university",
		"hospital", "clinic", "doctors", "pharmacy",
		"fire_station", "police",
		"marketplace", "supermarket", "convenience", "bank", "fuel",
		"restaurant", "fast_food", "cafe", "mall", "atm", "department_store",
		"townhall", "post_office", "ferry_terminal", "bus_station", "barangay_hall",
	}

	facilities := make([]*domain.Facility, 0, len(rawTypes))
	for i, rawType := range rawTypes {
		sub, prio := groupFor(rawType)
		facilities = append(facilities, &domain.Facility{
			ID:          int64(i),
			RawType:     rawType,
			Subcategory: sub,
			Priority:    prio,
		})
	}

	groups := Group(facilities)

	// Every facility lands in exactly one bucket.
	assert.Equal(t, len(rawTypes), groups.Total())
	assert.Len(t, groups.Evacuation, 5)
	assert.Len(t, groups.Medical, 4)
	assert.Len(t, groups.EmergencyServices, 2)
	assert.Len(t, groups.Essential, 11)
	assert.Len(t, groups.Other, 5)
}

func TestGroupFor_PriorityOrder(t *testing.T) {
	cases := map[string]struct {
		sub  domain.FacilitySubcategory
		prio int
	}{
		"school":       {domain.SubcategoryEvacuation, 1},
		"hospital":     {domain.SubcategoryMedical, 2},
		"fire_station": {domain.SubcategoryEmergencyServices, 3},
		"supermarket":  {domain.SubcategoryEssential, 4},
		"townhall":     {domain.SubcategoryOther, 5},
	}

	for rawType, want := range cases {
		sub, prio := groupFor(rawType)
		assert.Equal(t, want.sub, sub, rawType)
		assert.Equal(t, want.prio, prio, rawType)
	}
}
