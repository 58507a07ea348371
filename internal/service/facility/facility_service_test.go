package facility

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/negrosgeo/riskmap/internal/pkg/cache"
	"github.com/negrosgeo/riskmap/internal/pkg/geo"
	"github.com/negrosgeo/riskmap/internal/pkg/overpass"
	"github.com/negrosgeo/riskmap/internal/pkg/routing"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// stubDiscoverer replays a fixed element set.
type stubDiscoverer struct {
	elements []*overpass.Element
	err      error
	calls    int
}

func (s *stubDiscoverer) FindFacilities(_ context.Context, _ geo.Point, _ int) ([]*overpass.Element, error) {
	s.calls++
	return s.elements, s.err
}

// mapRouter returns a fixed result per rounded destination.
type mapRouter struct {
	results map[string]*routing.Result
}

func (m *mapRouter) Table(_ context.Context, _ geo.Point, destinations []geo.Point) ([]*routing.Result, error) {
	results := make([]*routing.Result, len(destinations))
	for i, dest := range destinations {
		results[i] = m.results[geo.RoundKey(dest)]
	}
	return results, nil
}

func (m *mapRouter) Route(_ context.Context, _, dest geo.Point) (*routing.Result, error) {
	if r, ok := m.results[geo.RoundKey(dest)]; ok {
		return r, nil
	}
	return nil, errors.New("no route")
}

func newTestService(t *testing.T, discovery Discoverer, router Router) *Service {
	t.Helper()
	c := cache.New()
	t.Cleanup(c.Close)
	engine := NewDistanceEngine(router, c, time.Hour)
	return NewService(discovery, engine, c, time.Hour)
}

func poi(id int64, lat, lng float64, tags map[string]string) *overpass.Element {
	return &overpass.Element{ID: id, Type: "node", Lat: lat, Lng: lng, Tags: tags}
}

func TestNearbyFacilities_Pipeline(t *testing.T) {
	hospital := poi(10, 9.3140, 123.3100, map[string]string{"amenity": "hospital", "name": "City Hospital"})
	school := poi(11, 9.3160, 123.3110, map[string]string{"amenity": "school", "name": "Central School"})
	police := poi(12, 9.3170, 123.3120, map[string]string{"amenity": "police", "name": "Police Station"})
	fire := poi(13, 9.3180, 123.3130, map[string]string{"amenity": "fire_station", "name": "Central Fire Station"})
	fountain := poi(14, 9.3150, 123.3105, map[string]string{"amenity": "fountain", "name": "Plaza Fountain"})

	discovery := &stubDiscoverer{elements: []*overpass.Element{fire, fountain, school, police, hospital}}
	router := &mapRouter{results: map[string]*routing.Result{
		geo.RoundKey(geo.Point{Lat: hospital.Lat, Lng: hospital.Lng}): {DistanceMeters: 400, DurationSeconds: 60},
		geo.RoundKey(geo.Point{Lat: school.Lat, Lng: school.Lng}):     {DistanceMeters: 600, DurationSeconds: 90},
		geo.RoundKey(geo.Point{Lat: police.Lat, Lng: police.Lng}):     {DistanceMeters: 900, DurationSeconds: 120},
		geo.RoundKey(geo.Point{Lat: fire.Lat, Lng: fire.Lng}):         {DistanceMeters: 1200, DurationSeconds: 180},
	}}
	svc := newTestService(t, discovery, router)

	resp := svc.NearbyFacilities(context.Background(), testOrigin, 3000)

	// Unclassifiable element dropped; the rest grouped and counted.
	assert.Equal(t, 4, resp.Counts.Total)
	assert.Equal(t, 1, resp.Counts.Evacuation)
	assert.Equal(t, 1, resp.Counts.Medical)
	assert.Equal(t, 2, resp.Counts.EmergencyServices)

	require.NotNil(t, resp.Summary.NearestHospital)
	assert.Equal(t, "City Hospital", resp.Summary.NearestHospital.Name)
	assert.True(t, resp.Summary.NearestHospital.IsWalkable)
	assert.Equal(t, 400.0, resp.Summary.HospitalDistanceMeters)

	require.NotNil(t, resp.Summary.NearestEvacuation)
	assert.Equal(t, "Central School", resp.Summary.NearestEvacuation.Name)
	assert.False(t, resp.Summary.NearestEvacuation.IsWalkable)
	assert.Equal(t, 600.0, resp.Summary.EvacuationDistanceMeters)

	// Fire-station summary skips the nearer police station.
	require.NotNil(t, resp.Summary.NearestFireStation)
	assert.Equal(t, "Central Fire Station", resp.Summary.NearestFireStation.Name)

	// Emergency bucket sorted by distance: police before fire station.
	require.Len(t, resp.EmergencyServices, 2)
	assert.Equal(t, "Police Station", resp.EmergencyServices[0].Name)
}

func TestNearbyFacilities_SecondCallCached(t *testing.T) {
	hospital := poi(10, 9.3140, 123.3100, map[string]string{"amenity": "hospital", "name": "City Hospital"})
	discovery := &stubDiscoverer{elements: []*overpass.Element{hospital}}
	router := &mapRouter{results: map[string]*routing.Result{
		geo.RoundKey(geo.Point{Lat: hospital.Lat, Lng: hospital.Lng}): {DistanceMeters: 400, DurationSeconds: 60},
	}}
	svc := newTestService(t, discovery, router)

	first := svc.NearbyFacilities(context.Background(), testOrigin, 3000)
	second := svc.NearbyFacilities(context.Background(), testOrigin, 3000)

	assert.Same(t, first, second)
	assert.Equal(t, 1, discovery.calls)
}

func TestNearbyFacilities_RadiusKeyedSeparately(t *testing.T) {
	discovery := &stubDiscoverer{}
	svc := newTestService(t, discovery, &mapRouter{})

	svc.NearbyFacilities(context.Background(), testOrigin, 1000)
	svc.NearbyFacilities(context.Background(), testOrigin, 3000)

	assert.Equal(t, 2, discovery.calls)
}

func TestNearbyFacilities_DiscoveryFailureDegrades(t *testing.T) {
	discovery := &stubDiscoverer{err: errors.New("overpass timeout")}
	svc := newTestService(t, discovery, &mapRouter{})

	resp := svc.NearbyFacilities(context.Background(), testOrigin, 3000)

	require.NotNil(t, resp)
	assert.Equal(t, 0, resp.Counts.Total)
	assert.Nil(t, resp.Summary.NearestEvacuation)
	assert.Nil(t, resp.Summary.NearestHospital)
	assert.Nil(t, resp.Summary.NearestFireStation)
	assert.Empty(t, resp.EvacuationCenters)
}

func TestNearbyFacilities_ListsTruncatedCountsComplete(t *testing.T) {
	elements := make([]*overpass.Element, 0, 12)
	results := make(map[string]*routing.Result, 12)
	for i := 0; i < 12; i++ {
		lat := 9.3140 + float64(i)*0.001
		e := poi(int64(100+i), lat, 123.3100, map[string]string{
			"amenity": "school",
			"name":    fmt.Sprintf("School %d", i),
		})
		elements = append(elements, e)
		results[geo.RoundKey(geo.Point{Lat: lat, Lng: 123.3100})] = &routing.Result{
			DistanceMeters:  float64(100 * (i + 1)),
			DurationSeconds: 60,
		}
	}

	discovery := &stubDiscoverer{elements: elements}
	svc := newTestService(t, discovery, &mapRouter{results: results})

	resp := svc.NearbyFacilities(context.Background(), testOrigin, 3000)

	assert.Len(t, resp.EvacuationCenters, 10)
	assert.Equal(t, 12, resp.Counts.Evacuation)
	assert.Equal(t, "School 0", resp.EvacuationCenters[0].Name)
}
