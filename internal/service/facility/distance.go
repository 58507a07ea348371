package facility

import (
	"context"
	"math"
	"time"

	"github.com/negrosgeo/riskmap/internal/domain"
	"github.com/negrosgeo/riskmap/internal/pkg/cache"
	"github.com/negrosgeo/riskmap/internal/pkg/geo"
	"github.com/negrosgeo/riskmap/internal/pkg/logger"
	"github.com/negrosgeo/riskmap/internal/pkg/routing"
)

const (
	walkableThresholdMeters = 500
	// fallbackSpeedKmh converts straight-line distance into a rough
	// driving-time estimate.
	fallbackSpeedKmh = 40
	// chunkDelay spaces sequential table calls to respect provider rate
	// limits.
	chunkDelay = 200 * time.Millisecond
)

// Router is the road-routing boundary consumed by the distance engine.
type Router interface {
	Table(ctx context.Context, origin geo.Point, destinations []geo.Point) ([]*routing.Result, error)
	Route(ctx context.Context, origin, destination geo.Point) (*routing.Result, error)
}

// DistanceResult is a single distance/duration estimate with its
// provenance.
type DistanceResult struct {
	DistanceMeters  float64
	DurationMinutes float64
	Method          domain.DistanceMethod
}

// DistanceEngine computes road distances with a great-circle fallback.
// It never returns an error to callers: a failed routing call degrades
// to the straight-line estimate. The cache is an optimization only; a
// miss reproduces the same result as a fresh computation.
type DistanceEngine struct {
	router Router
	cache  *cache.Cache
	ttl    time.Duration
}

func NewDistanceEngine(router Router, c *cache.Cache, ttl time.Duration) *DistanceEngine {
	return &DistanceEngine{router: router, cache: c, ttl: ttl}
}

func (e *DistanceEngine) cacheKey(origin, destination geo.Point) string {
	return "dist:" + geo.RoundKey(origin) + "|" + geo.RoundKey(destination)
}

// Distance estimates origin→destination. Road routing first, cached by
// rounded coordinates, straight-line on any routing failure.
func (e *DistanceEngine) Distance(ctx context.Context, origin, destination geo.Point) DistanceResult {
	key := e.cacheKey(origin, destination)
	if cached, ok := e.cache.Get(key); ok {
		if result, ok := cached.(DistanceResult); ok {
			result.Method = domain.MethodRoadCached
			return result
		}
	}

	routed, err := e.router.Route(ctx, origin, destination)
	if err != nil {
		logger.Warnf(ctx, "road routing failed, falling back to straight line: %s", err.Error())
		return straightLine(origin, destination)
	}

	result := DistanceResult{
		DistanceMeters:  routed.DistanceMeters,
		DurationMinutes: routed.DurationSeconds / 60,
		Method:          domain.MethodRoad,
	}
	e.cache.Set(key, result, e.ttl)
	return result
}

// Annotate fills the distance-derived fields of every facility, batching
// routing calls in table-sized chunks processed sequentially with a
// small delay. Missing per-destination entries fall back individually.
func (e *DistanceEngine) Annotate(ctx context.Context, origin geo.Point, facilities []*domain.Facility) {
	pending := make([]int, 0, len(facilities))
	for i, f := range facilities {
		dest := geo.Point{Lat: f.Lat, Lng: f.Lng}
		if cached, ok := e.cache.Get(e.cacheKey(origin, dest)); ok {
			if result, ok := cached.(DistanceResult); ok {
				result.Method = domain.MethodRoadCached
				apply(f, result)
				continue
			}
		}
		pending = append(pending, i)
	}

	for start := 0; start < len(pending); start += routing.TableLimit {
		end := start + routing.TableLimit
		if end > len(pending) {
			end = len(pending)
		}
		if start > 0 {
			time.Sleep(chunkDelay)
		}
		e.annotateChunk(ctx, origin, facilities, pending[start:end])
	}
}

func (e *DistanceEngine) annotateChunk(ctx context.Context, origin geo.Point, facilities []*domain.Facility, indices []int) {
	destinations := make([]geo.Point, len(indices))
	for i, idx := range indices {
		destinations[i] = geo.Point{Lat: facilities[idx].Lat, Lng: facilities[idx].Lng}
	}

	results, err := e.router.Table(ctx, origin, destinations)
	if err != nil {
		logger.Warnf(ctx, "batch routing failed for %d destinations, falling back to straight line: %s",
			len(indices), err.Error())
		for i, idx := range indices {
			apply(facilities[idx], straightLine(origin, destinations[i]))
		}
		return
	}

	for i, idx := range indices {
		if results[i] == nil {
			apply(facilities[idx], straightLine(origin, destinations[i]))
			continue
		}
		result := DistanceResult{
			DistanceMeters:  results[i].DistanceMeters,
			DurationMinutes: results[i].DurationSeconds / 60,
			Method:          domain.MethodRoad,
		}
		e.cache.Set(e.cacheKey(origin, destinations[i]), result, e.ttl)
		apply(facilities[idx], result)
	}
}

func straightLine(origin, destination geo.Point) DistanceResult {
	meters := geo.HaversineMeters(origin, destination)
	return DistanceResult{
		DistanceMeters:  meters,
		DurationMinutes: meters / 1000 / fallbackSpeedKmh * 60,
		Method:          domain.MethodStraightLine,
	}
}

func apply(f *domain.Facility, result DistanceResult) {
	f.DistanceMeters = result.DistanceMeters
	f.DistanceKm = math.Round(result.DistanceMeters/10) / 100
	f.DistanceDisplay = geo.FormatDistance(result.DistanceMeters)
	f.DurationMinutes = result.DurationMinutes
	f.DurationDisplay = geo.FormatDuration(result.DurationMinutes)
	f.IsWalkable = result.DistanceMeters <= walkableThresholdMeters
	f.Method = result.Method
}
