// Package facility discovers, classifies, and ranks critical facilities
// around a query point.
package facility

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/negrosgeo/riskmap/internal/domain"
	"github.com/negrosgeo/riskmap/internal/pkg/cache"
	"github.com/negrosgeo/riskmap/internal/pkg/geo"
	"github.com/negrosgeo/riskmap/internal/pkg/logger"
	"github.com/negrosgeo/riskmap/internal/pkg/overpass"
)

// listLimit caps each group in the API payload; counts stay complete.
const listLimit = 10

// Discoverer is the facility-discovery boundary.
type Discoverer interface {
	FindFacilities(ctx context.Context, point geo.Point, radius int) ([]*overpass.Element, error)
}

type Service struct {
	discovery Discoverer
	distance  *DistanceEngine
	cache     *cache.Cache
	cacheTTL  time.Duration
}

func NewService(discovery Discoverer, distance *DistanceEngine, c *cache.Cache, cacheTTL time.Duration) *Service {
	return &Service{
		discovery: discovery,
		distance:  distance,
		cache:     c,
		cacheTTL:  cacheTTL,
	}
}

// NearbyFacilities runs the full facility pipeline for a point. A failed
// discovery call degrades to an empty facility list rather than an
// error: scoring must proceed on hazard data alone.
func (s *Service) NearbyFacilities(ctx context.Context, point geo.Point, radius int) *domain.FacilitiesResponse {
	key := fmt.Sprintf("fac:%s|%d", geo.RoundKey(point), radius)
	if cached, ok := s.cache.Get(key); ok {
		if resp, ok := cached.(*domain.FacilitiesResponse); ok {
			return resp
		}
	}

	elements, err := s.discovery.FindFacilities(ctx, point, radius)
	if err != nil {
		logger.Warnf(ctx, "facility discovery failed, continuing with empty list: %s", err.Error())
		elements = nil
	}

	facilities := make([]*domain.Facility, 0, len(elements))
	for _, element := range elements {
		if f := Classify(element); f != nil {
			facilities = append(facilities, f)
		}
	}

	s.distance.Annotate(ctx, point, facilities)

	// Stable sort keeps discovery order for equidistant facilities.
	sort.SliceStable(facilities, func(i, j int) bool {
		return facilities[i].DistanceMeters < facilities[j].DistanceMeters
	})

	groups := Group(facilities)
	summary := Summarize(groups)

	resp := &domain.FacilitiesResponse{
		Summary:           summary,
		EvacuationCenters: truncate(groups.Evacuation),
		Medical:           truncate(groups.Medical),
		EmergencyServices: truncate(groups.EmergencyServices),
		EssentialServices: truncate(groups.Essential),
		Other:             truncate(groups.Other),
		Counts:            summary.Counts,
	}

	s.cache.Set(key, resp, s.cacheTTL)
	return resp
}

// Summarize builds the nearest-of-type summary and per-bucket counts.
// nearest_hospital is the nearest medical facility of any kind — a
// pharmacy or clinic counts.
func Summarize(groups *domain.FacilityGroups) *domain.FacilitySummary {
	summary := &domain.FacilitySummary{
		Counts: domain.FacilityCounts{
			Evacuation:        len(groups.Evacuation),
			Medical:           len(groups.Medical),
			EmergencyServices: len(groups.EmergencyServices),
			Essential:         len(groups.Essential),
			Other:             len(groups.Other),
			Total:             groups.Total(),
		},
	}

	if len(groups.Evacuation) > 0 {
		nearest := groups.Evacuation[0]
		summary.NearestEvacuation = nearestEntry(nearest)
		summary.EvacuationDistanceMeters = nearest.DistanceMeters
	}

	if len(groups.Medical) > 0 {
		nearest := groups.Medical[0]
		summary.NearestHospital = nearestEntry(nearest)
		summary.HospitalDistanceMeters = nearest.DistanceMeters
	}

	for _, f := range groups.EmergencyServices {
		if f.RawType == "fire_station" {
			summary.NearestFireStation = nearestEntry(f)
			break
		}
	}

	return summary
}

func nearestEntry(f *domain.Facility) *domain.NearestFacility {
	return &domain.NearestFacility{
		Name:            f.Name,
		Distance:        f.DistanceDisplay,
		DurationDisplay: f.DurationDisplay,
		IsWalkable:      f.IsWalkable,
	}
}

func truncate(facilities []*domain.Facility) []*domain.Facility {
	if len(facilities) > listLimit {
		return facilities[:listLimit]
	}
	return facilities
}
