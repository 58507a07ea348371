// Package assessment orchestrates the scoring pipeline: hazard lookups
// and facility discovery feed the risk engine, whose output feeds the
// suitability engine.
package assessment

import (
	"context"

	"github.com/negrosgeo/riskmap/internal/domain"
	"github.com/negrosgeo/riskmap/internal/pkg/geo"
	"github.com/negrosgeo/riskmap/internal/pkg/logger"
	"github.com/negrosgeo/riskmap/internal/pkg/store"
	"github.com/negrosgeo/riskmap/internal/service/facility"
	"github.com/negrosgeo/riskmap/internal/service/scoring"
	"golang.org/x/sync/errgroup"
)

// defaultFacilityRadius is the search radius used by the assess endpoint.
const defaultFacilityRadius = 3000

type Service struct {
	store      store.Store
	facilities *facility.Service
}

func NewService(store store.Store, facilities *facility.Service) *Service {
	return &Service{store: store, facilities: facilities}
}

// Assess runs the complete pipeline for a point. Hazard lookups and
// facility discovery are independent reads and run in parallel; risk
// must complete before suitability (data dependency).
func (s *Service) Assess(ctx context.Context, point geo.Point) (*domain.AssessResponse, error) {
	levels, err := s.lookupHazards(ctx, point)
	if err != nil {
		return nil, err
	}

	facilitiesResp := s.facilities.NearbyFacilities(ctx, point, defaultFacilityRadius)

	risk := scoring.ScoreRisk(ctx, levels)
	suitability := scoring.ScoreSuitability(risk, facilitiesResp.Summary)

	return &domain.AssessResponse{
		OverallRisk: risk,
		Suitability: suitability,
		Flood: domain.HazardBlock{
			Level:     levels.Flood,
			Label:     levels.Flood.Label(),
			RiskLabel: domain.RiskLabel(domain.HazardFlood, levels.Flood),
		},
		Landslide: domain.HazardBlock{
			Level:     levels.Landslide,
			Label:     levels.Landslide.Label(),
			RiskLabel: domain.RiskLabel(domain.HazardLandslide, levels.Landslide),
		},
		Liquefaction: domain.HazardBlock{
			Level:     levels.Liquefaction,
			Label:     levels.Liquefaction.Label(),
			RiskLabel: domain.RiskLabel(domain.HazardLiquefaction, levels.Liquefaction),
		},
	}, nil
}

// lookupHazards queries the three layers in parallel. A failed layer
// lookup degrades to "hazard not present" with a logged warning so one
// unavailable collaborator cannot fail the whole request.
func (s *Service) lookupHazards(ctx context.Context, point geo.Point) (domain.HazardLevels, error) {
	var levels domain.HazardLevels

	eg, egCtx := errgroup.WithContext(ctx)
	lookup := func(hazard domain.HazardType, dst *domain.HazardLevel) func() error {
		return func() error {
			level, err := s.store.HazardLevelAt(egCtx, hazard, point)
			if err != nil {
				logger.Warnf(egCtx, "%s lookup failed, treating as no hazard: %s", hazard, err.Error())
				level = domain.LevelNone
			}
			*dst = level
			return nil
		}
	}

	eg.Go(lookup(domain.HazardFlood, &levels.Flood))
	eg.Go(lookup(domain.HazardLandslide, &levels.Landslide))
	eg.Go(lookup(domain.HazardLiquefaction, &levels.Liquefaction))

	if err := eg.Wait(); err != nil {
		return levels, err
	}

	return levels, nil
}
