package store

import (
	"context"

	"github.com/negrosgeo/riskmap/internal/domain"
	"github.com/negrosgeo/riskmap/internal/pkg/geo"
	"github.com/negrosgeo/riskmap/internal/pkg/store/xpgx"
)

type Pool = xpgx.Pool

// Store is the spatial hazard store consumed by the assessment pipeline.
type Store interface {
	// HazardLevelAt returns the susceptibility level of the first polygon
	// of the layer containing the point, or LevelNone when the point is
	// outside every polygon of that layer.
	HazardLevelAt(ctx context.Context, hazard domain.HazardType, point geo.Point) (domain.HazardLevel, error)

	// ListLayerFeatures returns every polygon of a layer with its
	// geometry rendered as GeoJSON.
	ListLayerFeatures(ctx context.Context, hazard domain.HazardType) ([]*LayerFeature, error)

	// ListDatasets returns the uploaded hazard datasets, newest first.
	ListDatasets(ctx context.Context) ([]*domain.Dataset, error)
}

type store struct {
	pool Pool
}

func NewStore(pool Pool) Store {
	return &store{pool: pool}
}
