package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/negrosgeo/riskmap/internal/domain"
	"github.com/negrosgeo/riskmap/internal/pkg/constants"
	"github.com/negrosgeo/riskmap/internal/pkg/geo"
)

// layerTable maps a hazard type to its table and susceptibility column.
type layerTable struct {
	table  string
	column string
}

var layers = map[domain.HazardType]layerTable{
	domain.HazardFlood:        {table: tableFlood, column: "flood_susc"},
	domain.HazardLandslide:    {table: tableLandslide, column: "landslide_susc"},
	domain.HazardLiquefaction: {table: tableLiquefaction, column: "liquefaction_susc"},
}

// LayerFeature is one hazard polygon with its geometry as GeoJSON.
type LayerFeature struct {
	Susceptibility string
	OriginalCode   string
	ShapeArea      *float64
	DatasetID      string
	Geometry       json.RawMessage
}

func (s *store) HazardLevelAt(ctx context.Context, hazard domain.HazardType, point geo.Point) (domain.HazardLevel, error) {
	layer, ok := layers[hazard]
	if !ok {
		return domain.LevelNone, fmt.Errorf("unknown hazard layer: %s", hazard)
	}

	// ORDER BY id keeps overlapping-polygon results deterministic for a
	// fixed data snapshot.
	query := builder().Select(layer.column).
		From(layer.table).
		Where(squirrel.Expr(
			"ST_Contains(geometry, ST_SetSRID(ST_MakePoint(?, ?), 4326))",
			point.Lng, point.Lat,
		)).
		OrderBy("id").
		Limit(1)

	row, err := s.pool.QueryRowx(ctx, query)
	if err != nil {
		return domain.LevelNone, err
	}

	var level string
	if err := row.Scan(&level); err != nil {
		if errors.Is(wrapErr(err), constants.ErrDBNotFound) {
			// Outside every polygon of the layer: hazard not present.
			return domain.LevelNone, nil
		}
		return domain.LevelNone, err
	}

	return domain.HazardLevel(level), nil
}

func (s *store) ListLayerFeatures(ctx context.Context, hazard domain.HazardType) ([]*LayerFeature, error) {
	layer, ok := layers[hazard]
	if !ok {
		return nil, fmt.Errorf("unknown hazard layer: %s", hazard)
	}

	query := builder().Select(
		layer.column,
		"original_code",
		"shape_area",
		"dataset_id",
		"ST_AsGeoJSON(geometry)",
	).From(layer.table).OrderBy("id")

	rows, err := s.pool.Queryx(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var features []*LayerFeature
	for rows.Next() {
		var f LayerFeature
		if err := rows.Scan(&f.Susceptibility, &f.OriginalCode, &f.ShapeArea, &f.DatasetID, &f.Geometry); err != nil {
			return nil, err
		}
		features = append(features, &f)
	}

	return features, rows.Err()
}
