package controller

import (
	"encoding/json"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/negrosgeo/riskmap/internal/domain"
)

type geoJSONFeature struct {
	Type       string          `json:"type"`
	Properties map[string]any  `json:"properties"`
	Geometry   json.RawMessage `json:"geometry"`
}

type geoJSONCollection struct {
	Type     string           `json:"type"`
	Features []geoJSONFeature `json:"features"`
}

func (c *Controller) FloodLayer(ctx echo.Context) error {
	return c.layerGeoJSON(ctx, domain.HazardFlood)
}

func (c *Controller) LandslideLayer(ctx echo.Context) error {
	return c.layerGeoJSON(ctx, domain.HazardLandslide)
}

func (c *Controller) LiquefactionLayer(ctx echo.Context) error {
	return c.layerGeoJSON(ctx, domain.HazardLiquefaction)
}

func (c *Controller) layerGeoJSON(ctx echo.Context, hazard domain.HazardType) error {
	records, err := c.store.ListLayerFeatures(ctx.Request().Context(), hazard)
	if err != nil {
		return err
	}

	features := make([]geoJSONFeature, 0, len(records))
	for _, r := range records {
		features = append(features, geoJSONFeature{
			Type: "Feature",
			Properties: map[string]any{
				"susceptibility": r.Susceptibility,
				"original_code":  r.OriginalCode,
				"shape_area":     r.ShapeArea,
				"dataset_id":     r.DatasetID,
			},
			Geometry: r.Geometry,
		})
	}

	return ctx.JSON(http.StatusOK, geoJSONCollection{
		Type:     "FeatureCollection",
		Features: features,
	})
}
