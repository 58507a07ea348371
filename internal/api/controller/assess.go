package controller

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/negrosgeo/riskmap/internal/pkg/constants"
	"github.com/negrosgeo/riskmap/internal/pkg/geo"
)

type coordinatesRequest struct {
	Lat *float64 `query:"lat" validate:"required,gte=-90,lte=90"`
	Lng *float64 `query:"lng" validate:"required,gte=-180,lte=180"`
}

func bindPoint(ctx echo.Context) (geo.Point, error) {
	var req coordinatesRequest
	if err := ctx.Bind(&req); err != nil {
		return geo.Point{}, constants.ErrInvalidCoordinates
	}
	if err := ctx.Validate(&req); err != nil {
		return geo.Point{}, constants.ErrInvalidCoordinates
	}
	return geo.Point{Lat: *req.Lat, Lng: *req.Lng}, nil
}

func (c *Controller) Assess(ctx echo.Context) error {
	point, err := bindPoint(ctx)
	if err != nil {
		return err
	}

	resp, err := c.assessments.Assess(ctx.Request().Context(), point)
	if err != nil {
		return err
	}

	return ctx.JSON(http.StatusOK, resp)
}
