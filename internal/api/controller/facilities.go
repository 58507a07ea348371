package controller

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"
	"github.com/negrosgeo/riskmap/internal/pkg/constants"
)

const (
	defaultRadius = 3000
	minRadius     = 100
	maxRadius     = 10000
)

func (c *Controller) NearbyFacilities(ctx echo.Context) error {
	point, err := bindPoint(ctx)
	if err != nil {
		return err
	}

	radius := defaultRadius
	if raw := ctx.QueryParam("radius"); raw != "" {
		radius, err = strconv.Atoi(raw)
		if err != nil || radius < minRadius || radius > maxRadius {
			return constants.ErrInvalidRadius
		}
	}

	resp := c.facilities.NearbyFacilities(ctx.Request().Context(), point, radius)

	return ctx.JSON(http.StatusOK, resp)
}
