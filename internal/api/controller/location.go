package controller

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

func (c *Controller) LocationInfo(ctx echo.Context) error {
	point, err := bindPoint(ctx)
	if err != nil {
		return err
	}

	info := c.geocoder.Reverse(ctx.Request().Context(), point)

	return ctx.JSON(http.StatusOK, info)
}
