package controller

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

func (c *Controller) ListDatasets(ctx echo.Context) error {
	datasets, err := c.store.ListDatasets(ctx.Request().Context())
	if err != nil {
		return err
	}

	return ctx.JSON(http.StatusOK, datasets)
}
