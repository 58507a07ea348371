package api

import (
	"context"
	"errors"
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/negrosgeo/riskmap/internal/api/controller"
	"github.com/negrosgeo/riskmap/internal/pkg/constants"
	"github.com/negrosgeo/riskmap/internal/pkg/logger"
	"github.com/spf13/viper"
)

type APIService struct {
	router *echo.Echo
}

// Serve blocks until the listener closes. ErrServerClosed is the normal
// Shutdown outcome, not a failure.
func (svc *APIService) Serve(addr string) {
	if err := svc.router.Start(addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
		logger.Fatal(context.Background(), err)
	}
}

func (svc *APIService) Shutdown(ctx context.Context) error {
	return svc.router.Shutdown(ctx)
}

// Handler exposes the router for httptest-based tests.
func (svc *APIService) Handler() *echo.Echo {
	return svc.router
}

func NewAPIService(cntrl *controller.Controller) *APIService {
	svc := &APIService{router: echo.New()}

	svc.router.HideBanner = true
	svc.router.JSONSerializer = NewSonicSerializer()
	svc.router.Validator = NewValidator()
	svc.router.Binder = NewBinder()
	svc.router.HTTPErrorHandler = httpErrorHandler

	svc.router.Use(middleware.Logger())
	svc.router.Use(middleware.Recover())
	svc.router.Use(middleware.RequestIDWithConfig(middleware.RequestIDConfig{
		Generator: uuid.NewString,
	}))
	svc.router.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins: viper.GetStringSlice(constants.ViperCORSOrigins),
		AllowMethods: []string{echo.GET},
		AllowHeaders: []string{"Content-Type"},
	}))

	api := svc.router.Group("/api/v1")

	api.GET("/assess", cntrl.Assess)
	api.GET("/facilities", cntrl.NearbyFacilities)
	api.GET("/location", cntrl.LocationInfo)
	api.GET("/datasets", cntrl.ListDatasets)

	hazards := api.Group("/hazards")
	hazards.GET("/flood", cntrl.FloodLayer)
	hazards.GET("/landslide", cntrl.LandslideLayer)
	hazards.GET("/liquefaction", cntrl.LiquefactionLayer)

	return svc
}
