package controller

import (
	"context"

	"github.com/negrosgeo/riskmap/internal/domain"
	"github.com/negrosgeo/riskmap/internal/pkg/geo"
	"github.com/negrosgeo/riskmap/internal/pkg/store"
	"github.com/negrosgeo/riskmap/internal/service/assessment"
	"github.com/negrosgeo/riskmap/internal/service/facility"
)

// Geocoder resolves administrative boundary details for a point.
type Geocoder interface {
	Reverse(ctx context.Context, point geo.Point) *domain.LocationInfo
}

type Controller struct {
	assessments *assessment.Service
	facilities  *facility.Service
	geocoder    Geocoder
	store       store.Store
}

func NewController(
	assessments *assessment.Service,
	facilities *facility.Service,
	geocoder Geocoder,
	store store.Store,
) *Controller {
	return &Controller{
		assessments: assessments,
		facilities:  facilities,
		geocoder:    geocoder,
		store:       store,
	}
}
