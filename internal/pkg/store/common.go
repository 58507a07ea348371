package store

import (
	"errors"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/negrosgeo/riskmap/internal/pkg/constants"
)

const (
	tableDatasets     = "hazard_datasets"
	tableFlood        = "flood_susceptibility"
	tableLandslide    = "landslide_susceptibility"
	tableLiquefaction = "liquefaction_susceptibility"
)

var mapping = map[error]error{pgx.ErrNoRows: constants.ErrDBNotFound}

func wrapErr(err error) error {
	for k, v := range mapping {
		if errors.Is(err, k) {
			return v
		}
	}
	return err
}

// builder returns a squirrel statement builder with Postgres placeholders.
func builder() squirrel.StatementBuilderType {
	return squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
}
