package store

import (
	"context"

	"github.com/negrosgeo/riskmap/internal/domain"
)

var datasetColumns = []string{"id", "name", "dataset_type", "file_name", "upload_date"}

func (s *store) ListDatasets(ctx context.Context) ([]*domain.Dataset, error) {
	query := builder().Select(datasetColumns...).
		From(tableDatasets).
		OrderBy("upload_date desc")

	rows, err := s.pool.Queryx(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var datasets []*domain.Dataset
	for rows.Next() {
		var d domain.Dataset
		if err := rows.Scan(&d.ID, &d.Name, &d.DatasetType, &d.FileName, &d.UploadDate); err != nil {
			return nil, err
		}
		datasets = append(datasets, &d)
	}

	return datasets, rows.Err()
}
