package etl

import (
	"context"

	"github.com/BartekS5/tabconv/pkg/models"
)

type Extractor interface {
	Extract(ctx context.Context) (*models.Table, error)
}

type Loader interface {
	Load(ctx context.Context, table *models.Table) error
}
