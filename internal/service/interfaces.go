package service

//go:generate go tool mockery

import (
	"context"

	"resourcemetrics/internal/domain"
	"resourcemetrics/internal/repository"
)

type Repository interface {
	NextIDs(ctx context.Context, count int) ([]uint64, error)
	CreateBatch(ctx context.Context, rows []repository.WidgetRow) error
	FindByID(ctx context.Context, id uint64) (repository.WidgetRow, error)
	List(ctx context.Context, limit int) ([]repository.WidgetRow, error)
	Delete(ctx context.Context, id uint64) error
}

type Cache interface {
	Get(code string) (domain.Widget, bool)
	Set(w domain.Widget)
	Delete(code string)
}

type CodeCodec interface {
	Encode(id uint64) (string, error)
	Decode(code string) (uint64, error)
}
