package handler

//go:generate go tool mockery

import (
	"context"

	"resourcemetrics/internal/domain"
)

type WidgetService interface {
	Create(ctx context.Context, req domain.CreateWidgetRequest) (domain.Widget, error)
	CreateBatch(ctx context.Context, reqs []domain.CreateWidgetRequest) ([]domain.Widget, error)
	Get(ctx context.Context, code string) (domain.Widget, error)
	List(ctx context.Context, limit int) ([]domain.Widget, error)
	Delete(ctx context.Context, code string) error
}

type WidgetValidator interface {
	ValidateWidget(req domain.CreateWidgetRequest) error
	ValidateBatch(reqs []domain.CreateWidgetRequest) error
}
