package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"resourcemetrics/internal/domain"
	"resourcemetrics/internal/repository"
)

var ErrWidgetNotFound = errors.New("widget not found")

const defaultColor = "white"

type WidgetService struct {
	repo  Repository
	codec CodeCodec
	cache Cache
	now   func() time.Time
}

func NewWidgetService(repo Repository, codec CodeCodec, cache Cache) *WidgetService {
	return &WidgetService{
		repo:  repo,
		codec: codec,
		cache: cache,
		now:   time.Now,
	}
}

func (s *WidgetService) Create(ctx context.Context, req domain.CreateWidgetRequest) (domain.Widget, error) {
	widgets, err := s.CreateBatch(ctx, []domain.CreateWidgetRequest{req})
	if err != nil {
		return domain.Widget{}, err
	}
	return widgets[0], nil
}

func (s *WidgetService) CreateBatch(ctx context.Context, reqs []domain.CreateWidgetRequest) ([]domain.Widget, error) {
	if len(reqs) == 0 {
		return nil, nil
	}

	ids, err := s.repo.NextIDs(ctx, len(reqs))
	if err != nil {
		return nil, fmt.Errorf("failed to get next ids: %w", err)
	}

	createdAt := s.now().UTC()
	widgets := make([]domain.Widget, len(reqs))
	rows := make([]repository.WidgetRow, len(reqs))
	for i, req := range reqs {
		code, err := s.codec.Encode(ids[i])
		if err != nil {
			return nil, fmt.Errorf("failed to generate code: %w", err)
		}

		color := strings.ToLower(req.Color)
		if color == "" {
			color = defaultColor
		}

		widgets[i] = domain.Widget{ID: ids[i], Code: code, Name: req.Name, Color: color, CreatedAt: createdAt}
		rows[i] = repository.WidgetRow{ID: ids[i], Name: req.Name, Color: color, CreatedAt: createdAt}
	}

	if err := s.repo.CreateBatch(ctx, rows); err != nil {
		return nil, fmt.Errorf("failed to create widgets: %w", err)
	}

	for _, w := range widgets {
		s.cache.Set(w)
	}
	return widgets, nil
}

func (s *WidgetService) Get(ctx context.Context, code string) (domain.Widget, error) {
	if w, ok := s.cache.Get(code); ok {
		return w, nil
	}

	id, err := s.codec.Decode(code)
	if err != nil {
		return domain.Widget{}, ErrWidgetNotFound
	}

	row, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return domain.Widget{}, ErrWidgetNotFound
		}
		return domain.Widget{}, fmt.Errorf("failed to find widget: %w", err)
	}

	w := widgetFromRow(row, code)
	s.cache.Set(w)
	return w, nil
}

func (s *WidgetService) List(ctx context.Context, limit int) ([]domain.Widget, error) {
	rows, err := s.repo.List(ctx, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list widgets: %w", err)
	}

	widgets := make([]domain.Widget, len(rows))
	for i, row := range rows {
		code, err := s.codec.Encode(row.ID)
		if err != nil {
			return nil, fmt.Errorf("failed to generate code: %w", err)
		}
		widgets[i] = widgetFromRow(row, code)
	}
	return widgets, nil
}

func (s *WidgetService) Delete(ctx context.Context, code string) error {
	id, err := s.codec.Decode(code)
	if err != nil {
		return ErrWidgetNotFound
	}

	if err := s.repo.Delete(ctx, id); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return ErrWidgetNotFound
		}
		return fmt.Errorf("failed to delete widget: %w", err)
	}

	s.cache.Delete(code)
	return nil
}

func widgetFromRow(row repository.WidgetRow, code string) domain.Widget {
	return domain.Widget{
		ID:        row.ID,
		Code:      code,
		Name:      row.Name,
		Color:     row.Color,
		CreatedAt: row.CreatedAt,
	}
}
