package handler

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"resourcemetrics/internal/domain"
	"resourcemetrics/internal/resource"
	"resourcemetrics/internal/service"
	"resourcemetrics/internal/validation"
)

const (
	defaultListLimit = 100
	maxListLimit     = 1000
)

var (
	errInvalidBody   = map[string]string{"error": "invalid request body"}
	errInvalidLimit  = map[string]string{"error": "invalid limit"}
	errNameRequired  = map[string]string{"error": "name is required"}
	errNameTooLong   = map[string]string{"error": "name exceeds maximum length"}
	errInvalidColor  = map[string]string{"error": "color not allowed"}
	errBatchTooLarge = map[string]string{"error": "batch size exceeds maximum"}
	errBatchRequired = map[string]string{"error": "widgets is required"}
	respHealthOK     = map[string]string{"status": "ok"}
)

type Handler struct {
	widgets   WidgetService
	validator WidgetValidator
	logger    *slog.Logger
}

func New(widgets WidgetService, validator WidgetValidator, logger *slog.Logger) *Handler {
	return &Handler{
		widgets:   widgets,
		validator: validator,
		logger:    logger,
	}
}

// Resources declares the API. Health checks are timed but not counted;
// deletes are counted but not timed.
func (h *Handler) Resources() []*resource.Resource {
	return []*resource.Resource{
		{
			Name:    "health",
			Path:    "/api/v1/health",
			Metrics: resource.Metrics(resource.WithStatusCodeCounter(false)),
			Methods: []resource.Method{
				{Verb: http.MethodGet, Handler: h.Health},
			},
		},
		{
			Name: "widgets",
			Path: "/api/v1/widgets",
			Methods: []resource.Method{
				{Verb: http.MethodGet, Handler: h.List},
				{Verb: http.MethodPost, Handler: h.Create},
				{Verb: http.MethodPost, Path: "/batch", Handler: h.CreateBatch},
				{Verb: http.MethodGet, Path: "/:code", Handler: h.Get},
				{
					Verb:    http.MethodDelete,
					Path:    "/:code",
					Handler: h.Delete,
					Metrics: resource.Metrics(resource.WithTimer(false)),
				},
			},
		},
	}
}

func (h *Handler) Health(c echo.Context) error {
	return c.JSON(http.StatusOK, respHealthOK)
}

func (h *Handler) List(c echo.Context) error {
	limit := defaultListLimit
	if raw := c.QueryParam("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n <= 0 || n > maxListLimit {
			return c.JSON(http.StatusBadRequest, errInvalidLimit)
		}
		limit = n
	}

	widgets, err := h.widgets.List(c.Request().Context(), limit)
	if err != nil {
		h.logger.Error("failed to list widgets", slog.String("error", err.Error()))
		return fmt.Errorf("failed to list widgets: %w", err)
	}

	resp := domain.WidgetListResponse{Widgets: make([]domain.WidgetResponse, len(widgets))}
	for i, w := range widgets {
		resp.Widgets[i] = w.Response()
	}
	return c.JSON(http.StatusOK, resp)
}

func (h *Handler) Create(c echo.Context) error {
	var req domain.CreateWidgetRequest
	if err := c.Bind(&req); err != nil {
		h.logger.Error("failed to bind request", slog.String("error", err.Error()))
		return c.JSON(http.StatusBadRequest, errInvalidBody)
	}

	if err := h.validator.ValidateWidget(req); err != nil {
		return h.handleValidationError(c, err)
	}

	w, err := h.widgets.Create(c.Request().Context(), req)
	if err != nil {
		h.logger.Error("failed to create widget", slog.String("error", err.Error()))
		return fmt.Errorf("failed to create widget: %w", err)
	}

	return c.JSON(http.StatusCreated, w.Response())
}

func (h *Handler) CreateBatch(c echo.Context) error {
	var req domain.CreateWidgetBatchRequest
	if err := c.Bind(&req); err != nil {
		h.logger.Error("failed to bind request", slog.String("error", err.Error()))
		return c.JSON(http.StatusBadRequest, errInvalidBody)
	}

	if err := h.validator.ValidateBatch(req.Widgets); err != nil {
		return h.handleValidationError(c, err)
	}

	widgets, err := h.widgets.CreateBatch(c.Request().Context(), req.Widgets)
	if err != nil {
		h.logger.Error("failed to create widgets", slog.String("error", err.Error()))
		return fmt.Errorf("failed to create widgets: %w", err)
	}

	resp := domain.WidgetListResponse{Widgets: make([]domain.WidgetResponse, len(widgets))}
	for i, w := range widgets {
		resp.Widgets[i] = w.Response()
	}
	return c.JSON(http.StatusCreated, resp)
}

func (h *Handler) Get(c echo.Context) error {
	code := c.Param("code")

	w, err := h.widgets.Get(c.Request().Context(), code)
	if err != nil {
		if errors.Is(err, service.ErrWidgetNotFound) {
			return echo.NewHTTPError(http.StatusNotFound, "widget not found")
		}
		h.logger.Error("failed to get widget", slog.String("code", code), slog.String("error", err.Error()))
		return fmt.Errorf("failed to get widget: %w", err)
	}

	return c.JSON(http.StatusOK, w.Response())
}

func (h *Handler) Delete(c echo.Context) error {
	code := c.Param("code")

	if err := h.widgets.Delete(c.Request().Context(), code); err != nil {
		if errors.Is(err, service.ErrWidgetNotFound) {
			return echo.NewHTTPError(http.StatusNotFound, "widget not found")
		}
		h.logger.Error("failed to delete widget", slog.String("code", code), slog.String("error", err.Error()))
		return fmt.Errorf("failed to delete widget: %w", err)
	}

	return c.NoContent(http.StatusNoContent)
}

func (h *Handler) handleValidationError(c echo.Context, err error) error {
	switch {
	case errors.Is(err, validation.ErrEmptyName):
		return c.JSON(http.StatusBadRequest, errNameRequired)
	case errors.Is(err, validation.ErrNameTooLong):
		return c.JSON(http.StatusBadRequest, errNameTooLong)
	case errors.Is(err, validation.ErrInvalidColor):
		return c.JSON(http.StatusBadRequest, errInvalidColor)
	case errors.Is(err, validation.ErrBatchTooLarge):
		return c.JSON(http.StatusBadRequest, errBatchTooLarge)
	case errors.Is(err, validation.ErrEmptyBatch):
		return c.JSON(http.StatusBadRequest, errBatchRequired)
	default:
		var batchErr *validation.BatchValidationError
		if errors.As(err, &batchErr) {
			return c.JSON(http.StatusBadRequest, formatBatchErrors(batchErr))
		}
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "validation failed"})
	}
}

func formatBatchErrors(err *validation.BatchValidationError) map[string]any {
	errs := make([]map[string]any, len(err.Errors))
	for i, e := range err.Errors {
		errs[i] = map[string]any{
			"index": e.Index,
			"error": e.Err.Error(),
		}
	}
	return map[string]any{"errors": errs}
}
