package domain

import "time"

type Widget struct {
	ID        uint64
	Code      string
	Name      string
	Color     string
	CreatedAt time.Time
}

type CreateWidgetRequest struct {
	Name  string `json:"name"`
	Color string `json:"color"`
}

type CreateWidgetBatchRequest struct {
	Widgets []CreateWidgetRequest `json:"widgets"`
}

type WidgetResponse struct {
	Code      string    `json:"code"`
	Name      string    `json:"name"`
	Color     string    `json:"color"`
	CreatedAt time.Time `json:"created_at"`
}

type WidgetListResponse struct {
	Widgets []WidgetResponse `json:"widgets"`
}

func (w Widget) Response() WidgetResponse {
	return WidgetResponse{
		Code:      w.Code,
		Name:      w.Name,
		Color:     w.Color,
		CreatedAt: w.CreatedAt,
	}
}
