package repository

import (
	"errors"
	"time"
)

var ErrNotFound = errors.New("widget not found")

type WidgetRow struct {
	ID        uint64    `db:"id"`
	Name      string    `db:"name"`
	Color     string    `db:"color"`
	CreatedAt time.Time `db:"created_at"`
}
