package validation

import (
	"strings"
	"unicode/utf8"

	"resourcemetrics/internal/domain"
)

var allowedColors = map[string]bool{
	"red":    true,
	"green":  true,
	"blue":   true,
	"yellow": true,
	"black":  true,
	"white":  true,
}

type WidgetValidator struct {
	maxNameLength int
	maxBatchSize  int
}

func NewWidgetValidator(maxNameLength, maxBatchSize int) *WidgetValidator {
	return &WidgetValidator{
		maxNameLength: maxNameLength,
		maxBatchSize:  maxBatchSize,
	}
}

func (v *WidgetValidator) ValidateWidget(req domain.CreateWidgetRequest) error {
	if strings.TrimSpace(req.Name) == "" {
		return ErrEmptyName
	}

	if utf8.RuneCountInString(req.Name) > v.maxNameLength {
		return ErrNameTooLong
	}

	// empty color means the default
	if req.Color != "" && !allowedColors[strings.ToLower(req.Color)] {
		return ErrInvalidColor
	}

	return nil
}

func (v *WidgetValidator) ValidateBatch(reqs []domain.CreateWidgetRequest) error {
	if len(reqs) == 0 {
		return ErrEmptyBatch
	}

	if len(reqs) > v.maxBatchSize {
		return ErrBatchTooLarge
	}

	var batchErrors []IndexedError
	for i, req := range reqs {
		if err := v.ValidateWidget(req); err != nil {
			batchErrors = append(batchErrors, IndexedError{Index: i, Err: err})
		}
	}

	if len(batchErrors) > 0 {
		return &BatchValidationError{Errors: batchErrors}
	}

	return nil
}
