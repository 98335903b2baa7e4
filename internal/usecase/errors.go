package usecase

import (
	"errors"
	"fmt"
)

type HTTPError struct {
	Status  int
	Message string
}

func (e *HTTPError) Error() string {
	return fmt.Sprintf("%d: %s", e.Status, e.Message)
}

func NewHTTPError(status int, message string) error {
	return &HTTPError{
		Status:  status,
		Message: message,
	}
}

func AsHTTPError(err error) (*HTTPError, bool) {
	var he *HTTPError
	ok := errors.As(err, &he)
	return he, ok
}

// 在庫不足。表示用に残数を持ち回る。
type InsufficientStockError struct {
	Available int64
}

func (e *InsufficientStockError) Error() string {
	return fmt.Sprintf("insufficient stock: available %d", e.Available)
}

func NewInsufficientStockError(available int64) error {
	return &InsufficientStockError{Available: available}
}

func AsInsufficientStock(err error) (*InsufficientStockError, bool) {
	var se *InsufficientStockError
	ok := errors.As(err, &se)
	return se, ok
}
