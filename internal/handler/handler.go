package handler

import (
	"net/http"

	"app/internal/usecase"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
)

type ErrorResponse struct {
	Error     string `json:"error"`
	Available *int64 `json:"available,omitempty"`
}

// usecaseのエラーをJSONへ変換する。
// 在庫不足は残数付きで返す（表示で使う）。
func writeError(c echo.Context, err error) error {
	if err == nil {
		return nil
	}
	if se, ok := usecase.AsInsufficientStock(err); ok {
		avail := se.Available
		return c.JSON(http.StatusBadRequest, ErrorResponse{
			Error:     "insufficient stock",
			Available: &avail,
		})
	}
	if he, ok := usecase.AsHTTPError(err); ok {
		return c.JSON(he.Status, ErrorResponse{Error: he.Message})
	}

	//500
	return c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "internal error"})
}

// echoのValidatorとしてgo-playground/validatorを挟む。
type RequestValidator struct {
	v *validator.Validate
}

func NewRequestValidator() *RequestValidator {
	return &RequestValidator{v: validator.New()}
}

func (rv *RequestValidator) Validate(i interface{}) error {
	if err := rv.v.Struct(i); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid body")
	}
	return nil
}
