package handler

import (
	"net/http"

	"app/internal/middleware"
	"app/internal/usecase"

	"github.com/labstack/echo/v4"
)

// /api/checkout のHTTP
type CheckoutHandler struct {
	uc *usecase.CheckoutUsecase
}

// DI
func NewCheckoutHandler(uc *usecase.CheckoutUsecase) *CheckoutHandler {
	return &CheckoutHandler{uc: uc}
}

type CheckoutRequest struct {
	CustomerName  string `json:"customer_name" validate:"required"`
	Phone         string `json:"phone"`
	Address       string `json:"address" validate:"required"`
	PaymentMethod string `json:"payment_method" validate:"required,oneof=cash wave"`
}

func (h *CheckoutHandler) RegisterRoutes(g *echo.Group) {
	g.POST("", h.checkout)
}

func (h *CheckoutHandler) checkout(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "user id required"})
	}

	var req CheckoutRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}

	out, err := h.uc.Checkout(c.Request().Context(), userID, usecase.CheckoutInput{
		CustomerName:  req.CustomerName,
		Phone:         req.Phone,
		Address:       req.Address,
		PaymentMethod: req.PaymentMethod,
	})
	if err != nil {
		return writeError(c, err)
	}

	return c.JSON(http.StatusOK, out)
}
