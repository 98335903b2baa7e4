package server

import (
	"net/http"

	"app/internal/handler"
	appmw "app/internal/middleware"

	"github.com/labstack/echo/v4"
)

func RegisterRoutes(
	e *echo.Echo,
	productH *handler.ProductHandler,
	cartH *handler.CartHandler,
	checkoutH *handler.CheckoutHandler,
) {
	e.GET("/health", func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
	})

	productH.RegisterRoutes(e.Group("/api/products"))

	// カートと注文は匿名IDで紐づく
	cartG := e.Group("/api/cart")
	cartG.Use(appmw.SessionID())
	cartH.RegisterRoutes(cartG)

	checkoutG := e.Group("/api/checkout")
	checkoutG.Use(appmw.SessionID())
	checkoutH.RegisterRoutes(checkoutG)
}
