package server

import (
	"app/internal/config"
	"app/internal/handler"
	appmw "app/internal/middleware"

	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
	"github.com/sirupsen/logrus"
)

// New はルーティング済みのechoを組み立てる。
func New(
	cfg config.Config,
	log logrus.FieldLogger,
	productH *handler.ProductHandler,
	cartH *handler.CartHandler,
	checkoutH *handler.CheckoutHandler,
) *echo.Echo {
	e := echo.New()
	e.HideBanner = true

	e.Validator = handler.NewRequestValidator()

	e.Use(echomw.Recover())
	e.Use(appmw.RequestLogger(log))

	// フロントからの呼び出しを許可（user-idヘッダ込み）
	e.Use(echomw.CORSWithConfig(echomw.CORSConfig{
		AllowOrigins: []string{cfg.FEURL},
		AllowHeaders: []string{echo.HeaderContentType, appmw.UserIDHeader},
	}))

	RegisterRoutes(e, productH, cartH, checkoutH)

	return e
}
