package handler

import (
	"net/http"
	"strconv"

	"app/internal/usecase"

	"github.com/labstack/echo/v4"
)

// /api/products の公開API
type ProductHandler struct {
	uc *usecase.ProductUsecase
}

// DI
func NewProductHandler(uc *usecase.ProductUsecase) *ProductHandler {
	return &ProductHandler{uc: uc}
}

type CreateProductRequest struct {
	Name          string  `json:"name" validate:"required"`
	Price         int64   `json:"price" validate:"gte=0"`
	OriginalPrice *int64  `json:"original_price"`
	Rating        float64 `json:"rating"`
	Points        int64   `json:"points"`
	Category      string  `json:"category" validate:"required"`
	Image         string  `json:"image"`
	IsNew         bool    `json:"is_new"`
	Discount      *int64  `json:"discount"`
	DeliveryFree  bool    `json:"delivery_free"`
	Stock         int64   `json:"stock" validate:"gte=0"`
}

func (h *ProductHandler) RegisterRoutes(g *echo.Group) {
	g.GET("", h.list)
	g.GET("/:id", h.detail)
	g.POST("", h.create)
}

func (h *ProductHandler) list(c echo.Context) error {
	// page（default 1）
	page := 1
	if v := c.QueryParam("page"); v != "" {
		p, err := strconv.Atoi(v)
		if err != nil {
			return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid page"})
		}
		page = p
	}

	// limit（default 10）
	limit := 10
	if v := c.QueryParam("limit"); v != "" {
		l, err := strconv.Atoi(v)
		if err != nil {
			return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid limit"})
		}
		limit = l
	}

	out, err := h.uc.ListProducts(c.Request().Context(), usecase.ListProductsInput{
		Page:     page,
		Limit:    limit,
		Category: c.QueryParam("category"),
		Search:   c.QueryParam("search"),
	})
	if err != nil {
		return writeError(c, err)
	}

	return c.JSON(http.StatusOK, out)
}

func (h *ProductHandler) detail(c echo.Context) error {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid id"})
	}

	p, err := h.uc.GetProductDetail(c.Request().Context(), id)
	if err != nil {
		return writeError(c, err)
	}

	return c.JSON(http.StatusOK, p)
}

func (h *ProductHandler) create(c echo.Context) error {
	var req CreateProductRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}

	p, err := h.uc.CreateProduct(c.Request().Context(), usecase.CreateProductInput{
		Name:          req.Name,
		Price:         req.Price,
		OriginalPrice: req.OriginalPrice,
		Rating:        req.Rating,
		Points:        req.Points,
		Category:      req.Category,
		Image:         req.Image,
		IsNew:         req.IsNew,
		Discount:      req.Discount,
		DeliveryFree:  req.DeliveryFree,
		Stock:         req.Stock,
	})
	if err != nil {
		return writeError(c, err)
	}

	return c.JSON(http.StatusCreated, p)
}
