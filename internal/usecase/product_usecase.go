package usecase

import (
	"context"
	"net/http"
	"strings"

	"app/internal/domain/model"
	repo "app/internal/repository"
)

type ProductUsecase struct {
	productRepo repo.ProductRepository
}

// DI
func NewProductUsecase(productRepo repo.ProductRepository) *ProductUsecase {
	return &ProductUsecase{productRepo: productRepo}
}

// GET /api/products の入力DTO
type ListProductsInput struct {
	Page     int
	Limit    int
	Category string
	Search   string
}

type ProductListOutput struct {
	Products    []model.Product `json:"products"`
	Total       int64           `json:"total"`
	TotalPages  int64           `json:"total_pages"`
	CurrentPage int             `json:"current_page"`
}

func (u *ProductUsecase) ListProducts(ctx context.Context, in ListProductsInput) (ProductListOutput, error) {
	if in.Page < 1 {
		return ProductListOutput{}, NewHTTPError(http.StatusBadRequest, "invalid page")
	}
	if in.Limit < 1 || in.Limit > 100 {
		return ProductListOutput{}, NewHTTPError(http.StatusBadRequest, "invalid limit")
	}
	if len(in.Search) > 100 {
		return ProductListOutput{}, NewHTTPError(http.StatusBadRequest, "search too long")
	}
	if in.Category != "" && in.Category != "all" && !model.ProductCategory(in.Category).Valid() {
		return ProductListOutput{}, NewHTTPError(http.StatusBadRequest, "invalid category")
	}

	items, total, err := u.productRepo.List(ctx, repo.ProductListQuery{
		Page:     in.Page,
		Limit:    in.Limit,
		Category: in.Category,
		Search:   strings.TrimSpace(in.Search),
	})
	if err != nil {
		return ProductListOutput{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}

	totalPages := total / int64(in.Limit)
	if total%int64(in.Limit) != 0 {
		totalPages++
	}

	return ProductListOutput{
		Products:    items,
		Total:       total,
		TotalPages:  totalPages,
		CurrentPage: in.Page,
	}, nil
}

func (u *ProductUsecase) GetProductDetail(ctx context.Context, productID int64) (model.Product, error) {
	if productID <= 0 {
		return model.Product{}, NewHTTPError(http.StatusBadRequest, "invalid product id")
	}

	p, err := u.productRepo.FindByID(ctx, productID)
	if err == repo.ErrNotFound {
		return model.Product{}, NewHTTPError(http.StatusNotFound, "product not found")
	}
	if err != nil {
		return model.Product{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}

	return p, nil
}

type CreateProductInput struct {
	Name          string
	Price         int64
	OriginalPrice *int64
	Rating        float64
	Points        int64
	Category      string
	Image         string
	IsNew         bool
	Discount      *int64
	DeliveryFree  bool
	Stock         int64
}

func (u *ProductUsecase) CreateProduct(ctx context.Context, in CreateProductInput) (model.Product, error) {
	if strings.TrimSpace(in.Name) == "" {
		return model.Product{}, NewHTTPError(http.StatusBadRequest, "name required")
	}
	if in.Price < 0 {
		return model.Product{}, NewHTTPError(http.StatusBadRequest, "price must be >= 0")
	}
	if in.Stock < 0 {
		return model.Product{}, NewHTTPError(http.StatusBadRequest, "stock must be >= 0")
	}
	if !model.ProductCategory(in.Category).Valid() {
		return model.Product{}, NewHTTPError(http.StatusBadRequest, "invalid category")
	}
	if in.Discount != nil && (*in.Discount < 0 || *in.Discount > 100) {
		return model.Product{}, NewHTTPError(http.StatusBadRequest, "invalid discount")
	}

	p, err := u.productRepo.Create(ctx, model.Product{
		Name:          strings.TrimSpace(in.Name),
		Price:         in.Price,
		OriginalPrice: in.OriginalPrice,
		Rating:        in.Rating,
		Points:        in.Points,
		Category:      model.ProductCategory(in.Category),
		Image:         in.Image,
		IsNew:         in.IsNew,
		Discount:      in.Discount,
		DeliveryFree:  in.DeliveryFree,
		Stock:         in.Stock,
	})
	if err != nil {
		return model.Product{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}
	return p, nil
}
