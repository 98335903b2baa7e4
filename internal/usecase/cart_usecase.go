package usecase

import (
	repo "app/internal/repository"
	"context"
	"net/http"
)

// CartUsecase は /api/cart の業務ロジックです。
// カートは匿名ユーザーID（opaque文字列）1つにつき1つ。初回アクセスで作る。
type CartUsecase struct {
	cartRepo     repo.CartRepository
	cartItemRepo repo.CartItemRepository
	productRepo  repo.ProductRepository
}

func NewCartUsecase(
	cartRepo repo.CartRepository,
	cartItemRepo repo.CartItemRepository,
	productRepo repo.ProductRepository,
) *CartUsecase {
	return &CartUsecase{
		cartRepo:     cartRepo,
		cartItemRepo: cartItemRepo,
		productRepo:  productRepo,
	}
}

// price は unit_price_snapshot（追加時点の価格）を返す。
type CartItemResponse struct {
	ProductID int64  `json:"product_id"`
	Name      string `json:"name"`
	Image     string `json:"image"`
	Price     int64  `json:"price"`
	Quantity  int64  `json:"quantity"`
}

type CartResponse struct {
	Items []CartItemResponse `json:"items"`
	Total int64              `json:"total"`
}

type AddCartInput struct {
	ProductID int64
	Quantity  int64
}

type UpdateCartItemInput struct {
	ProductID int64
	Quantity  int64
}

// GetCart はカート取得（無ければ空のカートを作って返す。失敗しない契約）。
func (u *CartUsecase) GetCart(ctx context.Context, userID string) (CartResponse, error) {
	if userID == "" {
		return CartResponse{}, NewHTTPError(http.StatusBadRequest, "user id required")
	}

	cart, err := u.cartRepo.GetOrCreateByUserID(ctx, userID)
	if err != nil {
		return CartResponse{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}

	return u.buildCartResponse(ctx, cart.ID)
}

// AddToCart はカートに追加（同一商品は数量加算）。
// 在庫チェックは追加要求量に対して行う（この設計では在庫は減算されない）。
func (u *CartUsecase) AddToCart(ctx context.Context, userID string, in AddCartInput) (CartResponse, error) {
	if userID == "" {
		return CartResponse{}, NewHTTPError(http.StatusBadRequest, "user id required")
	}
	if in.ProductID <= 0 {
		return CartResponse{}, NewHTTPError(http.StatusBadRequest, "invalid product_id")
	}
	if in.Quantity < 1 {
		return CartResponse{}, NewHTTPError(http.StatusBadRequest, "invalid quantity")
	}

	cart, err := u.cartRepo.GetOrCreateByUserID(ctx, userID)
	if err != nil {
		return CartResponse{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}

	// 商品チェック
	p, err := u.productRepo.FindByID(ctx, in.ProductID)
	if err == repo.ErrNotFound {
		return CartResponse{}, NewHTTPError(http.StatusNotFound, "product not found")
	}
	if err != nil {
		return CartResponse{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}

	if in.Quantity > p.Stock {
		return CartResponse{}, NewInsufficientStockError(p.Stock)
	}

	// Upsert（同一商品は加算）
	// unit_price_snapshot は「追加時点の価格」を渡す
	if err := u.cartItemRepo.UpsertByCartAndProduct(ctx, cart.ID, in.ProductID, in.Quantity, p.Price); err != nil {
		return CartResponse{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}

	return u.buildCartResponse(ctx, cart.ID)
}

// 数量の絶対値変更。0なら明細を削除する（削除パスはこれとRemoveItemのみ）。
func (u *CartUsecase) UpdateQuantity(ctx context.Context, userID string, in UpdateCartItemInput) (CartResponse, error) {
	if userID == "" {
		return CartResponse{}, NewHTTPError(http.StatusBadRequest, "user id required")
	}
	if in.ProductID <= 0 {
		return CartResponse{}, NewHTTPError(http.StatusBadRequest, "invalid product_id")
	}
	if in.Quantity < 0 {
		return CartResponse{}, NewHTTPError(http.StatusBadRequest, "invalid quantity")
	}

	cart, err := u.cartRepo.GetOrCreateByUserID(ctx, userID)
	if err != nil {
		return CartResponse{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}

	// 明細の存在チェック
	_, err = u.cartItemRepo.FindByCartAndProduct(ctx, cart.ID, in.ProductID)
	if err == repo.ErrNotFound {
		return CartResponse{}, NewHTTPError(http.StatusNotFound, "item not found")
	}
	if err != nil {
		return CartResponse{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}

	if in.Quantity == 0 {
		if err := u.cartItemRepo.DeleteByCartAndProduct(ctx, cart.ID, in.ProductID); err != nil && err != repo.ErrNotFound {
			return CartResponse{}, NewHTTPError(http.StatusInternalServerError, "db error")
		}
		return u.buildCartResponse(ctx, cart.ID)
	}

	//在庫の再チェック
	p, err := u.productRepo.FindByID(ctx, in.ProductID)
	if err == repo.ErrNotFound {
		return CartResponse{}, NewHTTPError(http.StatusNotFound, "product not found")
	}
	if err != nil {
		return CartResponse{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}
	if in.Quantity > p.Stock {
		return CartResponse{}, NewInsufficientStockError(p.Stock)
	}

	if err := u.cartItemRepo.SetQuantity(ctx, cart.ID, in.ProductID, in.Quantity); err != nil {
		if err == repo.ErrNotFound {
			return CartResponse{}, NewHTTPError(http.StatusNotFound, "item not found")
		}
		return CartResponse{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}

	return u.buildCartResponse(ctx, cart.ID)
}

// 明細削除。存在しなければ404（冪等ではなく厳格側に倒す）。
func (u *CartUsecase) RemoveItem(ctx context.Context, userID string, productID int64) (CartResponse, error) {
	if userID == "" {
		return CartResponse{}, NewHTTPError(http.StatusBadRequest, "user id required")
	}
	if productID <= 0 {
		return CartResponse{}, NewHTTPError(http.StatusBadRequest, "invalid product_id")
	}

	cart, err := u.cartRepo.GetOrCreateByUserID(ctx, userID)
	if err != nil {
		return CartResponse{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}

	if err := u.cartItemRepo.DeleteByCartAndProduct(ctx, cart.ID, productID); err != nil {
		if err == repo.ErrNotFound {
			return CartResponse{}, NewHTTPError(http.StatusNotFound, "item not found")
		}
		return CartResponse{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}

	return u.buildCartResponse(ctx, cart.ID)
}

// 全明細を無条件で削除。カートが無ければ作って空を返す（失敗しない契約）。
func (u *CartUsecase) Clear(ctx context.Context, userID string) (CartResponse, error) {
	if userID == "" {
		return CartResponse{}, NewHTTPError(http.StatusBadRequest, "user id required")
	}

	cart, err := u.cartRepo.GetOrCreateByUserID(ctx, userID)
	if err != nil {
		return CartResponse{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}

	if err := u.cartRepo.Clear(ctx, cart.ID); err != nil && err != repo.ErrNotFound {
		return CartResponse{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}

	return u.buildCartResponse(ctx, cart.ID)
}

// cartIDの明細をまとめてCartResponseを作る。
// totalは毎回明細からの畳み込みで計算し、差分更新はしない。
func (u *CartUsecase) buildCartResponse(ctx context.Context, cartID int64) (CartResponse, error) {
	items, err := u.cartItemRepo.ListByCartID(ctx, cartID)
	if err != nil {
		return CartResponse{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}

	respItems := make([]CartItemResponse, 0, len(items))
	var total int64 = 0

	for _, it := range items {
		name := ""
		image := ""
		// 商品名は表示用。消えていても明細と合計は維持する。
		if p, err := u.productRepo.FindByID(ctx, it.ProductID); err == nil {
			name = p.Name
			image = p.Image
		}

		respItems = append(respItems, CartItemResponse{
			ProductID: it.ProductID,
			Name:      name,
			Image:     image,
			Price:     it.UnitPriceSnapshot,
			Quantity:  it.Quantity,
		})

		total += it.UnitPriceSnapshot * it.Quantity
	}

	return CartResponse{Items: respItems, Total: total}, nil
}
