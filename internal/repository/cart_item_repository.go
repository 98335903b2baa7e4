package repository

import (
	"context"

	"app/internal/domain/model"
)

type CartItemRepository interface {
	ListByCartID(ctx context.Context, cartID int64) ([]model.CartItem, error)
	// 同一商品は数量加算
	UpsertByCartAndProduct(ctx context.Context, cartID int64, productID int64, addQty int64, unitPriceSnapshot int64) error
	// 絶対値で設定（加算ではない）
	SetQuantity(ctx context.Context, cartID int64, productID int64, qty int64) error
	DeleteByCartAndProduct(ctx context.Context, cartID int64, productID int64) error
	FindByCartAndProduct(ctx context.Context, cartID int64, productID int64) (model.CartItem, error)
}
