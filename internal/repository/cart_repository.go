package repository

import (
	"context"

	"app/internal/domain/model"
)

type CartRepository interface {
	// 無ければ作る（getは失敗しない契約）
	GetOrCreateByUserID(ctx context.Context, userID string) (model.Cart, error)
	FindByUserID(ctx context.Context, userID string) (model.Cart, error)
	Clear(ctx context.Context, cartID int64) error
}
