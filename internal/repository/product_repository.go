package repository

import (
	"app/internal/domain/model"
	"context"
	"errors"
)

var ErrNotFound = errors.New("not found")

// 一覧検索（カテゴリ絞り込み＋名前検索＋ページング）
type ProductListQuery struct {
	Page     int
	Limit    int
	Category string // "" か "all" なら絞り込みなし
	Search   string // 名前の部分一致（大文字小文字は無視）
}

// 商品の永続化（保存・取得）だけを約束。
type ProductRepository interface {
	List(ctx context.Context, q ProductListQuery) ([]model.Product, int64, error)
	FindByID(ctx context.Context, id int64) (model.Product, error)
	Create(ctx context.Context, p model.Product) (model.Product, error)
}
