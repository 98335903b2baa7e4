package model

import "time"

// カートの明細。
// UnitPriceSnapshot（追加時点の価格）を必ず保存。カタログの価格変更は
// 既存明細に波及しない。
type CartItem struct {
	ID                int64     `gorm:"primaryKey;autoIncrement" json:"id"`
	CartID            int64     `gorm:"not null;index:idx_cart_product,unique" json:"cart_id"`
	ProductID         int64     `gorm:"not null;index:idx_cart_product,unique" json:"product_id"`
	Quantity          int64     `gorm:"not null" json:"quantity"`
	UnitPriceSnapshot int64     `gorm:"not null;column:unit_price_snapshot" json:"unit_price_snapshot"`
	CreatedAt         time.Time `gorm:"not null;autoCreateTime" json:"created_at"`
	UpdatedAt         time.Time `gorm:"not null;autoUpdateTime" json:"updated_at"`
}
