package model

import "time"

type ProductCategory string

const (
	CategoryMaillets    ProductCategory = "Maillets"
	CategoryAccessoires ProductCategory = "Accessoires"
	CategoryEnfant      ProductCategory = "Enfant"
)

// カテゴリは閉じた集合
func (c ProductCategory) Valid() bool {
	switch c {
	case CategoryMaillets, CategoryAccessoires, CategoryEnfant:
		return true
	}
	return false
}

// 価格はFCFA整数（小数なし）
type Product struct {
	ID            int64           `gorm:"primaryKey;autoIncrement" json:"id"`
	Name          string          `gorm:"type:varchar(255);not null" json:"name"`
	Price         int64           `gorm:"not null" json:"price"`
	OriginalPrice *int64          `json:"original_price,omitempty"`
	Rating        float64         `gorm:"not null;default:0" json:"rating"`
	Points        int64           `gorm:"not null;default:0" json:"points"`
	Category      ProductCategory `gorm:"type:varchar(20);not null;index" json:"category"`
	Image         string          `gorm:"type:text" json:"image"`
	IsNew         bool            `gorm:"not null;default:false" json:"is_new"`
	Discount      *int64          `json:"discount,omitempty"`
	DeliveryFree  bool            `gorm:"not null;default:false" json:"delivery_free"`
	Stock         int64           `gorm:"not null;default:0" json:"stock"`
	CreatedAt     time.Time       `gorm:"not null;autoCreateTime" json:"created_at"`
	UpdatedAt     time.Time       `gorm:"not null;autoUpdateTime" json:"updated_at"`
}
