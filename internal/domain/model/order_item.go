package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// 注文明細
// 追加時点の価格とタイトルを必ず保存。
type OrderItem struct {
	ID                int64           `gorm:"primaryKey;autoIncrement" json:"id"`
	OrderID           int64           `gorm:"not null;index;constraint:OnDelete:CASCADE" json:"order_id"`
	ProductID         int64           `gorm:"not null;index" json:"product_id"`
	TitleSnapshot     string          `gorm:"type:varchar(200);not null" json:"title_snapshot"`
	UnitPriceSnapshot decimal.Decimal `gorm:"type:decimal(10,2);not null;column:unit_price_snapshot" json:"unit_price_snapshot"`
	Quantity          int64           `gorm:"not null" json:"quantity"`
	UserID            *int64          `gorm:"index" json:"user_id,omitempty"`
	CreatedAt         time.Time       `gorm:"not null;autoCreateTime" json:"created_at"`
}
