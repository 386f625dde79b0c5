package model

import (
	"time"

	"github.com/shopspring/decimal"
)

type OrderStatus string

const (
	OrderStatusPending  OrderStatus = "PENDING"
	OrderStatusPaid     OrderStatus = "PAID"
	OrderStatusCanceled OrderStatus = "CANCELED"
)

// ゲスト注文はUserIDがnull
type Order struct {
	ID                int64           `gorm:"primaryKey;autoIncrement" json:"id"`
	UserID            *int64          `gorm:"index" json:"user_id,omitempty"`
	ShippingAddressID int64           `gorm:"not null" json:"shipping_address_id"`
	Status            OrderStatus     `gorm:"type:varchar(20);not null;index" json:"status"`
	TotalPrice        decimal.Decimal `gorm:"type:decimal(10,2);not null" json:"total_price"`
	Paid              bool            `gorm:"not null;default:false" json:"paid"`
	PaymentMethod     string          `gorm:"type:varchar(30);not null" json:"payment_method"`
	CreatedAt         time.Time       `gorm:"not null;autoCreateTime" json:"created_at"`
	UpdatedAt         time.Time       `gorm:"not null;autoUpdateTime" json:"updated_at"`
}
