package model

import "time"

// 配送先住所
// 注文からは参照されるだけ（注文削除で消えない）
type ShippingAddress struct {
	ID     int64  `gorm:"primaryKey;autoIncrement" json:"id"`
	UserID *int64 `gorm:"index" json:"user_id,omitempty"`

	FullName string `gorm:"type:varchar(255);not null" json:"full_name"`
	Email    string `gorm:"type:varchar(255);not null" json:"email"`

	StreetAddress    string `gorm:"type:varchar(255);not null" json:"street_address"`
	ApartmentAddress string `gorm:"type:varchar(255)" json:"apartment_address"`
	City             string `gorm:"type:varchar(255);not null" json:"city"`
	Country          string `gorm:"type:varchar(100);not null" json:"country"`
	Zip              string `gorm:"type:varchar(20);not null" json:"zip"`

	CreatedAt time.Time `gorm:"not null;autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"not null;autoUpdateTime" json:"updated_at"`
}
