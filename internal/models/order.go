package models

import "time"

type Order struct {
	ID     uint   `gorm:"primaryKey" json:"id"`
	Number string `gorm:"size:36;uniqueIndex;not null" json:"number"`

	UserID uint `json:"user_id"`
	User   User `gorm:"constraint:OnUpdate:CASCADE,OnDelete:SET NULL;" json:"user"`

	TotalCents int64 `gorm:"not null" json:"total_cents"`

	Items []OrderItem `gorm:"constraint:OnDelete:CASCADE;" json:"items"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type OrderItem struct {
	ID      uint `gorm:"primaryKey" json:"id"`
	OrderID uint `gorm:"index" json:"order_id"`

	ProductID uint    `json:"product_id"`
	Product   Product `gorm:"constraint:OnUpdate:CASCADE,OnDelete:SET NULL;" json:"product"`

	Quantity int `gorm:"not null" json:"quantity"`

	// preço unitário congelado no momento do pedido
	UnitPriceCents int64 `gorm:"not null" json:"unit_price_cents"`
}
