package models

import "time"

// Produto da lojinha (pomada, shampoo...). Preço em centavos.
type Product struct {
	ID uint `gorm:"primaryKey" json:"id"`

	Name        string `gorm:"size:100;not null" json:"name"`
	Description string `gorm:"size:255" json:"description"`
	PriceCents  int64  `gorm:"not null" json:"price_cents"`
	Stock       int    `gorm:"not null;default:0" json:"stock"`
	ImageKey    string `gorm:"size:255" json:"image_key"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
