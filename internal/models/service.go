package models

import "time"

// Serviço de barbearia (corte, barba...). Preço em centavos.
type Service struct {
	ID uint `gorm:"primaryKey" json:"id"`

	Name        string `gorm:"size:100;not null" json:"name"`
	PriceCents  int64  `gorm:"not null" json:"price_cents"`
	DurationMin int    `json:"duration_min"`
	Active      bool   `gorm:"default:true" json:"active"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
