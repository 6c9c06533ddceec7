package models

import "time"

const (
	RoleClient = "client"
	RoleAdmin  = "admin"
)

type User struct {
	ID uint `gorm:"primaryKey" json:"id"`

	Name         string `gorm:"size:100;not null" json:"name"`
	Email        string `gorm:"size:100;uniqueIndex;not null" json:"email"`
	PasswordHash string `gorm:"size:255;not null" json:"-"`
	CPF          string `gorm:"size:11;uniqueIndex;not null" json:"cpf"`
	Phone        string `gorm:"size:20" json:"phone"`

	// nunca vem do cliente; registro público sempre cria "client"
	Role string `gorm:"size:20;default:'client'" json:"role"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
