package models

import "time"

type Appointment struct {
	ID uint `gorm:"primaryKey" json:"id"`

	UserID uint `json:"user_id"`
	User   User `gorm:"constraint:OnUpdate:CASCADE,OnDelete:SET NULL;" json:"user"`

	ServiceID uint    `json:"service_id"`
	Service   Service `gorm:"constraint:OnUpdate:CASCADE,OnDelete:SET NULL;" json:"service"`

	// horário exato do slot reservado; o resolver de disponibilidade
	// casa agendamento e slot por igualdade deste timestamp
	SlotTime time.Time `gorm:"index;not null" json:"slot_time"`

	Status string `gorm:"size:20;default:'Pending'" json:"status"`

	CancelledAt *time.Time `json:"cancelled_at"`
	CompletedAt *time.Time `json:"completed_at"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
