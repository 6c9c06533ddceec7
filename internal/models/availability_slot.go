package models

import "time"

// Override persistido de disponibilidade: quando o admin salva os horários
// de um dia, eles passam a valer no lugar do template gerado em memória.
type AvailabilitySlot struct {
	ID uint `gorm:"primaryKey" json:"id"`

	// horário local da barbearia, sem conversão de fuso
	SlotTime  time.Time `gorm:"uniqueIndex;not null" json:"slot_time"`
	Available bool      `gorm:"default:true" json:"available"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
