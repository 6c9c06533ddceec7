package schedule

import "time"

type AvailabilityInput struct {
	Date time.Time
}

// Slot bookável retornado ao cliente. SlotID é nulo quando o horário veio
// do template e ainda não foi persistido pelo admin.
type Slot struct {
	SlotID *uint     `json:"slot_id"`
	Time   time.Time `json:"time"`
}

type CreateAppointmentInput struct {
	UserID    uint
	ServiceID uint

	Date string // YYYY-MM-DD
	Time string // HH:mm
}
