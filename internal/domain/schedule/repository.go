package schedule

import (
	"context"
	"time"

	"github.com/gabrielbarbershop/booking-api/internal/models"
)

type Repository interface {
	// -------- User / Service --------
	GetUser(
		ctx context.Context,
		id uint,
	) (*models.User, error)

	GetService(
		ctx context.Context,
		id uint,
	) (*models.Service, error)

	// -------- Availability slots --------
	ListSlotsForDay(
		ctx context.Context,
		start time.Time,
		end time.Time,
	) ([]models.AvailabilitySlot, error)

	GetSlot(
		ctx context.Context,
		id uint,
	) (*models.AvailabilitySlot, error)

	SaveSlot(
		ctx context.Context,
		slot *models.AvailabilitySlot,
	) error

	CreateSlots(
		ctx context.Context,
		slots []models.AvailabilitySlot,
	) error

	// best effort: marca indisponível o slot persistido naquele horário,
	// se existir; ausência não é erro
	MarkSlotUnavailable(
		ctx context.Context,
		slotTime time.Time,
	) error

	// -------- Appointment (create / conflict) --------
	CreateAppointment(
		ctx context.Context,
		ap *models.Appointment,
	) error

	AssertSlotFree(
		ctx context.Context,
		slotTime time.Time,
	) error

	// -------- Appointment (state change) --------
	GetAppointment(
		ctx context.Context,
		appointmentID uint,
	) (*models.Appointment, error)

	UpdateAppointment(
		ctx context.Context,
		ap *models.Appointment,
	) error

	// -------- Listings --------
	ListActiveAppointmentsForDay(
		ctx context.Context,
		start time.Time,
		end time.Time,
	) ([]models.Appointment, error)

	ListAppointmentsForPeriod(
		ctx context.Context,
		start time.Time,
		end time.Time,
	) ([]models.Appointment, error)

	ListAppointmentsForUser(
		ctx context.Context,
		userID uint,
	) ([]models.Appointment, error)
}
