package repository

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"

	domain "github.com/gabrielbarbershop/booking-api/internal/domain/schedule"
	"github.com/gabrielbarbershop/booking-api/internal/httperr"
	"github.com/gabrielbarbershop/booking-api/internal/models"
)

type ScheduleGormRepository struct {
	db *gorm.DB
}

func NewScheduleGormRepository(db *gorm.DB) *ScheduleGormRepository {
	return &ScheduleGormRepository{db: db}
}

// --------------------------------------------------
// User / Service
// --------------------------------------------------

func (r *ScheduleGormRepository) GetUser(
	ctx context.Context,
	id uint,
) (*models.User, error) {

	var user models.User
	if err := r.db.WithContext(ctx).First(&user, id).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *ScheduleGormRepository) GetService(
	ctx context.Context,
	id uint,
) (*models.Service, error) {

	var service models.Service
	if err := r.db.WithContext(ctx).First(&service, id).Error; err != nil {
		return nil, err
	}
	return &service, nil
}

// --------------------------------------------------
// Availability slots
// --------------------------------------------------

func (r *ScheduleGormRepository) ListSlotsForDay(
	ctx context.Context,
	start time.Time,
	end time.Time,
) ([]models.AvailabilitySlot, error) {

	var slots []models.AvailabilitySlot
	if err := r.db.WithContext(ctx).
		Where("slot_time >= ? AND slot_time < ?", start, end).
		Order("slot_time ASC").
		Find(&slots).Error; err != nil {
		return nil, err
	}

	// dia sem override não é erro: lista vazia manda o resolver pro template
	return slots, nil
}

func (r *ScheduleGormRepository) GetSlot(
	ctx context.Context,
	id uint,
) (*models.AvailabilitySlot, error) {

	var slot models.AvailabilitySlot
	if err := r.db.WithContext(ctx).First(&slot, id).Error; err != nil {
		return nil, err
	}
	return &slot, nil
}

func (r *ScheduleGormRepository) SaveSlot(
	ctx context.Context,
	slot *models.AvailabilitySlot,
) error {
	return r.db.WithContext(ctx).Save(slot).Error
}

func (r *ScheduleGormRepository) CreateSlots(
	ctx context.Context,
	slots []models.AvailabilitySlot,
) error {
	return r.db.WithContext(ctx).Create(&slots).Error
}

func (r *ScheduleGormRepository) MarkSlotUnavailable(
	ctx context.Context,
	slotTime time.Time,
) error {
	return r.db.WithContext(ctx).
		Model(&models.AvailabilitySlot{}).
		Where("slot_time = ?", slotTime).
		Update("available", false).Error
}

// --------------------------------------------------
// Appointment (create / conflict)
// --------------------------------------------------

func (r *ScheduleGormRepository) AssertSlotFree(
	ctx context.Context,
	slotTime time.Time,
) error {

	var count int64
	if err := r.db.WithContext(ctx).
		Model(&models.Appointment{}).
		Where(
			"slot_time = ? AND status <> ?",
			slotTime,
			string(domain.StatusCancelled),
		).
		Count(&count).Error; err != nil {
		return err
	}

	if count > 0 {
		return httperr.ErrBusiness("slot_conflict")
	}

	return nil
}

func (r *ScheduleGormRepository) CreateAppointment(
	ctx context.Context,
	ap *models.Appointment,
) error {

	err := r.db.WithContext(ctx).Create(ap).Error
	if err == nil {
		return nil
	}

	// índice único parcial em slot_time: duas reservas simultâneas para o
	// mesmo horário viram conflito em vez de double-booking
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == "23505" {
		return httperr.ErrBusiness("slot_conflict")
	}

	return err
}

// --------------------------------------------------
// Appointment (state change)
// --------------------------------------------------

func (r *ScheduleGormRepository) GetAppointment(
	ctx context.Context,
	appointmentID uint,
) (*models.Appointment, error) {

	var ap models.Appointment
	if err := r.db.WithContext(ctx).First(&ap, appointmentID).Error; err != nil {
		return nil, err
	}

	return &ap, nil
}

func (r *ScheduleGormRepository) UpdateAppointment(
	ctx context.Context,
	ap *models.Appointment,
) error {
	return r.db.WithContext(ctx).Save(ap).Error
}

// --------------------------------------------------
// Listings
// --------------------------------------------------

func (r *ScheduleGormRepository) ListActiveAppointmentsForDay(
	ctx context.Context,
	start time.Time,
	end time.Time,
) ([]models.Appointment, error) {

	var apps []models.Appointment
	if err := r.db.WithContext(ctx).
		Select("id", "slot_time", "status").
		Where(
			"status <> ? AND slot_time >= ? AND slot_time < ?",
			string(domain.StatusCancelled), start, end,
		).
		Order("slot_time ASC").
		Find(&apps).Error; err != nil {
		return nil, err
	}

	return apps, nil
}

func (r *ScheduleGormRepository) ListAppointmentsForPeriod(
	ctx context.Context,
	start time.Time,
	end time.Time,
) ([]models.Appointment, error) {

	var apps []models.Appointment

	err := r.db.WithContext(ctx).
		Preload("User").
		Preload("Service").
		Where(
			"slot_time >= ? AND slot_time < ?",
			start,
			end,
		).
		Order("slot_time ASC").
		Find(&apps).Error

	if err != nil {
		return nil, err
	}

	return apps, nil
}

func (r *ScheduleGormRepository) ListAppointmentsForUser(
	ctx context.Context,
	userID uint,
) ([]models.Appointment, error) {

	var apps []models.Appointment

	err := r.db.WithContext(ctx).
		Preload("User").
		Preload("Service").
		Where("user_id = ?", userID).
		Order("slot_time DESC").
		Find(&apps).Error

	if err != nil {
		return nil, err
	}

	return apps, nil
}

// Compile-time check
var _ domain.Repository = (*ScheduleGormRepository)(nil)
