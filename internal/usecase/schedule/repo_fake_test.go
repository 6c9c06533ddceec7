package schedule

import (
	"context"
	"errors"
	"time"

	domain "github.com/gabrielbarbershop/booking-api/internal/domain/schedule"
	"github.com/gabrielbarbershop/booking-api/internal/httperr"
	"github.com/gabrielbarbershop/booking-api/internal/models"
)

// fakeRepo implementa domain.Repository em memória, com a mesma semântica
// do repositório gorm: AssertSlotFree e CreateAppointment só enxergam
// agendamentos não cancelados, e CreateAppointment rejeita horário ocupado
// do mesmo jeito que o índice único parcial faria.
type fakeRepo struct {
	users    map[uint]*models.User
	services map[uint]*models.Service

	slots        []models.AvailabilitySlot
	appointments []models.Appointment

	nextSlotID uint
	nextApID   uint

	marked     []time.Time
	failOnMark error
}

func newFakeRepo() *fakeRepo {
	return &fakeRepo{
		users:    map[uint]*models.User{},
		services: map[uint]*models.Service{},
	}
}

var errNotFound = errors.New("record not found")

func (f *fakeRepo) GetUser(_ context.Context, id uint) (*models.User, error) {
	if u, ok := f.users[id]; ok {
		return u, nil
	}
	return nil, errNotFound
}

func (f *fakeRepo) GetService(_ context.Context, id uint) (*models.Service, error) {
	if s, ok := f.services[id]; ok {
		return s, nil
	}
	return nil, errNotFound
}

func (f *fakeRepo) ListSlotsForDay(_ context.Context, start, end time.Time) ([]models.AvailabilitySlot, error) {
	var out []models.AvailabilitySlot
	for _, s := range f.slots {
		if !s.SlotTime.Before(start) && s.SlotTime.Before(end) {
			out = append(out, s)
		}
	}
	return out, nil
}

func (f *fakeRepo) GetSlot(_ context.Context, id uint) (*models.AvailabilitySlot, error) {
	for i := range f.slots {
		if f.slots[i].ID == id {
			s := f.slots[i]
			return &s, nil
		}
	}
	return nil, errNotFound
}

func (f *fakeRepo) SaveSlot(_ context.Context, slot *models.AvailabilitySlot) error {
	for i := range f.slots {
		if f.slots[i].ID == slot.ID {
			f.slots[i] = *slot
			return nil
		}
	}
	return errNotFound
}

func (f *fakeRepo) CreateSlots(_ context.Context, slots []models.AvailabilitySlot) error {
	for _, s := range slots {
		f.nextSlotID++
		s.ID = f.nextSlotID
		f.slots = append(f.slots, s)
	}
	return nil
}

func (f *fakeRepo) MarkSlotUnavailable(_ context.Context, slotTime time.Time) error {
	if f.failOnMark != nil {
		return f.failOnMark
	}
	f.marked = append(f.marked, slotTime)
	for i := range f.slots {
		if f.slots[i].SlotTime.Equal(slotTime) {
			f.slots[i].Available = false
		}
	}
	return nil
}

func (f *fakeRepo) activeAt(slotTime time.Time) bool {
	for _, ap := range f.appointments {
		if ap.SlotTime.Equal(slotTime) && ap.Status != string(domain.StatusCancelled) {
			return true
		}
	}
	return false
}

func (f *fakeRepo) CreateAppointment(_ context.Context, ap *models.Appointment) error {
	if f.activeAt(ap.SlotTime) {
		return httperr.ErrBusiness("slot_conflict")
	}
	f.nextApID++
	ap.ID = f.nextApID
	f.appointments = append(f.appointments, *ap)
	return nil
}

func (f *fakeRepo) AssertSlotFree(_ context.Context, slotTime time.Time) error {
	if f.activeAt(slotTime) {
		return httperr.ErrBusiness("slot_conflict")
	}
	return nil
}

func (f *fakeRepo) GetAppointment(_ context.Context, id uint) (*models.Appointment, error) {
	for i := range f.appointments {
		if f.appointments[i].ID == id {
			ap := f.appointments[i]
			return &ap, nil
		}
	}
	return nil, errNotFound
}

func (f *fakeRepo) UpdateAppointment(_ context.Context, ap *models.Appointment) error {
	for i := range f.appointments {
		if f.appointments[i].ID == ap.ID {
			f.appointments[i] = *ap
			return nil
		}
	}
	return errNotFound
}

func (f *fakeRepo) ListActiveAppointmentsForDay(_ context.Context, start, end time.Time) ([]models.Appointment, error) {
	var out []models.Appointment
	for _, ap := range f.appointments {
		if ap.Status == string(domain.StatusCancelled) {
			continue
		}
		if !ap.SlotTime.Before(start) && ap.SlotTime.Before(end) {
			out = append(out, ap)
		}
	}
	return out, nil
}

func (f *fakeRepo) ListAppointmentsForPeriod(_ context.Context, start, end time.Time) ([]models.Appointment, error) {
	var out []models.Appointment
	for _, ap := range f.appointments {
		if !ap.SlotTime.Before(start) && ap.SlotTime.Before(end) {
			out = append(out, ap)
		}
	}
	return out, nil
}

func (f *fakeRepo) ListAppointmentsForUser(_ context.Context, userID uint) ([]models.Appointment, error) {
	var out []models.Appointment
	for _, ap := range f.appointments {
		if ap.UserID == userID {
			out = append(out, ap)
		}
	}
	return out, nil
}

var _ domain.Repository = (*fakeRepo)(nil)
