package schedule

import (
	"context"
	"log"
	"time"

	"github.com/gabrielbarbershop/booking-api/internal/audit"
	domain "github.com/gabrielbarbershop/booking-api/internal/domain/schedule"
	"github.com/gabrielbarbershop/booking-api/internal/httperr"
	"github.com/gabrielbarbershop/booking-api/internal/models"
	"github.com/gabrielbarbershop/booking-api/internal/notify"
	"github.com/gabrielbarbershop/booking-api/internal/timezone"
)

type CreateAppointment struct {
	repo   domain.Repository
	hours  domain.BusinessHours
	audit  *audit.Dispatcher
	notify *notify.Service
	tz     string
}

func NewCreateAppointment(
	repo domain.Repository,
	hours domain.BusinessHours,
	audit *audit.Dispatcher,
	notifier *notify.Service,
	tz string,
) *CreateAppointment {
	return &CreateAppointment{
		repo:   repo,
		hours:  hours,
		audit:  audit,
		notify: notifier,
		tz:     tz,
	}
}

func (uc *CreateAppointment) Execute(
	ctx context.Context,
	in domain.CreateAppointmentInput,
) (*models.Appointment, error) {

	// --------------------------------------------------
	// Data / hora no timezone da barbearia
	// --------------------------------------------------
	slotTime, err := time.ParseInLocation(
		"2006-01-02 15:04",
		in.Date+" "+in.Time,
		timezone.Location(uc.tz),
	)
	if err != nil {
		return nil, httperr.ErrBusiness("invalid_date_or_time")
	}

	now := timezone.NowIn(uc.tz)
	if slotTime.Before(now) {
		return nil, httperr.ErrBusiness("slot_in_the_past")
	}

	// --------------------------------------------------
	// Cliente e serviço
	// --------------------------------------------------
	user, err := uc.repo.GetUser(ctx, in.UserID)
	if err != nil {
		return nil, httperr.ErrBusiness("user_not_found")
	}

	service, err := uc.repo.GetService(ctx, in.ServiceID)
	if err != nil {
		return nil, httperr.ErrBusiness("service_not_found")
	}
	if !service.Active {
		return nil, httperr.ErrBusiness("service_not_found")
	}

	// --------------------------------------------------
	// Horário tem que ser bookável: slot persistido habilitado ou, sem
	// overrides no dia, um horário do template
	// --------------------------------------------------
	if err := uc.assertBookable(ctx, slotTime); err != nil {
		return nil, err
	}

	// --------------------------------------------------
	// Conflito: releitura no momento do submit
	// --------------------------------------------------
	if err := uc.repo.AssertSlotFree(ctx, slotTime); err != nil {
		return nil, err
	}

	ap := &models.Appointment{
		UserID:    user.ID,
		ServiceID: service.ID,
		SlotTime:  slotTime,
		Status:    string(domain.InitialStatus()),
	}

	// o índice único parcial em appointments(slot_time) fecha a janela
	// entre a checagem acima e o insert; violação vira slot_conflict
	if err := uc.repo.CreateAppointment(ctx, ap); err != nil {
		return nil, err
	}

	// --------------------------------------------------
	// Flag do slot persistido: secundária, nunca desfaz a reserva
	// --------------------------------------------------
	if err := uc.repo.MarkSlotUnavailable(ctx, slotTime); err != nil {
		log.Printf("failed to mark slot unavailable at %s: %v", slotTime, err)
	}

	uc.audit.Dispatch(audit.Event{
		UserID:   &user.ID,
		Action:   "appointment_created",
		Entity:   "appointment",
		EntityID: &ap.ID,
	})

	uc.notify.BookingConfirmed(user, service, slotTime)

	return ap, nil
}

// assertBookable confere se o horário é oferecido pelo resolver: com
// overrides persistidos no dia vale o slot habilitado; sem overrides vale
// o template da grade. Dia fechado e horário fora da grade são rejeitados.
func (uc *CreateAppointment) assertBookable(
	ctx context.Context,
	slotTime time.Time,
) error {

	dayStart := time.Date(
		slotTime.Year(), slotTime.Month(), slotTime.Day(),
		0, 0, 0, 0,
		slotTime.Location(),
	)
	dayEnd := dayStart.Add(24 * time.Hour)

	stored, err := uc.repo.ListSlotsForDay(ctx, dayStart, dayEnd)
	if err != nil {
		return err
	}

	if len(stored) > 0 {
		for _, s := range stored {
			if s.Available && s.SlotTime.Equal(slotTime) {
				return nil
			}
		}
		return httperr.ErrBusiness("slot_unavailable")
	}

	template := uc.hours.Template(dayStart)
	if len(template) == 0 {
		return httperr.ErrBusiness("closed_day")
	}

	for _, t := range template {
		if t.Equal(slotTime) {
			return nil
		}
	}
	return httperr.ErrBusiness("slot_unavailable")
}
