package schedule

import (
	"context"

	"github.com/gabrielbarbershop/booking-api/internal/audit"
	domain "github.com/gabrielbarbershop/booking-api/internal/domain/schedule"
	"github.com/gabrielbarbershop/booking-api/internal/httperr"
	"github.com/gabrielbarbershop/booking-api/internal/models"
	"github.com/gabrielbarbershop/booking-api/internal/timezone"
)

type CancelAppointment struct {
	repo  domain.Repository
	audit *audit.Dispatcher
	tz    string
}

func NewCancelAppointment(
	repo domain.Repository,
	audit *audit.Dispatcher,
	tz string,
) *CancelAppointment {
	return &CancelAppointment{
		repo:  repo,
		audit: audit,
		tz:    tz,
	}
}

// Execute cancela um agendamento Pending. Com requesterID > 0 o agendamento
// precisa pertencer ao solicitante (cliente cancelando o próprio horário);
// zero indica ação administrativa.
func (uc *CancelAppointment) Execute(
	ctx context.Context,
	appointmentID uint,
	requesterID uint,
) (*models.Appointment, error) {

	ap, err := uc.repo.GetAppointment(ctx, appointmentID)
	if err != nil {
		return nil, httperr.ErrBusiness("appointment_not_found")
	}

	if requesterID != 0 && ap.UserID != requesterID {
		return nil, httperr.ErrBusiness("appointment_not_found")
	}

	now := timezone.NowIn(uc.tz)
	if err := domain.Cancel(ap, now); err != nil {
		return nil, err
	}

	if err := uc.repo.UpdateAppointment(ctx, ap); err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		UserID:   &ap.UserID,
		Action:   "appointment_cancelled",
		Entity:   "appointment",
		EntityID: &ap.ID,
	})

	return ap, nil
}
