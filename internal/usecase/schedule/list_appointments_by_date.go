package schedule

import (
	"context"
	"time"

	domain "github.com/gabrielbarbershop/booking-api/internal/domain/schedule"
	"github.com/gabrielbarbershop/booking-api/internal/dto"
	"github.com/gabrielbarbershop/booking-api/internal/timezone"
)

type ListAppointmentsByDate struct {
	repo domain.Repository
	tz   string
}

func NewListAppointmentsByDate(
	repo domain.Repository,
	tz string,
) *ListAppointmentsByDate {
	return &ListAppointmentsByDate{
		repo: repo,
		tz:   tz,
	}
}

func (uc *ListAppointmentsByDate) Execute(
	ctx context.Context,
	date time.Time,
) ([]dto.AppointmentListDTO, error) {

	loc := timezone.Location(uc.tz)

	start := time.Date(
		date.Year(),
		date.Month(),
		date.Day(),
		0, 0, 0, 0,
		loc,
	)
	end := start.Add(24 * time.Hour)

	appointments, err := uc.repo.ListAppointmentsForPeriod(ctx, start, end)
	if err != nil {
		return nil, err
	}

	out := make([]dto.AppointmentListDTO, 0, len(appointments))
	for _, ap := range appointments {
		out = append(out, dto.AppointmentListDTO{
			ID:          ap.ID,
			SlotTime:    ap.SlotTime,
			Status:      ap.Status,
			ClientName:  ap.User.Name,
			ServiceName: ap.Service.Name,
		})
	}

	return out, nil
}
