package schedule

import (
	"context"
	"time"

	domain "github.com/gabrielbarbershop/booking-api/internal/domain/schedule"
	"github.com/gabrielbarbershop/booking-api/internal/dto"
	"github.com/gabrielbarbershop/booking-api/internal/timezone"
)

type ListAppointmentsByMonth struct {
	repo domain.Repository
	tz   string
}

func NewListAppointmentsByMonth(
	repo domain.Repository,
	tz string,
) *ListAppointmentsByMonth {
	return &ListAppointmentsByMonth{
		repo: repo,
		tz:   tz,
	}
}

func (uc *ListAppointmentsByMonth) Execute(
	ctx context.Context,
	year int,
	month int,
) ([]dto.AppointmentListDTO, error) {

	loc := timezone.Location(uc.tz)

	start := time.Date(year, time.Month(month), 1, 0, 0, 0, 0, loc)
	end := start.AddDate(0, 1, 0)

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
