package schedule

import (
	"context"

	domain "github.com/gabrielbarbershop/booking-api/internal/domain/schedule"
	"github.com/gabrielbarbershop/booking-api/internal/dto"
)

type ListAppointmentsByClient struct {
	repo domain.Repository
}

func NewListAppointmentsByClient(
	repo domain.Repository,
) *ListAppointmentsByClient {
	return &ListAppointmentsByClient{repo: repo}
}

func (uc *ListAppointmentsByClient) Execute(
	ctx context.Context,
	userID uint,
) ([]dto.AppointmentListDTO, error) {

	appointments, err := uc.repo.ListAppointmentsForUser(ctx, userID)
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
