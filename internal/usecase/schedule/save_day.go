package schedule

import (
	"context"
	"time"

	"github.com/gabrielbarbershop/booking-api/internal/audit"
	domain "github.com/gabrielbarbershop/booking-api/internal/domain/schedule"
	"github.com/gabrielbarbershop/booking-api/internal/httperr"
	"github.com/gabrielbarbershop/booking-api/internal/models"
)

type SaveDaySlots struct {
	repo  domain.Repository
	hours domain.BusinessHours
	audit *audit.Dispatcher
}

func NewSaveDaySlots(
	repo domain.Repository,
	hours domain.BusinessHours,
	audit *audit.Dispatcher,
) *SaveDaySlots {
	return &SaveDaySlots{
		repo:  repo,
		hours: hours,
		audit: audit,
	}
}

// Execute materializa o template de um dia como registros de
// AvailabilitySlot. A partir daí o admin controla o dia slot a slot e o
// template deixa de valer para essa data.
func (uc *SaveDaySlots) Execute(
	ctx context.Context,
	date time.Time,
	adminID uint,
) ([]models.AvailabilitySlot, error) {

	dayStart := time.Date(
		date.Year(), date.Month(), date.Day(),
		0, 0, 0, 0,
		date.Location(),
	)
	dayEnd := dayStart.Add(24 * time.Hour)

	existing, err := uc.repo.ListSlotsForDay(ctx, dayStart, dayEnd)
	if err != nil {
		return nil, err
	}
	if len(existing) > 0 {
		return nil, httperr.ErrBusiness("day_already_saved")
	}

	template := uc.hours.Template(dayStart)
	if len(template) == 0 {
		return nil, httperr.ErrBusiness("closed_day")
	}

	slots := make([]models.AvailabilitySlot, 0, len(template))
	for _, t := range template {
		slots = append(slots, models.AvailabilitySlot{
			SlotTime:  t,
			Available: true,
		})
	}

	if err := uc.repo.CreateSlots(ctx, slots); err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		UserID: &adminID,
		Action: "slots_day_saved",
		Entity: "availability_slot",
	})

	return slots, nil
}
