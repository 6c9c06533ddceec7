package schedule

import (
	"context"

	"github.com/gabrielbarbershop/booking-api/internal/audit"
	domain "github.com/gabrielbarbershop/booking-api/internal/domain/schedule"
	"github.com/gabrielbarbershop/booking-api/internal/httperr"
	"github.com/gabrielbarbershop/booking-api/internal/models"
)

type SetSlotAvailability struct {
	repo  domain.Repository
	audit *audit.Dispatcher
}

func NewSetSlotAvailability(
	repo domain.Repository,
	audit *audit.Dispatcher,
) *SetSlotAvailability {
	return &SetSlotAvailability{
		repo:  repo,
		audit: audit,
	}
}

func (uc *SetSlotAvailability) Execute(
	ctx context.Context,
	slotID uint,
	available bool,
	adminID uint,
) (*models.AvailabilitySlot, error) {

	slot, err := uc.repo.GetSlot(ctx, slotID)
	if err != nil {
		return nil, httperr.ErrBusiness("slot_not_found")
	}

	slot.Available = available
	if err := uc.repo.SaveSlot(ctx, slot); err != nil {
		return nil, err
	}

	action := "slot_disabled"
	if available {
		action = "slot_enabled"
	}

	uc.audit.Dispatch(audit.Event{
		UserID:   &adminID,
		Action:   action,
		Entity:   "availability_slot",
		EntityID: &slot.ID,
	})

	return slot, nil
}
