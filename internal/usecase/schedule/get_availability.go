package schedule

import (
	"context"
	"sort"
	"time"

	domain "github.com/gabrielbarbershop/booking-api/internal/domain/schedule"
)

type GetAvailability struct {
	repo  domain.Repository
	hours domain.BusinessHours
}

func NewGetAvailability(repo domain.Repository, hours domain.BusinessHours) *GetAvailability {
	return &GetAvailability{repo: repo, hours: hours}
}

// Execute devolve os slots bookáveis de um dia:
//  1. overrides persistidos pelo admin, quando existem; senão o template
//     da grade de horários
//  2. menos os horários já tomados por agendamento não cancelado
//
// Leitura pura: nada é persistido como efeito colateral da consulta.
func (uc *GetAvailability) Execute(
	ctx context.Context,
	in domain.AvailabilityInput,
) ([]domain.Slot, error) {

	dayStart := time.Date(
		in.Date.Year(), in.Date.Month(), in.Date.Day(),
		0, 0, 0, 0,
		in.Date.Location(),
	)
	dayEnd := dayStart.Add(24 * time.Hour)

	stored, err := uc.repo.ListSlotsForDay(ctx, dayStart, dayEnd)
	if err != nil {
		return nil, err
	}

	var candidates []domain.Slot
	if len(stored) > 0 {
		for _, s := range stored {
			if !s.Available {
				continue
			}
			id := s.ID
			candidates = append(candidates, domain.Slot{
				SlotID: &id,
				Time:   s.SlotTime,
			})
		}
	} else {
		for _, t := range uc.hours.Template(dayStart) {
			candidates = append(candidates, domain.Slot{Time: t})
		}
	}

	appointments, err := uc.repo.ListActiveAppointmentsForDay(ctx, dayStart, dayEnd)
	if err != nil {
		return nil, err
	}

	// chave por instante: time.Time com *Location diferente não bate como
	// chave de map mesmo representando o mesmo horário
	taken := make(map[int64]bool, len(appointments))
	for _, ap := range appointments {
		taken[ap.SlotTime.Unix()] = true
	}

	slots := make([]domain.Slot, 0, len(candidates))
	for _, s := range candidates {
		if taken[s.Time.Unix()] {
			continue
		}
		slots = append(slots, s)
	}

	sort.Slice(slots, func(i, j int) bool {
		return slots[i].Time.Before(slots[j].Time)
	})

	return slots, nil
}
