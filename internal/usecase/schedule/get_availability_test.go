package schedule

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	domain "github.com/gabrielbarbershop/booking-api/internal/domain/schedule"
	"github.com/gabrielbarbershop/booking-api/internal/models"
	"github.com/gabrielbarbershop/booking-api/internal/timezone"
)

var testLoc = timezone.Location("America/Sao_Paulo")

func at(day time.Time, hour, min int) time.Time {
	return time.Date(day.Year(), day.Month(), day.Day(), hour, min, 0, 0, day.Location())
}

// segunda-feira futura, usada na maioria dos cenários
func testMonday() time.Time {
	return time.Date(2030, 1, 7, 0, 0, 0, 0, testLoc)
}

func slotTimes(slots []domain.Slot) []time.Time {
	out := make([]time.Time, 0, len(slots))
	for _, s := range slots {
		out = append(out, s.Time)
	}
	return out
}

func TestAvailabilityFromTemplate(t *testing.T) {
	repo := newFakeRepo()
	uc := NewGetAvailability(repo, domain.DefaultBusinessHours())

	day := testMonday()
	slots, err := uc.Execute(context.Background(), domain.AvailabilityInput{Date: day})
	require.NoError(t, err)
	require.Len(t, slots, 14)

	// slots de template não têm id persistido
	for _, s := range slots {
		assert.Nil(t, s.SlotID)
	}
	assert.Equal(t, at(day, 9, 0), slots[0].Time)
}

func TestAvailabilityStoredOverridesWinOverTemplate(t *testing.T) {
	repo := newFakeRepo()
	day := testMonday()

	require.NoError(t, repo.CreateSlots(context.Background(), []models.AvailabilitySlot{
		{SlotTime: at(day, 10, 0), Available: true},
		{SlotTime: at(day, 11, 0), Available: false},
		{SlotTime: at(day, 14, 0), Available: true},
	}))

	uc := NewGetAvailability(repo, domain.DefaultBusinessHours())
	slots, err := uc.Execute(context.Background(), domain.AvailabilityInput{Date: day})
	require.NoError(t, err)

	// com overrides no banco o template não entra: só os habilitados
	require.Len(t, slots, 2)
	assert.Equal(t, []time.Time{at(day, 10, 0), at(day, 14, 0)}, slotTimes(slots))
	for _, s := range slots {
		require.NotNil(t, s.SlotID)
	}
}

func TestAvailabilityExcludesBookedTimes(t *testing.T) {
	repo := newFakeRepo()
	day := testMonday()

	repo.appointments = append(repo.appointments,
		models.Appointment{ID: 1, SlotTime: at(day, 9, 0), Status: string(domain.StatusPending)},
		models.Appointment{ID: 2, SlotTime: at(day, 13, 0), Status: string(domain.StatusCompleted)},
	)

	uc := NewGetAvailability(repo, domain.DefaultBusinessHours())
	slots, err := uc.Execute(context.Background(), domain.AvailabilityInput{Date: day})
	require.NoError(t, err)

	assert.Len(t, slots, 12)
	assert.NotContains(t, slotTimes(slots), at(day, 9, 0))
	assert.NotContains(t, slotTimes(slots), at(day, 13, 0))
}

func TestAvailabilityExcludesBookedTimesFromOtherLocation(t *testing.T) {
	repo := newFakeRepo()
	day := testMonday()

	// mesmo instante do slot de 10:30, mas carregando outro *time.Location
	// (como um timestamp vindo do banco ou parseado em outro ponto)
	otherLoc, err := time.LoadLocation("America/Sao_Paulo")
	require.NoError(t, err)
	booked := at(day, 10, 30).In(time.UTC)

	repo.appointments = append(repo.appointments, models.Appointment{
		ID:       1,
		SlotTime: booked,
		Status:   string(domain.StatusPending),
	})

	uc := NewGetAvailability(repo, domain.DefaultBusinessHours())
	slots, err := uc.Execute(context.Background(), domain.AvailabilityInput{
		Date: day.In(otherLoc),
	})
	require.NoError(t, err)

	assert.Len(t, slots, 13)
	for _, s := range slots {
		assert.False(t, s.Time.Equal(booked))
	}
}

func TestAvailabilityCancelledAppointmentFreesSlot(t *testing.T) {
	repo := newFakeRepo()
	day := testMonday()

	repo.appointments = append(repo.appointments, models.Appointment{
		ID:       1,
		SlotTime: at(day, 9, 45),
		Status:   string(domain.StatusCancelled),
	})

	uc := NewGetAvailability(repo, domain.DefaultBusinessHours())
	slots, err := uc.Execute(context.Background(), domain.AvailabilityInput{Date: day})
	require.NoError(t, err)

	assert.Contains(t, slotTimes(slots), at(day, 9, 45))
	assert.Len(t, slots, 14)
}

func TestAvailabilitySortedAscending(t *testing.T) {
	repo := newFakeRepo()
	day := testMonday()

	// inseridos fora de ordem de propósito
	require.NoError(t, repo.CreateSlots(context.Background(), []models.AvailabilitySlot{
		{SlotTime: at(day, 15, 0), Available: true},
		{SlotTime: at(day, 9, 0), Available: true},
		{SlotTime: at(day, 11, 0), Available: true},
	}))

	uc := NewGetAvailability(repo, domain.DefaultBusinessHours())
	slots, err := uc.Execute(context.Background(), domain.AvailabilityInput{Date: day})
	require.NoError(t, err)

	require.Len(t, slots, 3)
	for i := 1; i < len(slots); i++ {
		assert.True(t, slots[i-1].Time.Before(slots[i].Time))
	}
}

func TestAvailabilityClosedDayIsEmpty(t *testing.T) {
	repo := newFakeRepo()
	sunday := time.Date(2030, 1, 6, 0, 0, 0, 0, testLoc)
	require.Equal(t, time.Sunday, sunday.Weekday())

	uc := NewGetAvailability(repo, domain.DefaultBusinessHours())
	slots, err := uc.Execute(context.Background(), domain.AvailabilityInput{Date: sunday})
	require.NoError(t, err)
	assert.Empty(t, slots)
}

func TestAvailabilityFullyBookedDayIsEmpty(t *testing.T) {
	repo := newFakeRepo()
	day := testMonday()
	bh := domain.DefaultBusinessHours()

	for _, slot := range bh.Template(day) {
		repo.appointments = append(repo.appointments, models.Appointment{
			SlotTime: slot,
			Status:   string(domain.StatusPending),
		})
	}

	uc := NewGetAvailability(repo, bh)
	slots, err := uc.Execute(context.Background(), domain.AvailabilityInput{Date: day})
	require.NoError(t, err)
	assert.Empty(t, slots)
}
