package schedule

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	domain "github.com/gabrielbarbershop/booking-api/internal/domain/schedule"
	"github.com/gabrielbarbershop/booking-api/internal/httperr"
)

func TestSaveDayMaterializesTemplate(t *testing.T) {
	repo := newFakeRepo()
	uc := NewSaveDaySlots(repo, domain.DefaultBusinessHours(), nil)

	day := testMonday()
	slots, err := uc.Execute(context.Background(), day, 1)
	require.NoError(t, err)

	assert.Len(t, slots, 14)
	for _, s := range slots {
		assert.True(t, s.Available)
	}
	assert.Len(t, repo.slots, 14)
}

func TestSaveDayTwice(t *testing.T) {
	repo := newFakeRepo()
	uc := NewSaveDaySlots(repo, domain.DefaultBusinessHours(), nil)

	day := testMonday()
	_, err := uc.Execute(context.Background(), day, 1)
	require.NoError(t, err)

	_, err = uc.Execute(context.Background(), day, 1)
	assert.True(t, httperr.IsBusiness(err, "day_already_saved"))
	assert.Len(t, repo.slots, 14)
}

func TestSaveDayClosedDay(t *testing.T) {
	repo := newFakeRepo()
	uc := NewSaveDaySlots(repo, domain.DefaultBusinessHours(), nil)

	sunday := time.Date(2030, 1, 6, 0, 0, 0, 0, testLoc)
	_, err := uc.Execute(context.Background(), sunday, 1)
	assert.True(t, httperr.IsBusiness(err, "closed_day"))
	assert.Empty(t, repo.slots)
}

func TestSaveDayDoesNotTouchOtherDays(t *testing.T) {
	repo := newFakeRepo()
	uc := NewSaveDaySlots(repo, domain.DefaultBusinessHours(), nil)

	monday := testMonday()
	tuesday := monday.AddDate(0, 0, 1)

	_, err := uc.Execute(context.Background(), monday, 1)
	require.NoError(t, err)

	// terça continua sem overrides e pode ser salva normalmente
	slots, err := uc.Execute(context.Background(), tuesday, 1)
	require.NoError(t, err)
	assert.Len(t, slots, 14)
}
