package schedule

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gabrielbarbershop/booking-api/internal/httperr"
	"github.com/gabrielbarbershop/booking-api/internal/models"
)

func TestCancelPending(t *testing.T) {
	ap := &models.Appointment{Status: string(StatusPending)}
	now := time.Now()

	require.NoError(t, Cancel(ap, now))
	assert.Equal(t, string(StatusCancelled), ap.Status)
	require.NotNil(t, ap.CancelledAt)
	assert.Equal(t, now, *ap.CancelledAt)
}

func TestCancelRejectsTerminalStates(t *testing.T) {
	for _, status := range []Status{StatusCancelled, StatusCompleted} {
		ap := &models.Appointment{Status: string(status)}

		err := Cancel(ap, time.Now())
		assert.True(t, httperr.IsBusiness(err, "invalid_state"))
		assert.Equal(t, string(status), ap.Status)
		assert.Nil(t, ap.CancelledAt)
	}
}

func TestCompletePending(t *testing.T) {
	ap := &models.Appointment{Status: string(StatusPending)}
	now := time.Now()

	require.NoError(t, Complete(ap, now))
	assert.Equal(t, string(StatusCompleted), ap.Status)
	require.NotNil(t, ap.CompletedAt)
}

func TestCompleteRejectsTerminalStates(t *testing.T) {
	for _, status := range []Status{StatusCancelled, StatusCompleted} {
		ap := &models.Appointment{Status: string(status)}

		err := Complete(ap, time.Now())
		assert.True(t, httperr.IsBusiness(err, "invalid_state"))
	}
}

func TestInitialStatus(t *testing.T) {
	assert.Equal(t, StatusPending, InitialStatus())
}
