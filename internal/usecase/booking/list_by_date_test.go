package booking

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/barberbook/barberbook-api/internal/domain/schedule"
)

func TestListAppointmentsByDate(t *testing.T) {
	repo := seedRepo()
	bookUC := NewBookAppointment(repo, testDispatcher())
	cancelUC := NewCancelAppointment(repo, testDispatcher())

	booked := bookAt(10, 0)
	booked.Requester = schedule.Guest("Mert Aydin", "+905559876543")
	_, err := bookUC.Execute(context.Background(), booked)
	require.NoError(t, err)

	requestHold(t, repo) // pending hold at 09:00
	held, _ := repo.byPhone(testPhone)
	_, err = cancelUC.Execute(context.Background(), 1, held.ID)
	require.NoError(t, err)

	uc := NewListAppointmentsByDate(repo)

	out, err := uc.Execute(context.Background(), 1, monday)
	require.NoError(t, err)

	// Cancelled appointments stay on the barber's day view, ordered by start.
	require.Len(t, out, 2)
	assert.Equal(t, "cancelled", out[0].Status)
	assert.Equal(t, at(9, 0), out[0].StartTime)
	assert.Equal(t, "confirmed", out[1].Status)
	assert.Equal(t, at(10, 0), out[1].StartTime)

	assert.Equal(t, "Haircut", out[0].ServiceTitle)
	assert.Equal(t, "Deniz Kaya", out[0].CustomerName)
	assert.Equal(t, testPhone, out[0].CustomerPhone)
}

func TestListAppointmentsByDateEmpty(t *testing.T) {
	uc := NewListAppointmentsByDate(seedRepo())

	out, err := uc.Execute(context.Background(), 1, monday)
	require.NoError(t, err)
	assert.NotNil(t, out)
	assert.Empty(t, out)
}
