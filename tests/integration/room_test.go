//go:build integration

package integration

import (
	"context"
	"testing"
	"time"

	"github.com/hotelio/frontdesk/internal/models"
	"github.com/hotelio/frontdesk/internal/repository"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func roomNumbers(rooms []models.Room) []string {
	nums := make([]string, 0, len(rooms))
	for _, r := range rooms {
		nums = append(nums, r.Number)
	}
	return nums
}

// A future reservation holds its dates even while the room itself still
// reads available, so a date-windowed search must skip it for overlapping
// windows and offer it for disjoint ones.
func TestAvailableExcludesOverlappingReservation(t *testing.T) {
	cleanTables()
	svc := newServices()
	op := createOperator(t)
	reserved := createRoom(t, op.ID, "201", 100)
	createRoom(t, op.ID, "202", 100)
	customer := createCustomer(t, op.ID)

	base := time.Now().Truncate(time.Hour)
	require.NoError(t, testDB.Create(&models.Booking{
		Code:             "F-9001",
		OperatorID:       op.ID,
		CashierID:        op.ID,
		CustomerID:       customer.ID,
		RoomID:           reserved.ID,
		CheckIn:          base.Add(240 * time.Hour),
		ExpectedCheckout: base.Add(288 * time.Hour),
		StayType:         models.StayDaily,
		NumberOfNights:   2,
		BasePrice:        100,
		TotalAmount:      200,
		Status:           models.StatusReserved,
	}).Error)

	// No window: the status filter alone keeps both rooms on offer.
	rooms, err := svc.rooms.Available(context.Background(), op.ID, repository.AvailableRoomFilter{})
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{"201", "202"}, roomNumbers(rooms))

	// Window overlapping the reservation's second night.
	in := base.Add(264 * time.Hour)
	out := base.Add(312 * time.Hour)
	rooms, err = svc.rooms.Available(context.Background(), op.ID, repository.AvailableRoomFilter{
		CheckIn:  &in,
		CheckOut: &out,
	})
	require.NoError(t, err)
	assert.Equal(t, []string{"202"}, roomNumbers(rooms))

	// Window fully inside the reservation.
	in = base.Add(252 * time.Hour)
	out = base.Add(276 * time.Hour)
	rooms, err = svc.rooms.Available(context.Background(), op.ID, repository.AvailableRoomFilter{
		CheckIn:  &in,
		CheckOut: &out,
	})
	require.NoError(t, err)
	assert.Equal(t, []string{"202"}, roomNumbers(rooms))

	// Disjoint earlier window: the reservation does not block it.
	in = base.Add(24 * time.Hour)
	out = base.Add(72 * time.Hour)
	rooms, err = svc.rooms.Available(context.Background(), op.ID, repository.AvailableRoomFilter{
		CheckIn:  &in,
		CheckOut: &out,
	})
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{"201", "202"}, roomNumbers(rooms))
}

func TestAvailableSkipsRoomsOutOfService(t *testing.T) {
	cleanTables()
	svc := newServices()
	op := createOperator(t)
	createRoom(t, op.ID, "203", 100)
	broken := createRoom(t, op.ID, "204", 100)

	_, err := svc.rooms.SetStatus(context.Background(), op.ID, broken.ID, models.RoomMaintenance)
	require.NoError(t, err)

	rooms, err := svc.rooms.Available(context.Background(), op.ID, repository.AvailableRoomFilter{})
	require.NoError(t, err)
	assert.Equal(t, []string{"203"}, roomNumbers(rooms))
}
