package service

import (
	"context"
	"errors"
	"testing"

	"github.com/hotelio/frontdesk/internal/models"
	"github.com/hotelio/frontdesk/internal/repository"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
)

// --- Mock RoomRepository ---

type mockRoomRepo struct {
	createFn   func(ctx context.Context, room *models.Room) error
	findByIDFn func(ctx context.Context, operatorID, id uint) (*models.Room, error)
	deleteFn   func(ctx context.Context, operatorID, id uint) (int64, error)
}

func (m *mockRoomRepo) Create(ctx context.Context, room *models.Room) error {
	return m.createFn(ctx, room)
}
func (m *mockRoomRepo) FindByID(ctx context.Context, operatorID, id uint) (*models.Room, error) {
	return m.findByIDFn(ctx, operatorID, id)
}
func (m *mockRoomRepo) FindByIDForUpdate(ctx context.Context, tx *gorm.DB, operatorID, id uint) (*models.Room, error) {
	return m.findByIDFn(ctx, operatorID, id)
}
func (m *mockRoomRepo) FindAvailable(ctx context.Context, operatorID uint, f repository.AvailableRoomFilter) ([]models.Room, error) {
	return nil, nil
}
func (m *mockRoomRepo) ListByOperator(ctx context.Context, operatorID uint) ([]models.Room, error) {
	return nil, nil
}
func (m *mockRoomRepo) Save(ctx context.Context, room *models.Room) error { return nil }
func (m *mockRoomRepo) UpdateStatus(ctx context.Context, tx *gorm.DB, id uint, status models.RoomStatus) error {
	return nil
}
func (m *mockRoomRepo) Delete(ctx context.Context, operatorID, id uint) (int64, error) {
	return m.deleteFn(ctx, operatorID, id)
}
func (m *mockRoomRepo) GetDB() *gorm.DB { return nil }

// --- Tests ---

func TestCreateRoom_DuplicateNumber(t *testing.T) {
	repo := &mockRoomRepo{
		createFn: func(ctx context.Context, room *models.Room) error {
			return errors.New(`ERROR: duplicate key value violates unique constraint "idx_rooms_operator_number" (SQLSTATE 23505)`)
		},
	}
	svc := NewRoomService(repo)

	_, err := svc.Create(context.Background(), 1, RoomInput{Number: "101", RoomType: "single", BasePrice: 100})
	assert.ErrorIs(t, err, ErrDuplicateRoomNumber)
}

func TestCreateRoom_DefaultsOccupancy(t *testing.T) {
	var created *models.Room
	repo := &mockRoomRepo{
		createFn: func(ctx context.Context, room *models.Room) error {
			created = room
			return nil
		},
	}
	svc := NewRoomService(repo)

	_, err := svc.Create(context.Background(), 1, RoomInput{Number: " 101 ", RoomType: "single", BasePrice: 100})
	assert.NoError(t, err)
	assert.Equal(t, "101", created.Number)
	assert.Equal(t, 2, created.MaxOccupancy)
	assert.Equal(t, models.RoomAvailable, created.Status)
}

func TestDeleteRoom_OccupiedBlocked(t *testing.T) {
	repo := &mockRoomRepo{
		findByIDFn: func(ctx context.Context, operatorID, id uint) (*models.Room, error) {
			return &models.Room{ID: id, OperatorID: operatorID, Status: models.RoomOccupied}, nil
		},
	}
	svc := NewRoomService(repo)

	err := svc.Delete(context.Background(), 1, 7)
	assert.ErrorIs(t, err, ErrRoomOccupied)
}

func TestDeleteRoom_NotFound(t *testing.T) {
	repo := &mockRoomRepo{
		findByIDFn: func(ctx context.Context, operatorID, id uint) (*models.Room, error) {
			return nil, gorm.ErrRecordNotFound
		},
	}
	svc := NewRoomService(repo)

	err := svc.Delete(context.Background(), 1, 7)
	assert.ErrorIs(t, err, ErrRoomNotFound)
}

func TestManualTransitions(t *testing.T) {
	cases := []struct {
		from, to models.RoomStatus
		allowed  bool
	}{
		{models.RoomAvailable, models.RoomMaintenance, true},
		{models.RoomMaintenance, models.RoomAvailable, true},
		{models.RoomOccupied, models.RoomMaintenance, false},
		{models.RoomOccupied, models.RoomAvailable, false},
		{models.RoomReserved, models.RoomMaintenance, false},
		{models.RoomAvailable, models.RoomOccupied, false},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.allowed, manualTransitionAllowed(tc.from, tc.to),
			"%s -> %s", tc.from, tc.to)
	}
}
