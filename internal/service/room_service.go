package service

import (
	"context"
	"errors"
	"strings"

	"github.com/hotelio/frontdesk/internal/models"
	"github.com/hotelio/frontdesk/internal/repository"
	"gorm.io/gorm"
)

var (
	ErrRoomNotFound          = errors.New("room not found")
	ErrRoomNotAvailable      = errors.New("room is not available")
	ErrRoomOccupied          = errors.New("room is occupied")
	ErrDuplicateRoomNumber   = errors.New("room number already exists")
	ErrInvalidRoomTransition = errors.New("invalid room status transition")
)

// RoomInput carries the writable room fields for create and update.
type RoomInput struct {
	Number           string
	RoomType         string
	BasePrice        float64
	ShortStay3hPrice *float64
	ShortStay6hPrice *float64
	Floor            *int
	MaxOccupancy     int
	Description      *string
}

// RoomService is the room registry: inventory CRUD plus the manual side of
// the room state machine. Occupancy transitions happen inside the ledger
// engine, under the booking transaction.
type RoomService interface {
	Create(ctx context.Context, operatorID uint, in RoomInput) (*models.Room, error)
	Get(ctx context.Context, operatorID, id uint) (*models.Room, error)
	List(ctx context.Context, operatorID uint) ([]models.Room, error)
	Available(ctx context.Context, operatorID uint, f repository.AvailableRoomFilter) ([]models.Room, error)
	Update(ctx context.Context, operatorID, id uint, in RoomInput) (*models.Room, error)
	SetStatus(ctx context.Context, operatorID, id uint, status models.RoomStatus) (*models.Room, error)
	Delete(ctx context.Context, operatorID, id uint) error
}

type roomService struct {
	rooms repository.RoomRepository
}

func NewRoomService(rooms repository.RoomRepository) RoomService {
	return &roomService{rooms: rooms}
}

func (s *roomService) Create(ctx context.Context, operatorID uint, in RoomInput) (*models.Room, error) {
	room := &models.Room{
		OperatorID:       operatorID,
		Number:           strings.TrimSpace(in.Number),
		RoomType:         in.RoomType,
		BasePrice:        in.BasePrice,
		ShortStay3hPrice: in.ShortStay3hPrice,
		ShortStay6hPrice: in.ShortStay6hPrice,
		Floor:            in.Floor,
		MaxOccupancy:     in.MaxOccupancy,
		Description:      in.Description,
		Status:           models.RoomAvailable,
	}
	if room.MaxOccupancy <= 0 {
		room.MaxOccupancy = 2
	}
	if err := s.rooms.Create(ctx, room); err != nil {
		if isUniqueViolation(err) {
			return nil, ErrDuplicateRoomNumber
		}
		return nil, err
	}
	return room, nil
}

func (s *roomService) Get(ctx context.Context, operatorID, id uint) (*models.Room, error) {
	room, err := s.rooms.FindByID(ctx, operatorID, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrRoomNotFound
		}
		return nil, err
	}
	return room, nil
}

func (s *roomService) List(ctx context.Context, operatorID uint) ([]models.Room, error) {
	return s.rooms.ListByOperator(ctx, operatorID)
}

func (s *roomService) Available(ctx context.Context, operatorID uint, f repository.AvailableRoomFilter) ([]models.Room, error) {
	return s.rooms.FindAvailable(ctx, operatorID, f)
}

func (s *roomService) Update(ctx context.Context, operatorID, id uint, in RoomInput) (*models.Room, error) {
	room, err := s.Get(ctx, operatorID, id)
	if err != nil {
		return nil, err
	}
	room.Number = strings.TrimSpace(in.Number)
	room.RoomType = in.RoomType
	room.BasePrice = in.BasePrice
	room.ShortStay3hPrice = in.ShortStay3hPrice
	room.ShortStay6hPrice = in.ShortStay6hPrice
	room.Floor = in.Floor
	if in.MaxOccupancy > 0 {
		room.MaxOccupancy = in.MaxOccupancy
	}
	room.Description = in.Description
	if err := s.rooms.Save(ctx, room); err != nil {
		if isUniqueViolation(err) {
			return nil, ErrDuplicateRoomNumber
		}
		return nil, err
	}
	return room, nil
}

// SetStatus handles the manual transitions only: an available room may be
// taken out of service (maintenance) and put back when repairs finish.
// Reserved and occupied rooms are driven exclusively by the booking
// lifecycle (check-in, cancel, checkout).
func (s *roomService) SetStatus(ctx context.Context, operatorID, id uint, status models.RoomStatus) (*models.Room, error) {
	var room *models.Room
	err := s.rooms.GetDB().Transaction(func(tx *gorm.DB) error {
		var err error
		room, err = s.rooms.FindByIDForUpdate(ctx, tx, operatorID, id)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrRoomNotFound
			}
			return err
		}
		if !manualTransitionAllowed(room.Status, status) {
			if room.Status == models.RoomOccupied {
				return ErrRoomOccupied
			}
			return ErrInvalidRoomTransition
		}
		room.Status = status
		return s.rooms.UpdateStatus(ctx, tx, room.ID, status)
	})
	if err != nil {
		return nil, err
	}
	return room, nil
}

func manualTransitionAllowed(from, to models.RoomStatus) bool {
	switch from {
	case models.RoomAvailable:
		return to == models.RoomMaintenance
	case models.RoomMaintenance:
		return to == models.RoomAvailable
	default:
		return false
	}
}

func (s *roomService) Delete(ctx context.Context, operatorID, id uint) error {
	room, err := s.Get(ctx, operatorID, id)
	if err != nil {
		return err
	}
	if room.Status == models.RoomOccupied || room.Status == models.RoomReserved {
		return ErrRoomOccupied
	}
	affected, err := s.rooms.Delete(ctx, operatorID, id)
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrRoomNotFound
	}
	return nil
}

// isUniqueViolation matches the Postgres duplicate-key SQLSTATE that pgx
// surfaces through GORM.
func isUniqueViolation(err error) bool {
	return err != nil && strings.Contains(err.Error(), "23505")
}
