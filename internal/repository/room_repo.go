package repository

import (
	"context"
	"time"

	"github.com/hotelio/frontdesk/internal/models"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// AvailableRoomFilter narrows FindAvailable. When both CheckIn and
// CheckOut are set, rooms whose active bookings overlap the window are
// excluded even if their current status is available.
type AvailableRoomFilter struct {
	RoomType string
	CheckIn  *time.Time
	CheckOut *time.Time
}

type RoomRepository interface {
	Create(ctx context.Context, room *models.Room) error
	FindByID(ctx context.Context, operatorID, id uint) (*models.Room, error)
	FindByIDForUpdate(ctx context.Context, tx *gorm.DB, operatorID, id uint) (*models.Room, error)
	FindAvailable(ctx context.Context, operatorID uint, f AvailableRoomFilter) ([]models.Room, error)
	ListByOperator(ctx context.Context, operatorID uint) ([]models.Room, error)
	Save(ctx context.Context, room *models.Room) error
	UpdateStatus(ctx context.Context, tx *gorm.DB, id uint, status models.RoomStatus) error
	Delete(ctx context.Context, operatorID, id uint) (int64, error)
	GetDB() *gorm.DB
}

type roomRepository struct {
	db *gorm.DB
}

func NewRoomRepository(db *gorm.DB) RoomRepository {
	return &roomRepository{db: db}
}

func (r *roomRepository) GetDB() *gorm.DB {
	return r.db
}

func (r *roomRepository) Create(ctx context.Context, room *models.Room) error {
	return r.db.WithContext(ctx).Create(room).Error
}

func (r *roomRepository) FindByID(ctx context.Context, operatorID, id uint) (*models.Room, error) {
	var room models.Room
	if err := r.db.WithContext(ctx).
		Where("operator_id = ?", operatorID).
		First(&room, id).Error; err != nil {
		return nil, err
	}
	return &room, nil
}

// FindByIDForUpdate acquires a row-level lock on the room within the given
// transaction. The availability check and the status transition that follow
// must happen under this lock so racing check-ins serialize.
func (r *roomRepository) FindByIDForUpdate(ctx context.Context, tx *gorm.DB, operatorID, id uint) (*models.Room, error) {
	var room models.Room
	if err := tx.WithContext(ctx).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		Where("operator_id = ?", operatorID).
		First(&room, id).Error; err != nil {
		return nil, err
	}
	return &room, nil
}

func (r *roomRepository) FindAvailable(ctx context.Context, operatorID uint, f AvailableRoomFilter) ([]models.Room, error) {
	q := r.db.WithContext(ctx).
		Where("operator_id = ? AND status = ?", operatorID, models.RoomAvailable)
	if f.RoomType != "" {
		q = q.Where("room_type = ?", f.RoomType)
	}
	if f.CheckIn != nil && f.CheckOut != nil {
		q = q.Where(`id NOT IN (
			SELECT room_id FROM bookings
			WHERE status IN ? AND (
				(check_in <= ? AND expected_checkout >= ?) OR
				(check_in >= ? AND check_in < ?)
			)
		)`,
			[]models.BookingStatus{models.StatusReserved, models.StatusCheckedIn},
			*f.CheckOut, *f.CheckIn, *f.CheckIn, *f.CheckOut)
	}
	var rooms []models.Room
	if err := q.Order("number ASC").Find(&rooms).Error; err != nil {
		return nil, err
	}
	return rooms, nil
}

func (r *roomRepository) ListByOperator(ctx context.Context, operatorID uint) ([]models.Room, error) {
	var rooms []models.Room
	if err := r.db.WithContext(ctx).
		Where("operator_id = ?", operatorID).
		Order("number ASC").
		Find(&rooms).Error; err != nil {
		return nil, err
	}
	return rooms, nil
}

func (r *roomRepository) Save(ctx context.Context, room *models.Room) error {
	return r.db.WithContext(ctx).Save(room).Error
}

func (r *roomRepository) UpdateStatus(ctx context.Context, tx *gorm.DB, id uint, status models.RoomStatus) error {
	return tx.WithContext(ctx).
		Model(&models.Room{}).
		Where("id = ?", id).
		Update("status", status).Error
}

func (r *roomRepository) Delete(ctx context.Context, operatorID, id uint) (int64, error) {
	res := r.db.WithContext(ctx).
		Where("operator_id = ?", operatorID).
		Delete(&models.Room{}, id)
	return res.RowsAffected, res.Error
}
