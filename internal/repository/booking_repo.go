package repository

import (
	"context"
	"time"

	"github.com/hotelio/frontdesk/internal/models"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// BookingSearch filters ListByOperator. Zero values mean "no filter".
type BookingSearch struct {
	Status models.BookingStatus
	RoomID uint
	From   *time.Time
	To     *time.Time
	Limit  int
}

type BookingRepository interface {
	Create(ctx context.Context, tx *gorm.DB, booking *models.Booking) error
	FindByID(ctx context.Context, operatorID, id uint) (*models.Booking, error)
	FindByIDForUpdate(ctx context.Context, tx *gorm.DB, operatorID, id uint) (*models.Booking, error)
	FindByCode(ctx context.Context, operatorID uint, code string) (*models.Booking, error)
	ListByOperator(ctx context.Context, operatorID uint, q BookingSearch) ([]models.Booking, error)
	ListActive(ctx context.Context, operatorID uint) ([]models.Booking, error)
	Save(ctx context.Context, tx *gorm.DB, booking *models.Booking) error
	GetDB() *gorm.DB
}

type bookingRepository struct {
	db *gorm.DB
}

func NewBookingRepository(db *gorm.DB) BookingRepository {
	return &bookingRepository{db: db}
}

func (r *bookingRepository) GetDB() *gorm.DB {
	return r.db
}

func (r *bookingRepository) Create(ctx context.Context, tx *gorm.DB, booking *models.Booking) error {
	return tx.WithContext(ctx).Create(booking).Error
}

func (r *bookingRepository) FindByID(ctx context.Context, operatorID, id uint) (*models.Booking, error) {
	var booking models.Booking
	if err := r.db.WithContext(ctx).
		Preload("Customer").
		Preload("Room").
		Where("operator_id = ?", operatorID).
		First(&booking, id).Error; err != nil {
		return nil, err
	}
	return &booking, nil
}

// FindByIDForUpdate locks the booking row for the duration of the
// transaction. Every ledger mutation (charge, payment, discount, refund,
// checkout) goes through this lock so concurrent writers serialize and the
// balance never goes negative. The lock applies to the booking row only;
// customer and room are preloaded without one.
func (r *bookingRepository) FindByIDForUpdate(ctx context.Context, tx *gorm.DB, operatorID, id uint) (*models.Booking, error) {
	var booking models.Booking
	if err := tx.WithContext(ctx).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		Preload("Customer").
		Preload("Room").
		Where("operator_id = ?", operatorID).
		First(&booking, id).Error; err != nil {
		return nil, err
	}
	return &booking, nil
}

func (r *bookingRepository) FindByCode(ctx context.Context, operatorID uint, code string) (*models.Booking, error) {
	var booking models.Booking
	if err := r.db.WithContext(ctx).
		Preload("Customer").
		Preload("Room").
		Where("operator_id = ? AND code = ?", operatorID, code).
		First(&booking).Error; err != nil {
		return nil, err
	}
	return &booking, nil
}

func (r *bookingRepository) ListByOperator(ctx context.Context, operatorID uint, q BookingSearch) ([]models.Booking, error) {
	query := r.db.WithContext(ctx).
		Preload("Customer").
		Preload("Room").
		Where("operator_id = ?", operatorID)
	if q.Status != "" {
		query = query.Where("status = ?", q.Status)
	}
	if q.RoomID != 0 {
		query = query.Where("room_id = ?", q.RoomID)
	}
	if q.From != nil {
		query = query.Where("check_in >= ?", *q.From)
	}
	if q.To != nil {
		query = query.Where("check_in < ?", *q.To)
	}
	limit := q.Limit
	if limit <= 0 {
		limit = 100
	}
	var bookings []models.Booking
	if err := query.Order("check_in DESC").Limit(limit).Find(&bookings).Error; err != nil {
		return nil, err
	}
	return bookings, nil
}

func (r *bookingRepository) ListActive(ctx context.Context, operatorID uint) ([]models.Booking, error) {
	var bookings []models.Booking
	if err := r.db.WithContext(ctx).
		Preload("Customer").
		Preload("Room").
		Where("operator_id = ? AND status IN ?", operatorID,
			[]models.BookingStatus{models.StatusReserved, models.StatusCheckedIn}).
		Order("check_in DESC").
		Find(&bookings).Error; err != nil {
		return nil, err
	}
	return bookings, nil
}

func (r *bookingRepository) Save(ctx context.Context, tx *gorm.DB, booking *models.Booking) error {
	return tx.WithContext(ctx).Save(booking).Error
}
