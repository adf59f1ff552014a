package repository

import (
	"context"

	"github.com/hotelio/frontdesk/internal/models"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type ShiftRepository interface {
	Create(ctx context.Context, tx *gorm.DB, shift *models.CashRegisterShift) error
	FindByID(ctx context.Context, operatorID, id uint) (*models.CashRegisterShift, error)
	FindByIDForUpdate(ctx context.Context, tx *gorm.DB, operatorID, id uint) (*models.CashRegisterShift, error)
	FindOpenByCashier(ctx context.Context, cashierID uint) (*models.CashRegisterShift, error)
	FindOpenByCashierForUpdate(ctx context.Context, tx *gorm.DB, cashierID uint) (*models.CashRegisterShift, error)
	ListByOperator(ctx context.Context, operatorID uint, status models.ShiftStatus) ([]models.CashRegisterShift, error)
	Save(ctx context.Context, tx *gorm.DB, shift *models.CashRegisterShift) error
	GetDB() *gorm.DB
}

type shiftRepository struct {
	db *gorm.DB
}

func NewShiftRepository(db *gorm.DB) ShiftRepository {
	return &shiftRepository{db: db}
}

func (r *shiftRepository) GetDB() *gorm.DB {
	return r.db
}

func (r *shiftRepository) Create(ctx context.Context, tx *gorm.DB, shift *models.CashRegisterShift) error {
	return tx.WithContext(ctx).Create(shift).Error
}

func (r *shiftRepository) FindByID(ctx context.Context, operatorID, id uint) (*models.CashRegisterShift, error) {
	var shift models.CashRegisterShift
	if err := r.db.WithContext(ctx).
		Where("operator_id = ?", operatorID).
		First(&shift, id).Error; err != nil {
		return nil, err
	}
	return &shift, nil
}

func (r *shiftRepository) FindByIDForUpdate(ctx context.Context, tx *gorm.DB, operatorID, id uint) (*models.CashRegisterShift, error) {
	var shift models.CashRegisterShift
	if err := tx.WithContext(ctx).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		Where("operator_id = ?", operatorID).
		First(&shift, id).Error; err != nil {
		return nil, err
	}
	return &shift, nil
}

func (r *shiftRepository) FindOpenByCashier(ctx context.Context, cashierID uint) (*models.CashRegisterShift, error) {
	var shift models.CashRegisterShift
	if err := r.db.WithContext(ctx).
		Where("cashier_id = ? AND status = ?", cashierID, models.ShiftOpen).
		First(&shift).Error; err != nil {
		return nil, err
	}
	return &shift, nil
}

// FindOpenByCashierForUpdate locks the cashier's open shift row. Open and
// close both take this lock, so a racing second open either sees the shift
// or collides with the partial unique index on (cashier_id) WHERE open.
func (r *shiftRepository) FindOpenByCashierForUpdate(ctx context.Context, tx *gorm.DB, cashierID uint) (*models.CashRegisterShift, error) {
	var shift models.CashRegisterShift
	if err := tx.WithContext(ctx).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		Where("cashier_id = ? AND status = ?", cashierID, models.ShiftOpen).
		First(&shift).Error; err != nil {
		return nil, err
	}
	return &shift, nil
}

func (r *shiftRepository) ListByOperator(ctx context.Context, operatorID uint, status models.ShiftStatus) ([]models.CashRegisterShift, error) {
	q := r.db.WithContext(ctx).Where("operator_id = ?", operatorID)
	if status != "" {
		q = q.Where("status = ?", status)
	}
	var shifts []models.CashRegisterShift
	if err := q.Order("opening_time DESC").Find(&shifts).Error; err != nil {
		return nil, err
	}
	return shifts, nil
}

func (r *shiftRepository) Save(ctx context.Context, tx *gorm.DB, shift *models.CashRegisterShift) error {
	return tx.WithContext(ctx).Save(shift).Error
}
