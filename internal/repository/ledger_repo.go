package repository

import (
	"context"
	"time"

	"github.com/hotelio/frontdesk/internal/models"
	"gorm.io/gorm"
)

// PaymentTotals aggregates a cashier's payments over a shift window,
// broken down by method.
type PaymentTotals struct {
	ByMethod     map[models.PaymentMethod]float64
	Transactions int64
}

type LedgerRepository interface {
	CreateCharge(ctx context.Context, tx *gorm.DB, charge *models.Charge) error
	CreatePayment(ctx context.Context, tx *gorm.DB, payment *models.Payment) error
	CreateDiscount(ctx context.Context, tx *gorm.DB, discount *models.Discount) error
	CreateRefund(ctx context.Context, tx *gorm.DB, refund *models.Refund) error
	ChargesByBooking(ctx context.Context, bookingID uint) ([]models.Charge, error)
	PaymentsByBooking(ctx context.Context, bookingID uint) ([]models.Payment, error)
	DiscountsByBooking(ctx context.Context, bookingID uint) ([]models.Discount, error)
	RefundsByBooking(ctx context.Context, bookingID uint) ([]models.Refund, error)
	PaymentTotalsForCashier(ctx context.Context, cashierID uint, from time.Time, to *time.Time) (*PaymentTotals, error)
}

type ledgerRepository struct {
	db *gorm.DB
}

func NewLedgerRepository(db *gorm.DB) LedgerRepository {
	return &ledgerRepository{db: db}
}

func (r *ledgerRepository) CreateCharge(ctx context.Context, tx *gorm.DB, charge *models.Charge) error {
	return tx.WithContext(ctx).Create(charge).Error
}

func (r *ledgerRepository) CreatePayment(ctx context.Context, tx *gorm.DB, payment *models.Payment) error {
	return tx.WithContext(ctx).Create(payment).Error
}

func (r *ledgerRepository) CreateDiscount(ctx context.Context, tx *gorm.DB, discount *models.Discount) error {
	return tx.WithContext(ctx).Create(discount).Error
}

func (r *ledgerRepository) CreateRefund(ctx context.Context, tx *gorm.DB, refund *models.Refund) error {
	return tx.WithContext(ctx).Create(refund).Error
}

func (r *ledgerRepository) ChargesByBooking(ctx context.Context, bookingID uint) ([]models.Charge, error) {
	var charges []models.Charge
	if err := r.db.WithContext(ctx).
		Where("booking_id = ?", bookingID).
		Order("created_at ASC").
		Find(&charges).Error; err != nil {
		return nil, err
	}
	return charges, nil
}

func (r *ledgerRepository) PaymentsByBooking(ctx context.Context, bookingID uint) ([]models.Payment, error) {
	var payments []models.Payment
	if err := r.db.WithContext(ctx).
		Preload("Splits").
		Where("booking_id = ?", bookingID).
		Order("paid_at ASC").
		Find(&payments).Error; err != nil {
		return nil, err
	}
	return payments, nil
}

func (r *ledgerRepository) DiscountsByBooking(ctx context.Context, bookingID uint) ([]models.Discount, error) {
	var discounts []models.Discount
	if err := r.db.WithContext(ctx).
		Where("booking_id = ?", bookingID).
		Order("created_at ASC").
		Find(&discounts).Error; err != nil {
		return nil, err
	}
	return discounts, nil
}

func (r *ledgerRepository) RefundsByBooking(ctx context.Context, bookingID uint) ([]models.Refund, error) {
	var refunds []models.Refund
	if err := r.db.WithContext(ctx).
		Where("booking_id = ?", bookingID).
		Order("created_at ASC").
		Find(&refunds).Error; err != nil {
		return nil, err
	}
	return refunds, nil
}

// PaymentTotalsForCashier sums the cashier's payments in [from, to) by
// method. Payments broken into splits contribute each split under its own
// method instead of the parent payment. A nil `to` means "until now".
func (r *ledgerRepository) PaymentTotalsForCashier(ctx context.Context, cashierID uint, from time.Time, to *time.Time) (*PaymentTotals, error) {
	type row struct {
		Method models.PaymentMethod
		Total  float64
	}

	window := func(q *gorm.DB) *gorm.DB {
		q = q.Where("payments.cashier_id = ? AND payments.paid_at >= ?", cashierID, from)
		if to != nil {
			q = q.Where("payments.paid_at < ?", *to)
		}
		return q
	}

	var plain []row
	if err := window(r.db.WithContext(ctx).Model(&models.Payment{})).
		Select("payments.method, COALESCE(SUM(payments.amount), 0) AS total").
		Where("NOT EXISTS (SELECT 1 FROM payment_splits WHERE payment_splits.payment_id = payments.id)").
		Group("payments.method").
		Scan(&plain).Error; err != nil {
		return nil, err
	}

	var split []row
	if err := window(r.db.WithContext(ctx).Model(&models.PaymentSplit{}).
		Joins("JOIN payments ON payments.id = payment_splits.payment_id")).
		Select("payment_splits.method, COALESCE(SUM(payment_splits.amount), 0) AS total").
		Group("payment_splits.method").
		Scan(&split).Error; err != nil {
		return nil, err
	}

	totals := &PaymentTotals{ByMethod: make(map[models.PaymentMethod]float64)}
	for _, rw := range append(plain, split...) {
		totals.ByMethod[rw.Method] += rw.Total
	}

	if err := window(r.db.WithContext(ctx).Model(&models.Payment{})).
		Count(&totals.Transactions).Error; err != nil {
		return nil, err
	}
	return totals, nil
}
