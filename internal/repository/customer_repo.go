package repository

import (
	"context"
	"time"

	"github.com/hotelio/frontdesk/internal/models"
	"gorm.io/gorm"
)

type CustomerRepository interface {
	Create(ctx context.Context, customer *models.Customer) error
	FindByID(ctx context.Context, operatorID, id uint) (*models.Customer, error)
	FindByDocument(ctx context.Context, operatorID uint, documentNumber string) (*models.Customer, error)
	Search(ctx context.Context, operatorID uint, term string) ([]models.Customer, error)
	Save(ctx context.Context, customer *models.Customer) error
	RecordStay(ctx context.Context, tx *gorm.DB, customerID uint, amountPaid float64, stayDate time.Time) error
}

type customerRepository struct {
	db *gorm.DB
}

func NewCustomerRepository(db *gorm.DB) CustomerRepository {
	return &customerRepository{db: db}
}

func (r *customerRepository) Create(ctx context.Context, customer *models.Customer) error {
	return r.db.WithContext(ctx).Create(customer).Error
}

func (r *customerRepository) FindByID(ctx context.Context, operatorID, id uint) (*models.Customer, error) {
	var customer models.Customer
	if err := r.db.WithContext(ctx).
		Where("operator_id = ?", operatorID).
		First(&customer, id).Error; err != nil {
		return nil, err
	}
	return &customer, nil
}

func (r *customerRepository) FindByDocument(ctx context.Context, operatorID uint, documentNumber string) (*models.Customer, error) {
	var customer models.Customer
	if err := r.db.WithContext(ctx).
		Where("operator_id = ? AND document_number = ?", operatorID, documentNumber).
		First(&customer).Error; err != nil {
		return nil, err
	}
	return &customer, nil
}

func (r *customerRepository) Search(ctx context.Context, operatorID uint, term string) ([]models.Customer, error) {
	q := r.db.WithContext(ctx).Where("operator_id = ?", operatorID)
	if term != "" {
		like := "%" + term + "%"
		q = q.Where("full_name ILIKE ? OR document_number ILIKE ? OR phone ILIKE ?", like, like, like)
	}
	var customers []models.Customer
	if err := q.Order("total_spent DESC").Limit(50).Find(&customers).Error; err != nil {
		return nil, err
	}
	return customers, nil
}

func (r *customerRepository) Save(ctx context.Context, customer *models.Customer) error {
	return r.db.WithContext(ctx).Save(customer).Error
}

// RecordStay bumps the customer's stay aggregates at checkout. The frequent
// flag flips once the customer reaches three completed stays.
func (r *customerRepository) RecordStay(ctx context.Context, tx *gorm.DB, customerID uint, amountPaid float64, stayDate time.Time) error {
	return tx.WithContext(ctx).
		Model(&models.Customer{}).
		Where("id = ?", customerID).
		Updates(map[string]any{
			"total_stays":    gorm.Expr("total_stays + 1"),
			"total_spent":    gorm.Expr("total_spent + ?", amountPaid),
			"last_stay_date": stayDate,
			"is_frequent":    gorm.Expr("total_stays + 1 >= 3"),
		}).Error
}
