package repository

import (
	"context"

	"github.com/hotelio/frontdesk/internal/models"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type ProductRepository interface {
	Create(ctx context.Context, product *models.Product) error
	FindByID(ctx context.Context, operatorID, id uint) (*models.Product, error)
	FindByIDForUpdate(ctx context.Context, tx *gorm.DB, operatorID, id uint) (*models.Product, error)
	List(ctx context.Context, operatorID uint, category string, activeOnly bool) ([]models.Product, error)
	Save(ctx context.Context, product *models.Product) error
	DecrementStock(ctx context.Context, tx *gorm.DB, id uint, quantity int) error
	Delete(ctx context.Context, operatorID, id uint) (int64, error)
}

type productRepository struct {
	db *gorm.DB
}

func NewProductRepository(db *gorm.DB) ProductRepository {
	return &productRepository{db: db}
}

func (r *productRepository) Create(ctx context.Context, product *models.Product) error {
	return r.db.WithContext(ctx).Create(product).Error
}

func (r *productRepository) FindByID(ctx context.Context, operatorID, id uint) (*models.Product, error) {
	var product models.Product
	if err := r.db.WithContext(ctx).
		Where("operator_id = ?", operatorID).
		First(&product, id).Error; err != nil {
		return nil, err
	}
	return &product, nil
}

// FindByIDForUpdate locks the product row so the stock check and decrement
// that follow stay consistent under concurrent sales.
func (r *productRepository) FindByIDForUpdate(ctx context.Context, tx *gorm.DB, operatorID, id uint) (*models.Product, error) {
	var product models.Product
	if err := tx.WithContext(ctx).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		Where("operator_id = ?", operatorID).
		First(&product, id).Error; err != nil {
		return nil, err
	}
	return &product, nil
}

func (r *productRepository) List(ctx context.Context, operatorID uint, category string, activeOnly bool) ([]models.Product, error) {
	q := r.db.WithContext(ctx).Where("operator_id = ?", operatorID)
	if category != "" {
		q = q.Where("category = ?", category)
	}
	if activeOnly {
		q = q.Where("is_active = ?", true)
	}
	var products []models.Product
	if err := q.Order("name ASC").Find(&products).Error; err != nil {
		return nil, err
	}
	return products, nil
}

func (r *productRepository) Save(ctx context.Context, product *models.Product) error {
	return r.db.WithContext(ctx).Save(product).Error
}

func (r *productRepository) DecrementStock(ctx context.Context, tx *gorm.DB, id uint, quantity int) error {
	return tx.WithContext(ctx).
		Model(&models.Product{}).
		Where("id = ?", id).
		Update("stock_quantity", gorm.Expr("stock_quantity - ?", quantity)).Error
}

func (r *productRepository) Delete(ctx context.Context, operatorID, id uint) (int64, error) {
	res := r.db.WithContext(ctx).
		Where("operator_id = ?", operatorID).
		Delete(&models.Product{}, id)
	return res.RowsAffected, res.Error
}
