package repository

import (
	"context"

	"github.com/hotelio/frontdesk/internal/models"
	"gorm.io/gorm"
)

type UserRepository interface {
	CreateOperator(ctx context.Context, user *models.User) error
	CreateCashier(ctx context.Context, user *models.User, perms *models.Permission) error
	FindOperatorByEmail(ctx context.Context, email string) (*models.User, error)
	FindCashierByUsername(ctx context.Context, operatorID uint, username string) (*models.User, error)
	FindByID(ctx context.Context, id uint) (*models.User, error)
	PermissionsByUserID(ctx context.Context, userID uint) (*models.Permission, error)
	ListCashiers(ctx context.Context, operatorID uint) ([]models.User, error)
	SaveUser(ctx context.Context, user *models.User) error
	SavePermissions(ctx context.Context, perms *models.Permission) error
}

type userRepository struct {
	db *gorm.DB
}

func NewUserRepository(db *gorm.DB) UserRepository {
	return &userRepository{db: db}
}

func (r *userRepository) CreateOperator(ctx context.Context, user *models.User) error {
	return r.db.WithContext(ctx).Create(user).Error
}

// CreateCashier inserts the user and its permission row atomically.
func (r *userRepository) CreateCashier(ctx context.Context, user *models.User, perms *models.Permission) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(user).Error; err != nil {
			return err
		}
		perms.UserID = user.ID
		return tx.Create(perms).Error
	})
}

func (r *userRepository) FindOperatorByEmail(ctx context.Context, email string) (*models.User, error) {
	var user models.User
	if err := r.db.WithContext(ctx).
		Where("email = ? AND role = ?", email, models.RoleOperator).
		First(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *userRepository) FindCashierByUsername(ctx context.Context, operatorID uint, username string) (*models.User, error) {
	var user models.User
	if err := r.db.WithContext(ctx).
		Where("operator_id = ? AND username = ? AND role = ?", operatorID, username, models.RoleCashier).
		First(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *userRepository) FindByID(ctx context.Context, id uint) (*models.User, error) {
	var user models.User
	if err := r.db.WithContext(ctx).First(&user, id).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *userRepository) PermissionsByUserID(ctx context.Context, userID uint) (*models.Permission, error) {
	var perms models.Permission
	if err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		First(&perms).Error; err != nil {
		return nil, err
	}
	return &perms, nil
}

func (r *userRepository) ListCashiers(ctx context.Context, operatorID uint) ([]models.User, error) {
	var users []models.User
	if err := r.db.WithContext(ctx).
		Where("operator_id = ? AND role = ?", operatorID, models.RoleCashier).
		Order("username ASC").
		Find(&users).Error; err != nil {
		return nil, err
	}
	return users, nil
}

func (r *userRepository) SaveUser(ctx context.Context, user *models.User) error {
	return r.db.WithContext(ctx).Save(user).Error
}

func (r *userRepository) SavePermissions(ctx context.Context, perms *models.Permission) error {
	return r.db.WithContext(ctx).Save(perms).Error
}
