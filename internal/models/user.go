package models

import "time"

type Role string

const (
	RoleOperator Role = "operator"
	RoleCashier  Role = "cashier"
)

// User is either an operator (tenant owner) or one of their cashiers.
// For operators OperatorID equals ID; for cashiers it points at the
// owning operator and is fixed at creation time.
type User struct {
	ID           uint      `gorm:"primaryKey" json:"id"`
	OperatorID   uint      `gorm:"not null;uniqueIndex:idx_users_operator_username" json:"operator_id"`
	Username     string    `gorm:"size:64;not null;uniqueIndex:idx_users_operator_username" json:"username"`
	Email        *string   `gorm:"size:255" json:"email,omitempty"`
	PasswordHash string    `gorm:"size:255;not null" json:"-"`
	Role         Role      `gorm:"type:varchar(16);not null" json:"role"`
	FullName     string    `gorm:"size:255;not null" json:"full_name"`
	Phone        *string   `gorm:"size:32" json:"phone,omitempty"`
	IsActive     bool      `gorm:"not null;default:true" json:"is_active"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// Permission is the typed capability record for a cashier. Operators
// carry no permission row and bypass these checks.
type Permission struct {
	ID                    uint      `gorm:"primaryKey" json:"id"`
	UserID                uint      `gorm:"uniqueIndex;not null" json:"user_id"`
	CanCreateBookings     bool      `gorm:"not null;default:true" json:"can_create_bookings"`
	CanModifyBookings     bool      `gorm:"not null;default:false" json:"can_modify_bookings"`
	CanCancelBookings     bool      `gorm:"not null;default:false" json:"can_cancel_bookings"`
	CanApplyDiscounts     bool      `gorm:"not null;default:false" json:"can_apply_discounts"`
	MaxDiscountPercentage float64   `gorm:"not null;default:0" json:"max_discount_percentage"`
	CanProcessRefunds     bool      `gorm:"not null;default:false" json:"can_process_refunds"`
	CanViewReports        bool      `gorm:"not null;default:false" json:"can_view_reports"`
	CanManageInventory    bool      `gorm:"not null;default:false" json:"can_manage_inventory"`
	CreatedAt             time.Time `json:"created_at"`
	UpdatedAt             time.Time `json:"updated_at"`
}
