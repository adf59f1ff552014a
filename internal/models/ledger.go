package models

import "time"

// Ledger lines are append-only. Rows are never updated or deleted once
// written; booking counters are the fold of these lines plus base price.

type PaymentMethod string

const (
	MethodCash     PaymentMethod = "cash"
	MethodCard     PaymentMethod = "card"
	MethodTransfer PaymentMethod = "transfer"
	MethodCheck    PaymentMethod = "check"
	MethodOther    PaymentMethod = "other"
)

type DiscountType string

const (
	DiscountPercentage DiscountType = "percentage"
	DiscountFixed      DiscountType = "fixed"
)

// Charge is a POS line added to a booking (minibar, restaurant, ...).
type Charge struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	BookingID   uint      `gorm:"index;not null" json:"booking_id"`
	ProductID   *uint     `json:"product_id,omitempty"`
	CashierID   uint      `gorm:"not null" json:"cashier_id"`
	Description string    `gorm:"size:255;not null" json:"description"`
	Quantity    int       `gorm:"not null" json:"quantity"`
	UnitPrice   float64   `gorm:"not null" json:"unit_price"`
	TaxAmount   float64   `gorm:"not null;default:0" json:"tax_amount"`
	TotalAmount float64   `gorm:"not null" json:"total_amount"`
	CreatedAt   time.Time `json:"created_at"`
}

type Payment struct {
	ID                   uint          `gorm:"primaryKey" json:"id"`
	BookingID            uint          `gorm:"index;not null" json:"booking_id"`
	CashierID            uint          `gorm:"index;not null" json:"cashier_id"`
	Amount               float64       `gorm:"not null" json:"amount"`
	Method               PaymentMethod `gorm:"type:varchar(16);not null" json:"method"`
	CardLastDigits       *string       `gorm:"size:4" json:"card_last_digits,omitempty"`
	TransactionReference *string       `gorm:"size:128" json:"transaction_reference,omitempty"`
	Notes                *string       `json:"notes,omitempty"`
	PaidAt               time.Time     `gorm:"index;not null" json:"paid_at"`
	CreatedAt            time.Time     `json:"created_at"`

	Splits []PaymentSplit `gorm:"foreignKey:PaymentID" json:"splits,omitempty"`
}

// PaymentSplit records the composition of a mixed-method payment.
type PaymentSplit struct {
	ID                   uint          `gorm:"primaryKey" json:"id"`
	PaymentID            uint          `gorm:"index;not null" json:"payment_id"`
	Method               PaymentMethod `gorm:"type:varchar(16);not null" json:"method"`
	Amount               float64       `gorm:"not null" json:"amount"`
	CardLastDigits       *string       `gorm:"size:4" json:"card_last_digits,omitempty"`
	TransactionReference *string       `gorm:"size:128" json:"transaction_reference,omitempty"`
}

type Discount struct {
	ID                    uint         `gorm:"primaryKey" json:"id"`
	BookingID             uint         `gorm:"index;not null" json:"booking_id"`
	CashierID             uint         `gorm:"not null" json:"cashier_id"`
	AuthorizedBy          *uint        `json:"authorized_by,omitempty"`
	DiscountType          DiscountType `gorm:"type:varchar(16);not null" json:"discount_type"`
	DiscountValue         float64      `gorm:"not null" json:"discount_value"`
	DiscountAmount        float64      `gorm:"not null" json:"discount_amount"`
	Reason                string       `gorm:"size:255;not null" json:"reason"`
	RequiresAuthorization bool         `gorm:"not null;default:false" json:"requires_authorization"`
	CreatedAt             time.Time    `json:"created_at"`
}

type Refund struct {
	ID           uint      `gorm:"primaryKey" json:"id"`
	BookingID    uint      `gorm:"index;not null" json:"booking_id"`
	PaymentID    *uint     `json:"payment_id,omitempty"`
	CashierID    uint      `gorm:"not null" json:"cashier_id"`
	AuthorizedBy uint      `gorm:"not null" json:"authorized_by"`
	Amount       float64   `gorm:"not null" json:"amount"`
	Reason       string    `gorm:"size:255;not null" json:"reason"`
	Notes        *string   `json:"notes,omitempty"`
	CreatedAt    time.Time `json:"created_at"`
}
