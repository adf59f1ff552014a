package models

import "time"

type ShiftStatus string

const (
	ShiftOpen            ShiftStatus = "open"
	ShiftPendingApproval ShiftStatus = "pending_approval"
	ShiftApproved        ShiftStatus = "approved"
	ShiftRejected        ShiftStatus = "rejected"
)

// CashRegisterShift is a cashier's drawer session. At most one open
// shift per cashier exists at any time; the rule is enforced both by a
// partial unique index and by a locked check inside the opening
// transaction. Shifts are never deleted.
type CashRegisterShift struct {
	ID                    uint        `gorm:"primaryKey" json:"id"`
	OperatorID            uint        `gorm:"index;not null" json:"operator_id"`
	CashierID             uint        `gorm:"index;not null" json:"cashier_id"`
	OpeningTime           time.Time   `gorm:"not null" json:"opening_time"`
	InitialCash           float64     `gorm:"not null" json:"initial_cash"`
	ClosingTime           *time.Time  `json:"closing_time,omitempty"`
	ActualCash            *float64    `json:"actual_cash,omitempty"`
	ExpectedCash          *float64    `json:"expected_cash,omitempty"`
	TotalCashPayments     float64     `gorm:"not null;default:0" json:"total_cash_payments"`
	TotalCardPayments     float64     `gorm:"not null;default:0" json:"total_card_payments"`
	TotalTransferPayments float64     `gorm:"not null;default:0" json:"total_transfer_payments"`
	TotalCheckPayments    float64     `gorm:"not null;default:0" json:"total_check_payments"`
	TotalOtherPayments    float64     `gorm:"not null;default:0" json:"total_other_payments"`
	Status                ShiftStatus `gorm:"type:varchar(24);not null;default:'open'" json:"status"`
	Notes                 *string     `json:"notes,omitempty"`
	ReviewNotes           *string     `json:"review_notes,omitempty"`
	ReviewedBy            *uint       `json:"reviewed_by,omitempty"`
	CreatedAt             time.Time   `json:"created_at"`
	UpdatedAt             time.Time   `json:"updated_at"`
}

// Variance is declared actual cash minus system-expected cash. Only
// meaningful once the shift has been closed.
func (s *CashRegisterShift) Variance() float64 {
	if s.ActualCash == nil || s.ExpectedCash == nil {
		return 0
	}
	return *s.ActualCash - *s.ExpectedCash
}
