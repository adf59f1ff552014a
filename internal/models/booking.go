package models

import "time"

type BookingStatus string

const (
	StatusReserved   BookingStatus = "reserved"
	StatusCheckedIn  BookingStatus = "checked_in"
	StatusCheckedOut BookingStatus = "checked_out"
	StatusCancelled  BookingStatus = "cancelled"
)

type StayType string

const (
	StayDaily  StayType = "daily"
	Stay3Hours StayType = "3_hours"
	Stay6Hours StayType = "6_hours"
)

// Booking is the stay ledger head. AdditionalCharges, Discounts,
// TotalAmount and AmountPaid are incremental counters over the
// append-only ledger lines; every mutation happens inside a
// transaction that holds the booking row FOR UPDATE.
type Booking struct {
	ID                uint          `gorm:"primaryKey" json:"id"`
	Code              string        `gorm:"size:32;not null;uniqueIndex" json:"code"`
	OperatorID        uint          `gorm:"index;not null" json:"operator_id"`
	CashierID         uint          `gorm:"not null" json:"cashier_id"`
	CustomerID        uint          `gorm:"not null" json:"customer_id"`
	RoomID            uint          `gorm:"index;not null" json:"room_id"`
	CheckIn           time.Time     `gorm:"not null" json:"check_in"`
	ExpectedCheckout  time.Time     `gorm:"not null" json:"expected_checkout"`
	ActualCheckout    *time.Time    `json:"actual_checkout,omitempty"`
	StayType          StayType      `gorm:"type:varchar(16);not null;default:'daily'" json:"stay_type"`
	NumberOfNights    int           `gorm:"not null;default:1" json:"number_of_nights"`
	NumberOfGuests    int           `gorm:"not null;default:1" json:"number_of_guests"`
	GuestAge          *int          `json:"guest_age,omitempty"`
	GuestNationality  *string       `gorm:"size:64" json:"guest_nationality,omitempty"`
	GuestOrigin       *string       `gorm:"size:128" json:"guest_origin,omitempty"`
	BasePrice         float64       `gorm:"not null" json:"base_price"`
	AdditionalIncome  float64       `gorm:"not null;default:0" json:"additional_income"`
	AdditionalCharges float64       `gorm:"not null;default:0" json:"additional_charges"`
	Discounts         float64       `gorm:"not null;default:0" json:"discounts"`
	TotalAmount       float64       `gorm:"not null" json:"total_amount"`
	AmountPaid        float64       `gorm:"not null;default:0" json:"amount_paid"`
	Status            BookingStatus `gorm:"type:varchar(16);not null;default:'checked_in'" json:"status"`
	Notes             *string       `json:"notes,omitempty"`
	CreatedAt         time.Time     `json:"created_at"`
	UpdatedAt         time.Time     `json:"updated_at"`

	Customer *Customer `gorm:"foreignKey:CustomerID" json:"customer,omitempty"`
	Room     *Room     `gorm:"foreignKey:RoomID" json:"room,omitempty"`
}

// Balance is always the live difference, never stored.
func (b *Booking) Balance() float64 {
	return b.TotalAmount - b.AmountPaid
}

// Active reports whether ledger mutations are still permitted.
func (b *Booking) Active() bool {
	return b.Status == StatusCheckedIn || b.Status == StatusReserved
}
