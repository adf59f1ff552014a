package dto

import (
	"time"

	"github.com/hotelio/frontdesk/internal/models"
)

type RegisterOperatorRequest struct {
	Email    string  `json:"email" validate:"required,email"`
	Password string  `json:"password" validate:"required,min=8"`
	FullName string  `json:"full_name" validate:"required"`
	Phone    *string `json:"phone,omitempty"`
}

type OperatorLoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type CashierLoginRequest struct {
	OperatorEmail string `json:"operator_email" validate:"required,email"`
	Username      string `json:"username" validate:"required"`
	Password      string `json:"password" validate:"required"`
}

type StepUpRequest struct {
	Password string `json:"password" validate:"required"`
	Scope    string `json:"scope" validate:"required,oneof=discount refund"`
}

type CreateCashierRequest struct {
	Username              string  `json:"username" validate:"required,min=3"`
	Password              string  `json:"password" validate:"required,min=8"`
	FullName              string  `json:"full_name" validate:"required"`
	Phone                 *string `json:"phone,omitempty"`
	CanCreateBookings     bool    `json:"can_create_bookings"`
	CanModifyBookings     bool    `json:"can_modify_bookings"`
	CanCancelBookings     bool    `json:"can_cancel_bookings"`
	CanApplyDiscounts     bool    `json:"can_apply_discounts"`
	MaxDiscountPercentage float64 `json:"max_discount_percentage" validate:"gte=0,lte=100"`
	CanProcessRefunds     bool    `json:"can_process_refunds"`
	CanViewReports        bool    `json:"can_view_reports"`
	CanManageInventory    bool    `json:"can_manage_inventory"`
}

type UpdatePermissionsRequest struct {
	CanCreateBookings     bool    `json:"can_create_bookings"`
	CanModifyBookings     bool    `json:"can_modify_bookings"`
	CanCancelBookings     bool    `json:"can_cancel_bookings"`
	CanApplyDiscounts     bool    `json:"can_apply_discounts"`
	MaxDiscountPercentage float64 `json:"max_discount_percentage" validate:"gte=0,lte=100"`
	CanProcessRefunds     bool    `json:"can_process_refunds"`
	CanViewReports        bool    `json:"can_view_reports"`
	CanManageInventory    bool    `json:"can_manage_inventory"`
}

type RoomRequest struct {
	Number           string   `json:"number" validate:"required"`
	RoomType         string   `json:"room_type" validate:"required"`
	BasePrice        float64  `json:"base_price" validate:"required,gt=0"`
	ShortStay3hPrice *float64 `json:"short_stay_3h_price,omitempty" validate:"omitempty,gt=0"`
	ShortStay6hPrice *float64 `json:"short_stay_6h_price,omitempty" validate:"omitempty,gt=0"`
	Floor            *int     `json:"floor,omitempty"`
	MaxOccupancy     int      `json:"max_occupancy" validate:"gte=0"`
	Description      *string  `json:"description,omitempty"`
}

type RoomStatusRequest struct {
	Status models.RoomStatus `json:"status" validate:"required,oneof=available maintenance"`
}

type CustomerRequest struct {
	FullName       string  `json:"full_name" validate:"required"`
	DocumentType   string  `json:"document_type,omitempty"`
	DocumentNumber *string `json:"document_number,omitempty"`
	Phone          *string `json:"phone,omitempty"`
	Whatsapp       *string `json:"whatsapp,omitempty"`
	Email          *string `json:"email,omitempty" validate:"omitempty,email"`
	Address        *string `json:"address,omitempty"`
	City           *string `json:"city,omitempty"`
	Country        string  `json:"country,omitempty"`
	Age            *int    `json:"age,omitempty" validate:"omitempty,gte=0"`
	Nationality    *string `json:"nationality,omitempty"`
	Origin         *string `json:"origin,omitempty"`
}

type CreateBookingRequest struct {
	CustomerID       uint            `json:"customer_id" validate:"required"`
	RoomID           uint            `json:"room_id" validate:"required"`
	StayType         models.StayType `json:"stay_type" validate:"required,oneof=daily 3_hours 6_hours"`
	NumberOfNights   int             `json:"number_of_nights" validate:"gte=0"`
	NumberOfGuests   int             `json:"number_of_guests" validate:"required,gt=0"`
	CheckIn          time.Time       `json:"check_in" validate:"required"`
	ExpectedCheckout time.Time       `json:"expected_checkout" validate:"required,gtfield=CheckIn"`
	AdditionalIncome float64         `json:"additional_income" validate:"gte=0"`
	GuestAge         *int            `json:"guest_age,omitempty" validate:"omitempty,gte=0"`
	GuestNationality *string         `json:"guest_nationality,omitempty"`
	GuestOrigin      *string         `json:"guest_origin,omitempty"`
	Notes            *string         `json:"notes,omitempty"`
	Reserve          bool            `json:"reserve"`
}

type ChargeRequest struct {
	ProductID   *uint   `json:"product_id,omitempty"`
	Description string  `json:"description,omitempty"`
	Quantity    int     `json:"quantity" validate:"required,gt=0"`
	UnitPrice   float64 `json:"unit_price" validate:"gte=0"`
	TaxRate     float64 `json:"tax_rate" validate:"gte=0,lte=100"`
}

type PaymentSplitRequest struct {
	Method               models.PaymentMethod `json:"method" validate:"required,oneof=cash card transfer check other"`
	Amount               float64              `json:"amount" validate:"required,gt=0"`
	CardLastDigits       *string              `json:"card_last_digits,omitempty" validate:"omitempty,len=4"`
	TransactionReference *string              `json:"transaction_reference,omitempty"`
}

type PaymentRequest struct {
	Amount               float64               `json:"amount" validate:"required,gt=0"`
	Method               models.PaymentMethod  `json:"method" validate:"required,oneof=cash card transfer check other"`
	CardLastDigits       *string               `json:"card_last_digits,omitempty" validate:"omitempty,len=4"`
	TransactionReference *string               `json:"transaction_reference,omitempty"`
	Notes                *string               `json:"notes,omitempty"`
	Splits               []PaymentSplitRequest `json:"splits,omitempty" validate:"omitempty,dive"`
}

type DiscountRequest struct {
	DiscountType models.DiscountType `json:"discount_type" validate:"required,oneof=percentage fixed"`
	Value        float64             `json:"value" validate:"required,gt=0"`
	Reason       string              `json:"reason" validate:"required"`
	StepUpToken  string              `json:"step_up_token,omitempty"`
}

type RefundRequest struct {
	PaymentID   *uint   `json:"payment_id,omitempty"`
	Amount      float64 `json:"amount" validate:"required,gt=0"`
	Reason      string  `json:"reason" validate:"required"`
	Notes       *string `json:"notes,omitempty"`
	StepUpToken string  `json:"step_up_token" validate:"required"`
}

type ProductRequest struct {
	Category       string  `json:"category" validate:"required"`
	Name           string  `json:"name" validate:"required"`
	Description    *string `json:"description,omitempty"`
	Price          float64 `json:"price" validate:"required,gte=0"`
	Cost           float64 `json:"cost" validate:"gte=0"`
	TaxRate        float64 `json:"tax_rate" validate:"gte=0,lte=100"`
	StockQuantity  int     `json:"stock_quantity" validate:"gte=0"`
	TrackInventory bool    `json:"track_inventory"`
	IsActive       bool    `json:"is_active"`
}

type RestockRequest struct {
	Quantity int `json:"quantity" validate:"required,gt=0"`
}

type OpenShiftRequest struct {
	InitialCash float64 `json:"initial_cash" validate:"gte=0"`
}

type CloseShiftRequest struct {
	ActualCash float64 `json:"actual_cash" validate:"gte=0"`
	Notes      *string `json:"notes,omitempty"`
}

type ReviewShiftRequest struct {
	Decision string  `json:"decision" validate:"required,oneof=approve reject"`
	Notes    *string `json:"notes,omitempty"`
}
