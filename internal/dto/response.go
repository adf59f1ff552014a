package dto

import (
	"time"

	"github.com/hotelio/frontdesk/internal/models"
)

type ErrorResponse struct {
	Message string `json:"message"`
}

type LoginResponse struct {
	Token string       `json:"token"`
	User  UserResponse `json:"user"`
}

type StepUpResponse struct {
	Token string `json:"step_up_token"`
	Scope string `json:"scope"`
}

type UserResponse struct {
	ID         uint        `json:"id"`
	OperatorID uint        `json:"operator_id"`
	Username   string      `json:"username"`
	Email      *string     `json:"email,omitempty"`
	Role       models.Role `json:"role"`
	FullName   string      `json:"full_name"`
	IsActive   bool        `json:"is_active"`
}

type BookingResponse struct {
	ID                uint                 `json:"id"`
	Code              string               `json:"code"`
	CustomerID        uint                 `json:"customer_id"`
	RoomID            uint                 `json:"room_id"`
	CheckIn           time.Time            `json:"check_in"`
	ExpectedCheckout  time.Time            `json:"expected_checkout"`
	ActualCheckout    *time.Time           `json:"actual_checkout,omitempty"`
	StayType          models.StayType      `json:"stay_type"`
	NumberOfNights    int                  `json:"number_of_nights"`
	NumberOfGuests    int                  `json:"number_of_guests"`
	BasePrice         float64              `json:"base_price"`
	AdditionalIncome  float64              `json:"additional_income"`
	AdditionalCharges float64              `json:"additional_charges"`
	Discounts         float64              `json:"discounts"`
	TotalAmount       float64              `json:"total_amount"`
	AmountPaid        float64              `json:"amount_paid"`
	Balance           float64              `json:"balance"`
	Status            models.BookingStatus `json:"status"`
	Customer          *models.Customer     `json:"customer,omitempty"`
	Room              *models.Room         `json:"room,omitempty"`
	CreatedAt         time.Time            `json:"created_at"`
}

type ShiftResponse struct {
	ID                    uint               `json:"id"`
	CashierID             uint               `json:"cashier_id"`
	OpeningTime           time.Time          `json:"opening_time"`
	InitialCash           float64            `json:"initial_cash"`
	ClosingTime           *time.Time         `json:"closing_time,omitempty"`
	ExpectedCash          *float64           `json:"expected_cash,omitempty"`
	ActualCash            *float64           `json:"actual_cash,omitempty"`
	Variance              float64            `json:"variance"`
	TotalCashPayments     float64            `json:"total_cash_payments"`
	TotalCardPayments     float64            `json:"total_card_payments"`
	TotalTransferPayments float64            `json:"total_transfer_payments"`
	TotalCheckPayments    float64            `json:"total_check_payments"`
	TotalOtherPayments    float64            `json:"total_other_payments"`
	Status                models.ShiftStatus `json:"status"`
	Notes                 *string            `json:"notes,omitempty"`
	ReviewNotes           *string            `json:"review_notes,omitempty"`
	ReviewedBy            *uint              `json:"reviewed_by,omitempty"`
}

func ToUserResponse(u *models.User) UserResponse {
	return UserResponse{
		ID:         u.ID,
		OperatorID: u.OperatorID,
		Username:   u.Username,
		Email:      u.Email,
		Role:       u.Role,
		FullName:   u.FullName,
		IsActive:   u.IsActive,
	}
}

func ToBookingResponse(b *models.Booking) BookingResponse {
	return BookingResponse{
		ID:                b.ID,
		Code:              b.Code,
		CustomerID:        b.CustomerID,
		RoomID:            b.RoomID,
		CheckIn:           b.CheckIn,
		ExpectedCheckout:  b.ExpectedCheckout,
		ActualCheckout:    b.ActualCheckout,
		StayType:          b.StayType,
		NumberOfNights:    b.NumberOfNights,
		NumberOfGuests:    b.NumberOfGuests,
		BasePrice:         b.BasePrice,
		AdditionalIncome:  b.AdditionalIncome,
		AdditionalCharges: b.AdditionalCharges,
		Discounts:         b.Discounts,
		TotalAmount:       b.TotalAmount,
		AmountPaid:        b.AmountPaid,
		Balance:           b.Balance(),
		Status:            b.Status,
		Customer:          b.Customer,
		Room:              b.Room,
		CreatedAt:         b.CreatedAt,
	}
}

func ToShiftResponse(s *models.CashRegisterShift) ShiftResponse {
	return ShiftResponse{
		ID:                    s.ID,
		CashierID:             s.CashierID,
		OpeningTime:           s.OpeningTime,
		InitialCash:           s.InitialCash,
		ClosingTime:           s.ClosingTime,
		ExpectedCash:          s.ExpectedCash,
		ActualCash:            s.ActualCash,
		Variance:              s.Variance(),
		TotalCashPayments:     s.TotalCashPayments,
		TotalCardPayments:     s.TotalCardPayments,
		TotalTransferPayments: s.TotalTransferPayments,
		TotalCheckPayments:    s.TotalCheckPayments,
		TotalOtherPayments:    s.TotalOtherPayments,
		Status:                s.Status,
		Notes:                 s.Notes,
		ReviewNotes:           s.ReviewNotes,
		ReviewedBy:            s.ReviewedBy,
	}
}
