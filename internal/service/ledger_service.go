package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/hotelio/frontdesk/internal/models"
	"github.com/hotelio/frontdesk/internal/repository"
	"gorm.io/gorm"
)

var (
	ErrBookingNotFound       = errors.New("booking not found")
	ErrBookingNotActive      = errors.New("booking is not active")
	ErrBookingNotCheckedIn   = errors.New("booking is not checked in")
	ErrCustomerNotFound      = errors.New("customer not found")
	ErrProductNotFound       = errors.New("product not found")
	ErrProductInactive       = errors.New("product is not active")
	ErrInsufficientStock     = errors.New("insufficient stock")
	ErrInvalidAmount         = errors.New("amount must be greater than zero")
	ErrPaymentExceedsBalance = errors.New("payment exceeds outstanding balance")
	ErrDiscountExceedsTotal  = errors.New("discount exceeds outstanding balance")
	ErrRefundExceedsPaid     = errors.New("refund exceeds amount paid")
	ErrSplitMismatch         = errors.New("split amounts do not sum to payment amount")
	ErrBookingHasPayments    = errors.New("booking has payments; refund them before cancelling")
	ErrBalanceNotSettled     = errors.New("booking balance is not settled")
)

// BalanceNotSettledError carries the outstanding amount that blocks a
// checkout. errors.Is(err, ErrBalanceNotSettled) matches it.
type BalanceNotSettledError struct {
	Pending float64
}

func (e *BalanceNotSettledError) Error() string {
	return fmt.Sprintf("booking balance is not settled: %.2f pending", e.Pending)
}

func (e *BalanceNotSettledError) Is(target error) bool {
	return target == ErrBalanceNotSettled
}

type CreateBookingInput struct {
	CustomerID       uint
	RoomID           uint
	StayType         models.StayType
	NumberOfNights   int
	NumberOfGuests   int
	CheckIn          time.Time
	ExpectedCheckout time.Time
	AdditionalIncome float64
	GuestAge         *int
	GuestNationality *string
	GuestOrigin      *string
	Notes            *string
	Reserve          bool
}

type ChargeInput struct {
	ProductID   *uint
	Description string
	Quantity    int
	UnitPrice   float64
	TaxRate     float64
}

type SplitInput struct {
	Method               models.PaymentMethod
	Amount               float64
	CardLastDigits       *string
	TransactionReference *string
}

type PaymentInput struct {
	Amount               float64
	Method               models.PaymentMethod
	CardLastDigits       *string
	TransactionReference *string
	Notes                *string
	Splits               []SplitInput
}

type DiscountInput struct {
	DiscountType models.DiscountType
	Value        float64
	Reason       string
	StepUpToken  string
}

type RefundInput struct {
	PaymentID   *uint
	Amount      float64
	Reason      string
	Notes       *string
	StepUpToken string
}

// BookingFolio is a booking together with its full ledger.
type BookingFolio struct {
	Booking   *models.Booking   `json:"booking"`
	Charges   []models.Charge   `json:"charges"`
	Payments  []models.Payment  `json:"payments"`
	Discounts []models.Discount `json:"discounts"`
	Refunds   []models.Refund   `json:"refunds"`
}

// LedgerService owns the booking lifecycle and its append-only money
// ledger. Every mutation locks the booking row first, re-derives the
// balance from the locked counters and writes lines plus counters in the
// same transaction, so TotalAmount - AmountPaid never goes negative.
type LedgerService interface {
	CreateBooking(ctx context.Context, actor Actor, in CreateBookingInput) (*models.Booking, error)
	CheckInReserved(ctx context.Context, actor Actor, bookingID uint) (*models.Booking, error)
	AddCharge(ctx context.Context, actor Actor, bookingID uint, in ChargeInput) (*models.Charge, error)
	ApplyPayment(ctx context.Context, actor Actor, bookingID uint, in PaymentInput) (*models.Payment, error)
	ApplyDiscount(ctx context.Context, actor Actor, bookingID uint, in DiscountInput) (*models.Discount, error)
	Refund(ctx context.Context, actor Actor, bookingID uint, in RefundInput) (*models.Refund, error)
	Cancel(ctx context.Context, actor Actor, bookingID uint) (*models.Booking, error)
	Checkout(ctx context.Context, actor Actor, bookingID uint) (*models.Booking, error)
	Get(ctx context.Context, actor Actor, bookingID uint) (*models.Booking, error)
	Folio(ctx context.Context, actor Actor, bookingID uint) (*BookingFolio, error)
	List(ctx context.Context, actor Actor, q repository.BookingSearch) ([]models.Booking, error)
	ListActive(ctx context.Context, actor Actor) ([]models.Booking, error)
}

type ledgerService struct {
	bookings  repository.BookingRepository
	rooms     repository.RoomRepository
	customers repository.CustomerRepository
	products  repository.ProductRepository
	ledger    repository.LedgerRepository
	pricing   *PricingCalculator
	gate      *AuthorizationGate
	stepUp    StepUpService
	notifier  *Notifier
}

func NewLedgerService(
	bookings repository.BookingRepository,
	rooms repository.RoomRepository,
	customers repository.CustomerRepository,
	products repository.ProductRepository,
	ledger repository.LedgerRepository,
	pricing *PricingCalculator,
	gate *AuthorizationGate,
	stepUp StepUpService,
	notifier *Notifier,
) LedgerService {
	return &ledgerService{
		bookings:  bookings,
		rooms:     rooms,
		customers: customers,
		products:  products,
		ledger:    ledger,
		pricing:   pricing,
		gate:      gate,
		stepUp:    stepUp,
		notifier:  notifier,
	}
}

func newBookingCode() string {
	return "BK-" + strings.ToUpper(uuid.NewString()[:8])
}

// bookingParties extracts the guest name and room number for event
// payloads. Associations may be absent on bookings built in-process.
func bookingParties(b *models.Booking) (customerName, roomNumber string) {
	if b.Customer != nil {
		customerName = b.Customer.FullName
	}
	if b.Room != nil {
		roomNumber = b.Room.Number
	}
	return customerName, roomNumber
}

// CreateBooking opens a stay. The room row is locked before the
// availability check, so of N concurrent check-ins on the same room
// exactly one commits and the rest observe the occupied status.
func (s *ledgerService) CreateBooking(ctx context.Context, actor Actor, in CreateBookingInput) (*models.Booking, error) {
	if err := s.gate.CanCreateBooking(actor); err != nil {
		return nil, err
	}
	nights, err := s.pricing.StayNights(in.StayType, in.NumberOfNights)
	if err != nil {
		return nil, err
	}
	customer, err := s.customers.FindByID(ctx, actor.OperatorID, in.CustomerID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrCustomerNotFound
		}
		return nil, err
	}

	var booking *models.Booking
	var roomNumber string
	err = s.bookings.GetDB().Transaction(func(tx *gorm.DB) error {
		room, err := s.rooms.FindByIDForUpdate(ctx, tx, actor.OperatorID, in.RoomID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrRoomNotFound
			}
			return err
		}
		if room.Status != models.RoomAvailable {
			return ErrRoomNotAvailable
		}
		roomNumber = room.Number

		rate, err := s.pricing.StayPrice(room, in.StayType)
		if err != nil {
			return err
		}

		status := models.StatusCheckedIn
		roomStatus := models.RoomOccupied
		if in.Reserve {
			status = models.StatusReserved
			roomStatus = models.RoomReserved
		}

		booking = &models.Booking{
			Code:             newBookingCode(),
			OperatorID:       actor.OperatorID,
			CashierID:        actor.UserID,
			CustomerID:       customer.ID,
			RoomID:           room.ID,
			CheckIn:          in.CheckIn,
			ExpectedCheckout: in.ExpectedCheckout,
			StayType:         in.StayType,
			NumberOfNights:   nights,
			NumberOfGuests:   in.NumberOfGuests,
			GuestAge:         in.GuestAge,
			GuestNationality: in.GuestNationality,
			GuestOrigin:      in.GuestOrigin,
			BasePrice:        rate,
			AdditionalIncome: Round2(in.AdditionalIncome),
			TotalAmount:      s.pricing.StayTotal(rate, nights, in.AdditionalIncome),
			Status:           status,
			Notes:            in.Notes,
		}
		if err := s.bookings.Create(ctx, tx, booking); err != nil {
			return err
		}
		return s.rooms.UpdateStatus(ctx, tx, room.ID, roomStatus)
	})
	if err != nil {
		return nil, err
	}

	booking.Customer = customer
	s.notifier.BookingCreated(BookingEvent{
		BookingID:    booking.ID,
		Code:         booking.Code,
		OperatorID:   booking.OperatorID,
		CashierID:    booking.CashierID,
		CustomerID:   booking.CustomerID,
		CustomerName: customer.FullName,
		RoomNumber:   roomNumber,
		TotalAmount:  booking.TotalAmount,
		Timestamp:    time.Now(),
	})
	return booking, nil
}

// CheckInReserved turns a reservation into an in-house stay.
func (s *ledgerService) CheckInReserved(ctx context.Context, actor Actor, bookingID uint) (*models.Booking, error) {
	if err := s.gate.CanModifyBooking(actor); err != nil {
		return nil, err
	}
	var booking *models.Booking
	err := s.bookings.GetDB().Transaction(func(tx *gorm.DB) error {
		var err error
		booking, err = s.lockBooking(ctx, tx, actor.OperatorID, bookingID)
		if err != nil {
			return err
		}
		if booking.Status != models.StatusReserved {
			return ErrBookingNotActive
		}
		booking.Status = models.StatusCheckedIn
		if err := s.bookings.Save(ctx, tx, booking); err != nil {
			return err
		}
		return s.rooms.UpdateStatus(ctx, tx, booking.RoomID, models.RoomOccupied)
	})
	if err != nil {
		return nil, err
	}
	return booking, nil
}

// AddCharge appends a POS line. Product-backed charges take the price and
// tax rate from the product and decrement tracked stock under the product
// row lock.
func (s *ledgerService) AddCharge(ctx context.Context, actor Actor, bookingID uint, in ChargeInput) (*models.Charge, error) {
	if err := s.gate.CanModifyBooking(actor); err != nil {
		return nil, err
	}
	if in.Quantity <= 0 {
		return nil, ErrInvalidAmount
	}

	var charge *models.Charge
	var booking *models.Booking
	err := s.bookings.GetDB().Transaction(func(tx *gorm.DB) error {
		var err error
		booking, err = s.lockBooking(ctx, tx, actor.OperatorID, bookingID)
		if err != nil {
			return err
		}
		if !booking.Active() {
			return ErrBookingNotActive
		}

		description := in.Description
		unitPrice := in.UnitPrice
		taxRate := in.TaxRate
		if in.ProductID != nil {
			product, err := s.products.FindByIDForUpdate(ctx, tx, actor.OperatorID, *in.ProductID)
			if err != nil {
				if errors.Is(err, gorm.ErrRecordNotFound) {
					return ErrProductNotFound
				}
				return err
			}
			if !product.IsActive {
				return ErrProductInactive
			}
			if product.TrackInventory {
				if product.StockQuantity < in.Quantity {
					return ErrInsufficientStock
				}
				if err := s.products.DecrementStock(ctx, tx, product.ID, in.Quantity); err != nil {
					return err
				}
			}
			description = product.Name
			unitPrice = product.Price
			taxRate = product.TaxRate
		}
		if unitPrice < 0 {
			return ErrInvalidAmount
		}

		tax, total := s.pricing.ChargeAmounts(unitPrice, taxRate, in.Quantity)
		charge = &models.Charge{
			BookingID:   booking.ID,
			ProductID:   in.ProductID,
			CashierID:   actor.UserID,
			Description: description,
			Quantity:    in.Quantity,
			UnitPrice:   unitPrice,
			TaxAmount:   tax,
			TotalAmount: total,
		}
		if err := s.ledger.CreateCharge(ctx, tx, charge); err != nil {
			return err
		}
		booking.AdditionalCharges = Round2(booking.AdditionalCharges + total)
		booking.TotalAmount = Round2(booking.TotalAmount + total)
		return s.bookings.Save(ctx, tx, booking)
	})
	if err != nil {
		return nil, err
	}

	customerName, roomNumber := bookingParties(booking)
	s.notifier.ChargeAdded(ChargeEvent{
		BookingID:    booking.ID,
		Code:         booking.Code,
		OperatorID:   booking.OperatorID,
		CashierID:    actor.UserID,
		CustomerName: customerName,
		RoomNumber:   roomNumber,
		Description:  charge.Description,
		Quantity:     charge.Quantity,
		Amount:       charge.TotalAmount,
		Timestamp:    time.Now(),
	})
	return charge, nil
}

// ApplyPayment records a payment against the outstanding balance. A
// payment may never exceed the balance, so AmountPaid stays within
// TotalAmount.
func (s *ledgerService) ApplyPayment(ctx context.Context, actor Actor, bookingID uint, in PaymentInput) (*models.Payment, error) {
	if err := s.gate.CanModifyBooking(actor); err != nil {
		return nil, err
	}
	amount := Round2(in.Amount)
	if amount <= 0 {
		return nil, ErrInvalidAmount
	}
	if len(in.Splits) > 0 {
		var sum float64
		for _, split := range in.Splits {
			if split.Amount <= 0 {
				return nil, ErrInvalidAmount
			}
			sum += split.Amount
		}
		if Round2(sum) != amount {
			return nil, ErrSplitMismatch
		}
	}

	var payment *models.Payment
	var booking *models.Booking
	err := s.bookings.GetDB().Transaction(func(tx *gorm.DB) error {
		var err error
		booking, err = s.lockBooking(ctx, tx, actor.OperatorID, bookingID)
		if err != nil {
			return err
		}
		if !booking.Active() {
			return ErrBookingNotActive
		}
		if amount > Round2(booking.Balance()) {
			return ErrPaymentExceedsBalance
		}

		payment = &models.Payment{
			BookingID:            booking.ID,
			CashierID:            actor.UserID,
			Amount:               amount,
			Method:               in.Method,
			CardLastDigits:       in.CardLastDigits,
			TransactionReference: in.TransactionReference,
			Notes:                in.Notes,
			PaidAt:               time.Now(),
		}
		for _, split := range in.Splits {
			payment.Splits = append(payment.Splits, models.PaymentSplit{
				Method:               split.Method,
				Amount:               Round2(split.Amount),
				CardLastDigits:       split.CardLastDigits,
				TransactionReference: split.TransactionReference,
			})
		}
		if err := s.ledger.CreatePayment(ctx, tx, payment); err != nil {
			return err
		}
		booking.AmountPaid = Round2(booking.AmountPaid + amount)
		return s.bookings.Save(ctx, tx, booking)
	})
	if err != nil {
		return nil, err
	}

	customerName, roomNumber := bookingParties(booking)
	s.notifier.PaymentRecorded(PaymentEvent{
		BookingID:    booking.ID,
		Code:         booking.Code,
		OperatorID:   booking.OperatorID,
		CashierID:    actor.UserID,
		CustomerName: customerName,
		RoomNumber:   roomNumber,
		Amount:       amount,
		Method:       string(in.Method),
		Balance:      Round2(booking.Balance()),
		Timestamp:    time.Now(),
	})
	return payment, nil
}

// ApplyDiscount reduces the booking total. Both discount rules are always
// evaluated: the cashier's percentage cap, and supervisor approval for any
// discount above 10% of the total. The step-up token is consumed before
// the transaction opens; a token spent on a failed transaction is burned.
func (s *ledgerService) ApplyDiscount(ctx context.Context, actor Actor, bookingID uint, in DiscountInput) (*models.Discount, error) {
	if in.Value <= 0 {
		return nil, ErrInvalidAmount
	}

	booking, err := s.Get(ctx, actor, bookingID)
	if err != nil {
		return nil, err
	}
	amount := s.pricing.DiscountAmount(in.DiscountType, in.Value, booking.TotalAmount)

	stepUpRequired, err := s.gate.CheckDiscount(actor, in.DiscountType, in.Value, amount, booking.TotalAmount)
	if err != nil {
		return nil, err
	}
	var authorizedBy *uint
	if stepUpRequired {
		approver, err := s.stepUp.Consume(ctx, actor.OperatorID, in.StepUpToken, ScopeDiscount)
		if err != nil {
			return nil, err
		}
		authorizedBy = &approver
	}

	var discount *models.Discount
	err = s.bookings.GetDB().Transaction(func(tx *gorm.DB) error {
		booking, err := s.lockBooking(ctx, tx, actor.OperatorID, bookingID)
		if err != nil {
			return err
		}
		if !booking.Active() {
			return ErrBookingNotActive
		}
		// Recompute against the locked row; the preview above may be stale.
		amount = s.pricing.DiscountAmount(in.DiscountType, in.Value, booking.TotalAmount)
		if amount > Round2(booking.Balance()) {
			return ErrDiscountExceedsTotal
		}

		discount = &models.Discount{
			BookingID:             booking.ID,
			CashierID:             actor.UserID,
			AuthorizedBy:          authorizedBy,
			DiscountType:          in.DiscountType,
			DiscountValue:         in.Value,
			DiscountAmount:        amount,
			Reason:                in.Reason,
			RequiresAuthorization: stepUpRequired,
		}
		if err := s.ledger.CreateDiscount(ctx, tx, discount); err != nil {
			return err
		}
		booking.Discounts = Round2(booking.Discounts + amount)
		booking.TotalAmount = Round2(booking.TotalAmount - amount)
		return s.bookings.Save(ctx, tx, booking)
	})
	if err != nil {
		return nil, err
	}
	return discount, nil
}

// Refund returns money to the guest. Refunds always need supervisor
// approval and may never exceed what was actually paid.
func (s *ledgerService) Refund(ctx context.Context, actor Actor, bookingID uint, in RefundInput) (*models.Refund, error) {
	if err := s.gate.CanProcessRefund(actor); err != nil {
		return nil, err
	}
	amount := Round2(in.Amount)
	if amount <= 0 {
		return nil, ErrInvalidAmount
	}
	approver, err := s.stepUp.Consume(ctx, actor.OperatorID, in.StepUpToken, ScopeRefund)
	if err != nil {
		return nil, err
	}

	var refund *models.Refund
	var booking *models.Booking
	err = s.bookings.GetDB().Transaction(func(tx *gorm.DB) error {
		var err error
		booking, err = s.lockBooking(ctx, tx, actor.OperatorID, bookingID)
		if err != nil {
			return err
		}
		if amount > booking.AmountPaid {
			return ErrRefundExceedsPaid
		}

		refund = &models.Refund{
			BookingID:    booking.ID,
			PaymentID:    in.PaymentID,
			CashierID:    actor.UserID,
			AuthorizedBy: approver,
			Amount:       amount,
			Reason:       in.Reason,
			Notes:        in.Notes,
		}
		if err := s.ledger.CreateRefund(ctx, tx, refund); err != nil {
			return err
		}
		booking.AmountPaid = Round2(booking.AmountPaid - amount)
		return s.bookings.Save(ctx, tx, booking)
	})
	if err != nil {
		return nil, err
	}

	s.notifier.RefundIssued(RefundEvent{
		BookingID:    booking.ID,
		OperatorID:   booking.OperatorID,
		CashierID:    actor.UserID,
		AuthorizedBy: approver,
		Amount:       amount,
		Reason:       in.Reason,
		Timestamp:    time.Now(),
	})
	return refund, nil
}

// Cancel voids an active booking and releases its room. Paid amounts must
// be refunded first so money never disappears from the ledger.
func (s *ledgerService) Cancel(ctx context.Context, actor Actor, bookingID uint) (*models.Booking, error) {
	if err := s.gate.CanCancelBooking(actor); err != nil {
		return nil, err
	}
	var booking *models.Booking
	err := s.bookings.GetDB().Transaction(func(tx *gorm.DB) error {
		var err error
		booking, err = s.lockBooking(ctx, tx, actor.OperatorID, bookingID)
		if err != nil {
			return err
		}
		if !booking.Active() {
			return ErrBookingNotActive
		}
		if booking.AmountPaid > 0 {
			return ErrBookingHasPayments
		}
		booking.Status = models.StatusCancelled
		if err := s.bookings.Save(ctx, tx, booking); err != nil {
			return err
		}
		return s.rooms.UpdateStatus(ctx, tx, booking.RoomID, models.RoomAvailable)
	})
	if err != nil {
		return nil, err
	}

	customerName, roomNumber := bookingParties(booking)
	s.notifier.BookingCancelled(BookingEvent{
		BookingID:    booking.ID,
		Code:         booking.Code,
		OperatorID:   booking.OperatorID,
		CashierID:    actor.UserID,
		CustomerID:   booking.CustomerID,
		CustomerName: customerName,
		RoomNumber:   roomNumber,
		Timestamp:    time.Now(),
	})
	return booking, nil
}

// Checkout closes a settled stay: balance must be exactly zero, the room
// goes back to available and the customer's stay aggregates are bumped in
// the same transaction.
func (s *ledgerService) Checkout(ctx context.Context, actor Actor, bookingID uint) (*models.Booking, error) {
	if err := s.gate.CanModifyBooking(actor); err != nil {
		return nil, err
	}
	var booking *models.Booking
	err := s.bookings.GetDB().Transaction(func(tx *gorm.DB) error {
		var err error
		booking, err = s.lockBooking(ctx, tx, actor.OperatorID, bookingID)
		if err != nil {
			return err
		}
		if booking.Status != models.StatusCheckedIn {
			return ErrBookingNotCheckedIn
		}
		if pending := Round2(booking.Balance()); pending != 0 {
			return &BalanceNotSettledError{Pending: pending}
		}

		now := time.Now()
		booking.ActualCheckout = &now
		booking.Status = models.StatusCheckedOut
		if err := s.bookings.Save(ctx, tx, booking); err != nil {
			return err
		}
		if err := s.rooms.UpdateStatus(ctx, tx, booking.RoomID, models.RoomAvailable); err != nil {
			return err
		}
		return s.customers.RecordStay(ctx, tx, booking.CustomerID, booking.AmountPaid, now)
	})
	if err != nil {
		return nil, err
	}

	customerName, roomNumber := bookingParties(booking)
	s.notifier.BookingCheckedOut(BookingEvent{
		BookingID:    booking.ID,
		Code:         booking.Code,
		OperatorID:   booking.OperatorID,
		CashierID:    actor.UserID,
		CustomerID:   booking.CustomerID,
		CustomerName: customerName,
		RoomNumber:   roomNumber,
		TotalAmount:  booking.TotalAmount,
		Timestamp:    time.Now(),
	})
	summary := CheckoutSummaryEvent{
		BookingID:    booking.ID,
		Code:         booking.Code,
		OperatorID:   booking.OperatorID,
		CashierID:    actor.UserID,
		CustomerName: customerName,
		RoomNumber:   roomNumber,
		TotalAmount:  booking.TotalAmount,
		AmountPaid:   booking.AmountPaid,
		Timestamp:    time.Now(),
	}
	if booking.Customer != nil {
		summary.DocumentType = booking.Customer.DocumentType
		if booking.Customer.DocumentNumber != nil {
			summary.DocumentNumber = *booking.Customer.DocumentNumber
		}
	}
	s.notifier.CheckoutSummary(summary)
	return booking, nil
}

func (s *ledgerService) Get(ctx context.Context, actor Actor, bookingID uint) (*models.Booking, error) {
	booking, err := s.bookings.FindByID(ctx, actor.OperatorID, bookingID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrBookingNotFound
		}
		return nil, err
	}
	return booking, nil
}

func (s *ledgerService) Folio(ctx context.Context, actor Actor, bookingID uint) (*BookingFolio, error) {
	booking, err := s.Get(ctx, actor, bookingID)
	if err != nil {
		return nil, err
	}
	charges, err := s.ledger.ChargesByBooking(ctx, booking.ID)
	if err != nil {
		return nil, err
	}
	payments, err := s.ledger.PaymentsByBooking(ctx, booking.ID)
	if err != nil {
		return nil, err
	}
	discounts, err := s.ledger.DiscountsByBooking(ctx, booking.ID)
	if err != nil {
		return nil, err
	}
	refunds, err := s.ledger.RefundsByBooking(ctx, booking.ID)
	if err != nil {
		return nil, err
	}
	return &BookingFolio{
		Booking:   booking,
		Charges:   charges,
		Payments:  payments,
		Discounts: discounts,
		Refunds:   refunds,
	}, nil
}

func (s *ledgerService) List(ctx context.Context, actor Actor, q repository.BookingSearch) ([]models.Booking, error) {
	return s.bookings.ListByOperator(ctx, actor.OperatorID, q)
}

func (s *ledgerService) ListActive(ctx context.Context, actor Actor) ([]models.Booking, error) {
	return s.bookings.ListActive(ctx, actor.OperatorID)
}

func (s *ledgerService) lockBooking(ctx context.Context, tx *gorm.DB, operatorID, bookingID uint) (*models.Booking, error) {
	booking, err := s.bookings.FindByIDForUpdate(ctx, tx, operatorID, bookingID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrBookingNotFound
		}
		return nil, err
	}
	return booking, nil
}
