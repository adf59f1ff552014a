package service

import (
	"time"

	"github.com/sirupsen/logrus"
)

// Routing keys for front-desk events on the notifications exchange.
const (
	KeyBookingCreated    = "booking.created"
	KeyBookingCheckedOut = "booking.checked_out"
	KeyBookingCancelled  = "booking.cancelled"
	KeyCheckoutSummary   = "booking.checkout_summary"
	KeyChargeAdded       = "booking.charge_added"
	KeyPaymentRecorded   = "payment.recorded"
	KeyRefundIssued      = "refund.issued"
	KeyShiftClosed       = "shift.closed"
	KeyShiftReviewed     = "shift.reviewed"
)

type BookingEvent struct {
	BookingID    uint      `json:"booking_id"`
	Code         string    `json:"code"`
	OperatorID   uint      `json:"operator_id"`
	CashierID    uint      `json:"cashier_id"`
	CustomerID   uint      `json:"customer_id"`
	CustomerName string    `json:"customer_name"`
	RoomNumber   string    `json:"room_number"`
	TotalAmount  float64   `json:"total_amount"`
	Timestamp    time.Time `json:"timestamp"`
}

type ChargeEvent struct {
	BookingID    uint      `json:"booking_id"`
	Code         string    `json:"code"`
	OperatorID   uint      `json:"operator_id"`
	CashierID    uint      `json:"cashier_id"`
	CustomerName string    `json:"customer_name"`
	RoomNumber   string    `json:"room_number"`
	Description  string    `json:"description"`
	Quantity     int       `json:"quantity"`
	Amount       float64   `json:"amount"`
	Timestamp    time.Time `json:"timestamp"`
}

type PaymentEvent struct {
	BookingID    uint      `json:"booking_id"`
	Code         string    `json:"code"`
	OperatorID   uint      `json:"operator_id"`
	CashierID    uint      `json:"cashier_id"`
	CustomerName string    `json:"customer_name"`
	RoomNumber   string    `json:"room_number"`
	Amount       float64   `json:"amount"`
	Method       string    `json:"method"`
	Balance      float64   `json:"balance"`
	Timestamp    time.Time `json:"timestamp"`
}

// CheckoutSummaryEvent is the operator's audit-trail counterpart of a
// checkout: unlike the guest-facing events it carries the guest's
// identity document.
type CheckoutSummaryEvent struct {
	BookingID      uint      `json:"booking_id"`
	Code           string    `json:"code"`
	OperatorID     uint      `json:"operator_id"`
	CashierID      uint      `json:"cashier_id"`
	CustomerName   string    `json:"customer_name"`
	DocumentType   string    `json:"document_type"`
	DocumentNumber string    `json:"document_number,omitempty"`
	RoomNumber     string    `json:"room_number"`
	TotalAmount    float64   `json:"total_amount"`
	AmountPaid     float64   `json:"amount_paid"`
	Timestamp      time.Time `json:"timestamp"`
}

type RefundEvent struct {
	BookingID    uint      `json:"booking_id"`
	OperatorID   uint      `json:"operator_id"`
	CashierID    uint      `json:"cashier_id"`
	AuthorizedBy uint      `json:"authorized_by"`
	Amount       float64   `json:"amount"`
	Reason       string    `json:"reason"`
	Timestamp    time.Time `json:"timestamp"`
}

type ShiftEvent struct {
	ShiftID      uint      `json:"shift_id"`
	OperatorID   uint      `json:"operator_id"`
	CashierID    uint      `json:"cashier_id"`
	Status       string    `json:"status"`
	ExpectedCash float64   `json:"expected_cash"`
	ActualCash   float64   `json:"actual_cash"`
	Variance     float64   `json:"variance"`
	Timestamp    time.Time `json:"timestamp"`
}

// Publisher is the transport side of the notification port; the AMQP
// implementation lives in pkg/rabbitmq.
type Publisher interface {
	Publish(routingKey string, payload any) error
}

// Notifier fans front-desk events out to the notifications exchange.
// Delivery is best effort: a broker failure is logged, never returned,
// so ledger writes are not held hostage by the broker.
type Notifier struct {
	publisher Publisher
	log       *logrus.Logger
}

// NewNotifier builds a notifier. A nil publisher yields a no-op notifier,
// which keeps the services usable when the broker is not configured.
func NewNotifier(publisher Publisher, log *logrus.Logger) *Notifier {
	if log == nil {
		log = logrus.StandardLogger()
	}
	return &Notifier{publisher: publisher, log: log}
}

func (n *Notifier) emit(routingKey string, payload any) {
	if n == nil || n.publisher == nil {
		return
	}
	if err := n.publisher.Publish(routingKey, payload); err != nil {
		n.log.WithError(err).WithField("routing_key", routingKey).
			Warn("failed to publish notification")
	}
}

func (n *Notifier) BookingCreated(ev BookingEvent)          { n.emit(KeyBookingCreated, ev) }
func (n *Notifier) BookingCheckedOut(ev BookingEvent)       { n.emit(KeyBookingCheckedOut, ev) }
func (n *Notifier) BookingCancelled(ev BookingEvent)        { n.emit(KeyBookingCancelled, ev) }
func (n *Notifier) CheckoutSummary(ev CheckoutSummaryEvent) { n.emit(KeyCheckoutSummary, ev) }
func (n *Notifier) ChargeAdded(ev ChargeEvent)              { n.emit(KeyChargeAdded, ev) }
func (n *Notifier) PaymentRecorded(ev PaymentEvent)         { n.emit(KeyPaymentRecorded, ev) }
func (n *Notifier) RefundIssued(ev RefundEvent)             { n.emit(KeyRefundIssued, ev) }
func (n *Notifier) ShiftClosed(ev ShiftEvent)               { n.emit(KeyShiftClosed, ev) }
func (n *Notifier) ShiftReviewed(ev ShiftEvent)             { n.emit(KeyShiftReviewed, ev) }
