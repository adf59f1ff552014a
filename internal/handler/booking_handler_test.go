package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/hotelio/frontdesk/internal/dto"
	"github.com/hotelio/frontdesk/internal/models"
	"github.com/hotelio/frontdesk/internal/repository"
	"github.com/hotelio/frontdesk/internal/service"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// --- Mock LedgerService ---

type mockLedgerService struct {
	createFn   func(ctx context.Context, actor service.Actor, in service.CreateBookingInput) (*models.Booking, error)
	paymentFn  func(ctx context.Context, actor service.Actor, bookingID uint, in service.PaymentInput) (*models.Payment, error)
	discountFn func(ctx context.Context, actor service.Actor, bookingID uint, in service.DiscountInput) (*models.Discount, error)
	checkoutFn func(ctx context.Context, actor service.Actor, bookingID uint) (*models.Booking, error)
}

func (m *mockLedgerService) CreateBooking(ctx context.Context, actor service.Actor, in service.CreateBookingInput) (*models.Booking, error) {
	return m.createFn(ctx, actor, in)
}
func (m *mockLedgerService) CheckInReserved(ctx context.Context, actor service.Actor, bookingID uint) (*models.Booking, error) {
	return nil, nil
}
func (m *mockLedgerService) AddCharge(ctx context.Context, actor service.Actor, bookingID uint, in service.ChargeInput) (*models.Charge, error) {
	return nil, nil
}
func (m *mockLedgerService) ApplyPayment(ctx context.Context, actor service.Actor, bookingID uint, in service.PaymentInput) (*models.Payment, error) {
	return m.paymentFn(ctx, actor, bookingID, in)
}
func (m *mockLedgerService) ApplyDiscount(ctx context.Context, actor service.Actor, bookingID uint, in service.DiscountInput) (*models.Discount, error) {
	return m.discountFn(ctx, actor, bookingID, in)
}
func (m *mockLedgerService) Refund(ctx context.Context, actor service.Actor, bookingID uint, in service.RefundInput) (*models.Refund, error) {
	return nil, nil
}
func (m *mockLedgerService) Cancel(ctx context.Context, actor service.Actor, bookingID uint) (*models.Booking, error) {
	return nil, nil
}
func (m *mockLedgerService) Checkout(ctx context.Context, actor service.Actor, bookingID uint) (*models.Booking, error) {
	return m.checkoutFn(ctx, actor, bookingID)
}
func (m *mockLedgerService) Get(ctx context.Context, actor service.Actor, bookingID uint) (*models.Booking, error) {
	return nil, nil
}
func (m *mockLedgerService) Folio(ctx context.Context, actor service.Actor, bookingID uint) (*service.BookingFolio, error) {
	return nil, nil
}
func (m *mockLedgerService) List(ctx context.Context, actor service.Actor, q repository.BookingSearch) ([]models.Booking, error) {
	return nil, nil
}
func (m *mockLedgerService) ListActive(ctx context.Context, actor service.Actor) ([]models.Booking, error) {
	return nil, nil
}

func testContext(t *testing.T, method, path, body string) (echo.Context, *httptest.ResponseRecorder) {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.Set("actor", service.Actor{UserID: 2, OperatorID: 1, Role: models.RoleCashier})
	return c, rec
}

func TestCreateBooking_Handler_Success(t *testing.T) {
	svc := &mockLedgerService{
		createFn: func(ctx context.Context, actor service.Actor, in service.CreateBookingInput) (*models.Booking, error) {
			assert.Equal(t, uint(1), actor.OperatorID)
			return &models.Booking{
				ID:          9,
				Code:        "BK-AB12CD34",
				CustomerID:  in.CustomerID,
				RoomID:      in.RoomID,
				StayType:    in.StayType,
				TotalAmount: 122,
				Status:      models.StatusCheckedIn,
			}, nil
		},
	}
	h := NewBookingHandler(svc)

	body := `{
		"customer_id": 3,
		"room_id": 5,
		"stay_type": "daily",
		"number_of_nights": 1,
		"number_of_guests": 2,
		"check_in": "2026-08-30T14:00:00Z",
		"expected_checkout": "2026-08-31T12:00:00Z"
	}`
	c, rec := testContext(t, http.MethodPost, "/api/v1/bookings", body)

	require.NoError(t, h.Create(c))
	assert.Equal(t, http.StatusCreated, rec.Code)

	var resp dto.BookingResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "BK-AB12CD34", resp.Code)
	assert.Equal(t, 122.0, resp.Balance)
}

func TestCreateBooking_Handler_RoomConflict(t *testing.T) {
	svc := &mockLedgerService{
		createFn: func(ctx context.Context, actor service.Actor, in service.CreateBookingInput) (*models.Booking, error) {
			return nil, service.ErrRoomNotAvailable
		},
	}
	h := NewBookingHandler(svc)

	body := `{
		"customer_id": 3,
		"room_id": 5,
		"stay_type": "daily",
		"number_of_nights": 1,
		"number_of_guests": 2,
		"check_in": "2026-08-30T14:00:00Z",
		"expected_checkout": "2026-08-31T12:00:00Z"
	}`
	c, _ := testContext(t, http.MethodPost, "/api/v1/bookings", body)

	err := h.Create(c)
	require.Error(t, err)
	he, ok := err.(*echo.HTTPError)
	require.True(t, ok)
	assert.Equal(t, http.StatusConflict, he.Code)
}

func TestCreateBooking_Handler_MissingFields(t *testing.T) {
	h := NewBookingHandler(&mockLedgerService{})

	c, _ := testContext(t, http.MethodPost, "/api/v1/bookings", `{"room_id": 5}`)
	err := h.Create(c)
	require.Error(t, err)
	he, ok := err.(*echo.HTTPError)
	require.True(t, ok)
	assert.Equal(t, http.StatusBadRequest, he.Code)
}

func TestApplyPayment_Handler_ExceedsBalance(t *testing.T) {
	svc := &mockLedgerService{
		paymentFn: func(ctx context.Context, actor service.Actor, bookingID uint, in service.PaymentInput) (*models.Payment, error) {
			return nil, service.ErrPaymentExceedsBalance
		},
	}
	h := NewBookingHandler(svc)

	c, _ := testContext(t, http.MethodPost, "/api/v1/bookings/9/payments", `{"amount": 500, "method": "cash"}`)
	c.SetParamNames("id")
	c.SetParamValues("9")

	err := h.ApplyPayment(c)
	require.Error(t, err)
	he, ok := err.(*echo.HTTPError)
	require.True(t, ok)
	assert.Equal(t, http.StatusUnprocessableEntity, he.Code)
}

func TestApplyDiscount_Handler_StepUpRequired(t *testing.T) {
	svc := &mockLedgerService{
		discountFn: func(ctx context.Context, actor service.Actor, bookingID uint, in service.DiscountInput) (*models.Discount, error) {
			return nil, service.ErrStepUpRequired
		},
	}
	h := NewBookingHandler(svc)

	c, _ := testContext(t, http.MethodPost, "/api/v1/bookings/9/discounts",
		`{"discount_type": "percentage", "value": 20, "reason": "loyal guest"}`)
	c.SetParamNames("id")
	c.SetParamValues("9")

	err := h.ApplyDiscount(c)
	require.Error(t, err)
	he, ok := err.(*echo.HTTPError)
	require.True(t, ok)
	assert.Equal(t, http.StatusForbidden, he.Code)
}

func TestCheckout_Handler_BalancePending(t *testing.T) {
	svc := &mockLedgerService{
		checkoutFn: func(ctx context.Context, actor service.Actor, bookingID uint) (*models.Booking, error) {
			return nil, &service.BalanceNotSettledError{Pending: 22}
		},
	}
	h := NewBookingHandler(svc)

	c, _ := testContext(t, http.MethodPost, "/api/v1/bookings/9/checkout", "")
	c.SetParamNames("id")
	c.SetParamValues("9")

	err := h.Checkout(c)
	require.Error(t, err)
	he, ok := err.(*echo.HTTPError)
	require.True(t, ok)
	assert.Equal(t, http.StatusUnprocessableEntity, he.Code)
	assert.Contains(t, he.Message.(string), "22")
}
