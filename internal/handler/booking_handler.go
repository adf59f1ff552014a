package handler

import (
	"net/http"
	"time"

	"github.com/hotelio/frontdesk/internal/dto"
	"github.com/hotelio/frontdesk/internal/middleware"
	"github.com/hotelio/frontdesk/internal/models"
	"github.com/hotelio/frontdesk/internal/repository"
	"github.com/hotelio/frontdesk/internal/service"
	"github.com/labstack/echo/v4"
)

type BookingHandler struct {
	svc service.LedgerService
}

func NewBookingHandler(svc service.LedgerService) *BookingHandler {
	return &BookingHandler{svc: svc}
}

func (h *BookingHandler) RegisterRoutes(g *echo.Group) {
	g.POST("", h.Create)
	g.GET("", h.List)
	g.GET("/active", h.ListActive)
	g.GET("/:id", h.Get)
	g.GET("/:id/folio", h.Folio)
	g.POST("/:id/check-in", h.CheckIn)
	g.POST("/:id/charges", h.AddCharge)
	g.POST("/:id/payments", h.ApplyPayment)
	g.POST("/:id/discounts", h.ApplyDiscount)
	g.POST("/:id/refunds", h.Refund)
	g.POST("/:id/checkout", h.Checkout)
	g.POST("/:id/cancel", h.Cancel)
}

func (h *BookingHandler) Create(c echo.Context) error {
	var req dto.CreateBookingRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}
	booking, err := h.svc.CreateBooking(c.Request().Context(), middleware.ActorFrom(c), service.CreateBookingInput{
		CustomerID:       req.CustomerID,
		RoomID:           req.RoomID,
		StayType:         req.StayType,
		NumberOfNights:   req.NumberOfNights,
		NumberOfGuests:   req.NumberOfGuests,
		CheckIn:          req.CheckIn,
		ExpectedCheckout: req.ExpectedCheckout,
		AdditionalIncome: req.AdditionalIncome,
		GuestAge:         req.GuestAge,
		GuestNationality: req.GuestNationality,
		GuestOrigin:      req.GuestOrigin,
		Notes:            req.Notes,
		Reserve:          req.Reserve,
	})
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusCreated, dto.ToBookingResponse(booking))
}

func (h *BookingHandler) Get(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}
	booking, err := h.svc.Get(c.Request().Context(), middleware.ActorFrom(c), id)
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, dto.ToBookingResponse(booking))
}

func (h *BookingHandler) Folio(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}
	folio, err := h.svc.Folio(c.Request().Context(), middleware.ActorFrom(c), id)
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, folio)
}

func (h *BookingHandler) List(c echo.Context) error {
	q := repository.BookingSearch{Status: models.BookingStatus(c.QueryParam("status"))}
	if from, err := time.Parse(time.RFC3339, c.QueryParam("from")); err == nil {
		q.From = &from
	}
	if to, err := time.Parse(time.RFC3339, c.QueryParam("to")); err == nil {
		q.To = &to
	}
	bookings, err := h.svc.List(c.Request().Context(), middleware.ActorFrom(c), q)
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, toBookingResponses(bookings))
}

func (h *BookingHandler) ListActive(c echo.Context) error {
	bookings, err := h.svc.ListActive(c.Request().Context(), middleware.ActorFrom(c))
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, toBookingResponses(bookings))
}

func (h *BookingHandler) CheckIn(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}
	booking, err := h.svc.CheckInReserved(c.Request().Context(), middleware.ActorFrom(c), id)
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, dto.ToBookingResponse(booking))
}

func (h *BookingHandler) AddCharge(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}
	var req dto.ChargeRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}
	charge, err := h.svc.AddCharge(c.Request().Context(), middleware.ActorFrom(c), id, service.ChargeInput{
		ProductID:   req.ProductID,
		Description: req.Description,
		Quantity:    req.Quantity,
		UnitPrice:   req.UnitPrice,
		TaxRate:     req.TaxRate,
	})
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusCreated, charge)
}

func (h *BookingHandler) ApplyPayment(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}
	var req dto.PaymentRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}
	in := service.PaymentInput{
		Amount:               req.Amount,
		Method:               req.Method,
		CardLastDigits:       req.CardLastDigits,
		TransactionReference: req.TransactionReference,
		Notes:                req.Notes,
	}
	for _, split := range req.Splits {
		in.Splits = append(in.Splits, service.SplitInput{
			Method:               split.Method,
			Amount:               split.Amount,
			CardLastDigits:       split.CardLastDigits,
			TransactionReference: split.TransactionReference,
		})
	}
	payment, err := h.svc.ApplyPayment(c.Request().Context(), middleware.ActorFrom(c), id, in)
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusCreated, payment)
}

func (h *BookingHandler) ApplyDiscount(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}
	var req dto.DiscountRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}
	discount, err := h.svc.ApplyDiscount(c.Request().Context(), middleware.ActorFrom(c), id, service.DiscountInput{
		DiscountType: req.DiscountType,
		Value:        req.Value,
		Reason:       req.Reason,
		StepUpToken:  req.StepUpToken,
	})
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusCreated, discount)
}

func (h *BookingHandler) Refund(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}
	var req dto.RefundRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}
	refund, err := h.svc.Refund(c.Request().Context(), middleware.ActorFrom(c), id, service.RefundInput{
		PaymentID:   req.PaymentID,
		Amount:      req.Amount,
		Reason:      req.Reason,
		Notes:       req.Notes,
		StepUpToken: req.StepUpToken,
	})
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusCreated, refund)
}

func (h *BookingHandler) Checkout(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}
	booking, err := h.svc.Checkout(c.Request().Context(), middleware.ActorFrom(c), id)
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, dto.ToBookingResponse(booking))
}

func (h *BookingHandler) Cancel(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}
	booking, err := h.svc.Cancel(c.Request().Context(), middleware.ActorFrom(c), id)
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, dto.ToBookingResponse(booking))
}

func toBookingResponses(bookings []models.Booking) []dto.BookingResponse {
	resp := make([]dto.BookingResponse, len(bookings))
	for i := range bookings {
		resp[i] = dto.ToBookingResponse(&bookings[i])
	}
	return resp
}
