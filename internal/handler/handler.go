package handler

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/go-playground/validator/v10"
	"github.com/hotelio/frontdesk/internal/service"
	"github.com/labstack/echo/v4"
)

var validate = validator.New()

func bindAndValidate(c echo.Context, req any) error {
	if err := c.Bind(req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := validate.Struct(req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	return nil
}

// httpError maps service sentinels onto HTTP status codes: bad input is
// 400, missing resources 404, state conflicts 409, ledger invariant
// violations 422, credential failures 401 and permission failures 403.
func httpError(err error) error {
	switch {
	case errors.Is(err, service.ErrInvalidAmount),
		errors.Is(err, service.ErrInvalidStayType),
		errors.Is(err, service.ErrInvalidNights),
		errors.Is(err, service.ErrSplitMismatch):
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())

	case errors.Is(err, service.ErrRoomNotFound),
		errors.Is(err, service.ErrBookingNotFound),
		errors.Is(err, service.ErrCustomerNotFound),
		errors.Is(err, service.ErrProductNotFound),
		errors.Is(err, service.ErrShiftNotFound),
		errors.Is(err, service.ErrUserNotFound):
		return echo.NewHTTPError(http.StatusNotFound, err.Error())

	case errors.Is(err, service.ErrRoomNotAvailable),
		errors.Is(err, service.ErrRoomOccupied),
		errors.Is(err, service.ErrInvalidRoomTransition),
		errors.Is(err, service.ErrDuplicateRoomNumber),
		errors.Is(err, service.ErrDuplicateUser),
		errors.Is(err, service.ErrBookingNotActive),
		errors.Is(err, service.ErrBookingNotCheckedIn),
		errors.Is(err, service.ErrBookingHasPayments),
		errors.Is(err, service.ErrShiftAlreadyOpen),
		errors.Is(err, service.ErrNoOpenShift),
		errors.Is(err, service.ErrShiftNotPending):
		return echo.NewHTTPError(http.StatusConflict, err.Error())

	case errors.Is(err, service.ErrPaymentExceedsBalance),
		errors.Is(err, service.ErrDiscountExceedsTotal),
		errors.Is(err, service.ErrRefundExceedsPaid),
		errors.Is(err, service.ErrInsufficientStock),
		errors.Is(err, service.ErrProductInactive),
		errors.Is(err, service.ErrBalanceNotSettled):
		return echo.NewHTTPError(http.StatusUnprocessableEntity, err.Error())

	case errors.Is(err, service.ErrInvalidCredentials),
		errors.Is(err, service.ErrUserInactive),
		errors.Is(err, service.ErrStepUpInvalid):
		return echo.NewHTTPError(http.StatusUnauthorized, err.Error())

	case errors.Is(err, service.ErrPermissionDenied),
		errors.Is(err, service.ErrDiscountExceedsCap),
		errors.Is(err, service.ErrStepUpRequired):
		return echo.NewHTTPError(http.StatusForbidden, err.Error())

	default:
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
}

func pathID(c echo.Context, name string) (uint, error) {
	id, err := strconv.ParseUint(c.Param(name), 10, 64)
	if err != nil {
		return 0, echo.NewHTTPError(http.StatusBadRequest, "invalid "+name)
	}
	return uint(id), nil
}
