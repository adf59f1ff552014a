package handler

import (
	"net/http"

	"github.com/hotelio/frontdesk/internal/dto"
	"github.com/hotelio/frontdesk/internal/middleware"
	"github.com/hotelio/frontdesk/internal/models"
	"github.com/hotelio/frontdesk/internal/service"
	"github.com/labstack/echo/v4"
)

// AdminHandler covers operator-only staff management.
type AdminHandler struct {
	auth service.AuthService
}

func NewAdminHandler(auth service.AuthService) *AdminHandler {
	return &AdminHandler{auth: auth}
}

func (h *AdminHandler) RegisterRoutes(g *echo.Group) {
	g.POST("/cashiers", h.CreateCashier)
	g.GET("/cashiers", h.ListCashiers)
	g.PUT("/cashiers/:id/permissions", h.UpdatePermissions)
	g.POST("/cashiers/:id/activate", h.Activate)
	g.POST("/cashiers/:id/deactivate", h.Deactivate)
}

func (h *AdminHandler) CreateCashier(c echo.Context) error {
	var req dto.CreateCashierRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}
	cashier, err := h.auth.CreateCashier(c.Request().Context(), middleware.ActorFrom(c), service.CashierInput{
		Username: req.Username,
		Password: req.Password,
		FullName: req.FullName,
		Phone:    req.Phone,
		Perms: models.Permission{
			CanCreateBookings:     req.CanCreateBookings,
			CanModifyBookings:     req.CanModifyBookings,
			CanCancelBookings:     req.CanCancelBookings,
			CanApplyDiscounts:     req.CanApplyDiscounts,
			MaxDiscountPercentage: req.MaxDiscountPercentage,
			CanProcessRefunds:     req.CanProcessRefunds,
			CanViewReports:        req.CanViewReports,
			CanManageInventory:    req.CanManageInventory,
		},
	})
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusCreated, dto.ToUserResponse(cashier))
}

func (h *AdminHandler) ListCashiers(c echo.Context) error {
	cashiers, err := h.auth.ListCashiers(c.Request().Context(), middleware.ActorFrom(c))
	if err != nil {
		return httpError(err)
	}
	resp := make([]dto.UserResponse, len(cashiers))
	for i := range cashiers {
		resp[i] = dto.ToUserResponse(&cashiers[i])
	}
	return c.JSON(http.StatusOK, resp)
}

func (h *AdminHandler) UpdatePermissions(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}
	var req dto.UpdatePermissionsRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}
	perms, err := h.auth.UpdateCashierPermissions(c.Request().Context(), middleware.ActorFrom(c), id, models.Permission{
		CanCreateBookings:     req.CanCreateBookings,
		CanModifyBookings:     req.CanModifyBookings,
		CanCancelBookings:     req.CanCancelBookings,
		CanApplyDiscounts:     req.CanApplyDiscounts,
		MaxDiscountPercentage: req.MaxDiscountPercentage,
		CanProcessRefunds:     req.CanProcessRefunds,
		CanViewReports:        req.CanViewReports,
		CanManageInventory:    req.CanManageInventory,
	})
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, perms)
}

func (h *AdminHandler) Activate(c echo.Context) error {
	return h.setActive(c, true)
}

func (h *AdminHandler) Deactivate(c echo.Context) error {
	return h.setActive(c, false)
}

func (h *AdminHandler) setActive(c echo.Context, active bool) error {
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}
	if err := h.auth.SetCashierActive(c.Request().Context(), middleware.ActorFrom(c), id, active); err != nil {
		return httpError(err)
	}
	return c.NoContent(http.StatusNoContent)
}
