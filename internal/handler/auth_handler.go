package handler

import (
	"net/http"

	"github.com/hotelio/frontdesk/internal/dto"
	"github.com/hotelio/frontdesk/internal/middleware"
	"github.com/hotelio/frontdesk/internal/service"
	"github.com/labstack/echo/v4"
)

type AuthHandler struct {
	auth   service.AuthService
	stepUp service.StepUpService
}

func NewAuthHandler(auth service.AuthService, stepUp service.StepUpService) *AuthHandler {
	return &AuthHandler{auth: auth, stepUp: stepUp}
}

func (h *AuthHandler) RegisterRoutes(e *echo.Echo, authMw *middleware.AuthMiddleware) {
	g := e.Group("/api/v1/auth")
	g.POST("/operator/register", h.RegisterOperator)
	g.POST("/operator/login", h.LoginOperator)
	g.POST("/cashier/login", h.LoginCashier)
	g.POST("/step-up", h.StepUp, authMw.Authenticate)
}

func (h *AuthHandler) RegisterOperator(c echo.Context) error {
	var req dto.RegisterOperatorRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}
	user, err := h.auth.RegisterOperator(c.Request().Context(), service.RegisterOperatorInput{
		Email:    req.Email,
		Password: req.Password,
		FullName: req.FullName,
		Phone:    req.Phone,
	})
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusCreated, dto.ToUserResponse(user))
}

func (h *AuthHandler) LoginOperator(c echo.Context) error {
	var req dto.OperatorLoginRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}
	token, user, err := h.auth.LoginOperator(c.Request().Context(), req.Email, req.Password)
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, dto.LoginResponse{Token: token, User: dto.ToUserResponse(user)})
}

func (h *AuthHandler) LoginCashier(c echo.Context) error {
	var req dto.CashierLoginRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}
	token, user, err := h.auth.LoginCashier(c.Request().Context(), req.OperatorEmail, req.Username, req.Password)
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, dto.LoginResponse{Token: token, User: dto.ToUserResponse(user)})
}

// StepUp mints a single-use supervisor token. The caller is authenticated
// already; the supervisor proves presence by typing the operator password
// at the cashier's terminal.
func (h *AuthHandler) StepUp(c echo.Context) error {
	var req dto.StepUpRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}
	actor := middleware.ActorFrom(c)
	token, err := h.stepUp.Authorize(c.Request().Context(), actor.OperatorID, req.Password, req.Scope)
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, dto.StepUpResponse{Token: token, Scope: req.Scope})
}
