package handler

import (
	"net/http"

	"github.com/hotelio/frontdesk/internal/dto"
	"github.com/hotelio/frontdesk/internal/middleware"
	"github.com/hotelio/frontdesk/internal/models"
	"github.com/hotelio/frontdesk/internal/service"
	"github.com/labstack/echo/v4"
)

type ShiftHandler struct {
	svc service.ShiftService
}

func NewShiftHandler(svc service.ShiftService) *ShiftHandler {
	return &ShiftHandler{svc: svc}
}

func (h *ShiftHandler) RegisterRoutes(g *echo.Group, authMw *middleware.AuthMiddleware) {
	g.POST("/open", h.Open)
	g.GET("/current", h.Current)
	g.POST("/close", h.Close)
	g.GET("", h.List, authMw.RequireOperator)
	g.GET("/:id", h.Get)
	g.POST("/:id/review", h.Review, authMw.RequireOperator)
}

func (h *ShiftHandler) Open(c echo.Context) error {
	var req dto.OpenShiftRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}
	shift, err := h.svc.Open(c.Request().Context(), middleware.ActorFrom(c), req.InitialCash)
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusCreated, dto.ToShiftResponse(shift))
}

func (h *ShiftHandler) Current(c echo.Context) error {
	summary, err := h.svc.Current(c.Request().Context(), middleware.ActorFrom(c))
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, summary)
}

func (h *ShiftHandler) Close(c echo.Context) error {
	var req dto.CloseShiftRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}
	shift, err := h.svc.Close(c.Request().Context(), middleware.ActorFrom(c), req.ActualCash, req.Notes)
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, dto.ToShiftResponse(shift))
}

func (h *ShiftHandler) Get(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}
	shift, err := h.svc.Get(c.Request().Context(), middleware.ActorFrom(c), id)
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, dto.ToShiftResponse(shift))
}

func (h *ShiftHandler) List(c echo.Context) error {
	status := models.ShiftStatus(c.QueryParam("status"))
	shifts, err := h.svc.List(c.Request().Context(), middleware.ActorFrom(c), status)
	if err != nil {
		return httpError(err)
	}
	resp := make([]dto.ShiftResponse, len(shifts))
	for i := range shifts {
		resp[i] = dto.ToShiftResponse(&shifts[i])
	}
	return c.JSON(http.StatusOK, resp)
}

func (h *ShiftHandler) Review(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}
	var req dto.ReviewShiftRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}
	shift, err := h.svc.Review(c.Request().Context(), middleware.ActorFrom(c), id, req.Decision == "approve", req.Notes)
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, dto.ToShiftResponse(shift))
}
