package handler

import (
	"net/http"
	"time"

	"github.com/hotelio/frontdesk/internal/dto"
	"github.com/hotelio/frontdesk/internal/middleware"
	"github.com/hotelio/frontdesk/internal/repository"
	"github.com/hotelio/frontdesk/internal/service"
	"github.com/labstack/echo/v4"
)

type RoomHandler struct {
	svc service.RoomService
}

func NewRoomHandler(svc service.RoomService) *RoomHandler {
	return &RoomHandler{svc: svc}
}

func (h *RoomHandler) RegisterRoutes(g *echo.Group, authMw *middleware.AuthMiddleware) {
	g.GET("", h.List)
	g.GET("/available", h.Available)
	g.GET("/:id", h.Get)
	g.POST("", h.Create, authMw.RequireOperator)
	g.PUT("/:id", h.Update, authMw.RequireOperator)
	g.PATCH("/:id/status", h.SetStatus)
	g.DELETE("/:id", h.Delete, authMw.RequireOperator)
}

func (h *RoomHandler) Create(c echo.Context) error {
	var req dto.RoomRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}
	actor := middleware.ActorFrom(c)
	room, err := h.svc.Create(c.Request().Context(), actor.OperatorID, roomInput(req))
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusCreated, room)
}

func (h *RoomHandler) Get(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}
	actor := middleware.ActorFrom(c)
	room, err := h.svc.Get(c.Request().Context(), actor.OperatorID, id)
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, room)
}

func (h *RoomHandler) List(c echo.Context) error {
	actor := middleware.ActorFrom(c)
	rooms, err := h.svc.List(c.Request().Context(), actor.OperatorID)
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, rooms)
}

func (h *RoomHandler) Available(c echo.Context) error {
	actor := middleware.ActorFrom(c)
	filter := repository.AvailableRoomFilter{RoomType: c.QueryParam("room_type")}
	if from, err := time.Parse(time.RFC3339, c.QueryParam("check_in")); err == nil {
		if to, err := time.Parse(time.RFC3339, c.QueryParam("check_out")); err == nil {
			filter.CheckIn = &from
			filter.CheckOut = &to
		}
	}
	rooms, err := h.svc.Available(c.Request().Context(), actor.OperatorID, filter)
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, rooms)
}

func (h *RoomHandler) Update(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}
	var req dto.RoomRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}
	actor := middleware.ActorFrom(c)
	room, err := h.svc.Update(c.Request().Context(), actor.OperatorID, id, roomInput(req))
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, room)
}

func (h *RoomHandler) SetStatus(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}
	var req dto.RoomStatusRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}
	actor := middleware.ActorFrom(c)
	room, err := h.svc.SetStatus(c.Request().Context(), actor.OperatorID, id, req.Status)
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, room)
}

func (h *RoomHandler) Delete(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}
	actor := middleware.ActorFrom(c)
	if err := h.svc.Delete(c.Request().Context(), actor.OperatorID, id); err != nil {
		return httpError(err)
	}
	return c.NoContent(http.StatusNoContent)
}

func roomInput(req dto.RoomRequest) service.RoomInput {
	return service.RoomInput{
		Number:           req.Number,
		RoomType:         req.RoomType,
		BasePrice:        req.BasePrice,
		ShortStay3hPrice: req.ShortStay3hPrice,
		ShortStay6hPrice: req.ShortStay6hPrice,
		Floor:            req.Floor,
		MaxOccupancy:     req.MaxOccupancy,
		Description:      req.Description,
	}
}
