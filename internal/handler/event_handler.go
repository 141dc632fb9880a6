package handler

import (
	"net/http"

	"tourism-reservation/internal/model"
	"tourism-reservation/internal/service"

	"github.com/gin-gonic/gin"
)

type EventHandler struct {
	service service.EventService
}

func NewEventHandler(service service.EventService) *EventHandler {
	return &EventHandler{service: service}
}

func (h *EventHandler) RegisterRoutes(api *gin.RouterGroup, auth gin.HandlerFunc) {
	router := api.Group("events")
	{
		router.GET("", h.List)
		router.GET("upcoming", h.Upcoming)
		router.GET(":id", h.Get)
		router.POST("", auth, h.Create)
		router.PUT(":id", auth, h.Update)
		router.DELETE(":id", auth, h.Delete)
	}
}

func (h *EventHandler) List(c *gin.Context) {
	var filter model.EventFilter
	if err := BindQuery(c, &filter); err != nil {
		return
	}
	events, err := h.service.List(c, filter)
	if err != nil {
		handleError(c, err, "ListEvents")
		return
	}
	respondSuccess(c, http.StatusOK, events)
}

func (h *EventHandler) Upcoming(c *gin.Context) {
	var filter model.EventFilter
	if err := BindQuery(c, &filter); err != nil {
		return
	}
	filter.Upcoming = true
	events, err := h.service.List(c, filter)
	if err != nil {
		handleError(c, err, "UpcomingEvents")
		return
	}
	respondSuccess(c, http.StatusOK, events)
}

func (h *EventHandler) Get(c *gin.Context) {
	id, ok := idParam(c, "id")
	if !ok {
		return
	}
	event, err := h.service.Get(c, id)
	if err != nil {
		handleError(c, err, "GetEvent")
		return
	}
	respondSuccess(c, http.StatusOK, event)
}

func (h *EventHandler) Create(c *gin.Context) {
	cl, ok := caller(c)
	if !ok {
		return
	}
	var req model.CreateEventRequest
	if err := BindJson(c, &req); err != nil {
		return
	}

	created, err := h.service.Create(c, cl, req)
	if err != nil {
		handleError(c, err, "CreateEvent")
		return
	}
	respondCreated(c, "Event created successfully", created)
}

func (h *EventHandler) Update(c *gin.Context) {
	cl, ok := caller(c)
	if !ok {
		return
	}
	id, ok := idParam(c, "id")
	if !ok {
		return
	}
	var params model.UpdateEventParams
	if err := BindJson(c, &params); err != nil {
		return
	}

	updated, err := h.service.Update(c, cl, id, params)
	if err != nil {
		handleError(c, err, "UpdateEvent")
		return
	}
	respondSuccess(c, http.StatusOK, updated)
}

func (h *EventHandler) Delete(c *gin.Context) {
	cl, ok := caller(c)
	if !ok {
		return
	}
	id, ok := idParam(c, "id")
	if !ok {
		return
	}

	if err := h.service.Delete(c, cl, id); err != nil {
		handleError(c, err, "DeleteEvent")
		return
	}
	c.Status(http.StatusNoContent)
}
