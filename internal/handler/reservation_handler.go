package handler

import (
	"net/http"

	"tourism-reservation/internal/model"
	"tourism-reservation/internal/service"

	"github.com/gin-gonic/gin"
)

type ReservationHandler struct {
	service service.ReservationService
}

func NewReservationHandler(service service.ReservationService) *ReservationHandler {
	return &ReservationHandler{service: service}
}

// RegisterRoutes mounts the reservation routes on api. auth guards every
// route except the availability check.
func (h *ReservationHandler) RegisterRoutes(api *gin.RouterGroup, auth gin.HandlerFunc) {
	api.GET("reservations/availability", h.CheckAvailability)

	router := api.Group("reservations", auth)
	{
		router.GET("", h.List)
		router.GET(":id", h.Get)
		router.POST("", h.Create)
		router.PUT(":id", h.Update)
		router.DELETE(":id", h.Delete)
	}
}

type availabilityRequest struct {
	EntityType      string `form:"entityType" binding:"required,entitytype"`
	EntityID        int    `form:"entityId" binding:"required,min=1"`
	NumberOfTickets *int   `form:"numberOfTickets" binding:"omitempty,min=1"`
	NumberOfPersons *int   `form:"numberOfPersons" binding:"omitempty,min=1"`
}

func (h *ReservationHandler) CheckAvailability(c *gin.Context) {
	var req availabilityRequest
	if err := BindQuery(c, &req); err != nil {
		return
	}
	date, ok := dateQuery(c, "date")
	if !ok {
		return
	}

	quantity := 1
	switch {
	case req.NumberOfTickets != nil:
		quantity = *req.NumberOfTickets
	case req.NumberOfPersons != nil:
		quantity = *req.NumberOfPersons
	}

	available, err := h.service.CheckAvailability(c, model.AvailabilityQuery{
		EntityType: model.EntityType(req.EntityType),
		EntityID:   req.EntityID,
		Date:       date,
		Quantity:   quantity,
	})
	if err != nil {
		handleError(c, err, "CheckAvailability")
		return
	}
	respondSuccess(c, http.StatusOK, gin.H{"available": available})
}

func (h *ReservationHandler) List(c *gin.Context) {
	cl, ok := caller(c)
	if !ok {
		return
	}
	var filter model.ReservationFilter
	if err := BindQuery(c, &filter); err != nil {
		return
	}
	if filter.FromDate, ok = dateQuery(c, "fromDate"); !ok {
		return
	}
	if filter.ToDate, ok = dateQuery(c, "toDate"); !ok {
		return
	}
	if filter.Status != "" && !filter.Status.IsValid() {
		respondError(c, http.StatusBadRequest, "Invalid status")
		return
	}

	reservations, err := h.service.List(c, cl, filter)
	if err != nil {
		handleError(c, err, "ListReservations")
		return
	}
	respondSuccess(c, http.StatusOK, reservations)
}

func (h *ReservationHandler) Get(c *gin.Context) {
	cl, ok := caller(c)
	if !ok {
		return
	}
	id, ok := idParam(c, "id")
	if !ok {
		return
	}

	reservation, err := h.service.Get(c, cl, id)
	if err != nil {
		handleError(c, err, "GetReservation")
		return
	}
	respondSuccess(c, http.StatusOK, reservation)
}

func (h *ReservationHandler) Create(c *gin.Context) {
	cl, ok := caller(c)
	if !ok {
		return
	}
	var req model.CreateReservationRequest
	if err := BindJson(c, &req); err != nil {
		return
	}

	created, err := h.service.Create(c, cl, req)
	if err != nil {
		handleError(c, err, "CreateReservation")
		return
	}
	respondCreated(c, "Reservation created successfully", created)
}

func (h *ReservationHandler) Update(c *gin.Context) {
	cl, ok := caller(c)
	if !ok {
		return
	}
	id, ok := idParam(c, "id")
	if !ok {
		return
	}
	var params model.UpdateReservationParams
	if err := BindJson(c, &params); err != nil {
		return
	}

	updated, err := h.service.Update(c, cl, id, params)
	if err != nil {
		handleError(c, err, "UpdateReservation")
		return
	}
	respondSuccess(c, http.StatusOK, updated)
}

func (h *ReservationHandler) Delete(c *gin.Context) {
	cl, ok := caller(c)
	if !ok {
		return
	}
	id, ok := idParam(c, "id")
	if !ok {
		return
	}

	if err := h.service.Delete(c, cl, id); err != nil {
		handleError(c, err, "DeleteReservation")
		return
	}
	c.Status(http.StatusNoContent)
}
