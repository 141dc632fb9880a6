package handler

import (
	"net/http"
	"time"

	"tourism-reservation/internal/model"
	"tourism-reservation/internal/service"

	"github.com/gin-gonic/gin"
)

type PromotionHandler struct {
	service service.PromotionService
}

func NewPromotionHandler(service service.PromotionService) *PromotionHandler {
	return &PromotionHandler{service: service}
}

func (h *PromotionHandler) RegisterRoutes(api *gin.RouterGroup, auth gin.HandlerFunc) {
	router := api.Group("promotions")
	{
		router.GET("", h.List)
		router.GET("place/:placeId/active", h.ListActive)
		router.GET(":id", h.Get)
		router.POST("", auth, h.Create)
		router.PUT(":id", auth, h.Update)
		router.DELETE(":id", auth, h.Delete)
	}
}

func (h *PromotionHandler) List(c *gin.Context) {
	var filter model.PromotionFilter
	if err := BindQuery(c, &filter); err != nil {
		return
	}
	var ok bool
	if filter.ActiveOn, ok = dateQuery(c, "activeOn"); !ok {
		return
	}

	promotions, err := h.service.List(c, filter)
	if err != nil {
		handleError(c, err, "ListPromotions")
		return
	}
	respondSuccess(c, http.StatusOK, promotions)
}

// ListActive returns the place's promotions valid on ?date, today by default.
func (h *PromotionHandler) ListActive(c *gin.Context) {
	placeID, ok := idParam(c, "placeId")
	if !ok {
		return
	}
	date, ok := dateQuery(c, "date")
	if !ok {
		return
	}
	day := model.NewDate(time.Now().UTC())
	if date != nil {
		day = *date
	}

	promotions, err := h.service.ListActive(c, placeID, day)
	if err != nil {
		handleError(c, err, "ListActivePromotions")
		return
	}
	respondSuccess(c, http.StatusOK, promotions)
}

func (h *PromotionHandler) Get(c *gin.Context) {
	id, ok := idParam(c, "id")
	if !ok {
		return
	}
	promotion, err := h.service.Get(c, id)
	if err != nil {
		handleError(c, err, "GetPromotion")
		return
	}
	respondSuccess(c, http.StatusOK, promotion)
}

func (h *PromotionHandler) Create(c *gin.Context) {
	cl, ok := caller(c)
	if !ok {
		return
	}
	var req model.CreatePromotionRequest
	if err := BindJson(c, &req); err != nil {
		return
	}

	created, err := h.service.Create(c, cl, req)
	if err != nil {
		handleError(c, err, "CreatePromotion")
		return
	}
	respondCreated(c, "Promotion created successfully", created)
}

func (h *PromotionHandler) Update(c *gin.Context) {
	cl, ok := caller(c)
	if !ok {
		return
	}
	id, ok := idParam(c, "id")
	if !ok {
		return
	}
	var params model.UpdatePromotionParams
	if err := BindJson(c, &params); err != nil {
		return
	}

	updated, err := h.service.Update(c, cl, id, params)
	if err != nil {
		handleError(c, err, "UpdatePromotion")
		return
	}
	respondSuccess(c, http.StatusOK, updated)
}

func (h *PromotionHandler) Delete(c *gin.Context) {
	cl, ok := caller(c)
	if !ok {
		return
	}
	id, ok := idParam(c, "id")
	if !ok {
		return
	}

	if err := h.service.Delete(c, cl, id); err != nil {
		handleError(c, err, "DeletePromotion")
		return
	}
	c.Status(http.StatusNoContent)
}
