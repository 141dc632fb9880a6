package handler

import (
	"net/http"

	"tourism-reservation/internal/model"
	"tourism-reservation/internal/service"

	"github.com/gin-gonic/gin"
)

type ReviewHandler struct {
	service service.ReviewService
}

func NewReviewHandler(service service.ReviewService) *ReviewHandler {
	return &ReviewHandler{service: service}
}

func (h *ReviewHandler) RegisterRoutes(api *gin.RouterGroup, auth gin.HandlerFunc) {
	router := api.Group("reviews")
	{
		router.GET("", h.List)
		router.GET(":id", h.Get)
		router.POST("", auth, h.Create)
		router.PUT(":id", auth, h.Update)
		router.DELETE(":id", auth, h.Delete)
	}
}

func (h *ReviewHandler) List(c *gin.Context) {
	var filter model.ReviewFilter
	if err := BindQuery(c, &filter); err != nil {
		return
	}
	reviews, err := h.service.List(c, filter)
	if err != nil {
		handleError(c, err, "ListReviews")
		return
	}
	respondSuccess(c, http.StatusOK, reviews)
}

func (h *ReviewHandler) Get(c *gin.Context) {
	id, ok := idParam(c, "id")
	if !ok {
		return
	}
	review, err := h.service.Get(c, id)
	if err != nil {
		handleError(c, err, "GetReview")
		return
	}
	respondSuccess(c, http.StatusOK, review)
}

func (h *ReviewHandler) Create(c *gin.Context) {
	cl, ok := caller(c)
	if !ok {
		return
	}
	var req model.CreateReviewRequest
	if err := BindJson(c, &req); err != nil {
		return
	}

	created, err := h.service.Create(c, cl, req)
	if err != nil {
		handleError(c, err, "CreateReview")
		return
	}
	respondCreated(c, "Review created successfully", created)
}

func (h *ReviewHandler) Update(c *gin.Context) {
	cl, ok := caller(c)
	if !ok {
		return
	}
	id, ok := idParam(c, "id")
	if !ok {
		return
	}
	var params model.UpdateReviewParams
	if err := BindJson(c, &params); err != nil {
		return
	}

	updated, err := h.service.Update(c, cl, id, params)
	if err != nil {
		handleError(c, err, "UpdateReview")
		return
	}
	respondSuccess(c, http.StatusOK, updated)
}

func (h *ReviewHandler) Delete(c *gin.Context) {
	cl, ok := caller(c)
	if !ok {
		return
	}
	id, ok := idParam(c, "id")
	if !ok {
		return
	}

	if err := h.service.Delete(c, cl, id); err != nil {
		handleError(c, err, "DeleteReview")
		return
	}
	c.Status(http.StatusNoContent)
}
