package handler

import (
	"net/http"
	"strconv"

	"tourism-reservation/internal/model"
	"tourism-reservation/internal/service"

	"github.com/gin-gonic/gin"
)

type PlaceHandler struct {
	service service.PlaceService
}

func NewPlaceHandler(service service.PlaceService) *PlaceHandler {
	return &PlaceHandler{service: service}
}

func (h *PlaceHandler) RegisterRoutes(api *gin.RouterGroup, auth gin.HandlerFunc) {
	router := api.Group("places")
	{
		router.GET("", h.List)
		router.GET("search", h.Search)
		router.GET("popular", h.Popular)
		router.GET("region/:region", h.ListByRegion)
		router.GET("provider/:providerId", h.ListByProvider)
		router.GET(":id", h.Get)
		router.GET(":id/rating", h.Rating)
		router.POST("", auth, h.Create)
		router.PUT(":id", auth, h.Update)
		router.DELETE(":id", auth, h.Delete)
	}
}

func (h *PlaceHandler) List(c *gin.Context) {
	var filter model.PlaceFilter
	if err := BindQuery(c, &filter); err != nil {
		return
	}
	h.list(c, filter, "ListPlaces")
}

// Search is the proximity and name search: lat, lng and radius (km) or name.
func (h *PlaceHandler) Search(c *gin.Context) {
	var filter model.PlaceFilter
	if err := BindQuery(c, &filter); err != nil {
		return
	}
	if filter.Name == "" && filter.Latitude == nil && filter.Longitude == nil {
		if q := c.Query("q"); q != "" {
			filter.Name = q
		} else {
			respondError(c, http.StatusBadRequest, "Provide lat and lng or a name to search")
			return
		}
	}
	h.list(c, filter, "SearchPlaces")
}

func (h *PlaceHandler) ListByRegion(c *gin.Context) {
	var filter model.PlaceFilter
	if err := BindQuery(c, &filter); err != nil {
		return
	}
	filter.Region = c.Param("region")
	h.list(c, filter, "ListPlacesByRegion")
}

func (h *PlaceHandler) ListByProvider(c *gin.Context) {
	providerID, ok := idParam(c, "providerId")
	if !ok {
		return
	}
	var filter model.PlaceFilter
	if err := BindQuery(c, &filter); err != nil {
		return
	}
	filter.ProviderID = &providerID
	h.list(c, filter, "ListPlacesByProvider")
}

func (h *PlaceHandler) list(c *gin.Context, filter model.PlaceFilter, operation string) {
	places, err := h.service.List(c, filter)
	if err != nil {
		handleError(c, err, operation)
		return
	}
	respondSuccess(c, http.StatusOK, places)
}

func (h *PlaceHandler) Popular(c *gin.Context) {
	limit := 0
	if raw := c.Query("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 1 {
			respondError(c, http.StatusBadRequest, "Invalid limit")
			return
		}
		limit = n
	}

	places, err := h.service.Popular(c, limit)
	if err != nil {
		handleError(c, err, "PopularPlaces")
		return
	}
	respondSuccess(c, http.StatusOK, places)
}

func (h *PlaceHandler) Get(c *gin.Context) {
	id, ok := idParam(c, "id")
	if !ok {
		return
	}
	place, err := h.service.Get(c, id)
	if err != nil {
		handleError(c, err, "GetPlace")
		return
	}
	respondSuccess(c, http.StatusOK, place)
}

func (h *PlaceHandler) Rating(c *gin.Context) {
	id, ok := idParam(c, "id")
	if !ok {
		return
	}
	rating, err := h.service.Rating(c, id)
	if err != nil {
		handleError(c, err, "PlaceRating")
		return
	}
	respondSuccess(c, http.StatusOK, rating)
}

func (h *PlaceHandler) Create(c *gin.Context) {
	cl, ok := caller(c)
	if !ok {
		return
	}
	var req model.CreatePlaceRequest
	if err := BindJson(c, &req); err != nil {
		return
	}

	created, err := h.service.Create(c, cl, req)
	if err != nil {
		handleError(c, err, "CreatePlace")
		return
	}
	respondCreated(c, "Place created successfully", created)
}

func (h *PlaceHandler) Update(c *gin.Context) {
	cl, ok := caller(c)
	if !ok {
		return
	}
	id, ok := idParam(c, "id")
	if !ok {
		return
	}
	var params model.UpdatePlaceParams
	if err := BindJson(c, &params); err != nil {
		return
	}

	updated, err := h.service.Update(c, cl, id, params)
	if err != nil {
		handleError(c, err, "UpdatePlace")
		return
	}
	respondSuccess(c, http.StatusOK, updated)
}

func (h *PlaceHandler) Delete(c *gin.Context) {
	cl, ok := caller(c)
	if !ok {
		return
	}
	id, ok := idParam(c, "id")
	if !ok {
		return
	}

	if err := h.service.Delete(c, cl, id); err != nil {
		handleError(c, err, "DeletePlace")
		return
	}
	c.Status(http.StatusNoContent)
}
