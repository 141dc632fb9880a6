package handler

import (
	"net/http"

	"tourism-reservation/internal/middleware"
	"tourism-reservation/internal/model"
	"tourism-reservation/internal/service"

	"github.com/gin-gonic/gin"
)

type UserHandler struct {
	service service.UserService
}

func NewUserHandler(service service.UserService) *UserHandler {
	return &UserHandler{service: service}
}

func (h *UserHandler) RegisterRoutes(api *gin.RouterGroup, auth gin.HandlerFunc) {
	adminOnly := middleware.RequireRole(model.RoleAdmin)

	router := api.Group("users", auth)
	{
		router.GET("", adminOnly, h.List)
		router.GET("me", h.Me)
		router.GET(":id", h.Get)
		router.POST("", adminOnly, h.Create)
		router.PUT(":id", h.Update)
		router.PATCH(":id/status", adminOnly, h.UpdateStatus)
		router.DELETE(":id", h.Delete)
	}
}

func (h *UserHandler) List(c *gin.Context) {
	cl, ok := caller(c)
	if !ok {
		return
	}
	var filter model.UserFilter
	if err := BindQuery(c, &filter); err != nil {
		return
	}
	users, err := h.service.List(c, cl, filter)
	if err != nil {
		handleError(c, err, "ListUsers")
		return
	}
	respondSuccess(c, http.StatusOK, users)
}

func (h *UserHandler) Me(c *gin.Context) {
	cl, ok := caller(c)
	if !ok {
		return
	}
	user, err := h.service.Get(c, cl, cl.ID)
	if err != nil {
		handleError(c, err, "GetCurrentUser")
		return
	}
	respondSuccess(c, http.StatusOK, user)
}

func (h *UserHandler) Get(c *gin.Context) {
	cl, ok := caller(c)
	if !ok {
		return
	}
	id, ok := idParam(c, "id")
	if !ok {
		return
	}
	user, err := h.service.Get(c, cl, id)
	if err != nil {
		handleError(c, err, "GetUser")
		return
	}
	respondSuccess(c, http.StatusOK, user)
}

func (h *UserHandler) Create(c *gin.Context) {
	cl, ok := caller(c)
	if !ok {
		return
	}
	var req model.CreateUserRequest
	if err := BindJson(c, &req); err != nil {
		return
	}

	created, err := h.service.Create(c, cl, req)
	if err != nil {
		handleError(c, err, "CreateUser")
		return
	}
	respondCreated(c, "User created successfully", created)
}

func (h *UserHandler) Update(c *gin.Context) {
	cl, ok := caller(c)
	if !ok {
		return
	}
	id, ok := idParam(c, "id")
	if !ok {
		return
	}
	var params model.UpdateUserParams
	if err := BindJson(c, &params); err != nil {
		return
	}

	updated, err := h.service.Update(c, cl, id, params)
	if err != nil {
		handleError(c, err, "UpdateUser")
		return
	}
	respondSuccess(c, http.StatusOK, updated)
}

func (h *UserHandler) UpdateStatus(c *gin.Context) {
	cl, ok := caller(c)
	if !ok {
		return
	}
	id, ok := idParam(c, "id")
	if !ok {
		return
	}
	var req model.UpdateUserStatusRequest
	if err := BindJson(c, &req); err != nil {
		return
	}

	updated, err := h.service.UpdateStatus(c, cl, id, req.Status)
	if err != nil {
		handleError(c, err, "UpdateUserStatus")
		return
	}
	respondSuccess(c, http.StatusOK, updated)
}

func (h *UserHandler) Delete(c *gin.Context) {
	cl, ok := caller(c)
	if !ok {
		return
	}
	id, ok := idParam(c, "id")
	if !ok {
		return
	}

	if err := h.service.Delete(c, cl, id); err != nil {
		handleError(c, err, "DeleteUser")
		return
	}
	c.Status(http.StatusNoContent)
}
