package handler_test

import (
	"net/http"
	"testing"

	"tourism-reservation/internal/handler"
	"tourism-reservation/internal/model"
	"tourism-reservation/internal/service/mocks"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func setupUserTestRouter(mockService *mocks.MockUserService, caller *model.Caller) *gin.Engine {
	router, api := newTestRouter()
	handler.NewUserHandler(mockService).RegisterRoutes(api, fakeAuth(caller))
	return router
}

func TestListUsers(t *testing.T) {
	t.Run("Success - admin", func(t *testing.T) {
		mockService := mocks.NewMockUserService(t)
		router := setupUserTestRouter(mockService, adminCaller)

		mockService.EXPECT().List(mock.Anything, *adminCaller, model.UserFilter{Role: model.RoleProvider}).Return([]*model.User{{ID: 2}}, nil).Once()

		req, _ := http.NewRequest(http.MethodGet, "/api/v1/users?role=provider", nil)
		w := serve(router, req)

		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("Failed - not an admin", func(t *testing.T) {
		mockService := mocks.NewMockUserService(t)
		router := setupUserTestRouter(mockService, userCaller)

		req, _ := http.NewRequest(http.MethodGet, "/api/v1/users", nil)
		w := serve(router, req)

		assert.Equal(t, http.StatusForbidden, w.Code)
	})
}

func TestCurrentUser(t *testing.T) {
	mockService := mocks.NewMockUserService(t)
	router := setupUserTestRouter(mockService, userCaller)

	mockService.EXPECT().Get(mock.Anything, *userCaller, userCaller.ID).Return(&model.User{ID: userCaller.ID}, nil).Once()

	req, _ := http.NewRequest(http.MethodGet, "/api/v1/users/me", nil)
	w := serve(router, req)

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestCreateUser(t *testing.T) {
	t.Run("Failed - invalid email", func(t *testing.T) {
		mockService := mocks.NewMockUserService(t)
		router := setupUserTestRouter(mockService, adminCaller)

		w := serve(router, createJSONHTTPRequest(http.MethodPost, "/api/v1/users", map[string]any{
			"firstName": "Ana", "lastName": "Silva", "email": "not-an-email",
		}))

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Equal(t, []handler.FieldError{{Field: "email", Message: "must be a valid email address"}}, decode(t, w).Errors)
	})

	t.Run("Success", func(t *testing.T) {
		mockService := mocks.NewMockUserService(t)
		router := setupUserTestRouter(mockService, adminCaller)

		mockService.EXPECT().Create(mock.Anything, *adminCaller, mock.Anything).Return(&model.User{ID: 9}, nil).Once()

		w := serve(router, createJSONHTTPRequest(http.MethodPost, "/api/v1/users", map[string]any{
			"firstName": "Ana", "lastName": "Silva", "email": "ana@example.com",
		}))

		assert.Equal(t, http.StatusCreated, w.Code)
		assert.Equal(t, "User created successfully", decode(t, w).Message)
	})
}

func TestUpdateUserStatus(t *testing.T) {
	mockService := mocks.NewMockUserService(t)
	router := setupUserTestRouter(mockService, adminCaller)

	mockService.EXPECT().UpdateStatus(mock.Anything, *adminCaller, 3, model.UserStatusBlocked).Return(&model.User{ID: 3, Status: model.UserStatusBlocked}, nil).Once()

	w := serve(router, createJSONHTTPRequest(http.MethodPatch, "/api/v1/users/3/status", map[string]any{"status": "blocked"}))

	assert.Equal(t, http.StatusOK, w.Code)
}
