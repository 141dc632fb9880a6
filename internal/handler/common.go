package handler

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"reflect"
	"strconv"
	"strings"

	"tourism-reservation/internal/middleware"
	"tourism-reservation/internal/model"
	apperrors "tourism-reservation/pkg/app_errors"
	"tourism-reservation/pkg/logger"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"
)

const (
	statusSuccess = "success"
	statusError   = "error"
)

// FieldError is one entry of a validation failure response.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

func init() {
	// report json names instead of Go field names in validation errors
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		v.RegisterTagNameFunc(jsonFieldName)
		if err := v.RegisterValidation("entitytype", isEntityType); err != nil {
			panic(fmt.Sprintf("register entitytype validator: %v", err))
		}
	}
}

func isEntityType(fl validator.FieldLevel) bool {
	switch model.EntityType(fl.Field().String()) {
	case model.EntityTypeEvent, model.EntityTypePlace:
		return true
	}
	return false
}

func jsonFieldName(field reflect.StructField) string {
	for _, tag := range []string{"json", "form"} {
		name, _, _ := strings.Cut(field.Tag.Get(tag), ",")
		if name == "-" {
			return ""
		}
		if name != "" {
			return name
		}
	}
	return field.Name
}

func respondSuccess(c *gin.Context, statusCode int, data any) {
	c.JSON(statusCode, gin.H{
		"status": statusSuccess,
		"data":   data,
	})
}

func respondCreated(c *gin.Context, message string, data any) {
	c.JSON(http.StatusCreated, gin.H{
		"status":  statusSuccess,
		"message": message,
		"data":    data,
	})
}

func respondError(c *gin.Context, statusCode int, message string) {
	c.AbortWithStatusJSON(statusCode, gin.H{
		"status":  statusError,
		"message": message,
	})
}

func BindJson(c *gin.Context, obj any) error {
	if err := c.ShouldBindJSON(obj); err != nil {
		respondBindingError(c, err)
		return err
	}
	return nil
}

func BindQuery(c *gin.Context, obj any) error {
	if err := c.ShouldBindQuery(obj); err != nil {
		respondBindingError(c, err)
		return err
	}
	return nil
}

// respondBindingError lists field errors when the payload parsed but failed
// validation, and a single message when it did not parse.
func respondBindingError(c *gin.Context, err error) {
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) {
		fields := make([]FieldError, 0, len(verrs))
		for _, fe := range verrs {
			fields = append(fields, FieldError{Field: fe.Field(), Message: fieldMessage(fe)})
		}
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{
			"status": statusError,
			"errors": fields,
		})
		return
	}

	var typeErr *json.UnmarshalTypeError
	if errors.As(err, &typeErr) {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{
			"status": statusError,
			"errors": []FieldError{{Field: typeErr.Field, Message: "has the wrong type"}},
		})
		return
	}

	respondError(c, http.StatusBadRequest, "Invalid request format")
}

func fieldMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "is required"
	case "min", "gte":
		return "must be at least " + fe.Param()
	case "max", "lte":
		if fe.Kind() == reflect.String {
			return "must be at most " + fe.Param() + " characters"
		}
		return "must be at most " + fe.Param()
	case "oneof":
		return "must be one of " + strings.ReplaceAll(fe.Param(), " ", ", ")
	case "email":
		return "must be a valid email address"
	case "entitytype":
		return "must be event or place"
	}
	return "is invalid"
}

// idParam reads a positive integer path parameter. It writes the 400
// response itself when the value is unusable.
func idParam(c *gin.Context, name string) (int, bool) {
	id, err := strconv.Atoi(c.Param(name))
	if err != nil || id <= 0 {
		respondError(c, http.StatusBadRequest, fmt.Sprintf("Invalid %s", name))
		return 0, false
	}
	return id, true
}

// dateQuery parses an optional YYYY-MM-DD query parameter.
func dateQuery(c *gin.Context, name string) (*model.Date, bool) {
	raw := c.Query(name)
	if raw == "" {
		return nil, true
	}
	d, err := model.ParseDate(raw)
	if err != nil {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{
			"status": statusError,
			"errors": []FieldError{{Field: name, Message: "must be a date in YYYY-MM-DD format"}},
		})
		return nil, false
	}
	return &d, true
}

// caller returns the authenticated caller; routes reaching it without one
// were registered outside the auth group.
func caller(c *gin.Context) (model.Caller, bool) {
	cl, ok := middleware.CallerFrom(c)
	if !ok {
		respondError(c, http.StatusUnauthorized, "Authentication required")
	}
	return cl, ok
}

// handleError translates service errors into responses. Only unexpected
// errors are logged at error level.
func handleError(c *gin.Context, err error, operation string) {
	log := logger.WithComponent("handler").With(
		zap.String("operation", operation),
		zap.String("request_id", middleware.RequestID(c)),
		zap.Error(err),
	)

	switch {
	case errors.Is(err, apperrors.ErrValidation),
		errors.Is(err, apperrors.ErrInvalidInput),
		errors.Is(err, apperrors.ErrInvalidRequest),
		errors.Is(err, apperrors.ErrInvalidStatusChange):
		log.Debug("Rejected request")
		respondError(c, http.StatusBadRequest, capitalize(err.Error()))
	case errors.Is(err, apperrors.ErrNotEnoughTickets),
		errors.Is(err, apperrors.ErrPlaceUnavailable):
		log.Info("Not available")
		respondError(c, http.StatusBadRequest, capitalize(err.Error()))
	case errors.Is(err, apperrors.ErrUnauthorized):
		respondError(c, http.StatusUnauthorized, "Authentication required")
	case errors.Is(err, apperrors.ErrForbidden):
		log.Info("Access denied")
		respondError(c, http.StatusForbidden, "Access denied")
	case apperrors.IsNotFound(err):
		respondError(c, http.StatusNotFound, capitalize(err.Error()))
	default:
		log.Error("Unexpected error")
		respondError(c, http.StatusInternalServerError, "Internal server error")
	}
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
