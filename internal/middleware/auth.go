package middleware

import (
	"errors"
	"net/http"
	"strconv"
	"strings"
	"time"

	"tourism-reservation/config"
	"tourism-reservation/internal/model"
	"tourism-reservation/pkg/logger"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"go.uber.org/zap"
)

const (
	callerKey = "caller"

	HeaderDevUserID = "X-User-Id"
	HeaderDevRole   = "X-User-Role"
)

var errInvalidToken = errors.New("invalid token")

// Claims is the payload of an access token: the user id as subject and the
// user's role.
type Claims struct {
	Role model.Role `json:"role"`
	jwt.RegisteredClaims
}

// SignToken issues an HS256 access token for caller.
func SignToken(secret string, caller model.Caller, ttl time.Duration) (string, error) {
	if secret == "" {
		return "", errors.New("jwt secret is empty")
	}
	now := time.Now().UTC()
	claims := Claims{
		Role: caller.Role,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   strconv.Itoa(caller.ID),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
}

// ParseToken validates raw and returns the caller it was issued for.
func ParseToken(secret, raw string) (model.Caller, error) {
	if secret == "" {
		return model.Caller{}, errInvalidToken
	}

	var claims Claims
	_, err := jwt.ParseWithClaims(raw, &claims, func(*jwt.Token) (any, error) {
		return []byte(secret), nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}), jwt.WithExpirationRequired())
	if err != nil {
		return model.Caller{}, err
	}

	id, err := strconv.Atoi(claims.Subject)
	if err != nil || id <= 0 || !claims.Role.IsValid() {
		return model.Caller{}, errInvalidToken
	}
	return model.Caller{ID: id, Role: claims.Role}, nil
}

// Authenticate resolves the caller from the bearer token. In dev mode a
// request without a token runs as the identity given by the X-User-Id and
// X-User-Role headers, or the configured dev identity.
func Authenticate(cfg config.AuthConfig) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")

		if header == "" && cfg.DevMode {
			SetCaller(c, devCaller(c, cfg))
			c.Next()
			return
		}

		raw, ok := strings.CutPrefix(header, "Bearer ")
		if !ok || strings.TrimSpace(raw) == "" {
			abort(c, http.StatusUnauthorized, "Authentication required")
			return
		}

		caller, err := ParseToken(cfg.JWTSecret, strings.TrimSpace(raw))
		if err != nil {
			logger.WithComponent("auth").Debug("Rejected token", zap.Error(err))
			abort(c, http.StatusUnauthorized, "Invalid or expired token")
			return
		}

		SetCaller(c, caller)
		c.Next()
	}
}

func devCaller(c *gin.Context, cfg config.AuthConfig) model.Caller {
	caller := model.Caller{ID: cfg.DevUserID, Role: model.Role(cfg.DevRole)}
	if id, err := strconv.Atoi(c.GetHeader(HeaderDevUserID)); err == nil && id > 0 {
		caller.ID = id
	}
	if role := model.Role(strings.ToLower(c.GetHeader(HeaderDevRole))); role.IsValid() {
		caller.Role = role
	}
	if !caller.Role.IsValid() {
		caller.Role = model.RoleAdmin
	}
	return caller
}

// RequireRole lets the request through when the caller has one of roles.
// It must run after Authenticate.
func RequireRole(roles ...model.Role) gin.HandlerFunc {
	allowed := make(map[model.Role]bool, len(roles))
	for _, r := range roles {
		allowed[r] = true
	}
	return func(c *gin.Context) {
		caller, ok := CallerFrom(c)
		if !ok {
			abort(c, http.StatusUnauthorized, "Authentication required")
			return
		}
		if !allowed[caller.Role] {
			abort(c, http.StatusForbidden, "Forbidden")
			return
		}
		c.Next()
	}
}

func SetCaller(c *gin.Context, caller model.Caller) {
	c.Set(callerKey, caller)
}

func CallerFrom(c *gin.Context) (model.Caller, bool) {
	v, ok := c.Get(callerKey)
	if !ok {
		return model.Caller{}, false
	}
	caller, ok := v.(model.Caller)
	return caller, ok
}

func abort(c *gin.Context, status int, message string) {
	c.AbortWithStatusJSON(status, gin.H{
		"status":  "error",
		"message": message,
	})
}
