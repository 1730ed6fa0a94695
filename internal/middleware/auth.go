package middleware

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"
	"github.com/suteetoe/jobboard/internal/model"
	"github.com/suteetoe/jobboard/pkg/jwtutil"
	"github.com/suteetoe/jobboard/pkg/logger"
	"github.com/suteetoe/jobboard/prometheus"
	"go.uber.org/zap"
)

// Auth failure messages
const (
	MsgNoToken      = "Access denied. No token provided."
	MsgInvalidToken = "Invalid or expired token"
	MsgAdminOnly    = "Access denied. Admin only."
)

const identityKey = "identity"

// TokenValidator verifies bearer tokens
type TokenValidator interface {
	ValidateToken(tokenString string) (*jwtutil.UserClaims, error)
}

// Identity is the authenticated caller of a request
type Identity struct {
	ID    uint
	Email string
	Role  string
}

// IsAdmin reports whether the caller holds the admin role
func (i Identity) IsAdmin() bool {
	return i.Role == model.RoleAdmin
}

// IdentityFrom returns the identity stored by Authenticate
func IdentityFrom(c echo.Context) (Identity, bool) {
	identity, ok := c.Get(identityKey).(Identity)
	return identity, ok
}

// Auth guards routes with bearer tokens and roles
type Auth struct {
	tokens  TokenValidator
	metrics *prometheus.Metrics
}

// NewAuth creates the auth middleware set
func NewAuth(tokens TokenValidator, metrics *prometheus.Metrics) *Auth {
	return &Auth{tokens: tokens, metrics: metrics}
}

// Authenticate requires a valid "Authorization: Bearer <token>" header
func (a *Auth) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		log := logger.FromContext(c)

		tokenString, ok := bearerToken(c.Request().Header.Get(echo.HeaderAuthorization))
		if !ok {
			log.Warn("Missing bearer token")
			a.recordAuthError("missing_token")
			return c.JSON(http.StatusUnauthorized, echo.Map{"message": MsgNoToken})
		}

		claims, err := a.tokens.ValidateToken(tokenString)
		if err != nil {
			log.Warn("Invalid JWT token", zap.Error(err))
			a.recordAuthError("invalid_token")
			return c.JSON(http.StatusForbidden, echo.Map{"message": MsgInvalidToken})
		}

		c.Set(identityKey, Identity{ID: claims.UserID, Email: claims.Email, Role: claims.Role})
		logger.Set(c, log.With(zap.Uint("user_id", claims.UserID), zap.String("role", claims.Role)))

		return next(c)
	}
}

// Identify stores the caller's identity when a valid bearer token is sent and
// otherwise lets the request through anonymously
func (a *Auth) Identify(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		tokenString, ok := bearerToken(c.Request().Header.Get(echo.HeaderAuthorization))
		if !ok {
			return next(c)
		}

		claims, err := a.tokens.ValidateToken(tokenString)
		if err != nil {
			logger.FromContext(c).Debug("Ignoring invalid token on public route", zap.Error(err))
			return next(c)
		}

		c.Set(identityKey, Identity{ID: claims.UserID, Email: claims.Email, Role: claims.Role})
		return next(c)
	}
}

// RequireAdmin rejects callers without the admin role. It runs after
// Authenticate and before any body is read.
func (a *Auth) RequireAdmin(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		identity, ok := IdentityFrom(c)
		if !ok || !identity.IsAdmin() {
			logger.FromContext(c).Warn("Admin route refused", zap.Uint("user_id", identity.ID))
			a.recordAuthError("admin_required")
			return c.JSON(http.StatusForbidden, echo.Map{"message": MsgAdminOnly})
		}
		return next(c)
	}
}

func (a *Auth) recordAuthError(errorType string) {
	if a.metrics != nil {
		a.metrics.RecordAuthError(errorType)
	}
}

// bearerToken extracts the token of a "Bearer <token>" header value
func bearerToken(header string) (string, bool) {
	scheme, token, found := strings.Cut(strings.TrimSpace(header), " ")
	if !found || !strings.EqualFold(scheme, "bearer") {
		return "", false
	}
	token = strings.TrimSpace(token)
	return token, token != ""
}
