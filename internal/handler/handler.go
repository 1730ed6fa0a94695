// Package handler holds the echo handlers of the job board API.
package handler

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"
	"github.com/suteetoe/jobboard/internal/apperror"
	"github.com/suteetoe/jobboard/internal/middleware"
	"github.com/suteetoe/jobboard/internal/service"
	"github.com/suteetoe/jobboard/pkg/logger"
	"github.com/suteetoe/jobboard/prometheus"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// Shared response messages
const (
	MsgServerError    = "Server error"
	MsgInvalidRequest = "Invalid request body"
)

// Handler serves every API route
type Handler struct {
	auth         *service.AuthService
	jobs         *service.JobService
	applications *service.ApplicationService
	profiles     *service.ProfileService

	db         *gorm.DB
	metrics    *prometheus.Metrics
	production bool
}

// Deps are the collaborators of Handler
type Deps struct {
	Auth         *service.AuthService
	Jobs         *service.JobService
	Applications *service.ApplicationService
	Profiles     *service.ProfileService
	DB           *gorm.DB
	Metrics      *prometheus.Metrics
	// Production hides internal error details from responses
	Production bool
}

// New creates a Handler
func New(deps Deps) *Handler {
	return &Handler{
		auth:         deps.Auth,
		jobs:         deps.Jobs,
		applications: deps.Applications,
		profiles:     deps.Profiles,
		db:           deps.DB,
		metrics:      deps.Metrics,
		production:   deps.Production,
	}
}

// respondError logs err and writes the status and {message, error?} body for its kind
func (h *Handler) respondError(c echo.Context, err error, logMessage string) error {
	log := logger.FromContext(c)
	kind := apperror.KindOf(err)

	if kind == apperror.Internal {
		log.Error(logMessage, zap.Error(err))
		body := echo.Map{"message": MsgServerError}
		if !h.production {
			body["error"] = err.Error()
		}
		return c.JSON(http.StatusInternalServerError, body)
	}

	fields := []zap.Field{zap.String("kind", kind.String()), zap.Error(err)}
	if failed := FailedFields(err); len(failed) > 0 {
		fields = append(fields, zap.Strings("fields", failed))
	}
	log.Warn(logMessage, fields...)
	return c.JSON(kind.Status(), echo.Map{"message": apperror.MessageOf(err, MsgServerError)})
}

// bind decodes the request body into req and checks its validate tags.
// Failures become Validation errors carrying message.
func bind(c echo.Context, req interface{}, message string) error {
	if err := c.Bind(req); err != nil {
		return apperror.Wrap(apperror.Validation, MsgInvalidRequest, err)
	}
	if err := c.Validate(req); err != nil {
		return apperror.Wrap(apperror.Validation, message, err)
	}
	return nil
}

// paramID parses the :id path parameter. A malformed id cannot match any
// row, so it is reported as NotFound with notFoundMessage.
func paramID(c echo.Context, notFoundMessage string) (uint, error) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 0)
	if err != nil || id == 0 {
		return 0, apperror.NewNotFound(notFoundMessage)
	}
	return uint(id), nil
}

// identity returns the authenticated caller. Routes using it sit behind Authenticate.
func identity(c echo.Context) (middleware.Identity, error) {
	id, ok := middleware.IdentityFrom(c)
	if !ok {
		return middleware.Identity{}, apperror.New(apperror.Auth, middleware.MsgNoToken)
	}
	return id, nil
}

func caller(id middleware.Identity) service.Caller {
	return service.Caller{ID: id.ID, Role: id.Role}
}

func (h *Handler) recordOperation(resource, operation string) {
	if h.metrics != nil {
		h.metrics.RecordOperation(resource, operation)
	}
}

func (h *Handler) recordAuthError(errorType string) {
	if h.metrics != nil {
		h.metrics.RecordAuthError(errorType)
	}
}

// HTTPErrorHandler renders framework errors (unknown routes, bad methods,
// recovered panics) with the API's {message} body
func HTTPErrorHandler(production bool) echo.HTTPErrorHandler {
	return func(err error, c echo.Context) {
		if c.Response().Committed {
			return
		}

		status := http.StatusInternalServerError
		body := echo.Map{"message": MsgServerError}

		var he *echo.HTTPError
		if errors.As(err, &he) {
			status = he.Code
			if msg, ok := he.Message.(string); ok {
				body["message"] = msg
			} else {
				body["message"] = http.StatusText(he.Code)
			}
		} else if kind := apperror.KindOf(err); kind != apperror.Internal {
			status = kind.Status()
			body["message"] = apperror.MessageOf(err, MsgServerError)
		} else if !production {
			body["error"] = err.Error()
		}

		if status >= http.StatusInternalServerError {
			logger.FromContext(c).Error("Unhandled error", zap.Error(err))
		}

		var writeErr error
		if c.Request().Method == http.MethodHead {
			writeErr = c.NoContent(status)
		} else {
			writeErr = c.JSON(status, body)
		}
		if writeErr != nil {
			logger.FromContext(c).Error("Failed to write error response", zap.Error(writeErr))
		}
	}
}
