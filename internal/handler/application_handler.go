package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/suteetoe/jobboard/internal/service"
	"github.com/suteetoe/jobboard/internal/store"
	"github.com/suteetoe/jobboard/pkg/logger"
	"go.uber.org/zap"
)

type applyRequest struct {
	JobID          flexibleID `json:"jobId" validate:"required"`
	ResumeURL      *string    `json:"resumeUrl"`
	CoverLetterURL *string    `json:"coverLetterUrl"`
}

type statusRequest struct {
	Status string `json:"status" validate:"required,oneof=applied screening interview technical offered rejected withdrawn"`
}

type feedbackRequest struct {
	Message string `json:"message" validate:"required"`
}

// Apply submits the caller's application to an active posting
func (h *Handler) Apply(c echo.Context) error {
	log := logger.FromContext(c)

	id, err := identity(c)
	if err != nil {
		return h.respondError(c, err, "Missing identity")
	}

	var req applyRequest
	if err := bind(c, &req, service.MsgJobIDRequired); err != nil {
		return h.respondError(c, err, "Invalid application request")
	}

	app, err := h.applications.Apply(c.Request().Context(), id.ID, service.ApplyInput{
		JobID:          uint(req.JobID),
		ResumeURL:      req.ResumeURL,
		CoverLetterURL: req.CoverLetterURL,
	})
	if err != nil {
		return h.respondError(c, err, "Failed to apply for job")
	}

	h.recordOperation("applications", "apply")
	log.Info("Application submitted", zap.Uint("application_id", app.ID), zap.Uint("job_id", app.JobID))
	return c.JSON(http.StatusCreated, echo.Map{
		"message":       "Application submitted successfully",
		"applicationId": app.ID,
	})
}

// ListMyApplications returns the caller's applications with feedback
func (h *Handler) ListMyApplications(c echo.Context) error {
	id, err := identity(c)
	if err != nil {
		return h.respondError(c, err, "Missing identity")
	}

	applications, err := h.applications.ListMine(c.Request().Context(), id.ID)
	if err != nil {
		return h.respondError(c, err, "Failed to list applications")
	}

	return c.JSON(http.StatusOK, echo.Map{"applications": applications})
}

// GetApplication returns one application; non-admins only see their own
func (h *Handler) GetApplication(c echo.Context) error {
	id, err := identity(c)
	if err != nil {
		return h.respondError(c, err, "Missing identity")
	}

	appID, err := paramID(c, store.MsgApplicationNotFound)
	if err != nil {
		return h.respondError(c, err, "Invalid application id")
	}

	application, err := h.applications.Get(c.Request().Context(), caller(id), appID)
	if err != nil {
		return h.respondError(c, err, "Failed to get application")
	}

	return c.JSON(http.StatusOK, echo.Map{"application": application})
}

// ListApplications returns every application (admin)
func (h *Handler) ListApplications(c echo.Context) error {
	applications, err := h.applications.ListAll(c.Request().Context())
	if err != nil {
		return h.respondError(c, err, "Failed to list all applications")
	}

	return c.JSON(http.StatusOK, echo.Map{"applications": applications})
}

// UpdateApplicationStatus sets the status of an application (admin)
func (h *Handler) UpdateApplicationStatus(c echo.Context) error {
	log := logger.FromContext(c)

	appID, err := paramID(c, store.MsgApplicationNotFound)
	if err != nil {
		return h.respondError(c, err, "Invalid application id")
	}

	var req statusRequest
	if err := bind(c, &req, service.MsgInvalidStatus); err != nil {
		return h.respondError(c, err, "Invalid status request")
	}

	if err := h.applications.UpdateStatus(c.Request().Context(), appID, req.Status); err != nil {
		return h.respondError(c, err, "Failed to update application status")
	}

	h.recordOperation("applications", "update_status")
	log.Info("Application status updated", zap.Uint("application_id", appID), zap.String("status", req.Status))
	return c.JSON(http.StatusOK, echo.Map{"message": "Application status updated"})
}

// AddFeedback attaches a message to an application the caller can access
func (h *Handler) AddFeedback(c echo.Context) error {
	log := logger.FromContext(c)

	id, err := identity(c)
	if err != nil {
		return h.respondError(c, err, "Missing identity")
	}

	appID, err := paramID(c, store.MsgApplicationNotFound)
	if err != nil {
		return h.respondError(c, err, "Invalid application id")
	}

	var req feedbackRequest
	if err := bind(c, &req, service.MsgFeedbackRequired); err != nil {
		return h.respondError(c, err, "Invalid feedback request")
	}

	fb, err := h.applications.AddFeedback(c.Request().Context(), caller(id), appID, req.Message)
	if err != nil {
		return h.respondError(c, err, "Failed to add feedback")
	}

	h.recordOperation("applications", "feedback")
	log.Info("Feedback added", zap.Uint("application_id", appID), zap.Bool("from_admin", fb.FromAdmin))
	return c.JSON(http.StatusCreated, echo.Map{
		"message":    "Feedback added successfully",
		"feedbackId": fb.ID,
	})
}
