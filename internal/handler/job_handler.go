package handler

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/suteetoe/jobboard/internal/apperror"
	"github.com/suteetoe/jobboard/internal/middleware"
	"github.com/suteetoe/jobboard/internal/service"
	"github.com/suteetoe/jobboard/internal/store"
	"github.com/suteetoe/jobboard/pkg/logger"
	"go.uber.org/zap"
)

type jobRequest struct {
	Title            string   `json:"title" validate:"required"`
	Company          string   `json:"company" validate:"required"`
	Location         string   `json:"location" validate:"required"`
	Department       string   `json:"department" validate:"required"`
	Type             string   `json:"type" validate:"required"`
	Experience       string   `json:"experience"`
	Description      string   `json:"description" validate:"required"`
	Requirements     []string `json:"requirements"`
	Responsibilities []string `json:"responsibilities"`
	Salary           *string  `json:"salary"`
	Deadline         *string  `json:"deadline"`
	Status           string   `json:"status"`
}

func (r *jobRequest) input() (service.JobInput, error) {
	var deadline *time.Time
	if r.Deadline != nil && *r.Deadline != "" {
		d, err := service.ParseDate(*r.Deadline)
		if err != nil {
			return service.JobInput{}, err
		}
		t := time.Time(d)
		deadline = &t
	}

	return service.JobInput{
		Title:            r.Title,
		Company:          r.Company,
		Location:         r.Location,
		Department:       r.Department,
		Type:             r.Type,
		Experience:       r.Experience,
		Description:      r.Description,
		Requirements:     r.Requirements,
		Responsibilities: r.Responsibilities,
		Salary:           r.Salary,
		Deadline:         deadline,
		Status:           r.Status,
	}, nil
}

// ListJobs returns postings filtered by the search, location, department
// and jobType query parameters. The status parameter is honoured for admins only.
func (h *Handler) ListJobs(c echo.Context) error {
	viewer, _ := middleware.IdentityFrom(c)

	jobs, err := h.jobs.List(c.Request().Context(), service.JobQuery{
		Search:     c.QueryParam("search"),
		Location:   c.QueryParam("location"),
		Department: c.QueryParam("department"),
		Type:       c.QueryParam("jobType"),
		Status:     c.QueryParam("status"),
		Admin:      viewer.IsAdmin(),
	})
	if err != nil {
		return h.respondError(c, err, "Failed to list jobs")
	}

	return c.JSON(http.StatusOK, echo.Map{"jobs": jobs})
}

// GetJob returns one posting whatever its status
func (h *Handler) GetJob(c echo.Context) error {
	id, err := paramID(c, store.MsgJobNotFound)
	if err != nil {
		return h.respondError(c, err, "Invalid job id")
	}

	job, err := h.jobs.Get(c.Request().Context(), id)
	if err != nil {
		return h.respondError(c, err, "Failed to get job")
	}

	return c.JSON(http.StatusOK, echo.Map{"job": job})
}

// CreateJob stores a new posting (admin)
func (h *Handler) CreateJob(c echo.Context) error {
	log := logger.FromContext(c)

	var req jobRequest
	if err := bind(c, &req, service.MsgMissingFields); err != nil {
		return h.respondError(c, err, "Invalid job request")
	}
	in, err := req.input()
	if err != nil {
		return h.respondError(c, err, "Invalid job deadline")
	}

	job, err := h.jobs.Create(c.Request().Context(), in)
	if err != nil {
		return h.respondError(c, err, "Failed to create job")
	}

	h.recordOperation("jobs", "create")
	log.Info("Job created", zap.Uint("job_id", job.ID), zap.String("title", job.Title))
	return c.JSON(http.StatusCreated, echo.Map{
		"message": "Job created successfully",
		"jobId":   job.ID,
	})
}

// UpdateJob replaces every field of a posting (admin)
func (h *Handler) UpdateJob(c echo.Context) error {
	log := logger.FromContext(c)

	id, err := paramID(c, store.MsgJobNotFound)
	if err != nil {
		return h.respondError(c, err, "Invalid job id")
	}

	// fields may be omitted on update; they are cleared
	var req jobRequest
	if err := c.Bind(&req); err != nil {
		return h.respondError(c, apperror.Wrap(apperror.Validation, MsgInvalidRequest, err), "Invalid job request")
	}
	in, err := req.input()
	if err != nil {
		return h.respondError(c, err, "Invalid job deadline")
	}

	if err := h.jobs.Update(c.Request().Context(), id, in); err != nil {
		return h.respondError(c, err, "Failed to update job")
	}

	h.recordOperation("jobs", "update")
	log.Info("Job updated", zap.Uint("job_id", id))
	return c.JSON(http.StatusOK, echo.Map{"message": "Job updated successfully"})
}

// DeleteJob removes a posting (admin). Deleting a missing posting succeeds.
func (h *Handler) DeleteJob(c echo.Context) error {
	log := logger.FromContext(c)

	id, err := paramID(c, store.MsgJobNotFound)
	if err != nil {
		return h.respondError(c, err, "Invalid job id")
	}

	if err := h.jobs.Delete(c.Request().Context(), id); err != nil {
		return h.respondError(c, err, "Failed to delete job")
	}

	h.recordOperation("jobs", "delete")
	log.Info("Job deleted", zap.Uint("job_id", id))
	return c.JSON(http.StatusOK, echo.Map{"message": "Job deleted successfully"})
}
