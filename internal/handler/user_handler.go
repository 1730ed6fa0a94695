package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/suteetoe/jobboard/internal/service"
	"github.com/suteetoe/jobboard/internal/store"
	"github.com/suteetoe/jobboard/pkg/logger"
	"go.uber.org/zap"
)

type profileRequest struct {
	FirstName string   `json:"firstName" validate:"required"`
	LastName  string   `json:"lastName" validate:"required"`
	Phone     *string  `json:"phone"`
	Location  *string  `json:"location"`
	Bio       *string  `json:"bio"`
	Skills    []string `json:"skills"`
}

type experienceRequest struct {
	Company     string  `json:"company" validate:"required"`
	Position    string  `json:"position" validate:"required"`
	StartDate   string  `json:"startDate" validate:"required"`
	EndDate     *string `json:"endDate"`
	Current     bool    `json:"current"`
	Description *string `json:"description"`
}

func (r *experienceRequest) input() service.ExperienceInput {
	return service.ExperienceInput{
		Company:     r.Company,
		Position:    r.Position,
		StartDate:   r.StartDate,
		EndDate:     r.EndDate,
		Current:     r.Current,
		Description: r.Description,
	}
}

type educationRequest struct {
	Institution string  `json:"institution" validate:"required"`
	Degree      string  `json:"degree" validate:"required"`
	Field       string  `json:"field" validate:"required"`
	StartDate   string  `json:"startDate" validate:"required"`
	EndDate     *string `json:"endDate"`
	Current     bool    `json:"current"`
}

func (r *educationRequest) input() service.EducationInput {
	return service.EducationInput{
		Institution: r.Institution,
		Degree:      r.Degree,
		Field:       r.Field,
		StartDate:   r.StartDate,
		EndDate:     r.EndDate,
		Current:     r.Current,
	}
}

// GetProfile returns the caller's account and profile, which is null until first saved
func (h *Handler) GetProfile(c echo.Context) error {
	id, err := identity(c)
	if err != nil {
		return h.respondError(c, err, "Missing identity")
	}

	view, err := h.profiles.Get(c.Request().Context(), id.ID)
	if err != nil {
		return h.respondError(c, err, "Failed to get profile")
	}

	return c.JSON(http.StatusOK, echo.Map{
		"user":    view.User,
		"profile": view.Profile,
	})
}

// UpdateProfile creates or replaces the caller's profile
func (h *Handler) UpdateProfile(c echo.Context) error {
	log := logger.FromContext(c)

	id, err := identity(c)
	if err != nil {
		return h.respondError(c, err, "Missing identity")
	}

	var req profileRequest
	if err := bind(c, &req, service.MsgNameRequired); err != nil {
		return h.respondError(c, err, "Invalid profile request")
	}

	err = h.profiles.Update(c.Request().Context(), id.ID, service.ProfileInput{
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Phone:     req.Phone,
		Location:  req.Location,
		Bio:       req.Bio,
		Skills:    req.Skills,
	})
	if err != nil {
		return h.respondError(c, err, "Failed to update profile")
	}

	h.recordOperation("profiles", "update")
	log.Info("Profile updated")
	return c.JSON(http.StatusOK, echo.Map{"message": "Profile updated successfully"})
}

// AddExperience adds a work experience entry for the caller
func (h *Handler) AddExperience(c echo.Context) error {
	id, err := identity(c)
	if err != nil {
		return h.respondError(c, err, "Missing identity")
	}

	var req experienceRequest
	if err := bind(c, &req, service.MsgExperienceRequired); err != nil {
		return h.respondError(c, err, "Invalid experience request")
	}

	exp, err := h.profiles.AddExperience(c.Request().Context(), id.ID, req.input())
	if err != nil {
		return h.respondError(c, err, "Failed to add experience")
	}

	h.recordOperation("experience", "create")
	return c.JSON(http.StatusCreated, echo.Map{
		"message":      "Experience added successfully",
		"experienceId": exp.ID,
	})
}

// UpdateExperience replaces one of the caller's experience entries
func (h *Handler) UpdateExperience(c echo.Context) error {
	id, err := identity(c)
	if err != nil {
		return h.respondError(c, err, "Missing identity")
	}

	expID, err := paramID(c, store.MsgExperienceNotFound)
	if err != nil {
		return h.respondError(c, err, "Invalid experience id")
	}

	// unknown or foreign entries are reported before the body is read
	if err := h.profiles.FindExperience(c.Request().Context(), id.ID, expID); err != nil {
		return h.respondError(c, err, "Experience not accessible")
	}

	var req experienceRequest
	if err := bind(c, &req, service.MsgExperienceRequired); err != nil {
		return h.respondError(c, err, "Invalid experience request")
	}

	if err := h.profiles.UpdateExperience(c.Request().Context(), id.ID, expID, req.input()); err != nil {
		return h.respondError(c, err, "Failed to update experience")
	}

	h.recordOperation("experience", "update")
	return c.JSON(http.StatusOK, echo.Map{"message": "Experience updated successfully"})
}

// DeleteExperience removes one of the caller's experience entries
func (h *Handler) DeleteExperience(c echo.Context) error {
	id, err := identity(c)
	if err != nil {
		return h.respondError(c, err, "Missing identity")
	}

	expID, err := paramID(c, store.MsgExperienceNotFound)
	if err != nil {
		return h.respondError(c, err, "Invalid experience id")
	}

	if err := h.profiles.DeleteExperience(c.Request().Context(), id.ID, expID); err != nil {
		return h.respondError(c, err, "Failed to delete experience")
	}

	h.recordOperation("experience", "delete")
	logger.FromContext(c).Info("Experience deleted", zap.Uint("experience_id", expID))
	return c.JSON(http.StatusOK, echo.Map{"message": "Experience deleted successfully"})
}

// AddEducation adds an education entry for the caller
func (h *Handler) AddEducation(c echo.Context) error {
	id, err := identity(c)
	if err != nil {
		return h.respondError(c, err, "Missing identity")
	}

	var req educationRequest
	if err := bind(c, &req, service.MsgEducationRequired); err != nil {
		return h.respondError(c, err, "Invalid education request")
	}

	edu, err := h.profiles.AddEducation(c.Request().Context(), id.ID, req.input())
	if err != nil {
		return h.respondError(c, err, "Failed to add education")
	}

	h.recordOperation("education", "create")
	return c.JSON(http.StatusCreated, echo.Map{
		"message":     "Education added successfully",
		"educationId": edu.ID,
	})
}

// UpdateEducation replaces one of the caller's education entries
func (h *Handler) UpdateEducation(c echo.Context) error {
	id, err := identity(c)
	if err != nil {
		return h.respondError(c, err, "Missing identity")
	}

	eduID, err := paramID(c, store.MsgEducationNotFound)
	if err != nil {
		return h.respondError(c, err, "Invalid education id")
	}

	if err := h.profiles.FindEducation(c.Request().Context(), id.ID, eduID); err != nil {
		return h.respondError(c, err, "Education not accessible")
	}

	var req educationRequest
	if err := bind(c, &req, service.MsgEducationRequired); err != nil {
		return h.respondError(c, err, "Invalid education request")
	}

	if err := h.profiles.UpdateEducation(c.Request().Context(), id.ID, eduID, req.input()); err != nil {
		return h.respondError(c, err, "Failed to update education")
	}

	h.recordOperation("education", "update")
	return c.JSON(http.StatusOK, echo.Map{"message": "Education updated successfully"})
}

// DeleteEducation removes one of the caller's education entries
func (h *Handler) DeleteEducation(c echo.Context) error {
	id, err := identity(c)
	if err != nil {
		return h.respondError(c, err, "Missing identity")
	}

	eduID, err := paramID(c, store.MsgEducationNotFound)
	if err != nil {
		return h.respondError(c, err, "Invalid education id")
	}

	if err := h.profiles.DeleteEducation(c.Request().Context(), id.ID, eduID); err != nil {
		return h.respondError(c, err, "Failed to delete education")
	}

	h.recordOperation("education", "delete")
	logger.FromContext(c).Info("Education deleted", zap.Uint("education_id", eduID))
	return c.JSON(http.StatusOK, echo.Map{"message": "Education deleted successfully"})
}
