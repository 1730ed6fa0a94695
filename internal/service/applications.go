package service

import (
	"context"
	"time"

	"github.com/suteetoe/jobboard/internal/apperror"
	"github.com/suteetoe/jobboard/internal/model"
	"github.com/suteetoe/jobboard/internal/store"
)

// Application messages
const (
	MsgJobIDRequired      = "Job ID is required"
	MsgInvalidStatus      = "Invalid status"
	MsgFeedbackRequired   = "Feedback message is required"
	MsgApplicationMissing = store.MsgApplicationNotFound
)

// ApplicationStore is the persistence used by ApplicationService
type ApplicationStore interface {
	CreateApplication(ctx context.Context, app *model.Application) error
	ListApplicationsByUser(ctx context.Context, userID uint) ([]model.ApplicationDetail, error)
	GetApplicationDetail(ctx context.Context, id, ownerID uint) (*model.ApplicationDetail, error)
	ListAllApplications(ctx context.Context) ([]model.ApplicationSummary, error)
	ApplicationExists(ctx context.Context, id, ownerID uint) (bool, error)
	UpdateApplicationStatus(ctx context.Context, id uint, status string) (int64, error)
	CreateFeedback(ctx context.Context, fb *model.Feedback) error
}

// Caller is the authenticated identity a request acts as
type Caller struct {
	ID   uint
	Role string
}

// IsAdmin reports whether the caller holds the admin role
func (c Caller) IsAdmin() bool {
	return c.Role == model.RoleAdmin
}

// owner restricts lookups to the caller's own rows unless the caller is an admin
func (c Caller) owner() uint {
	if c.IsAdmin() {
		return store.AnyOwner
	}
	return c.ID
}

// ApplyInput holds an application submission
type ApplyInput struct {
	JobID          uint
	ResumeURL      *string
	CoverLetterURL *string
}

// ApplicationService manages applications and their feedback
type ApplicationService struct {
	applications ApplicationStore
	now          func() time.Time
}

// NewApplicationService creates an ApplicationService
func NewApplicationService(applications ApplicationStore) *ApplicationService {
	return &ApplicationService{applications: applications, now: time.Now}
}

// Apply submits userID's application to an active posting
func (s *ApplicationService) Apply(ctx context.Context, userID uint, in ApplyInput) (*model.Application, error) {
	if in.JobID == 0 {
		return nil, apperror.NewValidation(MsgJobIDRequired)
	}

	app := &model.Application{
		JobID:          in.JobID,
		UserID:         userID,
		Status:         model.ApplicationStatusApplied,
		AppliedDate:    s.now().UTC(),
		ResumeURL:      nilIfEmpty(in.ResumeURL),
		CoverLetterURL: nilIfEmpty(in.CoverLetterURL),
	}
	if err := s.applications.CreateApplication(ctx, app); err != nil {
		return nil, err
	}
	return app, nil
}

// ListMine returns the caller's applications with their feedback
func (s *ApplicationService) ListMine(ctx context.Context, userID uint) ([]model.ApplicationDetail, error) {
	return s.applications.ListApplicationsByUser(ctx, userID)
}

// Get returns one application. Non-admins only see their own.
func (s *ApplicationService) Get(ctx context.Context, caller Caller, id uint) (*model.ApplicationDetail, error) {
	return s.applications.GetApplicationDetail(ctx, id, caller.owner())
}

// ListAll returns every application with applicant details
func (s *ApplicationService) ListAll(ctx context.Context) ([]model.ApplicationSummary, error) {
	return s.applications.ListAllApplications(ctx)
}

// UpdateStatus sets any of the known statuses, from any status
func (s *ApplicationService) UpdateStatus(ctx context.Context, id uint, status string) error {
	if !model.ValidApplicationStatus(status) {
		return apperror.NewValidation(MsgInvalidStatus)
	}
	_, err := s.applications.UpdateApplicationStatus(ctx, id, status)
	return err
}

// AddFeedback attaches a message to an application the caller can access
func (s *ApplicationService) AddFeedback(ctx context.Context, caller Caller, id uint, message string) (*model.Feedback, error) {
	if message == "" {
		return nil, apperror.NewValidation(MsgFeedbackRequired)
	}

	ok, err := s.applications.ApplicationExists(ctx, id, caller.owner())
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, apperror.NewNotFound(MsgApplicationMissing)
	}

	fb := &model.Feedback{
		ApplicationID: id,
		Message:       message,
		FromAdmin:     caller.IsAdmin(),
		CreatedAt:     s.now().UTC(),
	}
	if err := s.applications.CreateFeedback(ctx, fb); err != nil {
		return nil, err
	}
	return fb, nil
}

func nilIfEmpty(s *string) *string {
	if s == nil || *s == "" {
		return nil
	}
	return s
}
