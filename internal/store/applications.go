package store

import (
	"context"

	"github.com/suteetoe/jobboard/internal/apperror"
	"github.com/suteetoe/jobboard/internal/model"
	"gorm.io/gorm"
)

// Application messages
const (
	MsgJobNotActive        = "Job not found or not active"
	MsgAlreadyApplied      = "You have already applied for this job"
	MsgApplicationNotFound = "Application not found"
)

// AnyOwner disables the owner restriction of application lookups
const AnyOwner uint = 0

const applicationDetailColumns = "a.*, j.title, j.company, j.location, j.department, j.type"

// CreateApplication inserts app after checking, in one transaction, that the
// posting is active and the user has not applied to it yet
func (s *Store) CreateApplication(ctx context.Context, app *model.Application) error {
	defer s.track("insert")()

	return s.conn(ctx).Transaction(func(tx *gorm.DB) error {
		var job model.JobPosting
		err := tx.Select("id").Where("id = ? AND status = ?", app.JobID, model.JobStatusActive).First(&job).Error
		if err != nil {
			return notFound(err, MsgJobNotActive)
		}

		var existing int64
		err = tx.Model(&model.Application{}).
			Where("user_id = ? AND job_id = ?", app.UserID, app.JobID).
			Count(&existing).Error
		if err != nil {
			return err
		}
		if existing > 0 {
			return apperror.NewConflict(MsgAlreadyApplied)
		}

		// the unique index catches a concurrent insert that passed the count
		if err := tx.Create(app).Error; err != nil {
			return conflict(err, MsgAlreadyApplied)
		}
		return nil
	})
}

// ListApplicationsByUser returns the user's applications with posting fields
// and feedback, most recently applied first
func (s *Store) ListApplicationsByUser(ctx context.Context, userID uint) ([]model.ApplicationDetail, error) {
	defer s.track("query")()

	var details []model.ApplicationDetail
	err := s.conn(ctx).Table("applications a").
		Select(applicationDetailColumns).
		Joins("JOIN job_postings j ON j.id = a.job_id").
		Where("a.user_id = ?", userID).
		Order("a.applied_date DESC").Order("a.id DESC").
		Scan(&details).Error
	if err != nil {
		return nil, err
	}

	if err := s.attachFeedback(ctx, details); err != nil {
		return nil, err
	}
	return emptyIfNil(details), nil
}

// GetApplicationDetail loads one application with posting fields and feedback.
// Unless ownerID is AnyOwner the application must belong to ownerID.
func (s *Store) GetApplicationDetail(ctx context.Context, id, ownerID uint) (*model.ApplicationDetail, error) {
	defer s.track("query")()

	query := s.conn(ctx).Table("applications a").
		Select(applicationDetailColumns).
		Joins("JOIN job_postings j ON j.id = a.job_id").
		Where("a.id = ?", id)
	if ownerID != AnyOwner {
		query = query.Where("a.user_id = ?", ownerID)
	}

	var detail model.ApplicationDetail
	if err := query.Take(&detail).Error; err != nil {
		return nil, notFound(err, MsgApplicationNotFound)
	}

	details := []model.ApplicationDetail{detail}
	if err := s.attachFeedback(ctx, details); err != nil {
		return nil, err
	}
	return &details[0], nil
}

// ListAllApplications returns every application with posting and applicant fields
func (s *Store) ListAllApplications(ctx context.Context) ([]model.ApplicationSummary, error) {
	defer s.track("query")()

	var summaries []model.ApplicationSummary
	err := s.conn(ctx).Table("applications a").
		Select("a.*, j.title, j.company, j.department, u.name AS applicant_name, u.email AS applicant_email").
		Joins("JOIN job_postings j ON j.id = a.job_id").
		Joins("JOIN users u ON u.id = a.user_id").
		Order("a.applied_date DESC").Order("a.id DESC").
		Scan(&summaries).Error
	if err != nil {
		return nil, err
	}
	return emptyIfNil(summaries), nil
}

// ApplicationExists reports whether application id exists and, unless ownerID
// is AnyOwner, belongs to ownerID
func (s *Store) ApplicationExists(ctx context.Context, id, ownerID uint) (bool, error) {
	defer s.track("query")()

	query := s.conn(ctx).Model(&model.Application{}).Where("id = ?", id)
	if ownerID != AnyOwner {
		query = query.Where("user_id = ?", ownerID)
	}

	var count int64
	err := query.Count(&count).Error
	return count > 0, err
}

// UpdateApplicationStatus sets the status of application id unconditionally
func (s *Store) UpdateApplicationStatus(ctx context.Context, id uint, status string) (int64, error) {
	defer s.track("update")()

	result := s.conn(ctx).Model(&model.Application{}).Where("id = ?", id).Update("status", status)
	return result.RowsAffected, result.Error
}

// CreateFeedback inserts fb and fills its ID
func (s *Store) CreateFeedback(ctx context.Context, fb *model.Feedback) error {
	defer s.track("insert")()

	return s.conn(ctx).Create(fb).Error
}

// attachFeedback loads the feedback of every application with one query,
// oldest first
func (s *Store) attachFeedback(ctx context.Context, details []model.ApplicationDetail) error {
	if len(details) == 0 {
		return nil
	}

	ids := make([]uint, len(details))
	for i := range details {
		ids[i] = details[i].ID
		details[i].Feedback = []model.Feedback{}
	}

	var feedback []model.Feedback
	err := s.conn(ctx).Where("application_id IN ?", ids).
		Order("created_at").Order("id").
		Find(&feedback).Error
	if err != nil {
		return err
	}

	index := make(map[uint]int, len(details))
	for i := range details {
		index[details[i].ID] = i
	}
	for _, fb := range feedback {
		if i, ok := index[fb.ApplicationID]; ok {
			details[i].Feedback = append(details[i].Feedback, fb)
		}
	}
	return nil
}
