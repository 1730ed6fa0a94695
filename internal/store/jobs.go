package store

import (
	"context"
	"strings"

	"github.com/suteetoe/jobboard/internal/model"
)

// MsgJobNotFound is returned when a posting id does not exist
const MsgJobNotFound = "Job not found"

// JobFilter narrows ListJobs. Empty fields do not filter.
type JobFilter struct {
	Search     string
	Location   string
	Department string
	Type       string
	// Status restricts to one posting status; empty lists every status
	Status string
}

// ListJobs returns postings matching filter, newest first
func (s *Store) ListJobs(ctx context.Context, filter JobFilter) ([]model.JobPosting, error) {
	defer s.track("query")()

	query := s.conn(ctx).Model(&model.JobPosting{})

	if filter.Status != "" {
		query = query.Where("status = ?", filter.Status)
	}
	if filter.Search != "" {
		term := likeTerm(filter.Search)
		query = query.Where("(LOWER(title) LIKE ? OR LOWER(company) LIKE ? OR LOWER(description) LIKE ?)", term, term, term)
	}
	if filter.Location != "" {
		query = query.Where("LOWER(location) LIKE ?", likeTerm(filter.Location))
	}
	if filter.Department != "" {
		query = query.Where("department = ?", filter.Department)
	}
	if filter.Type != "" {
		query = query.Where("type = ?", filter.Type)
	}

	var jobs []model.JobPosting
	if err := query.Order("posted DESC").Order("id DESC").Find(&jobs).Error; err != nil {
		return nil, err
	}
	return emptyIfNil(jobs), nil
}

// GetJob loads a posting regardless of its status
func (s *Store) GetJob(ctx context.Context, id uint) (*model.JobPosting, error) {
	defer s.track("query")()

	var job model.JobPosting
	if err := s.conn(ctx).First(&job, id).Error; err != nil {
		return nil, notFound(err, MsgJobNotFound)
	}
	return &job, nil
}

// GetActiveJob loads a posting only while it accepts applications
func (s *Store) GetActiveJob(ctx context.Context, id uint, message string) (*model.JobPosting, error) {
	defer s.track("query")()

	var job model.JobPosting
	err := s.conn(ctx).Where("id = ? AND status = ?", id, model.JobStatusActive).First(&job).Error
	if err != nil {
		return nil, notFound(err, message)
	}
	return &job, nil
}

// CreateJob inserts job and fills its ID
func (s *Store) CreateJob(ctx context.Context, job *model.JobPosting) error {
	defer s.track("insert")()

	return s.conn(ctx).Create(job).Error
}

// UpdateJob overwrites every mutable column of posting id with the values in job.
// It reports the number of rows touched; a missing id is not an error.
func (s *Store) UpdateJob(ctx context.Context, id uint, job *model.JobPosting) (int64, error) {
	defer s.track("update")()

	result := s.conn(ctx).Model(&model.JobPosting{}).Where("id = ?", id).Updates(map[string]interface{}{
		"title":            job.Title,
		"company":          job.Company,
		"location":         job.Location,
		"department":       job.Department,
		"type":             job.Type,
		"experience":       job.Experience,
		"description":      job.Description,
		"requirements":     job.Requirements,
		"responsibilities": job.Responsibilities,
		"salary":           job.Salary,
		"deadline":         job.Deadline,
		"status":           job.Status,
	})
	return result.RowsAffected, result.Error
}

// DeleteJob hard deletes posting id. Deleting a missing id succeeds.
func (s *Store) DeleteJob(ctx context.Context, id uint) error {
	defer s.track("delete")()

	return s.conn(ctx).Delete(&model.JobPosting{}, id).Error
}

// CountJobs returns the number of stored postings
func (s *Store) CountJobs(ctx context.Context) (int64, error) {
	defer s.track("query")()

	var count int64
	err := s.conn(ctx).Model(&model.JobPosting{}).Count(&count).Error
	return count, err
}

func likeTerm(s string) string {
	return "%" + strings.ToLower(s) + "%"
}
