package service

import (
	"context"
	"time"

	"github.com/suteetoe/jobboard/internal/apperror"
	"github.com/suteetoe/jobboard/internal/model"
	"github.com/suteetoe/jobboard/internal/store"
)

// Job list sentinels sent by the client meaning "no filter"
const (
	AllLocations   = "all-locations"
	AllDepartments = "all-departments"
	AllTypes       = "all-types"
	AllStatuses    = "all"
)

// Job messages
const (
	MsgInvalidJobType   = "Invalid job type"
	MsgInvalidJobStatus = "Invalid job status"
)

// JobStore is the persistence used by JobService
type JobStore interface {
	ListJobs(ctx context.Context, filter store.JobFilter) ([]model.JobPosting, error)
	GetJob(ctx context.Context, id uint) (*model.JobPosting, error)
	CreateJob(ctx context.Context, job *model.JobPosting) error
	UpdateJob(ctx context.Context, id uint, job *model.JobPosting) (int64, error)
	DeleteJob(ctx context.Context, id uint) error
}

// JobQuery holds the raw list filters. Status is only applied for admins;
// everyone else sees active postings.
type JobQuery struct {
	Search     string
	Location   string
	Department string
	Type       string
	Status     string
	Admin      bool
}

// JobInput holds the mutable fields of a posting
type JobInput struct {
	Title            string
	Company          string
	Location         string
	Department       string
	Type             string
	Experience       string
	Description      string
	Requirements     []string
	Responsibilities []string
	Salary           *string
	Deadline         *time.Time
	Status           string
}

// JobService manages job postings
type JobService struct {
	jobs JobStore
	now  func() time.Time
}

// NewJobService creates a JobService
func NewJobService(jobs JobStore) *JobService {
	return &JobService{jobs: jobs, now: time.Now}
}

// List returns postings matching q. Only active postings are listed unless an
// admin asks for another status.
func (s *JobService) List(ctx context.Context, q JobQuery) ([]model.JobPosting, error) {
	filter := store.JobFilter{
		Search:     q.Search,
		Location:   ignoreSentinel(q.Location, AllLocations),
		Department: ignoreSentinel(q.Department, AllDepartments),
		Type:       ignoreSentinel(q.Type, AllTypes),
	}

	switch {
	case !q.Admin, q.Status == "":
		filter.Status = model.JobStatusActive
	case q.Status == AllStatuses:
		// every status
	case model.ValidJobStatus(q.Status):
		filter.Status = q.Status
	default:
		return nil, apperror.NewValidation(MsgInvalidJobStatus)
	}

	return s.jobs.ListJobs(ctx, filter)
}

// Get returns a posting whatever its status
func (s *JobService) Get(ctx context.Context, id uint) (*model.JobPosting, error) {
	return s.jobs.GetJob(ctx, id)
}

// Create stores a new posting dated now and returns it with its ID
func (s *JobService) Create(ctx context.Context, in JobInput) (*model.JobPosting, error) {
	if in.Title == "" || in.Company == "" || in.Location == "" ||
		in.Department == "" || in.Type == "" || in.Description == "" {
		return nil, apperror.NewValidation(MsgMissingFields)
	}

	job, err := buildJob(in)
	if err != nil {
		return nil, err
	}
	job.Posted = s.now().UTC()

	if err := s.jobs.CreateJob(ctx, job); err != nil {
		return nil, err
	}
	return job, nil
}

// Update replaces every mutable field of posting id. Omitted fields are
// cleared and a missing posting is not reported.
func (s *JobService) Update(ctx context.Context, id uint, in JobInput) error {
	job, err := buildJob(in)
	if err != nil {
		return err
	}
	_, err = s.jobs.UpdateJob(ctx, id, job)
	return err
}

// Delete removes posting id if present
func (s *JobService) Delete(ctx context.Context, id uint) error {
	return s.jobs.DeleteJob(ctx, id)
}

func buildJob(in JobInput) (*model.JobPosting, error) {
	if in.Type != "" && !model.ValidJobType(in.Type) {
		return nil, apperror.NewValidation(MsgInvalidJobType)
	}

	status := in.Status
	if status == "" {
		status = model.JobStatusActive
	}
	if !model.ValidJobStatus(status) {
		return nil, apperror.NewValidation(MsgInvalidJobStatus)
	}

	salary := in.Salary
	if salary != nil && *salary == "" {
		salary = nil
	}

	return &model.JobPosting{
		Title:            in.Title,
		Company:          in.Company,
		Location:         in.Location,
		Department:       in.Department,
		Type:             in.Type,
		Experience:       in.Experience,
		Description:      in.Description,
		Requirements:     listOrEmpty(in.Requirements),
		Responsibilities: listOrEmpty(in.Responsibilities),
		Salary:           salary,
		Deadline:         in.Deadline,
		Status:           status,
	}, nil
}

func ignoreSentinel(value, sentinel string) string {
	if value == sentinel {
		return ""
	}
	return value
}

func listOrEmpty(items []string) model.StringList {
	if items == nil {
		return model.StringList{}
	}
	return model.StringList(items)
}
