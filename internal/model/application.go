package model

import "time"

// Application statuses. Any status may follow any other.
const (
	ApplicationStatusApplied   = "applied"
	ApplicationStatusScreening = "screening"
	ApplicationStatusInterview = "interview"
	ApplicationStatusTechnical = "technical"
	ApplicationStatusOffered   = "offered"
	ApplicationStatusRejected  = "rejected"
	ApplicationStatusWithdrawn = "withdrawn"
)

// ApplicationStatuses lists every accepted application status
var ApplicationStatuses = []string{
	ApplicationStatusApplied,
	ApplicationStatusScreening,
	ApplicationStatusInterview,
	ApplicationStatusTechnical,
	ApplicationStatusOffered,
	ApplicationStatusRejected,
	ApplicationStatusWithdrawn,
}

// ValidApplicationStatus reports whether s is one of the seven statuses
func ValidApplicationStatus(s string) bool {
	return contains(ApplicationStatuses, s)
}

// Application links a user to a job posting. A user applies to a job at most once.
type Application struct {
	ID             uint      `json:"id" gorm:"primaryKey"`
	JobID          uint      `json:"jobId" gorm:"not null;uniqueIndex:idx_applications_user_job,priority:2"`
	UserID         uint      `json:"userId" gorm:"not null;uniqueIndex:idx_applications_user_job,priority:1"`
	Status         string    `json:"status" gorm:"type:varchar(20);not null;default:'applied'"`
	AppliedDate    time.Time `json:"appliedDate" gorm:"not null;index"`
	ResumeURL      *string   `json:"resumeUrl" gorm:"type:varchar(1024)"`
	CoverLetterURL *string   `json:"coverLetterUrl" gorm:"type:varchar(1024)"`
}

// Feedback is an immutable message attached to an application
type Feedback struct {
	ID            uint      `json:"id" gorm:"primaryKey"`
	ApplicationID uint      `json:"applicationId" gorm:"not null;index"`
	Message       string    `json:"message" gorm:"type:text;not null"`
	CreatedAt     time.Time `json:"createdAt"`
	FromAdmin     bool      `json:"fromAdmin" gorm:"not null;default:false"`
}

// TableName keeps the singular table name
func (Feedback) TableName() string {
	return "feedback"
}

// ApplicationDetail is an application joined with its posting and feedback
type ApplicationDetail struct {
	Application
	Title      string     `json:"title"`
	Company    string     `json:"company"`
	Location   string     `json:"location"`
	Department string     `json:"department"`
	Type       string     `json:"type"`
	Feedback   []Feedback `json:"feedback" gorm:"-"`
}

// ApplicationSummary is the admin listing row: application, posting and applicant
type ApplicationSummary struct {
	Application
	Title          string `json:"title"`
	Company        string `json:"company"`
	Department     string `json:"department"`
	ApplicantName  string `json:"applicantName"`
	ApplicantEmail string `json:"applicantEmail"`
}
