package model

import "time"

// Job types
const (
	JobTypeFullTime   = "Full-time"
	JobTypePartTime   = "Part-time"
	JobTypeContract   = "Contract"
	JobTypeInternship = "Internship"
	JobTypeRemote     = "Remote"
)

// Job posting statuses
const (
	JobStatusActive   = "active"
	JobStatusClosed   = "closed"
	JobStatusArchived = "archived"
)

// JobTypes lists the accepted posting types in display order
var JobTypes = []string{JobTypeFullTime, JobTypePartTime, JobTypeContract, JobTypeInternship, JobTypeRemote}

// JobStatuses lists the accepted posting statuses
var JobStatuses = []string{JobStatusActive, JobStatusClosed, JobStatusArchived}

// ValidJobType reports whether t is a known posting type
func ValidJobType(t string) bool {
	return contains(JobTypes, t)
}

// ValidJobStatus reports whether s is a known posting status
func ValidJobStatus(s string) bool {
	return contains(JobStatuses, s)
}

// JobPosting is an open (or formerly open) position
type JobPosting struct {
	ID               uint       `json:"id" gorm:"primaryKey"`
	Title            string     `json:"title" gorm:"type:varchar(255);not null"`
	Company          string     `json:"company" gorm:"type:varchar(255);not null"`
	Location         string     `json:"location" gorm:"type:varchar(255);not null"`
	Department       string     `json:"department" gorm:"type:varchar(255);not null;index"`
	Type             string     `json:"type" gorm:"type:varchar(50);not null"`
	Experience       string     `json:"experience" gorm:"type:varchar(255)"`
	Description      string     `json:"description" gorm:"type:text;not null"`
	Requirements     StringList `json:"requirements"`
	Responsibilities StringList `json:"responsibilities"`
	Salary           *string    `json:"salary" gorm:"type:varchar(255)"`
	Posted           time.Time  `json:"posted" gorm:"not null;index"`
	Deadline         *time.Time `json:"deadline"`
	Status           string     `json:"status" gorm:"type:varchar(20);not null;default:'active';index"`
}

func contains(values []string, v string) bool {
	for _, candidate := range values {
		if candidate == v {
			return true
		}
	}
	return false
}
