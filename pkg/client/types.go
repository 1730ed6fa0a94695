package client

import "time"

// User is the public view of an account
type User struct {
	ID              uint   `json:"id"`
	Name            string `json:"name"`
	Email           string `json:"email"`
	Role            string `json:"role"`
	ProfileComplete bool   `json:"profileComplete"`
}

// AuthResponse is returned by register and login
type AuthResponse struct {
	Message string `json:"message"`
	Token   string `json:"token"`
	User    User   `json:"user"`
}

// RegisterRequest creates an account. Role is optional.
type RegisterRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
	Role     string `json:"role,omitempty"`
}

// Job is a job posting
type Job struct {
	ID               uint       `json:"id"`
	Title            string     `json:"title"`
	Company          string     `json:"company"`
	Location         string     `json:"location"`
	Department       string     `json:"department"`
	Type             string     `json:"type"`
	Experience       string     `json:"experience"`
	Description      string     `json:"description"`
	Requirements     []string   `json:"requirements"`
	Responsibilities []string   `json:"responsibilities"`
	Salary           *string    `json:"salary"`
	Posted           time.Time  `json:"posted"`
	Deadline         *time.Time `json:"deadline"`
	Status           string     `json:"status"`
}

// JobRequest carries every field of a posting. Deadline is YYYY-MM-DD.
type JobRequest struct {
	Title            string   `json:"title"`
	Company          string   `json:"company"`
	Location         string   `json:"location"`
	Department       string   `json:"department"`
	Type             string   `json:"type"`
	Experience       string   `json:"experience,omitempty"`
	Description      string   `json:"description"`
	Requirements     []string `json:"requirements,omitempty"`
	Responsibilities []string `json:"responsibilities,omitempty"`
	Salary           *string  `json:"salary,omitempty"`
	Deadline         *string  `json:"deadline,omitempty"`
	Status           string   `json:"status,omitempty"`
}

// JobFilter narrows ListJobs. Empty fields are not sent.
type JobFilter struct {
	Search     string
	Location   string
	Department string
	JobType    string
	Status     string
}

// Feedback is a message attached to an application
type Feedback struct {
	ID            uint      `json:"id"`
	ApplicationID uint      `json:"applicationId"`
	Message       string    `json:"message"`
	CreatedAt     time.Time `json:"createdAt"`
	FromAdmin     bool      `json:"fromAdmin"`
}

// Application is an application joined with its posting
type Application struct {
	ID             uint       `json:"id"`
	JobID          uint       `json:"jobId"`
	UserID         uint       `json:"userId"`
	Status         string     `json:"status"`
	AppliedDate    time.Time  `json:"appliedDate"`
	ResumeURL      *string    `json:"resumeUrl"`
	CoverLetterURL *string    `json:"coverLetterUrl"`
	Title          string     `json:"title"`
	Company        string     `json:"company"`
	Location       string     `json:"location,omitempty"`
	Department     string     `json:"department"`
	Type           string     `json:"type,omitempty"`
	ApplicantName  string     `json:"applicantName,omitempty"`
	ApplicantEmail string     `json:"applicantEmail,omitempty"`
	Feedback       []Feedback `json:"feedback,omitempty"`
}

// ApplyRequest submits an application
type ApplyRequest struct {
	JobID          uint    `json:"jobId"`
	ResumeURL      *string `json:"resumeUrl,omitempty"`
	CoverLetterURL *string `json:"coverLetterUrl,omitempty"`
}

// Experience is a work experience entry
type Experience struct {
	ID          uint       `json:"id"`
	UserID      uint       `json:"userId"`
	Company     string     `json:"company"`
	Position    string     `json:"position"`
	StartDate   time.Time  `json:"startDate"`
	EndDate     *time.Time `json:"endDate"`
	Current     bool       `json:"current"`
	Description *string    `json:"description"`
}

// Education is an education entry
type Education struct {
	ID          uint       `json:"id"`
	UserID      uint       `json:"userId"`
	Institution string     `json:"institution"`
	Degree      string     `json:"degree"`
	Field       string     `json:"field"`
	StartDate   time.Time  `json:"startDate"`
	EndDate     *time.Time `json:"endDate"`
	Current     bool       `json:"current"`
}

// Profile is a user profile with its entries
type Profile struct {
	ID         uint         `json:"id"`
	UserID     uint         `json:"userId"`
	FirstName  string       `json:"firstName"`
	LastName   string       `json:"lastName"`
	Phone      *string      `json:"phone"`
	Location   *string      `json:"location"`
	Bio        *string      `json:"bio"`
	Skills     []string     `json:"skills"`
	Experience []Experience `json:"experience"`
	Education  []Education  `json:"education"`
}

// ProfileResponse is the account together with its profile, which is nil until saved
type ProfileResponse struct {
	User    User     `json:"user"`
	Profile *Profile `json:"profile"`
}

// ProfileRequest replaces the caller's profile
type ProfileRequest struct {
	FirstName string   `json:"firstName"`
	LastName  string   `json:"lastName"`
	Phone     *string  `json:"phone,omitempty"`
	Location  *string  `json:"location,omitempty"`
	Bio       *string  `json:"bio,omitempty"`
	Skills    []string `json:"skills,omitempty"`
}

// ExperienceRequest creates or replaces an experience entry. Dates are YYYY-MM-DD.
type ExperienceRequest struct {
	Company     string  `json:"company"`
	Position    string  `json:"position"`
	StartDate   string  `json:"startDate"`
	EndDate     *string `json:"endDate,omitempty"`
	Current     bool    `json:"current"`
	Description *string `json:"description,omitempty"`
}

// EducationRequest creates or replaces an education entry. Dates are YYYY-MM-DD.
type EducationRequest struct {
	Institution string  `json:"institution"`
	Degree      string  `json:"degree"`
	Field       string  `json:"field"`
	StartDate   string  `json:"startDate"`
	EndDate     *string `json:"endDate,omitempty"`
	Current     bool    `json:"current"`
}
