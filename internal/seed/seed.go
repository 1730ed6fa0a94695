// Package seed loads the demo accounts and the sample posting.
package seed

import (
	"context"
	"fmt"
	"time"

	"github.com/suteetoe/jobboard/internal/apperror"
	"github.com/suteetoe/jobboard/internal/model"
	"github.com/suteetoe/jobboard/internal/store"
	"github.com/suteetoe/jobboard/pkg/config"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

// Seeded account emails
const (
	AdminEmail = "admin@example.com"
	UserEmail  = "user@example.com"
)

// Seeder inserts demo data that is missing. Running it twice changes nothing.
type Seeder struct {
	st  *store.Store
	cfg *config.Config
	log *zap.Logger
	now func() time.Time
}

// New creates a Seeder
func New(st *store.Store, cfg *config.Config, log *zap.Logger) *Seeder {
	return &Seeder{st: st, cfg: cfg, log: log, now: time.Now}
}

// Run seeds the admin account, the regular account and the sample posting
func (s *Seeder) Run(ctx context.Context) error {
	admin := model.User{
		Name:            "Admin User",
		Email:           AdminEmail,
		Role:            model.RoleAdmin,
		ProfileComplete: true,
	}
	if err := s.ensureUser(ctx, &admin, s.cfg.Seed.AdminPassword); err != nil {
		return err
	}

	user := model.User{
		Name:  "Test User",
		Email: UserEmail,
		Role:  model.RoleUser,
	}
	if err := s.ensureUser(ctx, &user, s.cfg.Seed.UserPassword); err != nil {
		return err
	}

	return s.ensureSampleJob(ctx)
}

func (s *Seeder) ensureUser(ctx context.Context, u *model.User, password string) error {
	existing, err := s.st.GetUserByEmail(ctx, u.Email)
	if err == nil {
		s.log.Info("User already seeded", zap.String("email", u.Email))
		*u = *existing
		return nil
	}
	if !apperror.Is(err, apperror.NotFound) {
		return fmt.Errorf("look up user %s: %w", u.Email, err)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), s.cfg.Auth.BcryptCost)
	if err != nil {
		return fmt.Errorf("hash password for %s: %w", u.Email, err)
	}
	u.Password = string(hash)

	if err := s.st.CreateUser(ctx, u); err != nil {
		return fmt.Errorf("seed user %s: %w", u.Email, err)
	}
	s.log.Info("User seeded", zap.String("email", u.Email), zap.String("role", u.Role))
	return nil
}

func (s *Seeder) ensureSampleJob(ctx context.Context) error {
	count, err := s.st.CountJobs(ctx)
	if err != nil {
		return fmt.Errorf("count jobs: %w", err)
	}
	if count > 0 {
		s.log.Info("Jobs already present, skipping sample posting", zap.Int64("count", count))
		return nil
	}

	job := SampleJob(s.now().UTC())
	if err := s.st.CreateJob(ctx, &job); err != nil {
		return fmt.Errorf("seed sample job: %w", err)
	}

	s.log.Info("Sample job seeded", zap.Uint("job_id", job.ID), zap.String("title", job.Title))
	return nil
}

// SampleJob is the posting created on an empty database; its deadline is 30 days after now
func SampleJob(now time.Time) model.JobPosting {
	salary := "$75,000 - $95,000"
	deadline := now.AddDate(0, 0, 30)

	return model.JobPosting{
		Title:      "Senior Registered Nurse",
		Company:    "Metropolitan Medical Center",
		Location:   "Chicago, IL",
		Department: "Nursing",
		Type:       model.JobTypeFullTime,
		Experience: "3+ years",
		Description: "We're seeking an experienced Registered Nurse to join our Emergency Department team. " +
			"The ideal candidate will have strong clinical skills and a passion for patient care in fast-paced environments.",
		Requirements: model.StringList{
			"BSN degree required, MSN preferred",
			"Current RN license in the state of Illinois",
			"BLS and ACLS certifications",
			"3+ years of experience in emergency/critical care",
		},
		Responsibilities: model.StringList{
			"Provide direct patient care and assessments",
			"Administer medications and treatments as prescribed",
			"Collaborate with interdisciplinary healthcare team",
			"Document patient care accurately and thoroughly",
		},
		Salary:   &salary,
		Posted:   now,
		Deadline: &deadline,
		Status:   model.JobStatusActive,
	}
}
