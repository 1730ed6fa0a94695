package service

import (
	"context"

	"github.com/suteetoe/jobboard/internal/apperror"
	"github.com/suteetoe/jobboard/internal/model"
)

// Profile messages
const (
	MsgNameRequired       = "First name and last name are required"
	MsgExperienceRequired = "Company, position and start date are required"
	MsgEducationRequired  = "Institution, degree, field and start date are required"
)

// ProfileStore is the persistence used by ProfileService
type ProfileStore interface {
	GetUserByID(ctx context.Context, id uint) (*model.User, error)
	GetProfileDetail(ctx context.Context, userID uint) (*model.ProfileDetail, error)
	UpsertProfile(ctx context.Context, p *model.Profile, fullName string) error

	CheckExperienceOwner(ctx context.Context, id, userID uint) error
	CreateExperience(ctx context.Context, e *model.WorkExperience) error
	UpdateExperience(ctx context.Context, id, userID uint, e *model.WorkExperience) error
	DeleteExperience(ctx context.Context, id, userID uint) error

	CheckEducationOwner(ctx context.Context, id, userID uint) error
	CreateEducation(ctx context.Context, e *model.Education) error
	UpdateEducation(ctx context.Context, id, userID uint, e *model.Education) error
	DeleteEducation(ctx context.Context, id, userID uint) error
}

// ProfileInput holds the profile form
type ProfileInput struct {
	FirstName string
	LastName  string
	Phone     *string
	Location  *string
	Bio       *string
	Skills    []string
}

// ExperienceInput holds a work experience entry. Dates are unparsed.
type ExperienceInput struct {
	Company     string
	Position    string
	StartDate   string
	EndDate     *string
	Current     bool
	Description *string
}

// EducationInput holds an education entry. Dates are unparsed.
type EducationInput struct {
	Institution string
	Degree      string
	Field       string
	StartDate   string
	EndDate     *string
	Current     bool
}

// ProfileView is the user together with the saved profile, which is nil until first saved
type ProfileView struct {
	User    model.PublicUser
	Profile *model.ProfileDetail
}

// ProfileService manages profiles and their experience and education entries
type ProfileService struct {
	profiles ProfileStore
}

// NewProfileService creates a ProfileService
func NewProfileService(profiles ProfileStore) *ProfileService {
	return &ProfileService{profiles: profiles}
}

// Get returns the caller's account and profile
func (s *ProfileService) Get(ctx context.Context, userID uint) (*ProfileView, error) {
	user, err := s.profiles.GetUserByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	detail, err := s.profiles.GetProfileDetail(ctx, userID)
	if err != nil {
		return nil, err
	}

	return &ProfileView{User: user.Public(), Profile: detail}, nil
}

// Update creates or replaces the caller's profile and renames the account
// to "first last"
func (s *ProfileService) Update(ctx context.Context, userID uint, in ProfileInput) error {
	if in.FirstName == "" || in.LastName == "" {
		return apperror.NewValidation(MsgNameRequired)
	}

	profile := &model.Profile{
		UserID:    userID,
		FirstName: in.FirstName,
		LastName:  in.LastName,
		Phone:     nilIfEmpty(in.Phone),
		Location:  nilIfEmpty(in.Location),
		Bio:       nilIfEmpty(in.Bio),
		Skills:    listOrEmpty(in.Skills),
	}
	return s.profiles.UpsertProfile(ctx, profile, in.FirstName+" "+in.LastName)
}

// AddExperience stores a new entry for the caller
func (s *ProfileService) AddExperience(ctx context.Context, userID uint, in ExperienceInput) (*model.WorkExperience, error) {
	e, err := buildExperience(in)
	if err != nil {
		return nil, err
	}
	e.UserID = userID

	if err := s.profiles.CreateExperience(ctx, e); err != nil {
		return nil, err
	}
	return e, nil
}

// FindExperience fails with NotFound unless the caller owns entry id
func (s *ProfileService) FindExperience(ctx context.Context, userID, id uint) error {
	return s.profiles.CheckExperienceOwner(ctx, id, userID)
}

// UpdateExperience replaces an entry owned by the caller. Ownership is
// checked before the input.
func (s *ProfileService) UpdateExperience(ctx context.Context, userID, id uint, in ExperienceInput) error {
	if err := s.FindExperience(ctx, userID, id); err != nil {
		return err
	}
	e, err := buildExperience(in)
	if err != nil {
		return err
	}
	return s.profiles.UpdateExperience(ctx, id, userID, e)
}

// DeleteExperience removes an entry owned by the caller
func (s *ProfileService) DeleteExperience(ctx context.Context, userID, id uint) error {
	return s.profiles.DeleteExperience(ctx, id, userID)
}

// AddEducation stores a new entry for the caller
func (s *ProfileService) AddEducation(ctx context.Context, userID uint, in EducationInput) (*model.Education, error) {
	e, err := buildEducation(in)
	if err != nil {
		return nil, err
	}
	e.UserID = userID

	if err := s.profiles.CreateEducation(ctx, e); err != nil {
		return nil, err
	}
	return e, nil
}

// FindEducation fails with NotFound unless the caller owns entry id
func (s *ProfileService) FindEducation(ctx context.Context, userID, id uint) error {
	return s.profiles.CheckEducationOwner(ctx, id, userID)
}

// UpdateEducation replaces an entry owned by the caller. Ownership is
// checked before the input.
func (s *ProfileService) UpdateEducation(ctx context.Context, userID, id uint, in EducationInput) error {
	if err := s.FindEducation(ctx, userID, id); err != nil {
		return err
	}
	e, err := buildEducation(in)
	if err != nil {
		return err
	}
	return s.profiles.UpdateEducation(ctx, id, userID, e)
}

// DeleteEducation removes an entry owned by the caller
func (s *ProfileService) DeleteEducation(ctx context.Context, userID, id uint) error {
	return s.profiles.DeleteEducation(ctx, id, userID)
}

func buildExperience(in ExperienceInput) (*model.WorkExperience, error) {
	if in.Company == "" || in.Position == "" || in.StartDate == "" {
		return nil, apperror.NewValidation(MsgExperienceRequired)
	}

	start, err := ParseDate(in.StartDate)
	if err != nil {
		return nil, err
	}
	end, err := parseOptionalDate(in.EndDate)
	if err != nil {
		return nil, err
	}

	return &model.WorkExperience{
		Company:     in.Company,
		Position:    in.Position,
		StartDate:   start,
		EndDate:     end,
		Current:     in.Current,
		Description: nilIfEmpty(in.Description),
	}, nil
}

func buildEducation(in EducationInput) (*model.Education, error) {
	if in.Institution == "" || in.Degree == "" || in.Field == "" || in.StartDate == "" {
		return nil, apperror.NewValidation(MsgEducationRequired)
	}

	start, err := ParseDate(in.StartDate)
	if err != nil {
		return nil, err
	}
	end, err := parseOptionalDate(in.EndDate)
	if err != nil {
		return nil, err
	}

	return &model.Education{
		Institution: in.Institution,
		Degree:      in.Degree,
		Field:       in.Field,
		StartDate:   start,
		EndDate:     end,
		Current:     in.Current,
	}, nil
}
