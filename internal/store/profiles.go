package store

import (
	"context"

	"github.com/suteetoe/jobboard/internal/apperror"
	"github.com/suteetoe/jobboard/internal/model"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// Profile entry messages
const (
	MsgExperienceNotFound = "Experience not found"
	MsgEducationNotFound  = "Education not found"
)

// UpsertProfile creates or replaces the profile of p.UserID and renames the
// user to fullName, marking the profile complete. Both writes share one transaction.
func (s *Store) UpsertProfile(ctx context.Context, p *model.Profile, fullName string) error {
	defer s.track("upsert")()

	return s.conn(ctx).Transaction(func(tx *gorm.DB) error {
		err := tx.Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "user_id"}},
			DoUpdates: clause.AssignmentColumns([]string{"first_name", "last_name", "phone", "location", "bio", "skills", "updated_at"}),
		}).Create(p).Error
		if err != nil {
			return err
		}

		return tx.Model(&model.User{}).Where("id = ?", p.UserID).Updates(map[string]interface{}{
			"name":             fullName,
			"profile_complete": true,
		}).Error
	})
}

// GetProfileDetail returns the profile of userID with its experience and
// education, newest start date first. It returns nil when no profile was saved.
func (s *Store) GetProfileDetail(ctx context.Context, userID uint) (*model.ProfileDetail, error) {
	defer s.track("query")()

	var profiles []model.Profile
	if err := s.conn(ctx).Where("user_id = ?", userID).Limit(1).Find(&profiles).Error; err != nil {
		return nil, err
	}
	if len(profiles) == 0 {
		return nil, nil
	}

	detail := &model.ProfileDetail{Profile: profiles[0]}

	if err := s.conn(ctx).Where("user_id = ?", userID).
		Order("start_date DESC").Order("id DESC").
		Find(&detail.Experience).Error; err != nil {
		return nil, err
	}
	if err := s.conn(ctx).Where("user_id = ?", userID).
		Order("start_date DESC").Order("id DESC").
		Find(&detail.Education).Error; err != nil {
		return nil, err
	}

	detail.Experience = emptyIfNil(detail.Experience)
	detail.Education = emptyIfNil(detail.Education)
	return detail, nil
}

// CreateExperience inserts e and fills its ID
func (s *Store) CreateExperience(ctx context.Context, e *model.WorkExperience) error {
	defer s.track("insert")()

	return s.conn(ctx).Create(e).Error
}

// UpdateExperience overwrites experience id when it belongs to userID
func (s *Store) UpdateExperience(ctx context.Context, id, userID uint, e *model.WorkExperience) error {
	defer s.track("update")()

	return s.updateOwned(ctx, &model.WorkExperience{}, id, userID, MsgExperienceNotFound, map[string]interface{}{
		"company":     e.Company,
		"position":    e.Position,
		"start_date":  e.StartDate,
		"end_date":    e.EndDate,
		"current":     e.Current,
		"description": e.Description,
	})
}

// DeleteExperience removes experience id when it belongs to userID
func (s *Store) DeleteExperience(ctx context.Context, id, userID uint) error {
	defer s.track("delete")()

	return s.deleteOwned(ctx, &model.WorkExperience{}, id, userID, MsgExperienceNotFound)
}

// CheckExperienceOwner fails with NotFound unless experience id belongs to userID
func (s *Store) CheckExperienceOwner(ctx context.Context, id, userID uint) error {
	defer s.track("query")()

	return checkOwner(s.conn(ctx), &model.WorkExperience{}, id, userID, MsgExperienceNotFound)
}

// CreateEducation inserts e and fills its ID
func (s *Store) CreateEducation(ctx context.Context, e *model.Education) error {
	defer s.track("insert")()

	return s.conn(ctx).Create(e).Error
}

// UpdateEducation overwrites education id when it belongs to userID
func (s *Store) UpdateEducation(ctx context.Context, id, userID uint, e *model.Education) error {
	defer s.track("update")()

	return s.updateOwned(ctx, &model.Education{}, id, userID, MsgEducationNotFound, map[string]interface{}{
		"institution": e.Institution,
		"degree":      e.Degree,
		"field":       e.Field,
		"start_date":  e.StartDate,
		"end_date":    e.EndDate,
		"current":     e.Current,
	})
}

// DeleteEducation removes education id when it belongs to userID
func (s *Store) DeleteEducation(ctx context.Context, id, userID uint) error {
	defer s.track("delete")()

	return s.deleteOwned(ctx, &model.Education{}, id, userID, MsgEducationNotFound)
}

// CheckEducationOwner fails with NotFound unless education id belongs to userID
func (s *Store) CheckEducationOwner(ctx context.Context, id, userID uint) error {
	defer s.track("query")()

	return checkOwner(s.conn(ctx), &model.Education{}, id, userID, MsgEducationNotFound)
}

type ownerRow struct {
	UserID uint
}

// checkOwner fails with NotFound unless row id of table m exists and belongs to userID
func checkOwner(tx *gorm.DB, m interface{}, id, userID uint, message string) error {
	var owner ownerRow
	if err := tx.Model(m).Select("user_id").Where("id = ?", id).Take(&owner).Error; err != nil {
		return notFound(err, message)
	}
	if owner.UserID != userID {
		return apperror.NewNotFound(message)
	}
	return nil
}

func (s *Store) updateOwned(ctx context.Context, m interface{}, id, userID uint, message string, values map[string]interface{}) error {
	return s.conn(ctx).Transaction(func(tx *gorm.DB) error {
		if err := checkOwner(tx, m, id, userID, message); err != nil {
			return err
		}
		return tx.Model(m).Where("id = ? AND user_id = ?", id, userID).Updates(values).Error
	})
}

func (s *Store) deleteOwned(ctx context.Context, m interface{}, id, userID uint, message string) error {
	return s.conn(ctx).Transaction(func(tx *gorm.DB) error {
		if err := checkOwner(tx, m, id, userID, message); err != nil {
			return err
		}
		return tx.Where("id = ? AND user_id = ?", id, userID).Delete(m).Error
	})
}
