package store

import (
	"context"

	"github.com/suteetoe/jobboard/internal/model"
)

// Messages shared with the services
const (
	MsgUserNotFound = "User not found"
	MsgEmailTaken   = "User already exists with this email"
)

// CreateUser inserts u and fills its ID. A taken email is a Conflict.
func (s *Store) CreateUser(ctx context.Context, u *model.User) error {
	defer s.track("insert")()

	if err := s.conn(ctx).Create(u).Error; err != nil {
		return conflict(err, MsgEmailTaken)
	}
	return nil
}

// EmailExists reports whether an account already uses email
func (s *Store) EmailExists(ctx context.Context, email string) (bool, error) {
	defer s.track("query")()

	var count int64
	err := s.conn(ctx).Model(&model.User{}).Where("email = ?", email).Count(&count).Error
	return count > 0, err
}

// GetUserByEmail loads the account registered with email
func (s *Store) GetUserByEmail(ctx context.Context, email string) (*model.User, error) {
	defer s.track("query")()

	var u model.User
	if err := s.conn(ctx).Where("email = ?", email).First(&u).Error; err != nil {
		return nil, notFound(err, MsgUserNotFound)
	}
	return &u, nil
}

// GetUserByID loads an account by primary key
func (s *Store) GetUserByID(ctx context.Context, id uint) (*model.User, error) {
	defer s.track("query")()

	var u model.User
	if err := s.conn(ctx).First(&u, id).Error; err != nil {
		return nil, notFound(err, MsgUserNotFound)
	}
	return &u, nil
}

// ListUsers returns every account in id order
func (s *Store) ListUsers(ctx context.Context) ([]model.User, error) {
	defer s.track("query")()

	var users []model.User
	if err := s.conn(ctx).Order("id").Find(&users).Error; err != nil {
		return nil, err
	}
	return emptyIfNil(users), nil
}
