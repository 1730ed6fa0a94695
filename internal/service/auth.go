// Package service implements the business rules of the job board on top of the store.
package service

import (
	"context"

	"github.com/suteetoe/jobboard/internal/apperror"
	"github.com/suteetoe/jobboard/internal/model"
	"github.com/suteetoe/jobboard/internal/store"
	"golang.org/x/crypto/bcrypt"
)

// Auth messages
const (
	MsgMissingFields      = "Please provide all required fields"
	MsgMissingCredentials = "Please provide email and password"
	MsgInvalidCredentials = "Invalid email or password"
	MsgInvalidRole        = "Invalid role"
)

// UserStore is the persistence used by AuthService
type UserStore interface {
	CreateUser(ctx context.Context, u *model.User) error
	EmailExists(ctx context.Context, email string) (bool, error)
	GetUserByEmail(ctx context.Context, email string) (*model.User, error)
	GetUserByID(ctx context.Context, id uint) (*model.User, error)
	ListUsers(ctx context.Context) ([]model.User, error)
}

// TokenIssuer signs session tokens
type TokenIssuer interface {
	GenerateToken(userID uint, email, role string) (string, error)
}

// RegisterInput holds the registration form
type RegisterInput struct {
	Name     string
	Email    string
	Password string
	Role     string
}

// Session is the result of a successful register or login
type Session struct {
	Token string
	User  model.PublicUser
}

// AuthService registers accounts and issues session tokens
type AuthService struct {
	users      UserStore
	tokens     TokenIssuer
	bcryptCost int
}

// NewAuthService creates an AuthService hashing passwords at bcryptCost
func NewAuthService(users UserStore, tokens TokenIssuer, bcryptCost int) *AuthService {
	if bcryptCost == 0 {
		bcryptCost = bcrypt.DefaultCost
	}
	return &AuthService{users: users, tokens: tokens, bcryptCost: bcryptCost}
}

// Register creates an account and returns a session for it
func (s *AuthService) Register(ctx context.Context, in RegisterInput) (*Session, error) {
	if in.Name == "" || in.Email == "" || in.Password == "" {
		return nil, apperror.NewValidation(MsgMissingFields)
	}

	role := in.Role
	if role == "" {
		role = model.RoleUser
	}
	if !model.ValidRole(role) {
		return nil, apperror.NewValidation(MsgInvalidRole)
	}

	exists, err := s.users.EmailExists(ctx, in.Email)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, apperror.NewConflict(store.MsgEmailTaken)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), s.bcryptCost)
	if err != nil {
		return nil, err
	}

	user := &model.User{
		Name:     in.Name,
		Email:    in.Email,
		Password: string(hash),
		Role:     role,
	}
	if err := s.users.CreateUser(ctx, user); err != nil {
		return nil, err
	}

	return s.session(user)
}

// Login verifies credentials. Unknown email and wrong password fail the same way.
func (s *AuthService) Login(ctx context.Context, email, password string) (*Session, error) {
	if email == "" || password == "" {
		return nil, apperror.NewValidation(MsgMissingCredentials)
	}

	user, err := s.users.GetUserByEmail(ctx, email)
	if err != nil {
		if apperror.Is(err, apperror.NotFound) {
			return nil, apperror.Wrap(apperror.Auth, MsgInvalidCredentials, err)
		}
		return nil, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		return nil, apperror.Wrap(apperror.Auth, MsgInvalidCredentials, err)
	}

	return s.session(user)
}

// CurrentUser re-reads the account behind a token so later role or name
// changes are visible
func (s *AuthService) CurrentUser(ctx context.Context, userID uint) (*model.PublicUser, error) {
	user, err := s.users.GetUserByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	public := user.Public()
	return &public, nil
}

// ListUsers returns the public view of every account
func (s *AuthService) ListUsers(ctx context.Context) ([]model.PublicUser, error) {
	users, err := s.users.ListUsers(ctx)
	if err != nil {
		return nil, err
	}

	public := make([]model.PublicUser, 0, len(users))
	for i := range users {
		public = append(public, users[i].Public())
	}
	return public, nil
}

func (s *AuthService) session(user *model.User) (*Session, error) {
	token, err := s.tokens.GenerateToken(user.ID, user.Email, user.Role)
	if err != nil {
		return nil, err
	}
	return &Session{Token: token, User: user.Public()}, nil
}
