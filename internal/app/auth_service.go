package app

import (
	"context"
	"errors"

	"golang.org/x/crypto/bcrypt"

	"versenotes/internal/model"
	"versenotes/internal/platform/database"
)

const DefaultBcryptCost = 10

type UserStore interface {
	Create(ctx context.Context, user *model.User) error
	GetByEmail(ctx context.Context, email string) (*model.User, error)
}

type AuthService struct {
	users      UserStore
	events     EventPublisher
	bcryptCost int
}

type RegisterInput struct {
	Email    string
	Password string
}

type LoginInput struct {
	Email    string
	Password string
}

// NewAuthService falls back to DefaultBcryptCost when cost is outside the
// range bcrypt accepts.
func NewAuthService(users UserStore, events EventPublisher, bcryptCost int) *AuthService {
	if bcryptCost < bcrypt.MinCost || bcryptCost > bcrypt.MaxCost {
		bcryptCost = DefaultBcryptCost
	}
	if events == nil {
		events = NopPublisher{}
	}
	return &AuthService{
		users:      users,
		events:     events,
		bcryptCost: bcryptCost,
	}
}

func (s *AuthService) Register(ctx context.Context, input RegisterInput) (*model.User, error) {
	if input.Email == "" || input.Password == "" {
		return nil, validationError(MsgCredentialsRequired)
	}

	existing, err := s.users.GetByEmail(ctx, input.Email)
	if err != nil {
		return nil, storageError(MsgSignupFailed, err)
	}
	if existing != nil {
		return nil, conflictError(MsgEmailRegistered)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(input.Password), s.bcryptCost)
	if err != nil {
		if errors.Is(err, bcrypt.ErrPasswordTooLong) {
			return nil, validationError(MsgPasswordTooLong)
		}
		return nil, storageError(MsgSignupFailed, err)
	}

	user := &model.User{
		Email:    input.Email,
		Password: string(hash),
	}
	if err := s.users.Create(ctx, user); err != nil {
		// A concurrent signup can pass the lookup above; the unique index
		// decides the winner.
		if database.IsUniqueViolation(err) {
			return nil, conflictError(MsgEmailRegistered)
		}
		return nil, storageError(MsgSignupFailed, err)
	}

	publish(ctx, s.events, model.NewEvent(model.EventUserRegistered, map[string]any{
		"user_id": user.ID,
		"email":   user.Email,
	}))
	return user, nil
}

// Login answers MsgInvalidCredentials for both an unknown email and a wrong
// password.
func (s *AuthService) Login(ctx context.Context, input LoginInput) (*model.User, error) {
	if input.Email == "" || input.Password == "" {
		return nil, validationError(MsgCredentialsRequired)
	}

	user, err := s.users.GetByEmail(ctx, input.Email)
	if err != nil {
		return nil, storageError(MsgLoginFailed, err)
	}
	if user == nil {
		return nil, authError(MsgInvalidCredentials)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(input.Password)); err != nil {
		return nil, authError(MsgInvalidCredentials)
	}

	return user, nil
}
