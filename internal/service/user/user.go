package user

import (
	"context"
	"errors"
	"fmt"

	"parcel-service/internal/entities"
)

type User struct {
	repository Repository
	hasher     PasswordHasher
}

func New(repository Repository, hasher PasswordHasher) *User {
	return &User{
		repository: repository,
		hasher:     hasher,
	}
}

func (s *User) Register(ctx context.Context, userModify entities.UserModify) (*entities.User, error) {
	if userModify.Username == nil || userModify.Password == nil || isBlank(userModify.FullName) {
		return nil, ErrMissingRequiredFields
	}
	if !isValidUsername(*userModify.Username) {
		return nil, ErrInvalidUsername
	}
	if !isValidPassword(*userModify.Password) {
		return nil, ErrInvalidPassword
	}
	if !isValidFullName(*userModify.FullName) {
		return nil, ErrInvalidFullName
	}

	role := entities.DefaultRole
	if userModify.Role != nil && *userModify.Role != "" {
		role = *userModify.Role
	}
	if !isValidRole(role) {
		return nil, ErrInvalidRole
	}

	hash, err := s.hasher.Hash(*userModify.Password)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	user, err := s.repository.Create(ctx, entities.UserModify{
		Username:     userModify.Username,
		PasswordHash: &hash,
		FullName:     userModify.FullName,
		Role:         &role,
	})
	if err != nil {
		return nil, fmt.Errorf("create user: %w", err)
	}

	return user, nil
}

func (s *User) Authenticate(ctx context.Context, username, password string) (*entities.User, error) {
	user, err := s.repository.GetByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, ErrUserNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, fmt.Errorf("get user by username: %w", err)
	}

	if !s.hasher.Compare(user.PasswordHash, password) {
		return nil, ErrInvalidCredentials
	}

	return user, nil
}

func (s *User) GetUser(ctx context.Context, id int64) (*entities.User, error) {
	if id <= 0 {
		return nil, ErrInvalidUserID
	}

	user, err := s.repository.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get user: %w", err)
	}
	return user, nil
}

// RequireRole проверка доступа: actor должен существовать и иметь роль role.
func (s *User) RequireRole(ctx context.Context, actorID int64, role entities.UserRole) (*entities.User, error) {
	actor, err := s.GetUser(ctx, actorID)
	if err != nil {
		return nil, err
	}

	if actor.Role != role {
		return nil, fmt.Errorf("%w: %s required", ErrForbidden, role)
	}
	return actor, nil
}
