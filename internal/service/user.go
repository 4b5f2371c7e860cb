package service

import (
	"context"
	"errors"

	"golang.org/x/crypto/bcrypt"

	"task-tracker-api/internal/auth"
	"task-tracker-api/internal/models"
	"task-tracker-api/internal/store"
)

type userService struct {
	store  store.Store
	tokens *auth.TokenManager
}

func (s *userService) Login(ctx context.Context, req models.LoginRequest) (models.Response, error) {
	user, err := s.store.GetUserByUsername(ctx, req.Username)
	if errors.Is(err, store.ErrUserNotFound) {
		return models.Fail("Invalid username or password"), nil
	}
	if err != nil {
		return models.Response{}, err
	}

	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)) != nil {
		return models.Fail("Invalid username or password"), nil
	}

	token, err := s.tokens.Generate(user)
	if err != nil {
		return models.Response{}, err
	}

	return models.OK(msgSuccess, models.LoginResponse{
		Token:    token,
		UserID:   user.ID,
		Username: user.Username,
	}), nil
}

func (s *userService) Register(ctx context.Context, req models.RegisterRequest) (models.Response, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return models.Response{}, err
	}

	user, err := s.store.CreateUser(ctx, models.User{
		Username:     req.Username,
		Email:        req.Email,
		Name:         req.Name,
		Role:         models.RoleUser,
		PasswordHash: string(hash),
	})
	switch {
	case errors.Is(err, store.ErrUsernameTaken):
		return models.Fail("Username already exists"), nil
	case errors.Is(err, store.ErrEmailTaken):
		return models.Fail("Email already exists"), nil
	case err != nil:
		return models.Response{}, err
	}

	return models.OK(msgSuccess, user), nil
}

func (s *userService) Me(ctx context.Context, actorID int64) (models.Response, error) {
	user, err := s.store.GetUser(ctx, actorID)
	if errors.Is(err, store.ErrUserNotFound) {
		return models.Fail(msgUserNotFound), nil
	}
	if err != nil {
		return models.Response{}, err
	}
	return models.OK(msgSuccess, user), nil
}

func (s *userService) List(ctx context.Context) (models.Response, error) {
	users, err := s.store.ListUsers(ctx)
	if err != nil {
		return models.Response{}, err
	}
	return models.OK(msgSuccess, users), nil
}

// Available returns the users that can be assigned to tasks. Withdrawn
// accounts are deleted outright, so every stored user qualifies.
func (s *userService) Available(ctx context.Context) (models.Response, error) {
	return s.List(ctx)
}

func (s *userService) Update(ctx context.Context, id int64, req models.UpdateUserRequest) (models.Response, error) {
	existing, err := s.store.GetUser(ctx, id)
	if errors.Is(err, store.ErrUserNotFound) {
		return models.Fail(msgUserNotFound), nil
	}
	if err != nil {
		return models.Response{}, err
	}

	if req.Email != nil {
		existing.Email = *req.Email
	}
	if req.Name != nil {
		existing.Name = *req.Name
	}

	updated, err := s.store.UpdateUser(ctx, existing)
	if err != nil {
		return models.Response{}, err
	}
	return models.OK(msgSuccess, updated), nil
}

func (s *userService) Withdraw(ctx context.Context, actorID int64, password string) (models.Response, error) {
	user, err := s.store.GetUser(ctx, actorID)
	if errors.Is(err, store.ErrUserNotFound) {
		return models.Fail(msgUserNotFound), nil
	}
	if err != nil {
		return models.Response{}, err
	}

	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)) != nil {
		return models.Fail("Password does not match"), nil
	}

	if err := s.store.DeleteUser(ctx, actorID); err != nil {
		return models.Response{}, err
	}
	return models.OK(msgSuccess, nil), nil
}
