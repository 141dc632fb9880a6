package service

import (
	"context"
	"errors"
	"strings"

	"tourism-reservation/internal/model"
	"tourism-reservation/internal/repository"
	apperrors "tourism-reservation/pkg/app_errors"
)

type UserService interface {
	List(ctx context.Context, caller model.Caller, filter model.UserFilter) ([]*model.User, error)
	Get(ctx context.Context, caller model.Caller, id int) (*model.User, error)
	Create(ctx context.Context, caller model.Caller, req model.CreateUserRequest) (*model.User, error)
	Update(ctx context.Context, caller model.Caller, id int, params model.UpdateUserParams) (*model.User, error)
	UpdateStatus(ctx context.Context, caller model.Caller, id int, status model.UserStatus) (*model.User, error)
	Delete(ctx context.Context, caller model.Caller, id int) error
}

type UserServiceImpl struct {
	repo   repository.UserRepository
	access *AccessFilter
}

func NewUserService(repo repository.UserRepository) UserService {
	return &UserServiceImpl{repo: repo, access: NewAccessFilter(nil, nil)}
}

func (s *UserServiceImpl) List(ctx context.Context, caller model.Caller, filter model.UserFilter) ([]*model.User, error) {
	if !caller.IsAdmin() {
		return nil, apperrors.ErrForbidden
	}
	if filter.Role != "" && !filter.Role.IsValid() {
		return nil, validationError("role must be one of user, provider, admin")
	}
	if filter.Status != "" && !filter.Status.IsValid() {
		return nil, validationError("status must be one of active, blocked, inactive")
	}
	return s.repo.List(ctx, filter)
}

func (s *UserServiceImpl) Get(ctx context.Context, caller model.Caller, id int) (*model.User, error) {
	if err := s.access.AuthorizeUser(caller, id); err != nil {
		return nil, err
	}
	return s.repo.FindByID(ctx, id)
}

func (s *UserServiceImpl) Create(ctx context.Context, caller model.Caller, req model.CreateUserRequest) (*model.User, error) {
	if !caller.IsAdmin() {
		return nil, apperrors.ErrForbidden
	}

	user := &model.User{
		FirstName:    req.FirstName,
		LastName:     req.LastName,
		Email:        strings.ToLower(strings.TrimSpace(req.Email)),
		Role:         req.Role,
		Status:       req.Status,
		Phone:        req.Phone,
		ProfileImage: req.ProfileImage,
	}
	if user.Role == "" {
		user.Role = model.RoleUser
	}
	if user.Status == "" {
		user.Status = model.UserStatusActive
	}
	if !user.Role.IsValid() {
		return nil, validationError("role must be one of user, provider, admin")
	}
	if !user.Status.IsValid() {
		return nil, validationError("status must be one of active, blocked, inactive")
	}

	if err := s.ensureEmailFree(ctx, user.Email, 0); err != nil {
		return nil, err
	}
	return s.repo.Create(ctx, user)
}

func (s *UserServiceImpl) Update(ctx context.Context, caller model.Caller, id int, params model.UpdateUserParams) (*model.User, error) {
	if err := s.access.AuthorizeUser(caller, id); err != nil {
		return nil, err
	}
	if !caller.IsAdmin() && (params.Role != nil || params.Status != nil) {
		return nil, apperrors.ErrForbidden
	}
	if params.Role != nil && !params.Role.IsValid() {
		return nil, validationError("role must be one of user, provider, admin")
	}
	if params.Status != nil && !params.Status.IsValid() {
		return nil, validationError("status must be one of active, blocked, inactive")
	}
	if params.Email != nil {
		email := strings.ToLower(strings.TrimSpace(*params.Email))
		params.Email = &email
		if err := s.ensureEmailFree(ctx, email, id); err != nil {
			return nil, err
		}
	}
	return s.repo.Update(ctx, id, params)
}

func (s *UserServiceImpl) UpdateStatus(ctx context.Context, caller model.Caller, id int, status model.UserStatus) (*model.User, error) {
	if !caller.IsAdmin() {
		return nil, apperrors.ErrForbidden
	}
	if !status.IsValid() {
		return nil, validationError("status must be one of active, blocked, inactive")
	}
	return s.repo.UpdateStatus(ctx, id, status)
}

func (s *UserServiceImpl) Delete(ctx context.Context, caller model.Caller, id int) error {
	if err := s.access.AuthorizeUser(caller, id); err != nil {
		return err
	}
	return s.repo.Delete(ctx, id)
}

// ensureEmailFree fails when another user than selfID holds the address.
func (s *UserServiceImpl) ensureEmailFree(ctx context.Context, email string, selfID int) error {
	existing, err := s.repo.FindByEmail(ctx, email)
	if errors.Is(err, apperrors.ErrUserNotFound) {
		return nil
	}
	if err != nil {
		return err
	}
	if existing.ID != selfID {
		return validationError("email is already registered")
	}
	return nil
}
