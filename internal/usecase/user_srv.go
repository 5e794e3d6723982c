package usecase

import (
	"context"
	"fmt"

	"rental-booking/internal/data/entity"
	"rental-booking/internal/data/repository"
	"rental-booking/internal/dto/request"
	"rental-booking/internal/dto/response"
	"rental-booking/pkg/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type UserService interface {
	ListUsers(ctx context.Context, page *request.PaginatedRequest) (*response.PaginatedResponse[response.UserResponse], error)
	UpdateRole(ctx context.Context, userID string, req *request.UpdateUserRoleRequest) (*response.UserResponse, error)
	Deactivate(ctx context.Context, userID string) error
}

type userService struct {
	users repository.UserRepository
	log   *zap.Logger
}

func NewUserService(users repository.UserRepository, log *zap.Logger) UserService {
	return &userService{
		users: users,
		log:   log.With(zap.String("service", "user")),
	}
}

func (s *userService) ListUsers(ctx context.Context, page *request.PaginatedRequest) (*response.PaginatedResponse[response.UserResponse], error) {
	users, err := s.users.FindAll(ctx, page.Limit(), page.Offset())
	if err != nil {
		s.log.Error("Failed to list users", zap.Error(err))
		return nil, fmt.Errorf("list users: %w", err)
	}

	total, err := s.users.Count(ctx)
	if err != nil {
		s.log.Error("Failed to count users", zap.Error(err))
		return nil, fmt.Errorf("count users: %w", err)
	}

	responses := make([]response.UserResponse, len(users))
	for i, user := range users {
		responses[i] = response.UserToResponse(user)
	}

	return response.NewPaginatedResponse(responses, page.Page, page.Limit(), total), nil
}

func (s *userService) UpdateRole(ctx context.Context, userID string, req *request.UpdateUserRoleRequest) (*response.UserResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		return nil, fmt.Errorf("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	user, err := s.loadUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	role := entity.UserRole(req.Role)
	if !role.Valid() {
		return nil, fmt.Errorf("validation failed: unknown role %q", req.Role)
	}

	if err := s.users.UpdateRole(ctx, user.ID, role); err != nil {
		return nil, fmt.Errorf("update role for user %s: %w", userID, err)
	}

	s.log.Info("User role updated",
		zap.String("user_id", userID),
		zap.String("old_role", string(user.Role)),
		zap.String("new_role", req.Role))

	user.Role = role
	resp := response.UserToResponse(user)
	return &resp, nil
}

func (s *userService) Deactivate(ctx context.Context, userID string) error {
	user, err := s.loadUser(ctx, userID)
	if err != nil {
		return err
	}

	if err := s.users.SetActive(ctx, user.ID, false); err != nil {
		return fmt.Errorf("deactivate user %s: %w", userID, err)
	}

	s.log.Info("User deactivated", zap.String("user_id", userID))
	return nil
}

func (s *userService) loadUser(ctx context.Context, userID string) (*entity.User, error) {
	id, err := uuid.Parse(userID)
	if err != nil {
		return nil, fmt.Errorf("invalid user ID format %s: %w", userID, err)
	}

	user, err := s.users.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("load user %s: %w", userID, err)
	}
	if user == nil {
		return nil, fmt.Errorf("%w: %s", ErrUserNotFound, userID)
	}

	return user, nil
}
