package service

import (
	"context"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"renta-autos/internal/domain"
	"renta-autos/internal/repository"
)

type UserService interface {
	Create(ctx context.Context, input domain.CreateUserInput) (*domain.User, error)
	GetAllUsers(ctx context.Context) ([]domain.User, error)
	AssignRole(ctx context.Context, input domain.AssignRoleInput) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type userService struct {
	userRepo repository.UserRepository
}

func NewUserService(userRepo repository.UserRepository) UserService {
	return &userService{userRepo: userRepo}
}

// Create provisions a staff account. There is no self-registration:
// only the owner creates users, so accounts start active.
func (s *userService) Create(ctx context.Context, input domain.CreateUserInput) (*domain.User, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	exists, err := s.userRepo.ExistsByEmail(ctx, input.Email)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, domain.ErrEmailExists
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	role := input.Role
	if role == "" {
		role = string(domain.RoleEmployee)
	}

	user := &domain.User{
		ID:           uuid.New(),
		Email:        input.Email,
		PasswordHash: string(hashedPassword),
		FullName:     input.FullName,
		Role:         role,
		IsActive:     true,
	}

	if err := s.userRepo.Create(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

func (s *userService) GetAllUsers(ctx context.Context) ([]domain.User, error) {
	return s.userRepo.GetAllUsers(ctx)
}

func (s *userService) AssignRole(ctx context.Context, input domain.AssignRoleInput) error {
	if input.UserID == uuid.Nil {
		return domain.MissingField("user_id")
	}
	if !domain.UserRole(input.Role).IsValid() {
		return domain.InvalidField("role", "must be one of employee, fleet-manager, owner")
	}

	return s.userRepo.AssignRole(ctx, input.UserID, input.Role)
}

func (s *userService) Delete(ctx context.Context, id uuid.UUID) error {
	user, err := s.userRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if user == nil {
		return domain.ErrUserNotFound
	}

	return s.userRepo.Delete(ctx, id)
}
