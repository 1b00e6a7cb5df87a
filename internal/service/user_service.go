package service

import (
	"context"
	"fmt"
	"strings"

	"golang.org/x/crypto/bcrypt"

	"caritasAPI/internal/config"
	"caritasAPI/internal/models"
	"caritasAPI/internal/repository"
)

type UserService interface {
	Register(ctx context.Context, req models.RegisterRequest) (*models.User, error)
	Profile(ctx context.Context, userID int64) (*models.UserSummary, error)
	UpdateProfile(ctx context.Context, userID int64, patch models.ProfilePatch) error
	EnsureAdmin(ctx context.Context, seed config.AdminSeed) (bool, error)
}

type userService struct {
	userRepo repository.UserRepository
}

func NewUserService(userRepo repository.UserRepository) UserService {
	return &userService{userRepo: userRepo}
}

func hashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", fmt.Errorf("failed to hash password: %w", err)
	}
	return string(hash), nil
}

func (s *userService) Register(ctx context.Context, req models.RegisterRequest) (*models.User, error) {
	role := models.RoleAdmin
	if req.Role != "" {
		parsed, err := models.ParseRole(req.Role)
		if err != nil {
			return nil, invalidField("role", "Role must be one of: admin")
		}
		role = parsed
	}

	exists, err := s.userRepo.ExistsByUsernameOrEmail(ctx, req.Username, req.Email)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, newError(KindConflict, "User already exists", nil)
	}

	hash, err := hashPassword(req.Password)
	if err != nil {
		return nil, err
	}

	user := &models.User{
		Username:     strings.TrimSpace(req.Username),
		Email:        strings.TrimSpace(req.Email),
		PasswordHash: hash,
		Role:         role,
	}

	if err := s.userRepo.CreateUser(ctx, user); err != nil {
		return nil, conflict(err, "User already exists")
	}

	return user, nil
}

func (s *userService) Profile(ctx context.Context, userID int64) (*models.UserSummary, error) {
	user, err := s.userRepo.GetUserByID(ctx, userID)
	if err != nil {
		return nil, notFound(err, "User not found")
	}

	summary := user.Summary()
	summary.CreatedAt = &user.CreatedAt
	return &summary, nil
}

func (s *userService) UpdateProfile(ctx context.Context, userID int64, patch models.ProfilePatch) error {
	if patch.Empty() {
		return newError(KindInvalid, "No valid fields to update", nil)
	}

	if patch.Email != "" {
		taken, err := s.userRepo.EmailTakenByOther(ctx, patch.Email, userID)
		if err != nil {
			return err
		}
		if taken {
			return newError(KindConflict, "Email already in use", nil)
		}
	}

	var hash string
	if patch.Password != "" {
		var err error
		if hash, err = hashPassword(patch.Password); err != nil {
			return err
		}
	}

	err := s.userRepo.UpdateProfile(ctx, userID, patch.Email, hash)
	if err != nil {
		return notFound(conflict(err, "Email already in use"), "User not found")
	}

	return nil
}

// EnsureAdmin creates the seed account unless a user with that username or email already exists.
func (s *userService) EnsureAdmin(ctx context.Context, seed config.AdminSeed) (bool, error) {
	if seed.Username == "" || seed.Password == "" {
		return false, nil
	}

	exists, err := s.userRepo.ExistsByUsernameOrEmail(ctx, seed.Username, seed.Email)
	if err != nil {
		return false, err
	}
	if exists {
		return false, nil
	}

	_, err = s.Register(ctx, models.RegisterRequest{
		Username: seed.Username,
		Email:    seed.Email,
		Password: seed.Password,
		Role:     string(models.RoleAdmin),
	})
	if err != nil {
		return false, fmt.Errorf("failed to create admin %s: %w", seed.Username, err)
	}

	return true, nil
}
