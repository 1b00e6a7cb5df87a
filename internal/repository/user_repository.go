package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"caritasAPI/internal/database"
	"caritasAPI/internal/models"
)

const userColumns = `id, username, email, password_hash, role, created_at, updated_at`

type userRepository struct {
	db *database.DB
}

func NewUserRepository(db *database.DB) UserRepository {
	return &userRepository{db: db}
}

// CreateUser stores a user whose PasswordHash is already set.
func (r *userRepository) CreateUser(ctx context.Context, user *models.User) error {
	now := time.Now().UTC()
	user.CreatedAt = now
	user.UpdatedAt = now

	id, err := r.db.Insert(ctx, `
		INSERT INTO users (username, email, password_hash, role, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?)
		RETURNING id`,
		user.Username, user.Email, user.PasswordHash, user.Role, user.CreatedAt, user.UpdatedAt)
	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("user %s: %w", user.Username, ErrDuplicate)
		}
		return fmt.Errorf("failed to create user: %w", err)
	}

	user.ID = id
	return nil
}

func (r *userRepository) GetUserByID(ctx context.Context, userID int64) (*models.User, error) {
	var user models.User

	err := r.db.FetchOne(ctx, &user, `SELECT `+userColumns+` FROM users WHERE id = ?`, userID)
	if err != nil {
		return nil, notFoundOr(err, "user", userID)
	}

	return &user, nil
}

// GetUserByLogin matches the identifier exactly against username or email.
func (r *userRepository) GetUserByLogin(ctx context.Context, identifier string) (*models.User, error) {
	var user models.User

	err := r.db.FetchOne(ctx, &user,
		`SELECT `+userColumns+` FROM users WHERE username = ? OR email = ?`,
		identifier, identifier)
	if err != nil {
		if errors.Is(err, database.ErrNotFound) {
			return nil, fmt.Errorf("user %q: %w", identifier, ErrNotFound)
		}
		return nil, fmt.Errorf("failed to get user by login: %w", err)
	}

	return &user, nil
}

func (r *userRepository) ExistsByUsernameOrEmail(ctx context.Context, username, email string) (bool, error) {
	n, err := r.db.Count(ctx,
		`SELECT COUNT(*) FROM users WHERE username = ? OR email = ?`, username, email)
	if err != nil {
		return false, fmt.Errorf("failed to check existing user: %w", err)
	}
	return n > 0, nil
}

func (r *userRepository) EmailTakenByOther(ctx context.Context, email string, userID int64) (bool, error) {
	n, err := r.db.Count(ctx,
		`SELECT COUNT(*) FROM users WHERE email = ? AND id <> ?`, email, userID)
	if err != nil {
		return false, fmt.Errorf("failed to check email: %w", err)
	}
	return n > 0, nil
}

// UpdateProfile changes the non-empty fields among email and passwordHash.
func (r *userRepository) UpdateProfile(ctx context.Context, userID int64, email, passwordHash string) error {
	res, err := r.db.Execute(ctx, `
		UPDATE users SET
			email = CASE WHEN ? = '' THEN email ELSE ? END,
			password_hash = CASE WHEN ? = '' THEN password_hash ELSE ? END,
			updated_at = ?
		WHERE id = ?`,
		email, email, passwordHash, passwordHash, time.Now().UTC(), userID)
	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("email %s: %w", email, ErrDuplicate)
		}
		return fmt.Errorf("failed to update user: %w", err)
	}

	return requireAffected(res, "user", userID)
}

func (r *userRepository) TouchLogin(ctx context.Context, userID int64) error {
	_, err := r.db.Execute(ctx, `UPDATE users SET updated_at = ? WHERE id = ?`, time.Now().UTC(), userID)
	if err != nil {
		return fmt.Errorf("failed to update last login: %w", err)
	}
	return nil
}
