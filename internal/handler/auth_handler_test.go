package handlers

import (
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"caritasAPI/internal/models"
	"caritasAPI/internal/service"
)

func TestLoginHandler_Success(t *testing.T) {
	s := newTestServer(t)
	req := models.LoginRequest{Username: "admin@caritas.org", Password: "secret123"}

	s.auth.On("Login", mock.Anything, req).Return("signed-token", &models.User{
		ID:       1,
		Username: "admin",
		Email:    "admin@caritas.org",
		Role:     models.RoleAdmin,
	}, nil)

	rr := s.do(http.MethodPost, "/api/auth/login", req, "")

	assert.Equal(t, http.StatusOK, rr.Code)
	body := decodeBody(t, rr)
	assert.Equal(t, "Login successful", body["message"])
	assert.Equal(t, "signed-token", body["token"])
	user := body["user"].(map[string]any)
	assert.Equal(t, "admin", user["username"])
	assert.NotContains(t, user, "password_hash")
	s.auth.AssertExpectations(t)
}

func TestLoginHandler_Validation(t *testing.T) {
	s := newTestServer(t)

	rr := s.do(http.MethodPost, "/api/auth/login", map[string]string{"username": "", "password": "123"}, "")

	assertFieldError(t, rr, "username", "Username is required")
	assertFieldError(t, rr, "password", "Password must be at least 6 characters")
	s.auth.AssertNotCalled(t, "Login", mock.Anything, mock.Anything)
}

func TestLoginHandler_InvalidCredentials(t *testing.T) {
	s := newTestServer(t)
	s.auth.On("Login", mock.Anything, mock.Anything).Return("", nil, service.ErrInvalidCredentials)

	rr := s.do(http.MethodPost, "/api/auth/login", map[string]string{"username": "ghost", "password": "secret123"}, "")

	assertJSONError(t, rr, http.StatusUnauthorized, "Invalid credentials")
}

func TestRegisterHandler(t *testing.T) {
	body := map[string]string{"username": "editor", "email": "editor@caritas.org", "password": "secret123"}

	t.Run("created", func(t *testing.T) {
		s := newTestServer(t)
		s.user.On("Register", mock.Anything, models.RegisterRequest{
			Username: "editor", Email: "editor@caritas.org", Password: "secret123",
		}).Return(&models.User{ID: 2, Username: "editor", Email: "editor@caritas.org", Role: models.RoleAdmin}, nil)

		rr := s.do(http.MethodPost, "/api/auth/register", body, adminToken)

		assert.Equal(t, http.StatusCreated, rr.Code)
		assert.Equal(t, "User created successfully", decodeBody(t, rr)["message"])
	})

	t.Run("duplicate", func(t *testing.T) {
		s := newTestServer(t)
		s.user.On("Register", mock.Anything, mock.Anything).
			Return(nil, &service.Error{Kind: service.KindConflict, Message: "User already exists"})

		rr := s.do(http.MethodPost, "/api/auth/register", body, adminToken)

		assertJSONError(t, rr, http.StatusConflict, "User already exists")
	})

	t.Run("short username", func(t *testing.T) {
		s := newTestServer(t)

		rr := s.do(http.MethodPost, "/api/auth/register",
			map[string]string{"username": "ab", "email": "x@caritas.org", "password": "secret123"}, adminToken)

		assertFieldError(t, rr, "username", "Username must be at least 3 characters")
	})
}

func TestProfileHandler(t *testing.T) {
	s := newTestServer(t)
	created := time.Date(2025, 1, 2, 3, 4, 5, 0, time.UTC)
	s.user.On("Profile", mock.Anything, int64(1)).Return(&models.UserSummary{
		ID: 1, Username: "admin", Email: "admin@caritas.org", Role: models.RoleAdmin, CreatedAt: &created,
	}, nil)

	rr := s.do(http.MethodGet, "/api/auth/profile", nil, adminToken)

	assert.Equal(t, http.StatusOK, rr.Code)
	user := decodeBody(t, rr)["user"].(map[string]any)
	assert.Equal(t, "2025-01-02T03:04:05Z", user["created_at"])
}

func TestUpdateProfileHandler(t *testing.T) {
	t.Run("updated", func(t *testing.T) {
		s := newTestServer(t)
		s.user.On("UpdateProfile", mock.Anything, int64(1), models.ProfilePatch{Email: "new@caritas.org"}).Return(nil)

		rr := s.do(http.MethodPut, "/api/auth/profile", map[string]string{"email": "new@caritas.org"}, adminToken)

		assertJSONError(t, rr, http.StatusOK, "Profile updated successfully")
	})

	t.Run("nothing to update", func(t *testing.T) {
		s := newTestServer(t)
		s.user.On("UpdateProfile", mock.Anything, int64(1), models.ProfilePatch{}).
			Return(&service.Error{Kind: service.KindInvalid, Message: "No valid fields to update"})

		rr := s.do(http.MethodPut, "/api/auth/profile", map[string]string{}, adminToken)

		assertJSONError(t, rr, http.StatusBadRequest, "No valid fields to update")
	})

	t.Run("email taken", func(t *testing.T) {
		s := newTestServer(t)
		s.user.On("UpdateProfile", mock.Anything, int64(1), mock.Anything).
			Return(&service.Error{Kind: service.KindConflict, Message: "Email already in use"})

		rr := s.do(http.MethodPut, "/api/auth/profile", map[string]string{"email": "taken@caritas.org"}, adminToken)

		assertJSONError(t, rr, http.StatusConflict, "Email already in use")
	})
}

func TestVerifyHandler(t *testing.T) {
	s := newTestServer(t)

	rr := s.do(http.MethodGet, "/api/auth/verify", nil, adminToken)

	assert.Equal(t, http.StatusOK, rr.Code)
	body := decodeBody(t, rr)
	assert.Equal(t, "Token is valid", body["message"])
	user := body["user"].(map[string]any)
	assert.EqualValues(t, 1, user["userId"])
	assert.Equal(t, "admin", user["role"])
}
