package handlers

import (
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"caritasAPI/internal/models"
	"caritasAPI/internal/service"
)

func TestApplyVolunteer(t *testing.T) {
	in := models.VolunteerInput{FullName: "Tariro Moyo", Email: "tariro@example.org", Phone: "+263 77 123 4567", Skills: "Nursing"}

	t.Run("submitted", func(t *testing.T) {
		s := newTestServer(t)
		s.volunteer.On("Apply", mock.Anything, in).
			Return(&models.Volunteer{ID: 3, FullName: "Tariro Moyo", Status: models.VolunteerPending}, nil)

		rr := s.do(http.MethodPost, "/api/volunteers", in, "")

		assert.Equal(t, http.StatusCreated, rr.Code)
		body := decodeBody(t, rr)
		assert.Equal(t, "Volunteer application submitted successfully", body["message"])
		receipt := body["volunteer"].(map[string]any)
		assert.Equal(t, "pending", receipt["status"])
		assert.Equal(t, "Tariro Moyo", receipt["full_name"])
		assert.NotContains(t, receipt, "phone")
		assert.NotContains(t, receipt, "skills")
		assert.NotContains(t, receipt, "message")
	})

	t.Run("already applied", func(t *testing.T) {
		s := newTestServer(t)
		s.volunteer.On("Apply", mock.Anything, in).
			Return(nil, &service.Error{Kind: service.KindConflict, Message: "Email already registered as volunteer"})

		rr := s.do(http.MethodPost, "/api/volunteers", in, "")

		assertJSONError(t, rr, http.StatusConflict, "Email already registered as volunteer")
	})

	t.Run("bad phone", func(t *testing.T) {
		s := newTestServer(t)

		rr := s.do(http.MethodPost, "/api/volunteers",
			map[string]string{"full_name": "Tariro", "email": "tariro@example.org", "phone": "12"}, "")

		assertFieldError(t, rr, "phone", "Valid phone number is required")
		s.volunteer.AssertNotCalled(t, "Apply", mock.Anything, mock.Anything)
	})
}

func TestListVolunteers(t *testing.T) {
	s := newTestServer(t)
	s.volunteer.On("ListAll", mock.Anything, models.ListFilter{Status: "approved", Search: "moyo"}, models.Page{Page: 1, Limit: 20}).
		Return([]models.Volunteer{{ID: 1}}, models.Pagination{Page: 1, Limit: 20, Total: 1, Pages: 1}, nil)

	rr := s.do(http.MethodGet, "/api/volunteers?status=approved&search=moyo", nil, adminToken)

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Len(t, decodeBody(t, rr)["volunteers"], 1)
}

func TestVolunteerStats(t *testing.T) {
	s := newTestServer(t)
	s.volunteer.On("Stats", mock.Anything).Return(&models.VolunteerStats{
		Stats:    models.Stats{Total: 2, ByStatus: []models.StatusCount{}},
		BySkills: []models.SkillCount{{SkillCategory: "Nursing", Count: 2}},
	}, nil)

	rr := s.do(http.MethodGet, "/api/volunteers/stats", nil, adminToken)

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Len(t, decodeBody(t, rr)["by_skills"], 1)
	s.volunteer.AssertNotCalled(t, "Get", mock.Anything, mock.Anything)
}

func TestExportVolunteers(t *testing.T) {
	t.Run("attachment", func(t *testing.T) {
		s := newTestServer(t)
		csv := "\"ID\",\"Full Name\"\n\"1\",\"Tariro Moyo\"\n"
		s.volunteer.On("ExportCSV", mock.Anything, mock.Anything).Return(csv, nil)

		rr := s.do(http.MethodGet, "/api/volunteers/export/csv", nil, adminToken)

		assert.Equal(t, http.StatusOK, rr.Code)
		assert.Equal(t, "text/csv", rr.Header().Get("Content-Type"))
		assert.Equal(t, "attachment; filename=volunteers.csv", rr.Header().Get("Content-Disposition"))
		assert.Equal(t, csv, rr.Body.String())
	})

	t.Run("store failure is still JSON", func(t *testing.T) {
		s := newTestServer(t)
		s.volunteer.On("ExportCSV", mock.Anything, mock.Anything).Return("", errors.New("connection reset"))

		rr := s.do(http.MethodGet, "/api/volunteers/export/csv", nil, adminToken)

		assertJSONError(t, rr, http.StatusInternalServerError, "Server error")
	})
}

func TestVolunteerByID(t *testing.T) {
	s := newTestServer(t)
	s.volunteer.On("Get", mock.Anything, int64(4)).Return(&models.Volunteer{ID: 4, FullName: "Rudo"}, nil)
	s.volunteer.On("UpdateStatus", mock.Anything, int64(4), "approved").
		Return(&models.Volunteer{ID: 4, Status: models.VolunteerApproved}, nil)
	s.volunteer.On("Delete", mock.Anything, int64(5)).
		Return(&service.Error{Kind: service.KindNotFound, Message: "Volunteer not found"})

	rr := s.do(http.MethodGet, "/api/volunteers/4", nil, adminToken)
	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "Rudo", decodeBody(t, rr)["volunteer"].(map[string]any)["full_name"])

	rr = s.do(http.MethodPut, "/api/volunteers/4", map[string]string{"status": "approved"}, adminToken)
	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "Volunteer status updated successfully", decodeBody(t, rr)["message"])

	rr = s.do(http.MethodPut, "/api/volunteers/4", map[string]string{"status": "hired"}, adminToken)
	assertFieldError(t, rr, "status", "Status must be one of: pending, approved, rejected, active, inactive")

	rr = s.do(http.MethodDelete, "/api/volunteers/5", nil, adminToken)
	assertJSONError(t, rr, http.StatusNotFound, "Volunteer not found")
}
