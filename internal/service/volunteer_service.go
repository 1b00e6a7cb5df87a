package service

import (
	"bufio"
	"context"
	"io"
	"strings"
	"time"

	"caritasAPI/internal/models"
	"caritasAPI/internal/repository"
)

type VolunteerService interface {
	Apply(ctx context.Context, in models.VolunteerInput) (*models.Volunteer, error)
	ListAll(ctx context.Context, filter models.ListFilter, page models.Page) ([]models.Volunteer, models.Pagination, error)
	Get(ctx context.Context, id int64) (*models.Volunteer, error)
	UpdateStatus(ctx context.Context, id int64, status string) (*models.Volunteer, error)
	Delete(ctx context.Context, id int64) error
	Stats(ctx context.Context) (*models.VolunteerStats, error)
	ExportCSV(ctx context.Context, w io.Writer) error
}

const (
	volunteerNotFound  = "Volunteer not found"
	volunteerDuplicate = "Volunteer application already exists for this email"
)

var volunteerCSVHeader = []string{"Full Name", "Email", "Phone", "Skills", "Availability", "Interests", "Status", "Created At"}

type volunteerService struct {
	volunteerRepo repository.VolunteerRepository
	now           func() time.Time
}

func NewVolunteerService(volunteerRepo repository.VolunteerRepository) VolunteerService {
	return &volunteerService{volunteerRepo: volunteerRepo, now: time.Now}
}

// Apply stores a pending application. One application per email.
func (s *volunteerService) Apply(ctx context.Context, in models.VolunteerInput) (*models.Volunteer, error) {
	email := strings.TrimSpace(in.Email)

	exists, err := s.volunteerRepo.ExistsByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, newError(KindConflict, volunteerDuplicate, nil)
	}

	volunteer := &models.Volunteer{
		FullName:     in.FullName,
		Email:        email,
		Phone:        in.Phone,
		Skills:       in.Skills,
		Availability: in.Availability,
		Interests:    in.Interests,
		Message:      in.Message,
		Status:       models.VolunteerPending,
	}

	// the unique index still decides when two submissions race past ExistsByEmail
	if err := s.volunteerRepo.Create(ctx, volunteer); err != nil {
		return nil, conflict(err, volunteerDuplicate)
	}
	return volunteer, nil
}

func (s *volunteerService) ListAll(ctx context.Context, filter models.ListFilter, page models.Page) ([]models.Volunteer, models.Pagination, error) {
	if filter.Status != "" && !models.VolunteerStatus(filter.Status).Valid() {
		return nil, models.Pagination{}, invalidField("status", "Status must be one of: pending, approved, rejected, active, inactive")
	}

	volunteers, total, err := s.volunteerRepo.ListAll(ctx, filter, page)
	if err != nil {
		return nil, models.Pagination{}, err
	}
	return volunteers, models.NewPagination(page, total), nil
}

func (s *volunteerService) Get(ctx context.Context, id int64) (*models.Volunteer, error) {
	volunteer, err := s.volunteerRepo.GetByID(ctx, id)
	if err != nil {
		return nil, notFound(err, volunteerNotFound)
	}
	return volunteer, nil
}

func (s *volunteerService) UpdateStatus(ctx context.Context, id int64, status string) (*models.Volunteer, error) {
	volunteerStatus := models.VolunteerStatus(status)
	if !volunteerStatus.Valid() {
		return nil, invalidField("status", "Invalid status")
	}

	if err := s.volunteerRepo.UpdateStatus(ctx, id, volunteerStatus); err != nil {
		return nil, notFound(err, volunteerNotFound)
	}

	return s.Get(ctx, id)
}

func (s *volunteerService) Delete(ctx context.Context, id int64) error {
	if err := s.volunteerRepo.Delete(ctx, id); err != nil {
		return notFound(err, volunteerNotFound)
	}
	return nil
}

func (s *volunteerService) Stats(ctx context.Context) (*models.VolunteerStats, error) {
	var bySkills []models.SkillCount

	stats, err := gatherStats(ctx, s.volunteerRepo, s.now(), func(ctx context.Context) error {
		var err error
		bySkills, err = s.volunteerRepo.BySkills(ctx, topN)
		return err
	})
	if err != nil {
		return nil, err
	}

	return &models.VolunteerStats{Stats: stats, BySkills: bySkills}, nil
}

// ExportCSV writes every application with each data field double-quoted.
func (s *volunteerService) ExportCSV(ctx context.Context, w io.Writer) error {
	volunteers, err := s.volunteerRepo.Export(ctx)
	if err != nil {
		return err
	}

	bw := bufio.NewWriter(w)
	bw.WriteString(strings.Join(volunteerCSVHeader, ","))
	bw.WriteByte('\n')

	for _, v := range volunteers {
		writeQuotedRecord(bw,
			v.FullName,
			v.Email,
			v.Phone,
			v.Skills,
			v.Availability,
			v.Interests,
			string(v.Status),
			v.CreatedAt.UTC().Format(time.RFC3339),
		)
	}

	return bw.Flush()
}

func writeQuotedRecord(w *bufio.Writer, fields ...string) {
	for i, f := range fields {
		if i > 0 {
			w.WriteByte(',')
		}
		w.WriteByte('"')
		w.WriteString(strings.ReplaceAll(f, `"`, `""`))
		w.WriteByte('"')
	}
	w.WriteByte('\n')
}
