package service

import (
	"context"
	"time"

	"caritasAPI/internal/models"
	"caritasAPI/internal/repository"
)

type ProgramService interface {
	ListActive(ctx context.Context, page models.Page) ([]models.Program, models.Pagination, error)
	GetActive(ctx context.Context, id int64) (*models.Program, error)
	ListAll(ctx context.Context, filter models.ListFilter, page models.Page) ([]models.Program, models.Pagination, error)
	Get(ctx context.Context, id int64) (*models.Program, error)
	Create(ctx context.Context, in models.ProgramInput) (*models.Program, error)
	Update(ctx context.Context, id int64, in models.ProgramInput) (*models.Program, error)
	Delete(ctx context.Context, id int64) error
	Stats(ctx context.Context) (*models.Stats, error)
}

const programNotFound = "Program not found"

type programService struct {
	programRepo repository.ProgramRepository
	now         func() time.Time
}

func NewProgramService(programRepo repository.ProgramRepository) ProgramService {
	return &programService{programRepo: programRepo, now: time.Now}
}

func (s *programService) ListActive(ctx context.Context, page models.Page) ([]models.Program, models.Pagination, error) {
	programs, total, err := s.programRepo.ListActive(ctx, page)
	if err != nil {
		return nil, models.Pagination{}, err
	}
	return programs, models.NewPagination(page, total), nil
}

func (s *programService) GetActive(ctx context.Context, id int64) (*models.Program, error) {
	program, err := s.programRepo.GetActive(ctx, id)
	if err != nil {
		return nil, notFound(err, programNotFound)
	}
	return program, nil
}

func (s *programService) ListAll(ctx context.Context, filter models.ListFilter, page models.Page) ([]models.Program, models.Pagination, error) {
	if filter.Status != "" && !models.ProgramStatus(filter.Status).Valid() {
		return nil, models.Pagination{}, invalidField("status", "Status must be one of: active, inactive")
	}

	programs, total, err := s.programRepo.ListAll(ctx, filter, page)
	if err != nil {
		return nil, models.Pagination{}, err
	}
	return programs, models.NewPagination(page, total), nil
}

func (s *programService) Get(ctx context.Context, id int64) (*models.Program, error) {
	program, err := s.programRepo.GetByID(ctx, id)
	if err != nil {
		return nil, notFound(err, programNotFound)
	}
	return program, nil
}

func applyProgramInput(program *models.Program, in models.ProgramInput) error {
	if in.Status != "" {
		status := models.ProgramStatus(in.Status)
		if !status.Valid() {
			return invalidField("status", "Status must be one of: active, inactive")
		}
		program.Status = status
	}
	if in.OrderIndex != nil {
		if *in.OrderIndex < 0 {
			return invalidField("order_index", "Order index must be zero or greater")
		}
		program.OrderIndex = *in.OrderIndex
	}

	program.TitleEN = in.TitleEN
	program.TitleSH = in.TitleSH
	program.DescriptionEN = in.DescriptionEN
	program.DescriptionSH = in.DescriptionSH
	program.Image = in.Image
	return nil
}

func (s *programService) Create(ctx context.Context, in models.ProgramInput) (*models.Program, error) {
	program := &models.Program{Status: models.ProgramActive}
	if err := applyProgramInput(program, in); err != nil {
		return nil, err
	}

	if err := s.programRepo.Create(ctx, program); err != nil {
		return nil, err
	}
	return program, nil
}

// Update replaces the content fields. An omitted status or order_index keeps the stored value.
func (s *programService) Update(ctx context.Context, id int64, in models.ProgramInput) (*models.Program, error) {
	program, err := s.programRepo.GetByID(ctx, id)
	if err != nil {
		return nil, notFound(err, programNotFound)
	}

	if err := applyProgramInput(program, in); err != nil {
		return nil, err
	}

	if err := s.programRepo.Update(ctx, program); err != nil {
		return nil, notFound(err, programNotFound)
	}
	return program, nil
}

func (s *programService) Delete(ctx context.Context, id int64) error {
	if err := s.programRepo.Delete(ctx, id); err != nil {
		return notFound(err, programNotFound)
	}
	return nil
}

func (s *programService) Stats(ctx context.Context) (*models.Stats, error) {
	stats, err := gatherStats(ctx, s.programRepo, s.now())
	if err != nil {
		return nil, err
	}
	return &stats, nil
}
