package roster

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/SchmidtMatheus/gym-simulator-web/internal/api"
	"github.com/SchmidtMatheus/gym-simulator-web/internal/apperr"
	"github.com/SchmidtMatheus/gym-simulator-web/internal/catalog"
)

type Service interface {
	CreateStudent(ctx context.Context, req CreateStudentRequest) (*Student, error)
	GetStudent(ctx context.Context, id string) (*Student, error)
	UpdateStudent(ctx context.Context, id string, req UpdateStudentRequest) (*Student, error)
	ListStudents(ctx context.Context, page api.PageQuery) (*StudentListResponse, error)

	CreateClass(ctx context.Context, req CreateClassRequest) (*Class, error)
	GetClass(ctx context.Context, id string) (*Class, error)
	ListClasses(ctx context.Context, page api.PageQuery) (*ClassListResponse, error)
	ListAvailableClasses(ctx context.Context, page api.PageQuery) (*ClassListResponse, error)
	CancelClass(ctx context.Context, id string) error
}

type service struct {
	repo    Repository
	catalog catalog.Repository
}

func NewService(repo Repository, catalogRepo catalog.Repository) Service {
	return &service{repo: repo, catalog: catalogRepo}
}

func (s *service) CreateStudent(ctx context.Context, req CreateStudentRequest) (*Student, error) {
	if err := s.resolvePlanType(ctx, req.PlanTypeID); err != nil {
		return nil, err
	}

	student, err := s.repo.CreateStudent(ctx, req)
	if err != nil {
		return nil, apperr.Infrastructure("failed to create student", err)
	}
	return student, nil
}

func (s *service) GetStudent(ctx context.Context, id string) (*Student, error) {
	student, err := s.repo.GetStudentByID(ctx, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, apperr.NotFound("Aluno não encontrado")
		}
		return nil, apperr.Infrastructure("failed to load student", err)
	}
	return student, nil
}

func (s *service) UpdateStudent(ctx context.Context, id string, req UpdateStudentRequest) (*Student, error) {
	if err := s.resolvePlanType(ctx, req.PlanTypeID); err != nil {
		return nil, err
	}

	student, err := s.repo.UpdateStudent(ctx, id, req)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, apperr.NotFound("Aluno não encontrado")
		}
		return nil, apperr.Infrastructure("failed to update student", err)
	}
	return student, nil
}

func (s *service) ListStudents(ctx context.Context, page api.PageQuery) (*StudentListResponse, error) {
	students, total, err := s.repo.ListStudents(ctx, page.PageSize, page.Offset())
	if err != nil {
		return nil, apperr.Infrastructure("failed to list students", err)
	}

	return &StudentListResponse{
		Items:      students,
		TotalCount: total,
		PageNumber: page.Page,
		PageSize:   page.PageSize,
	}, nil
}

func (s *service) CreateClass(ctx context.Context, req CreateClassRequest) (*Class, error) {
	if _, err := s.catalog.GetClassTypeByID(ctx, req.ClassTypeID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, apperr.Validation("Tipo de aula informado não existe")
		}
		return nil, apperr.Infrastructure("failed to resolve class type", err)
	}

	scheduledAt, err := time.Parse(time.RFC3339, req.ScheduledAt)
	if err != nil {
		return nil, apperr.Validation("Data da aula inválida")
	}

	class, err := s.repo.CreateClass(ctx, req.ClassTypeID, scheduledAt, req.DurationMinutes, req.MaxCapacity)
	if err != nil {
		return nil, apperr.Infrastructure("failed to create class", err)
	}
	return class, nil
}

func (s *service) GetClass(ctx context.Context, id string) (*Class, error) {
	class, err := s.repo.GetClassByID(ctx, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, apperr.NotFound("Aula não encontrada")
		}
		return nil, apperr.Infrastructure("failed to load class", err)
	}
	return class, nil
}

func (s *service) ListClasses(ctx context.Context, page api.PageQuery) (*ClassListResponse, error) {
	classes, total, err := s.repo.ListClasses(ctx, page.PageSize, page.Offset())
	if err != nil {
		return nil, apperr.Infrastructure("failed to list classes", err)
	}

	return &ClassListResponse{
		Items:      classes,
		TotalCount: total,
		PageNumber: page.Page,
		PageSize:   page.PageSize,
	}, nil
}

func (s *service) ListAvailableClasses(ctx context.Context, page api.PageQuery) (*ClassListResponse, error) {
	classes, total, err := s.repo.ListAvailableClasses(ctx, page.PageSize, page.Offset())
	if err != nil {
		return nil, apperr.Infrastructure("failed to list available classes", err)
	}

	return &ClassListResponse{
		Items:      classes,
		TotalCount: total,
		PageNumber: page.Page,
		PageSize:   page.PageSize,
	}, nil
}

// CancelClass marks a class cancelled so it stops accepting bookings. Existing
// bookings stay untouched; staff cancel those one by one when needed.
func (s *service) CancelClass(ctx context.Context, id string) error {
	if err := s.repo.CancelClass(ctx, id); err != nil {
		if errors.Is(err, ErrClassNotFoundOrCancelled) {
			return apperr.Conflict("Aula não encontrada ou já cancelada")
		}
		return apperr.Infrastructure("failed to cancel class", err)
	}
	return nil
}

func (s *service) resolvePlanType(ctx context.Context, planTypeID string) error {
	if _, err := s.catalog.GetPlanTypeByID(ctx, planTypeID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return apperr.Validation("Plano informado não existe")
		}
		return apperr.Infrastructure("failed to resolve plan type", err)
	}
	return nil
}
