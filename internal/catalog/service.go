package catalog

import (
	"context"
	"database/sql"
	"errors"

	"github.com/SchmidtMatheus/gym-simulator-web/internal/apperr"
)

type Service interface {
	CreatePlanType(ctx context.Context, req PlanTypeRequest) (*PlanType, error)
	ListPlanTypes(ctx context.Context) ([]PlanType, error)
	UpdatePlanType(ctx context.Context, id string, req PlanTypeRequest) (*PlanType, error)
	DeletePlanType(ctx context.Context, id string) error

	CreateClassType(ctx context.Context, req ClassTypeRequest) (*ClassType, error)
	ListClassTypes(ctx context.Context) ([]ClassType, error)
	UpdateClassType(ctx context.Context, id string, req ClassTypeRequest) (*ClassType, error)
	DeleteClassType(ctx context.Context, id string) error
}

type service struct {
	repo Repository
}

func NewService(repo Repository) Service {
	return &service{repo: repo}
}

func (s *service) CreatePlanType(ctx context.Context, req PlanTypeRequest) (*PlanType, error) {
	pt, err := s.repo.CreatePlanType(ctx, req.normalized())
	if err != nil {
		return nil, apperr.Infrastructure("failed to create plan type", err)
	}
	return pt, nil
}

func (s *service) ListPlanTypes(ctx context.Context) ([]PlanType, error) {
	plans, err := s.repo.ListPlanTypes(ctx)
	if err != nil {
		return nil, apperr.Infrastructure("failed to list plan types", err)
	}
	return plans, nil
}

func (s *service) UpdatePlanType(ctx context.Context, id string, req PlanTypeRequest) (*PlanType, error) {
	pt, err := s.repo.UpdatePlanType(ctx, id, req.normalized())
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, apperr.NotFound("Plano não encontrado")
		}
		return nil, apperr.Infrastructure("failed to update plan type", err)
	}
	return pt, nil
}

// DeletePlanType rejects the delete while any active student references the
// plan. Cascading was considered and discarded: the dashboard surfaces the
// conflict message and offers no cascade action.
func (s *service) DeletePlanType(ctx context.Context, id string) error {
	if _, err := s.repo.GetPlanTypeByID(ctx, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return apperr.NotFound("Plano não encontrado")
		}
		return apperr.Infrastructure("failed to load plan type", err)
	}

	inUse, err := s.repo.PlanTypeInUse(ctx, id)
	if err != nil {
		return apperr.Infrastructure("failed to check plan type usage", err)
	}
	if inUse {
		return apperr.Conflict("Plano possui alunos ativos")
	}

	if err := s.repo.DeletePlanType(ctx, id); err != nil {
		return apperr.Infrastructure("failed to delete plan type", err)
	}
	return nil
}

func (s *service) CreateClassType(ctx context.Context, req ClassTypeRequest) (*ClassType, error) {
	ct, err := s.repo.CreateClassType(ctx, req)
	if err != nil {
		return nil, apperr.Infrastructure("failed to create class type", err)
	}
	return ct, nil
}

func (s *service) ListClassTypes(ctx context.Context) ([]ClassType, error) {
	types, err := s.repo.ListClassTypes(ctx)
	if err != nil {
		return nil, apperr.Infrastructure("failed to list class types", err)
	}
	return types, nil
}

func (s *service) UpdateClassType(ctx context.Context, id string, req ClassTypeRequest) (*ClassType, error) {
	ct, err := s.repo.UpdateClassType(ctx, id, req)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, apperr.NotFound("Tipo de aula não encontrado")
		}
		return nil, apperr.Infrastructure("failed to update class type", err)
	}
	return ct, nil
}

func (s *service) DeleteClassType(ctx context.Context, id string) error {
	if _, err := s.repo.GetClassTypeByID(ctx, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return apperr.NotFound("Tipo de aula não encontrado")
		}
		return apperr.Infrastructure("failed to load class type", err)
	}

	inUse, err := s.repo.ClassTypeInUse(ctx, id)
	if err != nil {
		return apperr.Infrastructure("failed to check class type usage", err)
	}
	if inUse {
		return apperr.Conflict("Tipo de aula possui aulas cadastradas")
	}

	if err := s.repo.DeleteClassType(ctx, id); err != nil {
		return apperr.Infrastructure("failed to delete class type", err)
	}
	return nil
}
