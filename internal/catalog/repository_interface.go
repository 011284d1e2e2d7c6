package catalog

import "context"

type Repository interface {
	CreatePlanType(ctx context.Context, req PlanTypeRequest) (*PlanType, error)
	GetPlanTypeByID(ctx context.Context, id string) (*PlanType, error)
	ListPlanTypes(ctx context.Context) ([]PlanType, error)
	UpdatePlanType(ctx context.Context, id string, req PlanTypeRequest) (*PlanType, error)
	DeletePlanType(ctx context.Context, id string) error
	PlanTypeInUse(ctx context.Context, id string) (bool, error)

	CreateClassType(ctx context.Context, req ClassTypeRequest) (*ClassType, error)
	GetClassTypeByID(ctx context.Context, id string) (*ClassType, error)
	ListClassTypes(ctx context.Context) ([]ClassType, error)
	UpdateClassType(ctx context.Context, id string, req ClassTypeRequest) (*ClassType, error)
	DeleteClassType(ctx context.Context, id string) error
	ClassTypeInUse(ctx context.Context, id string) (bool, error)
}
