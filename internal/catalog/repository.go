package catalog

import (
	"context"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
)

type repository struct {
	db *sqlx.DB
}

func NewRepository(db *sqlx.DB) Repository {
	return &repository{db: db}
}

func (r *repository) CreatePlanType(ctx context.Context, req PlanTypeRequest) (*PlanType, error) {
	query := `
		INSERT INTO plan_types (id, name, description, monthly_class_limit)
		VALUES ($1, $2, $3, $4)
		RETURNING id, name, description, monthly_class_limit, created_at
	`

	var pt PlanType
	err := r.db.GetContext(ctx, &pt, query, uuid.NewString(), req.Name, req.Description, req.MonthlyClassLimit)
	if err != nil {
		return nil, err
	}

	return &pt, nil
}

func (r *repository) GetPlanTypeByID(ctx context.Context, id string) (*PlanType, error) {
	query := `
		SELECT id, name, description, monthly_class_limit, created_at
		FROM plan_types
		WHERE id = $1
	`

	var pt PlanType
	err := r.db.GetContext(ctx, &pt, query, id)
	if err != nil {
		return nil, err
	}

	return &pt, nil
}

func (r *repository) ListPlanTypes(ctx context.Context) ([]PlanType, error) {
	query := `
		SELECT id, name, description, monthly_class_limit, created_at
		FROM plan_types
		ORDER BY created_at ASC
	`

	var plans []PlanType
	err := r.db.SelectContext(ctx, &plans, query)
	if err != nil {
		return nil, err
	}

	return plans, nil
}

func (r *repository) UpdatePlanType(ctx context.Context, id string, req PlanTypeRequest) (*PlanType, error) {
	query := `
		UPDATE plan_types
		SET name = $2, description = $3, monthly_class_limit = $4
		WHERE id = $1
		RETURNING id, name, description, monthly_class_limit, created_at
	`

	var pt PlanType
	err := r.db.GetContext(ctx, &pt, query, id, req.Name, req.Description, req.MonthlyClassLimit)
	if err != nil {
		return nil, err
	}

	return &pt, nil
}

func (r *repository) DeletePlanType(ctx context.Context, id string) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM plan_types WHERE id = $1`, id)
	return err
}

func (r *repository) PlanTypeInUse(ctx context.Context, id string) (bool, error) {
	query := `
		SELECT EXISTS(
			SELECT 1 FROM students
			WHERE plan_type_id = $1 AND is_active = TRUE
		)
	`

	var inUse bool
	err := r.db.GetContext(ctx, &inUse, query, id)
	if err != nil {
		return false, err
	}

	return inUse, nil
}

func (r *repository) CreateClassType(ctx context.Context, req ClassTypeRequest) (*ClassType, error) {
	query := `
		INSERT INTO class_types (id, name, description, intensity_level)
		VALUES ($1, $2, $3, $4)
		RETURNING id, name, description, intensity_level, created_at
	`

	var ct ClassType
	err := r.db.GetContext(ctx, &ct, query, uuid.NewString(), req.Name, req.Description, req.IntensityLevel)
	if err != nil {
		return nil, err
	}

	return &ct, nil
}

func (r *repository) GetClassTypeByID(ctx context.Context, id string) (*ClassType, error) {
	query := `
		SELECT id, name, description, intensity_level, created_at
		FROM class_types
		WHERE id = $1
	`

	var ct ClassType
	err := r.db.GetContext(ctx, &ct, query, id)
	if err != nil {
		return nil, err
	}

	return &ct, nil
}

func (r *repository) ListClassTypes(ctx context.Context) ([]ClassType, error) {
	query := `
		SELECT id, name, description, intensity_level, created_at
		FROM class_types
		ORDER BY created_at ASC
	`

	var types []ClassType
	err := r.db.SelectContext(ctx, &types, query)
	if err != nil {
		return nil, err
	}

	return types, nil
}

func (r *repository) UpdateClassType(ctx context.Context, id string, req ClassTypeRequest) (*ClassType, error) {
	query := `
		UPDATE class_types
		SET name = $2, description = $3, intensity_level = $4
		WHERE id = $1
		RETURNING id, name, description, intensity_level, created_at
	`

	var ct ClassType
	err := r.db.GetContext(ctx, &ct, query, id, req.Name, req.Description, req.IntensityLevel)
	if err != nil {
		return nil, err
	}

	return &ct, nil
}

func (r *repository) DeleteClassType(ctx context.Context, id string) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM class_types WHERE id = $1`, id)
	return err
}

func (r *repository) ClassTypeInUse(ctx context.Context, id string) (bool, error) {
	query := `
		SELECT EXISTS(
			SELECT 1 FROM classes
			WHERE class_type_id = $1
		)
	`

	var inUse bool
	err := r.db.GetContext(ctx, &inUse, query, id)
	if err != nil {
		return false, err
	}

	return inUse, nil
}
