package roster

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
)

var ErrClassNotFoundOrCancelled = errors.New("class not found or already cancelled")

type repository struct {
	db *sqlx.DB
}

func NewRepository(db *sqlx.DB) Repository {
	return &repository{db: db}
}

const studentColumns = `
	s.id, s.name, s.email, s.phone, s.plan_type_id, s.is_active, s.created_at,
	p.name AS plan_type_name
`

func (r *repository) CreateStudent(ctx context.Context, req CreateStudentRequest) (*Student, error) {
	query := `
		WITH inserted AS (
			INSERT INTO students (id, name, email, phone, plan_type_id)
			VALUES ($1, $2, $3, $4, $5)
			RETURNING *
		)
		SELECT ` + studentColumns + `
		FROM inserted s
		JOIN plan_types p ON p.id = s.plan_type_id
	`

	var student Student
	err := r.db.GetContext(ctx, &student, query, uuid.NewString(), req.Name, req.Email, req.Phone, req.PlanTypeID)
	if err != nil {
		return nil, err
	}

	return &student, nil
}

func (r *repository) GetStudentByID(ctx context.Context, id string) (*Student, error) {
	query := `
		SELECT ` + studentColumns + `
		FROM students s
		JOIN plan_types p ON p.id = s.plan_type_id
		WHERE s.id = $1
	`

	var student Student
	err := r.db.GetContext(ctx, &student, query, id)
	if err != nil {
		return nil, err
	}

	return &student, nil
}

func (r *repository) UpdateStudent(ctx context.Context, id string, req UpdateStudentRequest) (*Student, error) {
	// An omitted isActive keeps the stored value; an edit must not quietly
	// re-activate a deactivated student.
	query := `
		WITH updated AS (
			UPDATE students
			SET name = $2, email = $3, phone = $4, plan_type_id = $5,
				is_active = COALESCE($6, is_active)
			WHERE id = $1
			RETURNING *
		)
		SELECT ` + studentColumns + `
		FROM updated s
		JOIN plan_types p ON p.id = s.plan_type_id
	`

	var student Student
	err := r.db.GetContext(ctx, &student, query, id, req.Name, req.Email, req.Phone, req.PlanTypeID, req.IsActive)
	if err != nil {
		return nil, err
	}

	return &student, nil
}

func (r *repository) ListStudents(ctx context.Context, limit, offset int) ([]Student, int, error) {
	var total int
	if err := r.db.GetContext(ctx, &total, `SELECT COUNT(*) FROM students`); err != nil {
		return nil, 0, err
	}

	query := `
		SELECT ` + studentColumns + `
		FROM students s
		JOIN plan_types p ON p.id = s.plan_type_id
		ORDER BY s.name ASC
		LIMIT $1 OFFSET $2
	`

	students := []Student{}
	if err := r.db.SelectContext(ctx, &students, query, limit, offset); err != nil {
		return nil, 0, err
	}

	return students, total, nil
}

const classColumns = `
	c.id, c.class_type_id, c.scheduled_at, c.duration_minutes, c.max_capacity,
	c.current_participants, c.is_active, c.is_cancelled, c.created_at,
	ct.name AS class_type_name
`

func (r *repository) CreateClass(ctx context.Context, classTypeID string, scheduledAt time.Time, durationMinutes, maxCapacity int) (*Class, error) {
	query := `
		WITH inserted AS (
			INSERT INTO classes (id, class_type_id, scheduled_at, duration_minutes, max_capacity)
			VALUES ($1, $2, $3, $4, $5)
			RETURNING *
		)
		SELECT ` + classColumns + `
		FROM inserted c
		JOIN class_types ct ON ct.id = c.class_type_id
	`

	var class Class
	err := r.db.GetContext(ctx, &class, query, uuid.NewString(), classTypeID, scheduledAt, durationMinutes, maxCapacity)
	if err != nil {
		return nil, err
	}

	return &class, nil
}

func (r *repository) GetClassByID(ctx context.Context, id string) (*Class, error) {
	query := `
		SELECT ` + classColumns + `
		FROM classes c
		JOIN class_types ct ON ct.id = c.class_type_id
		WHERE c.id = $1
	`

	var class Class
	err := r.db.GetContext(ctx, &class, query, id)
	if err != nil {
		return nil, err
	}

	return &class, nil
}

func (r *repository) ListClasses(ctx context.Context, limit, offset int) ([]Class, int, error) {
	var total int
	if err := r.db.GetContext(ctx, &total, `SELECT COUNT(*) FROM classes`); err != nil {
		return nil, 0, err
	}

	query := `
		SELECT ` + classColumns + `
		FROM classes c
		JOIN class_types ct ON ct.id = c.class_type_id
		ORDER BY c.scheduled_at ASC
		LIMIT $1 OFFSET $2
	`

	classes := []Class{}
	if err := r.db.SelectContext(ctx, &classes, query, limit, offset); err != nil {
		return nil, 0, err
	}

	return classes, total, nil
}

func (r *repository) ListAvailableClasses(ctx context.Context, limit, offset int) ([]Class, int, error) {
	const filter = `WHERE c.is_cancelled = FALSE AND c.current_participants < c.max_capacity`

	var total int
	if err := r.db.GetContext(ctx, &total, `SELECT COUNT(*) FROM classes c `+filter); err != nil {
		return nil, 0, err
	}

	query := `
		SELECT ` + classColumns + `
		FROM classes c
		JOIN class_types ct ON ct.id = c.class_type_id
		` + filter + `
		ORDER BY c.scheduled_at ASC
		LIMIT $1 OFFSET $2
	`

	classes := []Class{}
	if err := r.db.SelectContext(ctx, &classes, query, limit, offset); err != nil {
		return nil, 0, err
	}

	return classes, total, nil
}

func (r *repository) CancelClass(ctx context.Context, id string) error {
	query := `
		UPDATE classes
		SET is_cancelled = TRUE, is_active = FALSE
		WHERE id = $1 AND is_cancelled = FALSE
	`

	result, err := r.db.ExecContext(ctx, query, id)
	if err != nil {
		return err
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return err
	}

	if rowsAffected == 0 {
		return ErrClassNotFoundOrCancelled
	}

	return nil
}
