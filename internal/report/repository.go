package report

import (
	"context"
	"time"

	"github.com/jmoiron/sqlx"
)

type repository struct {
	db *sqlx.DB
}

func NewRepository(db *sqlx.DB) Repository {
	return &repository{db: db}
}

func (r *repository) StudentPlan(ctx context.Context, studentID string) (*StudentPlan, error) {
	query := `
		SELECT
			s.name AS student_name,
			p.name AS plan_type_name,
			p.monthly_class_limit
		FROM students s
		JOIN plan_types p ON p.id = s.plan_type_id
		WHERE s.id = $1
	`

	var plan StudentPlan
	err := r.db.GetContext(ctx, &plan, query, studentID)
	if err != nil {
		return nil, err
	}

	return &plan, nil
}

// UsageByClassType groups the student's scheduled and attended bookings in
// [from, to) by class type. Ties on count break by name for a deterministic
// order.
func (r *repository) UsageByClassType(ctx context.Context, studentID string, from, to time.Time) ([]ClassTypeUsage, error) {
	query := `
		SELECT
			ct.id AS class_type_id,
			ct.name AS class_type_name,
			COUNT(*) AS booking_count
		FROM bookings b
		JOIN classes c ON c.id = b.class_id
		JOIN class_types ct ON ct.id = c.class_type_id
		WHERE b.student_id = $1
		  AND b.status IN ($2, $3)
		  AND b.booking_date >= $4
		  AND b.booking_date < $5
		GROUP BY ct.id, ct.name
		ORDER BY booking_count DESC, ct.name ASC
	`

	usage := []ClassTypeUsage{}
	err := r.db.SelectContext(ctx, &usage, query, studentID, scheduledStatus, attendedStatus, from, to)
	if err != nil {
		return nil, err
	}

	return usage, nil
}

// Numeric booking statuses counted as plan usage. Kept local so the report
// package does not depend on the booking engine.
const (
	scheduledStatus = 1
	attendedStatus  = 2
)
