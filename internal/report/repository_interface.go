package report

import (
	"context"
	"time"
)

type Repository interface {
	StudentPlan(ctx context.Context, studentID string) (*StudentPlan, error)
	UsageByClassType(ctx context.Context, studentID string, from, to time.Time) ([]ClassTypeUsage, error)
}
