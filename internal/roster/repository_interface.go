package roster

import (
	"context"
	"time"
)

type Repository interface {
	CreateStudent(ctx context.Context, req CreateStudentRequest) (*Student, error)
	GetStudentByID(ctx context.Context, id string) (*Student, error)
	UpdateStudent(ctx context.Context, id string, req UpdateStudentRequest) (*Student, error)
	ListStudents(ctx context.Context, limit, offset int) ([]Student, int, error)

	CreateClass(ctx context.Context, classTypeID string, scheduledAt time.Time, durationMinutes, maxCapacity int) (*Class, error)
	GetClassByID(ctx context.Context, id string) (*Class, error)
	ListClasses(ctx context.Context, limit, offset int) ([]Class, int, error)
	ListAvailableClasses(ctx context.Context, limit, offset int) ([]Class, int, error)
	CancelClass(ctx context.Context, id string) error
}
