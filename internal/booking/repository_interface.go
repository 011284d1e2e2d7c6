package booking

import (
	"context"
	"time"
)

type Repository interface {
	// Admit runs the whole admission check-and-insert as one transaction.
	// Rejections come back as apperr business errors.
	Admit(ctx context.Context, studentID, classID string, now time.Time) (*Booking, error)
	GetByID(ctx context.Context, id string) (*Booking, error)
	Cancel(ctx context.Context, id, reason string, now time.Time) (*Booking, error)
	Finish(ctx context.Context, id string, status Status) (*Booking, error)
	List(ctx context.Context, limit, offset int) ([]BookingWithDetails, int, error)
}
