package booking

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/SchmidtMatheus/gym-simulator-web/internal/apperr"
)

const (
	MsgStudentNotFound = "Aluno não encontrado"
	MsgClassNotFound   = "Aula não encontrada"
	MsgClassCancelled  = "Aula cancelada"
	MsgClassFull       = "Aula lotada"
	MsgQuotaReached    = "Limite mensal do plano atingido"
	MsgDuplicate       = "Aluno já possui reserva nesta aula"
	MsgBookingNotFound = "Reserva não encontrada"
	MsgTerminalState   = "Reserva já encerrada"
)

type repository struct {
	db *sqlx.DB
}

func NewRepository(db *sqlx.DB) Repository {
	return &repository{db: db}
}

const bookingColumns = `id, student_id, class_id, status, booking_date, cancelled_at, cancel_reason`

// Admit validates and records a reservation inside a single transaction. The
// student row lock serializes the monthly-quota count against concurrent
// inserts for the same student; the class row lock serializes the capacity
// check against the participant increment. Two attempts racing for one
// remaining seat cannot both commit.
func (r *repository) Admit(ctx context.Context, studentID, classID string, now time.Time) (*Booking, error) {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return nil, apperr.Infrastructure("failed to begin transaction", err)
	}
	defer tx.Rollback()

	var student struct {
		ID                string `db:"id"`
		IsActive          bool   `db:"is_active"`
		MonthlyClassLimit int    `db:"monthly_class_limit"`
	}
	err = tx.GetContext(ctx, &student, `
		SELECT s.id, s.is_active, p.monthly_class_limit
		FROM students s
		JOIN plan_types p ON p.id = s.plan_type_id
		WHERE s.id = $1
		FOR UPDATE OF s
	`, studentID)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, apperr.NotFound(MsgStudentNotFound)
	}
	if err != nil {
		return nil, apperr.Infrastructure("failed to load student", err)
	}
	if !student.IsActive {
		return nil, apperr.NotFound(MsgStudentNotFound)
	}

	var class struct {
		ID                  string `db:"id"`
		IsCancelled         bool   `db:"is_cancelled"`
		CurrentParticipants int    `db:"current_participants"`
		MaxCapacity         int    `db:"max_capacity"`
	}
	err = tx.GetContext(ctx, &class, `
		SELECT id, is_cancelled, current_participants, max_capacity
		FROM classes
		WHERE id = $1
		FOR UPDATE
	`, classID)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, apperr.NotFound(MsgClassNotFound)
	}
	if err != nil {
		return nil, apperr.Infrastructure("failed to load class", err)
	}
	if class.IsCancelled {
		return nil, apperr.Conflict(MsgClassCancelled)
	}
	if class.CurrentParticipants >= class.MaxCapacity {
		return nil, apperr.Capacity(MsgClassFull)
	}

	monthStart := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())
	monthEnd := monthStart.AddDate(0, 1, 0)

	var monthCount int
	err = tx.GetContext(ctx, &monthCount, `
		SELECT COUNT(*)
		FROM bookings
		WHERE student_id = $1
		  AND status IN ($2, $3)
		  AND booking_date >= $4
		  AND booking_date < $5
	`, studentID, StatusScheduled, StatusAttended, monthStart, monthEnd)
	if err != nil {
		return nil, apperr.Infrastructure("failed to count monthly bookings", err)
	}
	if monthCount >= student.MonthlyClassLimit {
		return nil, apperr.Quota(MsgQuotaReached)
	}

	var duplicate bool
	err = tx.GetContext(ctx, &duplicate, `
		SELECT EXISTS(
			SELECT 1 FROM bookings
			WHERE student_id = $1 AND class_id = $2 AND status <> $3
		)
	`, studentID, classID, StatusCancelled)
	if err != nil {
		return nil, apperr.Infrastructure("failed to check duplicate booking", err)
	}
	if duplicate {
		return nil, apperr.Conflict(MsgDuplicate)
	}

	var booking Booking
	err = tx.GetContext(ctx, &booking, `
		INSERT INTO bookings (id, student_id, class_id, status, booking_date)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING `+bookingColumns+`
	`, uuid.NewString(), studentID, classID, StatusScheduled, now)
	if err != nil {
		return nil, apperr.Infrastructure("failed to insert booking", err)
	}

	_, err = tx.ExecContext(ctx, `
		UPDATE classes
		SET current_participants = current_participants + 1
		WHERE id = $1
	`, classID)
	if err != nil {
		return nil, apperr.Infrastructure("failed to increment participants", err)
	}

	if err := tx.Commit(); err != nil {
		return nil, apperr.Infrastructure("failed to commit booking", err)
	}

	return &booking, nil
}

func (r *repository) GetByID(ctx context.Context, id string) (*Booking, error) {
	query := `
		SELECT ` + bookingColumns + `
		FROM bookings
		WHERE id = $1
	`

	var booking Booking
	err := r.db.GetContext(ctx, &booking, query, id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, apperr.NotFound(MsgBookingNotFound)
	}
	if err != nil {
		return nil, apperr.Infrastructure("failed to load booking", err)
	}

	return &booking, nil
}

// Cancel moves a Scheduled booking to Cancelled and releases its seat.
func (r *repository) Cancel(ctx context.Context, id, reason string, now time.Time) (*Booking, error) {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return nil, apperr.Infrastructure("failed to begin transaction", err)
	}
	defer tx.Rollback()

	booking, err := lockBooking(ctx, tx, id)
	if err != nil {
		return nil, err
	}
	if booking.Status != StatusScheduled {
		return nil, apperr.InvalidState(MsgTerminalState)
	}

	var cancelReason *string
	if reason != "" {
		cancelReason = &reason
	}

	err = tx.GetContext(ctx, booking, `
		UPDATE bookings
		SET status = $2, cancelled_at = $3, cancel_reason = $4
		WHERE id = $1
		RETURNING `+bookingColumns+`
	`, id, StatusCancelled, now, cancelReason)
	if err != nil {
		return nil, apperr.Infrastructure("failed to cancel booking", err)
	}

	_, err = tx.ExecContext(ctx, `
		UPDATE classes
		SET current_participants = current_participants - 1
		WHERE id = $1
	`, booking.ClassID)
	if err != nil {
		return nil, apperr.Infrastructure("failed to decrement participants", err)
	}

	if err := tx.Commit(); err != nil {
		return nil, apperr.Infrastructure("failed to commit cancellation", err)
	}

	return booking, nil
}

// Finish moves a Scheduled booking to Attended or Missed. The seat is not
// released: the session already happened.
func (r *repository) Finish(ctx context.Context, id string, status Status) (*Booking, error) {
	if status != StatusAttended && status != StatusMissed {
		return nil, apperr.InvalidState(MsgTerminalState)
	}

	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return nil, apperr.Infrastructure("failed to begin transaction", err)
	}
	defer tx.Rollback()

	booking, err := lockBooking(ctx, tx, id)
	if err != nil {
		return nil, err
	}
	if booking.Status != StatusScheduled {
		return nil, apperr.InvalidState(MsgTerminalState)
	}

	err = tx.GetContext(ctx, booking, `
		UPDATE bookings
		SET status = $2
		WHERE id = $1
		RETURNING `+bookingColumns+`
	`, id, status)
	if err != nil {
		return nil, apperr.Infrastructure("failed to update booking status", err)
	}

	if err := tx.Commit(); err != nil {
		return nil, apperr.Infrastructure("failed to commit status update", err)
	}

	return booking, nil
}

func (r *repository) List(ctx context.Context, limit, offset int) ([]BookingWithDetails, int, error) {
	var total int
	if err := r.db.GetContext(ctx, &total, `SELECT COUNT(*) FROM bookings`); err != nil {
		return nil, 0, apperr.Infrastructure("failed to count bookings", err)
	}

	query := `
		SELECT
			b.id, b.student_id, b.class_id, b.status, b.booking_date,
			b.cancelled_at, b.cancel_reason,
			s.name AS student_name,
			c.scheduled_at AS class_scheduled_at,
			ct.name AS class_type_name
		FROM bookings b
		JOIN students s ON s.id = b.student_id
		JOIN classes c ON c.id = b.class_id
		JOIN class_types ct ON ct.id = c.class_type_id
		ORDER BY b.booking_date DESC
		LIMIT $1 OFFSET $2
	`

	bookings := []BookingWithDetails{}
	if err := r.db.SelectContext(ctx, &bookings, query, limit, offset); err != nil {
		return nil, 0, apperr.Infrastructure("failed to list bookings", err)
	}

	return bookings, total, nil
}

func lockBooking(ctx context.Context, tx *sqlx.Tx, id string) (*Booking, error) {
	var booking Booking
	err := tx.GetContext(ctx, &booking, `
		SELECT `+bookingColumns+`
		FROM bookings
		WHERE id = $1
		FOR UPDATE
	`, id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, apperr.NotFound(MsgBookingNotFound)
	}
	if err != nil {
		return nil, apperr.Infrastructure("failed to load booking", err)
	}
	return &booking, nil
}
