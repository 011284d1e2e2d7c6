package booking

import (
	"context"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/require"

	"github.com/SchmidtMatheus/gym-simulator-web/internal/apperr"
)

func setupMock(t *testing.T) (Repository, sqlmock.Sqlmock, func()) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)

	sqlxDB := sqlx.NewDb(db, "sqlmock")
	repo := NewRepository(sqlxDB)

	closer := func() {
		sqlxDB.Close()
	}

	return repo, mock, closer
}

const (
	studentQuery = "SELECT s.id, s.is_active, p.monthly_class_limit FROM students s JOIN plan_types p ON p.id = s.plan_type_id WHERE s.id = $1 FOR UPDATE OF s"
	classQuery   = "SELECT id, is_cancelled, current_participants, max_capacity FROM classes WHERE id = $1 FOR UPDATE"
	countQuery   = "SELECT COUNT(*) FROM bookings WHERE student_id = $1 AND status IN ($2, $3) AND booking_date >= $4 AND booking_date < $5"
	dupQuery     = "SELECT EXISTS( SELECT 1 FROM bookings WHERE student_id = $1 AND class_id = $2 AND status <> $3 )"
	insertQuery  = "INSERT INTO bookings (id, student_id, class_id, status, booking_date) VALUES ($1, $2, $3, $4, $5) RETURNING id, student_id, class_id, status, booking_date, cancelled_at, cancel_reason"
	incQuery     = "UPDATE classes SET current_participants = current_participants + 1 WHERE id = $1"
)

func expectStudent(mock sqlmock.Sqlmock, id string, active bool, limit int) {
	mock.ExpectQuery(regexp.QuoteMeta(studentQuery)).
		WithArgs(id).
		WillReturnRows(sqlmock.NewRows([]string{"id", "is_active", "monthly_class_limit"}).AddRow(id, active, limit))
}

func expectClass(mock sqlmock.Sqlmock, id string, cancelled bool, current, max int) {
	mock.ExpectQuery(regexp.QuoteMeta(classQuery)).
		WithArgs(id).
		WillReturnRows(sqlmock.NewRows([]string{"id", "is_cancelled", "current_participants", "max_capacity"}).AddRow(id, cancelled, current, max))
}

func TestAdmitSuccess(t *testing.T) {
	repo, mock, close := setupMock(t)
	defer close()

	now := time.Now()

	mock.ExpectBegin()
	expectStudent(mock, "s1", true, 8)
	expectClass(mock, "c1", false, 3, 10)
	mock.ExpectQuery(regexp.QuoteMeta(countQuery)).
		WithArgs("s1", StatusScheduled, StatusAttended, sqlmock.AnyArg(), sqlmock.AnyArg()).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(2))
	mock.ExpectQuery(regexp.QuoteMeta(dupQuery)).
		WithArgs("s1", "c1", StatusCancelled).
		WillReturnRows(sqlmock.NewRows([]string{"exists"}).AddRow(false))
	mock.ExpectQuery(regexp.QuoteMeta(insertQuery)).
		WithArgs(sqlmock.AnyArg(), "s1", "c1", StatusScheduled, now).
		WillReturnRows(sqlmock.NewRows([]string{"id", "student_id", "class_id", "status", "booking_date", "cancelled_at", "cancel_reason"}).
			AddRow("b1", "s1", "c1", int(StatusScheduled), now, nil, nil))
	mock.ExpectExec(regexp.QuoteMeta(incQuery)).
		WithArgs("c1").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	booking, err := repo.Admit(context.Background(), "s1", "c1", now)
	require.NoError(t, err)
	require.Equal(t, "b1", booking.ID)
	require.Equal(t, StatusScheduled, booking.Status)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestAdmitStudentNotFound(t *testing.T) {
	repo, mock, close := setupMock(t)
	defer close()

	mock.ExpectBegin()
	mock.ExpectQuery(regexp.QuoteMeta(studentQuery)).
		WithArgs("ghost").
		WillReturnRows(sqlmock.NewRows([]string{"id", "is_active", "monthly_class_limit"}))
	mock.ExpectRollback()

	_, err := repo.Admit(context.Background(), "ghost", "c1", time.Now())
	require.Error(t, err)
	require.Equal(t, apperr.KindNotFound, apperr.KindOf(err))
	require.Equal(t, MsgStudentNotFound, apperr.MessageOf(err))
}

func TestAdmitInactiveStudent(t *testing.T) {
	repo, mock, close := setupMock(t)
	defer close()

	mock.ExpectBegin()
	expectStudent(mock, "s1", false, 8)
	mock.ExpectRollback()

	_, err := repo.Admit(context.Background(), "s1", "c1", time.Now())
	require.Equal(t, apperr.KindNotFound, apperr.KindOf(err))
	require.Equal(t, MsgStudentNotFound, apperr.MessageOf(err))
}

func TestAdmitCancelledClass(t *testing.T) {
	repo, mock, close := setupMock(t)
	defer close()

	mock.ExpectBegin()
	expectStudent(mock, "s1", true, 8)
	expectClass(mock, "c1", true, 0, 10)
	mock.ExpectRollback()

	_, err := repo.Admit(context.Background(), "s1", "c1", time.Now())
	require.Equal(t, apperr.KindConflict, apperr.KindOf(err))
	require.Equal(t, MsgClassCancelled, apperr.MessageOf(err))
}

func TestAdmitClassFull(t *testing.T) {
	repo, mock, close := setupMock(t)
	defer close()

	mock.ExpectBegin()
	expectStudent(mock, "s1", true, 8)
	expectClass(mock, "c1", false, 10, 10)
	mock.ExpectRollback()

	_, err := repo.Admit(context.Background(), "s1", "c1", time.Now())
	require.Equal(t, apperr.KindCapacity, apperr.KindOf(err))
	require.Equal(t, MsgClassFull, apperr.MessageOf(err))
}

func TestAdmitQuotaReached(t *testing.T) {
	repo, mock, close := setupMock(t)
	defer close()

	mock.ExpectBegin()
	expectStudent(mock, "s1", true, 2)
	expectClass(mock, "c1", false, 3, 10)
	mock.ExpectQuery(regexp.QuoteMeta(countQuery)).
		WithArgs("s1", StatusScheduled, StatusAttended, sqlmock.AnyArg(), sqlmock.AnyArg()).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(2))
	mock.ExpectRollback()

	_, err := repo.Admit(context.Background(), "s1", "c1", time.Now())
	require.Equal(t, apperr.KindQuota, apperr.KindOf(err))
	require.Equal(t, MsgQuotaReached, apperr.MessageOf(err))
}

func TestAdmitDuplicate(t *testing.T) {
	repo, mock, close := setupMock(t)
	defer close()

	mock.ExpectBegin()
	expectStudent(mock, "s1", true, 8)
	expectClass(mock, "c1", false, 3, 10)
	mock.ExpectQuery(regexp.QuoteMeta(countQuery)).
		WithArgs("s1", StatusScheduled, StatusAttended, sqlmock.AnyArg(), sqlmock.AnyArg()).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(1))
	mock.ExpectQuery(regexp.QuoteMeta(dupQuery)).
		WithArgs("s1", "c1", StatusCancelled).
		WillReturnRows(sqlmock.NewRows([]string{"exists"}).AddRow(true))
	mock.ExpectRollback()

	_, err := repo.Admit(context.Background(), "s1", "c1", time.Now())
	require.Equal(t, apperr.KindConflict, apperr.KindOf(err))
	require.Equal(t, MsgDuplicate, apperr.MessageOf(err))
}

const lockQuery = "SELECT id, student_id, class_id, status, booking_date, cancelled_at, cancel_reason FROM bookings WHERE id = $1 FOR UPDATE"

func TestCancelReleasesSeat(t *testing.T) {
	repo, mock, close := setupMock(t)
	defer close()

	now := time.Now()

	mock.ExpectBegin()
	mock.ExpectQuery(regexp.QuoteMeta(lockQuery)).
		WithArgs("b1").
		WillReturnRows(sqlmock.NewRows([]string{"id", "student_id", "class_id", "status", "booking_date", "cancelled_at", "cancel_reason"}).
			AddRow("b1", "s1", "c1", int(StatusScheduled), now, nil, nil))
	mock.ExpectQuery(regexp.QuoteMeta("UPDATE bookings SET status = $2, cancelled_at = $3, cancel_reason = $4 WHERE id = $1 RETURNING id, student_id, class_id, status, booking_date, cancelled_at, cancel_reason")).
		WithArgs("b1", StatusCancelled, sqlmock.AnyArg(), "mudança de horário").
		WillReturnRows(sqlmock.NewRows([]string{"id", "student_id", "class_id", "status", "booking_date", "cancelled_at", "cancel_reason"}).
			AddRow("b1", "s1", "c1", int(StatusCancelled), now, now, "mudança de horário"))
	mock.ExpectExec(regexp.QuoteMeta("UPDATE classes SET current_participants = current_participants - 1 WHERE id = $1")).
		WithArgs("c1").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	booking, err := repo.Cancel(context.Background(), "b1", "mudança de horário", now)
	require.NoError(t, err)
	require.Equal(t, StatusCancelled, booking.Status)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestCancelTerminalBooking(t *testing.T) {
	repo, mock, close := setupMock(t)
	defer close()

	mock.ExpectBegin()
	mock.ExpectQuery(regexp.QuoteMeta(lockQuery)).
		WithArgs("b1").
		WillReturnRows(sqlmock.NewRows([]string{"id", "student_id", "class_id", "status", "booking_date", "cancelled_at", "cancel_reason"}).
			AddRow("b1", "s1", "c1", int(StatusCancelled), time.Now(), time.Now(), nil))
	mock.ExpectRollback()

	_, err := repo.Cancel(context.Background(), "b1", "", time.Now())
	require.Equal(t, apperr.KindInvalidState, apperr.KindOf(err))
}

func TestFinishAttended(t *testing.T) {
	repo, mock, close := setupMock(t)
	defer close()

	now := time.Now()

	mock.ExpectBegin()
	mock.ExpectQuery(regexp.QuoteMeta(lockQuery)).
		WithArgs("b1").
		WillReturnRows(sqlmock.NewRows([]string{"id", "student_id", "class_id", "status", "booking_date", "cancelled_at", "cancel_reason"}).
			AddRow("b1", "s1", "c1", int(StatusScheduled), now, nil, nil))
	mock.ExpectQuery(regexp.QuoteMeta("UPDATE bookings SET status = $2 WHERE id = $1 RETURNING id, student_id, class_id, status, booking_date, cancelled_at, cancel_reason")).
		WithArgs("b1", StatusAttended).
		WillReturnRows(sqlmock.NewRows([]string{"id", "student_id", "class_id", "status", "booking_date", "cancelled_at", "cancel_reason"}).
			AddRow("b1", "s1", "c1", int(StatusAttended), now, nil, nil))
	mock.ExpectCommit()

	booking, err := repo.Finish(context.Background(), "b1", StatusAttended)
	require.NoError(t, err)
	require.Equal(t, StatusAttended, booking.Status)
}

func TestFinishRejectsNonTerminalTarget(t *testing.T) {
	repo, _, close := setupMock(t)
	defer close()

	_, err := repo.Finish(context.Background(), "b1", StatusCancelled)
	require.Equal(t, apperr.KindInvalidState, apperr.KindOf(err))
}

func TestListBookingsPaginated(t *testing.T) {
	repo, mock, close := setupMock(t)
	defer close()

	now := time.Now()

	mock.ExpectQuery(regexp.QuoteMeta("SELECT COUNT(*) FROM bookings")).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(25))
	mock.ExpectQuery("SELECT b.id, b.student_id").
		WithArgs(10, 0).
		WillReturnRows(sqlmock.NewRows([]string{"id", "student_id", "class_id", "status", "booking_date", "cancelled_at", "cancel_reason", "student_name", "class_scheduled_at", "class_type_name"}).
			AddRow("b1", "s1", "c1", int(StatusScheduled), now, nil, nil, "Ana", now, "Yoga"))

	rows, total, err := repo.List(context.Background(), 10, 0)
	require.NoError(t, err)
	require.Equal(t, 25, total)
	require.Len(t, rows, 1)
	require.Equal(t, "Yoga", rows[0].ClassTypeName)
}
