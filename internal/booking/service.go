package booking

import (
	"context"
	"time"

	"github.com/SchmidtMatheus/gym-simulator-web/internal/api"
	"github.com/SchmidtMatheus/gym-simulator-web/internal/apperr"
	"github.com/SchmidtMatheus/gym-simulator-web/internal/logger"
	"github.com/SchmidtMatheus/gym-simulator-web/internal/metrics"
)

const MsgBookingCreated = "Reserva criada com sucesso"

// ReportInvalidator drops a student's cached usage report after a booking
// mutation, so the next report reflects the new state.
type ReportInvalidator interface {
	Invalidate(ctx context.Context, studentID string)
}

type Service interface {
	CreateBooking(ctx context.Context, req CreateBookingRequest) (*BookingResult, error)
	CancelBooking(ctx context.Context, id, reason string) error
	MarkAttended(ctx context.Context, id string) error
	MarkMissed(ctx context.Context, id string) error
	ListBookings(ctx context.Context, page api.PageQuery) (*BookingListResponse, error)
}

type service struct {
	repo    Repository
	reports ReportInvalidator
}

func NewService(repo Repository, reports ReportInvalidator) Service {
	return &service{repo: repo, reports: reports}
}

// CreateBooking runs the admission check. Business rejections become a
// BookingResult with Success=false; only infrastructure faults surface as
// errors.
func (s *service) CreateBooking(ctx context.Context, req CreateBookingRequest) (*BookingResult, error) {
	booking, err := s.repo.Admit(ctx, req.StudentID, req.ClassID, time.Now())
	if err != nil {
		if apperr.IsBusiness(err) {
			metrics.RecordBookingRejection(rejectionReason(err))
			logger.Info("booking rejected",
				"student_id", req.StudentID,
				"class_id", req.ClassID,
				"reason", apperr.MessageOf(err),
			)
			return &BookingResult{Success: false, Message: apperr.MessageOf(err)}, nil
		}
		return nil, err
	}

	metrics.RecordBooking()
	if s.reports != nil {
		s.reports.Invalidate(ctx, booking.StudentID)
	}

	return &BookingResult{
		Success:   true,
		Message:   MsgBookingCreated,
		BookingID: &booking.ID,
	}, nil
}

func (s *service) CancelBooking(ctx context.Context, id, reason string) error {
	booking, err := s.repo.Cancel(ctx, id, reason, time.Now())
	if err != nil {
		return err
	}

	metrics.RecordBookingCancellation()
	if s.reports != nil {
		s.reports.Invalidate(ctx, booking.StudentID)
	}
	return nil
}

func (s *service) MarkAttended(ctx context.Context, id string) error {
	return s.finish(ctx, id, StatusAttended)
}

func (s *service) MarkMissed(ctx context.Context, id string) error {
	return s.finish(ctx, id, StatusMissed)
}

func (s *service) finish(ctx context.Context, id string, status Status) error {
	booking, err := s.repo.Finish(ctx, id, status)
	if err != nil {
		return err
	}

	if s.reports != nil {
		s.reports.Invalidate(ctx, booking.StudentID)
	}
	return nil
}

func (s *service) ListBookings(ctx context.Context, page api.PageQuery) (*BookingListResponse, error) {
	bookings, total, err := s.repo.List(ctx, page.PageSize, page.Offset())
	if err != nil {
		return nil, err
	}

	return &BookingListResponse{
		Data:       bookings,
		TotalCount: total,
		PageNumber: page.Page,
		PageSize:   page.PageSize,
	}, nil
}

func rejectionReason(err error) string {
	switch apperr.KindOf(err) {
	case apperr.KindNotFound:
		return "not_found"
	case apperr.KindCapacity:
		return "capacity"
	case apperr.KindQuota:
		return "quota"
	case apperr.KindConflict:
		return "conflict"
	default:
		return "other"
	}
}
