package booking

import "time"

// Status is the one-way booking state machine. Scheduled is the only
// non-terminal state; the numeric values are the dashboard's enum.
type Status int

const (
	StatusScheduled Status = iota + 1
	StatusAttended
	StatusMissed
	StatusCancelled
)

func (s Status) String() string {
	switch s {
	case StatusScheduled:
		return "scheduled"
	case StatusAttended:
		return "attended"
	case StatusMissed:
		return "missed"
	case StatusCancelled:
		return "cancelled"
	default:
		return "unknown"
	}
}

// Terminal reports whether no further transition is allowed out of s.
func (s Status) Terminal() bool {
	return s == StatusAttended || s == StatusMissed || s == StatusCancelled
}

type Booking struct {
	ID           string     `db:"id" json:"id"`
	StudentID    string     `db:"student_id" json:"studentId"`
	ClassID      string     `db:"class_id" json:"classId"`
	Status       Status     `db:"status" json:"status"`
	BookingDate  time.Time  `db:"booking_date" json:"bookingDate"`
	CancelledAt  *time.Time `db:"cancelled_at" json:"cancelledAt,omitempty"`
	CancelReason *string    `db:"cancel_reason" json:"cancelReason,omitempty"`
}

type BookingWithDetails struct {
	Booking
	StudentName      string    `db:"student_name" json:"studentName"`
	ClassScheduledAt time.Time `db:"class_scheduled_at" json:"classScheduledAt"`
	ClassTypeName    string    `db:"class_type_name" json:"classTypeName"`
}

// BookingResult is what the admission check hands back to the dashboard.
// Business rejections are not errors: they arrive here with Success=false and
// a displayable message.
type BookingResult struct {
	Success   bool    `json:"success"`
	Message   string  `json:"message"`
	BookingID *string `json:"bookingId,omitempty"`
}

type CreateBookingRequest struct {
	StudentID string `json:"studentId" binding:"required"`
	ClassID   string `json:"classId" binding:"required"`
}

type CancelBookingRequest struct {
	Reason string `json:"reason"`
}

type BookingListResponse struct {
	Data       []BookingWithDetails `json:"data"`
	TotalCount int                  `json:"totalCount"`
	PageNumber int                  `json:"pageNumber"`
	PageSize   int                  `json:"pageSize"`
}
