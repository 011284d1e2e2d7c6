package roster

import "time"

type Student struct {
	ID           string    `db:"id" json:"id"`
	Name         string    `db:"name" json:"name"`
	Email        *string   `db:"email" json:"email,omitempty"`
	Phone        *string   `db:"phone" json:"phone,omitempty"`
	PlanTypeID   string    `db:"plan_type_id" json:"planTypeId"`
	PlanTypeName string    `db:"plan_type_name" json:"planTypeName"`
	IsActive     bool      `db:"is_active" json:"isActive"`
	CreatedAt    time.Time `db:"created_at" json:"createdAt"`
}

type Class struct {
	ID                  string    `db:"id" json:"id"`
	ClassTypeID         string    `db:"class_type_id" json:"classTypeId"`
	ClassTypeName       string    `db:"class_type_name" json:"classTypeName"`
	ScheduledAt         time.Time `db:"scheduled_at" json:"scheduledAt"`
	DurationMinutes     int       `db:"duration_minutes" json:"durationMinutes"`
	MaxCapacity         int       `db:"max_capacity" json:"maxCapacity"`
	CurrentParticipants int       `db:"current_participants" json:"currentParticipants"`
	IsActive            bool      `db:"is_active" json:"isActive"`
	IsCancelled         bool      `db:"is_cancelled" json:"isCancelled"`
	CreatedAt           time.Time `db:"created_at" json:"createdAt"`
}

type CreateStudentRequest struct {
	Name       string  `json:"name" binding:"required"`
	Email      *string `json:"email" binding:"omitempty,email"`
	Phone      *string `json:"phone"`
	PlanTypeID string  `json:"planTypeId" binding:"required"`
}

type UpdateStudentRequest struct {
	Name       string  `json:"name" binding:"required"`
	Email      *string `json:"email" binding:"omitempty,email"`
	Phone      *string `json:"phone"`
	PlanTypeID string  `json:"planTypeId" binding:"required"`
	IsActive   *bool   `json:"isActive"`
}

type CreateClassRequest struct {
	ClassTypeID     string `json:"classTypeId" binding:"required"`
	ScheduledAt     string `json:"scheduledAt" binding:"required"`
	DurationMinutes int    `json:"durationMinutes" binding:"required,min=1"`
	MaxCapacity     int    `json:"maxCapacity" binding:"required,min=1"`
}

type StudentListResponse struct {
	Items      []Student `json:"items"`
	TotalCount int       `json:"totalCount"`
	PageNumber int       `json:"pageNumber"`
	PageSize   int       `json:"pageSize"`
}

type ClassListResponse struct {
	Items      []Class `json:"items"`
	TotalCount int     `json:"totalCount"`
	PageNumber int     `json:"pageNumber"`
	PageSize   int     `json:"pageSize"`
}
