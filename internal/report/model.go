package report

import "time"

// ClassTypeUsage is one slice of a student's monthly class-type distribution.
type ClassTypeUsage struct {
	ClassTypeID   string `db:"class_type_id" json:"classTypeId"`
	ClassTypeName string `db:"class_type_name" json:"classTypeName"`
	BookingCount  int    `db:"booking_count" json:"bookingCount"`
	Percentage    int    `json:"percentage"`
}

// StudentReport is computed on demand from the booking history and never
// persisted.
type StudentReport struct {
	StudentID              string           `json:"studentId"`
	StudentName            string           `json:"studentName"`
	PlanType               string           `json:"planType"`
	MonthlyClassLimit      int              `json:"monthlyClassLimit"`
	TotalClassesThisMonth  int              `json:"totalClassesThisMonth"`
	RemainingClasses       int              `json:"remainingClasses"`
	MostFrequentClassTypes []ClassTypeUsage `json:"mostFrequentClassTypes"`
	ReportDate             time.Time        `json:"reportDate"`
}

// StudentPlan is the roster slice the aggregator needs.
type StudentPlan struct {
	StudentName       string `db:"student_name"`
	PlanTypeName      string `db:"plan_type_name"`
	MonthlyClassLimit int    `db:"monthly_class_limit"`
}
