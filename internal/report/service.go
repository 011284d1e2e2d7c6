package report

import (
	"context"
	"database/sql"
	"errors"
	"math"
	"time"

	"github.com/SchmidtMatheus/gym-simulator-web/internal/apperr"
	"github.com/SchmidtMatheus/gym-simulator-web/internal/metrics"
)

type Service interface {
	GetStudentReport(ctx context.Context, studentID string) (*StudentReport, error)
}

type service struct {
	repo  Repository
	cache *Cache
	now   func() time.Time
}

func NewService(repo Repository, cache *Cache) Service {
	return &service{repo: repo, cache: cache, now: time.Now}
}

// GetStudentReport aggregates the student's current calendar month: total
// scheduled+attended classes, remaining plan allowance and the class-type
// distribution with rounded percentages.
func (s *service) GetStudentReport(ctx context.Context, studentID string) (*StudentReport, error) {
	cached, epoch, ok := s.cache.Get(ctx, studentID)
	if ok {
		return cached, nil
	}

	plan, err := s.repo.StudentPlan(ctx, studentID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, apperr.NotFound("Aluno não encontrado")
		}
		return nil, apperr.Infrastructure("failed to load student plan", err)
	}

	now := s.now()
	monthStart := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())
	monthEnd := monthStart.AddDate(0, 1, 0)

	usage, err := s.repo.UsageByClassType(ctx, studentID, monthStart, monthEnd)
	if err != nil {
		return nil, apperr.Infrastructure("failed to aggregate bookings", err)
	}

	total := 0
	for _, u := range usage {
		total += u.BookingCount
	}
	for i := range usage {
		usage[i].Percentage = percentage(usage[i].BookingCount, total)
	}

	remaining := plan.MonthlyClassLimit - total
	if remaining < 0 {
		remaining = 0
	}

	report := &StudentReport{
		StudentID:              studentID,
		StudentName:            plan.StudentName,
		PlanType:               plan.PlanTypeName,
		MonthlyClassLimit:      plan.MonthlyClassLimit,
		TotalClassesThisMonth:  total,
		RemainingClasses:       remaining,
		MostFrequentClassTypes: usage,
		ReportDate:             now,
	}

	metrics.RecordReport()
	s.cache.Set(ctx, studentID, report, epoch)

	return report, nil
}

func percentage(count, total int) int {
	if total == 0 {
		return 0
	}
	return int(math.Round(float64(count) / float64(total) * 100))
}
