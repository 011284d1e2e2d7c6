package report

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/SchmidtMatheus/gym-simulator-web/internal/logger"
	"github.com/SchmidtMatheus/gym-simulator-web/internal/metrics"
)

// Cache keeps computed reports in redis for a short TTL. Every report entry is
// keyed to a per-student epoch that booking mutations bump; a report computed
// before a mutation can only be written under the pre-mutation epoch, which no
// reader consults anymore, so a served report always reflects the state after
// the last mutation. A nil client disables caching entirely.
type Cache struct {
	client *redis.Client
	ttl    time.Duration
}

func NewCache(client *redis.Client, ttl time.Duration) *Cache {
	return &Cache{client: client, ttl: ttl}
}

func epochKey(studentID string) string {
	return "report:student:" + studentID + ":epoch"
}

func dataKey(studentID string, epoch int64) string {
	return fmt.Sprintf("report:student:%s:%d", studentID, epoch)
}

// Get returns the cached report plus the epoch it observed. Callers must hand
// that epoch back to Set: a Set raced by an Invalidate lands under the old
// epoch and is never read.
func (c *Cache) Get(ctx context.Context, studentID string) (*StudentReport, int64, bool) {
	if c == nil || c.client == nil {
		return nil, 0, false
	}

	epoch, err := c.client.Get(ctx, epochKey(studentID)).Int64()
	if err != nil {
		if err != redis.Nil {
			logger.WithError(err).Debug("report cache epoch read failed")
			metrics.RecordReportCache("miss")
			return nil, 0, false
		}
		epoch = 0
	}

	data, err := c.client.Get(ctx, dataKey(studentID, epoch)).Bytes()
	if err != nil {
		if err != redis.Nil {
			logger.WithError(err).Debug("report cache read failed")
		}
		metrics.RecordReportCache("miss")
		return nil, epoch, false
	}

	var report StudentReport
	if err := json.Unmarshal(data, &report); err != nil {
		metrics.RecordReportCache("miss")
		return nil, epoch, false
	}

	metrics.RecordReportCache("hit")
	return &report, epoch, true
}

func (c *Cache) Set(ctx context.Context, studentID string, report *StudentReport, epoch int64) {
	if c == nil || c.client == nil {
		return
	}

	data, err := json.Marshal(report)
	if err != nil {
		return
	}

	if err := c.client.Set(ctx, dataKey(studentID, epoch), data, c.ttl).Err(); err != nil {
		logger.WithError(err).Debug("report cache write failed")
	}
}

// Invalidate implements booking.ReportInvalidator. Bumping the epoch makes
// every existing entry for the student unreachable, including one still being
// written by an in-flight report computation. The epoch key carries no TTL so
// it can never roll back to a value an expired entry was stored under.
func (c *Cache) Invalidate(ctx context.Context, studentID string) {
	if c == nil || c.client == nil {
		return
	}

	if err := c.client.Incr(ctx, epochKey(studentID)).Err(); err != nil {
		logger.WithError(err).Debug("report cache invalidation failed")
	}
}
