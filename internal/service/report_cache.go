package service

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/jfcamargo/cobros-engine/internal/domain"
)

const (
	dailyReportKeyFmt  = "report:daily:%s"
	periodReportKeyFmt = "report:period:v%d:%s:%s"
	reportVersionKey   = "report:version"
)

// ReportCache keeps report aggregates in Redis. Writes bump a version
// counter baked into the period keys, so every mutation implicitly drops
// all cached period reports without a key scan.
type ReportCache struct {
	redis *redis.Client
	ttl   time.Duration
}

func NewReportCache(client *redis.Client, ttl time.Duration) *ReportCache {
	return &ReportCache{redis: client, ttl: ttl}
}

func (c *ReportCache) GetDaily(ctx context.Context, day time.Time) (*domain.DailyReport, bool) {
	if c == nil || c.redis == nil {
		return nil, false
	}

	raw, err := c.redis.Get(ctx, c.dailyKey(day)).Result()
	if err != nil {
		return nil, false
	}

	var report domain.DailyReport
	if err := json.Unmarshal([]byte(raw), &report); err != nil {
		return nil, false
	}
	return &report, true
}

func (c *ReportCache) SetDaily(ctx context.Context, day time.Time, report *domain.DailyReport) {
	if c == nil || c.redis == nil {
		return
	}

	raw, err := json.Marshal(report)
	if err != nil {
		return
	}
	c.redis.Set(ctx, c.dailyKey(day), raw, c.ttl)
}

func (c *ReportCache) GetPeriod(ctx context.Context, from, to time.Time) (*domain.PeriodReport, bool) {
	if c == nil || c.redis == nil {
		return nil, false
	}

	raw, err := c.redis.Get(ctx, c.periodKey(ctx, from, to)).Result()
	if err != nil {
		return nil, false
	}

	var report domain.PeriodReport
	if err := json.Unmarshal([]byte(raw), &report); err != nil {
		return nil, false
	}
	return &report, true
}

func (c *ReportCache) SetPeriod(ctx context.Context, from, to time.Time, report *domain.PeriodReport) {
	if c == nil || c.redis == nil {
		return
	}

	raw, err := json.Marshal(report)
	if err != nil {
		return
	}
	c.redis.Set(ctx, c.periodKey(ctx, from, to), raw, c.ttl)
}

// Invalidate drops the cached report for the day a write landed on and
// bumps the period version. Called after every payment, transfer, loan or
// expense mutation.
func (c *ReportCache) Invalidate(ctx context.Context, day time.Time) {
	if c == nil || c.redis == nil {
		return
	}

	c.redis.Del(ctx, c.dailyKey(day))
	c.redis.Incr(ctx, reportVersionKey)
}

func (c *ReportCache) dailyKey(day time.Time) string {
	return fmt.Sprintf(dailyReportKeyFmt, day.Format("2006-01-02"))
}

func (c *ReportCache) periodKey(ctx context.Context, from, to time.Time) string {
	version, _ := c.redis.Get(ctx, reportVersionKey).Int64()
	return fmt.Sprintf(periodReportKeyFmt, version, from.Format("2006-01-02"), to.Format("2006-01-02"))
}
