package redis

import (
	"context"
	"fmt"
	"time"

	"github.com/goccy/go-json"
	"github.com/redis/go-redis/v9"

	"lprtrack/internal/compliance"
	"lprtrack/internal/dates"
)

// ReportCache handles compliance report caching in Redis.
type ReportCache struct {
	client *redis.Client
}

// NewReportCache creates a new ReportCache.
func NewReportCache(client *redis.Client) *ReportCache {
	return &ReportCache{client: client}
}

// ReportCacheTTL bounds how stale a cached report can be. Reports are
// deterministic for a given profile, travel history, and as-of date, so
// the TTL only has to outlive bursts of reads between mutations.
const ReportCacheTTL = 5 * time.Minute

const reportCachePrefix = "cache:report:"

func reportKey(profileID string, asOf time.Time) string {
	return fmt.Sprintf("%s%s:%s", reportCachePrefix, profileID, dates.Format(asOf))
}

// Get retrieves a cached report for a profile and as-of date.
// Returns nil on a cache miss.
func (c *ReportCache) Get(ctx context.Context, profileID string, asOf time.Time) (*compliance.Report, error) {
	data, err := c.client.Get(ctx, reportKey(profileID, asOf)).Bytes()
	if err != nil {
		if err == redis.Nil {
			return nil, nil
		}
		return nil, err
	}

	var report compliance.Report
	if err := json.Unmarshal(data, &report); err != nil {
		return nil, err
	}
	return &report, nil
}

// Set stores a report keyed by profile and the report's as-of date.
func (c *ReportCache) Set(ctx context.Context, profileID string, report *compliance.Report) error {
	data, err := json.Marshal(report)
	if err != nil {
		return err
	}
	return c.client.Set(ctx, reportKey(profileID, report.AsOf), data, ReportCacheTTL).Err()
}

// InvalidateProfile drops every cached report for a profile, across all
// as-of dates. Called on any trip or profile mutation.
func (c *ReportCache) InvalidateProfile(ctx context.Context, profileID string) error {
	pattern := reportCachePrefix + profileID + ":*"

	iter := c.client.Scan(ctx, 0, pattern, 0).Iterator()
	var keys []string
	for iter.Next(ctx) {
		keys = append(keys, iter.Val())
	}
	if err := iter.Err(); err != nil {
		return err
	}

	if len(keys) == 0 {
		return nil
	}
	return c.client.Del(ctx, keys...).Err()
}
