package redis

import (
	"context"
	"time"

	"lprtrack/internal/compliance"
)

// ReportCacheInterface defines the interface for compliance report caching.
type ReportCacheInterface interface {
	Get(ctx context.Context, profileID string, asOf time.Time) (*compliance.Report, error)
	Set(ctx context.Context, profileID string, report *compliance.Report) error
	InvalidateProfile(ctx context.Context, profileID string) error
}

// Ensure concrete types implement interfaces.
var _ ReportCacheInterface = (*ReportCache)(nil)
