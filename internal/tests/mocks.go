package tests

import (
	"context"
	"sync"
	"sync/atomic"
	"time"

	"lprtrack/internal/compliance"
	"lprtrack/internal/dates"
	"lprtrack/internal/domain"
	"lprtrack/internal/repository"
)

// ──────────────────────────────────────────────
// MOCK PROFILE REPOSITORY
// ──────────────────────────────────────────────

// MockProfileRepository is a mock implementation of ProfileRepository.
type MockProfileRepository struct {
	mu       sync.RWMutex
	profiles map[string]*domain.Profile

	// Counters for verification
	CreateCallCount int32
	UpdateCallCount int32
	DeleteCallCount int32

	// Error injection
	CreateError error
	UpdateError error
	DeleteError error
}

// NewMockProfileRepository creates a new mock profile repository.
func NewMockProfileRepository() *MockProfileRepository {
	return &MockProfileRepository{
		profiles: make(map[string]*domain.Profile),
	}
}

// AddProfile adds a profile to the mock repository.
func (m *MockProfileRepository) AddProfile(profile *domain.Profile) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.profiles[profile.ID] = profile
}

func (m *MockProfileRepository) Create(ctx context.Context, profile *domain.Profile) error {
	atomic.AddInt32(&m.CreateCallCount, 1)
	if m.CreateError != nil {
		return m.CreateError
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, p := range m.profiles {
		if p.Email == profile.Email {
			return repository.ErrDuplicate
		}
	}
	m.profiles[profile.ID] = profile
	return nil
}

func (m *MockProfileRepository) GetByID(ctx context.Context, id string) (*domain.Profile, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	profile, ok := m.profiles[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	// Return a copy to avoid mutation issues.
	copy := *profile
	return &copy, nil
}

func (m *MockProfileRepository) Update(ctx context.Context, profile *domain.Profile) error {
	atomic.AddInt32(&m.UpdateCallCount, 1)
	if m.UpdateError != nil {
		return m.UpdateError
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.profiles[profile.ID]; !ok {
		return repository.ErrNotFound
	}
	m.profiles[profile.ID] = profile
	return nil
}

func (m *MockProfileRepository) Delete(ctx context.Context, id string) error {
	atomic.AddInt32(&m.DeleteCallCount, 1)
	if m.DeleteError != nil {
		return m.DeleteError
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.profiles[id]; !ok {
		return repository.ErrNotFound
	}
	delete(m.profiles, id)
	return nil
}

// ──────────────────────────────────────────────
// MOCK TRIP REPOSITORY
// ──────────────────────────────────────────────

// MockTripRepository is a mock implementation of TripRepository.
type MockTripRepository struct {
	mu    sync.RWMutex
	trips map[string]*domain.Trip

	// Counters for verification
	CreateCallCount int32
	DeleteCallCount int32

	// Error injection
	CreateError error
	DeleteError error
}

// NewMockTripRepository creates a new mock trip repository.
func NewMockTripRepository() *MockTripRepository {
	return &MockTripRepository{
		trips: make(map[string]*domain.Trip),
	}
}

// AddTrip adds a trip to the mock repository.
func (m *MockTripRepository) AddTrip(trip *domain.Trip) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.trips[trip.ID] = trip
}

func (m *MockTripRepository) Create(ctx context.Context, trip *domain.Trip) error {
	atomic.AddInt32(&m.CreateCallCount, 1)
	if m.CreateError != nil {
		return m.CreateError
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.trips[trip.ID] = trip
	return nil
}

func (m *MockTripRepository) GetByID(ctx context.Context, id string) (*domain.Trip, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	trip, ok := m.trips[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	copy := *trip
	return &copy, nil
}

func (m *MockTripRepository) GetByProfileID(ctx context.Context, profileID string) ([]*domain.Trip, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	var result []*domain.Trip
	for _, trip := range m.trips {
		if trip.ProfileID == profileID {
			copy := *trip
			result = append(result, &copy)
		}
	}
	// Repository contract: ordered by departure date.
	for i := 1; i < len(result); i++ {
		for j := i; j > 0 && result[j].DepartureDate.Before(result[j-1].DepartureDate); j-- {
			result[j], result[j-1] = result[j-1], result[j]
		}
	}
	return result, nil
}

func (m *MockTripRepository) Delete(ctx context.Context, id string) error {
	atomic.AddInt32(&m.DeleteCallCount, 1)
	if m.DeleteError != nil {
		return m.DeleteError
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.trips[id]; !ok {
		return repository.ErrNotFound
	}
	delete(m.trips, id)
	return nil
}

// CountTrips returns the number of stored trips for assertions.
func (m *MockTripRepository) CountTrips() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.trips)
}

// ──────────────────────────────────────────────
// MOCK REPORT CACHE
// ──────────────────────────────────────────────

// MockReportCache is an in-memory stand-in for the Redis report cache.
type MockReportCache struct {
	mu      sync.RWMutex
	reports map[string]*compliance.Report

	// Counters for verification
	GetCallCount        int32
	SetCallCount        int32
	InvalidateCallCount int32

	// Error injection
	GetError        error
	SetError        error
	InvalidateError error
}

// NewMockReportCache creates a new mock report cache.
func NewMockReportCache() *MockReportCache {
	return &MockReportCache{
		reports: make(map[string]*compliance.Report),
	}
}

func cacheKey(profileID string, asOf time.Time) string {
	return profileID + ":" + dates.Format(asOf)
}

func (m *MockReportCache) Get(ctx context.Context, profileID string, asOf time.Time) (*compliance.Report, error) {
	atomic.AddInt32(&m.GetCallCount, 1)
	if m.GetError != nil {
		return nil, m.GetError
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	report, ok := m.reports[cacheKey(profileID, asOf)]
	if !ok {
		return nil, nil
	}
	copy := *report
	return &copy, nil
}

func (m *MockReportCache) Set(ctx context.Context, profileID string, report *compliance.Report) error {
	atomic.AddInt32(&m.SetCallCount, 1)
	if m.SetError != nil {
		return m.SetError
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.reports[cacheKey(profileID, report.AsOf)] = report
	return nil
}

func (m *MockReportCache) InvalidateProfile(ctx context.Context, profileID string) error {
	atomic.AddInt32(&m.InvalidateCallCount, 1)
	if m.InvalidateError != nil {
		return m.InvalidateError
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	prefix := profileID + ":"
	for key := range m.reports {
		if len(key) >= len(prefix) && key[:len(prefix)] == prefix {
			delete(m.reports, key)
		}
	}
	return nil
}

// CachedReportCount returns the number of cached reports for assertions.
func (m *MockReportCache) CachedReportCount() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.reports)
}
