package repository

import (
	"context"
	"sync"

	"github.com/mergington/activity-registry/internal/domain"
)

// MemoryActivityRepository is an in-memory implementation of
// ActivityRepository. The whole catalog sits behind a single RWMutex:
// activities are never added or removed after construction, so a
// registry-wide lock is enough to keep roster mutations atomic under
// concurrent requests.
//
// MaxParticipants is advisory metadata only. AddParticipant deliberately
// does not check the roster against it.
type MemoryActivityRepository struct {
	mu         sync.RWMutex
	activities map[string]*domain.Activity
}

// NewMemoryActivityRepository creates a repository seeded with the given
// catalog. Passing nil seeds the default school catalog.
func NewMemoryActivityRepository(seed map[string]*domain.Activity) *MemoryActivityRepository {
	if seed == nil {
		seed = domain.DefaultCatalog()
	}

	activities := make(map[string]*domain.Activity, len(seed))
	for name, activity := range seed {
		activities[name] = activity.Clone()
	}

	return &MemoryActivityRepository{activities: activities}
}

// List retrieves a deep-copied snapshot of the full catalog
func (r *MemoryActivityRepository) List(ctx context.Context) (map[string]*domain.Activity, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	snapshot := make(map[string]*domain.Activity, len(r.activities))
	for name, activity := range r.activities {
		snapshot[name] = activity.Clone()
	}
	return snapshot, nil
}

// Get retrieves a deep-copied snapshot of one activity
func (r *MemoryActivityRepository) Get(ctx context.Context, name string) (*domain.Activity, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	activity, exists := r.activities[name]
	if !exists {
		return nil, ErrActivityNotFound
	}
	return activity.Clone(), nil
}

// AddParticipant appends email to the activity's roster. All validation
// happens before any mutation, so a failed call leaves state untouched.
func (r *MemoryActivityRepository) AddParticipant(ctx context.Context, name, email string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	activity, exists := r.activities[name]
	if !exists {
		return ErrActivityNotFound
	}
	if activity.HasParticipant(email) {
		return ErrAlreadyRegistered
	}

	activity.Participants = append(activity.Participants, email)
	return nil
}

// RemoveParticipant removes exactly one occurrence of email from the
// activity's roster, preserving the order of the remaining entries.
func (r *MemoryActivityRepository) RemoveParticipant(ctx context.Context, name, email string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	activity, exists := r.activities[name]
	if !exists {
		return ErrActivityNotFound
	}

	for i, p := range activity.Participants {
		if p == email {
			activity.Participants = append(activity.Participants[:i], activity.Participants[i+1:]...)
			return nil
		}
	}
	return ErrNotRegistered
}
