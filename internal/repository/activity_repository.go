package repository

import (
	"context"
	"errors"

	"github.com/mergington/activity-registry/internal/domain"
)

var (
	// ErrActivityNotFound is returned when the activity name does not match
	// any catalog entry.
	ErrActivityNotFound = errors.New("activity not found")
	// ErrAlreadyRegistered is returned when the email is already on the
	// activity's roster.
	ErrAlreadyRegistered = errors.New("participant already registered for this activity")
	// ErrNotRegistered is returned when the email is not on the activity's
	// roster.
	ErrNotRegistered = errors.New("participant not registered for this activity")
)

// ActivityRepository defines the interface for activity roster data access
type ActivityRepository interface {
	// List retrieves a snapshot of the full activity catalog
	List(ctx context.Context) (map[string]*domain.Activity, error)
	// Get retrieves a snapshot of a single activity by name
	Get(ctx context.Context, name string) (*domain.Activity, error)
	// AddParticipant appends email to the activity's roster
	AddParticipant(ctx context.Context, name, email string) error
	// RemoveParticipant removes email from the activity's roster
	RemoveParticipant(ctx context.Context, name, email string) error
}
