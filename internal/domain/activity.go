package domain

import (
	"context"
	"errors"
)

// Sentinel errors for activity signup operations. All three are client-input
// errors: the registry is never left in an inconsistent state when one is returned.
var (
	ErrActivityNotFound = errors.New("activity not found")
	ErrAlreadySignedUp  = errors.New("student is already signed up")
	ErrNotSignedUp      = errors.New("student is not signed up for this activity")
)

// Activity represents an extracurricular activity students can sign up for.
// Activities are keyed by name in the registry, so the name is not repeated here.
// swagger:model Activity
type Activity struct {
	Description     string   `json:"description"`
	Schedule        string   `json:"schedule"`
	MaxParticipants int      `json:"max_participants"`
	Participants    []string `json:"participants"`
}

// NewActivity returns a new Activity with the given fields. The participants
// slice is used as-is; callers own it afterwards.
func NewActivity(description, schedule string, maxParticipants int, participants []string) *Activity {
	return &Activity{
		Description:     description,
		Schedule:        schedule,
		MaxParticipants: maxParticipants,
		Participants:    participants,
	}
}

// ActivityRepository defines storage operations for the activity registry.
// Participant order is insertion order and must be preserved.
type ActivityRepository interface {
	// List returns a snapshot of every activity keyed by name. Mutating the
	// returned map or activities must not affect the registry.
	List(ctx context.Context) (map[string]*Activity, error)
	// Get returns a snapshot of one activity. Returns ErrActivityNotFound
	// when the name is not registered.
	Get(ctx context.Context, name string) (*Activity, error)
	// AddParticipant adds email to the activity's participant list. Returns
	// ErrActivityNotFound or ErrAlreadySignedUp; on error nothing is mutated.
	AddParticipant(ctx context.Context, name, email string) error
	// RemoveParticipant removes email from the activity's participant list.
	// Returns ErrActivityNotFound or ErrNotSignedUp; on error nothing is mutated.
	RemoveParticipant(ctx context.Context, name, email string) error
}

// ActivityService defines the signup operations exposed to the delivery layer.
type ActivityService interface {
	// ListActivities returns a snapshot of all activities keyed by name. Never
	// fails for client reasons.
	ListActivities(ctx context.Context) (map[string]*Activity, error)
	// Signup enrolls email in the named activity and returns a confirmation
	// message naming both.
	Signup(ctx context.Context, activityName, email string) (string, error)
	// Unregister withdraws email from the named activity and returns a
	// confirmation message naming both.
	Unregister(ctx context.Context, activityName, email string) (string, error)
}
