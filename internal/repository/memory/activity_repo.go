package memory

import (
	"context"
	"sync"

	"schoolactivities/internal/domain"
)

// ActivityRepository is an in-memory implementation of domain.ActivityRepository.
// A single RWMutex guards every read-modify-write; contention is tiny (a school's
// worth of activities), so a coarse lock is enough.
type ActivityRepository struct {
	mu         sync.RWMutex
	activities map[string]*domain.Activity
}

// NewActivityRepository creates a registry populated from seed. The seed is
// deep-copied so callers can reuse or mutate their copy freely.
func NewActivityRepository(seed map[string]*domain.Activity) *ActivityRepository {
	activities := make(map[string]*domain.Activity, len(seed))
	for name, a := range seed {
		activities[name] = copyActivity(a)
	}
	return &ActivityRepository{activities: activities}
}

// copyActivity returns a deep copy, including the participants slice.
func copyActivity(a *domain.Activity) *domain.Activity {
	participants := make([]string, len(a.Participants))
	copy(participants, a.Participants)
	return &domain.Activity{
		Description:     a.Description,
		Schedule:        a.Schedule,
		MaxParticipants: a.MaxParticipants,
		Participants:    participants,
	}
}

// List returns a deep snapshot of the registry keyed by activity name.
func (r *ActivityRepository) List(ctx context.Context) (map[string]*domain.Activity, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	snapshot := make(map[string]*domain.Activity, len(r.activities))
	for name, a := range r.activities {
		snapshot[name] = copyActivity(a)
	}
	return snapshot, nil
}

// Get returns a deep snapshot of one activity, or domain.ErrActivityNotFound.
func (r *ActivityRepository) Get(ctx context.Context, name string) (*domain.Activity, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	a, ok := r.activities[name]
	if !ok {
		return nil, domain.ErrActivityNotFound
	}
	return copyActivity(a), nil
}

// AddParticipant appends email to the activity's participant list, preserving
// insertion order. Capacity (max_participants) is intentionally not enforced;
// it is display-only.
func (r *ActivityRepository) AddParticipant(ctx context.Context, name, email string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	a, ok := r.activities[name]
	if !ok {
		return domain.ErrActivityNotFound
	}
	for _, p := range a.Participants {
		if p == email {
			return domain.ErrAlreadySignedUp
		}
	}
	a.Participants = append(a.Participants, email)
	return nil
}

// RemoveParticipant removes email from the activity's participant list.
func (r *ActivityRepository) RemoveParticipant(ctx context.Context, name, email string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	a, ok := r.activities[name]
	if !ok {
		return domain.ErrActivityNotFound
	}
	for i, p := range a.Participants {
		if p == email {
			a.Participants = append(a.Participants[:i], a.Participants[i+1:]...)
			return nil
		}
	}
	return domain.ErrNotSignedUp
}
