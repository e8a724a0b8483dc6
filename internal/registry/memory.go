// Package registry provides the in-memory activity store.
package registry

import (
	"context"
	"slices"
	"sync"

	"example.com/activities/internal/domain"
)

// Memory holds every activity for the process lifetime. Activities are
// seeded at construction and never created or deleted afterwards; only
// their participant rosters change.
type Memory struct {
	mu         sync.RWMutex
	activities map[string]domain.Activity
}

// NewMemory builds a store seeded with the provided activities.
func NewMemory(seed []domain.Activity) *Memory {
	activities := make(map[string]domain.Activity, len(seed))
	for _, activity := range seed {
		activity.Participants = slices.Clone(activity.Participants)
		activities[activity.Name] = activity
	}
	return &Memory{activities: activities}
}

// List returns a deep copy of the registry so callers can serialize it
// without holding the lock.
func (m *Memory) List(ctx context.Context) (map[string]domain.Activity, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	out := make(map[string]domain.Activity, len(m.activities))
	for name, activity := range m.activities {
		activity.Participants = slices.Clone(activity.Participants)
		out[name] = activity
	}
	return out, nil
}

// SignUp appends email to the activity's roster. The membership check and
// the append happen under one lock acquisition so concurrent signups
// cannot duplicate an email.
func (m *Memory) SignUp(ctx context.Context, name, email string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	activity, ok := m.activities[name]
	if !ok {
		return domain.ErrActivityNotFound
	}
	if slices.Contains(activity.Participants, email) {
		return domain.ErrAlreadyRegistered
	}

	activity.Participants = append(activity.Participants, email)
	m.activities[name] = activity
	return nil
}

// Unregister removes email from the activity's roster.
func (m *Memory) Unregister(ctx context.Context, name, email string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	activity, ok := m.activities[name]
	if !ok {
		return domain.ErrActivityNotFound
	}

	idx := slices.Index(activity.Participants, email)
	if idx < 0 {
		return domain.ErrNotRegistered
	}

	activity.Participants = slices.Delete(activity.Participants, idx, idx+1)
	m.activities[name] = activity
	return nil
}
