// Package domain defines the business logic for the activities service.
package domain

import (
	"context"
	"errors"
)

var (
	// ErrActivityNotFound is returned when an activity name is absent from the registry.
	ErrActivityNotFound = errors.New("activity not found")
	// ErrAlreadyRegistered indicates the email is already on the activity's roster.
	ErrAlreadyRegistered = errors.New("student is already signed up")
	// ErrNotRegistered indicates the email is not on the activity's roster.
	ErrNotRegistered = errors.New("student is not registered for this activity")
)

// Activity is a named extracurricular offering with a participant roster.
// Participants keeps signup order and never contains a duplicate email.
type Activity struct {
	Name            string
	Description     string
	Schedule        string
	MaxParticipants int
	Participants    []string
}

// Registry captures the operations the in-memory activity store supports.
// Implementations must apply each mutation atomically so the roster
// uniqueness invariant holds under concurrent requests.
type Registry interface {
	List(ctx context.Context) (map[string]Activity, error)
	SignUp(ctx context.Context, activity, email string) error
	Unregister(ctx context.Context, activity, email string) error
}
