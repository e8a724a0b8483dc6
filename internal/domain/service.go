package domain

import (
	"context"

	"example.com/activities/internal/observability"
)

// Service orchestrates activity reads and roster mutations.
type Service struct {
	registry Registry
}

// NewService constructs a Service.
func NewService(registry Registry) *Service {
	return &Service{registry: registry}
}

// ListActivities returns a snapshot of every activity keyed by name.
func (s *Service) ListActivities(ctx context.Context) (map[string]Activity, error) {
	return s.registry.List(ctx)
}

// SignUp adds email to the activity's roster.
func (s *Service) SignUp(ctx context.Context, activity, email string) error {
	if err := s.registry.SignUp(ctx, activity, email); err != nil {
		return err
	}
	observability.RecordSignup(activity)
	return nil
}

// Unregister removes email from the activity's roster.
func (s *Service) Unregister(ctx context.Context, activity, email string) error {
	if err := s.registry.Unregister(ctx, activity, email); err != nil {
		return err
	}
	observability.RecordUnregister(activity)
	return nil
}
