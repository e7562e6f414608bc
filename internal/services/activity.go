package services

import (
	"context"
	"errors"
	"fmt"

	"schoolactivities/internal/domain"
)

type activityService struct {
	repo domain.ActivityRepository
}

// NewActivityService creates an ActivityService backed by the given repository.
func NewActivityService(repo domain.ActivityRepository) domain.ActivityService {
	return &activityService{repo: repo}
}

func (s *activityService) ListActivities(ctx context.Context) (map[string]*domain.Activity, error) {
	activities, err := s.repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list activities: %w", err)
	}
	if activities == nil {
		activities = map[string]*domain.Activity{}
	}
	return activities, nil
}

func (s *activityService) Signup(ctx context.Context, activityName, email string) (string, error) {
	if err := s.repo.AddParticipant(ctx, activityName, email); err != nil {
		if errors.Is(err, domain.ErrActivityNotFound) || errors.Is(err, domain.ErrAlreadySignedUp) {
			return "", err
		}
		return "", fmt.Errorf("add participant: %w", err)
	}
	return fmt.Sprintf("Signed up %s for %s", email, activityName), nil
}

func (s *activityService) Unregister(ctx context.Context, activityName, email string) (string, error) {
	if err := s.repo.RemoveParticipant(ctx, activityName, email); err != nil {
		if errors.Is(err, domain.ErrActivityNotFound) || errors.Is(err, domain.ErrNotSignedUp) {
			return "", err
		}
		return "", fmt.Errorf("remove participant: %w", err)
	}
	return fmt.Sprintf("Unregistered %s from %s", email, activityName), nil
}
