package services

import (
	"context"
	"errors"
	"strings"
	"testing"

	"schoolactivities/internal/domain"
)

type mockActivityRepository struct {
	activities map[string]*domain.Activity
	addErr     error
	removeErr  error
	listErr    error
}

func (m *mockActivityRepository) List(ctx context.Context) (map[string]*domain.Activity, error) {
	if m.listErr != nil {
		return nil, m.listErr
	}
	return m.activities, nil
}

func (m *mockActivityRepository) Get(ctx context.Context, name string) (*domain.Activity, error) {
	a, ok := m.activities[name]
	if !ok {
		return nil, domain.ErrActivityNotFound
	}
	return a, nil
}

func (m *mockActivityRepository) AddParticipant(ctx context.Context, name, email string) error {
	return m.addErr
}

func (m *mockActivityRepository) RemoveParticipant(ctx context.Context, name, email string) error {
	return m.removeErr
}

func TestActivityService_Signup_Success(t *testing.T) {
	repo := &mockActivityRepository{}
	svc := NewActivityService(repo)

	msg, err := svc.Signup(context.Background(), "Chess Club", "test@mergington.edu")
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if !strings.Contains(msg, "test@mergington.edu") {
		t.Errorf("confirmation should name the participant, got %q", msg)
	}
	if !strings.Contains(msg, "Chess Club") {
		t.Errorf("confirmation should name the activity, got %q", msg)
	}
}

func TestActivityService_Signup_ActivityNotFound(t *testing.T) {
	repo := &mockActivityRepository{addErr: domain.ErrActivityNotFound}
	svc := NewActivityService(repo)

	_, err := svc.Signup(context.Background(), "Nonexistent Activity", "test@mergington.edu")
	if !errors.Is(err, domain.ErrActivityNotFound) {
		t.Fatalf("expected ErrActivityNotFound, got %v", err)
	}
}

func TestActivityService_Signup_AlreadySignedUp(t *testing.T) {
	repo := &mockActivityRepository{addErr: domain.ErrAlreadySignedUp}
	svc := NewActivityService(repo)

	_, err := svc.Signup(context.Background(), "Chess Club", "test@mergington.edu")
	if !errors.Is(err, domain.ErrAlreadySignedUp) {
		t.Fatalf("expected ErrAlreadySignedUp, got %v", err)
	}
}

func TestActivityService_Signup_RepositoryError(t *testing.T) {
	repo := &mockActivityRepository{addErr: errors.New("boom")}
	svc := NewActivityService(repo)

	_, err := svc.Signup(context.Background(), "Chess Club", "test@mergington.edu")
	if err == nil {
		t.Fatal("expected error")
	}
	if errors.Is(err, domain.ErrActivityNotFound) || errors.Is(err, domain.ErrAlreadySignedUp) {
		t.Fatalf("unexpected sentinel error: %v", err)
	}
}

func TestActivityService_Unregister_Success(t *testing.T) {
	repo := &mockActivityRepository{}
	svc := NewActivityService(repo)

	msg, err := svc.Unregister(context.Background(), "Math Club", "james@mergington.edu")
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if !strings.Contains(msg, "james@mergington.edu") || !strings.Contains(msg, "Math Club") {
		t.Errorf("confirmation should name participant and activity, got %q", msg)
	}
}

func TestActivityService_Unregister_ActivityNotFound(t *testing.T) {
	repo := &mockActivityRepository{removeErr: domain.ErrActivityNotFound}
	svc := NewActivityService(repo)

	_, err := svc.Unregister(context.Background(), "Nonexistent Activity", "test@mergington.edu")
	if !errors.Is(err, domain.ErrActivityNotFound) {
		t.Fatalf("expected ErrActivityNotFound, got %v", err)
	}
}

func TestActivityService_Unregister_NotSignedUp(t *testing.T) {
	repo := &mockActivityRepository{removeErr: domain.ErrNotSignedUp}
	svc := NewActivityService(repo)

	_, err := svc.Unregister(context.Background(), "Math Club", "stranger@mergington.edu")
	if !errors.Is(err, domain.ErrNotSignedUp) {
		t.Fatalf("expected ErrNotSignedUp, got %v", err)
	}
}

func TestActivityService_ListActivities(t *testing.T) {
	repo := &mockActivityRepository{
		activities: map[string]*domain.Activity{
			"Chess Club": domain.NewActivity("Learn chess", "Fridays", 12, []string{"a@mergington.edu"}),
		},
	}
	svc := NewActivityService(repo)

	activities, err := svc.ListActivities(context.Background())
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if len(activities) != 1 {
		t.Fatalf("expected 1 activity, got %d", len(activities))
	}
	if _, ok := activities["Chess Club"]; !ok {
		t.Error("expected Chess Club in result")
	}
}

func TestActivityService_ListActivities_NilBecomesEmpty(t *testing.T) {
	repo := &mockActivityRepository{}
	svc := NewActivityService(repo)

	activities, err := svc.ListActivities(context.Background())
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if activities == nil {
		t.Fatal("expected non-nil map")
	}
}

func TestActivityService_ListActivities_Error(t *testing.T) {
	repo := &mockActivityRepository{listErr: errors.New("boom")}
	svc := NewActivityService(repo)

	_, err := svc.ListActivities(context.Background())
	if err == nil {
		t.Fatal("expected error")
	}
}
