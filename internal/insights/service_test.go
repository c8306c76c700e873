package insights

import (
	"context"
	"errors"
	"testing"

	"monad-feedback/internal/feedback"
	"monad-feedback/internal/kafka"
)

// fakeRepo нужен для «подмены» InsightsRepo в тестах.
type fakeRepo struct {
	called       bool
	lastCategory string
	returnErr    error
}

func (f *fakeRepo) IncrementCategory(ctx context.Context, category string) error {
	f.called = true
	f.lastCategory = category
	return f.returnErr
}

func (f *fakeRepo) TopCategories(ctx context.Context, limit int) ([]CategoryCount, error) {
	// не требуется для тестирования ProcessEvent
	return nil, nil
}

func TestService_ProcessEvent_Submission(t *testing.T) {
	repo := &fakeRepo{}
	service := NewService(repo, zapTestLogger(t))

	evt := kafka.Event{
		Type:     kafka.EventTypeSubmission,
		Category: feedback.CategoryApps,
	}

	if err := service.ProcessEvent(context.Background(), evt); err != nil {
		t.Errorf("expected no error, got %v", err)
	}
	if !repo.called {
		t.Errorf("expected repo.IncrementCategory to be called")
	}
	if repo.lastCategory != feedback.CategoryApps {
		t.Errorf("expected category %q, got %q", feedback.CategoryApps, repo.lastCategory)
	}
}

func TestService_ProcessEvent_MigrationIgnored(t *testing.T) {
	repo := &fakeRepo{}
	service := NewService(repo, zapTestLogger(t))

	evt := kafka.Event{Type: kafka.EventTypeMigration}

	if err := service.ProcessEvent(context.Background(), evt); err != nil {
		t.Errorf("expected no error for migration event, got %v", err)
	}
	if repo.called {
		t.Errorf("expected repo.IncrementCategory NOT to be called for migration event")
	}
}

func TestService_ProcessEvent_UnknownCategoryIgnored(t *testing.T) {
	repo := &fakeRepo{}
	service := NewService(repo, zapTestLogger(t))

	evt := kafka.Event{
		Type:     kafka.EventTypeSubmission,
		Category: "not_a_real_category",
	}

	if err := service.ProcessEvent(context.Background(), evt); err != nil {
		t.Errorf("expected no error for unknown category, got %v", err)
	}
	if repo.called {
		t.Errorf("expected repo.IncrementCategory NOT to be called for unknown category")
	}
}

func TestService_ProcessEvent_RepoError(t *testing.T) {
	repo := &fakeRepo{returnErr: errors.New("db down")}
	service := NewService(repo, zapTestLogger(t))

	evt := kafka.Event{
		Type:     kafka.EventTypeSubmission,
		Category: feedback.CategoryOther,
	}

	if err := service.ProcessEvent(context.Background(), evt); err == nil {
		t.Errorf("expected error from repo to propagate")
	}
}
