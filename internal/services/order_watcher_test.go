package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"tradux-portal/internal/domain"
	"tradux-portal/internal/mocks"
)

func collectUpdates(t *testing.T, updates <-chan OrderUpdate, timeout time.Duration) []OrderUpdate {
	t.Helper()
	var out []OrderUpdate
	deadline := time.After(timeout)
	for {
		select {
		case u, ok := <-updates:
			if !ok {
				return out
			}
			out = append(out, u)
		case <-deadline:
			t.Fatalf("watcher did not finish within %v (got %d updates)", timeout, len(out))
		}
	}
}

func TestWatchSettledOrderEmitsOnceAndStops(t *testing.T) {
	results := &domain.TranslationResults{OrderID: "ord-1", ProofreadText: "done"}
	repo := new(mocks.MockBackendRepository)
	repo.On("GetOrder", mock.Anything, "ord-1").Return(testOrder("ord-1", domain.StatusPMReview), nil).Once()
	repo.On("GetTranslationResults", mock.Anything, "ord-1").Return(results, nil).Once()

	w := NewOrderWatcher(repo, time.Millisecond, zap.NewNop())
	updates := collectUpdates(t, w.Watch(context.Background(), "ord-1"), 2*time.Second)

	require.Len(t, updates, 1)
	assert.True(t, updates[0].Final)
	assert.Equal(t, domain.StatusPMReview, updates[0].Order.TranslationStatus)
	assert.Equal(t, results, updates[0].Results)
	repo.AssertNumberOfCalls(t, "GetOrder", 1)
}

func TestWatchPollsUntilOrderSettles(t *testing.T) {
	repo := new(mocks.MockBackendRepository)
	repo.On("GetOrder", mock.Anything, "ord-1").Return(testOrder("ord-1", domain.StatusTranslating), nil).Once()
	repo.On("GetOrder", mock.Anything, "ord-1").Return(testOrder("ord-1", domain.StatusProofreading), nil).Once()
	repo.On("GetOrder", mock.Anything, "ord-1").Return(testOrder("ord-1", domain.StatusPMReview), nil).Once()
	repo.On("GetTranslationResults", mock.Anything, "ord-1").
		Return(&domain.TranslationResults{OrderID: "ord-1"}, nil).Once()

	w := NewOrderWatcher(repo, 5*time.Millisecond, zap.NewNop())
	updates := collectUpdates(t, w.Watch(context.Background(), "ord-1"), 2*time.Second)

	require.Len(t, updates, 3)
	assert.Equal(t, domain.StatusTranslating, updates[0].Order.TranslationStatus)
	assert.False(t, updates[0].Final)
	assert.Equal(t, domain.StatusProofreading, updates[1].Order.TranslationStatus)
	assert.False(t, updates[1].Final)
	assert.Equal(t, domain.StatusPMReview, updates[2].Order.TranslationStatus)
	assert.True(t, updates[2].Final)
	assert.NotNil(t, updates[2].Results)
	repo.AssertExpectations(t)
}

func TestWatchStopsWithoutResultsOutsidePipeline(t *testing.T) {
	repo := new(mocks.MockBackendRepository)
	repo.On("GetOrder", mock.Anything, "ord-1").Return(testOrder("ord-1", domain.StatusFinal), nil).Once()

	w := NewOrderWatcher(repo, time.Millisecond, zap.NewNop())
	updates := collectUpdates(t, w.Watch(context.Background(), "ord-1"), 2*time.Second)

	require.Len(t, updates, 1)
	assert.True(t, updates[0].Final)
	assert.Nil(t, updates[0].Results)
	repo.AssertNotCalled(t, "GetTranslationResults", mock.Anything, mock.Anything)
}

func TestWatchSurvivesPollErrors(t *testing.T) {
	repo := new(mocks.MockBackendRepository)
	repo.On("GetOrder", mock.Anything, "ord-1").Return(testOrder("ord-1", domain.StatusTranslating), nil).Once()
	repo.On("GetOrder", mock.Anything, "ord-1").Return(nil, errors.New("connection refused")).Once()
	repo.On("GetOrder", mock.Anything, "ord-1").Return(testOrder("ord-1", domain.StatusPMReview), nil).Once()
	repo.On("GetTranslationResults", mock.Anything, "ord-1").
		Return(&domain.TranslationResults{OrderID: "ord-1"}, nil).Once()

	w := NewOrderWatcher(repo, 5*time.Millisecond, zap.NewNop())
	updates := collectUpdates(t, w.Watch(context.Background(), "ord-1"), 2*time.Second)

	// The failed tick produces no update; polling keeps going.
	require.Len(t, updates, 2)
	assert.True(t, updates[1].Final)
	repo.AssertExpectations(t)
}

func TestWatchCancellationTearsDownPolling(t *testing.T) {
	repo := new(mocks.MockBackendRepository)
	repo.On("GetOrder", mock.Anything, "ord-1").Return(testOrder("ord-1", domain.StatusTranslating), nil)

	ctx, cancel := context.WithCancel(context.Background())
	w := NewOrderWatcher(repo, time.Millisecond, zap.NewNop())
	updates := w.Watch(ctx, "ord-1")

	select {
	case u := <-updates:
		assert.False(t, u.Final)
	case <-time.After(2 * time.Second):
		t.Fatal("no initial update")
	}

	cancel()

	deadline := time.After(2 * time.Second)
	for {
		select {
		case _, ok := <-updates:
			if !ok {
				return
			}
		case <-deadline:
			t.Fatal("channel not closed after cancellation")
		}
	}
}

func TestNewOrderWatcherDefaultsInterval(t *testing.T) {
	w := NewOrderWatcher(new(mocks.MockBackendRepository), 0, zap.NewNop())
	assert.Equal(t, 5*time.Second, w.Interval())
}
