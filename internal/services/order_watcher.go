package services

import (
	"context"
	"time"

	"go.uber.org/zap"

	"tradux-portal/internal/domain"
	"tradux-portal/internal/repositories"
)

// OrderUpdate is one observed state of a watched order. Final marks the last
// update of the stream: the order left the transient phase and polling has
// been disarmed.
type OrderUpdate struct {
	Order      *domain.Order              `json:"order"`
	Descriptor domain.Descriptor          `json:"descriptor"`
	Results    *domain.TranslationResults `json:"results,omitempty"`
	Final      bool                       `json:"final"`
}

// OrderWatcher owns the polling lifecycle. Each Watch call runs a private
// tick loop bound to its context; cancelling the context (client disconnect,
// selection change) tears the loop down, so no timer ever outlives its view
// and streams for different orders never mix.
type OrderWatcher struct {
	repo     repositories.BackendRepositoryInterface
	interval time.Duration
	logger   *zap.Logger
}

func NewOrderWatcher(repo repositories.BackendRepositoryInterface, interval time.Duration, logger *zap.Logger) *OrderWatcher {
	if interval <= 0 {
		interval = 5 * time.Second
	}
	return &OrderWatcher{repo: repo, interval: interval, logger: logger}
}

func (w *OrderWatcher) Interval() time.Duration { return w.interval }

// Watch emits the order's state immediately and then on every poll tick while
// the status stays transient. The channel is closed after the final update or
// once ctx is cancelled.
func (w *OrderWatcher) Watch(ctx context.Context, orderID string) <-chan OrderUpdate {
	updates := make(chan OrderUpdate, 1)
	go w.run(ctx, orderID, updates)
	return updates
}

func (w *OrderWatcher) run(ctx context.Context, orderID string, updates chan<- OrderUpdate) {
	defer close(updates)

	send := func(u OrderUpdate) bool {
		select {
		case updates <- u:
			return true
		case <-ctx.Done():
			return false
		}
	}

	order, err := w.repo.GetOrder(ctx, orderID)
	if err != nil {
		w.logger.Warn("watch: initial fetch failed", zap.String("order_id", orderID), zap.Error(err))
		return
	}
	if done := w.emit(ctx, order, send); done {
		return
	}

	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			order, err := w.repo.GetOrder(ctx, orderID)
			if err != nil {
				// Transient transport failure: keep the timer armed and retry
				// on the next tick.
				w.logger.Warn("watch: poll fetch failed", zap.String("order_id", orderID), zap.Error(err))
				continue
			}
			if done := w.emit(ctx, order, send); done {
				return
			}
		}
	}
}

// emit sends one update; when the order is no longer transient it attaches
// the one-time results fetch (for pipeline statuses) and signals the stream
// end. Returns true when polling must stop.
func (w *OrderWatcher) emit(ctx context.Context, order *domain.Order, send func(OrderUpdate) bool) bool {
	status := order.TranslationStatus
	update := OrderUpdate{
		Order:      order,
		Descriptor: order.Descriptor(),
	}

	if status.Transient() {
		send(update)
		return false
	}

	update.Final = true
	if status.InPipeline() {
		results, err := w.repo.GetTranslationResults(ctx, order.ID)
		if err != nil {
			w.logger.Warn("watch: results fetch failed", zap.String("order_id", order.ID), zap.Error(err))
		} else {
			update.Results = results
		}
	}
	send(update)
	return true
}
