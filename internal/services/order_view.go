package services

import (
	"context"
	"net/http"
	"strings"
	"sync"

	"go.uber.org/zap"

	"tradux-portal/internal/domain"
	"tradux-portal/internal/repositories"
	apperrors "tradux-portal/pkg/errors"
)

// ActionParams carries the optional inputs an action may need.
type ActionParams struct {
	Instructions string
	Notes        string
	Token        string
	File         *repositories.UploadFile
}

// OrderViewState is a snapshot of the view for rendering.
type OrderViewState struct {
	Order         *domain.Order
	Descriptor    domain.Descriptor
	PendingAction domain.Action
	Results       *domain.TranslationResults
	PipelineError string
}

// OrderView is the detail-view state machine for one selected order.
//
// Invariants it enforces:
//   - at most one mutating action in flight; re-entrant dispatches are
//     rejected before any network call;
//   - illegal actions for the current status never reach the backend;
//   - the backend is authoritative: local status is only ever replaced by a
//     freshly fetched order, never patched optimistically;
//   - every applied response must carry the generation issued at selection
//     time, so responses for a deselected order are silently discarded.
type OrderView struct {
	mu     sync.Mutex
	repo   repositories.BackendRepositoryInterface
	logger *zap.Logger

	orderID        string
	generation     uint64
	order          *domain.Order
	results        *domain.TranslationResults
	resultsFetched bool
	pending        domain.Action
}

func NewOrderView(repo repositories.BackendRepositoryInterface, logger *zap.Logger) *OrderView {
	return &OrderView{repo: repo, logger: logger}
}

// Select switches the view to the given order. Switching bumps the generation
// first, so any response still in flight for the previous selection is
// discarded, then loads the fresh order. Re-selecting the current order is a
// plain refresh: the generation, fetched results and a pending action are all
// preserved, so a detail reload can never erase the in-flight guard.
func (v *OrderView) Select(ctx context.Context, id string) (uint64, error) {
	v.mu.Lock()
	if id != v.orderID {
		v.generation++
		v.orderID = id
		v.order = nil
		v.results = nil
		v.resultsFetched = false
		v.pending = ""
	}
	gen := v.generation
	v.mu.Unlock()

	order, err := v.repo.GetOrder(ctx, id)
	if err != nil {
		return gen, err
	}
	v.Apply(ctx, gen, order)
	return gen, nil
}

func (v *OrderView) Generation() uint64 {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.generation
}

// Apply installs a fetched order if it still belongs to the current
// selection; stale or cross-order responses are dropped. When the order has
// settled past the AI pipeline it also triggers the one-time results fetch.
func (v *OrderView) Apply(ctx context.Context, gen uint64, order *domain.Order) bool {
	v.mu.Lock()
	if order == nil || gen != v.generation || order.ID != v.orderID {
		v.mu.Unlock()
		return false
	}
	v.order = order
	v.mu.Unlock()

	v.maybeFetchResults(ctx, gen)
	return true
}

// maybeFetchResults performs the single results fetch once the order has left
// the transient phase into the review path.
func (v *OrderView) maybeFetchResults(ctx context.Context, gen uint64) {
	v.mu.Lock()
	if gen != v.generation || v.order == nil || v.resultsFetched {
		v.mu.Unlock()
		return
	}
	status := v.order.TranslationStatus
	if status.Transient() || !status.InPipeline() {
		v.mu.Unlock()
		return
	}
	v.resultsFetched = true
	id := v.orderID
	v.mu.Unlock()

	results, err := v.repo.GetTranslationResults(ctx, id)
	if err != nil {
		v.logger.Warn("results fetch failed", zap.String("order_id", id), zap.Error(err))
		v.mu.Lock()
		if gen == v.generation {
			v.resultsFetched = false
		}
		v.mu.Unlock()
		return
	}

	v.mu.Lock()
	if gen == v.generation {
		v.results = results
	}
	v.mu.Unlock()
}

// Dispatch validates and executes one action. Validation failures return
// before any network call. On success the local order is replaced with the
// server's fresh representation.
func (v *OrderView) Dispatch(ctx context.Context, action domain.Action, p ActionParams) error {
	v.mu.Lock()
	if v.order == nil {
		v.mu.Unlock()
		return apperrors.ErrOrderNotSelected
	}
	if v.pending != "" {
		v.mu.Unlock()
		return apperrors.ErrActionInFlight
	}

	status := v.order.TranslationStatus
	if !status.Allows(action) {
		v.mu.Unlock()
		return apperrors.NewHttpError(
			http.StatusUnprocessableEntity,
			"Action \""+string(action)+"\" is not available while the order is in status \""+string(status)+"\"",
			apperrors.ErrActionNotAllowed,
			map[string]interface{}{"action": action, "status": status},
		)
	}

	switch action {
	case domain.ActionStartTranslation:
		if !v.order.HasSourceText() {
			v.mu.Unlock()
			return apperrors.NewInvalidInputError("No extracted text found in the order documents. Run OCR first.")
		}
	case domain.ActionRequestCorrection:
		if strings.TrimSpace(p.Notes) == "" {
			v.mu.Unlock()
			return apperrors.NewInvalidInputError("Correction notes are required when requesting corrections.")
		}
	case domain.ActionUploadPMTranslation:
		if p.File == nil {
			v.mu.Unlock()
			return apperrors.NewInvalidInputError("A translation file is required.")
		}
	}

	gen := v.generation
	id := v.orderID
	v.pending = action
	v.mu.Unlock()

	err := v.call(ctx, action, id, p)
	if err != nil {
		// Leave the local state untouched; the action becomes available again.
		v.clearPending(gen, action)
		return err
	}

	fresh, fetchErr := v.repo.GetOrder(ctx, id)
	if fetchErr == nil {
		v.Apply(ctx, gen, fresh)
	} else {
		v.logger.Warn("refresh after action failed",
			zap.String("order_id", id),
			zap.String("action", string(action)),
			zap.Error(fetchErr),
		)
	}
	v.clearPending(gen, action)
	return fetchErr
}

func (v *OrderView) call(ctx context.Context, action domain.Action, id string, p ActionParams) error {
	switch action {
	case domain.ActionStartTranslation:
		return v.repo.StartTranslation(ctx, id, p.Instructions)
	case domain.ActionApprovePM:
		return v.repo.ApprovePM(ctx, id, p.Notes)
	case domain.ActionMarkComplete:
		return v.repo.MarkComplete(ctx, id)
	case domain.ActionRetranslate:
		return v.repo.Retranslate(ctx, id, p.Instructions)
	case domain.ActionUploadPMTranslation:
		return v.repo.UploadPMTranslation(ctx, id, *p.File)
	case domain.ActionAcceptPMUpload:
		return v.repo.AcceptPMUpload(ctx, id)
	case domain.ActionClientApprove:
		_, err := v.repo.SubmitReview(ctx, id, p.Token, "approve", "")
		return err
	case domain.ActionRequestCorrection:
		_, err := v.repo.SubmitReview(ctx, id, p.Token, "request_correction", p.Notes)
		return err
	}
	return apperrors.NewHttpError(http.StatusBadRequest, "Unknown action \""+string(action)+"\"", apperrors.ErrBadRequest, nil)
}

func (v *OrderView) clearPending(gen uint64, action domain.Action) {
	v.mu.Lock()
	if v.generation == gen && v.pending == action {
		v.pending = ""
	}
	v.mu.Unlock()
}

// ShouldPoll reports whether the current status warrants automatic re-fetch.
func (v *OrderView) ShouldPoll() bool {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.order != nil && v.order.TranslationStatus.Transient()
}

// State returns a render snapshot.
func (v *OrderView) State() OrderViewState {
	v.mu.Lock()
	defer v.mu.Unlock()

	state := OrderViewState{
		Order:         v.order,
		PendingAction: v.pending,
		Results:       v.results,
	}
	if v.order != nil {
		state.Descriptor = v.order.Descriptor()
		if v.order.TranslationStatus == domain.StatusTranslationError {
			state.PipelineError = v.order.ErrorMessage
			if state.PipelineError == "" {
				state.PipelineError = "The translation pipeline failed. You can retry the translation."
			}
		}
	}
	return state
}
