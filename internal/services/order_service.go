package services

import (
	"context"
	"net/http"
	"sync"

	"go.uber.org/zap"

	"tradux-portal/internal/domain"
	"tradux-portal/internal/dto"
	"tradux-portal/internal/repositories"
	apperrors "tradux-portal/pkg/errors"
)

type OrderServiceInterface interface {
	ListOrders(ctx context.Context, status string, limit, skip int) ([]dto.OrderListItemDTO, uint64, error)
	ListOrdersRaw(ctx context.Context, status string, limit, skip int) ([]domain.Order, uint64, error)
	GetOrderDetail(ctx context.Context, id string) (*dto.OrderDetailDTO, error)
	DispatchAction(ctx context.Context, id string, action domain.Action, p ActionParams) (*dto.OrderDetailDTO, error)
	GetDocumentTexts(ctx context.Context, id string) ([]domain.DocumentText, error)
	DownloadPMTranslation(ctx context.Context, id string) (*repositories.DownloadedFile, error)
	UpdateTranslation(ctx context.Context, id, proofreadText string) (*dto.OrderDetailDTO, error)
	GetStats(ctx context.Context) (*domain.Stats, error)
}

// orderService keeps one OrderView per order so the in-flight and selection
// invariants hold across concurrent admin requests.
type orderService struct {
	repo   repositories.BackendRepositoryInterface
	logger *zap.Logger

	mu    sync.Mutex
	views map[string]*OrderView
}

func NewOrderService(repo repositories.BackendRepositoryInterface, logger *zap.Logger) OrderServiceInterface {
	return &orderService{
		repo:   repo,
		logger: logger,
		views:  make(map[string]*OrderView),
	}
}

func (s *orderService) view(id string) *OrderView {
	s.mu.Lock()
	defer s.mu.Unlock()
	v, ok := s.views[id]
	if !ok {
		v = NewOrderView(s.repo, s.logger)
		s.views[id] = v
	}
	return v
}

func (s *orderService) ListOrdersRaw(ctx context.Context, status string, limit, skip int) ([]domain.Order, uint64, error) {
	filter := domain.Status(status)
	if status != "" && !filter.Known() {
		return nil, 0, apperrors.NewHttpError(
			http.StatusBadRequest,
			"Unknown status filter \""+status+"\"",
			apperrors.ErrBadRequest,
			map[string]interface{}{"status": status},
		)
	}
	return s.repo.ListOrders(ctx, filter, limit, skip)
}

func (s *orderService) ListOrders(ctx context.Context, status string, limit, skip int) ([]dto.OrderListItemDTO, uint64, error) {
	orders, total, err := s.ListOrdersRaw(ctx, status, limit, skip)
	if err != nil {
		return nil, 0, err
	}
	items := make([]dto.OrderListItemDTO, len(orders))
	for i, o := range orders {
		items[i] = dto.NewOrderListItemDTO(o)
	}
	return items, total, nil
}

func (s *orderService) GetOrderDetail(ctx context.Context, id string) (*dto.OrderDetailDTO, error) {
	v := s.view(id)
	if _, err := v.Select(ctx, id); err != nil {
		return nil, err
	}
	state := v.State()
	s.maybeEvict(id, v, state)
	return detailDTO(state), nil
}

func (s *orderService) DispatchAction(ctx context.Context, id string, action domain.Action, p ActionParams) (*dto.OrderDetailDTO, error) {
	v := s.view(id)
	if v.State().Order == nil {
		if _, err := v.Select(ctx, id); err != nil {
			return nil, err
		}
	}
	if err := v.Dispatch(ctx, action, p); err != nil {
		return nil, err
	}
	state := v.State()
	s.maybeEvict(id, v, state)
	return detailDTO(state), nil
}

// maybeEvict drops the cached view once its order settles in a terminal
// status; nothing can be dispatched against it anymore, so the map stays
// bounded by the set of active orders.
func (s *orderService) maybeEvict(id string, v *OrderView, state OrderViewState) {
	if state.Order == nil || !state.Order.TranslationStatus.Terminal() || state.PendingAction != "" {
		return
	}
	s.mu.Lock()
	if s.views[id] == v {
		delete(s.views, id)
	}
	s.mu.Unlock()
}

func (s *orderService) GetDocumentTexts(ctx context.Context, id string) ([]domain.DocumentText, error) {
	return s.repo.GetDocumentTexts(ctx, id)
}

func (s *orderService) DownloadPMTranslation(ctx context.Context, id string) (*repositories.DownloadedFile, error) {
	return s.repo.DownloadPMTranslation(ctx, id)
}

// UpdateTranslation is a PM text edit, not a status transition; it refreshes
// the local view after the save.
func (s *orderService) UpdateTranslation(ctx context.Context, id, proofreadText string) (*dto.OrderDetailDTO, error) {
	if err := s.repo.UpdateTranslation(ctx, id, proofreadText); err != nil {
		return nil, err
	}
	return s.GetOrderDetail(ctx, id)
}

func (s *orderService) GetStats(ctx context.Context) (*domain.Stats, error) {
	return s.repo.GetStats(ctx)
}

func detailDTO(state OrderViewState) *dto.OrderDetailDTO {
	return &dto.OrderDetailDTO{
		Order:         state.Order,
		Descriptor:    state.Descriptor,
		PendingAction: state.PendingAction,
		Results:       state.Results,
		PipelineError: state.PipelineError,
	}
}
