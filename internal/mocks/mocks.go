package mocks

import (
	"context"
	"time"

	"github.com/stretchr/testify/mock"

	"tradux-portal/internal/domain"
	"tradux-portal/internal/dto"
	"tradux-portal/internal/repositories"
)

// MockBackendRepository is a testify fake for the backend REST contract.
type MockBackendRepository struct {
	mock.Mock
}

var _ repositories.BackendRepositoryInterface = (*MockBackendRepository)(nil)

func (m *MockBackendRepository) ListOrders(ctx context.Context, status domain.Status, limit, skip int) ([]domain.Order, uint64, error) {
	args := m.Called(ctx, status, limit, skip)
	var orders []domain.Order
	if v := args.Get(0); v != nil {
		orders = v.([]domain.Order)
	}
	return orders, args.Get(1).(uint64), args.Error(2)
}

func (m *MockBackendRepository) GetOrder(ctx context.Context, id string) (*domain.Order, error) {
	args := m.Called(ctx, id)
	var order *domain.Order
	if v := args.Get(0); v != nil {
		order = v.(*domain.Order)
	}
	return order, args.Error(1)
}

func (m *MockBackendRepository) GetDocumentTexts(ctx context.Context, id string) ([]domain.DocumentText, error) {
	args := m.Called(ctx, id)
	var texts []domain.DocumentText
	if v := args.Get(0); v != nil {
		texts = v.([]domain.DocumentText)
	}
	return texts, args.Error(1)
}

func (m *MockBackendRepository) GetTranslationResults(ctx context.Context, id string) (*domain.TranslationResults, error) {
	args := m.Called(ctx, id)
	var results *domain.TranslationResults
	if v := args.Get(0); v != nil {
		results = v.(*domain.TranslationResults)
	}
	return results, args.Error(1)
}

func (m *MockBackendRepository) StartTranslation(ctx context.Context, id, instructions string) error {
	args := m.Called(ctx, id, instructions)
	return args.Error(0)
}

func (m *MockBackendRepository) ApprovePM(ctx context.Context, id, notes string) error {
	args := m.Called(ctx, id, notes)
	return args.Error(0)
}

func (m *MockBackendRepository) UpdateTranslation(ctx context.Context, id, proofreadText string) error {
	args := m.Called(ctx, id, proofreadText)
	return args.Error(0)
}

func (m *MockBackendRepository) MarkComplete(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockBackendRepository) Retranslate(ctx context.Context, id, instructions string) error {
	args := m.Called(ctx, id, instructions)
	return args.Error(0)
}

func (m *MockBackendRepository) UploadPMTranslation(ctx context.Context, id string, file repositories.UploadFile) error {
	args := m.Called(ctx, id, file)
	return args.Error(0)
}

func (m *MockBackendRepository) AcceptPMUpload(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockBackendRepository) DownloadPMTranslation(ctx context.Context, id string) (*repositories.DownloadedFile, error) {
	args := m.Called(ctx, id)
	var file *repositories.DownloadedFile
	if v := args.Get(0); v != nil {
		file = v.(*repositories.DownloadedFile)
	}
	return file, args.Error(1)
}

func (m *MockBackendRepository) GetReview(ctx context.Context, id, token string) (*domain.ReviewView, error) {
	args := m.Called(ctx, id, token)
	var view *domain.ReviewView
	if v := args.Get(0); v != nil {
		view = v.(*domain.ReviewView)
	}
	return view, args.Error(1)
}

func (m *MockBackendRepository) SubmitReview(ctx context.Context, id, token, action, notes string) (string, error) {
	args := m.Called(ctx, id, token, action, notes)
	return args.String(0), args.Error(1)
}

func (m *MockBackendRepository) UploadDocument(ctx context.Context, file repositories.UploadFile) (*domain.UploadedDocument, error) {
	args := m.Called(ctx, file)
	var doc *domain.UploadedDocument
	if v := args.Get(0); v != nil {
		doc = v.(*domain.UploadedDocument)
	}
	return doc, args.Error(1)
}

func (m *MockBackendRepository) CalculateQuote(ctx context.Context, req dto.QuoteRequestDTO) (*dto.QuoteResponseDTO, error) {
	args := m.Called(ctx, req)
	var quote *dto.QuoteResponseDTO
	if v := args.Get(0); v != nil {
		quote = v.(*dto.QuoteResponseDTO)
	}
	return quote, args.Error(1)
}

func (m *MockBackendRepository) CreateCheckout(ctx context.Context, req dto.CheckoutRequestDTO) (*dto.CheckoutResponseDTO, error) {
	args := m.Called(ctx, req)
	var checkout *dto.CheckoutResponseDTO
	if v := args.Get(0); v != nil {
		checkout = v.(*dto.CheckoutResponseDTO)
	}
	return checkout, args.Error(1)
}

func (m *MockBackendRepository) SubmitLead(ctx context.Context, lead dto.LeadDTO) (string, error) {
	args := m.Called(ctx, lead)
	return args.String(0), args.Error(1)
}

func (m *MockBackendRepository) GetStats(ctx context.Context) (*domain.Stats, error) {
	args := m.Called(ctx)
	var stats *domain.Stats
	if v := args.Get(0); v != nil {
		stats = v.(*domain.Stats)
	}
	return stats, args.Error(1)
}

// MockCacheRepository fakes the Redis cache.
type MockCacheRepository struct {
	mock.Mock
}

var _ repositories.CacheRepositoryInterface = (*MockCacheRepository)(nil)

func (m *MockCacheRepository) Get(ctx context.Context, key string) (string, error) {
	args := m.Called(ctx, key)
	return args.String(0), args.Error(1)
}

func (m *MockCacheRepository) Set(ctx context.Context, key string, value interface{}, expiration time.Duration) error {
	args := m.Called(ctx, key, value, expiration)
	return args.Error(0)
}

func (m *MockCacheRepository) Del(ctx context.Context, keys ...string) error {
	args := m.Called(ctx, keys)
	return args.Error(0)
}
