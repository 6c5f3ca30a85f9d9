package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"tradux-portal/internal/domain"
	"tradux-portal/internal/dto"
	"tradux-portal/internal/mocks"
	apperrors "tradux-portal/pkg/errors"
)

func testReviewView(status domain.Status) *domain.ReviewView {
	return &domain.ReviewView{
		OrderNumber:       "TRX-2025-0042",
		CustomerName:      "Maria Souza",
		SourceLanguage:    "Portuguese",
		TargetLanguage:    "English",
		TranslationStatus: status,
		ProofreadText:     "Birth Certificate",
	}
}

func TestGetReviewRejectsEmptyToken(t *testing.T) {
	repo := new(mocks.MockBackendRepository)
	s := NewReviewService(repo, zap.NewNop())

	_, _, err := s.GetReview(context.Background(), "ord-1", "   ")

	assert.ErrorIs(t, err, apperrors.ErrReviewTokenInvalid)
	repo.AssertNotCalled(t, "GetReview", mock.Anything, mock.Anything, mock.Anything)
}

func TestGetReviewPassesTokenThrough(t *testing.T) {
	repo := new(mocks.MockBackendRepository)
	repo.On("GetReview", mock.Anything, "ord-1", "tok-abc").Return(testReviewView(domain.StatusClientReview), nil).Once()

	s := NewReviewService(repo, zap.NewNop())
	view, descriptor, err := s.GetReview(context.Background(), "ord-1", "tok-abc")

	require.NoError(t, err)
	assert.Equal(t, "TRX-2025-0042", view.OrderNumber)
	assert.Equal(t, domain.StatusClientReview, descriptor.Status)
	repo.AssertExpectations(t)
}

func TestSubmitReviewEmptyCorrectionNotesIssuesNoNetworkCall(t *testing.T) {
	repo := new(mocks.MockBackendRepository)
	s := NewReviewService(repo, zap.NewNop())

	_, err := s.SubmitReview(context.Background(), "ord-1", "tok-abc", dto.SubmitReviewDTO{
		Action:          "request_correction",
		CorrectionNotes: "  \n ",
	})

	var inputErr *apperrors.InvalidInputError
	assert.ErrorAs(t, err, &inputErr)
	repo.AssertNotCalled(t, "GetReview", mock.Anything, mock.Anything, mock.Anything)
	repo.AssertNotCalled(t, "SubmitReview", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestSubmitReviewRefusedOutsideClientReview(t *testing.T) {
	repo := new(mocks.MockBackendRepository)
	repo.On("GetReview", mock.Anything, "ord-1", "tok-abc").Return(testReviewView(domain.StatusApproved), nil).Once()

	s := NewReviewService(repo, zap.NewNop())
	_, err := s.SubmitReview(context.Background(), "ord-1", "tok-abc", dto.SubmitReviewDTO{Action: "approve"})

	assert.ErrorIs(t, err, apperrors.ErrActionNotAllowed)
	repo.AssertNotCalled(t, "SubmitReview", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestSubmitReviewApprove(t *testing.T) {
	repo := new(mocks.MockBackendRepository)
	repo.On("GetReview", mock.Anything, "ord-1", "tok-abc").Return(testReviewView(domain.StatusClientReview), nil).Once()
	repo.On("SubmitReview", mock.Anything, "ord-1", "tok-abc", "approve", "").Return("", nil).Once()

	s := NewReviewService(repo, zap.NewNop())
	result, err := s.SubmitReview(context.Background(), "ord-1", "tok-abc", dto.SubmitReviewDTO{Action: "approve"})

	require.NoError(t, err)
	assert.Equal(t, "approve", result.Status)
	assert.Equal(t, "Thank you! Your translation has been approved.", result.Message)
	repo.AssertExpectations(t)
}

func TestSubmitReviewCorrectionWithNotes(t *testing.T) {
	repo := new(mocks.MockBackendRepository)
	repo.On("GetReview", mock.Anything, "ord-1", "tok-abc").Return(testReviewView(domain.StatusClientReview), nil).Once()
	repo.On("SubmitReview", mock.Anything, "ord-1", "tok-abc", "request_correction", "The name is misspelled").
		Return("Corrections requested", nil).Once()

	s := NewReviewService(repo, zap.NewNop())
	result, err := s.SubmitReview(context.Background(), "ord-1", "tok-abc", dto.SubmitReviewDTO{
		Action:          "request_correction",
		CorrectionNotes: "The name is misspelled",
	})

	require.NoError(t, err)
	assert.Equal(t, "Corrections requested", result.Message)
	repo.AssertExpectations(t)
}
