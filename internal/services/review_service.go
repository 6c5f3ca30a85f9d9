package services

import (
	"context"
	"strings"

	"go.uber.org/zap"

	"tradux-portal/internal/domain"
	"tradux-portal/internal/dto"
	"tradux-portal/internal/repositories"
	apperrors "tradux-portal/pkg/errors"
)

type ReviewServiceInterface interface {
	GetReview(ctx context.Context, orderID, token string) (*domain.ReviewView, domain.Descriptor, error)
	SubmitReview(ctx context.Context, orderID, token string, req dto.SubmitReviewDTO) (*dto.ReviewResultDTO, error)
}

// reviewService handles the token-guarded client review page. The token is
// opaque to the portal; it is passed through on every backend call.
type reviewService struct {
	repo   repositories.BackendRepositoryInterface
	logger *zap.Logger
}

func NewReviewService(repo repositories.BackendRepositoryInterface, logger *zap.Logger) ReviewServiceInterface {
	return &reviewService{repo: repo, logger: logger}
}

func (s *reviewService) GetReview(ctx context.Context, orderID, token string) (*domain.ReviewView, domain.Descriptor, error) {
	if strings.TrimSpace(token) == "" {
		return nil, domain.Descriptor{}, apperrors.ErrReviewTokenInvalid
	}
	view, err := s.repo.GetReview(ctx, orderID, token)
	if err != nil {
		return nil, domain.Descriptor{}, err
	}
	return view, domain.Describe(view.TranslationStatus), nil
}

func (s *reviewService) SubmitReview(ctx context.Context, orderID, token string, req dto.SubmitReviewDTO) (*dto.ReviewResultDTO, error) {
	if strings.TrimSpace(token) == "" {
		return nil, apperrors.ErrReviewTokenInvalid
	}

	// Correction notes are mandatory; refuse before touching the network.
	if req.Action == "request_correction" && strings.TrimSpace(req.CorrectionNotes) == "" {
		return nil, apperrors.NewInvalidInputError("Please describe the corrections you need.")
	}

	view, err := s.repo.GetReview(ctx, orderID, token)
	if err != nil {
		return nil, err
	}
	if view.TranslationStatus != domain.StatusClientReview {
		s.logger.Warn("review submit refused for status",
			zap.String("order", view.OrderNumber),
			zap.String("status", string(view.TranslationStatus)),
		)
		return nil, apperrors.ErrActionNotAllowed
	}

	message, err := s.repo.SubmitReview(ctx, orderID, token, req.Action, req.CorrectionNotes)
	if err != nil {
		return nil, err
	}
	if message == "" {
		if req.Action == "approve" {
			message = "Thank you! Your translation has been approved."
		} else {
			message = "Your correction request has been submitted."
		}
	}
	return &dto.ReviewResultDTO{Status: req.Action, Message: message}, nil
}
