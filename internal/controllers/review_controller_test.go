package controllers

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"tradux-portal/internal/domain"
	"tradux-portal/internal/mocks"
	"tradux-portal/internal/services"
	"tradux-portal/pkg/customvalidator"
	apperrors "tradux-portal/pkg/errors"
	"tradux-portal/pkg/utils"
)

func newReviewTestServer(t *testing.T, repo *mocks.MockBackendRepository) *echo.Echo {
	t.Helper()
	e := echo.New()
	v := validator.New()
	require.NoError(t, customvalidator.RegisterCustomValidations(v))
	e.Validator = utils.NewValidator(v)

	controller := NewReviewController(services.NewReviewService(repo, zap.NewNop()), zap.NewNop())
	e.GET("/api/review/:id", controller.GetReview)
	e.POST("/api/review/:id", controller.SubmitReview)
	return e
}

func TestGetReviewPropagatesToken(t *testing.T) {
	repo := new(mocks.MockBackendRepository)
	repo.On("GetReview", mock.Anything, "ord-1", "tok-abc").Return(&domain.ReviewView{
		OrderNumber:       "TRX-2025-0042",
		TranslationStatus: domain.StatusClientReview,
		ProofreadText:     "Birth Certificate",
	}, nil).Once()

	e := newReviewTestServer(t, repo)
	req := httptest.NewRequest(http.MethodGet, "/api/review/ord-1?token=tok-abc", nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "TRX-2025-0042")
	assert.Contains(t, rec.Body.String(), "Client Review")
	repo.AssertExpectations(t)
}

func TestGetReviewInvalidTokenIsForbidden(t *testing.T) {
	repo := new(mocks.MockBackendRepository)
	repo.On("GetReview", mock.Anything, "ord-1", "bad").
		Return(nil, apperrors.NewHttpError(http.StatusForbidden, apperrors.ErrReviewTokenInvalid.Error(), apperrors.ErrReviewTokenInvalid, nil)).Once()

	e := newReviewTestServer(t, repo)
	req := httptest.NewRequest(http.MethodGet, "/api/review/ord-1?token=bad", nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusForbidden, rec.Code)
}

func TestGetReviewMissingTokenIsForbiddenWithoutBackendCall(t *testing.T) {
	repo := new(mocks.MockBackendRepository)

	e := newReviewTestServer(t, repo)
	req := httptest.NewRequest(http.MethodGet, "/api/review/ord-1", nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusForbidden, rec.Code)
	repo.AssertNotCalled(t, "GetReview", mock.Anything, mock.Anything, mock.Anything)
}

func TestSubmitReviewEmptyNotesIsBadRequestWithoutSubmitCall(t *testing.T) {
	repo := new(mocks.MockBackendRepository)

	e := newReviewTestServer(t, repo)
	body := `{"action":"request_correction","correction_notes":"  "}`
	req := httptest.NewRequest(http.MethodPost, "/api/review/ord-1?token=tok-abc", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	repo.AssertNotCalled(t, "SubmitReview", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestSubmitReviewMalformedJSONIsBadRequest(t *testing.T) {
	repo := new(mocks.MockBackendRepository)

	e := newReviewTestServer(t, repo)
	req := httptest.NewRequest(http.MethodPost, "/api/review/ord-1?token=tok-abc", strings.NewReader(`{"action":`))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	repo.AssertNotCalled(t, "GetReview", mock.Anything, mock.Anything, mock.Anything)
}

func TestSubmitReviewRejectsUnknownAction(t *testing.T) {
	repo := new(mocks.MockBackendRepository)

	e := newReviewTestServer(t, repo)
	body := `{"action":"escalate"}`
	req := httptest.NewRequest(http.MethodPost, "/api/review/ord-1?token=tok-abc", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	repo.AssertNotCalled(t, "GetReview", mock.Anything, mock.Anything, mock.Anything)
}

func TestSubmitReviewApproveHappyPath(t *testing.T) {
	repo := new(mocks.MockBackendRepository)
	repo.On("GetReview", mock.Anything, "ord-1", "tok-abc").Return(&domain.ReviewView{
		OrderNumber:       "TRX-2025-0042",
		TranslationStatus: domain.StatusClientReview,
	}, nil).Once()
	repo.On("SubmitReview", mock.Anything, "ord-1", "tok-abc", "approve", "").Return("", nil).Once()

	e := newReviewTestServer(t, repo)
	req := httptest.NewRequest(http.MethodPost, "/api/review/ord-1?token=tok-abc", strings.NewReader(`{"action":"approve"}`))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "approved")
	repo.AssertExpectations(t)
}
