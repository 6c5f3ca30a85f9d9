package repositories

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"tradux-portal/internal/domain"
	apperrors "tradux-portal/pkg/errors"
)

func newTestRepo(t *testing.T, handler http.HandlerFunc) BackendRepositoryInterface {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)
	return NewBackendRepository(server.URL, 2*time.Second, zap.NewNop())
}

func TestListOrdersBuildsQueryAndDecodes(t *testing.T) {
	repo := newTestRepo(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/admin/orders", r.URL.Path)
		assert.Equal(t, "pm_review", r.URL.Query().Get("status"))
		assert.Equal(t, "20", r.URL.Query().Get("limit"))
		assert.Equal(t, "40", r.URL.Query().Get("skip"))
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"orders":[{"id":"ord-1","translation_status":"pm_review"}],"total":57}`))
	})

	orders, total, err := repo.ListOrders(context.Background(), domain.StatusPMReview, 20, 40)

	require.NoError(t, err)
	assert.Equal(t, uint64(57), total)
	require.Len(t, orders, 1)
	assert.Equal(t, domain.StatusPMReview, orders[0].TranslationStatus)
}

func TestGetOrderNotFound(t *testing.T) {
	repo := newTestRepo(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		w.Write([]byte(`{"detail":"Order not found"}`))
	})

	_, err := repo.GetOrder(context.Background(), "missing")

	assert.ErrorIs(t, err, apperrors.ErrNotFound)
	assert.Equal(t, http.StatusNotFound, apperrors.StatusCode(err))
	var httpErr *apperrors.HttpError
	require.ErrorAs(t, err, &httpErr)
	assert.Equal(t, "Order not found", httpErr.Message)
}

func TestReviewRoutesMapForbiddenToInvalidToken(t *testing.T) {
	repo := newTestRepo(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "bad-token", r.URL.Query().Get("token"))
		w.WriteHeader(http.StatusForbidden)
		w.Write([]byte(`{"detail":"Invalid or expired review link"}`))
	})

	_, err := repo.GetReview(context.Background(), "ord-1", "bad-token")

	assert.ErrorIs(t, err, apperrors.ErrReviewTokenInvalid)
	assert.Equal(t, http.StatusForbidden, apperrors.StatusCode(err))
}

func TestUnreachableBackendBecomesBadGateway(t *testing.T) {
	repo := NewBackendRepository("http://127.0.0.1:1", 200*time.Millisecond, zap.NewNop())

	_, err := repo.GetStats(context.Background())

	var httpErr *apperrors.HttpError
	require.ErrorAs(t, err, &httpErr)
	assert.Equal(t, http.StatusBadGateway, httpErr.Code)
	assert.Contains(t, httpErr.Message, "unreachable")
}

func TestStartTranslationPayload(t *testing.T) {
	var payload map[string]string
	repo := newTestRepo(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/admin/start-translation", r.URL.Path)
		payload = map[string]string{}
		require.NoError(t, json.NewDecoder(r.Body).Decode(&payload))
		w.Write([]byte(`{"status":"started"}`))
	})

	require.NoError(t, repo.StartTranslation(context.Background(), "ord-1", "keep legal terms"))
	assert.Equal(t, "ord-1", payload["order_id"])
	assert.Equal(t, "keep legal terms", payload["ai_commands"])

	require.NoError(t, repo.StartTranslation(context.Background(), "ord-1", ""))
	_, present := payload["ai_commands"]
	assert.False(t, present)
}

func TestUploadPMTranslationSendsMultipart(t *testing.T) {
	repo := newTestRepo(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/admin/upload-pm-translation", r.URL.Path)
		require.NoError(t, r.ParseMultipartForm(1<<20))
		assert.Equal(t, "ord-1", r.FormValue("order_id"))

		file, header, err := r.FormFile("file")
		require.NoError(t, err)
		defer file.Close()
		assert.Equal(t, "final.docx", header.Filename)
		w.Write([]byte(`{"status":"uploaded"}`))
	})

	err := repo.UploadPMTranslation(context.Background(), "ord-1", UploadFile{
		Filename:    "final.docx",
		ContentType: "application/octet-stream",
		Reader:      strings.NewReader("translated content"),
	})
	require.NoError(t, err)
}

func TestDownloadPMTranslationPassthrough(t *testing.T) {
	repo := newTestRepo(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/admin/orders/ord-1/pm-translation-download", r.URL.Path)
		w.Header().Set("Content-Type", "application/pdf")
		w.Header().Set("Content-Disposition", `attachment; filename="certified.pdf"`)
		w.Write([]byte("%PDF-1.4"))
	})

	file, err := repo.DownloadPMTranslation(context.Background(), "ord-1")

	require.NoError(t, err)
	assert.Equal(t, "certified.pdf", file.Filename)
	assert.Equal(t, "application/pdf", file.ContentType)
	assert.Equal(t, []byte("%PDF-1.4"), file.Content)
}

func TestDownloadPMTranslationMissingFile(t *testing.T) {
	repo := newTestRepo(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		w.Write([]byte(`{"detail":"No uploaded translation found"}`))
	})

	_, err := repo.DownloadPMTranslation(context.Background(), "ord-1")

	assert.ErrorIs(t, err, apperrors.ErrNotFound)
	var httpErr *apperrors.HttpError
	require.ErrorAs(t, err, &httpErr)
	assert.Equal(t, "No uploaded translation found", httpErr.Message)
}

func TestSubmitReviewReturnsBackendMessage(t *testing.T) {
	repo := newTestRepo(t, func(w http.ResponseWriter, r *http.Request) {
		var payload map[string]string
		require.NoError(t, json.NewDecoder(r.Body).Decode(&payload))
		assert.Equal(t, "request_correction", payload["action"])
		assert.Equal(t, "Wrong date format", payload["correction_notes"])
		w.Write([]byte(`{"status":"corrections","message":"Corrections requested"}`))
	})

	message, err := repo.SubmitReview(context.Background(), "ord-1", "tok", "request_correction", "Wrong date format")

	require.NoError(t, err)
	assert.Equal(t, "Corrections requested", message)
}

func TestGetTranslationResultsStampsOrderID(t *testing.T) {
	repo := newTestRepo(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/admin/orders/ord-1/results", r.URL.Path)
		w.Write([]byte(`{"translated_text":"Birth Certificate","proofread_text":"Birth Certificate (reviewed)"}`))
	})

	results, err := repo.GetTranslationResults(context.Background(), "ord-1")

	require.NoError(t, err)
	assert.Equal(t, "ord-1", results.OrderID)
	assert.Equal(t, "Birth Certificate (reviewed)", results.ProofreadText)
}
