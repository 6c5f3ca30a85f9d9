package repositories

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime"
	"mime/multipart"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"go.uber.org/zap"

	"tradux-portal/internal/domain"
	"tradux-portal/internal/dto"
	apperrors "tradux-portal/pkg/errors"
)

// UploadFile carries a file stream toward the backend; the portal never
// stores uploads itself.
type UploadFile struct {
	Filename    string
	ContentType string
	Reader      io.Reader
}

// DownloadedFile is a file fetched from the backend for passthrough delivery.
type DownloadedFile struct {
	Filename    string
	ContentType string
	Content     []byte
}

// BackendRepositoryInterface is the portal's contract with the TRADUX REST
// API. Every result is reduced to data-or-error; HTTP codes are not
// interpreted beyond that, except the review routes where 401/403 become the
// distinct invalid-token error.
type BackendRepositoryInterface interface {
	ListOrders(ctx context.Context, status domain.Status, limit, skip int) ([]domain.Order, uint64, error)
	GetOrder(ctx context.Context, id string) (*domain.Order, error)
	GetDocumentTexts(ctx context.Context, id string) ([]domain.DocumentText, error)
	GetTranslationResults(ctx context.Context, id string) (*domain.TranslationResults, error)
	StartTranslation(ctx context.Context, id, instructions string) error
	ApprovePM(ctx context.Context, id, notes string) error
	UpdateTranslation(ctx context.Context, id, proofreadText string) error
	MarkComplete(ctx context.Context, id string) error
	Retranslate(ctx context.Context, id, instructions string) error
	UploadPMTranslation(ctx context.Context, id string, file UploadFile) error
	AcceptPMUpload(ctx context.Context, id string) error
	DownloadPMTranslation(ctx context.Context, id string) (*DownloadedFile, error)
	GetReview(ctx context.Context, id, token string) (*domain.ReviewView, error)
	SubmitReview(ctx context.Context, id, token, action, notes string) (string, error)
	UploadDocument(ctx context.Context, file UploadFile) (*domain.UploadedDocument, error)
	CalculateQuote(ctx context.Context, req dto.QuoteRequestDTO) (*dto.QuoteResponseDTO, error)
	CreateCheckout(ctx context.Context, req dto.CheckoutRequestDTO) (*dto.CheckoutResponseDTO, error)
	SubmitLead(ctx context.Context, lead dto.LeadDTO) (string, error)
	GetStats(ctx context.Context) (*domain.Stats, error)
}

type backendRepository struct {
	baseURL string
	client  *http.Client
	logger  *zap.Logger
}

func NewBackendRepository(baseURL string, timeout time.Duration, logger *zap.Logger) BackendRepositoryInterface {
	return &backendRepository{
		baseURL: strings.TrimRight(baseURL, "/"),
		client:  &http.Client{Timeout: timeout},
		logger:  logger,
	}
}

// backendDetail matches the FastAPI error envelope.
type backendDetail struct {
	Detail  string `json:"detail"`
	Message string `json:"message"`
}

func (r *backendRepository) do(ctx context.Context, method, path string, query url.Values, body io.Reader, contentType string, out interface{}) error {
	endpoint := r.baseURL + path
	if len(query) > 0 {
		endpoint += "?" + query.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, method, endpoint, body)
	if err != nil {
		return apperrors.NewHttpError(http.StatusInternalServerError, "Could not build backend request", err, nil)
	}
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := r.client.Do(req)
	if err != nil {
		r.logger.Error("backend request failed",
			zap.String("method", method),
			zap.String("path", path),
			zap.Error(err),
		)
		return apperrors.NewHttpError(http.StatusBadGateway, "Translation service is unreachable, please try again", err, nil)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return apperrors.NewHttpError(http.StatusBadGateway, "Could not read backend response", err, nil)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		msg := "Request failed, please try again"
		var detail backendDetail
		if jsonErr := json.Unmarshal(raw, &detail); jsonErr == nil {
			if detail.Detail != "" {
				msg = detail.Detail
			} else if detail.Message != "" {
				msg = detail.Message
			}
		}
		r.logger.Warn("backend rejected request",
			zap.String("method", method),
			zap.String("path", path),
			zap.Int("status", resp.StatusCode),
			zap.String("detail", msg),
		)
		if strings.HasPrefix(path, "/review/") && (resp.StatusCode == http.StatusForbidden || resp.StatusCode == http.StatusUnauthorized) {
			return apperrors.NewHttpError(resp.StatusCode, apperrors.ErrReviewTokenInvalid.Error(), apperrors.ErrReviewTokenInvalid, nil)
		}
		if resp.StatusCode == http.StatusNotFound {
			return apperrors.NewHttpError(http.StatusNotFound, msg, apperrors.ErrNotFound, nil)
		}
		return apperrors.NewHttpError(resp.StatusCode, msg, apperrors.ErrBadRequest, nil)
	}

	if out != nil {
		if err := json.Unmarshal(raw, out); err != nil {
			return apperrors.NewHttpError(http.StatusBadGateway, "Malformed backend response", err, nil)
		}
	}
	return nil
}

func (r *backendRepository) postJSON(ctx context.Context, path string, payload interface{}, out interface{}) error {
	raw, err := json.Marshal(payload)
	if err != nil {
		return apperrors.NewHttpError(http.StatusInternalServerError, "Could not encode request", err, nil)
	}
	return r.do(ctx, http.MethodPost, path, nil, bytes.NewReader(raw), "application/json", out)
}

func (r *backendRepository) ListOrders(ctx context.Context, status domain.Status, limit, skip int) ([]domain.Order, uint64, error) {
	query := url.Values{}
	if status != "" {
		query.Set("status", string(status))
	}
	if limit > 0 {
		query.Set("limit", strconv.Itoa(limit))
	}
	if skip > 0 {
		query.Set("skip", strconv.Itoa(skip))
	}

	var body struct {
		Orders []domain.Order `json:"orders"`
		Total  uint64         `json:"total"`
	}
	if err := r.do(ctx, http.MethodGet, "/admin/orders", query, nil, "", &body); err != nil {
		return nil, 0, err
	}
	return body.Orders, body.Total, nil
}

func (r *backendRepository) GetOrder(ctx context.Context, id string) (*domain.Order, error) {
	var order domain.Order
	if err := r.do(ctx, http.MethodGet, "/admin/orders/"+url.PathEscape(id), nil, nil, "", &order); err != nil {
		return nil, err
	}
	return &order, nil
}

func (r *backendRepository) GetDocumentTexts(ctx context.Context, id string) ([]domain.DocumentText, error) {
	var body struct {
		OrderID   string                `json:"order_id"`
		Documents []domain.DocumentText `json:"documents"`
	}
	if err := r.do(ctx, http.MethodGet, "/admin/orders/"+url.PathEscape(id)+"/document-text", nil, nil, "", &body); err != nil {
		return nil, err
	}
	return body.Documents, nil
}

func (r *backendRepository) GetTranslationResults(ctx context.Context, id string) (*domain.TranslationResults, error) {
	var results domain.TranslationResults
	if err := r.do(ctx, http.MethodGet, "/admin/orders/"+url.PathEscape(id)+"/results", nil, nil, "", &results); err != nil {
		return nil, err
	}
	results.OrderID = id
	return &results, nil
}

func (r *backendRepository) StartTranslation(ctx context.Context, id, instructions string) error {
	payload := map[string]string{"order_id": id}
	if instructions != "" {
		payload["ai_commands"] = instructions
	}
	return r.postJSON(ctx, "/admin/start-translation", payload, nil)
}

func (r *backendRepository) ApprovePM(ctx context.Context, id, notes string) error {
	return r.postJSON(ctx, "/admin/approve-pm", map[string]string{
		"order_id": id,
		"action":   "approve_pm",
		"notes":    notes,
	}, nil)
}

func (r *backendRepository) UpdateTranslation(ctx context.Context, id, proofreadText string) error {
	return r.postJSON(ctx, "/admin/update-translation", map[string]string{
		"order_id":       id,
		"proofread_text": proofreadText,
	}, nil)
}

func (r *backendRepository) MarkComplete(ctx context.Context, id string) error {
	return r.postJSON(ctx, "/admin/mark-complete", map[string]string{
		"order_id": id,
		"action":   "mark_complete",
	}, nil)
}

// Retranslate re-enters the AI pipeline; the backend treats it as a fresh
// start-translation run.
func (r *backendRepository) Retranslate(ctx context.Context, id, instructions string) error {
	return r.StartTranslation(ctx, id, instructions)
}

func (r *backendRepository) UploadPMTranslation(ctx context.Context, id string, file UploadFile) error {
	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)
	if err := writer.WriteField("order_id", id); err != nil {
		return apperrors.NewHttpError(http.StatusInternalServerError, "Could not encode upload", err, nil)
	}
	part, err := writer.CreateFormFile("file", file.Filename)
	if err != nil {
		return apperrors.NewHttpError(http.StatusInternalServerError, "Could not encode upload", err, nil)
	}
	if _, err := io.Copy(part, file.Reader); err != nil {
		return apperrors.NewHttpError(http.StatusInternalServerError, "Could not read uploaded file", err, nil)
	}
	if err := writer.Close(); err != nil {
		return apperrors.NewHttpError(http.StatusInternalServerError, "Could not finish upload encoding", err, nil)
	}
	return r.do(ctx, http.MethodPost, "/admin/upload-pm-translation", nil, &buf, writer.FormDataContentType(), nil)
}

func (r *backendRepository) AcceptPMUpload(ctx context.Context, id string) error {
	return r.postJSON(ctx, "/admin/accept-pm-upload", map[string]string{
		"order_id": id,
		"action":   "accept_pm_upload",
	}, nil)
}

// DownloadPMTranslation streams the PM-uploaded file back to the operator.
// Binary responses bypass the JSON helper.
func (r *backendRepository) DownloadPMTranslation(ctx context.Context, id string) (*DownloadedFile, error) {
	endpoint := r.baseURL + "/admin/orders/" + url.PathEscape(id) + "/pm-translation-download"
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, apperrors.NewHttpError(http.StatusInternalServerError, "Could not build backend request", err, nil)
	}

	resp, err := r.client.Do(req)
	if err != nil {
		return nil, apperrors.NewHttpError(http.StatusBadGateway, "Translation service is unreachable, please try again", err, nil)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, apperrors.NewHttpError(http.StatusBadGateway, "Could not read backend response", err, nil)
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		msg := "Download failed, please try again"
		var detail backendDetail
		if jsonErr := json.Unmarshal(raw, &detail); jsonErr == nil && detail.Detail != "" {
			msg = detail.Detail
		}
		if resp.StatusCode == http.StatusNotFound {
			return nil, apperrors.NewHttpError(http.StatusNotFound, msg, apperrors.ErrNotFound, nil)
		}
		return nil, apperrors.NewHttpError(resp.StatusCode, msg, apperrors.ErrBadRequest, nil)
	}

	filename := "translation"
	if _, params, err := mime.ParseMediaType(resp.Header.Get("Content-Disposition")); err == nil && params["filename"] != "" {
		filename = params["filename"]
	}
	contentType := resp.Header.Get("Content-Type")
	if contentType == "" {
		contentType = "application/octet-stream"
	}
	return &DownloadedFile{Filename: filename, ContentType: contentType, Content: raw}, nil
}

func (r *backendRepository) GetReview(ctx context.Context, id, token string) (*domain.ReviewView, error) {
	query := url.Values{"token": {token}}
	var view domain.ReviewView
	if err := r.do(ctx, http.MethodGet, "/review/"+url.PathEscape(id), query, nil, "", &view); err != nil {
		return nil, err
	}
	return &view, nil
}

func (r *backendRepository) SubmitReview(ctx context.Context, id, token, action, notes string) (string, error) {
	query := url.Values{"token": {token}}
	payload := map[string]string{
		"order_id": id,
		"action":   action,
	}
	if notes != "" {
		payload["correction_notes"] = notes
	}
	raw, err := json.Marshal(payload)
	if err != nil {
		return "", apperrors.NewHttpError(http.StatusInternalServerError, "Could not encode request", err, nil)
	}

	var body struct {
		Status  string `json:"status"`
		Message string `json:"message"`
	}
	if err := r.do(ctx, http.MethodPost, "/review/"+url.PathEscape(id), query, bytes.NewReader(raw), "application/json", &body); err != nil {
		return "", err
	}
	return body.Message, nil
}

func (r *backendRepository) UploadDocument(ctx context.Context, file UploadFile) (*domain.UploadedDocument, error) {
	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)
	part, err := writer.CreateFormFile("file", file.Filename)
	if err != nil {
		return nil, apperrors.NewHttpError(http.StatusInternalServerError, "Could not encode upload", err, nil)
	}
	if _, err := io.Copy(part, file.Reader); err != nil {
		return nil, apperrors.NewHttpError(http.StatusInternalServerError, "Could not read uploaded file", err, nil)
	}
	if err := writer.Close(); err != nil {
		return nil, apperrors.NewHttpError(http.StatusInternalServerError, "Could not finish upload encoding", err, nil)
	}

	var doc domain.UploadedDocument
	if err := r.do(ctx, http.MethodPost, "/upload-document", nil, &buf, writer.FormDataContentType(), &doc); err != nil {
		return nil, err
	}
	return &doc, nil
}

func (r *backendRepository) CalculateQuote(ctx context.Context, req dto.QuoteRequestDTO) (*dto.QuoteResponseDTO, error) {
	var quote dto.QuoteResponseDTO
	if err := r.postJSON(ctx, "/calculate-quote", req, &quote); err != nil {
		return nil, err
	}
	return &quote, nil
}

func (r *backendRepository) CreateCheckout(ctx context.Context, req dto.CheckoutRequestDTO) (*dto.CheckoutResponseDTO, error) {
	var checkout dto.CheckoutResponseDTO
	if err := r.postJSON(ctx, "/create-payment-checkout", req, &checkout); err != nil {
		return nil, err
	}
	return &checkout, nil
}

func (r *backendRepository) SubmitLead(ctx context.Context, lead dto.LeadDTO) (string, error) {
	var body struct {
		Reference string `json:"reference"`
	}
	if err := r.postJSON(ctx, "/enterprise/leads", lead, &body); err != nil {
		return "", err
	}
	if body.Reference == "" {
		body.Reference = fmt.Sprintf("LEAD-%d", time.Now().Unix())
	}
	return body.Reference, nil
}

func (r *backendRepository) GetStats(ctx context.Context) (*domain.Stats, error) {
	var stats domain.Stats
	if err := r.do(ctx, http.MethodGet, "/admin/stats", nil, nil, "", &stats); err != nil {
		return nil, err
	}
	return &stats, nil
}
