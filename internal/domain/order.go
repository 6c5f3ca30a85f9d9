package domain

import "strings"

// Order is the unit the portal operates on. It is created and mutated by the
// backend only; the portal reads, displays and requests transitions.
type Order struct {
	ID          string `json:"id"`
	OrderNumber string `json:"order_number"`
	QuoteID     string `json:"quote_id,omitempty"`

	CustomerName  string `json:"customer_name"`
	CustomerEmail string `json:"customer_email"`
	CustomerPhone string `json:"customer_phone,omitempty"`

	ServiceTier    string `json:"service_tier"`
	CertType       string `json:"cert_type"`
	DeliverySpeed  string `json:"delivery_speed"`
	DeliveryMethod string `json:"delivery_method"`
	SourceLanguage string `json:"source_language"`
	TargetLanguage string `json:"target_language"`
	DocumentType   string `json:"document_type"`
	Purpose        string `json:"purpose,omitempty"`
	PageCount      int    `json:"page_count"`
	Notes          string `json:"notes,omitempty"`

	DocumentIDs []string `json:"document_ids"`

	BasePrice     float64 `json:"base_price"`
	TotalPrice    float64 `json:"total_price"`
	PaymentStatus string  `json:"payment_status"`

	TranslationStatus Status `json:"translation_status"`
	OriginalText      string `json:"original_text,omitempty"`
	TranslatedText    string `json:"translated_text,omitempty"`
	ProofreadText     string `json:"proofread_text,omitempty"`
	AICorrections     string `json:"ai_corrections,omitempty"`
	CorrectionNotes   string `json:"correction_notes,omitempty"`
	ErrorMessage      string `json:"error_message,omitempty"`

	PMApproved     bool `json:"pm_approved"`
	ClientApproved bool `json:"client_approved"`

	PMUploadFilename string `json:"pm_upload_filename,omitempty"`
	PMUploadFileSize int64  `json:"pm_upload_file_size,omitempty"`

	// Backend timestamps, display-only; kept as strings because the backend
	// emits zone-less ISO datetimes.
	CreatedAt string `json:"created_at,omitempty"`
	UpdatedAt string `json:"updated_at,omitempty"`
}

func (o *Order) Status() Status { return o.TranslationStatus }

func (o *Order) Descriptor() Descriptor { return Describe(o.TranslationStatus) }

// HasSourceText is the client-side precondition for starting the AI pipeline.
func (o *Order) HasSourceText() bool {
	return strings.TrimSpace(o.OriginalText) != ""
}

// DeliverableText falls back from the proofread text to the raw translation;
// content fields are never assumed present.
func (o *Order) DeliverableText() (string, bool) {
	if strings.TrimSpace(o.ProofreadText) != "" {
		return o.ProofreadText, true
	}
	if strings.TrimSpace(o.TranslatedText) != "" {
		return o.TranslatedText, true
	}
	return "", false
}

// TranslationResults is the final pipeline content fetched once after the
// order leaves the transient phase.
type TranslationResults struct {
	OrderID        string `json:"order_id"`
	TranslatedText string `json:"translated_text"`
	ProofreadText  string `json:"proofread_text"`
	AICorrections  string `json:"ai_corrections"`
}

// DocumentText is the extracted source text of one uploaded document.
type DocumentText struct {
	DocumentID string `json:"document_id"`
	Filename   string `json:"filename"`
	Text       string `json:"text"`
	WordCount  int    `json:"word_count"`
	PageCount  int    `json:"page_count"`
}

// ReviewView is the token-guarded slice of an order shown on the client
// review page.
type ReviewView struct {
	OrderNumber       string `json:"order_number"`
	CustomerName      string `json:"customer_name"`
	SourceLanguage    string `json:"source_language"`
	TargetLanguage    string `json:"target_language"`
	DocumentType      string `json:"document_type"`
	ServiceTier       string `json:"service_tier"`
	CertType          string `json:"cert_type"`
	TranslationStatus Status `json:"translation_status"`
	ProofreadText     string `json:"proofread_text"`
	OriginalText      string `json:"original_text"`
}

// Stats is the admin dashboard summary reported by the backend.
type Stats struct {
	TotalOrders          int     `json:"total_orders"`
	PaidOrders           int     `json:"paid_orders"`
	Completed            int     `json:"completed"`
	InProgress           int     `json:"in_progress"`
	PendingPMReview      int     `json:"pending_pm_review"`
	CorrectionsRequested int     `json:"corrections_requested"`
	TotalRevenue         float64 `json:"total_revenue"`
}

// UploadedDocument is the backend's receipt for a wizard document upload.
type UploadedDocument struct {
	DocumentID       string `json:"document_id"`
	Filename         string `json:"filename"`
	FileSize         int64  `json:"file_size"`
	WordCount        int    `json:"word_count"`
	PageCount        int    `json:"page_count"`
	ExtractionMethod string `json:"extraction_method"`
}
