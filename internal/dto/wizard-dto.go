package dto

// QuoteRequestDTO is the order wizard form; it doubles as the payload
// forwarded to the backend quote endpoint.
type QuoteRequestDTO struct {
	ServiceTier    string   `json:"service_tier" validate:"required,service_tier"`
	CertType       string   `json:"cert_type" validate:"required,cert_type"`
	DeliverySpeed  string   `json:"delivery_speed" validate:"required,delivery_speed"`
	DeliveryMethod string   `json:"delivery_method" validate:"required,delivery_method"`
	SourceLanguage string   `json:"source_language" validate:"required"`
	TargetLanguage string   `json:"target_language" validate:"required"`
	DocumentType   string   `json:"document_type,omitempty"`
	Purpose        string   `json:"purpose,omitempty"`
	FullName       string   `json:"full_name" validate:"required"`
	Email          string   `json:"email" validate:"required,email"`
	Phone          string   `json:"phone,omitempty"`
	Notes          string   `json:"notes,omitempty"`
	PageCount      int      `json:"page_count" validate:"required,min=1"`
	DocumentIDs    []string `json:"document_ids,omitempty"`
	Currency       string   `json:"currency,omitempty" validate:"omitempty,currency_code"`
}

// EstimateRequestDTO is the instant, non-binding price preview; no customer
// identity required.
type EstimateRequestDTO struct {
	ServiceTier    string `json:"service_tier" validate:"required,service_tier"`
	CertType       string `json:"cert_type" validate:"required,cert_type"`
	DeliverySpeed  string `json:"delivery_speed" validate:"required,delivery_speed"`
	DeliveryMethod string `json:"delivery_method" validate:"required,delivery_method"`
	PageCount      int    `json:"page_count" validate:"required,min=1"`
	Currency       string `json:"currency,omitempty" validate:"omitempty,currency_code"`
}

type EstimateResponseDTO struct {
	BasePrice       float64 `json:"base_price"`
	SpeedMultiplier float64 `json:"speed_multiplier"`
	TranslationCost float64 `json:"translation_cost"`
	CertFee         float64 `json:"cert_fee"`
	DeliveryFee     float64 `json:"delivery_fee"`
	TotalPrice      float64 `json:"total_price"`
	PerPage         float64 `json:"per_page"`
	PageCount       int     `json:"page_count"`
	Currency        string  `json:"currency"`
	CurrencySymbol  string  `json:"currency_symbol"`
	ConvertedTotal  float64 `json:"converted_total"`
	RateSource      string  `json:"rate_source"`
}

type QuoteResponseDTO struct {
	ID              string  `json:"id"`
	Reference       string  `json:"reference"`
	BasePrice       float64 `json:"base_price"`
	SpeedMultiplier float64 `json:"speed_multiplier"`
	TranslationCost float64 `json:"translation_cost"`
	CertFee         float64 `json:"cert_fee"`
	DeliveryFee     float64 `json:"delivery_fee"`
	TotalPrice      float64 `json:"total_price"`
	PerPage         float64 `json:"per_page"`
	PageCount       int     `json:"page_count"`
}

type CheckoutRequestDTO struct {
	QuoteID       string `json:"quote_id" validate:"required"`
	OriginURL     string `json:"origin_url" validate:"required,url"`
	CustomerEmail string `json:"customer_email,omitempty" validate:"omitempty,email"`
	CustomerName  string `json:"customer_name,omitempty"`
	Currency      string `json:"currency,omitempty" validate:"omitempty,currency_code"`
}

type CheckoutResponseDTO struct {
	Status      string `json:"status"`
	CheckoutURL string `json:"checkout_url"`
	SessionID   string `json:"session_id"`
}
