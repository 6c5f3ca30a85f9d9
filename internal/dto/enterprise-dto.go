package dto

type LeadDTO struct {
	Company       string `json:"company" validate:"required"`
	ContactName   string `json:"contact_name" validate:"required"`
	Email         string `json:"email" validate:"required,email"`
	Phone         string `json:"phone,omitempty"`
	MonthlyVolume int    `json:"monthly_volume,omitempty" validate:"omitempty,min=0"`
	LanguagePairs string `json:"language_pairs,omitempty"`
	Message       string `json:"message,omitempty"`
}

type LeadResultDTO struct {
	Reference string `json:"reference"`
	Message   string `json:"message"`
}

type ROIRequestDTO struct {
	DocumentsPerMonth int     `json:"documents_per_month" validate:"required,min=1"`
	AvgPagesPerDoc    int     `json:"avg_pages_per_doc" validate:"required,min=1"`
	InHouseCostPage   float64 `json:"in_house_cost_per_page" validate:"required,gt=0"`
	ServiceTier       string  `json:"service_tier" validate:"required,service_tier"`
	Currency          string  `json:"currency,omitempty" validate:"omitempty,currency_code"`
}

type ROIResponseDTO struct {
	PagesPerMonth      int     `json:"pages_per_month"`
	PerPageRate        float64 `json:"per_page_rate"`
	VolumeDiscount     float64 `json:"volume_discount"`
	DiscountedPerPage  float64 `json:"discounted_per_page"`
	MonthlyTraduxCost  float64 `json:"monthly_tradux_cost"`
	MonthlyInHouseCost float64 `json:"monthly_in_house_cost"`
	MonthlySavings     float64 `json:"monthly_savings"`
	AnnualSavings      float64 `json:"annual_savings"`
	Currency           string  `json:"currency"`
	ConvertedSavings   float64 `json:"converted_monthly_savings"`
	RateSource         string  `json:"rate_source"`
}
