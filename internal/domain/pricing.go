package domain

import "math"

// Pricing tables mirror the backend's; the portal uses them for instant
// estimates and the enterprise ROI calculator. Authoritative quotes still
// come from the backend.

type Tier struct {
	PerPage     float64
	Name        string
	Description string
}

var TierPricing = map[string]Tier{
	"standard":     {PerPage: 19.00, Name: "Standard", Description: "Certified translation"},
	"professional": {PerPage: 29.00, Name: "Professional", Description: "Translated + Proofread"},
	"specialist":   {PerPage: 39.00, Name: "Specialist", Description: "Field-specific expert"},
}

var CertFees = map[string]float64{
	"certified": 0,
	"notarized": 15.00,
	"apostille": 75.00,
}

var DeliverySpeedMultiplier = map[string]float64{
	"standard": 1.0,
	"urgent":   1.25,
	"same-day": 1.50,
}

var DeliveryMethodFees = map[string]float64{
	"email": 0,
	"mail":  15.00,
	"fedex": 35.00,
}

type CurrencyInfo struct {
	Symbol         string
	Name           string
	PaymentMethods []string
}

var Currencies = map[string]CurrencyInfo{
	"usd": {Symbol: "$", Name: "US Dollar", PaymentMethods: []string{"card"}},
	"brl": {Symbol: "R$", Name: "Brazilian Real", PaymentMethods: []string{"card", "pix"}},
	"eur": {Symbol: "€", Name: "Euro", PaymentMethods: []string{"card"}},
	"gbp": {Symbol: "£", Name: "British Pound", PaymentMethods: []string{"card"}},
}

// FallbackRates are used when the live rate source is unreachable.
var FallbackRates = map[string]float64{
	"brl": 5.0,
	"eur": 0.92,
	"gbp": 0.79,
}

// PriceBreakdown is the estimate shown in the order wizard before the backend
// issues the binding quote.
type PriceBreakdown struct {
	BasePrice       float64 `json:"base_price"`
	SpeedMultiplier float64 `json:"speed_multiplier"`
	TranslationCost float64 `json:"translation_cost"`
	CertFee         float64 `json:"cert_fee"`
	DeliveryFee     float64 `json:"delivery_fee"`
	TotalPrice      float64 `json:"total_price"`
	PerPage         float64 `json:"per_page"`
	PageCount       int     `json:"page_count"`
}

func round2(v float64) float64 { return math.Round(v*100) / 100 }

// CalculatePrice reproduces the backend price formula. Unknown keys fall back
// the way the backend does (standard tier, zero fees, 1.0 multiplier).
func CalculatePrice(pageCount int, serviceTier, certType, deliverySpeed, deliveryMethod string) PriceBreakdown {
	tier, ok := TierPricing[serviceTier]
	if !ok {
		tier = TierPricing["standard"]
	}
	if pageCount < 1 {
		pageCount = 1
	}

	base := float64(pageCount) * tier.PerPage
	speedMult, ok := DeliverySpeedMultiplier[deliverySpeed]
	if !ok {
		speedMult = 1.0
	}
	translationCost := base * speedMult
	certFee := CertFees[certType]
	deliveryFee := DeliveryMethodFees[deliveryMethod]

	return PriceBreakdown{
		BasePrice:       round2(base),
		SpeedMultiplier: speedMult,
		TranslationCost: round2(translationCost),
		CertFee:         round2(certFee),
		DeliveryFee:     round2(deliveryFee),
		TotalPrice:      round2(translationCost + certFee + deliveryFee),
		PerPage:         tier.PerPage,
		PageCount:       pageCount,
	}
}

// VolumeDiscount returns the enterprise discount for a monthly page volume.
func VolumeDiscount(pagesPerMonth int) float64 {
	switch {
	case pagesPerMonth >= 500:
		return 0.15
	case pagesPerMonth >= 200:
		return 0.10
	case pagesPerMonth >= 50:
		return 0.05
	}
	return 0
}
