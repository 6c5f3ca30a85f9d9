package services

import (
	"context"
	"encoding/json"
	"io"
	"math"
	"net/http"
	"strings"
	"time"

	"go.uber.org/zap"

	"tradux-portal/internal/domain"
	"tradux-portal/internal/dto"
	"tradux-portal/internal/repositories"
)

const ratesCacheKey = "tradux:rates:usd"

const (
	rateSourceBase     = "base"
	rateSourceCache    = "cache"
	rateSourceLive     = "live"
	rateSourceFallback = "fallback"
)

type PricingServiceInterface interface {
	Estimate(ctx context.Context, req dto.EstimateRequestDTO) (*dto.EstimateResponseDTO, error)
	ROI(ctx context.Context, req dto.ROIRequestDTO) (*dto.ROIResponseDTO, error)
	ConvertFromUSD(ctx context.Context, amount float64, currency string) (float64, string)
}

// pricingService computes non-binding price previews and the enterprise ROI
// comparison. USD is the base currency; live rates are cached in Redis and
// degrade to the hardcoded fallback table when the source is unreachable.
type pricingService struct {
	cache     repositories.CacheRepositoryInterface
	client    *http.Client
	sourceURL string
	cacheTTL  time.Duration
	logger    *zap.Logger
}

func NewPricingService(cache repositories.CacheRepositoryInterface, sourceURL string, cacheTTL time.Duration, logger *zap.Logger) PricingServiceInterface {
	return &pricingService{
		cache:     cache,
		client:    &http.Client{Timeout: 5 * time.Second},
		sourceURL: sourceURL,
		cacheTTL:  cacheTTL,
		logger:    logger,
	}
}

func (s *pricingService) Estimate(ctx context.Context, req dto.EstimateRequestDTO) (*dto.EstimateResponseDTO, error) {
	breakdown := domain.CalculatePrice(req.PageCount, req.ServiceTier, req.CertType, req.DeliverySpeed, req.DeliveryMethod)

	currency := normalizeCurrency(req.Currency)
	converted, source := s.ConvertFromUSD(ctx, breakdown.TotalPrice, currency)

	symbol := "$"
	if info, ok := domain.Currencies[currency]; ok {
		symbol = info.Symbol
	}

	return &dto.EstimateResponseDTO{
		BasePrice:       breakdown.BasePrice,
		SpeedMultiplier: breakdown.SpeedMultiplier,
		TranslationCost: breakdown.TranslationCost,
		CertFee:         breakdown.CertFee,
		DeliveryFee:     breakdown.DeliveryFee,
		TotalPrice:      breakdown.TotalPrice,
		PerPage:         breakdown.PerPage,
		PageCount:       breakdown.PageCount,
		Currency:        currency,
		CurrencySymbol:  symbol,
		ConvertedTotal:  converted,
		RateSource:      source,
	}, nil
}

func (s *pricingService) ROI(ctx context.Context, req dto.ROIRequestDTO) (*dto.ROIResponseDTO, error) {
	tier, ok := domain.TierPricing[req.ServiceTier]
	if !ok {
		tier = domain.TierPricing["standard"]
	}

	pagesPerMonth := req.DocumentsPerMonth * req.AvgPagesPerDoc
	discount := domain.VolumeDiscount(pagesPerMonth)
	discountedPerPage := round2(tier.PerPage * (1 - discount))

	traduxCost := round2(float64(pagesPerMonth) * discountedPerPage)
	inHouseCost := round2(float64(pagesPerMonth) * req.InHouseCostPage)
	savings := round2(inHouseCost - traduxCost)

	currency := normalizeCurrency(req.Currency)
	converted, source := s.ConvertFromUSD(ctx, savings, currency)

	return &dto.ROIResponseDTO{
		PagesPerMonth:      pagesPerMonth,
		PerPageRate:        tier.PerPage,
		VolumeDiscount:     discount,
		DiscountedPerPage:  discountedPerPage,
		MonthlyTraduxCost:  traduxCost,
		MonthlyInHouseCost: inHouseCost,
		MonthlySavings:     savings,
		AnnualSavings:      round2(savings * 12),
		Currency:           currency,
		ConvertedSavings:   converted,
		RateSource:         source,
	}, nil
}

// ConvertFromUSD converts a USD amount into the requested currency and
// reports where the rate came from. Conversion never fails: unknown
// currencies and unreachable sources degrade to the fallback table.
func (s *pricingService) ConvertFromUSD(ctx context.Context, amount float64, currency string) (float64, string) {
	currency = normalizeCurrency(currency)
	if currency == "usd" {
		return round2(amount), rateSourceBase
	}

	rates, source := s.getRates(ctx)
	rate, ok := rates[strings.ToUpper(currency)]
	if !ok || rate <= 0 {
		rate, ok = domain.FallbackRates[currency]
		source = rateSourceFallback
		if !ok {
			return round2(amount), rateSourceBase
		}
	}
	return round2(amount * rate), source
}

func (s *pricingService) getRates(ctx context.Context) (map[string]float64, string) {
	if cached, err := s.cache.Get(ctx, ratesCacheKey); err == nil && cached != "" {
		var rates map[string]float64
		if err := json.Unmarshal([]byte(cached), &rates); err == nil {
			return rates, rateSourceCache
		}
	}

	rates, err := s.fetchRates(ctx)
	if err != nil {
		s.logger.Warn("exchange rate fetch failed, using fallback rates", zap.Error(err))
		fallback := make(map[string]float64, len(domain.FallbackRates))
		for code, rate := range domain.FallbackRates {
			fallback[strings.ToUpper(code)] = rate
		}
		return fallback, rateSourceFallback
	}

	if raw, err := json.Marshal(rates); err == nil {
		if err := s.cache.Set(ctx, ratesCacheKey, string(raw), s.cacheTTL); err != nil {
			s.logger.Warn("exchange rate cache write failed", zap.Error(err))
		}
	}
	return rates, rateSourceLive
}

func (s *pricingService) fetchRates(ctx context.Context) (map[string]float64, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.sourceURL, nil)
	if err != nil {
		return nil, err
	}
	resp, err := s.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}
	var body struct {
		Rates map[string]float64 `json:"rates"`
	}
	if err := json.Unmarshal(raw, &body); err != nil {
		return nil, err
	}
	return body.Rates, nil
}

func normalizeCurrency(currency string) string {
	currency = strings.ToLower(strings.TrimSpace(currency))
	if currency == "" {
		return "usd"
	}
	if _, ok := domain.Currencies[currency]; !ok {
		return "usd"
	}
	return currency
}

func round2(v float64) float64 { return math.Round(v*100) / 100 }
