package customvalidator

import (
	"strings"

	"github.com/go-playground/validator/v10"
)

// RegisterCustomValidations registers the TRADUX-specific rules on the
// provided validator instance.
func RegisterCustomValidations(v *validator.Validate) error {
	if err := v.RegisterValidation("service_tier", isServiceTier); err != nil {
		return err
	}
	if err := v.RegisterValidation("cert_type", isCertType); err != nil {
		return err
	}
	if err := v.RegisterValidation("delivery_speed", isDeliverySpeed); err != nil {
		return err
	}
	if err := v.RegisterValidation("delivery_method", isDeliveryMethod); err != nil {
		return err
	}
	if err := v.RegisterValidation("currency_code", isCurrencyCode); err != nil {
		return err
	}
	if err := v.RegisterValidation("review_action", isReviewAction); err != nil {
		return err
	}
	return nil
}

func oneOfFold(value string, allowed ...string) bool {
	for _, a := range allowed {
		if strings.EqualFold(value, a) {
			return true
		}
	}
	return false
}

func isServiceTier(fl validator.FieldLevel) bool {
	return oneOfFold(fl.Field().String(), "standard", "professional", "specialist")
}

func isCertType(fl validator.FieldLevel) bool {
	return oneOfFold(fl.Field().String(), "certified", "notarized", "apostille")
}

func isDeliverySpeed(fl validator.FieldLevel) bool {
	return oneOfFold(fl.Field().String(), "standard", "urgent", "same-day")
}

func isDeliveryMethod(fl validator.FieldLevel) bool {
	return oneOfFold(fl.Field().String(), "email", "mail", "fedex")
}

func isCurrencyCode(fl validator.FieldLevel) bool {
	return oneOfFold(fl.Field().String(), "usd", "brl", "eur", "gbp")
}

func isReviewAction(fl validator.FieldLevel) bool {
	return oneOfFold(fl.Field().String(), "approve", "request_correction")
}
