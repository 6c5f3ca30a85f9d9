package dto

import "tradux-portal/internal/domain"

type OrderListItemDTO struct {
	ID             string        `json:"id"`
	OrderNumber    string        `json:"order_number"`
	CustomerName   string        `json:"customer_name"`
	ServiceTier    string        `json:"service_tier"`
	SourceLanguage string        `json:"source_language"`
	TargetLanguage string        `json:"target_language"`
	PageCount      int           `json:"page_count"`
	TotalPrice     float64       `json:"total_price"`
	Status         domain.Status `json:"status"`
	StatusLabel    string        `json:"status_label"`
	StatusColor    string        `json:"status_color"`
	CreatedAt      string        `json:"created_at,omitempty"`
}

// OrderDetailDTO is the admin detail payload: the raw order plus the derived
// render descriptor and the portal-side view state.
type OrderDetailDTO struct {
	Order         *domain.Order              `json:"order"`
	Descriptor    domain.Descriptor          `json:"descriptor"`
	PendingAction domain.Action              `json:"pending_action,omitempty"`
	Results       *domain.TranslationResults `json:"results,omitempty"`
	PipelineError string                     `json:"pipeline_error,omitempty"`
}

type OrderActionDTO struct {
	Action       domain.Action `json:"action" validate:"required"`
	Instructions string        `json:"instructions,omitempty"`
	Notes        string        `json:"notes,omitempty"`
}

type UpdateTranslationDTO struct {
	ProofreadText string `json:"proofread_text" validate:"required"`
}

func NewOrderListItemDTO(o domain.Order) OrderListItemDTO {
	d := o.Descriptor()
	return OrderListItemDTO{
		ID:             o.ID,
		OrderNumber:    o.OrderNumber,
		CustomerName:   o.CustomerName,
		ServiceTier:    o.ServiceTier,
		SourceLanguage: o.SourceLanguage,
		TargetLanguage: o.TargetLanguage,
		PageCount:      o.PageCount,
		TotalPrice:     o.TotalPrice,
		Status:         o.TranslationStatus,
		StatusLabel:    d.Label,
		StatusColor:    d.Color,
		CreatedAt:      o.CreatedAt,
	}
}
