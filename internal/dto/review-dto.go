package dto

type SubmitReviewDTO struct {
	Action          string `json:"action" validate:"required,review_action"`
	CorrectionNotes string `json:"correction_notes,omitempty"`
}

type ReviewResultDTO struct {
	Status  string `json:"status"`
	Message string `json:"message"`
}
