package domain

// Status is the backend-reported translation pipeline status. The backend is
// authoritative; the portal only derives presentation and action gating from
// it.
type Status string

const (
	StatusReceived         Status = "received"
	StatusTranslating      Status = "translating"
	StatusProofreading     Status = "proofreading"
	StatusPMReview         Status = "pm_review"
	StatusClientReview     Status = "client_review"
	StatusCorrections      Status = "corrections"
	StatusApproved         Status = "approved"
	StatusCompleted        Status = "completed"
	StatusPMUploadReady    Status = "pm_upload_ready"
	StatusFinal            Status = "final"
	StatusTranslationError Status = "translation_error"
)

// Action is an operator- or client-triggered transition request.
type Action string

const (
	ActionStartTranslation    Action = "start_translation"
	ActionApprovePM           Action = "approve_pm"
	ActionMarkComplete        Action = "mark_complete"
	ActionRetranslate         Action = "retranslate"
	ActionUploadPMTranslation Action = "upload_pm_translation"
	ActionAcceptPMUpload      Action = "accept_pm_upload"
	ActionClientApprove       Action = "client_approve"
	ActionRequestCorrection   Action = "request_correction"
)

const (
	ColorBlue    = "blue"
	ColorIndigo  = "indigo"
	ColorPurple  = "purple"
	ColorAmber   = "amber"
	ColorOrange  = "orange"
	ColorTeal    = "teal"
	ColorGreen   = "green"
	ColorRed     = "red"
	ColorNeutral = "neutral"
)

// Descriptor is everything a view needs to render one status: badge label and
// color, whether the order still moves on its own (poll), whether it is done,
// and which actions may be offered.
type Descriptor struct {
	Status    Status   `json:"status"`
	Label     string   `json:"label"`
	Color     string   `json:"color"`
	Terminal  bool     `json:"terminal"`
	Transient bool     `json:"transient"`
	Actions   []Action `json:"actions"`
}

var statusTable = map[Status]Descriptor{
	StatusReceived: {
		Status:  StatusReceived,
		Label:   "Received",
		Color:   ColorBlue,
		Actions: []Action{ActionStartTranslation, ActionUploadPMTranslation},
	},
	StatusTranslating: {
		Status:    StatusTranslating,
		Label:     "AI Translating",
		Color:     ColorIndigo,
		Transient: true,
		Actions:   []Action{ActionUploadPMTranslation},
	},
	StatusProofreading: {
		Status:    StatusProofreading,
		Label:     "AI Proofreading",
		Color:     ColorPurple,
		Transient: true,
		Actions:   []Action{ActionUploadPMTranslation},
	},
	StatusPMReview: {
		Status:  StatusPMReview,
		Label:   "PM Review",
		Color:   ColorAmber,
		Actions: []Action{ActionApprovePM, ActionUploadPMTranslation},
	},
	StatusClientReview: {
		Status:  StatusClientReview,
		Label:   "Client Review",
		Color:   ColorTeal,
		Actions: []Action{ActionClientApprove, ActionRequestCorrection, ActionUploadPMTranslation},
	},
	StatusCorrections: {
		Status:  StatusCorrections,
		Label:   "Corrections Requested",
		Color:   ColorOrange,
		Actions: []Action{ActionRetranslate, ActionUploadPMTranslation},
	},
	StatusApproved: {
		Status:  StatusApproved,
		Label:   "Client Approved",
		Color:   ColorGreen,
		Actions: []Action{ActionMarkComplete, ActionUploadPMTranslation},
	},
	StatusCompleted: {
		Status:   StatusCompleted,
		Label:    "Completed",
		Color:    ColorGreen,
		Terminal: true,
	},
	StatusPMUploadReady: {
		Status:  StatusPMUploadReady,
		Label:   "PM Upload Ready",
		Color:   ColorTeal,
		Actions: []Action{ActionAcceptPMUpload, ActionUploadPMTranslation},
	},
	StatusFinal: {
		Status:   StatusFinal,
		Label:    "Final",
		Color:    ColorGreen,
		Terminal: true,
	},
	StatusTranslationError: {
		Status:  StatusTranslationError,
		Label:   "Translation Error",
		Color:   ColorRed,
		Actions: []Action{ActionRetranslate, ActionUploadPMTranslation},
	},
}

// AllStatuses lists the canonical taxonomy, in happy-path order first.
var AllStatuses = []Status{
	StatusReceived,
	StatusTranslating,
	StatusProofreading,
	StatusPMReview,
	StatusClientReview,
	StatusCorrections,
	StatusApproved,
	StatusCompleted,
	StatusPMUploadReady,
	StatusFinal,
	StatusTranslationError,
}

// Describe derives the render descriptor for a status. Unknown statuses get a
// safe fallback: raw label, neutral color, treated as terminal with no
// actions, so nothing polls and nothing mutates.
func Describe(s Status) Descriptor {
	if d, ok := statusTable[s]; ok {
		return d
	}
	return Descriptor{
		Status:   s,
		Label:    string(s),
		Color:    ColorNeutral,
		Terminal: true,
	}
}

func (s Status) Known() bool {
	_, ok := statusTable[s]
	return ok
}

// Transient statuses change without user action and warrant polling.
func (s Status) Transient() bool { return Describe(s).Transient }

func (s Status) Terminal() bool { return Describe(s).Terminal }

// InPipeline reports whether the status lies on (or past) the AI pipeline
// review path, i.e. translation results exist to be fetched.
func (s Status) InPipeline() bool {
	switch s {
	case StatusPMReview, StatusClientReview, StatusCorrections, StatusApproved, StatusCompleted:
		return true
	}
	return false
}

// Allows reports whether the action may be dispatched from this status.
func (s Status) Allows(a Action) bool {
	for _, allowed := range Describe(s).Actions {
		if allowed == a {
			return true
		}
	}
	return false
}
