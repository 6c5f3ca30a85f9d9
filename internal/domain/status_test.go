package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDescribeCoversEveryStatus(t *testing.T) {
	for _, status := range AllStatuses {
		d := Describe(status)
		assert.Equal(t, status, d.Status)
		assert.NotEmpty(t, d.Label, "status %q must have a label", status)
		assert.NotEmpty(t, d.Color, "status %q must have a color", status)
		assert.True(t, status.Known())
	}
}

func TestDescribeUnknownStatusFallsBackSafely(t *testing.T) {
	for _, raw := range []Status{"ocr_processing", "shipped", "", "WEIRD"} {
		d := Describe(raw)
		assert.Equal(t, raw, d.Status)
		assert.Equal(t, string(raw), d.Label)
		assert.Equal(t, ColorNeutral, d.Color)
		assert.True(t, d.Terminal, "unknown status %q must not poll or act", raw)
		assert.False(t, d.Transient)
		assert.Empty(t, d.Actions)
		assert.False(t, raw.Known())
	}
}

func TestTransientStatuses(t *testing.T) {
	transient := map[Status]bool{
		StatusTranslating:  true,
		StatusProofreading: true,
	}
	for _, status := range AllStatuses {
		assert.Equal(t, transient[status], status.Transient(), "status %q", status)
	}
}

func TestTerminalStatusesOfferNoActions(t *testing.T) {
	for _, status := range []Status{StatusCompleted, StatusFinal} {
		d := Describe(status)
		require.True(t, d.Terminal)
		assert.Empty(t, d.Actions)
		assert.False(t, d.Transient)
	}
}

func TestActionGating(t *testing.T) {
	cases := []struct {
		status  Status
		action  Action
		allowed bool
	}{
		{StatusReceived, ActionStartTranslation, true},
		{StatusReceived, ActionApprovePM, false},
		{StatusReceived, ActionMarkComplete, false},
		{StatusTranslating, ActionStartTranslation, false},
		{StatusTranslating, ActionUploadPMTranslation, true},
		{StatusProofreading, ActionApprovePM, false},
		{StatusPMReview, ActionApprovePM, true},
		{StatusPMReview, ActionClientApprove, false},
		{StatusClientReview, ActionClientApprove, true},
		{StatusClientReview, ActionRequestCorrection, true},
		{StatusClientReview, ActionApprovePM, false},
		{StatusCorrections, ActionRetranslate, true},
		{StatusCorrections, ActionClientApprove, false},
		{StatusApproved, ActionMarkComplete, true},
		{StatusApproved, ActionStartTranslation, false},
		{StatusCompleted, ActionMarkComplete, false},
		{StatusCompleted, ActionUploadPMTranslation, false},
		{StatusPMUploadReady, ActionAcceptPMUpload, true},
		{StatusPMUploadReady, ActionApprovePM, false},
		{StatusFinal, ActionAcceptPMUpload, false},
		{StatusTranslationError, ActionRetranslate, true},
		{StatusTranslationError, ActionMarkComplete, false},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.allowed, tc.status.Allows(tc.action),
			"status %q action %q", tc.status, tc.action)
	}
}

func TestManualUploadAvailableFromAnyNonTerminalStatus(t *testing.T) {
	for _, status := range AllStatuses {
		d := Describe(status)
		if d.Terminal {
			assert.False(t, status.Allows(ActionUploadPMTranslation), "status %q", status)
			continue
		}
		assert.True(t, status.Allows(ActionUploadPMTranslation), "status %q", status)
	}
}

func TestInPipeline(t *testing.T) {
	inPipeline := map[Status]bool{
		StatusPMReview:     true,
		StatusClientReview: true,
		StatusCorrections:  true,
		StatusApproved:     true,
		StatusCompleted:    true,
	}
	for _, status := range AllStatuses {
		assert.Equal(t, inPipeline[status], status.InPipeline(), "status %q", status)
	}
	assert.False(t, Status("ocr_processing").InPipeline())
}
