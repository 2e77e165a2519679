package intake

import (
	"github.com/glidefleet/intake/pkg/lookup"
	"github.com/glidefleet/intake/pkg/ocr"

	"github.com/google/uuid"
)

// DocumentKind names the document a photo shows, one per wizard step.
type DocumentKind string

const (
	DocumentLicense   DocumentKind = "license"
	DocumentCompany   DocumentKind = "company"
	DocumentCarrierID DocumentKind = "dotmc"
	DocumentVIN       DocumentKind = "vin"
	DocumentUnit      DocumentKind = "unit"
	DocumentOdometer  DocumentKind = "odometer"
)

// documentOrder is the canonical processing order, matching the wizard steps.
var documentOrder = []DocumentKind{
	DocumentLicense,
	DocumentCompany,
	DocumentCarrierID,
	DocumentVIN,
	DocumentUnit,
	DocumentOdometer,
}

// Capture is one photographed document awaiting reconciliation.
type Capture struct {
	Kind DocumentKind

	Image ocr.Image
}

// SessionState tags where a session stands, so reconciliation branches on an
// explicit state instead of inferring intent from which photos happen to be
// present.
type SessionState string

const (
	// StateFresh is a new session; a lone license-plate capture triggers the
	// lookup-first flow.
	StateFresh SessionState = "fresh"

	// StateFullCapture is the per-field wizard after no existing unit was
	// found (or the user declined one).
	StateFullCapture SessionState = "full-capture"

	// StateAwaitingOdometer is the continuation after an existing unit was
	// confirmed; only the odometer is still to be captured.
	StateAwaitingOdometer SessionState = "awaiting-odometer"
)

// NextStep tells the caller where the wizard goes after reconciliation.
type NextStep string

const (
	NextReview              NextStep = "review"
	NextConfirmExistingUnit NextStep = "confirm-existing-unit"
	NextContinueCapture     NextStep = "continue-capture"
)

// Session is one in-progress intake.
type Session struct {
	ID string

	State  SessionState
	Record Record
}

func NewSession() *Session {
	return &Session{
		ID: uuid.NewString(),

		State:  StateFresh,
		Record: NewRecord(),
	}
}

// Outcome is the result of one reconciliation pass. It is a plain value; the
// caller may discard it without side effects.
type Outcome struct {
	Record Record

	Next NextStep

	// Match carries the existing unit found in the lookup-first flow.
	Match *lookup.Match

	// OdometerCrop is the refined odometer sub-image, display metadata only.
	OdometerCrop []byte

	// Diagnostic is a user-facing message attached when some field's OCR
	// failed; the record is still delivered.
	Diagnostic string
}
