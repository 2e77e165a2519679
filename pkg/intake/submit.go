package intake

import (
	"context"
)

// Submission is what the backend reports after a job was created from a
// finished record. Matching semantics belong to the backend.
type Submission struct {
	JobID string

	CustomerMatched  bool
	EquipmentMatched bool
}

// Submitter hands a finished record to the job-creation backend.
type Submitter interface {
	Submit(ctx context.Context, record Record, createNewUnit bool) (*Submission, error)
}

// UnitChecker reports whether a unit number is already on file for a company,
// so the caller can ask before creating a duplicate.
type UnitChecker interface {
	CheckExistingUnit(ctx context.Context, companyName, unitNumber string) bool
}
