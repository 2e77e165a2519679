package intake

import (
	"github.com/glidefleet/intake/pkg/carrier"
)

// Record is the structured output of one capture session. All fields are
// plain strings; absence is the empty string, never a null, so the record
// stays serializable and diffable.
type Record struct {
	CompanyName string `json:"companyName"`

	CarrierIDType carrier.IDType `json:"carrierIdType"`
	CarrierIDNum  string         `json:"carrierIdNum"`

	UnitNumber string `json:"unitNumber"`

	LicensePlate  string `json:"licensePlate"`
	LicenseRegion string `json:"licenseRegion"`

	VIN string `json:"vin"`

	Year  string `json:"year"`
	Make  string `json:"make"`
	Model string `json:"model"`

	Odometer string `json:"odometer"`
}

// NewRecord returns a fresh empty record. Each session gets its own value so
// concurrent sessions never observe cross-contamination.
func NewRecord() Record {
	return Record{
		CarrierIDType: carrier.TypeDOT,
	}
}
