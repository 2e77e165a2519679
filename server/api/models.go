package api

import (
	"github.com/glidefleet/intake/pkg/intake"
	"github.com/glidefleet/intake/pkg/lookup"
)

type ReconcileRequest struct {
	Session string `json:"session,omitempty"`

	State string `json:"state,omitempty"`

	Record *intake.Record `json:"record,omitempty"`

	Captures []Capture `json:"captures"`
}

type Capture struct {
	Kind string `json:"kind"`

	Name        string `json:"name,omitempty"`
	Image       []byte `json:"image"`
	ContentType string `json:"contentType,omitempty"`
}

type ReconcileResponse struct {
	Session string `json:"session"`

	Record intake.Record `json:"record"`

	Next string `json:"next"`

	Match *Match `json:"match,omitempty"`

	OdometerCrop []byte `json:"odometerCrop,omitempty"`

	Diagnostic string `json:"diagnostic,omitempty"`
}

type Match struct {
	Equipment *Equipment `json:"equipment,omitempty"`
	Customer  *Customer  `json:"customer,omitempty"`
}

type Equipment struct {
	Unit string `json:"unit,omitempty"`

	VIN   string `json:"vin,omitempty"`
	Year  string `json:"year,omitempty"`
	Make  string `json:"make,omitempty"`
	Model string `json:"model,omitempty"`

	LicensePlate  string `json:"licensePlate,omitempty"`
	LicenseRegion string `json:"licenseRegion,omitempty"`
}

type Customer struct {
	Name string `json:"name,omitempty"`

	CarrierIDType string `json:"carrierIdType,omitempty"`
	CarrierIDNum  string `json:"carrierIdNum,omitempty"`
}

func fromMatch(match *lookup.Match) *Match {
	if match == nil {
		return nil
	}

	result := &Match{}

	if eq := match.Equipment; eq != nil {
		result.Equipment = &Equipment{
			Unit: eq.Unit,

			VIN:   eq.VIN,
			Year:  eq.Year,
			Make:  eq.Make,
			Model: eq.Model,

			LicensePlate:  eq.LicensePlate,
			LicenseRegion: eq.LicenseRegion,
		}
	}

	if cust := match.Customer; cust != nil {
		result.Customer = &Customer{
			Name: cust.Name,

			CarrierIDType: string(cust.CarrierIDType),
			CarrierIDNum:  cust.CarrierIDNum,
		}
	}

	return result
}

type CheckUnitRequest struct {
	CompanyName string `json:"companyName" validate:"required"`
	UnitNumber  string `json:"unitNumber" validate:"required"`
}

type CheckUnitResponse struct {
	Exists bool `json:"exists"`
}

type SubmitRequest struct {
	Record SubmitRecord `json:"record" validate:"required"`

	CreateNewUnit bool `json:"createNewUnit"`
}

// SubmitRecord mirrors intake.Record with the shape constraints enforced at
// the API boundary. Field-level semantics (check digits, carrier-ID lengths)
// stay with the domain validators.
type SubmitRecord struct {
	CompanyName string `json:"companyName" validate:"required"`

	CarrierIDType string `json:"carrierIdType" validate:"omitempty,oneof=dot mc ca"`
	CarrierIDNum  string `json:"carrierIdNum" validate:"omitempty,numeric"`

	UnitNumber string `json:"unitNumber" validate:"omitempty,max=20"`

	LicensePlate  string `json:"licensePlate"`
	LicenseRegion string `json:"licenseRegion"`

	VIN string `json:"vin" validate:"omitempty,len=17"`

	Year  string `json:"year" validate:"omitempty,numeric,len=4"`
	Make  string `json:"make"`
	Model string `json:"model"`

	Odometer string `json:"odometer" validate:"omitempty,numeric,max=7"`
}

type SubmitResponse struct {
	JobID string `json:"jobId"`

	CustomerMatched  bool `json:"customerMatched"`
	EquipmentMatched bool `json:"equipmentMatched"`
}

type VinRequest struct {
	VIN string `json:"vin"`
}

type VinValidateResponse struct {
	VIN string `json:"vin"`

	Valid bool   `json:"valid"`
	Error string `json:"error,omitempty"`
}

type VinCorrectResponse struct {
	VIN string `json:"vin"`

	Corrected string `json:"corrected"`
	Valid     bool   `json:"valid"`
}

type CarrierParseRequest struct {
	Text string `json:"text"`
}

type CarrierParseResponse struct {
	DOT string `json:"dot,omitempty"`
	MC  string `json:"mc,omitempty"`

	Type   string `json:"type,omitempty"`
	Number string `json:"number,omitempty"`
}

type CarrierValidateRequest struct {
	Type   string `json:"type"`
	Number string `json:"number"`
}

type CarrierValidateResponse struct {
	Valid bool   `json:"valid"`
	Error string `json:"error,omitempty"`
}

type OdometerRequest struct {
	Value string `json:"value,omitempty"`
	Text  string `json:"text,omitempty"`
}

type OdometerResponse struct {
	Odometer string `json:"odometer"`
}
