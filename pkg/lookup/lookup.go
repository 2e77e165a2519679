package lookup

import (
	"context"

	"github.com/glidefleet/intake/pkg/carrier"
)

// Equipment is a unit already known to the fleet backend.
type Equipment struct {
	Unit string

	VIN   string
	Year  string
	Make  string
	Model string

	LicensePlate  string
	LicenseRegion string
}

// Customer is the carrier a known unit belongs to.
type Customer struct {
	Name string

	CarrierIDType carrier.IDType
	CarrierIDNum  string
}

// Match pairs a found unit with its customer.
type Match struct {
	Equipment *Equipment
	Customer  *Customer
}

type Query struct {
	VIN string

	Plate  string
	Region string

	Company string
}

// Provider finds existing equipment by VIN or license plate. A nil Match with
// a nil error means no unit is on file.
type Provider interface {
	FindEquipment(ctx context.Context, query Query) (*Match, error)
}

// Vehicle is the year/make/model triple decoded from a VIN.
type Vehicle struct {
	Year  string
	Make  string
	Model string
}

// Decoder resolves a VIN against reference data. A nil Vehicle with a nil
// error means the VIN could not be decoded.
type Decoder interface {
	DecodeVIN(ctx context.Context, vin string) (*Vehicle, error)
}
