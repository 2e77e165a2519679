package ocr

import (
	"context"
	"errors"
)

var (
	ErrUnsupported = errors.New("unsupported type")
)

// Image is a captured document photo handed to a recognizer.
type Image struct {
	Name string

	Content     []byte
	ContentType string
}

// PlateResult is the outcome of a dedicated license-plate recognition call.
type PlateResult struct {
	Plate  string
	Region string
}

// VinResult is the outcome of a dedicated VIN recognition call. Year, make
// and model are present only when the vendor decodes them alongside the VIN.
type VinResult struct {
	VIN string

	Year  string
	Make  string
	Model string
}

// CarrierResult is the outcome of a dedicated DOT/MC recognition call. A
// vendor may return a structured pair, or only raw text that still needs
// parsing.
type CarrierResult struct {
	DOT string
	MC  string

	Raw string
}

// OdometerResult is the outcome of a dedicated odometer recognition call.
// Refined is an optional cropped image of the reading, kept for display only.
type OdometerResult struct {
	Value string

	Refined []byte
}

type PlateReader interface {
	ReadPlate(ctx context.Context, image Image) (*PlateResult, error)
}

type VinReader interface {
	ReadVIN(ctx context.Context, image Image) (*VinResult, error)
}

type CarrierReader interface {
	ReadCarrierID(ctx context.Context, image Image) (*CarrierResult, error)
}

type OdometerReader interface {
	ReadOdometer(ctx context.Context, image Image) (*OdometerResult, error)
}

type CompanyReader interface {
	ReadCompanyName(ctx context.Context, image Image) (string, error)
}

type TextReader interface {
	ReadText(ctx context.Context, image Image) (string, error)
}
