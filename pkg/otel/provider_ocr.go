package otel

import (
	"context"

	"github.com/glidefleet/intake/pkg/ocr"
)

type PlateReader interface {
	Observable
	ocr.PlateReader
}

type observablePlateReader struct {
	name string

	reader ocr.PlateReader
}

func NewPlateReader(name string, r ocr.PlateReader) PlateReader {
	return &observablePlateReader{
		name: name,

		reader: r,
	}
}

func (p *observablePlateReader) otelSetup() {
}

func (p *observablePlateReader) ReadPlate(ctx context.Context, image ocr.Image) (*ocr.PlateResult, error) {
	ctx, span := startSpan(ctx, "read-plate "+p.name)
	defer span.End()

	return p.reader.ReadPlate(ctx, image)
}

type VinReader interface {
	Observable
	ocr.VinReader
}

type observableVinReader struct {
	name string

	reader ocr.VinReader
}

func NewVinReader(name string, r ocr.VinReader) VinReader {
	return &observableVinReader{
		name: name,

		reader: r,
	}
}

func (p *observableVinReader) otelSetup() {
}

func (p *observableVinReader) ReadVIN(ctx context.Context, image ocr.Image) (*ocr.VinResult, error) {
	ctx, span := startSpan(ctx, "read-vin "+p.name)
	defer span.End()

	return p.reader.ReadVIN(ctx, image)
}

type CarrierReader interface {
	Observable
	ocr.CarrierReader
}

type observableCarrierReader struct {
	name string

	reader ocr.CarrierReader
}

func NewCarrierReader(name string, r ocr.CarrierReader) CarrierReader {
	return &observableCarrierReader{
		name: name,

		reader: r,
	}
}

func (p *observableCarrierReader) otelSetup() {
}

func (p *observableCarrierReader) ReadCarrierID(ctx context.Context, image ocr.Image) (*ocr.CarrierResult, error) {
	ctx, span := startSpan(ctx, "read-carrier-id "+p.name)
	defer span.End()

	return p.reader.ReadCarrierID(ctx, image)
}

type OdometerReader interface {
	Observable
	ocr.OdometerReader
}

type observableOdometerReader struct {
	name string

	reader ocr.OdometerReader
}

func NewOdometerReader(name string, r ocr.OdometerReader) OdometerReader {
	return &observableOdometerReader{
		name: name,

		reader: r,
	}
}

func (p *observableOdometerReader) otelSetup() {
}

func (p *observableOdometerReader) ReadOdometer(ctx context.Context, image ocr.Image) (*ocr.OdometerResult, error) {
	ctx, span := startSpan(ctx, "read-odometer "+p.name)
	defer span.End()

	return p.reader.ReadOdometer(ctx, image)
}

type CompanyReader interface {
	Observable
	ocr.CompanyReader
}

type observableCompanyReader struct {
	name string

	reader ocr.CompanyReader
}

func NewCompanyReader(name string, r ocr.CompanyReader) CompanyReader {
	return &observableCompanyReader{
		name: name,

		reader: r,
	}
}

func (p *observableCompanyReader) otelSetup() {
}

func (p *observableCompanyReader) ReadCompanyName(ctx context.Context, image ocr.Image) (string, error) {
	ctx, span := startSpan(ctx, "read-company-name "+p.name)
	defer span.End()

	return p.reader.ReadCompanyName(ctx, image)
}

type TextReader interface {
	Observable
	ocr.TextReader
}

type observableTextReader struct {
	name string

	reader ocr.TextReader
}

func NewTextReader(name string, r ocr.TextReader) TextReader {
	return &observableTextReader{
		name: name,

		reader: r,
	}
}

func (p *observableTextReader) otelSetup() {
}

func (p *observableTextReader) ReadText(ctx context.Context, image ocr.Image) (string, error) {
	ctx, span := startSpan(ctx, "read-text "+p.name)
	defer span.End()

	return p.reader.ReadText(ctx, image)
}
