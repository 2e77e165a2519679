package limiter

import (
	"context"

	"github.com/glidefleet/intake/pkg/ocr"

	"golang.org/x/time/rate"
)

type PlateReader interface {
	Limiter
	ocr.PlateReader
}

type limitedPlateReader struct {
	limiter *rate.Limiter
	reader  ocr.PlateReader
}

func NewPlateReader(l *rate.Limiter, r ocr.PlateReader) PlateReader {
	return &limitedPlateReader{
		limiter: l,
		reader:  r,
	}
}

func (p *limitedPlateReader) limiterSetup() {
}

func (p *limitedPlateReader) ReadPlate(ctx context.Context, image ocr.Image) (*ocr.PlateResult, error) {
	if p.limiter != nil {
		p.limiter.Wait(ctx)
	}

	return p.reader.ReadPlate(ctx, image)
}

type VinReader interface {
	Limiter
	ocr.VinReader
}

type limitedVinReader struct {
	limiter *rate.Limiter
	reader  ocr.VinReader
}

func NewVinReader(l *rate.Limiter, r ocr.VinReader) VinReader {
	return &limitedVinReader{
		limiter: l,
		reader:  r,
	}
}

func (p *limitedVinReader) limiterSetup() {
}

func (p *limitedVinReader) ReadVIN(ctx context.Context, image ocr.Image) (*ocr.VinResult, error) {
	if p.limiter != nil {
		p.limiter.Wait(ctx)
	}

	return p.reader.ReadVIN(ctx, image)
}

type CarrierReader interface {
	Limiter
	ocr.CarrierReader
}

type limitedCarrierReader struct {
	limiter *rate.Limiter
	reader  ocr.CarrierReader
}

func NewCarrierReader(l *rate.Limiter, r ocr.CarrierReader) CarrierReader {
	return &limitedCarrierReader{
		limiter: l,
		reader:  r,
	}
}

func (p *limitedCarrierReader) limiterSetup() {
}

func (p *limitedCarrierReader) ReadCarrierID(ctx context.Context, image ocr.Image) (*ocr.CarrierResult, error) {
	if p.limiter != nil {
		p.limiter.Wait(ctx)
	}

	return p.reader.ReadCarrierID(ctx, image)
}

type OdometerReader interface {
	Limiter
	ocr.OdometerReader
}

type limitedOdometerReader struct {
	limiter *rate.Limiter
	reader  ocr.OdometerReader
}

func NewOdometerReader(l *rate.Limiter, r ocr.OdometerReader) OdometerReader {
	return &limitedOdometerReader{
		limiter: l,
		reader:  r,
	}
}

func (p *limitedOdometerReader) limiterSetup() {
}

func (p *limitedOdometerReader) ReadOdometer(ctx context.Context, image ocr.Image) (*ocr.OdometerResult, error) {
	if p.limiter != nil {
		p.limiter.Wait(ctx)
	}

	return p.reader.ReadOdometer(ctx, image)
}

type CompanyReader interface {
	Limiter
	ocr.CompanyReader
}

type limitedCompanyReader struct {
	limiter *rate.Limiter
	reader  ocr.CompanyReader
}

func NewCompanyReader(l *rate.Limiter, r ocr.CompanyReader) CompanyReader {
	return &limitedCompanyReader{
		limiter: l,
		reader:  r,
	}
}

func (p *limitedCompanyReader) limiterSetup() {
}

func (p *limitedCompanyReader) ReadCompanyName(ctx context.Context, image ocr.Image) (string, error) {
	if p.limiter != nil {
		p.limiter.Wait(ctx)
	}

	return p.reader.ReadCompanyName(ctx, image)
}

type TextReader interface {
	Limiter
	ocr.TextReader
}

type limitedTextReader struct {
	limiter *rate.Limiter
	reader  ocr.TextReader
}

func NewTextReader(l *rate.Limiter, r ocr.TextReader) TextReader {
	return &limitedTextReader{
		limiter: l,
		reader:  r,
	}
}

func (p *limitedTextReader) limiterSetup() {
}

func (p *limitedTextReader) ReadText(ctx context.Context, image ocr.Image) (string, error) {
	if p.limiter != nil {
		p.limiter.Wait(ctx)
	}

	return p.reader.ReadText(ctx, image)
}
