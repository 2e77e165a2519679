// Package multi chains recognizers of the same kind: each reader is tried in
// order and the first non-empty result wins. A vendor failure falls through
// to the next reader instead of failing the chain.
package multi

import (
	"context"

	"github.com/glidefleet/intake/pkg/ocr"
)

var (
	_ ocr.PlateReader   = &PlateReader{}
	_ ocr.CarrierReader = &CarrierReader{}
	_ ocr.CompanyReader = &CompanyReader{}
	_ ocr.TextReader    = &TextReader{}
)

type PlateReader struct {
	readers []ocr.PlateReader
}

func NewPlateReader(reader ...ocr.PlateReader) *PlateReader {
	return &PlateReader{
		readers: reader,
	}
}

func (m *PlateReader) ReadPlate(ctx context.Context, image ocr.Image) (*ocr.PlateResult, error) {
	var lastErr error

	for _, r := range m.readers {
		result, err := r.ReadPlate(ctx, image)

		if err != nil {
			lastErr = err
			continue
		}

		if result != nil && (result.Plate != "" || result.Region != "") {
			return result, nil
		}
	}

	if lastErr != nil {
		return nil, lastErr
	}

	return &ocr.PlateResult{}, nil
}

type CarrierReader struct {
	readers []ocr.CarrierReader
}

func NewCarrierReader(reader ...ocr.CarrierReader) *CarrierReader {
	return &CarrierReader{
		readers: reader,
	}
}

func (m *CarrierReader) ReadCarrierID(ctx context.Context, image ocr.Image) (*ocr.CarrierResult, error) {
	var lastErr error

	for _, r := range m.readers {
		result, err := r.ReadCarrierID(ctx, image)

		if err != nil {
			lastErr = err
			continue
		}

		if result != nil && (result.DOT != "" || result.MC != "" || result.Raw != "") {
			return result, nil
		}
	}

	if lastErr != nil {
		return nil, lastErr
	}

	return &ocr.CarrierResult{}, nil
}

type CompanyReader struct {
	readers []ocr.CompanyReader
}

func NewCompanyReader(reader ...ocr.CompanyReader) *CompanyReader {
	return &CompanyReader{
		readers: reader,
	}
}

func (m *CompanyReader) ReadCompanyName(ctx context.Context, image ocr.Image) (string, error) {
	var lastErr error

	for _, r := range m.readers {
		name, err := r.ReadCompanyName(ctx, image)

		if err != nil {
			lastErr = err
			continue
		}

		if name != "" {
			return name, nil
		}
	}

	if lastErr != nil {
		return "", lastErr
	}

	return "", nil
}

type TextReader struct {
	readers []ocr.TextReader
}

func NewTextReader(reader ...ocr.TextReader) *TextReader {
	return &TextReader{
		readers: reader,
	}
}

func (m *TextReader) ReadText(ctx context.Context, image ocr.Image) (string, error) {
	var lastErr error

	for _, r := range m.readers {
		text, err := r.ReadText(ctx, image)

		if err != nil {
			lastErr = err
			continue
		}

		if text != "" {
			return text, nil
		}
	}

	if lastErr != nil {
		return "", lastErr
	}

	return "", nil
}
