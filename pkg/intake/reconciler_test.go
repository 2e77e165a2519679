package intake_test

import (
	"context"
	"errors"
	"testing"

	"github.com/glidefleet/intake/pkg/carrier"
	"github.com/glidefleet/intake/pkg/intake"
	"github.com/glidefleet/intake/pkg/lookup"
	"github.com/glidefleet/intake/pkg/ocr"

	"github.com/stretchr/testify/require"
)

type fakePlateReader struct {
	result *ocr.PlateResult
	err    error
}

func (f *fakePlateReader) ReadPlate(ctx context.Context, image ocr.Image) (*ocr.PlateResult, error) {
	return f.result, f.err
}

type fakeVinReader struct {
	result *ocr.VinResult
	err    error
}

func (f *fakeVinReader) ReadVIN(ctx context.Context, image ocr.Image) (*ocr.VinResult, error) {
	return f.result, f.err
}

type fakeCarrierReader struct {
	result *ocr.CarrierResult
	err    error
}

func (f *fakeCarrierReader) ReadCarrierID(ctx context.Context, image ocr.Image) (*ocr.CarrierResult, error) {
	return f.result, f.err
}

type fakeOdometerReader struct {
	result *ocr.OdometerResult
	err    error
}

func (f *fakeOdometerReader) ReadOdometer(ctx context.Context, image ocr.Image) (*ocr.OdometerResult, error) {
	return f.result, f.err
}

type fakeCompanyReader struct {
	name string
	err  error
}

func (f *fakeCompanyReader) ReadCompanyName(ctx context.Context, image ocr.Image) (string, error) {
	return f.name, f.err
}

type fakeTextReader struct {
	text string
	err  error
}

func (f *fakeTextReader) ReadText(ctx context.Context, image ocr.Image) (string, error) {
	return f.text, f.err
}

type fakeProvider struct {
	match *lookup.Match
	err   error

	query lookup.Query
}

func (f *fakeProvider) FindEquipment(ctx context.Context, query lookup.Query) (*lookup.Match, error) {
	f.query = query
	return f.match, f.err
}

type fakeDecoder struct {
	vehicle *lookup.Vehicle
	err     error
}

func (f *fakeDecoder) DecodeVIN(ctx context.Context, vin string) (*lookup.Vehicle, error) {
	return f.vehicle, f.err
}

func capture(kind intake.DocumentKind) intake.Capture {
	return intake.Capture{
		Kind: kind,

		Image: ocr.Image{
			Name: string(kind) + ".jpg",

			Content:     []byte{0xff, 0xd8},
			ContentType: "image/jpeg",
		},
	}
}

func TestProcessZeroCaptures(t *testing.T) {
	r := &intake.Reconciler{}

	outcome := r.Process(t.Context(), intake.StateFresh, intake.NewRecord(), nil)

	require.Equal(t, intake.NewRecord(), outcome.Record)
	require.Equal(t, intake.NextReview, outcome.Next)
}

func TestProcessZeroCapturesKeepsRecordWhenAwaitingOdometer(t *testing.T) {
	r := &intake.Reconciler{}

	record := intake.NewRecord()
	record.VIN = "1HGCM82633A004352"
	record.CompanyName = "MILES X LLC"

	outcome := r.Process(t.Context(), intake.StateAwaitingOdometer, record, nil)

	require.Equal(t, record, outcome.Record)
	require.Equal(t, intake.NextReview, outcome.Next)
}

func TestProcessPlateNeverFromGenericText(t *testing.T) {
	r := &intake.Reconciler{
		Texts: &fakeTextReader{text: "ABC 1234\nCALIFORNIA"},
	}

	outcome := r.Process(t.Context(), intake.StateFullCapture, intake.NewRecord(), []intake.Capture{
		capture(intake.DocumentLicense),
		capture(intake.DocumentVIN),
	})

	require.Empty(t, outcome.Record.LicensePlate)
	require.Empty(t, outcome.Record.VIN)
	require.Empty(t, outcome.Diagnostic)
}

func TestProcessLicenseFirstMatch(t *testing.T) {
	provider := &fakeProvider{
		match: &lookup.Match{
			Equipment: &lookup.Equipment{
				Unit: "T-4812",

				VIN:   "1HGCM82633A004352",
				Year:  "2003",
				Make:  "HONDA",
				Model: "ACCORD",

				LicensePlate:  "OLD123",
				LicenseRegion: "NV",
			},
			Customer: &lookup.Customer{
				Name: "MILES X LLC",

				CarrierIDType: carrier.TypeDOT,
				CarrierIDNum:  "3916245",
			},
		},
	}

	r := &intake.Reconciler{
		Plates: &fakePlateReader{result: &ocr.PlateResult{Plate: "8ABC123", Region: "CA"}},
		Units:  provider,
	}

	outcome := r.Process(t.Context(), intake.StateFresh, intake.NewRecord(), []intake.Capture{
		capture(intake.DocumentLicense),
	})

	require.Equal(t, intake.NextConfirmExistingUnit, outcome.Next)
	require.NotNil(t, outcome.Match)

	require.Equal(t, "8ABC123", provider.query.Plate)
	require.Equal(t, "CA", provider.query.Region)

	record := outcome.Record

	require.Equal(t, "T-4812", record.UnitNumber)
	require.Equal(t, "1HGCM82633A004352", record.VIN)
	require.Equal(t, "2003", record.Year)
	require.Equal(t, "HONDA", record.Make)
	require.Equal(t, "ACCORD", record.Model)
	require.Equal(t, "MILES X LLC", record.CompanyName)
	require.Equal(t, carrier.TypeDOT, record.CarrierIDType)
	require.Equal(t, "3916245", record.CarrierIDNum)

	// the photographed plate wins over the plate on file
	require.Equal(t, "8ABC123", record.LicensePlate)
	require.Equal(t, "CA", record.LicenseRegion)

	// odometer stays empty for the follow-up capture
	require.Empty(t, record.Odometer)
}

func TestProcessLicenseFirstNoMatch(t *testing.T) {
	r := &intake.Reconciler{
		Plates: &fakePlateReader{result: &ocr.PlateResult{Plate: "8ABC123", Region: "CA"}},
		Units:  &fakeProvider{},
	}

	outcome := r.Process(t.Context(), intake.StateFresh, intake.NewRecord(), []intake.Capture{
		capture(intake.DocumentLicense),
	})

	require.Equal(t, intake.NextContinueCapture, outcome.Next)
	require.Nil(t, outcome.Match)
	require.Equal(t, "8ABC123", outcome.Record.LicensePlate)
}

func TestProcessAwaitingOdometer(t *testing.T) {
	crop := []byte{0x01, 0x02}

	r := &intake.Reconciler{
		Odometers: &fakeOdometerReader{result: &ocr.OdometerResult{Value: "34,672 km", Refined: crop}},
	}

	record := intake.NewRecord()
	record.VIN = "1HGCM82633A004352"
	record.CompanyName = "MILES X LLC"

	outcome := r.Process(t.Context(), intake.StateAwaitingOdometer, record, []intake.Capture{
		capture(intake.DocumentOdometer),
	})

	require.Equal(t, intake.NextReview, outcome.Next)
	require.Equal(t, "34672", outcome.Record.Odometer)
	require.Equal(t, crop, outcome.OdometerCrop)

	require.Equal(t, "1HGCM82633A004352", outcome.Record.VIN)
	require.Equal(t, "MILES X LLC", outcome.Record.CompanyName)
}

func TestProcessFullCapture(t *testing.T) {
	r := &intake.Reconciler{
		Plates:    &fakePlateReader{result: &ocr.PlateResult{Plate: "8ABC123", Region: "CA"}},
		VINs:      &fakeVinReader{result: &ocr.VinResult{VIN: "1HGCM82633AOO4352"}},
		Carriers:  &fakeCarrierReader{result: &ocr.CarrierResult{DOT: "3916245"}},
		Odometers: &fakeOdometerReader{result: &ocr.OdometerResult{Value: "40697"}},
		Companies: &fakeCompanyReader{name: "MILES X LLC"},
		Texts:     &fakeTextReader{text: "TRUCK 4812\nsecond line"},

		Decoder: &fakeDecoder{vehicle: &lookup.Vehicle{Year: "2003", Make: "HONDA", Model: "ACCORD"}},
	}

	outcome := r.Process(t.Context(), intake.StateFullCapture, intake.NewRecord(), []intake.Capture{
		capture(intake.DocumentLicense),
		capture(intake.DocumentCompany),
		capture(intake.DocumentCarrierID),
		capture(intake.DocumentVIN),
		capture(intake.DocumentUnit),
		capture(intake.DocumentOdometer),
	})

	require.Equal(t, intake.NextReview, outcome.Next)
	require.Empty(t, outcome.Diagnostic)

	record := outcome.Record

	require.Equal(t, "8ABC123", record.LicensePlate)
	require.Equal(t, "CA", record.LicenseRegion)

	// scanned VIN is corrected, gaps filled from the reference decoder
	require.Equal(t, "1HGCM82633A004352", record.VIN)
	require.Equal(t, "2003", record.Year)
	require.Equal(t, "HONDA", record.Make)
	require.Equal(t, "ACCORD", record.Model)

	require.Equal(t, carrier.TypeDOT, record.CarrierIDType)
	require.Equal(t, "3916245", record.CarrierIDNum)

	require.Equal(t, "MILES X LLC", record.CompanyName)
	require.Equal(t, "TRUCK 4812", record.UnitNumber)
	require.Equal(t, "40697", record.Odometer)
}

func TestReconcileCarrierStructuredPairPrefersDOT(t *testing.T) {
	r := &intake.Reconciler{
		Carriers: &fakeCarrierReader{result: &ocr.CarrierResult{DOT: "3916245", MC: "1447165"}},
	}

	record, err := r.ReconcileField(t.Context(), intake.DocumentCarrierID, ocr.Image{}, intake.NewRecord())

	require.NoError(t, err)
	require.Equal(t, carrier.TypeDOT, record.CarrierIDType)
	require.Equal(t, "3916245", record.CarrierIDNum)
}

func TestReconcileCarrierRawFallback(t *testing.T) {
	r := &intake.Reconciler{
		Carriers: &fakeCarrierReader{result: &ocr.CarrierResult{Raw: "MC 1447165"}},
		Texts:    &fakeTextReader{text: "US DOT 9999999"},
	}

	record, err := r.ReconcileField(t.Context(), intake.DocumentCarrierID, ocr.Image{}, intake.NewRecord())

	require.NoError(t, err)

	// raw text from the dedicated recognizer wins over generic OCR
	require.Equal(t, carrier.TypeMC, record.CarrierIDType)
	require.Equal(t, "1447165", record.CarrierIDNum)
}

func TestReconcileCarrierGenericTextFallback(t *testing.T) {
	r := &intake.Reconciler{
		Carriers: &fakeCarrierReader{result: &ocr.CarrierResult{}},
		Texts:    &fakeTextReader{text: "MILES X LLC\nUS DOT 3916245"},
	}

	record, err := r.ReconcileField(t.Context(), intake.DocumentCarrierID, ocr.Image{}, intake.NewRecord())

	require.NoError(t, err)
	require.Equal(t, carrier.TypeDOT, record.CarrierIDType)
	require.Equal(t, "3916245", record.CarrierIDNum)
}

func TestReconcileCompanyFallsBackToText(t *testing.T) {
	r := &intake.Reconciler{
		Companies: &fakeCompanyReader{err: errors.New("vendor down")},
		Texts:     &fakeTextReader{text: "MILES X LLC"},
	}

	record, err := r.ReconcileField(t.Context(), intake.DocumentCompany, ocr.Image{}, intake.NewRecord())

	require.NoError(t, err)
	require.Equal(t, "MILES X LLC", record.CompanyName)
}

func TestProcessAttachesDiagnosticOnFailure(t *testing.T) {
	r := &intake.Reconciler{
		Plates:    &fakePlateReader{err: errors.New("vendor down")},
		Companies: &fakeCompanyReader{name: "MILES X LLC"},
	}

	outcome := r.Process(t.Context(), intake.StateFullCapture, intake.NewRecord(), []intake.Capture{
		capture(intake.DocumentLicense),
		capture(intake.DocumentCompany),
	})

	require.Equal(t, intake.DiagnosticOCRFailure, outcome.Diagnostic)

	// the failing field stays empty, the rest is still populated
	require.Empty(t, outcome.Record.LicensePlate)
	require.Equal(t, "MILES X LLC", outcome.Record.CompanyName)
}

func TestReconcileVINKeepsVendorVehicleData(t *testing.T) {
	r := &intake.Reconciler{
		VINs: &fakeVinReader{result: &ocr.VinResult{
			VIN: "1HGCM82633A004352",

			Year: "2003",
			Make: "HONDA",
		}},

		Decoder: &fakeDecoder{vehicle: &lookup.Vehicle{Year: "1999", Make: "FORD", Model: "ACCORD"}},
	}

	record, err := r.ReconcileField(t.Context(), intake.DocumentVIN, ocr.Image{}, intake.NewRecord())

	require.NoError(t, err)

	// vendor values win; only the missing model comes from the decoder
	require.Equal(t, "2003", record.Year)
	require.Equal(t, "HONDA", record.Make)
	require.Equal(t, "ACCORD", record.Model)
}

func TestReconcileVINFromNoisyText(t *testing.T) {
	r := &intake.Reconciler{
		VINs: &fakeVinReader{result: &ocr.VinResult{VIN: "VIN: 1HGCM82633A004352\nMFD 03/2003"}},
	}

	record, err := r.ReconcileField(t.Context(), intake.DocumentVIN, ocr.Image{}, intake.NewRecord())

	require.NoError(t, err)
	require.Equal(t, "1HGCM82633A004352", record.VIN)
}

func TestReconcilePlateFromNoisyText(t *testing.T) {
	r := &intake.Reconciler{
		Plates: &fakePlateReader{result: &ocr.PlateResult{Plate: "CALIFORNIA SESQUICENTENNIAL\n8ABC123", Region: "CA"}},
	}

	record, err := r.ReconcileField(t.Context(), intake.DocumentLicense, ocr.Image{}, intake.NewRecord())

	require.NoError(t, err)
	require.Equal(t, "8ABC123", record.LicensePlate)
	require.Equal(t, "CA", record.LicenseRegion)
}

func TestReconcileVINSwallowsDecoderFailure(t *testing.T) {
	r := &intake.Reconciler{
		VINs:    &fakeVinReader{result: &ocr.VinResult{VIN: "1HGCM82633A004352"}},
		Decoder: &fakeDecoder{err: errors.New("vpic down")},
	}

	record, err := r.ReconcileField(t.Context(), intake.DocumentVIN, ocr.Image{}, intake.NewRecord())

	require.NoError(t, err)
	require.Equal(t, "1HGCM82633A004352", record.VIN)
	require.Empty(t, record.Year)
}
