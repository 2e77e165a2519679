package intake

import (
	"context"
	"errors"
	"strings"

	"github.com/glidefleet/intake/pkg/carrier"
	"github.com/glidefleet/intake/pkg/lookup"
	"github.com/glidefleet/intake/pkg/ocr"
	"github.com/glidefleet/intake/pkg/odometer"
	"github.com/glidefleet/intake/pkg/vin"
)

// DiagnosticOCRFailure is the session-level message attached when reading
// failed for some fields. The record is still delivered for manual editing.
const DiagnosticOCRFailure = "Reading photos failed for some fields; you can still edit and create the job"

// Reconciler turns captured document photos into record fields, applying a
// strict per-field precedence over the configured recognizers. It holds no
// mutable state; a nil collaborator simply means "no value" for the
// strategies that would use it.
type Reconciler struct {
	Plates    ocr.PlateReader
	VINs      ocr.VinReader
	Carriers  ocr.CarrierReader
	Odometers ocr.OdometerReader
	Companies ocr.CompanyReader
	Texts     ocr.TextReader

	Units   lookup.Provider
	Decoder lookup.Decoder
}

// strategy produces a candidate value for a field, or "" when it has none.
type strategy func(ctx context.Context) (string, error)

// firstNonEmpty evaluates strategies in order and returns the first non-empty
// value. A failing strategy does not stop the chain; its error is surfaced
// only when no later strategy produced a value.
func firstNonEmpty(ctx context.Context, strategies ...strategy) (string, error) {
	var errs []error

	for _, s := range strategies {
		value, err := s(ctx)

		if err != nil {
			errs = append(errs, err)
			continue
		}

		if value != "" {
			return value, nil
		}
	}

	return "", errors.Join(errs...)
}

// Process runs one reconciliation pass over the session's captures. It never
// mutates its inputs and never fails outright: a field whose OCR breaks is
// left empty and a diagnostic is attached instead.
func (r *Reconciler) Process(ctx context.Context, state SessionState, record Record, captures []Capture) Outcome {
	byKind := map[DocumentKind]ocr.Image{}

	for _, c := range captures {
		byKind[c.Kind] = c.Image
	}

	if len(byKind) == 0 {
		if state == StateAwaitingOdometer {
			return Outcome{Record: record, Next: NextReview}
		}

		return Outcome{Record: NewRecord(), Next: NextReview}
	}

	if state == StateAwaitingOdometer {
		return r.processOdometerOnly(ctx, record, byKind)
	}

	if state == StateFresh {
		if image, ok := byKind[DocumentLicense]; ok && len(byKind) == 1 {
			return r.processLicenseFirst(ctx, image)
		}
	}

	return r.processFullCapture(ctx, byKind)
}

// processOdometerOnly updates only the odometer field of an already-populated
// record, the continuation after an existing unit was confirmed.
func (r *Reconciler) processOdometerOnly(ctx context.Context, record Record, byKind map[DocumentKind]ocr.Image) Outcome {
	outcome := Outcome{Record: record, Next: NextReview}

	image, ok := byKind[DocumentOdometer]

	if !ok {
		return outcome
	}

	updated, crop, err := r.reconcileOdometer(ctx, image, record)

	if err != nil {
		outcome.Diagnostic = DiagnosticOCRFailure
		return outcome
	}

	outcome.Record = updated
	outcome.OdometerCrop = crop

	return outcome
}

// processLicenseFirst recognizes the plate, then asks the fleet backend for a
// matching unit. On a match the whole record is pre-populated and the caller
// moves to the confirm-existing-unit screen; otherwise the full capture flow
// continues from the next field.
func (r *Reconciler) processLicenseFirst(ctx context.Context, image ocr.Image) Outcome {
	record := NewRecord()

	outcome := Outcome{Record: record, Next: NextContinueCapture}

	updated, err := r.reconcilePlate(ctx, image, record)

	if err != nil {
		outcome.Diagnostic = DiagnosticOCRFailure
		return outcome
	}

	record = updated
	outcome.Record = record

	if record.LicensePlate == "" || r.Units == nil {
		return outcome
	}

	match, err := r.Units.FindEquipment(ctx, lookup.Query{
		Plate:  record.LicensePlate,
		Region: record.LicenseRegion,
	})

	if err != nil {
		outcome.Diagnostic = DiagnosticOCRFailure
		return outcome
	}

	if match == nil || match.Equipment == nil {
		return outcome
	}

	outcome.Record = populateFromMatch(record, match)
	outcome.Next = NextConfirmExistingUnit
	outcome.Match = match

	return outcome
}

func (r *Reconciler) processFullCapture(ctx context.Context, byKind map[DocumentKind]ocr.Image) Outcome {
	record := NewRecord()

	outcome := Outcome{Next: NextReview}

	for _, kind := range documentOrder {
		image, ok := byKind[kind]

		if !ok {
			continue
		}

		if kind == DocumentOdometer {
			updated, crop, err := r.reconcileOdometer(ctx, image, record)

			if err != nil {
				outcome.Diagnostic = DiagnosticOCRFailure
				continue
			}

			record = updated
			outcome.OdometerCrop = crop

			continue
		}

		updated, err := r.ReconcileField(ctx, kind, image, record)

		if err != nil {
			outcome.Diagnostic = DiagnosticOCRFailure
			continue
		}

		record = updated
	}

	outcome.Record = record

	return outcome
}

// ReconcileField applies the single-field precedence policy for one captured
// document and returns the updated record. The input record is not modified.
func (r *Reconciler) ReconcileField(ctx context.Context, kind DocumentKind, image ocr.Image, record Record) (Record, error) {
	switch kind {
	case DocumentLicense:
		return r.reconcilePlate(ctx, image, record)

	case DocumentVIN:
		return r.reconcileVIN(ctx, image, record)

	case DocumentCarrierID:
		return r.reconcileCarrier(ctx, image, record)

	case DocumentCompany:
		return r.reconcileCompany(ctx, image, record)

	case DocumentUnit:
		return r.reconcileUnit(ctx, image, record)

	case DocumentOdometer:
		updated, _, err := r.reconcileOdometer(ctx, image, record)
		return updated, err
	}

	return record, nil
}

// reconcilePlate trusts only the dedicated plate recognizer. Generic text OCR
// picks up unrelated numbers from the vehicle, so there is no fallback; an
// empty result leaves the field empty for manual entry.
func (r *Reconciler) reconcilePlate(ctx context.Context, image ocr.Image, record Record) (Record, error) {
	if r.Plates == nil {
		return record, nil
	}

	result, err := r.Plates.ReadPlate(ctx, image)

	if err != nil {
		return record, err
	}

	if result == nil {
		return record, nil
	}

	if plate := strings.TrimSpace(result.Plate); plate != "" {
		// some vendors return the whole plate region as text
		if strings.ContainsAny(plate, " \n") {
			if candidate := plateFromText(plate); candidate != "" {
				plate = candidate
			}
		}

		record.LicensePlate = plate
	}

	if result.Region != "" {
		record.LicenseRegion = result.Region
	}

	return record, nil
}

// reconcileVIN trusts only the dedicated VIN recognizer, for the same
// false-positive reason as plates. The raw reading goes through the
// corrector; year/make/model come from the recognizer when present, and any
// gaps are filled from the reference decoder using the corrected VIN.
func (r *Reconciler) reconcileVIN(ctx context.Context, image ocr.Image, record Record) (Record, error) {
	if r.VINs == nil {
		return record, nil
	}

	result, err := r.VINs.ReadVIN(ctx, image)

	if err != nil {
		return record, err
	}

	if result == nil || result.VIN == "" {
		return record, nil
	}

	candidate := result.VIN

	if len(vin.Normalize(candidate)) != 17 {
		if scanned := vinFromText(candidate); scanned != "" {
			candidate = scanned
		}
	}

	record.VIN = vin.Correct(candidate)

	if result.Year != "" {
		record.Year = result.Year
	}

	if result.Make != "" {
		record.Make = result.Make
	}

	if result.Model != "" {
		record.Model = result.Model
	}

	if record.Year != "" && record.Make != "" && record.Model != "" {
		return record, nil
	}

	if r.Decoder == nil {
		return record, nil
	}

	// reference decode is best effort; a miss just leaves the gaps empty
	decoded, err := r.Decoder.DecodeVIN(ctx, record.VIN)

	if err != nil || decoded == nil {
		return record, nil
	}

	if record.Year == "" {
		record.Year = decoded.Year
	}

	if record.Make == "" {
		record.Make = decoded.Make
	}

	if record.Model == "" {
		record.Model = decoded.Model
	}

	return record, nil
}

// reconcileCarrier tries the dedicated DOT/MC recognizer first: a structured
// pair wins with DOT preferred, raw text is parsed, and only when the
// dedicated call had nothing at all does generic text OCR get a turn. The
// type/number pair always replaces the previous value as a unit.
func (r *Reconciler) reconcileCarrier(ctx context.Context, image ocr.Image, record Record) (Record, error) {
	var raw string

	if r.Carriers != nil {
		result, err := r.Carriers.ReadCarrierID(ctx, image)

		if err != nil {
			return record, err
		}

		if result == nil {
			result = &ocr.CarrierResult{}
		}

		if result.DOT != "" || result.MC != "" {
			if result.DOT != "" {
				record.CarrierIDType = carrier.TypeDOT
				record.CarrierIDNum = result.DOT
			} else {
				record.CarrierIDType = carrier.TypeMC
				record.CarrierIDNum = result.MC
			}

			return record, nil
		}

		raw = result.Raw
	}

	if raw == "" && r.Texts != nil {
		text, err := r.Texts.ReadText(ctx, image)

		if err != nil {
			return record, err
		}

		raw = joinLines(text)
	}

	if raw == "" {
		return record, nil
	}

	parsed := carrier.Parse(raw)

	num := parsed.PreferredNum

	if num == "" {
		num = digitsOnly(raw)

		if len(num) > 15 {
			num = num[:15]
		}
	}

	if num != "" {
		record.CarrierIDType = parsed.PreferredType
		record.CarrierIDNum = num
	}

	return record, nil
}

func (r *Reconciler) reconcileCompany(ctx context.Context, image ocr.Image, record Record) (Record, error) {
	name, err := firstNonEmpty(ctx,
		func(ctx context.Context) (string, error) {
			if r.Companies == nil {
				return "", nil
			}

			return r.Companies.ReadCompanyName(ctx, image)
		},
		func(ctx context.Context) (string, error) {
			if r.Texts == nil {
				return "", nil
			}

			text, err := r.Texts.ReadText(ctx, image)

			if err != nil {
				return "", err
			}

			return joinLines(text), nil
		},
	)

	if err != nil {
		return record, err
	}

	if name != "" {
		record.CompanyName = name
	}

	return record, nil
}

// reconcileUnit has no dedicated recognizer; the first non-empty line of
// generic text is the unit number.
func (r *Reconciler) reconcileUnit(ctx context.Context, image ocr.Image, record Record) (Record, error) {
	if r.Texts == nil {
		return record, nil
	}

	text, err := r.Texts.ReadText(ctx, image)

	if err != nil {
		return record, err
	}

	if candidate := firstLine(text); candidate != "" {
		record.UnitNumber = candidate
	}

	return record, nil
}

func (r *Reconciler) reconcileOdometer(ctx context.Context, image ocr.Image, record Record) (Record, []byte, error) {
	if r.Odometers == nil {
		return record, nil, nil
	}

	result, err := r.Odometers.ReadOdometer(ctx, image)

	if err != nil {
		return record, nil, err
	}

	if result == nil {
		return record, nil, nil
	}

	if value := odometer.Normalize(result.Value); value != "" {
		record.Odometer = value
	}

	return record, result.Refined, nil
}

// populateFromMatch fills the record from a found unit. Plate and region read
// from the photo win over the values on file; the odometer stays empty for
// the follow-up capture.
func populateFromMatch(record Record, match *lookup.Match) Record {
	eq := match.Equipment

	record.UnitNumber = strings.TrimSpace(eq.Unit)
	record.VIN = strings.TrimSpace(eq.VIN)
	record.Year = strings.TrimSpace(eq.Year)
	record.Make = strings.TrimSpace(eq.Make)
	record.Model = strings.TrimSpace(eq.Model)

	if record.LicensePlate == "" {
		record.LicensePlate = strings.TrimSpace(eq.LicensePlate)
	}

	if record.LicenseRegion == "" {
		record.LicenseRegion = strings.TrimSpace(eq.LicenseRegion)
	}

	if cust := match.Customer; cust != nil {
		record.CompanyName = strings.TrimSpace(cust.Name)

		if cust.CarrierIDType != "" {
			record.CarrierIDType = cust.CarrierIDType
		}

		record.CarrierIDNum = strings.TrimSpace(cust.CarrierIDNum)
	}

	record.Odometer = ""

	return record
}

func digitsOnly(s string) string {
	var b strings.Builder

	for i := 0; i < len(s); i++ {
		if s[i] >= '0' && s[i] <= '9' {
			b.WriteByte(s[i])
		}
	}

	return b.String()
}
