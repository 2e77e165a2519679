package api

import (
	"net/http"

	"github.com/glidefleet/intake/pkg/carrier"
	"github.com/glidefleet/intake/pkg/intake"
	"github.com/glidefleet/intake/pkg/vin"
)

// handleCheckUnit asks the fleet backend whether the unit number is already
// on file, feeding the duplicate-unit confirmation before submit. An
// unconfigured or failing backend reads as "not found".
func (h *Handler) handleCheckUnit(w http.ResponseWriter, r *http.Request) {
	var req CheckUnitRequest

	if err := readJson(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}

	if err := h.validate.Struct(&req); err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}

	checker, err := h.UnitChecker("")

	if err != nil {
		writeJson(w, CheckUnitResponse{})
		return
	}

	writeJson(w, CheckUnitResponse{
		Exists: checker.CheckExistingUnit(r.Context(), req.CompanyName, req.UnitNumber),
	})
}

func (h *Handler) handleSubmit(w http.ResponseWriter, r *http.Request) {
	var req SubmitRequest

	if err := readJson(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}

	if err := h.validate.Struct(&req); err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}

	if req.Record.VIN != "" {
		if err := vin.Validate(req.Record.VIN); err != nil {
			writeError(w, http.StatusBadRequest, err)
			return
		}
	}

	if err := carrier.Validate(carrier.IDType(req.Record.CarrierIDType), req.Record.CarrierIDNum); err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}

	submitter, err := h.Submitter("")

	if err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}

	record := intake.Record{
		CompanyName: req.Record.CompanyName,

		CarrierIDType: carrier.IDType(req.Record.CarrierIDType),
		CarrierIDNum:  req.Record.CarrierIDNum,

		UnitNumber: req.Record.UnitNumber,

		LicensePlate:  req.Record.LicensePlate,
		LicenseRegion: req.Record.LicenseRegion,

		VIN: req.Record.VIN,

		Year:  req.Record.Year,
		Make:  req.Record.Make,
		Model: req.Record.Model,

		Odometer: req.Record.Odometer,
	}

	submission, err := submitter.Submit(r.Context(), record, req.CreateNewUnit)

	if err != nil {
		writeError(w, http.StatusBadGateway, err)
		return
	}

	writeJson(w, SubmitResponse{
		JobID: submission.JobID,

		CustomerMatched:  submission.CustomerMatched,
		EquipmentMatched: submission.EquipmentMatched,
	})
}
