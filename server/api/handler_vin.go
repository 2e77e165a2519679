package api

import (
	"net/http"

	"github.com/glidefleet/intake/pkg/vin"
)

func (h *Handler) handleVinValidate(w http.ResponseWriter, r *http.Request) {
	var req VinRequest

	if err := readJson(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}

	result := VinValidateResponse{
		VIN: vin.Normalize(req.VIN),

		Valid: true,
	}

	if err := vin.Validate(req.VIN); err != nil {
		result.Valid = false
		result.Error = err.Error()
	}

	writeJson(w, result)
}

func (h *Handler) handleVinCorrect(w http.ResponseWriter, r *http.Request) {
	var req VinRequest

	if err := readJson(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}

	corrected := vin.Correct(req.VIN)

	writeJson(w, VinCorrectResponse{
		VIN: vin.Normalize(req.VIN),

		Corrected: corrected,
		Valid:     vin.Validate(corrected) == nil,
	})
}
