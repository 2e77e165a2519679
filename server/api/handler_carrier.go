package api

import (
	"net/http"

	"github.com/glidefleet/intake/pkg/carrier"
)

func (h *Handler) handleCarrierParse(w http.ResponseWriter, r *http.Request) {
	var req CarrierParseRequest

	if err := readJson(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}

	parsed := carrier.Parse(req.Text)

	writeJson(w, CarrierParseResponse{
		DOT: parsed.DOT,
		MC:  parsed.MC,

		Type:   string(parsed.PreferredType),
		Number: parsed.PreferredNum,
	})
}

func (h *Handler) handleCarrierValidate(w http.ResponseWriter, r *http.Request) {
	var req CarrierValidateRequest

	if err := readJson(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}

	result := CarrierValidateResponse{
		Valid: true,
	}

	if err := carrier.Validate(carrier.IDType(req.Type), req.Number); err != nil {
		result.Valid = false
		result.Error = err.Error()
	}

	writeJson(w, result)
}
