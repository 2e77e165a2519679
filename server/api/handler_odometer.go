package api

import (
	"net/http"

	"github.com/glidefleet/intake/pkg/odometer"
)

func (h *Handler) handleOdometerNormalize(w http.ResponseWriter, r *http.Request) {
	var req OdometerRequest

	if err := readJson(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}

	value := odometer.Normalize(req.Value)

	if value == "" && req.Text != "" {
		value = odometer.FromText(req.Text)
	}

	writeJson(w, OdometerResponse{
		Odometer: value,
	})
}
