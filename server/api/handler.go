package api

import (
	"encoding/json"
	"net/http"

	"github.com/glidefleet/intake/config"
	"github.com/glidefleet/intake/pkg/intake"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"
)

type Handler struct {
	*config.Config

	reconciler *intake.Reconciler
	validate   *validator.Validate
}

func New(cfg *config.Config) (*Handler, error) {
	h := &Handler{
		Config: cfg,

		reconciler: cfg.Reconciler(),
		validate:   validator.New(validator.WithRequiredStructEnabled()),
	}

	return h, nil
}

func (h *Handler) Attach(r chi.Router) {
	r.Post("/intake/reconcile", h.handleReconcile)
	r.Post("/intake/check-unit", h.handleCheckUnit)
	r.Post("/intake/submit", h.handleSubmit)

	r.Post("/vin/validate", h.handleVinValidate)
	r.Post("/vin/correct", h.handleVinCorrect)

	r.Post("/carrier/parse", h.handleCarrierParse)
	r.Post("/carrier/validate", h.handleCarrierValidate)

	r.Post("/odometer/normalize", h.handleOdometerNormalize)
}

func readJson(r *http.Request, v any) error {
	defer r.Body.Close()

	return json.NewDecoder(r.Body).Decode(v)
}

func writeJson(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")

	enc := json.NewEncoder(w)
	enc.SetEscapeHTML(false)

	enc.Encode(v)
}

func writeError(w http.ResponseWriter, code int, err error) {
	w.WriteHeader(code)

	text := http.StatusText(code)

	if err != nil {
		text = err.Error()
	}

	w.Write([]byte(text))
}
