package api

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/glidefleet/intake/pkg/auth"
	"github.com/glidefleet/intake/pkg/intake"
	"github.com/glidefleet/intake/pkg/ocr"
)

func (h *Handler) handleReconcile(w http.ResponseWriter, r *http.Request) {
	var req ReconcileRequest

	if err := readJson(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}

	state := intake.SessionState(req.State)

	if state == "" {
		state = intake.StateFresh
	}

	switch state {
	case intake.StateFresh, intake.StateFullCapture, intake.StateAwaitingOdometer:

	default:
		writeError(w, http.StatusBadRequest, errors.New("invalid session state: "+req.State))
		return
	}

	session := intake.NewSession()

	if req.Session != "" {
		session.ID = req.Session
	}

	session.State = state

	if req.Record != nil {
		session.Record = *req.Record
	}

	var captures []intake.Capture

	for _, c := range req.Captures {
		kind := intake.DocumentKind(c.Kind)

		switch kind {
		case intake.DocumentLicense, intake.DocumentCompany, intake.DocumentCarrierID,
			intake.DocumentVIN, intake.DocumentUnit, intake.DocumentOdometer:

		default:
			writeError(w, http.StatusBadRequest, errors.New("invalid capture kind: "+c.Kind))
			return
		}

		captures = append(captures, intake.Capture{
			Kind: kind,

			Image: ocr.Image{
				Name: c.Name,

				Content:     c.Image,
				ContentType: c.ContentType,
			},
		})
	}

	outcome := h.reconciler.Process(r.Context(), session.State, session.Record, captures)

	if outcome.Diagnostic != "" {
		args := []any{"session", session.ID, "diagnostic", outcome.Diagnostic}

		if user := auth.User(r.Context()); user != "" {
			args = append(args, "user", user)
		}

		slog.WarnContext(r.Context(), "reconcile degraded", args...)
	}

	writeJson(w, ReconcileResponse{
		Session: session.ID,

		Record: outcome.Record,

		Next: string(outcome.Next),

		Match: fromMatch(outcome.Match),

		OdometerCrop: outcome.OdometerCrop,

		Diagnostic: outcome.Diagnostic,
	})
}
