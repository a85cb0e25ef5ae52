package finding

import (
	"context"
	"encoding/json"
	"io"
	"net/http"

	"github.com/rs/zerolog"
	"github.com/tadiusfrank2001/AWS-IPS-IDS-SYSTEM/pkg/models/domain"
)

const maxEventSize = 1 << 20

// EventHandler runs one finding event to completion.
type EventHandler interface {
	Handle(ctx context.Context, event json.RawMessage) (domain.Outcome, error)
}

type Handler struct {
	events EventHandler
}

func NewHandler(events EventHandler) *Handler {
	return &Handler{events: events}
}

// SubmitFinding replays an EventBridge finding event posted as the request
// body. The Outcome status becomes the HTTP status and its body is written as-is.
func (h *Handler) SubmitFinding(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := zerolog.Ctx(ctx)

	payload, err := io.ReadAll(io.LimitReader(r.Body, maxEventSize))
	if err != nil {
		logger.Error().Err(err).Msg("failed to read finding event")
		http.Error(w, "failed to read request body", http.StatusBadRequest)
		return
	}

	outcome, err := h.events.Handle(ctx, json.RawMessage(payload))
	if err != nil {
		logger.Error().Err(err).Msg("finding handler failed")
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(outcome.StatusCode)
	if _, err := io.WriteString(w, outcome.Body); err != nil {
		logger.Error().Err(err).Msg("failed to write outcome")
	}
}
