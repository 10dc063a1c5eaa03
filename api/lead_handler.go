package api

import (
	"encoding/json"
	"net/http"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"linkbio-backend/database"
	"linkbio-backend/errs"
	"linkbio-backend/models"
	"linkbio-backend/services"
)

type leadHandler struct {
	responder Responder
	logger    zerolog.Logger
	leadRepo  *database.LeadRepo
	notifier  *services.LeadNotifier
}

func newLeadHandler(leadRepo *database.LeadRepo, notifier *services.LeadNotifier) leadHandler {
	logger := log.With().Str("handlerName", "leadHandler").Logger()

	return leadHandler{
		responder: NewResponder(logger),
		logger:    logger,
		leadRepo:  leadRepo,
		notifier:  notifier,
	}
}

type leadRequest struct {
	Email   *string `json:"email"`
	Celular *string `json:"celular"`
	Source  string  `json:"source"`
}

// createLead captures a contact from the public page. At least one of email
// or celular is required; notification delivery is best-effort and never
// blocks the response.
func (h leadHandler) createLead() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req leadRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			h.responder.WriteError(w, errs.NewMalformedPayloadError("lead", err))
			return
		}

		hasEmail := req.Email != nil && *req.Email != ""
		hasCelular := req.Celular != nil && *req.Celular != ""
		if !hasEmail && !hasCelular {
			h.responder.WriteError(w, errs.NewInvalidFieldError("email", "either email or celular is required"))
			return
		}

		lead := models.Lead{
			Email:   req.Email,
			Celular: req.Celular,
			Source:  req.Source,
		}
		if err := h.leadRepo.Add(&lead); err != nil {
			h.responder.WriteError(w, err)
			return
		}

		go func(lead models.Lead) {
			if err := h.notifier.NotifyNewLead(lead); err != nil {
				h.logger.Error().Err(err).Int("leadID", lead.ID).Msg("failed to send lead notification")
			}
		}(lead)

		h.responder.WriteJSON(w, http.StatusCreated, createdResponse{
			Success: true,
			Message: "lead registered successfully",
			ID:      lead.ID,
		})
	}
}
