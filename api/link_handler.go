package api

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"linkbio-backend/database"
	"linkbio-backend/errs"
	"linkbio-backend/models"
)

type linkHandler struct {
	responder   Responder
	logger      zerolog.Logger
	linkRepo    *database.LinkRepo
	profileRepo *database.ProfileRepo
}

func newLinkHandler(linkRepo *database.LinkRepo, profileRepo *database.ProfileRepo) linkHandler {
	logger := log.With().Str("handlerName", "linkHandler").Logger()

	return linkHandler{
		responder:   NewResponder(logger),
		logger:      logger,
		linkRepo:    linkRepo,
		profileRepo: profileRepo,
	}
}

type linkRequest struct {
	ID              int     `json:"id"`
	ProfileID       int     `json:"profile_id"`
	Type            string  `json:"type"`
	ImageURL        *string `json:"image_url"`
	TextLink        *string `json:"text_link"`
	LinkURL         string  `json:"link_url"`
	OrderIndex      int     `json:"order_index"`
	IsActive        *bool   `json:"is_active"`
	BackgroundColor *string `json:"background_color"`
	BorderColor     *string `json:"border_color"`
}

type deleteLinkRequest struct {
	ID int `json:"id"`
}

type reorderRequest struct {
	Links []struct {
		ID int `json:"id"`
	} `json:"links"`
}

// validateLinkFields enforces the shared create/replace rules before any
// store call: type and link_url are always required, and a text link must
// carry a non-empty caption.
func validateLinkFields(req linkRequest) error {
	if req.Type == "" {
		return errs.NewMissingRequiredFieldError("type")
	}
	if req.LinkURL == "" {
		return errs.NewMissingRequiredFieldError("link_url")
	}
	if req.Type == models.LinkTypeText && (req.TextLink == nil || *req.TextLink == "") {
		return errs.NewInvalidFieldError("text_link", "required for links of type text")
	}
	return nil
}

func (req linkRequest) toModel() models.Link {
	isActive := true
	if req.IsActive != nil {
		isActive = *req.IsActive
	}
	return models.Link{
		ID:              req.ID,
		ProfileID:       req.ProfileID,
		Type:            req.Type,
		ImageURL:        req.ImageURL,
		TextLink:        req.TextLink,
		LinkURL:         req.LinkURL,
		OrderIndex:      req.OrderIndex,
		IsActive:        isActive,
		BackgroundColor: req.BackgroundColor,
		BorderColor:     req.BorderColor,
	}
}

// getLinks returns every link of a profile, inactive ones included. Used by
// the editor; profile_id is required.
func (h linkHandler) getLinks() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		profileIDStr := r.URL.Query().Get("profile_id")
		if profileIDStr == "" {
			h.responder.WriteError(w, errs.NewMissingRequiredFieldError("profile_id"))
			return
		}

		profileID, err := strconv.Atoi(profileIDStr)
		if err != nil {
			h.responder.WriteError(w, errs.NewInvalidFieldError("profile_id", "must be an integer"))
			return
		}

		links, err := h.linkRepo.FindAllByProfile(profileID)
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		h.responder.WriteJSON(w, http.StatusOK, linksResponse{
			Success: true,
			Message: "links loaded successfully",
			Links:   links,
		})
	}
}

// getActiveLinks is the public page read: resolve the slug, then return the
// visible links in display order. An unknown slug yields an empty list
// rather than an error body.
func (h linkHandler) getActiveLinks() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		slug := chi.URLParam(r, "slug")
		if slug == "" {
			h.responder.WriteError(w, errs.NewMissingRequiredFieldError("slug"))
			return
		}

		profile, err := h.profileRepo.FindBySlug(slug)
		if err != nil {
			if errs.IsNotFound(err) {
				h.responder.WriteJSON(w, http.StatusNotFound, linksResponse{
					Success: false,
					Message: "profile not found",
					Links:   []models.Link{},
				})
				return
			}
			h.responder.WriteError(w, err)
			return
		}

		links, err := h.linkRepo.FindActiveByProfile(profile.ID)
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		h.responder.WriteJSON(w, http.StatusOK, linksResponse{
			Success: true,
			Message: "links loaded successfully",
			Links:   links,
		})
	}
}

// createLink appends a link to the end of the profile's list. Session-gated.
func (h linkHandler) createLink() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req linkRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			h.responder.WriteError(w, errs.NewMalformedPayloadError("link", err))
			return
		}

		if req.ProfileID == 0 {
			h.responder.WriteError(w, errs.NewMissingRequiredFieldError("profile_id"))
			return
		}
		if err := validateLinkFields(req); err != nil {
			h.responder.WriteError(w, err)
			return
		}

		link := req.toModel()
		link.ID = 0 // id is store-assigned
		if err := h.linkRepo.Create(&link); err != nil {
			h.responder.WriteError(w, err)
			return
		}

		h.responder.WriteJSON(w, http.StatusCreated, createdResponse{
			Success: true,
			Message: "link created successfully",
			ID:      link.ID,
		})
	}
}

// replaceLink overwrites every mutable field of an existing link, including
// order_index. Full-replace semantics: the caller supplies the whole row.
// Session-gated.
func (h linkHandler) replaceLink() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req linkRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			h.responder.WriteError(w, errs.NewMalformedPayloadError("link", err))
			return
		}

		if req.ID == 0 {
			h.responder.WriteError(w, errs.NewMissingRequiredFieldError("id"))
			return
		}
		if err := validateLinkFields(req); err != nil {
			h.responder.WriteError(w, err)
			return
		}

		link := req.toModel()
		if err := h.linkRepo.Replace(&link); err != nil {
			h.responder.WriteError(w, err)
			return
		}

		h.responder.WriteJSON(w, http.StatusOK, statusResponse{
			Success: true,
			Message: "link updated successfully",
		})
	}
}

// deleteLink removes a link by id. Deleting an id that no longer exists still
// succeeds. Session-gated.
func (h linkHandler) deleteLink() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req deleteLinkRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			h.responder.WriteError(w, errs.NewMalformedPayloadError("link", err))
			return
		}

		if req.ID == 0 {
			h.responder.WriteError(w, errs.NewMissingRequiredFieldError("id"))
			return
		}

		if err := h.linkRepo.Delete(req.ID); err != nil {
			h.responder.WriteError(w, err)
			return
		}

		h.responder.WriteJSON(w, http.StatusOK, statusResponse{
			Success: true,
			Message: "link deleted successfully",
		})
	}
}

// reorderLinks assigns order_index from the array position (1-based) of each
// id, atomically. Session-gated.
func (h linkHandler) reorderLinks() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req reorderRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			h.responder.WriteError(w, errs.NewMalformedPayloadError("reorder", err))
			return
		}

		if len(req.Links) == 0 {
			h.responder.WriteError(w, errs.NewMissingRequiredFieldError("links"))
			return
		}

		ids := make([]int, 0, len(req.Links))
		for _, entry := range req.Links {
			if entry.ID == 0 {
				h.responder.WriteError(w, errs.NewInvalidFieldError("links", "every entry must carry a link id"))
				return
			}
			ids = append(ids, entry.ID)
		}

		if err := h.linkRepo.Reorder(ids); err != nil {
			h.responder.WriteError(w, err)
			return
		}

		h.responder.WriteJSON(w, http.StatusOK, statusResponse{
			Success: true,
			Message: "links reordered successfully",
		})
	}
}
