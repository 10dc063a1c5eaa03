package api

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"linkbio-backend/database"
	"linkbio-backend/errs"
)

type profileHandler struct {
	responder   Responder
	logger      zerolog.Logger
	profileRepo *database.ProfileRepo
	sessions    sessionManager
}

func newProfileHandler(profileRepo *database.ProfileRepo, sessions sessionManager) profileHandler {
	logger := log.With().Str("handlerName", "profileHandler").Logger()

	return profileHandler{
		responder:   NewResponder(logger),
		logger:      logger,
		profileRepo: profileRepo,
		sessions:    sessions,
	}
}

type authRequest struct {
	Slug     string `json:"slug"`
	Password string `json:"password"`
}

type registerRequest struct {
	Name        string `json:"name"`
	Slug        string `json:"slug"`
	Password    string `json:"password"`
	Description string `json:"description"`
}

// patchProfileRequest carries partial-update semantics: nil pointer fields
// are left untouched on the stored profile.
type patchProfileRequest struct {
	ID              int     `json:"id"`
	Name            *string `json:"name"`
	Description     *string `json:"description"`
	ImageURL        *string `json:"image_url"`
	BackgroundColor *string `json:"background_color"`
	Slug            *string `json:"slug"`
	Password        *string `json:"password"`
}

// authenticate checks slug+password and, on success, issues the session
// token that the editor surface requires.
func (h profileHandler) authenticate() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req authRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			h.responder.WriteError(w, errs.NewMalformedPayloadError("auth", err))
			return
		}

		// empty credentials are a bad request, not an auth failure
		if req.Slug == "" {
			h.responder.WriteError(w, errs.NewMissingRequiredFieldError("slug"))
			return
		}
		if req.Password == "" {
			h.responder.WriteError(w, errs.NewMissingRequiredFieldError("password"))
			return
		}

		profile, err := h.profileRepo.Authenticate(req.Slug, req.Password)
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		token, err := h.sessions.Issue(profile.ID, profile.Slug)
		if err != nil {
			h.logger.Error().Err(err).Msg("failed to sign session token")
			h.responder.WriteError(w, errs.NewInternalError("failed to create session"))
			return
		}

		h.responder.WriteJSON(w, http.StatusOK, authResponse{
			Success: true,
			Message: "authentication successful",
			Profile: profile,
			Token:   token,
		})
	}
}

// getProfile resolves the public page owner by slug.
func (h profileHandler) getProfile() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		slug := chi.URLParam(r, "slug")
		if slug == "" {
			h.responder.WriteError(w, errs.NewMissingRequiredFieldError("slug"))
			return
		}

		profile, err := h.profileRepo.FindBySlug(slug)
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		h.responder.WriteJSON(w, http.StatusOK, profileResponse{
			Success: true,
			Message: "profile found",
			Profile: profile,
		})
	}
}

// register creates a new profile with a fresh store-assigned id.
func (h profileHandler) register() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req registerRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			h.responder.WriteError(w, errs.NewMalformedPayloadError("register", err))
			return
		}

		if req.Name == "" {
			h.responder.WriteError(w, errs.NewMissingRequiredFieldError("name"))
			return
		}
		if req.Slug == "" {
			h.responder.WriteError(w, errs.NewMissingRequiredFieldError("slug"))
			return
		}
		if req.Password == "" {
			h.responder.WriteError(w, errs.NewMissingRequiredFieldError("password"))
			return
		}

		profile, err := h.profileRepo.Register(req.Name, req.Slug, req.Password, req.Description)
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		h.responder.WriteJSON(w, http.StatusCreated, profileResponse{
			Success: true,
			Message: "profile created successfully",
			Profile: profile,
		})
	}
}

// patchProfile applies a partial update, inserting the row with defaults when
// it does not exist yet. Session-gated.
func (h profileHandler) patchProfile() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req patchProfileRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			h.responder.WriteError(w, errs.NewMalformedPayloadError("profile", err))
			return
		}

		if req.Slug == nil || *req.Slug == "" {
			h.responder.WriteError(w, errs.NewMissingRequiredFieldError("slug"))
			return
		}

		// when the request does not name a profile, target the one the
		// session was issued for
		if req.ID == 0 {
			if sessionID, err := ctxGetProfileID(r.Context()); err == nil {
				req.ID = sessionID
			}
		}

		if _, err := h.profileRepo.Upsert(database.ProfilePatch{
			ID:              req.ID,
			Name:            req.Name,
			Description:     req.Description,
			ImageURL:        req.ImageURL,
			BackgroundColor: req.BackgroundColor,
			Slug:            req.Slug,
			Password:        req.Password,
		}); err != nil {
			h.responder.WriteError(w, err)
			return
		}

		h.responder.WriteJSON(w, http.StatusOK, statusResponse{
			Success: true,
			Message: "profile updated successfully",
		})
	}
}
