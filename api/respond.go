package api

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/rs/zerolog"

	"linkbio-backend/errs"
)

type Responder struct {
	logger zerolog.Logger
}

func NewResponder(logger zerolog.Logger) Responder {
	return Responder{logger}
}

// WriteJSON marshals data and writes it with the given status code. Marshal
// failures downgrade to a bare 500 since there is nothing sensible to send.
func (r Responder) WriteJSON(w http.ResponseWriter, status int, data any) {
	jsonData, err := json.Marshal(data)
	if err != nil {
		r.logger.Error().Err(err).Msg("error marshaling response data")
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	if _, err := w.Write(jsonData); err != nil {
		r.logger.Error().Err(err).Msg("error writing response")
	}
}

// WriteError maps an error to the failure envelope. ApiErr instances carry
// their own status code; anything else is an unexpected internal error.
func (r Responder) WriteError(w http.ResponseWriter, err error) {
	var apiErr *errs.ApiErr

	if !errors.As(err, &apiErr) {
		r.logger.Error().Msg(err.Error())
		r.WriteJSON(w, http.StatusInternalServerError, errorResponse{
			Success: false,
			Message: "an unexpected error occurred",
			Error:   err.Error(),
		})
		return
	}

	response := errorResponse{
		Success: false,
		Message: apiErr.Message(),
		Field:   apiErr.Field,
	}

	// Surface the cause chain (store failures especially) in the error field
	if apiErr.Cause != nil {
		response.Error = apiErr.GetFullError()
	} else if apiErr.Details != "" {
		response.Error = apiErr.Details
	}

	if apiErr.StatusCode >= http.StatusInternalServerError {
		r.logger.Error().Msg(apiErr.GetFullError())
	}

	r.WriteJSON(w, apiErr.StatusCode, response)
}
