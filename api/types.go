package api

import "linkbio-backend/models"

// routeHandlers contains all the handlers for different route types
type routeHandlers struct {
	profileHandler profileHandler
	linkHandler    linkHandler
	leadHandler    leadHandler
}

// Every response carries at least `success` and `message`; failures add
// `error` with the underlying cause chain.

type statusResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

type errorResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	Error   string `json:"error,omitempty"`
	Field   string `json:"field,omitempty"`
}

type authResponse struct {
	Success bool            `json:"success"`
	Message string          `json:"message"`
	Profile *models.Profile `json:"profile,omitempty"`
	Token   string          `json:"token,omitempty"`
}

type profileResponse struct {
	Success bool            `json:"success"`
	Message string          `json:"message"`
	Profile *models.Profile `json:"profile,omitempty"`
}

type linksResponse struct {
	Success bool          `json:"success"`
	Message string        `json:"message"`
	Links   []models.Link `json:"links"`
}

type createdResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	ID      int    `json:"id"`
}

type healthResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	Uptime  string `json:"uptime"`
}
