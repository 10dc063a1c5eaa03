package api

import (
	"linkbio-backend/database"
	"linkbio-backend/services"
)

// initializeHandlers creates and returns all handlers organized in a routeHandlers struct
func initializeHandlers(database database.Database, sessions sessionManager) *routeHandlers {
	return &routeHandlers{
		profileHandler: newProfileHandler(database.ProfileRepo(), sessions),
		linkHandler:    newLinkHandler(database.LinkRepo(), database.ProfileRepo()),
		leadHandler:    newLeadHandler(database.LeadRepo(), services.NewLeadNotifier()),
	}
}
