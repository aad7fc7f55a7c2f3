// Package routes provides HTTP route configurations.
package routes

import (
	"github.com/gin-gonic/gin"

	lookupHandlers "sanad/internal/interfaces/http/handlers/lookup"
	supervisorHandlers "sanad/internal/interfaces/http/handlers/supervisor"
	ticketHandlers "sanad/internal/interfaces/http/handlers/ticket"
)

// ConsoleRouteConfig contains the handlers behind the admin console's
// API surface.
type ConsoleRouteConfig struct {
	TicketHandler     *ticketHandlers.Handler
	SupervisorHandler *supervisorHandlers.Handler
	LookupHandler     *lookupHandlers.Handler
}

// SetupConsoleRoutes mounts the console-compatible endpoints under the
// configured base path. Path spellings match the legacy gateway, verbs
// included.
func SetupConsoleRoutes(engine *gin.Engine, basePath string, cfg *ConsoleRouteConfig) {
	api := engine.Group(basePath)

	tickets := api.Group("/SupportTickets")
	{
		tickets.GET("/GetAllSupportTickets", cfg.TicketHandler.ListTickets)
		tickets.POST("/GetSupportTicketsByTicketId", cfg.TicketHandler.GetTicket)
		tickets.POST("/UpdateSupportTicketStatus", cfg.TicketHandler.UpdateStatus)
		tickets.POST("/UpsertSupportTicketsUserComment", cfg.TicketHandler.AddComment)
		tickets.POST("/UpsertSupportTicketsUserCommentsReaction", cfg.TicketHandler.ToggleReaction)
	}

	superAdmin := api.Group("/SuperAdmin")
	{
		superAdmin.POST("/UpsertSuperAdmin", cfg.SupervisorHandler.Upsert)
		superAdmin.PATCH("/UpdateSuperAdminStatus", cfg.SupervisorHandler.UpdateStatus)
		superAdmin.GET("/GetSuperAdminById", cfg.SupervisorHandler.Get)
		superAdmin.GET("/GetAllSuperAdmins", cfg.SupervisorHandler.List)
	}

	account := api.Group("/Account")
	{
		account.POST("/Common", cfg.LookupHandler.Common)
		account.POST("/UpsertCommon", cfg.LookupHandler.Upsert)
	}
}
