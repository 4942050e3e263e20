package router // router defines how HTTP routes are registered for the API

import (
	"github.com/labstack/echo/v4"

	"github.com/adamovic6666/bus-layout-builder/internal/handler"    // editor handlers
	"github.com/adamovic6666/bus-layout-builder/internal/middleware" // JWT + role middlewares
)

// RegisterEditor registers EDITOR-scoped endpoints under /v1.
// All routes require a valid JWT and EDITOR role.  Every mutation answers
// with the freshly derived view so clients never render stale numbering.
func RegisterEditor(e *echo.Echo, h *handler.EditorHandler, jwtSecret string, extra ...echo.MiddlewareFunc) {
	// Attach middlewares at group construction time for clarity.
	mws := append([]echo.MiddlewareFunc{
		middleware.JWTAuth(jwtSecret),
		middleware.RequireRole("EDITOR"),
	}, extra...)
	g := e.Group("/v1", mws...)

	// ---- Plans ----
	g.POST("/plans", h.CreatePlan)
	g.POST("/plans/import", h.ImportPlan)
	g.GET("/plans", h.ListPlans)
	g.GET("/plans/:id", h.GetPlan)
	g.PATCH("/plans/:id", h.RenamePlan)
	g.DELETE("/plans/:id", h.DeletePlan)
	g.POST("/plans/:id/share", h.SharePlan)

	// ---- Geometry ----
	g.PUT("/plans/:id/deck", h.UpdateDeck)
	g.PUT("/plans/:id/empty-spaces/:seat", h.SetEmptySpace)
	g.PUT("/plans/:id/seats/:seat/label", h.SetSeatLabel)
	g.PUT("/plans/:id/seats/:seat/special", h.SetSpecialSeat)

	// ---- Roster ----
	g.POST("/plans/:id/people", h.AddPerson)
	g.POST("/plans/:id/people/import", h.ImportRoster)
	g.POST("/plans/:id/people/sort", h.SortRoster)
	g.DELETE("/plans/:id/people/:person", h.RemovePerson)

	// ---- Assignments ----
	g.POST("/plans/:id/assignments", h.AssignSeat)
	g.POST("/plans/:id/assignments/move", h.MoveSeat)
	g.POST("/plans/:id/assignments/auto", h.AutoAssign)
	g.DELETE("/plans/:id/assignments/:seat", h.UnassignSeat)
}

// RegisterPublic registers unauthenticated share-link endpoints on the
// provided Echo instance.  These routes apply no JWT or role middleware;
// callers may pass a response-cache middleware so repeated views of the same
// shared plan skip the database.
func RegisterPublic(e *echo.Echo, p *handler.PublicHandler, extra ...echo.MiddlewareFunc) {
	// Rendered view of a shared plan (read-only).
	e.GET("/v1/shared/:token", p.GetSharedPlan, extra...)
	// Raw serialized document, for lossless re-import by another session.
	e.GET("/v1/shared/:token/document", p.GetSharedDocument, extra...)
}
