package handlers

import (
	"github.com/gofiber/fiber/v2"
)

// Register mounts the session middleware, the pages and the JSON API.
func Register(app *fiber.App, deps *Deps) {
	app.Use(SessionMiddleware(deps.Sessions, deps.SecureCookies))

	// Pages
	app.Get("/", deps.ListingHandler.Home)
	app.Get("/search", deps.ListingHandler.Search)
	app.Get("/reset", deps.ListingHandler.Reset)
	app.Get("/listing/:id", deps.ListingHandler.Detail)
	app.Get("/favorites", deps.FavoritesHandler.List)
	app.Post("/favorites/toggle", deps.FavoritesHandler.Toggle)
	app.Post("/notifications/clear", deps.NotificationsHandler.Clear)
	app.Get("/add", deps.SubmissionHandler.Form)
	app.Post("/add", deps.SubmissionHandler.Create)
	app.Get("/rules", deps.RulesHandler.Rules)

	// API
	api := app.Group("/api/v1")
	api.Get("/listings", deps.APIHandler.Listings)
	api.Get("/listings/:id", deps.APIHandler.Listing)
	api.Get("/regions", deps.APIHandler.Regions)
	api.Get("/favorites", deps.APIHandler.Favorites)
	api.Post("/favorites/:id/toggle", deps.APIHandler.ToggleFavorite)
	api.Get("/notifications", deps.APIHandler.Notifications)
	api.Delete("/notifications", deps.APIHandler.ClearNotifications)
}
