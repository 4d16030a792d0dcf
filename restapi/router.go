// Package restapi provides the main router and initialization for REST API endpoints.
package restapi

import (
	"github.com/gofiber/fiber/v2"
	"github.com/graphql-go/graphql"

	"github.com/hanamedu/academy-backend/internal/services"
	"github.com/hanamedu/academy-backend/restapi/modules/academies"
	"github.com/hanamedu/academy-backend/restapi/modules/auth"
)

// SetupRoutes configures all REST API routes and the GraphQL endpoint.
// Everything below the auth group requires a live session; the load pipeline
// is unreachable without one.
func SetupRoutes(app *fiber.App, store *services.Store, sessions *auth.Sessions, schema graphql.Schema) {

	// API Group /api/v1
	api := app.Group("/api/v1")

	// Auth Routes (public)
	authGroup := api.Group("/auth")
	authGroup.Post("/login", auth.Login(sessions))
	authGroup.Post("/logout", auth.Logout(sessions))
	authGroup.Get("/me", auth.Me(sessions))
	authGroup.Get("/password-hint", auth.PasswordHint(sessions))

	// GraphQL Route - Mounted within the api group to inherit path prefixes
	api.Post("/graphql", auth.RequireSession(sessions), GraphQLHandler(schema))

	// Directory Routes (session gated)
	dir := api.Group("/academies", auth.RequireSession(sessions))
	dir.Get("/suggest", academies.Suggest(store))
	dir.Get("/search", academies.Search(store))
	dir.Get("/meta", academies.Meta(store))
	dir.Post("/reload", academies.Reload(store))
	dir.Get("/:id", academies.Get(store))
}
