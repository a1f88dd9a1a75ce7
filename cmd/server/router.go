package main

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/tanachai/bookstore-api/internal/api"
	apiMiddleware "github.com/tanachai/bookstore-api/internal/api/middleware"
)

// setupRouter creates and configures the application router with all routes
// and middleware. It accepts the application dependencies to create handlers
// and register routes. Returns the configured router.
func (app *application) setupRouter() http.Handler {
	r := chi.NewRouter()

	// Apply standard middleware
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)
	r.Use(apiMiddleware.TraceMiddleware) // trace IDs for improved error handling

	// Create API handlers using the application's services
	authHandler := api.NewAuthHandler(
		app.userService,
		app.userStore,
		app.jwtService,
		app.passwordVerifier,
	)
	authMiddleware := apiMiddleware.NewAuthMiddleware(app.jwtService)

	bookHandler := api.NewBookHandler(app.bookStore)
	userHandler := api.NewUserHandler(app.userService, app.logger)

	// Register routes
	r.Route("/api", func(r chi.Router) {
		// Authentication endpoints (public)
		r.Post("/register", authHandler.Register)
		r.Post("/login", authHandler.Login)

		// Book catalog endpoints (public)
		r.Get("/books", bookHandler.ListBooks)
		r.Post("/books", bookHandler.CreateBook)
		r.Get("/books/{id}", bookHandler.GetBook)
		r.Put("/books/{id}", bookHandler.UpdateBook)
		r.Delete("/books/{id}", bookHandler.DeleteBook)

		// Protected routes
		r.Group(func(r chi.Router) {
			r.Use(authMiddleware.Authenticate)
			r.Get("/users/{id}", userHandler.GetUser)
			r.Delete("/users/{id}", userHandler.DeleteUser)
		})
	})

	// Health check endpoint
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		if _, err := w.Write([]byte("OK")); err != nil {
			app.logger.Error("Failed to write health check response", "error", err)
		}
	})

	return r
}
