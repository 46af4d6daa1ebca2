package main

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"github.com/anatolism/meditation-api-backend/internal/api"
	apiMiddleware "github.com/anatolism/meditation-api-backend/internal/api/middleware"
)

// setupRouter creates and configures the application router with all routes
// and middleware. Returns the configured router.
func (app *application) setupRouter() http.Handler {
	r := chi.NewRouter()

	// Apply standard middleware
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(apiMiddleware.TraceMiddleware) // Add trace IDs for improved error handling

	// Allow-all CORS for the mobile client. Tighten AllowedOrigins when the
	// app's production origin is known.
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"*"},
		AllowCredentials: true,
	}))

	// Create API handlers using the application's services
	meditationHandler := api.NewMeditationHandler(
		app.introductionService,
		app.plannerService,
		app.sessionStore,
		app.synthesizer,
		app.logger,
	)
	audioHandler := api.NewAudioHandler(app.sessionStore, app.logger)

	// Register routes
	r.Route("/api", func(r chi.Router) {
		r.Post("/meditation/introduction", meditationHandler.CreateIntroduction)
		r.Post("/meditation/plan", meditationHandler.CreatePlan)
	})

	// Generated session audio
	r.Get("/audio/sessions/{sessionID}/{filename}", audioHandler.GetSessionAudio)

	// Health check endpoint
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, err := w.Write([]byte("OK"))
		if err != nil {
			app.logger.Error("Failed to write health check response", "error", err)
		}
	})

	return r
}
