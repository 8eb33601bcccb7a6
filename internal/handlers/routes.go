package handlers

import (
	"net/http"

	"github.com/danielgtaylor/huma/v2"
	"github.com/danielgtaylor/huma/v2/adapters/humachi"
	"github.com/fitclub/gym-registration-api/internal/config"
	appmiddleware "github.com/fitclub/gym-registration-api/internal/middleware"
	"github.com/fitclub/gym-registration-api/internal/web"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

func RegisterRoutes(r *chi.Mux, cfg *config.Config, registrationHandler *RegistrationHandler) {
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	if cfg.EnableCORS {
		r.Use(appmiddleware.CORS(cfg.CORSAllowedOrigins))
	}
	r.Use(appmiddleware.CountRequests)

	// Initialize Huma API
	apiConfig := huma.DefaultConfig("Gym Registration API", "1.0.0")
	api := humachi.New(r, apiConfig)

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("OK"))
	})
	r.Handle("/metrics", promhttp.Handler())

	huma.Post(api, "/register", registrationHandler.HandleRegister)
	huma.Get(api, "/users", registrationHandler.HandleListUsers)
	huma.Get(api, "/user/{email}", registrationHandler.HandleGetUser)
	huma.Put(api, "/update/{id}", registrationHandler.HandleUpdateUser)
	huma.Delete(api, "/delete/{id}", registrationHandler.HandleDeleteUser)

	// Frontend pages; API routes above take precedence.
	r.Handle("/*", http.FileServer(http.FS(web.StaticFS())))
}
