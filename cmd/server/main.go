package main

import (
	"fmt"
	"log"
	"net/http"

	"github.com/fitclub/gym-registration-api/internal/config"
	"github.com/fitclub/gym-registration-api/internal/database"
	"github.com/fitclub/gym-registration-api/internal/handlers"
	"github.com/fitclub/gym-registration-api/internal/notifier"
	"github.com/fitclub/gym-registration-api/internal/service"
	"github.com/go-chi/chi/v5"
	"github.com/joho/godotenv"
)

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	// Load Configuration
	cfg := config.LoadConfig()

	// Connect to Database
	db := database.Connect(cfg)

	// Initialize Notifier (optional, registrations work without it)
	var registrationNotifier notifier.Notifier
	discordNotifier, err := notifier.NewDiscordNotifier(cfg.DiscordBotToken, cfg.DiscordNotificationsChannelID)
	if err != nil {
		log.Printf("Discord notifier not initialized: %v", err)
	} else {
		registrationNotifier = discordNotifier
	}

	// Initialize Service and Handlers
	registrationService := service.NewRegistrationService(db)
	registrationHandler := handlers.NewRegistrationHandler(registrationService, registrationNotifier)

	// Initialize Router
	r := chi.NewRouter()

	// Register Routes
	handlers.RegisterRoutes(r, cfg, registrationHandler)

	// Start Server
	log.Printf("Starting server on port %s", cfg.Port)
	if err := http.ListenAndServe(fmt.Sprintf(":%s", cfg.Port), r); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
