package main

import (
	"log"
	"net/http"

	"github.com/gorilla/handlers"
	"github.com/gorilla/mux"
	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"guitaracademy/internal/api"
	"guitaracademy/internal/config"
	"guitaracademy/internal/logging"
	"guitaracademy/internal/middleware"
	"guitaracademy/internal/service"
)

func main() {
	godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	logger, err := logging.New(cfg.Server.LogPath, cfg.Server.Debug)
	if err != nil {
		log.Fatalf("Failed to init logger: %v", err)
	}
	defer logger.Sync()

	stripeClient := service.NewStripeClient(cfg.Stripe.SecretKey)
	bookingSvc := service.NewBookingService(stripeClient, cfg.Server.BaseURL, logger)

	var sender service.EmailSender
	if sg := service.NewSendGridSender(cfg.Email.SendGridAPIKey, cfg.Email.FromEmail, cfg.Email.FromName, logger); sg != nil {
		sender = sg
	} else {
		logger.Warn("SENDGRID_API_KEY not set, contact emails will be dropped")
		sender = service.NewStubEmailSender(logger)
	}
	notifySvc := service.NewNotifyService(sender, cfg.Email.Recipient, cfg.Email.FromName, logger)

	schedule := service.NewSchedule()

	bookingHandler := api.NewBookingHandler(bookingSvc, logger)
	contactHandler := api.NewContactHandler(notifySvc, logger)
	catalogHandler := api.NewCatalogHandler(schedule, cfg.Stripe.PublishableKey)

	r := mux.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Logger(logger))
	r.Use(middleware.Recover(logger))

	// Booking flow
	r.HandleFunc("/api/create-checkout-session", bookingHandler.CreateCheckoutSession).Methods("POST")
	r.HandleFunc("/api/verify-payment", bookingHandler.VerifyPayment).Methods("GET")

	// Contact flow
	r.HandleFunc("/api/contact", contactHandler.Contact).Methods("POST")

	// Catalog / schedule data for the booking page
	r.HandleFunc("/api/lessons", catalogHandler.GetLessons).Methods("GET")
	r.HandleFunc("/api/schedule", catalogHandler.GetSchedule).Methods("GET")
	r.HandleFunc("/api/bookable-dates", catalogHandler.GetBookableDates).Methods("GET")
	r.HandleFunc("/api/client-config", catalogHandler.GetClientConfig).Methods("GET")

	cors := handlers.CORS(
		handlers.AllowedOrigins(cfg.Server.AllowedOrigins),
		handlers.AllowedMethods([]string{"GET", "POST", "OPTIONS"}),
		handlers.AllowedHeaders([]string{"Content-Type", middleware.HeaderRequestID}),
	)

	logger.Info("Server running", zap.String("port", cfg.Server.Port))
	if err := http.ListenAndServe(":"+cfg.Server.Port, cors(r)); err != nil {
		logger.Fatal("server stopped", zap.Error(err))
	}
}
