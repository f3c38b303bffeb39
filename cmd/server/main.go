package main

import (
	"database/sql"
	"log"
	"net/http"
	"os"

	"citabot/internal/api"
	"citabot/internal/auth"
	"citabot/internal/bot"
	"citabot/internal/db"
	"citabot/internal/repository"
	"citabot/internal/service"

	"github.com/gorilla/handlers"
	"github.com/gorilla/mux"
	"github.com/joho/godotenv"
	_ "github.com/lib/pq"
	"github.com/robfig/cron/v3"
)

func main() {
	godotenv.Load()
	dbURL := os.Getenv("DATABASE_URL")
	if dbURL == "" {
		log.Fatal("DATABASE_URL not set")
	}
	database, err := sql.Open("postgres", dbURL)
	if err != nil {
		log.Fatalf("Failed to open DB: %v", err)
	}
	if err := database.Ping(); err != nil {
		log.Fatalf("Failed to connect to DB: %v", err)
	}
	if err := db.Migrate(database); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}

	repo := repository.NewAppointmentRepository(database)
	adminAuthRepo := repository.NewAdminAuthRepository(database)
	jobRepo := repository.NewJobRepository(database)

	clock := bot.SystemClock{}
	notifier := service.NewNotifyService()
	bookingSvc := service.NewBookingService(repo, clock, notifier)
	adminSvc := service.NewAdminService(repo)
	adminAuthSvc := service.NewAdminAuthService(adminAuthRepo)
	jobSvc := service.NewJobService(jobRepo, clock)

	// First admin comes from the environment; further admins go through
	// the authenticated register endpoint.
	if email := os.Getenv("ADMIN_EMAIL"); email != "" {
		if err := adminAuthSvc.EnsureAdmin(email, os.Getenv("ADMIN_PASSWORD")); err != nil {
			log.Fatalf("Failed to seed admin account: %v", err)
		}
	}

	webhookHandler := api.NewWebhookHandler(bookingSvc)
	adminHandler := api.NewAdminHandler(adminSvc)
	adminAuthHandler := api.NewAdminAuthHandler(adminAuthSvc)

	c := cron.New()
	if _, err := c.AddFunc("0 18 * * *", func() {
		if err := jobSvc.SendUpcomingReminders(); err != nil {
			log.Printf("Reminder job failed: %v", err)
		}
	}); err != nil {
		log.Fatalf("Failed to schedule reminder job: %v", err)
	}
	c.Start()

	r := mux.NewRouter()

	// Public endpoints
	r.HandleFunc("/webhook", webhookHandler.ReceiveMessage).Methods("POST")
	r.HandleFunc("/health", api.HealthCheck).Methods("GET")
	r.HandleFunc("/admin/login", adminAuthHandler.Login).Methods("POST")

	// Admin endpoints (protected)
	admin := r.PathPrefix("/admin").Subrouter()
	admin.Use(auth.AdminAuthMiddleware)
	admin.HandleFunc("/appointments", adminHandler.ListAppointments).Methods("GET")
	admin.HandleFunc("/register", adminAuthHandler.CreateAdmin).Methods("POST")

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	log.Printf("Server running on port %s", port)
	log.Fatal(http.ListenAndServe(":"+port, handlers.LoggingHandler(os.Stdout, r)))
}
