package main

import (
	"database/sql"
	"log"
	"net/http"
	"os"

	ghandlers "github.com/gorilla/handlers"
	"github.com/gorilla/mux"
	"github.com/joho/godotenv"
	_ "github.com/lib/pq"
	"github.com/robfig/cron/v3"

	"voltrent/internal/api"
	"voltrent/internal/auth"
	"voltrent/internal/repository"
	"voltrent/internal/service"
)

func main() {
	godotenv.Load()
	dbURL := os.Getenv("DATABASE_URL")
	if dbURL == "" {
		log.Fatal("DATABASE_URL not set")
	}
	db, err := sql.Open("postgres", dbURL)
	if err != nil {
		log.Fatalf("Failed to open DB: %v", err)
	}
	if err := db.Ping(); err != nil {
		log.Fatalf("Failed to connect to DB: %v", err)
	}

	uploadDir := os.Getenv("UPLOAD_DIR")
	if uploadDir == "" {
		uploadDir = "uploads"
	}

	vehicleRepo := repository.NewVehicleRepository(db)
	bookingRepo := repository.NewBookingRepository(db)
	walletRepo := repository.NewWalletRepository(db)
	customerRepo := repository.NewCustomerRepository(db)
	notificationRepo := repository.NewNotificationRepository(db)
	documentRepo := repository.NewDocumentRepository(db)
	jobRepo := repository.NewJobRepository(db)

	senderSvc := service.NewSenderService()
	walletSvc := service.NewWalletService(walletRepo)
	vehicleSvc := service.NewVehicleService(vehicleRepo)
	notificationSvc := service.NewNotificationService(notificationRepo)
	documentSvc := service.NewDocumentService(documentRepo, uploadDir)
	authSvc := service.NewAuthService(customerRepo)
	bookingSvc := service.NewBookingService(bookingRepo, vehicleRepo, documentRepo,
		notificationRepo, customerRepo, walletSvc, senderSvc)
	jobSvc := service.NewJobService(jobRepo, notificationSvc)

	vehicleHandler := api.NewVehicleHandler(vehicleSvc)
	bookingHandler := api.NewBookingHandler(bookingSvc)
	walletHandler := api.NewWalletHandler(walletSvc)
	authHandler := api.NewAuthHandler(authSvc)
	notificationHandler := api.NewNotificationHandler(notificationSvc)
	documentHandler := api.NewDocumentHandler(documentSvc)
	staffHandler := api.NewStaffHandler(bookingSvc)

	r := mux.NewRouter()

	// Public endpoints
	r.HandleFunc("/api/vehicles", vehicleHandler.ListVehicles).Methods("GET")
	r.HandleFunc("/api/vehicles/{id}", vehicleHandler.GetVehicle).Methods("GET")
	r.HandleFunc("/api/models", vehicleHandler.ListModels).Methods("GET")
	r.HandleFunc("/api/stations", vehicleHandler.ListStations).Methods("GET")
	r.HandleFunc("/api/bookings/slots", bookingHandler.GetPickupSlots).Methods("GET")
	r.HandleFunc("/api/bookings/returns", bookingHandler.GetReturnOptions).Methods("GET")
	r.HandleFunc("/api/bookings/quote", bookingHandler.Quote).Methods("POST")
	r.HandleFunc("/api/auth/register", authHandler.Register).Methods("POST")
	r.HandleFunc("/api/auth/login", authHandler.CustomerLogin).Methods("POST")
	r.HandleFunc("/api/auth/staff/login", authHandler.StaffLogin).Methods("POST")
	r.HandleFunc("/api/wallet/confirm", walletHandler.ConfirmDeposit).Methods("POST")

	// Customer endpoints (protected)
	customer := r.PathPrefix("/api").Subrouter()
	customer.Use(auth.RequireRole(service.RoleCustomer))
	customer.HandleFunc("/me", authHandler.UpdatePersonalInfo).Methods("PUT")
	customer.HandleFunc("/bookings", bookingHandler.CreateBooking).Methods("POST")
	customer.HandleFunc("/bookings", bookingHandler.ListBookings).Methods("GET")
	customer.HandleFunc("/bookings/{code}", bookingHandler.GetBooking).Methods("GET")
	customer.HandleFunc("/bookings/{code}", bookingHandler.CancelBooking).Methods("DELETE")
	customer.HandleFunc("/bookings/{code}/pay", bookingHandler.ConfirmPayment).Methods("POST")
	customer.HandleFunc("/wallet", walletHandler.GetWallet).Methods("GET")
	customer.HandleFunc("/wallet/deposit", walletHandler.Deposit).Methods("POST")
	customer.HandleFunc("/notifications/incidents", notificationHandler.ListIncidents).Methods("GET")
	customer.HandleFunc("/notifications/incidents/{id}/read", notificationHandler.MarkIncidentRead).Methods("POST")
	customer.HandleFunc("/notifications/unread-count", notificationHandler.UnreadCount).Methods("GET")
	customer.HandleFunc("/notifications/handovers", notificationHandler.ListHandovers).Methods("GET")
	customer.HandleFunc("/documents", documentHandler.Upload).Methods("POST")
	customer.HandleFunc("/documents", documentHandler.ListDocuments).Methods("GET")

	// Staff endpoints (protected)
	staff := r.PathPrefix("/api/staff").Subrouter()
	staff.Use(auth.RequireRole(service.RoleStaff))
	staff.HandleFunc("/bookings", staffHandler.ListBookingsForDate).Methods("GET")
	staff.HandleFunc("/bookings/{code}/pickup", staffHandler.ConfirmPickup).Methods("POST")
	staff.HandleFunc("/bookings/{code}/return", staffHandler.CompleteReturn).Methods("POST")

	c := cron.New()
	c.AddFunc("@every 1m", func() {
		if err := jobSvc.ExpireUnpaidBookings(); err != nil {
			log.Printf("Cron Job: %v", err)
		}
	})
	c.AddFunc("@every 5m", func() {
		if err := jobSvc.CompleteElapsedBookings(); err != nil {
			log.Printf("Cron Job: %v", err)
		}
		if err := jobSvc.NotifyOverdueReturns(); err != nil {
			log.Printf("Cron Job: %v", err)
		}
	})
	c.Start()
	defer c.Stop()

	cors := ghandlers.CORS(
		ghandlers.AllowedOrigins([]string{"*"}),
		ghandlers.AllowedMethods([]string{"GET", "POST", "PUT", "DELETE", "OPTIONS"}),
		ghandlers.AllowedHeaders([]string{"Content-Type", "Authorization"}),
	)

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	log.Printf("Server running on port %s", port)
	log.Fatal(http.ListenAndServe(":"+port, cors(r)))
}
