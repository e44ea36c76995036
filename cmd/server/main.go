package main

import (
	"database/sql"
	"log"
	"time"

	"github.com/NicoHurtado/MedellinTravelTransportes-sub000/internal/application"
	"github.com/NicoHurtado/MedellinTravelTransportes-sub000/internal/config"
	"github.com/NicoHurtado/MedellinTravelTransportes-sub000/internal/email"
	"github.com/NicoHurtado/MedellinTravelTransportes-sub000/internal/infrastructure/repository"
	handlers "github.com/NicoHurtado/MedellinTravelTransportes-sub000/internal/interfaces/http"
	"github.com/NicoHurtado/MedellinTravelTransportes-sub000/internal/reservasapi"
	"github.com/NicoHurtado/MedellinTravelTransportes-sub000/internal/scheduler"
	"github.com/NicoHurtado/MedellinTravelTransportes-sub000/internal/whatsapp"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	_ "github.com/lib/pq"
)

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Error loading config: %v", err)
	}

	db, err := sql.Open("postgres", cfg.GetDBConnString())
	if err != nil {
		log.Fatalf("Error connecting to database: %v", err)
	}
	defer db.Close()

	if err := db.Ping(); err != nil {
		log.Fatalf("Error pinging database: %v", err)
	}

	app := fiber.New()

	app.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.CORSOrigin,
		AllowMethods:     "GET,POST,PUT,DELETE,OPTIONS",
		AllowHeaders:     "Origin,Content-Type,Accept,Authorization",
		AllowCredentials: true,
		ExposeHeaders:    "Content-Length",
		MaxAge:           86400,
	}))

	// Catálogo
	servicioRepo := repository.NewServicioRepository(db)
	aliadoRepo := repository.NewAliadoRepository(db)
	catalogoService := application.NewCatalogoService(servicioRepo, aliadoRepo)
	catalogoHandler := handlers.NewCatalogoHandler(catalogoService)

	// Email Client
	emailClient, err := email.NewClient(
		cfg.SMTPHost,
		cfg.SMTPPort,
		cfg.SMTPUser,
		cfg.SMTPPassword,
		cfg.SMTPFromName,
		cfg.SMTPFromEmail,
	)
	if err != nil {
		log.Printf("Warning: Email client initialization failed: %v", err)
		emailClient = nil // Continuar sin email
	}

	// WhatsApp Client
	whatsappClient := whatsapp.NewClient(
		cfg.TwilioAccountSID,
		cfg.TwilioAuthToken,
		cfg.TwilioFromNumber,
	)

	// API externo de reservas
	apiClient := reservasapi.NewClient(cfg.ReservasAPIURL, cfg.ReservasAPIKey)

	// Asistente de reserva
	precioService := application.NewPrecioService()
	validador := application.NewValidadorPasos()
	wizardService := application.NewWizardService(precioService, validador)
	sesiones := application.NewRegistroSesiones(cfg.SesionTTL)

	// Carrito y envío
	carritoRepo := repository.NewCarritoRepository(cfg.CarritoPath)
	carritoService := application.NewCarritoService(carritoRepo, apiClient, precioService)
	reservaService := application.NewReservaService(apiClient, emailClient, whatsappClient)

	wizardHandler := handlers.NewWizardHandler(catalogoService, wizardService, sesiones, reservaService, carritoService)
	carritoHandler := handlers.NewCarritoHandler(carritoRepo, carritoService)

	api := app.Group("/api")

	// Rutas del catálogo
	servicios := api.Group("/servicios")
	servicios.Get("/", catalogoHandler.GetAllServicios)
	servicios.Get("/:id", catalogoHandler.GetServicioByID)
	api.Get("/municipios", catalogoHandler.GetMunicipios)

	// Rutas del asistente
	wizard := api.Group("/wizard")
	wizard.Post("/", wizardHandler.CrearSesion)
	wizard.Get("/:id", wizardHandler.GetSesion)
	wizard.Get("/:id/resumen", wizardHandler.Resumen)
	wizard.Put("/:id", wizardHandler.ActualizarReserva)
	wizard.Post("/:id/avanzar", wizardHandler.Avanzar)
	wizard.Post("/:id/retroceder", wizardHandler.Retroceder)
	wizard.Post("/:id/paso", wizardHandler.IrAPaso)
	wizard.Delete("/:id", wizardHandler.CerrarSesion)
	wizard.Post("/:id/carrito", wizardHandler.AgregarAlCarrito)
	wizard.Post("/:id/enviar", wizardHandler.EnviarReserva)
	wizard.Post("/:id/cotizar", wizardHandler.Cotizar)
	wizard.Post("/:id/checkout", wizardHandler.Checkout)

	// Rutas del carrito
	carrito := api.Group("/carrito")
	carrito.Get("/", carritoHandler.GetItems)
	carrito.Delete("/", carritoHandler.Limpiar)
	carrito.Post("/checkout", carritoHandler.Checkout)

	// Limpieza de sesiones abandonadas
	sessionScheduler := scheduler.NewSessionScheduler(sesiones, 15*time.Minute)
	sessionScheduler.Start()
	defer sessionScheduler.Stop()

	log.Printf("Server starting on port %s", cfg.ServerPort)
	if err := app.Listen(":" + cfg.ServerPort); err != nil {
		log.Fatalf("Error starting server: %v", err)
	}
}
