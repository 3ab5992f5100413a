package api

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"travelagency/internal/config"
	"travelagency/internal/database"
	"travelagency/internal/handlers"
	"travelagency/internal/logger"
	"travelagency/internal/messaging"
	"travelagency/internal/middleware"
	"travelagency/internal/reports"
	"travelagency/internal/repository"
	"travelagency/internal/search"
	"travelagency/internal/service"
)

// Server представляет HTTP сервер API
type Server struct {
	router   *gin.Engine
	config   *config.Config
	db       *database.DB
	nats     *messaging.NATSClient
	es       *search.ElasticsearchClient
	services *service.Services
	reports  *reports.Service
}

// NewServer создает новый экземпляр сервера
func NewServer(cfg *config.Config) *Server {
	gin.SetMode(cfg.GinMode)

	db, err := database.Connect(cfg.Database)
	if err != nil {
		logger.Fatal("Failed to connect to database", "error", err)
	}

	if err := db.RunMigrations(); err != nil {
		logger.Fatal("Failed to run migrations", "error", err)
	}

	natsClient, err := messaging.NewNATSClient(cfg.NATS)
	if err != nil {
		logger.Fatal("Failed to connect to NATS", "error", err)
	}

	esClient, err := search.NewElasticsearchClient(cfg.Elasticsearch)
	if err != nil {
		logger.Fatal("Failed to connect to Elasticsearch", "error", err)
	}

	repos := repository.NewRepositories(db)

	services := service.NewServices(repos, natsClient, esClient, service.Options{
		ClientDeleteCascade: cfg.ClientDeleteMode == config.ClientDeleteCascade,
	})

	reportsService := reports.NewService(repos.Clients, repos.Bookings, natsClient)

	router := gin.New()
	router.Use(middleware.Recovery())
	router.Use(middleware.RequestID())
	router.Use(middleware.CORS())
	router.Use(middleware.Logger())
	router.Use(middleware.Metrics())

	server := &Server{
		router:   router,
		config:   cfg,
		db:       db,
		nats:     natsClient,
		es:       esClient,
		services: services,
		reports:  reportsService,
	}

	server.setupRoutes()

	return server
}

// setupRoutes настраивает все API роуты
func (s *Server) setupRoutes() {
	h := handlers.NewHandlers(s.services, s.reports)

	api := s.router.Group("/api")
	// Обязательная Basic Auth для всех API роутов
	api.Use(middleware.BasicAuth(s.services.Users))
	{
		clients := api.Group("/clients")
		{
			clients.POST("", h.CreateClient)
			clients.GET("", h.ListClients)
			clients.GET("/:id", h.GetClient)
			clients.PUT("/:id", h.UpdateClient)
			clients.DELETE("/:id", h.DeleteClient)
		}

		countries := api.Group("/countries")
		{
			countries.POST("", h.CreateCountry)
			countries.GET("", h.ListCountries)
			countries.DELETE("/:id", h.DeleteCountry)
		}

		cities := api.Group("/cities")
		{
			cities.POST("", h.CreateCity)
			cities.GET("", h.ListCities)
			cities.DELETE("/:id", h.DeleteCity)
		}

		hotels := api.Group("/hotels")
		{
			hotels.POST("", h.CreateHotel)
			hotels.GET("", h.ListHotels)
			hotels.DELETE("/:id", h.DeleteHotel)
		}

		tourTypes := api.Group("/tour-types")
		{
			tourTypes.POST("", h.CreateTourType)
			tourTypes.GET("", h.ListTourTypes)
			tourTypes.DELETE("/:id", h.DeleteTourType)
		}

		tours := api.Group("/tours")
		{
			tours.POST("", h.CreateTour)
			tours.GET("", h.ListTours)
			tours.GET("/search", h.SearchTours)
			tours.GET("/:id", h.GetTour)
			tours.PUT("/:id", h.UpdateTour)
			tours.DELETE("/:id", h.DeleteTour)
		}

		bookings := api.Group("/bookings")
		{
			bookings.POST("", h.CreateBooking)
			bookings.GET("", h.ListBookings)
			bookings.GET("/:id", h.GetBooking)
			bookings.PUT("/:id", h.UpdateBooking)
			bookings.POST("/:id/cancel", h.CancelBooking)
			bookings.DELETE("/:id", h.DeleteBooking)
			bookings.POST("/:id/payments", h.RecordPayment)
		}

		reviews := api.Group("/reviews")
		{
			reviews.POST("", h.CreateReview)
			reviews.GET("", h.ListReviews)
			reviews.DELETE("/:id", h.DeleteReview)
		}

		reportsGroup := api.Group("/reports")
		{
			reportsGroup.GET("/clients", h.ExportClients)
			reportsGroup.POST("/clients", h.ImportClients)
			reportsGroup.GET("/bookings", h.ExportBookings)
		}

		// Кадровые и учетные операции доступны только администраторам
		employees := api.Group("/employees", middleware.RequireAdmin())
		{
			employees.POST("", h.CreateEmployee)
			employees.GET("", h.ListEmployees)
			employees.GET("/:id", h.GetEmployee)
			employees.PUT("/:id", h.UpdateEmployee)
			employees.DELETE("/:id", h.DeleteEmployee)
		}

		users := api.Group("/users", middleware.RequireAdmin())
		{
			users.POST("", h.CreateUser)
		}
	}

	s.router.GET("/health", s.healthCheck)
	s.router.GET("/metrics", gin.WrapH(promhttp.Handler()))
}

// healthCheck обрабатывает health check запросы
func (s *Server) healthCheck(c *gin.Context) {
	status := "ok"
	code := http.StatusOK

	if err := s.db.PingContext(c.Request.Context()); err != nil {
		status = "degraded"
		code = http.StatusServiceUnavailable
	}

	c.JSON(code, gin.H{
		"status":  status,
		"service": "travel-agency-api",
		"version": "1.0.0",
	})
}

// Run запускает HTTP сервер
func (s *Server) Run() error {
	addr := fmt.Sprintf(":%s", s.config.Port)
	return s.router.Run(addr)
}

// GetRouter возвращает роутер для тестирования
func (s *Server) GetRouter() *gin.Engine {
	return s.router
}

// Cleanup закрывает соединения
func (s *Server) Cleanup() error {
	if s.nats != nil {
		if err := s.nats.Close(); err != nil {
			logger.Get().Error("Error closing NATS connection", "error", err)
		}
	}

	if s.db != nil {
		if err := s.db.Close(); err != nil {
			logger.Get().Error("Error closing database connection", "error", err)
			return err
		}
	}

	return nil
}
