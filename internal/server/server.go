package server

import (
	"context"
	"net/http"

	"github.com/MandarKanbargi/turf-admin/internal/auth"
	"github.com/MandarKanbargi/turf-admin/internal/availability"
	"github.com/MandarKanbargi/turf-admin/internal/booking"
	"github.com/MandarKanbargi/turf-admin/internal/config"
	"github.com/MandarKanbargi/turf-admin/internal/email"
	"github.com/MandarKanbargi/turf-admin/internal/payment"
	"github.com/MandarKanbargi/turf-admin/internal/review"
	"github.com/MandarKanbargi/turf-admin/internal/turf"
	"github.com/MandarKanbargi/turf-admin/internal/user"

	"github.com/gin-gonic/gin"
	"github.com/jmoiron/sqlx"
)

type Server struct {
	router *gin.Engine
	http   *http.Server
	db     *sqlx.DB
	config *config.Config
	email  *email.Service
}

func New(db *sqlx.DB, cfg *config.Config, emailService *email.Service) *Server {
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(corsMiddleware())
	router.Use(RequestLoggingMiddleware())
	router.Use(MetricsMiddleware())

	userRepo := user.NewRepository(db)
	turfRepo := turf.NewRepository(db)
	bookingRepo := booking.NewRepository(db)
	paymentRepo := payment.NewRepository(db)
	reviewRepo := review.NewRepository(db)
	analyticsRepo := booking.NewAnalyticsRepository(db)

	userService := user.NewService(userRepo, cfg.JWTSecret)
	turfService := turf.NewService(turfRepo)
	availabilityService := availability.NewService(turfRepo, bookingRepo, cfg.SlotGranularityMinutes)
	bookingService := booking.NewService(
		bookingRepo,
		turfRepo,
		userRepo,
		emailService,
		cfg.PlatformFeePaise,
		cfg.SlotGranularityMinutes,
	)

	userHandler := user.NewHandler(userService)
	turfHandler := turf.NewHandler(turfService)
	availabilityHandler := availability.NewHandler(availabilityService)
	bookingHandler := booking.NewHandler(bookingService)
	paymentHandler := payment.NewHandler(paymentRepo)
	reviewHandler := review.NewHandler(reviewRepo)
	analyticsHandler := booking.NewAnalyticsHandler(analyticsRepo)

	public := router.Group("/api/v1/auth")
	public.Use(RateLimitMiddleware(5, 10))
	{
		public.POST("/register", userHandler.Register)
		public.POST("/login", userHandler.Login)
		public.POST("/refresh", userHandler.RefreshToken)
	}

	authMiddleware := auth.AuthMiddleware(cfg.JWTSecret)
	protected := router.Group("/api/v1")
	protected.Use(authMiddleware)
	{
		protected.GET("/me", userHandler.GetMe)

		protected.GET("/turfs", turfHandler.ListTurfs)
		protected.GET("/turfs/:turfID", turfHandler.GetTurf)
		protected.GET("/turfs/:turfID/hours", turfHandler.GetOperatingHours)
		protected.GET("/turfs/:turfID/booking-types", turfHandler.ListBookingTypes)
		protected.GET("/turfs/:turfID/availability", availabilityHandler.GetAvailability)

		protected.POST("/bookings", bookingHandler.CreateBooking)
		protected.GET("/bookings", bookingHandler.GetMyBookings)
		protected.POST("/bookings/:bookingID/cancel", bookingHandler.CancelBooking)
		protected.GET("/bookings/:bookingID/payments", paymentHandler.GetSummary)
		protected.POST("/bookings/:bookingID/payments", paymentHandler.RecordPayment)

		protected.GET("/turfs/:turfID/reviews", reviewHandler.ListByTurf)
		protected.GET("/turfs/:turfID/reviews/summary", reviewHandler.GetSummary)
		protected.POST("/turfs/:turfID/reviews", reviewHandler.Create)
		protected.DELETE("/reviews/:reviewID", reviewHandler.Delete)
	}

	ownerMiddleware := auth.RequireRole(user.RoleOwner)
	dashboard := router.Group("/api/v1/dashboard")
	dashboard.Use(authMiddleware, ownerMiddleware)
	{
		dashboard.POST("/turfs", turfHandler.CreateTurf)
		dashboard.GET("/turfs", turfHandler.ListMyTurfs)
		dashboard.PUT("/turfs/:turfID/hours", turfHandler.UpdateOperatingHours)
		dashboard.POST("/turfs/:turfID/booking-types", turfHandler.CreateBookingType)
		dashboard.POST("/turfs/:turfID/blackouts", turfHandler.CreateBlackout)
		dashboard.GET("/turfs/:turfID/bookings", bookingHandler.GetTurfBookings)
		dashboard.PATCH("/bookings/:bookingID/status", bookingHandler.UpdateStatus)
		dashboard.GET("/stats/daily", analyticsHandler.GetDailyStats)
		dashboard.GET("/stats/turfs", analyticsHandler.GetTurfStats)
	}

	router.GET("/health", Health)
	router.GET("/test-email", TestEmail(emailService))
	router.GET("/metrics", Metrics())
	SetupSwagger(router)

	return &Server{
		router: router,
		db:     db,
		config: cfg,
		email:  emailService,
	}
}

func (s *Server) Start(port string) error {
	s.http = &http.Server{
		Addr:    ":" + port,
		Handler: s.router,
	}
	return s.http.ListenAndServe()
}

func (s *Server) Shutdown(ctx context.Context) error {
	if s.http == nil {
		return nil
	}
	return s.http.Shutdown(ctx)
}

func corsMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		c.Writer.Header().Set("Access-Control-Allow-Credentials", "true")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, Content-Length, Accept-Encoding, X-CSRF-Token, Authorization, accept, origin, Cache-Control, X-Requested-With")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "POST, OPTIONS, GET, PUT, DELETE, PATCH")
		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(204)
			return
		}
		c.Next()
	}
}
