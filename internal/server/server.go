package server

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/jmoiron/sqlx"
	"github.com/redis/go-redis/v9"

	"github.com/SchmidtMatheus/gym-simulator-web/internal/booking"
	"github.com/SchmidtMatheus/gym-simulator-web/internal/catalog"
	"github.com/SchmidtMatheus/gym-simulator-web/internal/config"
	"github.com/SchmidtMatheus/gym-simulator-web/internal/report"
	"github.com/SchmidtMatheus/gym-simulator-web/internal/roster"
)

const reportCacheTTL = time.Minute

type Server struct {
	router *gin.Engine
	http   *http.Server
	db     *sqlx.DB
	config *config.Config
}

func New(db *sqlx.DB, cfg *config.Config, redisClient *redis.Client) *Server {
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(RequestLoggingMiddleware())
	router.Use(MetricsMiddleware())
	router.Use(corsMiddleware())
	router.Use(RateLimitMiddleware(cfg.RateLimitRPS, cfg.RateLimitBurst))

	catalogRepo := catalog.NewRepository(db)
	catalogHandler := catalog.NewHandler(catalog.NewService(catalogRepo))

	rosterRepo := roster.NewRepository(db)
	rosterHandler := roster.NewHandler(roster.NewService(rosterRepo, catalogRepo))

	reportCache := report.NewCache(redisClient, reportCacheTTL)
	reportHandler := report.NewHandler(report.NewService(report.NewRepository(db), reportCache))

	bookingRepo := booking.NewRepository(db)
	bookingHandler := booking.NewHandler(booking.NewService(bookingRepo, reportCache))

	api := router.Group("/api")
	{
		students := api.Group("/students")
		{
			students.GET("", rosterHandler.ListStudents)
			students.POST("", rosterHandler.CreateStudent)
			students.GET("/:studentID", rosterHandler.GetStudent)
			students.PUT("/:studentID", rosterHandler.UpdateStudent)
			students.GET("/:studentID/report", reportHandler.GetStudentReport)
		}

		classes := api.Group("/classes")
		{
			classes.GET("", rosterHandler.ListClasses)
			classes.POST("", rosterHandler.CreateClass)
			classes.GET("/list/available", rosterHandler.ListAvailableClasses)
			classes.GET("/:classID", rosterHandler.GetClass)
			classes.POST("/:classID/cancel", rosterHandler.CancelClass)
		}

		bookings := api.Group("/bookings")
		{
			bookings.GET("", bookingHandler.ListBookings)
			bookings.POST("", bookingHandler.CreateBooking)
			bookings.POST("/:bookingID/cancel", bookingHandler.CancelBooking)
			bookings.POST("/:bookingID/attend", bookingHandler.MarkAttended)
			bookings.POST("/:bookingID/miss", bookingHandler.MarkMissed)
			// older dashboard builds fetch the report through the bookings tree
			bookings.GET("/students/:studentID/report", reportHandler.GetStudentReport)
		}

		planTypes := api.Group("/plan-types")
		{
			planTypes.GET("", catalogHandler.ListPlanTypes)
			planTypes.POST("", catalogHandler.CreatePlanType)
			planTypes.PUT("/:planTypeID", catalogHandler.UpdatePlanType)
			planTypes.DELETE("/:planTypeID", catalogHandler.DeletePlanType)
		}

		classTypes := api.Group("/class-types")
		{
			classTypes.GET("", catalogHandler.ListClassTypes)
			classTypes.POST("", catalogHandler.CreateClassType)
			classTypes.PUT("/:classTypeID", catalogHandler.UpdateClassType)
			classTypes.DELETE("/:classTypeID", catalogHandler.DeleteClassType)
		}
	}

	router.GET("/health", Health)
	router.GET("/metrics", Metrics())

	return &Server{
		router: router,
		db:     db,
		config: cfg,
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

// Router exposes the gin engine for handler tests.
func (s *Server) Router() *gin.Engine {
	return s.router
}

func corsMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		c.Writer.Header().Set("Access-Control-Allow-Credentials", "true")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, Content-Length, Accept-Encoding, Authorization, accept, origin, Cache-Control, X-Requested-With")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "POST, OPTIONS, GET, PUT, DELETE, PATCH")
		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}
		c.Next()
	}
}
