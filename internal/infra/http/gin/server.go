package ginserver

import (
	"net/http"
	"strings"
	"time"

	"github.com/gin-contrib/cors"
	gin "github.com/gin-gonic/gin"

	"villastay/internal/infra/config"
	"villastay/internal/infra/obs"
)

type PropertyHTTP interface {
	List(c *gin.Context)
	Featured(c *gin.Context)
	Create(c *gin.Context)
	Get(c *gin.Context)
}

type BookingHTTP interface {
	Create(c *gin.Context)
}

type SeedHTTP interface {
	Seed(c *gin.Context)
}

type DiagHTTP interface {
	Root(c *gin.Context)
	Hello(c *gin.Context)
	Status(c *gin.Context)
}

type Handlers struct {
	Property PropertyHTTP
	Booking  BookingHTTP
	Seed     SeedHTTP
	Diag     DiagHTTP
}

func NewServer(cfg config.Config, obsMW obs.Middleware, health obs.HealthHandlers, h Handlers) *http.Server {
	mode := configureGinMode(cfg.Env)
	if obsMW.Logger != nil {
		obsMW.Logger.Info("gin initialized", "mode", mode)
	}

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(obsMW.RequestID())
	router.Use(obsMW.LoggerMiddleware())
	router.Use(cors.New(cors.Config{
		AllowOrigins: []string{"*"},
		AllowMethods: []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders: []string{"Origin", "Content-Type", "Accept"},
		ExposeHeaders: []string{
			"Content-Length",
			"Content-Type",
			"X-Request-ID",
		},
		MaxAge: 12 * time.Hour,
	}))

	router.GET("/livez", health.Livez)
	router.GET("/readyz", health.Readyz)

	if h.Diag != nil {
		router.GET("/", h.Diag.Root)
		router.GET("/test", h.Diag.Status)
	}

	api := router.Group("/api")
	if h.Diag != nil {
		api.GET("/hello", h.Diag.Hello)
	}
	if h.Property != nil {
		api.GET("/properties", h.Property.List)
		api.GET("/properties/featured", h.Property.Featured)
		api.POST("/properties", h.Property.Create)
		api.GET("/properties/:id", h.Property.Get)
	}
	if h.Booking != nil {
		api.POST("/bookings", h.Booking.Create)
	}
	if h.Seed != nil {
		api.POST("/seed", h.Seed.Seed)
	}

	return &http.Server{Addr: cfg.HTTPAddr, Handler: router}
}

func configureGinMode(env string) string {
	switch strings.ToLower(strings.TrimSpace(env)) {
	case "debug":
		gin.SetMode(gin.DebugMode)
		return gin.DebugMode
	case "test", "testing":
		gin.SetMode(gin.TestMode)
		return gin.TestMode
	default:
		gin.SetMode(gin.ReleaseMode)
		return gin.ReleaseMode
	}
}
