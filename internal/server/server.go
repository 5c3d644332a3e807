package server

import (
	"net/http"
	"time"

	"fuelapi/internal/config"
	"fuelapi/internal/handler"
	"fuelapi/internal/middleware"
	"fuelapi/internal/repository"
	"fuelapi/internal/service"
	"fuelapi/internal/storage"
	"fuelapi/internal/token"

	"github.com/gin-gonic/gin"
	"github.com/jmoiron/sqlx"
	"github.com/sirupsen/logrus"
	"go.uber.org/zap"
)

type Server struct {
	router *gin.Engine
	db     *sqlx.DB
	cfg    *config.Config
	log    *logrus.Logger
	appLog *zap.Logger
}

func NewServer(db *sqlx.DB, cfg *config.Config, appLog *zap.Logger) *Server {
	router := gin.New()
	router.Use(gin.Recovery())

	s := &Server{
		router: router,
		db:     db,
		cfg:    cfg,
		log:    logrus.New(),
		appLog: appLog,
	}

	router.Use(s.requestLog())
	s.setupRoutes()

	return s
}

// requestLog logs each request with method, path, status and latency.
func (s *Server) requestLog() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		s.log.WithFields(logrus.Fields{
			"method":  c.Request.Method,
			"path":    c.Request.URL.Path,
			"status":  c.Writer.Status(),
			"latency": time.Since(start).String(),
		}).Info("request")
	}
}

func (s *Server) setupRoutes() {
	tokens := token.NewManager(s.cfg.JWT.Secret, s.cfg.JWT.Issuer, s.cfg.JWT.Audience, s.cfg.TokenTTL())
	files := storage.NewFileStore(s.cfg.Uploads.Dir, s.appLog)

	authRepo := repository.NewAuthRepository(s.db, s.appLog)
	authService := service.NewAuthService(authRepo, tokens, s.appLog)
	authHandler := handler.NewAuthHandler(authService, s.appLog)

	recordRepo := repository.NewRecordRepository(s.db, s.appLog)
	recordService := service.NewRecordService(recordRepo, files, s.cfg.MaxFileSize(), s.appLog)
	recordHandler := handler.NewRecordHandler(recordService, files, s.appLog)

	// Ping route for health check
	s.router.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"message": "pong",
		})
	})

	// Authentication routes
	authGroup := s.router.Group("/api/auth")
	authGroup.POST("/login", authHandler.Login)

	// Authenticated routes
	records := s.router.Group("/api/dispensingrecords")
	records.Use(middleware.Auth(tokens, s.appLog))
	{
		records.POST("/create", recordHandler.Create)
		records.POST("/list", recordHandler.List)
		records.GET("/download/:filename", recordHandler.Download)
	}
}

func (s *Server) Run(addr string) {
	s.log.Infof("Server starting on port %s...", addr)
	if err := s.router.Run(addr); err != nil {
		s.log.Fatalf("Server failed to start: %v", err)
	}
}
