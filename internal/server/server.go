package server

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/jmoiron/sqlx"
	"github.com/sirupsen/logrus"
	"go.uber.org/zap"

	"github.com/statsync/statsync/internal/handler"
	"github.com/statsync/statsync/internal/middleware"
	"github.com/statsync/statsync/internal/models"
	"github.com/statsync/statsync/internal/repository"
	"github.com/statsync/statsync/internal/service"
	"github.com/statsync/statsync/internal/token"
)

type Server struct {
	router *gin.Engine
	db     *sqlx.DB
	issuer *token.Issuer
	logger *zap.Logger
	log    *logrus.Logger
}

// NewServer wires repositories, services and handlers onto the router.
// The zap logger feeds the service/repository layers, logrus the HTTP
// layer.
func NewServer(db *sqlx.DB, issuer *token.Issuer, logger *zap.Logger, log *logrus.Logger) *Server {
	router := gin.Default()
	router.Use(middleware.RequestID())

	s := &Server{
		router: router,
		db:     db,
		issuer: issuer,
		logger: logger,
		log:    log,
	}

	s.setupRoutes()

	return s
}

func (s *Server) setupRoutes() {
	athleteRepo := repository.NewAthleteRepository(s.db)
	trainerRepo := repository.NewTrainerRepository(s.db)

	authService := service.NewAuthService(athleteRepo, trainerRepo, s.issuer, s.logger)
	profileService := service.NewProfileService(athleteRepo, s.logger)

	authHandler := handler.NewAuthHandler(authService, s.issuer.TTL(), s.log)
	athleteHandler := handler.NewAthleteHandler(profileService, s.log)
	trainerHandler := handler.NewTrainerHandler(profileService, s.log)

	// Ping route for health check
	s.router.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"message": "pong",
		})
	})

	// Public auth routes, one set per role.
	s.router.POST("/signup/athlete", authHandler.SignupAthlete)
	s.router.POST("/signup/trainer", authHandler.SignupTrainer)
	s.router.POST("/login/athlete", authHandler.Login(models.RoleAthlete))
	s.router.POST("/login/trainer", authHandler.Login(models.RoleTrainer))
	s.router.POST("/logout/athlete", authHandler.Logout(models.RoleAthlete))
	s.router.POST("/logout/trainer", authHandler.Logout(models.RoleTrainer))

	// One guard algorithm, instantiated per role.
	athleteGuard := middleware.RequireRole(models.RoleAthlete, s.issuer,
		middleware.AthleteResolver{Athletes: athleteRepo}, s.logger)
	trainerGuard := middleware.RequireRole(models.RoleTrainer, s.issuer,
		middleware.TrainerResolver{Trainers: trainerRepo}, s.logger)

	athleteAPI := s.router.Group("/api/athlete")
	athleteAPI.Use(athleteGuard)
	{
		athleteAPI.GET("/me", athleteHandler.Me)
		athleteAPI.GET("/me/stats.pdf", athleteHandler.ExportOwnStats)
		athleteAPI.GET("/:id", athleteHandler.GetByID)
	}

	trainerAPI := s.router.Group("/api/trainer")
	trainerAPI.Use(trainerGuard)
	{
		trainerAPI.GET("/me", trainerHandler.Me)
		trainerAPI.GET("/athletes", trainerHandler.ListAthletes)
		trainerAPI.GET("/athletes/:id", trainerHandler.GetAthlete)
		trainerAPI.PATCH("/athletes/:id", trainerHandler.UpdateAthlete)
		trainerAPI.DELETE("/athletes/:id", trainerHandler.DeleteAthlete)
		trainerAPI.GET("/athletes/:id/stats.pdf", trainerHandler.ExportAthleteStats)
	}
}

func (s *Server) Run(addr string) {
	s.log.Infof("Server starting on port %s...", addr)
	if err := s.router.Run(addr); err != nil {
		s.log.Fatalf("Server failed to start: %v", err)
	}
}
