package server

import (
	"fmt"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/ferroviario/socio-api/config"
	"github.com/ferroviario/socio-api/internal/handlers"
	"github.com/ferroviario/socio-api/internal/middleware"
)

func Start() error {
	logger, err := zap.NewProduction()
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %v", err)
	}
	defer logger.Sync()

	cfg, err := config.LoadConfig()
	if err != nil {
		return fmt.Errorf("failed to load config: %v", err)
	}

	db, err := config.InitDatabase(cfg, logger)
	if err != nil {
		return fmt.Errorf("failed to initialize database: %v", err)
	}

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.RequestLogger(logger))

	SetupRoutes(r, db)

	logger.Info("server listening", zap.String("port", cfg.Port))
	return r.Run(":" + cfg.Port)
}

// SetupRoutes mounts the catalog routes on their historical unversioned paths
// and the member-facing surface under /api/v1.
func SetupRoutes(r *gin.Engine, db *gorm.DB) {
	r.Use(middleware.DatabaseMiddleware(db))

	r.GET("/", handlers.Root)
	r.GET("/status", handlers.Status)

	players := r.Group("/players")
	{
		players.POST("/", handlers.CreatePlayer)
		players.GET("/", handlers.ListPlayers)
		players.GET("/:id", handlers.GetPlayer)
	}

	competitions := r.Group("/competitions")
	{
		competitions.POST("/", handlers.CreateCompetition)
		competitions.GET("/", handlers.ListCompetitions)
		competitions.GET("/:id", handlers.GetCompetition)
	}

	matches := r.Group("/matches")
	{
		matches.POST("/", handlers.CreateMatch)
		matches.GET("/", handlers.ListMatches)
		matches.GET("/:id", handlers.GetMatch)
	}

	r.GET("/games_schedule/", handlers.GamesSchedule)
	r.GET("/home_games/", handlers.HomeGames)

	v1 := r.Group("/api/v1")
	{
		v1.POST("/auth/login", handlers.Login)

		v1.POST("/news", handlers.CreateNews)
		v1.POST("/press", handlers.CreatePressConference)
		v1.POST("/videos", handlers.CreateVideo)
		v1.POST("/partners", handlers.CreatePartner)
		v1.POST("/tickets/categories", handlers.CreateTicketCategory)

		v1.GET("/benefits", handlers.ListBenefits)
		v1.GET("/benefits/:id", handlers.GetBenefit)
	}

	// Token contents are never inspected; CurrentMember pins the identity
	// these routes are served as.
	member := r.Group("/api/v1")
	member.Use(middleware.CurrentMember())
	{
		member.GET("/member/profile", handlers.GetProfile)
		member.GET("/member/cards", handlers.ListCards)
		member.POST("/member/cards", handlers.AddCard)
		member.DELETE("/member/cards/:id", handlers.DeleteCard)

		member.GET("/dashboard", handlers.Dashboard)

		member.GET("/news/:id", handlers.GetNews)
		member.POST("/news/:id/like", handlers.ToggleNewsLike)

		member.GET("/tickets/matches", handlers.ListTicketMatches)
		member.POST("/tickets/purchase", handlers.PurchaseTickets)

		member.POST("/checkin", handlers.CheckIn)

		member.GET("/orders/:id/qr", handlers.OrderQR)
		member.GET("/checkins/:id/qr", handlers.CheckinQR)
	}
}
