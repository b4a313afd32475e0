package main

import (
	"context"
	"log"
	"os"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	api_middleware "github.com/ddiazp/LuckySevens/api/middleware"
	v1 "github.com/ddiazp/LuckySevens/api/v1"
	"github.com/ddiazp/LuckySevens/internal/game"
	"github.com/ddiazp/LuckySevens/internal/player"
	"github.com/ddiazp/LuckySevens/internal/stats"
	"github.com/ddiazp/LuckySevens/pkg/db"
	"github.com/ddiazp/LuckySevens/websocket"
)

// rateFanout relays every success-rate change to the redis leaderboard
// and the live websocket feed.
type rateFanout struct {
	stats *stats.StatsService
	hub   *websocket.Hub
}

func (f *rateFanout) PublishRate(playerID uint, rate float64) {
	f.stats.RecordRate(playerID, rate)
	if entries, err := f.stats.Ranking(context.Background()); err == nil {
		f.hub.BroadcastRanking(entries)
	}
}

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("File .env not found, using system values")
	}

	database, rdb, err := db.Init()
	if err != nil {
		log.Fatalf("error initializing storage: %v", err)
	}
	if err := database.AutoMigrate(&player.Player{}, &game.Game{}); err != nil {
		log.Fatalf("error migrating schema: %v", err)
	}

	playerRepo := player.NewGormPlayerRepository(database)
	playerService := player.NewPlayerService(playerRepo)
	statsService := stats.NewStatsService(playerRepo, stats.NewRedisLeaderboard(rdb))
	hub := websocket.NewHub()
	gameService := game.NewGameService(
		game.NewGormGameRepository(database),
		playerRepo,
		game.NewRandRoller(),
		&rateFanout{stats: statsService, hub: hub},
	)

	v1.PlayerService = playerService
	v1.GameService = gameService
	v1.StatsService = statsService
	websocket.Feed = hub
	websocket.Stats = statsService

	e := echo.New()
	e.HTTPErrorHandler = api_middleware.HTTPErrorHandler

	e.Use(middleware.Logger())
	e.Use(middleware.Recover())
	e.Use(middleware.CORS())

	v1.RegisterAuthRoutes(e)
	v1.RegisterRankingRoutes(e)

	g := e.Group("/players")
	g.Use(api_middleware.SetupJWTMiddleware())
	v1.RegisterPlayerRoutes(e, g)
	v1.RegisterGameRoutes(g)

	e.GET("/ws/leaderboard", websocket.LeaderboardHandler)

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	e.Logger.Fatal(e.Start(":" + port))
}
