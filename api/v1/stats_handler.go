package v1

import (
	"net/http"

	"github.com/ddiazp/LuckySevens/internal/stats"
	"github.com/labstack/echo/v4"
)

var StatsService *stats.StatsService

func RegisterRankingRoutes(e *echo.Echo) {
	e.GET("/players/ranking", RankingHandler)
	e.GET("/players/ranking/winner", BestPlayerHandler)
	e.GET("/players/ranking/loser", WorstPlayerHandler)
}

func RankingHandler(c echo.Context) error {
	entries, err := StatsService.Ranking(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, echo.Map{
		"status":  "success",
		"message": "Ranking calculated successfully.",
		"ranking": entries,
	})
}

func BestPlayerHandler(c echo.Context) error {
	best, err := StatsService.BestPlayer()
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, echo.Map{
		"status":      "success",
		"message":     "Best player found successfully.",
		"best_player": best.Name,
	})
}

func WorstPlayerHandler(c echo.Context) error {
	worst, err := StatsService.WorstPlayer()
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, echo.Map{
		"status":       "success",
		"message":      "Worst player found successfully.",
		"worst_player": worst.Name,
	})
}
