package v1

import (
	"net/http"

	api_middleware "github.com/ddiazp/LuckySevens/api/middleware"
	"github.com/ddiazp/LuckySevens/internal/game"
	"github.com/labstack/echo/v4"
)

var GameService *game.GameService

func RegisterGameRoutes(g *echo.Group) {
	g.POST("/:id/games", RollDiceHandler)
	g.DELETE("/:id/games", DeleteGamesHandler)
	g.GET("/:id/games", ListGamesHandler)
}

func RollDiceHandler(c echo.Context) error {
	playerID, err := parsePlayerID(c)
	if err != nil {
		return err
	}
	callerID, err := api_middleware.CallerID(c)
	if err != nil {
		return err
	}

	g, err := GameService.RollDice(playerID, callerID)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, g)
}

func DeleteGamesHandler(c echo.Context) error {
	playerID, err := parsePlayerID(c)
	if err != nil {
		return err
	}
	callerID, err := api_middleware.CallerID(c)
	if err != nil {
		return err
	}

	if err := GameService.DeleteGames(playerID, callerID); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, echo.Map{"message": "Games deleted"})
}

func ListGamesHandler(c echo.Context) error {
	playerID, err := parsePlayerID(c)
	if err != nil {
		return err
	}
	callerID, err := api_middleware.CallerID(c)
	if err != nil {
		return err
	}

	games, err := GameService.ListGames(playerID, callerID)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, games)
}
