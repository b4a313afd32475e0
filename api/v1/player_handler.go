package v1

import (
	"net/http"
	"os"
	"strconv"
	"strings"

	api_middleware "github.com/ddiazp/LuckySevens/api/middleware"
	"github.com/ddiazp/LuckySevens/internal/player"
	"github.com/labstack/echo/v4"
)

// RegisterPlayerRoutes wires the public player listing on the root and
// the self-service rename on the JWT-protected players group. The listing
// is open unless PLAYERS_ADMIN_ONLY gates it behind the admin role.
func RegisterPlayerRoutes(e *echo.Echo, g *echo.Group) {
	if strings.EqualFold(os.Getenv("PLAYERS_ADMIN_ONLY"), "true") {
		e.GET("/players", ListPlayersHandler, api_middleware.SetupJWTMiddleware(), api_middleware.RequireAdmin)
	} else {
		e.GET("/players", ListPlayersHandler)
	}
	g.PUT("/:id", UpdatePlayerHandler)
}

func ListPlayersHandler(c echo.Context) error {
	players, err := PlayerService.ListPlayers()
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, players)
}

func UpdatePlayerHandler(c echo.Context) error {
	playerID, err := parsePlayerID(c)
	if err != nil {
		return err
	}
	callerID, err := api_middleware.CallerID(c)
	if err != nil {
		return err
	}

	var req player.UpdateNameRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, INVALID_REQUEST)
	}

	if err := PlayerService.UpdateName(playerID, callerID, req.Name); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, echo.Map{
		"status":  true,
		"message": "Player updated successfully",
	})
}

func parsePlayerID(c echo.Context) (uint, error) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		return 0, echo.NewHTTPError(http.StatusBadRequest, "invalid player ID")
	}
	return uint(id), nil
}
