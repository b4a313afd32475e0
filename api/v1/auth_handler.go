package v1

import (
	"net/http"

	"github.com/ddiazp/LuckySevens/internal/player"
	"github.com/labstack/echo/v4"
)

const INVALID_REQUEST = "invalid request"

var PlayerService *player.PlayerService

func RegisterAuthRoutes(e *echo.Echo) {
	e.POST("/register", RegisterHandler)
	e.POST("/login", LoginHandler)
}

func RegisterHandler(c echo.Context) error {
	var req player.RegisterRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, INVALID_REQUEST)
	}

	p, err := PlayerService.Register(req)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, p)
}

func LoginHandler(c echo.Context) error {
	var req player.LoginRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, INVALID_REQUEST)
	}

	token, p, err := PlayerService.Login(req)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, echo.Map{
		"status":  true,
		"message": "Login successful",
		"token":   token,
		"user":    p,
	})
}
