package middleware

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/ddiazp/LuckySevens/internal/apperrors"
	"github.com/labstack/echo/v4"
)

// HTTPErrorHandler renders every failure as the API's error body shape:
// a status flag plus a human-readable message.
func HTTPErrorHandler(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}

	code := http.StatusInternalServerError
	message := "internal server error"

	var appErr *apperrors.AppError
	var httpErr *echo.HTTPError
	if errors.As(err, &appErr) {
		code = appErr.Code
		message = appErr.Message
	} else if errors.As(err, &httpErr) {
		code = httpErr.Code
		message = fmt.Sprintf("%v", httpErr.Message)
	}

	if err := c.JSON(code, echo.Map{"status": false, "message": message}); err != nil {
		c.Logger().Error(err)
	}
}
