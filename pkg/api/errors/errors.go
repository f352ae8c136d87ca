// Package errors centralizes the HTTP error envelope so handlers never
// leak internal error strings to clients.
package errors

import (
	"log"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/crewboard/crewboard-back/pkg/models"
)

// BadRequest responds 400 with a client-safe message.
func BadRequest(c echo.Context, message string) error {
	return c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: message})
}

// NotFound responds 404.
func NotFound(c echo.Context, message string) error {
	return c.JSON(http.StatusNotFound, models.ErrorResponse{Error: message})
}

// TooManyRequests responds 429.
func TooManyRequests(c echo.Context, message string) error {
	return c.JSON(http.StatusTooManyRequests, models.ErrorResponse{Error: message})
}

// Internal logs the real error and responds 500 with a generic message.
func Internal(c echo.Context, err error) error {
	log.Printf("❌ Internal error on %s %s: %v", c.Request().Method, c.Request().URL.Path, err)
	return c.JSON(http.StatusInternalServerError, models.ErrorResponse{Error: "internal server error"})
}
