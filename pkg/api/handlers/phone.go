package handlers

import (
	"net/http"

	"github.com/labstack/echo/v4"

	apierrors "github.com/crewboard/crewboard-back/pkg/api/errors"
	"github.com/crewboard/crewboard-back/pkg/phone"
)

// PhoneHandler validates phone numbers for the dashboard's inline editor.
type PhoneHandler struct{}

// NewPhoneHandler creates the phone handler.
func NewPhoneHandler() *PhoneHandler {
	return &PhoneHandler{}
}

type phoneCheckResponse struct {
	Valid      bool   `json:"valid"`
	Normalized string `json:"normalized,omitempty"`
	Pretty     string `json:"pretty,omitempty"`
}

// Check reports whether a number is valid and how it normalizes.
// GET /api/phone/check?number=...&region=US
func (h *PhoneHandler) Check(c echo.Context) error {
	number := c.QueryParam("number")
	if number == "" {
		return apierrors.BadRequest(c, "number is required")
	}
	region := c.QueryParam("region")

	resp := phoneCheckResponse{Valid: phone.Validate(number, region)}
	if resp.Valid {
		resp.Normalized = phone.Normalize(number, region)
		if pretty, err := phone.Pretty(number, region); err == nil {
			resp.Pretty = pretty
		}
	}
	return c.JSON(http.StatusOK, resp)
}
