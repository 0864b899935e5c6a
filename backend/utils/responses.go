package utils

import (
	"errors"
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/ellavondegurechaff/recipe-store/backend/models"
	"github.com/ellavondegurechaff/recipe-store/internal/domain/recipes"
)

// SendJSON sends a JSON response using Fiber
func SendJSON(c *fiber.Ctx, statusCode int, data any) error {
	return c.Status(statusCode).JSON(data)
}

// SendMessage sends a 200 confirmation message
func SendMessage(c *fiber.Ctx, message string) error {
	return SendJSON(c, http.StatusOK, models.MessageResponse{Message: message})
}

// SendError sends an error JSON response
func SendError(c *fiber.Ctx, statusCode int, description string) error {
	return SendJSON(c, statusCode, models.ErrorResponse{
		Code:        statusCode,
		Name:        http.StatusText(statusCode),
		Description: description,
	})
}

// SendBadRequest sends a bad request error response
func SendBadRequest(c *fiber.Ctx, description string, fields map[string]string) error {
	return SendJSON(c, http.StatusBadRequest, models.ErrorResponse{
		Code:        http.StatusBadRequest,
		Name:        http.StatusText(http.StatusBadRequest),
		Description: description,
		Fields:      fields,
	})
}

// SendNotFound sends a not found error response
func SendNotFound(c *fiber.Ctx, description string) error {
	return SendError(c, http.StatusNotFound, description)
}

// SendInternalServerError sends the raw error message with a 500
func SendInternalServerError(c *fiber.Ctx, description string) error {
	return SendError(c, http.StatusInternalServerError, description)
}

// SendServiceError maps a recipes.Service error onto its HTTP status.
func SendServiceError(c *fiber.Ctx, err error) error {
	var ve *recipes.ValidationError
	switch {
	case errors.As(err, &ve):
		return SendBadRequest(c, ve.Error(), ve.Fields)
	case errors.Is(err, recipes.ErrNotFound):
		return SendNotFound(c, recipes.ErrNotFound.Error())
	default:
		return SendInternalServerError(c, err.Error())
	}
}

// DecodeJSON decodes the request body with the app's JSON decoder regardless
// of the Content-Type header.
func DecodeJSON(c *fiber.Ctx, v any) error {
	body := c.Body()
	if len(body) == 0 {
		return errors.New("request body must be a JSON object")
	}
	return c.App().Config().JSONDecoder(body, v)
}

// GetIPAddress returns the client IP. Forwarding headers are honoured only
// through the app's ProxyHeader and only from trusted proxies.
func GetIPAddress(c *fiber.Ctx) string {
	return c.IP()
}

// GetUserAgent extracts the user agent
func GetUserAgent(c *fiber.Ctx) string {
	return c.Get("User-Agent")
}
