package httpapi

import (
	"errors"
	"net/http"

	"github.com/gofiber/fiber/v2"
)

// Client-facing error texts.
const (
	msgInvalidBody          = "Invalid request body"
	msgMissingEntryFields   = "Missing title or content"
	msgEntryNotFound        = "Entry not found"
	msgMissingCredentials   = "Missing username or password"
	msgUsernameTaken        = "Username already exists"
	msgInvalidCredentials   = "Invalid username or password"
	msgMissingOrInvalidAuth = "Missing or invalid token"
	msgTokenExpired         = "Token expired"
	msgInvalidToken         = "Invalid token"
	msgInternal             = "internal error"
)

type errorResponse struct {
	Error string `json:"error"`
}

type messageResponse struct {
	Message string `json:"message"`
}

func writeError(c *fiber.Ctx, status int, msg string) error {
	return c.Status(status).JSON(errorResponse{Error: msg})
}

// handleError renders errors that escaped a handler, including fiber's own
// (unknown route, method not allowed, panics caught by recover).
func (s *Server) handleError(c *fiber.Ctx, err error) error {
	var fe *fiber.Error
	if errors.As(err, &fe) {
		return writeError(c, fe.Code, fe.Message)
	}

	s.logger.Error(c.UserContext(), "request failed",
		"method", c.Method(), "path", c.Path(), "error", err.Error())
	return writeError(c, http.StatusInternalServerError, msgInternal)
}
