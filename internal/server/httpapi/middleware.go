package httpapi

import (
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/dmitrijs2005/classroom/internal/common"
)

const localUsername = "username"

// requireToken admits requests carrying a valid bearer token and stores its
// username in the request locals.
func (s *Server) requireToken(c *fiber.Ctx) error {
	header := c.Get(common.AuthorizationHeaderName)
	token, ok := strings.CutPrefix(header, common.BearerPrefix)
	if !ok || strings.TrimSpace(token) == "" {
		return writeError(c, http.StatusUnauthorized, msgMissingOrInvalidAuth)
	}

	username, err := s.users.Authenticate(strings.TrimSpace(token))
	if err != nil {
		if errors.Is(err, common.ErrTokenExpired) {
			return writeError(c, http.StatusUnauthorized, msgTokenExpired)
		}
		return writeError(c, http.StatusUnauthorized, msgInvalidToken)
	}

	c.Locals(localUsername, username)
	return c.Next()
}

func (s *Server) accessLog(c *fiber.Ctx) error {
	start := time.Now()
	err := c.Next()

	status := c.Response().StatusCode()
	if err != nil {
		status = fiber.StatusInternalServerError
		var fe *fiber.Error
		if errors.As(err, &fe) {
			status = fe.Code
		}
	}

	s.logger.Debug(c.UserContext(), "request",
		"method", c.Method(),
		"path", c.Path(),
		"status", status,
		"duration", time.Since(start).String(),
		"request_id", c.GetRespHeader(fiber.HeaderXRequestID),
	)
	return err
}
