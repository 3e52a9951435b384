package httpapi

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/dmitrijs2005/classroom/internal/common"
	"github.com/dmitrijs2005/classroom/internal/server/models"
)

type entryRequest struct {
	Title   string `json:"title"`
	Content string `json:"content"`
}

type credentialsRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type tokenResponse struct {
	Token string `json:"token"`
}

func (s *Server) listEntries(c *fiber.Ctx) error {
	entries, err := s.entries.List(c.UserContext())
	if err != nil {
		return err
	}
	if entries == nil {
		entries = []*models.Entry{}
	}
	return c.JSON(entries)
}

func (s *Server) createEntry(c *fiber.Ctx) error {
	var req entryRequest
	if err := c.BodyParser(&req); err != nil {
		return writeError(c, http.StatusBadRequest, msgInvalidBody)
	}

	e, err := s.entries.Create(c.UserContext(), req.Title, req.Content)
	if err != nil {
		if errors.Is(err, common.ErrValidation) {
			return writeError(c, http.StatusBadRequest, msgMissingEntryFields)
		}
		return err
	}

	s.logger.Info(c.UserContext(), "entry created", "id", e.ID)
	return c.Status(http.StatusCreated).JSON(e)
}

func (s *Server) updateEntry(c *fiber.Ctx) error {
	var req entryRequest
	if err := c.BodyParser(&req); err != nil {
		return writeError(c, http.StatusBadRequest, msgInvalidBody)
	}

	e, err := s.entries.Update(c.UserContext(), c.Params("id"), req.Title, req.Content)
	if err != nil {
		switch {
		case errors.Is(err, common.ErrValidation):
			return writeError(c, http.StatusBadRequest, msgMissingEntryFields)
		case errors.Is(err, common.ErrNotFound):
			return writeError(c, http.StatusNotFound, msgEntryNotFound)
		}
		return err
	}

	return c.JSON(e)
}

func (s *Server) deleteEntry(c *fiber.Ctx) error {
	id := c.Params("id")
	if err := s.entries.Delete(c.UserContext(), id); err != nil {
		if errors.Is(err, common.ErrNotFound) {
			return writeError(c, http.StatusNotFound, msgEntryNotFound)
		}
		return err
	}

	s.logger.Info(c.UserContext(), "entry deleted", "id", id)
	return c.JSON(messageResponse{Message: "Entry deleted successfully"})
}

func (s *Server) register(c *fiber.Ctx) error {
	var req credentialsRequest
	if err := c.BodyParser(&req); err != nil {
		return writeError(c, http.StatusBadRequest, msgInvalidBody)
	}

	if _, err := s.users.Register(c.UserContext(), req.Username, req.Password); err != nil {
		switch {
		case errors.Is(err, common.ErrValidation):
			return writeError(c, http.StatusBadRequest, msgMissingCredentials)
		case errors.Is(err, common.ErrAlreadyExists):
			return writeError(c, http.StatusBadRequest, msgUsernameTaken)
		}
		return err
	}

	return c.Status(http.StatusCreated).JSON(messageResponse{Message: "User registered successfully"})
}

func (s *Server) login(c *fiber.Ctx) error {
	var req credentialsRequest
	if err := c.BodyParser(&req); err != nil {
		return writeError(c, http.StatusBadRequest, msgInvalidBody)
	}

	token, err := s.users.Login(c.UserContext(), req.Username, req.Password)
	if err != nil {
		switch {
		case errors.Is(err, common.ErrValidation):
			return writeError(c, http.StatusBadRequest, msgMissingCredentials)
		case errors.Is(err, common.ErrUnauthorized):
			return writeError(c, http.StatusUnauthorized, msgInvalidCredentials)
		}
		return err
	}

	return c.JSON(tokenResponse{Token: token})
}

func (s *Server) protected(c *fiber.Ctx) error {
	username, _ := c.Locals(localUsername).(string)
	return c.JSON(messageResponse{Message: fmt.Sprintf("Hello, %s", username)})
}
