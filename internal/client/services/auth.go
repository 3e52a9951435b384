// Package services contains application services for the Classroom Manager
// client. This file defines the authentication service: register, login,
// logout and the whoami probe.
package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/dmitrijs2005/classroom/internal/client/session"
	"github.com/dmitrijs2005/classroom/internal/common"
)

// AuthAPI is the part of the remote client used for authentication.
type AuthAPI interface {
	Register(ctx context.Context, username, password string) error
	Login(ctx context.Context, username, password string) (string, error)
	Whoami(ctx context.Context) (string, error)
}

// AuthService defines authentication operations for the CLI.
//
// Contract:
//   - Register: create a new user on the server.
//   - Login: obtain a token and store it in the session.
//   - Logout: forget the stored token.
//   - Whoami: ask the server who the current token belongs to.
type AuthService interface {
	Register(ctx context.Context, username string, password []byte) error
	Login(ctx context.Context, username string, password []byte) error
	Logout(ctx context.Context) error
	Whoami(ctx context.Context) (string, error)
}

type authService struct {
	client  AuthAPI
	session *session.Session
}

func NewAuthService(client AuthAPI, s *session.Session) AuthService {
	return &authService{client: client, session: s}
}

func validateCredentials(username string, password []byte) (string, error) {
	username = strings.TrimSpace(username)
	if username == "" || len(password) == 0 {
		return "", fmt.Errorf("username and password are required: %w", common.ErrValidation)
	}
	return username, nil
}

func (a *authService) Register(ctx context.Context, username string, password []byte) error {
	username, err := validateCredentials(username, password)
	if err != nil {
		return err
	}
	if err := a.client.Register(ctx, username, string(password)); err != nil {
		return fmt.Errorf("register error: %w", err)
	}
	return nil
}

// Login authenticates against the server and persists the issued token.
func (a *authService) Login(ctx context.Context, username string, password []byte) error {
	username, err := validateCredentials(username, password)
	if err != nil {
		return err
	}

	token, err := a.client.Login(ctx, username, string(password))
	if err != nil {
		return fmt.Errorf("login error: %w", err)
	}

	if err := a.session.Begin(ctx, username, token); err != nil {
		return fmt.Errorf("session saving error: %w", err)
	}
	return nil
}

func (a *authService) Logout(ctx context.Context) error {
	return a.session.End(ctx)
}

func (a *authService) Whoami(ctx context.Context) (string, error) {
	return a.client.Whoami(ctx)
}
