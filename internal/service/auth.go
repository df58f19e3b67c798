package service

import (
	"context"
	"fmt"
	"net/http"
	"strings"

	"github.com/stpnv0/MOTBooker/internal/domain"
	"github.com/stpnv0/MOTBooker/internal/service/ports"
	"github.com/wb-go/wbf/logger"
)

type AuthService struct {
	backend ports.AuthBackend
	logger  logger.Logger
}

func NewAuthService(backend ports.AuthBackend, logger logger.Logger) *AuthService {
	return &AuthService{backend: backend, logger: logger}
}

// Login signs staff in on the backend and returns the session cookies it
// set.
func (s *AuthService) Login(ctx context.Context, email, password string) ([]*http.Cookie, error) {
	email = strings.TrimSpace(email)
	if email == "" || password == "" {
		return nil, fmt.Errorf("%w: email and password are required", domain.ErrValidation)
	}

	cookies, err := s.backend.Login(ctx, email, password)
	if err != nil {
		s.logger.Warn("staff login failed",
			logger.String("email", email),
			logger.String("error", err.Error()),
		)
		return nil, fmt.Errorf("login: %w", err)
	}

	s.logger.Info("staff logged in", logger.String("email", email))
	return cookies, nil
}

func (s *AuthService) Logout(ctx context.Context) ([]*http.Cookie, error) {
	cookies, err := s.backend.Logout(ctx)
	if err != nil {
		return nil, fmt.Errorf("logout: %w", err)
	}
	return cookies, nil
}

// Check reports domain.ErrUnauthorized when the forwarded session is not
// valid.
func (s *AuthService) Check(ctx context.Context) error {
	if err := s.backend.CheckAuth(ctx); err != nil {
		return fmt.Errorf("check session: %w", err)
	}
	return nil
}
