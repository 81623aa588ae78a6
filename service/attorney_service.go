package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"leads-backend/auth"
	"leads-backend/metrics"
	"leads-backend/models"
	"leads-backend/repository"
	"leads-backend/validation"

	"go.uber.org/zap"
)

// AttorneyService handles attorney registration, login and credential resolution
type AttorneyService struct {
	attorneys AttorneyStore
	tokens    TokenIssuer
	logger    *zap.Logger
}

// NewAttorneyService creates a new attorney service
func NewAttorneyService(attorneys AttorneyStore, tokens TokenIssuer, logger *zap.Logger) *AttorneyService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &AttorneyService{
		attorneys: attorneys,
		tokens:    tokens,
		logger:    logger,
	}
}

// RegisterAttorneyRequest represents a request to create an attorney account
type RegisterAttorneyRequest struct {
	Username string
	FullName string
	Email    string
	Password string
	ID       *int64
}

// Register creates an attorney on behalf of an already authenticated
// attorney. An existing username is returned unchanged.
func (s *AttorneyService) Register(ctx context.Context, actor *models.Attorney, req RegisterAttorneyRequest) (*models.Attorney, error) {
	if actor == nil {
		return nil, ErrAuthFailure
	}
	if !validation.IsEmail(req.Email) {
		return nil, invalidInput("invalid email address")
	}
	if strings.TrimSpace(req.Username) == "" {
		return nil, invalidInput("username is required")
	}
	if strings.TrimSpace(req.FullName) == "" {
		return nil, invalidInput("full_name is required")
	}
	if req.Password == "" {
		return nil, invalidInput("password is required")
	}

	hashed, err := auth.HashPassword(req.Password)
	if err != nil {
		return nil, err
	}

	attorney, created, err := s.attorneys.Create(ctx, &models.Attorney{
		Username:       req.Username,
		FullName:       req.FullName,
		Email:          req.Email,
		HashedPassword: hashed,
		ID:             req.ID,
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info("attorney registered",
		zap.String("username", attorney.Username),
		zap.Bool("created", created),
		zap.String("registered_by", actor.Username),
	)
	return attorney, nil
}

// TokenResult is the credential handed back on successful login
type TokenResult struct {
	AccessToken string    `json:"access_token"`
	TokenType   string    `json:"token_type"`
	ExpiresAt   time.Time `json:"expires_at"`
}

// Authenticate checks a username and password and issues a signed credential.
// Unknown users and wrong passwords fail the same way.
func (s *AttorneyService) Authenticate(ctx context.Context, username, password string) (*TokenResult, error) {
	attorney, err := s.attorneys.GetByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			metrics.AuthFailuresTotal.WithLabelValues("unknown_user").Inc()
			return nil, fmt.Errorf("%w: incorrect username or password", ErrAuthFailure)
		}
		return nil, err
	}

	if err := auth.CheckPassword(attorney.HashedPassword, password); err != nil {
		if errors.Is(err, auth.ErrPasswordMismatch) {
			metrics.AuthFailuresTotal.WithLabelValues("bad_password").Inc()
			return nil, fmt.Errorf("%w: incorrect username or password", ErrAuthFailure)
		}
		return nil, err
	}

	token, expiresAt, err := s.tokens.Issue(attorney.Username)
	if err != nil {
		return nil, fmt.Errorf("failed to issue token: %w", err)
	}

	return &TokenResult{
		AccessToken: token,
		TokenType:   "bearer",
		ExpiresAt:   expiresAt,
	}, nil
}

// ResolveIdentity maps a presented credential to the attorney it was issued to
func (s *AttorneyService) ResolveIdentity(ctx context.Context, credential string) (*models.Attorney, error) {
	username, err := s.tokens.Validate(credential)
	if err != nil {
		reason := "invalid_token"
		if errors.Is(err, auth.ErrTokenExpired) {
			reason = "expired_token"
		}
		metrics.AuthFailuresTotal.WithLabelValues(reason).Inc()
		return nil, fmt.Errorf("%w: %v", ErrAuthFailure, err)
	}

	attorney, err := s.attorneys.GetByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			metrics.AuthFailuresTotal.WithLabelValues("unknown_user").Inc()
			return nil, fmt.Errorf("%w: invalid authentication credentials", ErrAuthFailure)
		}
		return nil, err
	}
	return attorney, nil
}

// SeedAccount describes the bootstrap attorney created on first start
type SeedAccount struct {
	Username string
	FullName string
	Email    string
	Password string
}

// DefaultAdmin returns the bootstrap admin account with the given password and email
func DefaultAdmin(password, email string) SeedAccount {
	return SeedAccount{
		Username: DefaultReviewer,
		FullName: "Administrator",
		Email:    email,
		Password: password,
	}
}

// Seed creates the bootstrap attorney unless the username already exists.
// An existing account keeps its password.
func (s *AttorneyService) Seed(ctx context.Context, account SeedAccount) (*models.Attorney, bool, error) {
	if !validation.IsEmail(account.Email) {
		return nil, false, invalidInput("invalid seed email address")
	}
	if account.Password == "" {
		return nil, false, invalidInput("seed password is required")
	}

	existing, err := s.attorneys.GetByUsername(ctx, account.Username)
	if err == nil {
		return existing, false, nil
	}
	if !errors.Is(err, repository.ErrNotFound) {
		return nil, false, err
	}

	hashed, err := auth.HashPassword(account.Password)
	if err != nil {
		return nil, false, err
	}

	attorney, created, err := s.attorneys.Create(ctx, &models.Attorney{
		Username:       account.Username,
		FullName:       account.FullName,
		Email:          account.Email,
		HashedPassword: hashed,
	})
	if err != nil {
		return nil, false, err
	}
	if created {
		s.logger.Info("seeded attorney account", zap.String("username", attorney.Username))
	}
	return attorney, created, nil
}
