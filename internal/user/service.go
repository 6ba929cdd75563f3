package user

import (
	"context"
	"errors"

	"metagym/internal/auth"
	"metagym/internal/logger"
)

var ErrInvalidCredentials = errors.New("invalid credentials")

// ResetMailer delivers password-reset links. Failures are logged, never
// surfaced to the caller, so the response does not reveal whether an email
// address is registered.
type ResetMailer interface {
	SendPasswordReset(ctx context.Context, to, resetURL string) error
}

type Service interface {
	CreateAdmin(ctx context.Context, params CreateAdminParams) (*User, error)
	Login(ctx context.Context, req LoginRequest) (*User, string, string, error)
	GetByID(ctx context.Context, userID int) (*User, error)
	RefreshToken(ctx context.Context, refreshToken string) (string, *User, error)
	RequestPasswordReset(ctx context.Context, email, resetBaseURL string) error
	ResetPassword(ctx context.Context, token, newPassword string) error
}

type service struct {
	repo      Repository
	tokens    ResetTokenStore
	mailer    ResetMailer
	jwtSecret string
}

func NewService(repo Repository, tokens ResetTokenStore, mailer ResetMailer, jwtSecret string) Service {
	return &service{
		repo:      repo,
		tokens:    tokens,
		mailer:    mailer,
		jwtSecret: jwtSecret,
	}
}

// CreateAdmin provisions the administrator identity for a freshly registered
// gym: auto-confirmed, admin role, profile row linking tenant and gym. The
// plaintext password is hashed here and not retained.
func (s *service) CreateAdmin(ctx context.Context, params CreateAdminParams) (*User, error) {
	exists, err := s.repo.EmailExists(ctx, params.Email)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, ErrEmailExists
	}

	passwordHash, err := auth.HashPassword(params.Password)
	if err != nil {
		return nil, err
	}

	user, err := s.repo.CreateAdmin(ctx, params.GymName, params.Email, passwordHash, params.TenantID, params.GymID)
	if err != nil {
		return nil, err
	}

	return user, nil
}

func (s *service) Login(ctx context.Context, req LoginRequest) (*User, string, string, error) {
	user, err := s.repo.FindByEmail(ctx, req.Email)
	if err != nil {
		return nil, "", "", ErrInvalidCredentials
	}

	if !auth.CheckPassword(user.PasswordHash, req.Password) {
		return nil, "", "", ErrInvalidCredentials
	}

	accessToken, refreshToken, err := auth.GenerateTokens(
		user.ID,
		user.Email,
		user.Role,
		user.GymID,
		s.jwtSecret,
		s.jwtSecret,
	)
	if err != nil {
		return nil, "", "", err
	}

	return user, accessToken, refreshToken, nil
}

func (s *service) GetByID(ctx context.Context, userID int) (*User, error) {
	return s.repo.FindByID(ctx, userID)
}

func (s *service) RefreshToken(ctx context.Context, refreshToken string) (string, *User, error) {
	_, claims, err := auth.RefreshAccessToken(refreshToken, s.jwtSecret, s.jwtSecret)
	if err != nil {
		return "", nil, err
	}

	user, err := s.repo.FindByID(ctx, claims.UserID)
	if err != nil {
		return "", nil, ErrUserNotFound
	}

	newAccessToken, err := auth.GenerateAccessToken(user.ID, user.Email, user.Role, user.GymID, s.jwtSecret)
	if err != nil {
		return "", nil, err
	}

	return newAccessToken, user, nil
}

// RequestPasswordReset issues a single-use token and mails a reset link.
// Unknown emails return nil so the endpoint cannot be used to probe accounts.
func (s *service) RequestPasswordReset(ctx context.Context, email, resetBaseURL string) error {
	user, err := s.repo.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, ErrUserNotFound) {
			return nil
		}
		return err
	}

	token, err := NewResetToken()
	if err != nil {
		return err
	}

	if err := s.tokens.Save(ctx, token, user.ID); err != nil {
		return err
	}

	resetURL := resetBaseURL + "?token=" + token
	if err := s.mailer.SendPasswordReset(ctx, user.Email, resetURL); err != nil {
		logger.Error("Failed to send password reset email", "user_id", user.ID, "error", err)
	}

	return nil
}

func (s *service) ResetPassword(ctx context.Context, token, newPassword string) error {
	userID, err := s.tokens.Consume(ctx, token)
	if err != nil {
		return err
	}

	passwordHash, err := auth.HashPassword(newPassword)
	if err != nil {
		return err
	}

	return s.repo.UpdatePassword(ctx, userID, passwordHash)
}
