package auth

import (
	"context"
	"fmt"

	"fitlife-service/internal/domain/auth"
	xerrors "fitlife-service/internal/pkg/errors"
	"fitlife-service/internal/pkg/jwt"

	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

type UserStore interface {
	CreateUser(ctx context.Context, u *auth.AppUser) error
	FindByEmail(ctx context.Context, email string) (*auth.AppUser, error)
	FindByID(ctx context.Context, id int64) (*auth.AppUser, error)
}

// SigninLimiter throttles repeated sign-in attempts (redis backed in
// production).
type SigninLimiter interface {
	CheckSigninAttempt(ctx context.Context, ip, email string) (bool, int64, error)
	ResetSigninAttempts(ctx context.Context, ip, email string) error
}

type AuthService struct {
	userRepo    UserStore
	generator   *jwt.Generator
	verifier    *jwt.Verifier
	rateLimiter SigninLimiter
	logger      *zap.Logger
}

func NewAuthService(
	userRepo UserStore,
	generator *jwt.Generator,
	verifier *jwt.Verifier,
	rateLimiter SigninLimiter,
	logger *zap.Logger,
) *AuthService {
	return &AuthService{
		userRepo:    userRepo,
		generator:   generator,
		verifier:    verifier,
		rateLimiter: rateLimiter,
		logger:      logger,
	}
}

// Signup registers a back-office user and returns a signed token.
func (s *AuthService) Signup(ctx context.Context, req *auth.SignupRequest) (*auth.AuthResponse, error) {
	role := req.Role
	if role == "" {
		role = "staff"
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	user := &auth.AppUser{
		Name:         req.Name,
		Email:        req.Email,
		PasswordHash: string(hash),
		Role:         role,
	}

	if err := s.userRepo.CreateUser(ctx, user); err != nil {
		if xerrors.Is(err, xerrors.ErrDuplicateEntry) {
			return nil, fmt.Errorf("user already exists: %w", xerrors.ErrDuplicateEntry)
		}
		return nil, err
	}

	token, _, err := s.generator.Generate(user.ID, user.Email, user.Role)
	if err != nil {
		return nil, fmt.Errorf("failed to generate token: %w", err)
	}

	s.logger.Info("user signed up",
		zap.Int64("user_id", user.ID),
		zap.String("role", user.Role),
	)

	return &auth.AuthResponse{Token: token, User: user}, nil
}

// Signin authenticates with email/password. Failures are deliberately
// indistinct: unknown email and wrong password both return
// ErrUnauthorized.
func (s *AuthService) Signin(ctx context.Context, req *auth.SigninRequest, ip string) (*auth.AuthResponse, error) {
	if s.rateLimiter != nil {
		allowed, _, err := s.rateLimiter.CheckSigninAttempt(ctx, ip, req.Email)
		if err != nil {
			return nil, fmt.Errorf("rate limiter error: %w", err)
		}
		if !allowed {
			return nil, fmt.Errorf("too many sign-in attempts: %w", xerrors.ErrRateLimited)
		}
	}

	user, err := s.userRepo.FindByEmail(ctx, req.Email)
	if err != nil {
		return nil, fmt.Errorf("invalid credentials: %w", xerrors.ErrUnauthorized)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)); err != nil {
		return nil, fmt.Errorf("invalid credentials: %w", xerrors.ErrUnauthorized)
	}

	if s.rateLimiter != nil {
		s.rateLimiter.ResetSigninAttempts(ctx, ip, req.Email)
	}

	token, _, err := s.generator.Generate(user.ID, user.Email, user.Role)
	if err != nil {
		return nil, fmt.Errorf("failed to generate token: %w", err)
	}

	s.logger.Info("user signed in", zap.Int64("user_id", user.ID))

	return &auth.AuthResponse{Token: token, User: user}, nil
}

// ValidateToken verifies a bearer token and returns its claims.
func (s *AuthService) ValidateToken(tokenString string) (*jwt.Claims, error) {
	return s.verifier.Verify(tokenString)
}

// GetUser retrieves the profile behind a token.
func (s *AuthService) GetUser(ctx context.Context, id int64) (*auth.AppUser, error) {
	return s.userRepo.FindByID(ctx, id)
}
