package service

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"gamerental/internal/config"
	"gamerental/internal/microservices/http-api/repository"
	"gamerental/internal/middleware/auth"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// Claims is the identity carried by a valid bearer token.
type Claims struct {
	UserID    uint
	TokenID   string
	ExpiresAt time.Time
}

type AuthService interface {
	Login(ctx context.Context, userID uint, password string) (string, error)
	IssueToken(userID uint) (string, error)
	ValidateToken(ctx context.Context, tokenString string) (*Claims, error)
	Logout(ctx context.Context, claims *Claims) error
}

type authService struct {
	userRepo  repository.UserRepository
	denylist  repository.TokenDenylist
	jwtSecret []byte
	tokenTTL  time.Duration
	now       func() time.Time
}

func NewAuthService(
	userRepo repository.UserRepository,
	denylist repository.TokenDenylist,
	cfg *config.Config,
) AuthService {
	return &authService{
		userRepo:  userRepo,
		denylist:  denylist,
		jwtSecret: []byte(cfg.JWTSecret),
		tokenTTL:  cfg.JWTExpiry,
		now:       time.Now,
	}
}

// Login checks the password of userID and returns a fresh token.
func (s *authService) Login(ctx context.Context, userID uint, password string) (string, error) {
	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		return "", err
	}
	if user == nil {
		// unknown user, still pay for a bcrypt compare
		auth.BurnPasswordCheck(password)
		return "", ErrInvalidCredentials
	}

	if err := auth.VerifyPassword(user.Password, password); err != nil {
		return "", ErrInvalidCredentials
	}

	return s.IssueToken(user.ID)
}

func (s *authService) IssueToken(userID uint) (string, error) {
	now := s.now()
	claims := jwt.RegisteredClaims{
		Subject:   strconv.FormatUint(uint64(userID), 10),
		ID:        uuid.NewString(),
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(s.tokenTTL)),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(s.jwtSecret)
	if err != nil {
		return "", fmt.Errorf("sign token: %w", err)
	}
	return signed, nil
}

// ValidateToken returns ErrInvalidToken for anything that is not a live token
// signed by us. Denylist lookups that fail are returned as is.
func (s *authService) ValidateToken(ctx context.Context, tokenString string) (*Claims, error) {
	var registered jwt.RegisteredClaims
	token, err := jwt.ParseWithClaims(tokenString, &registered, func(token *jwt.Token) (interface{}, error) {
		return s.jwtSecret, nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(s.now),
	)
	if err != nil || !token.Valid {
		return nil, ErrInvalidToken
	}

	userID, err := strconv.ParseUint(registered.Subject, 10, 64)
	if err != nil || userID == 0 || registered.ID == "" {
		return nil, ErrInvalidToken
	}

	denied, err := s.denylist.IsDenied(ctx, registered.ID)
	if err != nil {
		return nil, err
	}
	if denied {
		return nil, ErrInvalidToken
	}

	return &Claims{
		UserID:    uint(userID),
		TokenID:   registered.ID,
		ExpiresAt: registered.ExpiresAt.Time,
	}, nil
}

// Logout denies the token for the rest of its lifetime.
func (s *authService) Logout(ctx context.Context, claims *Claims) error {
	if claims == nil {
		return errors.New("logout: no claims")
	}
	return s.denylist.Deny(ctx, claims.TokenID, claims.ExpiresAt.Sub(s.now()))
}
