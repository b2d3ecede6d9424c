package service

import (
	"context"
	"crypto/subtle"
	"errors"
	"fmt"
	"time"

	"via-proposito/internal/config"
	"via-proposito/internal/domain"
	"via-proposito/internal/dto"
	"via-proposito/internal/logger"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

const tokenIssuer = "via-proposito"

var ErrInvalidAdminToken = errors.New("invalid admin token")

// AdminAuthService issues and checks dashboard session tokens.
type AdminAuthService interface {
	Login(ctx context.Context, password string) (*dto.LoginResponse, error)
	ValidateToken(ctx context.Context, tokenString string) (*dto.AdminClaims, error)
}

type adminAuthService struct {
	password []byte
	secret   []byte
	ttl      time.Duration
	now      func() time.Time
}

func NewAdminAuthService(cfg config.AdminConfig) AdminAuthService {
	return &adminAuthService{
		password: []byte(cfg.Password),
		secret:   []byte(cfg.JWTSecret),
		ttl:      cfg.TokenTTL,
		now:      time.Now,
	}
}

// Login compares password in constant time. An empty configured password
// disables login.
func (s *adminAuthService) Login(ctx context.Context, password string) (*dto.LoginResponse, error) {
	if len(s.password) == 0 {
		logger.Get().Warn("Admin login attempted but no admin password is configured")
		return nil, domain.NewError(domain.CodeInvalidCredentials, "Contraseña incorrecta", nil)
	}
	if subtle.ConstantTimeCompare([]byte(password), s.password) != 1 {
		logger.Get().Info("Admin login failed")
		return nil, domain.NewError(domain.CodeInvalidCredentials, "Contraseña incorrecta", nil)
	}

	now := s.now()
	expiresAt := now.Add(s.ttl)
	claims := dto.AdminClaims{
		Role: dto.AdminRole,
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        uuid.NewString(),
			Issuer:    tokenIssuer,
			Subject:   dto.AdminRole,
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(expiresAt),
		},
	}
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.secret)
	if err != nil {
		return nil, domain.NewInternalError("failed to sign admin token", err)
	}

	logger.Get().Info("Admin logged in", zap.String("jti", claims.ID))
	return &dto.LoginResponse{Success: true, Token: signed, ExpiresAt: expiresAt.UTC()}, nil
}

// ValidateToken checks signature, algorithm, issuer and time claims. Role is
// left to the caller.
func (s *adminAuthService) ValidateToken(ctx context.Context, tokenString string) (*dto.AdminClaims, error) {
	claims := &dto.AdminClaims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		return s.secret, nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithIssuer(tokenIssuer),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(s.now),
	)
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			logger.Get().Debug("Admin token expired", zap.Error(err))
		} else {
			logger.Get().Warn("Admin token validation failed", zap.Error(err))
		}
		return nil, fmt.Errorf("%w: %v", ErrInvalidAdminToken, err)
	}
	if !token.Valid {
		return nil, ErrInvalidAdminToken
	}
	return claims, nil
}
