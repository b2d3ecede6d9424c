package middleware_test

import (
	"context"
	"errors"
	"io"
	"net/http/httptest"
	"testing"

	"via-proposito/internal/dto"
	"via-proposito/internal/middleware"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ManualMockAdminAuthService implements service.AdminAuthService for middleware tests.
type ManualMockAdminAuthService struct {
	ValidateTokenFunc func(ctx context.Context, tokenString string) (*dto.AdminClaims, error)
}

func (m *ManualMockAdminAuthService) Login(ctx context.Context, password string) (*dto.LoginResponse, error) {
	panic("not implemented in mock")
}

func (m *ManualMockAdminAuthService) ValidateToken(ctx context.Context, tokenString string) (*dto.AdminClaims, error) {
	if m.ValidateTokenFunc != nil {
		return m.ValidateTokenFunc(ctx, tokenString)
	}
	return nil, errors.New("ValidateTokenFunc not set on mock")
}

func TestAdminProtected(t *testing.T) {
	tests := []struct {
		name           string
		authHeader     string
		validate       func(ctx context.Context, tokenString string) (*dto.AdminClaims, error)
		expectedStatus int
		expectedCode   string
	}{
		{
			name:           "No Auth Header",
			expectedStatus: fiber.StatusUnauthorized,
			expectedCode:   "MISSING_AUTH_HEADER",
		},
		{
			name:           "Wrong Scheme",
			authHeader:     "Basic abc",
			expectedStatus: fiber.StatusUnauthorized,
			expectedCode:   "INVALID_AUTH_SCHEME",
		},
		{
			name:           "Empty Token",
			authHeader:     "Bearer ",
			expectedStatus: fiber.StatusUnauthorized,
			expectedCode:   "EMPTY_TOKEN",
		},
		{
			name:       "Invalid Token",
			authHeader: "Bearer expired",
			validate: func(ctx context.Context, tokenString string) (*dto.AdminClaims, error) {
				return nil, errors.New("token is expired")
			},
			expectedStatus: fiber.StatusUnauthorized,
			expectedCode:   "INVALID_TOKEN",
		},
		{
			name:       "Non Admin Role",
			authHeader: "Bearer viewer",
			validate: func(ctx context.Context, tokenString string) (*dto.AdminClaims, error) {
				return &dto.AdminClaims{Role: "viewer"}, nil
			},
			expectedStatus: fiber.StatusForbidden,
			expectedCode:   "FORBIDDEN",
		},
		{
			name:       "Valid Admin Token",
			authHeader: "Bearer good",
			validate: func(ctx context.Context, tokenString string) (*dto.AdminClaims, error) {
				assert.Equal(t, "good", tokenString)
				return &dto.AdminClaims{Role: dto.AdminRole}, nil
			},
			expectedStatus: fiber.StatusOK,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			mockSvc := &ManualMockAdminAuthService{ValidateTokenFunc: tc.validate}

			app := fiber.New()
			app.Get("/admin", middleware.AdminProtected(mockSvc), func(c *fiber.Ctx) error {
				claims, ok := c.Locals(middleware.AdminClaimsKey).(*dto.AdminClaims)
				require.True(t, ok)
				return c.SendString(claims.Role)
			})

			req := httptest.NewRequest("GET", "/admin", nil)
			if tc.authHeader != "" {
				req.Header.Set(middleware.AuthorizationHeader, tc.authHeader)
			}
			resp, err := app.Test(req)
			require.NoError(t, err)
			assert.Equal(t, tc.expectedStatus, resp.StatusCode)

			body, _ := io.ReadAll(resp.Body)
			if tc.expectedCode != "" {
				assert.Contains(t, string(body), tc.expectedCode)
			} else {
				assert.Equal(t, dto.AdminRole, string(body))
			}
		})
	}
}
