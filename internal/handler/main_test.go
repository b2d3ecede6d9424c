package handler_test

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"

	"via-proposito/internal/config"
	"via-proposito/internal/dto"
	"via-proposito/internal/handler"
	"via-proposito/internal/logger"
	"via-proposito/internal/middleware"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/require"
)

func TestMain(m *testing.M) {
	if err := logger.Initialize(config.LoggerConfig{Env: "test", Level: "error"}); err != nil {
		panic(err)
	}
	os.Exit(m.Run())
}

const adminToken = "admin-token"

type testMocks struct {
	questions *MockQuestionService
	results   *MockTestResultService
	reports   *MockReportService
	auth      *MockAdminAuthService
	stats     *MockStatsService
	health    *MockHealthService
}

// newTestApp mounts the API on a fresh app. The auth mock accepts adminToken.
func newTestApp(loginRateLimit int) (*fiber.App, *testMocks) {
	m := &testMocks{
		questions: &MockQuestionService{},
		results:   &MockTestResultService{},
		reports:   &MockReportService{},
		auth:      &MockAdminAuthService{},
		stats:     &MockStatsService{},
		health:    &MockHealthService{},
	}
	m.auth.ValidateTokenFunc = func(_ context.Context, token string) (*dto.AdminClaims, error) {
		if token != adminToken {
			return nil, errors.New("invalid token")
		}
		return &dto.AdminClaims{Role: dto.AdminRole}, nil
	}

	app := fiber.New(fiber.Config{ErrorHandler: middleware.ErrorHandler()})
	handler.Routes{
		Quiz:           handler.NewQuizHandler(m.questions, m.results, m.reports),
		Auth:           handler.NewAuthHandler(m.auth),
		Admin:          handler.NewAdminHandler(m.stats),
		Health:         handler.NewHealthHandler(m.health),
		AdminAuth:      m.auth,
		LoginRateLimit: loginRateLimit,
	}.Register(app.Group("/api"))
	return app, m
}

func doRequest(t *testing.T, app *fiber.App, method, target string, body interface{}, token string) (*http.Response, []byte) {
	t.Helper()
	var reader io.Reader
	if body != nil {
		switch b := body.(type) {
		case string:
			reader = bytes.NewBufferString(b)
		default:
			data, err := json.Marshal(b)
			require.NoError(t, err)
			reader = bytes.NewBuffer(data)
		}
	}
	req := httptest.NewRequest(method, target, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	data, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return resp, data
}
