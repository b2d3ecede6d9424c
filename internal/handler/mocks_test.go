package handler_test

import (
	"context"

	"via-proposito/internal/dto"
)

// --- Manual Mocks ---

type MockQuestionService struct {
	QuestionsFunc func(ctx context.Context) (*dto.QuestionsResponse, error)
}

func (m *MockQuestionService) Questions(ctx context.Context) (*dto.QuestionsResponse, error) {
	if m.QuestionsFunc != nil {
		return m.QuestionsFunc(ctx)
	}
	panic("MockQuestionService.QuestionsFunc not implemented")
}

type MockTestResultService struct {
	SubmitFunc     func(ctx context.Context, req *dto.SubmitTestRequest) (*dto.SubmitTestResponse, error)
	CheckEmailFunc func(ctx context.Context, email string) (bool, error)
}

func (m *MockTestResultService) Submit(ctx context.Context, req *dto.SubmitTestRequest) (*dto.SubmitTestResponse, error) {
	if m.SubmitFunc != nil {
		return m.SubmitFunc(ctx, req)
	}
	panic("MockTestResultService.SubmitFunc not implemented")
}

func (m *MockTestResultService) CheckEmail(ctx context.Context, email string) (bool, error) {
	if m.CheckEmailFunc != nil {
		return m.CheckEmailFunc(ctx, email)
	}
	panic("MockTestResultService.CheckEmailFunc not implemented")
}

type MockReportService struct {
	SendResultEmailFunc func(ctx context.Context, email, resultID string) error
}

func (m *MockReportService) SendResultEmail(ctx context.Context, email, resultID string) error {
	if m.SendResultEmailFunc != nil {
		return m.SendResultEmailFunc(ctx, email, resultID)
	}
	panic("MockReportService.SendResultEmailFunc not implemented")
}

type MockAdminAuthService struct {
	LoginFunc         func(ctx context.Context, password string) (*dto.LoginResponse, error)
	ValidateTokenFunc func(ctx context.Context, tokenString string) (*dto.AdminClaims, error)
}

func (m *MockAdminAuthService) Login(ctx context.Context, password string) (*dto.LoginResponse, error) {
	if m.LoginFunc != nil {
		return m.LoginFunc(ctx, password)
	}
	panic("MockAdminAuthService.LoginFunc not implemented")
}

func (m *MockAdminAuthService) ValidateToken(ctx context.Context, tokenString string) (*dto.AdminClaims, error) {
	if m.ValidateTokenFunc != nil {
		return m.ValidateTokenFunc(ctx, tokenString)
	}
	panic("MockAdminAuthService.ValidateTokenFunc not implemented")
}

type MockStatsService struct {
	StatsFunc       func(ctx context.Context) (*dto.StatsResponse, error)
	BasicStatsFunc  func(ctx context.Context) (*dto.BasicStatsResponse, error)
	TestsByDayFunc  func(ctx context.Context) (*dto.TestsByDayResponse, error)
	AllTestsFunc    func(ctx context.Context, page, limit int) (*dto.AllTestsResponse, error)
	UserSummaryFunc func(ctx context.Context, email string) (*dto.UserSummaryResponse, error)
	TestResultFunc  func(ctx context.Context, id string) (*dto.TestResultDetailResponse, error)
}

func (m *MockStatsService) Stats(ctx context.Context) (*dto.StatsResponse, error) {
	if m.StatsFunc != nil {
		return m.StatsFunc(ctx)
	}
	panic("MockStatsService.StatsFunc not implemented")
}

func (m *MockStatsService) BasicStats(ctx context.Context) (*dto.BasicStatsResponse, error) {
	if m.BasicStatsFunc != nil {
		return m.BasicStatsFunc(ctx)
	}
	panic("MockStatsService.BasicStatsFunc not implemented")
}

func (m *MockStatsService) TestsByDay(ctx context.Context) (*dto.TestsByDayResponse, error) {
	if m.TestsByDayFunc != nil {
		return m.TestsByDayFunc(ctx)
	}
	panic("MockStatsService.TestsByDayFunc not implemented")
}

func (m *MockStatsService) AllTests(ctx context.Context, page, limit int) (*dto.AllTestsResponse, error) {
	if m.AllTestsFunc != nil {
		return m.AllTestsFunc(ctx, page, limit)
	}
	panic("MockStatsService.AllTestsFunc not implemented")
}

func (m *MockStatsService) UserSummary(ctx context.Context, email string) (*dto.UserSummaryResponse, error) {
	if m.UserSummaryFunc != nil {
		return m.UserSummaryFunc(ctx, email)
	}
	panic("MockStatsService.UserSummaryFunc not implemented")
}

func (m *MockStatsService) TestResult(ctx context.Context, id string) (*dto.TestResultDetailResponse, error) {
	if m.TestResultFunc != nil {
		return m.TestResultFunc(ctx, id)
	}
	panic("MockStatsService.TestResultFunc not implemented")
}

type MockHealthService struct {
	CheckFunc func(ctx context.Context) (*dto.HealthResponse, error)
}

func (m *MockHealthService) Check(ctx context.Context) (*dto.HealthResponse, error) {
	if m.CheckFunc != nil {
		return m.CheckFunc(ctx)
	}
	panic("MockHealthService.CheckFunc not implemented")
}
