package service

import (
	"context"
	"time"

	"via-proposito/internal/domain"

	"github.com/stretchr/testify/mock"
)

// --- MockTestResultRepository ---
type MockTestResultRepository struct {
	mock.Mock
}

func (m *MockTestResultRepository) Create(ctx context.Context, result *domain.TestResult) error {
	args := m.Called(ctx, result)
	return args.Error(0)
}

func (m *MockTestResultRepository) GetByID(ctx context.Context, id string) (*domain.TestResult, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.TestResult), args.Error(1)
}

func (m *MockTestResultRepository) GetByIDAndEmail(ctx context.Context, id, email string) (*domain.TestResult, error) {
	args := m.Called(ctx, id, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.TestResult), args.Error(1)
}

func (m *MockTestResultRepository) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	args := m.Called(ctx, email)
	return args.Bool(0), args.Error(1)
}

func (m *MockTestResultRepository) ListByEmail(ctx context.Context, email string) ([]domain.TestResult, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.TestResult), args.Error(1)
}

func (m *MockTestResultRepository) List(ctx context.Context, limit, offset int) ([]domain.TestResult, int, error) {
	args := m.Called(ctx, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Int(1), args.Error(2)
	}
	return args.Get(0).([]domain.TestResult), args.Int(1), args.Error(2)
}

// --- MockStatsRepository ---
type MockStatsRepository struct {
	mock.Mock
}

func (m *MockStatsRepository) CountTests(ctx context.Context) (int, error) {
	args := m.Called(ctx)
	return args.Int(0), args.Error(1)
}

func (m *MockStatsRepository) CountDistinctEmails(ctx context.Context) (int, error) {
	args := m.Called(ctx)
	return args.Int(0), args.Error(1)
}

func (m *MockStatsRepository) CategoryDistribution(ctx context.Context) ([]domain.CategoryCount, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.CategoryCount), args.Error(1)
}

func (m *MockStatsRepository) TestsByDay(ctx context.Context, since time.Time) ([]domain.DailyCount, error) {
	args := m.Called(ctx, since)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.DailyCount), args.Error(1)
}

func (m *MockStatsRepository) GenderDistribution(ctx context.Context) ([]domain.CodeCount, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.CodeCount), args.Error(1)
}

func (m *MockStatsRepository) OccupationDistribution(ctx context.Context, limit int) ([]domain.CodeCount, error) {
	args := m.Called(ctx, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.CodeCount), args.Error(1)
}

func (m *MockStatsRepository) MaritalStatusDistribution(ctx context.Context) ([]domain.CodeCount, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.CodeCount), args.Error(1)
}

func (m *MockStatsRepository) BirthYearDistribution(ctx context.Context) ([]domain.BirthYearCount, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.BirthYearCount), args.Error(1)
}

func (m *MockStatsRepository) UserStats(ctx context.Context, email string) (*domain.UserStats, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.UserStats), args.Error(1)
}

func (m *MockStatsRepository) Ping(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

// --- MockTransactionManager ---
// It runs fn directly and returns its error unless an error is configured.
type MockTransactionManager struct {
	mock.Mock
}

func (m *MockTransactionManager) WithTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	args := m.Called(ctx)
	if err := args.Error(0); err != nil {
		return err
	}
	return fn(ctx)
}

// --- MockMailer ---
type MockMailer struct {
	mock.Mock
}

func (m *MockMailer) Send(ctx context.Context, msg *domain.EmailMessage) error {
	args := m.Called(ctx, msg)
	return args.Error(0)
}

// --- MockCache ---
type MockCache struct {
	mock.Mock
}

func (m *MockCache) Get(ctx context.Context, key string) (string, error) {
	args := m.Called(ctx, key)
	return args.String(0), args.Error(1)
}

func (m *MockCache) Set(ctx context.Context, key string, value string, expiration time.Duration) error {
	args := m.Called(ctx, key, value, expiration)
	return args.Error(0)
}

func (m *MockCache) Delete(ctx context.Context, keys ...string) error {
	args := m.Called(ctx, keys)
	return args.Error(0)
}

func (m *MockCache) Ping(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

// --- MockStatsCacheService ---
type MockStatsCacheService struct {
	mock.Mock
}

func (m *MockStatsCacheService) Get(ctx context.Context, kind string, dest interface{}) (bool, error) {
	args := m.Called(ctx, kind, dest)
	return args.Bool(0), args.Error(1)
}

func (m *MockStatsCacheService) Put(ctx context.Context, kind string, value interface{}) error {
	args := m.Called(ctx, kind, value)
	return args.Error(0)
}

func (m *MockStatsCacheService) Invalidate(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}
