package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"via-proposito/internal/domain"

	"github.com/jmoiron/sqlx"
)

type sqlxStatsRepository struct {
	db *sqlx.DB
}

// NewSQLXStatsRepository returns the dashboard aggregate queries over Postgres.
func NewSQLXStatsRepository(db *sqlx.DB) domain.StatsRepository {
	return &sqlxStatsRepository{db: db}
}

func (r *sqlxStatsRepository) count(ctx context.Context, what, query string, args ...interface{}) (int, error) {
	var n int
	if err := GetExecutor(ctx, r.db).GetContext(ctx, &n, query, args...); err != nil {
		return 0, fmt.Errorf("failed to count %s: %w", what, err)
	}
	return n, nil
}

func (r *sqlxStatsRepository) CountTests(ctx context.Context) (int, error) {
	return r.count(ctx, "tests", `SELECT COUNT(*) FROM test_results`)
}

func (r *sqlxStatsRepository) CountDistinctEmails(ctx context.Context) (int, error) {
	return r.count(ctx, "users", `SELECT COUNT(DISTINCT email) FROM test_results`)
}

func (r *sqlxStatsRepository) CategoryDistribution(ctx context.Context) ([]domain.CategoryCount, error) {
	var rows []domain.CategoryCount
	err := GetExecutor(ctx, r.db).SelectContext(ctx, &rows,
		`SELECT final_result AS category, COUNT(*) AS count
		FROM test_results GROUP BY final_result ORDER BY count DESC, final_result`)
	if err != nil {
		return nil, fmt.Errorf("failed to get category distribution: %w", err)
	}
	return rows, nil
}

// TestsByDay returns per-day counts for tests taken at or after since, oldest day first.
func (r *sqlxStatsRepository) TestsByDay(ctx context.Context, since time.Time) ([]domain.DailyCount, error) {
	var rows []domain.DailyCount
	err := GetExecutor(ctx, r.db).SelectContext(ctx, &rows,
		`SELECT DATE(test_date) AS date, COUNT(*) AS count
		FROM test_results WHERE test_date >= $1
		GROUP BY DATE(test_date) ORDER BY date ASC`, since)
	if err != nil {
		return nil, fmt.Errorf("failed to get tests by day: %w", err)
	}
	return rows, nil
}

// codeDistribution groups a nullable demographic column. column is always a
// package constant, never user input.
func (r *sqlxStatsRepository) codeDistribution(ctx context.Context, column string, limit int) ([]domain.CodeCount, error) {
	query := `SELECT ` + column + ` AS code, COUNT(*) AS count
		FROM test_results WHERE ` + column + ` IS NOT NULL AND ` + column + ` <> ''
		GROUP BY ` + column + ` ORDER BY count DESC, ` + column
	args := []interface{}{}
	if limit > 0 {
		query += ` LIMIT $1`
		args = append(args, limit)
	}

	var rows []domain.CodeCount
	if err := GetExecutor(ctx, r.db).SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("failed to get %s distribution: %w", column, err)
	}
	return rows, nil
}

func (r *sqlxStatsRepository) GenderDistribution(ctx context.Context) ([]domain.CodeCount, error) {
	return r.codeDistribution(ctx, "gender", 0)
}

func (r *sqlxStatsRepository) OccupationDistribution(ctx context.Context, limit int) ([]domain.CodeCount, error) {
	return r.codeDistribution(ctx, "occupation", limit)
}

func (r *sqlxStatsRepository) MaritalStatusDistribution(ctx context.Context) ([]domain.CodeCount, error) {
	return r.codeDistribution(ctx, "marital_status", 0)
}

func (r *sqlxStatsRepository) BirthYearDistribution(ctx context.Context) ([]domain.BirthYearCount, error) {
	var rows []domain.BirthYearCount
	err := GetExecutor(ctx, r.db).SelectContext(ctx, &rows,
		`SELECT birth_year, COUNT(*) AS count
		FROM test_results WHERE birth_year IS NOT NULL
		GROUP BY birth_year ORDER BY birth_year`)
	if err != nil {
		return nil, fmt.Errorf("failed to get birth year distribution: %w", err)
	}
	return rows, nil
}

// UserStats returns a not-found error when email has no results.
func (r *sqlxStatsRepository) UserStats(ctx context.Context, email string) (*domain.UserStats, error) {
	var row struct {
		TotalTests int          `db:"total_tests"`
		FirstTest  sql.NullTime `db:"first_test"`
		LastTest   sql.NullTime `db:"last_test"`
	}
	err := GetExecutor(ctx, r.db).GetContext(ctx, &row,
		`SELECT COUNT(*) AS total_tests, MIN(test_date) AS first_test, MAX(test_date) AS last_test
		FROM test_results WHERE email = $1`, domain.NormalizeEmail(email))
	if err != nil {
		return nil, fmt.Errorf("failed to get user stats: %w", err)
	}
	if row.TotalTests == 0 {
		return nil, domain.NewNotFoundError("no tests found for this email")
	}
	return &domain.UserStats{
		TotalTests: row.TotalTests,
		FirstTest:  row.FirstTest.Time,
		LastTest:   row.LastTest.Time,
	}, nil
}

func (r *sqlxStatsRepository) Ping(ctx context.Context) error {
	if err := r.db.PingContext(ctx); err != nil {
		return fmt.Errorf("database ping failed: %w", err)
	}
	return nil
}
