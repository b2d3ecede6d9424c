package domain

import (
	"context"
	"time"
)

// CategoryCount is how many results ended in a category.
type CategoryCount struct {
	Category Category `db:"category" json:"category"`
	Count    int      `db:"count" json:"count"`
}

// DailyCount is how many tests were taken on one calendar day.
type DailyCount struct {
	Date  time.Time `db:"date" json:"date"`
	Count int       `db:"count" json:"count"`
}

// CodeCount is a raw grouping of a demographic column.
type CodeCount struct {
	Code  string `db:"code" json:"code"`
	Count int    `db:"count" json:"count"`
}

// BirthYearCount groups results by birth year.
type BirthYearCount struct {
	BirthYear int `db:"birth_year" json:"birth_year"`
	Count     int `db:"count" json:"count"`
}

// UserStats summarises every test taken with one email.
type UserStats struct {
	TotalTests int       `db:"total_tests"`
	FirstTest  time.Time `db:"first_test"`
	LastTest   time.Time `db:"last_test"`
}

// StatsRepository answers the aggregate queries of the admin dashboard.
type StatsRepository interface {
	CountTests(ctx context.Context) (int, error)
	CountDistinctEmails(ctx context.Context) (int, error)
	CategoryDistribution(ctx context.Context) ([]CategoryCount, error)
	TestsByDay(ctx context.Context, since time.Time) ([]DailyCount, error)
	GenderDistribution(ctx context.Context) ([]CodeCount, error)
	OccupationDistribution(ctx context.Context, limit int) ([]CodeCount, error)
	MaritalStatusDistribution(ctx context.Context) ([]CodeCount, error)
	BirthYearDistribution(ctx context.Context) ([]BirthYearCount, error)
	UserStats(ctx context.Context, email string) (*UserStats, error)
	Ping(ctx context.Context) error
}
