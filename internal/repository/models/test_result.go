package models

import (
	"database/sql"
	"time"
)

// TestResult is a row of test_results.
type TestResult struct {
	ID            string         `db:"id"`             // ULID
	Email         string         `db:"email"`          // respondent email, not unique since retakes are allowed
	BirthYear     sql.NullInt32  `db:"birth_year"`     // NULL for rows created before demographics existed
	Gender        sql.NullString `db:"gender"`         // domain.Gender code
	Occupation    sql.NullString `db:"occupation"`     // domain.Occupation code
	MaritalStatus sql.NullString `db:"marital_status"` // domain.MaritalStatus code
	TestDate      time.Time      `db:"test_date"`
	FinalResult   string         `db:"final_result"` // domain.Category
}

// Answer is a row of answers.
type Answer struct {
	ID           string `db:"id"`
	TestResultID string `db:"test_result_id"`
	QuestionID   int    `db:"question_id"`
	AnswerValue  int    `db:"answer_value"`
}

// CategoryScore is a row of category_scores.
type CategoryScore struct {
	ID           string `db:"id"`
	TestResultID string `db:"test_result_id"`
	CategoryName string `db:"category_name"`
	Score        int    `db:"score"`
}
