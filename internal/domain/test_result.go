package domain

import (
	"context"
	"net/mail"
	"strings"
	"time"
)

// Demographics is the optional profile a respondent enters before the quiz.
// Zero values mean the field was not provided.
type Demographics struct {
	BirthYear     int
	Gender        Gender
	Occupation    Occupation
	MaritalStatus MaritalStatus
}

// TestResult is a completed quiz submission with its answers and scores.
type TestResult struct {
	ID             string
	Email          string
	Demographics   Demographics
	TestDate       time.Time
	FinalResult    Category
	Answers        []Answer
	CategoryScores []CategoryScore
}

// Answer is the value given to one question of a test.
type Answer struct {
	ID           string
	TestResultID string
	QuestionID   int
	AnswerValue  int
}

// CategoryScore is the stored total of one category for a test.
type CategoryScore struct {
	ID           string
	TestResultID string
	CategoryName Category
	Score        int
}

// NewTestResult scores answers and builds the result with one Answer per
// question and one CategoryScore per category. IDs are left for the caller.
func NewTestResult(email string, demographics Demographics, answers map[int]int, now time.Time) (*TestResult, Ranking) {
	ranking := Score(answers)

	result := &TestResult{
		Email:        NormalizeEmail(email),
		Demographics: demographics,
		TestDate:     now,
		FinalResult:  ranking.Result(),
	}

	for id := 1; id <= QuestionCount; id++ {
		value, ok := answers[id]
		if !ok {
			continue
		}
		result.Answers = append(result.Answers, Answer{QuestionID: id, AnswerValue: value})
	}

	scores := ranking.Scores()
	for _, c := range Categories {
		result.CategoryScores = append(result.CategoryScores, CategoryScore{
			CategoryName: c,
			Score:        scores[c],
		})
	}
	return result, ranking
}

// Ranking rebuilds the ordered category results from the stored scores.
func (t *TestResult) Ranking() Ranking {
	scores := make(map[Category]int, len(t.CategoryScores))
	for _, cs := range t.CategoryScores {
		scores[cs.CategoryName] = cs.Score
	}
	return RankingFromScores(scores)
}

// Validate checks the aggregate invariants before persisting.
func (t *TestResult) Validate() error {
	var errs ValidationErrors
	if t.Email == "" {
		errs = append(errs, NewMissingFieldError("email"))
	} else if !IsValidEmail(t.Email) {
		errs = append(errs, NewInvalidFormatError("email", t.Email))
	}
	if !t.FinalResult.Valid() {
		errs = append(errs, NewInvalidFormatError("final_result", string(t.FinalResult)))
	}
	if len(t.Answers) != QuestionCount {
		errs = append(errs, NewOutOfRangeError("answers", len(t.Answers), QuestionCount, QuestionCount))
	}
	if len(t.CategoryScores) != len(Categories) {
		errs = append(errs, NewOutOfRangeError("category_scores", len(t.CategoryScores), len(Categories), len(Categories)))
	}
	if len(errs) > 0 {
		return errs
	}
	return nil
}

// NormalizeEmail trims and lower-cases an email for storage and lookups.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// IsValidEmail accepts a bare address such as "ana@example.com".
func IsValidEmail(email string) bool {
	addr, err := mail.ParseAddress(email)
	if err != nil {
		return false
	}
	return addr.Address == email && strings.Contains(email[strings.LastIndex(email, "@"):], ".")
}

// TestResultRepository persists test results and their owned rows.
type TestResultRepository interface {
	// Create inserts the result, its answers and its category scores.
	// Callers run it inside a transaction so the three inserts succeed or fail together.
	Create(ctx context.Context, result *TestResult) error
	GetByID(ctx context.Context, id string) (*TestResult, error)
	GetByIDAndEmail(ctx context.Context, id, email string) (*TestResult, error)
	ExistsByEmail(ctx context.Context, email string) (bool, error)
	ListByEmail(ctx context.Context, email string) ([]TestResult, error)
	List(ctx context.Context, limit, offset int) ([]TestResult, int, error)
}

// TransactionManager runs fn inside one database transaction.
type TransactionManager interface {
	WithTransaction(ctx context.Context, fn func(ctx context.Context) error) error
}
