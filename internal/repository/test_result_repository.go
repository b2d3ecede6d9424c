package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"via-proposito/internal/domain"
	"via-proposito/internal/repository/models"
	"via-proposito/internal/util"

	"github.com/jmoiron/sqlx"
)

const (
	testResultColumns = `id, email, birth_year, gender, occupation, marital_status, test_date, final_result`

	insertTestResultQuery = `INSERT INTO test_results (id, email, birth_year, gender, occupation, marital_status, test_date, final_result)
		VALUES (:id, :email, :birth_year, :gender, :occupation, :marital_status, :test_date, :final_result)`
	insertAnswersQuery = `INSERT INTO answers (id, test_result_id, question_id, answer_value)
		VALUES (:id, :test_result_id, :question_id, :answer_value)`
	insertCategoryScoresQuery = `INSERT INTO category_scores (id, test_result_id, category_name, score)
		VALUES (:id, :test_result_id, :category_name, :score)`
)

// sqlxTestResultRepository implements domain.TestResultRepository using sqlx.
type sqlxTestResultRepository struct {
	db *sqlx.DB
}

func NewSQLXTestResultRepository(db *sqlx.DB) domain.TestResultRepository {
	return &sqlxTestResultRepository{db: db}
}

func toDomainTestResult(m *models.TestResult) *domain.TestResult {
	if m == nil {
		return nil
	}
	return &domain.TestResult{
		ID:    m.ID,
		Email: m.Email,
		Demographics: domain.Demographics{
			BirthYear:     int(m.BirthYear.Int32),
			Gender:        domain.Gender(m.Gender.String),
			Occupation:    domain.Occupation(m.Occupation.String),
			MaritalStatus: domain.MaritalStatus(m.MaritalStatus.String),
		},
		TestDate:    m.TestDate,
		FinalResult: domain.Category(m.FinalResult),
	}
}

func fromDomainTestResult(d *domain.TestResult) *models.TestResult {
	if d == nil {
		return nil
	}
	return &models.TestResult{
		ID:            d.ID,
		Email:         d.Email,
		BirthYear:     util.IntToNullInt32(d.Demographics.BirthYear),
		Gender:        util.StringToNullString(string(d.Demographics.Gender)),
		Occupation:    util.StringToNullString(string(d.Demographics.Occupation)),
		MaritalStatus: util.StringToNullString(string(d.Demographics.MaritalStatus)),
		TestDate:      d.TestDate,
		FinalResult:   string(d.FinalResult),
	}
}

// Create inserts the test result followed by its answers and category scores.
// Missing IDs are filled with ULIDs. It uses the transaction in ctx when present.
func (r *sqlxTestResultRepository) Create(ctx context.Context, result *domain.TestResult) error {
	exec := GetExecutor(ctx, r.db)

	if result.ID == "" {
		result.ID = util.NewULID()
	}
	if result.TestDate.IsZero() {
		result.TestDate = time.Now().UTC()
	}

	if _, err := exec.NamedExecContext(ctx, insertTestResultQuery, fromDomainTestResult(result)); err != nil {
		return fmt.Errorf("failed to insert test result: %w", err)
	}

	if len(result.Answers) > 0 {
		answers := make([]models.Answer, 0, len(result.Answers))
		for i := range result.Answers {
			a := &result.Answers[i]
			if a.ID == "" {
				a.ID = util.NewULID()
			}
			a.TestResultID = result.ID
			answers = append(answers, models.Answer{
				ID:           a.ID,
				TestResultID: a.TestResultID,
				QuestionID:   a.QuestionID,
				AnswerValue:  a.AnswerValue,
			})
		}
		if _, err := exec.NamedExecContext(ctx, insertAnswersQuery, answers); err != nil {
			return fmt.Errorf("failed to insert answers: %w", err)
		}
	}

	if len(result.CategoryScores) > 0 {
		scores := make([]models.CategoryScore, 0, len(result.CategoryScores))
		for i := range result.CategoryScores {
			cs := &result.CategoryScores[i]
			if cs.ID == "" {
				cs.ID = util.NewULID()
			}
			cs.TestResultID = result.ID
			scores = append(scores, models.CategoryScore{
				ID:           cs.ID,
				TestResultID: cs.TestResultID,
				CategoryName: string(cs.CategoryName),
				Score:        cs.Score,
			})
		}
		if _, err := exec.NamedExecContext(ctx, insertCategoryScoresQuery, scores); err != nil {
			return fmt.Errorf("failed to insert category scores: %w", err)
		}
	}
	return nil
}

// GetByID loads a test result with its answers and category scores.
func (r *sqlxTestResultRepository) GetByID(ctx context.Context, id string) (*domain.TestResult, error) {
	query := `SELECT ` + testResultColumns + ` FROM test_results WHERE id = $1`
	return r.getOne(ctx, id, query, id)
}

// GetByIDAndEmail is GetByID restricted to results owned by email.
func (r *sqlxTestResultRepository) GetByIDAndEmail(ctx context.Context, id, email string) (*domain.TestResult, error) {
	query := `SELECT ` + testResultColumns + ` FROM test_results WHERE id = $1 AND email = $2`
	return r.getOne(ctx, id, query, id, domain.NormalizeEmail(email))
}

func (r *sqlxTestResultRepository) getOne(ctx context.Context, id, query string, args ...interface{}) (*domain.TestResult, error) {
	exec := GetExecutor(ctx, r.db)

	var model models.TestResult
	if err := exec.GetContext(ctx, &model, query, args...); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.NewTestResultNotFoundError(id)
		}
		return nil, fmt.Errorf("failed to get test result %s: %w", id, err)
	}
	result := toDomainTestResult(&model)

	var answers []models.Answer
	if err := exec.SelectContext(ctx, &answers,
		`SELECT id, test_result_id, question_id, answer_value FROM answers WHERE test_result_id = $1 ORDER BY question_id`,
		result.ID); err != nil {
		return nil, fmt.Errorf("failed to get answers for test result %s: %w", id, err)
	}
	for _, a := range answers {
		result.Answers = append(result.Answers, domain.Answer{
			ID: a.ID, TestResultID: a.TestResultID, QuestionID: a.QuestionID, AnswerValue: a.AnswerValue,
		})
	}

	scores, err := r.categoryScoresFor(ctx, exec, []string{result.ID})
	if err != nil {
		return nil, err
	}
	result.CategoryScores = scores[result.ID]
	return result, nil
}

// categoryScoresFor loads category scores for several results, keyed by result id.
func (r *sqlxTestResultRepository) categoryScoresFor(ctx context.Context, exec DBTX, ids []string) (map[string][]domain.CategoryScore, error) {
	byResult := make(map[string][]domain.CategoryScore, len(ids))
	if len(ids) == 0 {
		return byResult, nil
	}

	query, args, err := sqlx.In(
		`SELECT id, test_result_id, category_name, score FROM category_scores WHERE test_result_id IN (?) ORDER BY test_result_id, category_name`,
		ids)
	if err != nil {
		return nil, fmt.Errorf("failed to build category score query: %w", err)
	}

	var rows []models.CategoryScore
	if err := exec.SelectContext(ctx, &rows, exec.Rebind(query), args...); err != nil {
		return nil, fmt.Errorf("failed to get category scores: %w", err)
	}
	for _, row := range rows {
		byResult[row.TestResultID] = append(byResult[row.TestResultID], domain.CategoryScore{
			ID:           row.ID,
			TestResultID: row.TestResultID,
			CategoryName: domain.Category(row.CategoryName),
			Score:        row.Score,
		})
	}
	return byResult, nil
}

// ExistsByEmail reports whether any result was stored for email.
func (r *sqlxTestResultRepository) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	var exists bool
	err := GetExecutor(ctx, r.db).GetContext(ctx, &exists,
		`SELECT EXISTS (SELECT 1 FROM test_results WHERE email = $1)`, domain.NormalizeEmail(email))
	if err != nil {
		return false, fmt.Errorf("failed to check email: %w", err)
	}
	return exists, nil
}

// ListByEmail returns every result for email, newest first, with category scores.
func (r *sqlxTestResultRepository) ListByEmail(ctx context.Context, email string) ([]domain.TestResult, error) {
	exec := GetExecutor(ctx, r.db)

	var rows []models.TestResult
	if err := exec.SelectContext(ctx, &rows,
		`SELECT `+testResultColumns+` FROM test_results WHERE email = $1 ORDER BY test_date DESC`,
		domain.NormalizeEmail(email)); err != nil {
		return nil, fmt.Errorf("failed to list test results for email: %w", err)
	}

	ids := make([]string, 0, len(rows))
	for _, row := range rows {
		ids = append(ids, row.ID)
	}
	scores, err := r.categoryScoresFor(ctx, exec, ids)
	if err != nil {
		return nil, err
	}

	results := make([]domain.TestResult, 0, len(rows))
	for i := range rows {
		result := toDomainTestResult(&rows[i])
		result.CategoryScores = scores[result.ID]
		results = append(results, *result)
	}
	return results, nil
}

// List returns one page of results, newest first, and the total row count.
func (r *sqlxTestResultRepository) List(ctx context.Context, limit, offset int) ([]domain.TestResult, int, error) {
	exec := GetExecutor(ctx, r.db)

	var total int
	if err := exec.GetContext(ctx, &total, `SELECT COUNT(*) FROM test_results`); err != nil {
		return nil, 0, fmt.Errorf("failed to count test results: %w", err)
	}

	var rows []models.TestResult
	if err := exec.SelectContext(ctx, &rows,
		`SELECT `+testResultColumns+` FROM test_results ORDER BY test_date DESC LIMIT $1 OFFSET $2`,
		limit, offset); err != nil {
		return nil, 0, fmt.Errorf("failed to list test results: %w", err)
	}

	results := make([]domain.TestResult, 0, len(rows))
	for i := range rows {
		results = append(results, *toDomainTestResult(&rows[i]))
	}
	return results, total, nil
}
