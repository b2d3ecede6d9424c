package service

import (
	"context"
	"errors"
	"math"
	"time"

	"via-proposito/internal/domain"
	"via-proposito/internal/dto"
	"via-proposito/internal/logger"

	"go.uber.org/zap"
)

// TestResultService scores and stores quiz submissions.
type TestResultService interface {
	Submit(ctx context.Context, req *dto.SubmitTestRequest) (*dto.SubmitTestResponse, error)
	CheckEmail(ctx context.Context, email string) (bool, error)
}

type testResultService struct {
	repo         domain.TestResultRepository
	txManager    domain.TransactionManager
	statsCache   StatsCacheService
	allowRetakes bool
	now          func() time.Time
}

func NewTestResultService(
	repo domain.TestResultRepository,
	txManager domain.TransactionManager,
	statsCache StatsCacheService,
	allowRetakes bool,
) TestResultService {
	if statsCache == nil {
		statsCache = &noopStatsCacheService{}
	}
	return &testResultService{
		repo:         repo,
		txManager:    txManager,
		statsCache:   statsCache,
		allowRetakes: allowRetakes,
		now:          func() time.Time { return time.Now().UTC() },
	}
}

// Submit scores the answers on the server and stores the result, its 37
// answers and 4 category scores in one transaction. Incomplete answer sets
// are rejected with the missing question ids.
func (s *testResultService) Submit(ctx context.Context, req *dto.SubmitTestRequest) (*dto.SubmitTestResponse, error) {
	if req == nil {
		return nil, domain.NewInvalidInputError("request body is required")
	}
	if errs := domain.ValidateAnswers(req.Answers); len(errs) > 0 {
		return nil, errs
	}

	demographics := domain.Demographics{
		BirthYear:     req.BirthYear,
		Gender:        domain.Gender(req.Gender),
		Occupation:    domain.Occupation(req.Occupation),
		MaritalStatus: domain.MaritalStatus(req.MaritalStatus),
	}
	result, ranking := domain.NewTestResult(req.Email, demographics, req.Answers, s.now())
	if err := result.Validate(); err != nil {
		return nil, err
	}

	err := s.txManager.WithTransaction(ctx, func(txCtx context.Context) error {
		if !s.allowRetakes {
			exists, err := s.repo.ExistsByEmail(txCtx, result.Email)
			if err != nil {
				return err
			}
			if exists {
				return domain.NewEmailAlreadyUsedError(result.Email)
			}
		}
		return s.repo.Create(txCtx, result)
	})
	if err != nil {
		var domainErr *domain.DomainError
		if errors.As(err, &domainErr) {
			return nil, err
		}
		logger.Get().Error("Failed to store test result", zap.Error(err))
		return nil, domain.NewInternalError("failed to store test result", err)
	}

	if err := s.statsCache.Invalidate(ctx); err != nil {
		logger.Get().Warn("Failed to invalidate stats cache after submission", zap.Error(err))
	}

	logger.Get().Info("Test result stored",
		zap.String("id", result.ID),
		zap.String("result", result.FinalResult.String()))

	return &dto.SubmitTestResponse{
		Success:        true,
		ID:             result.ID,
		Result:         result.FinalResult.String(),
		ResultTitle:    result.FinalResult.Title(),
		CategoryScores: scoresByName(ranking.Scores()),
		Ranking:        toCategoryScoreResponses(ranking),
	}, nil
}

func (s *testResultService) CheckEmail(ctx context.Context, email string) (bool, error) {
	exists, err := s.repo.ExistsByEmail(ctx, email)
	if err != nil {
		return false, domain.NewInternalError("failed to check email", err)
	}
	return exists, nil
}

func scoresByName(scores map[domain.Category]int) map[string]int {
	out := make(map[string]int, len(scores))
	for c, score := range scores {
		out[c.String()] = score
	}
	return out
}

func toCategoryScoreResponses(ranking domain.Ranking) []dto.CategoryScoreResponse {
	out := make([]dto.CategoryScoreResponse, 0, len(ranking))
	for _, r := range ranking {
		out = append(out, dto.CategoryScoreResponse{
			Category:   r.Category.String(),
			Title:      r.Category.Title(),
			Score:      r.Score,
			MaxScore:   r.Category.MaxScore(),
			Percentage: roundPercentage(r.Percentage()),
		})
	}
	return out
}

// roundPercentage keeps one decimal.
func roundPercentage(p float64) float64 {
	return math.Round(p*10) / 10
}
