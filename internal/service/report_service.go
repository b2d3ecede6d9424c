package service

import (
	"context"
	"time"

	"via-proposito/internal/domain"
	"via-proposito/internal/logger"
	"via-proposito/internal/report"

	"go.uber.org/zap"
)

// ReportService emails the report of a stored result to its owner.
type ReportService interface {
	SendResultEmail(ctx context.Context, email, resultID string) error
}

type reportService struct {
	repo      domain.TestResultRepository
	mailer    domain.Mailer
	publicURL string
	now       func() time.Time
}

// NewReportService accepts a nil mailer; sending then fails with a service
// unavailable error.
func NewReportService(repo domain.TestResultRepository, mailer domain.Mailer, publicURL string) ReportService {
	return &reportService{repo: repo, mailer: mailer, publicURL: publicURL, now: time.Now}
}

func (s *reportService) SendResultEmail(ctx context.Context, email, resultID string) error {
	if s.mailer == nil {
		return domain.NewError(domain.CodeServiceUnavailable, "Email delivery is not configured", nil)
	}

	result, err := s.repo.GetByIDAndEmail(ctx, resultID, email)
	if err != nil {
		if domain.IsCode(err, domain.CodeTestResultNotFound) {
			return err
		}
		return domain.NewInternalError("failed to load test result", err)
	}

	msg, err := report.Render(result.Email, winnerOf(result), s.publicURL, s.now())
	if err != nil {
		return domain.NewInternalError("failed to render result email", err)
	}

	if err := s.mailer.Send(ctx, msg); err != nil {
		logger.Get().Error("Failed to send result email", zap.String("resultID", resultID), zap.Error(err))
		return domain.NewEmailDeliveryError(err)
	}
	logger.Get().Info("Result email sent", zap.String("resultID", resultID))
	return nil
}

// winnerOf returns the stored final result with its score. The stored
// category wins over a re-ranking of the scores.
func winnerOf(result *domain.TestResult) domain.CategoryResult {
	ranking := result.Ranking()
	for _, r := range ranking {
		if r.Category == result.FinalResult {
			return r
		}
	}
	return domain.CategoryResult{Category: result.FinalResult, Order: result.FinalResult.Order()}
}
