package service

import (
	"context"
	"time"

	"via-proposito/internal/cache"
	"via-proposito/internal/domain"
	"via-proposito/internal/dto"
	"via-proposito/internal/logger"

	"github.com/jinzhu/copier"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

const (
	activityWindowDays = 30
	recentTestsLimit   = 10
	topOccupations     = 10
)

// StatsService serves the admin dashboard.
type StatsService interface {
	Stats(ctx context.Context) (*dto.StatsResponse, error)
	BasicStats(ctx context.Context) (*dto.BasicStatsResponse, error)
	TestsByDay(ctx context.Context) (*dto.TestsByDayResponse, error)
	AllTests(ctx context.Context, page, limit int) (*dto.AllTestsResponse, error)
	UserSummary(ctx context.Context, email string) (*dto.UserSummaryResponse, error)
	TestResult(ctx context.Context, id string) (*dto.TestResultDetailResponse, error)
}

type statsService struct {
	stats      domain.StatsRepository
	results    domain.TestResultRepository
	statsCache StatsCacheService
	now        func() time.Time
}

func NewStatsService(stats domain.StatsRepository, results domain.TestResultRepository, statsCache StatsCacheService) StatsService {
	if statsCache == nil {
		statsCache = &noopStatsCacheService{}
	}
	return &statsService{
		stats:      stats,
		results:    results,
		statsCache: statsCache,
		now:        func() time.Time { return time.Now().UTC() },
	}
}

// cached returns the payload of kind from the cache or builds and stores it.
// Cache failures are logged and never fail the request.
func cached[T any](ctx context.Context, c StatsCacheService, kind string, build func(context.Context) (*T, error)) (*T, error) {
	var hit T
	found, err := c.Get(ctx, kind, &hit)
	if err != nil {
		logger.Get().Warn("Stats cache read failed", zap.String("kind", kind), zap.Error(err))
	}
	if found {
		return &hit, nil
	}

	value, err := build(ctx)
	if err != nil {
		return nil, err
	}
	if err := c.Put(ctx, kind, value); err != nil {
		logger.Get().Warn("Stats cache write failed", zap.String("kind", kind), zap.Error(err))
	}
	return value, nil
}

func (s *statsService) activitySince() time.Time {
	today := s.now().Truncate(24 * time.Hour)
	return today.AddDate(0, 0, -activityWindowDays)
}

func (s *statsService) Stats(ctx context.Context) (*dto.StatsResponse, error) {
	return cached(ctx, s.statsCache, cache.StatsOverview, s.buildStats)
}

func (s *statsService) buildStats(ctx context.Context) (*dto.StatsResponse, error) {
	var (
		total   int
		byCat   []domain.CategoryCount
		byDay   []domain.DailyCount
		recents []domain.TestResult
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() (err error) {
		total, err = s.stats.CountTests(gctx)
		return err
	})
	g.Go(func() (err error) {
		byCat, err = s.stats.CategoryDistribution(gctx)
		return err
	})
	g.Go(func() (err error) {
		byDay, err = s.stats.TestsByDay(gctx, s.activitySince())
		return err
	})
	g.Go(func() (err error) {
		recents, _, err = s.results.List(gctx, recentTestsLimit, 0)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, domain.NewInternalError("failed to load dashboard stats", err)
	}

	return &dto.StatsResponse{
		TotalTests:           total,
		CategoryDistribution: toCategoryCounts(byCat),
		TestsByDay:           toDailyCounts(byDay),
		RecentTests:          toTestSummaries(recents, false),
	}, nil
}

func (s *statsService) BasicStats(ctx context.Context) (*dto.BasicStatsResponse, error) {
	return cached(ctx, s.statsCache, cache.StatsBasic, s.buildBasicStats)
}

func (s *statsService) buildBasicStats(ctx context.Context) (*dto.BasicStatsResponse, error) {
	var (
		totalTests, totalUsers       int
		byCat                        []domain.CategoryCount
		genders, occupations, status []domain.CodeCount
		birthYears                   []domain.BirthYearCount
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() (err error) {
		totalTests, err = s.stats.CountTests(gctx)
		return err
	})
	g.Go(func() (err error) {
		totalUsers, err = s.stats.CountDistinctEmails(gctx)
		return err
	})
	g.Go(func() (err error) {
		byCat, err = s.stats.CategoryDistribution(gctx)
		return err
	})
	g.Go(func() (err error) {
		genders, err = s.stats.GenderDistribution(gctx)
		return err
	})
	g.Go(func() (err error) {
		birthYears, err = s.stats.BirthYearDistribution(gctx)
		return err
	})
	g.Go(func() (err error) {
		occupations, err = s.stats.OccupationDistribution(gctx, topOccupations)
		return err
	})
	g.Go(func() (err error) {
		status, err = s.stats.MaritalStatusDistribution(gctx)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, domain.NewInternalError("failed to load basic stats", err)
	}

	return &dto.BasicStatsResponse{
		TotalTests:           totalTests,
		TotalUsers:           totalUsers,
		CategoryDistribution: toCategoryCounts(byCat),
		Demographics: dto.DemographicsStats{
			Gender:        labelCounts(genders, func(code string) string { return domain.Gender(code).Label() }),
			AgeGroups:     ageGroupCounts(birthYears, s.now().Year()),
			Occupations:   labelCounts(occupations, func(code string) string { return domain.Occupation(code).Label() }),
			MaritalStatus: labelCounts(status, func(code string) string { return domain.MaritalStatus(code).Label() }),
		},
	}, nil
}

// TestsByDay lists the activity window newest day first.
func (s *statsService) TestsByDay(ctx context.Context) (*dto.TestsByDayResponse, error) {
	return cached(ctx, s.statsCache, cache.StatsByDay, func(ctx context.Context) (*dto.TestsByDayResponse, error) {
		byDay, err := s.stats.TestsByDay(ctx, s.activitySince())
		if err != nil {
			return nil, domain.NewInternalError("failed to load tests by day", err)
		}
		days := toDailyCounts(byDay)
		for i, j := 0, len(days)-1; i < j; i, j = i+1, j-1 {
			days[i], days[j] = days[j], days[i]
		}
		return &dto.TestsByDayResponse{TestsByDay: days}, nil
	})
}

func (s *statsService) AllTests(ctx context.Context, page, limit int) (*dto.AllTestsResponse, error) {
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = 20
	}

	results, total, err := s.results.List(ctx, limit, (page-1)*limit)
	if err != nil {
		return nil, domain.NewInternalError("failed to list tests", err)
	}
	return &dto.AllTestsResponse{
		Tests:       toTestSummaries(results, false),
		TotalTests:  total,
		TotalPages:  (total + limit - 1) / limit,
		CurrentPage: page,
	}, nil
}

func (s *statsService) UserSummary(ctx context.Context, email string) (*dto.UserSummaryResponse, error) {
	email = domain.NormalizeEmail(email)

	userStats, err := s.stats.UserStats(ctx, email)
	if err != nil {
		if domain.IsCode(err, domain.CodeNotFound) {
			return nil, err
		}
		return nil, domain.NewInternalError("failed to load user stats", err)
	}

	tests, err := s.results.ListByEmail(ctx, email)
	if err != nil {
		return nil, domain.NewInternalError("failed to load user tests", err)
	}

	resp := &dto.UserSummaryResponse{
		Email:      email,
		TotalTests: userStats.TotalTests,
		FirstTest:  userStats.FirstTest,
		LastTest:   userStats.LastTest,
		Tests:      toTestSummaries(tests, true),
	}
	if len(tests) > 0 {
		demo := toDemographicsResponse(tests[0].Demographics)
		resp.Demographics = &demo
	}
	return resp, nil
}

func (s *statsService) TestResult(ctx context.Context, id string) (*dto.TestResultDetailResponse, error) {
	result, err := s.results.GetByID(ctx, id)
	if err != nil {
		if domain.IsCode(err, domain.CodeTestResultNotFound) {
			return nil, err
		}
		return nil, domain.NewInternalError("failed to load test result", err)
	}

	resp := &dto.TestResultDetailResponse{
		ID:           result.ID,
		Email:        result.Email,
		TestDate:     result.TestDate,
		FinalResult:  result.FinalResult.String(),
		ResultTitle:  result.FinalResult.Title(),
		Demographics: toDemographicsResponse(result.Demographics),
		Scores:       toCategoryScoreResponses(result.Ranking()),
	}
	if err := copier.Copy(&resp.Answers, &result.Answers); err != nil {
		return nil, domain.NewInternalError("failed to map answers", err)
	}
	return resp, nil
}

func toCategoryCounts(rows []domain.CategoryCount) []dto.CategoryCountResponse {
	out := make([]dto.CategoryCountResponse, 0, len(rows))
	for _, r := range rows {
		out = append(out, dto.CategoryCountResponse{Category: r.Category.String(), Title: r.Category.Title(), Count: r.Count})
	}
	return out
}

func toDailyCounts(rows []domain.DailyCount) []dto.DailyCountResponse {
	out := make([]dto.DailyCountResponse, 0, len(rows))
	for _, r := range rows {
		out = append(out, dto.DailyCountResponse{Date: r.Date.Format(time.DateOnly), Count: r.Count})
	}
	return out
}

// labelCounts maps codes to labels. Codes sharing a label, such as unknown
// ones, are merged into one bucket.
func labelCounts(rows []domain.CodeCount, label func(string) string) []dto.LabelCountResponse {
	out := make([]dto.LabelCountResponse, 0, len(rows))
	index := make(map[string]int, len(rows))
	for _, r := range rows {
		l := label(r.Code)
		if i, ok := index[l]; ok {
			out[i].Count += r.Count
			out[i].Code = ""
			continue
		}
		index[l] = len(out)
		out = append(out, dto.LabelCountResponse{Code: r.Code, Label: l, Count: r.Count})
	}
	return out
}

// ageGroupCounts buckets birth years by age in currentYear, in display order,
// skipping empty buckets.
func ageGroupCounts(rows []domain.BirthYearCount, currentYear int) []dto.LabelCountResponse {
	counts := make(map[domain.AgeGroup]int)
	for _, r := range rows {
		counts[domain.AgeGroupFor(currentYear-r.BirthYear)] += r.Count
	}

	out := make([]dto.LabelCountResponse, 0, len(counts))
	for _, g := range domain.AgeGroups {
		if n := counts[g]; n > 0 {
			out = append(out, dto.LabelCountResponse{Label: g.Label(), Count: n})
		}
	}
	return out
}

func toDemographicsResponse(d domain.Demographics) dto.DemographicsResponse {
	return dto.DemographicsResponse{
		BirthYear:          d.BirthYear,
		Gender:             string(d.Gender),
		GenderLabel:        d.Gender.Label(),
		Occupation:         string(d.Occupation),
		OccupationLabel:    d.Occupation.Label(),
		MaritalStatus:      string(d.MaritalStatus),
		MaritalStatusLabel: d.MaritalStatus.Label(),
	}
}

func toTestSummaries(results []domain.TestResult, withScores bool) []dto.TestSummaryResponse {
	out := make([]dto.TestSummaryResponse, 0, len(results))
	for i := range results {
		r := &results[i]
		summary := dto.TestSummaryResponse{
			ID:            r.ID,
			Email:         r.Email,
			BirthYear:     r.Demographics.BirthYear,
			Gender:        string(r.Demographics.Gender),
			Occupation:    string(r.Demographics.Occupation),
			MaritalStatus: string(r.Demographics.MaritalStatus),
			TestDate:      r.TestDate,
			FinalResult:   r.FinalResult.String(),
		}
		if withScores {
			scores := make(map[string]int, len(domain.Categories))
			for _, c := range domain.Categories {
				scores[c.String()] = 0
			}
			for _, cs := range r.CategoryScores {
				scores[cs.CategoryName.String()] = cs.Score
			}
			summary.CategoryScores = scores
		}
		out = append(out, summary)
	}
	return out
}
