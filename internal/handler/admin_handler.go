package handler

import (
	"via-proposito/internal/middleware"
	"via-proposito/internal/service"
	"via-proposito/internal/validation"

	"github.com/gofiber/fiber/v2"
)

// AdminHandler serves the dashboard endpoints. Every route sits behind
// middleware.AdminProtected.
type AdminHandler struct {
	stats service.StatsService
}

func NewAdminHandler(stats service.StatsService) *AdminHandler {
	return &AdminHandler{stats: stats}
}

// GetStats godoc
// @Summary Dashboard overview
// @Tags admin
// @Security ApiKeyAuth
// @Produce json
// @Success 200 {object} dto.StatsResponse
// @Failure 401 {object} middleware.ErrorResponse
// @Failure 500 {object} middleware.ErrorResponse
// @Router /admin/stats [get]
func (h *AdminHandler) GetStats(c *fiber.Ctx) error {
	resp, err := h.stats.Stats(c.UserContext())
	if err != nil {
		return err
	}
	return c.JSON(resp)
}

// GetBasicStats godoc
// @Summary Totals and demographic breakdowns
// @Tags admin
// @Security ApiKeyAuth
// @Produce json
// @Success 200 {object} dto.BasicStatsResponse
// @Failure 401 {object} middleware.ErrorResponse
// @Failure 500 {object} middleware.ErrorResponse
// @Router /admin/basic-stats [get]
func (h *AdminHandler) GetBasicStats(c *fiber.Ctx) error {
	resp, err := h.stats.BasicStats(c.UserContext())
	if err != nil {
		return err
	}
	return c.JSON(resp)
}

// GetTestsByDay godoc
// @Summary Tests per day over the last 30 days
// @Tags admin
// @Security ApiKeyAuth
// @Produce json
// @Success 200 {object} dto.TestsByDayResponse
// @Failure 401 {object} middleware.ErrorResponse
// @Router /admin/tests-by-day [get]
func (h *AdminHandler) GetTestsByDay(c *fiber.Ctx) error {
	resp, err := h.stats.TestsByDay(c.UserContext())
	if err != nil {
		return err
	}
	return c.JSON(resp)
}

// GetAllTests godoc
// @Summary Paginated list of tests
// @Tags admin
// @Security ApiKeyAuth
// @Produce json
// @Param page query int false "Page (default 1)"
// @Param limit query int false "Page size (default 20, max 100)"
// @Success 200 {object} dto.AllTestsResponse
// @Failure 400 {object} middleware.ValidationErrorResponse
// @Failure 401 {object} middleware.ErrorResponse
// @Router /admin/all-tests [get]
func (h *AdminHandler) GetAllTests(c *fiber.Ctx) error {
	page, ok := c.Locals(middleware.ValidatedPageKey).(int)
	if !ok {
		page = validation.DefaultPage
	}
	limit, ok := c.Locals(middleware.ValidatedLimitKey).(int)
	if !ok {
		limit = validation.DefaultLimit
	}

	resp, err := h.stats.AllTests(c.UserContext(), page, limit)
	if err != nil {
		return err
	}
	return c.JSON(resp)
}

// GetUserSummary godoc
// @Summary Every test taken with one email
// @Tags admin
// @Security ApiKeyAuth
// @Produce json
// @Param email query string true "Email"
// @Success 200 {object} dto.UserSummaryResponse
// @Failure 400 {object} middleware.ValidationErrorResponse
// @Failure 404 {object} middleware.ErrorResponse
// @Router /admin/user-summary [get]
func (h *AdminHandler) GetUserSummary(c *fiber.Ctx) error {
	email, _ := c.Locals(middleware.ValidatedEmailKey).(string)

	resp, err := h.stats.UserSummary(c.UserContext(), email)
	if err != nil {
		return err
	}
	return c.JSON(resp)
}

// GetTestResult godoc
// @Summary One test with its answers and scores
// @Tags admin
// @Security ApiKeyAuth
// @Produce json
// @Param id path string true "Result ID"
// @Success 200 {object} dto.TestResultDetailResponse
// @Failure 400 {object} middleware.ValidationErrorResponse
// @Failure 404 {object} middleware.ErrorResponse
// @Router /admin/test-results/{id} [get]
func (h *AdminHandler) GetTestResult(c *fiber.Ctx) error {
	id, _ := c.Locals(middleware.ValidatedIDKey).(string)

	resp, err := h.stats.TestResult(c.UserContext(), id)
	if err != nil {
		return err
	}
	return c.JSON(resp)
}
