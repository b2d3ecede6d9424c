package handler

import (
	"via-proposito/internal/dto"
	"via-proposito/internal/logger"
	"via-proposito/internal/middleware"
	"via-proposito/internal/service"
	"via-proposito/internal/validation"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// QuizHandler serves the public quiz endpoints.
type QuizHandler struct {
	questions service.QuestionService
	results   service.TestResultService
	reports   service.ReportService
	validator *validation.Validator
}

func NewQuizHandler(questions service.QuestionService, results service.TestResultService, reports service.ReportService) *QuizHandler {
	return &QuizHandler{
		questions: questions,
		results:   results,
		reports:   reports,
		validator: validation.NewValidator(),
	}
}

// GetQuestions godoc
// @Summary Get the quiz
// @Description Returns the 37 statements and the answer scale
// @Tags quiz
// @Produce json
// @Success 200 {object} dto.QuestionsResponse
// @Failure 500 {object} middleware.ErrorResponse
// @Router /questions [get]
func (h *QuizHandler) GetQuestions(c *fiber.Ctx) error {
	resp, err := h.questions.Questions(c.UserContext())
	if err != nil {
		return err
	}
	return c.JSON(resp)
}

// SubmitTest godoc
// @Summary Submit a completed quiz
// @Description Scores the answers, stores the result and returns the ranking
// @Tags quiz
// @Accept json
// @Produce json
// @Param request body dto.SubmitTestRequest true "Answers and demographics"
// @Success 201 {object} dto.SubmitTestResponse
// @Failure 400 {object} middleware.ValidationErrorResponse
// @Failure 409 {object} middleware.ErrorResponse "Email already used"
// @Failure 500 {object} middleware.ErrorResponse
// @Router /test-results [post]
func (h *QuizHandler) SubmitTest(c *fiber.Ctx) error {
	var req dto.SubmitTestRequest
	if err := bindJSON(c, h.validator, &req); err != nil {
		return err
	}

	resp, err := h.results.Submit(c.UserContext(), &req)
	if err != nil {
		return err
	}
	logger.Get().Info("Test result stored", zap.String("id", resp.ID), zap.String("result", resp.Result))
	return c.Status(fiber.StatusCreated).JSON(resp)
}

// CheckEmail godoc
// @Summary Check whether an email has taken the quiz
// @Tags quiz
// @Produce json
// @Param email query string true "Email"
// @Success 200 {object} dto.CheckEmailResponse
// @Failure 400 {object} middleware.ValidationErrorResponse
// @Failure 500 {object} middleware.ErrorResponse
// @Router /test-results/check-email [get]
func (h *QuizHandler) CheckEmail(c *fiber.Ctx) error {
	email, _ := c.Locals(middleware.ValidatedEmailKey).(string)

	exists, err := h.results.CheckEmail(c.UserContext(), email)
	if err != nil {
		return err
	}
	return c.JSON(dto.CheckEmailResponse{Exists: exists})
}

// SendResultEmail godoc
// @Summary Email the result report
// @Description Sends the profile report of a stored result to its owner
// @Tags quiz
// @Accept json
// @Produce json
// @Param request body dto.SendResultEmailRequest true "Result and owner email"
// @Success 200 {object} dto.SendResultEmailResponse
// @Failure 400 {object} middleware.ValidationErrorResponse
// @Failure 404 {object} middleware.ErrorResponse
// @Failure 502 {object} middleware.ErrorResponse "Delivery failed"
// @Failure 503 {object} middleware.ErrorResponse "Email not configured"
// @Router /send-result-email [post]
func (h *QuizHandler) SendResultEmail(c *fiber.Ctx) error {
	var req dto.SendResultEmailRequest
	if err := bindJSON(c, h.validator, &req); err != nil {
		return err
	}

	if err := h.reports.SendResultEmail(c.UserContext(), req.Email, req.ResultID); err != nil {
		return err
	}
	return c.JSON(dto.SendResultEmailResponse{Success: true, Message: "Email enviado correctamente"})
}
