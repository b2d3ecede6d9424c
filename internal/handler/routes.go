package handler

import (
	"time"

	"via-proposito/internal/middleware"
	"via-proposito/internal/service"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/limiter"
)

// Routes bundles the handlers mounted under /api.
type Routes struct {
	Quiz      *QuizHandler
	Auth      *AuthHandler
	Admin     *AdminHandler
	Health    *HealthHandler
	AdminAuth service.AdminAuthService
	// LoginRateLimit is the number of login attempts allowed per IP per minute.
	// Zero disables the limiter.
	LoginRateLimit int
}

// Register mounts every API route on api.
func (r Routes) Register(api fiber.Router) {
	vm := middleware.NewValidationMiddleware()

	api.Get("/health", r.Health.Check)
	api.Get("/questions", r.Quiz.GetQuestions)
	api.Post("/test-results", r.Quiz.SubmitTest)
	api.Get("/test-results/check-email", vm.ValidateEmailQuery(), r.Quiz.CheckEmail)
	api.Post("/send-result-email", r.Quiz.SendResultEmail)

	admin := api.Group("/admin")
	if r.LoginRateLimit > 0 {
		admin.Post("/login", loginLimiter(r.LoginRateLimit), r.Auth.Login)
	} else {
		admin.Post("/login", r.Auth.Login)
	}

	protected := middleware.AdminProtected(r.AdminAuth)
	admin.Get("/stats", protected, r.Admin.GetStats)
	admin.Get("/basic-stats", protected, r.Admin.GetBasicStats)
	admin.Get("/tests-by-day", protected, r.Admin.GetTestsByDay)
	admin.Get("/all-tests", protected, vm.ValidatePagination(), r.Admin.GetAllTests)
	admin.Get("/user-summary", protected, vm.ValidateEmailQuery(), r.Admin.GetUserSummary)
	admin.Get("/test-results/:id", protected, vm.ValidateResultID(), r.Admin.GetTestResult)
}

func loginLimiter(max int) fiber.Handler {
	return limiter.New(limiter.Config{
		Max:        max,
		Expiration: time.Minute,
		LimitReached: func(c *fiber.Ctx) error {
			return c.Status(fiber.StatusTooManyRequests).JSON(middleware.ErrorResponse{
				Code:    "TOO_MANY_REQUESTS",
				Message: "Demasiados intentos. Intenta de nuevo en un minuto.",
				Status:  fiber.StatusTooManyRequests,
			})
		},
	})
}
