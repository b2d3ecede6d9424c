package middleware

import (
	"via-proposito/internal/validation"

	"github.com/gofiber/fiber/v2"
)

// Locals keys set by the validation middleware.
const (
	ValidatedEmailKey = "validated_email"
	ValidatedIDKey    = "validated_id"
	ValidatedPageKey  = "validated_page"
	ValidatedLimitKey = "validated_limit"
)

// ValidationMiddleware provides request validation middleware
type ValidationMiddleware struct {
	validator *validation.Validator
}

// NewValidationMiddleware creates a new validation middleware instance
func NewValidationMiddleware() *ValidationMiddleware {
	return &ValidationMiddleware{
		validator: validation.NewValidator(),
	}
}

// ValidateEmailQuery validates the email query parameter.
func (vm *ValidationMiddleware) ValidateEmailQuery() fiber.Handler {
	return func(c *fiber.Ctx) error {
		email := c.Query("email")
		if errs := vm.validator.ValidateEmail("email", email); len(errs) > 0 {
			return errs // This will be handled by ErrorHandler middleware
		}
		c.Locals(ValidatedEmailKey, email)
		return c.Next()
	}
}

// ValidateResultID validates the :id path parameter.
func (vm *ValidationMiddleware) ValidateResultID() fiber.Handler {
	return func(c *fiber.Ctx) error {
		id := c.Params("id")
		if errs := vm.validator.ValidateResultID(id); len(errs) > 0 {
			return errs
		}
		c.Locals(ValidatedIDKey, id)
		return c.Next()
	}
}

// ValidatePagination validates page and limit, applying defaults.
func (vm *ValidationMiddleware) ValidatePagination() fiber.Handler {
	return func(c *fiber.Ctx) error {
		page, limit, errs := vm.validator.ParsePagination(c.Query("page"), c.Query("limit"))
		if len(errs) > 0 {
			return errs
		}
		c.Locals(ValidatedPageKey, page)
		c.Locals(ValidatedLimitKey, limit)
		return c.Next()
	}
}
