package handler

import (
	"via-proposito/internal/domain"
	"via-proposito/internal/validation"

	"github.com/gofiber/fiber/v2"
)

// bindJSON decodes the request body into dst and validates its struct tags.
func bindJSON(c *fiber.Ctx, v *validation.Validator, dst interface{}) error {
	if err := c.BodyParser(dst); err != nil {
		return domain.NewError(domain.CodeInvalidInput, "Invalid request body", err)
	}
	if errs := v.ValidateStruct(dst); len(errs) > 0 {
		return errs
	}
	return nil
}
