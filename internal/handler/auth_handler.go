package handler

import (
	"via-proposito/internal/dto"
	"via-proposito/internal/service"
	"via-proposito/internal/validation"

	"github.com/gofiber/fiber/v2"
)

// AuthHandler issues dashboard session tokens.
type AuthHandler struct {
	authService service.AdminAuthService
	validator   *validation.Validator
}

func NewAuthHandler(authService service.AdminAuthService) *AuthHandler {
	return &AuthHandler{authService: authService, validator: validation.NewValidator()}
}

// Login godoc
// @Summary Admin login
// @Description Exchanges the admin password for a bearer token
// @Tags admin
// @Accept json
// @Produce json
// @Param request body dto.LoginRequest true "Password"
// @Success 200 {object} dto.LoginResponse
// @Failure 400 {object} middleware.ValidationErrorResponse
// @Failure 401 {object} middleware.ErrorResponse
// @Failure 429 {object} middleware.ErrorResponse
// @Router /admin/login [post]
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var req dto.LoginRequest
	if err := bindJSON(c, h.validator, &req); err != nil {
		return err
	}

	resp, err := h.authService.Login(c.UserContext(), req.Password)
	if err != nil {
		return err
	}
	return c.JSON(resp)
}
