package handler

import (
	"via-proposito/internal/service"

	"github.com/gofiber/fiber/v2"
)

type HealthHandler struct {
	health service.HealthService
}

func NewHealthHandler(health service.HealthService) *HealthHandler {
	return &HealthHandler{health: health}
}

// Check godoc
// @Summary Liveness and dependency status
// @Tags health
// @Produce json
// @Success 200 {object} dto.HealthResponse
// @Failure 503 {object} dto.HealthResponse
// @Router /health [get]
func (h *HealthHandler) Check(c *fiber.Ctx) error {
	resp, err := h.health.Check(c.UserContext())
	if err != nil {
		if resp == nil {
			return err
		}
		return c.Status(fiber.StatusServiceUnavailable).JSON(resp)
	}
	return c.JSON(resp)
}
