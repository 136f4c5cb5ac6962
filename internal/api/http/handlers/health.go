package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/iamvkosarev/expert-chat/internal/api/http/presenter"
	"net/http"
)

type HealthHandler struct{}

func NewHealthHandler() *HealthHandler { return &HealthHandler{} }

func (h *HealthHandler) Health(c *fiber.Ctx) error {
	return presenter.JSON(c, http.StatusOK, fiber.Map{"status": "ok"})
}
