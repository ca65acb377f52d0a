package handlers

import (
	"github.com/gofiber/fiber/v2"

	"resumatch/analyzer-api/internal/catalog"
	"resumatch/analyzer-api/internal/models"
)

type RolesHandler struct{}

func NewRolesHandler() *RolesHandler {
	return &RolesHandler{}
}

// HandleListRoles handles GET /roles
func (h *RolesHandler) HandleListRoles(c *fiber.Ctx) error {
	return c.JSON(models.RolesResponse{
		Roles: catalog.RoleOptions,
	})
}
