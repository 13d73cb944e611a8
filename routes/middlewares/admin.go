package middlewares

import (
	"github.com/gofiber/fiber/v2"

	"github.com/soletrade/soletrade/controllers/entities"
	"github.com/soletrade/soletrade/exceptions"
	"github.com/soletrade/soletrade/models"
	"github.com/soletrade/soletrade/types"
)

// AdminValidator guards catalog management behind the admin role.
func AdminValidator(c *fiber.Ctx) error {
	CurrentUser := c.Locals("CurrentUser").(*models.Member)

	if CurrentUser.Role != types.RoleAdmin {
		return c.Status(200).JSON(entities.FailureResult(exceptions.CodeInternal, "authz.invalid_permission"))
	}

	return c.Next()
}
