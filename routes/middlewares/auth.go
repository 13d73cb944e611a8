package middlewares

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"github.com/soletrade/soletrade/controllers/helpers"
	"github.com/soletrade/soletrade/exceptions"
	"github.com/soletrade/soletrade/models"
	"github.com/soletrade/soletrade/services"
)

// Authenticate verifies the Bearer access token and loads the member it
// belongs to into c.Locals("CurrentUser").
func Authenticate(tokens *services.TokenService, db *gorm.DB) fiber.Handler {
	return func(c *fiber.Ctx) error {
		token := c.Get("Authorization")

		if len(token) == 0 {
			return helpers.RenderError(c, exceptions.TokenNotFound())
		}

		token = strings.Replace(token, "Bearer ", "", -1)

		claims, err := tokens.Parse(token)
		if err != nil {
			return helpers.RenderError(c, err)
		}

		member := &models.Member{}
		if err := db.First(member, "uid = ?", claims.UID).Error; err != nil {
			return helpers.RenderError(c, exceptions.MemberNotFound())
		}

		c.Locals("CurrentUser", member)

		return c.Next()
	}
}
