package controllers

import (
	"strconv"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/soletrade/soletrade/controllers/entities"
	"github.com/soletrade/soletrade/controllers/helpers"
	"github.com/soletrade/soletrade/services"
)

type PublicController struct {
	markets *services.MarketService
}

func NewPublicController(markets *services.MarketService) *PublicController {
	return &PublicController{markets: markets}
}

func (ctrl *PublicController) GetTimestamp(c *fiber.Ctx) error {
	return c.Status(200).JSON(time.Now().Unix())
}

// GetMarketSnapshot serves the cached best-bid/best-ask/last-sale view
// of a product. An absent snapshot renders as an empty one rather than
// an error; the cron refreshes it within its interval.
func (ctrl *PublicController) GetMarketSnapshot(c *fiber.Ctx) error {
	product_id, err := strconv.ParseUint(c.Params("productId"), 10, 64)
	if err != nil {
		return helpers.RenderParseError(c, c.Params("productId"))
	}

	snapshot, err := ctrl.markets.GetSnapshot(product_id)
	if err != nil {
		snapshot = nil
	}

	return c.Status(200).JSON(entities.NewSingleResult(snapshot))
}
