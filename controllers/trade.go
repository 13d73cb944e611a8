package controllers

import (
	"strconv"

	"github.com/gofiber/fiber/v2"

	"github.com/soletrade/soletrade/controllers/entities"
	"github.com/soletrade/soletrade/controllers/helpers"
	"github.com/soletrade/soletrade/controllers/queries"
	"github.com/soletrade/soletrade/models"
	"github.com/soletrade/soletrade/services"
	"github.com/soletrade/soletrade/types"
)

type TradeController struct {
	trades *services.TradeService
}

func NewTradeController(trades *services.TradeService) *TradeController {
	return &TradeController{trades: trades}
}

// FindDoneTrades is the public sale history of a product.
func (ctrl *TradeController) FindDoneTrades(c *fiber.Ctx) error {
	product_id, err := strconv.ParseUint(c.Params("productId"), 10, 64)
	if err != nil {
		return helpers.RenderParseError(c, c.Params("productId"))
	}

	page, limit := helpers.Paging(helpers.QueryInt(c, "page"), helpers.QueryInt(c, "limit"))

	trades, err := ctrl.trades.FindDoneTrades(product_id, page, limit)
	if err != nil {
		return helpers.RenderError(c, err)
	}

	return c.Status(200).JSON(entities.NewListResult(trades))
}

// FindTransactionTrades is the public depth view of one side of a
// product's open bids or asks.
func (ctrl *TradeController) FindTransactionTrades(c *fiber.Ctx) error {
	product_id, err := strconv.ParseUint(c.Params("productId"), 10, 64)
	if err != nil {
		return helpers.RenderParseError(c, c.Params("productId"))
	}

	state := c.Query("state")
	if state != types.StateBuy && state != types.StateSell {
		return helpers.RenderValidationError(c, &helpers.Errors{Errors: []string{"trade.filter.invalid_state"}})
	}

	page, limit := helpers.Paging(helpers.QueryInt(c, "page"), helpers.QueryInt(c, "limit"))

	trades, err := ctrl.trades.FindTransactionTrades(product_id, state, page, limit)
	if err != nil {
		return helpers.RenderError(c, err)
	}

	return c.Status(200).JSON(entities.NewListResult(trades))
}

func (ctrl *TradeController) SaveTrade(c *fiber.Ctx) error {
	CurrentUser := c.Locals("CurrentUser").(*models.Member)

	payload := new(queries.TradeSavePayload)
	if err := c.BodyParser(payload); err != nil {
		return helpers.RenderParseError(c, "body")
	}

	errors := new(helpers.Errors)
	helpers.Validate(payload, errors)
	if errors.Size() > 0 {
		return helpers.RenderValidationError(c, errors)
	}

	trade, err := ctrl.trades.SaveTrade(CurrentUser, payload)
	if err != nil {
		return helpers.RenderError(c, err)
	}

	return c.Status(200).JSON(entities.NewSingleResult(trade))
}

func (ctrl *TradeController) FindMemberTrades(c *fiber.Ctx) error {
	CurrentUser := c.Locals("CurrentUser").(*models.Member)

	filters := new(queries.TradeFilters)
	if err := c.QueryParser(filters); err != nil {
		return helpers.RenderParseError(c, "query")
	}

	errors := new(helpers.Errors)
	helpers.Validate(filters, errors)
	if errors.Size() > 0 {
		return helpers.RenderValidationError(c, errors)
	}

	filters.Page, filters.Limit = helpers.Paging(filters.Page, filters.Limit)

	trades, err := ctrl.trades.FindMemberTrades(CurrentUser, filters)
	if err != nil {
		return helpers.RenderError(c, err)
	}

	return c.Status(200).JSON(entities.NewListResult(trades))
}

func (ctrl *TradeController) UpdateTrade(c *fiber.Ctx) error {
	CurrentUser := c.Locals("CurrentUser").(*models.Member)

	trade_id, err := strconv.ParseUint(c.Params("tradeId"), 10, 64)
	if err != nil {
		return helpers.RenderParseError(c, c.Params("tradeId"))
	}

	payload := new(queries.TradePricePayload)
	if err := c.BodyParser(payload); err != nil {
		return helpers.RenderParseError(c, "body")
	}

	errors := new(helpers.Errors)
	helpers.Validate(payload, errors)
	if errors.Size() > 0 {
		return helpers.RenderValidationError(c, errors)
	}

	if err := ctrl.trades.UpdateTrade(CurrentUser, trade_id, payload); err != nil {
		return helpers.RenderError(c, err)
	}

	return c.Status(200).JSON(entities.SuccessResult())
}

func (ctrl *TradeController) DeleteTrade(c *fiber.Ctx) error {
	CurrentUser := c.Locals("CurrentUser").(*models.Member)

	trade_id, err := strconv.ParseUint(c.Params("tradeId"), 10, 64)
	if err != nil {
		return helpers.RenderParseError(c, c.Params("tradeId"))
	}

	if err := ctrl.trades.DeleteTrade(CurrentUser, trade_id); err != nil {
		return helpers.RenderError(c, err)
	}

	return c.Status(200).JSON(entities.SuccessResult())
}

// CompleteTrade settles a counterparty's open bid or ask at its listed
// price.
func (ctrl *TradeController) CompleteTrade(c *fiber.Ctx) error {
	CurrentUser := c.Locals("CurrentUser").(*models.Member)

	trade_id, err := strconv.ParseUint(c.Params("tradeId"), 10, 64)
	if err != nil {
		return helpers.RenderParseError(c, c.Params("tradeId"))
	}

	if err := ctrl.trades.CompleteTrade(CurrentUser, trade_id); err != nil {
		return helpers.RenderError(c, err)
	}

	return c.Status(200).JSON(entities.SuccessResult())
}
