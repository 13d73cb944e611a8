package controllers

import (
	"strconv"

	"github.com/gofiber/fiber/v2"

	"github.com/soletrade/soletrade/controllers/entities"
	"github.com/soletrade/soletrade/controllers/helpers"
	"github.com/soletrade/soletrade/controllers/queries"
	"github.com/soletrade/soletrade/models"
	"github.com/soletrade/soletrade/services"
)

type MemberController struct {
	members *services.MemberService
}

func NewMemberController(members *services.MemberService) *MemberController {
	return &MemberController{members: members}
}

func (ctrl *MemberController) SendAuthCode(c *fiber.Ctx) error {
	payload := new(queries.EmailAuthPayload)
	if err := c.BodyParser(payload); err != nil {
		return helpers.RenderParseError(c, "body")
	}

	errors := new(helpers.Errors)
	helpers.Validate(payload, errors)
	if errors.Size() > 0 {
		return helpers.RenderValidationError(c, errors)
	}

	if err := ctrl.members.SendAuthCode(payload.Email); err != nil {
		return helpers.RenderError(c, err)
	}

	return c.Status(200).JSON(entities.SuccessResult())
}

func (ctrl *MemberController) CheckAuthCode(c *fiber.Ctx) error {
	payload := new(queries.EmailAuthCheckPayload)
	if err := c.BodyParser(payload); err != nil {
		return helpers.RenderParseError(c, "body")
	}

	errors := new(helpers.Errors)
	helpers.Validate(payload, errors)
	if errors.Size() > 0 {
		return helpers.RenderValidationError(c, errors)
	}

	if err := ctrl.members.CheckAuthCode(payload.Email, payload.Code); err != nil {
		return helpers.RenderError(c, err)
	}

	return c.Status(200).JSON(entities.SuccessResult())
}

func (ctrl *MemberController) Join(c *fiber.Ctx) error {
	payload := new(queries.MemberJoinPayload)
	if err := c.BodyParser(payload); err != nil {
		return helpers.RenderParseError(c, "body")
	}

	errors := new(helpers.Errors)
	helpers.Validate(payload, errors)
	if errors.Size() > 0 {
		return helpers.RenderValidationError(c, errors)
	}

	member, err := ctrl.members.Register(payload)
	if err != nil {
		return helpers.RenderError(c, err)
	}

	return c.Status(200).JSON(entities.NewSingleResult(member))
}

func (ctrl *MemberController) Login(c *fiber.Ctx) error {
	payload := new(queries.MemberLoginPayload)
	if err := c.BodyParser(payload); err != nil {
		return helpers.RenderParseError(c, "body")
	}

	errors := new(helpers.Errors)
	helpers.Validate(payload, errors)
	if errors.Size() > 0 {
		return helpers.RenderValidationError(c, errors)
	}

	tokens, err := ctrl.members.Login(payload)
	if err != nil {
		return helpers.RenderError(c, err)
	}

	return c.Status(200).JSON(entities.NewSingleResult(tokens))
}

func (ctrl *MemberController) Reissue(c *fiber.Ctx) error {
	payload := new(queries.ReissuePayload)
	if err := c.BodyParser(payload); err != nil {
		return helpers.RenderParseError(c, "body")
	}

	errors := new(helpers.Errors)
	helpers.Validate(payload, errors)
	if errors.Size() > 0 {
		return helpers.RenderValidationError(c, errors)
	}

	tokens, err := ctrl.members.Reissue(payload)
	if err != nil {
		return helpers.RenderError(c, err)
	}

	return c.Status(200).JSON(entities.NewSingleResult(tokens))
}

func (ctrl *MemberController) FindAddresses(c *fiber.Ctx) error {
	CurrentUser := c.Locals("CurrentUser").(*models.Member)

	addresses, err := ctrl.members.FindAddresses(CurrentUser)
	if err != nil {
		return helpers.RenderError(c, err)
	}

	return c.Status(200).JSON(entities.NewListResult(addresses))
}

func (ctrl *MemberController) AddAddress(c *fiber.Ctx) error {
	CurrentUser := c.Locals("CurrentUser").(*models.Member)

	payload := new(queries.AddressPayload)
	if err := c.BodyParser(payload); err != nil {
		return helpers.RenderParseError(c, "body")
	}

	errors := new(helpers.Errors)
	helpers.Validate(payload, errors)
	if errors.Size() > 0 {
		return helpers.RenderValidationError(c, errors)
	}

	address, err := ctrl.members.AddAddress(CurrentUser, payload)
	if err != nil {
		return helpers.RenderError(c, err)
	}

	return c.Status(200).JSON(entities.NewSingleResult(address))
}

func (ctrl *MemberController) UpdateAddress(c *fiber.Ctx) error {
	CurrentUser := c.Locals("CurrentUser").(*models.Member)

	address_id, err := strconv.ParseUint(c.Params("addressId"), 10, 64)
	if err != nil {
		return helpers.RenderParseError(c, c.Params("addressId"))
	}

	payload := new(queries.AddressPayload)
	if err := c.BodyParser(payload); err != nil {
		return helpers.RenderParseError(c, "body")
	}

	errors := new(helpers.Errors)
	helpers.Validate(payload, errors)
	if errors.Size() > 0 {
		return helpers.RenderValidationError(c, errors)
	}

	if err := ctrl.members.UpdateAddress(CurrentUser, address_id, payload); err != nil {
		return helpers.RenderError(c, err)
	}

	return c.Status(200).JSON(entities.SuccessResult())
}

func (ctrl *MemberController) DeleteAddress(c *fiber.Ctx) error {
	CurrentUser := c.Locals("CurrentUser").(*models.Member)

	address_id, err := strconv.ParseUint(c.Params("addressId"), 10, 64)
	if err != nil {
		return helpers.RenderParseError(c, c.Params("addressId"))
	}

	if err := ctrl.members.DeleteAddress(CurrentUser, address_id); err != nil {
		return helpers.RenderError(c, err)
	}

	return c.Status(200).JSON(entities.SuccessResult())
}

func (ctrl *MemberController) SetBaseAddress(c *fiber.Ctx) error {
	CurrentUser := c.Locals("CurrentUser").(*models.Member)

	address_id, err := strconv.ParseUint(c.Params("addressId"), 10, 64)
	if err != nil {
		return helpers.RenderParseError(c, c.Params("addressId"))
	}

	if err := ctrl.members.SetBaseAddress(CurrentUser, address_id); err != nil {
		return helpers.RenderError(c, err)
	}

	return c.Status(200).JSON(entities.SuccessResult())
}
