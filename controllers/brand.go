package controllers

import (
	"strconv"

	"github.com/gofiber/fiber/v2"

	"github.com/soletrade/soletrade/controllers/entities"
	"github.com/soletrade/soletrade/controllers/helpers"
	"github.com/soletrade/soletrade/controllers/queries"
	"github.com/soletrade/soletrade/services"
)

type BrandController struct {
	brands *services.BrandService
}

func NewBrandController(brands *services.BrandService) *BrandController {
	return &BrandController{brands: brands}
}

func (ctrl *BrandController) FindBrands(c *fiber.Ctx) error {
	brands, err := ctrl.brands.FindBrands()
	if err != nil {
		return helpers.RenderError(c, err)
	}

	return c.Status(200).JSON(entities.NewListResult(brands))
}

func (ctrl *BrandController) SaveBrand(c *fiber.Ctx) error {
	payload := new(queries.BrandPayload)
	if err := c.BodyParser(payload); err != nil {
		return helpers.RenderParseError(c, "body")
	}

	errors := new(helpers.Errors)
	helpers.Validate(payload, errors)
	if errors.Size() > 0 {
		return helpers.RenderValidationError(c, errors)
	}

	brand, err := ctrl.brands.SaveBrand(payload.Name)
	if err != nil {
		return helpers.RenderError(c, err)
	}

	return c.Status(200).JSON(entities.NewSingleResult(brand))
}

func (ctrl *BrandController) UpdateBrand(c *fiber.Ctx) error {
	brand_id, err := strconv.ParseUint(c.Params("id"), 10, 64)
	if err != nil {
		return helpers.RenderParseError(c, c.Params("id"))
	}

	payload := new(queries.BrandPayload)
	if err := c.BodyParser(payload); err != nil {
		return helpers.RenderParseError(c, "body")
	}

	errors := new(helpers.Errors)
	helpers.Validate(payload, errors)
	if errors.Size() > 0 {
		return helpers.RenderValidationError(c, errors)
	}

	if err := ctrl.brands.UpdateBrand(brand_id, payload.Name); err != nil {
		return helpers.RenderError(c, err)
	}

	return c.Status(200).JSON(entities.SuccessResult())
}

func (ctrl *BrandController) DeleteBrand(c *fiber.Ctx) error {
	brand_id, err := strconv.ParseUint(c.Params("id"), 10, 64)
	if err != nil {
		return helpers.RenderParseError(c, c.Params("id"))
	}

	if err := ctrl.brands.DeleteBrand(brand_id); err != nil {
		return helpers.RenderError(c, err)
	}

	return c.Status(200).JSON(entities.SuccessResult())
}
