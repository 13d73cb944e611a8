package controllers

import (
	"strconv"

	"github.com/gofiber/fiber/v2"

	"github.com/soletrade/soletrade/config"
	"github.com/soletrade/soletrade/controllers/entities"
	"github.com/soletrade/soletrade/controllers/helpers"
	"github.com/soletrade/soletrade/controllers/queries"
	"github.com/soletrade/soletrade/services"
)

type ProductController struct {
	products *services.ProductService
}

func NewProductController(products *services.ProductService) *ProductController {
	return &ProductController{products: products}
}

func (ctrl *ProductController) SaveProduct(c *fiber.Ctx) error {
	payload := new(queries.ProductSavePayload)
	if err := c.BodyParser(payload); err != nil {
		return helpers.RenderParseError(c, "body")
	}

	errors := new(helpers.Errors)
	helpers.Validate(payload, errors)
	if errors.Size() > 0 {
		return helpers.RenderValidationError(c, errors)
	}

	config.Logger.Infof("saving product %s / %s", payload.KorName, payload.EngName)

	product, err := ctrl.products.SaveProduct(payload)
	if err != nil {
		return helpers.RenderError(c, err)
	}

	return c.Status(200).JSON(entities.NewSingleResult(product))
}

func (ctrl *ProductController) DeleteProduct(c *fiber.Ctx) error {
	product_id, err := strconv.ParseUint(c.Params("productId"), 10, 64)
	if err != nil {
		return helpers.RenderParseError(c, c.Params("productId"))
	}

	if err := ctrl.products.DeleteProduct(product_id); err != nil {
		return helpers.RenderError(c, err)
	}

	return c.Status(200).JSON(entities.SuccessResult())
}

func (ctrl *ProductController) FindProducts(c *fiber.Ctx) error {
	filters := new(queries.ProductSearchFilters)
	if err := c.QueryParser(filters); err != nil {
		return helpers.RenderParseError(c, "query")
	}

	errors := new(helpers.Errors)
	helpers.Validate(filters, errors)
	if errors.Size() > 0 {
		return helpers.RenderValidationError(c, errors)
	}

	filters.Page, filters.Limit = helpers.Paging(filters.Page, filters.Limit)

	products, err := ctrl.products.FindProductByNameInBrand(filters)
	if err != nil {
		return helpers.RenderError(c, err)
	}

	return c.Status(200).JSON(entities.NewListResult(products))
}

func (ctrl *ProductController) UpdateProduct(c *fiber.Ctx) error {
	product_id, err := strconv.ParseUint(c.Params("id"), 10, 64)
	if err != nil {
		return helpers.RenderParseError(c, c.Params("id"))
	}

	payload := new(queries.ProductSavePayload)
	if err := c.BodyParser(payload); err != nil {
		return helpers.RenderParseError(c, "body")
	}

	errors := new(helpers.Errors)
	helpers.Validate(payload, errors)
	if errors.Size() > 0 {
		return helpers.RenderValidationError(c, errors)
	}

	if err := ctrl.products.UpdateProduct(product_id, payload); err != nil {
		return helpers.RenderError(c, err)
	}

	return c.Status(200).JSON(entities.SuccessResult())
}

func (ctrl *ProductController) FindProductDetail(c *fiber.Ctx) error {
	product_id, err := strconv.ParseUint(c.Params("productId"), 10, 64)
	if err != nil {
		return helpers.RenderParseError(c, c.Params("productId"))
	}

	detail, err := ctrl.products.FindProductDetail(product_id)
	if err != nil {
		return helpers.RenderError(c, err)
	}

	return c.Status(200).JSON(entities.NewSingleResult(detail))
}

func (ctrl *ProductController) FindProductImages(c *fiber.Ctx) error {
	product_id, err := strconv.ParseUint(c.Params("productId"), 10, 64)
	if err != nil {
		return helpers.RenderParseError(c, c.Params("productId"))
	}

	images, err := ctrl.products.FindProductImages(product_id)
	if err != nil {
		return helpers.RenderError(c, err)
	}

	return c.Status(200).JSON(entities.NewListResult(images))
}

func (ctrl *ProductController) AddProductImages(c *fiber.Ctx) error {
	payload := new(queries.ProductImageAddPayload)
	if err := c.BodyParser(payload); err != nil {
		return helpers.RenderParseError(c, "body")
	}

	errors := new(helpers.Errors)
	helpers.Validate(payload, errors)
	if errors.Size() > 0 {
		return helpers.RenderValidationError(c, errors)
	}

	if err := ctrl.products.AddProductImages(payload); err != nil {
		return helpers.RenderError(c, err)
	}

	return c.Status(200).JSON(entities.SuccessResult())
}

func (ctrl *ProductController) DeleteProductImage(c *fiber.Ctx) error {
	image_id, err := strconv.ParseUint(c.Params("productImageId"), 10, 64)
	if err != nil {
		return helpers.RenderParseError(c, c.Params("productImageId"))
	}

	if err := ctrl.products.DeleteProductImage(image_id); err != nil {
		return helpers.RenderError(c, err)
	}

	return c.Status(200).JSON(entities.SuccessResult())
}
