package helpers

import (
	"strconv"

	"github.com/gofiber/fiber/v2"
	"github.com/gookit/validate"

	"github.com/soletrade/soletrade/config"
	"github.com/soletrade/soletrade/controllers/entities"
	"github.com/soletrade/soletrade/exceptions"
)

type Errors struct {
	Errors []string `json:"errors"`
}

func (e Errors) Size() int {
	return len(e.Errors)
}

func Validate(payload interface{}, err_src *Errors) {
	v := validate.Struct(payload)
	if !v.Validate() {
		for _, errs := range v.Errors.All() {
			for _, err := range errs {
				err_src.Errors = append(err_src.Errors, err)
			}
		}
	}
}

// RenderError keeps the envelope contract: every failure goes out as
// HTTP 200 with success:false, a domain error with its table code and
// anything unclassified as the internal code.
func RenderError(c *fiber.Ctx, err error) error {
	if domain_err, ok := exceptions.AsDomain(err); ok {
		return c.Status(200).JSON(entities.FailureResult(domain_err.Code, domain_err.Message))
	}

	config.Logger.Errorf("unhandled error: %v", err)

	internal := exceptions.Internal()

	return c.Status(200).JSON(entities.FailureResult(internal.Code, internal.Message))
}

// RenderValidationError reports the first payload validation message
// under the input-validation code.
func RenderValidationError(c *fiber.Ctx, errors *Errors) error {
	return c.Status(200).JSON(entities.FailureResult(exceptions.CodeMalformedNumber, errors.Errors[0]))
}

// RenderParseError covers malformed request bodies and non-numeric path
// parameters.
func RenderParseError(c *fiber.Ctx, value string) error {
	malformed := exceptions.MalformedNumber(value)

	return c.Status(200).JSON(entities.FailureResult(malformed.Code, malformed.Message))
}

// QueryInt reads an integer query parameter, zero when absent or
// unparsable.
func QueryInt(c *fiber.Ctx, key string) int {
	val, _ := strconv.Atoi(c.Query(key))

	return val
}

const DefaultLimit = 100

// Paging normalizes page/limit params the way the trade listings expect
// them: 1-based page, capped fallback limit.
func Paging(page, limit int) (int, int) {
	if page <= 0 {
		page = 1
	}

	if limit <= 0 || limit > DefaultLimit {
		limit = DefaultLimit
	}

	return page, limit
}

// Offset translates a page/limit pair into the row offset gorm needs.
func Offset(page, limit int) int {
	return page*limit - limit
}
