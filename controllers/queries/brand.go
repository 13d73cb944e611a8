package queries

type BrandPayload struct {
	Name string `json:"name" form:"name" validate:"required"`
}

func (p BrandPayload) Messages() map[string]string {
	return map[string]string{
		"required": "brand.missing_{field}",
	}
}
