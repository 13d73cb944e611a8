package queries

type ProductSavePayload struct {
	KorName   string   `json:"kor_name" form:"kor_name" validate:"required"`
	EngName   string   `json:"eng_name" form:"eng_name" validate:"required"`
	BrandID   uint64   `json:"brand_id" form:"brand_id" validate:"required"`
	ImageList []string `json:"image_list" form:"image_list"`
}

func (p ProductSavePayload) Messages() map[string]string {
	return map[string]string{
		"required": "product.save.missing_{field}",
	}
}

type ProductSearchFilters struct {
	Name        string   `query:"name"`
	BrandIDList []uint64 `query:"brand_id"`
	Page        int      `query:"page" validate:"uint"`
	Limit       int      `query:"limit" validate:"uint"`
}

func (p ProductSearchFilters) Messages() map[string]string {
	return map[string]string{
		"uint": "product.search.invalid_{field}",
	}
}

type ProductImageAddPayload struct {
	ProductID     uint64   `json:"product_id" form:"product_id" validate:"required"`
	ImageNameList []string `json:"image_name_list" form:"image_name_list" validate:"required"`
}

func (p ProductImageAddPayload) Messages() map[string]string {
	return map[string]string{
		"required": "product.image.missing_{field}",
	}
}
