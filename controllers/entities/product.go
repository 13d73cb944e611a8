package entities

type ProductEntity struct {
	ID        uint64 `json:"id"`
	KorName   string `json:"kor_name"`
	EngName   string `json:"eng_name"`
	BrandID   uint64 `json:"brand_id"`
	BrandName string `json:"brand_name"`
}

type ProductSizeEntity struct {
	ID   uint64 `json:"id"`
	Size int    `json:"size"`
}

type ProductImageEntity struct {
	ID   uint64 `json:"id"`
	Name string `json:"name"`
}

type ProductDetailEntity struct {
	ProductEntity
	Sizes  []ProductSizeEntity  `json:"sizes"`
	Images []ProductImageEntity `json:"images"`
}
