package models

const (
	SizeMin  = 220
	SizeMax  = 300
	SizeStep = 5
)

type ProductSize struct {
	ID        uint64 `json:"id" gorm:"primaryKey"`
	Size      int    `json:"size" gorm:"not null"`
	ProductID uint64 `json:"product_id" gorm:"index;not null"`
}

// SizeBuckets materializes the fixed shoe size rows for a new product:
// 220, 225, ... 300.
func SizeBuckets(product_id uint64) []ProductSize {
	sizes := make([]ProductSize, 0, (SizeMax-SizeMin)/SizeStep+1)

	for size := SizeMin; size <= SizeMax; size += SizeStep {
		sizes = append(sizes, ProductSize{Size: size, ProductID: product_id})
	}

	return sizes
}
