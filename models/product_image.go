package models

type ProductImage struct {
	ID        uint64 `json:"id" gorm:"primaryKey"`
	Name      string `json:"name" gorm:"uniqueIndex:idx_product_image_name;not null"`
	ProductID uint64 `json:"product_id" gorm:"uniqueIndex:idx_product_image_name;index;not null"`
}
