package services

import (
	"errors"

	"gorm.io/gorm"

	"github.com/soletrade/soletrade/controllers/entities"
	"github.com/soletrade/soletrade/controllers/queries"
	"github.com/soletrade/soletrade/exceptions"
	"github.com/soletrade/soletrade/models"
)

type ProductService struct {
	db *gorm.DB
}

func NewProductService(db *gorm.DB) *ProductService {
	return &ProductService{db: db}
}

// SaveProduct registers a product and materializes its fixed size rows
// and initial images in one transaction.
func (s *ProductService) SaveProduct(payload *queries.ProductSavePayload) (*entities.ProductEntity, error) {
	var product *models.Product
	var brand models.Brand

	err := s.db.Transaction(func(tx *gorm.DB) error {
		if err := duplicateProductName(tx, "kor_name", payload.KorName); err != nil {
			return err
		}

		if err := duplicateProductName(tx, "eng_name", payload.EngName); err != nil {
			return err
		}

		if err := tx.First(&brand, "id = ?", payload.BrandID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return exceptions.BrandNotFound(payload.BrandID)
			}

			return err
		}

		product = &models.Product{
			KorName: payload.KorName,
			EngName: payload.EngName,
			BrandID: brand.ID,
		}

		if err := tx.Create(product).Error; err != nil {
			return err
		}

		sizes := models.SizeBuckets(product.ID)
		if err := tx.Create(&sizes).Error; err != nil {
			return err
		}

		if len(payload.ImageList) > 0 {
			images := make([]models.ProductImage, 0, len(payload.ImageList))
			for _, name := range payload.ImageList {
				images = append(images, models.ProductImage{Name: name, ProductID: product.ID})
			}

			if err := tx.Create(&images).Error; err != nil {
				return err
			}
		}

		return nil
	})

	if err != nil {
		return nil, err
	}

	return &entities.ProductEntity{
		ID:        product.ID,
		KorName:   product.KorName,
		EngName:   product.EngName,
		BrandID:   brand.ID,
		BrandName: brand.Name,
	}, nil
}

func (s *ProductService) DeleteProduct(product_id uint64) error {
	return s.db.Transaction(func(tx *gorm.DB) error {
		result := tx.Delete(&models.Product{}, product_id)
		if result.Error != nil {
			return result.Error
		}

		if result.RowsAffected == 0 {
			return exceptions.ProductNotFound(product_id)
		}

		if err := tx.Where("product_id = ?", product_id).Delete(&models.ProductSize{}).Error; err != nil {
			return err
		}

		return tx.Where("product_id = ?", product_id).Delete(&models.ProductImage{}).Error
	})
}

// FindProductByNameInBrand pages through products matching an optional
// name substring and an optional brand id set.
func (s *ProductService) FindProductByNameInBrand(filters *queries.ProductSearchFilters) ([]entities.ProductEntity, error) {
	products := []entities.ProductEntity{}

	tx := s.db.Model(&models.Product{}).
		Select("products.id, products.kor_name, products.eng_name, products.brand_id, brands.name AS brand_name").
		Joins("JOIN brands ON brands.id = products.brand_id")

	if len(filters.Name) > 0 {
		pattern := "%" + filters.Name + "%"
		tx = tx.Where("products.kor_name LIKE ? OR products.eng_name LIKE ?", pattern, pattern)
	}

	if len(filters.BrandIDList) > 0 {
		tx = tx.Where("products.brand_id IN ?", filters.BrandIDList)
	}

	offset := filters.Page*filters.Limit - filters.Limit
	if err := tx.Order("products.id").Offset(offset).Limit(filters.Limit).Scan(&products).Error; err != nil {
		return nil, err
	}

	return products, nil
}

func (s *ProductService) UpdateProduct(product_id uint64, payload *queries.ProductSavePayload) error {
	return s.db.Transaction(func(tx *gorm.DB) error {
		var product models.Product
		if err := tx.First(&product, "id = ?", product_id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return exceptions.ProductNotFound(product_id)
			}

			return err
		}

		// Uniqueness is only re-checked for names that actually change,
		// so saving a product over itself stays idempotent.
		if product.KorName != payload.KorName {
			if err := duplicateProductName(tx, "kor_name", payload.KorName); err != nil {
				return err
			}
		}

		if product.EngName != payload.EngName {
			if err := duplicateProductName(tx, "eng_name", payload.EngName); err != nil {
				return err
			}
		}

		var brand models.Brand
		if err := tx.First(&brand, "id = ?", payload.BrandID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return exceptions.BrandNotFound(payload.BrandID)
			}

			return err
		}

		product.KorName = payload.KorName
		product.EngName = payload.EngName
		product.BrandID = brand.ID

		return tx.Save(&product).Error
	})
}

func (s *ProductService) FindProductImages(product_id uint64) ([]entities.ProductImageEntity, error) {
	if err := s.db.First(&models.Product{}, "id = ?", product_id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, exceptions.ProductNotFound(product_id)
		}

		return nil, err
	}

	var images []models.ProductImage
	if err := s.db.Where("product_id = ?", product_id).Order("id").Find(&images).Error; err != nil {
		return nil, err
	}

	images_json := make([]entities.ProductImageEntity, 0, len(images))
	for _, image := range images {
		images_json = append(images_json, entities.ProductImageEntity{ID: image.ID, Name: image.Name})
	}

	return images_json, nil
}

// AddProductImages rejects the whole batch when any requested name is
// already taken within the product, reporting every colliding name.
func (s *ProductService) AddProductImages(payload *queries.ProductImageAddPayload) error {
	return s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&models.Product{}, "id = ?", payload.ProductID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return exceptions.ProductNotFound(payload.ProductID)
			}

			return err
		}

		var existing []models.ProductImage
		if err := tx.Where("product_id = ? AND name IN ?", payload.ProductID, payload.ImageNameList).Find(&existing).Error; err != nil {
			return err
		}

		if len(existing) > 0 {
			names := make([]string, 0, len(existing))
			for _, image := range existing {
				names = append(names, image.Name)
			}

			return exceptions.ProductImageDuplication(names)
		}

		images := make([]models.ProductImage, 0, len(payload.ImageNameList))
		for _, name := range payload.ImageNameList {
			images = append(images, models.ProductImage{Name: name, ProductID: payload.ProductID})
		}

		return tx.Create(&images).Error
	})
}

func (s *ProductService) DeleteProductImage(image_id uint64) error {
	result := s.db.Delete(&models.ProductImage{}, image_id)
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return exceptions.ProductImageNotFound(image_id)
	}

	return nil
}

func (s *ProductService) FindProductDetail(product_id uint64) (*entities.ProductDetailEntity, error) {
	var product models.Product
	if err := s.db.First(&product, "id = ?", product_id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, exceptions.ProductNotFound(product_id)
		}

		return nil, err
	}

	var brand models.Brand
	if err := s.db.First(&brand, "id = ?", product.BrandID).Error; err != nil {
		return nil, err
	}

	var sizes []models.ProductSize
	if err := s.db.Where("product_id = ?", product_id).Order("size").Find(&sizes).Error; err != nil {
		return nil, err
	}

	var images []models.ProductImage
	if err := s.db.Where("product_id = ?", product_id).Order("id").Find(&images).Error; err != nil {
		return nil, err
	}

	detail := &entities.ProductDetailEntity{
		ProductEntity: entities.ProductEntity{
			ID:        product.ID,
			KorName:   product.KorName,
			EngName:   product.EngName,
			BrandID:   brand.ID,
			BrandName: brand.Name,
		},
		Sizes:  make([]entities.ProductSizeEntity, 0, len(sizes)),
		Images: make([]entities.ProductImageEntity, 0, len(images)),
	}

	for _, size := range sizes {
		detail.Sizes = append(detail.Sizes, entities.ProductSizeEntity{ID: size.ID, Size: size.Size})
	}

	for _, image := range images {
		detail.Images = append(detail.Images, entities.ProductImageEntity{ID: image.ID, Name: image.Name})
	}

	return detail, nil
}

func duplicateProductName(tx *gorm.DB, column, name string) error {
	var count int64
	if err := tx.Model(&models.Product{}).Where(column+" = ?", name).Count(&count).Error; err != nil {
		return err
	}

	if count > 0 {
		return exceptions.ProductDuplication(name)
	}

	return nil
}
