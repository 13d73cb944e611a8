package services

import (
	"errors"

	"gorm.io/gorm"

	"github.com/soletrade/soletrade/controllers/entities"
	"github.com/soletrade/soletrade/exceptions"
	"github.com/soletrade/soletrade/models"
)

type BrandService struct {
	db *gorm.DB
}

func NewBrandService(db *gorm.DB) *BrandService {
	return &BrandService{db: db}
}

func (s *BrandService) FindBrands() ([]entities.BrandEntity, error) {
	var brands []models.Brand
	if err := s.db.Order("name").Find(&brands).Error; err != nil {
		return nil, err
	}

	brands_json := make([]entities.BrandEntity, 0, len(brands))
	for _, brand := range brands {
		brands_json = append(brands_json, entities.BrandEntity{ID: brand.ID, Name: brand.Name})
	}

	return brands_json, nil
}

func (s *BrandService) SaveBrand(name string) (*entities.BrandEntity, error) {
	brand := &models.Brand{Name: name}

	err := s.db.Transaction(func(tx *gorm.DB) error {
		if err := duplicateBrandName(tx, name); err != nil {
			return err
		}

		return tx.Create(brand).Error
	})

	if err != nil {
		return nil, err
	}

	return &entities.BrandEntity{ID: brand.ID, Name: brand.Name}, nil
}

func (s *BrandService) UpdateBrand(brand_id uint64, name string) error {
	return s.db.Transaction(func(tx *gorm.DB) error {
		var brand models.Brand
		if err := tx.First(&brand, "id = ?", brand_id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return exceptions.BrandNotFound(brand_id)
			}

			return err
		}

		if brand.Name != name {
			if err := duplicateBrandName(tx, name); err != nil {
				return err
			}
		}

		brand.Name = name

		return tx.Save(&brand).Error
	})
}

// DeleteBrand removes the brand and everything it owns: its products
// and their size and image rows.
func (s *BrandService) DeleteBrand(brand_id uint64) error {
	return s.db.Transaction(func(tx *gorm.DB) error {
		result := tx.Delete(&models.Brand{}, brand_id)
		if result.Error != nil {
			return result.Error
		}

		if result.RowsAffected == 0 {
			return exceptions.BrandNotFound(brand_id)
		}

		var product_ids []uint64
		if err := tx.Model(&models.Product{}).Where("brand_id = ?", brand_id).Pluck("id", &product_ids).Error; err != nil {
			return err
		}

		if len(product_ids) == 0 {
			return nil
		}

		if err := tx.Where("product_id IN ?", product_ids).Delete(&models.ProductSize{}).Error; err != nil {
			return err
		}

		if err := tx.Where("product_id IN ?", product_ids).Delete(&models.ProductImage{}).Error; err != nil {
			return err
		}

		return tx.Where("id IN ?", product_ids).Delete(&models.Product{}).Error
	})
}

func duplicateBrandName(tx *gorm.DB, name string) error {
	var count int64
	if err := tx.Model(&models.Brand{}).Where("name = ?", name).Count(&count).Error; err != nil {
		return err
	}

	if count > 0 {
		return exceptions.BrandDuplication(name)
	}

	return nil
}
