package models

import "time"

type Product struct {
	ID        uint64    `json:"id" gorm:"primaryKey"`
	KorName   string    `json:"kor_name" gorm:"uniqueIndex;not null"`
	EngName   string    `json:"eng_name" gorm:"uniqueIndex;not null"`
	BrandID   uint64    `json:"brand_id" gorm:"index;not null"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
