package models

import (
	"time"

	"github.com/soletrade/soletrade/types"
)

type Member struct {
	ID        uint64           `json:"id" gorm:"primaryKey"`
	UID       string           `json:"uid" gorm:"uniqueIndex;not null"`
	Email     string           `json:"email" gorm:"uniqueIndex;not null"`
	Password  string           `json:"-" gorm:"not null"`
	Role      types.MemberRole `json:"role" gorm:"default:USER"`
	CreatedAt time.Time        `json:"created_at"`
	UpdatedAt time.Time        `json:"updated_at"`
}
