package models

type Address struct {
	ID          uint64 `json:"id" gorm:"primaryKey"`
	MemberID    uint64 `json:"member_id" gorm:"index;not null"`
	Name        string `json:"name"`
	Phone       string `json:"phone"`
	AddressLine string `json:"address_line"`
	Detail      string `json:"detail"`
	Base        bool   `json:"base" gorm:"default:false"`
}
