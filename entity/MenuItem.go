package entity

import (
	"gorm.io/gorm"
)

type MenuItem struct {
	gorm.Model
	Title string `json:"title"`
	// ราคาเก็บเป็นหน่วยย่อย (สตางค์/cents) → 12.50 = 1250
	Price    int64 `json:"price"`
	Featured bool  `json:"featured"`

	CategoryID uint     `json:"categoryId"`
	Category   Category `json:"category"`
}
