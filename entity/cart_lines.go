package entity

import (
	"gorm.io/gorm"
)

// CartLine หนึ่งแถวต่อหนึ่งครั้งที่กด add (ไม่ merge เมนูซ้ำ)
type CartLine struct {
	gorm.Model
	UserID uint `gorm:"index" json:"userId"`
	User   User `json:"-"`

	// ไม่ผูก FK จริง — ถ้าเมนูถูกลบทีหลัง snapshot ราคายังใช้ได้
	MenuItemID uint `json:"menuItemId"`

	Quantity  int   `json:"quantity"`
	UnitPrice int64 `json:"unitPrice"` // snapshot ตอน add
	Total     int64 `json:"total"`     // unit_price * quantity เสมอ
}
