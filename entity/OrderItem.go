package entity

import (
	"gorm.io/gorm"
)

// OrderItem คือใบเสร็จย่อยของออเดอร์ — สร้างแล้วไม่แก้อีก
type OrderItem struct {
	gorm.Model
	OrderID uint  `json:"orderId"`
	Order   Order `json:"-"`

	MenuItemID uint  `json:"menuItemId"`
	Quantity   int   `json:"quantity"`
	UnitPrice  int64 `json:"unitPrice"`
	Total      int64 `json:"total"`
}
