package entity

import (
	"gorm.io/gorm"
)

// ค่า status ที่ระบบยอมรับมีแค่สองค่า
const (
	OrderStatusPending   = 0
	OrderStatusDelivered = 1
)

type Order struct {
	gorm.Model
	UserID uint `json:"userId"` // เจ้าของออเดอร์ ห้ามแก้หลังสร้าง
	User   User `json:"-"`

	DeliveryCrewID *uint `json:"deliveryCrewId"` // manager assign เท่านั้น
	DeliveryCrew   *User `gorm:"foreignKey:DeliveryCrewID" json:"-"`

	Status          int    `gorm:"default:0" json:"status"`
	Total           int64  `json:"total"` // freeze ตอน checkout ไม่คำนวณใหม่
	ShippingAddress string `json:"shippingAddress"`

	Items []OrderItem `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"items"`
}
