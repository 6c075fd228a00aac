package entity

import (
	"gorm.io/gorm"
)

// ชื่อ group ที่ระบบรู้จัก
const (
	GroupManager      = "Manager"
	GroupDeliveryCrew = "Delivery crew"
)

type Group struct {
	gorm.Model
	Name string `gorm:"uniqueIndex;not null" json:"name"`

	Users []User `gorm:"many2many:user_groups;" json:"-"`
}
