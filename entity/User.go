package entity

import (
	"gorm.io/gorm"
)

type User struct {
	gorm.Model
	Email       string `gorm:"uniqueIndex;not null" json:"email"`
	Password    string `json:"-"` // bcrypt hash เท่านั้น
	FirstName   string `json:"firstName"`
	LastName    string `json:"lastName"`
	IsSuperuser bool   `gorm:"default:false" json:"-"`

	// role มาจาก group membership (ดู services/role.go)
	Groups []Group `gorm:"many2many:user_groups;" json:"-"`

	Orders     []Order    `json:"-"`
	Deliveries []Order    `gorm:"foreignKey:DeliveryCrewID" json:"-"`
	CartLines  []CartLine `json:"-"`
}
