package configs

import (
	"log"

	"github.com/Wezzer42/littlelemon/entity"
	"golang.org/x/crypto/bcrypt"
)

// สร้าง superuser ครั้งแรก (ข้ามถ้าไม่ตั้ง env)
func SeedAdmin() error {
	db := DB()
	email := getEnv("ADMIN_EMAIL", "")
	pass := getEnv("ADMIN_PASSWORD", "")
	if email == "" || pass == "" {
		log.Println("skip seeding admin: missing ADMIN_EMAIL/ADMIN_PASSWORD")
		return nil
	}

	var count int64
	db.Model(&entity.User{}).Where("email = ?", email).Count(&count)
	if count > 0 {
		log.Println("admin already exists:", email)
		return nil
	}

	hash, _ := bcrypt.GenerateFromPassword([]byte(pass), bcrypt.DefaultCost)
	admin := entity.User{
		Email:       email,
		Password:    string(hash),
		FirstName:   "Admin",
		LastName:    "Seed",
		IsSuperuser: true,
	}
	return db.Create(&admin).Error
}

// Seed group + ตัวอย่าง catalog เริ่มต้น
func SeedLookups() error {
	db := DB()

	// Groups ที่ role resolver ใช้
	db.FirstOrCreate(&entity.Group{}, entity.Group{Name: entity.GroupManager})
	db.FirstOrCreate(&entity.Group{}, entity.Group{Name: entity.GroupDeliveryCrew})

	// Categories
	var mains, drinks entity.Category
	db.FirstOrCreate(&mains, entity.Category{Slug: "mains", Title: "Mains"})
	db.FirstOrCreate(&drinks, entity.Category{Slug: "drinks", Title: "Drinks"})

	// Menu items (ราคาเป็นหน่วยย่อย: 1250 = 12.50)
	db.FirstOrCreate(&entity.MenuItem{}, entity.MenuItem{Title: "Pizza", Price: 1250, CategoryID: mains.ID})
	db.FirstOrCreate(&entity.MenuItem{}, entity.MenuItem{Title: "Pasta", Price: 1000, CategoryID: mains.ID})
	db.FirstOrCreate(&entity.MenuItem{}, entity.MenuItem{Title: "Lemonade", Price: 350, CategoryID: drinks.ID})

	return nil
}
