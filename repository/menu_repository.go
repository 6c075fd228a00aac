package repository

import (
	"github.com/Wezzer42/littlelemon/entity"

	"gorm.io/gorm"
)

type MenuRepository struct{ DB *gorm.DB }

func NewMenuRepository(db *gorm.DB) *MenuRepository { return &MenuRepository{DB: db} }

// เงื่อนไข list จาก query string (filter/search/sort แบบ catalog ทั่วไป)
type MenuItemFilter struct {
	CategoryID *uint
	Featured   *bool
	Price      *int64
	Search     string
	Ordering   string // price, title, id (นำหน้า - เพื่อ desc)
}

func (r *MenuRepository) List(f MenuItemFilter) ([]entity.MenuItem, error) {
	q := r.DB.Model(&entity.MenuItem{}).Preload("Category")

	if f.CategoryID != nil {
		q = q.Where("category_id = ?", *f.CategoryID)
	}
	if f.Featured != nil {
		q = q.Where("featured = ?", *f.Featured)
	}
	if f.Price != nil {
		q = q.Where("price = ?", *f.Price)
	}
	if f.Search != "" {
		like := "%" + f.Search + "%"
		q = q.Joins("JOIN categories ON categories.id = menu_items.category_id").
			Where("menu_items.title LIKE ? OR categories.title LIKE ?", like, like)
	}

	order := "menu_items.id"
	switch f.Ordering {
	case "price":
		order = "price"
	case "-price":
		order = "price DESC"
	case "title":
		order = "menu_items.title"
	case "-title":
		order = "menu_items.title DESC"
	case "-id":
		order = "menu_items.id DESC"
	}

	var items []entity.MenuItem
	err := q.Order(order).Find(&items).Error
	return items, err
}

func (r *MenuRepository) FindByID(id uint) (*entity.MenuItem, error) {
	var m entity.MenuItem
	if err := r.DB.Preload("Category").First(&m, id).Error; err != nil {
		return nil, err
	}
	return &m, nil
}

func (r *MenuRepository) Create(m *entity.MenuItem) error {
	return r.DB.Create(m).Error
}

func (r *MenuRepository) Update(id uint, fields map[string]any) error {
	return r.DB.Model(&entity.MenuItem{}).Where("id = ?", id).Updates(fields).Error
}

func (r *MenuRepository) Delete(id uint) (int64, error) {
	res := r.DB.Delete(&entity.MenuItem{}, id)
	return res.RowsAffected, res.Error
}

// PriceOf คือ contract แคบ ๆ ที่ cart ใช้ตอน snapshot ราคา
func (r *MenuRepository) PriceOf(id uint) (int64, error) {
	var m entity.MenuItem
	if err := r.DB.Select("id, price").First(&m, id).Error; err != nil {
		return 0, err
	}
	return m.Price, nil
}

// ---------------- Categories ----------------

func (r *MenuRepository) ListCategories() ([]entity.Category, error) {
	var cats []entity.Category
	err := r.DB.Order("title").Find(&cats).Error
	return cats, err
}

func (r *MenuRepository) CreateCategory(cat *entity.Category) error {
	return r.DB.Create(cat).Error
}
