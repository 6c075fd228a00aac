package repository

import (
	"github.com/Wezzer42/littlelemon/entity"

	"gorm.io/gorm"
)

type CartRepository struct{ DB *gorm.DB }

func NewCartRepository(db *gorm.DB) *CartRepository { return &CartRepository{DB: db} }

// เรียงตามลำดับที่ add (id asc)
func (r *CartRepository) ListByUser(userID uint) ([]entity.CartLine, error) {
	return r.listByUser(r.DB, userID)
}

// เวอร์ชันใน transaction — checkout ต้องอ่านตะกร้าใน tx เดียวกับที่ลบ
func (r *CartRepository) ListByUserTx(tx *gorm.DB, userID uint) ([]entity.CartLine, error) {
	return r.listByUser(tx, userID)
}

func (r *CartRepository) listByUser(db *gorm.DB, userID uint) ([]entity.CartLine, error) {
	var lines []entity.CartLine
	err := db.Where("user_id = ?", userID).Order("id ASC").Find(&lines).Error
	return lines, err
}

// เพิ่มแถวใหม่เสมอ ไม่ merge เมนูซ้ำ
func (r *CartRepository) Append(line *entity.CartLine) error {
	return r.DB.Create(line).Error
}

// Clear ลบทุกแถวของ user คืนจำนวนที่ลบ (ว่างอยู่แล้ว = 0, ไม่ error)
func (r *CartRepository) Clear(tx *gorm.DB, userID uint) (int64, error) {
	res := tx.Where("user_id = ?", userID).Delete(&entity.CartLine{})
	return res.RowsAffected, res.Error
}
