package repository

import (
	"github.com/Wezzer42/littlelemon/entity"

	"gorm.io/gorm"
)

type OrderRepository struct{ DB *gorm.DB }

func NewOrderRepository(db *gorm.DB) *OrderRepository { return &OrderRepository{DB: db} }

// scopeVisible เป็นจุดเดียวที่ตีความสิทธิ์การมองเห็น
// list กับ detail ใช้ตัวเดียวกัน → ไม่มีทางที่ not-found กับ not-visible จะต่างกัน
func (r *OrderRepository) scopeVisible(q *gorm.DB, callerID uint, role entity.Role) *gorm.DB {
	switch role {
	case entity.RoleManager:
		return q
	case entity.RoleDelivery:
		return q.Where("delivery_crew_id = ?", callerID)
	default:
		return q.Where("user_id = ?", callerID)
	}
}

type OrderFilter struct {
	Status       *int
	UserID       *uint
	DeliveryCrew *uint
	Ordering     string // date, total, status, id (นำหน้า - เพื่อ desc)
}

func (r *OrderRepository) ListVisible(callerID uint, role entity.Role, f OrderFilter) ([]entity.Order, error) {
	q := r.scopeVisible(r.DB.Model(&entity.Order{}), callerID, role).Preload("Items")

	if f.Status != nil {
		q = q.Where("status = ?", *f.Status)
	}
	if f.UserID != nil {
		q = q.Where("user_id = ?", *f.UserID)
	}
	if f.DeliveryCrew != nil {
		q = q.Where("delivery_crew_id = ?", *f.DeliveryCrew)
	}

	// default ใหม่สุดก่อน
	order := "created_at DESC"
	switch f.Ordering {
	case "date":
		order = "created_at"
	case "-date":
		order = "created_at DESC"
	case "total":
		order = "total"
	case "-total":
		order = "total DESC"
	case "status":
		order = "status"
	case "-status":
		order = "status DESC"
	case "id":
		order = "id"
	case "-id":
		order = "id DESC"
	}

	var out []entity.Order
	err := q.Order(order).Find(&out).Error
	return out, err
}

func (r *OrderRepository) GetVisible(callerID uint, role entity.Role, orderID uint) (*entity.Order, error) {
	var o entity.Order
	q := r.scopeVisible(r.DB.Where("id = ?", orderID), callerID, role)
	if err := q.Preload("Items").First(&o).Error; err != nil {
		return nil, err
	}
	return &o, nil
}

func (r *OrderRepository) CreateOrder(tx *gorm.DB, o *entity.Order) error {
	return tx.Create(o).Error
}

func (r *OrderRepository) CreateOrderItems(tx *gorm.DB, items []entity.OrderItem) error {
	if len(items) == 0 {
		return nil
	}
	return tx.Create(&items).Error
}

// UpdateFields อัปเดตเฉพาะ field ใน allow-list ด้วย write เดียว (atomic ต่อ record)
func (r *OrderRepository) UpdateFields(tx *gorm.DB, orderID uint, fields map[string]any) (int64, error) {
	res := tx.Model(&entity.Order{}).Where("id = ?", orderID).Updates(fields)
	return res.RowsAffected, res.Error
}

// UpdateStatusOwn เปลี่ยน status เฉพาะออเดอร์ที่ assign ให้ crew คนนี้ (guard ใน WHERE)
func (r *OrderRepository) UpdateStatusOwn(tx *gorm.DB, orderID, crewID uint, status int) (int64, error) {
	res := tx.Model(&entity.Order{}).
		Where("id = ? AND delivery_crew_id = ?", orderID, crewID).
		Update("status", status)
	return res.RowsAffected, res.Error
}

// DeleteCascade ลบ order พร้อม items (ใน tx เดียว)
func (r *OrderRepository) DeleteCascade(tx *gorm.DB, orderID uint) (int64, error) {
	if err := tx.Where("order_id = ?", orderID).Delete(&entity.OrderItem{}).Error; err != nil {
		return 0, err
	}
	res := tx.Delete(&entity.Order{}, orderID)
	return res.RowsAffected, res.Error
}
