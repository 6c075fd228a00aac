package services

import (
	"errors"

	"github.com/Wezzer42/littlelemon/entity"
	"github.com/Wezzer42/littlelemon/repository"

	"gorm.io/gorm"
)

type CartService struct {
	DB       *gorm.DB
	CartRepo *repository.CartRepository
	MenuRepo *repository.MenuRepository // catalog = แหล่งราคาเดียวตอน add
}

func NewCartService(db *gorm.DB, cr *repository.CartRepository, mr *repository.MenuRepository) *CartService {
	return &CartService{DB: db, CartRepo: cr, MenuRepo: mr}
}

// List คืนรายการตามลำดับ add + subtotal ที่คำนวณสด
func (s *CartService) List(userID uint) ([]entity.CartLine, int64, error) {
	lines, err := s.CartRepo.ListByUser(userID)
	if err != nil {
		return nil, 0, err
	}
	var subtotal int64
	for _, l := range lines {
		subtotal += l.Total
	}
	return lines, subtotal, nil
}

// Add ตรวจก่อนเขียนเสมอ: qty > 0, เมนูต้องมีจริง แล้วค่อย snapshot ราคา
func (s *CartService) Add(userID, menuItemID uint, quantity int) (*entity.CartLine, error) {
	if quantity <= 0 {
		return nil, ErrInvalidQuantity
	}

	price, err := s.MenuRepo.PriceOf(menuItemID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUnknownMenuItem
		}
		return nil, err
	}

	line := &entity.CartLine{
		UserID:     userID,
		MenuItemID: menuItemID,
		Quantity:   quantity,
		UnitPrice:  price,
		Total:      price * int64(quantity),
	}
	if err := s.CartRepo.Append(line); err != nil {
		return nil, err
	}
	return line, nil
}

// Clear idempotent — ตะกร้าว่างก็สำเร็จ คืน 0
func (s *CartService) Clear(userID uint) (int64, error) {
	var count int64
	err := s.DB.Transaction(func(tx *gorm.DB) error {
		n, err := s.CartRepo.Clear(tx, userID)
		if err != nil {
			return err
		}
		count = n
		return nil
	})
	return count, err
}
