package services

import (
	"errors"

	"github.com/Wezzer42/littlelemon/entity"
	"github.com/Wezzer42/littlelemon/repository"

	"gorm.io/gorm"
)

type OrderService struct {
	DB       *gorm.DB
	Repo     *repository.OrderRepository
	CartRepo *repository.CartRepository
	UserRepo *repository.UserRepository
}

func NewOrderService(
	db *gorm.DB,
	repo *repository.OrderRepository,
	cartRepo *repository.CartRepository,
	userRepo *repository.UserRepository,
) *OrderService {
	return &OrderService{DB: db, Repo: repo, CartRepo: cartRepo, UserRepo: userRepo}
}

// ----- DTOs from Controller -----

type CheckoutReq struct {
	ShippingAddress string `json:"shippingAddress"`
}

type UpdateOrderReq struct {
	DeliveryCrewID *uint `json:"deliveryCrewId"`
	Status         *int  `json:"status"`
	// field อื่นใน payload ถูกเมินทั้งหมด (allow-list เท่านั้น)
}

// ----- Checkout (cart → order) -----

// Checkout แปลงตะกร้าเป็นออเดอร์ใน transaction เดียว:
// อ่านตะกร้าใน tx → สร้าง order + items จาก snapshot เดิมในตะกร้า
// (ไม่อ่าน catalog ซ้ำ) → ลบตะกร้า ถ้าสองคำขอแข่งกัน ตัวที่แพ้เห็น
// ตะกร้าว่างและได้ ErrEmptyCart เหมือนไม่เคยมีของ
func (s *OrderService) Checkout(userID uint, role entity.Role, in *CheckoutReq) (*entity.Order, error) {
	if role != entity.RoleCustomer {
		return nil, ErrForbiddenRole
	}

	var out *entity.Order
	err := s.DB.Transaction(func(tx *gorm.DB) error {
		lines, err := s.CartRepo.ListByUserTx(tx, userID)
		if err != nil {
			return err
		}
		if len(lines) == 0 {
			return ErrEmptyCart
		}

		var total int64
		for _, l := range lines {
			total += l.Total
		}

		order := entity.Order{
			UserID:          userID,
			Status:          entity.OrderStatusPending,
			Total:           total,
			ShippingAddress: in.ShippingAddress,
		}
		if err := s.Repo.CreateOrder(tx, &order); err != nil {
			return err
		}

		// ย้าย snapshot จาก cart → order ทีละบรรทัด
		items := make([]entity.OrderItem, 0, len(lines))
		for _, l := range lines {
			items = append(items, entity.OrderItem{
				OrderID:    order.ID,
				MenuItemID: l.MenuItemID,
				Quantity:   l.Quantity,
				UnitPrice:  l.UnitPrice,
				Total:      l.Total,
			})
		}
		if err := s.Repo.CreateOrderItems(tx, items); err != nil {
			return err
		}

		deleted, err := s.CartRepo.Clear(tx, userID)
		if err != nil {
			return err
		}
		if deleted != int64(len(lines)) {
			// ตะกร้าถูกแย่งไปแล้วระหว่างทาง → ถือว่าว่าง rollback ทั้งก้อน
			return ErrEmptyCart
		}

		order.Items = items
		out = &order
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// ----- List & Detail (visibility = security boundary) -----

func (s *OrderService) List(callerID uint, role entity.Role, f repository.OrderFilter) ([]entity.Order, error) {
	return s.Repo.ListVisible(callerID, role, f)
}

func (s *OrderService) Detail(callerID uint, role entity.Role, orderID uint) (*entity.Order, error) {
	o, err := s.Repo.GetVisible(callerID, role, orderID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return o, nil
}

// ----- Update (assignment / status) -----

// partial = true เมื่อมาจาก PATCH; delivery crew ใช้ได้เฉพาะ partial
func (s *OrderService) Update(callerID uint, role entity.Role, orderID uint, in *UpdateOrderReq, partial bool) (*entity.Order, error) {
	switch role {
	case entity.RoleManager:
		return s.managerUpdate(callerID, orderID, in)
	case entity.RoleDelivery:
		return s.crewUpdate(callerID, orderID, in, partial)
	default:
		// ลูกค้าห้ามแก้ออเดอร์ แม้ของตัวเอง
		return nil, ErrForbiddenRole
	}
}

func (s *OrderService) managerUpdate(callerID, orderID uint, in *UpdateOrderReq) (*entity.Order, error) {
	if _, err := s.Detail(callerID, entity.RoleManager, orderID); err != nil {
		return nil, err
	}

	// ตรวจทุกอย่างก่อน ค่อยเขียนครั้งเดียว
	fields := map[string]any{}
	if in.DeliveryCrewID != nil {
		ok, err := s.UserRepo.Exists(*in.DeliveryCrewID)
		if err != nil {
			return nil, err
		}
		if !ok {
			return nil, ErrUnknownUser
		}
		fields["delivery_crew_id"] = *in.DeliveryCrewID
	}
	if in.Status != nil {
		if *in.Status != entity.OrderStatusPending && *in.Status != entity.OrderStatusDelivered {
			return nil, ErrInvalidStatus
		}
		fields["status"] = *in.Status
	}

	if len(fields) > 0 {
		err := s.DB.Transaction(func(tx *gorm.DB) error {
			_, err := s.Repo.UpdateFields(tx, orderID, fields)
			return err
		})
		if err != nil {
			return nil, err
		}
	}
	return s.Detail(callerID, entity.RoleManager, orderID)
}

func (s *OrderService) crewUpdate(callerID, orderID uint, in *UpdateOrderReq, partial bool) (*entity.Order, error) {
	if !partial {
		return nil, ErrPartialUpdateRequired
	}

	// ออเดอร์ที่ไม่ได้ assign ให้เรา = มองไม่เห็น
	if _, err := s.Detail(callerID, entity.RoleDelivery, orderID); err != nil {
		return nil, err
	}

	if in.Status == nil {
		return nil, ErrMissingField
	}
	if *in.Status != entity.OrderStatusPending && *in.Status != entity.OrderStatusDelivered {
		return nil, ErrInvalidStatus
	}

	err := s.DB.Transaction(func(tx *gorm.DB) error {
		// guard ใน WHERE กันเคสถูก re-assign ระหว่างอ่านกับเขียน
		affected, err := s.Repo.UpdateStatusOwn(tx, orderID, callerID, *in.Status)
		if err != nil {
			return err
		}
		if affected == 0 {
			return ErrNotFound
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return s.Detail(callerID, entity.RoleDelivery, orderID)
}

// ----- Delete -----

func (s *OrderService) Delete(callerID uint, role entity.Role, orderID uint) error {
	if role != entity.RoleManager {
		return ErrForbiddenRole
	}
	return s.DB.Transaction(func(tx *gorm.DB) error {
		affected, err := s.Repo.DeleteCascade(tx, orderID)
		if err != nil {
			return err
		}
		if affected == 0 {
			return ErrNotFound
		}
		return nil
	})
}
