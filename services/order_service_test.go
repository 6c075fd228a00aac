package services

import (
	"testing"
	"time"

	"github.com/Wezzer42/littlelemon/entity"
	"github.com/Wezzer42/littlelemon/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func intPtr(v int) *int    { return &v }
func uintPtr(v uint) *uint { return &v }

// เติมตะกร้า Pizza 12.50×2 + Pasta 10.00×1 ให้ user
func fillCart(t *testing.T, db *gorm.DB, userID uint) {
	t.Helper()
	pizza, pasta := seedMenu(t, db)
	carts := newCartService(db)
	_, err := carts.Add(userID, pizza.ID, 2)
	require.NoError(t, err)
	_, err = carts.Add(userID, pasta.ID, 1)
	require.NoError(t, err)
}

func TestCheckoutFromCart(t *testing.T) {
	db := newTestDB(t)
	user := createUser(t, db, "c@test.io")
	fillCart(t, db, user.ID)
	svc := newOrderService(db)

	order, err := svc.Checkout(user.ID, entity.RoleCustomer, &CheckoutReq{ShippingAddress: "1 Lemon St"})
	require.NoError(t, err)

	assert.Equal(t, user.ID, order.UserID)
	assert.Equal(t, entity.OrderStatusPending, order.Status)
	assert.Nil(t, order.DeliveryCrewID)
	assert.Equal(t, int64(3500), order.Total) // 1250*2 + 1000
	assert.Equal(t, "1 Lemon St", order.ShippingAddress)
	require.Len(t, order.Items, 2)

	// หนึ่ง OrderItem ต่อหนึ่ง CartLine ราคา/จำนวน frozen ตามตะกร้า
	assert.Equal(t, int64(1250), order.Items[0].UnitPrice)
	assert.Equal(t, 2, order.Items[0].Quantity)
	assert.Equal(t, int64(2500), order.Items[0].Total)
	assert.Equal(t, int64(1000), order.Items[1].UnitPrice)
	assert.Equal(t, 1, order.Items[1].Quantity)

	// ตะกร้าต้องว่างหลัง checkout
	lines, _, err := newCartService(db).List(user.ID)
	require.NoError(t, err)
	assert.Empty(t, lines)

	// total = ผลรวม line total เสมอ
	var sum int64
	for _, it := range order.Items {
		sum += it.Total
	}
	assert.Equal(t, order.Total, sum)
}

func TestCheckoutUsesCartSnapshotNotCurrentPrice(t *testing.T) {
	db := newTestDB(t)
	pizza, _ := seedMenu(t, db)
	user := createUser(t, db, "c@test.io")
	carts := newCartService(db)
	_, err := carts.Add(user.ID, pizza.ID, 2)
	require.NoError(t, err)

	// ราคาขึ้น + เมนูถูกลบ หลังจากอยู่ในตะกร้าแล้ว → checkout ยังใช้ snapshot
	require.NoError(t, db.Model(&pizza).Update("price", 9999).Error)
	require.NoError(t, db.Delete(&pizza).Error)

	order, err := newOrderService(db).Checkout(user.ID, entity.RoleCustomer, &CheckoutReq{})
	require.NoError(t, err)
	assert.Equal(t, int64(2500), order.Total)
}

func TestCheckoutEmptyCart(t *testing.T) {
	db := newTestDB(t)
	user := createUser(t, db, "c@test.io")
	svc := newOrderService(db)

	_, err := svc.Checkout(user.ID, entity.RoleCustomer, &CheckoutReq{})
	assert.ErrorIs(t, err, ErrEmptyCart)
}

func TestCheckoutForbiddenForNonCustomers(t *testing.T) {
	db := newTestDB(t)
	user := createUser(t, db, "m@test.io")
	fillCart(t, db, user.ID)
	svc := newOrderService(db)

	_, err := svc.Checkout(user.ID, entity.RoleManager, &CheckoutReq{})
	assert.ErrorIs(t, err, ErrForbiddenRole)
	_, err = svc.Checkout(user.ID, entity.RoleDelivery, &CheckoutReq{})
	assert.ErrorIs(t, err, ErrForbiddenRole)

	// ห้ามแตะตะกร้าเมื่อถูกปฏิเสธ
	lines, _, err := newCartService(db).List(user.ID)
	require.NoError(t, err)
	assert.Len(t, lines, 2)
}

func TestCheckoutTwiceSecondSeesEmptyCart(t *testing.T) {
	db := newTestDB(t)
	user := createUser(t, db, "c@test.io")
	fillCart(t, db, user.ID)
	svc := newOrderService(db)

	_, err := svc.Checkout(user.ID, entity.RoleCustomer, &CheckoutReq{})
	require.NoError(t, err)

	// รอบสองจากตะกร้าเดิม → EmptyCart เหมือนไม่เคยมีของ
	_, err = svc.Checkout(user.ID, entity.RoleCustomer, &CheckoutReq{})
	assert.ErrorIs(t, err, ErrEmptyCart)

	var count int64
	require.NoError(t, db.Model(&entity.Order{}).Where("user_id = ?", user.ID).Count(&count).Error)
	assert.Equal(t, int64(1), count) // ได้ออเดอร์เดียวเท่านั้น
}

func checkoutFor(t *testing.T, db *gorm.DB, userID uint) *entity.Order {
	t.Helper()
	fillCart(t, db, userID)
	order, err := newOrderService(db).Checkout(userID, entity.RoleCustomer, &CheckoutReq{})
	require.NoError(t, err)
	return order
}

func TestVisibilityIsolationBetweenCustomers(t *testing.T) {
	db := newTestDB(t)
	alice := createUser(t, db, "alice@test.io")
	bob := createUser(t, db, "bob@test.io")
	svc := newOrderService(db)

	aliceOrder := checkoutFor(t, db, alice.ID)

	fillBobCart := newCartService(db)
	pizza := entity.MenuItem{}
	require.NoError(t, db.First(&pizza, "title = ?", "Pizza").Error)
	_, err := fillBobCart.Add(bob.ID, pizza.ID, 1)
	require.NoError(t, err)
	bobOrder, err := svc.Checkout(bob.ID, entity.RoleCustomer, &CheckoutReq{})
	require.NoError(t, err)

	// list ของ alice ไม่มีของ bob
	orders, err := svc.List(alice.ID, entity.RoleCustomer, repository.OrderFilter{})
	require.NoError(t, err)
	require.Len(t, orders, 1)
	assert.Equal(t, aliceOrder.ID, orders[0].ID)

	// detail ข้ามเจ้าของ → NotFound ไม่ใช่ Forbidden (กัน existence leak)
	_, err = svc.Detail(alice.ID, entity.RoleCustomer, bobOrder.ID)
	assert.ErrorIs(t, err, ErrNotFound)

	// manager เห็นหมด
	manager := createUser(t, db, "m@test.io")
	orders, err = svc.List(manager.ID, entity.RoleManager, repository.OrderFilter{})
	require.NoError(t, err)
	assert.Len(t, orders, 2)
}

func TestDeliveryCrewSeesOnlyAssignedOrders(t *testing.T) {
	db := newTestDB(t)
	customer := createUser(t, db, "c@test.io")
	crew := createUser(t, db, "d@test.io")
	manager := createUser(t, db, "m@test.io")
	svc := newOrderService(db)

	order := checkoutFor(t, db, customer.ID)

	// ยังไม่ assign → crew มองไม่เห็น
	orders, err := svc.List(crew.ID, entity.RoleDelivery, repository.OrderFilter{})
	require.NoError(t, err)
	assert.Empty(t, orders)
	_, err = svc.Detail(crew.ID, entity.RoleDelivery, order.ID)
	assert.ErrorIs(t, err, ErrNotFound)

	// manager assign แล้วถึงเห็น
	_, err = svc.Update(manager.ID, entity.RoleManager, order.ID,
		&UpdateOrderReq{DeliveryCrewID: uintPtr(crew.ID)}, true)
	require.NoError(t, err)

	orders, err = svc.List(crew.ID, entity.RoleDelivery, repository.OrderFilter{})
	require.NoError(t, err)
	require.Len(t, orders, 1)
	assert.Equal(t, order.ID, orders[0].ID)
}

func TestManagerUpdateAssignsCrewAndStatus(t *testing.T) {
	db := newTestDB(t)
	customer := createUser(t, db, "c@test.io")
	crew := createUser(t, db, "d@test.io")
	manager := createUser(t, db, "m@test.io")
	svc := newOrderService(db)

	order := checkoutFor(t, db, customer.ID)

	updated, err := svc.Update(manager.ID, entity.RoleManager, order.ID,
		&UpdateOrderReq{DeliveryCrewID: uintPtr(crew.ID), Status: intPtr(entity.OrderStatusPending)}, true)
	require.NoError(t, err)
	require.NotNil(t, updated.DeliveryCrewID)
	assert.Equal(t, crew.ID, *updated.DeliveryCrewID)
	assert.Equal(t, entity.OrderStatusPending, updated.Status)

	// total/owner ต้องไม่ขยับจากการ update
	assert.Equal(t, order.Total, updated.Total)
	assert.Equal(t, customer.ID, updated.UserID)
}

func TestManagerUpdateRejectsUnknownCrewAndBadStatus(t *testing.T) {
	db := newTestDB(t)
	customer := createUser(t, db, "c@test.io")
	manager := createUser(t, db, "m@test.io")
	svc := newOrderService(db)

	order := checkoutFor(t, db, customer.ID)

	_, err := svc.Update(manager.ID, entity.RoleManager, order.ID,
		&UpdateOrderReq{DeliveryCrewID: uintPtr(99999)}, true)
	assert.ErrorIs(t, err, ErrUnknownUser)

	for _, bad := range []int{-1, 2, 7} {
		_, err = svc.Update(manager.ID, entity.RoleManager, order.ID,
			&UpdateOrderReq{Status: intPtr(bad)}, true)
		assert.ErrorIs(t, err, ErrInvalidStatus)
	}

	// ค่าที่เก็บไว้ต้องไม่เปลี่ยนหลัง reject
	got, err := svc.Detail(manager.ID, entity.RoleManager, order.ID)
	require.NoError(t, err)
	assert.Equal(t, entity.OrderStatusPending, got.Status)
	assert.Nil(t, got.DeliveryCrewID)

	_, err = svc.Update(manager.ID, entity.RoleManager, 99999, &UpdateOrderReq{Status: intPtr(1)}, true)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestCrewUpdateRules(t *testing.T) {
	db := newTestDB(t)
	customer := createUser(t, db, "c@test.io")
	crew := createUser(t, db, "d@test.io")
	other := createUser(t, db, "d2@test.io")
	manager := createUser(t, db, "m@test.io")
	svc := newOrderService(db)

	order := checkoutFor(t, db, customer.ID)
	_, err := svc.Update(manager.ID, entity.RoleManager, order.ID,
		&UpdateOrderReq{DeliveryCrewID: uintPtr(crew.ID)}, true)
	require.NoError(t, err)

	// PUT (full replace) ถูกปัดเสมอ แม้ payload ถูกต้อง
	_, err = svc.Update(crew.ID, entity.RoleDelivery, order.ID,
		&UpdateOrderReq{Status: intPtr(1)}, false)
	assert.ErrorIs(t, err, ErrPartialUpdateRequired)

	// crew คนอื่น PATCH → มองไม่เห็น
	_, err = svc.Update(other.ID, entity.RoleDelivery, order.ID,
		&UpdateOrderReq{Status: intPtr(1)}, true)
	assert.ErrorIs(t, err, ErrNotFound)

	// ไม่ส่ง status มา
	_, err = svc.Update(crew.ID, entity.RoleDelivery, order.ID, &UpdateOrderReq{}, true)
	assert.ErrorIs(t, err, ErrMissingField)

	// ค่านอก {0,1}
	_, err = svc.Update(crew.ID, entity.RoleDelivery, order.ID,
		&UpdateOrderReq{Status: intPtr(5)}, true)
	assert.ErrorIs(t, err, ErrInvalidStatus)

	// crew ห้ามย้าย assignment — field นอก allow-list ถูกเมิน
	updated, err := svc.Update(crew.ID, entity.RoleDelivery, order.ID,
		&UpdateOrderReq{Status: intPtr(1), DeliveryCrewID: uintPtr(other.ID)}, true)
	require.NoError(t, err)
	assert.Equal(t, entity.OrderStatusDelivered, updated.Status)
	assert.Equal(t, crew.ID, *updated.DeliveryCrewID)

	// set ค่าเดิมซ้ำ = no-op success
	updated, err = svc.Update(crew.ID, entity.RoleDelivery, order.ID,
		&UpdateOrderReq{Status: intPtr(1)}, true)
	require.NoError(t, err)
	assert.Equal(t, entity.OrderStatusDelivered, updated.Status)
}

func TestCustomerUpdateAlwaysForbidden(t *testing.T) {
	db := newTestDB(t)
	customer := createUser(t, db, "c@test.io")
	svc := newOrderService(db)

	order := checkoutFor(t, db, customer.ID)

	// แม้เป็นออเดอร์ตัวเอง ทั้ง PUT และ PATCH
	_, err := svc.Update(customer.ID, entity.RoleCustomer, order.ID,
		&UpdateOrderReq{Status: intPtr(1)}, false)
	assert.ErrorIs(t, err, ErrForbiddenRole)
	_, err = svc.Update(customer.ID, entity.RoleCustomer, order.ID,
		&UpdateOrderReq{Status: intPtr(1)}, true)
	assert.ErrorIs(t, err, ErrForbiddenRole)
}

func TestDeleteManagerOnlyAndCascades(t *testing.T) {
	db := newTestDB(t)
	customer := createUser(t, db, "c@test.io")
	manager := createUser(t, db, "m@test.io")
	svc := newOrderService(db)

	order := checkoutFor(t, db, customer.ID)

	assert.ErrorIs(t, svc.Delete(customer.ID, entity.RoleCustomer, order.ID), ErrForbiddenRole)
	assert.ErrorIs(t, svc.Delete(customer.ID, entity.RoleDelivery, order.ID), ErrForbiddenRole)

	require.NoError(t, svc.Delete(manager.ID, entity.RoleManager, order.ID))

	_, err := svc.Detail(manager.ID, entity.RoleManager, order.ID)
	assert.ErrorIs(t, err, ErrNotFound)

	var itemCount int64
	require.NoError(t, db.Model(&entity.OrderItem{}).Where("order_id = ?", order.ID).Count(&itemCount).Error)
	assert.Equal(t, int64(0), itemCount)

	// ลบซ้ำ / ลบของที่ไม่มี → NotFound
	assert.ErrorIs(t, svc.Delete(manager.ID, entity.RoleManager, order.ID), ErrNotFound)
}

func TestListOrderingAndFilters(t *testing.T) {
	db := newTestDB(t)
	manager := createUser(t, db, "m@test.io")
	customer := createUser(t, db, "c@test.io")
	repo := repository.NewOrderRepository(db)
	svc := newOrderService(db)

	base := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
	mk := func(total int64, status int, age time.Duration) entity.Order {
		o := entity.Order{UserID: customer.ID, Status: status, Total: total}
		o.CreatedAt = base.Add(-age)
		require.NoError(t, repo.CreateOrder(db, &o))
		return o
	}
	oldCheap := mk(500, 0, 48*time.Hour)
	midDone := mk(2000, 1, 24*time.Hour)
	newExpensive := mk(9000, 0, 0)

	// default: ใหม่สุดก่อน
	orders, err := svc.List(manager.ID, entity.RoleManager, repository.OrderFilter{})
	require.NoError(t, err)
	require.Len(t, orders, 3)
	assert.Equal(t, newExpensive.ID, orders[0].ID)
	assert.Equal(t, oldCheap.ID, orders[2].ID)

	orders, err = svc.List(manager.ID, entity.RoleManager, repository.OrderFilter{Ordering: "total"})
	require.NoError(t, err)
	assert.Equal(t, oldCheap.ID, orders[0].ID)
	assert.Equal(t, newExpensive.ID, orders[2].ID)

	orders, err = svc.List(manager.ID, entity.RoleManager, repository.OrderFilter{Ordering: "-total"})
	require.NoError(t, err)
	assert.Equal(t, newExpensive.ID, orders[0].ID)

	orders, err = svc.List(manager.ID, entity.RoleManager, repository.OrderFilter{Ordering: "date"})
	require.NoError(t, err)
	assert.Equal(t, oldCheap.ID, orders[0].ID)

	status := 1
	orders, err = svc.List(manager.ID, entity.RoleManager, repository.OrderFilter{Status: &status})
	require.NoError(t, err)
	require.Len(t, orders, 1)
	assert.Equal(t, midDone.ID, orders[0].ID)
}
