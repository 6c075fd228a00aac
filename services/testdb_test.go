package services

import (
	"fmt"
	"strings"
	"testing"

	"github.com/Wezzer42/littlelemon/entity"
	"github.com/Wezzer42/littlelemon/repository"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// in-memory sqlite หนึ่งก้อนต่อหนึ่งเทส (ชื่อ db ตามชื่อเทส กันชนกัน)
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", strings.ReplaceAll(t.Name(), "/", "_"))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	require.NoError(t, err)

	err = db.AutoMigrate(
		&entity.User{}, &entity.Group{},
		&entity.Category{}, &entity.MenuItem{},
		&entity.CartLine{},
		&entity.Order{}, &entity.OrderItem{},
	)
	require.NoError(t, err)
	return db
}

func createUser(t *testing.T, db *gorm.DB, email string) *entity.User {
	t.Helper()
	u := &entity.User{Email: email, Password: "x", FirstName: "Test", LastName: "User"}
	require.NoError(t, db.Create(u).Error)
	return u
}

func addToGroup(t *testing.T, db *gorm.DB, userID uint, group string) {
	t.Helper()
	repo := repository.NewUserRepository(db)
	require.NoError(t, repo.AddToGroup(userID, group))
}

func seedMenu(t *testing.T, db *gorm.DB) (pizza, pasta entity.MenuItem) {
	t.Helper()
	cat := entity.Category{Slug: "mains", Title: "Mains"}
	require.NoError(t, db.Create(&cat).Error)
	pizza = entity.MenuItem{Title: "Pizza", Price: 1250, CategoryID: cat.ID}
	pasta = entity.MenuItem{Title: "Pasta", Price: 1000, CategoryID: cat.ID}
	require.NoError(t, db.Create(&pizza).Error)
	require.NoError(t, db.Create(&pasta).Error)
	return pizza, pasta
}

func newCartService(db *gorm.DB) *CartService {
	return NewCartService(db, repository.NewCartRepository(db), repository.NewMenuRepository(db))
}

func newOrderService(db *gorm.DB) *OrderService {
	return NewOrderService(db,
		repository.NewOrderRepository(db),
		repository.NewCartRepository(db),
		repository.NewUserRepository(db),
	)
}
