package services

import (
	"fmt"
	"testing"

	"lemonapi/entity"
	"lemonapi/repository"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	require.NoError(t, db.AutoMigrate(
		&entity.User{}, &entity.Group{},
		&entity.Category{}, &entity.MenuItem{},
		&entity.CartItem{},
		&entity.Order{}, &entity.OrderItem{},
	))

	// same groups the server seeds at startup
	for _, name := range []string{repository.GroupManager, repository.GroupDeliveryCrew} {
		require.NoError(t, db.FirstOrCreate(&entity.Group{}, entity.Group{Name: name}).Error)
	}
	return db
}

func createUser(t *testing.T, db *gorm.DB, username string) *entity.User {
	t.Helper()
	u := &entity.User{
		Username: username,
		Email:    username + "@example.com",
		Password: "x",
	}
	require.NoError(t, db.Create(u).Error)
	return u
}

func createMenuItem(t *testing.T, db *gorm.DB, title string, price int64) *entity.MenuItem {
	t.Helper()
	cat := &entity.Category{Slug: "main-" + title, Title: "Main"}
	require.NoError(t, db.Create(cat).Error)
	m := &entity.MenuItem{Title: title, Price: price, CategoryID: cat.ID}
	require.NoError(t, db.Create(m).Error)
	return m
}

func addCartLine(t *testing.T, db *gorm.DB, userID, menuItemID uint, qty int, unit int64) *entity.CartItem {
	t.Helper()
	line := &entity.CartItem{
		UserID:     userID,
		MenuItemID: menuItemID,
		Quantity:   qty,
		UnitPrice:  unit,
		Price:      unit * int64(qty),
	}
	require.NoError(t, db.Create(line).Error)
	return line
}

func addToGroup(t *testing.T, db *gorm.DB, user *entity.User, groupName string) {
	t.Helper()
	var g entity.Group
	require.NoError(t, db.FirstOrCreate(&g, entity.Group{Name: groupName}).Error)
	require.NoError(t, db.Model(user).Association("Groups").Append(&g))
}

func newOrderService(db *gorm.DB) *OrderService {
	return NewOrderService(db, repository.NewOrderRepository(db), repository.NewCartRepository(db))
}

func newCartService(db *gorm.DB) *CartService {
	return NewCartService(db, repository.NewCartRepository(db), repository.NewMenuRepository(db))
}

func newGroupService(db *gorm.DB) *GroupService {
	return NewGroupService(repository.NewGroupRepository(db), repository.NewUserRepository(db))
}

func customer(u *entity.User) Principal {
	return Principal{UserID: u.ID, Role: RoleCustomer}
}

func manager(u *entity.User) Principal {
	return Principal{UserID: u.ID, Role: RoleManager}
}

func crew(u *entity.User) Principal {
	return Principal{UserID: u.ID, Role: RoleDeliveryCrew}
}
