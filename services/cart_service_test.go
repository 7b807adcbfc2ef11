package services

import (
	"testing"

	"lemonapi/entity"

	"github.com/stretchr/testify/require"
)

func TestCartAdd_TamperedPriceIsRecomputed(t *testing.T) {
	db := newTestDB(t)
	svc := newCartService(db)

	alice := createUser(t, db, "alice")
	pasta := createMenuItem(t, db, "pasta", 1200)

	line, err := svc.Add(customer(alice), &AddToCartIn{
		MenuItemID: pasta.ID,
		Quantity:   3,
		UnitPrice:  10,
		Price:      999, // tampered, must not survive
	})
	require.NoError(t, err)
	require.Equal(t, int64(30), line.Price)

	var stored entity.CartItem
	require.NoError(t, db.First(&stored, line.ID).Error)
	require.Equal(t, int64(30), stored.Price)
	require.Equal(t, int64(10), stored.UnitPrice)
	require.Equal(t, 3, stored.Quantity)
}

func TestCartAdd_UnitPriceDefaultsToMenuPrice(t *testing.T) {
	db := newTestDB(t)
	svc := newCartService(db)

	alice := createUser(t, db, "alice")
	pasta := createMenuItem(t, db, "pasta", 1200)

	line, err := svc.Add(customer(alice), &AddToCartIn{MenuItemID: pasta.ID, Quantity: 2})
	require.NoError(t, err)
	require.Equal(t, int64(1200), line.UnitPrice)
	require.Equal(t, int64(2400), line.Price)
}

func TestCartAdd_SameItemOverwritesLine(t *testing.T) {
	db := newTestDB(t)
	svc := newCartService(db)

	alice := createUser(t, db, "alice")
	pasta := createMenuItem(t, db, "pasta", 1200)

	_, err := svc.Add(customer(alice), &AddToCartIn{MenuItemID: pasta.ID, Quantity: 1})
	require.NoError(t, err)
	line, err := svc.Add(customer(alice), &AddToCartIn{MenuItemID: pasta.ID, Quantity: 5})
	require.NoError(t, err)
	require.Equal(t, int64(6000), line.Price)

	items, subtotal, err := svc.List(customer(alice))
	require.NoError(t, err)
	require.Len(t, items, 1)
	require.Equal(t, int64(6000), subtotal)
}

func TestCartAdd_UnknownMenuItem(t *testing.T) {
	db := newTestDB(t)
	svc := newCartService(db)

	alice := createUser(t, db, "alice")

	_, err := svc.Add(customer(alice), &AddToCartIn{MenuItemID: 42, Quantity: 1})
	require.ErrorIs(t, err, ErrNotFound)
}

func TestCartRemove_OwnLinesOnly(t *testing.T) {
	db := newTestDB(t)
	svc := newCartService(db)

	alice := createUser(t, db, "alice")
	bob := createUser(t, db, "bob")
	pasta := createMenuItem(t, db, "pasta", 1200)
	line := addCartLine(t, db, alice.ID, pasta.ID, 1, 1200)

	// bob cannot delete alice's line
	err := svc.Remove(customer(bob), line.ID)
	require.ErrorIs(t, err, ErrNotFound)

	require.NoError(t, svc.Remove(customer(alice), line.ID))

	items, _, err := svc.List(customer(alice))
	require.NoError(t, err)
	require.Empty(t, items)
}

func TestCartClear(t *testing.T) {
	db := newTestDB(t)
	svc := newCartService(db)

	alice := createUser(t, db, "alice")
	pasta := createMenuItem(t, db, "pasta", 1200)
	salad := createMenuItem(t, db, "salad", 700)
	addCartLine(t, db, alice.ID, pasta.ID, 1, 1200)
	addCartLine(t, db, alice.ID, salad.ID, 2, 700)

	require.NoError(t, svc.Clear(customer(alice)))

	items, subtotal, err := svc.List(customer(alice))
	require.NoError(t, err)
	require.Empty(t, items)
	require.Zero(t, subtotal)
}
