package services

import (
	"testing"

	"lemonapi/entity"

	"github.com/stretchr/testify/require"
)

func TestPlaceOrder_SnapshotsCartAndEmptiesIt(t *testing.T) {
	db := newTestDB(t)
	svc := newOrderService(db)

	alice := createUser(t, db, "alice")
	pasta := createMenuItem(t, db, "pasta", 1200)
	salad := createMenuItem(t, db, "salad", 700)
	addCartLine(t, db, alice.ID, pasta.ID, 2, 1200)
	addCartLine(t, db, alice.ID, salad.ID, 1, 700)

	out, err := svc.PlaceOrder(customer(alice))
	require.NoError(t, err)
	require.NotZero(t, out.ID)
	require.NotEmpty(t, out.Code)
	require.Equal(t, int64(2*1200+700), out.Total)

	var order entity.Order
	require.NoError(t, db.Preload("Items").First(&order, out.ID).Error)
	require.Equal(t, alice.ID, order.UserID)
	require.False(t, order.Status)
	require.Equal(t, out.Total, order.Total)
	require.Len(t, order.Items, 2)
	for _, it := range order.Items {
		require.Equal(t, it.UnitPrice*int64(it.Quantity), it.Price)
	}

	var remaining int64
	require.NoError(t, db.Model(&entity.CartItem{}).
		Where("user_id = ?", alice.ID).Count(&remaining).Error)
	require.Zero(t, remaining)
}

func TestPlaceOrder_UsesStoredLinePriceNotMenuPrice(t *testing.T) {
	db := newTestDB(t)
	svc := newOrderService(db)

	alice := createUser(t, db, "alice")
	pasta := createMenuItem(t, db, "pasta", 1200)
	addCartLine(t, db, alice.ID, pasta.ID, 1, 1000) // older price in the cart

	// menu price moves after the line was written
	require.NoError(t, db.Model(pasta).Update("price", 9999).Error)

	out, err := svc.PlaceOrder(customer(alice))
	require.NoError(t, err)
	require.Equal(t, int64(1000), out.Total)
}

func TestPlaceOrder_EmptyCart(t *testing.T) {
	db := newTestDB(t)
	svc := newOrderService(db)

	alice := createUser(t, db, "alice")

	out, err := svc.PlaceOrder(customer(alice))
	require.NoError(t, err)
	require.Zero(t, out.Total)

	var items int64
	require.NoError(t, db.Model(&entity.OrderItem{}).
		Where("order_id = ?", out.ID).Count(&items).Error)
	require.Zero(t, items)
}

func TestPlaceOrder_TwoCheckoutsProduceTwoOrders(t *testing.T) {
	db := newTestDB(t)
	svc := newOrderService(db)

	alice := createUser(t, db, "alice")

	first, err := svc.PlaceOrder(customer(alice))
	require.NoError(t, err)
	second, err := svc.PlaceOrder(customer(alice))
	require.NoError(t, err)
	require.NotEqual(t, first.ID, second.ID)
	require.NotEqual(t, first.Code, second.Code)

	var count int64
	require.NoError(t, db.Model(&entity.Order{}).
		Where("user_id = ?", alice.ID).Count(&count).Error)
	require.Equal(t, int64(2), count)
}

func TestList_RoleVisibility(t *testing.T) {
	db := newTestDB(t)
	svc := newOrderService(db)

	owner := createUser(t, db, "owner")
	boss := createUser(t, db, "boss")
	rider := createUser(t, db, "rider")
	other := createUser(t, db, "other")

	pasta := createMenuItem(t, db, "pasta", 1200)
	addCartLine(t, db, owner.ID, pasta.ID, 1, 1200)
	shared, err := svc.PlaceOrder(customer(owner))
	require.NoError(t, err)

	addCartLine(t, db, other.ID, pasta.ID, 1, 1200)
	_, err = svc.PlaceOrder(customer(other))
	require.NoError(t, err)

	require.NoError(t, svc.PartialUpdate(manager(boss), shared.ID, &UpdateOrderIn{
		DeliveryCrewID: &rider.ID,
	}))

	ids := func(orders []entity.Order) []uint {
		out := make([]uint, 0, len(orders))
		for _, o := range orders {
			out = append(out, o.ID)
		}
		return out
	}

	// manager sees every order
	got, err := svc.List(manager(boss))
	require.NoError(t, err)
	require.Len(t, got, 2)
	require.Contains(t, ids(got), shared.ID)

	// delivery crew sees only assigned orders
	got, err = svc.List(crew(rider))
	require.NoError(t, err)
	require.Len(t, got, 1)
	require.Equal(t, shared.ID, got[0].ID)

	// customer sees only their own
	got, err = svc.List(customer(owner))
	require.NoError(t, err)
	require.Len(t, got, 1)
	require.Equal(t, shared.ID, got[0].ID)
}

// The single-order read stays owner-only for every role, narrower than
// the listing rule on purpose; see DESIGN.md.
func TestGet_StrictOwnerEquality(t *testing.T) {
	db := newTestDB(t)
	svc := newOrderService(db)

	owner := createUser(t, db, "owner")
	boss := createUser(t, db, "boss")

	placed, err := svc.PlaceOrder(customer(owner))
	require.NoError(t, err)

	got, err := svc.Get(customer(owner), placed.ID)
	require.NoError(t, err)
	require.Equal(t, placed.ID, got.ID)

	_, err = svc.Get(manager(boss), placed.ID)
	require.ErrorIs(t, err, ErrForbidden)

	_, err = svc.Get(customer(owner), placed.ID+100)
	require.ErrorIs(t, err, ErrNotFound)
}

func TestMutationGating(t *testing.T) {
	db := newTestDB(t)
	svc := newOrderService(db)

	owner := createUser(t, db, "owner")
	boss := createUser(t, db, "boss")
	rider := createUser(t, db, "rider")

	placed, err := svc.PlaceOrder(customer(owner))
	require.NoError(t, err)

	delivered := true

	// customer cannot PATCH
	err = svc.PartialUpdate(customer(owner), placed.ID, &UpdateOrderIn{Status: &delivered})
	require.ErrorIs(t, err, ErrForbidden)

	// delivery crew can PATCH status only
	err = svc.PartialUpdate(crew(rider), placed.ID, &UpdateOrderIn{Status: &delivered})
	require.NoError(t, err)
	var o entity.Order
	require.NoError(t, db.First(&o, placed.ID).Error)
	require.True(t, o.Status)

	// but not reassign the crew
	err = svc.PartialUpdate(crew(rider), placed.ID, &UpdateOrderIn{DeliveryCrewID: &rider.ID})
	require.ErrorIs(t, err, ErrForbidden)

	// PUT is manager only and requires the full payload
	err = svc.Update(crew(rider), placed.ID, &UpdateOrderIn{Status: &delivered, DeliveryCrewID: &rider.ID})
	require.ErrorIs(t, err, ErrForbidden)
	err = svc.Update(manager(boss), placed.ID, &UpdateOrderIn{Status: &delivered})
	require.Error(t, err)
	err = svc.Update(manager(boss), placed.ID, &UpdateOrderIn{Status: &delivered, DeliveryCrewID: &rider.ID})
	require.NoError(t, err)

	// total survives every mutation untouched
	require.NoError(t, db.First(&o, placed.ID).Error)
	require.Equal(t, placed.Total, o.Total)

	// DELETE is manager only and cascades to the lines
	err = svc.Delete(crew(rider), placed.ID)
	require.ErrorIs(t, err, ErrForbidden)
	err = svc.Delete(customer(owner), placed.ID)
	require.ErrorIs(t, err, ErrForbidden)
	require.NoError(t, svc.Delete(manager(boss), placed.ID))

	var lines int64
	require.NoError(t, db.Model(&entity.OrderItem{}).
		Where("order_id = ?", placed.ID).Count(&lines).Error)
	require.Zero(t, lines)

	err = svc.Delete(manager(boss), placed.ID)
	require.ErrorIs(t, err, ErrNotFound)
}
