package order_test

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abaixodezero/storefront/internal/order"
	"github.com/abaixodezero/storefront/internal/store"
)

func testOrder(id, name, phone string, status order.Status) order.Order {
	return order.Order{
		ID:            id,
		CustomerName:  name,
		CustomerPhone: phone,
		DeliveryType:  order.DeliveryPickup,
		Status:        status,
		Subtotal:      decimal.RequireFromString("10.00"),
		DeliveryFee:   decimal.Zero,
		Total:         decimal.RequireFromString("10.00"),
		CreatedAt:     time.Now(),
	}
}

func newRegistry() order.Registry {
	return order.NewStoreRegistry(store.NewMemory())
}

func TestAppendAndListKeepInsertionOrder(t *testing.T) {
	ctx := context.Background()
	reg := newRegistry()

	require.NoError(t, reg.Append(ctx, testOrder("1", "Ana", "111", order.StatusPending)))
	require.NoError(t, reg.Append(ctx, testOrder("2", "Bia", "222", order.StatusPending)))
	require.NoError(t, reg.Append(ctx, testOrder("3", "Caio", "333", order.StatusPending)))

	out, err := reg.List(ctx, order.Filter{})
	require.NoError(t, err)
	require.Len(t, out, 3)
	assert.Equal(t, []string{"1", "2", "3"}, []string{out[0].ID, out[1].ID, out[2].ID})
}

func TestListFilterByStatus(t *testing.T) {
	ctx := context.Background()
	reg := newRegistry()
	require.NoError(t, reg.Append(ctx, testOrder("1", "Ana", "111", order.StatusPending)))
	require.NoError(t, reg.Append(ctx, testOrder("2", "Bia", "222", order.StatusConfirmed)))

	out, err := reg.List(ctx, order.Filter{Status: order.StatusConfirmed})
	require.NoError(t, err)
	require.Len(t, out, 1)
	assert.Equal(t, "2", out[0].ID)
}

func TestListFilterByQuery(t *testing.T) {
	ctx := context.Background()
	reg := newRegistry()
	require.NoError(t, reg.Append(ctx, testOrder("1700-aa", "Ana Souza", "17991111111", order.StatusPending)))
	require.NoError(t, reg.Append(ctx, testOrder("1701-bb", "Bia Lima", "17992222222", order.StatusPending)))

	byName, err := reg.List(ctx, order.Filter{Query: "ana"})
	require.NoError(t, err)
	require.Len(t, byName, 1)
	assert.Equal(t, "1700-aa", byName[0].ID)

	byPhone, err := reg.List(ctx, order.Filter{Query: "2222"})
	require.NoError(t, err)
	require.Len(t, byPhone, 1)
	assert.Equal(t, "1701-bb", byPhone[0].ID)

	byID, err := reg.List(ctx, order.Filter{Query: "1701"})
	require.NoError(t, err)
	require.Len(t, byID, 1)
}

func TestListDoesNotMutateStoredOrder(t *testing.T) {
	ctx := context.Background()
	reg := newRegistry()
	require.NoError(t, reg.Append(ctx, testOrder("1", "Ana", "111", order.StatusPending)))
	require.NoError(t, reg.Append(ctx, testOrder("2", "Bia", "222", order.StatusPending)))

	_, err := reg.List(ctx, order.Filter{Query: "bia"})
	require.NoError(t, err)

	out, err := reg.List(ctx, order.Filter{})
	require.NoError(t, err)
	require.Len(t, out, 2)
	assert.Equal(t, "1", out[0].ID)
}

func TestUpdateStatus(t *testing.T) {
	ctx := context.Background()
	reg := newRegistry()
	require.NoError(t, reg.Append(ctx, testOrder("1", "Ana", "111", order.StatusPending)))

	require.NoError(t, reg.UpdateStatus(ctx, "1", order.StatusConfirmed))
	o, err := reg.GetByID(ctx, "1")
	require.NoError(t, err)
	assert.Equal(t, order.StatusConfirmed, o.Status)

	// administrative override: any status may move to any other
	require.NoError(t, reg.UpdateStatus(ctx, "1", order.StatusCancelled))
	require.NoError(t, reg.UpdateStatus(ctx, "1", order.StatusCompleted))
}

func TestUpdateStatusErrors(t *testing.T) {
	ctx := context.Background()
	reg := newRegistry()
	require.NoError(t, reg.Append(ctx, testOrder("1", "Ana", "111", order.StatusPending)))

	assert.ErrorIs(t, reg.UpdateStatus(ctx, "1", order.Status("shipped")), order.ErrInvalidStatus)
	assert.ErrorIs(t, reg.UpdateStatus(ctx, "ghost", order.StatusConfirmed), order.ErrNotFound)
}

func TestDelete(t *testing.T) {
	ctx := context.Background()
	reg := newRegistry()
	require.NoError(t, reg.Append(ctx, testOrder("1", "Ana", "111", order.StatusPending)))

	require.NoError(t, reg.Delete(ctx, "1"))
	_, err := reg.GetByID(ctx, "1")
	assert.ErrorIs(t, err, order.ErrNotFound)

	assert.ErrorIs(t, reg.Delete(ctx, "1"), order.ErrNotFound)
}

func TestRegistryRoundTrip(t *testing.T) {
	ctx := context.Background()
	st := store.NewMemory()
	reg := order.NewStoreRegistry(st)

	in := testOrder("1", "Ana", "111", order.StatusPending)
	in.Items = []order.Item{{
		ProductID: "a",
		Name:      "Produto A",
		Quantity:  2,
		UnitPrice: decimal.RequireFromString("25.00"),
		LineTotal: decimal.RequireFromString("50.00"),
	}}
	require.NoError(t, reg.Append(ctx, in))

	out, err := order.NewStoreRegistry(st).GetByID(ctx, "1")
	require.NoError(t, err)
	assert.Equal(t, in.CustomerName, out.CustomerName)
	require.Len(t, out.Items, 1)
	assert.True(t, out.Items[0].LineTotal.Equal(in.Items[0].LineTotal))
}
