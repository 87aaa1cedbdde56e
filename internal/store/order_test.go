package store

import (
	"context"
	"strings"
	"testing"
	"time"

	"storefront/internal/database"
	"storefront/internal/model"

	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/require"
)

func itemScan(it model.OrderItem) func(dest ...any) error {
	return func(dest ...any) error {
		*dest[0].(*int) = it.ID
		*dest[1].(*int) = it.OrderID
		*dest[2].(*int) = it.ProductID
		*dest[3].(*string) = it.Name
		*dest[4].(*string) = it.Image
		*dest[5].(*int) = it.Qty
		*dest[6].(*float64) = it.Price
		return nil
	}
}

func TestCreateOrder(t *testing.T) {
	now := time.Now()
	itemInserts := 0
	db := &database.FakeDB{
		QueryRowFn: func(_ context.Context, sql string, args ...any) pgx.Row {
			if strings.Contains(sql, "INSERT INTO orders") {
				require.Equal(t, []any{4, "1 Main St", "Springfield", "12345", "USA", "PayPal", 119.98}, args)
				return &fakeRow{scanFn: func(dest ...any) error {
					*dest[0].(*int) = 11
					*dest[1].(*bool) = false
					*dest[2].(*bool) = false
					*dest[3].(*time.Time) = now
					return nil
				}}
			}
			itemInserts++
			require.Equal(t, 11, args[0])
			return &fakeRow{scanFn: func(dest ...any) error {
				*dest[0].(*int) = 100 + itemInserts
				return nil
			}}
		},
	}

	order, err := CreateOrder(context.Background(), db, &model.Order{
		UserID: 4,
		Items: []model.OrderItem{
			{ProductID: 1, Name: "Keyboard", Image: "img", Qty: 2, Price: 59.99},
			{ProductID: 2, Name: "Mouse", Image: "img", Qty: 1, Price: 19.99},
		},
		Address:       "1 Main St",
		City:          "Springfield",
		PostalCode:    "12345",
		Country:       "USA",
		PaymentMethod: "PayPal",
		TotalPrice:    119.98,
	})
	require.NoError(t, err)
	require.Equal(t, 11, order.ID)
	require.Equal(t, 2, itemInserts)
	require.Equal(t, 101, order.Items[0].ID)
	require.Equal(t, 11, order.Items[0].OrderID)
	require.Equal(t, 102, order.Items[1].ID)
}

func TestGetOrderByID(t *testing.T) {
	now := time.Now()
	db := &database.FakeDB{
		QueryRowFn: func(_ context.Context, sql string, args ...any) pgx.Row {
			require.Contains(t, sql, "JOIN users")
			require.Equal(t, []any{11}, args)
			return &fakeRow{scanFn: func(dest ...any) error {
				*dest[0].(*int) = 11
				*dest[1].(*int) = 4
				*dest[2].(*string) = "1 Main St"
				*dest[3].(*string) = "Springfield"
				*dest[4].(*string) = "12345"
				*dest[5].(*string) = "USA"
				*dest[6].(*string) = "PayPal"
				*dest[7].(*float64) = 119.98
				*dest[8].(*bool) = false
				*dest[9].(**time.Time) = nil
				*dest[10].(*bool) = false
				*dest[11].(**time.Time) = nil
				*dest[12].(*time.Time) = now
				*dest[13].(*string) = "Alice"
				*dest[14].(*string) = "alice@example.com"
				return nil
			}}
		},
		QueryFn: func(_ context.Context, sql string, args ...any) (pgx.Rows, error) {
			require.Contains(t, sql, "order_items")
			require.Equal(t, []any{11}, args)
			return &fakeRows{scans: []func(dest ...any) error{
				itemScan(model.OrderItem{ID: 101, OrderID: 11, ProductID: 1, Name: "Keyboard", Image: "img", Qty: 2, Price: 59.99}),
			}}, nil
		},
	}

	order, err := GetOrderByID(context.Background(), db, 11)
	require.NoError(t, err)
	require.Equal(t, "Alice", order.UserName)
	require.Equal(t, "alice@example.com", order.UserEmail)
	require.Len(t, order.Items, 1)
	require.Equal(t, "Keyboard", order.Items[0].Name)

	db.QueryRowFn = func(context.Context, string, ...any) pgx.Row {
		return &fakeRow{scanFn: func(...any) error { return pgx.ErrNoRows }}
	}
	_, err = GetOrderByID(context.Background(), db, 99)
	require.ErrorIs(t, err, pgx.ErrNoRows)
}

func TestMarkOrderDelivered(t *testing.T) {
	now := time.Now()
	delivered := now
	db := &database.FakeDB{
		QueryRowFn: func(_ context.Context, sql string, args ...any) pgx.Row {
			require.Contains(t, sql, "is_delivered = TRUE")
			require.Equal(t, []any{11}, args)
			return &fakeRow{scanFn: func(dest ...any) error {
				*dest[0].(*int) = 11
				*dest[1].(*int) = 4
				*dest[2].(*string) = "1 Main St"
				*dest[3].(*string) = "Springfield"
				*dest[4].(*string) = "12345"
				*dest[5].(*string) = "USA"
				*dest[6].(*string) = "PayPal"
				*dest[7].(*float64) = 119.98
				*dest[8].(*bool) = false
				*dest[9].(**time.Time) = nil
				*dest[10].(*bool) = true
				*dest[11].(**time.Time) = &delivered
				*dest[12].(*time.Time) = now
				return nil
			}}
		},
		QueryFn: func(context.Context, string, ...any) (pgx.Rows, error) {
			return &fakeRows{}, nil
		},
	}

	order, err := MarkOrderDelivered(context.Background(), db, 11)
	require.NoError(t, err)
	require.True(t, order.IsDelivered)
	require.NotNil(t, order.DeliveredAt)

	// unknown id surfaces as no rows
	db.QueryRowFn = func(context.Context, string, ...any) pgx.Row {
		return &fakeRow{scanFn: func(...any) error { return pgx.ErrNoRows }}
	}
	_, err = MarkOrderDelivered(context.Background(), db, 99)
	require.ErrorIs(t, err, pgx.ErrNoRows)
}

func TestListOrdersByUser(t *testing.T) {
	now := time.Now()
	orderScan := func(id int) func(dest ...any) error {
		return func(dest ...any) error {
			*dest[0].(*int) = id
			*dest[1].(*int) = 4
			*dest[2].(*string) = "1 Main St"
			*dest[3].(*string) = "Springfield"
			*dest[4].(*string) = "12345"
			*dest[5].(*string) = "USA"
			*dest[6].(*string) = "PayPal"
			*dest[7].(*float64) = 10
			*dest[8].(*bool) = false
			*dest[9].(**time.Time) = nil
			*dest[10].(*bool) = false
			*dest[11].(**time.Time) = nil
			*dest[12].(*time.Time) = now
			return nil
		}
	}
	db := &database.FakeDB{
		QueryFn: func(_ context.Context, sql string, args ...any) (pgx.Rows, error) {
			if strings.Contains(sql, "order_items") {
				return &fakeRows{}, nil
			}
			require.Equal(t, []any{4}, args)
			return &fakeRows{scans: []func(dest ...any) error{orderScan(1), orderScan(2)}}, nil
		},
	}
	orders, err := ListOrdersByUser(context.Background(), db, 4)
	require.NoError(t, err)
	require.Len(t, orders, 2)
	require.Equal(t, 1, orders[0].ID)
	require.Equal(t, 2, orders[1].ID)
}
