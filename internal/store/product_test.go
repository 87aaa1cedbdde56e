package store

import (
	"context"
	"errors"
	"testing"
	"time"

	"storefront/internal/database"
	"storefront/internal/model"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/require"
)

func productScan(p model.Product) func(dest ...any) error {
	return func(dest ...any) error {
		*dest[0].(*int) = p.ID
		*dest[1].(*int) = p.UserID
		*dest[2].(*string) = p.Name
		*dest[3].(*string) = p.Description
		*dest[4].(*string) = p.Category
		*dest[5].(*float64) = p.Price
		*dest[6].(*int) = p.CountInStock
		*dest[7].(*string) = p.ImageURL
		*dest[8].(*time.Time) = p.CreatedAt
		*dest[9].(*time.Time) = p.UpdatedAt
		return nil
	}
}

func TestListProducts(t *testing.T) {
	a := model.Product{ID: 1, UserID: 1, Name: "Keyboard", Description: "d", Category: "c", Price: 59.99, CountInStock: 3, ImageURL: "img"}
	b := model.Product{ID: 2, UserID: 1, Name: "Mouse", Description: "d", Category: "c", Price: 19.99, CountInStock: 8, ImageURL: "img"}
	db := &database.FakeDB{
		QueryFn: func(context.Context, string, ...any) (pgx.Rows, error) {
			return &fakeRows{scans: []func(dest ...any) error{productScan(a), productScan(b)}}, nil
		},
	}
	products, err := ListProducts(context.Background(), db)
	require.NoError(t, err)
	require.Len(t, products, 2)
	require.Equal(t, a, products[0])
	require.Equal(t, b, products[1])
}

func TestGetProductByID(t *testing.T) {
	want := model.Product{ID: 7, UserID: 1, Name: "Keyboard", Description: "d", Category: "c", Price: 59.99, CountInStock: 3, ImageURL: "img"}
	db := &database.FakeDB{
		QueryRowFn: func(_ context.Context, _ string, args ...any) pgx.Row {
			require.Equal(t, []any{7}, args)
			return &fakeRow{scanFn: productScan(want)}
		},
	}
	got, err := GetProductByID(context.Background(), db, 7)
	require.NoError(t, err)
	require.Equal(t, want, *got)

	db.QueryRowFn = func(context.Context, string, ...any) pgx.Row {
		return &fakeRow{scanFn: func(...any) error { return pgx.ErrNoRows }}
	}
	_, err = GetProductByID(context.Background(), db, 8)
	require.ErrorIs(t, err, pgx.ErrNoRows)
}

func TestCreateProduct(t *testing.T) {
	now := time.Now()
	db := &database.FakeDB{
		QueryRowFn: func(_ context.Context, _ string, args ...any) pgx.Row {
			require.Equal(t, []any{1, "Keyboard", "d", "c", 59.99, 3, "img"}, args)
			return &fakeRow{scanFn: func(dest ...any) error {
				*dest[0].(*int) = 9
				*dest[1].(*time.Time) = now
				*dest[2].(*time.Time) = now
				return nil
			}}
		},
	}
	p, err := CreateProduct(context.Background(), db, &model.Product{
		UserID:       1,
		Name:         "Keyboard",
		Description:  "d",
		Category:     "c",
		Price:        59.99,
		CountInStock: 3,
		ImageURL:     "img",
	})
	require.NoError(t, err)
	require.Equal(t, 9, p.ID)
}

func TestUpdateProduct(t *testing.T) {
	now := time.Now()
	db := &database.FakeDB{
		QueryRowFn: func(_ context.Context, _ string, args ...any) pgx.Row {
			require.Equal(t, []any{"Keyboard", "d", "c", 49.99, 8, "img", 9}, args)
			return &fakeRow{scanFn: func(dest ...any) error {
				*dest[0].(*time.Time) = now
				return nil
			}}
		},
	}
	p := &model.Product{ID: 9, Name: "Keyboard", Description: "d", Category: "c", Price: 49.99, CountInStock: 8, ImageURL: "img"}
	require.NoError(t, UpdateProduct(context.Background(), db, p))
	require.Equal(t, now, p.UpdatedAt)

	db.QueryRowFn = func(context.Context, string, ...any) pgx.Row {
		return &fakeRow{scanFn: func(...any) error { return pgx.ErrNoRows }}
	}
	require.ErrorIs(t, UpdateProduct(context.Background(), db, p), pgx.ErrNoRows)
}

func TestDeleteProduct(t *testing.T) {
	db := &database.FakeDB{
		ExecFn: func(_ context.Context, _ string, args ...any) (pgconn.CommandTag, error) {
			require.Equal(t, []any{9}, args)
			return pgconn.CommandTag{}, nil
		},
	}
	require.NoError(t, DeleteProduct(context.Background(), db, 9))

	db.ExecFn = func(context.Context, string, ...any) (pgconn.CommandTag, error) {
		return pgconn.CommandTag{}, errors.New("boom")
	}
	require.Error(t, DeleteProduct(context.Background(), db, 9))
}
