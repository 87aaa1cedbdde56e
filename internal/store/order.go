package store

import (
	"context"
	"fmt"

	"storefront/internal/database"
	"storefront/internal/model"
)

// CreateOrder persists the order row and its line-item snapshots. Callers
// reject empty item lists before getting here.
func CreateOrder(ctx context.Context, db database.DB, o *model.Order) (*model.Order, error) {
	row := db.QueryRow(ctx,
		`INSERT INTO orders (user_id, address, city, postal_code, country, payment_method, total_price)
		 VALUES ($1, $2, $3, $4, $5, $6, $7)
		 RETURNING id, is_paid, is_delivered, created_at`,
		o.UserID,
		o.Address,
		o.City,
		o.PostalCode,
		o.Country,
		o.PaymentMethod,
		o.TotalPrice,
	)
	if err := row.Scan(&o.ID, &o.IsPaid, &o.IsDelivered, &o.CreatedAt); err != nil {
		return nil, fmt.Errorf("CreateOrder: %w", err)
	}

	for i := range o.Items {
		item := &o.Items[i]
		item.OrderID = o.ID
		itemRow := db.QueryRow(ctx,
			`INSERT INTO order_items (order_id, product_id, name, image, qty, price)
			 VALUES ($1, $2, $3, $4, $5, $6)
			 RETURNING id`,
			item.OrderID,
			item.ProductID,
			item.Name,
			item.Image,
			item.Qty,
			item.Price,
		)
		if err := itemRow.Scan(&item.ID); err != nil {
			return nil, fmt.Errorf("CreateOrder: %w", err)
		}
	}
	return o, nil
}

// GetOrderByID returns the order with the purchaser's name and email joined
// in from the users table.
func GetOrderByID(ctx context.Context, db database.DB, orderID int) (*model.Order, error) {
	row := db.QueryRow(ctx,
		`SELECT o.id, o.user_id, o.address, o.city, o.postal_code, o.country, o.payment_method,
		        o.total_price, o.is_paid, o.paid_at, o.is_delivered, o.delivered_at, o.created_at,
		        u.name, u.email
		 FROM orders o
		 JOIN users u ON u.id = o.user_id
		 WHERE o.id = $1`,
		orderID,
	)
	o := &model.Order{}
	if err := row.Scan(
		&o.ID,
		&o.UserID,
		&o.Address,
		&o.City,
		&o.PostalCode,
		&o.Country,
		&o.PaymentMethod,
		&o.TotalPrice,
		&o.IsPaid,
		&o.PaidAt,
		&o.IsDelivered,
		&o.DeliveredAt,
		&o.CreatedAt,
		&o.UserName,
		&o.UserEmail,
	); err != nil {
		return nil, fmt.Errorf("GetOrderByID: %w", err)
	}

	items, err := listOrderItems(ctx, db, o.ID)
	if err != nil {
		return nil, fmt.Errorf("GetOrderByID: %w", err)
	}
	o.Items = items
	return o, nil
}

func ListOrdersByUser(ctx context.Context, db database.DB, userID int) ([]model.Order, error) {
	rows, err := db.Query(ctx,
		`SELECT id, user_id, address, city, postal_code, country, payment_method,
		        total_price, is_paid, paid_at, is_delivered, delivered_at, created_at
		 FROM orders WHERE user_id = $1 ORDER BY id`,
		userID,
	)
	if err != nil {
		return nil, fmt.Errorf("ListOrdersByUser: %w", err)
	}
	defer rows.Close()

	var orders []model.Order
	for rows.Next() {
		var o model.Order
		if err := rows.Scan(
			&o.ID,
			&o.UserID,
			&o.Address,
			&o.City,
			&o.PostalCode,
			&o.Country,
			&o.PaymentMethod,
			&o.TotalPrice,
			&o.IsPaid,
			&o.PaidAt,
			&o.IsDelivered,
			&o.DeliveredAt,
			&o.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("ListOrdersByUser: %w", err)
		}
		orders = append(orders, o)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("ListOrdersByUser: %w", err)
	}

	for i := range orders {
		items, err := listOrderItems(ctx, db, orders[i].ID)
		if err != nil {
			return nil, fmt.Errorf("ListOrdersByUser: %w", err)
		}
		orders[i].Items = items
	}
	return orders, nil
}

// ListAllOrders returns every order with the purchaser's name joined in.
func ListAllOrders(ctx context.Context, db database.DB) ([]model.Order, error) {
	rows, err := db.Query(ctx,
		`SELECT o.id, o.user_id, o.address, o.city, o.postal_code, o.country, o.payment_method,
		        o.total_price, o.is_paid, o.paid_at, o.is_delivered, o.delivered_at, o.created_at,
		        u.name
		 FROM orders o
		 JOIN users u ON u.id = o.user_id
		 ORDER BY o.id`,
	)
	if err != nil {
		return nil, fmt.Errorf("ListAllOrders: %w", err)
	}
	defer rows.Close()

	var orders []model.Order
	for rows.Next() {
		var o model.Order
		if err := rows.Scan(
			&o.ID,
			&o.UserID,
			&o.Address,
			&o.City,
			&o.PostalCode,
			&o.Country,
			&o.PaymentMethod,
			&o.TotalPrice,
			&o.IsPaid,
			&o.PaidAt,
			&o.IsDelivered,
			&o.DeliveredAt,
			&o.CreatedAt,
			&o.UserName,
		); err != nil {
			return nil, fmt.Errorf("ListAllOrders: %w", err)
		}
		orders = append(orders, o)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("ListAllOrders: %w", err)
	}

	for i := range orders {
		items, err := listOrderItems(ctx, db, orders[i].ID)
		if err != nil {
			return nil, fmt.Errorf("ListAllOrders: %w", err)
		}
		orders[i].Items = items
	}
	return orders, nil
}

// MarkOrderDelivered flips the delivered flag and stamps the time. Calling it
// on an already delivered order simply re-stamps.
func MarkOrderDelivered(ctx context.Context, db database.DB, orderID int) (*model.Order, error) {
	row := db.QueryRow(ctx,
		`UPDATE orders
		 SET is_delivered = TRUE, delivered_at = now()
		 WHERE id = $1
		 RETURNING id, user_id, address, city, postal_code, country, payment_method,
		           total_price, is_paid, paid_at, is_delivered, delivered_at, created_at`,
		orderID,
	)
	o := &model.Order{}
	if err := row.Scan(
		&o.ID,
		&o.UserID,
		&o.Address,
		&o.City,
		&o.PostalCode,
		&o.Country,
		&o.PaymentMethod,
		&o.TotalPrice,
		&o.IsPaid,
		&o.PaidAt,
		&o.IsDelivered,
		&o.DeliveredAt,
		&o.CreatedAt,
	); err != nil {
		return nil, fmt.Errorf("MarkOrderDelivered: %w", err)
	}

	items, err := listOrderItems(ctx, db, o.ID)
	if err != nil {
		return nil, fmt.Errorf("MarkOrderDelivered: %w", err)
	}
	o.Items = items
	return o, nil
}

func listOrderItems(ctx context.Context, db database.DB, orderID int) ([]model.OrderItem, error) {
	rows, err := db.Query(ctx,
		`SELECT id, order_id, product_id, name, image, qty, price
		 FROM order_items WHERE order_id = $1 ORDER BY id`,
		orderID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var items []model.OrderItem
	for rows.Next() {
		var it model.OrderItem
		if err := rows.Scan(
			&it.ID,
			&it.OrderID,
			&it.ProductID,
			&it.Name,
			&it.Image,
			&it.Qty,
			&it.Price,
		); err != nil {
			return nil, err
		}
		items = append(items, it)
	}
	return items, rows.Err()
}
