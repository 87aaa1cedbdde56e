package store

import (
	"context"
	"fmt"

	"storefront/internal/database"
	"storefront/internal/model"
)

func ListProducts(ctx context.Context, db database.DB) ([]model.Product, error) {
	rows, err := db.Query(ctx,
		`SELECT id, user_id, name, description, category, price, count_in_stock, image_url, created_at, updated_at
		 FROM products ORDER BY id`,
	)
	if err != nil {
		return nil, fmt.Errorf("ListProducts: %w", err)
	}
	defer rows.Close()

	var products []model.Product
	for rows.Next() {
		var p model.Product
		if err := rows.Scan(
			&p.ID,
			&p.UserID,
			&p.Name,
			&p.Description,
			&p.Category,
			&p.Price,
			&p.CountInStock,
			&p.ImageURL,
			&p.CreatedAt,
			&p.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("ListProducts: %w", err)
		}
		products = append(products, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("ListProducts: %w", err)
	}
	return products, nil
}

func GetProductByID(ctx context.Context, db database.DB, productID int) (*model.Product, error) {
	row := db.QueryRow(ctx,
		`SELECT id, user_id, name, description, category, price, count_in_stock, image_url, created_at, updated_at
		 FROM products WHERE id = $1`,
		productID,
	)
	p := &model.Product{}
	if err := row.Scan(
		&p.ID,
		&p.UserID,
		&p.Name,
		&p.Description,
		&p.Category,
		&p.Price,
		&p.CountInStock,
		&p.ImageURL,
		&p.CreatedAt,
		&p.UpdatedAt,
	); err != nil {
		return nil, fmt.Errorf("GetProductByID: %w", err)
	}
	return p, nil
}

func CreateProduct(ctx context.Context, db database.DB, p *model.Product) (*model.Product, error) {
	row := db.QueryRow(ctx,
		`INSERT INTO products (user_id, name, description, category, price, count_in_stock, image_url)
		 VALUES ($1, $2, $3, $4, $5, $6, $7)
		 RETURNING id, created_at, updated_at`,
		p.UserID,
		p.Name,
		p.Description,
		p.Category,
		p.Price,
		p.CountInStock,
		p.ImageURL,
	)
	if err := row.Scan(&p.ID, &p.CreatedAt, &p.UpdatedAt); err != nil {
		return nil, fmt.Errorf("CreateProduct: %w", err)
	}
	return p, nil
}

func UpdateProduct(ctx context.Context, db database.DB, p *model.Product) error {
	row := db.QueryRow(ctx,
		`UPDATE products
		 SET name = $1, description = $2, category = $3, price = $4, count_in_stock = $5, image_url = $6, updated_at = now()
		 WHERE id = $7
		 RETURNING updated_at`,
		p.Name,
		p.Description,
		p.Category,
		p.Price,
		p.CountInStock,
		p.ImageURL,
		p.ID,
	)
	if err := row.Scan(&p.UpdatedAt); err != nil {
		return fmt.Errorf("UpdateProduct: %w", err)
	}
	return nil
}

func DeleteProduct(ctx context.Context, db database.DB, productID int) error {
	_, err := db.Exec(ctx,
		`DELETE FROM products WHERE id = $1`,
		productID,
	)
	if err != nil {
		return fmt.Errorf("DeleteProduct: %w", err)
	}
	return nil
}
