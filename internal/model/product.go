package model

import "time"

type Product struct {
	ID           int       `db:"id" json:"id"`
	UserID       int       `db:"user_id" json:"user_id"`
	Name         string    `db:"name" json:"name"`
	Description  string    `db:"description" json:"description"`
	Category     string    `db:"category" json:"category"`
	Price        float64   `db:"price" json:"price"`
	CountInStock int       `db:"count_in_stock" json:"count_in_stock"`
	ImageURL     string    `db:"image_url" json:"image_url"`
	CreatedAt    time.Time `db:"created_at" json:"created_at"`
	UpdatedAt    time.Time `db:"updated_at" json:"updated_at"`
}
