// Package testutil opens throwaway in-memory databases for repository and
// service tests.
package testutil

import (
	"testing"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// The entity structs carry postgres column defaults (uuid_generate_v4) that
// sqlite cannot parse, so the test schema is created by hand instead of
// through AutoMigrate. Tests always set ids explicitly.
var schema = []string{
	`CREATE TABLE users (
		id TEXT PRIMARY KEY,
		email TEXT UNIQUE,
		password TEXT,
		full_name TEXT,
		phone TEXT,
		provider TEXT,
		role TEXT,
		image_url TEXT,
		created_at DATETIME,
		updated_at DATETIME
	)`,
	`CREATE TABLE categories (
		id TEXT PRIMARY KEY,
		name TEXT,
		description TEXT,
		image_url TEXT,
		created_at DATETIME,
		updated_at DATETIME
	)`,
	`CREATE TABLE products (
		id TEXT PRIMARY KEY,
		name TEXT,
		description TEXT,
		price REAL,
		unit TEXT,
		category_id TEXT,
		image_url TEXT,
		is_featured BOOLEAN,
		is_active BOOLEAN,
		stock_quantity INTEGER,
		nutritional_info TEXT,
		created_at DATETIME,
		updated_at DATETIME
	)`,
	`CREATE TABLE cart_items (
		id TEXT PRIMARY KEY,
		user_id TEXT,
		product_id TEXT,
		quantity REAL,
		weight_in_grams REAL,
		created_at DATETIME,
		updated_at DATETIME
	)`,
	`CREATE TABLE guest_cart_items (
		id TEXT PRIMARY KEY,
		guest_id TEXT,
		product_id TEXT,
		quantity REAL,
		weight_in_grams REAL,
		product_name TEXT,
		product_unit TEXT,
		product_image TEXT,
		product_price REAL,
		created_at DATETIME,
		updated_at DATETIME
	)`,
	`CREATE TABLE addresses (
		id TEXT PRIMARY KEY,
		user_id TEXT,
		full_name TEXT,
		phone TEXT,
		address_line1 TEXT,
		address_line2 TEXT,
		city TEXT,
		state TEXT,
		postal_code TEXT,
		is_default BOOLEAN,
		created_at DATETIME,
		updated_at DATETIME
	)`,
	`CREATE TABLE orders (
		id TEXT PRIMARY KEY,
		user_id TEXT,
		order_number TEXT UNIQUE,
		status TEXT,
		payment_method TEXT,
		payment_status TEXT,
		subtotal REAL,
		delivery_fee REAL,
		total REAL,
		delivery_address TEXT,
		notes TEXT,
		gateway_order_id TEXT,
		gateway_payment_id TEXT,
		created_at DATETIME,
		updated_at DATETIME
	)`,
	`CREATE TABLE order_items (
		id TEXT PRIMARY KEY,
		order_id TEXT,
		product_id TEXT,
		quantity REAL,
		unit_price REAL,
		total_price REAL,
		created_at DATETIME,
		updated_at DATETIME
	)`,
}

// OpenTestDB returns an in-memory sqlite database with the full storefront
// schema in place. Each call gets a fresh, isolated database.
func OpenTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("opening test database: %v", err)
	}

	// The pool must stay on one connection: every :memory: connection is
	// its own empty database.
	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("getting sql.DB: %v", err)
	}
	sqlDB.SetMaxOpenConns(1)

	for _, stmt := range schema {
		if err := db.Exec(stmt).Error; err != nil {
			t.Fatalf("creating test schema: %v", err)
		}
	}

	return db
}
