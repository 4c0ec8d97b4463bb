package main

import (
	"database/sql"
	"flag"
	"fmt"
	"log"

	"github.com/joho/godotenv"
	_ "github.com/lib/pq"

	"suseli-shop/internal/config"
)

// schemaUp creates the order tables and the NOTIFY triggers the client's
// change subscription listens on. Statements are idempotent so re-running
// is safe.
var schemaUp = []string{
	`CREATE TABLE IF NOT EXISTS orders (
		id            TEXT PRIMARY KEY,
		customer_name TEXT NOT NULL,
		phone_number  TEXT NOT NULL,
		total         NUMERIC NOT NULL,
		status        TEXT NOT NULL,
		discount_code TEXT,
		created_at    TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)`,
	`CREATE TABLE IF NOT EXISTS order_items (
		order_id     TEXT NOT NULL REFERENCES orders(id) ON DELETE CASCADE,
		product_name TEXT NOT NULL,
		quantity     INTEGER NOT NULL,
		price        TEXT NOT NULL,
		image        TEXT NOT NULL DEFAULT ''
	)`,
	`CREATE OR REPLACE FUNCTION shop_notify() RETURNS trigger AS $$
	BEGIN
		PERFORM pg_notify(
			'shop_changes',
			json_build_object('table', TG_TABLE_NAME, 'op', TG_OP)::text
		);
		RETURN NULL;
	END;
	$$ LANGUAGE plpgsql`,
	`DROP TRIGGER IF EXISTS orders_notify ON orders`,
	`CREATE TRIGGER orders_notify
		AFTER INSERT OR UPDATE OR DELETE ON orders
		FOR EACH STATEMENT EXECUTE FUNCTION shop_notify()`,
	`DROP TRIGGER IF EXISTS order_items_notify ON order_items`,
	`CREATE TRIGGER order_items_notify
		AFTER INSERT OR UPDATE OR DELETE ON order_items
		FOR EACH STATEMENT EXECUTE FUNCTION shop_notify()`,
}

var schemaDown = []string{
	`DROP TABLE IF EXISTS order_items`,
	`DROP TABLE IF EXISTS orders`,
	`DROP FUNCTION IF EXISTS shop_notify()`,
}

func main() {
	_ = godotenv.Load()

	mode := flag.String("mode", "up", "migration mode: up or down")
	flag.Parse()

	cfg := config.Load()

	db, err := sql.Open("postgres", cfg.DSN())
	if err != nil {
		log.Fatalf("failed to connect db: %v", err)
	}
	defer db.Close()

	if err := run(db, *mode); err != nil {
		log.Fatal(err)
	}
	log.Printf("migration %s complete", *mode)
}

func run(db *sql.DB, mode string) error {
	var stmts []string
	switch mode {
	case "up":
		stmts = schemaUp
	case "down":
		stmts = schemaDown
	default:
		return fmt.Errorf("unknown mode: %s (use 'up' or 'down')", mode)
	}

	for _, stmt := range stmts {
		if _, err := db.Exec(stmt); err != nil {
			return fmt.Errorf("migration statement failed: %w", err)
		}
	}
	return nil
}
