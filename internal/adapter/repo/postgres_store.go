package repo

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/example/bakery-order-service/internal/domain"
)

// PostgresStore — хранилище товаров и заказов поверх pgxpool.
// Списание остатка и вставка заказа идут в одной транзакции:
// читатель никогда не увидит одно без другого.
type PostgresStore struct {
	Pool *pgxpool.Pool
}

func NewPostgresStore(pool *pgxpool.Pool) *PostgresStore {
	return &PostgresStore{Pool: pool}
}

func (s *PostgresStore) PlaceOrder(ctx context.Context, o domain.Order) error {
	tx, err := s.Pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin: %w", err)
	}
	defer tx.Rollback(ctx)

	// условный декремент: строка обновится только при достаточном остатке
	tag, err := tx.Exec(ctx,
		`UPDATE products SET stock = stock - $2 WHERE id = $1 AND stock >= $2`,
		o.ProductID, o.Quantity)
	if err != nil {
		return fmt.Errorf("decrement stock: %w", err)
	}
	if tag.RowsAffected() == 0 {
		var exists bool
		if err := tx.QueryRow(ctx,
			`SELECT EXISTS(SELECT 1 FROM products WHERE id = $1)`, o.ProductID,
		).Scan(&exists); err != nil {
			return fmt.Errorf("check product: %w", err)
		}
		if !exists {
			return domain.ErrNotFound
		}
		return domain.ErrInsufficientStock
	}

	if _, err := tx.Exec(ctx,
		`INSERT INTO orders(id, product_id, quantity, status) VALUES($1, $2, $3, $4)`,
		o.ID, o.ProductID, o.Quantity, string(o.Status)); err != nil {
		return fmt.Errorf("insert order: %w", err)
	}
	return tx.Commit(ctx)
}

func (s *PostgresStore) GetOrder(ctx context.Context, id string) (domain.Order, error) {
	var o domain.Order
	var status string
	err := s.Pool.QueryRow(ctx,
		`SELECT id, product_id, quantity, status FROM orders WHERE id = $1`, id,
	).Scan(&o.ID, &o.ProductID, &o.Quantity, &status)
	if errors.Is(err, pgx.ErrNoRows) {
		return domain.Order{}, domain.ErrNotFound
	}
	if err != nil {
		return domain.Order{}, fmt.Errorf("select order: %w", err)
	}
	o.Status = domain.OrderStatus(status)
	return o, nil
}

func (s *PostgresStore) SetStatus(ctx context.Context, id string, from, to domain.OrderStatus) error {
	tag, err := s.Pool.Exec(ctx,
		`UPDATE orders SET status = $3 WHERE id = $1 AND status = $2`,
		id, string(from), string(to))
	if err != nil {
		return fmt.Errorf("update status: %w", err)
	}
	if tag.RowsAffected() == 0 {
		var exists bool
		if err := s.Pool.QueryRow(ctx,
			`SELECT EXISTS(SELECT 1 FROM orders WHERE id = $1)`, id,
		).Scan(&exists); err != nil {
			return fmt.Errorf("check order: %w", err)
		}
		if !exists {
			return domain.ErrNotFound
		}
		return domain.ErrInvalidTransition
	}
	return nil
}

func (s *PostgresStore) ListProducts(ctx context.Context) ([]domain.Product, error) {
	rows, err := s.Pool.Query(ctx,
		`SELECT id, name, price, stock FROM products ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("select products: %w", err)
	}
	defer rows.Close()

	var products []domain.Product
	for rows.Next() {
		var p domain.Product
		if err := rows.Scan(&p.ID, &p.Name, &p.Price, &p.Stock); err != nil {
			return nil, err
		}
		products = append(products, p)
	}
	return products, rows.Err()
}

var _ domain.OrderStore = (*PostgresStore)(nil)

// EnsureSchema — создать необходимые таблицы, если отсутствуют.
func EnsureSchema(ctx context.Context, pool *pgxpool.Pool) error {
	_, err := pool.Exec(ctx, `
CREATE TABLE IF NOT EXISTS products (
  id integer PRIMARY KEY,
  name text NOT NULL,
  price double precision NOT NULL,
  stock integer NOT NULL CHECK (stock >= 0)
);
CREATE TABLE IF NOT EXISTS orders (
  id text PRIMARY KEY,
  product_id integer NOT NULL REFERENCES products(id),
  quantity integer NOT NULL CHECK (quantity > 0),
  status text NOT NULL DEFAULT 'pending'
);`)
	return err
}

// SeedProducts — заполнить пустой каталог стартовым ассортиментом.
func SeedProducts(ctx context.Context, pool *pgxpool.Pool) error {
	var count int
	if err := pool.QueryRow(ctx, `SELECT count(*) FROM products`).Scan(&count); err != nil {
		return err
	}
	if count > 0 {
		return nil
	}
	_, err := pool.Exec(ctx, `INSERT INTO products(id, name, price, stock) VALUES
  (1, 'Bread', 20, 100),
  (2, 'Cake', 100, 50),
  (3, 'Croissant', 30, 75),
  (4, 'Donut', 15, 120)`)
	return err
}
