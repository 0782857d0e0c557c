package repo

import (
	"context"
	"errors"
	"os"
	"testing"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/example/bakery-order-service/internal/domain"
)

func setupTestDB(t *testing.T) *pgxpool.Pool {
	t.Helper()
	url := os.Getenv("TEST_DATABASE_URL")
	if url == "" {
		t.Skip("TEST_DATABASE_URL not set")
	}
	pool, err := pgxpool.New(context.Background(), url)
	if err != nil {
		t.Fatalf("Failed to connect to test DB: %v", err)
	}
	t.Cleanup(pool.Close)

	ctx := context.Background()
	if err := EnsureSchema(ctx, pool); err != nil {
		t.Fatalf("EnsureSchema() error = %v", err)
	}
	// Clean up
	pool.Exec(ctx, "DELETE FROM orders")
	pool.Exec(ctx, "DELETE FROM products")
	return pool
}

func TestPostgresStorePlaceOrder(t *testing.T) {
	pool := setupTestDB(t)
	ctx := context.Background()
	store := NewPostgresStore(pool)

	if _, err := pool.Exec(ctx,
		`INSERT INTO products(id, name, price, stock) VALUES (1, 'Bread', 20, 100)`); err != nil {
		t.Fatal(err)
	}

	o := domain.Order{ID: uuid.NewString(), ProductID: 1, Quantity: 10, Status: domain.StatusPending}
	if err := store.PlaceOrder(ctx, o); err != nil {
		t.Fatalf("PlaceOrder() error = %v", err)
	}

	products, err := store.ListProducts(ctx)
	if err != nil {
		t.Fatal(err)
	}
	if products[0].Stock != 90 {
		t.Errorf("stock = %d, want 90", products[0].Stock)
	}

	got, err := store.GetOrder(ctx, o.ID)
	if err != nil {
		t.Fatalf("GetOrder() error = %v", err)
	}
	if got.Status != domain.StatusPending || got.Quantity != 10 {
		t.Errorf("GetOrder() = %+v", got)
	}

	// недостаточный остаток: ничего не списывается, заказ не создаётся
	over := domain.Order{ID: uuid.NewString(), ProductID: 1, Quantity: 1000, Status: domain.StatusPending}
	if err := store.PlaceOrder(ctx, over); !errors.Is(err, domain.ErrInsufficientStock) {
		t.Fatalf("PlaceOrder() error = %v, want ErrInsufficientStock", err)
	}
	products, _ = store.ListProducts(ctx)
	if products[0].Stock != 90 {
		t.Errorf("stock after rejection = %d, want 90", products[0].Stock)
	}
	if _, err := store.GetOrder(ctx, over.ID); !errors.Is(err, domain.ErrNotFound) {
		t.Errorf("rejected order persisted: %v", err)
	}

	missing := domain.Order{ID: uuid.NewString(), ProductID: 404, Quantity: 1, Status: domain.StatusPending}
	if err := store.PlaceOrder(ctx, missing); !errors.Is(err, domain.ErrNotFound) {
		t.Errorf("PlaceOrder() error = %v, want ErrNotFound", err)
	}
}

func TestPostgresStoreSetStatus(t *testing.T) {
	pool := setupTestDB(t)
	ctx := context.Background()
	store := NewPostgresStore(pool)

	if _, err := pool.Exec(ctx,
		`INSERT INTO products(id, name, price, stock) VALUES (1, 'Cake', 100, 50)`); err != nil {
		t.Fatal(err)
	}
	o := domain.Order{ID: uuid.NewString(), ProductID: 1, Quantity: 1, Status: domain.StatusPending}
	if err := store.PlaceOrder(ctx, o); err != nil {
		t.Fatal(err)
	}

	if err := store.SetStatus(ctx, o.ID, domain.StatusPending, domain.StatusProcessing); err != nil {
		t.Fatalf("SetStatus() error = %v", err)
	}
	if err := store.SetStatus(ctx, o.ID, domain.StatusPending, domain.StatusProcessing); !errors.Is(err, domain.ErrInvalidTransition) {
		t.Errorf("stale CAS error = %v, want ErrInvalidTransition", err)
	}
	if err := store.SetStatus(ctx, "missing", domain.StatusPending, domain.StatusProcessing); !errors.Is(err, domain.ErrNotFound) {
		t.Errorf("unknown order error = %v, want ErrNotFound", err)
	}
}
