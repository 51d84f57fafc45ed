package storage

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/lib/pq"

	"cinehall/internal/models"
)

// PostgresStore persists the order snapshot in a single orders table,
// upserted whole on every save.
type PostgresStore struct {
	db *sql.DB
}

type PostgresConfig struct {
	Host     string
	Port     int
	User     string
	Password string
	DBName   string
	SSLMode  string
}

func (c PostgresConfig) dsn() string {
	return fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		c.Host, c.Port, c.User, c.Password, c.DBName, c.SSLMode)
}

func NewPostgresStore(cfg PostgresConfig) (*PostgresStore, error) {
	db, err := sql.Open("postgres", cfg.dsn())
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	db.SetMaxOpenConns(25)
	db.SetMaxIdleConns(5)
	db.SetConnMaxLifetime(5 * time.Minute)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	s := &PostgresStore{db: db}
	if err := s.bootstrap(ctx); err != nil {
		db.Close()
		return nil, err
	}
	return s, nil
}

func (s *PostgresStore) bootstrap(ctx context.Context) error {
	const schema = `
		CREATE TABLE IF NOT EXISTS orders (
			order_id     TEXT PRIMARY KEY,
			show_id      TEXT NOT NULL,
			user_id      TEXT NOT NULL,
			seat_ids     TEXT[] NOT NULL,
			create_time  TIMESTAMPTZ NOT NULL,
			lock_expiry  TIMESTAMPTZ,
			status       TEXT NOT NULL,
			total_amount DOUBLE PRECISION NOT NULL
		)`
	if _, err := s.db.ExecContext(ctx, schema); err != nil {
		return fmt.Errorf("failed to create orders table: %w", err)
	}
	return nil
}

func (s *PostgresStore) SaveOrders(ctx context.Context, orders []models.OrderSnapshot) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin tx: %w", err)
	}
	defer tx.Rollback()

	const upsert = `
		INSERT INTO orders (order_id, show_id, user_id, seat_ids, create_time, lock_expiry, status, total_amount)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		ON CONFLICT (order_id) DO UPDATE SET
			status = EXCLUDED.status,
			lock_expiry = EXCLUDED.lock_expiry,
			total_amount = EXCLUDED.total_amount`

	for _, o := range orders {
		_, err := tx.ExecContext(ctx, upsert,
			o.OrderID, o.ShowID, o.UserID, pq.Array(o.SeatIDs),
			o.CreateTime, o.LockExpiry, string(o.Status), o.TotalAmount)
		if err != nil {
			return fmt.Errorf("failed to upsert order %s: %w", o.OrderID, err)
		}
	}
	return tx.Commit()
}

func (s *PostgresStore) LoadOrders(ctx context.Context) ([]models.OrderSnapshot, error) {
	const query = `
		SELECT order_id, show_id, user_id, seat_ids, create_time, lock_expiry, status, total_amount
		FROM orders ORDER BY create_time`

	rows, err := s.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query orders: %w", err)
	}
	defer rows.Close()

	var orders []models.OrderSnapshot
	for rows.Next() {
		var o models.OrderSnapshot
		var status string
		var seatIDs pq.StringArray
		if err := rows.Scan(&o.OrderID, &o.ShowID, &o.UserID, &seatIDs,
			&o.CreateTime, &o.LockExpiry, &status, &o.TotalAmount); err != nil {
			return nil, fmt.Errorf("failed to scan order: %w", err)
		}
		o.SeatIDs = []string(seatIDs)
		o.Status = models.OrderStatus(status)
		orders = append(orders, o)
	}
	return orders, rows.Err()
}

func (s *PostgresStore) Close() error {
	return s.db.Close()
}
