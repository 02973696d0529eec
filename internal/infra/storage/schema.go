// Package storage открывает SQLite-базу и накатывает схему.
// Ядро сервиса никогда не ходит в БД напрямую: репозитории пакетов ниже
// декодируют строки в именованные доменные записи на границе хранилища.
package storage

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"

	_ "github.com/mattn/go-sqlite3"
)

// Open открывает (и при необходимости создаёт) файл базы в режиме WAL:
// читатели не блокируют друг друга, пишет одна транзакция за раз.
func Open(path string) (*sql.DB, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("storage: create data dir: %w", err)
	}

	dsn := fmt.Sprintf("file:%s?_journal_mode=WAL&_busy_timeout=5000&_foreign_keys=on", path)
	db, err := sql.Open("sqlite3", dsn)
	if err != nil {
		return nil, fmt.Errorf("storage: open database: %w", err)
	}
	return db, nil
}

// Migrate накатывает схему. Идемпотентно: все операторы IF NOT EXISTS.
func Migrate(ctx context.Context, db *sql.DB) error {
	statements := []string{
		`CREATE TABLE IF NOT EXISTS hotels (
			id       INTEGER PRIMARY KEY,
			name     TEXT NOT NULL,
			stars    INTEGER NOT NULL DEFAULT 0,
			city     TEXT NOT NULL,
			features TEXT NOT NULL DEFAULT '[]'
		)`,
		`CREATE TABLE IF NOT EXISTS room_types (
			id       INTEGER PRIMARY KEY,
			hotel_id INTEGER NOT NULL REFERENCES hotels(id),
			name     TEXT NOT NULL,
			capacity INTEGER NOT NULL DEFAULT 2,
			beds     INTEGER NOT NULL DEFAULT 1,
			features TEXT NOT NULL DEFAULT '[]'
		)`,
		`CREATE TABLE IF NOT EXISTS rate_plans (
			id                 INTEGER PRIMARY KEY,
			hotel_id           INTEGER NOT NULL REFERENCES hotels(id),
			room_type_id       INTEGER NOT NULL REFERENCES room_types(id),
			title              TEXT NOT NULL,
			meal               TEXT NOT NULL DEFAULT 'none',
			refundable         INTEGER NOT NULL DEFAULT 0,
			cancel_before_days INTEGER NOT NULL DEFAULT 0
		)`,
		// Не более одной цены на (тариф, дату): дедупликацию держит
		// хранилище, ядро полагается на этот инвариант
		`CREATE TABLE IF NOT EXISTS prices (
			id       INTEGER PRIMARY KEY AUTOINCREMENT,
			rate_id  INTEGER NOT NULL REFERENCES rate_plans(id),
			date     TEXT NOT NULL,
			amount   INTEGER NOT NULL,
			currency TEXT NOT NULL DEFAULT 'KZT',
			UNIQUE (rate_id, date)
		)`,
		`CREATE TABLE IF NOT EXISTS availability (
			id           INTEGER PRIMARY KEY AUTOINCREMENT,
			room_type_id INTEGER NOT NULL REFERENCES room_types(id),
			date         TEXT NOT NULL,
			available    INTEGER NOT NULL DEFAULT 0,
			UNIQUE (room_type_id, date)
		)`,
		// room_type_id/rate_id/date NULL — wildcard, value — JSON
		`CREATE TABLE IF NOT EXISTS rules (
			id           INTEGER PRIMARY KEY AUTOINCREMENT,
			kind         TEXT NOT NULL CHECK (kind IN ('min_stay','max_stay','cta','ctd')),
			room_type_id INTEGER,
			rate_id      INTEGER,
			date         TEXT,
			value        TEXT
		)`,
		// Композитный ключ идемпотентности защищает от двойной записи
		// одного и того же бронирования
		`CREATE TABLE IF NOT EXISTS bookings (
			id                  INTEGER PRIMARY KEY AUTOINCREMENT,
			user_id             INTEGER NOT NULL,
			hotel_id            INTEGER NOT NULL REFERENCES hotels(id),
			room_type_id        INTEGER NOT NULL REFERENCES room_types(id),
			rate_id             INTEGER NOT NULL REFERENCES rate_plans(id),
			check_in            TEXT NOT NULL,
			check_out           TEXT NOT NULL,
			guests              INTEGER NOT NULL,
			total               INTEGER NOT NULL,
			currency            TEXT NOT NULL DEFAULT 'KZT',
			status              TEXT NOT NULL DEFAULT 'held',
			cancellation_reason TEXT,
			cancelled_at        TIMESTAMP,
			created_at          TIMESTAMP NOT NULL,
			updated_at          TIMESTAMP NOT NULL,
			UNIQUE (user_id, hotel_id, check_in, check_out, guests)
		)`,
		`CREATE INDEX IF NOT EXISTS idx_prices_rate_date ON prices(rate_id, date)`,
		`CREATE INDEX IF NOT EXISTS idx_availability_rt_date ON availability(room_type_id, date)`,
		`CREATE INDEX IF NOT EXISTS idx_rules_kind ON rules(kind)`,
		`CREATE INDEX IF NOT EXISTS idx_bookings_user ON bookings(user_id)`,
		`CREATE INDEX IF NOT EXISTS idx_room_types_hotel ON room_types(hotel_id)`,
		`CREATE INDEX IF NOT EXISTS idx_rate_plans_hotel ON rate_plans(hotel_id)`,
	}

	for _, stmt := range statements {
		if _, err := db.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("storage: migrate: %w", err)
		}
	}
	return nil
}
