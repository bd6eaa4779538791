package db

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"kanbanpro/internal/core/ports"

	"github.com/jmoiron/sqlx"
)

const createKVTableMySQL = `
CREATE TABLE IF NOT EXISTS kv_store (
  k VARCHAR(191) NOT NULL PRIMARY KEY,
  v LONGBLOB NOT NULL,
  updated_at DATETIME(6) NOT NULL
);
`

const createKVTableSQLite = `
CREATE TABLE IF NOT EXISTS kv_store (
  k TEXT NOT NULL PRIMARY KEY,
  v BLOB NOT NULL,
  updated_at DATETIME NOT NULL
);
`

const getKVQuery = `SELECT v FROM kv_store WHERE k = ?`

const upsertKVMySQL = `
INSERT INTO kv_store (k, v, updated_at) VALUES (?, ?, ?)
ON DUPLICATE KEY UPDATE v = VALUES(v), updated_at = VALUES(updated_at);
`

const upsertKVSQLite = `
INSERT INTO kv_store (k, v, updated_at) VALUES (?, ?, ?)
ON CONFLICT(k) DO UPDATE SET v = excluded.v, updated_at = excluded.updated_at;
`

// KVRepository stores serialized collections in a single kv_store table.
type KVRepository struct {
	db  *sqlx.DB
	now func() time.Time
}

var _ ports.KeyValueStore = (*KVRepository)(nil)

func NewKVRepository(db *sqlx.DB) *KVRepository {
	return &KVRepository{db: db, now: time.Now}
}

// EnsureSchema creates the kv_store table for the connected driver.
func (r *KVRepository) EnsureSchema(ctx context.Context) error {
	query := createKVTableSQLite
	if r.db.DriverName() == "mysql" {
		query = createKVTableMySQL
	}
	if _, err := r.db.ExecContext(ctx, query); err != nil {
		return fmt.Errorf("create kv_store: %w", err)
	}
	return nil
}

func (r *KVRepository) Get(ctx context.Context, key string) ([]byte, bool, error) {
	var value []byte
	if err := r.db.GetContext(ctx, &value, getKVQuery, key); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, false, nil
		}
		return nil, false, err
	}
	return value, true, nil
}

func (r *KVRepository) Set(ctx context.Context, key string, value []byte) error {
	query := upsertKVSQLite
	if r.db.DriverName() == "mysql" {
		query = upsertKVMySQL
	}
	_, err := r.db.ExecContext(ctx, query, key, value, r.now().UTC())
	return err
}

func (r *KVRepository) Ping(ctx context.Context) error {
	return r.db.PingContext(ctx)
}

func (r *KVRepository) Close() error {
	return r.db.Close()
}
