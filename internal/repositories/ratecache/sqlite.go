package ratecache

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/SscSPs/visa_portal_backend/internal/apperrors"
	"github.com/SscSPs/visa_portal_backend/internal/core/domain"
	portsrepo "github.com/SscSPs/visa_portal_backend/internal/core/ports/repositories"

	_ "modernc.org/sqlite" // register sqlite driver
)

// SQLiteStore persists rate tables in a local SQLite file so they survive restarts.
type SQLiteStore struct {
	db *sql.DB
}

var _ portsrepo.RateCacheStore = (*SQLiteStore)(nil)

// OpenSQLite opens or creates the cache database at dbPath.
func OpenSQLite(dbPath string) (*SQLiteStore, error) {
	if err := os.MkdirAll(filepath.Dir(dbPath), 0o750); err != nil {
		return nil, fmt.Errorf("creating rate cache dir: %w", err)
	}

	db, err := sql.Open("sqlite", dbPath+"?_pragma=journal_mode(wal)&_pragma=busy_timeout(5000)")
	if err != nil {
		return nil, fmt.Errorf("opening rate cache db: %w", err)
	}

	if _, err := db.Exec(schemaSQL); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("creating rate cache schema: %w", err)
	}

	return &SQLiteStore{db: db}, nil
}

// Close closes the cache database.
func (s *SQLiteStore) Close() error {
	return s.db.Close()
}

func (s *SQLiteStore) Get(ctx context.Context, base string) (*domain.ExchangeRateSet, error) {
	var payload string
	err := s.db.QueryRowContext(ctx,
		"SELECT payload FROM rate_cache WHERE base_currency = ?", base,
	).Scan(&payload)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("reading cached rates for %s: %w", base, err)
	}
	return decode([]byte(payload))
}

func (s *SQLiteStore) Put(ctx context.Context, set domain.ExchangeRateSet) error {
	payload, err := encode(set)
	if err != nil {
		return fmt.Errorf("encoding rates for %s: %w", set.Base, err)
	}
	_, err = s.db.ExecContext(ctx,
		`INSERT OR REPLACE INTO rate_cache (base_currency, payload, fetched_at) VALUES (?, ?, ?)`,
		set.Base, string(payload), set.FetchedAt.UTC().Format(time.RFC3339Nano),
	)
	if err != nil {
		return fmt.Errorf("writing cached rates for %s: %w", set.Base, err)
	}
	return nil
}
