package record

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// PostgresStore persists records in PostgreSQL, one row per address.
type PostgresStore struct {
	db *pgxpool.Pool
}

// NewPostgresStore constructs a Postgres-backed record store.
func NewPostgresStore(db *pgxpool.Pool) *PostgresStore {
	return &PostgresStore{db: db}
}

// EnsureSchema creates the backing table when it does not exist yet.
func (s *PostgresStore) EnsureSchema(ctx context.Context) error {
	_, err := s.db.Exec(ctx, `CREATE TABLE IF NOT EXISTS user_records (
        address           TEXT PRIMARY KEY,
        current_streak    BIGINT NOT NULL DEFAULT 0,
        best_streak       BIGINT NOT NULL DEFAULT 0,
        last_check_in_day BIGINT NOT NULL DEFAULT 0,
        last_check_in_at  BIGINT NOT NULL DEFAULT 0,
        points            BIGINT NOT NULL DEFAULT 0,
        check_in_days     BIGINT[] NOT NULL DEFAULT '{}',
        shields           BIGINT NOT NULL DEFAULT 0,
        last_mint_day     BIGINT NOT NULL DEFAULT 0,
        token_balance     BIGINT NOT NULL DEFAULT 0,
        updated_at        TIMESTAMPTZ NOT NULL DEFAULT now()
    )`)
	if err != nil {
		return fmt.Errorf("%w: ensure schema: %v", ErrStorage, err)
	}
	return nil
}

// Load reads the row for address, or returns the zero-default record when
// no row exists.
func (s *PostgresStore) Load(ctx context.Context, address string) (UserRecord, error) {
	const query = `
        SELECT address, current_streak, best_streak, last_check_in_day,
               last_check_in_at, points, check_in_days, shields,
               last_mint_day, token_balance
        FROM user_records WHERE address = $1`
	var rec UserRecord
	err := s.db.QueryRow(ctx, query, address).Scan(
		&rec.Address, &rec.CurrentStreak, &rec.BestStreak, &rec.LastCheckInDay,
		&rec.LastCheckInAt, &rec.Points, &rec.CheckInDays, &rec.Shields,
		&rec.LastMintDay, &rec.TokenBalance,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return New(address), nil
	}
	if err != nil {
		return UserRecord{}, fmt.Errorf("%w: load %s: %v", ErrStorage, address, err)
	}
	return rec, nil
}

// Save upserts the record row. Plain last-writer-wins, no version column.
func (s *PostgresStore) Save(ctx context.Context, rec UserRecord) error {
	const query = `
        INSERT INTO user_records (address, current_streak, best_streak,
            last_check_in_day, last_check_in_at, points, check_in_days,
            shields, last_mint_day, token_balance, updated_at)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, now())
        ON CONFLICT (address) DO UPDATE SET
            current_streak    = EXCLUDED.current_streak,
            best_streak       = EXCLUDED.best_streak,
            last_check_in_day = EXCLUDED.last_check_in_day,
            last_check_in_at  = EXCLUDED.last_check_in_at,
            points            = EXCLUDED.points,
            check_in_days     = EXCLUDED.check_in_days,
            shields           = EXCLUDED.shields,
            last_mint_day     = EXCLUDED.last_mint_day,
            token_balance     = EXCLUDED.token_balance,
            updated_at        = now()`
	days := rec.CheckInDays
	if days == nil {
		days = []int64{}
	}
	_, err := s.db.Exec(ctx, query, rec.Address, rec.CurrentStreak, rec.BestStreak,
		rec.LastCheckInDay, rec.LastCheckInAt, rec.Points, days,
		rec.Shields, rec.LastMintDay, rec.TokenBalance)
	if err != nil {
		return fmt.Errorf("%w: save %s: %v", ErrStorage, rec.Address, err)
	}
	return nil
}
