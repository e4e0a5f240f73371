package pg

import (
	"context"
	"database/sql"
	"time"

	"github.com/itchan-dev/mailadmin/shared/config"
	"github.com/itchan-dev/mailadmin/shared/logger"
	sharedpg "github.com/itchan-dev/mailadmin/shared/storage/pg"
)

// Querier is satisfied by both *sql.DB and *sql.Tx (see shared/storage/pg).
type Querier = sharedpg.Querier

// per-operation timeout when the caller context has none
const defaultOpTimeout = 5 * time.Second

type Storage struct {
	db *sql.DB
}

// New connects to postgres, applies pending migrations and returns the storage.
func New(ctx context.Context, cfg *config.Config) (*Storage, error) {
	logger.Log.Info("connecting to db", "host", cfg.Private.Pg.Host, "dbname", cfg.Private.Pg.Dbname)
	db, err := sharedpg.Connect(ctx, cfg.Private.Pg, sharedpg.ConnectionConfigFrom(cfg.Public.Pool))
	if err != nil {
		return nil, err
	}
	logger.Log.Info("successfully connected to db")

	if err := Migrate(cfg.Private.Pg); err != nil {
		db.Close()
		return nil, err
	}
	return &Storage{db: db}, nil
}

// NewFromDB wraps an already opened database. Migrations are not applied.
func NewFromDB(db *sql.DB) *Storage {
	return &Storage{db: db}
}

func (s *Storage) Cleanup() error {
	return s.db.Close()
}

// Ping is used by the readiness probe.
func (s *Storage) Ping(ctx context.Context) error {
	return s.db.PingContext(ctx)
}

func (s *Storage) withTx(ctx context.Context, fn func(tx *sql.Tx) error) error {
	ctx, cancel := withTimeout(ctx)
	defer cancel()
	return sharedpg.WithTx(ctx, s.db, fn)
}

func withTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	if _, ok := ctx.Deadline(); ok {
		return ctx, func() {}
	}
	return context.WithTimeout(ctx, defaultOpTimeout)
}
