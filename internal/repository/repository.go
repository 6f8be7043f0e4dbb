package repository

import (
	"context"
	"log/slog"

	"github.com/UnknownOlympus/pitstop/internal/models"
	"github.com/jackc/pgx/v5/pgconn"
)

// Database is the subset of pgxpool.Pool used by the repository.
type Database interface {
	Exec(ctx context.Context, sql string, arguments ...any) (pgconn.CommandTag, error)
	Ping(ctx context.Context) error
}

type Repository struct {
	db  Database
	log *slog.Logger
}

// Interface is the journal the lookup service writes finished lookups to.
type Interface interface {
	RecordLookup(ctx context.Context, record models.LookupRecord) error
}

// NewRepository creates a new instance of Repository with the provided Database.
func NewRepository(db Database, log *slog.Logger) *Repository {
	return &Repository{db: db, log: log}
}
