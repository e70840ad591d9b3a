package db

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/dmitrijs2005/bookline/internal/cryptox"
	"github.com/dmitrijs2005/bookline/internal/server/bookings"
	"github.com/dmitrijs2005/bookline/internal/server/migrations"
	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/pressly/goose/v3"
)

type PostgresRepositoryManager struct {
	db       *sql.DB
	bookings bookings.Repository
}

func (m *PostgresRepositoryManager) Bookings() bookings.Repository {
	return m.bookings
}

func (m *PostgresRepositoryManager) Close() error {
	return m.db.Close()
}

func (m *PostgresRepositoryManager) RunMigrations(ctx context.Context) error {
	goose.SetBaseFS(migrations.Migrations)

	if err := goose.UpContext(ctx, m.db, "."); err != nil {
		return err
	}

	return nil
}

// NewPostgresRepositoryManager opens the database, applies pending migrations
// and builds the booking repository around the given field cipher.
func NewPostgresRepositoryManager(dsn string, cipher *cryptox.FieldCipher) (RepositoryManager, error) {
	db, err := sql.Open("pgx", dsn)
	if err != nil {
		return nil, fmt.Errorf("db open error: %w", err)
	}

	m := &PostgresRepositoryManager{
		db:       db,
		bookings: bookings.NewPostgresRepository(db, cipher),
	}

	if err := m.RunMigrations(context.Background()); err != nil {
		return nil, fmt.Errorf("migration error: %w", err)
	}

	return m, nil
}
