// filepath: internal/repository/repository.go
package repository

import (
	"database/sql"
	"fmt"
	"itemhub/internal/config"
	"itemhub/internal/db/migrations"
	"itemhub/internal/models"

	sq "github.com/Masterminds/squirrel"
	"github.com/patrickmn/go-cache"
	"github.com/pressly/goose/v3"
	_ "modernc.org/sqlite" // SQLite driver
)

// Catalog is the storage interface consumed by the service layer.
type Catalog interface {
	Close() error

	// Category
	ResolveOrCreateCategory(name string) (int64, error)

	// Item
	InsertItem(name string, categoryID int64, imageName string) (int64, error)
	AddItem(name, categoryName, imageName string) (int64, error)
	GetItem(id int64) (*models.Item, error)
	ListItems() ([]models.Item, error)
	SearchItems(keyword string) ([]models.Item, error)
}

// Repository is the SQLite-backed implementation of Catalog.
type Repository struct {
	DB      *sql.DB
	Builder sq.StatementBuilderType // SQL Query Builder

	// categories caches resolved name->id pairs. Safe to cache forever:
	// category rows are never renamed or deleted.
	categories *cache.Cache
}

var _ Catalog = (*Repository)(nil)

// NewRepository opens the SQLite database at the configured path and
// configures it for use. It enables WAL mode and foreign key enforcement.
func NewRepository(cfg *config.Config) (*Repository, error) {
	db, err := sql.Open("sqlite", cfg.Database.Path)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}

	// WAL mode for better concurrent read performance.
	if _, err := db.Exec("PRAGMA journal_mode=WAL"); err != nil {
		db.Close()
		return nil, fmt.Errorf("enable WAL mode: %w", err)
	}

	// Referential integrity for items.category_id is enforced here.
	if _, err := db.Exec("PRAGMA foreign_keys=ON"); err != nil {
		db.Close()
		return nil, fmt.Errorf("enable foreign keys: %w", err)
	}

	// A single writer connection keeps SQLite happy under concurrent requests.
	db.SetMaxOpenConns(1)

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("ping database: %w", err)
	}

	return &Repository{
		DB:         db,
		Builder:    sq.StatementBuilder.PlaceholderFormat(sq.Question),
		categories: cache.New(cache.NoExpiration, 0),
	}, nil
}

// Close closes the underlying database handle.
func (s *Repository) Close() error {
	return s.DB.Close()
}

// EnsureSchema migrates the database to the most recent version using the
// embedded migrations. Called on startup so a fresh deployment boots without
// a separate migrate step.
func (s *Repository) EnsureSchema() error {
	goose.SetBaseFS(migrations.FS)
	if err := goose.SetDialect("sqlite3"); err != nil {
		return fmt.Errorf("failed to set dialect: %w", err)
	}
	if err := goose.Up(s.DB, "."); err != nil {
		return fmt.Errorf("migration failed: %w", err)
	}
	return nil
}
