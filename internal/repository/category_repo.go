// filepath: internal/repository/category_repo.go
package repository

import (
	"database/sql"
	"fmt"
	"itemhub/internal/logging"
	"itemhub/internal/shared"
	"strings"

	"github.com/patrickmn/go-cache"
)

// ResolveOrCreateCategory returns the id of the category with the given name,
// inserting a new row if the name has not been seen before.
func (s *Repository) ResolveOrCreateCategory(name string) (int64, error) {
	if name == "" {
		return 0, fmt.Errorf("category: %w", shared.ErrInvalidName)
	}
	if id, ok := s.categories.Get(name); ok {
		return id.(int64), nil
	}

	tx, err := s.DB.Begin()
	if err != nil {
		return 0, err
	}
	defer tx.Rollback() // Rollback on any error

	id, err := resolveOrCreateCategoryTx(tx, name)
	if err != nil {
		return 0, err
	}
	if err := tx.Commit(); err != nil {
		return 0, err
	}

	s.categories.Set(name, id, cache.NoExpiration)
	return id, nil
}

// resolveOrCreateCategoryTx does the lookup-or-insert inside an existing
// transaction. The UNIQUE constraint on categories.name is the safety net for
// two racing inserts of a brand-new name: the loser re-reads the row the
// winner committed instead of duplicating it.
func resolveOrCreateCategoryTx(tx *sql.Tx, name string) (int64, error) {
	var id int64
	err := tx.QueryRow("SELECT id FROM categories WHERE name = ?", name).Scan(&id)
	if err == nil {
		return id, nil
	}
	if err != sql.ErrNoRows {
		return 0, err
	}

	res, err := tx.Exec("INSERT INTO categories (name) VALUES (?)", name)
	if err != nil {
		if isUniqueViolation(err) {
			logging.Log.Debugf("Lost category insert race for %q, re-reading", name)
			if err := tx.QueryRow("SELECT id FROM categories WHERE name = ?", name).Scan(&id); err != nil {
				return 0, err
			}
			return id, nil
		}
		return 0, err
	}
	return res.LastInsertId()
}

// isUniqueViolation reports whether err is a SQLite UNIQUE constraint failure.
func isUniqueViolation(err error) bool {
	return err != nil && strings.Contains(err.Error(), "UNIQUE constraint failed")
}

// isConstraintViolation reports whether err is any SQLite constraint failure
// (foreign key, CHECK, NOT NULL or UNIQUE).
func isConstraintViolation(err error) bool {
	return err != nil && strings.Contains(err.Error(), "constraint failed")
}
