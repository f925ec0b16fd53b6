// filepath: internal/repository/item_repo.go
package repository

import (
	"database/sql"
	"fmt"
	"itemhub/internal/logging"
	"itemhub/internal/models"
	"itemhub/internal/shared"
	"strings"

	sq "github.com/Masterminds/squirrel"
	"github.com/patrickmn/go-cache"
)

// AddItem resolves (or creates) the category and inserts the item as a single
// transaction: either both writes are durably committed, or neither is.
func (s *Repository) AddItem(name, categoryName, imageName string) (int64, error) {
	if name == "" || categoryName == "" || imageName == "" {
		return 0, fmt.Errorf("item: %w", shared.ErrInvalidName)
	}

	tx, err := s.DB.Begin()
	if err != nil {
		return 0, err
	}
	defer tx.Rollback() // Rollback on any error

	var categoryID int64
	if id, ok := s.categories.Get(categoryName); ok {
		// Cached ids stay valid forever: categories are never deleted.
		categoryID = id.(int64)
	} else {
		categoryID, err = resolveOrCreateCategoryTx(tx, categoryName)
		if err != nil {
			return 0, err
		}
	}

	res, err := tx.Exec(
		"INSERT INTO items (name, category_id, image_name) VALUES (?, ?, ?)",
		name, categoryID, imageName,
	)
	if err != nil {
		if isConstraintViolation(err) {
			return 0, fmt.Errorf("insert item: %w", shared.ErrConstraint)
		}
		return 0, err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, err
	}

	if err := tx.Commit(); err != nil {
		return 0, err
	}

	s.categories.Set(categoryName, categoryID, cache.NoExpiration)
	return id, nil
}

// InsertItem inserts an item referencing an already-resolved category id.
func (s *Repository) InsertItem(name string, categoryID int64, imageName string) (int64, error) {
	if name == "" || imageName == "" {
		return 0, fmt.Errorf("item: %w", shared.ErrInvalidName)
	}

	res, err := s.DB.Exec(
		"INSERT INTO items (name, category_id, image_name) VALUES (?, ?, ?)",
		name, categoryID, imageName,
	)
	if err != nil {
		if isConstraintViolation(err) {
			return 0, fmt.Errorf("insert item: %w", shared.ErrConstraint)
		}
		return 0, err
	}
	return res.LastInsertId()
}

// selectItems builds the denormalized read query. Every read path joins to
// categories so callers see category names, never raw ids.
func (s *Repository) selectItems() sq.SelectBuilder {
	return s.Builder.
		Select("items.id", "items.name", "categories.name AS category", "items.image_name").
		From("items").
		Join("categories ON categories.id = items.category_id").
		OrderBy("items.id ASC")
}

// GetItem retrieves a single item by id.
func (s *Repository) GetItem(id int64) (*models.Item, error) {
	query, args, err := s.selectItems().Where(sq.Eq{"items.id": id}).ToSql()
	if err != nil {
		return nil, err
	}

	var item models.Item
	err = s.DB.QueryRow(query, args...).
		Scan(&item.ID, &item.Name, &item.Category, &item.ImageName)
	if err == sql.ErrNoRows {
		return nil, shared.ErrItemNotFound
	}
	if err != nil {
		return nil, err
	}
	return &item, nil
}

// ListItems retrieves all items in insertion (id) order.
func (s *Repository) ListItems() ([]models.Item, error) {
	query, args, err := s.selectItems().ToSql()
	if err != nil {
		return nil, err
	}
	return s.queryItems(query, args...)
}

// SearchItems retrieves items whose name contains the keyword,
// case-insensitively. Matches the item name only, not the category name.
func (s *Repository) SearchItems(keyword string) ([]models.Item, error) {
	if keyword == "" {
		return nil, fmt.Errorf("keyword: %w", shared.ErrInvalidName)
	}

	pattern := "%" + escapeLike(keyword) + "%"
	query, args, err := s.selectItems().
		Where(sq.Expr("LOWER(items.name) LIKE LOWER(?) ESCAPE '\\'", pattern)).
		ToSql()
	if err != nil {
		return nil, err
	}
	return s.queryItems(query, args...)
}

func (s *Repository) queryItems(query string, args ...interface{}) ([]models.Item, error) {
	logging.Log.Debugf("Generated SQL for items read: %s", query)

	rows, err := s.DB.Query(query, args...)
	if err != nil {
		logging.Log.Errorf("Error executing items query: %v", err)
		return nil, err
	}
	defer rows.Close()

	// Initialize an empty, non-nil slice to ensure JSON marshals to [] instead of null.
	items := make([]models.Item, 0)
	for rows.Next() {
		var item models.Item
		if err := rows.Scan(&item.ID, &item.Name, &item.Category, &item.ImageName); err != nil {
			return nil, err
		}
		items = append(items, item)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return items, nil
}

// escapeLike escapes LIKE wildcards so the keyword is matched literally.
func escapeLike(s string) string {
	r := strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)
	return r.Replace(s)
}
