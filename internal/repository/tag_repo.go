package repository

import (
	"context"
	"database/sql"
	"strings"

	"github.com/lib/pq"
	"github.com/qa-forum-api/internal/database"
	"github.com/qa-forum-api/internal/models"
)

// tagRepo is the concrete implementation of TagRepository
type tagRepo struct {
	db database.Querier
}

// NewTagRepo creates a new tag repository
func NewTagRepo(db database.Querier) TagRepository {
	return &tagRepo{db: db}
}

// Create inserts a new tag
func (r *tagRepo) Create(ctx context.Context, tag *models.Tag) error {
	_, err := r.db.ExecContext(ctx, "INSERT INTO tags (id, name) VALUES ($1, $2)", tag.ID, tag.Name)
	return err
}

// Rename changes the tag's name in place
func (r *tagRepo) Rename(ctx context.Context, id, name string) error {
	_, err := r.db.ExecContext(ctx, "UPDATE tags SET name = $2 WHERE id = $1", id, name)
	return err
}

// Delete removes a tag by id
func (r *tagRepo) Delete(ctx context.Context, id string) error {
	_, err := r.db.ExecContext(ctx, "DELETE FROM tags WHERE id = $1", id)
	return err
}

// GetByID retrieves a tag by id
func (r *tagRepo) GetByID(ctx context.Context, id string) (*models.Tag, error) {
	var tag models.Tag
	err := r.db.QueryRowContext(ctx, "SELECT id, name FROM tags WHERE id = $1", id).Scan(&tag.ID, &tag.Name)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &tag, nil
}

// GetByName retrieves a tag by name, case-insensitively
func (r *tagRepo) GetByName(ctx context.Context, name string) (*models.Tag, error) {
	var tag models.Tag
	err := r.db.QueryRowContext(ctx, "SELECT id, name FROM tags WHERE LOWER(name) = $1", strings.ToLower(name)).
		Scan(&tag.ID, &tag.Name)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &tag, nil
}

// GetByIDs retrieves tags by id, preserving the order of ids
func (r *tagRepo) GetByIDs(ctx context.Context, ids []string) ([]*models.Tag, error) {
	if len(ids) == 0 {
		return nil, nil
	}
	rows, err := r.db.QueryContext(ctx, "SELECT id, name FROM tags WHERE id = ANY($1)", pq.Array(ids))
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	byID := make(map[string]*models.Tag, len(ids))
	for rows.Next() {
		var tag models.Tag
		if err := rows.Scan(&tag.ID, &tag.Name); err != nil {
			return nil, err
		}
		byID[tag.ID] = &tag
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	ordered := make([]*models.Tag, 0, len(byID))
	for _, id := range ids {
		if t, ok := byID[id]; ok {
			ordered = append(ordered, t)
		}
	}
	return ordered, nil
}

// GetAll retrieves every tag, alphabetically
func (r *tagRepo) GetAll(ctx context.Context) ([]*models.Tag, error) {
	rows, err := r.db.QueryContext(ctx, "SELECT id, name FROM tags ORDER BY name")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var tags []*models.Tag
	for rows.Next() {
		var tag models.Tag
		if err := rows.Scan(&tag.ID, &tag.Name); err != nil {
			return nil, err
		}
		tags = append(tags, &tag)
	}
	return tags, rows.Err()
}

// NameExists checks if a tag with the given name exists, case-insensitively
func (r *tagRepo) NameExists(ctx context.Context, name string) (bool, error) {
	var exists bool
	err := r.db.QueryRowContext(ctx, "SELECT EXISTS(SELECT 1 FROM tags WHERE LOWER(name) = $1)", strings.ToLower(name)).Scan(&exists)
	return exists, err
}
