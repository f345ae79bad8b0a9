package repository

import (
	"context"

	"github.com/lib/pq"
	"github.com/qa-forum-api/internal/database"
	"github.com/qa-forum-api/internal/models"
)

// commentRepo is the concrete implementation of CommentRepository
type commentRepo struct {
	db database.Querier
}

// NewCommentRepo creates a new comment repository
func NewCommentRepo(db database.Querier) CommentRepository {
	return &commentRepo{db: db}
}

// Create inserts a new comment
func (r *commentRepo) Create(ctx context.Context, comment *models.Comment) error {
	query := `
		INSERT INTO comments (id, text, com_by, com_date_time, votes)
		VALUES ($1, $2, $3, $4, $5)
	`
	_, err := r.db.ExecContext(ctx, query,
		comment.ID, comment.Text, comment.ComBy, comment.ComDateTime, comment.Votes,
	)
	return err
}

// GetByIDs retrieves comments by id, preserving the order of ids
func (r *commentRepo) GetByIDs(ctx context.Context, ids []string) ([]*models.Comment, error) {
	if len(ids) == 0 {
		return nil, nil
	}
	query := `SELECT id, text, com_by, com_date_time, votes FROM comments WHERE id = ANY($1)`
	rows, err := r.db.QueryContext(ctx, query, pq.Array(ids))
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	byID := make(map[string]*models.Comment, len(ids))
	for rows.Next() {
		var comment models.Comment
		err := rows.Scan(&comment.ID, &comment.Text, &comment.ComBy, &comment.ComDateTime, &comment.Votes)
		if err != nil {
			return nil, err
		}
		byID[comment.ID] = &comment
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	ordered := make([]*models.Comment, 0, len(byID))
	for _, id := range ids {
		if c, ok := byID[id]; ok {
			ordered = append(ordered, c)
		}
	}
	return ordered, nil
}

// DeleteByIDs removes all comments with the given ids
func (r *commentRepo) DeleteByIDs(ctx context.Context, ids []string) error {
	if len(ids) == 0 {
		return nil
	}
	_, err := r.db.ExecContext(ctx, "DELETE FROM comments WHERE id = ANY($1)", pq.Array(ids))
	return err
}

// AddVotes applies a vote delta to the comment
func (r *commentRepo) AddVotes(ctx context.Context, id string, delta int) error {
	_, err := r.db.ExecContext(ctx, "UPDATE comments SET votes = votes + $2 WHERE id = $1", id, delta)
	return err
}
