package repository

import (
	"context"
	"database/sql"

	"github.com/lib/pq"
	"github.com/qa-forum-api/internal/database"
	"github.com/qa-forum-api/internal/models"
)

// answerRepo is the concrete implementation of AnswerRepository
type answerRepo struct {
	db database.Querier
}

// NewAnswerRepo creates a new answer repository
func NewAnswerRepo(db database.Querier) AnswerRepository {
	return &answerRepo{db: db}
}

const answerColumns = `id, text, comment_ids, ans_by, ans_date_time, votes`

// Create inserts a new answer
func (r *answerRepo) Create(ctx context.Context, answer *models.Answer) error {
	query := `
		INSERT INTO answers (id, text, comment_ids, ans_by, ans_date_time, votes)
		VALUES ($1, $2, $3, $4, $5, $6)
	`
	_, err := r.db.ExecContext(ctx, query,
		answer.ID, answer.Text, pq.Array(answer.CommentIDs),
		answer.AnsBy, answer.AnsDateTime, answer.Votes,
	)
	return err
}

// UpdateText overwrites the answer's text
func (r *answerRepo) UpdateText(ctx context.Context, id, text string) error {
	_, err := r.db.ExecContext(ctx, "UPDATE answers SET text = $2 WHERE id = $1", id, text)
	return err
}

// Delete removes an answer by id
func (r *answerRepo) Delete(ctx context.Context, id string) error {
	_, err := r.db.ExecContext(ctx, "DELETE FROM answers WHERE id = $1", id)
	return err
}

// GetByID retrieves an answer by id
func (r *answerRepo) GetByID(ctx context.Context, id string) (*models.Answer, error) {
	query := `SELECT ` + answerColumns + ` FROM answers WHERE id = $1`

	answer, err := scanAnswer(r.db.QueryRowContext(ctx, query, id))
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return answer, nil
}

// GetByIDs retrieves answers by id, preserving the order of ids
func (r *answerRepo) GetByIDs(ctx context.Context, ids []string) ([]*models.Answer, error) {
	if len(ids) == 0 {
		return nil, nil
	}
	query := `SELECT ` + answerColumns + ` FROM answers WHERE id = ANY($1)`
	answers, err := r.queryAnswers(ctx, query, pq.Array(ids))
	if err != nil {
		return nil, err
	}

	byID := make(map[string]*models.Answer, len(answers))
	for _, a := range answers {
		byID[a.ID] = a
	}
	ordered := make([]*models.Answer, 0, len(answers))
	for _, id := range ids {
		if a, ok := byID[id]; ok {
			ordered = append(ordered, a)
		}
	}
	return ordered, nil
}

// GetAll retrieves every answer, oldest first
func (r *answerRepo) GetAll(ctx context.Context) ([]*models.Answer, error) {
	query := `SELECT ` + answerColumns + ` FROM answers ORDER BY ans_date_time`
	return r.queryAnswers(ctx, query)
}

// AddVotes applies a vote delta to the answer
func (r *answerRepo) AddVotes(ctx context.Context, id string, delta int) error {
	_, err := r.db.ExecContext(ctx, "UPDATE answers SET votes = votes + $2 WHERE id = $1", id, delta)
	return err
}

// PushComment appends a comment id to the answer's comment list
func (r *answerRepo) PushComment(ctx context.Context, answerID, commentID string) error {
	query := `UPDATE answers SET comment_ids = array_append(comment_ids, $2::uuid) WHERE id = $1`
	_, err := r.db.ExecContext(ctx, query, answerID, commentID)
	return err
}

func (r *answerRepo) queryAnswers(ctx context.Context, query string, args ...interface{}) ([]*models.Answer, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var answers []*models.Answer
	for rows.Next() {
		answer, err := scanAnswer(rows)
		if err != nil {
			return nil, err
		}
		answers = append(answers, answer)
	}
	return answers, rows.Err()
}

func scanAnswer(row rowScanner) (*models.Answer, error) {
	var answer models.Answer
	var commentIDs pq.StringArray
	err := row.Scan(
		&answer.ID, &answer.Text, &commentIDs,
		&answer.AnsBy, &answer.AnsDateTime, &answer.Votes,
	)
	if err != nil {
		return nil, err
	}
	answer.CommentIDs = commentIDs
	return &answer, nil
}
