package repository

import (
	"context"
	"database/sql"

	"github.com/lib/pq"
	"github.com/qa-forum-api/internal/database"
	"github.com/qa-forum-api/internal/models"
)

// questionRepo is the concrete implementation of QuestionRepository
type questionRepo struct {
	db database.Querier
}

// NewQuestionRepo creates a new question repository
func NewQuestionRepo(db database.Querier) QuestionRepository {
	return &questionRepo{db: db}
}

const questionColumns = `id, title, summary, text, tag_ids, comment_ids, answer_ids, asked_by, ask_date_time, views, votes`

// Create inserts a new question
func (r *questionRepo) Create(ctx context.Context, question *models.Question) error {
	query := `
		INSERT INTO questions (id, title, summary, text, tag_ids, comment_ids, answer_ids, asked_by, ask_date_time, views, votes)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
	`
	_, err := r.db.ExecContext(ctx, query,
		question.ID, question.Title, question.Summary, question.Text,
		pq.Array(question.TagIDs), pq.Array(question.CommentIDs), pq.Array(question.AnswerIDs),
		question.AskedBy, question.AskDateTime, question.Views, question.Votes,
	)
	return err
}

// Update overwrites the question's mutable fields: title, summary, text and
// the tag list. Answers, comments, author, timestamps and counters are left
// untouched.
func (r *questionRepo) Update(ctx context.Context, question *models.Question) error {
	query := `UPDATE questions SET title = $2, summary = $3, text = $4, tag_ids = $5 WHERE id = $1`
	_, err := r.db.ExecContext(ctx, query,
		question.ID, question.Title, question.Summary, question.Text, pq.Array(question.TagIDs),
	)
	return err
}

// Delete removes a question by id
func (r *questionRepo) Delete(ctx context.Context, id string) error {
	_, err := r.db.ExecContext(ctx, "DELETE FROM questions WHERE id = $1", id)
	return err
}

// GetByID retrieves a question by id
func (r *questionRepo) GetByID(ctx context.Context, id string) (*models.Question, error) {
	query := `SELECT ` + questionColumns + ` FROM questions WHERE id = $1`

	question, err := scanQuestion(r.db.QueryRowContext(ctx, query, id))
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return question, nil
}

// GetByIDs retrieves questions by id, preserving the order of ids
func (r *questionRepo) GetByIDs(ctx context.Context, ids []string) ([]*models.Question, error) {
	if len(ids) == 0 {
		return nil, nil
	}
	query := `SELECT ` + questionColumns + ` FROM questions WHERE id = ANY($1)`
	questions, err := r.queryQuestions(ctx, query, pq.Array(ids))
	if err != nil {
		return nil, err
	}

	byID := make(map[string]*models.Question, len(questions))
	for _, q := range questions {
		byID[q.ID] = q
	}
	ordered := make([]*models.Question, 0, len(questions))
	for _, id := range ids {
		if q, ok := byID[id]; ok {
			ordered = append(ordered, q)
		}
	}
	return ordered, nil
}

// GetAll retrieves every question, oldest first
func (r *questionRepo) GetAll(ctx context.Context) ([]*models.Question, error) {
	query := `SELECT ` + questionColumns + ` FROM questions ORDER BY ask_date_time`
	return r.queryQuestions(ctx, query)
}

// GetByAnswerIDs retrieves the questions whose answer lists contain any of
// the given answer ids.
func (r *questionRepo) GetByAnswerIDs(ctx context.Context, answerIDs []string) ([]*models.Question, error) {
	if len(answerIDs) == 0 {
		return nil, nil
	}
	query := `SELECT ` + questionColumns + ` FROM questions WHERE answer_ids && $1 ORDER BY ask_date_time`
	return r.queryQuestions(ctx, query, pq.Array(answerIDs))
}

// GetByTagID retrieves the questions tagged with the given tag
func (r *questionRepo) GetByTagID(ctx context.Context, tagID string) ([]*models.Question, error) {
	query := `SELECT ` + questionColumns + ` FROM questions WHERE $1 = ANY(tag_ids) ORDER BY ask_date_time`
	return r.queryQuestions(ctx, query, tagID)
}

// IncrementViews adds one view to the question. Every fetch counts: repeat
// views by the same viewer are not deduplicated.
func (r *questionRepo) IncrementViews(ctx context.Context, id string) error {
	_, err := r.db.ExecContext(ctx, "UPDATE questions SET views = views + 1 WHERE id = $1", id)
	return err
}

// AddVotes applies a vote delta to the question
func (r *questionRepo) AddVotes(ctx context.Context, id string, delta int) error {
	_, err := r.db.ExecContext(ctx, "UPDATE questions SET votes = votes + $2 WHERE id = $1", id, delta)
	return err
}

// PushAnswer appends an answer id to the question's answer list
func (r *questionRepo) PushAnswer(ctx context.Context, questionID, answerID string) error {
	query := `UPDATE questions SET answer_ids = array_append(answer_ids, $2::uuid) WHERE id = $1`
	_, err := r.db.ExecContext(ctx, query, questionID, answerID)
	return err
}

// PullAnswer removes an answer id from whichever question references it
func (r *questionRepo) PullAnswer(ctx context.Context, answerID string) error {
	query := `UPDATE questions SET answer_ids = array_remove(answer_ids, $1::uuid) WHERE $1 = ANY(answer_ids)`
	_, err := r.db.ExecContext(ctx, query, answerID)
	return err
}

// PushComment appends a comment id to the question's comment list
func (r *questionRepo) PushComment(ctx context.Context, questionID, commentID string) error {
	query := `UPDATE questions SET comment_ids = array_append(comment_ids, $2::uuid) WHERE id = $1`
	_, err := r.db.ExecContext(ctx, query, questionID, commentID)
	return err
}

// PullTag removes a tag id from every question's tag list
func (r *questionRepo) PullTag(ctx context.Context, tagID string) error {
	query := `UPDATE questions SET tag_ids = array_remove(tag_ids, $1::uuid) WHERE $1 = ANY(tag_ids)`
	_, err := r.db.ExecContext(ctx, query, tagID)
	return err
}

func (r *questionRepo) queryQuestions(ctx context.Context, query string, args ...interface{}) ([]*models.Question, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var questions []*models.Question
	for rows.Next() {
		question, err := scanQuestion(rows)
		if err != nil {
			return nil, err
		}
		questions = append(questions, question)
	}
	return questions, rows.Err()
}

func scanQuestion(row rowScanner) (*models.Question, error) {
	var question models.Question
	var tagIDs, commentIDs, answerIDs pq.StringArray
	err := row.Scan(
		&question.ID, &question.Title, &question.Summary, &question.Text,
		&tagIDs, &commentIDs, &answerIDs,
		&question.AskedBy, &question.AskDateTime, &question.Views, &question.Votes,
	)
	if err != nil {
		return nil, err
	}
	question.TagIDs = tagIDs
	question.CommentIDs = commentIDs
	question.AnswerIDs = answerIDs
	return &question, nil
}
