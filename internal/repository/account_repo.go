package repository

import (
	"context"
	"database/sql"

	"github.com/lib/pq"
	"github.com/qa-forum-api/internal/database"
	"github.com/qa-forum-api/internal/models"
)

// accountRepo is the concrete implementation of AccountRepository
type accountRepo struct {
	db database.Querier
}

// NewAccountRepo creates a new account repository
func NewAccountRepo(db database.Querier) AccountRepository {
	return &accountRepo{db: db}
}

const accountColumns = `id, username, email, password, admin, reg_date_time, reputation, question_ids, tag_ids, answer_ids`

// Create inserts a new account
func (r *accountRepo) Create(ctx context.Context, account *models.Account) error {
	query := `
		INSERT INTO accounts (id, username, email, password, admin, reg_date_time, reputation, question_ids, tag_ids, answer_ids)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
	`
	_, err := r.db.ExecContext(ctx, query,
		account.ID, account.Username, account.Email, account.Password, account.Admin,
		account.RegDateTime, account.Reputation,
		pq.Array(account.QuestionIDs), pq.Array(account.TagIDs), pq.Array(account.AnswerIDs),
	)
	return err
}

// GetByEmail retrieves an account by email
func (r *accountRepo) GetByEmail(ctx context.Context, email string) (*models.Account, error) {
	query := `SELECT ` + accountColumns + ` FROM accounts WHERE email = $1`

	account, err := scanAccount(r.db.QueryRowContext(ctx, query, email))
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return account, nil
}

// GetAll retrieves every account, oldest registration first
func (r *accountRepo) GetAll(ctx context.Context) ([]*models.Account, error) {
	query := `SELECT ` + accountColumns + ` FROM accounts ORDER BY reg_date_time`
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var accounts []*models.Account
	for rows.Next() {
		account, err := scanAccount(rows)
		if err != nil {
			return nil, err
		}
		accounts = append(accounts, account)
	}
	return accounts, rows.Err()
}

// EmailExists checks if an account with the given email exists
func (r *accountRepo) EmailExists(ctx context.Context, email string) (bool, error) {
	var exists bool
	err := r.db.QueryRowContext(ctx, "SELECT EXISTS(SELECT 1 FROM accounts WHERE email = $1)", email).Scan(&exists)
	return exists, err
}

// Delete removes the account with the given email
func (r *accountRepo) Delete(ctx context.Context, email string) error {
	_, err := r.db.ExecContext(ctx, "DELETE FROM accounts WHERE email = $1", email)
	return err
}

// AddReputation applies a reputation delta. There is no floor: reputation
// may go negative.
func (r *accountRepo) AddReputation(ctx context.Context, email string, delta int) error {
	_, err := r.db.ExecContext(ctx, "UPDATE accounts SET reputation = reputation + $2 WHERE email = $1", email, delta)
	return err
}

// PushQuestion appends a question id to the account's question list
func (r *accountRepo) PushQuestion(ctx context.Context, email, questionID string) error {
	query := `UPDATE accounts SET question_ids = array_append(question_ids, $2::uuid) WHERE email = $1`
	_, err := r.db.ExecContext(ctx, query, email, questionID)
	return err
}

// PullQuestion removes a question id from the account's question list
func (r *accountRepo) PullQuestion(ctx context.Context, email, questionID string) error {
	query := `UPDATE accounts SET question_ids = array_remove(question_ids, $2::uuid) WHERE email = $1`
	_, err := r.db.ExecContext(ctx, query, email, questionID)
	return err
}

// PushAnswer appends an answer id to the account's answer list
func (r *accountRepo) PushAnswer(ctx context.Context, email, answerID string) error {
	query := `UPDATE accounts SET answer_ids = array_append(answer_ids, $2::uuid) WHERE email = $1`
	_, err := r.db.ExecContext(ctx, query, email, answerID)
	return err
}

// PullAnswer removes an answer id from the account's answer list
func (r *accountRepo) PullAnswer(ctx context.Context, email, answerID string) error {
	query := `UPDATE accounts SET answer_ids = array_remove(answer_ids, $2::uuid) WHERE email = $1`
	_, err := r.db.ExecContext(ctx, query, email, answerID)
	return err
}

// PushTag appends a tag id to the account's tag list unless it is already
// associated with the account.
func (r *accountRepo) PushTag(ctx context.Context, email, tagID string) error {
	query := `UPDATE accounts SET tag_ids = array_append(tag_ids, $2::uuid) WHERE email = $1 AND NOT ($2 = ANY(tag_ids))`
	_, err := r.db.ExecContext(ctx, query, email, tagID)
	return err
}

// PullTag removes a tag id from the account's tag list
func (r *accountRepo) PullTag(ctx context.Context, email, tagID string) error {
	query := `UPDATE accounts SET tag_ids = array_remove(tag_ids, $2::uuid) WHERE email = $1`
	_, err := r.db.ExecContext(ctx, query, email, tagID)
	return err
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanAccount(row rowScanner) (*models.Account, error) {
	var account models.Account
	var questionIDs, tagIDs, answerIDs pq.StringArray
	err := row.Scan(
		&account.ID, &account.Username, &account.Email, &account.Password, &account.Admin,
		&account.RegDateTime, &account.Reputation,
		&questionIDs, &tagIDs, &answerIDs,
	)
	if err != nil {
		return nil, err
	}
	account.QuestionIDs = questionIDs
	account.TagIDs = tagIDs
	account.AnswerIDs = answerIDs
	return &account, nil
}
