package repository

import (
	"context"

	"github.com/qa-forum-api/internal/database"
	"github.com/qa-forum-api/internal/models"
)

// AccountRepository defines the interface for account data operations.
// The Push/Pull methods maintain the account's ownership lists the way the
// document model does: appending and removing entity ids in place.
type AccountRepository interface {
	Create(ctx context.Context, account *models.Account) error
	GetByEmail(ctx context.Context, email string) (*models.Account, error)
	GetAll(ctx context.Context) ([]*models.Account, error)
	EmailExists(ctx context.Context, email string) (bool, error)
	Delete(ctx context.Context, email string) error
	AddReputation(ctx context.Context, email string, delta int) error
	PushQuestion(ctx context.Context, email, questionID string) error
	PullQuestion(ctx context.Context, email, questionID string) error
	PushAnswer(ctx context.Context, email, answerID string) error
	PullAnswer(ctx context.Context, email, answerID string) error
	PushTag(ctx context.Context, email, tagID string) error
	PullTag(ctx context.Context, email, tagID string) error
}

// QuestionRepository defines the interface for question data operations
type QuestionRepository interface {
	Create(ctx context.Context, question *models.Question) error
	Update(ctx context.Context, question *models.Question) error
	Delete(ctx context.Context, id string) error
	GetByID(ctx context.Context, id string) (*models.Question, error)
	GetByIDs(ctx context.Context, ids []string) ([]*models.Question, error)
	GetAll(ctx context.Context) ([]*models.Question, error)
	GetByAnswerIDs(ctx context.Context, answerIDs []string) ([]*models.Question, error)
	GetByTagID(ctx context.Context, tagID string) ([]*models.Question, error)
	IncrementViews(ctx context.Context, id string) error
	AddVotes(ctx context.Context, id string, delta int) error
	PushAnswer(ctx context.Context, questionID, answerID string) error
	PullAnswer(ctx context.Context, answerID string) error
	PushComment(ctx context.Context, questionID, commentID string) error
	PullTag(ctx context.Context, tagID string) error
}

// AnswerRepository defines the interface for answer data operations
type AnswerRepository interface {
	Create(ctx context.Context, answer *models.Answer) error
	UpdateText(ctx context.Context, id, text string) error
	Delete(ctx context.Context, id string) error
	GetByID(ctx context.Context, id string) (*models.Answer, error)
	GetByIDs(ctx context.Context, ids []string) ([]*models.Answer, error)
	GetAll(ctx context.Context) ([]*models.Answer, error)
	AddVotes(ctx context.Context, id string, delta int) error
	PushComment(ctx context.Context, answerID, commentID string) error
}

// CommentRepository defines the interface for comment data operations
type CommentRepository interface {
	Create(ctx context.Context, comment *models.Comment) error
	GetByIDs(ctx context.Context, ids []string) ([]*models.Comment, error)
	DeleteByIDs(ctx context.Context, ids []string) error
	AddVotes(ctx context.Context, id string, delta int) error
}

// TagRepository defines the interface for tag data operations
type TagRepository interface {
	Create(ctx context.Context, tag *models.Tag) error
	Rename(ctx context.Context, id, name string) error
	Delete(ctx context.Context, id string) error
	GetByID(ctx context.Context, id string) (*models.Tag, error)
	GetByName(ctx context.Context, name string) (*models.Tag, error)
	GetByIDs(ctx context.Context, ids []string) ([]*models.Tag, error)
	GetAll(ctx context.Context) ([]*models.Tag, error)
	NameExists(ctx context.Context, name string) (bool, error)
}

// Repositories holds all repository interfaces
type Repositories struct {
	Account  AccountRepository
	Question QuestionRepository
	Answer   AnswerRepository
	Comment  CommentRepository
	Tag      TagRepository

	db *database.DB
}

// New creates all repositories with the given database connection
func New(db *database.DB) *Repositories {
	r := forQuerier(db)
	r.db = db
	return r
}

func forQuerier(q database.Querier) *Repositories {
	return &Repositories{
		Account:  NewAccountRepo(q),
		Question: NewQuestionRepo(q),
		Answer:   NewAnswerRepo(q),
		Comment:  NewCommentRepo(q),
		Tag:      NewTagRepo(q),
	}
}

// InTx runs fn against repositories bound to a single transaction, so a
// multi-entity cascade either lands completely or rolls back. Repositories
// without a database handle (in-memory test doubles) run fn directly.
func (r *Repositories) InTx(ctx context.Context, fn func(*Repositories) error) error {
	if r.db == nil {
		return fn(r)
	}
	return r.db.InTx(ctx, func(q database.Querier) error {
		return fn(forQuerier(q))
	})
}
