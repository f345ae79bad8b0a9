package service

import (
	"context"

	"github.com/qa-forum-api/internal/models"
	"github.com/qa-forum-api/internal/repository"
	"github.com/rs/zerolog"
)

// AccountService defines the interface for account operations
type AccountService interface {
	Register(ctx context.Context, username, email, password string) error
	Login(ctx context.Context, email, password string) error
	GetProfile(ctx context.Context, email string) (*models.Profile, error)
	RemoveAccount(ctx context.Context, userEmail, adminEmail string) (*models.Profile, error)
}

// QuestionService defines the interface for question operations
type QuestionService interface {
	GetAll(ctx context.Context) ([]*models.Question, error)
	Add(ctx context.Context, email string, question *models.Question, tagNames []string) (*models.Question, error)
	Update(ctx context.Context, email string, question *models.Question, tagNames []string) (*models.Question, error)
	Remove(ctx context.Context, email, id string) (*models.Profile, error)
	View(ctx context.Context, id string) (*models.Question, error)
	Edit(ctx context.Context, id string) (*models.Question, error)
	UserAnswers(ctx context.Context, email, id string) (*models.UserAnswers, error)
	Vote(ctx context.Context, email, kind, questionID, targetID string, change int) (*models.Question, error)
	AddComment(ctx context.Context, email, kind, questionID, targetID string, comment *models.Comment) (*models.Question, error)
}

// AnswerService defines the interface for answer operations
type AnswerService interface {
	GetAll(ctx context.Context) ([]*models.Answer, error)
	Add(ctx context.Context, email, questionID string, answer *models.Answer) (*models.Question, error)
	Update(ctx context.Context, questionID string, answer *models.Answer) (*models.Question, error)
	Edit(ctx context.Context, id string) (*models.Answer, error)
	Remove(ctx context.Context, email, id, questionID string) (*models.Question, error)
}

// TagService defines the interface for tag operations
type TagService interface {
	GetAll(ctx context.Context) ([]*models.Tag, error)
	Update(ctx context.Context, email string, tag *models.Tag) (*models.Profile, error)
	Remove(ctx context.Context, email, id string) (*models.Profile, error)
	Edit(ctx context.Context, email, id string) (*models.Tag, error)
}

// Services holds all service interfaces
type Services struct {
	Account  AccountService
	Question QuestionService
	Answer   AnswerService
	Tag      TagService
}

// NewServices creates all services
func NewServices(repos *repository.Repositories, log zerolog.Logger) *Services {
	return &Services{
		Account:  newAccountService(repos, log),
		Question: newQuestionService(repos, log),
		Answer:   newAnswerService(repos, log),
		Tag:      newTagService(repos, log),
	}
}
