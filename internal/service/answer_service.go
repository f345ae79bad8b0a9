package service

import (
	"context"
	"time"

	"github.com/qa-forum-api/internal/models"
	"github.com/qa-forum-api/internal/repository"
	"github.com/rs/zerolog"
)

// answerService is the concrete implementation of AnswerService
type answerService struct {
	repos *repository.Repositories
	log   zerolog.Logger
}

func newAnswerService(repos *repository.Repositories, log zerolog.Logger) AnswerService {
	return &answerService{
		repos: repos,
		log:   log.With().Str("service", "answer").Logger(),
	}
}

// GetAll returns every answer
func (s *answerService) GetAll(ctx context.Context) ([]*models.Answer, error) {
	answers, err := s.repos.Answer.GetAll(ctx)
	if err != nil {
		return nil, err
	}
	if answers == nil {
		answers = []*models.Answer{}
	}
	return answers, nil
}

// Add persists a new answer under the account's username and appends it to
// both the question's and the account's answer lists. Answering carries no
// reputation gate. Returns the refreshed question.
func (s *answerService) Add(ctx context.Context, email, questionID string, answer *models.Answer) (*models.Question, error) {
	err := s.repos.InTx(ctx, func(r *repository.Repositories) error {
		account, err := r.Account.GetByEmail(ctx, email)
		if err != nil {
			return err
		}
		if account == nil {
			return ErrNotFound
		}

		answer.ID = newID()
		answer.AnsBy = account.Username
		if answer.AnsDateTime.IsZero() {
			answer.AnsDateTime = time.Now()
		}
		if err := r.Answer.Create(ctx, answer); err != nil {
			return err
		}
		if err := r.Question.PushAnswer(ctx, questionID, answer.ID); err != nil {
			return err
		}
		return r.Account.PushAnswer(ctx, email, answer.ID)
	})
	if err != nil {
		return nil, err
	}

	s.log.Info().Str("answer_id", answer.ID).Str("question_id", questionID).Msg("Answer added")
	return getPopulatedQuestion(ctx, s.repos, questionID)
}

// Update overwrites the answer's text by id and returns the refreshed
// question. Ownership is enforced by the edit boundary on the client; the
// operation itself only checks that the answer exists.
func (s *answerService) Update(ctx context.Context, questionID string, answer *models.Answer) (*models.Question, error) {
	existing, err := s.repos.Answer.GetByID(ctx, answer.ID)
	if err != nil {
		return nil, err
	}
	if existing == nil {
		return nil, ErrNotFound
	}
	if err := s.repos.Answer.UpdateText(ctx, answer.ID, answer.Text); err != nil {
		return nil, err
	}
	return getPopulatedQuestion(ctx, s.repos, questionID)
}

// Edit returns the answer with its comments populated
func (s *answerService) Edit(ctx context.Context, id string) (*models.Answer, error) {
	answer, err := s.repos.Answer.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if answer == nil {
		return nil, ErrNotFound
	}
	if err := populateAnswerComments(ctx, s.repos, []*models.Answer{answer}); err != nil {
		return nil, err
	}
	return answer, nil
}

// Remove deletes the answer and its comments, detaching it from the account
// and from whichever question references it. An empty questionID means the
// call is part of a larger cascade and no refreshed question is wanted.
func (s *answerService) Remove(ctx context.Context, email, id, questionID string) (*models.Question, error) {
	err := s.repos.InTx(ctx, func(r *repository.Repositories) error {
		return removeAnswerCascade(ctx, r, email, id)
	})
	if err != nil {
		return nil, err
	}

	s.log.Info().Str("answer_id", id).Msg("Answer removed")
	if questionID == "" {
		return nil, nil
	}
	return getPopulatedQuestion(ctx, s.repos, questionID)
}
