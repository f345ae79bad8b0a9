package service

import (
	"context"
	"errors"
	"time"

	"github.com/qa-forum-api/internal/models"
	"github.com/qa-forum-api/internal/repository"
	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"
)

// accountService is the concrete implementation of AccountService
type accountService struct {
	repos *repository.Repositories
	log   zerolog.Logger
}

func newAccountService(repos *repository.Repositories, log zerolog.Logger) AccountService {
	return &accountService{
		repos: repos,
		log:   log.With().Str("service", "account").Logger(),
	}
}

// Register creates a new account with a hashed password, zero reputation and
// empty ownership lists. Returns ErrDuplicateEmail when the email is taken.
func (s *accountService) Register(ctx context.Context, username, email, password string) error {
	exists, err := s.repos.Account.EmailExists(ctx, email)
	if err != nil {
		return err
	}
	if exists {
		return ErrDuplicateEmail
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	account := &models.Account{
		ID:          newID(),
		Username:    username,
		Email:       email,
		Password:    string(hash),
		RegDateTime: time.Now(),
	}
	if err := s.repos.Account.Create(ctx, account); err != nil {
		return err
	}

	s.log.Info().Str("email", email).Msg("Account registered")
	return nil
}

// Login verifies the credentials. Returns ErrEmailNotFound or
// ErrPasswordMismatch; session establishment is the transport's concern.
func (s *accountService) Login(ctx context.Context, email, password string) error {
	account, err := s.repos.Account.GetByEmail(ctx, email)
	if err != nil {
		return err
	}
	if account == nil {
		return ErrEmailNotFound
	}

	if err := bcrypt.CompareHashAndPassword([]byte(account.Password), []byte(password)); err != nil {
		return ErrPasswordMismatch
	}
	return nil
}

// GetProfile returns the account's display profile
func (s *accountService) GetProfile(ctx context.Context, email string) (*models.Profile, error) {
	return buildProfile(ctx, s.repos, email)
}

// RemoveAccount deletes the account and everything it owns: tags first (so
// the exclusivity check runs while the account's questions still exist),
// then answers, then questions, then the account document. Tags still used
// by another user's question survive the cascade. Returns the requesting
// admin's refreshed profile.
func (s *accountService) RemoveAccount(ctx context.Context, userEmail, adminEmail string) (*models.Profile, error) {
	err := s.repos.InTx(ctx, func(r *repository.Repositories) error {
		account, err := r.Account.GetByEmail(ctx, userEmail)
		if err != nil {
			return err
		}
		if account == nil {
			return ErrNotFound
		}

		for _, tagID := range account.TagIDs {
			inUse, err := tagUsedByOthers(ctx, r, userEmail, tagID)
			if err != nil {
				return err
			}
			if inUse {
				continue
			}
			if err := removeTagCascade(ctx, r, userEmail, tagID); err != nil {
				return err
			}
		}

		for _, answerID := range account.AnswerIDs {
			if err := removeAnswerCascade(ctx, r, userEmail, answerID); err != nil && !errors.Is(err, ErrNotFound) {
				return err
			}
		}

		for _, questionID := range account.QuestionIDs {
			if err := removeQuestionCascade(ctx, r, userEmail, questionID); err != nil && !errors.Is(err, ErrNotFound) {
				return err
			}
		}

		return r.Account.Delete(ctx, userEmail)
	})
	if err != nil {
		return nil, err
	}

	s.log.Info().Str("email", userEmail).Msg("Account removed")
	return buildProfile(ctx, s.repos, adminEmail)
}
