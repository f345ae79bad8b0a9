package service

import (
	"context"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/qa-forum-api/internal/models"
	"github.com/qa-forum-api/internal/repository"
	"github.com/rs/zerolog"
)

// questionService is the concrete implementation of QuestionService
type questionService struct {
	repos *repository.Repositories
	log   zerolog.Logger
}

func newQuestionService(repos *repository.Repositories, log zerolog.Logger) QuestionService {
	return &questionService{
		repos: repos,
		log:   log.With().Str("service", "question").Logger(),
	}
}

// GetAll returns every question, fully populated
func (s *questionService) GetAll(ctx context.Context) ([]*models.Question, error) {
	questions, err := s.repos.Question.GetAll(ctx)
	if err != nil {
		return nil, err
	}
	if questions == nil {
		questions = []*models.Question{}
	}
	if err := populateQuestions(ctx, s.repos, questions); err != nil {
		return nil, err
	}
	return questions, nil
}

// Add persists a new question. Tag names are resolved case-insensitively,
// creating tags that do not exist yet; a non-admin account below the
// reputation threshold may only reuse existing tags. The question is
// appended to the account's question list and newly introduced tags to its
// tag list.
func (s *questionService) Add(ctx context.Context, email string, question *models.Question, tagNames []string) (*models.Question, error) {
	var created *models.Question
	err := s.repos.InTx(ctx, func(r *repository.Repositories) error {
		account, err := r.Account.GetByEmail(ctx, email)
		if err != nil {
			return err
		}
		if account == nil {
			return ErrNotFound
		}

		tagIDs, err := resolveTags(ctx, r, account, tagNames, true)
		if err != nil {
			return err
		}

		question.ID = newID()
		question.TagIDs = tagIDs
		question.AskedBy = account.Username
		if question.AskDateTime.IsZero() {
			question.AskDateTime = time.Now()
		}
		if err := r.Question.Create(ctx, question); err != nil {
			return err
		}
		if err := r.Account.PushQuestion(ctx, email, question.ID); err != nil {
			return err
		}

		created = question
		return populateQuestion(ctx, r, question)
	})
	if err != nil {
		return nil, err
	}

	s.log.Info().Str("question_id", created.ID).Str("asked_by", created.AskedBy).Msg("Question added")
	return created, nil
}

// Update overwrites the question's mutable fields and re-resolves its tags,
// mirroring Add minus the reputation gate: the edit path does not re-check
// reputation.
func (s *questionService) Update(ctx context.Context, email string, question *models.Question, tagNames []string) (*models.Question, error) {
	err := s.repos.InTx(ctx, func(r *repository.Repositories) error {
		account, err := r.Account.GetByEmail(ctx, email)
		if err != nil {
			return err
		}
		if account == nil {
			return ErrNotFound
		}

		existing, err := r.Question.GetByID(ctx, question.ID)
		if err != nil {
			return err
		}
		if existing == nil {
			return ErrNotFound
		}

		tagIDs, err := resolveTags(ctx, r, account, tagNames, false)
		if err != nil {
			return err
		}
		question.TagIDs = tagIDs
		return r.Question.Update(ctx, question)
	})
	if err != nil {
		return nil, err
	}
	return getPopulatedQuestion(ctx, s.repos, question.ID)
}

// Remove deletes the question, cascading through its answers and comments,
// and returns the account's refreshed profile.
func (s *questionService) Remove(ctx context.Context, email, id string) (*models.Profile, error) {
	err := s.repos.InTx(ctx, func(r *repository.Repositories) error {
		return removeQuestionCascade(ctx, r, email, id)
	})
	if err != nil {
		return nil, err
	}

	s.log.Info().Str("question_id", id).Msg("Question removed")
	return buildProfile(ctx, s.repos, email)
}

// View increments the question's view count, then returns it populated.
// Every fetch counts a view; repeat views are not deduplicated.
func (s *questionService) View(ctx context.Context, id string) (*models.Question, error) {
	if err := s.repos.Question.IncrementViews(ctx, id); err != nil {
		return nil, err
	}
	return getPopulatedQuestion(ctx, s.repos, id)
}

// Edit returns the question populated, without counting a view
func (s *questionService) Edit(ctx context.Context, id string) (*models.Question, error) {
	return getPopulatedQuestion(ctx, s.repos, id)
}

// UserAnswers returns the question with its answers partitioned into the
// given user's answers followed by everyone else's, each newest first, and
// the split index marking the boundary.
func (s *questionService) UserAnswers(ctx context.Context, email, id string) (*models.UserAnswers, error) {
	question, err := getPopulatedQuestion(ctx, s.repos, id)
	if err != nil {
		return nil, err
	}

	account, err := s.repos.Account.GetByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if account == nil {
		return nil, ErrNotFound
	}

	owned := make(map[string]bool, len(account.AnswerIDs))
	for _, answerID := range account.AnswerIDs {
		owned[answerID] = true
	}

	var mine, others []*models.Answer
	for _, a := range question.Answers {
		if owned[a.ID] {
			mine = append(mine, a)
		} else {
			others = append(others, a)
		}
	}
	sort.SliceStable(mine, func(i, j int) bool { return mine[i].AnsDateTime.After(mine[j].AnsDateTime) })
	sort.SliceStable(others, func(i, j int) bool { return others[i].AnsDateTime.After(others[j].AnsDateTime) })

	question.Answers = append(mine, others...)
	if question.Answers == nil {
		question.Answers = []*models.Answer{}
	}
	return &models.UserAnswers{Question: *question, Split: len(mine)}, nil
}

// Vote applies a ±1 change to the target's vote count and the corresponding
// reputation delta to the voter. Non-admin accounts below the reputation
// threshold may only vote on comments; comments cannot be downvoted and
// carry no reputation delta. Returns the populated parent question so the
// caller can re-render in place.
func (s *questionService) Vote(ctx context.Context, email, kind, questionID, targetID string, change int) (*models.Question, error) {
	if change != 1 && change != -1 {
		return nil, ErrInvalidVote
	}
	if kind == "comment" && change < 0 {
		return nil, ErrInvalidVote
	}

	err := s.repos.InTx(ctx, func(r *repository.Repositories) error {
		account, err := r.Account.GetByEmail(ctx, email)
		if err != nil {
			return err
		}
		if account == nil {
			return ErrNotFound
		}
		if !account.Admin && kind != "comment" && account.Reputation < models.MinReputation {
			return ErrInsufficientReputation
		}

		switch kind {
		case "question":
			err = r.Question.AddVotes(ctx, targetID, change)
		case "answer":
			err = r.Answer.AddVotes(ctx, targetID, change)
		default:
			err = r.Comment.AddVotes(ctx, targetID, change)
		}
		if err != nil {
			return err
		}

		if kind != "comment" {
			delta := models.UpvoteReputation
			if change < 0 {
				delta = models.DownvoteReputation
			}
			if err := r.Account.AddReputation(ctx, email, delta); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return getPopulatedQuestion(ctx, s.repos, questionID)
}

// AddComment appends a comment to a question or an answer, depending on
// kind. Commenting requires admin status or the reputation threshold.
// Returns the populated parent question.
func (s *questionService) AddComment(ctx context.Context, email, kind, questionID, targetID string, comment *models.Comment) (*models.Question, error) {
	err := s.repos.InTx(ctx, func(r *repository.Repositories) error {
		account, err := r.Account.GetByEmail(ctx, email)
		if err != nil {
			return err
		}
		if account == nil {
			return ErrNotFound
		}
		if !account.Admin && account.Reputation < models.MinReputation {
			return ErrInsufficientReputation
		}

		comment.ID = newID()
		comment.ComBy = account.Username
		if comment.ComDateTime.IsZero() {
			comment.ComDateTime = time.Now()
		}
		if err := r.Comment.Create(ctx, comment); err != nil {
			return err
		}

		if kind == "question" {
			return r.Question.PushComment(ctx, targetID, comment.ID)
		}
		return r.Answer.PushComment(ctx, targetID, comment.ID)
	})
	if err != nil {
		return nil, err
	}
	return getPopulatedQuestion(ctx, s.repos, questionID)
}

func newID() string {
	return uuid.New().String()
}

// normalizeTagNames lowercases tag names and drops duplicates, preserving
// first-occurrence order.
func normalizeTagNames(names []string) []string {
	seen := make(map[string]bool, len(names))
	out := make([]string, 0, len(names))
	for _, name := range names {
		name = strings.ToLower(strings.TrimSpace(name))
		if name == "" || seen[name] {
			continue
		}
		seen[name] = true
		out = append(out, name)
	}
	return out
}
