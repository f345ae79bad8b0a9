package service

import (
	"context"

	"github.com/qa-forum-api/internal/models"
	"github.com/qa-forum-api/internal/repository"
)

// Cascading deletion primitives. Callers run these inside Repositories.InTx
// so a partial cascade rolls back instead of leaving orphaned documents.

// removeAnswerCascade deletes an answer together with its comments, pulling
// it from the given account's answer list and from whichever question
// references it.
func removeAnswerCascade(ctx context.Context, r *repository.Repositories, email, id string) error {
	answer, err := r.Answer.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if answer == nil {
		return ErrNotFound
	}

	if err := r.Account.PullAnswer(ctx, email, id); err != nil {
		return err
	}
	if err := r.Question.PullAnswer(ctx, id); err != nil {
		return err
	}
	if err := r.Comment.DeleteByIDs(ctx, answer.CommentIDs); err != nil {
		return err
	}
	return r.Answer.Delete(ctx, id)
}

// removeQuestionCascade deletes a question, its answers and their comments,
// and its own comments, pruning the question from the account's list.
func removeQuestionCascade(ctx context.Context, r *repository.Repositories, email, id string) error {
	question, err := r.Question.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if question == nil {
		return ErrNotFound
	}

	if err := r.Account.PullQuestion(ctx, email, id); err != nil {
		return err
	}
	for _, answerID := range question.AnswerIDs {
		if err := removeAnswerCascade(ctx, r, email, answerID); err != nil {
			return err
		}
	}
	if err := r.Comment.DeleteByIDs(ctx, question.CommentIDs); err != nil {
		return err
	}
	return r.Question.Delete(ctx, id)
}

// removeTagCascade detaches the tag from the account and from every question
// referencing it, then deletes the tag. The in-use check happens first.
func removeTagCascade(ctx context.Context, r *repository.Repositories, email, id string) error {
	if err := r.Account.PullTag(ctx, email, id); err != nil {
		return err
	}
	if err := r.Question.PullTag(ctx, id); err != nil {
		return err
	}
	return r.Tag.Delete(ctx, id)
}

// tagUsedByOthers reports whether any question NOT owned by the given
// account uses the tag. Tags used only by the requester's own questions may
// be edited or removed freely.
func tagUsedByOthers(ctx context.Context, r *repository.Repositories, email, tagID string) (bool, error) {
	used, err := r.Question.GetByTagID(ctx, tagID)
	if err != nil {
		return false, err
	}
	if len(used) == 0 {
		return false, nil
	}

	account, err := r.Account.GetByEmail(ctx, email)
	if err != nil {
		return false, err
	}
	if account == nil {
		return false, ErrNotFound
	}

	owned := make(map[string]bool, len(account.QuestionIDs))
	for _, id := range account.QuestionIDs {
		owned[id] = true
	}
	for _, q := range used {
		if !owned[q.ID] {
			return true, nil
		}
	}
	return false, nil
}

// resolveTags maps tag names to tag ids, creating tags that do not exist
// yet. Names are compared case-insensitively and stored lowercase. When
// gate is set, a non-admin account below the reputation threshold is
// rejected if any name would introduce a brand-new tag; reusing existing
// tags is always allowed. Newly created tags are attached to the account's
// tag list.
func resolveTags(ctx context.Context, r *repository.Repositories, account *models.Account, names []string, gate bool) ([]string, error) {
	names = normalizeTagNames(names)

	type resolution struct {
		name     string
		existing *models.Tag
	}
	resolutions := make([]resolution, 0, len(names))
	missing := 0
	for _, name := range names {
		tag, err := r.Tag.GetByName(ctx, name)
		if err != nil {
			return nil, err
		}
		if tag == nil {
			missing++
		}
		resolutions = append(resolutions, resolution{name: name, existing: tag})
	}

	if gate && missing > 0 && !account.Admin && account.Reputation < models.MinReputation {
		return nil, ErrInsufficientReputation
	}

	ids := make([]string, 0, len(resolutions))
	for _, res := range resolutions {
		if res.existing != nil {
			ids = append(ids, res.existing.ID)
			continue
		}
		tag := &models.Tag{ID: newID(), Name: res.name}
		if err := r.Tag.Create(ctx, tag); err != nil {
			return nil, err
		}
		if err := r.Account.PushTag(ctx, account.Email, tag.ID); err != nil {
			return nil, err
		}
		ids = append(ids, tag.ID)
	}
	return ids, nil
}
