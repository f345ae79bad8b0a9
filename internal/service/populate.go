package service

import (
	"context"

	"github.com/qa-forum-api/internal/models"
	"github.com/qa-forum-api/internal/repository"
)

// populateQuestion resolves a question's reference lists into full documents:
// tags, direct comments, and answers with their own comments.
func populateQuestion(ctx context.Context, r *repository.Repositories, q *models.Question) error {
	if err := populateQuestionTags(ctx, r, q); err != nil {
		return err
	}

	comments, err := r.Comment.GetByIDs(ctx, q.CommentIDs)
	if err != nil {
		return err
	}
	if comments == nil {
		comments = []*models.Comment{}
	}
	q.Comments = comments

	answers, err := r.Answer.GetByIDs(ctx, q.AnswerIDs)
	if err != nil {
		return err
	}
	if answers == nil {
		answers = []*models.Answer{}
	}
	if err := populateAnswerComments(ctx, r, answers); err != nil {
		return err
	}
	q.Answers = answers

	return nil
}

// populateQuestionTags resolves only the tag references, the shape profile
// question lists are served in.
func populateQuestionTags(ctx context.Context, r *repository.Repositories, q *models.Question) error {
	tags, err := r.Tag.GetByIDs(ctx, q.TagIDs)
	if err != nil {
		return err
	}
	if tags == nil {
		tags = []*models.Tag{}
	}
	q.Tags = tags
	return nil
}

func populateQuestions(ctx context.Context, r *repository.Repositories, questions []*models.Question) error {
	for _, q := range questions {
		if err := populateQuestion(ctx, r, q); err != nil {
			return err
		}
	}
	return nil
}

func populateAnswerComments(ctx context.Context, r *repository.Repositories, answers []*models.Answer) error {
	for _, a := range answers {
		comments, err := r.Comment.GetByIDs(ctx, a.CommentIDs)
		if err != nil {
			return err
		}
		if comments == nil {
			comments = []*models.Comment{}
		}
		a.Comments = comments
	}
	return nil
}

// getPopulatedQuestion fetches a question by id and populates it. Returns
// ErrNotFound when the question does not exist.
func getPopulatedQuestion(ctx context.Context, r *repository.Repositories, id string) (*models.Question, error) {
	question, err := r.Question.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if question == nil {
		return nil, ErrNotFound
	}
	if err := populateQuestion(ctx, r, question); err != nil {
		return nil, err
	}
	return question, nil
}
