package service

import (
	"context"

	"github.com/qa-forum-api/internal/models"
	"github.com/qa-forum-api/internal/repository"
)

// buildProfile assembles the display form of an account: password redacted,
// owned questions and tags populated, the account's answers resolved to the
// full questions that contain them, plus every question in the system. Admin
// accounts additionally get every account, passwords redacted.
func buildProfile(ctx context.Context, r *repository.Repositories, email string) (*models.Profile, error) {
	account, err := r.Account.GetByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if account == nil {
		return nil, ErrNotFound
	}

	profile, err := profileOf(ctx, r, account)
	if err != nil {
		return nil, err
	}

	answered, err := r.Question.GetByAnswerIDs(ctx, account.AnswerIDs)
	if err != nil {
		return nil, err
	}
	if answered == nil {
		answered = []*models.Question{}
	}
	for _, q := range answered {
		if err := populateQuestionTags(ctx, r, q); err != nil {
			return nil, err
		}
	}
	profile.Answers = answered

	all, err := r.Question.GetAll(ctx)
	if err != nil {
		return nil, err
	}
	if all == nil {
		all = []*models.Question{}
	}
	if err := populateQuestions(ctx, r, all); err != nil {
		return nil, err
	}
	profile.AllQuestions = all

	if account.Admin {
		accounts, err := r.Account.GetAll(ctx)
		if err != nil {
			return nil, err
		}
		users := make([]*models.Profile, 0, len(accounts))
		for _, a := range accounts {
			user, err := profileOf(ctx, r, a)
			if err != nil {
				return nil, err
			}
			users = append(users, user)
		}
		profile.Users = users
	}

	return profile, nil
}

// profileOf builds the basic profile shape shared by the requesting account
// and the per-user entries on an admin profile: redacted account plus
// populated question and tag lists.
func profileOf(ctx context.Context, r *repository.Repositories, account *models.Account) (*models.Profile, error) {
	profile := &models.Profile{Account: *account}
	profile.Password = ""
	profile.Answers = []*models.Question{}
	profile.AllQuestions = []*models.Question{}

	questions, err := r.Question.GetByIDs(ctx, account.QuestionIDs)
	if err != nil {
		return nil, err
	}
	if questions == nil {
		questions = []*models.Question{}
	}
	for _, q := range questions {
		if err := populateQuestionTags(ctx, r, q); err != nil {
			return nil, err
		}
	}
	profile.Questions = questions

	tags, err := r.Tag.GetByIDs(ctx, account.TagIDs)
	if err != nil {
		return nil, err
	}
	if tags == nil {
		tags = []*models.Tag{}
	}
	profile.Tags = tags

	return profile, nil
}
