// Package mocks provides in-memory test doubles for the repository and
// service layers. The repository mocks maintain the same reference lists the
// Postgres implementations do, so cascades and list updates can be asserted
// without a database.
package mocks

import (
	"context"
	"strings"

	"github.com/qa-forum-api/internal/models"
	"github.com/qa-forum-api/internal/repository"
)

// Store is the shared in-memory state behind the repository mocks
type Store struct {
	Accounts  map[string]*models.Account // keyed by email
	Questions map[string]*models.Question
	Answers   map[string]*models.Answer
	Comments  map[string]*models.Comment
	Tags      map[string]*models.Tag
}

// NewStore creates an empty in-memory store
func NewStore() *Store {
	return &Store{
		Accounts:  make(map[string]*models.Account),
		Questions: make(map[string]*models.Question),
		Answers:   make(map[string]*models.Answer),
		Comments:  make(map[string]*models.Comment),
		Tags:      make(map[string]*models.Tag),
	}
}

// NewRepositories wraps the store in a Repositories value. The value carries
// no database handle, so InTx runs its callback directly.
func NewRepositories(store *Store) *repository.Repositories {
	return &repository.Repositories{
		Account:  &AccountRepo{store: store},
		Question: &QuestionRepo{store: store},
		Answer:   &AnswerRepo{store: store},
		Comment:  &CommentRepo{store: store},
		Tag:      &TagRepo{store: store},
	}
}

// AccountRepo is an in-memory AccountRepository
type AccountRepo struct {
	store *Store
}

var _ repository.AccountRepository = (*AccountRepo)(nil)

func (r *AccountRepo) Create(ctx context.Context, account *models.Account) error {
	c := *account
	r.store.Accounts[account.Email] = &c
	return nil
}

func (r *AccountRepo) GetByEmail(ctx context.Context, email string) (*models.Account, error) {
	account, ok := r.store.Accounts[email]
	if !ok {
		return nil, nil
	}
	return copyAccount(account), nil
}

func (r *AccountRepo) GetAll(ctx context.Context) ([]*models.Account, error) {
	accounts := make([]*models.Account, 0, len(r.store.Accounts))
	for _, account := range r.store.Accounts {
		accounts = append(accounts, copyAccount(account))
	}
	return accounts, nil
}

func (r *AccountRepo) EmailExists(ctx context.Context, email string) (bool, error) {
	_, ok := r.store.Accounts[email]
	return ok, nil
}

func (r *AccountRepo) Delete(ctx context.Context, email string) error {
	delete(r.store.Accounts, email)
	return nil
}

func (r *AccountRepo) AddReputation(ctx context.Context, email string, delta int) error {
	if account, ok := r.store.Accounts[email]; ok {
		account.Reputation += delta
	}
	return nil
}

func (r *AccountRepo) PushQuestion(ctx context.Context, email, questionID string) error {
	if account, ok := r.store.Accounts[email]; ok {
		account.QuestionIDs = append(account.QuestionIDs, questionID)
	}
	return nil
}

func (r *AccountRepo) PullQuestion(ctx context.Context, email, questionID string) error {
	if account, ok := r.store.Accounts[email]; ok {
		account.QuestionIDs = remove(account.QuestionIDs, questionID)
	}
	return nil
}

func (r *AccountRepo) PushAnswer(ctx context.Context, email, answerID string) error {
	if account, ok := r.store.Accounts[email]; ok {
		account.AnswerIDs = append(account.AnswerIDs, answerID)
	}
	return nil
}

func (r *AccountRepo) PullAnswer(ctx context.Context, email, answerID string) error {
	if account, ok := r.store.Accounts[email]; ok {
		account.AnswerIDs = remove(account.AnswerIDs, answerID)
	}
	return nil
}

func (r *AccountRepo) PushTag(ctx context.Context, email, tagID string) error {
	if account, ok := r.store.Accounts[email]; ok {
		for _, id := range account.TagIDs {
			if id == tagID {
				return nil
			}
		}
		account.TagIDs = append(account.TagIDs, tagID)
	}
	return nil
}

func (r *AccountRepo) PullTag(ctx context.Context, email, tagID string) error {
	if account, ok := r.store.Accounts[email]; ok {
		account.TagIDs = remove(account.TagIDs, tagID)
	}
	return nil
}

// QuestionRepo is an in-memory QuestionRepository
type QuestionRepo struct {
	store *Store
}

var _ repository.QuestionRepository = (*QuestionRepo)(nil)

func (r *QuestionRepo) Create(ctx context.Context, question *models.Question) error {
	c := *question
	r.store.Questions[question.ID] = &c
	return nil
}

func (r *QuestionRepo) Update(ctx context.Context, question *models.Question) error {
	existing, ok := r.store.Questions[question.ID]
	if !ok {
		return nil
	}
	existing.Title = question.Title
	existing.Summary = question.Summary
	existing.Text = question.Text
	existing.TagIDs = append([]string(nil), question.TagIDs...)
	return nil
}

func (r *QuestionRepo) Delete(ctx context.Context, id string) error {
	delete(r.store.Questions, id)
	return nil
}

func (r *QuestionRepo) GetByID(ctx context.Context, id string) (*models.Question, error) {
	question, ok := r.store.Questions[id]
	if !ok {
		return nil, nil
	}
	return copyQuestion(question), nil
}

func (r *QuestionRepo) GetByIDs(ctx context.Context, ids []string) ([]*models.Question, error) {
	questions := []*models.Question{}
	for _, id := range ids {
		if question, ok := r.store.Questions[id]; ok {
			questions = append(questions, copyQuestion(question))
		}
	}
	return questions, nil
}

func (r *QuestionRepo) GetAll(ctx context.Context) ([]*models.Question, error) {
	questions := make([]*models.Question, 0, len(r.store.Questions))
	for _, question := range r.store.Questions {
		questions = append(questions, copyQuestion(question))
	}
	return questions, nil
}

func (r *QuestionRepo) GetByAnswerIDs(ctx context.Context, answerIDs []string) ([]*models.Question, error) {
	want := make(map[string]bool, len(answerIDs))
	for _, id := range answerIDs {
		want[id] = true
	}
	questions := []*models.Question{}
	for _, question := range r.store.Questions {
		for _, id := range question.AnswerIDs {
			if want[id] {
				questions = append(questions, copyQuestion(question))
				break
			}
		}
	}
	return questions, nil
}

func (r *QuestionRepo) GetByTagID(ctx context.Context, tagID string) ([]*models.Question, error) {
	questions := []*models.Question{}
	for _, question := range r.store.Questions {
		for _, id := range question.TagIDs {
			if id == tagID {
				questions = append(questions, copyQuestion(question))
				break
			}
		}
	}
	return questions, nil
}

func (r *QuestionRepo) IncrementViews(ctx context.Context, id string) error {
	if question, ok := r.store.Questions[id]; ok {
		question.Views++
	}
	return nil
}

func (r *QuestionRepo) AddVotes(ctx context.Context, id string, delta int) error {
	if question, ok := r.store.Questions[id]; ok {
		question.Votes += delta
	}
	return nil
}

func (r *QuestionRepo) PushAnswer(ctx context.Context, questionID, answerID string) error {
	if question, ok := r.store.Questions[questionID]; ok {
		question.AnswerIDs = append(question.AnswerIDs, answerID)
	}
	return nil
}

func (r *QuestionRepo) PullAnswer(ctx context.Context, answerID string) error {
	for _, question := range r.store.Questions {
		question.AnswerIDs = remove(question.AnswerIDs, answerID)
	}
	return nil
}

func (r *QuestionRepo) PushComment(ctx context.Context, questionID, commentID string) error {
	if question, ok := r.store.Questions[questionID]; ok {
		question.CommentIDs = append(question.CommentIDs, commentID)
	}
	return nil
}

func (r *QuestionRepo) PullTag(ctx context.Context, tagID string) error {
	for _, question := range r.store.Questions {
		question.TagIDs = remove(question.TagIDs, tagID)
	}
	return nil
}

// AnswerRepo is an in-memory AnswerRepository
type AnswerRepo struct {
	store *Store
}

var _ repository.AnswerRepository = (*AnswerRepo)(nil)

func (r *AnswerRepo) Create(ctx context.Context, answer *models.Answer) error {
	c := *answer
	r.store.Answers[answer.ID] = &c
	return nil
}

func (r *AnswerRepo) UpdateText(ctx context.Context, id, text string) error {
	if answer, ok := r.store.Answers[id]; ok {
		answer.Text = text
	}
	return nil
}

func (r *AnswerRepo) Delete(ctx context.Context, id string) error {
	delete(r.store.Answers, id)
	return nil
}

func (r *AnswerRepo) GetByID(ctx context.Context, id string) (*models.Answer, error) {
	answer, ok := r.store.Answers[id]
	if !ok {
		return nil, nil
	}
	return copyAnswer(answer), nil
}

func (r *AnswerRepo) GetByIDs(ctx context.Context, ids []string) ([]*models.Answer, error) {
	answers := []*models.Answer{}
	for _, id := range ids {
		if answer, ok := r.store.Answers[id]; ok {
			answers = append(answers, copyAnswer(answer))
		}
	}
	return answers, nil
}

func (r *AnswerRepo) GetAll(ctx context.Context) ([]*models.Answer, error) {
	answers := make([]*models.Answer, 0, len(r.store.Answers))
	for _, answer := range r.store.Answers {
		answers = append(answers, copyAnswer(answer))
	}
	return answers, nil
}

func (r *AnswerRepo) AddVotes(ctx context.Context, id string, delta int) error {
	if answer, ok := r.store.Answers[id]; ok {
		answer.Votes += delta
	}
	return nil
}

func (r *AnswerRepo) PushComment(ctx context.Context, answerID, commentID string) error {
	if answer, ok := r.store.Answers[answerID]; ok {
		answer.CommentIDs = append(answer.CommentIDs, commentID)
	}
	return nil
}

// CommentRepo is an in-memory CommentRepository
type CommentRepo struct {
	store *Store
}

var _ repository.CommentRepository = (*CommentRepo)(nil)

func (r *CommentRepo) Create(ctx context.Context, comment *models.Comment) error {
	c := *comment
	r.store.Comments[comment.ID] = &c
	return nil
}

func (r *CommentRepo) GetByIDs(ctx context.Context, ids []string) ([]*models.Comment, error) {
	comments := []*models.Comment{}
	for _, id := range ids {
		if comment, ok := r.store.Comments[id]; ok {
			c := *comment
			comments = append(comments, &c)
		}
	}
	return comments, nil
}

func (r *CommentRepo) DeleteByIDs(ctx context.Context, ids []string) error {
	for _, id := range ids {
		delete(r.store.Comments, id)
	}
	return nil
}

func (r *CommentRepo) AddVotes(ctx context.Context, id string, delta int) error {
	if comment, ok := r.store.Comments[id]; ok {
		comment.Votes += delta
	}
	return nil
}

// TagRepo is an in-memory TagRepository
type TagRepo struct {
	store *Store
}

var _ repository.TagRepository = (*TagRepo)(nil)

func (r *TagRepo) Create(ctx context.Context, tag *models.Tag) error {
	c := *tag
	r.store.Tags[tag.ID] = &c
	return nil
}

func (r *TagRepo) Rename(ctx context.Context, id, name string) error {
	if tag, ok := r.store.Tags[id]; ok {
		tag.Name = name
	}
	return nil
}

func (r *TagRepo) Delete(ctx context.Context, id string) error {
	delete(r.store.Tags, id)
	return nil
}

func (r *TagRepo) GetByID(ctx context.Context, id string) (*models.Tag, error) {
	tag, ok := r.store.Tags[id]
	if !ok {
		return nil, nil
	}
	c := *tag
	return &c, nil
}

func (r *TagRepo) GetByName(ctx context.Context, name string) (*models.Tag, error) {
	for _, tag := range r.store.Tags {
		if strings.EqualFold(tag.Name, name) {
			c := *tag
			return &c, nil
		}
	}
	return nil, nil
}

func (r *TagRepo) GetByIDs(ctx context.Context, ids []string) ([]*models.Tag, error) {
	tags := []*models.Tag{}
	for _, id := range ids {
		if tag, ok := r.store.Tags[id]; ok {
			c := *tag
			tags = append(tags, &c)
		}
	}
	return tags, nil
}

func (r *TagRepo) GetAll(ctx context.Context) ([]*models.Tag, error) {
	tags := make([]*models.Tag, 0, len(r.store.Tags))
	for _, tag := range r.store.Tags {
		c := *tag
		tags = append(tags, &c)
	}
	return tags, nil
}

func (r *TagRepo) NameExists(ctx context.Context, name string) (bool, error) {
	tag, _ := r.GetByName(context.Background(), name)
	return tag != nil, nil
}

func copyAccount(account *models.Account) *models.Account {
	c := *account
	c.QuestionIDs = append([]string(nil), account.QuestionIDs...)
	c.TagIDs = append([]string(nil), account.TagIDs...)
	c.AnswerIDs = append([]string(nil), account.AnswerIDs...)
	return &c
}

func copyQuestion(question *models.Question) *models.Question {
	c := *question
	c.TagIDs = append([]string(nil), question.TagIDs...)
	c.CommentIDs = append([]string(nil), question.CommentIDs...)
	c.AnswerIDs = append([]string(nil), question.AnswerIDs...)
	c.Tags, c.Comments, c.Answers = nil, nil, nil
	return &c
}

func copyAnswer(answer *models.Answer) *models.Answer {
	c := *answer
	c.CommentIDs = append([]string(nil), answer.CommentIDs...)
	c.Comments = nil
	return &c
}

func remove(ids []string, id string) []string {
	out := ids[:0]
	for _, existing := range ids {
		if existing != id {
			out = append(out, existing)
		}
	}
	return out
}
