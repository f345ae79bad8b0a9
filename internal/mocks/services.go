package mocks

import (
	"context"

	"github.com/qa-forum-api/internal/models"
	"github.com/qa-forum-api/internal/service"
)

// MockAccountService is a mock implementation of AccountService
type MockAccountService struct {
	RegisterFunc      func(ctx context.Context, username, email, password string) error
	LoginFunc         func(ctx context.Context, email, password string) error
	GetProfileFunc    func(ctx context.Context, email string) (*models.Profile, error)
	RemoveAccountFunc func(ctx context.Context, userEmail, adminEmail string) (*models.Profile, error)
}

// Verify interface compliance
var _ service.AccountService = (*MockAccountService)(nil)

func (m *MockAccountService) Register(ctx context.Context, username, email, password string) error {
	if m.RegisterFunc != nil {
		return m.RegisterFunc(ctx, username, email, password)
	}
	return nil
}

func (m *MockAccountService) Login(ctx context.Context, email, password string) error {
	if m.LoginFunc != nil {
		return m.LoginFunc(ctx, email, password)
	}
	return nil
}

func (m *MockAccountService) GetProfile(ctx context.Context, email string) (*models.Profile, error) {
	if m.GetProfileFunc != nil {
		return m.GetProfileFunc(ctx, email)
	}
	return &models.Profile{}, nil
}

func (m *MockAccountService) RemoveAccount(ctx context.Context, userEmail, adminEmail string) (*models.Profile, error) {
	if m.RemoveAccountFunc != nil {
		return m.RemoveAccountFunc(ctx, userEmail, adminEmail)
	}
	return &models.Profile{}, nil
}

// MockQuestionService is a mock implementation of QuestionService
type MockQuestionService struct {
	GetAllFunc      func(ctx context.Context) ([]*models.Question, error)
	AddFunc         func(ctx context.Context, email string, question *models.Question, tagNames []string) (*models.Question, error)
	UpdateFunc      func(ctx context.Context, email string, question *models.Question, tagNames []string) (*models.Question, error)
	RemoveFunc      func(ctx context.Context, email, id string) (*models.Profile, error)
	ViewFunc        func(ctx context.Context, id string) (*models.Question, error)
	EditFunc        func(ctx context.Context, id string) (*models.Question, error)
	UserAnswersFunc func(ctx context.Context, email, id string) (*models.UserAnswers, error)
	VoteFunc        func(ctx context.Context, email, kind, questionID, targetID string, change int) (*models.Question, error)
	AddCommentFunc  func(ctx context.Context, email, kind, questionID, targetID string, comment *models.Comment) (*models.Question, error)
}

// Verify interface compliance
var _ service.QuestionService = (*MockQuestionService)(nil)

func (m *MockQuestionService) GetAll(ctx context.Context) ([]*models.Question, error) {
	if m.GetAllFunc != nil {
		return m.GetAllFunc(ctx)
	}
	return []*models.Question{}, nil
}

func (m *MockQuestionService) Add(ctx context.Context, email string, question *models.Question, tagNames []string) (*models.Question, error) {
	if m.AddFunc != nil {
		return m.AddFunc(ctx, email, question, tagNames)
	}
	return question, nil
}

func (m *MockQuestionService) Update(ctx context.Context, email string, question *models.Question, tagNames []string) (*models.Question, error) {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, email, question, tagNames)
	}
	return question, nil
}

func (m *MockQuestionService) Remove(ctx context.Context, email, id string) (*models.Profile, error) {
	if m.RemoveFunc != nil {
		return m.RemoveFunc(ctx, email, id)
	}
	return &models.Profile{}, nil
}

func (m *MockQuestionService) View(ctx context.Context, id string) (*models.Question, error) {
	if m.ViewFunc != nil {
		return m.ViewFunc(ctx, id)
	}
	return &models.Question{ID: id}, nil
}

func (m *MockQuestionService) Edit(ctx context.Context, id string) (*models.Question, error) {
	if m.EditFunc != nil {
		return m.EditFunc(ctx, id)
	}
	return &models.Question{ID: id}, nil
}

func (m *MockQuestionService) UserAnswers(ctx context.Context, email, id string) (*models.UserAnswers, error) {
	if m.UserAnswersFunc != nil {
		return m.UserAnswersFunc(ctx, email, id)
	}
	return &models.UserAnswers{}, nil
}

func (m *MockQuestionService) Vote(ctx context.Context, email, kind, questionID, targetID string, change int) (*models.Question, error) {
	if m.VoteFunc != nil {
		return m.VoteFunc(ctx, email, kind, questionID, targetID, change)
	}
	return &models.Question{ID: questionID}, nil
}

func (m *MockQuestionService) AddComment(ctx context.Context, email, kind, questionID, targetID string, comment *models.Comment) (*models.Question, error) {
	if m.AddCommentFunc != nil {
		return m.AddCommentFunc(ctx, email, kind, questionID, targetID, comment)
	}
	return &models.Question{ID: questionID}, nil
}

// MockAnswerService is a mock implementation of AnswerService
type MockAnswerService struct {
	GetAllFunc func(ctx context.Context) ([]*models.Answer, error)
	AddFunc    func(ctx context.Context, email, questionID string, answer *models.Answer) (*models.Question, error)
	UpdateFunc func(ctx context.Context, questionID string, answer *models.Answer) (*models.Question, error)
	EditFunc   func(ctx context.Context, id string) (*models.Answer, error)
	RemoveFunc func(ctx context.Context, email, id, questionID string) (*models.Question, error)
}

// Verify interface compliance
var _ service.AnswerService = (*MockAnswerService)(nil)

func (m *MockAnswerService) GetAll(ctx context.Context) ([]*models.Answer, error) {
	if m.GetAllFunc != nil {
		return m.GetAllFunc(ctx)
	}
	return []*models.Answer{}, nil
}

func (m *MockAnswerService) Add(ctx context.Context, email, questionID string, answer *models.Answer) (*models.Question, error) {
	if m.AddFunc != nil {
		return m.AddFunc(ctx, email, questionID, answer)
	}
	return &models.Question{ID: questionID}, nil
}

func (m *MockAnswerService) Update(ctx context.Context, questionID string, answer *models.Answer) (*models.Question, error) {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, questionID, answer)
	}
	return &models.Question{ID: questionID}, nil
}

func (m *MockAnswerService) Edit(ctx context.Context, id string) (*models.Answer, error) {
	if m.EditFunc != nil {
		return m.EditFunc(ctx, id)
	}
	return &models.Answer{ID: id}, nil
}

func (m *MockAnswerService) Remove(ctx context.Context, email, id, questionID string) (*models.Question, error) {
	if m.RemoveFunc != nil {
		return m.RemoveFunc(ctx, email, id, questionID)
	}
	return &models.Question{ID: questionID}, nil
}

// MockTagService is a mock implementation of TagService
type MockTagService struct {
	GetAllFunc func(ctx context.Context) ([]*models.Tag, error)
	UpdateFunc func(ctx context.Context, email string, tag *models.Tag) (*models.Profile, error)
	RemoveFunc func(ctx context.Context, email, id string) (*models.Profile, error)
	EditFunc   func(ctx context.Context, email, id string) (*models.Tag, error)
}

// Verify interface compliance
var _ service.TagService = (*MockTagService)(nil)

func (m *MockTagService) GetAll(ctx context.Context) ([]*models.Tag, error) {
	if m.GetAllFunc != nil {
		return m.GetAllFunc(ctx)
	}
	return []*models.Tag{}, nil
}

func (m *MockTagService) Update(ctx context.Context, email string, tag *models.Tag) (*models.Profile, error) {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, email, tag)
	}
	return &models.Profile{}, nil
}

func (m *MockTagService) Remove(ctx context.Context, email, id string) (*models.Profile, error) {
	if m.RemoveFunc != nil {
		return m.RemoveFunc(ctx, email, id)
	}
	return &models.Profile{}, nil
}

func (m *MockTagService) Edit(ctx context.Context, email, id string) (*models.Tag, error) {
	if m.EditFunc != nil {
		return m.EditFunc(ctx, email, id)
	}
	return &models.Tag{ID: id}, nil
}

// NewMockServices bundles the four mocks into a Services value
func NewMockServices() (*service.Services, *MockAccountService, *MockQuestionService, *MockAnswerService, *MockTagService) {
	account := &MockAccountService{}
	question := &MockQuestionService{}
	answer := &MockAnswerService{}
	tag := &MockTagService{}
	return &service.Services{
		Account:  account,
		Question: question,
		Answer:   answer,
		Tag:      tag,
	}, account, question, answer, tag
}
