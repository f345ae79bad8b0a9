package repository_test

import (
	"context"
	"testing"

	"github.com/qa-forum-api/internal/mocks"
	"github.com/qa-forum-api/internal/models"
)

func TestAccountOwnershipLists(t *testing.T) {
	store := mocks.NewStore()
	repos := mocks.NewRepositories(store)
	ctx := context.Background()

	account := &models.Account{ID: "acc-1", Username: "alice", Email: "alice@test.com"}
	if err := repos.Account.Create(ctx, account); err != nil {
		t.Fatalf("Create failed: %v", err)
	}

	repos.Account.PushQuestion(ctx, "alice@test.com", "q1")
	repos.Account.PushQuestion(ctx, "alice@test.com", "q2")
	repos.Account.PushAnswer(ctx, "alice@test.com", "a1")
	repos.Account.PushTag(ctx, "alice@test.com", "t1")
	// pushing the same tag twice must not duplicate it
	repos.Account.PushTag(ctx, "alice@test.com", "t1")

	stored, err := repos.Account.GetByEmail(ctx, "alice@test.com")
	if err != nil {
		t.Fatalf("GetByEmail failed: %v", err)
	}
	if len(stored.QuestionIDs) != 2 {
		t.Errorf("Expected 2 questions, got %v", stored.QuestionIDs)
	}
	if len(stored.TagIDs) != 1 {
		t.Errorf("Expected 1 tag, got %v", stored.TagIDs)
	}

	repos.Account.PullQuestion(ctx, "alice@test.com", "q1")
	repos.Account.PullAnswer(ctx, "alice@test.com", "a1")

	stored, _ = repos.Account.GetByEmail(ctx, "alice@test.com")
	if len(stored.QuestionIDs) != 1 || stored.QuestionIDs[0] != "q2" {
		t.Errorf("Expected [q2], got %v", stored.QuestionIDs)
	}
	if len(stored.AnswerIDs) != 0 {
		t.Errorf("Expected no answers, got %v", stored.AnswerIDs)
	}
}

func TestQuestionReferenceQueries(t *testing.T) {
	store := mocks.NewStore()
	repos := mocks.NewRepositories(store)
	ctx := context.Background()

	repos.Question.Create(ctx, &models.Question{ID: "q1", Title: "One", TagIDs: []string{"t1"}, AnswerIDs: []string{"a1"}})
	repos.Question.Create(ctx, &models.Question{ID: "q2", Title: "Two", TagIDs: []string{"t2"}})

	byTag, err := repos.Question.GetByTagID(ctx, "t1")
	if err != nil {
		t.Fatalf("GetByTagID failed: %v", err)
	}
	if len(byTag) != 1 || byTag[0].ID != "q1" {
		t.Errorf("Expected [q1], got %v", byTag)
	}

	byAnswer, err := repos.Question.GetByAnswerIDs(ctx, []string{"a1", "a9"})
	if err != nil {
		t.Fatalf("GetByAnswerIDs failed: %v", err)
	}
	if len(byAnswer) != 1 || byAnswer[0].ID != "q1" {
		t.Errorf("Expected [q1], got %v", byAnswer)
	}

	// pulling an answer removes it from whichever question holds it
	repos.Question.PullAnswer(ctx, "a1")
	q1, _ := repos.Question.GetByID(ctx, "q1")
	if len(q1.AnswerIDs) != 0 {
		t.Errorf("Expected no answers, got %v", q1.AnswerIDs)
	}

	repos.Question.PullTag(ctx, "t2")
	q2, _ := repos.Question.GetByID(ctx, "q2")
	if len(q2.TagIDs) != 0 {
		t.Errorf("Expected no tags, got %v", q2.TagIDs)
	}
}

func TestGetByIDsPreservesOrder(t *testing.T) {
	store := mocks.NewStore()
	repos := mocks.NewRepositories(store)
	ctx := context.Background()

	repos.Question.Create(ctx, &models.Question{ID: "q1"})
	repos.Question.Create(ctx, &models.Question{ID: "q2"})
	repos.Question.Create(ctx, &models.Question{ID: "q3"})

	questions, err := repos.Question.GetByIDs(ctx, []string{"q3", "q1", "missing"})
	if err != nil {
		t.Fatalf("GetByIDs failed: %v", err)
	}
	if len(questions) != 2 || questions[0].ID != "q3" || questions[1].ID != "q1" {
		t.Errorf("Expected [q3 q1], got %v", questions)
	}
}

func TestTagNameLookupIsCaseInsensitive(t *testing.T) {
	store := mocks.NewStore()
	repos := mocks.NewRepositories(store)
	ctx := context.Background()

	repos.Tag.Create(ctx, &models.Tag{ID: "t1", Name: "coding"})

	tag, err := repos.Tag.GetByName(ctx, "CODING")
	if err != nil {
		t.Fatalf("GetByName failed: %v", err)
	}
	if tag == nil || tag.ID != "t1" {
		t.Errorf("Expected t1, got %v", tag)
	}

	exists, _ := repos.Tag.NameExists(ctx, "Coding")
	if !exists {
		t.Error("NameExists missed a case-insensitive match")
	}
}
