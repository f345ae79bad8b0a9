package query

import (
	"testing"
	"time"

	"github.com/qa-forum-api/internal/models"
)

var baseTime = time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)

func q(id, title, text string, askedAt time.Time, tags ...string) *models.Question {
	question := &models.Question{
		ID:          id,
		Title:       title,
		Text:        text,
		AskDateTime: askedAt,
	}
	for _, name := range tags {
		question.Tags = append(question.Tags, &models.Tag{ID: "tag-" + name, Name: name})
	}
	return question
}

func fixture() []*models.Question {
	return []*models.Question{
		q("q1", "How to center a div", "CSS flexbox question", baseTime, "css", "coding"),
		q("q2", "Go channel deadlock", "My goroutine never receives an answer", baseTime.Add(time.Hour), "go"),
		q("q3", "Answering my own question", "Is it rude to reply to yourself?", baseTime.Add(2*time.Hour), "etiquette"),
	}
}

func ids(questions []*models.Question) []string {
	out := make([]string, len(questions))
	for i, question := range questions {
		out[i] = question.ID
	}
	return out
}

func assertIDs(t *testing.T, got []*models.Question, want ...string) {
	t.Helper()
	if len(got) != len(want) {
		t.Fatalf("got %d questions %v, want %d %v", len(got), ids(got), len(want), want)
	}
	for i, id := range want {
		if got[i].ID != id {
			t.Errorf("position %d: got %s, want %s (full order %v)", i, got[i].ID, id, ids(got))
		}
	}
}

func TestSearch(t *testing.T) {
	questions := fixture()

	tests := []struct {
		name  string
		input string
		want  []string
	}{
		{name: "empty input matches nothing", input: "", want: nil},
		{name: "whitespace input matches nothing", input: "   ", want: nil},
		{name: "tag filter", input: "[coding]", want: []string{"q1"}},
		{name: "tag filter is case insensitive", input: "[CODING]", want: []string{"q1"}},
		{name: "whole word only", input: "answer", want: []string{"q2"}},
		{name: "word in title", input: "deadlock", want: []string{"q2"}},
		{name: "words or tags union", input: "[go] div", want: []string{"q2", "q1"}},
		{name: "unknown tag", input: "[nope]", want: nil},
		{name: "results newest first", input: "question", want: []string{"q3", "q1"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assertIDs(t, Search(questions, tt.input), tt.want...)
		})
	}
}

func TestSearchDoesNotMatchSubstrings(t *testing.T) {
	questions := []*models.Question{
		q("q1", "Answered already", "nothing to see", baseTime),
	}
	// "answer" must not match inside "Answered"
	if got := Search(questions, "answer"); len(got) != 0 {
		t.Errorf("substring matched as whole word: %v", ids(got))
	}
}

func TestSortByNewest(t *testing.T) {
	questions := fixture()
	assertIDs(t, SortByNewest(questions), "q3", "q2", "q1")

	// input order untouched
	assertIDs(t, questions, "q1", "q2", "q3")
}

func TestSortByActive(t *testing.T) {
	older := &models.Answer{ID: "a1", AnsDateTime: baseTime.Add(30 * time.Minute)}
	newer := &models.Answer{ID: "a2", AnsDateTime: baseTime.Add(3 * time.Hour)}
	mid := &models.Answer{ID: "a3", AnsDateTime: baseTime.Add(time.Hour)}

	questions := fixture()
	questions[0].Answers = []*models.Answer{older, newer}
	questions[1].Answers = []*models.Answer{mid}

	got := SortByActive(questions)
	// q1's newest answer (a2) beats q2's (a3); unanswered q3 sorts last
	assertIDs(t, got, "q1", "q2", "q3")

	if got[0].Answers[0].ID != "a2" {
		t.Errorf("answers not sorted newest first: got %s", got[0].Answers[0].ID)
	}
	// the caller's answer slice must keep its original order
	if questions[0].Answers[0].ID != "a1" {
		t.Errorf("input answer slice was mutated")
	}
}

func TestSortByUnanswered(t *testing.T) {
	questions := fixture()
	questions[1].Answers = []*models.Answer{{ID: "a1", AnsDateTime: baseTime}}

	assertIDs(t, SortByUnanswered(questions), "q3", "q1")
}
