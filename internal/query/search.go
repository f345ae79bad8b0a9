// Package query holds the read-path helpers for question collections:
// free-text/tag search and the newest/active/unanswered orderings. All
// functions are pure and never mutate their input.
package query

import (
	"regexp"
	"sort"
	"strings"

	"github.com/qa-forum-api/internal/models"
)

var tagTokenRegex = regexp.MustCompile(`\[[^\[\]]*\]`)

// Search filters questions against a search string. The string is
// lowercased; bracket-delimited tokens like "[coding]" are tag filters, the
// remaining words are free-text tokens matched whole-word against title or
// body. A question matches if any word matches or any tag filter equals one
// of its tag names. An empty search string yields no results; search only
// runs on non-empty input. Results are ordered newest first.
func Search(questions []*models.Question, input string) []*models.Question {
	input = strings.ToLower(input)
	if strings.TrimSpace(input) == "" {
		return []*models.Question{}
	}

	tags := []string{}
	for _, m := range tagTokenRegex.FindAllString(input, -1) {
		tags = append(tags, m[1:len(m)-1])
	}

	words := strings.Fields(tagTokenRegex.ReplaceAllString(input, " "))

	wordPatterns := make([]*regexp.Regexp, 0, len(words))
	for _, w := range words {
		wordPatterns = append(wordPatterns, regexp.MustCompile(`\b`+regexp.QuoteMeta(w)+`\b`))
	}

	matched := []*models.Question{}
	for _, q := range questions {
		if matchesWords(q, wordPatterns) || matchesTags(q, tags) {
			matched = append(matched, q)
		}
	}

	return SortByNewest(matched)
}

func matchesWords(q *models.Question, patterns []*regexp.Regexp) bool {
	title := strings.ToLower(q.Title)
	text := strings.ToLower(q.Text)
	for _, p := range patterns {
		if p.MatchString(title) || p.MatchString(text) {
			return true
		}
	}
	return false
}

func matchesTags(q *models.Question, tags []string) bool {
	for _, want := range tags {
		for _, tag := range q.Tags {
			if strings.ToLower(tag.Name) == want {
				return true
			}
		}
	}
	return false
}

// SortByNewest returns a copy of the questions ordered by ask time, newest
// first.
func SortByNewest(questions []*models.Question) []*models.Question {
	sorted := make([]*models.Question, len(questions))
	copy(sorted, questions)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].AskDateTime.After(sorted[j].AskDateTime)
	})
	return sorted
}

// SortByActive orders questions by their most recent answer, newest first;
// questions with no answers sort last. Each returned question is a shallow
// copy carrying its own answer slice sorted newest first, so the caller's
// questions and their shared answer slices are left untouched.
func SortByActive(questions []*models.Question) []*models.Question {
	sorted := make([]*models.Question, 0, len(questions))
	for _, q := range questions {
		c := *q
		c.Answers = sortAnswersByNewest(q.Answers)
		sorted = append(sorted, &c)
	}

	sort.SliceStable(sorted, func(i, j int) bool {
		a, b := sorted[i], sorted[j]
		switch {
		case len(a.Answers) == 0:
			return false
		case len(b.Answers) == 0:
			return true
		default:
			return a.Answers[0].AnsDateTime.After(b.Answers[0].AnsDateTime)
		}
	})
	return sorted
}

// SortByUnanswered returns only the questions with no answers, newest first.
func SortByUnanswered(questions []*models.Question) []*models.Question {
	unanswered := []*models.Question{}
	for _, q := range questions {
		if len(q.Answers) == 0 {
			unanswered = append(unanswered, q)
		}
	}
	return SortByNewest(unanswered)
}

func sortAnswersByNewest(answers []*models.Answer) []*models.Answer {
	sorted := make([]*models.Answer, len(answers))
	copy(sorted, answers)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].AnsDateTime.After(sorted[j].AnsDateTime)
	})
	return sorted
}
