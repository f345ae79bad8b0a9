package models

import (
	"time"
)

// Question represents a posted question. TagIDs/CommentIDs/AnswerIDs are the
// persisted reference lists; Tags/Comments/Answers are filled in when the
// question is populated for a response. AskedBy is a denormalized username:
// renaming a user does not retroactively update historical posts.
type Question struct {
	ID          string     `json:"_id" db:"id"`
	Title       string     `json:"title" db:"title"`
	Summary     string     `json:"summary" db:"summary"`
	Text        string     `json:"text" db:"text"`
	TagIDs      []string   `json:"-" db:"tag_ids"`
	CommentIDs  []string   `json:"-" db:"comment_ids"`
	AnswerIDs   []string   `json:"-" db:"answer_ids"`
	Tags        []*Tag     `json:"tags"`
	Comments    []*Comment `json:"comments"`
	Answers     []*Answer  `json:"answers"`
	AskedBy     string     `json:"asked_by" db:"asked_by"`
	AskDateTime time.Time  `json:"ask_date_time" db:"ask_date_time"`
	Views       int        `json:"views" db:"views"`
	Votes       int        `json:"votes" db:"votes"`
}

// Field limits enforced at submission time
const (
	MaxTitleLength   = 50
	MaxSummaryLength = 140
)

// UserAnswers is a question whose answer list has been partitioned: the
// viewed user's answers first (newest first), everyone else's after (newest
// first). Split is the count of the user's answers, marking the boundary of
// the editable region in the UI.
type UserAnswers struct {
	Question
	Split int `json:"split"`
}
