package models

import (
	"time"
)

// Answer represents an answer to a question. AnsBy is a denormalized
// username, like Question.AskedBy.
type Answer struct {
	ID          string     `json:"_id" db:"id"`
	Text        string     `json:"text" db:"text"`
	CommentIDs  []string   `json:"-" db:"comment_ids"`
	Comments    []*Comment `json:"comments"`
	AnsBy       string     `json:"ans_by" db:"ans_by"`
	AnsDateTime time.Time  `json:"ans_date_time" db:"ans_date_time"`
	Votes       int        `json:"votes" db:"votes"`
}
