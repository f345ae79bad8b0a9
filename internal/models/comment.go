package models

import (
	"time"
)

// Comment represents a comment on a question or an answer. Comments can only
// be upvoted and carry no reputation delta for the voter.
type Comment struct {
	ID          string    `json:"_id" db:"id"`
	Text        string    `json:"text" db:"text"`
	ComBy       string    `json:"com_by" db:"com_by"`
	ComDateTime time.Time `json:"com_date_time" db:"com_date_time"`
	Votes       int       `json:"votes" db:"votes"`
}

// MaxCommentLength is the maximum comment text length in characters
const MaxCommentLength = 140
