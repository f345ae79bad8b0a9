package models

import (
	"time"
)

// Account represents a registered user. The password field holds the bcrypt
// hash and is never serialized. The ID lists mirror the document-store shape
// of the data model: ownership is tracked as ordered lists of entity ids.
type Account struct {
	ID          string    `json:"_id" db:"id"`
	Username    string    `json:"username" db:"username"`
	Email       string    `json:"email" db:"email"`
	Password    string    `json:"-" db:"password"`
	Admin       bool      `json:"admin" db:"admin"`
	RegDateTime time.Time `json:"reg_date_time" db:"reg_date_time"`
	Reputation  int       `json:"reputation" db:"reputation"`
	QuestionIDs []string  `json:"-" db:"question_ids"`
	TagIDs      []string  `json:"-" db:"tag_ids"`
	AnswerIDs   []string  `json:"-" db:"answer_ids"`
}

// Reputation thresholds and vote deltas. Voting, commenting, and introducing
// a brand-new tag require MinReputation unless the account is an admin.
// Deltas apply to the voter's account, not the target's author.
const (
	MinReputation      = 50
	UpvoteReputation   = 5
	DownvoteReputation = -10
)

// Profile is an account prepared for display: password redacted, owned
// questions and tags populated, answers resolved to the full questions that
// contain them. Admins additionally see every account in the system.
type Profile struct {
	Account
	Questions    []*Question `json:"questions"`
	Tags         []*Tag      `json:"tags"`
	Answers      []*Question `json:"answers"`
	AllQuestions []*Question `json:"all_questions"`
	Users        []*Profile  `json:"users,omitempty"`
}
