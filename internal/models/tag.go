package models

// Tag represents a question tag. Names are globally unique and compared
// case-insensitively; they are stored lowercase.
type Tag struct {
	ID   string `json:"_id" db:"id"`
	Name string `json:"name" db:"name"`
}

// Tag limits enforced at submission time
const (
	MaxTagsPerQuestion = 5
	MaxTagLength       = 10
)
