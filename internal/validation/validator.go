package validation

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/qa-forum-api/internal/models"
)

var (
	emailRegex = regexp.MustCompile(`^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`)
	// markdown-style hyperlink: [name](url)
	hyperlinkRegex = regexp.MustCompile(`\[([^\]]*)\]\(([^)]*)\)`)
	linkURLRegex   = regexp.MustCompile(`^https?://.+`)
)

// ValidationError represents a single validation error
type ValidationError struct {
	Field   string      `json:"field"`
	Message string      `json:"message"`
	Value   interface{} `json:"value,omitempty"`
}

// ValidateRegistration validates the fields of a new account. The password
// must not contain the username or the local part of the email.
func ValidateRegistration(username, email, password string) []ValidationError {
	var errors []ValidationError

	if strings.TrimSpace(username) == "" {
		errors = append(errors, ValidationError{Field: "username", Message: "username is required"})
	}

	if email == "" {
		errors = append(errors, ValidationError{Field: "email", Message: "email is required"})
	} else if !emailRegex.MatchString(email) {
		errors = append(errors, ValidationError{Field: "email", Message: "invalid email format", Value: email})
	}

	if password == "" {
		errors = append(errors, ValidationError{Field: "password", Message: "password is required"})
	} else {
		lower := strings.ToLower(password)
		if username != "" && strings.Contains(lower, strings.ToLower(username)) {
			errors = append(errors, ValidationError{Field: "password", Message: "password must not contain the username"})
		}
		if local := emailLocalPart(email); local != "" && strings.Contains(lower, strings.ToLower(local)) {
			errors = append(errors, ValidationError{Field: "password", Message: "password must not contain the email"})
		}
	}

	return errors
}

// ValidateQuestion validates a question's title, summary and body
func ValidateQuestion(title, summary, text string) []ValidationError {
	var errors []ValidationError

	if strings.TrimSpace(title) == "" {
		errors = append(errors, ValidationError{Field: "title", Message: "title is required"})
	} else if len(title) > models.MaxTitleLength {
		errors = append(errors, ValidationError{
			Field:   "title",
			Message: fmt.Sprintf("title exceeds maximum of %d characters", models.MaxTitleLength),
		})
	}

	if strings.TrimSpace(summary) == "" {
		errors = append(errors, ValidationError{Field: "summary", Message: "summary is required"})
	} else if len(summary) > models.MaxSummaryLength {
		errors = append(errors, ValidationError{
			Field:   "summary",
			Message: fmt.Sprintf("summary exceeds maximum of %d characters", models.MaxSummaryLength),
		})
	}

	errors = append(errors, validateText("text", text)...)
	return errors
}

// ValidateAnswer validates an answer's body
func ValidateAnswer(text string) []ValidationError {
	return validateText("text", text)
}

// ValidateComment validates a comment's body
func ValidateComment(text string) []ValidationError {
	errors := validateText("text", text)
	if len(text) > models.MaxCommentLength {
		errors = append(errors, ValidationError{
			Field:   "text",
			Message: fmt.Sprintf("comment exceeds maximum of %d characters", models.MaxCommentLength),
		})
	}
	return errors
}

// ValidateTags validates a question's tag names after normalization:
// between one and five tags, each at most ten characters, no brackets.
func ValidateTags(names []string) []ValidationError {
	var errors []ValidationError

	if len(names) == 0 {
		errors = append(errors, ValidationError{Field: "tags", Message: "at least one tag is required"})
	}
	if len(names) > models.MaxTagsPerQuestion {
		errors = append(errors, ValidationError{
			Field:   "tags",
			Message: fmt.Sprintf("at most %d tags are allowed", models.MaxTagsPerQuestion),
		})
	}
	for _, name := range names {
		if len(name) > models.MaxTagLength {
			errors = append(errors, ValidationError{
				Field:   "tags",
				Message: fmt.Sprintf("tag exceeds maximum of %d characters", models.MaxTagLength),
				Value:   name,
			})
		}
		if strings.ContainsAny(name, "[]") {
			errors = append(errors, ValidationError{Field: "tags", Message: "tag must not contain brackets", Value: name})
		}
	}
	return errors
}

// validateText requires a non-empty body whose markdown hyperlinks are well
// formed: every [name](url) needs a non-empty name and an http(s) url.
func validateText(field, text string) []ValidationError {
	var errors []ValidationError

	if strings.TrimSpace(text) == "" {
		errors = append(errors, ValidationError{Field: field, Message: field + " is required"})
		return errors
	}

	for _, match := range hyperlinkRegex.FindAllStringSubmatch(text, -1) {
		name, url := match[1], match[2]
		if strings.TrimSpace(name) == "" || !linkURLRegex.MatchString(url) {
			errors = append(errors, ValidationError{Field: field, Message: "invalid hyperlink", Value: match[0]})
		}
	}
	return errors
}

func emailLocalPart(email string) string {
	if at := strings.Index(email, "@"); at > 0 {
		return email[:at]
	}
	return ""
}
