package validation

import (
	"strings"
	"testing"
)

func TestValidateRegistration(t *testing.T) {
	tests := []struct {
		name       string
		username   string
		email      string
		password   string
		wantErrors int
		wantFields []string
	}{
		{
			name:       "valid registration",
			username:   "alice",
			email:      "alice@example.com",
			password:   "s3cur3pass",
			wantErrors: 0,
		},
		{
			name:       "missing username",
			username:   "",
			email:      "alice@example.com",
			password:   "s3cur3pass",
			wantErrors: 1,
			wantFields: []string{"username"},
		},
		{
			name:       "invalid email format",
			username:   "alice",
			email:      "not-an-email",
			password:   "s3cur3pass",
			wantErrors: 1,
			wantFields: []string{"email"},
		},
		{
			name:       "password contains username",
			username:   "alice",
			email:      "contact@example.com",
			password:   "myAlicePass",
			wantErrors: 1,
			wantFields: []string{"password"},
		},
		{
			name:       "password contains email local part",
			username:   "alice",
			email:      "contact@example.com",
			password:   "contact123",
			wantErrors: 1,
			wantFields: []string{"password"},
		},
		{
			name:       "everything missing",
			username:   "",
			email:      "",
			password:   "",
			wantErrors: 3,
			wantFields: []string{"username", "email", "password"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			errors := ValidateRegistration(tt.username, tt.email, tt.password)
			if len(errors) != tt.wantErrors {
				t.Errorf("got %d errors, want %d: %+v", len(errors), tt.wantErrors, errors)
			}
			assertFields(t, errors, tt.wantFields)
		})
	}
}

func TestValidateQuestion(t *testing.T) {
	tests := []struct {
		name       string
		title      string
		summary    string
		text       string
		wantErrors int
		wantFields []string
	}{
		{
			name:       "valid question",
			title:      "How do I test this",
			summary:    "testing question",
			text:       "What is the idiomatic way?",
			wantErrors: 0,
		},
		{
			name:       "title too long",
			title:      strings.Repeat("a", 51),
			summary:    "testing question",
			text:       "body",
			wantErrors: 1,
			wantFields: []string{"title"},
		},
		{
			name:       "summary too long",
			title:      "ok",
			summary:    strings.Repeat("a", 141),
			text:       "body",
			wantErrors: 1,
			wantFields: []string{"summary"},
		},
		{
			name:       "missing text",
			title:      "ok",
			summary:    "ok",
			text:       "  ",
			wantErrors: 1,
			wantFields: []string{"text"},
		},
		{
			name:       "valid hyperlink",
			title:      "ok",
			summary:    "ok",
			text:       "see [the docs](https://example.com/docs)",
			wantErrors: 0,
		},
		{
			name:       "hyperlink with empty name",
			title:      "ok",
			summary:    "ok",
			text:       "see [](https://example.com)",
			wantErrors: 1,
			wantFields: []string{"text"},
		},
		{
			name:       "hyperlink with bad scheme",
			title:      "ok",
			summary:    "ok",
			text:       "see [docs](ftp://example.com)",
			wantErrors: 1,
			wantFields: []string{"text"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			errors := ValidateQuestion(tt.title, tt.summary, tt.text)
			if len(errors) != tt.wantErrors {
				t.Errorf("got %d errors, want %d: %+v", len(errors), tt.wantErrors, errors)
			}
			assertFields(t, errors, tt.wantFields)
		})
	}
}

func TestValidateComment(t *testing.T) {
	tests := []struct {
		name       string
		text       string
		wantErrors int
	}{
		{name: "valid comment", text: "nice answer", wantErrors: 0},
		{name: "empty comment", text: "", wantErrors: 1},
		{name: "comment too long", text: strings.Repeat("a", 141), wantErrors: 1},
		{name: "bad hyperlink", text: "[](https://x.com)", wantErrors: 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			errors := ValidateComment(tt.text)
			if len(errors) != tt.wantErrors {
				t.Errorf("got %d errors, want %d: %+v", len(errors), tt.wantErrors, errors)
			}
		})
	}
}

func TestValidateTags(t *testing.T) {
	tests := []struct {
		name       string
		tags       []string
		wantErrors int
	}{
		{name: "valid tags", tags: []string{"go", "testing"}, wantErrors: 0},
		{name: "no tags", tags: nil, wantErrors: 1},
		{name: "too many tags", tags: []string{"a", "b", "c", "d", "e", "f"}, wantErrors: 1},
		{name: "tag too long", tags: []string{"morethanten1"}, wantErrors: 1},
		{name: "tag with brackets", tags: []string{"[go]"}, wantErrors: 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			errors := ValidateTags(tt.tags)
			if len(errors) != tt.wantErrors {
				t.Errorf("got %d errors, want %d: %+v", len(errors), tt.wantErrors, errors)
			}
		})
	}
}

func TestValidateAnswer(t *testing.T) {
	if errors := ValidateAnswer("an answer"); len(errors) != 0 {
		t.Errorf("got %d errors, want 0: %+v", len(errors), errors)
	}
	if errors := ValidateAnswer(""); len(errors) != 1 {
		t.Errorf("got %d errors, want 1", len(errors))
	}
}

func assertFields(t *testing.T, errors []ValidationError, wantFields []string) {
	t.Helper()
	for _, field := range wantFields {
		found := false
		for _, e := range errors {
			if e.Field == field {
				found = true
				break
			}
		}
		if !found {
			t.Errorf("expected an error for field %q, got %+v", field, errors)
		}
	}
}
