package service

import "errors"

// Typed operation outcomes. Handlers translate these into the wire-level
// response strings the UI matches on, so failure handling inside the server
// stays exhaustive-checkable instead of comparing payloads against sentinel
// strings.
var (
	// ErrDuplicateEmail is returned by Register when the email is taken
	ErrDuplicateEmail = errors.New("email already registered")

	// ErrEmailNotFound is returned by Login for an unknown email
	ErrEmailNotFound = errors.New("email not registered")

	// ErrPasswordMismatch is returned by Login for a wrong password
	ErrPasswordMismatch = errors.New("password does not match")

	// ErrInsufficientReputation is returned when a non-admin account below
	// the reputation threshold tries to vote, comment, or introduce a
	// brand-new tag
	ErrInsufficientReputation = errors.New("insufficient reputation")

	// ErrDuplicateTagName is returned when renaming a tag to a name that is
	// already in use
	ErrDuplicateTagName = errors.New("tag name already in use")

	// ErrTagInUse is returned when editing or removing a tag that another
	// user's question still uses
	ErrTagInUse = errors.New("tag in use by another user's question")

	// ErrInvalidVote is returned for a vote change outside ±1 or a downvote
	// on a comment
	ErrInvalidVote = errors.New("invalid vote")

	// ErrNotFound is returned when a referenced entity does not exist
	ErrNotFound = errors.New("not found")
)
