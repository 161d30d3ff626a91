package domain

import (
	"errors"
	"strings"
)

var (
	ErrCandidateNotFound = errors.New("candidate not found")
	ErrCandidateHasVotes = errors.New("candidate with recorded votes cannot be deleted")
	ErrUserNotFound      = errors.New("user not found")
	ErrForbidden         = errors.New("access forbidden")
	ErrAlreadyVoted      = errors.New("user has already voted")
	ErrVoteInProgress    = errors.New("a vote for this user is already being recorded")
	ErrValidation        = errors.New("validation failed")

	ErrUserExists         = errors.New("user already exists")
	ErrAdminExists        = errors.New("an admin user already exists")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrUnauthorized       = errors.New("unauthorized")
	ErrUserHasVoted       = errors.New("user with a recorded vote cannot be deleted")
)

// ValidationError collects field-level problems with a payload or record.
// errors.Is(err, ErrValidation) holds for every ValidationError.
type ValidationError struct {
	Problems []string
}

// NewValidationError builds a ValidationError from the given messages.
func NewValidationError(problems ...string) *ValidationError {
	return &ValidationError{Problems: problems}
}

func (e *ValidationError) Add(problem string) {
	e.Problems = append(e.Problems, problem)
}

func (e *ValidationError) HasErrors() bool {
	return len(e.Problems) > 0
}

func (e *ValidationError) Error() string {
	if len(e.Problems) == 0 {
		return ErrValidation.Error()
	}
	return strings.Join(e.Problems, "; ")
}

func (e *ValidationError) Unwrap() error {
	return ErrValidation
}
