package entities

import "errors"

// Domain level sentinel errors returned by repositories.
var (
	ErrQuestionNotFound = errors.New("question not found")
	ErrSessionNotFound  = errors.New("interview session not found")
	ErrAttemptNotFound  = errors.New("attempt not found")
	ErrPoolExhausted    = errors.New("no unseen questions left in pool")
)
