package utils

import "errors"

var (
	ErrInvalidPage     = errors.New("invalid page parameter")
	ErrInvalidPageSize = errors.New("invalid page size parameter")
	ErrDatabaseError   = errors.New("database error")
	ErrInvalidInput    = errors.New("invalid input")

	ErrSessionNotFound   = errors.New("quiz session not found")
	ErrInvalidTransition = errors.New("transition not allowed from the current step")

	ErrEmailTaken         = errors.New("email already registered")
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrAccountNotFound    = errors.New("account not found")

	ErrHabitNotFound       = errors.New("habit not found")
	ErrQuestionNotFound    = errors.New("question not found")
	ErrLibraryItemNotFound = errors.New("library item not found")

	ErrChatUnavailable = errors.New("chat provider not configured")
	ErrEmptyCompletion = errors.New("no response from AI")
	ErrChatFailed      = errors.New("failed to get AI response")
)
