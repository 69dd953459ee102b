package scoring

import "errors"

var (
	// ErrIncompleteAnswers indicates at least one catalog question has no answer.
	ErrIncompleteAnswers = errors.New("incomplete answers")
	// ErrInvalidAnswer indicates an answer outside its question's scale, or an
	// answer for a question the catalog does not define.
	ErrInvalidAnswer = errors.New("invalid answer")
)

const (
	ErrorCodeIncomplete = "incomplete_answers"
	ErrorCodeInvalid    = "invalid_answer"
)
