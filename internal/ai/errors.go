package ai

import (
	"errors"
	"fmt"
)

var (
	ErrNoCandidates  = errors.New("no candidates in response")
	ErrEmptyResponse = errors.New("no text in response")
)

// User-facing messages shown in the chat when a call fails
const (
	msgSearchFailed     = "Não consegui buscar as vagas. Tente novamente."
	msgGenerationFailed = "Não consegui gerar o currículo. Tente novamente."
)

// ServiceError wraps a failed model call with a message that is safe to show
// to the user
type ServiceError struct {
	Op      string
	Message string
	Err     error
}

func (e *ServiceError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Op, e.Err)
	}
	return e.Op
}

func (e *ServiceError) Unwrap() error {
	return e.Err
}

// UserMessage returns the text to display in the conversation
func (e *ServiceError) UserMessage() string {
	return e.Message
}
