package chat

import "errors"

var (
	ErrNoConsentPending = errors.New("no consent question is pending")
	ErrNoJobs           = userError("Não consegui buscar as vagas. Tente novamente.")
)

// userError is an error whose text can be shown in the conversation as is
type userError string

func (e userError) Error() string       { return string(e) }
func (e userError) UserMessage() string { return string(e) }

// userMessage returns the text shown to the user for err
func userMessage(err error) string {
	var um interface{ UserMessage() string }
	if errors.As(err, &um) && um.UserMessage() != "" {
		return um.UserMessage()
	}
	return msgUnexpected
}
