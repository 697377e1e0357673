package chat

import "github.com/khrees2412/cvexpress/pkg/models"

// Sender identifies who wrote a message
type Sender string

const (
	SenderBot  Sender = "bot"
	SenderUser Sender = "user"
)

// PayloadKind discriminates the Payload implementations
type PayloadKind int

const (
	KindText PayloadKind = iota + 1
	KindOptions
	KindSources
	KindAction
)

// Payload is the content of a message. The concrete types are Text,
// OptionList, SourceList and ActionButton.
type Payload interface {
	Kind() PayloadKind
}

// Message is one entry of the conversation. Messages are never modified
// after they are appended.
type Message struct {
	ID      int64
	Sender  Sender
	Payload Payload
}

// Text is a plain message
type Text struct {
	Body string
}

func (Text) Kind() PayloadKind { return KindText }

// Option is one selectable choice
type Option struct {
	Label string
	Value string
}

// OptionList is a prompt followed by an enumerated set of choices
type OptionList struct {
	Prompt  string
	Options []Option
}

func (OptionList) Kind() PayloadKind { return KindOptions }

// SourceList shows where search results came from
type SourceList struct {
	Title   string
	Sources []models.Source
}

func (SourceList) Kind() PayloadKind { return KindSources }

// Action is something the presentation layer performs on behalf of the user
type Action int

const (
	ActionDownloadPDF Action = iota + 1
)

// ActionButton asks the presentation layer to offer an action
type ActionButton struct {
	Label  string
	Action Action
}

func (ActionButton) Kind() PayloadKind { return KindAction }

// copyPayload returns a payload that shares no slices with p
func copyPayload(p Payload) Payload {
	switch v := p.(type) {
	case OptionList:
		v.Options = append([]Option(nil), v.Options...)
		return v
	case SourceList:
		v.Sources = append([]models.Source(nil), v.Sources...)
		return v
	default:
		return p
	}
}
