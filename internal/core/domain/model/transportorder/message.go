package transportorder

import (
	"time"

	"transportation/internal/pkg/errs"
	"transportation/internal/pkg/guard"
)

// ErrMessageIsNotConstructed indicates a zero-value Message that was not
// created via NewMessage.
var ErrMessageIsNotConstructed = errs.NewValueIsRequiredError(
	"Message must be created via NewMessage")

// Message is the last reported problem on a transport order: a text, an
// optional message number for lookup in external systems, and the time the
// problem occurred. Reporting a problem does not change the order's state.
type Message struct {
	text       string
	messageNo  string
	occurredAt time.Time

	guard guard.ConstructorGuard
}

// NewMessage creates a problem message. The text is required, the message
// number may be empty. The occurrence time is stamped at creation.
func NewMessage(text, messageNo string) (Message, error) {
	if text == "" {
		return Message{}, errs.NewValueIsRequiredError("message text")
	}

	return Message{
		text:       text,
		messageNo:  messageNo,
		occurredAt: time.Now(),
		guard:      guard.NewConstructorGuard(),
	}, nil
}

// RestoreMessage rehydrates a Message from persistence.
func RestoreMessage(text, messageNo string, occurredAt time.Time) (Message, error) {
	if text == "" {
		return Message{}, errs.NewValueIsRequiredError("message text")
	}

	return Message{
		text:       text,
		messageNo:  messageNo,
		occurredAt: occurredAt,
		guard:      guard.NewConstructorGuard(),
	}, nil
}

// Text returns the problem description.
func (m Message) Text() string {
	return m.text
}

// MessageNo returns the message number, empty when none was reported.
func (m Message) MessageNo() string {
	return m.messageNo
}

// OccurredAt returns when the problem occurred.
func (m Message) OccurredAt() time.Time {
	return m.occurredAt
}

// Validate returns ErrMessageIsNotConstructed for the zero value.
func (m Message) Validate() error {
	return m.guard.Validate(ErrMessageIsNotConstructed)
}
