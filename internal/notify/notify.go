package notify

import (
	"context"
	"errors"

	"github.com/Vasu1712/hackmate-backend/internal/models"
)

// EventMessageSent is emitted once per successfully stored message.
const EventMessageSent = "message.sent"

// Event is pushed to the participants of a conversation.
type Event struct {
	Type           string           `json:"type"`
	ConversationID string           `json:"conversation_id"`
	UnreadCount    int              `json:"unread_count"`
	Message        models.DMMessage `json:"message"`
}

// MessageSent builds the event for a message and the conversation state after it was stored.
func MessageSent(msg models.DMMessage, conv models.DMConversation) Event {
	return Event{
		Type:           EventMessageSent,
		ConversationID: conv.ID,
		UnreadCount:    conv.UnreadCount,
		Message:        msg,
	}
}

// Notifier delivers an event to the given users.
type Notifier interface {
	Notify(ctx context.Context, userIDs []string, ev Event) error
}

// Multi delivers to every notifier and joins their errors.
type Multi []Notifier

func (m Multi) Notify(ctx context.Context, userIDs []string, ev Event) error {
	var errs []error
	for _, n := range m {
		if err := n.Notify(ctx, userIDs, ev); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

// Nop discards every event.
type Nop struct{}

func (Nop) Notify(context.Context, []string, Event) error { return nil }
