package models

import "time"

// DMMessage is a single direct message. Messages are never edited once created.
type DMMessage struct {
	ID         string    `json:"id"`
	SenderID   string    `json:"sender_id"`
	ReceiverID string    `json:"receiver_id"`
	Content    string    `json:"content"`
	Timestamp  time.Time `json:"timestamp"`
	Read       bool      `json:"read"`
}

// DMConversation is the single thread between two users. Its messages are not
// stored on it; they are the messages whose sender/receiver pair matches
// Participants in either direction.
type DMConversation struct {
	ID           string    `json:"id"`
	Participants [2]string `json:"participants"` // Always 2 for DM
	UnreadCount  int       `json:"unread_count"`
}

// Includes reports whether userID is one of the participants.
func (c DMConversation) Includes(userID string) bool {
	return c.Participants[0] == userID || c.Participants[1] == userID
}

// Between reports whether the conversation joins a and b, in either order.
func (c DMConversation) Between(a, b string) bool {
	return (c.Participants[0] == a && c.Participants[1] == b) ||
		(c.Participants[0] == b && c.Participants[1] == a)
}

// Other returns the participant that is not userID.
func (c DMConversation) Other(userID string) string {
	if c.Participants[0] == userID {
		return c.Participants[1]
	}
	return c.Participants[0]
}

// ConversationSummary is a conversation as listed in a user's inbox.
type ConversationSummary struct {
	DMConversation
	OtherParticipantID string     `json:"other_participant_id"`
	LastMessage        *DMMessage `json:"last_message,omitempty"`
	// ShowUnread is false when the viewer sent the latest message.
	ShowUnread bool `json:"show_unread"`
}
