package memory

import (
	"slices"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/samber/lo"

	"github.com/Vasu1712/hackmate-backend/internal/models"
)

// DMStore holds users, conversations and messages for the lifetime of the process.
// It is the only writer of that state; consumers go through its methods.
type DMStore struct {
	mu            sync.RWMutex
	users         []models.User
	conversations []*models.DMConversation
	messages      []models.DMMessage // insertion order
	catalog       models.Catalog

	now   func() time.Time
	newID func() string
	log   zerolog.Logger
}

// Option customises a DMStore.
type Option func(*DMStore)

// WithClock replaces time.Now as the source of message timestamps.
func WithClock(now func() time.Time) Option {
	return func(s *DMStore) { s.now = now }
}

// WithIDGenerator replaces uuid.NewString for new message and conversation ids.
func WithIDGenerator(newID func() string) Option {
	return func(s *DMStore) { s.newID = newID }
}

// NewDMStore creates a store pre-populated with seed.
func NewDMStore(seed Seed, log zerolog.Logger, opts ...Option) *DMStore {
	s := &DMStore{
		users:    make([]models.User, 0, len(seed.Users)),
		messages: slices.Clone(seed.Messages),
		catalog:  seed.Catalog,
		now:      time.Now,
		newID:    uuid.NewString,
		log:      log.With().Str("component", "dm-store").Logger(),
	}
	for _, u := range seed.Users {
		s.users = append(s.users, cloneUser(u))
	}
	for _, c := range seed.Conversations {
		conv := c
		s.conversations = append(s.conversations, &conv)
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// FindConversation returns the conversation between a and b regardless of argument order.
func (s *DMStore) FindConversation(a, b string) (models.DMConversation, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	conv, ok := s.findConversation(a, b)
	if !ok {
		return models.DMConversation{}, false
	}
	return *conv, true
}

// GetConversation returns the conversation with the given id.
func (s *DMStore) GetConversation(dmID string) (models.DMConversation, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	conv, ok := s.conversationByID(dmID)
	if !ok {
		return models.DMConversation{}, false
	}
	return *conv, true
}

// GetMessages returns the messages exchanged by the participants of dmID, oldest first.
// Messages sharing a timestamp keep the order in which they were sent.
// An unknown id yields an empty slice.
func (s *DMStore) GetMessages(dmID string) []models.DMMessage {
	s.mu.RLock()
	defer s.mu.RUnlock()

	conv, ok := s.conversationByID(dmID)
	if !ok {
		return []models.DMMessage{}
	}
	return s.messagesBetween(conv.Participants[0], conv.Participants[1])
}

// SendMessage appends a new unread message from senderID to receiverID and bumps the
// unread count of their conversation, creating the conversation with a count of 1 if
// the pair has never talked before. It returns the message and the conversation state
// after the update.
func (s *DMStore) SendMessage(senderID, receiverID, content string) (models.DMMessage, models.DMConversation) {
	s.mu.Lock()
	defer s.mu.Unlock()

	msg := models.DMMessage{
		ID:         s.newID(),
		SenderID:   senderID,
		ReceiverID: receiverID,
		Content:    content,
		Timestamp:  s.now(),
		Read:       false,
	}
	s.messages = append(s.messages, msg)

	conv, ok := s.findConversation(senderID, receiverID)
	if ok {
		conv.UnreadCount++
		s.log.Debug().Str("dm_id", conv.ID).Str("message_id", msg.ID).Int("unread", conv.UnreadCount).Msg("message added")
		return msg, *conv
	}

	conv = &models.DMConversation{
		ID:           s.newID(),
		Participants: [2]string{senderID, receiverID},
		UnreadCount:  1,
	}
	s.conversations = append(s.conversations, conv)
	s.log.Debug().Str("dm_id", conv.ID).Str("sender_id", senderID).Str("receiver_id", receiverID).Msg("conversation created")
	return msg, *conv
}

// ListConversations returns every conversation userID takes part in, most recently
// active first. Conversations without messages come last.
func (s *DMStore) ListConversations(userID string) []models.ConversationSummary {
	s.mu.RLock()
	defer s.mu.RUnlock()

	result := []models.ConversationSummary{}
	for _, conv := range s.conversations {
		if !conv.Includes(userID) {
			continue
		}
		summary := models.ConversationSummary{
			DMConversation:     *conv,
			OtherParticipantID: conv.Other(userID),
		}
		if msgs := s.messagesBetween(conv.Participants[0], conv.Participants[1]); len(msgs) > 0 {
			last := msgs[len(msgs)-1]
			summary.LastMessage = &last
			summary.ShowUnread = conv.UnreadCount > 0 && last.SenderID != userID
		}
		result = append(result, summary)
	}

	slices.SortStableFunc(result, func(a, b models.ConversationSummary) int {
		switch {
		case a.LastMessage == nil && b.LastMessage == nil:
			return 0
		case a.LastMessage == nil:
			return 1
		case b.LastMessage == nil:
			return -1
		}
		return b.LastMessage.Timestamp.Compare(a.LastMessage.Timestamp)
	})
	return result
}

func (s *DMStore) findConversation(a, b string) (*models.DMConversation, bool) {
	return lo.Find(s.conversations, func(c *models.DMConversation) bool {
		return c.Between(a, b)
	})
}

func (s *DMStore) conversationByID(dmID string) (*models.DMConversation, bool) {
	return lo.Find(s.conversations, func(c *models.DMConversation) bool {
		return c.ID == dmID
	})
}

// messagesBetween filters the message log for the pair and sorts it by time.
// Caller must hold s.mu.
func (s *DMStore) messagesBetween(a, b string) []models.DMMessage {
	msgs := lo.Filter(s.messages, func(m models.DMMessage, _ int) bool {
		return (m.SenderID == a && m.ReceiverID == b) || (m.SenderID == b && m.ReceiverID == a)
	})
	slices.SortStableFunc(msgs, func(x, y models.DMMessage) int {
		return x.Timestamp.Compare(y.Timestamp)
	})
	return msgs
}
