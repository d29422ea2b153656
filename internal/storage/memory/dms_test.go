package memory

import (
	"fmt"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"

	"github.com/Vasu1712/hackmate-backend/internal/models"
)

type testClock struct {
	at   time.Time
	step time.Duration
}

func (c *testClock) now() time.Time {
	t := c.at
	c.at = c.at.Add(c.step)
	return t
}

func sequentialIDs(prefix string) func() string {
	n := 0
	return func() string {
		n++
		return fmt.Sprintf("%s%d", prefix, n)
	}
}

func newTestStore(step time.Duration) *DMStore {
	seed := Seed{Users: []models.User{
		{ID: "u1", Name: "Ada"},
		{ID: "u2", Name: "Grace"},
		{ID: "u3", Name: "Linus"},
	}}
	clock := &testClock{at: time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC), step: step}
	return NewDMStore(seed, zerolog.Nop(), WithClock(clock.now), WithIDGenerator(sequentialIDs("id-")))
}

func Test_FindConversation_Is_Order_Independent(t *testing.T) {
	req := require.New(t)
	store := NewDMStore(DemoSeed(), zerolog.Nop())

	for _, pair := range [][2]string{{"1", "2"}, {"1", "3"}, {"2", "3"}, {"4", "5"}} {
		ab, okAB := store.FindConversation(pair[0], pair[1])
		ba, okBA := store.FindConversation(pair[1], pair[0])
		req.Equal(okAB, okBA)
		req.Equal(ab, ba)
	}
}

func Test_FindConversation_Unknown_Pair_Is_Absent(t *testing.T) {
	req := require.New(t)
	store := newTestStore(time.Second)

	_, ok := store.FindConversation("u1", "u2")
	req.False(ok)
}

func Test_SendMessage_Creates_Conversation_With_One_Unread(t *testing.T) {
	req := require.New(t)
	store := newTestStore(time.Second)

	msg, conv := store.SendMessage("u1", "u2", "hi")
	req.Equal("u1", msg.SenderID)
	req.Equal("u2", msg.ReceiverID)
	req.Equal("hi", msg.Content)
	req.False(msg.Read)
	req.Equal(1, conv.UnreadCount)

	found, ok := store.FindConversation("u1", "u2")
	req.True(ok)
	req.Equal(conv, found)

	msgs := store.GetMessages(found.ID)
	req.Len(msgs, 1)
	req.Equal(msg, msgs[0])
}

func Test_SendMessage_Reuses_Conversation_For_Same_Pair(t *testing.T) {
	req := require.New(t)
	store := newTestStore(time.Second)

	_, first := store.SendMessage("u1", "u2", "Hello")
	_, second := store.SendMessage("u2", "u1", "Hi back")

	req.Equal(first.ID, second.ID)
	req.Equal(2, second.UnreadCount)
	req.Len(store.ListConversations("u1"), 1)
	req.Len(store.ListConversations("u2"), 1)

	msgs := store.GetMessages(first.ID)
	req.Len(msgs, 2)
	req.Equal("Hello", msgs[0].Content)
	req.Equal("u1", msgs[0].SenderID)
	req.Equal("Hi back", msgs[1].Content)
	req.Equal("u2", msgs[1].SenderID)
}

func Test_SendMessage_Unread_Count_Is_Unbounded(t *testing.T) {
	req := require.New(t)
	store := newTestStore(time.Second)

	var conv models.DMConversation
	for i := 0; i < 50; i++ {
		_, conv = store.SendMessage("u1", "u3", "ping")
	}
	req.Equal(50, conv.UnreadCount)
}

func Test_SendMessage_Does_Not_Touch_Other_Conversations(t *testing.T) {
	req := require.New(t)
	store := newTestStore(time.Second)

	_, c12 := store.SendMessage("u1", "u2", "a")
	_, c13 := store.SendMessage("u1", "u3", "b")
	req.NotEqual(c12.ID, c13.ID)

	store.SendMessage("u3", "u1", "c")

	got, ok := store.FindConversation("u2", "u1")
	req.True(ok)
	req.Equal(1, got.UnreadCount)
	req.Len(store.GetMessages(c12.ID), 1)
	req.Len(store.GetMessages(c13.ID), 2)
}

func Test_GetMessages_Orders_By_Timestamp(t *testing.T) {
	req := require.New(t)
	base := time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)
	// Clock runs backwards so insertion order and time order disagree.
	clock := &testClock{at: base, step: -time.Minute}
	store := NewDMStore(Seed{}, zerolog.Nop(), WithClock(clock.now), WithIDGenerator(sequentialIDs("id-")))

	store.SendMessage("a", "b", "first sent")
	store.SendMessage("b", "a", "second sent")
	_, conv := store.SendMessage("a", "b", "third sent")

	msgs := store.GetMessages(conv.ID)
	req.Len(msgs, 3)
	for i := 1; i < len(msgs); i++ {
		req.False(msgs[i].Timestamp.Before(msgs[i-1].Timestamp))
	}
	req.Equal("third sent", msgs[0].Content)
	req.Equal("first sent", msgs[2].Content)
}

func Test_GetMessages_Equal_Timestamps_Keep_Send_Order(t *testing.T) {
	req := require.New(t)
	store := newTestStore(0)

	store.SendMessage("u1", "u2", "one")
	store.SendMessage("u2", "u1", "two")
	_, conv := store.SendMessage("u1", "u2", "three")

	msgs := store.GetMessages(conv.ID)
	req.Equal([]string{"one", "two", "three"}, []string{msgs[0].Content, msgs[1].Content, msgs[2].Content})
}

func Test_GetMessages_Unknown_Conversation_Is_Empty(t *testing.T) {
	req := require.New(t)
	store := NewDMStore(DemoSeed(), zerolog.Nop())

	msgs := store.GetMessages("missing")
	req.NotNil(msgs)
	req.Empty(msgs)
}

func Test_GetMessages_Filters_By_Participants(t *testing.T) {
	req := require.New(t)
	store := NewDMStore(DemoSeed(), zerolog.Nop())

	msgs := store.GetMessages("c1")
	req.Len(msgs, 2)
	for _, m := range msgs {
		req.ElementsMatch([]string{"1", "2"}, []string{m.SenderID, m.ReceiverID})
	}
}

func Test_ListConversations_Orders_By_Latest_Message(t *testing.T) {
	req := require.New(t)
	clock := &testClock{at: time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC), step: time.Minute}
	store := NewDMStore(Seed{
		Conversations: []models.DMConversation{{ID: "empty", Participants: [2]string{"u1", "u3"}}},
	}, zerolog.Nop(), WithClock(clock.now), WithIDGenerator(sequentialIDs("id-")))

	store.SendMessage("u2", "u1", "older")
	store.SendMessage("u1", "u4", "newer")

	summaries := store.ListConversations("u1")
	req.Len(summaries, 3)
	req.Equal("u4", summaries[0].OtherParticipantID)
	req.Equal("newer", summaries[0].LastMessage.Content)
	req.Equal("u2", summaries[1].OtherParticipantID)
	req.Equal("empty", summaries[2].ID)
	req.Nil(summaries[2].LastMessage)
}

func Test_ListConversations_ShowUnread_Hidden_For_Own_Last_Message(t *testing.T) {
	req := require.New(t)
	store := newTestStore(time.Second)

	store.SendMessage("u1", "u2", "hello")

	sender := store.ListConversations("u1")
	req.Len(sender, 1)
	req.False(sender[0].ShowUnread)

	receiver := store.ListConversations("u2")
	req.Len(receiver, 1)
	req.True(receiver[0].ShowUnread)
	req.Equal("u1", receiver[0].OtherParticipantID)
}

func Test_ListConversations_Unknown_User_Is_Empty(t *testing.T) {
	req := require.New(t)
	store := NewDMStore(DemoSeed(), zerolog.Nop())

	summaries := store.ListConversations("nobody")
	req.NotNil(summaries)
	req.Empty(summaries)
}

func Test_Scenario_First_Contact_Then_Reply(t *testing.T) {
	req := require.New(t)
	store := newTestStore(time.Second)

	_, ok := store.FindConversation("u1", "u2")
	req.False(ok)

	store.SendMessage("u1", "u2", "Hello")
	conv, ok := store.FindConversation("u1", "u2")
	req.True(ok)
	req.Equal(1, conv.UnreadCount)
	msgs := store.GetMessages(conv.ID)
	req.Len(msgs, 1)
	req.Equal("Hello", msgs[0].Content)
	req.Equal("u1", msgs[0].SenderID)

	store.SendMessage("u2", "u1", "Hi back")
	again, ok := store.FindConversation("u2", "u1")
	req.True(ok)
	req.Equal(conv.ID, again.ID)
	req.Equal(2, again.UnreadCount)
	msgs = store.GetMessages(conv.ID)
	req.Len(msgs, 2)
	req.Equal("Hello", msgs[0].Content)
	req.Equal("Hi back", msgs[1].Content)
	req.True(msgs[0].Timestamp.Before(msgs[1].Timestamp))
}
