package ws

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"

	"github.com/Vasu1712/hackmate-backend/internal/models"
	"github.com/Vasu1712/hackmate-backend/internal/notify"
)

func startHub(t *testing.T) (*Hub, context.CancelFunc) {
	ctx, cancel := context.WithCancel(context.Background())
	hub := NewHub(zerolog.Nop())
	go hub.Run(ctx)
	t.Cleanup(cancel)
	return hub, cancel
}

func receive(t *testing.T, c *Client) []byte {
	t.Helper()
	select {
	case data, ok := <-c.Send:
		require.True(t, ok, "send channel closed")
		return data
	case <-time.After(time.Second):
		t.Fatal("no event received")
		return nil
	}
}

func Test_Notify_Reaches_Only_Addressed_Users(t *testing.T) {
	req := require.New(t)
	hub, _ := startHub(t)

	alice := &Client{UserID: "alice", Send: make(chan []byte, 4)}
	bob := &Client{UserID: "bob", Send: make(chan []byte, 4)}
	carol := &Client{UserID: "carol", Send: make(chan []byte, 4)}
	for _, c := range []*Client{alice, bob, carol} {
		req.NoError(hub.Attach(c))
	}

	ev := notify.MessageSent(
		models.DMMessage{ID: "m1", SenderID: "alice", ReceiverID: "bob", Content: "hi"},
		models.DMConversation{ID: "c1", Participants: [2]string{"alice", "bob"}, UnreadCount: 1},
	)
	req.NoError(hub.Notify(context.Background(), []string{"alice", "bob", "alice"}, ev))

	for _, c := range []*Client{alice, bob} {
		var got notify.Event
		req.NoError(json.Unmarshal(receive(t, c), &got))
		req.Equal("c1", got.ConversationID)
		req.Equal("hi", got.Message.Content)
	}
	req.Len(alice.Send, 0)
	req.Len(carol.Send, 0)
}

func Test_Detach_Closes_Send(t *testing.T) {
	req := require.New(t)
	hub, _ := startHub(t)

	c := &Client{UserID: "alice", Send: make(chan []byte, 1)}
	req.NoError(hub.Attach(c))
	hub.Detach(c)

	_, ok := <-c.Send
	req.False(ok)
	req.Equal(0, hub.ClientCount("alice"))
}

func Test_Stopped_Hub_Rejects_Work(t *testing.T) {
	req := require.New(t)
	hub, cancel := startHub(t)

	c := &Client{UserID: "alice", Send: make(chan []byte, 1)}
	req.NoError(hub.Attach(c))
	cancel()

	_, ok := <-c.Send
	req.False(ok)
	req.ErrorIs(hub.Notify(context.Background(), []string{"alice"}, notify.Event{}), ErrHubStopped)
	req.ErrorIs(hub.Attach(&Client{UserID: "bob", Send: make(chan []byte)}), ErrHubStopped)
	hub.Detach(c)
}
