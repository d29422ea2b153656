package notify

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/Vasu1712/hackmate-backend/internal/models"
)

type recorder struct {
	calls [][]string
	err   error
}

func (r *recorder) Notify(_ context.Context, userIDs []string, _ Event) error {
	r.calls = append(r.calls, userIDs)
	return r.err
}

func Test_MessageSent(t *testing.T) {
	req := require.New(t)
	msg := models.DMMessage{ID: "m1", SenderID: "a", ReceiverID: "b", Content: "hi"}
	conv := models.DMConversation{ID: "c1", Participants: [2]string{"a", "b"}, UnreadCount: 3}

	ev := MessageSent(msg, conv)
	req.Equal(EventMessageSent, ev.Type)
	req.Equal("c1", ev.ConversationID)
	req.Equal(3, ev.UnreadCount)
	req.Equal(msg, ev.Message)
}

func Test_Multi_Delivers_To_All_And_Joins_Errors(t *testing.T) {
	req := require.New(t)
	boom := errors.New("boom")
	ok, failing := &recorder{}, &recorder{err: boom}

	err := Multi{failing, ok}.Notify(context.Background(), []string{"a", "b"}, Event{})
	req.ErrorIs(err, boom)
	req.Len(ok.calls, 1)
	req.Len(failing.calls, 1)
	req.Equal([]string{"a", "b"}, ok.calls[0])
}

func Test_Multi_Empty(t *testing.T) {
	require.NoError(t, Multi{}.Notify(context.Background(), []string{"a"}, Event{}))
	require.NoError(t, Nop{}.Notify(context.Background(), []string{"a"}, Event{}))
}

func Test_Channel(t *testing.T) {
	require.Equal(t, "hackmate:dm:42", Channel("42"))
}
