package app

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeCompleter struct {
	lastMessage string
	reply       string
	err         error
}

func (f *fakeCompleter) Send(_ context.Context, message string) (string, error) {
	f.lastMessage = message
	if f.err != nil {
		return "", f.err
	}
	return f.reply, nil
}

func TestChatSend(t *testing.T) {
	completer := &fakeCompleter{reply: "hi"}
	svc := NewChatService(completer, true)

	reply, err := svc.Send(context.Background(), "  hello  ")
	require.NoError(t, err)
	assert.Equal(t, "hi", reply)
	assert.Equal(t, "hello", completer.lastMessage, "message must be trimmed before forwarding")
}

func TestChatSendEmptyMessage(t *testing.T) {
	svc := NewChatService(&fakeCompleter{}, true)

	_, err := svc.Send(context.Background(), "   ")
	assert.ErrorIs(t, err, ErrMessageEmpty)
}

func TestChatSendWithoutAPIKey(t *testing.T) {
	completer := &fakeCompleter{reply: "hi"}
	svc := NewChatService(completer, false)

	_, err := svc.Send(context.Background(), "hello")
	assert.ErrorIs(t, err, ErrAPIKeyMissing)
	assert.Empty(t, completer.lastMessage, "upstream must not be called without a key")
}
