package app

import (
	"context"
	"errors"
	"strings"
)

var (
	ErrMessageEmpty  = errors.New("message content is empty")
	ErrAPIKeyMissing = errors.New("llm api key is not configured")
)

type ChatCompleter interface {
	Send(ctx context.Context, message string) (string, error)
}

// ChatService fronts the upstream proxy call. Each Send is stateless
// and independent; nothing is persisted.
type ChatService struct {
	client       ChatCompleter
	keyAvailable bool
}

func NewChatService(client ChatCompleter, keyAvailable bool) *ChatService {
	return &ChatService{
		client:       client,
		keyAvailable: keyAvailable,
	}
}

func (s *ChatService) Send(ctx context.Context, message string) (string, error) {
	content := strings.TrimSpace(message)
	if content == "" {
		return "", ErrMessageEmpty
	}
	if !s.keyAvailable {
		return "", ErrAPIKeyMissing
	}
	return s.client.Send(ctx, content)
}
