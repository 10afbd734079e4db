package handler

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"kosovai-backend/internal/ai"
	"kosovai-backend/internal/app"
)

type stubCompleter struct {
	reply string
	err   error
}

func (s *stubCompleter) Send(_ context.Context, _ string) (string, error) {
	if s.err != nil {
		return "", s.err
	}
	return s.reply, nil
}

func newChatRouter(completer app.ChatCompleter, keyAvailable bool) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	h := NewChatHandler(app.NewChatService(completer, keyAvailable))
	router.POST("/chat", h.Chat)
	return router
}

func postChat(router *gin.Engine, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, "/chat", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestChatSuccess(t *testing.T) {
	router := newChatRouter(&stubCompleter{reply: "hi"}, true)

	w := postChat(router, `{"message":"hello"}`)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"response":"hi"}`, w.Body.String())
}

func TestChatInvalidPayload(t *testing.T) {
	router := newChatRouter(&stubCompleter{reply: "hi"}, true)

	for _, body := range []string{``, `{}`, `{"message":`} {
		w := postChat(router, body)
		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Contains(t, w.Body.String(), "error")
	}
}

func TestChatMissingAPIKey(t *testing.T) {
	router := newChatRouter(&stubCompleter{reply: "hi"}, false)

	w := postChat(router, `{"message":"hello"}`)
	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Contains(t, w.Body.String(), "API key is missing")
}

func TestChatUpstreamStatusRelayed(t *testing.T) {
	router := newChatRouter(&stubCompleter{err: &ai.ProxyError{
		Kind:       ai.ErrorKindUpstreamStatus,
		StatusCode: http.StatusUnauthorized,
		Body:       `{"message":"Unauthorized"}`,
	}}, true)

	w := postChat(router, `{"message":"hello"}`)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), "API Error")
}

func TestChatUpstreamUnreachable(t *testing.T) {
	router := newChatRouter(&stubCompleter{err: &ai.ProxyError{
		Kind: ai.ErrorKindUnreachable,
	}}, true)

	w := postChat(router, `{"message":"hello"}`)
	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Contains(t, w.Body.String(), "upstream request failed")
}

func TestChatMalformedUpstreamResponse(t *testing.T) {
	router := newChatRouter(&stubCompleter{err: &ai.ProxyError{
		Kind: ai.ErrorKindMalformedResponse,
	}}, true)

	w := postChat(router, `{"message":"hello"}`)
	assert.Equal(t, http.StatusBadGateway, w.Code)
	assert.Contains(t, w.Body.String(), "invalid response")
}

func TestChatEmptyMessage(t *testing.T) {
	router := newChatRouter(&stubCompleter{reply: "hi"}, true)

	w := postChat(router, `{"message":"   "}`)
	require.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "must not be empty")
}
