package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"kosovai-backend/internal/ai"
	"kosovai-backend/internal/app"
)

type ChatHandler struct {
	chatService *app.ChatService
}

type ChatRequest struct {
	Message string `json:"message" binding:"required"`
}

func NewChatHandler(chatService *app.ChatService) *ChatHandler {
	return &ChatHandler{chatService: chatService}
}

func (h *ChatHandler) Chat(c *gin.Context) {
	var req ChatRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request payload"})
		return
	}

	reply, err := h.chatService.Send(c.Request.Context(), req.Message)
	if err != nil {
		h.writeChatError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"response": reply})
}

func (h *ChatHandler) writeChatError(c *gin.Context, err error) {
	var proxyErr *ai.ProxyError
	switch {
	case errors.Is(err, app.ErrMessageEmpty):
		c.JSON(http.StatusBadRequest, gin.H{"error": "message must not be empty"})
	case errors.Is(err, app.ErrAPIKeyMissing):
		c.JSON(http.StatusInternalServerError, gin.H{"error": "LLM API key is missing"})
	case errors.As(err, &proxyErr):
		switch proxyErr.Kind {
		case ai.ErrorKindUpstreamStatus:
			c.JSON(proxyErr.StatusCode, gin.H{"error": "API Error: " + proxyErr.Body})
		case ai.ErrorKindMalformedResponse:
			c.JSON(http.StatusBadGateway, gin.H{"error": "upstream returned an invalid response"})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "upstream request failed"})
		}
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": "chat request failed"})
	}
}
