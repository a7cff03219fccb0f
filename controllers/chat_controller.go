package controllers

import (
	"encoding/json"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"meetingbot/models"
	"meetingbot/services"
)

// chatPage is a minimal stand-in UI; the real front end is expected to
// live elsewhere and talk to POST /chat/message.
const chatPage = `<!DOCTYPE html>
<html>
<head><title>Chat</title></head>
<body>
<h1>Chat</h1>
<p>POST your conversation history to /chat/message as a JSON array of {"role","content"} objects.</p>
</body>
</html>`

type ChatController struct {
	chat *services.ChatService
}

func NewChatController(chat *services.ChatService) *ChatController {
	return &ChatController{chat: chat}
}

// Index serves the chat page. It also doubles as the redirect target
// for the login flow.
func (cc *ChatController) Index(c *gin.Context) {
	c.Data(http.StatusOK, "text/html; charset=utf-8", []byte(chatPage))
}

// Message responds to one chat turn. The history arrives either as a
// form field or as a JSON body field named "history", holding a JSON
// array of {role, content} objects. The reply is {"answer": ...}; any
// booking outcome is already appended to the answer text.
func (cc *ChatController) Message(c *gin.Context) {
	raw := c.PostForm("history")
	if raw == "" {
		var body struct {
			History json.RawMessage `json:"history"`
		}
		if err := c.ShouldBindJSON(&body); err != nil || len(body.History) == 0 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "history is required"})
			return
		}
		raw = string(body.History)
	}

	var history []models.ConversationTurn
	if err := json.Unmarshal([]byte(raw), &history); err != nil {
		log.Printf("Error parsing history: %v", err)
		c.JSON(http.StatusBadRequest, gin.H{"error": "history must be a JSON array of {role, content}"})
		return
	}

	reply, err := cc.chat.Respond(c.Request.Context(), history)
	if err != nil {
		log.Printf("Error responding to chat message: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"answer": reply.Text()})
}
