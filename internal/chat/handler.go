package chat

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	dispatcher *Dispatcher
}

func NewHandler(dispatcher *Dispatcher) *Handler {
	return &Handler{dispatcher: dispatcher}
}

// Chat accepts the full prior conversation and returns one assistant
// reply. No conversation state is kept server-side.
func (h *Handler) Chat(c *gin.Context) {
	var req struct {
		Messages []Message `json:"messages" binding:"required"`
	}

	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "messages is required"})
		return
	}

	reply := h.dispatcher.Dispatch(c.Request.Context(), req.Messages)
	c.JSON(http.StatusOK, reply)
}
