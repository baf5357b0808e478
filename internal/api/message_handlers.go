package api

import (
	"net/http"

	"github.com/JLSed/ShoeFreak-Seller/internal/models"
	"github.com/JLSed/ShoeFreak-Seller/internal/realtime"
	"github.com/gin-gonic/gin"
)

// listPartners returns the customers the seller has chatted with
func (h *Handler) listPartners(c *gin.Context) {
	partners, err := h.messageService.ListPartners(c.Request.Context(), currentAccountID(c))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"partners": partners})
}

// listMessages returns one conversation, oldest-first
func (h *Handler) listMessages(c *gin.Context) {
	messages, err := h.messageService.ListConversation(c.Request.Context(),
		currentAccountID(c), c.Param("customerId"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"messages": messages})
}

type sendMessageRequest struct {
	Body string `json:"body" binding:"required"`
}

// sendMessage stores a seller-sent message in the conversation
func (h *Handler) sendMessage(c *gin.Context) {
	var req sendMessageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body", "details": err.Error()})
		return
	}

	msg, err := h.messageService.Send(c.Request.Context(),
		currentAccountID(c), c.Param("customerId"), req.Body, models.SenderSeller)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"message": msg})
}

// listNotifications returns the account's notifications
func (h *Handler) listNotifications(c *gin.Context) {
	notifications, err := h.messageService.ListNotifications(c.Request.Context(), currentAccountID(c))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"notifications": notifications})
}

// serveWS upgrades the request and streams realtime pushes for the
// signed-in account until the connection closes.
func (h *Handler) serveWS(c *gin.Context) {
	if err := realtime.ServeWS(h.hub, currentAccountID(c), c.Writer, c.Request); err != nil {
		// Upgrade failed before the connection was hijacked.
		c.JSON(http.StatusBadRequest, gin.H{"error": "websocket upgrade failed", "details": err.Error()})
	}
}
