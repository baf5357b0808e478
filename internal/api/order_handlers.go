package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// confirmRequest is the irreversibility acknowledgement both order
// transitions demand before running.
type confirmRequest struct {
	Confirmed bool `json:"confirmed"`
}

// listPendingOrders returns the seller's PENDING orders
func (h *Handler) listPendingOrders(c *gin.Context) {
	orders, err := h.orderService.ListPending(c.Request.Context(), currentAccountID(c))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"orders": orders})
}

// getOrder returns one order with its listing and buyer
func (h *Handler) getOrder(c *gin.Context) {
	detail, err := h.orderService.Get(c.Request.Context(), currentAccountID(c), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, detail)
}

// completeOrder transitions PENDING -> SENDING and marks the listing SOLD
func (h *Handler) completeOrder(c *gin.Context) {
	if !h.confirmed(c) {
		return
	}

	detail, err := h.orderService.Complete(c.Request.Context(), currentAccountID(c), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, detail)
}

// cancelOrder transitions PENDING -> CANCELLED; the listing is untouched
func (h *Handler) cancelOrder(c *gin.Context) {
	if !h.confirmed(c) {
		return
	}

	detail, err := h.orderService.Cancel(c.Request.Context(), currentAccountID(c), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, detail)
}

// confirmed rejects order transitions that skip the explicit
// confirmation step. These transitions cannot be reverted.
func (h *Handler) confirmed(c *gin.Context) bool {
	var req confirmRequest
	if err := c.ShouldBindJSON(&req); err != nil || !req.Confirmed {
		c.JSON(http.StatusBadRequest, gin.H{"error": "confirmation required: this action cannot be reverted"})
		return false
	}
	return true
}
