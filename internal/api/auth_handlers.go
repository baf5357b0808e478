package api

import (
	"net/http"

	"github.com/JLSed/ShoeFreak-Seller/internal/service"
	"github.com/gin-gonic/gin"
)

// signUp handles seller registration
func (h *Handler) signUp(c *gin.Context) {
	var req service.SignUpRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body", "details": err.Error()})
		return
	}

	account, err := h.authService.SignUp(c.Request.Context(), &req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"account": account})
}

// signIn handles credential sign-in
func (h *Handler) signIn(c *gin.Context) {
	var req service.SignInRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body", "details": err.Error()})
		return
	}

	session, err := h.authService.SignIn(c.Request.Context(), &req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, session)
}

// signOut revokes the current session
func (h *Handler) signOut(c *gin.Context) {
	if err := h.authService.SignOut(c.Request.Context(), c.GetString(ctxSessionID)); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "signed out"})
}

// currentAccount returns the signed-in seller's profile
func (h *Handler) currentAccount(c *gin.Context) {
	account, err := h.authService.CurrentAccount(c.Request.Context(), currentAccountID(c))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"account": account})
}

type updateProfileRequest struct {
	FirstName     string `json:"first_name" binding:"required"`
	LastName      string `json:"last_name" binding:"required"`
	ContactNumber string `json:"contact_number"`
	Address       string `json:"address"`
	PhotoURL      string `json:"photo_url"`
}

// updateProfile updates the signed-in seller's profile fields
func (h *Handler) updateProfile(c *gin.Context) {
	var req updateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body", "details": err.Error()})
		return
	}

	account, err := h.authService.UpdateProfile(c.Request.Context(), currentAccountID(c),
		req.FirstName, req.LastName, req.ContactNumber, req.Address, req.PhotoURL)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"account": account})
}
