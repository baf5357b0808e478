package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// listPosts returns the whole feed with engagement counts
func (h *Handler) listPosts(c *gin.Context) {
	posts, err := h.feedService.ListPosts(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"posts": posts})
}

// listUserPosts returns one user's posts with engagement counts
func (h *Handler) listUserPosts(c *gin.Context) {
	posts, err := h.feedService.ListUserPosts(c.Request.Context(), c.Param("userId"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"posts": posts})
}

// createPost publishes a feed post from a multipart form; the image is
// optional
func (h *Handler) createPost(c *gin.Context) {
	image, err := readImage(c, "image")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid image", "details": err.Error()})
		return
	}

	post, err := h.feedService.CreatePost(c.Request.Context(), currentAccountID(c), c.PostForm("content"), image)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"post": post})
}

// deletePost removes the caller's own post
func (h *Handler) deletePost(c *gin.Context) {
	if err := h.feedService.DeletePost(c.Request.Context(), c.Param("id"), currentAccountID(c)); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "deleted"})
}

// likePost records a like and echoes the fresh count
func (h *Handler) likePost(c *gin.Context) {
	count, err := h.feedService.Like(c.Request.Context(), c.Param("id"), currentAccountID(c))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"likes_count": count})
}

// unlikePost removes a like and echoes the fresh count
func (h *Handler) unlikePost(c *gin.Context) {
	count, err := h.feedService.Unlike(c.Request.Context(), c.Param("id"), currentAccountID(c))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"likes_count": count})
}

// likeStatus reports whether the caller liked the post plus the count
func (h *Handler) likeStatus(c *gin.Context) {
	ctx := c.Request.Context()
	postID := c.Param("id")

	liked, err := h.feedService.HasLiked(ctx, postID, currentAccountID(c))
	if err != nil {
		respondError(c, err)
		return
	}
	count, err := h.feedService.LikeCount(ctx, postID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"liked": liked, "likes_count": count})
}

type addCommentRequest struct {
	Body string `json:"body" binding:"required"`
}

// addComment stores a comment and echoes the fresh comment count
func (h *Handler) addComment(c *gin.Context) {
	var req addCommentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body", "details": err.Error()})
		return
	}

	comment, count, err := h.feedService.AddComment(c.Request.Context(), c.Param("id"), currentAccountID(c), req.Body)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"comment": comment, "comments_count": count})
}

// listComments returns a post's comments oldest-first
func (h *Handler) listComments(c *gin.Context) {
	comments, err := h.feedService.ListComments(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"comments": comments})
}
