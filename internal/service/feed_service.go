package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/JLSed/ShoeFreak-Seller/internal/models"
	"github.com/JLSed/ShoeFreak-Seller/internal/storage"
	"github.com/JLSed/ShoeFreak-Seller/internal/util"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// FeedService maintains the social feed and its engagement counters.
// Counts are never incremented locally: after every mutation the count
// is recomputed from the like/comment tables, so the number shown is
// always server truth.
type FeedService struct {
	feed     FeedStore
	uploader Uploader
	logger   *zap.Logger
}

// NewFeedService creates a new feed service
func NewFeedService(feed FeedStore, uploader Uploader) *FeedService {
	return &FeedService{
		feed:     feed,
		uploader: uploader,
		logger:   util.GetLogger(),
	}
}

// CreatePost publishes a feed post with an optional image. The image
// upload happens first and aborts the post on failure.
func (s *FeedService) CreatePost(ctx context.Context, authorID, content string, image *ImageUpload) (*models.Post, error) {
	ctx, span := util.StartSpan(ctx, "FeedService.CreatePost")
	defer span.End()

	if strings.TrimSpace(content) == "" && image == nil {
		return nil, fmt.Errorf("post needs text or an image: %w", ErrValidation)
	}

	imageURL := ""
	if image != nil && len(image.Data) > 0 {
		objectPath := storage.RandomObjectPath("posts", image.FileName)
		url, err := s.uploader.Upload(ctx, objectPath, image.Data, image.ContentType)
		if err != nil {
			return nil, fmt.Errorf("image upload failed: %w", err)
		}
		imageURL = url
	}

	post := &models.Post{
		ID:       uuid.New().String(),
		AuthorID: authorID,
		Content:  content,
		ImageURL: imageURL,
	}
	if err := s.feed.CreatePost(ctx, post); err != nil {
		return nil, fmt.Errorf("failed to create post: %w", err)
	}

	util.PostEngagementsTotal.WithLabelValues("post").Inc()
	return post, nil
}

// ListPosts returns the feed with derived counts
func (s *FeedService) ListPosts(ctx context.Context) ([]models.PostWithCounts, error) {
	return s.feed.ListPosts(ctx)
}

// ListUserPosts returns one user's posts with derived counts
func (s *FeedService) ListUserPosts(ctx context.Context, userID string) ([]models.PostWithCounts, error) {
	return s.feed.ListPostsByAuthor(ctx, userID)
}

// DeletePost removes the caller's own post
func (s *FeedService) DeletePost(ctx context.Context, postID, authorID string) error {
	return s.feed.DeletePost(ctx, postID, authorID)
}

// Like records a like and returns the fresh count. Liking an
// already-liked post is a no-op and the count is unchanged.
func (s *FeedService) Like(ctx context.Context, postID, userID string) (int64, error) {
	if err := s.feed.LikePost(ctx, postID, userID); err != nil {
		return 0, fmt.Errorf("failed to like post: %w", err)
	}
	util.PostEngagementsTotal.WithLabelValues("like").Inc()
	return s.feed.LikeCount(ctx, postID)
}

// Unlike removes a like if present and returns the fresh count
func (s *FeedService) Unlike(ctx context.Context, postID, userID string) (int64, error) {
	if err := s.feed.UnlikePost(ctx, postID, userID); err != nil {
		return 0, fmt.Errorf("failed to unlike post: %w", err)
	}
	util.PostEngagementsTotal.WithLabelValues("unlike").Inc()
	return s.feed.LikeCount(ctx, postID)
}

// HasLiked reports whether the user has liked the post
func (s *FeedService) HasLiked(ctx context.Context, postID, userID string) (bool, error) {
	return s.feed.HasLiked(ctx, postID, userID)
}

// LikeCount recounts a post's likes
func (s *FeedService) LikeCount(ctx context.Context, postID string) (int64, error) {
	return s.feed.LikeCount(ctx, postID)
}

// AddComment stores a comment and returns it with the fresh comment
// count for the post.
func (s *FeedService) AddComment(ctx context.Context, postID, authorID, body string) (*models.Comment, int64, error) {
	if strings.TrimSpace(body) == "" {
		return nil, 0, fmt.Errorf("comment body is required: %w", ErrValidation)
	}

	comment := &models.Comment{
		ID:       uuid.New().String(),
		PostID:   postID,
		AuthorID: authorID,
		Body:     body,
	}
	if err := s.feed.CreateComment(ctx, comment); err != nil {
		return nil, 0, fmt.Errorf("failed to add comment: %w", err)
	}

	util.PostEngagementsTotal.WithLabelValues("comment").Inc()
	count, err := s.feed.CommentCount(ctx, postID)
	if err != nil {
		return nil, 0, err
	}
	return comment, count, nil
}

// ListComments returns a post's comments oldest-first
func (s *FeedService) ListComments(ctx context.Context, postID string) ([]models.Comment, error) {
	return s.feed.ListComments(ctx, postID)
}
