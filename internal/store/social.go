package store

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/JLSed/ShoeFreak-Seller/internal/models"
)

// CreatePost inserts a feed post
func (s *Store) CreatePost(ctx context.Context, post *models.Post) error {
	return s.db.GetContext(ctx, &post.CreatedAt,
		`INSERT INTO posts (post_id, author_id, content, image_url)
		 VALUES ($1, $2, $3, $4)
		 RETURNING created_at`,
		post.ID, post.AuthorID, post.Content, post.ImageURL)
}

const postWithCountsQuery = `
	SELECT p.*,
	       u.first_name AS author_first_name,
	       u.last_name AS author_last_name,
	       COALESCE(l.cnt, 0) AS likes_count,
	       COALESCE(c.cnt, 0) AS comments_count
	FROM posts p
	JOIN users u ON u.user_id = p.author_id
	LEFT JOIN (SELECT post_id, COUNT(*) AS cnt FROM post_likes GROUP BY post_id) l ON l.post_id = p.post_id
	LEFT JOIN (SELECT post_id, COUNT(*) AS cnt FROM comments GROUP BY post_id) c ON c.post_id = p.post_id`

// ListPosts returns the feed newest-first with derived engagement counts.
// Posts without likes or comments read zero counts.
func (s *Store) ListPosts(ctx context.Context) ([]models.PostWithCounts, error) {
	posts := []models.PostWithCounts{}
	err := s.db.SelectContext(ctx, &posts, postWithCountsQuery+" ORDER BY p.created_at DESC")
	return posts, err
}

// ListPostsByAuthor returns one user's posts newest-first with counts.
func (s *Store) ListPostsByAuthor(ctx context.Context, authorID string) ([]models.PostWithCounts, error) {
	posts := []models.PostWithCounts{}
	err := s.db.SelectContext(ctx, &posts,
		postWithCountsQuery+" WHERE p.author_id = $1 ORDER BY p.created_at DESC", authorID)
	return posts, err
}

// DeletePost removes a post and, via FK cascade, its likes and comments.
// Only the author may delete.
func (s *Store) DeletePost(ctx context.Context, postID, authorID string) error {
	res, err := s.db.ExecContext(ctx,
		"DELETE FROM posts WHERE post_id = $1 AND author_id = $2", postID, authorID)
	if err != nil {
		return err
	}
	rows, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if rows == 0 {
		return fmt.Errorf("post %s: %w", postID, ErrNotFound)
	}
	return nil
}

// LikePost records a like. Idempotent: the (post, user) pair is unique
// and conflicts are dropped, so liking an already-liked post is a no-op.
func (s *Store) LikePost(ctx context.Context, postID, userID string) error {
	_, err := s.db.ExecContext(ctx,
		"INSERT INTO post_likes (post_id, user_id) VALUES ($1, $2) ON CONFLICT (post_id, user_id) DO NOTHING",
		postID, userID)
	return err
}

// UnlikePost removes a like row if present; no-op when absent.
func (s *Store) UnlikePost(ctx context.Context, postID, userID string) error {
	_, err := s.db.ExecContext(ctx,
		"DELETE FROM post_likes WHERE post_id = $1 AND user_id = $2", postID, userID)
	return err
}

// HasLiked reports whether a user has liked a post
func (s *Store) HasLiked(ctx context.Context, postID, userID string) (bool, error) {
	var exists bool
	err := s.db.GetContext(ctx, &exists,
		"SELECT EXISTS(SELECT 1 FROM post_likes WHERE post_id = $1 AND user_id = $2)", postID, userID)
	return exists, err
}

// LikeCount recounts a post's likes from the like table
func (s *Store) LikeCount(ctx context.Context, postID string) (int64, error) {
	var count int64
	err := s.db.GetContext(ctx, &count,
		"SELECT COUNT(*) FROM post_likes WHERE post_id = $1", postID)
	return count, err
}

// CreateComment inserts a comment on a post
func (s *Store) CreateComment(ctx context.Context, comment *models.Comment) error {
	err := s.db.GetContext(ctx, &comment.CreatedAt,
		`INSERT INTO comments (comment_id, post_id, author_id, body)
		 VALUES ($1, $2, $3, $4)
		 RETURNING created_at`,
		comment.ID, comment.PostID, comment.AuthorID, comment.Body)
	if err == sql.ErrNoRows {
		return fmt.Errorf("post %s: %w", comment.PostID, ErrNotFound)
	}
	return err
}

// ListComments returns a post's comments oldest-first
func (s *Store) ListComments(ctx context.Context, postID string) ([]models.Comment, error) {
	comments := []models.Comment{}
	err := s.db.SelectContext(ctx, &comments,
		"SELECT * FROM comments WHERE post_id = $1 ORDER BY created_at ASC", postID)
	return comments, err
}

// CommentCount recounts a post's comments
func (s *Store) CommentCount(ctx context.Context, postID string) (int64, error) {
	var count int64
	err := s.db.GetContext(ctx, &count,
		"SELECT COUNT(*) FROM comments WHERE post_id = $1", postID)
	return count, err
}
