package service

import (
	"context"
	"testing"

	"github.com/JLSed/ShoeFreak-Seller/internal/models"
	"github.com/JLSed/ShoeFreak-Seller/internal/store"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeFeedStore keeps likes as a set per post, matching the unique
// constraint on the likes table.
type fakeFeedStore struct {
	posts    map[string]*models.Post
	likes    map[string]map[string]bool
	comments map[string][]models.Comment
}

func newFakeFeedStore() *fakeFeedStore {
	return &fakeFeedStore{
		posts:    make(map[string]*models.Post),
		likes:    make(map[string]map[string]bool),
		comments: make(map[string][]models.Comment),
	}
}

func (f *fakeFeedStore) CreatePost(_ context.Context, post *models.Post) error {
	f.posts[post.ID] = post
	return nil
}

func (f *fakeFeedStore) ListPosts(_ context.Context) ([]models.PostWithCounts, error) {
	var out []models.PostWithCounts
	for _, p := range f.posts {
		out = append(out, models.PostWithCounts{
			Post:          *p,
			LikesCount:    int64(len(f.likes[p.ID])),
			CommentsCount: int64(len(f.comments[p.ID])),
		})
	}
	return out, nil
}

func (f *fakeFeedStore) ListPostsByAuthor(ctx context.Context, authorID string) ([]models.PostWithCounts, error) {
	all, _ := f.ListPosts(ctx)
	var out []models.PostWithCounts
	for _, p := range all {
		if p.AuthorID == authorID {
			out = append(out, p)
		}
	}
	return out, nil
}

func (f *fakeFeedStore) DeletePost(_ context.Context, postID, authorID string) error {
	p, ok := f.posts[postID]
	if !ok || p.AuthorID != authorID {
		return store.ErrNotFound
	}
	delete(f.posts, postID)
	return nil
}

func (f *fakeFeedStore) LikePost(_ context.Context, postID, userID string) error {
	if f.likes[postID] == nil {
		f.likes[postID] = make(map[string]bool)
	}
	f.likes[postID][userID] = true
	return nil
}

func (f *fakeFeedStore) UnlikePost(_ context.Context, postID, userID string) error {
	delete(f.likes[postID], userID)
	return nil
}

func (f *fakeFeedStore) HasLiked(_ context.Context, postID, userID string) (bool, error) {
	return f.likes[postID][userID], nil
}

func (f *fakeFeedStore) LikeCount(_ context.Context, postID string) (int64, error) {
	return int64(len(f.likes[postID])), nil
}

func (f *fakeFeedStore) CreateComment(_ context.Context, comment *models.Comment) error {
	f.comments[comment.PostID] = append(f.comments[comment.PostID], *comment)
	return nil
}

func (f *fakeFeedStore) ListComments(_ context.Context, postID string) ([]models.Comment, error) {
	return f.comments[postID], nil
}

func (f *fakeFeedStore) CommentCount(_ context.Context, postID string) (int64, error) {
	return int64(len(f.comments[postID])), nil
}

type fakeUploader struct {
	uploads []string
	err     error
}

func (f *fakeUploader) Upload(_ context.Context, objectPath string, _ []byte, _ string) (string, error) {
	if f.err != nil {
		return "", f.err
	}
	f.uploads = append(f.uploads, objectPath)
	return "https://cdn.example.com/" + objectPath, nil
}

func TestCreatePost(t *testing.T) {
	feed := newFakeFeedStore()
	svc := NewFeedService(feed, &fakeUploader{})

	post, err := svc.CreatePost(context.Background(), "seller-1", "fresh pair just in", nil)
	require.NoError(t, err)
	assert.Equal(t, "seller-1", post.AuthorID)
	assert.Empty(t, post.ImageURL)

	_, err = svc.CreatePost(context.Background(), "seller-1", "   ", nil)
	assert.ErrorIs(t, err, ErrValidation)
}

func TestCreatePostWithImage(t *testing.T) {
	uploader := &fakeUploader{}
	svc := NewFeedService(newFakeFeedStore(), uploader)

	post, err := svc.CreatePost(context.Background(), "seller-1", "", &ImageUpload{
		FileName:    "kicks.jpg",
		ContentType: "image/jpeg",
		Data:        []byte("jpeg-bytes"),
	})
	require.NoError(t, err)
	assert.Contains(t, post.ImageURL, "posts/")
	require.Len(t, uploader.uploads, 1)
}

func TestLikeIdempotent(t *testing.T) {
	feed := newFakeFeedStore()
	svc := NewFeedService(feed, &fakeUploader{})

	post, err := svc.CreatePost(context.Background(), "seller-1", "hello", nil)
	require.NoError(t, err)

	count, err := svc.Like(context.Background(), post.ID, "user-1")
	require.NoError(t, err)
	assert.Equal(t, int64(1), count)

	// Second like from the same user changes nothing.
	count, err = svc.Like(context.Background(), post.ID, "user-1")
	require.NoError(t, err)
	assert.Equal(t, int64(1), count)

	count, err = svc.Like(context.Background(), post.ID, "user-2")
	require.NoError(t, err)
	assert.Equal(t, int64(2), count)
}

func TestUnlikeNeverNegative(t *testing.T) {
	feed := newFakeFeedStore()
	svc := NewFeedService(feed, &fakeUploader{})

	post, err := svc.CreatePost(context.Background(), "seller-1", "hello", nil)
	require.NoError(t, err)

	count, err := svc.Unlike(context.Background(), post.ID, "user-1")
	require.NoError(t, err)
	assert.Equal(t, int64(0), count)

	_, err = svc.Like(context.Background(), post.ID, "user-1")
	require.NoError(t, err)
	count, err = svc.Unlike(context.Background(), post.ID, "user-1")
	require.NoError(t, err)
	assert.Equal(t, int64(0), count)
}

func TestAddComment(t *testing.T) {
	feed := newFakeFeedStore()
	svc := NewFeedService(feed, &fakeUploader{})

	post, err := svc.CreatePost(context.Background(), "seller-1", "hello", nil)
	require.NoError(t, err)

	comment, count, err := svc.AddComment(context.Background(), post.ID, "user-1", "nice pair")
	require.NoError(t, err)
	assert.Equal(t, "nice pair", comment.Body)
	assert.Equal(t, int64(1), count)

	_, count, err = svc.AddComment(context.Background(), post.ID, "user-2", "where to cop?")
	require.NoError(t, err)
	assert.Equal(t, int64(2), count)

	_, _, err = svc.AddComment(context.Background(), post.ID, "user-3", "  ")
	assert.ErrorIs(t, err, ErrValidation)
}

func TestDeletePostOwnership(t *testing.T) {
	feed := newFakeFeedStore()
	svc := NewFeedService(feed, &fakeUploader{})

	post, err := svc.CreatePost(context.Background(), "seller-1", "hello", nil)
	require.NoError(t, err)

	err = svc.DeletePost(context.Background(), post.ID, "someone-else")
	assert.ErrorIs(t, err, store.ErrNotFound)

	require.NoError(t, svc.DeletePost(context.Background(), post.ID, "seller-1"))
}
