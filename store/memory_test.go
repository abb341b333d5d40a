package store

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"bugtrail/models"
)

func TestMemoryPostPaging(t *testing.T) {
	mem := NewMemory()
	ctx := context.Background()
	author := primitive.NewObjectID()

	for _, title := range []string{"a", "b", "c"} {
		require.NoError(t, mem.CreatePost(ctx, &models.Post{Title: title, Author: author}))
	}

	posts, err := mem.FindPosts(ctx, PostFilter{Skip: 1, Limit: 1})
	require.NoError(t, err)
	require.Len(t, posts, 1)
	assert.Equal(t, "b", posts[0].Title)

	posts, err = mem.FindPosts(ctx, PostFilter{Skip: 5, Limit: 10})
	require.NoError(t, err)
	assert.Empty(t, posts)

	skip, limit := mem.LastPostQuery()
	assert.Equal(t, int64(5), skip)
	assert.Equal(t, int64(10), limit)
}

func TestMemoryPostLifecycle(t *testing.T) {
	mem := NewMemory()
	ctx := context.Background()

	post := &models.Post{Title: "t", Content: "c", Author: primitive.NewObjectID()}
	require.NoError(t, mem.CreatePost(ctx, post))
	assert.False(t, post.ID.IsZero(), "create assigns an id")
	assert.False(t, post.CreatedAt.IsZero())

	found, err := mem.FindPostByID(ctx, post.ID)
	require.NoError(t, err)
	require.NotNil(t, found)

	found.Title = "renamed"
	require.NoError(t, mem.SavePost(ctx, found))
	assert.True(t, !found.UpdatedAt.Before(found.CreatedAt))

	again, err := mem.FindPostByID(ctx, post.ID)
	require.NoError(t, err)
	assert.Equal(t, "renamed", again.Title)

	require.NoError(t, mem.RemovePost(ctx, post.ID))
	gone, err := mem.FindPostByID(ctx, post.ID)
	require.NoError(t, err)
	assert.Nil(t, gone, "absent record reads as nil, nil")
}

func TestMemoryCategoryFilter(t *testing.T) {
	mem := NewMemory()
	ctx := context.Background()
	category := primitive.NewObjectID()

	require.NoError(t, mem.CreatePost(ctx, &models.Post{Title: "in", Category: &category}))
	require.NoError(t, mem.CreatePost(ctx, &models.Post{Title: "out"}))

	posts, err := mem.FindPosts(ctx, PostFilter{Category: &category, Limit: 10})
	require.NoError(t, err)
	require.Len(t, posts, 1)
	assert.Equal(t, "in", posts[0].Title)
}
