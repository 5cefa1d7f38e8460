package repository

import (
	"testing"

	"quill/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestListNewestFirst(t *testing.T) {
	db := setupTestDB(t)
	repo := NewPostRepository(db)
	author := createTestUser(t, db, "writer")

	for i := 1; i <= 3; i++ {
		createTestPost(t, db, author, nil, i)
	}

	posts, err := repo.List(testCtx(), 0, 10)
	require.NoError(t, err)
	require.Len(t, posts, 3)
	assert.Equal(t, "post 3 by writer", posts[0].Text)
	assert.Equal(t, "post 1 by writer", posts[2].Text)
}

func TestListPagination(t *testing.T) {
	db := setupTestDB(t)
	repo := NewPostRepository(db)
	author := createTestUser(t, db, "prolific")

	for i := 1; i <= 13; i++ {
		createTestPost(t, db, author, nil, i)
	}

	total, err := repo.CountAll(testCtx())
	require.NoError(t, err)
	assert.Equal(t, int64(13), total)

	first, err := repo.List(testCtx(), 0, 10)
	require.NoError(t, err)
	assert.Len(t, first, 10)

	second, err := repo.List(testCtx(), 10, 10)
	require.NoError(t, err)
	assert.Len(t, second, 3)
}

func TestListByGroupFiltersExactly(t *testing.T) {
	db := setupTestDB(t)
	repo := NewPostRepository(db)
	author := createTestUser(t, db, "writer")
	cats := createTestGroup(t, db, "cats")
	dogs := createTestGroup(t, db, "dogs")

	inCats := createTestPost(t, db, author, cats, 1)
	createTestPost(t, db, author, dogs, 2)
	createTestPost(t, db, author, nil, 3)

	posts, err := repo.ListByGroup(testCtx(), cats.ID, 0, 10)
	require.NoError(t, err)
	require.Len(t, posts, 1)
	assert.Equal(t, inCats.ID, posts[0].ID)
	require.NotNil(t, posts[0].Group)
	assert.Equal(t, "cats", posts[0].Group.Slug)

	count, err := repo.CountByGroup(testCtx(), dogs.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(1), count)
}

func TestListByAuthor(t *testing.T) {
	db := setupTestDB(t)
	repo := NewPostRepository(db)
	alice := createTestUser(t, db, "alice")
	bob := createTestUser(t, db, "bob")

	createTestPost(t, db, alice, nil, 1)
	createTestPost(t, db, alice, nil, 2)
	createTestPost(t, db, bob, nil, 3)

	posts, err := repo.ListByAuthor(testCtx(), alice.ID, 0, 10)
	require.NoError(t, err)
	assert.Len(t, posts, 2)
	for _, p := range posts {
		assert.Equal(t, alice.ID, p.AuthorID)
	}
}

func TestFeedOnlyFollowedAuthors(t *testing.T) {
	db := setupTestDB(t)
	repo := NewPostRepository(db)
	follows := NewFollowRepository(db)

	reader := createTestUser(t, db, "reader")
	followed := createTestUser(t, db, "followed")
	stranger := createTestUser(t, db, "stranger")

	createTestPost(t, db, followed, nil, 1)
	createTestPost(t, db, stranger, nil, 2)

	require.NoError(t, follows.Create(testCtx(), &models.Follow{UserID: reader.ID, AuthorID: followed.ID}))

	feed, err := repo.Feed(testCtx(), reader.ID, 0, 10)
	require.NoError(t, err)
	require.Len(t, feed, 1)
	assert.Equal(t, followed.ID, feed[0].AuthorID)

	count, err := repo.CountFeed(testCtx(), reader.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(1), count)
}

func TestFeedEmptyAfterUnfollow(t *testing.T) {
	db := setupTestDB(t)
	repo := NewPostRepository(db)
	follows := NewFollowRepository(db)

	reader := createTestUser(t, db, "reader")
	author := createTestUser(t, db, "author")
	createTestPost(t, db, author, nil, 1)

	require.NoError(t, follows.Create(testCtx(), &models.Follow{UserID: reader.ID, AuthorID: author.ID}))
	removed, err := follows.Delete(testCtx(), reader.ID, author.ID)
	require.NoError(t, err)
	assert.True(t, removed)

	feed, err := repo.Feed(testCtx(), reader.ID, 0, 10)
	require.NoError(t, err)
	assert.Empty(t, feed)
}

func TestGetByIDIncludesCommentsCount(t *testing.T) {
	db := setupTestDB(t)
	posts := NewPostRepository(db)
	comments := NewCommentRepository(db)

	author := createTestUser(t, db, "writer")
	commenter := createTestUser(t, db, "reader")
	post := createTestPost(t, db, author, nil, 1)

	for i := 0; i < 2; i++ {
		require.NoError(t, comments.Create(testCtx(), &models.Comment{
			PostID:   post.ID,
			AuthorID: commenter.ID,
			Text:     "nice",
		}))
	}

	got, err := posts.GetByID(testCtx(), post.ID)
	require.NoError(t, err)
	assert.Equal(t, 2, got.CommentsCount)
	assert.Equal(t, "writer", got.Author.Username)
}

func TestGetByIDNotFound(t *testing.T) {
	db := setupTestDB(t)
	repo := NewPostRepository(db)

	_, err := repo.GetByID(testCtx(), 9999)
	require.Error(t, err)
	var appErr *models.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, models.CodeNotFound, appErr.Code)
}

func TestUpdateKeepsPubDate(t *testing.T) {
	db := setupTestDB(t)
	repo := NewPostRepository(db)
	author := createTestUser(t, db, "writer")
	post := createTestPost(t, db, author, nil, 1)
	originalPubDate := post.PubDate

	post.Text = "edited"
	require.NoError(t, repo.Update(testCtx(), post))

	got, err := repo.GetByID(testCtx(), post.ID)
	require.NoError(t, err)
	assert.Equal(t, "edited", got.Text)
	assert.True(t, got.PubDate.Equal(originalPubDate))
}

func TestDeleteRemovesFromListings(t *testing.T) {
	db := setupTestDB(t)
	repo := NewPostRepository(db)
	author := createTestUser(t, db, "writer")
	post := createTestPost(t, db, author, nil, 1)

	require.NoError(t, repo.Delete(testCtx(), post.ID))

	posts, err := repo.List(testCtx(), 0, 10)
	require.NoError(t, err)
	assert.Empty(t, posts)

	err = repo.Delete(testCtx(), post.ID)
	require.Error(t, err)
	var appErr *models.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, models.CodeNotFound, appErr.Code)
}
