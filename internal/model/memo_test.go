package model_test

import (
	"testing"
	"time"

	"github.com/changhyeonkim/memome/go-api-server/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newAuthor(t *testing.T, id uint32) *model.Member {
	t.Helper()

	author, err := model.NewMember(newIdentity(t), "author", "author@email.com")
	require.NoError(t, err)
	author.ID = id
	return author
}

func TestNewMemo_Success(t *testing.T) {
	author := newAuthor(t, 1)

	memo, err := model.NewMemo("title", "body", author)

	require.NoError(t, err)
	assert.Equal(t, "title", memo.Title)
	assert.Equal(t, "body", memo.Body)
	assert.Equal(t, author.ID, memo.AuthorID)
	assert.Same(t, author, memo.Author)
	assert.Equal(t, memo.CreatedAt, memo.UpdatedAt)
}

func TestNewMemo_InvalidArguments(t *testing.T) {
	author := newAuthor(t, 1)

	testCases := []struct {
		name   string
		title  string
		body   string
		author *model.Member
	}{
		{name: "title is empty", title: "", body: "body", author: author},
		{name: "title is blank", title: "   ", body: "body", author: author},
		{name: "body is empty", title: "title", body: "", author: author},
		{name: "body is blank", title: "title", body: "\n\t", author: author},
		{name: "author is nil", title: "title", body: "body", author: nil},
		{name: "author is not persisted", title: "title", body: "body", author: newAuthor(t, 0)},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			memo, err := model.NewMemo(tc.title, tc.body, tc.author)

			assert.Nil(t, memo)
			assert.ErrorIs(t, err, model.ErrInvalidArgument)
		})
	}
}

func TestMemo_Update(t *testing.T) {
	author := newAuthor(t, 1)
	memo, err := model.NewMemo("title", "body", author)
	require.NoError(t, err)
	time.Sleep(time.Millisecond)

	err = memo.Update("updated title", "updated body", author.ID)

	require.NoError(t, err)
	assert.Equal(t, "updated title", memo.Title)
	assert.Equal(t, "updated body", memo.Body)
	assert.Equal(t, author.ID, memo.AuthorID)
	assert.True(t, memo.UpdatedAt.After(memo.CreatedAt))
}

func TestMemo_UpdateInvalidTitleOrBody(t *testing.T) {
	author := newAuthor(t, 1)
	memo, err := model.NewMemo("title", "body", author)
	require.NoError(t, err)

	assert.ErrorIs(t, memo.Update(" ", "updated body", author.ID), model.ErrInvalidArgument)
	assert.ErrorIs(t, memo.Update("updated title", "", author.ID), model.ErrInvalidArgument)
	assert.Equal(t, "title", memo.Title)
}

func TestMemo_UpdateByAnotherAuthor(t *testing.T) {
	memo, err := model.NewMemo("title", "body", newAuthor(t, 1))
	require.NoError(t, err)

	err = memo.Update("updated title", "updated body", 2)

	assert.ErrorIs(t, err, model.ErrNotMemoOwner)
	assert.Equal(t, "title", memo.Title)
}

func TestMemo_AssertAuthor(t *testing.T) {
	memo, err := model.NewMemo("title", "body", newAuthor(t, 1))
	require.NoError(t, err)

	assert.NoError(t, memo.AssertAuthor(1))
	assert.ErrorIs(t, memo.AssertAuthor(2), model.ErrNotMemoOwner)
}
