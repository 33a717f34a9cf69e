package memo_test

import (
	"context"
	"testing"

	"github.com/changhyeonkim/memome/go-api-server/internal/memo"
	"github.com/changhyeonkim/memome/go-api-server/internal/model"
	"github.com/changhyeonkim/memome/go-api-server/internal/shared/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

type memoFixture struct {
	service *memo.MemoService
	db      *gorm.DB
	owner   *model.Member
	other   *model.Member
}

func setupMemoService(t *testing.T) *memoFixture {
	t.Helper()

	db := testutil.SetupTestDB(t)
	return &memoFixture{
		service: memo.NewMemoService(db, memo.NewMemoRepository()),
		db:      db,
		owner:   testutil.CreateTestMember(t, db, model.ProviderGoogle, "0123456789", "홍길동", "test@email.com"),
		other:   testutil.CreateTestMember(t, db, model.ProviderKakao, "42", "카카오", "kakao@email.com"),
	}
}

func TestCreateMemo_Success(t *testing.T) {
	// Given
	f := setupMemoService(t)

	// When
	created, err := f.service.CreateMemo(context.Background(), memo.CreateMemoDto{
		Title:  "장보기",
		Body:   "우유, 계란",
		Author: f.owner,
	})

	// Then
	require.NoError(t, err)
	assert.NotZero(t, created.ID)
	assert.Equal(t, f.owner.ID, created.AuthorID)

	var memberCount int64
	require.NoError(t, f.db.Model(&model.Member{}).Count(&memberCount).Error)
	assert.Equal(t, int64(2), memberCount, "author must not be re-inserted")
}

func TestCreateMemo_InvalidInput(t *testing.T) {
	f := setupMemoService(t)

	testCases := []struct {
		name string
		dto  memo.CreateMemoDto
	}{
		{name: "blank title", dto: memo.CreateMemoDto{Title: " ", Body: "body", Author: f.owner}},
		{name: "blank body", dto: memo.CreateMemoDto{Title: "title", Body: "", Author: f.owner}},
		{name: "nil author", dto: memo.CreateMemoDto{Title: "title", Body: "body"}},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := f.service.CreateMemo(context.Background(), tc.dto)

			assert.ErrorIs(t, err, model.ErrInvalidArgument)
		})
	}
}

func TestGetOwnedMemo(t *testing.T) {
	// Given
	f := setupMemoService(t)
	written := testutil.CreateTestMemo(t, f.db, f.owner, "장보기", "우유, 계란")

	// When: the author reads it
	found, err := f.service.GetOwnedMemo(context.Background(), written.ID, f.owner.ID)

	// Then
	require.NoError(t, err)
	assert.Equal(t, "장보기", found.Title)

	// When: another member reads it
	_, foreignErr := f.service.GetOwnedMemo(context.Background(), written.ID, f.other.ID)
	_, missingErr := f.service.GetOwnedMemo(context.Background(), written.ID+100, f.owner.ID)

	// Then: a foreign memo is indistinguishable from a missing one
	assert.ErrorIs(t, foreignErr, memo.ErrMemoNotFound)
	assert.ErrorIs(t, missingErr, memo.ErrMemoNotFound)
	assert.NotErrorIs(t, foreignErr, model.ErrNotMemoOwner)
}

func TestGetAllOwnedMemos_OnlyAuthorsMemosInIDOrder(t *testing.T) {
	// Given
	f := setupMemoService(t)
	first := testutil.CreateTestMemo(t, f.db, f.owner, "첫 번째", "1")
	testutil.CreateTestMemo(t, f.db, f.other, "남의 메모", "x")
	second := testutil.CreateTestMemo(t, f.db, f.owner, "두 번째", "2")

	// When
	memos, err := f.service.GetAllOwnedMemos(context.Background(), f.owner)

	// Then
	require.NoError(t, err)
	require.Len(t, memos, 2)
	assert.Equal(t, first.ID, memos[0].ID)
	assert.Equal(t, second.ID, memos[1].ID)
}

func TestGetAllOwnedMemos_Empty(t *testing.T) {
	f := setupMemoService(t)

	memos, err := f.service.GetAllOwnedMemos(context.Background(), f.other)

	require.NoError(t, err)
	assert.NotNil(t, memos)
	assert.Empty(t, memos)
}

func TestUpdateMemo_Success(t *testing.T) {
	// Given
	f := setupMemoService(t)
	written := testutil.CreateTestMemo(t, f.db, f.owner, "장보기", "우유, 계란")

	// When
	updated, err := f.service.UpdateMemo(context.Background(), memo.UpdateMemoDto{
		MemoID:   written.ID,
		AuthorID: f.owner.ID,
		Title:    "장보기 (수정)",
		Body:     "우유, 계란, 빵",
	})

	// Then
	require.NoError(t, err)
	assert.Equal(t, "장보기 (수정)", updated.Title)

	reloaded, err := f.service.GetOwnedMemo(context.Background(), written.ID, f.owner.ID)
	require.NoError(t, err)
	assert.Equal(t, "우유, 계란, 빵", reloaded.Body)
	assert.Equal(t, f.owner.ID, reloaded.AuthorID)
}

func TestUpdateMemo_NotOwner(t *testing.T) {
	// Given
	f := setupMemoService(t)
	written := testutil.CreateTestMemo(t, f.db, f.owner, "장보기", "우유, 계란")

	// When
	_, err := f.service.UpdateMemo(context.Background(), memo.UpdateMemoDto{
		MemoID:   written.ID,
		AuthorID: f.other.ID,
		Title:    "탈취",
		Body:     "탈취",
	})

	// Then: the memo is untouched
	assert.ErrorIs(t, err, model.ErrNotMemoOwner)
	reloaded, err := f.service.GetOwnedMemo(context.Background(), written.ID, f.owner.ID)
	require.NoError(t, err)
	assert.Equal(t, "장보기", reloaded.Title)
}

func TestUpdateMemo_NotFound(t *testing.T) {
	f := setupMemoService(t)

	_, err := f.service.UpdateMemo(context.Background(), memo.UpdateMemoDto{
		MemoID:   999,
		AuthorID: f.owner.ID,
		Title:    "title",
		Body:     "body",
	})

	assert.ErrorIs(t, err, memo.ErrMemoNotFound)
}

func TestRemoveMemo(t *testing.T) {
	// Given
	f := setupMemoService(t)
	written := testutil.CreateTestMemo(t, f.db, f.owner, "장보기", "우유, 계란")

	// When: another member deletes it
	err := f.service.RemoveMemo(context.Background(), written.ID, f.other.ID)

	// Then
	assert.ErrorIs(t, err, model.ErrNotMemoOwner)

	// When: the author deletes it
	err = f.service.RemoveMemo(context.Background(), written.ID, f.owner.ID)

	// Then
	require.NoError(t, err)
	_, err = f.service.GetOwnedMemo(context.Background(), written.ID, f.owner.ID)
	assert.ErrorIs(t, err, memo.ErrMemoNotFound)

	// When: it is deleted again
	err = f.service.RemoveMemo(context.Background(), written.ID, f.owner.ID)

	// Then
	assert.ErrorIs(t, err, memo.ErrMemoNotFound)
}
