package memo

import (
	"context"
	"errors"
	"fmt"

	"github.com/changhyeonkim/memome/go-api-server/internal/model"
	"github.com/changhyeonkim/memome/go-api-server/internal/shared/database"
	"github.com/changhyeonkim/memome/go-api-server/internal/shared/logger"
	"gorm.io/gorm"
)

type MemoService struct {
	db             *gorm.DB
	memoRepository *MemoRepository
}

func NewMemoService(db *gorm.DB, memoRepository *MemoRepository) *MemoService {
	return &MemoService{
		db:             db,
		memoRepository: memoRepository,
	}
}

func (s *MemoService) CreateMemo(ctx context.Context, dto CreateMemoDto) (*model.Memo, error) {
	memo, err := model.NewMemo(dto.Title, dto.Body, dto.Author)
	if err != nil {
		return nil, err
	}

	err = database.WithTransaction(ctx, s.db, func(tx *gorm.DB) error {
		if err := s.memoRepository.Create(ctx, tx, memo); err != nil {
			return fmt.Errorf("메모 생성 실패: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	logger.FromContext(ctx).Info("메모 생성", "memo_id", memo.ID, "author_id", memo.AuthorID)
	return memo, nil
}

// GetOwnedMemo returns the memo only when authorID wrote it.
// A memo of another author is reported exactly like a missing one.
func (s *MemoService) GetOwnedMemo(ctx context.Context, memoID, authorID uint32) (*model.Memo, error) {
	var memo *model.Memo

	err := database.WithTransaction(ctx, s.db, func(tx *gorm.DB) error {
		found, err := s.memoRepository.FindByIDAndAuthorID(ctx, tx, memoID, authorID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return fmt.Errorf("메모를 찾을 수 없습니다 memoID=%d: %w", memoID, ErrMemoNotFound)
			}
			return fmt.Errorf("메모 조회 실패: %w", err)
		}
		memo = found
		return nil
	})
	if err != nil {
		return nil, err
	}

	return memo, nil
}

func (s *MemoService) GetAllOwnedMemos(ctx context.Context, author *model.Member) ([]*model.Memo, error) {
	if author == nil {
		return nil, fmt.Errorf("author는 null일 수 없습니다: %w", model.ErrInvalidArgument)
	}

	var memos []*model.Memo

	err := database.WithTransaction(ctx, s.db, func(tx *gorm.DB) error {
		found, err := s.memoRepository.FindAllByAuthorID(ctx, tx, author.ID)
		if err != nil {
			return fmt.Errorf("메모 목록 조회 실패: %w", err)
		}
		memos = found
		return nil
	})
	if err != nil {
		return nil, err
	}

	return memos, nil
}

func (s *MemoService) UpdateMemo(ctx context.Context, dto UpdateMemoDto) (*model.Memo, error) {
	var memo *model.Memo

	err := database.WithTransaction(ctx, s.db, func(tx *gorm.DB) error {
		found, err := s.findByID(ctx, tx, dto.MemoID)
		if err != nil {
			return err
		}

		if err := found.Update(dto.Title, dto.Body, dto.AuthorID); err != nil {
			return err
		}
		if err := s.memoRepository.Save(ctx, tx, found); err != nil {
			return fmt.Errorf("메모 수정 실패: %w", err)
		}

		memo = found
		return nil
	})
	if err != nil {
		return nil, err
	}

	logger.FromContext(ctx).Info("메모 수정", "memo_id", memo.ID, "author_id", memo.AuthorID)
	return memo, nil
}

func (s *MemoService) RemoveMemo(ctx context.Context, memoID, authorID uint32) error {
	err := database.WithTransaction(ctx, s.db, func(tx *gorm.DB) error {
		found, err := s.findByID(ctx, tx, memoID)
		if err != nil {
			return err
		}

		if err := found.AssertAuthor(authorID); err != nil {
			return err
		}
		if err := s.memoRepository.Delete(ctx, tx, found); err != nil {
			return fmt.Errorf("메모 삭제 실패: %w", err)
		}
		return nil
	})
	if err != nil {
		return err
	}

	logger.FromContext(ctx).Info("메모 삭제", "memo_id", memoID, "author_id", authorID)
	return nil
}

func (s *MemoService) findByID(ctx context.Context, tx *gorm.DB, memoID uint32) (*model.Memo, error) {
	memo, err := s.memoRepository.FindByID(ctx, tx, memoID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("메모를 찾을 수 없습니다 memoID=%d: %w", memoID, ErrMemoNotFound)
		}
		return nil, fmt.Errorf("메모 조회 실패: %w", err)
	}
	return memo, nil
}
