package memo

import (
	"context"

	"github.com/changhyeonkim/memome/go-api-server/internal/model"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type MemoRepository struct{}

func NewMemoRepository() *MemoRepository {
	return &MemoRepository{}
}

func (r *MemoRepository) FindByID(ctx context.Context, db *gorm.DB, ID uint32) (*model.Memo, error) {
	var memo model.Memo
	err := db.WithContext(ctx).Where("id = ?", ID).First(&memo).Error
	if err != nil {
		return nil, err
	}
	return &memo, nil
}

// FindByIDAndAuthorID matches only memos written by authorID
func (r *MemoRepository) FindByIDAndAuthorID(ctx context.Context, db *gorm.DB, ID, authorID uint32) (*model.Memo, error) {
	var memo model.Memo
	err := db.WithContext(ctx).
		Where("id = ? AND author_id = ?", ID, authorID).
		First(&memo).Error
	if err != nil {
		return nil, err
	}
	return &memo, nil
}

func (r *MemoRepository) FindAllByAuthorID(ctx context.Context, db *gorm.DB, authorID uint32) ([]*model.Memo, error) {
	memos := make([]*model.Memo, 0)
	err := db.WithContext(ctx).
		Where("author_id = ?", authorID).
		Order("id").
		Find(&memos).Error
	if err != nil {
		return nil, err
	}
	return memos, nil
}

// Create inserts the memo row only; the author is already persisted
func (r *MemoRepository) Create(ctx context.Context, db *gorm.DB, memo *model.Memo) error {
	return db.WithContext(ctx).Omit(clause.Associations).Create(memo).Error
}

func (r *MemoRepository) Save(ctx context.Context, db *gorm.DB, memo *model.Memo) error {
	return db.WithContext(ctx).
		Model(memo).
		Select("title", "body", "updated_at").
		Updates(memo).Error
}

func (r *MemoRepository) Delete(ctx context.Context, db *gorm.DB, memo *model.Memo) error {
	return db.WithContext(ctx).Delete(memo).Error
}
