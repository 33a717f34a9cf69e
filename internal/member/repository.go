package member

import (
	"context"

	"github.com/changhyeonkim/memome/go-api-server/internal/model"
	"gorm.io/gorm"
)

type MemberRepository struct{}

func NewMemberRepository() *MemberRepository {
	return &MemberRepository{}
}

func (m *MemberRepository) FindByOAuthIdentity(ctx context.Context, db *gorm.DB, identity model.OAuthIdentity) (*model.Member, error) {
	var member model.Member
	err := db.WithContext(ctx).
		Where("provider_type = ? AND provider_id = ?", string(identity.ProviderType), identity.ProviderID).
		First(&member).Error
	if err != nil {
		return nil, err
	}
	return &member, nil
}

func (m *MemberRepository) FindByID(ctx context.Context, db *gorm.DB, ID uint32) (*model.Member, error) {
	var member model.Member
	err := db.WithContext(ctx).Where("id = ?", ID).First(&member).Error
	if err != nil {
		return nil, err
	}
	return &member, nil
}

func (m *MemberRepository) Create(ctx context.Context, db *gorm.DB, member *model.Member) error {
	return db.WithContext(ctx).Create(member).Error
}

// Save writes the profile columns; identity columns are insert-only
func (m *MemberRepository) Save(ctx context.Context, db *gorm.DB, member *model.Member) error {
	return db.WithContext(ctx).
		Model(member).
		Select("nickname", "email", "updated_at").
		Updates(member).Error
}

// Delete removes the member and every memo it authored
func (m *MemberRepository) Delete(ctx context.Context, db *gorm.DB, member *model.Member) error {
	if err := db.WithContext(ctx).Where("author_id = ?", member.ID).Delete(&model.Memo{}).Error; err != nil {
		return err
	}
	return db.WithContext(ctx).Delete(member).Error
}
