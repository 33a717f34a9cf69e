package member

import (
	"context"
	"errors"
	"fmt"

	"github.com/changhyeonkim/memome/go-api-server/internal/model"
	"github.com/changhyeonkim/memome/go-api-server/internal/shared/database"
	"github.com/changhyeonkim/memome/go-api-server/internal/shared/logger"
	"gorm.io/gorm"
)

type MemberService struct {
	db               *gorm.DB
	memberRepository *MemberRepository
}

func NewMemberService(db *gorm.DB, memberRepository *MemberRepository) *MemberService {
	return &MemberService{
		db:               db,
		memberRepository: memberRepository,
	}
}

// GetOrCreateMember returns the member owning info's identity, creating it on first login.
// An existing member is returned unchanged; the provider profile is not resynced.
func (s *MemberService) GetOrCreateMember(ctx context.Context, info *model.OAuthUserInfo) (*model.Member, error) {
	if info == nil {
		return nil, fmt.Errorf("oAuthUserInfo는 null일 수 없습니다: %w", model.ErrInvalidArgument)
	}

	identity, err := info.Identity()
	if err != nil {
		return nil, err
	}

	log := logger.FromContext(ctx)
	var member *model.Member

	err = database.WithTransaction(ctx, s.db, func(tx *gorm.DB) error {
		found, err := s.memberRepository.FindByOAuthIdentity(ctx, tx, identity)
		if err == nil {
			member = found
			return nil
		}
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return fmt.Errorf("회원 조회 실패: %w", err)
		}

		created, err := model.NewMember(identity, info.Nickname, info.Email)
		if err != nil {
			return err
		}
		if err := s.memberRepository.Create(ctx, tx, created); err != nil {
			if database.IsDuplicateKey(err) {
				log.Warn("회원 동시 생성 충돌", "provider", identity.ProviderType, "provider_id", logger.MaskProviderID(identity.ProviderID))
				return fmt.Errorf("이미 가입된 회원입니다 identity=%s: %w", identity.ProviderType, ErrMemberAlreadyExists)
			}
			return fmt.Errorf("회원 생성 실패: %w", err)
		}

		log.Info("신규 회원 생성", "member_id", created.ID, "provider", identity.ProviderType, "email", logger.MaskEmail(created.Email))
		member = created
		return nil
	})
	if err != nil {
		return nil, err
	}

	return member, nil
}

func (s *MemberService) GetMemberByIdentity(ctx context.Context, identity model.OAuthIdentity) (*model.Member, error) {
	var member *model.Member

	err := database.WithTransaction(ctx, s.db, func(tx *gorm.DB) error {
		found, err := s.findByIdentity(ctx, tx, identity)
		if err != nil {
			return err
		}
		member = found
		return nil
	})
	if err != nil {
		return nil, err
	}

	return member, nil
}

func (s *MemberService) GetMemberByID(ctx context.Context, memberID uint32) (*model.Member, error) {
	var member *model.Member

	err := database.WithTransaction(ctx, s.db, func(tx *gorm.DB) error {
		found, err := s.memberRepository.FindByID(ctx, tx, memberID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return fmt.Errorf("회원을 찾을 수 없습니다 memberID=%d: %w", memberID, ErrMemberNotFound)
			}
			return fmt.Errorf("회원 조회 실패: %w", err)
		}
		member = found
		return nil
	})
	if err != nil {
		return nil, err
	}

	return member, nil
}

func (s *MemberService) UpdateMember(ctx context.Context, identity model.OAuthIdentity, dto UpdateMemberDto) (*model.Member, error) {
	var member *model.Member

	err := database.WithTransaction(ctx, s.db, func(tx *gorm.DB) error {
		found, err := s.findByIdentity(ctx, tx, identity)
		if err != nil {
			return err
		}

		if err := found.Update(dto.Nickname, dto.Email); err != nil {
			return err
		}
		if err := s.memberRepository.Save(ctx, tx, found); err != nil {
			return fmt.Errorf("회원 수정 실패: %w", err)
		}

		member = found
		return nil
	})
	if err != nil {
		return nil, err
	}

	logger.FromContext(ctx).Info("회원 정보 수정", "member_id", member.ID)
	return member, nil
}

func (s *MemberService) RemoveMember(ctx context.Context, identity model.OAuthIdentity) error {
	var memberID uint32

	err := database.WithTransaction(ctx, s.db, func(tx *gorm.DB) error {
		found, err := s.findByIdentity(ctx, tx, identity)
		if err != nil {
			return err
		}

		if err := s.memberRepository.Delete(ctx, tx, found); err != nil {
			return fmt.Errorf("회원 삭제 실패: %w", err)
		}
		memberID = found.ID
		return nil
	})
	if err != nil {
		return err
	}

	logger.FromContext(ctx).Info("회원 탈퇴", "member_id", memberID)
	return nil
}

func (s *MemberService) findByIdentity(ctx context.Context, tx *gorm.DB, identity model.OAuthIdentity) (*model.Member, error) {
	if identity.IsZero() {
		return nil, fmt.Errorf("oAuthIdentity는 null일 수 없습니다: %w", model.ErrInvalidArgument)
	}

	member, err := s.memberRepository.FindByOAuthIdentity(ctx, tx, identity)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("회원을 찾을 수 없습니다 identity=%s: %w", identity, ErrMemberNotFound)
		}
		return nil, fmt.Errorf("회원 조회 실패: %w", err)
	}
	return member, nil
}
