package model

import "fmt"

// Member represents an authenticated user, keyed by its OAuth identity
type Member struct {
	// Primary key - IDENTITY (auto-increment)
	ID uint32 `gorm:"column:id;primaryKey;autoIncrement"`

	OAuthIdentity OAuthIdentity `gorm:"embedded"`

	Nickname string `gorm:"column:nickname;size:100;not null"` // 닉네임
	Email    string `gorm:"column:email;size:255;not null"`    // 이메일

	BaseEntity
}

// TableName specifies the table name for Member
func (*Member) TableName() string {
	return "member"
}

// NewMember creates a new Member instance with validation
// Factory method pattern (Java의 static create 메서드와 동일)
func NewMember(identity OAuthIdentity, nickname, email string) (*Member, error) {
	if identity.IsZero() {
		return nil, fmt.Errorf("oAuthIdentity는 null일 수 없습니다: %w", ErrInvalidArgument)
	}
	if err := validateNicknameAndEmail(nickname, email); err != nil {
		return nil, err
	}

	return &Member{
		OAuthIdentity: identity,
		Nickname:      nickname,
		Email:         email,
		BaseEntity:    newBaseEntity(),
	}, nil
}

// Update changes the profile fields; the OAuth identity never changes
func (m *Member) Update(nickname, email string) error {
	if err := validateNicknameAndEmail(nickname, email); err != nil {
		return err
	}

	m.Nickname = nickname
	m.Email = email
	m.touch()
	return nil
}

func validateNicknameAndEmail(nickname, email string) error {
	if isBlank(nickname) || isBlank(email) {
		return fmt.Errorf("nickname 또는 email은 null이거나 공백일 수 없습니다: %w", ErrInvalidArgument)
	}
	return nil
}
