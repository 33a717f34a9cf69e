package model

import "fmt"

// Memo is a short note owned by exactly one Member.
// AuthorID is fixed at creation; every write goes through AssertAuthor.
type Memo struct {
	ID    uint32 `gorm:"column:id;primaryKey;autoIncrement"`
	Title string `gorm:"column:title;size:255;not null"`
	Body  string `gorm:"column:body;not null"`

	AuthorID uint32  `gorm:"column:author_id;not null;index:idx_memo_author_id;<-:create"`
	Author   *Member `gorm:"foreignKey:AuthorID;constraint:OnDelete:CASCADE"`

	BaseEntity
}

func (*Memo) TableName() string {
	return "memo"
}

func NewMemo(title, body string, author *Member) (*Memo, error) {
	if err := validateTitleAndBody(title, body); err != nil {
		return nil, err
	}
	if author == nil || author.ID == 0 {
		return nil, fmt.Errorf("author는 null일 수 없습니다: %w", ErrInvalidArgument)
	}

	return &Memo{
		Title:      title,
		Body:       body,
		AuthorID:   author.ID,
		Author:     author,
		BaseEntity: newBaseEntity(),
	}, nil
}

// Update replaces title and body after checking that authorID owns the memo
func (m *Memo) Update(title, body string, authorID uint32) error {
	if err := validateTitleAndBody(title, body); err != nil {
		return err
	}
	if err := m.AssertAuthor(authorID); err != nil {
		return err
	}

	m.Title = title
	m.Body = body
	m.touch()
	return nil
}

func (m *Memo) AssertAuthor(authorID uint32) error {
	if m.AuthorID != authorID {
		return fmt.Errorf("author(%d) is not owner of memo(%d): %w", authorID, m.ID, ErrNotMemoOwner)
	}
	return nil
}

func validateTitleAndBody(title, body string) error {
	if isBlank(title) || isBlank(body) {
		return fmt.Errorf("title 또는 body는 null이거나 빈 문자열일 수 없습니다: %w", ErrInvalidArgument)
	}
	return nil
}
