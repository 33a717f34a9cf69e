package memo

import (
	"time"

	"github.com/changhyeonkim/memome/go-api-server/internal/model"
)

type MemoRequest struct {
	Title string `json:"title" binding:"notblank,max=255"`
	Body  string `json:"body" binding:"notblank"`
}

type MemoResponse struct {
	ID        uint32    `json:"id"`
	Title     string    `json:"title"`
	Body      string    `json:"body"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func NewMemoResponse(memo *model.Memo) *MemoResponse {
	return &MemoResponse{
		ID:        memo.ID,
		Title:     memo.Title,
		Body:      memo.Body,
		CreatedAt: memo.CreatedAt,
		UpdatedAt: memo.UpdatedAt,
	}
}

func NewMemoResponses(memos []*model.Memo) []*MemoResponse {
	responses := make([]*MemoResponse, 0, len(memos))
	for _, memo := range memos {
		responses = append(responses, NewMemoResponse(memo))
	}
	return responses
}

type CreateMemoDto struct {
	Title  string
	Body   string
	Author *model.Member
}

type UpdateMemoDto struct {
	MemoID   uint32
	AuthorID uint32
	Title    string
	Body     string
}
