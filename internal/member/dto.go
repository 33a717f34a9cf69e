package member

import (
	"time"

	"github.com/changhyeonkim/memome/go-api-server/internal/model"
)

type UpdateMyInfoRequest struct {
	Nickname string `json:"nickname" binding:"notblank,max=100"`
	Email    string `json:"email" binding:"notblank,email,max=255"`
}

func (r *UpdateMyInfoRequest) ToDto() UpdateMemberDto {
	return UpdateMemberDto{
		Nickname: r.Nickname,
		Email:    r.Email,
	}
}

type MyInfoResponse struct {
	Nickname  string    `json:"nickname"`
	Email     string    `json:"email"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func NewMyInfoResponse(member *model.Member) *MyInfoResponse {
	return &MyInfoResponse{
		Nickname:  member.Nickname,
		Email:     member.Email,
		CreatedAt: member.CreatedAt,
		UpdatedAt: member.UpdatedAt,
	}
}

// UpdateMemberDto carries the editable profile fields into MemberService
type UpdateMemberDto struct {
	Nickname string
	Email    string
}
