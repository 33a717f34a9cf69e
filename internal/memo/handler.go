package memo

import (
	"context"
	"net/http"

	"github.com/changhyeonkim/memome/go-api-server/internal/member"
	"github.com/changhyeonkim/memome/go-api-server/internal/model"
	sharedContext "github.com/changhyeonkim/memome/go-api-server/internal/shared/context"
	"github.com/changhyeonkim/memome/go-api-server/internal/shared/handler"
	"github.com/gin-gonic/gin"
)

// MemberFinder resolves the authenticated identity to its member
type MemberFinder interface {
	GetMemberByIdentity(ctx context.Context, identity model.OAuthIdentity) (*model.Member, error)
}

type MemoHandler struct {
	memoService  *MemoService
	memberFinder MemberFinder
}

func NewMemoHandler(memoService *MemoService, memberFinder MemberFinder) *MemoHandler {
	return &MemoHandler{
		memoService:  memoService,
		memberFinder: memberFinder,
	}
}

func (h *MemoHandler) CreateMemo(c *gin.Context) {
	author, ok := h.requireAuthor(c)
	if !ok {
		return
	}

	var request MemoRequest
	if !handler.BindJSON(c, &request) {
		return
	}

	memo, err := h.memoService.CreateMemo(c.Request.Context(), CreateMemoDto{
		Title:  request.Title,
		Body:   request.Body,
		Author: author,
	})
	if err != nil {
		handler.RespondServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, NewMemoResponse(memo))
}

func (h *MemoHandler) GetMemo(c *gin.Context) {
	author, ok := h.requireAuthor(c)
	if !ok {
		return
	}

	memoID, ok := handler.BindUint32Param(c, "memoId")
	if !ok {
		return
	}

	memo, err := h.memoService.GetOwnedMemo(c.Request.Context(), memoID, author.ID)
	if err != nil {
		handler.RespondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, NewMemoResponse(memo))
}

func (h *MemoHandler) GetMemos(c *gin.Context) {
	author, ok := h.requireAuthor(c)
	if !ok {
		return
	}

	memos, err := h.memoService.GetAllOwnedMemos(c.Request.Context(), author)
	if err != nil {
		handler.RespondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, NewMemoResponses(memos))
}

func (h *MemoHandler) UpdateMemo(c *gin.Context) {
	author, ok := h.requireAuthor(c)
	if !ok {
		return
	}

	memoID, ok := handler.BindUint32Param(c, "memoId")
	if !ok {
		return
	}

	var request MemoRequest
	if !handler.BindJSON(c, &request) {
		return
	}

	memo, err := h.memoService.UpdateMemo(c.Request.Context(), UpdateMemoDto{
		MemoID:   memoID,
		AuthorID: author.ID,
		Title:    request.Title,
		Body:     request.Body,
	})
	if err != nil {
		handler.RespondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, NewMemoResponse(memo))
}

func (h *MemoHandler) DeleteMemo(c *gin.Context) {
	author, ok := h.requireAuthor(c)
	if !ok {
		return
	}

	memoID, ok := handler.BindUint32Param(c, "memoId")
	if !ok {
		return
	}

	if err := h.memoService.RemoveMemo(c.Request.Context(), memoID, author.ID); err != nil {
		handler.RespondServiceError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

// requireAuthor loads the member behind the request principal.
// Returns false if the response has already been written.
func (h *MemoHandler) requireAuthor(c *gin.Context) (*model.Member, bool) {
	identity, ok := sharedContext.RequireLoginMember(c)
	if !ok {
		return nil, false
	}

	author, err := h.memberFinder.GetMemberByIdentity(c.Request.Context(), identity)
	if err != nil {
		handler.RespondServiceError(c, member.AsAuthenticationError(err))
		c.Abort()
		return nil, false
	}
	return author, true
}
