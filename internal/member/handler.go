package member

import (
	"errors"
	"fmt"
	"net/http"

	sharedContext "github.com/changhyeonkim/memome/go-api-server/internal/shared/context"
	"github.com/changhyeonkim/memome/go-api-server/internal/shared/handler"
	"github.com/gin-gonic/gin"
)

type MemberHandler struct {
	memberService *MemberService
}

func NewMemberHandler(memberService *MemberService) *MemberHandler {
	return &MemberHandler{
		memberService: memberService,
	}
}

func (h *MemberHandler) GetMyInfo(c *gin.Context) {
	identity, ok := sharedContext.RequireLoginMember(c)
	if !ok {
		return
	}

	member, err := h.memberService.GetMemberByIdentity(c.Request.Context(), identity)
	if err != nil {
		handler.RespondServiceError(c, AsAuthenticationError(err))
		return
	}

	c.JSON(http.StatusOK, NewMyInfoResponse(member))
}

func (h *MemberHandler) UpdateMyInfo(c *gin.Context) {
	identity, ok := sharedContext.RequireLoginMember(c)
	if !ok {
		return
	}

	var request UpdateMyInfoRequest
	if !handler.BindJSON(c, &request) {
		return
	}

	member, err := h.memberService.UpdateMember(c.Request.Context(), identity, request.ToDto())
	if err != nil {
		handler.RespondServiceError(c, AsAuthenticationError(err))
		return
	}

	c.JSON(http.StatusOK, NewMyInfoResponse(member))
}

func (h *MemberHandler) DeleteMyInfo(c *gin.Context) {
	identity, ok := sharedContext.RequireLoginMember(c)
	if !ok {
		return
	}

	if err := h.memberService.RemoveMember(c.Request.Context(), identity); err != nil {
		handler.RespondServiceError(c, AsAuthenticationError(err))
		return
	}

	c.Status(http.StatusNoContent)
}

// AsAuthenticationError reports a token whose member has been removed as an authentication failure
func AsAuthenticationError(err error) error {
	if errors.Is(err, ErrMemberNotFound) {
		return fmt.Errorf("%w: %w", ErrInvalidAuthentication, err)
	}
	return err
}
