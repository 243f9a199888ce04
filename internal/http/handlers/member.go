package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/yungbote/talentswap-backend/internal/http/response"
	"github.com/yungbote/talentswap-backend/internal/services"
)

type MemberHandler struct {
	memberService services.MemberService
}

func NewMemberHandler(memberService services.MemberService) *MemberHandler {
	return &MemberHandler{memberService: memberService}
}

// GET /members/:memberId
func (mh *MemberHandler) Read(c *gin.Context) {
	memberID, ok := pathID(c, "memberId")
	if !ok {
		return
	}
	out, err := mh.memberService.ReadMemberInfo(c.Request.Context(), memberID)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.RespondOK(c, out)
}

// PATCH /members/nickname
// body: { "nickname": "..." }
func (mh *MemberHandler) UpdateNickname(c *gin.Context) {
	memberID, ok := currentMember(c)
	if !ok {
		return
	}
	var req services.MemberNicknameRequest
	if !bindJSON(c, &req) {
		return
	}
	out, err := mh.memberService.UpdateNickname(c.Request.Context(), memberID, req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.RespondOK(c, out)
}

// PUT /members
func (mh *MemberHandler) Update(c *gin.Context) {
	memberID, ok := currentMember(c)
	if !ok {
		return
	}
	var req services.MemberUpdateRequest
	if !bindJSON(c, &req) {
		return
	}
	out, err := mh.memberService.Update(c.Request.Context(), memberID, req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.RespondOK(c, out)
}

// GET /members/ranks
func (mh *MemberHandler) Ranks(c *gin.Context) {
	response.RespondOK(c, mh.memberService.ListRanks())
}
