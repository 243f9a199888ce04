package handlers

import (
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	domainagg "github.com/yungbote/talentswap-backend/internal/domain/aggregates"
	"github.com/yungbote/talentswap-backend/internal/http/response"
	"github.com/yungbote/talentswap-backend/internal/platform/ctxutil"
)

// pathID parses a positive numeric path parameter. On failure the response is written.
func pathID(c *gin.Context, name string) (uint64, bool) {
	id, err := strconv.ParseUint(strings.TrimSpace(c.Param(name)), 10, 64)
	if err != nil || id == 0 {
		response.Error(c, domainagg.Validation("http."+name, domainagg.ReasonInvalidRequest, "invalid "+name))
		return 0, false
	}
	return id, true
}

// currentMember returns the authenticated member. Routes using it sit behind RequireAuth.
func currentMember(c *gin.Context) (uint64, bool) {
	id, ok := ctxutil.MemberID(c.Request.Context())
	if !ok {
		response.Error(c, domainagg.Business(domainagg.CodeUnauthorized, "http.member", domainagg.ReasonUnauthorized))
		return 0, false
	}
	return id, true
}

func bindJSON(c *gin.Context, target any) bool {
	if err := c.ShouldBindJSON(target); err != nil {
		response.Error(c, domainagg.Validation("http.bind", domainagg.ReasonInvalidRequest, err.Error()))
		return false
	}
	return true
}

func bindQuery(c *gin.Context, target any) bool {
	if err := c.ShouldBindQuery(target); err != nil {
		response.Error(c, domainagg.Validation("http.query", domainagg.ReasonInvalidRequest, err.Error()))
		return false
	}
	return true
}
