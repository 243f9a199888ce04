package handlers

import (
	"context"

	"github.com/gin-gonic/gin"

	"github.com/yungbote/talentswap-backend/internal/http/response"
	"github.com/yungbote/talentswap-backend/internal/services"
)

type PostHandler struct {
	postService services.PostService
}

func NewPostHandler(postService services.PostService) *PostHandler {
	return &PostHandler{postService: postService}
}

// postListQuery leaves absent filters nil. Page is zero-based.
type postListQuery struct {
	IsShare     *bool   `form:"isShare"`
	MidCategory *uint64 `form:"midCategory" binding:"omitempty,min=1"`
	Page        int     `form:"page" binding:"min=0,max=1000000"`
	Size        int     `form:"size" binding:"min=0"`
}

// GET /posts?isShare=&midCategory=&page=&size=
func (ph *PostHandler) List(c *gin.Context) {
	var q postListQuery
	if !bindQuery(c, &q) {
		return
	}
	out, err := ph.postService.List(c.Request.Context(), services.PostListQuery{
		IsShare:       q.IsShare,
		MidCategoryID: q.MidCategory,
		Page:          q.Page,
		Size:          q.Size,
	})
	if err != nil {
		response.Error(c, err)
		return
	}
	response.RespondOK(c, out)
}

// POST /posts
func (ph *PostHandler) Create(c *gin.Context) {
	memberID, ok := currentMember(c)
	if !ok {
		return
	}
	var req services.PostAddRequest
	if !bindJSON(c, &req) {
		return
	}
	out, err := ph.postService.Create(c.Request.Context(), memberID, req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.RespondOK(c, out)
}

// GET /posts/methods
func (ph *PostHandler) Methods(c *gin.Context) {
	response.RespondOK(c, ph.postService.ListMethods())
}

// GET /posts/:postId
func (ph *PostHandler) Read(c *gin.Context) {
	postID, ok := pathID(c, "postId")
	if !ok {
		return
	}
	out, err := ph.postService.Get(c.Request.Context(), postID)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.RespondOK(c, out)
}

// PUT /posts/:postId
func (ph *PostHandler) Update(c *gin.Context) {
	memberID, ok := currentMember(c)
	if !ok {
		return
	}
	postID, ok := pathID(c, "postId")
	if !ok {
		return
	}
	var req services.PostUpdateRequest
	if !bindJSON(c, &req) {
		return
	}
	out, err := ph.postService.UpdateForOwner(c.Request.Context(), memberID, postID, req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.RespondOK(c, out)
}

// DELETE /posts/:postId
func (ph *PostHandler) Delete(c *gin.Context) {
	postID, ok := pathID(c, "postId")
	if !ok {
		return
	}
	out, err := ph.postService.Delete(c.Request.Context(), postID)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.RespondOK(c, out)
}

// POST /posts/:postId/likes
func (ph *PostHandler) Like(c *gin.Context) {
	ph.toggleLike(c, ph.postService.Like)
}

// DELETE /posts/:postId/likes
func (ph *PostHandler) Unlike(c *gin.Context) {
	ph.toggleLike(c, ph.postService.Unlike)
}

func (ph *PostHandler) toggleLike(c *gin.Context, fn func(ctx context.Context, memberID, postID uint64) (*services.PostLikeResponse, error)) {
	memberID, ok := currentMember(c)
	if !ok {
		return
	}
	postID, ok := pathID(c, "postId")
	if !ok {
		return
	}
	out, err := fn(c.Request.Context(), memberID, postID)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.RespondOK(c, out)
}
