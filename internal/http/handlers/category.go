package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/yungbote/talentswap-backend/internal/http/response"
	"github.com/yungbote/talentswap-backend/internal/services"
)

type CategoryHandler struct {
	categoryService services.CategoryService
}

func NewCategoryHandler(categoryService services.CategoryService) *CategoryHandler {
	return &CategoryHandler{categoryService: categoryService}
}

// GET /categories
func (ch *CategoryHandler) Tree(c *gin.Context) {
	out, err := ch.categoryService.ListTree(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.RespondOK(c, out)
}
