package services

import (
	"context"

	"github.com/yungbote/talentswap-backend/internal/data/aggregates"
	"github.com/yungbote/talentswap-backend/internal/data/repos"
	"github.com/yungbote/talentswap-backend/internal/platform/dbctx"
	"github.com/yungbote/talentswap-backend/internal/platform/logger"
)

type SubCategoryNode struct {
	ID   uint64 `json:"id"`
	Name string `json:"name"`
}

type MidCategoryNode struct {
	ID            uint64            `json:"id"`
	Name          string            `json:"name"`
	SubCategories []SubCategoryNode `json:"subCategories"`
}

type MainCategoryNode struct {
	ID            uint64            `json:"id"`
	Name          string            `json:"name"`
	MidCategories []MidCategoryNode `json:"midCategories"`
}

type CategoryTreeResponse struct {
	Categories []MainCategoryNode `json:"categories"`
}

type CategoryService interface {
	ListTree(ctx context.Context) (*CategoryTreeResponse, error)
}

type categoryService struct {
	log   *logger.Logger
	exec  *aggregates.Executor
	mains repos.MainCategoryRepo
}

func NewCategoryService(log *logger.Logger, exec *aggregates.Executor, mainCategoryRepo repos.MainCategoryRepo) CategoryService {
	return &categoryService{
		log:   log.With("service", "CategoryService"),
		exec:  exec,
		mains: mainCategoryRepo,
	}
}

func (s *categoryService) ListTree(ctx context.Context) (*CategoryTreeResponse, error) {
	out := &CategoryTreeResponse{Categories: []MainCategoryNode{}}
	err := s.exec.Run(ctx, "category.list_tree", func(dbc dbctx.Context) error {
		mains, err := s.mains.ListTree(dbc)
		if err != nil {
			return err
		}
		for _, m := range mains {
			node := MainCategoryNode{ID: m.ID, Name: m.Name, MidCategories: []MidCategoryNode{}}
			for _, mid := range m.MidCategories {
				midNode := MidCategoryNode{ID: mid.ID, Name: mid.Name, SubCategories: []SubCategoryNode{}}
				for _, sub := range mid.SubCategories {
					midNode.SubCategories = append(midNode.SubCategories, SubCategoryNode{ID: sub.ID, Name: sub.Name})
				}
				node.MidCategories = append(node.MidCategories, midNode)
			}
			out.Categories = append(out.Categories, node)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}
