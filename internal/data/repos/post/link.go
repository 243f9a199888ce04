package post

import (
	"gorm.io/gorm"

	types "github.com/yungbote/talentswap-backend/internal/domain"
	"github.com/yungbote/talentswap-backend/internal/platform/dbctx"
	"github.com/yungbote/talentswap-backend/internal/platform/logger"
)

type LinkRepo interface {
	CreateForPost(dbc dbctx.Context, postID uint64, links []*types.Link) ([]*types.Link, error)
	ListByPost(dbc dbctx.Context, postID uint64) ([]*types.Link, error)
	// UpdateContent changes a link only when it belongs to postID and reports whether it did.
	UpdateContent(dbc dbctx.Context, postID, linkID uint64, content string) (bool, error)
}

type linkRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewLinkRepo(db *gorm.DB, baseLog *logger.Logger) LinkRepo {
	return &linkRepo{db: db, log: baseLog.With("repo", "LinkRepo")}
}

func (r *linkRepo) CreateForPost(dbc dbctx.Context, postID uint64, links []*types.Link) ([]*types.Link, error) {
	if len(links) == 0 {
		return []*types.Link{}, nil
	}
	for _, l := range links {
		l.PostID = postID
	}
	if err := dbc.DB(r.db).Create(&links).Error; err != nil {
		return nil, err
	}
	return links, nil
}

func (r *linkRepo) ListByPost(dbc dbctx.Context, postID uint64) ([]*types.Link, error) {
	var out []*types.Link
	if err := dbc.DB(r.db).
		Where("post_id = ?", postID).
		Order("id ASC").
		Find(&out).Error; err != nil {
		return nil, err
	}
	return out, nil
}

func (r *linkRepo) UpdateContent(dbc dbctx.Context, postID, linkID uint64, content string) (bool, error) {
	res := dbc.DB(r.db).
		Model(&types.Link{}).
		Where("id = ? AND post_id = ?", linkID, postID).
		Update("content", content)
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected > 0, nil
}
