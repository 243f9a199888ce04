package post

import (
	"gorm.io/gorm"

	types "github.com/yungbote/talentswap-backend/internal/domain"
	"github.com/yungbote/talentswap-backend/internal/platform/dbctx"
	"github.com/yungbote/talentswap-backend/internal/platform/logger"
)

type PostTalentRepo interface {
	ListByPostIDs(dbc dbctx.Context, postIDs []uint64) ([]*types.PostTalent, error)
	// ReplaceForPost swaps the wanted talent set of postID for subCategoryIDs.
	ReplaceForPost(dbc dbctx.Context, postID uint64, subCategoryIDs []uint64) error
}

type postTalentRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewPostTalentRepo(db *gorm.DB, baseLog *logger.Logger) PostTalentRepo {
	return &postTalentRepo{db: db, log: baseLog.With("repo", "PostTalentRepo")}
}

func (r *postTalentRepo) ListByPostIDs(dbc dbctx.Context, postIDs []uint64) ([]*types.PostTalent, error) {
	var out []*types.PostTalent
	if len(postIDs) == 0 {
		return out, nil
	}
	if err := dbc.DB(r.db).
		Where("post_id IN ?", postIDs).
		Order("id ASC").
		Find(&out).Error; err != nil {
		return nil, err
	}
	return out, nil
}

func (r *postTalentRepo) ReplaceForPost(dbc dbctx.Context, postID uint64, subCategoryIDs []uint64) error {
	tx := dbc.DB(r.db)
	if err := tx.Where("post_id = ?", postID).Delete(&types.PostTalent{}).Error; err != nil {
		return err
	}
	if len(subCategoryIDs) == 0 {
		return nil
	}
	rows := make([]types.PostTalent, 0, len(subCategoryIDs))
	seen := make(map[uint64]struct{}, len(subCategoryIDs))
	for _, id := range subCategoryIDs {
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		rows = append(rows, types.PostTalent{PostID: postID, SubCategoryID: id})
	}
	return tx.Create(&rows).Error
}
