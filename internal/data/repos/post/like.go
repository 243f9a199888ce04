package post

import (
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	types "github.com/yungbote/talentswap-backend/internal/domain"
	"github.com/yungbote/talentswap-backend/internal/platform/dbctx"
	"github.com/yungbote/talentswap-backend/internal/platform/logger"
)

type LikeRepo interface {
	// Create stores the like and reports false when memberID already liked postID.
	Create(dbc dbctx.Context, postID, memberID uint64) (bool, error)
	// Delete removes the like and reports false when there was none.
	Delete(dbc dbctx.Context, postID, memberID uint64) (bool, error)
	// CountForAuthor totals the likes received across every post written by memberID.
	CountForAuthor(dbc dbctx.Context, memberID uint64) (int64, error)
}

type likeRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewLikeRepo(db *gorm.DB, baseLog *logger.Logger) LikeRepo {
	return &likeRepo{db: db, log: baseLog.With("repo", "LikeRepo")}
}

func (r *likeRepo) Create(dbc dbctx.Context, postID, memberID uint64) (bool, error) {
	res := dbc.DB(r.db).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "post_id"}, {Name: "member_id"}},
			DoNothing: true,
		}).
		Create(&types.PostLike{PostID: postID, MemberID: memberID})
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected > 0, nil
}

func (r *likeRepo) Delete(dbc dbctx.Context, postID, memberID uint64) (bool, error) {
	res := dbc.DB(r.db).
		Where("post_id = ? AND member_id = ?", postID, memberID).
		Delete(&types.PostLike{})
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected > 0, nil
}

func (r *likeRepo) CountForAuthor(dbc dbctx.Context, memberID uint64) (int64, error) {
	var n int64
	err := dbc.DB(r.db).
		Model(&types.PostLike{}).
		Joins("JOIN post ON post.id = post_like.post_id").
		Where("post.member_id = ?", memberID).
		Count(&n).Error
	if err != nil {
		return 0, err
	}
	return n, nil
}
