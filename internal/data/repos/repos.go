package repos

import (
	"gorm.io/gorm"

	"github.com/yungbote/talentswap-backend/internal/data/repos/category"
	"github.com/yungbote/talentswap-backend/internal/data/repos/member"
	"github.com/yungbote/talentswap-backend/internal/data/repos/post"
	"github.com/yungbote/talentswap-backend/internal/platform/logger"
)

type MainCategoryRepo = category.MainCategoryRepo
type MidCategoryRepo = category.MidCategoryRepo
type SubCategoryRepo = category.SubCategoryRepo

type MemberRepo = member.MemberRepo
type MemberTalentRepo = member.MemberTalentRepo

type PostRepo = post.PostRepo
type PostListFilter = post.ListFilter
type LinkRepo = post.LinkRepo
type PostTalentRepo = post.PostTalentRepo
type LikeRepo = post.LikeRepo

func NewMainCategoryRepo(db *gorm.DB, baseLog *logger.Logger) MainCategoryRepo {
	return category.NewMainCategoryRepo(db, baseLog)
}
func NewMidCategoryRepo(db *gorm.DB, baseLog *logger.Logger) MidCategoryRepo {
	return category.NewMidCategoryRepo(db, baseLog)
}
func NewSubCategoryRepo(db *gorm.DB, baseLog *logger.Logger) SubCategoryRepo {
	return category.NewSubCategoryRepo(db, baseLog)
}

func NewMemberRepo(db *gorm.DB, baseLog *logger.Logger) MemberRepo {
	return member.NewMemberRepo(db, baseLog)
}
func NewMemberTalentRepo(db *gorm.DB, baseLog *logger.Logger) MemberTalentRepo {
	return member.NewMemberTalentRepo(db, baseLog)
}

func NewPostRepo(db *gorm.DB, baseLog *logger.Logger) PostRepo { return post.NewPostRepo(db, baseLog) }
func NewLinkRepo(db *gorm.DB, baseLog *logger.Logger) LinkRepo { return post.NewLinkRepo(db, baseLog) }
func NewPostTalentRepo(db *gorm.DB, baseLog *logger.Logger) PostTalentRepo {
	return post.NewPostTalentRepo(db, baseLog)
}
func NewLikeRepo(db *gorm.DB, baseLog *logger.Logger) LikeRepo { return post.NewLikeRepo(db, baseLog) }
