package app

import (
	"gorm.io/gorm"

	"github.com/yungbote/talentswap-backend/internal/data/repos"
	"github.com/yungbote/talentswap-backend/internal/platform/logger"
)

type Repos struct {
	MainCategory repos.MainCategoryRepo
	MidCategory  repos.MidCategoryRepo
	SubCategory  repos.SubCategoryRepo
	Member       repos.MemberRepo
	MemberTalent repos.MemberTalentRepo
	Post         repos.PostRepo
	Link         repos.LinkRepo
	PostTalent   repos.PostTalentRepo
	Like         repos.LikeRepo
}

func wireRepos(db *gorm.DB, log *logger.Logger) Repos {
	log.Info("Wiring repos...")
	return Repos{
		MainCategory: repos.NewMainCategoryRepo(db, log),
		MidCategory:  repos.NewMidCategoryRepo(db, log),
		SubCategory:  repos.NewSubCategoryRepo(db, log),
		Member:       repos.NewMemberRepo(db, log),
		MemberTalent: repos.NewMemberTalentRepo(db, log),
		Post:         repos.NewPostRepo(db, log),
		Link:         repos.NewLinkRepo(db, log),
		PostTalent:   repos.NewPostTalentRepo(db, log),
		Like:         repos.NewLikeRepo(db, log),
	}
}
