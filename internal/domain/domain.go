package domain

import (
	"github.com/yungbote/talentswap-backend/internal/domain/category"
	"github.com/yungbote/talentswap-backend/internal/domain/member"
	"github.com/yungbote/talentswap-backend/internal/domain/post"
)

type MainCategory = category.MainCategory
type MidCategory = category.MidCategory
type SubCategory = category.SubCategory

type Member = member.Member
type MemberTalent = member.MemberTalent
type TalentType = member.TalentType
type Ranks = member.Ranks

type Post = post.Post
type Link = post.Link
type PostTalent = post.PostTalent
type PostLike = post.Like

type ExchangeType = post.ExchangeType
type ExchangePeriod = post.ExchangePeriod
type ExchangeTime = post.ExchangeTime

// Models lists every persisted entity in migration order.
func Models() []any {
	return []any{
		&MainCategory{},
		&MidCategory{},
		&SubCategory{},

		&Member{},
		&MemberTalent{},

		&Post{},
		&Link{},
		&PostTalent{},
		&PostLike{},
	}
}
