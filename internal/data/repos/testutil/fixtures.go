package testutil

import (
	"context"
	"testing"

	"gorm.io/gorm"

	"github.com/yungbote/talentswap-backend/internal/data/db"
	types "github.com/yungbote/talentswap-backend/internal/domain"
	"github.com/yungbote/talentswap-backend/internal/domain/member"
	"github.com/yungbote/talentswap-backend/internal/domain/post"
)

// SeedCatalog loads the embedded category catalog.
func SeedCatalog(tb testing.TB, ctx context.Context, tx *gorm.DB) {
	tb.Helper()
	if _, err := db.SeedCategories(ctx, tx); err != nil {
		tb.Fatalf("seed catalog: %v", err)
	}
}

// SeedCategoryTriple inserts one main, mid and sub category chained together.
func SeedCategoryTriple(tb testing.TB, ctx context.Context, tx *gorm.DB, name string) (*types.MainCategory, *types.MidCategory, *types.SubCategory) {
	tb.Helper()
	main := &types.MainCategory{Name: name}
	if err := tx.WithContext(ctx).Create(main).Error; err != nil {
		tb.Fatalf("seed main category: %v", err)
	}
	mid := &types.MidCategory{MainCategoryID: main.ID, Name: name + "-mid"}
	if err := tx.WithContext(ctx).Create(mid).Error; err != nil {
		tb.Fatalf("seed mid category: %v", err)
	}
	sub := &types.SubCategory{MidCategoryID: mid.ID, Name: name + "-sub"}
	if err := tx.WithContext(ctx).Create(sub).Error; err != nil {
		tb.Fatalf("seed sub category: %v", err)
	}
	return main, mid, sub
}

func SeedSubCategory(tb testing.TB, ctx context.Context, tx *gorm.DB, midID uint64, name string) *types.SubCategory {
	tb.Helper()
	sub := &types.SubCategory{MidCategoryID: midID, Name: name}
	if err := tx.WithContext(ctx).Create(sub).Error; err != nil {
		tb.Fatalf("seed sub category: %v", err)
	}
	return sub
}

func SeedMember(tb testing.TB, ctx context.Context, tx *gorm.DB, nickname string) *types.Member {
	tb.Helper()
	m := &types.Member{
		Nickname:     nickname,
		Image:        "members/" + nickname + ".png",
		Introduction: "hello",
		Ranks:        member.RankRookie,
	}
	if err := tx.WithContext(ctx).Create(m).Error; err != nil {
		tb.Fatalf("seed member: %v", err)
	}
	return m
}

// SeedPost writes a shared online post for memberID in the given classification.
func SeedPost(tb testing.TB, ctx context.Context, tx *gorm.DB, memberID, mainID, midID, subID uint64, links ...string) *types.Post {
	tb.Helper()
	p := post.New(post.Fields{
		Title:          "seeded post",
		Content:        "content",
		IsShare:        true,
		ExchangeType:   post.ExchangeOnline,
		ExchangePeriod: post.PeriodOneDay,
		ExchangeTime:   post.TimeAnytime,
	})
	if err := p.WriteBy(memberID); err != nil {
		tb.Fatalf("seed post owner: %v", err)
	}
	p.MainCategoryID, p.MidCategoryID, p.SubCategoryID = mainID, midID, subID
	for _, l := range links {
		p.AppendLink(l)
	}
	if err := tx.WithContext(ctx).Omit("Likes").Create(p).Error; err != nil {
		tb.Fatalf("seed post: %v", err)
	}
	return p
}

func Ptr[T any](v T) *T { return &v }
