package services

import (
	"context"
	"testing"

	"gorm.io/gorm"

	"github.com/yungbote/talentswap-backend/internal/data/aggregates"
	aggtestutil "github.com/yungbote/talentswap-backend/internal/data/aggregates/testutil"
	"github.com/yungbote/talentswap-backend/internal/data/repos"
	"github.com/yungbote/talentswap-backend/internal/data/repos/testutil"
	domainagg "github.com/yungbote/talentswap-backend/internal/domain/aggregates"
)

type fixture struct {
	ctx        context.Context
	db         *gorm.DB
	hooks      *aggtestutil.HooksRecorder
	posts      PostService
	members    MemberService
	categories CategoryService
}

func newFixture(t *testing.T, runner aggregates.TxRunner) *fixture {
	t.Helper()
	db := testutil.DB(t)
	log := testutil.Logger(t)
	hooks := &aggtestutil.HooksRecorder{}
	if fr, ok := runner.(*aggtestutil.FailingCommitRunner); ok && fr.DB == nil {
		fr.DB = db
	}
	exec := aggregates.NewExecutor(aggregates.BaseDeps{DB: db, Log: log, Runner: runner, Hooks: hooks})

	memberRepo := repos.NewMemberRepo(db, log)
	mainRepo := repos.NewMainCategoryRepo(db, log)
	midRepo := repos.NewMidCategoryRepo(db, log)
	subRepo := repos.NewSubCategoryRepo(db, log)
	likeRepo := repos.NewLikeRepo(db, log)

	return &fixture{
		ctx:   context.Background(),
		db:    db,
		hooks: hooks,
		posts: NewPostService(log, exec, memberRepo, mainRepo, midRepo, subRepo,
			repos.NewPostRepo(db, log), repos.NewLinkRepo(db, log), repos.NewPostTalentRepo(db, log), likeRepo,
			PageLimits{Default: 20, Max: 100}),
		members:    NewMemberService(log, exec, memberRepo, repos.NewMemberTalentRepo(db, log), likeRepo, subRepo),
		categories: NewCategoryService(log, exec, mainRepo),
	}
}

func (f *fixture) count(t *testing.T, model any) int64 {
	t.Helper()
	var n int64
	if err := f.db.Model(model).Count(&n).Error; err != nil {
		t.Fatalf("count: %v", err)
	}
	return n
}

func wantReason(t *testing.T, err error, reason domainagg.Reason) {
	t.Helper()
	if err == nil {
		t.Fatalf("expected %s, got nil", reason)
	}
	if got := domainagg.ReasonOf(err); got != reason {
		t.Fatalf("reason: want=%s got=%s (%v)", reason, got, err)
	}
}
