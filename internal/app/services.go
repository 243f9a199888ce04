package app

import (
	"gorm.io/gorm"

	"github.com/yungbote/talentswap-backend/internal/data/aggregates"
	"github.com/yungbote/talentswap-backend/internal/observability"
	"github.com/yungbote/talentswap-backend/internal/platform/logger"
	"github.com/yungbote/talentswap-backend/internal/services"
)

type Services struct {
	Auth     services.AuthService
	Post     services.PostService
	Member   services.MemberService
	Category services.CategoryService
}

func wireServices(db *gorm.DB, log *logger.Logger, cfg Config, r Repos, metrics *observability.Metrics) Services {
	log.Info("Wiring services...")
	exec := aggregates.NewExecutor(aggregates.BaseDeps{
		DB:    db,
		Log:   log,
		Hooks: aggregates.NewObservabilityHooks(metrics),
	})
	limits := services.PageLimits{Default: cfg.DefaultPageSize, Max: cfg.MaxPageSize}
	return Services{
		Auth: services.NewAuthService(log, cfg.JWTSecretKey, cfg.AccessTokenTTL),
		Post: services.NewPostService(log, exec, r.Member, r.MainCategory, r.MidCategory, r.SubCategory,
			r.Post, r.Link, r.PostTalent, r.Like, limits),
		Member:   services.NewMemberService(log, exec, r.Member, r.MemberTalent, r.Like, r.SubCategory),
		Category: services.NewCategoryService(log, exec, r.MainCategory),
	}
}
