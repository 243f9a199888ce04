package app

import (
	"gorm.io/gorm"

	"github.com/yungbote/talentswap-backend/internal/http"
	httpH "github.com/yungbote/talentswap-backend/internal/http/handlers"
	httpMW "github.com/yungbote/talentswap-backend/internal/http/middleware"
	"github.com/yungbote/talentswap-backend/internal/observability"
	"github.com/yungbote/talentswap-backend/internal/platform/logger"
)

type Middleware struct {
	Auth *httpMW.AuthMiddleware
}

type Handlers struct {
	Health   *httpH.HealthHandler
	Post     *httpH.PostHandler
	Member   *httpH.MemberHandler
	Category *httpH.CategoryHandler
}

func wireHandlers(log *logger.Logger, db *gorm.DB, services Services) Handlers {
	log.Info("Wiring handlers...")
	return Handlers{
		Health:   httpH.NewHealthHandler(db),
		Post:     httpH.NewPostHandler(services.Post),
		Member:   httpH.NewMemberHandler(services.Member),
		Category: httpH.NewCategoryHandler(services.Category),
	}
}

func wireMiddleware(log *logger.Logger, services Services) Middleware {
	log.Info("Wiring middleware...")
	return Middleware{
		Auth: httpMW.NewAuthMiddleware(log, services.Auth),
	}
}

func wireServer(log *logger.Logger, cfg Config, metrics *observability.Metrics, handlers Handlers, middleware Middleware) *http.Server {
	serviceName := ""
	if cfg.OTel.Enabled {
		serviceName = cfg.OTel.ServiceName
	}
	return http.NewServer(cfg.Addr(), http.RouterConfig{
		Log:             log,
		Metrics:         metrics,
		ServiceName:     serviceName,
		AllowedOrigins:  cfg.AllowedOrigins,
		AuthMiddleware:  middleware.Auth,
		PostHandler:     handlers.Post,
		MemberHandler:   handlers.Member,
		CategoryHandler: handlers.Category,
		HealthHandler:   handlers.Health,
	})
}
