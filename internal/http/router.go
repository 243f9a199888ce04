package http

import (
	"github.com/gin-gonic/gin"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gin-gonic/gin/otelgin"

	httpH "github.com/yungbote/talentswap-backend/internal/http/handlers"
	httpMW "github.com/yungbote/talentswap-backend/internal/http/middleware"
	"github.com/yungbote/talentswap-backend/internal/observability"
	"github.com/yungbote/talentswap-backend/internal/platform/logger"
)

type RouterConfig struct {
	Log            *logger.Logger
	Metrics        *observability.Metrics
	ServiceName    string
	AllowedOrigins []string

	AuthMiddleware *httpMW.AuthMiddleware

	PostHandler     *httpH.PostHandler
	MemberHandler   *httpH.MemberHandler
	CategoryHandler *httpH.CategoryHandler
	HealthHandler   *httpH.HealthHandler
}

func NewRouter(cfg RouterConfig) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	if cfg.ServiceName != "" {
		r.Use(otelgin.Middleware(cfg.ServiceName))
	}
	r.Use(httpMW.AttachTraceContext())
	r.Use(httpMW.RequestLogger(cfg.Log))
	r.Use(httpMW.Metrics(cfg.Metrics))
	r.Use(httpMW.CORS(cfg.AllowedOrigins))

	// Health
	if cfg.HealthHandler != nil {
		r.GET("/healthcheck", cfg.HealthHandler.HealthCheck)
	}

	api := r.Group("/api/v1")
	protected := api.Group("/")
	if cfg.AuthMiddleware != nil {
		protected.Use(cfg.AuthMiddleware.RequireAuth())
	}

	// Posts
	if cfg.PostHandler != nil {
		api.GET("/posts", cfg.PostHandler.List)
		api.GET("/posts/methods", cfg.PostHandler.Methods)
		api.GET("/posts/:postId", cfg.PostHandler.Read)

		protected.POST("/posts", cfg.PostHandler.Create)
		protected.PUT("/posts/:postId", cfg.PostHandler.Update)
		protected.DELETE("/posts/:postId", cfg.PostHandler.Delete)
		protected.POST("/posts/:postId/likes", cfg.PostHandler.Like)
		protected.DELETE("/posts/:postId/likes", cfg.PostHandler.Unlike)
	}

	// Members
	if cfg.MemberHandler != nil {
		api.GET("/members/ranks", cfg.MemberHandler.Ranks)
		api.GET("/members/:memberId", cfg.MemberHandler.Read)

		protected.PATCH("/members/nickname", cfg.MemberHandler.UpdateNickname)
		protected.PUT("/members", cfg.MemberHandler.Update)
	}

	// Categories
	if cfg.CategoryHandler != nil {
		api.GET("/categories", cfg.CategoryHandler.Tree)
	}

	return r
}
