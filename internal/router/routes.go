package router

import (
	"github.com/changhyeonkim/memome/go-api-server/internal/auth"
	"github.com/changhyeonkim/memome/go-api-server/internal/config"
	"github.com/changhyeonkim/memome/go-api-server/internal/member"
	"github.com/changhyeonkim/memome/go-api-server/internal/memo"
	"github.com/changhyeonkim/memome/go-api-server/internal/meta"
	"github.com/changhyeonkim/memome/go-api-server/internal/shared/database"
	"github.com/changhyeonkim/memome/go-api-server/internal/shared/middleware"
	"github.com/changhyeonkim/memome/go-api-server/internal/shared/token"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Setup configures all application-specific routes using dependency injection
func Setup(router *gin.Engine, cfg *config.Config, db *database.DB, gatherer prometheus.Gatherer) {
	// Meta handler (health check, metrics)
	metaHandler := meta.NewHandler(cfg, db)
	router.GET("/health", metaHandler.Health)
	router.GET("/metrics", gin.WrapH(promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{})))

	// repository
	memberRepository := member.NewMemberRepository()
	memoRepository := memo.NewMemoRepository()

	// shared services
	tokenManager := token.NewJWTManager(cfg)
	providers := auth.NewOIDCProviderRegistry(cfg.OAuth)

	// service
	memberService := member.NewMemberService(db.DB, memberRepository)
	memoService := memo.NewMemoService(db.DB, memoRepository)
	authService := auth.NewAuthService(providers, auth.NewIdentityResolver(), memberService, tokenManager)

	// handler
	authHandler := auth.NewAuthHandler(authService, auth.NewLoginStateStore(cfg.OAuth))
	memberHandler := member.NewMemberHandler(memberService)
	memoHandler := memo.NewMemoHandler(memoService, memberService)

	authGroup := router.Group("/auth")
	authGroup.Use(middleware.RateLimit(middleware.NewIPRateLimiter(cfg.RateLimit)))
	{
		authGroup.GET("/:provider/login", authHandler.Login)
		authGroup.GET("/:provider/callback", authHandler.Callback)
		authGroup.POST("/refresh", authHandler.Refresh)
	}

	memberGroup := router.Group("/members")
	memberGroup.Use(middleware.JWT(tokenManager))
	{
		memberGroup.GET("/me", memberHandler.GetMyInfo)
		memberGroup.PUT("/me", memberHandler.UpdateMyInfo)
		memberGroup.DELETE("/me", memberHandler.DeleteMyInfo)
	}

	memoGroup := router.Group("/memos")
	memoGroup.Use(middleware.JWT(tokenManager))
	{
		memoGroup.POST("", memoHandler.CreateMemo)
		memoGroup.GET("", memoHandler.GetMemos)
		memoGroup.GET("/:memoId", memoHandler.GetMemo)
		memoGroup.PUT("/:memoId", memoHandler.UpdateMemo)
		memoGroup.DELETE("/:memoId", memoHandler.DeleteMemo)
	}
}
