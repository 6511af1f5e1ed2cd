package app

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/PowerNightVS/discord-web/app/auth"
	"github.com/PowerNightVS/discord-web/app/dashboard"
	"github.com/PowerNightVS/discord-web/app/root"
	"github.com/PowerNightVS/discord-web/app/stream"
	"github.com/PowerNightVS/discord-web/internal"
	"github.com/PowerNightVS/discord-web/pkg/middleware"
	"github.com/PowerNightVS/discord-web/web"

	cache "github.com/chenyahui/gin-cache"
	"github.com/chenyahui/gin-cache/persist"
	"github.com/gin-contrib/cors"
	ginzap "github.com/gin-contrib/zap"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

const maxAPIBodySize = 1 << 20

// RouterConfig holds the switches that change which routes and guards exist
type RouterConfig struct {
	CORSOrigins    []string
	RateLimit      int // Requests per second per IP on /api, 0 disables it
	StreamsEnabled bool
	StreamsAPIKey  string
}

// NewRouter builds the engine. Background work started for it, like the
// rate limiter's janitor, stops when ctx is done.
func NewRouter(ctx context.Context, d *internal.Deps, cfg RouterConfig) (*gin.Engine, error) {
	tmpl, err := web.Templates()
	if err != nil {
		return nil, fmt.Errorf("failed to parse templates, %w", err)
	}

	router := gin.New()
	router.SetHTMLTemplate(tmpl)

	if len(cfg.CORSOrigins) > 0 {
		router.Use(cors.New(cors.Config{
			AllowOrigins:     cfg.CORSOrigins,
			AllowMethods:     []string{"GET", "POST", "OPTIONS"},
			AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization"},
			ExposeHeaders:    []string{"Content-Length", middleware.RequestIDHeader},
			AllowCredentials: true,
			MaxAge:           12 * time.Hour,
		}))
	}

	router.Use(
		gin.Recovery(),
		middleware.NewRequestIDMiddleware(),
		ginzap.GinzapWithConfig(zap.L(), &ginzap.Config{
			TimeFormat: "15:04:05.000",
			UTC:        true,
			Skipper: func(c *gin.Context) bool {
				return c.Request.Method == http.MethodHead
			},
			Context: func(c *gin.Context) []zapcore.Field {
				fields := []zapcore.Field{}

				if v := c.GetString("requestID"); v != "" {
					fields = append(fields, zap.String("request_id", v))
				}

				if v := c.GetString("userID"); v != "" {
					fields = append(fields, zap.String("userID", v))
				}

				return fields
			},
		}),
	)

	router.HandleMethodNotAllowed = true
	router.RedirectFixedPath = true

	router.StaticFS("/static", http.FS(web.Static()))

	session := middleware.RequireSession(d.Sessions, "/login")
	store := persist.NewMemoryStore(time.Minute)

	// GET /			-> Landing page with the bot's servers and live streams
	router.GET("/", func(c *gin.Context) { root.Index(c, d) })

	// GET /about			-> Static information page
	router.GET("/about", cacheFor(store, 5*60), func(c *gin.Context) { root.About(c, d) })

	// GET /login			-> Redirects to Discord's authorize page
	router.GET("/login", func(c *gin.Context) { auth.Login(c, d) })

	// GET /callback		-> Exchanges the OAuth2 code and starts a session
	router.GET("/callback", func(c *gin.Context) { auth.Callback(c, d) })

	// GET /logout			-> Clears the session
	router.GET("/logout", func(c *gin.Context) { auth.Logout(c, d) })

	// GET /dashboard		-> The logged in user's dashboard
	router.GET("/dashboard", session, func(c *gin.Context) { dashboard.Dashboard(c, d) })

	// The bot's callbacks share the /api prefix but not the per-IP limit
	m := router.Group("/api", middleware.BodySizeLimiter(maxAPIBodySize))

	public := m.Group("")
	if cfg.RateLimit > 0 {
		public.Use(middleware.RateLimiterMiddleware(ctx, middleware.RateLimiterConfig{
			RequestsPerSecond: cfg.RateLimit,
			Burst:             cfg.RateLimit * 2,
		}))
	}
	{
		// HEAD /api/heartbeat 		-> Used to check if the server is alive
		public.HEAD("/heartbeat", root.Heartbeat)
		public.GET("/heartbeat", root.Heartbeat)
	}

	if !cfg.StreamsEnabled {
		return router, nil
	}

	if cfg.StreamsAPIKey == "" {
		zap.L().Warn("Stream callbacks are unauthenticated, anyone who can reach the server can add or stop streams")
	}

	// GET /stream			-> Active stream list page
	router.GET("/stream", func(c *gin.Context) { stream.Page(c, d) })

	// GET /api/streams		-> Active streams as JSON
	public.GET("/streams", func(c *gin.Context) { stream.List(c, d) })

	bot := m.Group("", middleware.RequireBotKey(cfg.StreamsAPIKey))
	{
		// POST /api/add_stream		-> The bot reports a stream that started
		bot.POST("/add_stream", func(c *gin.Context) { stream.Add(c, d) })

		// POST /api/stop_stream	-> The bot reports a stream that ended
		bot.POST("/stop_stream", func(c *gin.Context) { stream.Stop(c, d) })
	}

	return router, nil
}

// cacheFor caches whole responses except the per-request ID header
func cacheFor(store persist.CacheStore, sec int) gin.HandlerFunc {
	return cache.CacheByRequestURI(store, time.Second*time.Duration(sec),
		cache.WithDiscardHeaders([]string{middleware.RequestIDHeader}),
	)
}

// splitOrigins accepts both a TOML array and a comma separated env value
func splitOrigins(values []string) []string {
	var out []string

	for _, v := range values {
		for _, o := range strings.Split(v, ",") {
			if o = strings.TrimSpace(o); o != "" {
				out = append(out, o)
			}
		}
	}

	return out
}
