package handler

import (
	"time"

	"event-relay/internal/adapter/http/middleware"
	redisStore "event-relay/internal/adapter/storage/redis"
	"event-relay/internal/core/ports"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
)

// RouterDeps holds all dependencies needed to set up routes.
type RouterDeps struct {
	Dispatcher      ports.Dispatcher
	ReportingSvc    ports.DeliveryReportingService
	DeadLetterSvc   ports.DeadLetterService
	IngestionGate   ports.IngestionGate
	InboundHandlers map[string]ports.InboundHandler // provider name -> business handler
	SigSvc          ports.SignatureService
	TokenSvc        ports.TokenService
	ProviderSecret  string
	MaxDrift        time.Duration
	RateLimitStore  *redisStore.RateLimitStore // nil = rate limiting disabled
	HealthCheckers  []ports.HealthChecker
	Logger          zerolog.Logger
}

// SetupRouter initialises the Gin engine with all routes and middleware.
func SetupRouter(deps RouterDeps) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	r := gin.New()

	// Global middleware
	r.Use(middleware.Recovery(deps.Logger))
	r.Use(middleware.RequestLogger(deps.Logger))
	r.Use(middleware.MaxBodySize(1 << 20)) // 1 MB request body limit

	// Health check (deep: pings PostgreSQL and Redis)
	r.GET("/health", HealthCheck(deps.HealthCheckers...))

	// Rate limit rules
	rules := middleware.DefaultRateLimitRules()

	// Helper: return rate limiter middleware if store is available, else noop.
	rl := func(group string) gin.HandlerFunc {
		if deps.RateLimitStore == nil {
			return func(c *gin.Context) { c.Next() }
		}
		rule, ok := rules[group]
		if !ok {
			return func(c *gin.Context) { c.Next() }
		}
		return middleware.RateLimiter(deps.RateLimitStore, group, rule, deps.Logger)
	}

	// API v1 routes
	v1 := r.Group("/api/v1")

	// --- Provider-facing inbound endpoint (HMAC-verified) ---
	providerAuth := middleware.ProviderHMAC(deps.ProviderSecret, deps.SigSvc, deps.MaxDrift, deps.Logger)
	inboundHandler := NewInboundHandler(deps.IngestionGate, deps.InboundHandlers, deps.Logger)
	v1.POST("/inbound/:provider", rl("inbound"), providerAuth, inboundHandler.Receive)

	// --- Internal emission endpoint ---
	eventHandler := NewEventHandler(deps.Dispatcher)
	v1.POST("/events", rl("events"), middleware.TenantContext(), eventHandler.EmitEvent)

	// --- Tenant-visible delivery history ---
	deliveryHandler := NewDeliveryHandler(deps.ReportingSvc)
	deliveries := v1.Group("/deliveries", middleware.TenantContext())
	{
		deliveries.GET("", rl("deliveries"), deliveryHandler.ListDeliveries)
		deliveries.GET("/:id", rl("deliveries"), deliveryHandler.GetDelivery)
	}

	// --- Operator recovery surface (JWT-authenticated) ---
	operatorAuth := middleware.OperatorAuth(deps.TokenSvc, deps.Logger)
	dlqHandler := NewDeadLetterHandler(deps.DeadLetterSvc)
	admin := v1.Group("/admin/dead-letters", operatorAuth)
	{
		admin.GET("", rl("admin"), dlqHandler.List)
		admin.GET("/:id", rl("admin"), dlqHandler.Get)
		admin.POST("/:id/resolve", rl("admin"), dlqHandler.Resolve)
		admin.POST("/:id/ignore", rl("admin"), dlqHandler.Ignore)
		admin.POST("/:id/retry", rl("admin"), dlqHandler.Retry)
	}

	return r
}
