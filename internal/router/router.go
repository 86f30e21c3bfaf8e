package router

import (
	"fmt"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"golang.org/x/time/rate"

	"github.com/osuarez/clinic-manager/internal/handler"
	authHandler "github.com/osuarez/clinic-manager/internal/handler/auth"
	historyHandler "github.com/osuarez/clinic-manager/internal/handler/history"
	userHandler "github.com/osuarez/clinic-manager/internal/handler/user"
	"github.com/osuarez/clinic-manager/internal/middleware"
	"github.com/osuarez/clinic-manager/internal/web"
)

type Router struct {
	engine   *gin.Engine
	auth     *middleware.AuthMiddleware
	authH    *authHandler.Handler
	userH    *userHandler.Handler
	historyH *historyHandler.Handler
	h        *handler.Handler
	limiter  *middleware.RateLimiter
	registry *prometheus.Registry
	metrics  *routerMetrics
}

type Config struct {
	LoginRPS      float64
	LoginBurst    int
	MetricsPrefix string
}

type routerMetrics struct {
	requestDuration *prometheus.HistogramVec
	requestTotal    *prometheus.CounterVec
	errorTotal      *prometheus.CounterVec
}

func NewRouter(
	auth *middleware.AuthMiddleware,
	authH *authHandler.Handler,
	userH *userHandler.Handler,
	historyH *historyHandler.Handler,
	h *handler.Handler,
	config Config,
) *Router {
	gin.SetMode(gin.ReleaseMode)

	engine := gin.New()
	engine.SetHTMLTemplate(web.Templates())

	registry := prometheus.NewRegistry()

	r := &Router{
		engine:   engine,
		auth:     auth,
		authH:    authH,
		userH:    userH,
		historyH: historyH,
		h:        h,
		limiter: middleware.NewRateLimiter(middleware.RateLimiterConfig{
			Rate:  rate.Limit(config.LoginRPS),
			Burst: config.LoginBurst,
		}),
		registry: registry,
		metrics:  initRouterMetrics(registry, config.MetricsPrefix),
	}

	engine.Use(
		middleware.Recovery(),
		middleware.Logger(),
		r.metricsMiddleware(),
		middleware.RequestID(),
	)

	return r
}

func (r *Router) Setup() {
	root := r.engine.Group("")

	root.GET("/", r.h.Index)

	r.setupHealthCheck(root)

	// Public routes
	r.authH.RegisterRoutes(root, r.limiter.RateLimit())
	r.userH.RegisterRoutes(root)

	// Protected routes
	protected := r.engine.Group("")
	protected.Use(r.auth.RequireSession())
	protected.GET("/dashboard", r.h.Dashboard)
	protected.POST("/dashboard", r.h.Dashboard)

	r.historyH.RegisterRoutes(root, protected)

	r.engine.NoRoute(handler.NotFoundPage)
}

func (r *Router) setupHealthCheck(rg *gin.RouterGroup) {
	health := rg.Group("/health")
	{
		health.GET("/live", r.h.LivenessCheck)
		health.GET("/ready", r.h.ReadinessCheck)
	}
	rg.GET("/metrics", gin.WrapH(promhttp.HandlerFor(r.registry, promhttp.HandlerOpts{})))
}

func (r *Router) Engine() *gin.Engine {
	return r.engine
}

func initRouterMetrics(registry *prometheus.Registry, prefix string) *routerMetrics {
	m := &routerMetrics{
		requestDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name: prefix + "_request_duration_seconds",
				Help: "Duration of HTTP requests in seconds",
			},
			[]string{"method", "path", "status"},
		),
		requestTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: prefix + "_requests_total",
				Help: "Total number of HTTP requests",
			},
			[]string{"method", "path", "status"},
		),
		errorTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: prefix + "_errors_total",
				Help: "Total number of HTTP errors",
			},
			[]string{"method", "path", "type"},
		),
	}

	registry.MustRegister(m.requestDuration, m.requestTotal, m.errorTotal)
	return m
}

func (r *Router) metricsMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		path := c.FullPath()

		c.Next()

		status := fmt.Sprintf("%d", c.Writer.Status())
		duration := time.Since(start).Seconds()

		r.metrics.requestDuration.WithLabelValues(c.Request.Method, path, status).Observe(duration)
		r.metrics.requestTotal.WithLabelValues(c.Request.Method, path, status).Inc()

		if c.Writer.Status() >= 400 {
			r.metrics.errorTotal.WithLabelValues(c.Request.Method, path, "http").Inc()
		}
	}
}
