package router

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/kenemosam/saluni/internal/handler"
	authhandler "github.com/kenemosam/saluni/internal/handler/auth"
	bookinghandler "github.com/kenemosam/saluni/internal/handler/booking"
	cataloghandler "github.com/kenemosam/saluni/internal/handler/catalog"
	paymenthandler "github.com/kenemosam/saluni/internal/handler/payment"
	reviewhandler "github.com/kenemosam/saluni/internal/handler/review"
	salonhandler "github.com/kenemosam/saluni/internal/handler/salon"
	"github.com/kenemosam/saluni/internal/middleware"
)

type Config struct {
	RateLimitRPS   float64
	RateLimitBurst int
	Timeout        time.Duration
	ListingCache   time.Duration
	CORS           middleware.CORSConfig
	MetricsPrefix  string
}

func DefaultConfig() Config {
	return Config{
		RateLimitRPS:   50,
		RateLimitBurst: 100,
		Timeout:        30 * time.Second,
		ListingCache:   time.Minute,
		CORS:           middleware.DefaultCORSConfig(),
		MetricsPrefix:  "saluni_http",
	}
}

type Router struct {
	engine   *gin.Engine
	auth     *middleware.AuthMiddleware
	h        *handler.Handler
	authH    *authhandler.Handler
	salonH   *salonhandler.Handler
	catalogH *cataloghandler.Handler
	bookingH *bookinghandler.Handler
	paymentH *paymenthandler.Handler
	reviewH  *reviewhandler.Handler
	cache    *middleware.ResponseCache
	metrics  *routerMetrics
}

type routerMetrics struct {
	requestDuration *prometheus.HistogramVec
	requestTotal    *prometheus.CounterVec
}

func NewRouter(
	auth *middleware.AuthMiddleware,
	h *handler.Handler,
	authH *authhandler.Handler,
	salonH *salonhandler.Handler,
	catalogH *cataloghandler.Handler,
	bookingH *bookinghandler.Handler,
	paymentH *paymenthandler.Handler,
	reviewH *reviewhandler.Handler,
	config Config,
) *Router {
	gin.SetMode(gin.ReleaseMode)
	engine := gin.New()

	r := &Router{
		engine:   engine,
		auth:     auth,
		h:        h,
		authH:    authH,
		salonH:   salonH,
		catalogH: catalogH,
		bookingH: bookingH,
		paymentH: paymentH,
		reviewH:  reviewH,
		cache:    middleware.NewResponseCache(config.ListingCache),
		metrics:  newRouterMetrics(config.MetricsPrefix),
	}

	engine.Use(
		middleware.Recovery(),
		middleware.RequestID(),
		middleware.Logger(),
		r.metricsMiddleware(),
		middleware.Timeout(config.Timeout),
		middleware.CORS(config.CORS),
	)

	rateLimiter := middleware.NewRateLimiter(config.RateLimitRPS, config.RateLimitBurst)
	engine.Use(rateLimiter.RateLimit())

	return r
}

func (r *Router) Setup() {
	api := r.engine.Group("/api/v1")

	api.Use(func(c *gin.Context) {
		c.Header("X-API-Version", "1.0")
		c.Next()
	})

	r.setupHealthCheck(api)

	r.authH.RegisterRoutes(api, r.auth)
	r.salonH.RegisterRoutes(api, r.auth, r.cache)
	r.catalogH.RegisterRoutes(api, r.auth)
	r.bookingH.RegisterRoutes(api, r.auth)
	r.paymentH.RegisterRoutes(api, r.auth)
	r.reviewH.RegisterRoutes(api, r.auth)
}

func (r *Router) setupHealthCheck(rg *gin.RouterGroup) {
	health := rg.Group("/health")
	{
		health.GET("/live", r.h.LivenessCheck)
		health.GET("/ready", r.h.ReadinessCheck)
		health.GET("/metrics", r.h.MetricsHandler)
	}
}

func (r *Router) Engine() *gin.Engine {
	return r.engine
}

func newRouterMetrics(prefix string) *routerMetrics {
	return &routerMetrics{
		requestDuration: promauto.NewHistogramVec(
			prometheus.HistogramOpts{
				Name: prefix + "_request_duration_seconds",
				Help: "Duration of HTTP requests in seconds",
			},
			[]string{"method", "path", "status"},
		),
		requestTotal: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: prefix + "_requests_total",
				Help: "Total number of HTTP requests",
			},
			[]string{"method", "path", "status"},
		),
	}
}

func (r *Router) metricsMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		path := c.FullPath()

		c.Next()

		status := strconv.Itoa(c.Writer.Status())
		duration := time.Since(start).Seconds()

		r.metrics.requestDuration.WithLabelValues(c.Request.Method, path, status).Observe(duration)
		r.metrics.requestTotal.WithLabelValues(c.Request.Method, path, status).Inc()
	}
}
