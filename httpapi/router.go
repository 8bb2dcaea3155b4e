// Package httpapi exposes maze generation over HTTP with gin.
//
// Routes, under the configured base URL:
//
//	POST   /v1/mazes       generate from a JSON request document
//	GET    /v1/mazes/:ID   fetch a transferred buffer again
//	DELETE /v1/mazes/:ID   release a transferred buffer
//	POST   /v1/mazes/:ID/moves  move the player one cell ({"direction":"East"})
//	GET    /healthz        liveness and registry stats
package httpapi

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/jmisabella/mazer/internal/ctxlog"
)

// Controller registers a group of routes.
type Controller interface {
	Register(*gin.RouterGroup)
}

// Router owns the gin engine and its controllers.
type Router struct {
	addr        string
	baseURL     string
	controllers []Controller
	logger      *slog.Logger
}

// Config holds the settings for NewRouter.
type Config struct {
	Addr        string // address to listen on
	BaseURL     string // prefix for versioned routes, e.g. "/api"
	Controllers []Controller
	Logger      *slog.Logger
}

// NewRouter creates a Router from config. A nil logger discards output.
func NewRouter(config Config) *Router {
	logger := config.Logger
	if logger == nil {
		logger = ctxlog.Discard()
	}
	return &Router{
		addr:        config.Addr,
		baseURL:     config.BaseURL,
		controllers: config.Controllers,
		logger:      logger,
	}
}

// Handler builds the gin engine with every route registered.
func (r *Router) Handler() *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery(), requestLogger(r.logger))

	router.GET("/healthz", r.health)
	api := router.Group(r.baseURL)
	{
		v1 := api.Group("/v1")
		for _, c := range r.controllers {
			c.Register(v1)
		}
	}
	return router
}

// Run listens on the configured address until the server fails.
func (r *Router) Run() error {
	r.logger.Info("http server listening", "addr", r.addr, "base_url", r.baseURL)
	return r.Handler().Run(r.addr)
}

func (r *Router) health(ctx *gin.Context) {
	body := gin.H{"status": "ok"}
	for _, c := range r.controllers {
		if s, ok := c.(interface{ Stats() (int, int) }); ok {
			buffers, bytes := s.Stats()
			body["buffers"] = buffers
			body["bytes"] = bytes
		}
	}
	ctx.JSON(http.StatusOK, body)
}

// requestLogger stores a request-scoped logger in the request context and
// logs one record per request.
func requestLogger(base *slog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		began := time.Now()
		logger := base.With("method", c.Request.Method, "path", c.FullPath())
		c.Request = c.Request.WithContext(ctxlog.WithLogger(c.Request.Context(), logger))
		c.Next()
		logger.Info("http request",
			"status", c.Writer.Status(),
			"bytes", c.Writer.Size(),
			"duration", time.Since(began),
		)
	}
}
