package router

import (
	"github.com/wb-go/wbf/ginext"

	"github.com/medremind/appointment-notifier/internal/api/handlers/job"
	"github.com/medremind/appointment-notifier/internal/metrics"
	"github.com/medremind/appointment-notifier/internal/middlewares"
)

func New(handler *job.Handler) *ginext.Engine {
	e := ginext.New()
	e.Use(middlewares.CORSMiddleware())
	e.Use(ginext.Logger())
	e.Use(ginext.Recovery())

	api := e.Group("/api/jobs")
	{
		api.GET("/:id", handler.GetStatus)
		api.DELETE("/:id", handler.Cancel)
	}

	e.GET("/api/stats", handler.Stats)
	e.GET("/metrics", func(c *ginext.Context) {
		metrics.Handler().ServeHTTP(c.Writer, c.Request)
	})

	return e
}
