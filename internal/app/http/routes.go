package routes

import (
	"context"
	"net/http"

	"fyyur/internal/api/artists"
	"fyyur/internal/api/shows"
	"fyyur/internal/api/venues"
	"fyyur/internal/app/http/middleware"
	"fyyur/internal/web"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

type Handlers struct {
	Venues  *venues.Handler
	Artists *artists.Handler
	Shows   *shows.Handler

	// Ping reports whether the database is reachable. Nil means always healthy.
	Ping func(ctx context.Context) error
}

func RegisterRoutes(r *gin.Engine, h Handlers) {
	r.GET("/health", func(c *gin.Context) {
		if h.Ping != nil {
			if err := h.Ping(c.Request.Context()); err != nil {
				c.JSON(http.StatusServiceUnavailable, gin.H{"status": "unavailable"})
				return
			}
		}
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	pages := r.Group("/")
	pages.Use(middleware.SanitizeFormInput())

	pages.GET("/", func(c *gin.Context) { web.Home(c, http.StatusOK) })
	h.Venues.Register(pages)
	h.Artists.Register(pages)
	h.Shows.Register(pages)

	r.NoRoute(web.NotFound)
}
