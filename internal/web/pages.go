package web

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

func NotFound(c *gin.Context) {
	Render(c, http.StatusNotFound, "404.html", gin.H{"title": "Not Found"})
}

func ServerError(c *gin.Context) {
	Render(c, http.StatusInternalServerError, "500.html", gin.H{"title": "Server Error"})
}

// Home renders the landing page with any queued flash messages.
func Home(c *gin.Context, status int) {
	Render(c, status, "home.html", gin.H{"title": "Home"})
}
