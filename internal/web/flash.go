package web

import (
	"net/http"

	"github.com/gin-contrib/sessions"
	"github.com/gin-contrib/sessions/cookie"
	"github.com/gin-gonic/gin"
)

const sessionName = "fyyur_session"

// Sessions installs the signed cookie session that carries flash messages.
// Every handler that calls AddFlash, Render, Redirect or JSON needs it.
func Sessions(secret []byte) gin.HandlerFunc {
	store := cookie.NewStore(secret)
	store.Options(sessions.Options{
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
	return sessions.Sessions(sessionName, store)
}

// AddFlash queues a one-shot message. It is shown by the next Render, in
// this request or after a Redirect.
func AddFlash(c *gin.Context, msg string) {
	sessions.Default(c).AddFlash(msg)
}

// Render executes the named page with data plus every queued flash message.
func Render(c *gin.Context, status int, name string, data gin.H) {
	if data == nil {
		data = gin.H{}
	}
	data["flashes"] = popFlashes(c)
	c.HTML(status, name, data)
}

// Redirect saves queued flash messages and redirects.
func Redirect(c *gin.Context, location string) {
	save(c)
	c.Redirect(http.StatusFound, location)
}

// JSON saves queued flash messages and writes obj.
func JSON(c *gin.Context, status int, obj any) {
	save(c)
	c.JSON(status, obj)
}

func popFlashes(c *gin.Context) []string {
	session := sessions.Default(c)
	raw := session.Flashes()
	if len(raw) == 0 {
		return nil
	}
	save(c)

	msgs := make([]string, 0, len(raw))
	for _, f := range raw {
		if s, ok := f.(string); ok {
			msgs = append(msgs, s)
		}
	}
	return msgs
}

func save(c *gin.Context) {
	if err := sessions.Default(c).Save(); err != nil {
		_ = c.Error(err)
	}
}
