package artists

import (
	"context"
	"errors"
	"net/http"
	"time"

	"fyyur/internal/api/forms"
	"fyyur/internal/domain/listings"
	"fyyur/internal/metrics"
	"fyyur/internal/repository"
	"fyyur/internal/web"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type Store interface {
	ListArtists(ctx context.Context) ([]repository.EntityRef, error)
	SearchArtists(ctx context.Context, term string) (repository.SearchResult, error)
	ArtistDetail(ctx context.Context, id uint, now time.Time) (*repository.ArtistDetail, error)
	GetArtist(ctx context.Context, id uint) (*listings.Artist, error)
	CreateArtist(ctx context.Context, a *listings.Artist) repository.Outcome
	UpdateArtist(ctx context.Context, id uint, in listings.Artist, fields repository.FieldSet) repository.Outcome
	DeleteArtist(ctx context.Context, id uint) repository.Outcome
}

type Handler struct {
	store Store
	log   *zap.Logger
	now   func() time.Time
}

func NewHandler(store Store, log *zap.Logger) *Handler {
	return &Handler{store: store, log: log, now: time.Now}
}

func (h *Handler) Register(r gin.IRoutes) {
	r.GET("/artists", h.List)
	r.POST("/artists/search", h.Search)
	r.GET("/artists/create", h.CreateForm)
	r.POST("/artists/create", h.Create)
	r.GET("/artists/:id", h.Show)
	r.GET("/artists/:id/edit", h.EditForm)
	r.POST("/artists/:id/edit", h.Edit)
	r.DELETE("/artists/:id", h.Delete)
}

// GET /artists
func (h *Handler) List(c *gin.Context) {
	artists, err := h.store.ListArtists(c.Request.Context())
	if err != nil {
		h.fail(c, "list artists", err)
		return
	}
	web.Render(c, http.StatusOK, "artists.html", gin.H{"title": "Artists", "artists": artists})
}

// POST /artists/search
func (h *Handler) Search(c *gin.Context) {
	term := c.PostForm("search_term")
	results, err := h.store.SearchArtists(c.Request.Context(), term)
	if err != nil {
		h.fail(c, "search artists", err)
		return
	}
	web.Render(c, http.StatusOK, "search.html", gin.H{
		"title":       "Artist Search",
		"kind":        "artists",
		"search_term": term,
		"results":     results,
	})
}

// GET /artists/:id
func (h *Handler) Show(c *gin.Context) {
	id, ok := forms.ID(c)
	if !ok {
		web.NotFound(c)
		return
	}
	artist, err := h.store.ArtistDetail(c.Request.Context(), id, h.now())
	if err != nil {
		h.fail(c, "artist detail", err)
		return
	}
	web.Render(c, http.StatusOK, "show_artist.html", gin.H{"title": artist.Name, "artist": artist})
}

// GET /artists/create
func (h *Handler) CreateForm(c *gin.Context) {
	h.renderForm(c, listings.Artist{}, "/artists/create", "List a new artist", "Create Artist")
}

// POST /artists/create
func (h *Handler) Create(c *gin.Context) {
	var form artistForm
	if err := c.ShouldBind(&form); err != nil {
		h.log.Info("invalid artist form", zap.Error(err))
		web.AddFlash(c, "An error occurred. Artist "+form.Name+" could not be listed.")
		web.Home(c, http.StatusBadRequest)
		return
	}

	a := form.artist()
	outcome := h.store.CreateArtist(c.Request.Context(), &a)
	h.record(c, "create_artist", outcome)
	web.AddFlash(c, outcome.Message)
	web.Home(c, forms.OutcomeStatus(outcome))
}

// GET /artists/:id/edit
func (h *Handler) EditForm(c *gin.Context) {
	id, ok := forms.ID(c)
	if !ok {
		web.NotFound(c)
		return
	}
	a, err := h.store.GetArtist(c.Request.Context(), id)
	if err != nil {
		h.fail(c, "get artist", err)
		return
	}
	h.renderForm(c, *a, c.Request.URL.Path, "Edit artist "+a.Name, "Save Artist")
}

// POST /artists/:id/edit
func (h *Handler) Edit(c *gin.Context) {
	id, ok := forms.ID(c)
	if !ok {
		web.NotFound(c)
		return
	}
	detail := "/artists/" + c.Param("id")

	var form artistForm
	if err := c.ShouldBind(&form); err != nil {
		h.log.Info("invalid artist form", zap.Uint("artist_id", id), zap.Error(err))
		web.AddFlash(c, "An error occurred. Artist could not be edited.")
		web.Redirect(c, detail)
		return
	}

	fields := forms.PostedFields(c, artistFields...)
	outcome := h.store.UpdateArtist(c.Request.Context(), id, form.artist(), fields)
	h.record(c, "update_artist", outcome)
	if outcome.Kind() == repository.KindNotFound {
		web.NotFound(c)
		return
	}
	web.AddFlash(c, outcome.Message)
	web.Redirect(c, detail)
}

// DELETE /artists/:id
// The artist's shows go with it.
func (h *Handler) Delete(c *gin.Context) {
	id, ok := forms.ID(c)
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"success": false, "message": "Artist not found."})
		return
	}
	outcome := h.store.DeleteArtist(c.Request.Context(), id)
	h.record(c, "delete_artist", outcome)
	web.AddFlash(c, outcome.Message)
	web.JSON(c, forms.OutcomeStatus(outcome), gin.H{"success": outcome.OK, "message": outcome.Message})
}

func (h *Handler) renderForm(c *gin.Context, a listings.Artist, action, title, submit string) {
	web.Render(c, http.StatusOK, "artist_form.html", gin.H{
		"title":  title,
		"action": action,
		"submit": submit,
		"artist": a,
		"states": web.States,
		"genres": web.Genres,
	})
}

func (h *Handler) record(c *gin.Context, op string, o repository.Outcome) {
	metrics.RecordOutcome(op, o.OK, string(o.Kind()))
	if o.OK {
		return
	}
	if o.Kind() == repository.KindPersistence {
		h.log.Error("artist change failed", zap.String("op", op), zap.Uint("artist_id", o.ID), zap.Error(o.Err))
	} else {
		h.log.Info("artist change rejected", zap.String("op", op), zap.Uint("artist_id", o.ID), zap.Error(o.Err))
	}
	_ = c.Error(o.Err)
}

func (h *Handler) fail(c *gin.Context, op string, err error) {
	if errors.Is(err, repository.ErrNotFound) {
		web.NotFound(c)
		return
	}
	h.log.Error(op, zap.Error(err))
	web.ServerError(c)
}
