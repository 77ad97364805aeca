package shows

import (
	"context"
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
	ListShows(ctx context.Context) ([]repository.ShowListing, error)
	CreateShow(ctx context.Context, sh *listings.Show) repository.Outcome
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
	r.GET("/shows", h.List)
	r.GET("/shows/create", h.CreateForm)
	r.POST("/shows/create", h.Create)
}

// GET /shows
func (h *Handler) List(c *gin.Context) {
	shows, err := h.store.ListShows(c.Request.Context())
	if err != nil {
		h.log.Error("list shows", zap.Error(err))
		web.ServerError(c)
		return
	}
	web.Render(c, http.StatusOK, "shows.html", gin.H{"title": "Shows", "shows": shows})
}

// GET /shows/create
func (h *Handler) CreateForm(c *gin.Context) {
	web.Render(c, http.StatusOK, "show_form.html", gin.H{
		"title":         "List a new show",
		"default_start": h.now().Format(startTimeLayout),
	})
}

// POST /shows/create
func (h *Handler) Create(c *gin.Context) {
	var form showForm
	if err := c.ShouldBind(&form); err != nil {
		h.log.Info("invalid show form", zap.Error(err))
		web.AddFlash(c, "An error occurred. Show could not be listed.")
		web.Home(c, http.StatusBadRequest)
		return
	}

	sh := form.show()
	outcome := h.store.CreateShow(c.Request.Context(), &sh)
	metrics.RecordOutcome("create_show", outcome.OK, string(outcome.Kind()))
	if !outcome.OK {
		h.log.Info("show not listed",
			zap.Uint("venue_id", sh.VenueID),
			zap.Uint("artist_id", sh.ArtistID),
			zap.Error(outcome.Err))
	}
	web.AddFlash(c, outcome.Message)
	web.Home(c, forms.OutcomeStatus(outcome))
}
