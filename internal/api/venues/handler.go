package venues

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

// Store is the slice of the repository the venue pages use.
type Store interface {
	GroupVenuesByLocation(ctx context.Context) ([]repository.Area, error)
	SearchVenues(ctx context.Context, term string) (repository.SearchResult, error)
	VenueDetail(ctx context.Context, id uint, now time.Time) (*repository.VenueDetail, error)
	GetVenue(ctx context.Context, id uint) (*listings.Venue, error)
	CreateVenue(ctx context.Context, v *listings.Venue) repository.Outcome
	UpdateVenue(ctx context.Context, id uint, in listings.Venue, fields repository.FieldSet) repository.Outcome
	DeleteVenue(ctx context.Context, id uint) repository.Outcome
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
	r.GET("/venues", h.List)
	r.POST("/venues/search", h.Search)
	r.GET("/venues/create", h.CreateForm)
	r.POST("/venues/create", h.Create)
	r.GET("/venues/:id", h.Show)
	r.GET("/venues/:id/edit", h.EditForm)
	r.POST("/venues/:id/edit", h.Edit)
	r.DELETE("/venues/:id", h.Delete)
}

// GET /venues
func (h *Handler) List(c *gin.Context) {
	areas, err := h.store.GroupVenuesByLocation(c.Request.Context())
	if err != nil {
		h.fail(c, "group venues", err)
		return
	}
	web.Render(c, http.StatusOK, "venues.html", gin.H{"title": "Venues", "areas": areas})
}

// POST /venues/search
func (h *Handler) Search(c *gin.Context) {
	term := c.PostForm("search_term")
	results, err := h.store.SearchVenues(c.Request.Context(), term)
	if err != nil {
		h.fail(c, "search venues", err)
		return
	}
	web.Render(c, http.StatusOK, "search.html", gin.H{
		"title":       "Venue Search",
		"kind":        "venues",
		"search_term": term,
		"results":     results,
	})
}

// GET /venues/:id
func (h *Handler) Show(c *gin.Context) {
	id, ok := forms.ID(c)
	if !ok {
		web.NotFound(c)
		return
	}
	venue, err := h.store.VenueDetail(c.Request.Context(), id, h.now())
	if err != nil {
		h.fail(c, "venue detail", err)
		return
	}
	web.Render(c, http.StatusOK, "show_venue.html", gin.H{"title": venue.Name, "venue": venue})
}

// GET /venues/create
func (h *Handler) CreateForm(c *gin.Context) {
	h.renderForm(c, listings.Venue{}, "/venues/create", "List a new venue", "Create Venue")
}

// POST /venues/create
func (h *Handler) Create(c *gin.Context) {
	var form venueForm
	if err := c.ShouldBind(&form); err != nil {
		h.log.Info("invalid venue form", zap.Error(err))
		web.AddFlash(c, "An error occurred. Venue "+form.Name+" could not be listed.")
		web.Home(c, http.StatusBadRequest)
		return
	}

	v := form.venue()
	outcome := h.store.CreateVenue(c.Request.Context(), &v)
	h.record(c, "create_venue", outcome)
	web.AddFlash(c, outcome.Message)
	web.Home(c, forms.OutcomeStatus(outcome))
}

// GET /venues/:id/edit
func (h *Handler) EditForm(c *gin.Context) {
	id, ok := forms.ID(c)
	if !ok {
		web.NotFound(c)
		return
	}
	v, err := h.store.GetVenue(c.Request.Context(), id)
	if err != nil {
		h.fail(c, "get venue", err)
		return
	}
	h.renderForm(c, *v, c.Request.URL.Path, "Edit venue "+v.Name, "Save Venue")
}

// POST /venues/:id/edit
func (h *Handler) Edit(c *gin.Context) {
	id, ok := forms.ID(c)
	if !ok {
		web.NotFound(c)
		return
	}
	detail := "/venues/" + c.Param("id")

	var form venueForm
	if err := c.ShouldBind(&form); err != nil {
		h.log.Info("invalid venue form", zap.Uint("venue_id", id), zap.Error(err))
		web.AddFlash(c, "An error occurred. Venue could not be edited.")
		web.Redirect(c, detail)
		return
	}

	fields := forms.PostedFields(c, venueFields...)
	outcome := h.store.UpdateVenue(c.Request.Context(), id, form.venue(), fields)
	h.record(c, "update_venue", outcome)
	if outcome.Kind() == repository.KindNotFound {
		web.NotFound(c)
		return
	}
	web.AddFlash(c, outcome.Message)
	web.Redirect(c, detail)
}

// DELETE /venues/:id
func (h *Handler) Delete(c *gin.Context) {
	id, ok := forms.ID(c)
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"success": false, "message": "Venue not found."})
		return
	}
	outcome := h.store.DeleteVenue(c.Request.Context(), id)
	h.record(c, "delete_venue", outcome)
	web.AddFlash(c, outcome.Message)
	web.JSON(c, forms.OutcomeStatus(outcome), gin.H{"success": outcome.OK, "message": outcome.Message})
}

func (h *Handler) renderForm(c *gin.Context, v listings.Venue, action, title, submit string) {
	web.Render(c, http.StatusOK, "venue_form.html", gin.H{
		"title":  title,
		"action": action,
		"submit": submit,
		"venue":  v,
		"states": web.States,
		"genres": web.Genres,
	})
}

func (h *Handler) record(c *gin.Context, op string, o repository.Outcome) {
	metrics.RecordOutcome(op, o.OK, string(o.Kind()))
	if o.OK {
		return
	}
	log := h.log.Info
	if o.Kind() == repository.KindPersistence {
		log = h.log.Error
	}
	log("venue change failed", zap.String("op", op), zap.Uint("venue_id", o.ID), zap.Error(o.Err))
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
