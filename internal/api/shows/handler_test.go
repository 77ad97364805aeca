package shows_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strconv"
	"strings"
	"testing"
	"time"

	"fyyur/internal/api/shows"
	"fyyur/internal/app/http/middleware"
	"fyyur/internal/domain/listings"
	"fyyur/internal/repository"
	"fyyur/internal/testdb"
	"fyyur/internal/web"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

var ctx = context.Background()

type fixture struct {
	r        *gin.Engine
	store    *repository.Store
	venueID  uint
	artistID uint
}

func newFixture(t *testing.T) fixture {
	t.Helper()
	gin.SetMode(gin.TestMode)

	store := repository.NewStore(testdb.Open(t))
	r := gin.New()
	require.NoError(t, web.Install(r))
	r.Use(web.Sessions([]byte("0123456789abcdef0123456789abcdef")))
	r.Use(middleware.SanitizeFormInput())
	shows.NewHandler(store, zap.NewNop()).Register(r)

	v := store.CreateVenue(ctx, &listings.Venue{Name: "The Musical Hop", City: "San Francisco", State: "CA", Address: "1015 Folsom Street"})
	require.True(t, v.OK)
	a := store.CreateArtist(ctx, &listings.Artist{Name: "Guns N Petals", City: "San Francisco", State: "CA"})
	require.True(t, a.OK)
	return fixture{r: r, store: store, venueID: v.ID, artistID: a.ID}
}

func (f fixture) post(form url.Values) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, "/shows/create", strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	w := httptest.NewRecorder()
	f.r.ServeHTTP(w, req)
	return w
}

func id(n uint) string { return strconv.FormatUint(uint64(n), 10) }

func TestCreateAndList(t *testing.T) {
	f := newFixture(t)

	w := f.post(url.Values{
		"venue_id":   {id(f.venueID)},
		"artist_id":  {id(f.artistID)},
		"start_time": {"2035-04-01 20:00:00"},
	})
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Show was successfully listed!")

	listed, err := f.store.ListShows(ctx)
	require.NoError(t, err)
	require.Len(t, listed, 1)
	want := time.Date(2035, 4, 1, 20, 0, 0, 0, time.Local)
	assert.True(t, want.Equal(listed[0].StartTime), "got %s", listed[0].StartTime)

	rec := httptest.NewRecorder()
	f.r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/shows", nil))
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Guns N Petals")
	assert.Contains(t, rec.Body.String(), "The Musical Hop")
}

func TestCreateUnknownVenue(t *testing.T) {
	f := newFixture(t)

	w := f.post(url.Values{
		"venue_id":   {"999"},
		"artist_id":  {id(f.artistID)},
		"start_time": {"2035-04-01 20:00:00"},
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "An error occurred. Show could not be listed.")

	listed, err := f.store.ListShows(ctx)
	require.NoError(t, err)
	assert.Empty(t, listed)
}

func TestCreateMalformedInput(t *testing.T) {
	f := newFixture(t)

	w := f.post(url.Values{"venue_id": {"abc"}, "artist_id": {id(f.artistID)}, "start_time": {"tomorrow"}})
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "Show could not be listed.")
}

func TestCreateFormHasDefaultStart(t *testing.T) {
	f := newFixture(t)

	rec := httptest.NewRecorder()
	f.r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/shows/create", nil))
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `name="start_time" value="`)
}
