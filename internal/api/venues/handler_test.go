package venues_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strconv"
	"strings"
	"testing"
	"time"

	"fyyur/internal/api/venues"
	"fyyur/internal/app/http/middleware"
	"fyyur/internal/domain/listings"
	"fyyur/internal/repository"
	"fyyur/internal/testdb"
	"fyyur/internal/web"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/datatypes"
)

func newServer(t *testing.T) (*gin.Engine, *repository.Store) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	store := repository.NewStore(testdb.Open(t))
	r := gin.New()
	require.NoError(t, web.Install(r))
	r.Use(web.Sessions([]byte("0123456789abcdef0123456789abcdef")))
	r.Use(middleware.SanitizeFormInput())
	venues.NewHandler(store, zap.NewNop()).Register(r)
	return r, store
}

func do(r http.Handler, method, target string, form url.Values) *httptest.ResponseRecorder {
	var req *http.Request
	if form != nil {
		req = httptest.NewRequest(method, target, strings.NewReader(form.Encode()))
		req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	} else {
		req = httptest.NewRequest(method, target, nil)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func seedVenue(t *testing.T, s *repository.Store, name, city, state string) uint {
	t.Helper()
	out := s.CreateVenue(context.Background(), &listings.Venue{
		Name:    name,
		Genres:  datatypes.JSONSlice[string]{"Jazz"},
		City:    city,
		State:   state,
		Address: "1 Main Street",
	})
	require.True(t, out.OK, out.Message)
	return out.ID
}

func TestListGroupsVenuesByArea(t *testing.T) {
	r, store := newServer(t)
	seedVenue(t, store, "The Musical Hop", "San Francisco", "CA")
	seedVenue(t, store, "The Dueling Pianos Bar", "New York", "NY")

	w := do(r, http.MethodGet, "/venues", nil)
	require.Equal(t, http.StatusOK, w.Code)
	body := w.Body.String()
	assert.Contains(t, body, "San Francisco, CA")
	assert.Contains(t, body, "New York, NY")
	assert.Contains(t, body, "The Musical Hop")
}

func TestSearchRendersCount(t *testing.T) {
	r, store := newServer(t)
	seedVenue(t, store, "The Musical Hop", "San Francisco", "CA")
	seedVenue(t, store, "Park Square Live Music & Coffee", "San Francisco", "CA")

	w := do(r, http.MethodPost, "/venues/search", url.Values{"search_term": {"music"}})
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"music": 2`)
}

func TestCreateListsVenueAndFlashes(t *testing.T) {
	r, store := newServer(t)

	w := do(r, http.MethodPost, "/venues/create", url.Values{
		"name":           {"The <b>Musical</b> Hop"},
		"city":           {"San Francisco"},
		"state":          {"CA"},
		"address":        {"1015 Folsom Street"},
		"genres":         {"Jazz", "Swing"},
		"seeking_talent": {"true"},
	})
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Venue The Musical Hop was successfully listed!")

	res, err := store.SearchVenues(context.Background(), "")
	require.NoError(t, err)
	require.Equal(t, 1, res.Count)

	v, err := store.GetVenue(context.Background(), res.Data[0].ID)
	require.NoError(t, err)
	assert.Equal(t, "The Musical Hop", v.Name)
	assert.Equal(t, []string{"Jazz", "Swing"}, []string(v.Genres))
	assert.True(t, v.SeekingTalent)
}

func TestCreateMissingRequiredField(t *testing.T) {
	r, store := newServer(t)

	w := do(r, http.MethodPost, "/venues/create", url.Values{"name": {"Nowhere"}, "city": {"Oslo"}})
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "An error occurred. Venue Nowhere could not be listed.")

	res, err := store.SearchVenues(context.Background(), "")
	require.NoError(t, err)
	assert.Zero(t, res.Count)
}

func TestShowRendersDetail(t *testing.T) {
	r, store := newServer(t)
	id := seedVenue(t, store, "The Musical Hop", "San Francisco", "CA")

	w := do(r, http.MethodGet, "/venues/"+itoa(id), nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "0 Upcoming Shows")
	assert.Contains(t, w.Body.String(), "0 Past Shows")
}

func TestShowMissingVenueIs404(t *testing.T) {
	r, _ := newServer(t)

	assert.Equal(t, http.StatusNotFound, do(r, http.MethodGet, "/venues/99", nil).Code)
	assert.Equal(t, http.StatusNotFound, do(r, http.MethodGet, "/venues/abc", nil).Code)
}

func TestEditAppliesOnlyPostedFields(t *testing.T) {
	r, store := newServer(t)
	id := seedVenue(t, store, "The Musical Hop", "San Francisco", "CA")

	w := do(r, http.MethodPost, "/venues/"+itoa(id)+"/edit", url.Values{"phone": {"123-123-1234"}})
	require.Equal(t, http.StatusFound, w.Code)
	assert.Equal(t, "/venues/"+itoa(id), w.Header().Get("Location"))

	v, err := store.GetVenue(context.Background(), id)
	require.NoError(t, err)
	assert.Equal(t, "123-123-1234", v.Phone)
	assert.Equal(t, "The Musical Hop", v.Name)
	assert.Equal(t, "1 Main Street", v.Address)
	assert.Equal(t, []string{"Jazz"}, []string(v.Genres))
}

func TestEditFlashSurvivesRedirect(t *testing.T) {
	r, store := newServer(t)
	id := seedVenue(t, store, "The Musical Hop", "San Francisco", "CA")

	w := do(r, http.MethodPost, "/venues/"+itoa(id)+"/edit", url.Values{"name": {"The Hop"}})
	require.Equal(t, http.StatusFound, w.Code)
	cookies := w.Result().Cookies()
	require.NotEmpty(t, cookies)

	req := httptest.NewRequest(http.MethodGet, w.Header().Get("Location"), nil)
	for _, ck := range cookies {
		req.AddCookie(ck)
	}
	next := httptest.NewRecorder()
	r.ServeHTTP(next, req)
	require.Equal(t, http.StatusOK, next.Code)
	assert.Contains(t, next.Body.String(), "Venue The Hop was successfully edited!")
}

func TestEditFormPrefilled(t *testing.T) {
	r, store := newServer(t)
	id := seedVenue(t, store, "The Musical Hop", "San Francisco", "CA")

	w := do(r, http.MethodGet, "/venues/"+itoa(id)+"/edit", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `value="The Musical Hop"`)
	assert.Contains(t, w.Body.String(), `<option value="Jazz" selected>`)

	assert.Equal(t, http.StatusNotFound, do(r, http.MethodGet, "/venues/42/edit", nil).Code)
}

func TestDelete(t *testing.T) {
	r, store := newServer(t)
	id := seedVenue(t, store, "The Musical Hop", "San Francisco", "CA")

	w := do(r, http.MethodDelete, "/venues/"+itoa(id), nil)
	require.Equal(t, http.StatusOK, w.Code)
	var body struct {
		Success bool   `json:"success"`
		Message string `json:"message"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.True(t, body.Success)
	assert.Equal(t, "The Musical Hop has been successfully deleted!", body.Message)

	w = do(r, http.MethodDelete, "/venues/"+itoa(id), nil)
	require.Equal(t, http.StatusNotFound, w.Code)
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.False(t, body.Success)
}

func TestDeleteVenueWithShowsFails(t *testing.T) {
	r, store := newServer(t)
	id := seedVenue(t, store, "The Musical Hop", "San Francisco", "CA")
	artist := store.CreateArtist(context.Background(), &listings.Artist{Name: "Guns N Petals", City: "San Francisco", State: "CA"})
	require.True(t, artist.OK)
	show := store.CreateShow(context.Background(), &listings.Show{VenueID: id, ArtistID: artist.ID, StartTime: time.Now()})
	require.True(t, show.OK)

	w := do(r, http.MethodDelete, "/venues/"+itoa(id), nil)
	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Contains(t, w.Body.String(), `"success":false`)
}

func itoa(id uint) string {
	return strconv.FormatUint(uint64(id), 10)
}
