package web

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"travelogues/internal/catalog"
)

type mockCatalog struct {
	mock.Mock
}

func (m *mockCatalog) GetPublication(ctx context.Context, id int64) (catalog.Publication, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(catalog.Publication), args.Error(1)
}

func (m *mockCatalog) ListPublications(ctx context.Context, page catalog.Page) ([]catalog.PublicationListItem, int, error) {
	args := m.Called(ctx, page)
	if args.Get(0) == nil {
		return nil, 0, args.Error(2)
	}
	return args.Get(0).([]catalog.PublicationListItem), args.Int(1), args.Error(2)
}

func (m *mockCatalog) ListDecades(ctx context.Context) ([]catalog.Decade, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]catalog.Decade), args.Error(1)
}

func (m *mockCatalog) ListTravelers(ctx context.Context) ([]catalog.TravelerListItem, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]catalog.TravelerListItem), args.Error(1)
}

func (m *mockCatalog) SearchPageData(ctx context.Context) (catalog.SearchPageData, error) {
	args := m.Called(ctx)
	return args.Get(0).(catalog.SearchPageData), args.Error(1)
}

func (m *mockCatalog) Search(ctx context.Context, q catalog.SearchQuery) ([]catalog.SearchResult, error) {
	args := m.Called(ctx, q)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]catalog.SearchResult), args.Error(1)
}

func newTestHandler(t *testing.T) (*Handler, *mockCatalog) {
	t.Helper()
	c := new(mockCatalog)
	h, err := NewHandler(c)
	require.NoError(t, err)
	t.Cleanup(func() { c.AssertExpectations(t) })
	return h, c
}

func strPtr(s string) *string { return &s }

func intPtr(v int) *int { return &v }

func TestHome(t *testing.T) {
	h, _ := newTestHandler(t)

	w := httptest.NewRecorder()
	h.Home(w, httptest.NewRequest(http.MethodGet, "/", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "text/html; charset=utf-8", w.Header().Get("Content-Type"))
	assert.Contains(t, w.Body.String(), "<title>Travelogues</title>")
}

func TestPublicationsList(t *testing.T) {
	h, c := newTestHandler(t)
	c.On("ListPublications", mock.Anything, catalog.Page{}).Return([]catalog.PublicationListItem{
		{ID: 1, Title: "Up the <Nile>", Travelers: []catalog.TravelerRef{{ID: 1, Name: "Amelia Edwards", Type: "Author"}}},
	}, 1, nil)

	w := httptest.NewRecorder()
	h.PublicationsList(w, httptest.NewRequest(http.MethodGet, "/publications-list", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	body := w.Body.String()
	assert.Contains(t, body, `href="/publication?id=1"`)
	assert.Contains(t, body, "Up the &lt;Nile&gt;")
	assert.Contains(t, body, "Amelia Edwards (Author)")
}

func TestPublicationsList_Error(t *testing.T) {
	h, c := newTestHandler(t)
	c.On("ListPublications", mock.Anything, catalog.Page{}).Return(nil, 0, errors.New("db error"))

	w := httptest.NewRecorder()
	h.PublicationsList(w, httptest.NewRequest(http.MethodGet, "/publications-list", nil))

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.NotContains(t, w.Body.String(), "db error")
}

func TestTravelersList(t *testing.T) {
	h, c := newTestHandler(t)
	c.On("ListTravelers", mock.Anything).Return([]catalog.TravelerListItem{
		{ID: 1, Name: "Amelia Edwards", Nationality: strPtr("British"), Publications: []catalog.PublicationRef{{ID: 3, Title: "Nile", Contribution: "Author"}}},
		{ID: 2, Name: "Zara", Publications: []catalog.PublicationRef{}},
	}, nil)

	w := httptest.NewRecorder()
	h.TravelersList(w, httptest.NewRequest(http.MethodGet, "/travelers-list", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "British")
	assert.Contains(t, w.Body.String(), "Zara")
}

func TestDecadesList(t *testing.T) {
	h, c := newTestHandler(t)
	c.On("ListDecades", mock.Anything).Return([]catalog.Decade{
		{Decade: nil, Publications: []catalog.DecadePublication{{ID: 5, Title: "Sketches"}}},
		{Decade: intPtr(187), Publications: []catalog.DecadePublication{{ID: 1, Title: "Nile"}}},
	}, nil)

	w := httptest.NewRecorder()
	h.DecadesList(w, httptest.NewRequest(http.MethodGet, "/decades-list", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Unknown decade")
	assert.Contains(t, w.Body.String(), "1870s")
}

func TestPublication(t *testing.T) {
	t.Run("found", func(t *testing.T) {
		h, c := newTestHandler(t)
		c.On("GetPublication", mock.Anything, int64(1)).Return(catalog.Publication{
			ID:    1,
			Title: "A Thousand Miles up the Nile",
			IIIF:  strPtr("https://iiif.example.org/m.json"),
			Travelers: []catalog.Contributor{
				{ID: 1, Name: "Amelia Edwards", Gender: strPtr("Female"), Type: "Author"},
			},
		}, nil)

		w := httptest.NewRecorder()
		h.Publication(w, httptest.NewRequest(http.MethodGet, "/publication?id=1", nil))

		assert.Equal(t, http.StatusOK, w.Code)
		body := w.Body.String()
		assert.Contains(t, body, "<title>A Thousand Miles up the Nile · Travelogues</title>")
		assert.Contains(t, body, "https://iiif.example.org/m.json")
		assert.Contains(t, body, "Amelia Edwards (Author), Female")
	})

	t.Run("not found", func(t *testing.T) {
		h, c := newTestHandler(t)
		c.On("GetPublication", mock.Anything, int64(9)).Return(catalog.Publication{}, catalog.ErrNotFound)

		w := httptest.NewRecorder()
		h.Publication(w, httptest.NewRequest(http.MethodGet, "/publication?id=9", nil))

		assert.Equal(t, http.StatusNotFound, w.Code)
		assert.Contains(t, w.Body.String(), "Publication ID 9 doesn&#39;t exist")
	})

	t.Run("missing id", func(t *testing.T) {
		h, _ := newTestHandler(t)

		w := httptest.NewRecorder()
		h.Publication(w, httptest.NewRequest(http.MethodGet, "/publication", nil))

		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}

func TestSearch(t *testing.T) {
	facets := catalog.SearchPageData{
		AuthorRoles:   []string{"Author", "Illustrator"},
		Genders:       []string{"Female", "Male"},
		Nationalities: []string{"British"},
	}

	t.Run("form only", func(t *testing.T) {
		h, c := newTestHandler(t)
		c.On("SearchPageData", mock.Anything).Return(facets, nil)

		w := httptest.NewRecorder()
		h.Search(w, httptest.NewRequest(http.MethodGet, "/search", nil))

		assert.Equal(t, http.StatusOK, w.Code)
		body := w.Body.String()
		assert.Contains(t, body, `value="Illustrator"`)
		assert.Contains(t, body, `<option value="British">British</option>`)
		assert.NotContains(t, body, "results")
	})

	t.Run("with results", func(t *testing.T) {
		h, c := newTestHandler(t)
		c.On("SearchPageData", mock.Anything).Return(facets, nil)
		c.On("Search", mock.Anything, mock.MatchedBy(func(q catalog.SearchQuery) bool {
			return q.Title == "Nile" && len(q.Roles) == 1 && q.Roles[0] == "Author"
		})).Return([]catalog.SearchResult{
			{ID: 1, Title: "A Thousand Miles up the Nile", Travelers: []catalog.TravelerRef{{ID: 1, Name: "Amelia Edwards", Type: "Author"}}},
		}, nil)

		w := httptest.NewRecorder()
		h.Search(w, httptest.NewRequest(http.MethodGet, "/search?title=Nile&role=Author", nil))

		assert.Equal(t, http.StatusOK, w.Code)
		body := w.Body.String()
		assert.Contains(t, body, "1 result<")
		assert.Contains(t, body, `value="Author" checked`)
		assert.Contains(t, body, "A Thousand Miles up the Nile")
	})

	t.Run("invalid year", func(t *testing.T) {
		h, c := newTestHandler(t)
		c.On("SearchPageData", mock.Anything).Return(facets, nil)

		w := httptest.NewRecorder()
		h.Search(w, httptest.NewRequest(http.MethodGet, "/search?traveldate-min=soon", nil))

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Contains(t, w.Body.String(), "traveldate-min must be a whole year")
	})
}

func TestNotFound(t *testing.T) {
	h, _ := newTestHandler(t)

	t.Run("page", func(t *testing.T) {
		w := httptest.NewRecorder()
		h.NotFound(w, httptest.NewRequest(http.MethodGet, "/nowhere", nil))

		assert.Equal(t, http.StatusNotFound, w.Code)
		assert.Contains(t, w.Body.String(), "Page not found")
	})

	t.Run("api", func(t *testing.T) {
		w := httptest.NewRecorder()
		h.NotFound(w, httptest.NewRequest(http.MethodGet, "/api/nowhere", nil))

		assert.Equal(t, http.StatusNotFound, w.Code)
		assert.JSONEq(t, `{"status":404,"message":"Not found"}`, w.Body.String())
	})
}

func TestStatic(t *testing.T) {
	w := httptest.NewRecorder()
	Static().ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/css/style.css", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Header().Get("Content-Type"), "text/css")
}
