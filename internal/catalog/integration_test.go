package catalog

import (
	"context"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"testing"

	"github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"travelogues/internal/platform/sqlite"
)

// newSampleService migrates and seeds a temporary archive, then reopens it
// read-only the way the server does.
func newSampleService(t *testing.T) *Service {
	t.Helper()
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "archive.db")

	rw, err := sqlite.Open(ctx, path, sqlite.Options{})
	require.NoError(t, err)
	require.NoError(t, sqlite.Migrate(ctx, rw))
	require.NoError(t, sqlite.Seed(ctx, rw, sqlite.SampleArchive()))
	require.NoError(t, rw.Close())

	db, err := sqlite.Open(ctx, path, sqlite.Options{ReadOnly: true})
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	return NewService(NewSQLiteRepo(db))
}

func TestIntegration_SearchByTitle(t *testing.T) {
	svc := newSampleService(t)
	handler := NewHTTPHandler(svc)

	w := httptest.NewRecorder()
	handler.Search(w, httptest.NewRequest(http.MethodGet, "/api/search?title=Nile", nil))
	require.Equal(t, http.StatusOK, w.Code)

	var results []SearchResult
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &results))

	require.Len(t, results, 2)
	for i, r := range results {
		assert.Contains(t, strings.ToLower(r.Title), "nile")
		assert.NotEmpty(t, r.Travelers)
		if i > 0 {
			assert.LessOrEqual(t, strings.ToLower(results[i-1].Title), strings.ToLower(r.Title))
		}
	}
	assert.Equal(t, "A Thousand Miles up the Nile", results[0].Title)
	assert.Len(t, results[0].Travelers, 2)
}

func TestIntegration_SearchFilters(t *testing.T) {
	svc := newSampleService(t)
	ctx := context.Background()

	ids := func(results []SearchResult) []int64 {
		out := make([]int64, len(results))
		for i, r := range results {
			out[i] = r.ID
		}
		return out
	}

	tests := []struct {
		name string
		q    SearchQuery
		want []int64
	}{
		{name: "summary", q: SearchQuery{Summary: "temples"}, want: []int64{3}},
		{name: "traveler name", q: SearchQuery{Traveler: "Duff Gordon"}, want: []int64{2}},
		{name: "nationality with marker", q: SearchQuery{Nationality: "Swiss"}, want: []int64{3}},
		{name: "gender", q: SearchQuery{Gender: "Male"}, want: []int64{1, 4, 5, 3}},
		{name: "role", q: SearchQuery{Roles: []string{"Illustrator"}}, want: []int64{1, 5}},
		{name: "readable", q: SearchQuery{Readable: true}, want: []int64{1}},
		{name: "quote injection is literal", q: SearchQuery{Title: `Nile" OR "Egypt`}, want: []int64{}},
		{
			name: "date range with unknown end",
			q:    SearchQuery{Dates: DateRange{Min: intPtr(1840), Max: intPtr(1880), IncludeUnknown: true}},
			want: []int64{1, 2, 4},
		},
		{
			name: "date range without unknown end",
			q:    SearchQuery{Dates: DateRange{Min: intPtr(1840), Max: intPtr(1880)}},
			want: []int64{1, 2},
		},
		{
			name: "decade-only start",
			q:    SearchQuery{Dates: DateRange{Min: intPtr(1815)}},
			want: []int64{1, 2, 4, 3},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			results, err := svc.Search(ctx, tt.q)
			require.NoError(t, err)
			assert.Equal(t, tt.want, ids(results))
		})
	}
}

func TestIntegration_Listings(t *testing.T) {
	svc := newSampleService(t)
	ctx := context.Background()

	t.Run("publications ordered by trimmed title", func(t *testing.T) {
		pubs, total, err := svc.ListPublications(ctx, Page{})
		require.NoError(t, err)

		assert.Equal(t, 5, total)
		titles := make([]string, len(pubs))
		for i, p := range pubs {
			titles[i] = p.Title
		}
		assert.Equal(t, []string{
			"A Thousand Miles up the Nile",
			"letters from Egypt",
			"Nile Notes of a Howadji",
			"Sketches of the Desert",
			"Travels in Nubia",
		}, titles)
	})

	t.Run("decades", func(t *testing.T) {
		decades, err := svc.ListDecades(ctx)
		require.NoError(t, err)

		require.Len(t, decades, 5)
		assert.Nil(t, decades[0].Decade)
		got := []int{}
		for _, d := range decades[1:] {
			got = append(got, *d.Decade)
		}
		assert.Equal(t, []int{181, 184, 186, 187}, got)
	})

	t.Run("travelers include those without publications", func(t *testing.T) {
		travelers, err := svc.ListTravelers(ctx)
		require.NoError(t, err)

		require.Len(t, travelers, 6)
		last := travelers[len(travelers)-1]
		assert.Equal(t, "Zara Unpublished", last.Name)
		assert.NotNil(t, last.Publications)
		assert.Empty(t, last.Publications)
	})

	t.Run("search page data", func(t *testing.T) {
		data, err := svc.SearchPageData(ctx)
		require.NoError(t, err)

		assert.Equal(t, []string{"Author", "Illustrator"}, data.AuthorRoles)
		assert.Equal(t, []string{"Female", "Male"}, data.Genders)
		assert.Equal(t, []string{"American", "British", "French", "Swiss"}, data.Nationalities)
	})

	t.Run("publication detail", func(t *testing.T) {
		pub, err := svc.GetPublication(ctx, 1)
		require.NoError(t, err)

		assert.Len(t, pub.Travelers, 2)
		assert.Equal(t, "Female", *pub.Travelers[0].Gender)

		_, err = svc.GetPublication(ctx, 999)
		assert.ErrorIs(t, err, ErrNotFound)
	})
}
