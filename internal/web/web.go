// Package web serves the server-rendered pages of the catalog.
package web

import (
	"bytes"
	"context"
	"embed"
	"html/template"
	"io/fs"
	"net/http"
	"slices"
	"strconv"
	"strings"

	"github.com/cockroachdb/errors"

	"travelogues/internal/catalog"
	"travelogues/internal/httpx"
	"travelogues/internal/logging"
)

//go:embed templates/*.html
var templateFS embed.FS

//go:embed static
var staticFS embed.FS

// Catalog is the subset of catalog.Service the pages read from.
type Catalog interface {
	GetPublication(ctx context.Context, id int64) (catalog.Publication, error)
	ListPublications(ctx context.Context, page catalog.Page) ([]catalog.PublicationListItem, int, error)
	ListDecades(ctx context.Context) ([]catalog.Decade, error)
	ListTravelers(ctx context.Context) ([]catalog.TravelerListItem, error)
	SearchPageData(ctx context.Context) (catalog.SearchPageData, error)
	Search(ctx context.Context, q catalog.SearchQuery) ([]catalog.SearchResult, error)
}

var pageNames = []string{
	"home",
	"publications-list",
	"travelers-list",
	"decades-list",
	"publication",
	"search",
	"404",
	"error",
}

type Handler struct {
	catalog Catalog
	pages   map[string]*template.Template
}

var funcs = template.FuncMap{
	"decadeLabel": func(d *int) string {
		if d == nil {
			return "Unknown decade"
		}
		return strconv.Itoa(*d) + "0s"
	},
	"hasRole": func(roles []string, role string) bool {
		return slices.Contains(roles, role)
	},
}

// NewHandler parses every page template up front so a broken template fails
// at startup.
func NewHandler(c Catalog) (*Handler, error) {
	h := &Handler{catalog: c, pages: make(map[string]*template.Template, len(pageNames))}
	for _, name := range pageNames {
		t, err := template.New(name).Funcs(funcs).ParseFS(templateFS,
			"templates/layout.html",
			"templates/partials.html",
			"templates/"+name+".html",
		)
		if err != nil {
			return nil, errors.Wrapf(err, "parse template %s", name)
		}
		h.pages[name] = t
	}
	return h, nil
}

// Static serves the embedded stylesheets under /css/.
func Static() http.Handler {
	sub, err := fs.Sub(staticFS, "static")
	if err != nil {
		panic(err)
	}
	return http.FileServerFS(sub)
}

func (h *Handler) render(w http.ResponseWriter, r *http.Request, status int, name string, data any) {
	var buf bytes.Buffer
	if err := h.pages[name].ExecuteTemplate(&buf, "layout", data); err != nil {
		logging.Ctx(r.Context()).Error().Err(err).Str("template", name).Msg("render failed")
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	_, _ = buf.WriteTo(w)
}

func (h *Handler) serverError(w http.ResponseWriter, r *http.Request, err error) {
	logging.Ctx(r.Context()).Error().Err(err).Str("path", r.URL.Path).Msg("page failed")
	h.render(w, r, http.StatusInternalServerError, "error", nil)
}

// NotFound answers unmatched routes: JSON under /api/, the 404 page
// elsewhere.
func (h *Handler) NotFound(w http.ResponseWriter, r *http.Request) {
	if strings.HasPrefix(r.URL.Path, "/api/") {
		httpx.JSONError(w, r, http.StatusNotFound, "Not found", nil)
		return
	}
	h.render(w, r, http.StatusNotFound, "404", "")
}

func (h *Handler) Home(w http.ResponseWriter, r *http.Request) {
	h.render(w, r, http.StatusOK, "home", nil)
}

func (h *Handler) PublicationsList(w http.ResponseWriter, r *http.Request) {
	pubs, _, err := h.catalog.ListPublications(r.Context(), catalog.Page{})
	if err != nil {
		h.serverError(w, r, err)
		return
	}
	h.render(w, r, http.StatusOK, "publications-list", pubs)
}

func (h *Handler) TravelersList(w http.ResponseWriter, r *http.Request) {
	travelers, err := h.catalog.ListTravelers(r.Context())
	if err != nil {
		h.serverError(w, r, err)
		return
	}
	h.render(w, r, http.StatusOK, "travelers-list", travelers)
}

func (h *Handler) DecadesList(w http.ResponseWriter, r *http.Request) {
	decades, err := h.catalog.ListDecades(r.Context())
	if err != nil {
		h.serverError(w, r, err)
		return
	}
	h.render(w, r, http.StatusOK, "decades-list", decades)
}

// Publication renders /publication?id=N.
func (h *Handler) Publication(w http.ResponseWriter, r *http.Request) {
	rawID := r.URL.Query().Get("id")
	id, err := strconv.ParseInt(rawID, 10, 64)
	if err != nil {
		h.render(w, r, http.StatusNotFound, "404", "Publication ID "+rawID+" doesn't exist")
		return
	}

	pub, err := h.catalog.GetPublication(r.Context(), id)
	if errors.Is(err, catalog.ErrNotFound) {
		h.render(w, r, http.StatusNotFound, "404", "Publication ID "+rawID+" doesn't exist")
		return
	}
	if err != nil {
		h.serverError(w, r, err)
		return
	}
	h.render(w, r, http.StatusOK, "publication", pub)
}

type searchPage struct {
	Facets   catalog.SearchPageData
	Query    catalog.SearchQuery
	RawMin   string
	RawMax   string
	Searched bool
	Results  []catalog.SearchResult
	Errors   []httpx.ErrorDetail
}

// Search renders the search form and, when the request carries any
// parameters, the matching publications.
func (h *Handler) Search(w http.ResponseWriter, r *http.Request) {
	values := r.URL.Query()
	facets, err := h.catalog.SearchPageData(r.Context())
	if err != nil {
		h.serverError(w, r, err)
		return
	}

	page := searchPage{
		Facets: facets,
		RawMin: values.Get("traveldate-min"),
		RawMax: values.Get("traveldate-max"),
	}
	if len(values) == 0 {
		h.render(w, r, http.StatusOK, "search", page)
		return
	}

	q, details := catalog.ParseSearchQuery(values)
	if details != nil {
		page.Errors = details
		h.render(w, r, http.StatusBadRequest, "search", page)
		return
	}
	page.Query = q

	results, err := h.catalog.Search(r.Context(), q)
	if err != nil {
		h.serverError(w, r, err)
		return
	}
	page.Searched = true
	page.Results = results
	h.render(w, r, http.StatusOK, "search", page)
}
