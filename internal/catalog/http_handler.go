package catalog

import (
	"net/http"
	"strconv"

	"github.com/cockroachdb/errors"

	"travelogues/internal/httpx"
)

type HTTPHandler struct {
	svc *Service
}

func NewHTTPHandler(svc *Service) *HTTPHandler {
	return &HTTPHandler{svc: svc}
}

// GetPublication handles GET /api/publications/{id}
// @Summary Get publication
// @Description Retrieve a publication and every traveler who contributed to it
// @Tags publications
// @Produce json
// @Param id path int true "Publication ID"
// @Success 200 {object} Publication
// @Failure 404 {object} httpx.ErrorResponse
// @Failure 500 {object} httpx.ErrorResponse
// @Router /api/publications/{id} [get]
func (h *HTTPHandler) GetPublication(w http.ResponseWriter, r *http.Request) {
	rawID := r.PathValue("id")
	id, err := strconv.ParseInt(rawID, 10, 64)
	if err != nil {
		notFound(w, r, rawID)
		return
	}

	pub, err := h.svc.GetPublication(r.Context(), id)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			notFound(w, r, rawID)
			return
		}
		httpx.InternalError(w, r, err)
		return
	}

	httpx.JSON(w, r, http.StatusOK, pub)
}

func notFound(w http.ResponseWriter, r *http.Request, id string) {
	httpx.JSONError(w, r, http.StatusNotFound, "Publication ID "+id+" doesn't exist", nil)
}

// ListPublications handles GET /api/publications
// @Summary List publications
// @Description Publications ordered by title, each with its travelers
// @Tags publications
// @Produce json
// @Param page query int false "Page number"
// @Param page_size query int false "Items per page (max 100)"
// @Success 200 {array} PublicationListItem
// @Header 200 {int} X-Total-Count "Number of publications"
// @Failure 400 {object} httpx.ErrorResponse
// @Failure 500 {object} httpx.ErrorResponse
// @Router /api/publications [get]
func (h *HTTPHandler) ListPublications(w http.ResponseWriter, r *http.Request) {
	page, details := ParsePage(r.URL.Query())
	if details != nil {
		httpx.JSONError(w, r, http.StatusBadRequest, "Invalid pagination parameters", details)
		return
	}

	pubs, total, err := h.svc.ListPublications(r.Context(), page)
	if err != nil {
		httpx.InternalError(w, r, err)
		return
	}

	w.Header().Set("X-Total-Count", strconv.Itoa(total))
	httpx.JSON(w, r, http.StatusOK, pubs)
}

// ListDecades handles GET /api/decades
// @Summary List decades
// @Description Publications grouped by the decade their travels start in; unknown decade first
// @Tags publications
// @Produce json
// @Success 200 {array} Decade
// @Failure 500 {object} httpx.ErrorResponse
// @Router /api/decades [get]
func (h *HTTPHandler) ListDecades(w http.ResponseWriter, r *http.Request) {
	decades, err := h.svc.ListDecades(r.Context())
	if err != nil {
		httpx.InternalError(w, r, err)
		return
	}
	httpx.JSON(w, r, http.StatusOK, decades)
}

// ListTravelers handles GET /api/travelers
// @Summary List travelers
// @Description Travelers ordered by name with their publications
// @Tags travelers
// @Produce json
// @Success 200 {array} TravelerListItem
// @Failure 500 {object} httpx.ErrorResponse
// @Router /api/travelers [get]
func (h *HTTPHandler) ListTravelers(w http.ResponseWriter, r *http.Request) {
	travelers, err := h.svc.ListTravelers(r.Context())
	if err != nil {
		httpx.InternalError(w, r, err)
		return
	}
	httpx.JSON(w, r, http.StatusOK, travelers)
}

// SearchPageData handles GET /api/searchpagedata
// @Summary Search form facets
// @Description Author roles, genders and nationalities offered by the advanced search
// @Tags search
// @Produce json
// @Success 200 {object} SearchPageData
// @Failure 500 {object} httpx.ErrorResponse
// @Router /api/searchpagedata [get]
func (h *HTTPHandler) SearchPageData(w http.ResponseWriter, r *http.Request) {
	data, err := h.svc.SearchPageData(r.Context())
	if err != nil {
		httpx.InternalError(w, r, err)
		return
	}
	httpx.JSON(w, r, http.StatusOK, data)
}

// Search handles GET /api/search
// @Summary Search publications
// @Description Publications matching every given filter, ordered by title
// @Tags search
// @Produce json
// @Param title query string false "Words that must all appear in the title"
// @Param summary query string false "Words that must all appear in the summary"
// @Param traveler query string false "Words that must all appear in a traveler's name"
// @Param nationality query string false "Traveler nationality"
// @Param gender query string false "Traveler gender"
// @Param role query []string false "Contribution roles" collectionFormat(multi)
// @Param traveldate-min query int false "Earliest travel year"
// @Param traveldate-max query int false "Latest travel year"
// @Param include-unknown query string false "\"on\" to include journeys without an end year"
// @Param readable query string false "Non-empty to only return publications with a IIIF manifest"
// @Success 200 {array} SearchResult
// @Failure 400 {object} httpx.ErrorResponse
// @Failure 500 {object} httpx.ErrorResponse
// @Router /api/search [get]
func (h *HTTPHandler) Search(w http.ResponseWriter, r *http.Request) {
	q, details := ParseSearchQuery(r.URL.Query())
	if details != nil {
		httpx.JSONError(w, r, http.StatusBadRequest, "Invalid search parameters", details)
		return
	}

	results, err := h.svc.Search(r.Context(), q)
	if err != nil {
		httpx.InternalError(w, r, err)
		return
	}
	httpx.JSON(w, r, http.StatusOK, results)
}
