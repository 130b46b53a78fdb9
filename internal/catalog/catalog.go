package catalog

import "github.com/cockroachdb/errors"

// Publication is the full record served by the publication detail endpoint.
type Publication struct {
	ID               int64         `json:"id"`
	Title            string        `json:"title"`
	Summary          *string       `json:"summary"`
	TravelDates      *string       `json:"travel_dates"`
	TravelYearMin    *int          `json:"travel_year_min"`
	TravelYearMax    *int          `json:"travel_year_max"`
	Publisher        *string       `json:"publisher"`
	PublicationPlace *string       `json:"publication_place"`
	PublicationDate  *string       `json:"publication_date"`
	PublisherMisc    *string       `json:"publisher_misc"`
	URL              *string       `json:"url"`
	IIIF             *string       `json:"iiif"`
	Travelers        []Contributor `json:"travelers"`
}

// Contributor is a traveler together with the role they played in one
// publication.
type Contributor struct {
	ID          int64   `json:"id"`
	Name        string  `json:"name"`
	Nationality *string `json:"nationality"`
	Gender      *string `json:"gender"`
	Type        string  `json:"type"`
}

type TravelerRef struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
	Type string `json:"type"`
}

type PublicationListItem struct {
	ID        int64         `json:"id"`
	Title     string        `json:"title"`
	Summary   *string       `json:"summary"`
	Travelers []TravelerRef `json:"travelers"`
}

type DecadePublication struct {
	ID            int64         `json:"id"`
	Title         string        `json:"title"`
	Summary       *string       `json:"summary"`
	TravelDates   *string       `json:"travel_dates"`
	TravelYearMin *int          `json:"-"`
	Travelers     []TravelerRef `json:"travelers"`
}

// Decade groups publications whose travels start in the same ten years.
// Decade is nil for publications without a start year.
type Decade struct {
	Decade       *int                `json:"decade"`
	Publications []DecadePublication `json:"publications"`
}

type SearchResult struct {
	ID          int64         `json:"id"`
	Title       string        `json:"title"`
	TravelDates *string       `json:"travel_dates"`
	Travelers   []TravelerRef `json:"travelers"`
}

type PublicationRef struct {
	ID           int64  `json:"id"`
	Title        string `json:"title"`
	Contribution string `json:"contribution"`
}

type TravelerListItem struct {
	ID           int64            `json:"id"`
	Name         string           `json:"name"`
	Nationality  *string          `json:"nationality"`
	Publications []PublicationRef `json:"publications"`
}

// SearchPageData holds the facet values offered by the advanced search form.
type SearchPageData struct {
	AuthorRoles   []string `json:"author_roles"`
	Genders       []string `json:"genders"`
	Nationalities []string `json:"nationalities"`
}

// ErrNotFound is returned when a requested publication does not exist or has
// no contributions.
var ErrNotFound = errors.New("publication not found")
