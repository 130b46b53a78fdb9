package catalog

import (
	"net/url"
	"strconv"
	"strings"

	"travelogues/internal/httpx"
)

const defaultPageSize = 20

type searchBounds struct {
	TravelDateMin *int `param:"traveldate-min" validate:"omitempty,gte=0,lte=9999"`
	TravelDateMax *int `param:"traveldate-max" validate:"omitempty,gte=0,lte=9999"`
}

type pageParams struct {
	Page     int `param:"page" validate:"gte=1"`
	PageSize int `param:"page_size" validate:"gte=1,lte=100"`
}

// ParseSearchQuery reads the search parameters from a query string. Empty
// parameters mean the field is not searched.
func ParseSearchQuery(values url.Values) (SearchQuery, []httpx.ErrorDetail) {
	q := SearchQuery{
		Title:       values.Get("title"),
		Summary:     values.Get("summary"),
		Traveler:    values.Get("traveler"),
		Nationality: values.Get("nationality"),
		Gender:      values.Get("gender"),
		Roles:       values["role"],
		Readable:    values.Get("readable") != "",
	}
	q.Dates.IncludeUnknown = values.Get("include-unknown") == "on"

	var details []httpx.ErrorDetail
	var bounds searchBounds
	for _, p := range []struct {
		name string
		dst  **int
	}{
		{"traveldate-min", &bounds.TravelDateMin},
		{"traveldate-max", &bounds.TravelDateMax},
	} {
		v, ok, err := optionalInt(values, p.name)
		if err != nil {
			details = append(details, httpx.ErrorDetail{Field: p.name, Message: p.name + " must be a whole year"})
			continue
		}
		if ok {
			*p.dst = &v
		}
	}
	if details != nil {
		return SearchQuery{}, details
	}
	if details = httpx.ValidateStruct(bounds); details != nil {
		return SearchQuery{}, details
	}

	q.Dates.Min = bounds.TravelDateMin
	q.Dates.Max = bounds.TravelDateMax
	return q, nil
}

// ParsePage reads page and page_size. Without either parameter the whole
// listing is selected.
func ParsePage(values url.Values) (Page, []httpx.ErrorDetail) {
	if values.Get("page") == "" && values.Get("page_size") == "" {
		return Page{}, nil
	}

	p := pageParams{Page: 1, PageSize: defaultPageSize}
	var details []httpx.ErrorDetail
	if v, ok, err := optionalInt(values, "page"); err != nil {
		details = append(details, httpx.ErrorDetail{Field: "page", Message: "page must be an integer"})
	} else if ok {
		p.Page = v
	}
	if v, ok, err := optionalInt(values, "page_size"); err != nil {
		details = append(details, httpx.ErrorDetail{Field: "page_size", Message: "page_size must be an integer"})
	} else if ok {
		p.PageSize = v
	}
	if details != nil {
		return Page{}, details
	}
	if details = httpx.ValidateStruct(p); details != nil {
		return Page{}, details
	}
	return Page{Number: p.Page, Size: p.PageSize}, nil
}

func optionalInt(values url.Values, name string) (int, bool, error) {
	raw := strings.TrimSpace(values.Get(name))
	if raw == "" {
		return 0, false, nil
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return 0, false, err
	}
	return v, true, nil
}
