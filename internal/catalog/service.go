package catalog

import (
	"context"
	"slices"
	"strings"

	"github.com/cockroachdb/errors"
	"golang.org/x/sync/errgroup"

	"travelogues/internal/metrics"
)

// Service provides catalog read operations.
type Service struct {
	repo Repository
}

// NewService creates a new catalog service.
func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// Page selects a window of a listing. A zero Size selects everything.
type Page struct {
	Number int
	Size   int
}

func (p Page) bounds(total int) (int, int) {
	if p.Size <= 0 {
		return 0, total
	}
	start := min((max(p.Number, 1)-1)*p.Size, total)
	return start, min(start+p.Size, total)
}

// SearchQuery is a parsed search request.
type SearchQuery struct {
	Title       string
	Summary     string
	Traveler    string
	Nationality string
	Gender      string
	Roles       []string
	Readable    bool
	Dates       DateRange
}

// GetPublication returns a publication with all of its contributors. The
// record and its contributors are read concurrently.
func (s *Service) GetPublication(ctx context.Context, id int64) (Publication, error) {
	var (
		pub          Publication
		contributors []Contributor
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		pub, err = s.repo.GetPublication(gctx, id)
		return err
	})
	g.Go(func() error {
		var err error
		contributors, err = s.repo.ListContributors(gctx, id)
		return err
	})
	if err := g.Wait(); err != nil {
		return Publication{}, err
	}

	if contributors == nil {
		contributors = []Contributor{}
	}
	pub.Travelers = contributors
	return pub, nil
}

// ListPublications returns publications ordered by title with their
// travelers, and the total number of publications. Pages are cut after
// grouping so a publication is never split across pages.
func (s *Service) ListPublications(ctx context.Context, page Page) ([]PublicationListItem, int, error) {
	rows, err := s.repo.ListPublicationRows(ctx)
	if err != nil {
		return nil, 0, err
	}
	pubs := groupPublications(rows)
	start, end := page.bounds(len(pubs))
	return pubs[start:end], len(pubs), nil
}

// ListDecades returns publications bucketed by the decade their travels
// start in.
func (s *Service) ListDecades(ctx context.Context) ([]Decade, error) {
	rows, err := s.repo.ListDecadeRows(ctx)
	if err != nil {
		return nil, err
	}
	return BucketByDecade(groupDecadePublications(rows)), nil
}

func (s *Service) ListTravelers(ctx context.Context) ([]TravelerListItem, error) {
	rows, err := s.repo.ListTravelerRows(ctx)
	if err != nil {
		return nil, err
	}
	return groupTravelers(rows), nil
}

// SearchPageData returns the facet values for the search form.
func (s *Service) SearchPageData(ctx context.Context) (SearchPageData, error) {
	var data SearchPageData
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		data.AuthorRoles, err = s.repo.ListRoles(gctx)
		return errors.Wrap(err, "list roles")
	})
	g.Go(func() error {
		var err error
		data.Genders, err = s.repo.ListGenders(gctx)
		return errors.Wrap(err, "list genders")
	})
	g.Go(func() error {
		var err error
		data.Nationalities, err = s.repo.ListNationalities(gctx)
		return errors.Wrap(err, "list nationalities")
	})
	if err := g.Wait(); err != nil {
		return SearchPageData{}, err
	}

	data.AuthorRoles = nonEmpty(data.AuthorRoles)
	data.Genders = nonEmpty(data.Genders)
	data.Nationalities = cleanNationalities(data.Nationalities)
	return data, nil
}

// Search returns publications matching every filter in q, ordered by title.
// Text filters run in SQL; the date range is applied to the returned rows.
func (s *Service) Search(ctx context.Context, q SearchQuery) ([]SearchResult, error) {
	f := SearchFilter{
		Gender:   q.Gender,
		Roles:    nonEmpty(q.Roles),
		Readable: q.Readable,
	}
	f.Title, _ = FTSQuery(q.Title)
	f.Summary, _ = FTSQuery(q.Summary)
	f.Traveler, _ = FTSQuery(q.Traveler)
	f.Nationality, _ = FTSQuery(q.Nationality)

	rows, err := s.repo.SearchRows(ctx, f)
	if err != nil {
		return nil, err
	}

	if !q.Dates.IsZero() {
		rows = slices.DeleteFunc(rows, func(r SearchRow) bool {
			return !q.Dates.Matches(r.TravelYearMin, r.TravelYearMax)
		})
	}

	results := groupSearchResults(rows)
	metrics.RecordSearchResults(len(results))
	return results, nil
}

// Ping checks that the archive database is reachable.
func (s *Service) Ping(ctx context.Context) error {
	return s.repo.Ping(ctx)
}

func nonEmpty(values []string) []string {
	out := make([]string, 0, len(values))
	for _, v := range values {
		if v != "" {
			out = append(out, v)
		}
	}
	return out
}

// cleanNationalities drops the "(?)" uncertainty marker, then removes blanks
// and duplicates and sorts case-insensitively.
func cleanNationalities(values []string) []string {
	out := make([]string, 0, len(values))
	for _, v := range values {
		v = strings.TrimSpace(strings.ReplaceAll(v, "(?)", ""))
		if v == "" || slices.Contains(out, v) {
			continue
		}
		out = append(out, v)
	}
	slices.SortFunc(out, func(a, b string) int {
		if c := strings.Compare(strings.ToLower(a), strings.ToLower(b)); c != 0 {
			return c
		}
		return strings.Compare(a, b)
	})
	return out
}
