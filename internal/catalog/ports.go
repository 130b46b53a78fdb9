package catalog

import (
	"context"
)

//go:generate mockgen -source=ports.go -destination=mock_repository.go -package=catalog

// Repository defines read access to the archive database. Row-returning
// methods return rows ordered for display; the service only folds them.
type Repository interface {
	GetPublication(ctx context.Context, id int64) (Publication, error)
	ListContributors(ctx context.Context, publicationID int64) ([]Contributor, error)
	ListPublicationRows(ctx context.Context) ([]PublicationRow, error)
	ListDecadeRows(ctx context.Context) ([]DecadeRow, error)
	ListTravelerRows(ctx context.Context) ([]TravelerRow, error)
	SearchRows(ctx context.Context, f SearchFilter) ([]SearchRow, error)
	ListRoles(ctx context.Context) ([]string, error)
	ListGenders(ctx context.Context) ([]string, error)
	ListNationalities(ctx context.Context) ([]string, error)
	Ping(ctx context.Context) error
}

// SearchFilter is the SQL-side part of a search. FTS fields hold queries
// already produced by FTSQuery; empty fields are not filtered on.
type SearchFilter struct {
	Title       string
	Summary     string
	Traveler    string
	Nationality string
	Gender      string
	Roles       []string
	Readable    bool
}

func (f SearchFilter) hasTravelerFilter() bool {
	return f.Traveler != "" || f.Nationality != "" || f.Gender != "" || len(f.Roles) > 0
}
