package catalog

import (
	"context"
	"database/sql"
	"strings"
	"time"

	"github.com/cockroachdb/errors"

	"travelogues/internal/metrics"
)

// SQLiteRepo reads the archive database. Text filters use the
// publicationsfts and travelersfts FTS5 indexes.
type SQLiteRepo struct {
	db *sql.DB
}

func NewSQLiteRepo(db *sql.DB) *SQLiteRepo {
	return &SQLiteRepo{db: db}
}

// observe records the duration of a repository call. Not-found results are
// not counted as query errors.
func observe(op string, start time.Time, err *error) {
	e := *err
	if errors.Is(e, ErrNotFound) {
		e = nil
	}
	metrics.RecordDBQuery(op, time.Since(start), e)
}

func (r *SQLiteRepo) GetPublication(ctx context.Context, id int64) (p Publication, err error) {
	defer observe("get_publication", time.Now(), &err)

	const query = `
		SELECT p.id, trim(p.title), p.summary, p.travel_dates, p.travel_year_min, p.travel_year_max,
			p.publisher, p.publication_place, p.publication_date, p.publisher_misc, p.url, p.iiif
		FROM publications p
		WHERE p.id = ?
			AND EXISTS (SELECT 1 FROM contributions c WHERE c.publication_id = p.id)`

	err = r.db.QueryRowContext(ctx, query, id).Scan(
		&p.ID, &p.Title, &p.Summary, &p.TravelDates, &p.TravelYearMin, &p.TravelYearMax,
		&p.Publisher, &p.PublicationPlace, &p.PublicationDate, &p.PublisherMisc, &p.URL, &p.IIIF,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return Publication{}, errors.Wrapf(ErrNotFound, "publication %d", id)
	}
	if err != nil {
		return Publication{}, errors.Wrapf(err, "get publication %d", id)
	}
	return p, nil
}

func (r *SQLiteRepo) ListContributors(ctx context.Context, publicationID int64) (out []Contributor, err error) {
	defer observe("list_contributors", time.Now(), &err)

	const query = `
		SELECT t.id, t.name, t.nationality, t.gender, c.type
		FROM contributions c
		INNER JOIN travelers t ON t.id = c.traveler_id
		WHERE c.publication_id = ?
		ORDER BY c.id`

	rows, err := r.db.QueryContext(ctx, query, publicationID)
	if err != nil {
		return nil, errors.Wrap(err, "list contributors")
	}
	defer rows.Close()

	for rows.Next() {
		var c Contributor
		if err = rows.Scan(&c.ID, &c.Name, &c.Nationality, &c.Gender, &c.Type); err != nil {
			return nil, errors.Wrap(err, "scan contributor")
		}
		out = append(out, c)
	}
	return out, errors.Wrap(rows.Err(), "list contributors")
}

func (r *SQLiteRepo) ListPublicationRows(ctx context.Context) (out []PublicationRow, err error) {
	defer observe("list_publications", time.Now(), &err)

	const query = `
		SELECT p.id, trim(p.title) AS title, p.summary, t.id, t.name, c.type
		FROM contributions c
		INNER JOIN publications p ON p.id = c.publication_id
		INNER JOIN travelers t ON t.id = c.traveler_id
		ORDER BY title COLLATE NOCASE ASC, p.id, c.id`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, errors.Wrap(err, "list publications")
	}
	defer rows.Close()

	for rows.Next() {
		var row PublicationRow
		if err = rows.Scan(&row.ID, &row.Title, &row.Summary, &row.TravelerID, &row.TravelerName, &row.ContributionType); err != nil {
			return nil, errors.Wrap(err, "scan publication row")
		}
		out = append(out, row)
	}
	return out, errors.Wrap(rows.Err(), "list publications")
}

func (r *SQLiteRepo) ListDecadeRows(ctx context.Context) (out []DecadeRow, err error) {
	defer observe("list_decades", time.Now(), &err)

	const query = `
		SELECT p.id, trim(p.title) AS title, p.summary, p.travel_dates, p.travel_year_min,
			t.id, t.name, c.type
		FROM contributions c
		INNER JOIN publications p ON p.id = c.publication_id
		INNER JOIN travelers t ON t.id = c.traveler_id
		ORDER BY title COLLATE NOCASE ASC, p.id, c.id`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, errors.Wrap(err, "list decades")
	}
	defer rows.Close()

	for rows.Next() {
		var row DecadeRow
		if err = rows.Scan(
			&row.ID, &row.Title, &row.Summary, &row.TravelDates, &row.TravelYearMin,
			&row.TravelerID, &row.TravelerName, &row.ContributionType,
		); err != nil {
			return nil, errors.Wrap(err, "scan decade row")
		}
		out = append(out, row)
	}
	return out, errors.Wrap(rows.Err(), "list decades")
}

func (r *SQLiteRepo) ListTravelerRows(ctx context.Context) (out []TravelerRow, err error) {
	defer observe("list_travelers", time.Now(), &err)

	const query = `
		SELECT t.id, t.name, t.nationality, p.id, trim(p.title), c.type
		FROM travelers t
		LEFT JOIN contributions c ON c.traveler_id = t.id
		LEFT JOIN publications p ON p.id = c.publication_id
		ORDER BY t.name COLLATE NOCASE ASC, t.id, c.id`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, errors.Wrap(err, "list travelers")
	}
	defer rows.Close()

	for rows.Next() {
		var row TravelerRow
		if err = rows.Scan(
			&row.ID, &row.Name, &row.Nationality,
			&row.PublicationID, &row.PublicationTitle, &row.ContributionType,
		); err != nil {
			return nil, errors.Wrap(err, "scan traveler row")
		}
		out = append(out, row)
	}
	return out, errors.Wrap(rows.Err(), "list travelers")
}

// buildSearchQuery renders the search SQL for f. Publication filters apply to
// the outer rows; traveler filters select publications having at least one
// contribution that satisfies all of them, and every traveler of such a
// publication is still returned.
func buildSearchQuery(f SearchFilter) (string, []any) {
	pubClauses := []string{"1=1"}
	args := []any{}

	if f.Title != "" {
		pubClauses = append(pubClauses, "p.id IN (SELECT rowid FROM publicationsfts WHERE title MATCH ?)")
		args = append(args, f.Title)
	}
	if f.Summary != "" {
		pubClauses = append(pubClauses, "p.id IN (SELECT rowid FROM publicationsfts WHERE summary MATCH ?)")
		args = append(args, f.Summary)
	}
	if f.Readable {
		pubClauses = append(pubClauses, "p.iiif IS NOT NULL")
	}

	if f.hasTravelerFilter() {
		travClauses := []string{"1=1"}
		if f.Traveler != "" {
			travClauses = append(travClauses, "t2.id IN (SELECT rowid FROM travelersfts WHERE name MATCH ?)")
			args = append(args, f.Traveler)
		}
		if f.Nationality != "" {
			travClauses = append(travClauses, "t2.id IN (SELECT rowid FROM travelersfts WHERE nationality MATCH ?)")
			args = append(args, f.Nationality)
		}
		if f.Gender != "" {
			travClauses = append(travClauses, "t2.gender = ?")
			args = append(args, f.Gender)
		}
		if len(f.Roles) > 0 {
			travClauses = append(travClauses, "c2.type IN ("+placeholders(len(f.Roles))+")")
			for _, role := range f.Roles {
				args = append(args, role)
			}
		}
		pubClauses = append(pubClauses, `p.id IN (
			SELECT c2.publication_id
			FROM contributions c2
			INNER JOIN travelers t2 ON t2.id = c2.traveler_id
			WHERE `+strings.Join(travClauses, " AND ")+`)`)
	}

	query := `
		SELECT p.id, trim(p.title) AS title, p.travel_dates, p.travel_year_min, p.travel_year_max,
			t.id, t.name, c.type
		FROM contributions c
		INNER JOIN publications p ON p.id = c.publication_id
		INNER JOIN travelers t ON t.id = c.traveler_id
		WHERE ` + strings.Join(pubClauses, " AND ") + `
		ORDER BY title COLLATE NOCASE ASC, p.id, c.id`

	return query, args
}

func placeholders(n int) string {
	return strings.TrimSuffix(strings.Repeat("?,", n), ",")
}

func (r *SQLiteRepo) SearchRows(ctx context.Context, f SearchFilter) (out []SearchRow, err error) {
	defer observe("search", time.Now(), &err)

	query, args := buildSearchQuery(f)
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, errors.Wrap(err, "search publications")
	}
	defer rows.Close()

	for rows.Next() {
		var row SearchRow
		if err = rows.Scan(
			&row.ID, &row.Title, &row.TravelDates, &row.TravelYearMin, &row.TravelYearMax,
			&row.TravelerID, &row.TravelerName, &row.ContributionType,
		); err != nil {
			return nil, errors.Wrap(err, "scan search row")
		}
		out = append(out, row)
	}
	return out, errors.Wrap(rows.Err(), "search publications")
}

func (r *SQLiteRepo) ListRoles(ctx context.Context) ([]string, error) {
	return r.distinct(ctx, "list_roles",
		`SELECT DISTINCT type FROM contributions ORDER BY type COLLATE NOCASE ASC`)
}

func (r *SQLiteRepo) ListGenders(ctx context.Context) ([]string, error) {
	return r.distinct(ctx, "list_genders",
		`SELECT DISTINCT gender FROM travelers WHERE gender IS NOT NULL ORDER BY gender COLLATE NOCASE ASC`)
}

func (r *SQLiteRepo) ListNationalities(ctx context.Context) ([]string, error) {
	return r.distinct(ctx, "list_nationalities",
		`SELECT DISTINCT nationality FROM travelers WHERE nationality IS NOT NULL ORDER BY nationality COLLATE NOCASE ASC`)
}

func (r *SQLiteRepo) distinct(ctx context.Context, op, query string) (out []string, err error) {
	defer observe(op, time.Now(), &err)

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, errors.Wrap(err, op)
	}
	defer rows.Close()

	out = []string{}
	for rows.Next() {
		var v string
		if err = rows.Scan(&v); err != nil {
			return nil, errors.Wrap(err, op)
		}
		out = append(out, v)
	}
	return out, errors.Wrap(rows.Err(), op)
}

func (r *SQLiteRepo) Ping(ctx context.Context) error {
	return r.db.PingContext(ctx)
}
