package sqlite

import (
	"context"
	"database/sql"

	"github.com/cockroachdb/errors"
)

type SeedPublication struct {
	ID               int64
	Title            string
	Summary          string
	TravelDates      string
	TravelYearMin    *int
	TravelYearMax    *int
	Publisher        string
	PublicationPlace string
	PublicationDate  string
	PublisherMisc    string
	URL              string
	IIIF             *string
}

type SeedTraveler struct {
	ID          int64
	Name        string
	Nationality string
	Gender      string
}

type SeedContribution struct {
	PublicationID int64
	TravelerID    int64
	Type          string
}

// SeedData is a complete archive snapshot.
type SeedData struct {
	Publications  []SeedPublication
	Travelers     []SeedTraveler
	Contributions []SeedContribution
}

// Seed inserts data in a single transaction. Rows keep their given ids so
// fixtures can refer to them.
func Seed(ctx context.Context, db *sql.DB, data SeedData) error {
	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return errors.Wrap(err, "begin seed")
	}
	defer tx.Rollback()

	for _, p := range data.Publications {
		_, err := tx.ExecContext(ctx, `
			INSERT INTO publications (id, title, summary, travel_dates, travel_year_min, travel_year_max,
				publisher, publication_place, publication_date, publisher_misc, url, iiif)
			VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
			p.ID, p.Title, nullString(p.Summary), nullString(p.TravelDates), p.TravelYearMin, p.TravelYearMax,
			nullString(p.Publisher), nullString(p.PublicationPlace), nullString(p.PublicationDate),
			nullString(p.PublisherMisc), nullString(p.URL), p.IIIF)
		if err != nil {
			return errors.Wrapf(err, "insert publication %d", p.ID)
		}
	}

	for _, t := range data.Travelers {
		_, err := tx.ExecContext(ctx,
			`INSERT INTO travelers (id, name, nationality, gender) VALUES (?, ?, ?, ?)`,
			t.ID, t.Name, nullString(t.Nationality), nullString(t.Gender))
		if err != nil {
			return errors.Wrapf(err, "insert traveler %d", t.ID)
		}
	}

	for _, c := range data.Contributions {
		_, err := tx.ExecContext(ctx,
			`INSERT INTO contributions (publication_id, traveler_id, type) VALUES (?, ?, ?)`,
			c.PublicationID, c.TravelerID, c.Type)
		if err != nil {
			return errors.Wrapf(err, "insert contribution %d/%d", c.PublicationID, c.TravelerID)
		}
	}

	return errors.Wrap(tx.Commit(), "commit seed")
}

func nullString(s string) sql.NullString {
	return sql.NullString{String: s, Valid: s != ""}
}

func year(v int) *int { return &v }

func manifest(v string) *string { return &v }

// SampleArchive is a small archive covering every listing shape: shared
// publications, decade-only and open-ended travel years, an undated
// publication and a traveler without publications.
func SampleArchive() SeedData {
	return SeedData{
		Publications: []SeedPublication{
			{
				ID:               1,
				Title:            "A Thousand Miles up the Nile",
				Summary:          "A journey by dahabeah from Cairo to Abu Simbel.",
				TravelDates:      "1873-1874",
				TravelYearMin:    year(1873),
				TravelYearMax:    year(1874),
				Publisher:        "Longmans, Green, and Co.",
				PublicationPlace: "London",
				PublicationDate:  "1877",
				IIIF:             manifest("https://iiif.example.org/thousand-miles/manifest.json"),
			},
			{
				ID:               2,
				Title:            "  letters from Egypt",
				Summary:          "Letters written from Luxor to family in England.",
				TravelDates:      "1862-1869",
				TravelYearMin:    year(1862),
				TravelYearMax:    year(1869),
				Publisher:        "Macmillan",
				PublicationPlace: "London",
				PublicationDate:  "1865",
			},
			{
				ID:               3,
				Title:            "Travels in Nubia",
				Summary:          "Observations on the temples of the Nile valley above the cataracts.",
				TravelDates:      "1810s",
				TravelYearMin:    year(181),
				Publisher:        "John Murray",
				PublicationPlace: "London",
				PublicationDate:  "1819",
			},
			{
				ID:               4,
				Title:            "Nile Notes of a Howadji",
				Summary:          "Impressions of a voyage on the river.",
				TravelDates:      "1849-",
				TravelYearMin:    year(1849),
				Publisher:        "Harper & Brothers",
				PublicationPlace: "New York",
				PublicationDate:  "1851",
			},
			{
				ID:      5,
				Title:   "Sketches of the Desert",
				Summary: "Drawings with commentary, undated.",
			},
		},
		Travelers: []SeedTraveler{
			{ID: 1, Name: "Amelia Edwards", Nationality: "British", Gender: "Female"},
			{ID: 2, Name: "Lucie Duff Gordon", Nationality: "British", Gender: "Female"},
			{ID: 3, Name: "John Lewis Burckhardt", Nationality: "Swiss (?)", Gender: "Male"},
			{ID: 4, Name: "George William Curtis", Nationality: "American", Gender: "Male"},
			{ID: 5, Name: "Unknown Illustrator", Gender: "Male"},
			{ID: 6, Name: "Zara Unpublished", Nationality: "French", Gender: "Female"},
		},
		Contributions: []SeedContribution{
			{PublicationID: 1, TravelerID: 1, Type: "Author"},
			{PublicationID: 1, TravelerID: 5, Type: "Illustrator"},
			{PublicationID: 2, TravelerID: 2, Type: "Author"},
			{PublicationID: 3, TravelerID: 3, Type: "Author"},
			{PublicationID: 4, TravelerID: 4, Type: "Author"},
			{PublicationID: 5, TravelerID: 5, Type: "Illustrator"},
		},
	}
}
