package catalog

// Flat join rows as returned by the repository: one row per
// publication×traveler pair. They are folded into the nested entities with
// GroupOrdered.

type PublicationRow struct {
	ID               int64
	Title            string
	Summary          *string
	TravelerID       int64
	TravelerName     string
	ContributionType string
}

type DecadeRow struct {
	PublicationRow
	TravelDates   *string
	TravelYearMin *int
}

// TravelerRow comes from a left join, so the publication columns are nil for
// travelers without contributions.
type TravelerRow struct {
	ID               int64
	Name             string
	Nationality      *string
	PublicationID    *int64
	PublicationTitle *string
	ContributionType *string
}

type SearchRow struct {
	ID               int64
	Title            string
	TravelDates      *string
	TravelYearMin    *int
	TravelYearMax    *int
	TravelerID       int64
	TravelerName     string
	ContributionType string
}
