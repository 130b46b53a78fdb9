package catalog

// GroupOrdered folds flat rows into one parent per distinct key. Parents are
// emitted in order of the first row carrying their key. newParent builds the
// parent from that first row; addChild is then called for every row,
// including the first, with a pointer to the row's parent. addChild may
// ignore a row whose child columns are empty (outer join with no match).
//
// The result is never nil.
func GroupOrdered[R any, K comparable, P any](rows []R, key func(R) K, newParent func(R) P, addChild func(*P, R)) []P {
	out := make([]P, 0)
	index := make(map[K]int)
	for _, row := range rows {
		k := key(row)
		i, seen := index[k]
		if !seen {
			i = len(out)
			index[k] = i
			out = append(out, newParent(row))
		}
		addChild(&out[i], row)
	}
	return out
}

func groupPublications(rows []PublicationRow) []PublicationListItem {
	return GroupOrdered(rows,
		func(r PublicationRow) int64 { return r.ID },
		func(r PublicationRow) PublicationListItem {
			return PublicationListItem{ID: r.ID, Title: r.Title, Summary: r.Summary, Travelers: []TravelerRef{}}
		},
		func(p *PublicationListItem, r PublicationRow) {
			p.Travelers = append(p.Travelers, r.travelerRef())
		},
	)
}

func groupDecadePublications(rows []DecadeRow) []DecadePublication {
	return GroupOrdered(rows,
		func(r DecadeRow) int64 { return r.ID },
		func(r DecadeRow) DecadePublication {
			return DecadePublication{
				ID:            r.ID,
				Title:         r.Title,
				Summary:       r.Summary,
				TravelDates:   r.TravelDates,
				TravelYearMin: r.TravelYearMin,
				Travelers:     []TravelerRef{},
			}
		},
		func(p *DecadePublication, r DecadeRow) {
			p.Travelers = append(p.Travelers, r.travelerRef())
		},
	)
}

func groupTravelers(rows []TravelerRow) []TravelerListItem {
	return GroupOrdered(rows,
		func(r TravelerRow) int64 { return r.ID },
		func(r TravelerRow) TravelerListItem {
			return TravelerListItem{ID: r.ID, Name: r.Name, Nationality: r.Nationality, Publications: []PublicationRef{}}
		},
		func(t *TravelerListItem, r TravelerRow) {
			if r.PublicationID == nil {
				return
			}
			ref := PublicationRef{ID: *r.PublicationID}
			if r.PublicationTitle != nil {
				ref.Title = *r.PublicationTitle
			}
			if r.ContributionType != nil {
				ref.Contribution = *r.ContributionType
			}
			t.Publications = append(t.Publications, ref)
		},
	)
}

func groupSearchResults(rows []SearchRow) []SearchResult {
	return GroupOrdered(rows,
		func(r SearchRow) int64 { return r.ID },
		func(r SearchRow) SearchResult {
			return SearchResult{ID: r.ID, Title: r.Title, TravelDates: r.TravelDates, Travelers: []TravelerRef{}}
		},
		func(p *SearchResult, r SearchRow) {
			p.Travelers = append(p.Travelers, TravelerRef{ID: r.TravelerID, Name: r.TravelerName, Type: r.ContributionType})
		},
	)
}

func (r PublicationRow) travelerRef() TravelerRef {
	return TravelerRef{ID: r.TravelerID, Name: r.TravelerName, Type: r.ContributionType}
}
