package catalog

// Travel years below this value carry decade precision only: 179 means "some
// year in the 1790s".
const preciseYearFloor = 1000

// DateRange is the travel-date window of a search. Nil bounds are not
// checked.
type DateRange struct {
	Min            *int
	Max            *int
	IncludeUnknown bool
}

// Matches reports whether a publication travelling from yearMin to yearMax
// overlaps the range. A precise journey matches a lower bound when it ends
// on or after it, and an upper bound when it ends on or before it. A nil
// yearMax is an open-ended journey and only matches an upper bound when
// IncludeUnknown is set. A decade-only yearMin matches a lower bound in the
// same decade.
//
// A nil yearMin never satisfies a lower bound and counts as 0 against an
// upper bound.
func (r DateRange) Matches(yearMin, yearMax *int) bool {
	return r.matchesMin(yearMin, yearMax) && r.matchesMax(yearMin, yearMax)
}

// IsZero reports whether the range filters nothing.
func (r DateRange) IsZero() bool {
	return r.Min == nil && r.Max == nil
}

func (r DateRange) matchesMin(yearMin, yearMax *int) bool {
	if r.Min == nil {
		return true
	}
	if yearMin == nil {
		return false
	}
	if *yearMin < preciseYearFloor {
		return floorDiv(*r.Min, 10) == *yearMin
	}
	// a journey that starts before Min still matches if it ends on or after it
	last := *yearMin
	if yearMax != nil && *yearMax > last {
		last = *yearMax
	}
	return last >= *r.Min
}

func (r DateRange) matchesMax(yearMin, yearMax *int) bool {
	if r.Max == nil {
		return true
	}
	if yearMax != nil {
		return *yearMax <= *r.Max
	}
	if !r.IncludeUnknown {
		return false
	}
	start := 0
	if yearMin != nil {
		start = *yearMin
	}
	return start <= *r.Max && (start >= preciseYearFloor || floorDiv(*r.Max, 10) >= start)
}

// floorDiv rounds toward negative infinity.
func floorDiv(a, b int) int {
	q := a / b
	if (a%b != 0) && ((a < 0) != (b < 0)) {
		q--
	}
	return q
}
