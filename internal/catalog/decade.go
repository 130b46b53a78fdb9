package catalog

import (
	"cmp"
	"slices"
)

type decadeKey struct {
	known bool
	value int
}

// decadeOf keys a travel start year by decade. Decade-only years are already
// decade indexes and are used as is.
func decadeOf(yearMin *int) decadeKey {
	switch {
	case yearMin == nil:
		return decadeKey{}
	case *yearMin < preciseYearFloor:
		return decadeKey{known: true, value: *yearMin}
	default:
		return decadeKey{known: true, value: floorDiv(*yearMin, 10)}
	}
}

func compareDecadeKeys(a, b decadeKey) int {
	switch {
	case a.known == b.known:
		return cmp.Compare(a.value, b.value)
	case !a.known:
		return -1
	default:
		return 1
	}
}

// BucketByDecade groups publications by the decade their travels start in.
// Buckets are sorted ascending with the unknown bucket first; publications
// keep their input order inside a bucket.
func BucketByDecade(pubs []DecadePublication) []Decade {
	type bucket struct {
		key    decadeKey
		decade Decade
	}

	buckets := GroupOrdered(pubs,
		func(p DecadePublication) decadeKey { return decadeOf(p.TravelYearMin) },
		func(p DecadePublication) bucket {
			k := decadeOf(p.TravelYearMin)
			b := bucket{key: k, decade: Decade{Publications: []DecadePublication{}}}
			if k.known {
				v := k.value
				b.decade.Decade = &v
			}
			return b
		},
		func(b *bucket, p DecadePublication) {
			b.decade.Publications = append(b.decade.Publications, p)
		},
	)

	slices.SortStableFunc(buckets, func(a, b bucket) int { return compareDecadeKeys(a.key, b.key) })

	out := make([]Decade, len(buckets))
	for i, b := range buckets {
		out[i] = b.decade
	}
	return out
}
