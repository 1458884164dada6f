package pricing

import (
	"errors"
	"fmt"
	"sort"
)

// Range is a closed interval [Min, Max]; a nil Max is unbounded.
type Range struct {
	Min int
	Max *int
}

// Contains reports whether v lies in the range.
func (r Range) Contains(v int) bool {
	if v < r.Min {
		return false
	}
	return r.Max == nil || v <= *r.Max
}

func (r Range) String() string {
	if r.Max == nil {
		return fmt.Sprintf("[%d, inf)", r.Min)
	}
	return fmt.Sprintf("[%d, %d]", r.Min, *r.Max)
}

// lookupTier returns the tier whose range contains v. Ranges are closed on both
// ends; when several tiers contain v the one with the highest Min wins.
func lookupTier[T any](tiers []T, v int, rangeOf func(T) Range) (T, bool) {
	var (
		best    T
		found   bool
		bestMin int
	)
	for _, t := range tiers {
		r := rangeOf(t)
		if !r.Contains(v) {
			continue
		}
		if !found || r.Min > bestMin {
			best, bestMin, found = t, r.Min, true
		}
	}
	return best, found
}

// ValidatePartition checks that ranges cover [start, inf) with no gaps or overlaps.
// All problems are reported together.
func ValidatePartition(ranges []Range, start int) error {
	if len(ranges) == 0 {
		return errors.New("no tiers")
	}
	sorted := make([]Range, len(ranges))
	copy(sorted, ranges)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].Min < sorted[j].Min })

	var errs []error
	if sorted[0].Min > start {
		errs = append(errs, fmt.Errorf("gap [%d, %d]", start, sorted[0].Min-1))
	}
	for i, r := range sorted {
		if r.Max != nil && *r.Max < r.Min {
			errs = append(errs, fmt.Errorf("tier %s is empty", r))
			continue
		}
		if i == len(sorted)-1 {
			if r.Max != nil {
				errs = append(errs, fmt.Errorf("last tier %s is bounded", r))
			}
			break
		}
		next := sorted[i+1]
		if r.Max == nil {
			errs = append(errs, fmt.Errorf("unbounded tier %s overlaps %s", r, next))
			continue
		}
		switch {
		case next.Min <= *r.Max:
			errs = append(errs, fmt.Errorf("tier %s overlaps %s", r, next))
		case next.Min > *r.Max+1:
			errs = append(errs, fmt.Errorf("gap [%d, %d]", *r.Max+1, next.Min-1))
		}
	}
	return errors.Join(errs...)
}
