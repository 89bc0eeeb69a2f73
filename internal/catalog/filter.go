package catalog

import "strconv"

// Rating thresholds outside this range are treated as "no filter" rather
// than applied literally.
const (
	ratingFloor = 1.0
	ratingCeil  = 5.0
)

// Criteria holds the active provider filters. A nil field means the
// corresponding filter is off.
type Criteria struct {
	Category  *int64
	MinRating *float64
}

// SetCategory selects a category, or clears the selection when id is nil.
func (c *Criteria) SetCategory(id *int64) {
	c.Category = id
}

// SetMinRating applies a minimum-rating threshold. Values outside [1,5]
// clear the filter instead of being applied.
func (c *Criteria) SetMinRating(v float64) {
	if v < ratingFloor || v > ratingCeil {
		c.MinRating = nil
		return
	}
	c.MinRating = &v
}

// ClearRating removes the rating threshold.
func (c *Criteria) ClearRating() {
	c.MinRating = nil
}

// ParseRating parses user rating input. Empty, unparseable, or out-of-range
// input yields nil, meaning the filter should be cleared.
func ParseRating(s string) *float64 {
	if s == "" {
		return nil
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil || v < ratingFloor || v > ratingCeil {
		return nil
	}
	return &v
}

// Apply returns the providers satisfying the active filters, preserving
// input order. Pure: the input slice is never mutated.
func (c Criteria) Apply(providers []Provider) []Provider {
	out := make([]Provider, 0, len(providers))
	for _, p := range providers {
		if c.Category != nil && p.CategoryID != *c.Category {
			continue
		}
		if c.MinRating != nil && p.Rating < *c.MinRating {
			continue
		}
		out = append(out, p)
	}
	return out
}
