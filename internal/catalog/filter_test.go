package catalog

import (
	"reflect"
	"testing"
)

func sampleProviders() []Provider {
	return []Provider{
		{ID: 1, Name: "Ace Plumbing Co", CategoryID: 1, Rating: 4.5, PricePerHour: 2000},
		{ID: 2, Name: "Sparkle Cleaners", CategoryID: 2, Rating: 3.8, PricePerHour: 1500},
		{ID: 3, Name: "VoltWorks", CategoryID: 3, Rating: 5, PricePerHour: 3000},
		{ID: 4, Name: "Budget Plumbers", CategoryID: 1, Rating: 2.9, PricePerHour: 900},
		{ID: 5, Name: "Shiny Homes", CategoryID: 2, Rating: 4.5, PricePerHour: 1800},
	}
}

func ids(providers []Provider) []int64 {
	out := make([]int64, 0, len(providers))
	for _, p := range providers {
		out = append(out, p.ID)
	}
	return out
}

func TestApplyNoFilters(t *testing.T) {
	in := sampleProviders()
	got := Criteria{}.Apply(in)
	if !reflect.DeepEqual(got, in) {
		t.Errorf("no filters should return input unchanged in order, got %v", ids(got))
	}
}

func TestApplyCategory(t *testing.T) {
	cat := int64(1)
	got := Criteria{Category: &cat}.Apply(sampleProviders())
	want := []int64{1, 4}
	if !reflect.DeepEqual(ids(got), want) {
		t.Errorf("category filter ids = %v, want %v", ids(got), want)
	}
	for _, p := range got {
		if p.CategoryID != cat {
			t.Errorf("provider %d has categoryId %d, want %d", p.ID, p.CategoryID, cat)
		}
	}
}

func TestApplyCategoryNoMatch(t *testing.T) {
	cat := int64(42)
	got := Criteria{Category: &cat}.Apply(sampleProviders())
	if len(got) != 0 {
		t.Errorf("unknown category should yield empty result, got %v", ids(got))
	}
}

func TestApplyRatingInclusive(t *testing.T) {
	r := 4.5
	got := Criteria{MinRating: &r}.Apply(sampleProviders())
	// 4.5 providers are included: the comparison is >=, not >.
	want := []int64{1, 3, 5}
	if !reflect.DeepEqual(ids(got), want) {
		t.Errorf("rating filter ids = %v, want %v", ids(got), want)
	}
}

func TestApplyBothFilters(t *testing.T) {
	cat := int64(2)
	r := 4.0
	got := Criteria{Category: &cat, MinRating: &r}.Apply(sampleProviders())
	want := []int64{5}
	if !reflect.DeepEqual(ids(got), want) {
		t.Errorf("combined filter ids = %v, want %v", ids(got), want)
	}
}

func TestApplyEmptyInput(t *testing.T) {
	if got := (Criteria{}).Apply(nil); len(got) != 0 {
		t.Errorf("empty input should yield empty result, got %v", got)
	}
}

func TestApplyIdempotent(t *testing.T) {
	cat := int64(1)
	r := 3.0
	c := Criteria{Category: &cat, MinRating: &r}
	in := sampleProviders()
	first := c.Apply(in)
	second := c.Apply(in)
	if !reflect.DeepEqual(first, second) {
		t.Errorf("identical inputs produced different outputs: %v vs %v", ids(first), ids(second))
	}
}

func TestApplyDoesNotMutateInput(t *testing.T) {
	in := sampleProviders()
	snapshot := sampleProviders()
	cat := int64(2)
	Criteria{Category: &cat}.Apply(in)
	if !reflect.DeepEqual(in, snapshot) {
		t.Error("Apply mutated its input")
	}
}

func TestSetMinRatingBoundary(t *testing.T) {
	tests := []struct {
		name  string
		value float64
		want  *float64
	}{
		{"below range", 0, nil},
		{"above range", 6, nil},
		{"negative", -1, nil},
		{"lower bound", 1, ptr(1.0)},
		{"upper bound", 5, ptr(5.0)},
		{"mid", 3.5, ptr(3.5)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var c Criteria
			c.SetMinRating(tt.value)
			if (c.MinRating == nil) != (tt.want == nil) {
				t.Fatalf("SetMinRating(%v) filter set = %v, want set = %v", tt.value, c.MinRating != nil, tt.want != nil)
			}
			if tt.want != nil && *c.MinRating != *tt.want {
				t.Errorf("SetMinRating(%v) = %v, want %v", tt.value, *c.MinRating, *tt.want)
			}
		})
	}
}

func TestSetMinRatingOutOfRangeClearsExisting(t *testing.T) {
	var c Criteria
	c.SetMinRating(4)
	c.SetMinRating(6)
	if c.MinRating != nil {
		t.Error("out-of-range value should clear the existing filter, not keep it")
	}
}

func TestParseRating(t *testing.T) {
	tests := []struct {
		in   string
		want *float64
	}{
		{"", nil},
		{"abc", nil},
		{"0", nil},
		{"0.9", nil},
		{"6", nil},
		{"5.1", nil},
		{"1", ptr(1.0)},
		{"4.5", ptr(4.5)},
		{"5", ptr(5.0)},
	}
	for _, tt := range tests {
		got := ParseRating(tt.in)
		if (got == nil) != (tt.want == nil) {
			t.Errorf("ParseRating(%q) set = %v, want set = %v", tt.in, got != nil, tt.want != nil)
			continue
		}
		if got != nil && *got != *tt.want {
			t.Errorf("ParseRating(%q) = %v, want %v", tt.in, *got, *tt.want)
		}
	}
}

func ptr(v float64) *float64 { return &v }
