package dedupe_test

import (
	"testing"

	"github.com/nikbrunner/pin/internal/dedupe"
	"github.com/nikbrunner/pin/internal/model"
)

func TestNormalizeURL(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{name: "lowercases host and path", in: "HTTPS://A.com/X.JPG", want: "https://a.com/x.jpg"},
		{name: "trims whitespace", in: "  https://a.com/x.jpg ", want: "https://a.com/x.jpg"},
		{name: "data url kept exact", in: "data:image/png;base64,AbC", want: "data:image/png;base64,AbC"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := dedupe.NormalizeURL(tt.in); got != tt.want {
				t.Errorf("NormalizeURL(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestFindDuplicateIDs(t *testing.T) {
	records := []model.Record{
		{ID: "r1", URL: "https://a.com/x.jpg"},
		{ID: "r2", URL: "HTTPS://A.COM/x.jpg "}, // same after normalization
		{ID: "r3", URL: "https://b.com/y.jpg"},
		{ID: "r4", URL: "data:image/png;base64,AAAA"},
		{ID: "r5", URL: "data:image/png;base64,aaaa"}, // different bytes, not a dup
	}

	ids := dedupe.FindDuplicateIDs(records)

	if !ids["r1"] || !ids["r2"] {
		t.Errorf("r1/r2 should be duplicates: %v", ids)
	}
	if ids["r3"] || ids["r4"] || ids["r5"] {
		t.Errorf("unexpected duplicates flagged: %v", ids)
	}
}

func TestFindDuplicateIDs_SecondAddFlagsBoth(t *testing.T) {
	records := []model.Record{
		{ID: "first", URL: "https://a.com/x.jpg"},
	}
	if got := dedupe.FindDuplicateIDs(records); len(got) != 0 {
		t.Fatalf("single record should have no duplicates: %v", got)
	}

	records = append(records, model.Record{ID: "second", URL: "https://a.com/x.jpg"})
	ids := dedupe.FindDuplicateIDs(records)
	if !ids["first"] || !ids["second"] {
		t.Errorf("both ids should appear in duplicate set: %v", ids)
	}
}

func TestFilter(t *testing.T) {
	records := []model.Record{
		{ID: "r1", URL: "https://a.com/x.jpg"},
		{ID: "r2", URL: "https://a.com/x.jpg"},
		{ID: "r3", URL: "https://b.com/y.jpg"},
	}

	dupes := dedupe.Filter(records, dedupe.FindDuplicateIDs(records))

	if len(dupes) != 2 {
		t.Fatalf("expected 2 duplicates, got %d", len(dupes))
	}
	// Order preserved
	if dupes[0].ID != "r1" || dupes[1].ID != "r2" {
		t.Errorf("order not preserved: %s, %s", dupes[0].ID, dupes[1].ID)
	}
}
