package listing

import (
	"strings"
	"testing"
)

func TestParseHashFields_HalfSpecifiedCoordinates(t *testing.T) {
	l := makeListing(t, "l1")
	fields := buildHashFields(&l)
	fields["lat"] = "18.5"
	// lng missing

	_, err := parseHashFields("l1", fields)
	if err == nil || !strings.Contains(err.Error(), "half-specified") {
		t.Errorf("expected half-specified coordinates error, got %v", err)
	}
}

func TestParseHashFields_Coordinates(t *testing.T) {
	l := makeListing(t, "l1")
	fields := buildHashFields(&l)
	fields["lat"] = "18.4728"
	fields["lng"] = "-69.9388"

	got, err := parseHashFields("l1", fields)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	c := got.Location.Coordinates
	if c == nil || c.Lat != 18.4728 || c.Lng != -69.9388 {
		t.Errorf("coordinates not parsed: %+v", c)
	}
}

func TestParseHashFields_RejectsInvalidEnums(t *testing.T) {
	l := makeListing(t, "l1")
	fields := buildHashFields(&l)
	fields["status"] = "archived"

	if _, err := parseHashFields("l1", fields); err == nil {
		t.Error("expected error for unknown status")
	}
}

func TestParseHashFields_RejectsBadNumbers(t *testing.T) {
	for _, field := range []string{"price", "area", "bedrooms", "bathrooms", "created_at"} {
		t.Run(field, func(t *testing.T) {
			l := makeListing(t, "l1")
			fields := buildHashFields(&l)
			fields[field] = "garbage"

			if _, err := parseHashFields("l1", fields); err == nil {
				t.Errorf("expected error for malformed %s", field)
			}
		})
	}
}

func TestBuildHashFields_FeaturedFlag(t *testing.T) {
	l := makeListing(t, "l1")

	if got := buildHashFields(&l)["featured"]; got != "0" {
		t.Errorf("expected featured=0, got %q", got)
	}
	l.Featured = true
	if got := buildHashFields(&l)["featured"]; got != "1" {
		t.Errorf("expected featured=1, got %q", got)
	}
}

func TestBuildHashFields_OmitsMissingCoordinates(t *testing.T) {
	l := makeListing(t, "l1")
	fields := buildHashFields(&l)

	if _, ok := fields["lat"]; ok {
		t.Error("lat should be absent without coordinates")
	}
	if _, ok := fields["lng"]; ok {
		t.Error("lng should be absent without coordinates")
	}
}
