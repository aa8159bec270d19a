// Package aco_test - string-boundary parsing tests.
package aco_test

import (
	"strings"
	"testing"

	"github.com/pkruczek/antcolony/aco"
)

func TestParseLocation_OK(t *testing.T) {
	got, err := aco.ParseLocation(aco.RawLocation{
		ID:  "Wrocław",
		Lat: "51.1089776",
		Lon: "17.0326689",
	})
	if err != nil {
		t.Fatal(err)
	}
	if got.ID != "Wrocław" {
		t.Fatalf("ID = %q", got.ID)
	}
	mustFloatClose(t, got.Lat, 51.1089776, 0)
	mustFloatClose(t, got.Lon, 17.0326689, 0)
}

func TestParseLocation_Rejections(t *testing.T) {
	cases := []struct {
		name string
		raw  aco.RawLocation
	}{
		{"empty lat", aco.RawLocation{ID: "x", Lat: "", Lon: "1"}},
		{"non-numeric lat", aco.RawLocation{ID: "x", Lat: "fifty-one", Lon: "1"}},
		{"non-numeric lon", aco.RawLocation{ID: "x", Lat: "1", Lon: "east"}},
		{"nan lat", aco.RawLocation{ID: "x", Lat: "NaN", Lon: "1"}},
		{"inf lon", aco.RawLocation{ID: "x", Lat: "1", Lon: "+Inf"}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := aco.ParseLocation(tc.raw)
			mustErrIs(t, err, aco.ErrBadCoordinate)
			// The wrapped message names the offending location.
			if !strings.Contains(err.Error(), `"x"`) {
				t.Fatalf("error does not identify the location: %v", err)
			}
		})
	}
}

func TestParseLocations_PreservesOrder(t *testing.T) {
	raws := []aco.RawLocation{
		{ID: "first", Lat: "0", Lon: "0"},
		{ID: "second", Lat: "0", Lon: "1"},
		{ID: "third", Lat: "1", Lon: "1"},
	}
	locs, err := aco.ParseLocations(raws)
	if err != nil {
		t.Fatal(err)
	}
	if len(locs) != len(raws) {
		t.Fatalf("len = %d; want %d", len(locs), len(raws))
	}
	// Slice position becomes the internal node index, so order must survive.
	for i := range raws {
		if locs[i].ID != raws[i].ID {
			t.Fatalf("order broken at %d: %q", i, locs[i].ID)
		}
	}
}

func TestParseLocations_FailsAtomically(t *testing.T) {
	raws := []aco.RawLocation{
		{ID: "good", Lat: "0", Lon: "0"},
		{ID: "bad", Lat: "?", Lon: "0"},
	}
	locs, err := aco.ParseLocations(raws)
	mustErrIs(t, err, aco.ErrBadCoordinate)
	if locs != nil {
		t.Fatalf("partial result returned alongside an error: %v", locs)
	}
}
