// Package aco - input parsing for the form/UI boundary.
//
// The layer driving this engine hands coordinates over as strings (they
// arrive from a geocoder and a web form); this file is the seam where they
// become typed Locations.
package aco

import (
	"fmt"
	"math"
	"strconv"
)

// RawLocation is one string-encoded point as supplied by the caller's
// form/geocoding layer: an opaque label plus two float-encoded coordinates.
type RawLocation struct {
	ID  string
	Lat string
	Lon string
}

// ParseLocation converts one RawLocation into a Location.
//
// Errors: ErrBadCoordinate (wrapped with the offending field) when a
// coordinate does not parse as a finite float.
//
// Complexity: O(1).
func ParseLocation(raw RawLocation) (Location, error) {
	lat, err := strconv.ParseFloat(raw.Lat, 64)
	if err != nil || math.IsNaN(lat) || math.IsInf(lat, 0) {
		return Location{}, fmt.Errorf("location %q: lat %q: %w", raw.ID, raw.Lat, ErrBadCoordinate)
	}
	lon, err := strconv.ParseFloat(raw.Lon, 64)
	if err != nil || math.IsNaN(lon) || math.IsInf(lon, 0) {
		return Location{}, fmt.Errorf("location %q: lon %q: %w", raw.ID, raw.Lon, ErrBadCoordinate)
	}

	return Location{ID: raw.ID, Lat: lat, Lon: lon}, nil
}

// ParseLocations converts an ordered slice of RawLocations, preserving order
// (the position in this slice becomes the internal node index).
//
// Errors: the first ErrBadCoordinate encountered; nothing is returned partially.
//
// Complexity: O(n).
func ParseLocations(raws []RawLocation) ([]Location, error) {
	out := make([]Location, len(raws))

	var (
		i   int
		err error
	)
	for i = 0; i < len(raws); i++ {
		out[i], err = ParseLocation(raws[i])
		if err != nil {
			return nil, err
		}
	}

	return out, nil
}
