package store

import (
	"fmt"
	"strings"
)

// Profile is a saved set of pitch parameters for one pitcher.
// Numeric fields hold the text exactly as it was entered; breaks are in inches.
type Profile struct {
	LastName             string
	FirstName            string
	ReleaseHeight        string // feet
	ReleaseSide          string // feet
	Extension            string // feet
	Velocity             string // mph
	HorizontalBreak      string // inches
	InducedVerticalBreak string // inches
}

// Header is the first row of the profiles file
var Header = []string{
	"Last Name",
	"First Name",
	"Release Height",
	"Release Side",
	"Extension",
	"Velocity",
	"Horizontal Break",
	"Induced Vertical Break",
}

// fieldCount is the number of columns a profile occupies
const fieldCount = 8

// Key returns the identity key of the profile
func (p Profile) Key() Identity {
	return Identity{LastName: p.LastName, FirstName: p.FirstName}
}

// DisplayName returns "Last First", the label used by the profile selector
func (p Profile) DisplayName() string {
	return p.LastName + " " + p.FirstName
}

// Identity is the (last name, first name) pair profiles are deduplicated on
type Identity struct {
	LastName  string
	FirstName string
}

// record returns the profile as a CSV row
func (p Profile) record() []string {
	return []string{
		p.LastName,
		p.FirstName,
		p.ReleaseHeight,
		p.ReleaseSide,
		p.Extension,
		p.Velocity,
		p.HorizontalBreak,
		p.InducedVerticalBreak,
	}
}

// profileFromRecord builds a profile from a CSV row. Columns past the eighth are ignored.
func profileFromRecord(rec []string) (Profile, error) {
	if len(rec) < fieldCount {
		return Profile{}, fmt.Errorf("%w: row has %d fields, want %d", ErrMalformedFile, len(rec), fieldCount)
	}
	return Profile{
		LastName:             rec[0],
		FirstName:            rec[1],
		ReleaseHeight:        rec[2],
		ReleaseSide:          rec[3],
		Extension:            rec[4],
		Velocity:             rec[5],
		HorizontalBreak:      rec[6],
		InducedVerticalBreak: rec[7],
	}, nil
}

// ValidationError is returned when a profile is missing required fields
type ValidationError struct {
	Missing []string // header names of the blank fields
}

func (e *ValidationError) Error() string {
	return "missing required fields: " + strings.Join(e.Missing, ", ")
}

// Validate checks that every field of the profile is filled in
func (p Profile) Validate() error {
	var missing []string
	for i, v := range p.record() {
		if strings.TrimSpace(v) == "" {
			missing = append(missing, Header[i])
		}
	}
	if len(missing) > 0 {
		return &ValidationError{Missing: missing}
	}
	return nil
}
