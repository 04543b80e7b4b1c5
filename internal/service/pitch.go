package service

import (
	"errors"
	"fmt"
	"log"
	"strconv"
	"strings"

	"pitchtarp/internal/store"
	"pitchtarp/internal/trajectory"
)

// ErrInvalidInput is returned when a numeric field cannot be parsed
var ErrInvalidInput = errors.New("invalid numeric input")

// PitchForm holds the calculator fields as text, the way they were typed
type PitchForm struct {
	LastName             string
	FirstName            string
	ReleaseHeight        string
	ReleaseSide          string
	Extension            string
	Velocity             string
	HorizontalBreak      string // inches
	InducedVerticalBreak string // inches
}

// SaveOutcome classifies the result of SaveProfile
type SaveOutcome int

const (
	SaveOK      SaveOutcome = iota // written
	SaveInvalid                    // a required field was blank, nothing written
	SaveFailed                     // the file could not be read or written
)

// Message returns the text shown to the user for the outcome
func (o SaveOutcome) Message() string {
	switch o {
	case SaveOK:
		return MsgProfileSaved
	case SaveInvalid:
		return MsgMissingFields
	default:
		return MsgSaveFailed
	}
}

// ProfileStore is the persistence the service needs
type ProfileStore interface {
	Upsert(p store.Profile) error
	LoadAll() []store.Profile
	FindByIdentity(lastName, firstName string) (*store.Profile, error)
	Stat() (store.Info, error)
}

// PitchService is the boundary between the UI and the trajectory model and profile store
type PitchService struct {
	store ProfileStore
}

// NewPitchService creates a new pitch service
func NewPitchService(s ProfileStore) *PitchService {
	return &PitchService{store: s}
}

// ParseParameters converts the numeric form fields into model parameters.
// Breaks are converted from inches to signed feet.
func ParseParameters(form PitchForm, tarpDistance float64) (trajectory.PitchParameters, error) {
	fields := []struct {
		name  string
		value string
	}{
		{"release height", form.ReleaseHeight},
		{"release side", form.ReleaseSide},
		{"extension", form.Extension},
		{"velocity", form.Velocity},
		{"horizontal break", form.HorizontalBreak},
		{"induced vertical break", form.InducedVerticalBreak},
	}

	var v [6]float64
	for i, f := range fields {
		n, err := parseFloat(f.value)
		if err != nil {
			return trajectory.PitchParameters{}, fmt.Errorf("%w: %s %q", ErrInvalidInput, f.name, f.value)
		}
		v[i] = n
	}

	return trajectory.PitchParameters{
		ReleaseHeight:        v[0],
		ReleaseSide:          v[1],
		Extension:            v[2],
		Velocity:             v[3],
		TarpDistance:         tarpDistance,
		HorizontalBreak:      trajectory.BreakToFeet(v[4]),
		InducedVerticalBreak: trajectory.BreakToFeet(v[5]),
	}, nil
}

// Compute parses the form and projects the pitch onto a tarp at tarpDistance feet
func (s *PitchService) Compute(form PitchForm, tarpDistance float64) (trajectory.TarpCoordinate, error) {
	params, err := ParseParameters(form, tarpDistance)
	if err != nil {
		return trajectory.TarpCoordinate{}, err
	}
	return trajectory.Compute(params), nil
}

// FlightPath parses the form and samples the flight from release to the plate
func (s *PitchService) FlightPath(form PitchForm, samples int) ([]trajectory.PathPoint, error) {
	params, err := ParseParameters(form, trajectory.MoundToPlate)
	if err != nil {
		return nil, err
	}
	return trajectory.Path(params, samples), nil
}

// SaveProfile stores the form as a profile, replacing any profile with the same name
func (s *PitchService) SaveProfile(form PitchForm) (SaveOutcome, error) {
	err := s.store.Upsert(ProfileFromForm(form))

	var verr *store.ValidationError
	switch {
	case err == nil:
		return SaveOK, nil
	case errors.As(err, &verr):
		return SaveInvalid, err
	default:
		log.Printf("Error saving profile %s %s: %v", form.LastName, form.FirstName, err)
		return SaveFailed, err
	}
}

// ListProfiles returns every saved profile sorted by name. Load errors yield an empty list.
func (s *PitchService) ListProfiles() []store.Profile {
	return s.store.LoadAll()
}

// FindProfile looks up a saved profile by exact name
func (s *PitchService) FindProfile(lastName, firstName string) (*store.Profile, error) {
	return s.store.FindByIdentity(lastName, firstName)
}

// StoreInfo describes the profiles file
func (s *PitchService) StoreInfo() (store.Info, error) {
	return s.store.Stat()
}

// ProfileFromForm copies the form fields into a profile, unchanged
func ProfileFromForm(form PitchForm) store.Profile {
	return store.Profile{
		LastName:             form.LastName,
		FirstName:            form.FirstName,
		ReleaseHeight:        form.ReleaseHeight,
		ReleaseSide:          form.ReleaseSide,
		Extension:            form.Extension,
		Velocity:             form.Velocity,
		HorizontalBreak:      form.HorizontalBreak,
		InducedVerticalBreak: form.InducedVerticalBreak,
	}
}

// FormFromProfile fills the form from a saved profile.
// Break fields go through a float round trip, so "-6" is shown as "-6.0".
func FormFromProfile(p store.Profile) PitchForm {
	return PitchForm{
		LastName:             p.LastName,
		FirstName:            p.FirstName,
		ReleaseHeight:        p.ReleaseHeight,
		ReleaseSide:          p.ReleaseSide,
		Extension:            p.Extension,
		Velocity:             p.Velocity,
		HorizontalBreak:      formatBreak(p.HorizontalBreak),
		InducedVerticalBreak: formatBreak(p.InducedVerticalBreak),
	}
}

// FormatCoordinate renders a coordinate as "(x, y)" with two decimals
func FormatCoordinate(c trajectory.TarpCoordinate) string {
	return fmt.Sprintf("(%.*f, %.*f)", CoordinateDecimals, c.Horizontal, CoordinateDecimals, c.Vertical)
}

func parseFloat(s string) (float64, error) {
	return strconv.ParseFloat(strings.TrimSpace(s), 64)
}

// formatBreak re-renders a stored break value. Unparseable text is returned as is.
func formatBreak(s string) string {
	v, err := parseFloat(s)
	if err != nil {
		return s
	}
	out := strconv.FormatFloat(v, 'f', -1, 64)
	if !strings.ContainsAny(out, ".eEnN") {
		out += ".0"
	}
	return out
}
