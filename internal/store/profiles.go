package store

import (
	"bytes"
	"encoding/csv"
	"errors"
	"fmt"
	"io/fs"
	"log"
	"os"
	"sort"
	"time"
)

// Info summarizes the profiles file
type Info struct {
	Exists  bool
	Count   int
	ModTime time.Time
}

// Upsert saves p, replacing any existing profile with the same identity.
// The file is rewritten with the header followed by every profile sorted by
// last name then first name. A profile with blank fields is rejected with a
// *ValidationError and the file is left untouched.
func (s *Store) Upsert(p Profile) error {
	if err := p.Validate(); err != nil {
		return err
	}

	existing, err := s.ReadAll()
	if err != nil {
		return fmt.Errorf("reading profiles file: %w", err)
	}

	byKey := make(map[Identity]Profile, len(existing)+1)
	for _, e := range existing {
		byKey[e.Key()] = e
	}
	byKey[p.Key()] = p

	profiles := make([]Profile, 0, len(byKey))
	for _, v := range byKey {
		profiles = append(profiles, v)
	}
	sortProfiles(profiles)

	data, err := encodeProfiles(profiles)
	if err != nil {
		return fmt.Errorf("encoding profiles: %w", err)
	}

	if err := os.WriteFile(s.path, data, 0644); err != nil {
		return fmt.Errorf("writing profiles file: %w", err)
	}

	return nil
}

// ReadAll returns every stored profile in file order.
// A missing file yields no profiles and no error.
func (s *Store) ReadAll() ([]Profile, error) {
	f, err := os.Open(s.path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.FieldsPerRecord = -1

	records, err := r.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedFile, err)
	}
	if len(records) == 0 {
		return nil, nil
	}

	// First row is the header
	profiles := make([]Profile, 0, len(records)-1)
	for i, rec := range records[1:] {
		p, err := profileFromRecord(rec)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", i+2, err)
		}
		profiles = append(profiles, p)
	}

	return profiles, nil
}

// LoadAll returns every stored profile, or none if the file is missing or unreadable.
// Failures are logged rather than returned.
func (s *Store) LoadAll() []Profile {
	profiles, err := s.ReadAll()
	if err != nil {
		log.Printf("Error loading profiles from %s: %v", s.path, err)
		return nil
	}
	return profiles
}

// FindByIdentity returns the first profile with exactly this last and first name
func (s *Store) FindByIdentity(lastName, firstName string) (*Profile, error) {
	for _, p := range s.LoadAll() {
		if p.LastName == lastName && p.FirstName == firstName {
			return &p, nil
		}
	}
	return nil, ErrProfileNotFound
}

// Stat reports whether the profiles file exists, how many profiles it holds
// and when it was last written
func (s *Store) Stat() (Info, error) {
	fi, err := os.Stat(s.path)
	if errors.Is(err, fs.ErrNotExist) {
		return Info{}, nil
	}
	if err != nil {
		return Info{}, err
	}

	profiles, err := s.ReadAll()
	if err != nil {
		return Info{}, err
	}

	return Info{
		Exists:  true,
		Count:   len(profiles),
		ModTime: fi.ModTime(),
	}, nil
}

func sortProfiles(profiles []Profile) {
	sort.Slice(profiles, func(i, j int) bool {
		if profiles[i].LastName != profiles[j].LastName {
			return profiles[i].LastName < profiles[j].LastName
		}
		return profiles[i].FirstName < profiles[j].FirstName
	})
}

func encodeProfiles(profiles []Profile) ([]byte, error) {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)
	w.UseCRLF = true

	if err := w.Write(Header); err != nil {
		return nil, err
	}
	for _, p := range profiles {
		if err := w.Write(p.record()); err != nil {
			return nil, err
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return nil, err
	}

	return buf.Bytes(), nil
}
