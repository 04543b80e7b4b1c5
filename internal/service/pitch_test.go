package service

import (
	"errors"
	"math"
	"path/filepath"
	"testing"

	"pitchtarp/internal/store"
	"pitchtarp/internal/trajectory"
)

// openTestService creates a service backed by a profiles file in a temp directory
func openTestService(t *testing.T) (*PitchService, *store.Store) {
	t.Helper()

	s, err := store.Open(filepath.Join(t.TempDir(), store.DefaultFileName))
	if err != nil {
		t.Fatalf("failed to open store: %v", err)
	}
	return NewPitchService(s), s
}

func sampleForm() PitchForm {
	return PitchForm{
		LastName:             "Smith",
		FirstName:            "John",
		ReleaseHeight:        "6.0",
		ReleaseSide:          "-1.5",
		Extension:            "6.0",
		Velocity:             "95",
		HorizontalBreak:      "-6",
		InducedVerticalBreak: "-16",
	}
}

// failingStore rejects every write
type failingStore struct{}

func (failingStore) Upsert(store.Profile) error { return errors.New("permission denied") }
func (failingStore) LoadAll() []store.Profile  { return nil }
func (failingStore) FindByIdentity(string, string) (*store.Profile, error) {
	return nil, store.ErrProfileNotFound
}
func (failingStore) Stat() (store.Info, error) { return store.Info{}, nil }

func TestParseParameters(t *testing.T) {
	t.Run("valid form", func(t *testing.T) {
		p, err := ParseParameters(sampleForm(), 55)
		if err != nil {
			t.Fatalf("ParseParameters() error = %v", err)
		}

		want := trajectory.PitchParameters{
			ReleaseHeight:        6.0,
			ReleaseSide:          -1.5,
			Extension:            6.0,
			Velocity:             95,
			TarpDistance:         55,
			HorizontalBreak:      0.5,
			InducedVerticalBreak: 16.0 / 12.0,
		}
		if math.Abs(p.InducedVerticalBreak-want.InducedVerticalBreak) > 1e-12 {
			t.Errorf("InducedVerticalBreak = %v, want %v", p.InducedVerticalBreak, want.InducedVerticalBreak)
		}
		p.InducedVerticalBreak = want.InducedVerticalBreak
		if p != want {
			t.Errorf("ParseParameters() = %+v, want %+v", p, want)
		}
	})

	t.Run("surrounding whitespace", func(t *testing.T) {
		form := sampleForm()
		form.Velocity = " 95 "
		p, err := ParseParameters(form, 55)
		if err != nil {
			t.Fatalf("ParseParameters() error = %v", err)
		}
		if p.Velocity != 95 {
			t.Errorf("Velocity = %v, want 95", p.Velocity)
		}
	})

	invalid := []struct {
		name   string
		mutate func(f *PitchForm)
	}{
		{"text in release height", func(f *PitchForm) { f.ReleaseHeight = "six" }},
		{"empty release side", func(f *PitchForm) { f.ReleaseSide = "" }},
		{"comma decimal extension", func(f *PitchForm) { f.Extension = "6,5" }},
		{"units in velocity", func(f *PitchForm) { f.Velocity = "95mph" }},
		{"empty horizontal break", func(f *PitchForm) { f.HorizontalBreak = "" }},
		{"text in vertical break", func(f *PitchForm) { f.InducedVerticalBreak = "lots" }},
	}

	for _, tt := range invalid {
		t.Run(tt.name, func(t *testing.T) {
			form := sampleForm()
			tt.mutate(&form)
			_, err := ParseParameters(form, 55)
			if !errors.Is(err, ErrInvalidInput) {
				t.Errorf("ParseParameters() error = %v, want ErrInvalidInput", err)
			}
		})
	}

	t.Run("names are not parsed", func(t *testing.T) {
		form := sampleForm()
		form.LastName = ""
		form.FirstName = ""
		if _, err := ParseParameters(form, 55); err != nil {
			t.Errorf("ParseParameters() error = %v, want nil", err)
		}
	})
}

func TestCompute(t *testing.T) {
	svc, _ := openTestService(t)

	got, err := svc.Compute(sampleForm(), 55)
	if err != nil {
		t.Fatalf("Compute() error = %v", err)
	}
	if math.Abs(got.Horizontal-0.29816513761467905) > 1e-6 {
		t.Errorf("Horizontal = %v, want 0.29816513761467905", got.Horizontal)
	}
	if math.Abs(got.Vertical-4.275204318412856) > 1e-6 {
		t.Errorf("Vertical = %v, want 4.275204318412856", got.Vertical)
	}

	form := sampleForm()
	form.Velocity = "fast"
	if _, err := svc.Compute(form, 55); !errors.Is(err, ErrInvalidInput) {
		t.Errorf("Compute() error = %v, want ErrInvalidInput", err)
	}

	form = sampleForm()
	form.Velocity = "0"
	got, err = svc.Compute(form, 55)
	if err != nil {
		t.Fatalf("Compute() error = %v", err)
	}
	if got.IsFinite() {
		t.Errorf("Compute() = %+v, want non-finite for zero velocity", got)
	}
}

func TestFlightPath(t *testing.T) {
	svc, _ := openTestService(t)

	points, err := svc.FlightPath(sampleForm(), DefaultChartSamples)
	if err != nil {
		t.Fatalf("FlightPath() error = %v", err)
	}
	if len(points) != DefaultChartSamples {
		t.Fatalf("len(FlightPath) = %d, want %d", len(points), DefaultChartSamples)
	}
	if points[0].Vertical != 6.0 {
		t.Errorf("first height = %v, want release height 6.0", points[0].Vertical)
	}

	form := sampleForm()
	form.Extension = "?"
	if _, err := svc.FlightPath(form, DefaultChartSamples); !errors.Is(err, ErrInvalidInput) {
		t.Errorf("FlightPath() error = %v, want ErrInvalidInput", err)
	}
}

func TestSaveProfile(t *testing.T) {
	t.Run("saves and lists", func(t *testing.T) {
		svc, _ := openTestService(t)

		outcome, err := svc.SaveProfile(sampleForm())
		if err != nil || outcome != SaveOK {
			t.Fatalf("SaveProfile() = %v, %v, want SaveOK", outcome, err)
		}

		second := sampleForm()
		second.LastName = "Adams"
		if outcome, err := svc.SaveProfile(second); err != nil || outcome != SaveOK {
			t.Fatalf("SaveProfile() = %v, %v, want SaveOK", outcome, err)
		}

		profiles := svc.ListProfiles()
		if len(profiles) != 2 {
			t.Fatalf("ListProfiles() returned %d profiles, want 2", len(profiles))
		}
		if profiles[0].LastName != "Adams" || profiles[1].LastName != "Smith" {
			t.Errorf("ListProfiles() order = %s, %s, want Adams, Smith", profiles[0].LastName, profiles[1].LastName)
		}

		info, err := svc.StoreInfo()
		if err != nil {
			t.Fatalf("StoreInfo() error = %v", err)
		}
		if info.Count != 2 {
			t.Errorf("StoreInfo().Count = %d, want 2", info.Count)
		}
	})

	t.Run("blank field is invalid", func(t *testing.T) {
		svc, _ := openTestService(t)

		form := sampleForm()
		form.Extension = ""
		outcome, err := svc.SaveProfile(form)
		if outcome != SaveInvalid {
			t.Errorf("SaveProfile() outcome = %v, want SaveInvalid", outcome)
		}
		if err == nil {
			t.Error("SaveProfile() should return the validation error")
		}
		if outcome.Message() != MsgMissingFields {
			t.Errorf("Message() = %q, want %q", outcome.Message(), MsgMissingFields)
		}
		if got := svc.ListProfiles(); len(got) != 0 {
			t.Errorf("ListProfiles() returned %d profiles, want 0", len(got))
		}
	})

	t.Run("numeric text is not validated", func(t *testing.T) {
		svc, _ := openTestService(t)

		form := sampleForm()
		form.Velocity = "heater"
		if outcome, err := svc.SaveProfile(form); outcome != SaveOK {
			t.Errorf("SaveProfile() = %v, %v, want SaveOK", outcome, err)
		}
	})

	t.Run("write failure", func(t *testing.T) {
		svc := NewPitchService(failingStore{})

		outcome, err := svc.SaveProfile(sampleForm())
		if outcome != SaveFailed || err == nil {
			t.Errorf("SaveProfile() = %v, %v, want SaveFailed with error", outcome, err)
		}
		if outcome.Message() != MsgSaveFailed {
			t.Errorf("Message() = %q, want %q", outcome.Message(), MsgSaveFailed)
		}
	})
}

func TestFindProfile(t *testing.T) {
	svc, _ := openTestService(t)

	if _, err := svc.SaveProfile(sampleForm()); err != nil {
		t.Fatalf("SaveProfile() error = %v", err)
	}

	p, err := svc.FindProfile("Smith", "John")
	if err != nil {
		t.Fatalf("FindProfile() error = %v", err)
	}
	if *p != ProfileFromForm(sampleForm()) {
		t.Errorf("FindProfile() = %+v, want %+v", *p, ProfileFromForm(sampleForm()))
	}

	if _, err := svc.FindProfile("Smith", "Jane"); !errors.Is(err, store.ErrProfileNotFound) {
		t.Errorf("FindProfile() error = %v, want ErrProfileNotFound", err)
	}
}

func TestFormFromProfile(t *testing.T) {
	p := store.Profile{
		LastName:             "Smith",
		FirstName:            "John",
		ReleaseHeight:        "6",
		ReleaseSide:          "-1.50",
		Extension:            "6.0",
		Velocity:             "95",
		HorizontalBreak:      "-6",
		InducedVerticalBreak: "16.50",
	}

	form := FormFromProfile(p)

	// Non-break fields are shown verbatim
	if form.ReleaseHeight != "6" || form.ReleaseSide != "-1.50" || form.Velocity != "95" {
		t.Errorf("FormFromProfile() changed numeric fields: %+v", form)
	}
	if form.HorizontalBreak != "-6.0" {
		t.Errorf("HorizontalBreak = %q, want %q", form.HorizontalBreak, "-6.0")
	}
	if form.InducedVerticalBreak != "16.5" {
		t.Errorf("InducedVerticalBreak = %q, want %q", form.InducedVerticalBreak, "16.5")
	}
}

func TestFormatBreak(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"0", "0.0"},
		{"-6", "-6.0"},
		{"12.25", "12.25"},
		{"3.10", "3.1"},
		{" 4 ", "4.0"},
		{"n/a", "n/a"},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			if got := formatBreak(tt.in); got != tt.want {
				t.Errorf("formatBreak(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestFormatCoordinate(t *testing.T) {
	tests := []struct {
		coord trajectory.TarpCoordinate
		want  string
	}{
		{trajectory.TarpCoordinate{Horizontal: 0.29816513761467905, Vertical: 4.275204318412856}, "(0.30, 4.28)"},
		{trajectory.TarpCoordinate{Horizontal: -1.5, Vertical: 0}, "(-1.50, 0.00)"},
		{trajectory.TarpCoordinate{Horizontal: math.NaN(), Vertical: 1}, "(NaN, 1.00)"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			if got := FormatCoordinate(tt.coord); got != tt.want {
				t.Errorf("FormatCoordinate() = %q, want %q", got, tt.want)
			}
		})
	}
}
