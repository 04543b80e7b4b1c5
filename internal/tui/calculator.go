package tui

import (
	"fmt"
	"strings"

	"pitchtarp/internal/service"
	"pitchtarp/internal/store"
	"pitchtarp/internal/trajectory"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// Form field order
const (
	fieldLastName = iota
	fieldFirstName
	fieldReleaseHeight
	fieldReleaseSide
	fieldExtension
	fieldVelocity
	fieldHorizontalBreak
	fieldInducedVerticalBreak
	fieldCount
)

var fieldLabels = [fieldCount]string{
	"Last Name:",
	"First Name:",
	"Release Height (feet):",
	"Release Side (feet):",
	"Extension (feet):",
	"Velocity (mph):",
	"Horizontal Break (inches):",
	"Induced Vertical Break (inches):",
}

// CalculatorModel is the pitch form, tarp grid and flight path screen
type CalculatorModel struct {
	service      *service.PitchService
	inputs       []textinput.Model
	focus        int
	editing      bool
	tarpDistance float64
	chartSamples int

	// Result of the last calculation; nil clears the target
	coord  *trajectory.TarpCoordinate
	path   []trajectory.PathPoint
	errMsg string

	status    string
	statusErr bool
	saving    bool
}

// NewCalculatorModel creates a new calculator with the first field focused
func NewCalculatorModel(ps *service.PitchService, tarpDistance float64, chartSamples int) CalculatorModel {
	m := CalculatorModel{
		service:      ps,
		inputs:       make([]textinput.Model, fieldCount),
		tarpDistance: trajectory.ClampTarpDistance(tarpDistance),
		chartSamples: chartSamples,
		editing:      true,
	}

	for i := range m.inputs {
		ti := textinput.New()
		ti.Prompt = ""
		ti.CharLimit = 32
		ti.Width = 20
		m.inputs[i] = ti
	}
	m.inputs[0].Focus()

	return m
}

// Init initializes the calculator
func (m CalculatorModel) Init() tea.Cmd {
	return textinput.Blink
}

// Editing reports whether keystrokes go to the form
func (m CalculatorModel) Editing() bool {
	return m.editing
}

// ProfileSavedMsg is sent when a save attempt finishes
type ProfileSavedMsg struct {
	Outcome service.SaveOutcome
	Err     error
}

// Update handles messages
func (m CalculatorModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case ProfileSavedMsg:
		m.saving = false
		m.status = msg.Outcome.Message()
		m.statusErr = msg.Outcome != service.SaveOK
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+s":
			return m.save()
		case "pgup":
			m.adjustTarp(trajectory.TarpDistanceStep)
			return m, nil
		case "pgdown":
			m.adjustTarp(-trajectory.TarpDistanceStep)
			return m, nil
		}

		if m.editing {
			switch msg.String() {
			case "esc":
				m.editing = false
				m.inputs[m.focus].Blur()
				return m, nil
			case "enter":
				m.calculate()
				return m, nil
			case "tab", "down":
				return m, m.setFocus(m.focus + 1)
			case "shift+tab", "up":
				return m, m.setFocus(m.focus - 1)
			}

			var cmd tea.Cmd
			m.inputs[m.focus], cmd = m.inputs[m.focus].Update(msg)
			return m, cmd
		}

		switch msg.String() {
		case "e", "i", "tab":
			m.editing = true
			return m, m.inputs[m.focus].Focus()
		case "enter", "c":
			m.calculate()
		case "[", "left":
			m.adjustTarp(-trajectory.TarpDistanceStep)
		case "]", "right":
			m.adjustTarp(trajectory.TarpDistanceStep)
		}
		return m, nil
	}

	// Cursor blink and other input messages
	var cmd tea.Cmd
	m.inputs[m.focus], cmd = m.inputs[m.focus].Update(msg)
	return m, cmd
}

func (m *CalculatorModel) setFocus(i int) tea.Cmd {
	m.inputs[m.focus].Blur()
	m.focus = (i + fieldCount) % fieldCount
	return m.inputs[m.focus].Focus()
}

// adjustTarp moves the tarp and recalculates, like dragging the slider
func (m *CalculatorModel) adjustTarp(delta float64) {
	m.tarpDistance = trajectory.ClampTarpDistance(m.tarpDistance + delta)
	m.calculate()
}

// Form returns the current field values
func (m CalculatorModel) Form() service.PitchForm {
	v := func(i int) string { return m.inputs[i].Value() }
	return service.PitchForm{
		LastName:             v(fieldLastName),
		FirstName:            v(fieldFirstName),
		ReleaseHeight:        v(fieldReleaseHeight),
		ReleaseSide:          v(fieldReleaseSide),
		Extension:            v(fieldExtension),
		Velocity:             v(fieldVelocity),
		HorizontalBreak:      v(fieldHorizontalBreak),
		InducedVerticalBreak: v(fieldInducedVerticalBreak),
	}
}

// SetForm replaces every field value
func (m *CalculatorModel) SetForm(f service.PitchForm) {
	values := [fieldCount]string{
		f.LastName,
		f.FirstName,
		f.ReleaseHeight,
		f.ReleaseSide,
		f.Extension,
		f.Velocity,
		f.HorizontalBreak,
		f.InducedVerticalBreak,
	}
	for i, v := range values {
		m.inputs[i].SetValue(v)
	}
}

// LoadProfile fills the form from a saved profile and recalculates
func (m *CalculatorModel) LoadProfile(p store.Profile) {
	m.SetForm(service.FormFromProfile(p))
	m.status = "Loaded " + p.DisplayName()
	m.statusErr = false
	m.calculate()
}

// calculate runs the model on the current form. Parse failures clear the target.
func (m *CalculatorModel) calculate() {
	form := m.Form()

	coord, err := m.service.Compute(form, m.tarpDistance)
	if err != nil {
		m.coord = nil
		m.path = nil
		m.errMsg = service.MsgInvalidInput
		return
	}

	m.coord = &coord
	m.errMsg = ""
	m.path, _ = m.service.FlightPath(form, m.chartSamples)
}

func (m CalculatorModel) save() (tea.Model, tea.Cmd) {
	if m.saving {
		return m, nil
	}
	m.saving = true
	m.status = "Saving..."
	m.statusErr = false

	svc := m.service
	form := m.Form()
	return m, func() tea.Msg {
		outcome, err := svc.SaveProfile(form)
		return ProfileSavedMsg{Outcome: outcome, Err: err}
	}
}

// View renders the calculator
func (m CalculatorModel) View() string {
	left := m.renderForm()
	right := RenderTarp(m.coord)
	top := lipgloss.JoinHorizontal(lipgloss.Top, left, "  ", right)

	sections := []string{top}
	if chart := RenderFlightPath(m.path, m.tarpDistance); chart != "" {
		sections = append(sections, chart)
	}

	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

func (m CalculatorModel) renderForm() string {
	var lines []string

	lines = append(lines, cardTitleStyle.Render("Pitch Trajectory Calculator"))

	for i, in := range m.inputs {
		focused := m.editing && i == m.focus
		lines = append(lines, RenderField(fieldLabels[i], in.View(), focused))
	}

	// Tarp distance slider
	span := trajectory.MaxTarpDistance - trajectory.MinTarpDistance
	pct := (m.tarpDistance - trajectory.MinTarpDistance) / span
	lines = append(lines, "")
	lines = append(lines, RenderField("Tarp Distance (feet):",
		valueStyle.Render(fmt.Sprintf("%.1f", m.tarpDistance))+" "+RenderProgressBar(pct, 20), false))

	// Result
	lines = append(lines, "")
	if m.coord != nil {
		lines = append(lines, "Coordinates on the tarp: "+valueStyle.Render(service.FormatCoordinate(*m.coord)))
		if !m.coord.IsFinite() {
			lines = append(lines, warningStyle.Render("Check velocity and extension: the result is not a real number"))
		} else if _, _, ok := trajectory.GridCell(*m.coord); !ok {
			lines = append(lines, warningStyle.Render("Off the tarp grid"))
		}
	} else {
		lines = append(lines, "")
	}
	if m.errMsg != "" {
		lines = append(lines, errorStyle.Render(m.errMsg))
	}

	if m.status != "" {
		if m.statusErr {
			lines = append(lines, errorStyle.Render(m.status))
		} else {
			lines = append(lines, successStyle.Render(m.status))
		}
	}

	lines = append(lines, statusStyle.Render(m.renderHints()))

	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

func (m CalculatorModel) renderHints() string {
	var hints []string
	if m.editing {
		hints = append(hints,
			RenderKeyHelp("tab", "next"),
			RenderKeyHelp("enter", "calculate"),
			RenderKeyHelp("esc", "done editing"),
		)
	} else {
		hints = append(hints,
			RenderKeyHelp("e", "edit"),
			RenderKeyHelp("[ ]", "move tarp"),
			RenderKeyHelp("enter", "calculate"),
		)
	}
	hints = append(hints,
		RenderKeyHelp("pgup/pgdn", "tarp"),
		RenderKeyHelp("ctrl+s", "save profile"),
	)
	return strings.Join(hints, "  ")
}
