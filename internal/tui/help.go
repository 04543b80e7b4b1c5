package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// HelpModel is the help screen model
type HelpModel struct {
	viewport viewport.Model
	ready    bool
}

// NewHelpModel creates a new help model
func NewHelpModel(width, height int) HelpModel {
	m := HelpModel{}
	if width > 0 && height > 0 {
		m.viewport = viewport.New(width, height-6)
		m.viewport.SetContent(m.renderContent())
		m.ready = true
	}
	return m
}

// Init initializes the help screen
func (m HelpModel) Init() tea.Cmd {
	return nil
}

// Update handles messages
func (m HelpModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if msg, ok := msg.(tea.WindowSizeMsg); ok {
		if !m.ready {
			m.viewport = viewport.New(msg.Width, msg.Height-6)
			m.viewport.SetContent(m.renderContent())
			m.ready = true
		} else {
			m.viewport.Width = msg.Width
			m.viewport.Height = msg.Height - 6
		}
	}

	var cmd tea.Cmd
	m.viewport, cmd = m.viewport.Update(msg)
	return m, cmd
}

// View renders the help screen
func (m HelpModel) View() string {
	if !m.ready {
		return m.renderContent()
	}
	return m.viewport.View()
}

type keyHelp struct {
	key  string
	desc string
}

func (m HelpModel) renderContent() string {
	var sections []string

	sections = append(sections, cardTitleStyle.Render("Keyboard Shortcuts"))

	sections = append(sections, m.renderSection("Navigation", []keyHelp{
		{"1", "Calculator"},
		{"2", "Profiles"},
		{"?", "Help (this screen)"},
		{"q", "Quit (not while editing)"},
		{"ctrl+c", "Quit"},
		{"esc", "Back / close help"},
	}))

	sections = append(sections, m.renderSection("Calculator", []keyHelp{
		{"tab / shift+tab", "Next / previous field"},
		{"enter", "Calculate"},
		{"esc", "Stop editing"},
		{"e", "Start editing"},
		{"[ / ]", "Move the tarp 0.5 ft closer / further"},
		{"pgdn / pgup", "Move the tarp while editing"},
		{"ctrl+s", "Save profile"},
	}))

	sections = append(sections, m.renderSection("Profiles", []keyHelp{
		{"j / down", "Move cursor down"},
		{"k / up", "Move cursor up"},
		{"enter", "Load into the calculator"},
		{"r", "Reload from disk"},
	}))

	sections = append(sections, m.renderInputsHelp())

	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

func (m HelpModel) renderSection(title string, keys []keyHelp) string {
	var lines []string

	lines = append(lines, "")
	lines = append(lines, lipgloss.NewStyle().Bold(true).Foreground(secondaryColor).Render(title))

	for _, k := range keys {
		lines = append(lines, "  "+RenderKeyHelp(k.key, k.desc))
	}

	return strings.Join(lines, "\n")
}

func (m HelpModel) renderInputsHelp() string {
	var lines []string

	lines = append(lines, "")
	lines = append(lines, lipgloss.NewStyle().Bold(true).Foreground(secondaryColor).Render("Inputs Explained"))
	lines = append(lines, "")

	inputs := []struct {
		name string
		desc string
	}{
		{"Release Height / Side", "Where the ball leaves the hand, in feet, relative to the rubber."},
		{"Extension", "How far in front of the rubber the ball is released, in feet."},
		{"Horizontal / Induced Vertical Break", "Pitch movement in inches, as reported by tracking systems."},
		{"Tarp Distance", "Distance from the rubber to the tarp, 11 to 60.5 ft."},
		{"Grid", "8x8 ft, one square per foot, centred on the plate, bottom edge on the ground."},
	}

	for _, in := range inputs {
		lines = append(lines, "  "+helpKeyStyle.Render(in.name))
		lines = append(lines, "  "+helpDescStyle.Render(in.desc))
		lines = append(lines, "")
	}

	return strings.Join(lines, "\n")
}
