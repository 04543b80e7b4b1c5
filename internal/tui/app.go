package tui

import (
	"pitchtarp/internal/config"
	"pitchtarp/internal/service"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// Screen identifiers
type Screen int

const (
	ScreenCalculator Screen = iota
	ScreenProfiles
	ScreenHelp
)

// App is the root Bubble Tea model
type App struct {
	screen     Screen
	prevScreen Screen

	// Screen models
	calculator CalculatorModel
	profiles   ProfilesModel
	help       HelpModel

	pitchService *service.PitchService

	// Window dimensions
	width  int
	height int
}

// NewApp creates a new App with all dependencies
func NewApp(ps *service.PitchService, display config.DisplayConfig) *App {
	return &App{
		screen:       ScreenCalculator,
		pitchService: ps,
		calculator:   NewCalculatorModel(ps, display.DefaultTarpDistance, display.ChartSamples),
		profiles:     NewProfilesModel(ps),
		help:         NewHelpModel(0, 0),
	}
}

// Init initializes the app
func (a *App) Init() tea.Cmd {
	return tea.Batch(a.calculator.Init(), a.profiles.Init())
}

// Update handles messages
func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			return a, tea.Quit
		}

		// Global keybindings (unless typing into the calculator form)
		if a.screen != ScreenCalculator || !a.calculator.Editing() {
			switch msg.String() {
			case "q":
				return a, tea.Quit
			case "1":
				a.screen = ScreenCalculator
				return a, a.calculator.Init()
			case "2":
				a.screen = ScreenProfiles
				return a, nil
			case "?":
				if a.screen != ScreenHelp {
					a.prevScreen = a.screen
					a.screen = ScreenHelp
				}
				return a, nil
			case "esc":
				if a.screen == ScreenHelp {
					a.screen = a.prevScreen
					return a, nil
				}
			}
		}

	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		var m tea.Model
		m, _ = a.help.Update(msg)
		a.help = m.(HelpModel)
		return a, nil

	case ProfileSelectedMsg:
		a.calculator.LoadProfile(msg.Profile)
		a.screen = ScreenCalculator
		return a, nil

	case ProfileSavedMsg:
		var m tea.Model
		m, _ = a.calculator.Update(msg)
		a.calculator = m.(CalculatorModel)
		// Reload the selector after every successful save
		if msg.Outcome == service.SaveOK {
			return a, a.profiles.Init()
		}
		return a, nil

	case profilesLoadedMsg:
		var m tea.Model
		m, _ = a.profiles.Update(msg)
		a.profiles = m.(ProfilesModel)
		return a, nil
	}

	// Delegate to current screen
	var cmd tea.Cmd
	switch a.screen {
	case ScreenCalculator:
		var m tea.Model
		m, cmd = a.calculator.Update(msg)
		a.calculator = m.(CalculatorModel)
	case ScreenProfiles:
		var m tea.Model
		m, cmd = a.profiles.Update(msg)
		a.profiles = m.(ProfilesModel)
	case ScreenHelp:
		var m tea.Model
		m, cmd = a.help.Update(msg)
		a.help = m.(HelpModel)
	}

	return a, cmd
}

// View renders the app
func (a *App) View() string {
	header := a.renderHeader()
	nav := a.renderNav()

	var content string
	switch a.screen {
	case ScreenCalculator:
		content = a.calculator.View()
	case ScreenProfiles:
		content = a.profiles.View()
	case ScreenHelp:
		content = a.help.View()
	}

	return lipgloss.JoinVertical(lipgloss.Left, header, nav, content)
}

func (a *App) renderHeader() string {
	return headerStyle.Render("Pitch Trajectory Calculator")
}

func (a *App) renderNav() string {
	items := []struct {
		key    string
		label  string
		screen Screen
	}{
		{"1", "Calculator", ScreenCalculator},
		{"2", "Profiles", ScreenProfiles},
		{"?", "Help", ScreenHelp},
	}

	var nav string
	for i, item := range items {
		if i > 0 {
			nav += "  "
		}

		label := "[" + item.key + "] " + item.label
		if a.screen == item.screen {
			nav += navActiveStyle.Render(label)
		} else {
			nav += navInactiveStyle.Render(label)
		}
	}

	nav += "  " + navInactiveStyle.Render("[q] Quit")

	return navStyle.Render(nav)
}
