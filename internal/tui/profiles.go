package tui

import (
	"fmt"
	"log"

	"pitchtarp/internal/service"
	"pitchtarp/internal/store"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/dustin/go-humanize"
)

// ProfilesModel is the saved profiles selector
type ProfilesModel struct {
	service  *service.PitchService
	profiles []store.Profile
	info     store.Info
	cursor   int
	loading  bool
}

// NewProfilesModel creates a new profiles model
func NewProfilesModel(ps *service.PitchService) ProfilesModel {
	return ProfilesModel{
		service: ps,
		loading: true,
	}
}

// Init loads the profiles
func (m ProfilesModel) Init() tea.Cmd {
	return m.loadProfiles
}

type profilesLoadedMsg struct {
	profiles []store.Profile
	info     store.Info
}

// ProfileSelectedMsg is sent when a profile is picked from the list
type ProfileSelectedMsg struct {
	Profile store.Profile
}

func (m ProfilesModel) loadProfiles() tea.Msg {
	profiles := m.service.ListProfiles()
	info, err := m.service.StoreInfo()
	if err != nil {
		log.Printf("Error reading profiles file info: %v", err)
	}
	return profilesLoadedMsg{profiles: profiles, info: info}
}

// Profiles returns the loaded profiles
func (m ProfilesModel) Profiles() []store.Profile {
	return m.profiles
}

// Update handles messages
func (m ProfilesModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case profilesLoadedMsg:
		m.loading = false
		m.profiles = msg.profiles
		m.info = msg.info
		if m.cursor >= len(m.profiles) {
			m.cursor = max(len(m.profiles)-1, 0)
		}

	case tea.KeyMsg:
		switch msg.String() {
		case "up", "k":
			if m.cursor > 0 {
				m.cursor--
			}
		case "down", "j":
			if m.cursor < len(m.profiles)-1 {
				m.cursor++
			}
		case "home", "g":
			m.cursor = 0
		case "end", "G":
			m.cursor = max(len(m.profiles)-1, 0)
		case "r":
			m.loading = true
			return m, m.loadProfiles
		case "enter":
			if m.cursor < len(m.profiles) {
				p := m.profiles[m.cursor]
				return m, func() tea.Msg {
					return ProfileSelectedMsg{Profile: p}
				}
			}
		}
	}
	return m, nil
}

// View renders the profiles list
func (m ProfilesModel) View() string {
	if m.loading {
		return "\n  Loading profiles..."
	}

	title := cardTitleStyle.Render("Select Profile")

	if len(m.profiles) == 0 {
		empty := lipgloss.NewStyle().Foreground(mutedColor).Render(service.MsgNoProfiles)
		hint := statusStyle.Render("Fill in the calculator and press ctrl+s to save a profile.")
		return cardStyle.Render(lipgloss.JoinVertical(lipgloss.Left, title, empty, hint))
	}

	header := tableHeaderStyle.Render(fmt.Sprintf("%-24s  %7s  %7s  %6s  %6s  %7s  %7s",
		"Name", "Height", "Side", "Ext", "Velo", "HB", "IVB"))

	rows := []string{header}
	for i, p := range m.profiles {
		line := fmt.Sprintf("%-24s  %7s  %7s  %6s  %6s  %7s  %7s",
			truncateName(p.DisplayName(), 24),
			truncateName(p.ReleaseHeight, 7),
			truncateName(p.ReleaseSide, 7),
			truncateName(p.Extension, 6),
			truncateName(p.Velocity, 6),
			truncateName(p.HorizontalBreak, 7),
			truncateName(p.InducedVerticalBreak, 7),
		)
		if i == m.cursor {
			rows = append(rows, tableSelectedStyle.Render(line))
		} else {
			rows = append(rows, tableRowStyle.Render(line))
		}
	}

	table := lipgloss.JoinVertical(lipgloss.Left, rows...)
	footer := statusStyle.Render(m.renderStatus() + "\n" +
		RenderKeyHelp("j/k", "move") + "  " + RenderKeyHelp("enter", "load") + "  " + RenderKeyHelp("r", "reload"))

	return cardStyle.Render(lipgloss.JoinVertical(lipgloss.Left, title, table, footer))
}

func (m ProfilesModel) renderStatus() string {
	noun := "profiles"
	if len(m.profiles) == 1 {
		noun = "profile"
	}
	status := fmt.Sprintf("%s %s", humanize.Comma(int64(len(m.profiles))), noun)
	if m.info.Exists && !m.info.ModTime.IsZero() {
		status += ", updated " + humanize.Time(m.info.ModTime)
	}
	return status
}

func truncateName(s string, max int) string {
	if len(s) <= max {
		return s
	}
	return s[:max-3] + "..."
}
