package tui

import (
	"fmt"

	"pitchtarp/internal/trajectory"

	"github.com/charmbracelet/lipgloss"
	"github.com/guptarohit/asciigraph"
)

const (
	chartHeight = 8
	chartWidth  = 60
)

// RenderFlightPath charts the pitch height and side from release to the plate.
// It returns an empty string when there is nothing finite to plot.
func RenderFlightPath(points []trajectory.PathPoint, tarpDistance float64) string {
	if len(points) < 2 {
		return ""
	}
	for _, p := range points {
		if !p.IsFinite() {
			return ""
		}
	}

	title := cardTitleStyle.Render("Flight Path")

	graph := asciigraph.PlotMany(
		[][]float64{trajectory.Heights(points), trajectory.Sides(points)},
		asciigraph.Height(chartHeight),
		asciigraph.Width(chartWidth),
		asciigraph.Precision(2),
		asciigraph.SeriesColors(asciigraph.Red, asciigraph.Blue),
		asciigraph.Caption(fmt.Sprintf("feet, %.1f ft to %.1f ft from the rubber",
			points[0].Distance, points[len(points)-1].Distance)),
	)

	legend := lipgloss.JoinHorizontal(lipgloss.Left,
		lipgloss.NewStyle().Foreground(lipgloss.Color("#EF4444")).Render("── height"),
		"   ",
		lipgloss.NewStyle().Foreground(lipgloss.Color("#3B82F6")).Render("── side"),
		"   ",
		helpDescStyle.Render(fmt.Sprintf("tarp at %.1f ft", tarpDistance)),
	)

	return cardStyle.Render(lipgloss.JoinVertical(lipgloss.Left, title, graph, "", legend))
}
