package theme

import (
	"github.com/charmbracelet/lipgloss"
	log "github.com/charmbracelet/log"
)

// GetLogStyles returns charm/log styles configured with the theme colors.
// Level badges use a 4-character format for consistent alignment.
func GetLogStyles() *log.Styles {
	styles := log.DefaultStyles()

	styles.Levels[log.DebugLevel] = lipgloss.NewStyle().
		SetString("DEBU").
		Foreground(lipgloss.Color(ColorGray)).
		Bold(true)

	styles.Levels[log.InfoLevel] = lipgloss.NewStyle().
		SetString("INFO").
		Foreground(lipgloss.Color(ColorCyan)).
		Bold(true)

	styles.Levels[log.WarnLevel] = lipgloss.NewStyle().
		SetString("WARN").
		Foreground(lipgloss.Color(ColorYellow)).
		Bold(true)

	styles.Levels[log.ErrorLevel] = lipgloss.NewStyle().
		SetString("ERRO").
		Foreground(lipgloss.Color(ColorRed)).
		Bold(true)

	styles.Levels[log.FatalLevel] = lipgloss.NewStyle().
		SetString("FATA").
		Foreground(lipgloss.Color(ColorRed)).
		Bold(true)

	styles.Key = lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorGray))

	styles.Value = lipgloss.NewStyle()

	styles.Timestamp = lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorGray)).
		Faint(true)

	return styles
}

// GetLogStylesNoColor returns charm/log styles with no colors for --no-color mode.
func GetLogStylesNoColor() *log.Styles {
	styles := &log.Styles{
		Levels: make(map[log.Level]lipgloss.Style),
	}

	styles.Levels[log.DebugLevel] = lipgloss.NewStyle().SetString("DEBU")
	styles.Levels[log.InfoLevel] = lipgloss.NewStyle().SetString("INFO")
	styles.Levels[log.WarnLevel] = lipgloss.NewStyle().SetString("WARN")
	styles.Levels[log.ErrorLevel] = lipgloss.NewStyle().SetString("ERRO")
	styles.Levels[log.FatalLevel] = lipgloss.NewStyle().SetString("FATA")

	styles.Timestamp = lipgloss.NewStyle()
	styles.Message = lipgloss.NewStyle()
	styles.Key = lipgloss.NewStyle()
	styles.Value = lipgloss.NewStyle()
	styles.Prefix = lipgloss.NewStyle()
	styles.Separator = lipgloss.NewStyle()

	return styles
}
