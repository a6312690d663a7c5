// Package theme defines the shared color palette used by the error
// formatter and the logger styles.
package theme

// Color constants (hex) shared across the UI.
const (
	ColorGreen  = "#00FF00"
	ColorRed    = "#FF0000"
	ColorYellow = "#FFFF00"
	ColorCyan   = "#00FFFF"
	ColorGray   = "#808080"
	ColorBorder = "#5F5FD7"
)
