package ui

import (
	"github.com/charmbracelet/lipgloss"
)

// Theme colors used throughout the UI
const (
	ColorBrand     = "#287238" // Brand green - spinner, back button
	ColorPicked    = "#28a745" // Green - picked status
	ColorNotPicked = "#dc3545" // Red - any other status, errors
	ColorBorder    = "#dddddd" // Card and tile borders
	ColorHighlight = "205"     // Magenta - selected tile
	ColorMuted     = "241"     // Gray - hints, image links
	ColorText      = "252"     // Light gray - normal text
)

// Styles contains shared style definitions used across screens.
var Styles = struct {
	Title      lipgloss.Style // Screen title
	BackButton lipgloss.Style // "← Back" button
	Spinner    lipgloss.Style // Loading and refresh indicators
	Error      lipgloss.Style // Fetch failure text
	Status     lipgloss.Style // Status line (bottom)

	Card      lipgloss.Style // Product card box
	Label     lipgloss.Style // "Name:", "SKU:" labels
	Image     lipgloss.Style // Image link line
	Picked    lipgloss.Style // Pickup status == "Picked"
	NotPicked lipgloss.Style // Any other pickup status

	Tile         lipgloss.Style // Seller tile
	TileSelected lipgloss.Style // Seller tile under the cursor
	SellerName   lipgloss.Style
	ItemCount    lipgloss.Style

	Empty lipgloss.Style // Empty list text (muted, italic)
	Hint  lipgloss.Style // Help/hint text
	Modal lipgloss.Style // Prompt box
}{
	Title: lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(ColorBrand)),
	BackButton: lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("#ffffff")).
		Background(lipgloss.Color(ColorBrand)).
		Padding(0, 1).
		MarginBottom(1),
	Spinner: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorBrand)),
	Error: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorNotPicked)),
	Status: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorMuted)),
	Card: lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(ColorBorder)).
		Padding(0, 1).
		MarginBottom(1),
	Label: lipgloss.NewStyle().
		Bold(true),
	Image: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorMuted)).
		Underline(true),
	Picked: lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(ColorPicked)),
	NotPicked: lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(ColorNotPicked)),
	Tile: lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(ColorBorder)).
		Padding(0, 1),
	TileSelected: lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(ColorHighlight)).
		Padding(0, 1),
	SellerName: lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(ColorText)),
	ItemCount: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorText)),
	Empty: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorMuted)).
		Italic(true),
	Hint: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorMuted)),
	Modal: lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(ColorHighlight)).
		Padding(1, 2).
		Margin(1),
}
