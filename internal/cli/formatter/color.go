package formatter

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/arshjul/yearwheel/internal/domain"
)

// Gruvbox-inspired color palette.
var (
	ColorGreen  = lipgloss.Color("#8ec07c")
	ColorYellow = lipgloss.Color("#fabd2f")
	ColorRed    = lipgloss.Color("#fb4934")
	ColorBlue   = lipgloss.Color("#83a598")
	ColorPurple = lipgloss.Color("#d3869b")
	ColorDim    = lipgloss.Color("#928374")
	ColorFg     = lipgloss.Color("#ebdbb2")
	ColorHeader = lipgloss.Color("#fe8019")
)

// Predefined lipgloss styles.
var (
	StyleGreen  = lipgloss.NewStyle().Foreground(ColorGreen)
	StyleYellow = lipgloss.NewStyle().Foreground(ColorYellow)
	StyleRed    = lipgloss.NewStyle().Foreground(ColorRed)
	StyleBlue   = lipgloss.NewStyle().Foreground(ColorBlue)
	StylePurple = lipgloss.NewStyle().Foreground(ColorPurple)
	StyleDim    = lipgloss.NewStyle().Foreground(ColorDim)
	StyleFg     = lipgloss.NewStyle().Foreground(ColorFg)
	StyleHeader = lipgloss.NewStyle().Foreground(ColorHeader).Bold(true)
	StyleBold   = lipgloss.NewStyle().Foreground(ColorFg).Bold(true)
)

// Header renders a section header with the orange header style and an underline.
func Header(text string) string {
	upper := strings.ToUpper(text)
	line := strings.Repeat("─", len(upper))
	return fmt.Sprintf("%s\n%s", StyleHeader.Render(upper), StyleDim.Render(line))
}

// Dim renders text in the muted/dim color.
func Dim(text string) string {
	return StyleDim.Render(text)
}

// Bold renders text in bold with the foreground color.
func Bold(text string) string {
	return StyleBold.Render(text)
}

// Swatch renders a small colored block for a hex color so lists show
// the ring color inline.
func Swatch(hex string) string {
	if hex == "" {
		return StyleDim.Render("· ------")
	}
	return lipgloss.NewStyle().Foreground(lipgloss.Color(hex)).Render("■ " + hex)
}

// LayerTypePill returns a colored indicator for the layer type.
func LayerTypePill(t domain.LayerType) string {
	switch t {
	case domain.LayerHolidays:
		return StyleGreen.Render("● Holidays")
	case domain.LayerOrganization:
		return StyleBlue.Render("● Organization")
	case domain.LayerCustom:
		return StylePurple.Render("● Custom")
	default:
		return StyleDim.Render(string(t))
	}
}

// VisibilityPill returns a colored indicator for share visibility.
func VisibilityPill(v domain.ShareVisibility) string {
	if v == domain.SharePublic {
		return StyleYellow.Render("◉ Public")
	}
	return StyleBlue.Render("● Users")
}

// TypeBadge returns a capitalized, purple-styled activity type label.
func TypeBadge(key string) string {
	if key == "" {
		return StyleDim.Render("--")
	}
	label := strings.ToUpper(key[:1]) + key[1:]
	return StylePurple.Render(label)
}
