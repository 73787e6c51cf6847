package render

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/arshjul/yearwheel/internal/domain"
)

// Style controls the visual appearance of a rendered wheel. All fields
// map to a YAML style file so deployments can reskin the output
// without a rebuild.
type Style struct {
	Background      string  `yaml:"background"`
	FontFamily      string  `yaml:"font_family"`
	FontSize        float64 `yaml:"font_size"`
	RingOpacity     float64 `yaml:"ring_opacity"`
	TickColor       string  `yaml:"tick_color"`
	LabelColor      string  `yaml:"label_color"`
	TodayColor      string  `yaml:"today_color"`
	WeekBandColor   string  `yaml:"week_band_color"`
	WeekBandOpacity float64 `yaml:"week_band_opacity"`
	ShowDayTicks    bool    `yaml:"show_day_ticks"`
	ShowWeekBands   bool    `yaml:"show_week_bands"`
	ShowLegend      bool    `yaml:"show_legend"`
}

// DefaultStyle is the light theme.
func DefaultStyle() Style {
	return Style{
		Background:      "#fbf1c7",
		FontFamily:      "Helvetica, Arial, sans-serif",
		FontSize:        16,
		RingOpacity:     0.25,
		TickColor:       "#7c6f64",
		LabelColor:      "#3c3836",
		TodayColor:      "#cc241d",
		WeekBandColor:   "#928374",
		WeekBandOpacity: 0.15,
		ShowDayTicks:    true,
		ShowWeekBands:   true,
		ShowLegend:      true,
	}
}

// DarkStyle is the dark theme.
func DarkStyle() Style {
	s := DefaultStyle()
	s.Background = "#282828"
	s.TickColor = "#a89984"
	s.LabelColor = "#ebdbb2"
	s.TodayColor = "#fb4934"
	s.WeekBandColor = "#665c54"
	return s
}

// StyleForTheme maps a share theme to a style. Auto resolves to light;
// browsers handle the actual preference via the share frontend, the
// renderer needs a concrete choice.
func StyleForTheme(theme domain.ShareTheme) Style {
	if theme == domain.ThemeDark {
		return DarkStyle()
	}
	return DefaultStyle()
}

// LoadStyle reads a YAML style file, filling unset fields from the
// default style.
func LoadStyle(path string) (Style, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Style{}, fmt.Errorf("reading style file: %w", err)
	}
	s := DefaultStyle()
	if err := yaml.Unmarshal(data, &s); err != nil {
		return Style{}, fmt.Errorf("parsing style file: %w", err)
	}
	return s, nil
}
