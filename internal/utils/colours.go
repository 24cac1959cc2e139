package utils

import "github.com/charmbracelet/lipgloss"

// ColourScheme holds the subset of the Catppuccin Mocha palette the form uses
type ColourScheme struct {
	Red      string
	Green    string
	Blue     string
	Mauve    string
	Text     string
	Subtext0 string
	Surface1 string
	Surface0 string
	Base     string
}

// Colours provides the default Catppuccin color scheme
var Colours = ColourScheme{
	Red:      "#f38ba8",
	Green:    "#a6e3a1",
	Blue:     "#89b4fa",
	Mauve:    "#cba6f7",
	Text:     "#cdd6f4",
	Subtext0: "#a6adc8",
	Surface1: "#45475a",
	Surface0: "#313244",
	Base:     "#1e1e2e",
}

// FormStyles groups the lipgloss styles shared by the form views
type FormStyles struct {
	Container     lipgloss.Style
	Title         lipgloss.Style
	Label         lipgloss.Style
	Input         lipgloss.Style
	FocusedInput  lipgloss.Style
	Error         lipgloss.Style
	Button        lipgloss.Style
	FocusedButton lipgloss.Style
	Card          lipgloss.Style
	Help          lipgloss.Style
}

// NewFormStyles builds the styles from the colour scheme
func NewFormStyles(c ColourScheme) FormStyles {
	input := lipgloss.NewStyle().
		Foreground(lipgloss.Color(c.Text)).
		Padding(0, 1).
		Border(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color(c.Surface1)).
		Width(44)

	button := lipgloss.NewStyle().
		Foreground(lipgloss.Color(c.Text)).
		Background(lipgloss.Color(c.Surface0)).
		Padding(0, 3)

	return FormStyles{
		Container: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color(c.Green)).
			Padding(1).
			Width(52),
		Title: lipgloss.NewStyle().
			Foreground(lipgloss.Color(c.Green)).
			Bold(true),
		Label: lipgloss.NewStyle().
			Foreground(lipgloss.Color(c.Text)).
			Bold(true),
		Input:        input,
		FocusedInput: input.BorderForeground(lipgloss.Color(c.Blue)),
		Error: lipgloss.NewStyle().
			Foreground(lipgloss.Color(c.Red)),
		Button: button,
		FocusedButton: button.
			Foreground(lipgloss.Color(c.Base)).
			Background(lipgloss.Color(c.Green)).
			Bold(true),
		Card: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color(c.Mauve)).
			Padding(0, 1),
		Help: lipgloss.NewStyle().
			Foreground(lipgloss.Color(c.Subtext0)).
			Italic(true),
	}
}
