package tui

import (
	"image/color"

	"charm.land/lipgloss/v2"
)

// Package-level styles instance (nil until initialized)
var appStyles *Styles

// Styles holds all application styles using terminal default colors
type Styles struct {
	Subtle color.Color

	BorderStyle         lipgloss.Style
	TitleStyle          lipgloss.Style
	SelectedStyle       lipgloss.Style
	SearchInputStyle    lipgloss.Style
	FooterStyle         lipgloss.Style
	SubtleStyle         lipgloss.Style
	ActiveCategoryStyle lipgloss.Style
	CategoryStyle       lipgloss.Style
	FeaturedBadgeStyle  lipgloss.Style
	TagStyle            lipgloss.Style
	EmptyStateStyle     lipgloss.Style
	ErrorStyle          lipgloss.Style
	SuccessStyle        lipgloss.Style
}

// newStyles creates a new Styles instance using terminal default colors.
// NoColor{} tells lipgloss to leave colors to the terminal theme.
func newStyles() *Styles {
	noColor := lipgloss.NoColor{}

	return &Styles{
		Subtle: noColor,

		BorderStyle: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(noColor),

		TitleStyle: lipgloss.NewStyle().
			Foreground(noColor).
			Bold(true),

		SelectedStyle: lipgloss.NewStyle().
			Foreground(noColor).
			Bold(true),

		SearchInputStyle: lipgloss.NewStyle().
			Foreground(noColor),

		FooterStyle: lipgloss.NewStyle().
			Foreground(noColor).
			Italic(true),

		SubtleStyle: lipgloss.NewStyle().
			Foreground(noColor).
			Faint(true),

		ActiveCategoryStyle: lipgloss.NewStyle().
			Foreground(noColor).
			Bold(true).
			Reverse(true),

		CategoryStyle: lipgloss.NewStyle().
			Foreground(noColor),

		FeaturedBadgeStyle: lipgloss.NewStyle().
			Foreground(noColor).
			Bold(true),

		TagStyle: lipgloss.NewStyle().
			Foreground(noColor).
			Faint(true),

		EmptyStateStyle: lipgloss.NewStyle().
			Foreground(noColor).
			Bold(true),

		ErrorStyle: lipgloss.NewStyle().
			Foreground(noColor).
			Bold(true),

		SuccessStyle: lipgloss.NewStyle().
			Foreground(noColor),
	}
}

// getStyles returns the current styles instance, with fallback for startup
func getStyles() *Styles {
	if appStyles == nil {
		return newStyles()
	}
	return appStyles
}
