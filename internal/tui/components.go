package tui

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"
	"go.seanlatimer.dev/amhub/internal/catalog"
)

const (
	minContentWidth = 40
	maxContentWidth = 90
)

func contentWidthFor(width int) int {
	contentWidth := width - 4
	if contentWidth < minContentWidth {
		contentWidth = minContentWidth
	}
	if contentWidth > maxContentWidth {
		contentWidth = maxContentWidth
	}
	return contentWidth
}

func renderContainer(contentWidth int, lines []string) string {
	containerStyle := getStyles().BorderStyle.
		BorderForeground(getStyles().Subtle).
		Width(contentWidth+4).
		Padding(0, 1)
	return containerStyle.Render(strings.Join(lines, "\n"))
}

func renderStatus(status, errMessage string, width int) string {
	if errMessage != "" {
		return getStyles().ErrorStyle.Render(truncateToWidth("Error: "+errMessage, width))
	}
	if status != "" {
		return getStyles().SuccessStyle.Render(truncateToWidth(status, width))
	}
	return ""
}

func renderCategoryBar(categories []string, active, width int) string {
	parts := make([]string, 0, len(categories))
	for i, c := range categories {
		if i == active {
			parts = append(parts, getStyles().ActiveCategoryStyle.Render(" "+c+" "))
			continue
		}
		parts = append(parts, getStyles().CategoryStyle.Render(" "+c+" "))
	}
	return lipgloss.NewStyle().Width(width).Render(strings.Join(parts, " "))
}

func renderPresetRow(p catalog.Preset, selected bool, width int) string {
	cursor := "  "
	if selected {
		cursor = "> "
	}
	badge := ""
	if p.Featured {
		badge = "[Featured] "
	}
	line := fmt.Sprintf("%s%s%s — %s  %.1f★ · %d layers · %d fps · %s downloads",
		cursor, badge, p.Title, p.Author, p.Rating, p.Layers, p.FPS, p.Downloads)
	line = truncateToWidth(line, width)
	if selected {
		return getStyles().SelectedStyle.Render(line)
	}
	return line
}

func renderTags(tags []string) string {
	parts := make([]string, 0, len(tags))
	for _, tag := range tags {
		parts = append(parts, "#"+tag)
	}
	return getStyles().TagStyle.Render(strings.Join(parts, " "))
}

func truncateToWidth(text string, width int) string {
	if width <= 0 {
		return ""
	}
	runes := []rune(text)
	if len(runes) <= width {
		return text
	}
	if width == 1 {
		return string(runes[:1])
	}
	return string(runes[:width-1]) + "…"
}
