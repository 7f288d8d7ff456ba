package tui

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
	"github.com/dustin/go-humanize"
	"go.seanlatimer.dev/amhub/internal/catalog"
	"go.seanlatimer.dev/amhub/internal/export"
	"go.uber.org/zap"
)

// detailView shows the selected preset. It reads the preset from the shared
// selection so that stepping between results never passes through Idle.
type detailView struct {
	state         *browseState
	results       []catalog.Preset
	index         int
	statusMessage string
	errMessage    string
}

func newDetailView(state *browseState, results []catalog.Preset, index int) detailView {
	return detailView{
		state:   state,
		results: results,
		index:   index,
	}
}

func (d detailView) Title() string {
	if p, ok := d.state.selection.Current(); ok {
		return p.Title
	}
	return "Preset"
}

func (d detailView) Init() tea.Cmd { return nil }

func (d detailView) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return d, nil
	}
	switch keyMsg.String() {
	case "ctrl+c":
		return d, quitApp()
	case "esc", "q", "backspace":
		d.state.selection.Dismiss()
		return d, popView(focusResultMsg{index: d.index})
	case "d", "enter":
		d.exportCurrent()
		return d, nil
	case "n", "right", "l":
		d.step(1)
		return d, nil
	case "p", "left", "h":
		d.step(-1)
		return d, nil
	}
	return d, nil
}

// step replaces the selection with the neighbouring result.
func (d *detailView) step(delta int) {
	if len(d.results) == 0 {
		return
	}
	next := d.index + delta
	if next < 0 || next >= len(d.results) {
		return
	}
	d.index = next
	d.state.selection.Select(d.results[next])
	d.statusMessage = ""
	d.errMessage = ""
}

func (d *detailView) exportCurrent() {
	p, ok := d.state.selection.Current()
	if !ok {
		return
	}
	result, err := export.Export(d.state.sink, p)
	if err != nil {
		d.state.logger.Warn("export failed", zap.Int("id", p.ID), zap.Error(err))
		d.statusMessage = ""
		d.errMessage = err.Error()
		return
	}
	d.state.logger.Info("exported preset",
		zap.Int("id", p.ID),
		zap.String("file", result.Name),
		zap.Int("bytes", result.Bytes))
	d.errMessage = ""
	d.statusMessage = fmt.Sprintf("Saved %s (%s)", d.state.exportPath(result.Name), humanize.Bytes(uint64(result.Bytes)))
}

func (d detailView) View() tea.View {
	v := tea.NewView("")
	v.SetContent(d.Content())
	return v
}

func (d detailView) Content() string {
	width := d.state.width
	if width == 0 {
		width = 80
	}
	contentWidth := contentWidthFor(width)
	fixedWidth := lipgloss.NewStyle().Width(contentWidth)

	p, ok := d.state.selection.Current()
	if !ok {
		return renderContainer(contentWidth, []string{getStyles().SubtleStyle.Render("Nothing selected")})
	}

	var lines []string
	title := p.Title
	if p.Featured {
		title = getStyles().FeaturedBadgeStyle.Render("[Featured]") + " " + getStyles().TitleStyle.Render(title)
	} else {
		title = getStyles().TitleStyle.Render(title)
	}
	lines = append(lines, fixedWidth.Render(title))
	lines = append(lines, fixedWidth.Render(getStyles().SubtleStyle.Render("by "+p.Author+" • "+p.Category)))
	lines = append(lines, "")

	fields := [][2]string{
		{"Rating", fmt.Sprintf("%.1f★", p.Rating)},
		{"Downloads", p.Downloads},
		{"Layers", fmt.Sprintf("%d", p.Layers)},
		{"Frame rate", fmt.Sprintf("%d fps", p.FPS)},
		{"Resolution", p.Resolution},
		{"Size", p.Size},
		{"File", export.FileName(p.Title)},
	}
	for _, f := range fields {
		lines = append(lines, fixedWidth.Render(fmt.Sprintf("%-11s %s", f[0]+":", f[1])))
	}
	lines = append(lines, "")

	if p.Description != "" {
		wrapped := lipgloss.NewStyle().Width(contentWidth).Render(p.Description)
		lines = append(lines, strings.Split(wrapped, "\n")...)
		lines = append(lines, "")
	}
	if len(p.Tags) > 0 {
		lines = append(lines, fixedWidth.Render(renderTags(p.Tags)))
		lines = append(lines, "")
	}

	position := fmt.Sprintf("%d of %d", d.index+1, len(d.results))
	lines = append(lines, fixedWidth.Render(getStyles().SubtleStyle.Render(position)))
	lines = append(lines, fixedWidth.Render(renderStatus(d.statusMessage, d.errMessage, contentWidth)))
	lines = append(lines, fixedWidth.Render(getStyles().FooterStyle.Render("D download XML • N/P next/prev • Esc back")))

	return renderContainer(contentWidth, lines)
}
