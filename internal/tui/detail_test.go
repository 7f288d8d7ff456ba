package tui

import (
	"errors"
	"testing"

	tea "charm.land/bubbletea/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.seanlatimer.dev/amhub/internal/catalog"
	"go.seanlatimer.dev/amhub/internal/export"
	"go.seanlatimer.dev/amhub/internal/query"
	"go.seanlatimer.dev/amhub/internal/selection"
)

func newTestApp(t *testing.T, sink *fakeSink) browserAppModel {
	t.Helper()
	c, err := catalog.Default()
	require.NoError(t, err)
	return newBrowserAppModel(BrowserOptions{Catalog: c, Sink: sink, ExportDir: "out"})
}

// send feeds msg to the app and follows any view stack command it returns.
func send(t *testing.T, m browserAppModel, msg tea.Msg) (browserAppModel, tea.Msg) {
	t.Helper()
	updated, cmd := m.Update(msg)
	m, ok := updated.(browserAppModel)
	require.True(t, ok)
	if cmd == nil {
		return m, nil
	}
	switch out := cmd().(type) {
	case pushViewMsg, popViewMsg:
		updated, _ = m.Update(out)
		m = updated.(browserAppModel)
		return m, out
	default:
		return m, out
	}
}

func content(t *testing.T, m browserAppModel) string {
	t.Helper()
	provider, ok := m.currentView().(interface{ Content() string })
	require.True(t, ok)
	return provider.Content()
}

func TestAppOpensDetailOnEnter(t *testing.T) {
	m := newTestApp(t, &fakeSink{})

	m, msg := send(t, m, key("enter"))

	assert.IsType(t, pushViewMsg{}, msg)
	require.Len(t, m.stack, 2)
	assert.Equal(t, selection.Viewing, m.state.selection.State())
	p, ok := m.state.selection.Current()
	require.True(t, ok)
	assert.Equal(t, 1, p.ID)
	assert.Contains(t, content(t, m), "ADITYA_EDITZZ_3K_PACK.xml")
}

func TestAppOpensHighlightedResult(t *testing.T) {
	m := newTestApp(t, &fakeSink{})

	m, _ = send(t, m, key("down"))
	m, _ = send(t, m, key("enter"))

	p, ok := m.state.selection.Current()
	require.True(t, ok)
	assert.Equal(t, 2, p.ID)
}

func TestDetailEscapeDismisses(t *testing.T) {
	m := newTestApp(t, &fakeSink{})
	m, _ = send(t, m, key("enter"))
	require.Len(t, m.stack, 2)

	m, msg := send(t, m, key("esc"))

	assert.IsType(t, popViewMsg{}, msg)
	assert.Len(t, m.stack, 1)
	assert.Equal(t, selection.Idle, m.state.selection.State())
	_, ok := m.state.selection.Current()
	assert.False(t, ok)
}

func TestDetailNextPrevStaysViewing(t *testing.T) {
	state := newTestState(t, &fakeSink{})
	results := state.memo.Filter(query.Reset())
	state.selection.Select(results[0])
	d := newDetailView(state, results, 0)

	updated, _ := d.Update(key("n"))
	d = updated.(detailView)
	p, ok := state.selection.Current()
	require.True(t, ok)
	assert.Equal(t, results[1].ID, p.ID)

	updated, _ = d.Update(key("p"))
	d = updated.(detailView)
	p, ok = state.selection.Current()
	require.True(t, ok)
	assert.Equal(t, results[0].ID, p.ID)

	// Stepping past the first result leaves the selection alone.
	updated, _ = d.Update(key("p"))
	d = updated.(detailView)
	p, _ = state.selection.Current()
	assert.Equal(t, results[0].ID, p.ID)
	assert.Equal(t, 0, d.index)
}

func TestDetailExport(t *testing.T) {
	sink := &fakeSink{}
	m := newTestApp(t, sink)
	m, _ = send(t, m, key("enter"))

	m, msg := send(t, m, key("d"))

	assert.Nil(t, msg)
	require.Len(t, sink.saved, 1)
	assert.Equal(t, "ADITYA_EDITZZ_3K_PACK.xml", sink.saved[0].name)
	assert.Equal(t, export.MimeType, sink.saved[0].mimeType)
	p, _ := m.state.selection.Current()
	assert.Equal(t, p.XML, string(sink.saved[0].content))
	assert.Contains(t, content(t, m), "Saved out/ADITYA_EDITZZ_3K_PACK.xml")
}

func TestDetailExportTwice(t *testing.T) {
	sink := &fakeSink{}
	m := newTestApp(t, sink)
	m, _ = send(t, m, key("enter"))

	m, _ = send(t, m, key("d"))
	m, _ = send(t, m, key("n"))
	_, _ = send(t, m, key("d"))

	require.Len(t, sink.saved, 2)
	assert.Equal(t, "ADITYA_EDITZZ_3K_PACK.xml", sink.saved[0].name)
	assert.Equal(t, "Cyberpunk_Glitch_Transitions.xml", sink.saved[1].name)
}

func TestDetailExportFailureIsReported(t *testing.T) {
	sink := &fakeSink{err: errors.New("disk full")}
	m := newTestApp(t, sink)
	m, _ = send(t, m, key("enter"))

	m, msg := send(t, m, key("d"))

	assert.Nil(t, msg)
	assert.Len(t, m.stack, 2)
	assert.Equal(t, selection.Viewing, m.state.selection.State())
	out := content(t, m)
	assert.Contains(t, out, "Error:")
	assert.Contains(t, out, "disk full")
}

func TestAppPopOnRootQuits(t *testing.T) {
	m := newTestApp(t, &fakeSink{})

	_, cmd := m.Update(popViewMsg{})

	require.NotNil(t, cmd)
	assert.IsType(t, tea.QuitMsg{}, cmd())
}

func TestAppCtrlCQuitsFromDetail(t *testing.T) {
	m := newTestApp(t, &fakeSink{})
	m, _ = send(t, m, key("enter"))

	_, msg := send(t, m, key("ctrl+c"))

	assert.IsType(t, quitAppMsg{}, msg)
}

func TestAppWindowSize(t *testing.T) {
	m := newTestApp(t, &fakeSink{})

	m, _ = send(t, m, tea.WindowSizeMsg{Width: 120, Height: 40})

	assert.Equal(t, 120, m.state.width)
	assert.Equal(t, 40, m.state.height)
	assert.Equal(t, "AM Hub • Browse", m.View().WindowTitle)
}

func rootBrowser(t *testing.T, m browserAppModel) browserView {
	t.Helper()
	require.NotEmpty(t, m.stack)
	b, ok := m.stack[0].(browserView)
	require.True(t, ok)
	return b
}

func TestAppResizeWhileDetailOpen(t *testing.T) {
	m := newTestApp(t, &fakeSink{})
	m, _ = send(t, m, tea.WindowSizeMsg{Width: 120, Height: 40})
	m, _ = send(t, m, key("enter"))
	require.Len(t, m.stack, 2)

	m, _ = send(t, m, tea.WindowSizeMsg{Width: 120, Height: 12})
	m, _ = send(t, m, key("esc"))
	require.Len(t, m.stack, 1)

	b := rootBrowser(t, m)
	assert.Equal(t, b.listHeight(), b.list.Height())
	assert.Equal(t, contentWidthFor(120), b.list.Width())

	for i := 0; i < 5; i++ {
		m, _ = send(t, m, key("down"))
	}
	b = rootBrowser(t, m)
	assert.Equal(t, 5, b.list.Index())
	assert.Contains(t, content(t, m), "Velocity Edit Helper")
}

func TestAppResizeNarrowWhileDetailOpen(t *testing.T) {
	m := newTestApp(t, &fakeSink{})
	m, _ = send(t, m, tea.WindowSizeMsg{Width: 120, Height: 40})
	m, _ = send(t, m, key("enter"))
	m, _ = send(t, m, tea.WindowSizeMsg{Width: 60, Height: 16})
	m, _ = send(t, m, key("esc"))

	b := rootBrowser(t, m)
	assert.Equal(t, 56, b.list.Width())
	assert.Equal(t, 6, b.list.Height())
}

func TestDetailBackKeepsCursorOnViewedResult(t *testing.T) {
	m := newTestApp(t, &fakeSink{})
	m, _ = send(t, m, key("enter"))
	m, _ = send(t, m, key("n"))
	m, _ = send(t, m, key("n"))
	m, _ = send(t, m, key("esc"))

	require.Len(t, m.stack, 1)
	assert.Equal(t, 2, rootBrowser(t, m).list.Index())

	m, _ = send(t, m, key("enter"))
	p, ok := m.state.selection.Current()
	require.True(t, ok)
	assert.Equal(t, 3, p.ID)
}

func TestAppPopWithoutResult(t *testing.T) {
	m := newTestApp(t, &fakeSink{})
	m, _ = send(t, m, key("down"))
	m, _ = send(t, m, key("enter"))

	updated, cmd := m.Update(popViewMsg{})
	m = updated.(browserAppModel)

	assert.Nil(t, cmd)
	assert.Len(t, m.stack, 1)
	assert.Equal(t, 1, rootBrowser(t, m).list.Index())
}
