package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"thaqu/internal/selection"
	"thaqu/internal/viewport"
)

func click(x, y int) tea.MouseMsg {
	return tea.MouseMsg{X: x, Y: y, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft}
}

func wheel(x, y int, up bool) tea.MouseMsg {
	b := tea.MouseButtonWheelDown
	if up {
		b = tea.MouseButtonWheelUp
	}
	return tea.MouseMsg{X: x, Y: y, Action: tea.MouseActionPress, Button: b}
}

func motion(x, y int, b tea.MouseButton) tea.MouseMsg {
	return tea.MouseMsg{X: x, Y: y, Action: tea.MouseActionMotion, Button: b}
}

func release(x, y int) tea.MouseMsg {
	return tea.MouseMsg{X: x, Y: y, Action: tea.MouseActionRelease, Button: tea.MouseButtonNone}
}

func TestCatalogGeometry(t *testing.T) {
	m, _ := newTestModel(t, nil)
	l := m.layout()
	assert.False(t, l.wide)
	assert.Equal(t, 80, l.catalogW)
	assert.Equal(t, 27, l.contentH)
	assert.Equal(t, 7, l.tableHeight(m.cat.Len()))
	assert.Equal(t, 4, l.firstRowY())
	assert.Equal(t, 11, l.satelliteY(7))
	assert.Equal(t, 55, m.tableWidth())
	assert.Equal(t, colLot, m.columnAt(0))
	assert.Equal(t, colPlan, m.columnAt(50))
	assert.Equal(t, -1, m.columnAt(55))

	m = step(t, m, tea.WindowSizeMsg{Width: 120, Height: 30})
	l = m.layout()
	assert.True(t, l.wide)
	assert.Equal(t, 61, l.catalogW)
	assert.Equal(t, 61, l.contactX)
	assert.Equal(t, 59, l.contactW)
}

func TestClickRowSelectsLot(t *testing.T) {
	m, _ := newTestModel(t, nil)
	m = step(t, m, click(5, 6))

	s := m.State()
	require.True(t, s.DetailOpen)
	require.NotNil(t, s.Lot)
	assert.Equal(t, "A1-3", s.Lot.ID)
	assert.Equal(t, 2, m.tbl.Cursor())
}

func TestClickPlanCellOnlyOpensViewer(t *testing.T) {
	m, _ := newTestModel(t, nil)
	m = step(t, m, click(52, 5))

	s := m.State()
	assert.Equal(t, selection.ActiveImagePlan, s.Active())
	assert.False(t, s.DetailOpen)
	assert.Nil(t, s.Lot)
	require.NotNil(t, s.ViewerLot)
	assert.Equal(t, "A1-2", s.ViewerLot.ID)
}

func TestClickSatelliteButton(t *testing.T) {
	m, _ := newTestModel(t, nil)
	m = step(t, m, click(40, 11))
	assert.True(t, m.State().Closed(), "past the end of the button")

	m = step(t, m, click(3, 11))
	assert.Equal(t, selection.ActiveImageSatellite, m.State().Active())
}

func TestClickBelowRowsDoesNothing(t *testing.T) {
	m, _ := newTestModel(t, nil)
	m = step(t, m, click(5, 10), click(5, 3))
	assert.True(t, m.State().Closed())
}

func TestDetailClicks(t *testing.T) {
	m, _ := newTestModel(t, nil)
	m = step(t, m, click(5, 4))
	lot, ok := m.sel.Lot()
	require.True(t, ok)

	_, r, d := m.detailBox(lot, m.layout())
	require.Less(t, 0, r.x, "modal must leave a backdrop")

	// plan line opens the viewer over the detail
	m = step(t, m, click(r.x+3, r.y+2+d.planLine))
	assert.Equal(t, selection.ActiveImagePlan, m.State().Active())
	m = step(t, m, keyEsc)

	// quote line hands over to the contact pane
	m = step(t, m, click(r.x+3, r.y+2+d.quoteLine))
	assert.True(t, m.State().Closed())
	assert.Equal(t, sectionContact, m.section)
	assert.Equal(t, "A1-1", m.form.form().LotID)
}

func TestDetailBackdropCloses(t *testing.T) {
	m, _ := newTestModel(t, nil)
	m = step(t, m, click(5, 4))
	require.True(t, m.State().DetailOpen)

	m = step(t, m, click(0, 2))
	assert.True(t, m.State().Closed())
}

func TestViewerWheelAndDrag(t *testing.T) {
	m, _ := newTestModel(t, nil)
	m = step(t, m, runes("s"))
	vp := m.sel.Viewport()
	require.NotNil(t, vp)

	// no drag at fit
	m = step(t, m, click(10, 10))
	assert.False(t, vp.Dragging())

	m = step(t, m, wheel(10, 10, true))
	assert.Equal(t, 1.5, vp.Zoom())
	// wheel outside the image is swallowed
	m = step(t, m, wheel(0, 10, true))
	assert.Equal(t, 1.5, vp.Zoom())

	m = step(t, m, click(10, 10), motion(14, 12, tea.MouseButtonLeft))
	assert.True(t, vp.Dragging())
	assert.Equal(t, viewport.Point{X: 4, Y: 2}, vp.Pan())

	m = step(t, m, release(14, 12))
	assert.False(t, vp.Dragging())
	m = step(t, m, motion(20, 20, tea.MouseButtonLeft))
	assert.Equal(t, viewport.Point{X: 4, Y: 2}, vp.Pan())

	m = step(t, m, wheel(10, 10, false))
	assert.Equal(t, 1.0, vp.Zoom())
	assert.Equal(t, viewport.Point{}, vp.Pan())
	assert.Equal(t, selection.ActiveImageSatellite, m.State().Active())
}

func TestDragEndsWhenPointerLeavesOrFocusIsLost(t *testing.T) {
	m, _ := newTestModel(t, nil)
	m = step(t, m, runes("s"), runes("+"))
	vp := m.sel.Viewport()
	require.NotNil(t, vp)

	m = step(t, m, click(10, 10))
	require.True(t, vp.Dragging())
	m = step(t, m, motion(1, 10, tea.MouseButtonLeft))
	assert.False(t, vp.Dragging())
	assert.Equal(t, selection.ActiveImageSatellite, m.State().Active())

	m = step(t, m, click(10, 10))
	require.True(t, vp.Dragging())
	m = step(t, m, tea.BlurMsg{})
	assert.False(t, vp.Dragging())

	// a motion report without the button means the release got lost
	m = step(t, m, click(10, 10), motion(11, 10, tea.MouseButtonNone))
	assert.False(t, vp.Dragging())
}

func TestViewerBarClicks(t *testing.T) {
	m, _ := newTestModel(t, nil)
	m = step(t, m, runes("v"))
	vp := m.sel.Viewport()
	require.NotNil(t, vp)

	at := func(action string) int {
		for _, h := range m.viewerBar(vp).hits {
			if h.action == action {
				return h.startX
			}
		}
		t.Fatalf("no %s control", action)
		return 0
	}
	m = step(t, m, click(at(actZoomIn), 1))
	assert.Equal(t, 1.5, vp.Zoom())
	m = step(t, m, click(at(actReset), 1))
	assert.Equal(t, 1.0, vp.Zoom())

	for i := 0; i < 6; i++ {
		m = step(t, m, runes("+"))
	}
	for _, h := range m.viewerBar(vp).hits {
		assert.NotEqual(t, actZoomIn, h.action, "zoom in is disabled at max")
	}

	m = step(t, m, click(at(actClose), 1))
	assert.True(t, m.State().Closed())
}

func TestViewerBackdropClickCloses(t *testing.T) {
	m, _ := newTestModel(t, nil)
	m = step(t, m, runes("s"), runes("+"))
	m = step(t, m, click(0, 10))
	assert.True(t, m.State().Closed())
	assert.Nil(t, m.sel.Viewport())

	// reopening starts at fit
	m = step(t, m, runes("s"))
	assert.Equal(t, 1.0, m.sel.Viewport().Zoom())
}

func TestViewerCaptionRowIsBackdrop(t *testing.T) {
	m, _ := newTestModel(t, nil)
	m = step(t, m, runes("s"), runes("+"))
	vp := m.sel.Viewport()
	require.NotNil(t, vp)
	area := m.layout().imageArea()

	// the last picture row still drags
	m = step(t, m, click(10, area.y+area.h-1))
	assert.True(t, vp.Dragging())
	m = step(t, m, release(10, area.y+area.h-1))

	m = step(t, m, click(10, area.y+area.h))
	assert.True(t, m.State().Closed())
}

func TestWideLayoutClicksSwitchPanes(t *testing.T) {
	m, _ := newTestModel(t, nil)
	m = step(t, m, tea.WindowSizeMsg{Width: 120, Height: 30})
	m = step(t, m, click(80, 10))
	assert.Equal(t, sectionContact, m.section)
	assert.True(t, m.State().Closed())

	m = step(t, m, click(5, 4))
	assert.Equal(t, sectionCatalog, m.section)
	assert.True(t, m.State().DetailOpen)
}
