package tui

import (
	"fmt"
	"path/filepath"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"go.uber.org/zap"

	"thaqu/internal/selection"
	"thaqu/internal/viewport"
)

const (
	actZoomIn  = "zoom_in"
	actZoomOut = "zoom_out"
	actReset   = "reset"
	actClose   = "close"
)

// viewerPath is the image file behind the open viewer.
func (m Model) viewerPath() string {
	st := m.sel.State()
	switch st.Viewer {
	case selection.ViewerPlan:
		id := ""
		if st.ViewerLot != nil {
			id = st.ViewerLot.ID
		}
		return m.cat.PlanImage(id)
	case selection.ViewerSatellite:
		return m.cat.SatelliteImage()
	}
	return ""
}

func (m Model) viewerCaption() string {
	st := m.sel.State()
	if st.Viewer == selection.ViewerSatellite {
		return m.tr.T("viewer.caption_satellite")
	}
	name := ""
	if st.ViewerLot != nil {
		name = st.ViewerLot.Name
	}
	return m.tr.Tf("viewer.caption_plan", name)
}

// viewerOpened starts loading the viewer image unless it is cached or
// already on its way.
func (m *Model) viewerOpened() tea.Cmd {
	path := m.viewerPath()
	if path == "" {
		return nil
	}
	if vp := m.sel.Viewport(); vp != nil {
		m.status = m.tr.Tf("msg.viewer_open", vp.Percent())
	}
	m.log.Debug("viewer opened", zap.String("viewer", m.sel.State().Viewer.String()), zap.String("image", path))
	if _, ok := m.pictures[path]; ok {
		return nil
	}
	m.pictures[path] = &pictureEntry{}
	return loadPicture(path)
}

func (m *Model) closeViewer() {
	m.sel.CloseViewer()
	m.status = m.tr.T("app.ready")
}

func (m *Model) viewerAction(action string) {
	vp := m.sel.Viewport()
	if vp == nil {
		return
	}
	switch action {
	case actZoomIn:
		vp.ZoomIn()
	case actZoomOut:
		vp.ZoomOut()
	case actReset:
		vp.Reset()
	case actClose:
		m.closeViewer()
		return
	}
	m.status = m.tr.Tf("msg.viewer_open", vp.Percent())
	m.logViewport(action, vp)
}

func (m *Model) logViewport(event string, vp *viewport.Viewport) {
	st := vp.State()
	m.log.Debug("viewport changed",
		zap.String("event", event),
		zap.Float64("zoom", st.Zoom),
		zap.Bool("dragging", st.Dragging),
		zap.Stringer("transform", vp.Transform()),
	)
}

type viewerBar struct {
	text string
	hits []hitRange
}

// viewerBar lays out the zoom controls on the viewer's top row, starting at
// the left margin.
func (m Model) viewerBar(vp *viewport.Viewport) viewerBar {
	segs := []struct {
		label   string
		action  string
		enabled bool
	}{
		{"[-] " + m.tr.T("viewer.zoom_out"), actZoomOut, vp.CanZoomOut()},
		{fmt.Sprintf("%d%%", vp.Percent()), "", true},
		{"[+] " + m.tr.T("viewer.zoom_in"), actZoomIn, vp.CanZoomIn()},
		{"[0] " + m.tr.T("viewer.reset"), actReset, true},
		{"[x] " + m.tr.T("viewer.close"), actClose, true},
	}
	var b strings.Builder
	var hits []hitRange
	cursor := viewerMargin
	for i, s := range segs {
		if i > 0 {
			b.WriteString("  ")
			cursor += 2
		}
		style := linkStyle
		switch {
		case s.action == "":
			style = titleStyle
		case !s.enabled:
			style = disabledStyle
		}
		w := lipgloss.Width(s.label)
		b.WriteString(style.Render(s.label))
		if s.action != "" && s.enabled {
			hits = append(hits, hitRange{startX: cursor, endX: cursor + w, action: s.action})
		}
		cursor += w
	}
	return viewerBar{text: b.String(), hits: hits}
}

// viewerMouse handles every mouse event while a viewer is open; none of
// them reach the panes underneath.
func (m *Model) viewerMouse(msg tea.MouseMsg) {
	vp := m.sel.Viewport()
	if vp == nil {
		return
	}
	l := m.layout()
	area := l.imageArea()
	inside := area.contains(msg.X, msg.Y)

	switch msg.Action {
	case tea.MouseActionPress:
		switch msg.Button {
		case tea.MouseButtonWheelUp:
			if inside {
				vp.OnWheel(-1)
				m.status = m.tr.Tf("msg.viewer_open", vp.Percent())
				m.logViewport("wheel", vp)
			}
		case tea.MouseButtonWheelDown:
			if inside {
				vp.OnWheel(1)
				m.status = m.tr.Tf("msg.viewer_open", vp.Percent())
				m.logViewport("wheel", vp)
			}
		case tea.MouseButtonLeft:
			if msg.Y == l.contentY {
				if action, ok := findHit(m.viewerBar(vp).hits, msg.X); ok {
					m.viewerAction(action)
				}
				return
			}
			if inside {
				vp.BeginDrag(float64(msg.X), float64(msg.Y))
				return
			}
			// backdrop
			m.closeViewer()
		}
	case tea.MouseActionMotion:
		if !vp.Dragging() {
			return
		}
		// a motion without the button means the release was lost
		if msg.Button != tea.MouseButtonLeft || !inside {
			vp.EndDrag()
			return
		}
		vp.OnDrag(float64(msg.X), float64(msg.Y))
	case tea.MouseActionRelease:
		if vp.Dragging() {
			vp.EndDrag()
			m.logViewport("drag", vp)
		}
	}
}

func (m Model) viewerView(l layout) string {
	vp := m.sel.Viewport()
	if vp == nil {
		return ""
	}
	area := l.imageArea()
	path := m.viewerPath()

	var img []string
	e := m.pictures[path]
	switch {
	case e == nil || (e.pic == nil && e.err == nil):
		img = []string{dimStyle.Render("…")}
	case e.err != nil:
		img = []string{errorStyle.Render(m.tr.Tf("viewer.missing", filepath.Base(path)))}
	default:
		img = e.pic.render(area.w, area.h, vp.Transform())
	}
	canvas := lipgloss.Place(area.w, area.h, lipgloss.Center, lipgloss.Center, strings.Join(img, "\n"))
	canvas = lipgloss.NewStyle().PaddingLeft(viewerMargin).Render(canvas)

	hint := m.tr.T("viewer.hint_fit")
	if vp.Pannable() {
		hint = m.tr.T("viewer.hint_zoomed")
	}
	pad := strings.Repeat(" ", viewerMargin)
	clip := lipgloss.NewStyle().MaxWidth(l.contentW)
	lines := []string{
		clip.Render(pad + m.viewerBar(vp).text),
		canvas,
		clip.Render(pad + dimStyle.Render(m.viewerCaption())),
		pad + dimStyle.Render(hint),
	}
	return lipgloss.NewStyle().Width(l.contentW).Height(l.contentH).MaxHeight(l.contentH).Render(strings.Join(lines, "\n"))
}
