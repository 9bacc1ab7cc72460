package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	"thaqu/internal/selection"
)

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.resize()
		return m, nil
	case tea.BlurMsg:
		// the terminal lost focus; the release will never arrive
		if vp := m.sel.Viewport(); vp != nil {
			vp.EndDrag()
		}
		return m, nil
	case pictureLoadedMsg:
		m.pictures[msg.path] = &pictureEntry{pic: msg.pic, err: msg.err}
		if msg.err != nil {
			m.log.Warn("image unavailable", zap.String("path", msg.path), zap.Error(msg.err))
		}
		return m, nil
	case linkCopiedMsg:
		if msg.err != nil {
			m.status = m.tr.Tf("msg.copy_failed", msg.err)
			m.log.Warn("clipboard write failed", zap.Error(msg.err))
		} else {
			m.status = m.tr.T("msg.copied")
		}
		return m, nil
	case tea.KeyMsg:
		cmd := m.handleKey(msg)
		return m, cmd
	case tea.MouseMsg:
		cmd := m.handleMouse(msg)
		return m, cmd
	}
	// blink and other component messages
	if m.section == sectionContact {
		var cmd tea.Cmd
		m.form, cmd = m.form.Update(msg)
		return m, cmd
	}
	return m, nil
}

func (m *Model) handleKey(msg tea.KeyMsg) tea.Cmd {
	if key.Matches(msg, m.keys.ForceQuit) {
		return tea.Quit
	}
	switch m.sel.State().Active() {
	case selection.ActiveImagePlan, selection.ActiveImageSatellite:
		return m.viewerKey(msg)
	case selection.ActiveLotDetail:
		return m.detailKey(msg)
	}
	if m.section == sectionContact {
		return m.contactKey(msg)
	}
	return m.catalogKey(msg)
}

func (m *Model) catalogKey(msg tea.KeyMsg) tea.Cmd {
	switch {
	case key.Matches(msg, m.keys.Quit):
		return tea.Quit
	case key.Matches(msg, m.keys.Help):
		m.helpVisible = !m.helpVisible
	case key.Matches(msg, m.keys.Section):
		return m.setSection(sectionContact)
	case key.Matches(msg, m.keys.Select):
		if l, ok := m.selectedLot(); ok {
			m.sel.SelectLot(l)
			m.log.Debug("lot selected", zap.String("lot", l.ID))
		}
	case key.Matches(msg, m.keys.Plan):
		if l, ok := m.selectedLot(); ok {
			m.sel.OpenThumbnail(l)
			return m.viewerOpened()
		}
	case key.Matches(msg, m.keys.Satellite):
		m.sel.OpenViewer(selection.ViewerSatellite)
		return m.viewerOpened()
	default:
		var cmd tea.Cmd
		m.tbl, cmd = m.tbl.Update(msg)
		return cmd
	}
	return nil
}

func (m *Model) detailKey(msg tea.KeyMsg) tea.Cmd {
	switch {
	case key.Matches(msg, m.keys.Close):
		m.sel.CloseDetail()
	case key.Matches(msg, m.keys.Quote):
		return m.requestQuote()
	case key.Matches(msg, m.keys.Plan):
		m.sel.OpenViewer(selection.ViewerPlan)
		return m.viewerOpened()
	}
	return nil
}

func (m *Model) viewerKey(msg tea.KeyMsg) tea.Cmd {
	switch {
	case key.Matches(msg, m.keys.ZoomIn):
		m.viewerAction(actZoomIn)
	case key.Matches(msg, m.keys.ZoomOut):
		m.viewerAction(actZoomOut)
	case key.Matches(msg, m.keys.Reset):
		m.viewerAction(actReset)
	case key.Matches(msg, m.keys.Close):
		m.viewerAction(actClose)
	}
	return nil
}

func (m *Model) contactKey(msg tea.KeyMsg) tea.Cmd {
	switch {
	case key.Matches(msg, m.keys.Back):
		return m.setSection(sectionCatalog)
	case key.Matches(msg, m.keys.Submit) && !m.form.submitted:
		return m.submitQuote()
	case key.Matches(msg, m.keys.WhatsApp):
		return m.openWhatsApp()
	case m.form.submitted && key.Matches(msg, m.keys.Another):
		return m.form.reset()
	}
	var cmd tea.Cmd
	m.form, cmd = m.form.Update(msg)
	return cmd
}

func (m *Model) handleMouse(msg tea.MouseMsg) tea.Cmd {
	st := m.sel.State()
	if st.Viewer != selection.ViewerNone {
		m.viewerMouse(msg)
		return nil
	}
	if msg.Action != tea.MouseActionPress {
		return nil
	}
	l := m.layout()
	if st.DetailOpen {
		return m.detailMouse(msg, l)
	}

	switch msg.Button {
	case tea.MouseButtonWheelUp:
		if l.inCatalog(msg.X, msg.Y) {
			m.tbl.MoveUp(1)
		}
		return nil
	case tea.MouseButtonWheelDown:
		if l.inCatalog(msg.X, msg.Y) {
			m.tbl.MoveDown(1)
		}
		return nil
	case tea.MouseButtonLeft:
	default:
		return nil
	}

	switch {
	case l.inCatalog(msg.X, msg.Y):
		var cmd tea.Cmd
		if m.section != sectionCatalog {
			cmd = m.setSection(sectionCatalog)
		}
		return tea.Batch(cmd, m.catalogClick(msg.X, msg.Y, l))
	case l.inContact(msg.X, msg.Y) && m.section != sectionContact:
		return m.setSection(sectionContact)
	}
	return nil
}

// catalogClick maps a click in the catalog pane to a lot row, the plan
// column of a row, or the satellite button.
func (m *Model) catalogClick(x, y int, l layout) tea.Cmd {
	th := l.tableHeight(m.cat.Len())
	left := l.catalogX + 2
	if y == l.satelliteY(th) {
		if x >= left && x < left+m.satelliteButtonWidth() {
			m.sel.OpenViewer(selection.ViewerSatellite)
			return m.viewerOpened()
		}
		return nil
	}
	// row positions are only known while every row is on screen
	if m.cat.Len() > th-1 {
		return nil
	}
	row := y - l.firstRowY()
	lot, ok := m.cat.At(row)
	if !ok {
		return nil
	}
	m.tbl.SetCursor(row)
	if m.columnAt(x-left) == colPlan {
		// the thumbnail opens the plan without selecting the lot
		m.sel.OpenThumbnail(lot)
		return m.viewerOpened()
	}
	m.sel.SelectLot(lot)
	m.log.Debug("lot selected", zap.String("lot", lot.ID))
	return nil
}

func (m *Model) detailMouse(msg tea.MouseMsg, l layout) tea.Cmd {
	if msg.Button != tea.MouseButtonLeft {
		return nil
	}
	lot, ok := m.sel.Lot()
	if !ok {
		return nil
	}
	_, r, d := m.detailBox(lot, l)
	if !r.contains(msg.X, msg.Y) {
		// backdrop
		m.sel.CloseDetail()
		return nil
	}
	switch msg.Y - r.y - 2 {
	case d.planLine:
		m.sel.OpenViewer(selection.ViewerPlan)
		return m.viewerOpened()
	case d.quoteLine:
		return m.requestQuote()
	case d.closeLine:
		m.sel.CloseDetail()
	}
	return nil
}
