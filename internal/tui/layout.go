package tui

// Screen geometry shared by View and the mouse handlers. Anything drawn at a
// fixed offset in view.go must be mirrored here.
const (
	headerHeight = 1
	footerHeight = 2

	// contact pane width when shown next to the catalog
	contactMinWidth = 44
	// blank columns around the image in the viewer; clicks there close it
	viewerMargin = 2
)

type section int

const (
	sectionCatalog section = iota
	sectionContact
)

type layout struct {
	contentY int
	contentW int
	contentH int

	wide     bool
	catalogX int
	catalogW int
	contactX int
	contactW int
}

func (m Model) layout() layout {
	l := layout{contentY: headerHeight}
	l.contentW = max(20, m.width)
	l.contentH = max(8, m.height-headerHeight-footerHeight)

	need := m.tableWidth() + 6
	l.wide = l.contentW >= need+contactMinWidth
	switch {
	case l.wide:
		l.catalogW = need
		l.contactX = need
		l.contactW = l.contentW - need
	case m.section == sectionContact:
		l.contactW = l.contentW
	default:
		l.catalogW = l.contentW
	}
	return l
}

// tableHeight is the number of lines the lot table may use inside the
// catalog pane: border, title, blank line and the satellite button take
// the rest.
func (l layout) tableHeight(rows int) int {
	avail := l.contentH - 2 - 1 - 2
	return max(2, min(rows+1, avail))
}

// firstRowY is the screen row of the first lot in the table.
func (l layout) firstRowY() int { return l.contentY + 1 + 1 + 1 }

// satelliteY is the screen row of the satellite button.
func (l layout) satelliteY(tableHeight int) int {
	return l.contentY + 1 + 1 + tableHeight + 1
}

func (l layout) inCatalog(x, y int) bool {
	return l.catalogW > 0 && x >= l.catalogX && x < l.catalogX+l.catalogW &&
		y >= l.contentY && y < l.contentY+l.contentH
}

func (l layout) inContact(x, y int) bool {
	return l.contactW > 0 && x >= l.contactX && x < l.contactX+l.contactW &&
		y >= l.contentY && y < l.contentY+l.contentH
}

// rect is a screen rectangle, end exclusive.
type rect struct {
	x, y, w, h int
}

func (r rect) contains(x, y int) bool {
	return x >= r.x && x < r.x+r.w && y >= r.y && y < r.y+r.h
}

// centered places a w×h block in the content area the way lipgloss.Place
// does with Center alignment (remainder goes right and bottom).
func (l layout) centered(w, h int) rect {
	return rect{
		x: max(0, (l.contentW-w)/2),
		y: l.contentY + max(0, (l.contentH-h)/2),
		w: w,
		h: h,
	}
}

// imageArea is where the viewer draws the picture, between the control bar
// and the caption and hint rows.
func (l layout) imageArea() rect {
	return rect{
		x: viewerMargin,
		y: l.contentY + 1,
		w: max(1, l.contentW-2*viewerMargin),
		h: max(1, l.contentH-3),
	}
}

// hitRange maps a horizontal span of a single row to an action.
type hitRange struct {
	startX int // inclusive
	endX   int // exclusive
	action string
}

func findHit(ranges []hitRange, x int) (string, bool) {
	for _, h := range ranges {
		if x >= h.startX && x < h.endX {
			return h.action, true
		}
	}
	return "", false
}
