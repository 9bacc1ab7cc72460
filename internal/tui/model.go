package tui

import (
	"github.com/atotto/clipboard"
	table "github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	"thaqu/internal/catalog"
	"thaqu/internal/contact"
	"thaqu/internal/i18n"
	"thaqu/internal/observability"
	"thaqu/internal/selection"
)

// Options configures New. Only Catalog is required.
type Options struct {
	Catalog    *catalog.Catalog
	Translator i18n.Translator
	Sink       contact.Sink
	Logger     *zap.Logger
	// Clipboard receives generated contact links. Defaults to the system
	// clipboard.
	Clipboard func(string) error
}

// contactFocus is the bridge between the selection controller and the
// contact pane: the controller records the lot and Update acts on it once
// the call returns.
type contactFocus struct {
	lotID   string
	pending bool
}

func (f *contactFocus) FocusContactWith(lotID string) {
	f.lotID = lotID
	f.pending = true
}

func (f *contactFocus) take() (string, bool) {
	if !f.pending {
		return "", false
	}
	f.pending = false
	return f.lotID, true
}

type pictureEntry struct {
	pic *picture
	err error
}

type Model struct {
	width  int
	height int

	helpVisible bool
	status      string
	section     section
	keys        keyMap

	cat  *catalog.Catalog
	tr   i18n.Translator
	sink contact.Sink
	log  *zap.Logger

	sel   *selection.Controller
	focus *contactFocus

	tbl  table.Model
	form contactForm

	pictures map[string]*pictureEntry

	clipboard func(string) error
	lastLink  string
}

func New(opts Options) Model {
	cat := opts.Catalog
	if cat == nil {
		cat = catalog.Default()
	}
	tr := opts.Translator
	if tr == (i18n.Translator{}) {
		tr = i18n.Default().For(i18n.Fallback)
	}
	sink := opts.Sink
	if sink.Catalog == nil {
		sink = contact.NewSink(cat, sink.Email, sink.WhatsApp, sink.Subject)
	}
	clip := opts.Clipboard
	if clip == nil {
		clip = clipboard.WriteAll
	}

	focus := &contactFocus{}
	m := Model{
		helpVisible: true,
		status:      tr.T("app.ready"),
		keys:        defaultKeyMap(),
		cat:         cat,
		tr:          tr,
		sink:        sink,
		log:         observability.Named(opts.Logger, "tui"),
		sel:         selection.New(focus),
		focus:       focus,
		pictures:    map[string]*pictureEntry{},
		clipboard:   clip,
	}
	m.tbl = table.New(table.WithFocused(true))
	m.refreshLots()
	m.tbl.SetHeight(m.cat.Len() + 1)
	m.form = newContactForm(cat, tr, m.keys)
	return m
}

func (m Model) Init() tea.Cmd { return nil }

// State exposes the selection state for callers and tests.
func (m Model) State() selection.State { return m.sel.State() }

// Status is the current footer message.
func (m Model) Status() string { return m.status }

// LastLink is the most recent mailto or WhatsApp link generated by the
// contact form, empty when none was.
func (m Model) LastLink() string { return m.lastLink }

// resize applies the window size to the table and form.
func (m *Model) resize() {
	l := m.layout()
	m.tbl.SetHeight(l.tableHeight(m.cat.Len()))
	w := l.contactW
	if w == 0 {
		w = l.contentW
	}
	m.form.setWidth(w - 4)
}

// setSection moves keyboard focus between the catalog and contact panes.
func (m *Model) setSection(s section) tea.Cmd {
	m.section = s
	if s == sectionContact {
		m.tbl.Blur()
		m.resize()
		return m.form.focusField(m.form.focus)
	}
	m.tbl.Focus()
	m.form.blur()
	m.resize()
	return nil
}
