package tui

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"
)

type linkCopiedMsg struct {
	link string
	err  error
}

// copyLink puts link on the clipboard off the event loop.
func (m *Model) copyLink(link string) tea.Cmd {
	m.lastLink = link
	write := m.clipboard
	return func() tea.Msg {
		return linkCopiedMsg{link: link, err: write(link)}
	}
}

// requestQuote hands the detail lot to the contact pane. Lots that are not
// available stay in the detail view with a status explaining why.
func (m *Model) requestQuote() tea.Cmd {
	l, err := m.sel.RequestQuote()
	if err != nil {
		if lot, ok := m.sel.Lot(); ok {
			m.status = m.tr.Tf("msg.quote_refused", lot.Name, strings.ToLower(m.statusLabel(lot.Status)))
		}
		m.log.Debug("quote refused", zap.Error(err))
		return nil
	}
	m.log.Info("quote requested", zap.String("lot", l.ID))
	id, ok := m.focus.take()
	if !ok {
		return nil
	}
	cmd := m.setSection(sectionContact)
	m.status = m.tr.Tf("msg.quote_focus", l.Name)
	return tea.Batch(cmd, m.form.selectLot(id))
}

func (m *Model) submitQuote() tea.Cmd {
	f := m.form.form()
	if err := f.Validate(); err != nil {
		m.status = m.tr.Tf("msg.form_invalid", strings.ReplaceAll(err.Error(), "\n", "; "))
		return nil
	}
	m.form.submitted = true
	m.form.blur()
	m.log.Info("quote request prepared", zap.String("lot", f.LotID), zap.String("email", f.Email))
	return m.copyLink(m.sink.MailtoURL(f))
}

// openWhatsApp builds the WhatsApp link from whatever is filled in; no
// field is required.
func (m *Model) openWhatsApp() tea.Cmd {
	f := m.form.form()
	m.log.Info("whatsapp link prepared", zap.String("lot", f.LotID))
	return m.copyLink(m.sink.WhatsAppURL(f))
}
