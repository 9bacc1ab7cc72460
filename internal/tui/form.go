package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"thaqu/internal/catalog"
	"thaqu/internal/contact"
	"thaqu/internal/i18n"
)

type formField int

const (
	fieldName formField = iota
	fieldPhone
	fieldEmail
	fieldLot
	fieldMessage
	fieldCount
)

// contactForm is the quote request form. The lot field accepts free text
// and resolves it against the catalog; left and right cycle through lots.
type contactForm struct {
	cat  *catalog.Catalog
	tr   i18n.Translator
	keys keyMap

	inputs  [fieldMessage]textinput.Model
	message textarea.Model
	focus   formField

	submitted bool
}

func newContactForm(c *catalog.Catalog, tr i18n.Translator, keys keyMap) contactForm {
	f := contactForm{cat: c, tr: tr, keys: keys}
	placeholders := [fieldMessage]string{
		tr.T("contact.name_placeholder"),
		tr.T("contact.phone_placeholder"),
		tr.T("contact.email_placeholder"),
		tr.T("contact.lot_placeholder"),
	}
	for i := range f.inputs {
		in := textinput.New()
		in.Prompt = "› "
		in.Placeholder = placeholders[i]
		in.CharLimit = 120
		f.inputs[i] = in
	}
	f.inputs[fieldPhone].CharLimit = 20
	f.inputs[fieldLot].CharLimit = 32

	f.message = textarea.New()
	f.message.Placeholder = tr.T("contact.message_placeholder")
	f.message.ShowLineNumbers = false
	f.message.CharLimit = 0
	f.message.SetHeight(4)
	return f
}

func (f *contactForm) setWidth(w int) {
	w = max(10, w)
	for i := range f.inputs {
		f.inputs[i].Width = w - 3
	}
	f.message.SetWidth(w)
}

// focusField moves keyboard focus to ff and blurs the rest.
func (f *contactForm) focusField(ff formField) tea.Cmd {
	f.focus = (ff + fieldCount) % fieldCount
	for i := range f.inputs {
		f.inputs[i].Blur()
	}
	f.message.Blur()
	if f.focus == fieldMessage {
		return f.message.Focus()
	}
	return f.inputs[f.focus].Focus()
}

func (f *contactForm) blur() {
	for i := range f.inputs {
		f.inputs[i].Blur()
	}
	f.message.Blur()
}

// selectLot fills in the lot and leaves focus on the first empty required
// field, or the message when those are done.
func (f *contactForm) selectLot(id string) tea.Cmd {
	f.submitted = false
	f.inputs[fieldLot].SetValue(id)
	for _, ff := range []formField{fieldName, fieldPhone, fieldEmail} {
		if strings.TrimSpace(f.inputs[ff].Value()) == "" {
			return f.focusField(ff)
		}
	}
	return f.focusField(fieldMessage)
}

func (f contactForm) lot() (catalog.Lot, bool) {
	q := strings.TrimSpace(f.inputs[fieldLot].Value())
	if q == "" || f.cat == nil {
		return catalog.Lot{}, false
	}
	return f.cat.Match(q)
}

// cycleLot steps the lot field through "no lot" and every catalog lot.
func (f *contactForm) cycleLot(delta int) {
	if f.cat == nil || f.cat.Len() == 0 {
		return
	}
	n := f.cat.Len() + 1 // slot 0 is "no lot"
	pos := 0
	if l, ok := f.lot(); ok {
		pos = f.cat.IndexOf(l.ID) + 1
	}
	pos = ((pos+delta)%n + n) % n
	if pos == 0 {
		f.inputs[fieldLot].SetValue("")
		return
	}
	l, _ := f.cat.At(pos - 1)
	f.inputs[fieldLot].SetValue(l.ID)
	f.inputs[fieldLot].CursorEnd()
}

func (f contactForm) form() contact.Form {
	out := contact.Form{
		Name:    strings.TrimSpace(f.inputs[fieldName].Value()),
		Phone:   strings.TrimSpace(f.inputs[fieldPhone].Value()),
		Email:   strings.TrimSpace(f.inputs[fieldEmail].Value()),
		Message: f.message.Value(),
	}
	if l, ok := f.lot(); ok {
		out.LotID = l.ID
	}
	return out
}

// reset clears every field for a new request.
func (f *contactForm) reset() tea.Cmd {
	for i := range f.inputs {
		f.inputs[i].Reset()
	}
	f.message.Reset()
	f.submitted = false
	return f.focusField(fieldName)
}

func (f contactForm) Update(msg tea.Msg) (contactForm, tea.Cmd) {
	if f.submitted {
		return f, nil
	}
	if k, ok := msg.(tea.KeyMsg); ok {
		switch {
		case key.Matches(k, f.keys.NextField):
			return f, f.focusField(f.focus + 1)
		case key.Matches(k, f.keys.PrevField):
			return f, f.focusField(f.focus - 1)
		case f.focus == fieldLot && key.Matches(k, f.keys.PrevLot):
			f.cycleLot(-1)
			return f, nil
		case f.focus == fieldLot && key.Matches(k, f.keys.NextLot):
			f.cycleLot(1)
			return f, nil
		}
	}
	var cmd tea.Cmd
	if f.focus == fieldMessage {
		f.message, cmd = f.message.Update(msg)
	} else {
		f.inputs[f.focus], cmd = f.inputs[f.focus].Update(msg)
	}
	return f, cmd
}

func (f contactForm) View(whatsapp string) string {
	var b strings.Builder
	b.WriteString(titleStyle.Render(f.tr.T("contact.heading")))
	b.WriteString("\n\n")

	if f.submitted {
		b.WriteString(titleStyle.Render("✓ " + f.tr.T("contact.sent_title")))
		b.WriteString("\n")
		b.WriteString(f.tr.T("contact.sent_body"))
		b.WriteString("\n\n")
		b.WriteString(linkStyle.Render("[enter] " + f.tr.T("contact.send_another")))
		b.WriteString("\n\n")
		b.WriteString(f.directView(whatsapp))
		return b.String()
	}

	labels := [fieldMessage]string{
		f.tr.T("contact.name"),
		f.tr.T("contact.phone"),
		f.tr.T("contact.email"),
		f.tr.T("contact.lot"),
	}
	for i, in := range f.inputs {
		label := labels[i]
		if formField(i) == f.focus {
			label = titleStyle.Render(label)
		} else {
			label = dimStyle.Render(label)
		}
		b.WriteString(label + "\n" + in.View() + "\n")
		if formField(i) == fieldLot {
			if l, ok := f.lot(); ok {
				b.WriteString(dimStyle.Render("  "+catalog.Summary(l)) + "\n")
			} else {
				b.WriteString(dimStyle.Render("  "+f.tr.T("contact.lot_none")) + "\n")
			}
		}
	}
	label := dimStyle.Render(f.tr.T("contact.message"))
	if f.focus == fieldMessage {
		label = titleStyle.Render(f.tr.T("contact.message"))
	}
	b.WriteString(label + "\n" + f.message.View() + "\n\n")
	b.WriteString(buttonStyle.Render("ctrl+s " + f.tr.T("contact.submit")))
	b.WriteString("  ")
	b.WriteString(linkStyle.Render("ctrl+w " + f.tr.T("contact.whatsapp")))
	b.WriteString("\n\n")
	b.WriteString(f.directView(whatsapp))
	return b.String()
}

func (f contactForm) directView(whatsapp string) string {
	lines := []string{
		titleStyle.Render(f.tr.T("contact.direct")),
		dimStyle.Render(f.tr.T("contact.direct_body")),
		"WhatsApp: +" + whatsapp,
		"",
		titleStyle.Render(f.tr.T("contact.hours")),
		dimStyle.Render(f.tr.T("contact.hours.1")),
		dimStyle.Render(f.tr.T("contact.hours.2")),
		dimStyle.Render(f.tr.T("contact.hours.3")),
	}
	return strings.Join(lines, "\n")
}
