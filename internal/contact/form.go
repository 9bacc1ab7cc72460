// Package contact builds quote requests: the contact form contents, the
// e-mail compose link and the WhatsApp deep link sent from it.
package contact

import (
	"errors"
	"fmt"
	"net/mail"
	"net/url"
	"strings"

	"thaqu/internal/catalog"
)

var (
	ErrNameRequired  = errors.New("contact: name is required")
	ErrPhoneRequired = errors.New("contact: phone is required")
	ErrEmailRequired = errors.New("contact: email is required")
	ErrEmailInvalid  = errors.New("contact: email is not valid")
)

const (
	DefaultEmail    = "Commolchile@gmail.com"
	DefaultWhatsApp = "56992654759"
	DefaultSubject  = "Cotización Reserva Thaqu"
)

// Form is what the visitor typed. LotID may be empty or unknown to the
// catalog; both simply omit the lot details.
type Form struct {
	Name    string
	Phone   string
	Email   string
	LotID   string
	Message string
}

// Validate checks the required fields and reports every problem at once.
func (f Form) Validate() error {
	var errs []error
	if strings.TrimSpace(f.Name) == "" {
		errs = append(errs, ErrNameRequired)
	}
	if strings.TrimSpace(f.Phone) == "" {
		errs = append(errs, ErrPhoneRequired)
	}
	if e := strings.TrimSpace(f.Email); e == "" {
		errs = append(errs, ErrEmailRequired)
	} else if _, err := mail.ParseAddress(e); err != nil {
		errs = append(errs, fmt.Errorf("%w: %q", ErrEmailInvalid, e))
	}
	return errors.Join(errs...)
}

// Sink turns forms into outgoing links. Nothing is sent; the links are
// handed to the user's mail client or WhatsApp.
type Sink struct {
	Catalog  *catalog.Catalog
	Email    string
	WhatsApp string
	Subject  string
}

// NewSink fills empty settings with the project defaults.
func NewSink(c *catalog.Catalog, email, whatsapp, subject string) Sink {
	if email == "" {
		email = DefaultEmail
	}
	if whatsapp == "" {
		whatsapp = DefaultWhatsApp
	}
	if subject == "" {
		subject = DefaultSubject
	}
	return Sink{Catalog: c, Email: email, WhatsApp: whatsapp, Subject: subject}
}

func (s Sink) lot(id string) (catalog.Lot, bool) {
	if s.Catalog == nil || strings.TrimSpace(id) == "" {
		return catalog.Lot{}, false
	}
	return s.Catalog.Find(id)
}

// Body is the plain-text e-mail body for f.
func (s Sink) Body(f Form) string {
	var b strings.Builder
	b.WriteString("\nNombre: " + f.Name)
	b.WriteString("\nTeléfono: " + f.Phone)
	b.WriteString("\nEmail: " + f.Email)
	if l, ok := s.lot(f.LotID); ok {
		b.WriteString("\n\nParcela de interés:\n" + catalog.Summary(l))
	}
	b.WriteString("\n\nMensaje:\n" + f.Message + "\n")
	return b.String()
}

// MailtoURL is the e-mail compose link for f.
func (s Sink) MailtoURL(f Form) string {
	return "mailto:" + s.Email + "?subject=" + EncodeComponent(s.Subject) + "&body=" + EncodeComponent(s.Body(f))
}

// Greeting is the pre-filled WhatsApp text for f.
func (s Sink) Greeting(f Form) string {
	name := strings.TrimSpace(f.Name)
	if name == "" {
		name = "[Nombre]"
	}
	text := "Hola, me interesa obtener más información sobre Reserva Thaqu. Mi nombre es " + name + "."
	if l, ok := s.lot(f.LotID); ok {
		text += " Me interesa el " + l.Name + "."
	}
	return text
}

// WhatsAppURL is the wa.me deep link for f.
func (s Sink) WhatsAppURL(f Form) string {
	return "https://wa.me/" + s.WhatsApp + "?text=" + EncodeComponent(s.Greeting(f))
}

// EncodeComponent percent-encodes s for use inside a URI component, with
// spaces as %20 and reserved characters such as '&' and '=' escaped.
func EncodeComponent(s string) string {
	return strings.ReplaceAll(url.QueryEscape(s), "+", "%20")
}
