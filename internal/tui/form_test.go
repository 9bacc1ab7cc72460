package tui

import (
	"errors"
	"net/url"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func toContact(t *testing.T, m Model) Model {
	t.Helper()
	m = step(t, m, keyTab)
	require.Equal(t, sectionContact, m.section)
	require.Equal(t, fieldName, m.form.focus)
	return m
}

func fill(t *testing.T, m Model, name, phone, email string) Model {
	t.Helper()
	m = step(t, m, typeText(name)...)
	m = step(t, m, keyTab)
	m = step(t, m, typeText(phone)...)
	m = step(t, m, keyTab)
	return step(t, m, typeText(email)...)
}

func TestSubmitRequiresFields(t *testing.T) {
	m, clip := newTestModel(t, nil)
	m = toContact(t, m)

	m, cmd := stepCmd(t, m, keyCtrlS)
	assert.Nil(t, cmd)
	assert.False(t, m.form.submitted)
	assert.True(t, strings.HasPrefix(m.Status(), "revisa el formulario: "))
	assert.NotContains(t, m.Status(), "\n")
	assert.Empty(t, clip.links)
}

func TestSubmitCopiesMailtoLink(t *testing.T) {
	m, clip := newTestModel(t, nil)
	m = step(t, m, keyEnter, runes("r"))
	require.Equal(t, sectionContact, m.section)
	m = fill(t, m, "Ana", "+56911112222", "ana@example.com")

	m, cmd := stepCmd(t, m, keyCtrlS)
	require.NotNil(t, cmd)
	assert.True(t, m.form.submitted)
	assert.Contains(t, m.View(), "¡Solicitud de Cotización Enviada!")

	m = step(t, m, cmd())
	assert.Equal(t, "enlace copiado al portapapeles", m.Status())
	require.Len(t, clip.links, 1)
	assert.Equal(t, clip.links[0], m.LastLink())

	u, err := url.Parse(clip.links[0])
	require.NoError(t, err)
	assert.Equal(t, "mailto", u.Scheme)
	body := u.Query().Get("body")
	assert.Contains(t, body, "Nombre: Ana")
	assert.Contains(t, body, "Email: ana@example.com")
	assert.Contains(t, body, "Parcela de interés:\nLote A1-1 - 5.096 m² - $25.000.000")

	// submitted form ignores typing until reset
	m = step(t, m, runes("z"))
	assert.Equal(t, "Ana", m.form.form().Name)
	m = step(t, m, keyEnter)
	assert.False(t, m.form.submitted)
	assert.Equal(t, "", m.form.form().Name)
	assert.Equal(t, fieldName, m.form.focus)
}

func TestWhatsAppNeedsNoFields(t *testing.T) {
	m, clip := newTestModel(t, nil)
	m = toContact(t, m)
	m, cmd := stepCmd(t, m, keyCtrlW)
	require.NotNil(t, cmd)
	m = step(t, m, cmd())
	require.Len(t, clip.links, 1)
	assert.True(t, strings.HasPrefix(clip.links[0], "https://wa.me/56992654759?text="))
	assert.Contains(t, clip.links[0], "%5BNombre%5D")
	assert.Equal(t, "enlace copiado al portapapeles", m.Status())
}

func TestClipboardFailureIsReported(t *testing.T) {
	m, clip := newTestModel(t, nil)
	clip.err = errors.New("no display")
	m = toContact(t, m)
	m, cmd := stepCmd(t, m, keyCtrlW)
	require.NotNil(t, cmd)
	m = step(t, m, cmd())
	assert.Equal(t, "no se pudo copiar el enlace: no display", m.Status())
	// the link is still kept for printing on exit
	assert.NotEmpty(t, m.LastLink())
}

func TestLotFieldCycles(t *testing.T) {
	m, _ := newTestModel(t, nil)
	m = toContact(t, m)
	m = step(t, m, keyTab, keyTab, keyTab)
	require.Equal(t, fieldLot, m.form.focus)

	m = step(t, m, keyRight)
	assert.Equal(t, "A1-1", m.form.form().LotID)
	m = step(t, m, keyRight)
	assert.Equal(t, "A1-2", m.form.form().LotID)
	m = step(t, m, keyLeft, keyLeft)
	assert.Equal(t, "", m.form.form().LotID)
	assert.Contains(t, m.View(), "Ninguna parcela seleccionada")
	m = step(t, m, keyLeft)
	assert.Equal(t, "A2-2", m.form.form().LotID)
}

func TestLotFieldFuzzyText(t *testing.T) {
	m, _ := newTestModel(t, nil)
	m = toContact(t, m)
	m = step(t, m, keyTab, keyTab, keyTab)
	m = step(t, m, typeText("a2-1")...)
	assert.Equal(t, "A2-1", m.form.form().LotID)
}

func TestFieldFocusWraps(t *testing.T) {
	m, _ := newTestModel(t, nil)
	m = toContact(t, m)
	m = step(t, m, tea.KeyMsg{Type: tea.KeyShiftTab})
	assert.Equal(t, fieldMessage, m.form.focus)
	m = step(t, m, keyTab)
	assert.Equal(t, fieldName, m.form.focus)

	m = step(t, m, keyEsc)
	assert.Equal(t, sectionCatalog, m.section)
}

func TestSelectLotSkipsFilledFields(t *testing.T) {
	m, _ := newTestModel(t, nil)
	m = toContact(t, m)
	m = fill(t, m, "Ana", "1", "ana@example.com")
	m = step(t, m, keyEsc, keyDown, keyEnter, runes("r"))
	assert.Equal(t, fieldMessage, m.form.focus)
	assert.Equal(t, "A1-2", m.form.form().LotID)
	assert.Equal(t, "Ana", m.form.form().Name)
}
