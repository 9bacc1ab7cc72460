package i18n

import (
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolve(t *testing.T) {
	b := Default()
	assert.Equal(t, []string{"es", "en"}, b.Supported())

	for pref, want := range map[string]string{
		"":                "es",
		"C":               "es",
		"POSIX":           "es",
		"es_CL.UTF-8":     "es",
		"en_US.UTF-8":     "en",
		"en-GB":           "en",
		"fr;q=0.9, en":    "en",
		"de_DE@euro":      "es",
		"en;q=0.2, es-CL": "es",
	} {
		assert.Equal(t, want, b.Resolve(pref), pref)
	}
}

func TestResolveWeightedLists(t *testing.T) {
	b := Default()
	for pref, want := range map[string]string{
		"fr;q=0.9, en":                   "en",
		"en;q=0.8, es":                   "es",
		"es;q=0.1, en;q=0.5":             "en",
		"de_DE.UTF-8, en_GB.UTF-8;q=0.7": "en",
		"en_US@euro;q=0.3, es_CL.UTF-8":  "es",
	} {
		assert.Equal(t, want, b.Resolve(pref), pref)
	}

	assert.Equal(t, "en-US;q=0.9,fr", posixToBCP47("en_US.UTF-8;q=0.9,fr"))
	assert.Equal(t, "es-CL", posixToBCP47("es_CL@euro"))
}

func TestTranslateFallsBack(t *testing.T) {
	b := Default()
	en := b.For("en")
	assert.Equal(t, "en", en.Lang())
	assert.Equal(t, "Sold", en.T("status.sold"))
	// missing in English, present in Spanish
	assert.Equal(t, "+56 9 1234 5678", en.T("contact.phone_placeholder"))
	assert.Equal(t, "no.such.key", en.T("no.such.key"))

	es := b.For("es")
	assert.Equal(t, "Vendido", es.T("status.sold"))
	assert.Equal(t, "Plano del Lote A1-1 - Reserva Thaqu", es.Tf("viewer.caption_plan", "Lote A1-1"))
}

func TestLocalesShareKeys(t *testing.T) {
	b := Default()
	for key := range b.dict["en"] {
		_, ok := b.dict["es"][key]
		assert.True(t, ok, "key %q missing in es", key)
	}
}

func TestLoadRequiresFallback(t *testing.T) {
	fsys := fstest.MapFS{"loc/en.yaml": {Data: []byte("a: b\n")}}
	_, err := Load(fsys, "loc", "es")
	assert.ErrorContains(t, err, "fallback locale es not loaded")

	fsys["loc/es.yaml"] = &fstest.MapFile{Data: []byte("a: c\n")}
	b, err := Load(fsys, "loc", "es")
	require.NoError(t, err)
	assert.Equal(t, "b", b.T("en", "a"))
	assert.Equal(t, "c", b.T("fr", "a"))

	var zero Translator
	assert.Equal(t, "a", zero.T("a"))
}
