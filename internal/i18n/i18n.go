// Package i18n holds the UI strings in Spanish and English and picks the
// language to use from a user preference such as $LANG.
package i18n

import (
	"embed"
	"fmt"
	"io/fs"
	"path"
	"sort"
	"strings"

	"golang.org/x/text/language"
	"gopkg.in/yaml.v3"
)

//go:embed locales/*.yaml
var localeFS embed.FS

const Fallback = "es"

type Bundle struct {
	dict      map[string]map[string]string
	fallback  string
	supported []string
	matcher   language.Matcher
}

// Default loads the embedded locales with Spanish as fallback.
func Default() *Bundle {
	b, err := Load(localeFS, "locales", Fallback)
	if err != nil {
		panic(err)
	}
	return b
}

// Load reads every <lang>.yaml under dir. The fallback language must exist.
func Load(fsys fs.FS, dir, fallback string) (*Bundle, error) {
	entries, err := fs.ReadDir(fsys, dir)
	if err != nil {
		return nil, fmt.Errorf("i18n: read %s: %w", dir, err)
	}
	b := &Bundle{dict: map[string]map[string]string{}, fallback: fallback}
	for _, e := range entries {
		name := e.Name()
		if e.IsDir() || path.Ext(name) != ".yaml" {
			continue
		}
		lang := strings.TrimSuffix(name, ".yaml")
		raw, err := fs.ReadFile(fsys, path.Join(dir, name))
		if err != nil {
			return nil, fmt.Errorf("i18n: load locale %s: %w", lang, err)
		}
		var m map[string]string
		if err := yaml.Unmarshal(raw, &m); err != nil {
			return nil, fmt.Errorf("i18n: unmarshal %s: %w", lang, err)
		}
		b.dict[lang] = m
	}
	if _, ok := b.dict[fallback]; !ok {
		return nil, fmt.Errorf("i18n: fallback locale %s not loaded", fallback)
	}
	// fallback first so the matcher prefers it on ties
	b.supported = append(b.supported, fallback)
	var rest []string
	for lang := range b.dict {
		if lang != fallback {
			rest = append(rest, lang)
		}
	}
	sort.Strings(rest)
	b.supported = append(b.supported, rest...)

	tags := make([]language.Tag, len(b.supported))
	for i, l := range b.supported {
		tags[i] = language.Make(l)
	}
	b.matcher = language.NewMatcher(tags)
	return b, nil
}

func (b *Bundle) Supported() []string {
	return append([]string(nil), b.supported...)
}

// Resolve picks the best supported language for a preference such as
// "en_US.UTF-8", "es-CL" or "en;q=0.8, es". Unusable input yields the
// fallback.
func (b *Bundle) Resolve(pref string) string {
	pref = posixToBCP47(strings.TrimSpace(pref))
	if pref == "" || pref == "C" || pref == "POSIX" {
		return b.fallback
	}
	tags, _, err := language.ParseAcceptLanguage(pref)
	if err != nil || len(tags) == 0 {
		return b.fallback
	}
	_, idx, conf := b.matcher.Match(tags...)
	if conf == language.No {
		return b.fallback
	}
	return b.supported[idx]
}

// posixToBCP47 drops the codeset and modifier of POSIX locale names
// ("es_CL.UTF-8", "de_DE@euro") and swaps underscores for hyphens. Each
// entry of a list is handled on its own and parameters such as q-values are
// left alone.
func posixToBCP47(pref string) string {
	parts := strings.Split(pref, ",")
	for i, part := range parts {
		tag, params, weighted := strings.Cut(part, ";")
		if j := strings.IndexAny(tag, ".@"); j >= 0 {
			tag = tag[:j]
		}
		tag = strings.ReplaceAll(tag, "_", "-")
		if weighted {
			tag += ";" + params
		}
		parts[i] = tag
	}
	return strings.Join(parts, ",")
}

// T returns the translation of key in lang, falling back to the default
// language and finally to the key itself.
func (b *Bundle) T(lang, key string) string {
	if m, ok := b.dict[lang]; ok {
		if v, ok := m[key]; ok {
			return v
		}
	}
	if v, ok := b.dict[b.fallback][key]; ok {
		return v
	}
	return key
}

// Translator is a bundle bound to one language.
type Translator struct {
	bundle *Bundle
	lang   string
}

// For binds the bundle to the language resolved from pref.
func (b *Bundle) For(pref string) Translator {
	return Translator{bundle: b, lang: b.Resolve(pref)}
}

func (t Translator) Lang() string { return t.lang }

func (t Translator) T(key string) string {
	if t.bundle == nil {
		return key
	}
	return t.bundle.T(t.lang, key)
}

// Tf formats the translation of key with args.
func (t Translator) Tf(key string, args ...any) string {
	return fmt.Sprintf(t.T(key), args...)
}
