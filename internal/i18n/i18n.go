// Package i18n resolves user-facing text for the supported languages.
package i18n

import (
	"embed"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/diegoclair/prayer-times-bot/internal/domain"
	"github.com/nicksnyder/go-i18n/v2/i18n"
	"github.com/rs/zerolog/log"
	"golang.org/x/text/language"
)

//go:embed locales/*.json
var localeFS embed.FS

// legacyTags maps language codes stored by earlier releases to BCP 47 tags.
var legacyTags = map[string]string{
	"crh_cyr": domain.LangCrimeanCyrl,
	"crh_lat": domain.LangCrimeanLatn,
}

// bundleTags are the tags messages are registered under when CLDR has no
// plural rule for the public tag. Crimean Tatar shares Turkish's one/other split.
var bundleTags = map[string]string{
	domain.LangCrimeanCyrl: "tr-x-crhcyrl",
	domain.LangCrimeanLatn: "tr-x-crhlatn",
}

type Translator struct {
	defaultLang string
	// localizers is keyed by the public language tag; each one owns a single-language bundle.
	localizers map[string]*i18n.Localizer
}

// New loads every embedded locale. defaultLang is used for unknown tags and missing keys.
func New(defaultLang string) (*Translator, error) {
	defaultTag, err := language.Parse(normalize(defaultLang))
	if err != nil {
		return nil, fmt.Errorf("invalid default language %q: %w", defaultLang, err)
	}

	entries, err := localeFS.ReadDir("locales")
	if err != nil {
		return nil, fmt.Errorf("read locales: %w", err)
	}

	t := &Translator{
		defaultLang: defaultTag.String(),
		localizers:  make(map[string]*i18n.Localizer, len(entries)),
	}

	for _, entry := range entries {
		name := entry.Name()
		lang, ok := strings.CutPrefix(name, "active.")
		if ok {
			lang, ok = strings.CutSuffix(lang, ".json")
		}
		if !ok {
			log.Debug().Str("file", name).Msg("skipping non-locale file")
			continue
		}

		localizer, err := loadLocale(lang, "locales/"+name)
		if err != nil {
			return nil, fmt.Errorf("load locale %s: %w", name, err)
		}
		t.localizers[lang] = localizer
	}

	if _, ok := t.localizers[t.defaultLang]; !ok {
		return nil, fmt.Errorf("no locale file for default language %q", t.defaultLang)
	}

	return t, nil
}

func loadLocale(lang, path string) (*i18n.Localizer, error) {
	tag := lang
	if internal, ok := bundleTags[lang]; ok {
		tag = internal
	}
	parsed, err := language.Parse(tag)
	if err != nil {
		return nil, err
	}

	content, err := localeFS.ReadFile(path)
	if err != nil {
		return nil, err
	}

	bundle := i18n.NewBundle(parsed)
	bundle.RegisterUnmarshalFunc("json", json.Unmarshal)
	// The tag is taken from the file name, so register under the bundle tag.
	if _, err := bundle.ParseMessageFileBytes(content, "active."+tag+".json"); err != nil {
		return nil, err
	}

	return i18n.NewLocalizer(bundle, tag), nil
}

// Localize renders key for lang. Unknown tags use the default locale, and a
// key missing from every locale is returned unchanged.
func (t *Translator) Localize(lang, key string, data map[string]any) string {
	lang = t.resolve(lang)

	if msg, ok := localize(t.localizers[lang], lang, key, data); ok {
		return msg
	}
	if lang != t.defaultLang {
		if msg, ok := localize(t.localizers[t.defaultLang], t.defaultLang, key, data); ok {
			return msg
		}
	}
	return key
}

func localize(l *i18n.Localizer, lang, key string, data map[string]any) (string, bool) {
	msg, err := l.Localize(&i18n.LocalizeConfig{
		MessageID:    key,
		TemplateData: data,
	})
	if err != nil || msg == "" {
		log.Debug().Err(err).Str("lang", lang).Str("key", key).Msg("translation missing")
		return "", false
	}
	return msg, true
}

// Languages returns the public tags of the loaded locales in the supported order.
func (t *Translator) Languages() []string {
	out := make([]string, 0, len(t.localizers))
	for _, lang := range domain.SupportedLanguages {
		if _, ok := t.localizers[lang]; ok {
			out = append(out, lang)
		}
	}
	return out
}

// resolve maps lang onto a loaded public tag, falling back to the default.
func (t *Translator) resolve(lang string) string {
	tag := normalize(lang)
	if _, ok := t.localizers[tag]; ok {
		return tag
	}
	if parsed, ok := domain.ParseLanguage(tag); ok {
		if _, ok := t.localizers[parsed]; ok {
			return parsed
		}
	}
	return t.defaultLang
}

func normalize(lang string) string {
	lang = strings.TrimSpace(lang)
	if mapped, ok := legacyTags[lang]; ok {
		return mapped
	}
	return strings.ReplaceAll(lang, "_", "-")
}
