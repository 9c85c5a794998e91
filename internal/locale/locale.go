// Package locale loads the embedded message catalogues and resolves
// screen strings for the configured language.
package locale

import (
	"embed"
	"fmt"
	"log/slog"

	"github.com/BurntSushi/toml"
	"github.com/nicksnyder/go-i18n/v2/i18n"
	"golang.org/x/text/language"
)

//go:embed locales/*.toml
var catalogues embed.FS

// Default is used when no language is configured or the configured one
// has no catalogue.
var Default = language.English

// Localizer resolves message IDs. Missing translations fall back to
// English and then to the message ID itself.
type Localizer struct {
	lang      language.Tag
	localizer *i18n.Localizer
	logger    *slog.Logger
}

// NewBundle parses every embedded catalogue into a bundle.
func NewBundle() (*i18n.Bundle, error) {
	bundle := i18n.NewBundle(Default)
	bundle.RegisterUnmarshalFunc("toml", toml.Unmarshal)

	entries, err := catalogues.ReadDir("locales")
	if err != nil {
		return nil, fmt.Errorf("locale: read catalogues: %w", err)
	}
	for _, e := range entries {
		if _, err := bundle.LoadMessageFileFS(catalogues, "locales/"+e.Name()); err != nil {
			return nil, fmt.Errorf("locale: load %s: %w", e.Name(), err)
		}
	}
	return bundle, nil
}

// New returns a Localizer for lang, a BCP 47 tag such as "es" or "en-GB".
// An empty or unparsable tag selects Default.
func New(lang string, logger *slog.Logger) (*Localizer, error) {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}

	bundle, err := NewBundle()
	if err != nil {
		return nil, err
	}

	tag := Default
	if lang != "" {
		parsed, err := language.Parse(lang)
		if err != nil {
			logger.Warn("Unknown language, using default", "lang", lang, "error", err)
		} else {
			tag = parsed
		}
	}

	matcher := language.NewMatcher(bundle.LanguageTags())
	matched, _, _ := matcher.Match(tag)
	base, _ := matched.Base()

	return &Localizer{
		lang:      language.Make(base.String()),
		localizer: i18n.NewLocalizer(bundle, tag.String(), Default.String()),
		logger:    logger,
	}, nil
}

// Language is the catalogue language that best matches the request.
func (l *Localizer) Language() language.Tag {
	return l.lang
}

// T returns the message for id.
func (l *Localizer) T(id string) string {
	return l.localize(&i18n.LocalizeConfig{MessageID: id})
}

// TData returns the message for id with its template filled from data.
func (l *Localizer) TData(id string, data map[string]any) string {
	return l.localize(&i18n.LocalizeConfig{MessageID: id, TemplateData: data})
}

func (l *Localizer) localize(cfg *i18n.LocalizeConfig) string {
	msg, err := l.localizer.Localize(cfg)
	if err != nil {
		l.logger.Debug("Missing translation", "id", cfg.MessageID, "error", err)
		if msg == "" {
			return cfg.MessageID
		}
	}
	return msg
}
