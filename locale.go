package lingo

import (
	"context"
	"log/slog"
	"sort"
	"strings"

	"golang.org/x/text/language"
)

// SetLocale switches the engine to locale and returns the translation
// tree for it once every registered namespace has settled. Switching to
// the current locale is a no-op: the call resolves immediately with the
// current tree and no events are fired.
//
// Overlapping switches are serialized in call order, so the last caller's
// locale always ends up current and every caller receives the tree of
// the locale it asked for. There is no cancellation beyond the supplied
// context: an abandoned switch is bounded only by the load timeout.
func (e *Engine) SetLocale(ctx context.Context, locale string) (map[string]any, error) {
	locale = strings.TrimSpace(locale)
	if locale == "" {
		return nil, ErrEmptyLocale
	}

	e.switchMu.Lock()
	defer e.switchMu.Unlock()

	if e.Locale() == locale {
		return e.Translations(locale), nil
	}

	e.bus.Publish(TopicNamespacesBeforeLoad, BeforeLoad{Locale: locale})

	// State mutates immediately; callers observe the new locale while the
	// namespaces are still loading.
	e.mu.Lock()
	e.locale = locale
	e.loading = true
	e.format = FormatFor(locale)
	e.mu.Unlock()

	if e.calendar != nil {
		e.calendar(locale)
	}

	if e.store != nil && e.IsLocaleSupported(locale) {
		if err := e.store.Set(ctx, prefLocaleKey, locale); err != nil {
			e.log.Warn("failed to persist locale",
				slog.String("locale", locale), slog.String("error", err.Error()))
		}
	}

	result, err := e.LoadNamespaces(ctx, locale)
	if err != nil {
		e.setLoading(false)
		return nil, err
	}

	translations := e.Translations(locale)
	e.bus.Publish(TopicLocaleChanged, LocaleChanged{
		Locale:       locale,
		Translations: translations,
	})

	if len(result.Failed) > 0 {
		e.log.Warn("locale switched with partial namespace failures",
			slog.String("locale", locale), slog.Int("failed", len(result.Failed)))
	}

	return translations, nil
}

// SetLocales replaces the supported locale set. Codes are normalized to
// canonical BCP 47 form, invalid ones dropped with a warning, and
// DefaultLocale is always included. The resulting set is returned.
func (e *Engine) SetLocales(locales []string) []string {
	normalized := normalizeLocales(e.log, locales)

	e.mu.Lock()
	e.locales = normalized
	e.mu.Unlock()

	out := make([]string, len(normalized))
	copy(out, normalized)
	return out
}

// normalizeLocales canonicalizes locale codes, dedupes them and
// guarantees DefaultLocale membership. DefaultLocale is placed first;
// the rest is sorted alphabetically.
func normalizeLocales(log *slog.Logger, locales []string) []string {
	seen := map[string]bool{DefaultLocale: true}
	out := []string{DefaultLocale}

	for _, raw := range locales {
		raw = strings.TrimSpace(raw)
		if raw == "" {
			continue
		}
		tag, err := language.Parse(raw)
		if err != nil {
			log.Warn("dropping unparsable locale", slog.String("locale", raw))
			continue
		}
		code := tag.String()
		if seen[code] {
			continue
		}
		seen[code] = true
		out = append(out, code)
	}

	sort.Strings(out[1:])
	return out
}
