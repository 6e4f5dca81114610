package lingo

import (
	"log/slog"
	"strings"
	"time"
)

// Option configures the engine during construction.
type Option func(*Engine) error

// WithLogger sets the structured logger the engine reports warnings and
// resolution failures through. Defaults to a no-op logger.
func WithLogger(log *slog.Logger) Option {
	return func(e *Engine) error {
		if log != nil {
			e.log = log
		}
		return nil
	}
}

// WithBus injects the event bus change notifications are announced on.
// Defaults to an in-memory bus from pkg/bus.
func WithBus(b Bus) Option {
	return func(e *Engine) error {
		if b != nil {
			e.bus = b
		}
		return nil
	}
}

// WithPreferenceStore injects the store the active locale is persisted
// to on every successful switch to a supported locale. Engines without a
// store never persist anything.
func WithPreferenceStore(s PreferenceStore) Option {
	return func(e *Engine) error {
		e.store = s
		return nil
	}
}

// WithCalendarFunc registers a hook invoked with the target locale on
// every locale switch, so external calendar/date systems can follow the
// engine's locale.
func WithCalendarFunc(fn func(locale string)) Option {
	return func(e *Engine) error {
		e.calendar = fn
		return nil
	}
}

// WithDefaultLocale sets the initial locale. It is added to the
// supported set when missing.
func WithDefaultLocale(locale string) Option {
	return func(e *Engine) error {
		locale = strings.TrimSpace(locale)
		if locale == "" {
			return ErrEmptyLocale
		}
		e.locale = locale
		e.format = FormatFor(locale)
		e.locales = normalizeLocales(e.log, append([]string{locale}, e.locales...))
		return nil
	}
}

// WithLocales sets the supported locale set. Codes are normalized to
// canonical BCP 47 form and DefaultLocale is always included.
func WithLocales(locales ...string) Option {
	return func(e *Engine) error {
		e.locales = normalizeLocales(e.log, locales)
		return nil
	}
}

// WithTranslations merges a static fragment into the tree once
// construction completes.
func WithTranslations(frag Fragment) Option {
	return func(e *Engine) error {
		if len(frag) > 0 {
			e.pending = append(e.pending, frag)
		}
		return nil
	}
}

// WithNamespace registers a namespace resolver at construction time.
// Unlike RegisterNamespaceResolver, invalid input fails construction.
func WithNamespace(name string, r Resolver) Option {
	return func(e *Engine) error {
		if strings.TrimSpace(name) == "" {
			return ErrEmptyNamespace
		}
		if r == nil {
			return ErrNilResolver
		}
		e.resolvers[name] = r
		return nil
	}
}

// WithLoadTimeout bounds a whole LoadNamespaces fan-out. Zero disables
// the timeout.
// Default: 30 seconds.
func WithLoadTimeout(d time.Duration) Option {
	return func(e *Engine) error {
		e.loadTimeout = d
		return nil
	}
}

// WithLoadConcurrency limits how many namespace resolvers run at once
// during LoadNamespaces. Zero or negative means unbounded.
// Default: 8.
func WithLoadConcurrency(n int) Option {
	return func(e *Engine) error {
		e.loadLimit = n
		return nil
	}
}
