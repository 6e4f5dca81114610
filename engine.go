package lingo

import (
	"context"
	"log/slog"
	"strings"
	"sync"
	"time"

	"golang.org/x/sync/singleflight"

	"github.com/dmitrymomot/lingo/pkg/bus"
	"github.com/dmitrymomot/lingo/pkg/logger"
)

// DefaultLocale is always part of the supported locale set and is the
// last stop of the translation fallback chain.
const DefaultLocale = "en"

// prefLocaleKey is the preference store key the active locale is
// persisted under.
const prefLocaleKey = "lingo:locale"

// Resolver fetches the translation fragment of one namespace for a
// locale. Resolvers are registered once per namespace name and invoked
// on every load; the engine never retries them on its own.
type Resolver func(ctx context.Context, locale string) (map[string]any, error)

// PreferenceStore persists a single string value across sessions. The
// engine uses it to remember the active locale; pkg/prefs provides
// Memory and Redis implementations.
type PreferenceStore interface {
	// Get returns the stored value for key, or an error when absent.
	Get(ctx context.Context, key string) (string, error)

	// Set stores value under key.
	Set(ctx context.Context, key, value string) error
}

// LoadResult reports the outcome of loading all namespaces for a locale.
// Failed carries the per-namespace errors of resolvers that did not
// settle successfully; a failing resolver never blocks the others.
type LoadResult struct {
	Locale       string
	Translations map[string]any
	Failed       map[string]error
}

// Engine is the localization engine: it owns the translation tree, the
// locale state and the namespace resolver registry, and announces every
// change on the injected bus.
//
// All exported methods are safe for concurrent use. The engine is the
// sole mutator of the tree; readers observe either the pre- or the
// post-merge state of any load.
type Engine struct {
	log      *slog.Logger
	bus      Bus
	store    PreferenceStore
	calendar func(locale string)

	loadTimeout time.Duration
	loadLimit   int

	sf singleflight.Group

	// switchMu serializes locale switches so overlapping SetLocale calls
	// apply in call order instead of racing on completion order.
	switchMu sync.Mutex

	mu        sync.RWMutex
	tree      map[string]map[string]any
	resolvers map[string]Resolver
	locale    string
	locales   []string
	format    *Format
	version   uint64
	loading   bool

	// fragments passed via WithTranslations, merged after all options
	// have been applied so the configured bus sees the merge events.
	pending []Fragment
}

// New creates an independent, non-singleton engine. Engines created here
// do not persist the active locale unless a preference store is injected
// via WithPreferenceStore.
func New(opts ...Option) (*Engine, error) {
	e := &Engine{
		log:         logger.NewNope(),
		loadTimeout: 30 * time.Second,
		loadLimit:   8,
		tree:        make(map[string]map[string]any),
		resolvers:   make(map[string]Resolver),
		locale:      DefaultLocale,
		locales:     []string{DefaultLocale},
		format:      FormatFor(DefaultLocale),
	}

	for _, opt := range opts {
		if err := opt(e); err != nil {
			return nil, err
		}
	}

	if e.bus == nil {
		e.bus = bus.NewMemory()
	}

	for _, frag := range e.pending {
		e.storeFragment(frag)
	}
	e.pending = nil

	e.restoreLocale()

	return e, nil
}

// restoreLocale reads the persisted locale, if a store is configured,
// and adopts it when it is part of the supported set.
func (e *Engine) restoreLocale() {
	if e.store == nil {
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	stored, err := e.store.Get(ctx, prefLocaleKey)
	if err != nil || stored == "" {
		return
	}
	if !e.IsLocaleSupported(stored) {
		e.log.Warn("persisted locale is not supported, ignoring",
			slog.String("locale", stored))
		return
	}

	e.mu.Lock()
	e.locale = stored
	e.format = FormatFor(stored)
	e.mu.Unlock()
}

// Locale returns the current locale.
func (e *Engine) Locale() string {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.locale
}

// Locales returns the supported locale list. DefaultLocale is always
// included.
func (e *Engine) Locales() []string {
	e.mu.RLock()
	defer e.mu.RUnlock()
	out := make([]string, len(e.locales))
	copy(out, e.locales)
	return out
}

// Loading reports whether a namespace load is in flight.
func (e *Engine) Loading() bool {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.loading
}

// HasLocale reports whether any translations are stored for locale.
func (e *Engine) HasLocale(locale string) bool {
	e.mu.RLock()
	defer e.mu.RUnlock()
	_, ok := e.tree[locale]
	return ok
}

// IsLocaleSupported reports whether locale is in the supported set.
func (e *Engine) IsLocaleSupported(locale string) bool {
	e.mu.RLock()
	defer e.mu.RUnlock()
	for _, l := range e.locales {
		if l == locale {
			return true
		}
	}
	return false
}

// Format returns the locale format active for the current locale.
func (e *Engine) Format() *Format {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.format
}

// Translations returns a snapshot of the translation tree for the given
// locale, or for the current locale when none is supplied. The snapshot
// is a deep copy and safe to hold across later merges.
func (e *Engine) Translations(locale ...string) map[string]any {
	target := e.targetLocale(locale)

	e.mu.RLock()
	defer e.mu.RUnlock()
	return copyTree(e.tree[target])
}

// NestedTranslation walks the dotted scope through the locale's tree and
// returns the leaf value. Absence, a blank scope, or a non-traversable
// intermediate all report ok=false; no error is ever raised.
func (e *Engine) NestedTranslation(scope string, locale ...string) (any, bool) {
	segments := splitScope(scope)
	if segments == nil {
		return nil, false
	}

	target := e.targetLocale(locale)

	e.mu.RLock()
	defer e.mu.RUnlock()
	return lookupPath(e.tree[target], segments)
}

// CanPluralize reports whether the scope resolves to a pluralization
// record: a mapping with both one and other string members. A zero
// member is optional and deliberately not required.
func (e *Engine) CanPluralize(scope string, locale ...string) bool {
	v, ok := e.NestedTranslation(scope, locale...)
	if !ok {
		return false
	}
	_, ok = pluralRecord(v)
	return ok
}

// Translate resolves scope against the current locale and renders it
// with the merged params. When params carry a numeric "count" and the
// scope resolves to a pluralization record, the matching plural form is
// selected and a locale-grouped "countStr" param is injected before
// interpolation.
//
// A missing key degrades to the scope string itself after falling back
// through the base language and DefaultLocale; translation lookups never
// fail with an error.
func (e *Engine) Translate(scope string, params ...M) string {
	merged := mergeParams(params...)
	locale := e.Locale()

	if raw, ok := merged["count"]; ok {
		if n, orig, numeric := asCount(raw); numeric {
			if v, found := e.resolveScope(scope, locale); found {
				if rec, isRecord := pluralRecord(v); isRecord {
					template := selectPluralForm(rec, pluralRuleForLocale(locale), n)

					withCount := make(M, len(merged)+1)
					for k, pv := range merged {
						withCount[k] = pv
					}
					withCount["countStr"] = formatCount(locale, orig)

					return Interpolate(template, withCount)
				}
			}
		}
	}

	v, found := e.resolveScope(scope, locale)
	if !found {
		e.log.Debug("missing translation", slog.String("scope", scope), slog.String("locale", locale))
		return scope
	}

	return Interpolate(v, merged)
}

// resolveScope looks a scope up in the given locale, then in its base
// language, then in DefaultLocale.
func (e *Engine) resolveScope(scope, locale string) (any, bool) {
	if v, ok := e.NestedTranslation(scope, locale); ok {
		return v, true
	}
	if base := baseLocale(locale); base != locale {
		if v, ok := e.NestedTranslation(scope, base); ok {
			return v, true
		}
	}
	if locale != DefaultLocale && baseLocale(locale) != DefaultLocale {
		if v, ok := e.NestedTranslation(scope, DefaultLocale); ok {
			return v, true
		}
	}
	return nil, false
}

// RegisterTranslations merges a static multi-locale fragment into the
// tree immediately, without any resolver round trip. Locale values that
// are not mappings are skipped with a warning.
func (e *Engine) RegisterTranslations(frag Fragment) {
	e.storeFragment(frag)
}

func (e *Engine) storeFragment(frag Fragment) {
	for locale, sub := range frag {
		m, ok := sub.(map[string]any)
		if !ok {
			e.log.Warn("fragment locale value is not a mapping, skipping",
				slog.String("locale", locale))
			continue
		}
		e.storeLocale(locale, m)
	}
}

// storeLocale merges a single-locale fragment into the tree and
// announces the change. The merge itself is synchronous, so concurrent
// readers observe either the pre- or the post-merge tree.
func (e *Engine) storeLocale(locale string, frag map[string]any) {
	e.mu.Lock()
	e.tree[locale] = mergeLocale(e.tree[locale], frag)
	e.version++
	snapshot := copyTree(e.tree[locale])
	e.mu.Unlock()

	e.bus.Publish(TopicTranslationsChanged, TranslationsChanged{
		Locale:       locale,
		Translations: snapshot,
	})
}

// targetLocale resolves an optional locale argument, defaulting to the
// current locale.
func (e *Engine) targetLocale(locale []string) string {
	if len(locale) > 0 {
		if l := strings.TrimSpace(locale[0]); l != "" {
			return l
		}
	}
	return e.Locale()
}

func (e *Engine) setLoading(v bool) {
	e.mu.Lock()
	e.loading = v
	e.mu.Unlock()
}

// baseLocale strips the region from a locale code ("en-US" to "en").
func baseLocale(locale string) string {
	if i := strings.IndexAny(locale, "-_"); i > 0 {
		return locale[:i]
	}
	return locale
}
