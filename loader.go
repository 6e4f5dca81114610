package lingo

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"sync"

	"golang.org/x/sync/errgroup"
)

// LoadOption tweaks a single LoadNamespace/LoadNamespaces call.
type LoadOption func(*loadOptions)

type loadOptions struct {
	merge bool
}

// WithoutMerge fetches namespace fragments without merging them into the
// live translation tree. The fetched dictionary is still returned and
// the load events still fire.
func WithoutMerge() LoadOption {
	return func(o *loadOptions) {
		o.merge = false
	}
}

func newLoadOptions(opts []LoadOption) *loadOptions {
	o := &loadOptions{merge: true}
	for _, opt := range opts {
		opt(o)
	}
	return o
}

// RegisterNamespaceResolver stores a resolver under name, overwriting a
// previous registration with the same name. A blank name or nil resolver
// is rejected with a warning and otherwise ignored.
func (e *Engine) RegisterNamespaceResolver(name string, r Resolver) {
	if strings.TrimSpace(name) == "" || r == nil {
		e.log.Warn("ignoring invalid namespace resolver registration",
			slog.String("namespace", name), slog.Bool("nil_resolver", r == nil))
		return
	}

	e.mu.Lock()
	e.resolvers[name] = r
	e.mu.Unlock()
}

// Namespaces returns the names of all registered namespace resolvers.
func (e *Engine) Namespaces() []string {
	e.mu.RLock()
	defer e.mu.RUnlock()
	out := make([]string, 0, len(e.resolvers))
	for name := range e.resolvers {
		out = append(out, name)
	}
	return out
}

// LoadNamespace fetches one namespace for a locale (the current locale
// when locale is blank), merges the fragment into the tree unless
// WithoutMerge is given, fires TopicNamespaceLoaded and returns the
// fetched dictionary. The tree is left untouched on any failure.
func (e *Engine) LoadNamespace(ctx context.Context, name, locale string, opts ...LoadOption) (map[string]any, error) {
	o := newLoadOptions(opts)

	if strings.TrimSpace(name) == "" {
		return nil, ErrEmptyNamespace
	}

	e.mu.RLock()
	r, ok := e.resolvers[name]
	e.mu.RUnlock()
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownNamespace, name)
	}

	locale = strings.TrimSpace(locale)
	if locale == "" {
		locale = e.Locale()
	}
	if locale == "" {
		return nil, ErrEmptyLocale
	}

	frag, err := e.fetch(ctx, name, locale, r)
	if err != nil {
		return nil, fmt.Errorf("lingo: load namespace %q for %q: %w", name, locale, err)
	}

	if o.merge {
		e.storeLocale(locale, frag)
	}

	e.bus.Publish(TopicNamespaceLoaded, NamespaceLoaded{
		Name:         name,
		Locale:       locale,
		Translations: frag,
	})

	return frag, nil
}

// LoadNamespaces fans out every registered resolver for a locale (the
// current locale when blank), bounded by the configured concurrency
// limit and load timeout, and joins on all of them. Individual failures
// are captured per namespace in LoadResult.Failed and never block the
// other resolvers; the loading flag clears once everything has settled.
//
// The successful fragments are aggregated into one dictionary, merged
// into the tree in a single store unless WithoutMerge is given, and
// announced via TopicNamespacesLoaded.
func (e *Engine) LoadNamespaces(ctx context.Context, locale string, opts ...LoadOption) (*LoadResult, error) {
	o := newLoadOptions(opts)

	locale = strings.TrimSpace(locale)
	if locale == "" {
		locale = e.Locale()
	}
	if locale == "" {
		return nil, ErrEmptyLocale
	}

	e.mu.RLock()
	resolvers := make(map[string]Resolver, len(e.resolvers))
	for name, r := range e.resolvers {
		resolvers[name] = r
	}
	e.mu.RUnlock()

	e.setLoading(true)
	defer e.setLoading(false)

	if e.loadTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, e.loadTimeout)
		defer cancel()
	}

	var (
		g         errgroup.Group
		mu        sync.Mutex
		aggregate = make(map[string]any)
		failed    = make(map[string]error)
	)
	if e.loadLimit > 0 {
		g.SetLimit(e.loadLimit)
	}

	for name, r := range resolvers {
		name, r := name, r
		g.Go(func() error {
			frag, err := e.fetch(ctx, name, locale, r)
			if err != nil {
				e.log.Warn("namespace resolver failed",
					slog.String("namespace", name),
					slog.String("locale", locale),
					slog.String("error", err.Error()))
				mu.Lock()
				failed[name] = err
				mu.Unlock()
				return nil
			}

			mu.Lock()
			for k, v := range frag {
				aggregate[k] = v
			}
			mu.Unlock()
			return nil
		})
	}

	// Resolver errors are collected, never returned, so the join always
	// settles.
	_ = g.Wait()

	if o.merge && len(aggregate) > 0 {
		e.storeLocale(locale, aggregate)
	}

	e.bus.Publish(TopicNamespacesLoaded, NamespacesLoaded{
		Locale:       locale,
		Translations: aggregate,
	})

	return &LoadResult{
		Locale:       locale,
		Translations: aggregate,
		Failed:       failed,
	}, nil
}

// fetch runs a resolver, deduplicating identical concurrent fetches of
// the same namespace and locale through singleflight.
func (e *Engine) fetch(ctx context.Context, name, locale string, r Resolver) (map[string]any, error) {
	v, err, _ := e.sf.Do(name+":"+locale, func() (any, error) {
		return r(ctx, locale)
	})
	if err != nil {
		return nil, err
	}

	frag, _ := v.(map[string]any)
	if frag == nil {
		frag = make(map[string]any)
	}
	return frag, nil
}
