package lingo_test

import (
	"context"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/lingo"
	"github.com/dmitrymomot/lingo/pkg/bus"
	"github.com/dmitrymomot/lingo/pkg/prefs"
)

func TestEngineSetLocales(t *testing.T) {
	t.Parallel()

	t.Run("always includes en", func(t *testing.T) {
		t.Parallel()
		e, err := lingo.New()
		require.NoError(t, err)

		result := e.SetLocales([]string{"fr"})
		require.Equal(t, []string{"en", "fr"}, result)
		require.Equal(t, result, e.Locales())
	})

	t.Run("normalizes and dedupes codes", func(t *testing.T) {
		t.Parallel()
		e, err := lingo.New()
		require.NoError(t, err)

		result := e.SetLocales([]string{"de", " fr ", "de", "en-us"})
		require.Equal(t, []string{"en", "de", "en-US", "fr"}, result)
	})

	t.Run("drops unparsable codes", func(t *testing.T) {
		t.Parallel()
		e, err := lingo.New()
		require.NoError(t, err)

		result := e.SetLocales([]string{"fr", "not a locale!"})
		require.Equal(t, []string{"en", "fr"}, result)
	})

	t.Run("IsLocaleSupported follows the set", func(t *testing.T) {
		t.Parallel()
		e, err := lingo.New(lingo.WithLocales("fr", "de"))
		require.NoError(t, err)

		assert.True(t, e.IsLocaleSupported("fr"))
		assert.True(t, e.IsLocaleSupported("en"))
		assert.False(t, e.IsLocaleSupported("ja"))
	})
}

func TestEngineSetLocale(t *testing.T) {
	t.Parallel()

	t.Run("switching to the current locale is a no-op", func(t *testing.T) {
		t.Parallel()
		b := bus.NewMemory()
		e, err := lingo.New(
			lingo.WithBus(b),
			lingo.WithTranslations(lingo.Fragment{"en": map[string]any{"k": "v"}}),
		)
		require.NoError(t, err)

		var fired []string
		for _, topic := range []string{lingo.TopicLocaleChanged, lingo.TopicNamespacesBeforeLoad} {
			topic := topic
			b.Subscribe(topic, func(any) {
				fired = append(fired, topic)
			})
		}

		translations, err := e.SetLocale(context.Background(), "en")
		require.NoError(t, err)
		require.Equal(t, "v", translations["k"])
		require.Empty(t, fired)
	})

	t.Run("rejects blank locale", func(t *testing.T) {
		t.Parallel()
		e, err := lingo.New()
		require.NoError(t, err)
		_, err = e.SetLocale(context.Background(), " ")
		require.ErrorIs(t, err, lingo.ErrEmptyLocale)
	})

	t.Run("loads namespaces and fires events in order", func(t *testing.T) {
		t.Parallel()
		b := bus.NewMemory()
		e, err := lingo.New(
			lingo.WithBus(b),
			lingo.WithNamespace("common", stubResolver(map[string]any{"greeting": "Salut"})),
		)
		require.NoError(t, err)

		var mu sync.Mutex
		var order []string
		for _, topic := range []string{
			lingo.TopicNamespacesBeforeLoad,
			lingo.TopicNamespaceLoaded,
			lingo.TopicNamespacesLoaded,
			lingo.TopicLocaleChanged,
		} {
			topic := topic
			b.Subscribe(topic, func(any) {
				mu.Lock()
				order = append(order, topic)
				mu.Unlock()
			})
		}

		translations, err := e.SetLocale(context.Background(), "fr")
		require.NoError(t, err)
		require.Equal(t, "Salut", translations["greeting"])
		require.Equal(t, "fr", e.Locale())
		require.False(t, e.Loading())

		// translations-changed fires between the loads; here only the
		// relative order of the protocol events matters.
		require.Equal(t, []string{
			lingo.TopicNamespacesBeforeLoad,
			lingo.TopicNamespacesLoaded,
			lingo.TopicLocaleChanged,
		}, order)
	})

	t.Run("persists supported locale to the preference store", func(t *testing.T) {
		t.Parallel()
		store := prefs.NewMemory()
		e, err := lingo.New(
			lingo.WithPreferenceStore(store),
			lingo.WithLocales("fr"),
		)
		require.NoError(t, err)

		_, err = e.SetLocale(context.Background(), "fr")
		require.NoError(t, err)

		v, err := store.Get(context.Background(), "lingo:locale")
		require.NoError(t, err)
		require.Equal(t, "fr", v)
	})

	t.Run("does not persist unsupported locales", func(t *testing.T) {
		t.Parallel()
		store := prefs.NewMemory()
		e, err := lingo.New(lingo.WithPreferenceStore(store))
		require.NoError(t, err)

		_, err = e.SetLocale(context.Background(), "ja")
		require.NoError(t, err)
		require.Equal(t, "ja", e.Locale())

		_, err = store.Get(context.Background(), "lingo:locale")
		require.ErrorIs(t, err, prefs.ErrNotFound)
	})

	t.Run("restores persisted locale at construction", func(t *testing.T) {
		t.Parallel()
		store := prefs.NewMemory()
		require.NoError(t, store.Set(context.Background(), "lingo:locale", "fr"))

		e, err := lingo.New(
			lingo.WithPreferenceStore(store),
			lingo.WithLocales("fr"),
		)
		require.NoError(t, err)
		require.Equal(t, "fr", e.Locale())
	})

	t.Run("ignores persisted locale outside the supported set", func(t *testing.T) {
		t.Parallel()
		store := prefs.NewMemory()
		require.NoError(t, store.Set(context.Background(), "lingo:locale", "xx"))

		e, err := lingo.New(lingo.WithPreferenceStore(store))
		require.NoError(t, err)
		require.Equal(t, "en", e.Locale())
	})

	t.Run("invokes the calendar hook", func(t *testing.T) {
		t.Parallel()
		var got string
		e, err := lingo.New(lingo.WithCalendarFunc(func(locale string) {
			got = locale
		}))
		require.NoError(t, err)

		_, err = e.SetLocale(context.Background(), "de")
		require.NoError(t, err)
		require.Equal(t, "de", got)
	})

	t.Run("updates the active format", func(t *testing.T) {
		t.Parallel()
		e, err := lingo.New()
		require.NoError(t, err)

		_, err = e.SetLocale(context.Background(), "de")
		require.NoError(t, err)
		require.Equal(t, "1.234,5", e.Format().Number(1234.5))
	})

	t.Run("overlapping switches settle on the last caller", func(t *testing.T) {
		t.Parallel()
		e, err := lingo.New(
			lingo.WithNamespace("common", stubResolver(map[string]any{"k": "v"})),
		)
		require.NoError(t, err)

		var wg sync.WaitGroup
		for _, locale := range []string{"fr", "de", "es"} {
			locale := locale
			wg.Add(1)
			go func() {
				defer wg.Done()
				_, err := e.SetLocale(context.Background(), locale)
				assert.NoError(t, err)
			}()
		}
		wg.Wait()

		// One of the requested locales won deterministically per call
		// order; all of them fully settled.
		require.Contains(t, []string{"fr", "de", "es"}, e.Locale())
		require.False(t, e.Loading())
	})
}
