package lingo_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/lingo"
	"github.com/dmitrymomot/lingo/pkg/bus"
)

func TestNew(t *testing.T) {
	t.Parallel()

	t.Run("creates engine with defaults", func(t *testing.T) {
		t.Parallel()
		e, err := lingo.New()
		require.NoError(t, err)
		require.NotNil(t, e)
		require.Equal(t, "en", e.Locale())
		require.Equal(t, []string{"en"}, e.Locales())
		require.False(t, e.Loading())
	})

	t.Run("sets default locale", func(t *testing.T) {
		t.Parallel()
		e, err := lingo.New(lingo.WithDefaultLocale("de"))
		require.NoError(t, err)
		require.Equal(t, "de", e.Locale())
		require.Contains(t, e.Locales(), "de")
		require.Contains(t, e.Locales(), "en")
	})

	t.Run("rejects blank default locale", func(t *testing.T) {
		t.Parallel()
		_, err := lingo.New(lingo.WithDefaultLocale("  "))
		require.ErrorIs(t, err, lingo.ErrEmptyLocale)
	})

	t.Run("rejects blank namespace option", func(t *testing.T) {
		t.Parallel()
		_, err := lingo.New(lingo.WithNamespace("", stubResolver(nil)))
		require.ErrorIs(t, err, lingo.ErrEmptyNamespace)
	})

	t.Run("rejects nil resolver option", func(t *testing.T) {
		t.Parallel()
		_, err := lingo.New(lingo.WithNamespace("common", nil))
		require.ErrorIs(t, err, lingo.ErrNilResolver)
	})

	t.Run("merges construction-time translations", func(t *testing.T) {
		t.Parallel()
		e, err := lingo.New(lingo.WithTranslations(lingo.Fragment{
			"en": map[string]any{"greeting": "Hi"},
		}))
		require.NoError(t, err)
		require.Equal(t, "Hi", e.Translate("greeting"))
	})
}

func TestEngineTranslate(t *testing.T) {
	t.Parallel()

	newEngine := func(t *testing.T) *lingo.Engine {
		t.Helper()
		e, err := lingo.New(lingo.WithTranslations(lingo.Fragment{
			"en": map[string]any{
				"greeting": "Hi",
				"welcome":  "Welcome %{name}",
				"nested":   map[string]any{"deep": map[string]any{"leaf": "found"}},
			},
			"fr": map[string]any{
				"greeting": "Salut",
			},
		}))
		require.NoError(t, err)
		return e
	}

	t.Run("round trip through registered translations", func(t *testing.T) {
		t.Parallel()
		e := newEngine(t)
		require.Equal(t, "Hi", e.Translate("greeting"))
	})

	t.Run("interpolates params", func(t *testing.T) {
		t.Parallel()
		e := newEngine(t)
		require.Equal(t, "Welcome Ada", e.Translate("welcome", lingo.M{"name": "Ada"}))
	})

	t.Run("resolves dotted scopes", func(t *testing.T) {
		t.Parallel()
		e := newEngine(t)
		require.Equal(t, "found", e.Translate("nested.deep.leaf"))
	})

	t.Run("missing key degrades to the scope itself", func(t *testing.T) {
		t.Parallel()
		e := newEngine(t)
		require.Equal(t, "does.not.exist", e.Translate("does.not.exist"))
	})

	t.Run("falls back to default locale", func(t *testing.T) {
		t.Parallel()
		e := newEngine(t)
		_, err := e.SetLocale(context.Background(), "fr")
		require.NoError(t, err)

		assert.Equal(t, "Salut", e.Translate("greeting"))
		// welcome exists only in en.
		assert.Equal(t, "Welcome Ada", e.Translate("welcome", lingo.M{"name": "Ada"}))
	})
}

func TestEngineNestedTranslation(t *testing.T) {
	t.Parallel()

	e, err := lingo.New(lingo.WithTranslations(lingo.Fragment{
		"en": map[string]any{
			"a":    map[string]any{"b": map[string]any{"c": "X"}},
			"flat": "leaf",
		},
	}))
	require.NoError(t, err)

	t.Run("walks dotted path to leaf", func(t *testing.T) {
		t.Parallel()
		v, ok := e.NestedTranslation("a.b.c")
		require.True(t, ok)
		require.Equal(t, "X", v)
	})

	t.Run("missing intermediate segment yields not found", func(t *testing.T) {
		t.Parallel()
		_, ok := e.NestedTranslation("a.x.c")
		require.False(t, ok)
	})

	t.Run("non-traversable intermediate yields not found", func(t *testing.T) {
		t.Parallel()
		_, ok := e.NestedTranslation("flat.deeper")
		require.False(t, ok)
	})

	t.Run("blank scope yields not found", func(t *testing.T) {
		t.Parallel()
		_, ok := e.NestedTranslation("   ")
		require.False(t, ok)
	})

	t.Run("explicit locale without data yields not found", func(t *testing.T) {
		t.Parallel()
		_, ok := e.NestedTranslation("a.b.c", "de")
		require.False(t, ok)
	})
}

func TestEngineRegisterTranslations(t *testing.T) {
	t.Parallel()

	t.Run("merge replaces whole subtrees per top-level key", func(t *testing.T) {
		t.Parallel()
		e, err := lingo.New(lingo.WithTranslations(lingo.Fragment{
			"en": map[string]any{
				"buttons": map[string]any{"save": "Save", "cancel": "Cancel"},
				"title":   "Home",
			},
		}))
		require.NoError(t, err)

		e.RegisterTranslations(lingo.Fragment{
			"en": map[string]any{
				"buttons": map[string]any{"save": "Store"},
			},
		})

		// The buttons subtree was replaced wholesale, not reconciled.
		_, ok := e.NestedTranslation("buttons.cancel")
		assert.False(t, ok)
		assert.Equal(t, "Store", e.Translate("buttons.save"))
		// Sibling top-level keys survive the shallow merge.
		assert.Equal(t, "Home", e.Translate("title"))
	})

	t.Run("publishes translations-changed per locale", func(t *testing.T) {
		t.Parallel()
		b := bus.NewMemory()
		e, err := lingo.New(lingo.WithBus(b))
		require.NoError(t, err)

		var events []lingo.TranslationsChanged
		b.Subscribe(lingo.TopicTranslationsChanged, func(payload any) {
			events = append(events, payload.(lingo.TranslationsChanged))
		})

		e.RegisterTranslations(lingo.Fragment{
			"en": map[string]any{"a": "1"},
		})

		require.Len(t, events, 1)
		assert.Equal(t, "en", events[0].Locale)
		assert.Equal(t, "1", events[0].Translations["a"])
	})

	t.Run("HasLocale reflects stored locales", func(t *testing.T) {
		t.Parallel()
		e, err := lingo.New()
		require.NoError(t, err)
		require.False(t, e.HasLocale("en"))

		e.RegisterTranslations(lingo.Fragment{"en": map[string]any{"k": "v"}})
		require.True(t, e.HasLocale("en"))
		require.False(t, e.HasLocale("fr"))
	})

	t.Run("translations snapshot is isolated from later merges", func(t *testing.T) {
		t.Parallel()
		e, err := lingo.New(lingo.WithTranslations(lingo.Fragment{
			"en": map[string]any{"k": "v1"},
		}))
		require.NoError(t, err)

		snapshot := e.Translations("en")
		e.RegisterTranslations(lingo.Fragment{"en": map[string]any{"k": "v2"}})

		require.Equal(t, "v1", snapshot["k"])
		require.Equal(t, "v2", e.Translate("k"))
	})
}
