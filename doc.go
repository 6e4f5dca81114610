// Package lingo is a localization engine with asynchronous namespace
// loading, locale state management, pluralization dispatch, nested-key
// resolution, declarative key-to-member binding and %{name} string
// interpolation.
//
// The engine keeps one mutable translation tree per locale. Dictionaries
// arrive either as static fragments or through namespace resolvers:
// named async functions that fetch a namespace's fragment for a locale.
// Locale switches fan those resolvers out concurrently, merge the
// results, and announce every state change on an injected event bus.
//
// # Basic Usage
//
//	engine, err := lingo.New(
//		lingo.WithLocales("en", "fr", "de"),
//		lingo.WithTranslations(lingo.Fragment{
//			"en": map[string]any{"greeting": "Hello %{name}"},
//			"fr": map[string]any{"greeting": "Bonjour %{name}"},
//		}),
//	)
//
//	engine.Translate("greeting", lingo.M{"name": "Ada"})
//	// Output: "Hello Ada"
//
// # Namespaces
//
// Register resolvers for independently loadable translation bundles and
// load them per locale. pkg/source ships resolvers for fs.FS, HTTP,
// Postgres and S3 backends:
//
//	engine.RegisterNamespaceResolver("common", source.FS(translationsFS, "common"))
//
//	dict, err := engine.LoadNamespace(ctx, "common", "fr")
//
// LoadNamespaces runs every registered resolver concurrently and reports
// per-namespace failures in the returned LoadResult instead of failing
// the whole load.
//
// # Locale Switching
//
//	translations, err := engine.SetLocale(ctx, "fr")
//
// SetLocale is a no-op when the locale is already current. Otherwise it
// fires namespaces-before-load, reloads every namespace for the target
// locale, persists the choice to the preference store when one is
// configured, and fires locale-changed once everything settled.
// Overlapping switches apply in call order.
//
// # Pluralization
//
// A translation leaf with string "one" and "other" members (and an
// optional "zero") is a pluralization record. Passing a numeric "count"
// param selects the matching form and injects a locale-grouped
// "countStr" param:
//
//	// greeting: {one: "Hi %{name}", other: "Hi all"}
//	engine.Translate("greeting", lingo.M{"count": 1, "name": "Bo"}) // "Hi Bo"
//	engine.Translate("greeting", lingo.M{"count": 5})               // "Hi all"
//
// # Declarative Binding
//
// Struct members declare their translation key through the i18n tag;
// ResolveTranslations writes resolved strings onto an instance and
// TranslateTarget returns a fresh member-to-string mapping:
//
//	type Labels struct {
//		Title string `i18n:"pages.home.title"`
//	}
//
//	var l Labels
//	_ = engine.ResolveTranslations(&l)
//
// # Shared Instance
//
// Default returns a lazily constructed process-wide engine; it is the
// only instance that persists the active locale out of the box. Use New
// for isolated instances in tests and libraries.
package lingo
