// Package source provides ready-made namespace resolvers for the
// localization engine.
//
// Each constructor returns a plain function fetching one namespace's
// translation fragment for a locale, assignable to the engine's Resolver
// type:
//
//	engine.RegisterNamespaceResolver("common", source.FS(translationsFS, "common"))
//	engine.RegisterNamespaceResolver("errors", source.HTTP(nil, "https://cdn.example.com/i18n", "errors"))
//	engine.RegisterNamespaceResolver("emails", source.Postgres(pool, "emails"))
//	engine.RegisterNamespaceResolver("legal", source.S3(client, "assets", "legal"))
//
// Conventions:
//   - FS and HTTP read {locale}/{namespace}.json (FS also .yaml/.yml)
//   - Postgres reads (locale, namespace, key, value) rows, expanding
//     dotted keys into nested fragments
//   - S3 reads {prefix}/{locale}/{namespace}.json objects
//
// Resolvers only fetch; merging into the live tree, concurrency, and
// failure isolation are the engine's job.
package source
