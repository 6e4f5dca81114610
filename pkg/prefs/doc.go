// Package prefs provides small persistent key-value preference stores.
//
// The localization engine uses a Store to remember the active locale
// across sessions. Two backends are included: Memory for tests and
// single-process defaults, and Redis for anything that must survive a
// restart or be shared between instances.
//
//	store := prefs.NewMemory()
//
//	client, err := prefs.Open(ctx, os.Getenv("REDIS_URL"))
//	if err != nil { ... }
//	store = prefs.NewRedis(client, prefs.WithPrefix("myapp"))
//
// Absence is reported through ErrNotFound, never through an empty
// string, so empty values remain storable.
package prefs
