// Package logger provides the structured logging the localization engine
// and its hosts report through.
//
// It extends log/slog with context-based attribute injection and
// optional Sentry routing. The engine logs translation gaps and failing
// namespace resolvers as warnings; wiring those into Sentry turns
// missing-translation reports into actionable issues instead of silent
// log noise.
//
// # Basic Usage
//
//	log := logger.New(logger.LocaleExtractor)
//
//	engine, err := lingo.New(lingo.WithLogger(log))
//
//	ctx = logger.WithLocale(ctx, engine.Locale())
//	log.WarnContext(ctx, "missing translation", slog.String("scope", scope))
//	// Output: {"level":"WARN","msg":"missing translation","scope":"...","locale":"fr"}
//
// # Sentry
//
//	log := logger.NewWithSentry(logger.SentryConfig{
//		DSN:      os.Getenv("SENTRY_DSN"),
//		MinLevel: slog.LevelWarn,
//	}, logger.LocaleExtractor)
//
// With an empty DSN the logger falls back to stdout-only, so the same
// construction works in development and production.
package logger
