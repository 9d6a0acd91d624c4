// Package logger provides structured logging utilities built on Go's
// standard slog package: a factory with environment presets and nil-safe
// attribute helpers for common logging scenarios.
//
// Create loggers using the factory function with configuration options:
//
//	log := logger.New(
//		logger.WithProduction("authkit"),
//	)
//
//	log.Info("redis connected",
//		logger.Component("revocation"),
//		logger.Duration(elapsed),
//	)
//
// Development preset uses text output at debug level; production uses JSON at
// info level. Attribute helpers return an empty slog.Attr for nil inputs, so
// logger.Error(err) is safe without an explicit nil check.
package logger
