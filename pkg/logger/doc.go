// Package logger builds the *slog.Logger instances used across the module.
//
// New creates a text or JSON logger configured through functional options.
// Registered ContextExtractor callbacks add request-scoped attributes on
// every record logged with a context; WithRequestLocale uses that to stamp
// the locale chosen by locale.Middleware:
//
//	log := logger.New(
//	    logger.WithFormat(logger.FormatText),
//	    logger.WithLevelName("debug"),
//	    logger.WithAttr(logger.Component("errmsg")),
//	    logger.WithRequestLocale(),
//	)
//
// Attribute helpers (Locale, MessageKey, MessageGroup, Error) keep key names
// consistent. Error and Errors return an empty Attr for nil errors, so
//
//	log.Warn("catalog load failed", logger.Error(err))
//
// needs no nil check.
package logger
