// Package errmsg renders localized validation error messages.
//
// A Manager owns a catalog registry, the current and fallback locale, a key
// resolver and the error message formatter. Each Manager is independent, so
// tests and tenants can hold their own.
//
// # Usage
//
//	m, err := errmsg.New(errmsg.WithEmbeddedDefaults())
//	if err != nil {
//	    return err
//	}
//	if err := m.LoadLocales(ctx, "en", "es"); err != nil {
//	    return err
//	}
//
//	m.GetMessage("string.tooShort", map[string]any{"min": 5}, "")
//	// "is too short (minimum: 5 characters)"
//
//	m.FormatErrorMessage(formatter.Options{Msg: "Email", MessageKey: "email.invalid"})
//	// "Email is not a valid email address"
//
// # Configuration
//
// NewFromConfig builds a Manager from a Config, usually read with LoadConfig
// from MESSAGES_* variables. Catalogs come from the embedded defaults, a
// directory, an S3 bucket or redis:
//
//	MESSAGES_SOURCE=s3
//	MESSAGES_LOCALES=en,es
//	MESSAGES_S3_BUCKET=my-catalogs
//	MESSAGES_S3_PREFIX=errmsg/
//
// # Error Handling
//
// Loading and locale selection return errors: *registry.UnsupportedLocaleError,
// *catalog.InvalidCatalogError, *registry.LoadError and
// *locale.InvalidLocaleCodeError. Message resolution and formatting never
// fail; unresolved keys surface as the key itself.
package errmsg
