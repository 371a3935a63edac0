// Package locale tracks which locale messages are rendered in.
//
// A Config holds a fixed supported set plus two mutable selections: the
// current locale and the fallback locale. Both start at "en" when it is
// supported, and both may only be set to supported codes:
//
//	cfg, err := locale.New([]string{"en", "es", "fr"}, locale.WithAvailability(reg))
//	if err != nil {
//	    return err
//	}
//	if err := cfg.SetLocale("es"); err != nil {
//	    // *locale.InvalidLocaleCodeError
//	}
//
// Selecting a locale never loads it. Available and HasLocale report what the
// attached Availability (usually the catalog registry) has loaded.
//
// # Request scope
//
// WithLocale and FromContext carry a per-request locale through a context.
// Middleware fills it from the "lang" cookie, the "lang" query parameter or
// the Accept-Language header, matched with golang.org/x/text/language.
package locale
