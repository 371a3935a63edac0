// Package resolver maps message keys to localized, interpolated text.
//
// Resolution for a key tries the target locale's catalog (the explicit locale
// argument, or the current locale when empty), then the fallback locale's
// catalog, and finally uses the key itself verbatim so unresolved keys stay
// visible in output.
//
//	r := resolver.New(reg, cfg)
//	r.GetMessage("string.tooShort", map[string]any{"min": 5}, "")
//	// "is too short (minimum: 5 characters)"
//
// Templates use {name} placeholders. Placeholders without a matching param are
// left untouched.
//
// GetErrorMessage renders a field name and a message through the locale's
// common.errorFormat template ("{fieldName} {message}" by default), so locales
// can put the field name after the message.
package resolver
