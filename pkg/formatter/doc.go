// Package formatter is the single entry point validation rules use to build
// error messages.
//
// # Usage
//
//	f := formatter.New(res, formatter.WithLogger(logger))
//
//	f.Format(formatter.Options{Msg: "Email", MessageKey: "string.invalid"})
//	// "Email is invalid"
//
//	f.Format(formatter.Options{Msg: "Password", Group: "string", MessageKey: "tooShort",
//	    Params: map[string]any{"min": 8}})
//	// "Password is too short (minimum: 8 characters)"
//
//	f.Format(formatter.Options{Msg: "Custom text", MsgType: formatter.Message})
//	// "Custom text"
//
// # Error Handling
//
// Format never panics and never returns an error. When the requested key
// cannot produce content, for example because the resolver panicked or the
// params do not match the key's contract, formatting moves on to the caller's
// Fallback text, then the default key ("string.invalid"), then no content at
// all. Degradations are reported as warnings on the injected Logger.
package formatter
