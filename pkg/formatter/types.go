package formatter

// MsgType selects how Options.Msg is treated.
type MsgType int

const (
	// FieldName treats Msg as a field label and appends resolved message content.
	FieldName MsgType = iota
	// Message returns Msg unmodified.
	Message
)

func (t MsgType) String() string {
	switch t {
	case FieldName:
		return "field_name"
	case Message:
		return "message"
	default:
		return "unknown"
	}
}

// Options describes one error message to format.
type Options struct {
	Msg     string
	MsgType MsgType
	// Group qualifies MessageKey when the key has no group prefix.
	Group      string
	MessageKey string
	Params     map[string]any
	// Fallback is static text used when MessageKey resolves to nothing.
	Fallback string
	// Locale overrides the resolver's current locale.
	Locale string
}

// Source names the ladder rung that produced a formatted message.
type Source string

const (
	SourceRaw      Source = "raw"
	SourceKey      Source = "key"
	SourceFallback Source = "fallback"
	SourceDefault  Source = "default"
	SourceEmpty    Source = "empty"
)

// MessageResolver resolves a message key to interpolated text.
// It returns key itself when nothing is defined for it.
// *resolver.Resolver satisfies it.
type MessageResolver interface {
	GetMessage(key string, params map[string]any, locale string) string
}

// Logger receives formatter diagnostics. *slog.Logger satisfies it.
type Logger interface {
	Debug(msg string, args ...any)
	Warn(msg string, args ...any)
}
