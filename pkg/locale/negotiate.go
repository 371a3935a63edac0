package locale

import (
	"golang.org/x/text/language"
)

// maxAcceptLanguageLength caps the header size handed to the parser.
const maxAcceptLanguageLength = 4096

// Negotiate picks the supported code that best matches an Accept-Language
// header. Regional variants match their base language ("es-MX" -> "es").
// It returns def when nothing matches or the header is malformed.
func Negotiate(header string, supported []string, def string) string {
	if header == "" || len(supported) == 0 {
		return def
	}
	if len(header) > maxAcceptLanguageLength {
		header = header[:maxAcceptLanguageLength]
	}

	prefs, _, err := language.ParseAcceptLanguage(header)
	if err != nil || len(prefs) == 0 {
		return def
	}

	tags := make([]language.Tag, 0, len(supported))
	codes := make([]string, 0, len(supported))
	for _, code := range supported {
		tag, err := language.Parse(code)
		if err != nil {
			continue
		}
		tags = append(tags, tag)
		codes = append(codes, code)
	}
	if len(tags) == 0 {
		return def
	}

	_, idx, conf := language.NewMatcher(tags).Match(prefs...)
	if conf == language.No {
		return def
	}
	return codes[idx]
}

// Match returns the supported code equal to or sharing the base language of
// code, or "" when none does.
func Match(code string, supported []string) string {
	tag, err := language.Parse(code)
	if err != nil {
		return ""
	}
	for _, s := range supported {
		if s == code {
			return s
		}
	}
	base, _ := tag.Base()
	for _, s := range supported {
		if st, err := language.Parse(s); err == nil {
			if sb, _ := st.Base(); sb == base {
				return s
			}
		}
	}
	return ""
}
