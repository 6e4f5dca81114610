package lingo

import "golang.org/x/text/language"

// NegotiateLocale picks the best supported locale for an RFC 9110
// Accept-Language header value. An empty or unparsable header, or one
// without any usable match, yields the current locale.
func (e *Engine) NegotiateLocale(acceptLanguage string) string {
	if acceptLanguage == "" {
		return e.Locale()
	}

	desired, _, err := language.ParseAcceptLanguage(acceptLanguage)
	if err != nil || len(desired) == 0 {
		return e.Locale()
	}

	supported := e.Locales()
	tags := make([]language.Tag, 0, len(supported))
	for _, l := range supported {
		tags = append(tags, language.Make(l))
	}

	_, index, conf := language.NewMatcher(tags).Match(desired...)
	if conf == language.No {
		return e.Locale()
	}

	return supported[index]
}
