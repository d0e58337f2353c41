// Package i18n holds the message catalog of the team page.
//
// Messages are registered with golang.org/x/text/message under stable keys and
// looked up through a *message.Printer resolved per request.
package i18n

import (
	"net/http"
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// LangParam is the query parameter that overrides Accept-Language.
const LangParam = "lang"

var (
	supported = []language.Tag{language.English, language.Spanish}
	matcher   = language.NewMatcher(supported)
)

// Supported returns the catalog languages, default first.
func Supported() []language.Tag {
	return append([]language.Tag(nil), supported...)
}

// Default returns the fallback language.
func Default() language.Tag {
	return supported[0]
}

// Printer returns a message printer for tag.
func Printer(tag language.Tag) *message.Printer {
	return message.NewPrinter(tag)
}

// Match maps arbitrary tags to the closest supported language.
func Match(tags ...language.Tag) language.Tag {
	if len(tags) == 0 {
		return Default()
	}
	_, i, conf := matcher.Match(tags...)
	if conf == language.No {
		return Default()
	}
	return supported[i]
}

// ResolveTag picks the language for r from the lang query parameter, then
// Accept-Language.
func ResolveTag(r *http.Request) language.Tag {
	if r == nil {
		return Default()
	}

	if v := strings.TrimSpace(r.URL.Query().Get(LangParam)); v != "" {
		if tag, err := language.Parse(v); err == nil {
			return Match(tag)
		}
	}

	if accept := strings.TrimSpace(r.Header.Get("Accept-Language")); accept != "" {
		if tags, _, err := language.ParseAcceptLanguage(accept); err == nil {
			return Match(tags...)
		}
	}

	return Default()
}

// MemberCount renders the pluralized table footer.
func MemberCount(p *message.Printer, n int) string {
	return p.Sprintf(FooterMembers, n)
}
