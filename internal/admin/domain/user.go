package domain

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

type User struct {
	ID        string
	Email     string
	FirstName string
	LastName  string
	AvatarURL string
	Role      string
	APIToken  string // set for API-only users; they are not counted as members
}

// DisplayName is "first last", falling back to the email when both are empty.
func (u User) DisplayName() string {
	name := strings.TrimSpace(strings.TrimSpace(u.FirstName) + " " + strings.TrimSpace(u.LastName))
	if name == "" {
		return u.Email
	}
	return name
}

// Initials returns up to two upper-case letters for the avatar placeholder.
func (u User) Initials() string {
	var out []rune
	for _, part := range []string{u.FirstName, u.LastName} {
		if r, ok := firstLetter(part); ok {
			out = append(out, unicode.ToUpper(r))
		}
	}
	if len(out) == 0 {
		if r, ok := firstLetter(u.Email); ok {
			out = append(out, unicode.ToUpper(r))
		}
	}
	return string(out)
}

// IsMember reports whether the user counts towards the team size.
func (u User) IsMember() bool {
	return u.APIToken == ""
}

func firstLetter(s string) (rune, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, false
	}
	r, _ := utf8.DecodeRuneInString(s)
	return r, r != utf8.RuneError
}
