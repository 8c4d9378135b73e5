// Package fieldmap maps arbitrary password-export header names onto the
// fixed set of semantic fields the Bitwarden schema needs.
package fieldmap

import (
	"regexp"
	"strings"
)

// Key identifies one of the semantic fields recognized in input headers.
type Key string

// Semantic field keys. The set is closed.
const (
	KeyTitle    Key = "title"
	KeyURL      Key = "url"
	KeyUsername Key = "username"
	KeyPassword Key = "password"
	KeyNotes    Key = "notes"
	KeyTOTP     Key = "totp"
	KeyFolder   Key = "folder"
	KeyFavorite Key = "favorite"
)

// Keys lists the semantic keys in their fixed resolution order.
var Keys = []Key{
	KeyTitle,
	KeyURL,
	KeyUsername,
	KeyPassword,
	KeyNotes,
	KeyTOTP,
	KeyFolder,
	KeyFavorite,
}

// synonyms maps each semantic key to the header-name variants it is
// recognized under, in priority order (first listed wins).
var synonyms = map[Key][]string{
	KeyTitle:    {"title", "name", "website name", "site", "service"},
	KeyURL:      {"url", "website", "website url", "websiteurl", "uri", "link"},
	KeyUsername: {"username", "user name", "login", "account", "email"},
	KeyPassword: {"password", "pass", "passwd"},
	KeyNotes:    {"notes", "note", "comments", "comment"},
	KeyTOTP: {
		"otp",
		"totp",
		"one-time password",
		"onetimepassword",
		"verification code",
		"verificationcode",
		"2fa",
		"two-factor",
		"twofactor",
		"authenticator",
	},
	KeyFolder:   {"folder", "group", "category", "collection"},
	KeyFavorite: {"favorite", "favourite", "star", "starred"},
}

// Synonyms returns the recognized header variants for a key, in priority
// order. The returned slice must not be modified.
func Synonyms(k Key) []string {
	return synonyms[k]
}

var separators = regexp.MustCompile(`[\s_\-]+`)

// Norm canonicalizes a header name: lowercase, trim, and delete every run
// of whitespace, underscore, or hyphen characters. "Website URL",
// "website_url" and "WEBSITE-URL" all normalize identically.
func Norm(s string) string {
	return separators.ReplaceAllString(strings.ToLower(strings.TrimSpace(s)), "")
}

// Map associates semantic keys with the actual header string that resolved
// to them for one particular input file. Keys with no matching header are
// absent. A Map is built once per conversion and read-only afterwards.
type Map map[Key]string

// Build resolves the given header row against the synonym table.
//
// Each header is normalized with Norm; when two headers normalize to the
// same string the first occurrence wins and later ones are unreachable.
// For each semantic key the synonym list is scanned in priority order and
// the first synonym present among the normalized headers decides the
// mapping. A key that matches nothing is simply left out; that is a normal
// outcome, not an error.
func Build(headers []string) Map {
	byNorm := make(map[string]string, len(headers))
	for _, h := range headers {
		n := Norm(h)
		if _, ok := byNorm[n]; !ok {
			byNorm[n] = h
		}
	}

	m := make(Map, len(Keys))
	for _, key := range Keys {
		for _, name := range synonyms[key] {
			if h, ok := byNorm[Norm(name)]; ok {
				m[key] = h
				break
			}
		}
	}
	return m
}

// Header returns the input header mapped to the given key, or "" if the
// key did not resolve.
func (m Map) Header(k Key) string {
	return m[k]
}

// Has reports whether the key resolved to an input header.
func (m Map) Has(k Key) bool {
	_, ok := m[k]
	return ok
}
