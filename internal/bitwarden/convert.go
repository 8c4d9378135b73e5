package bitwarden

import (
	"net/url"
	"regexp"
	"strings"

	"bwporter/internal/fieldmap"
	"bwporter/internal/model"
)

// Recognized truthy tokens for the favorite flag, after normalization.
var truthy = map[string]bool{
	"1":    true,
	"true": true,
	"yes":  true,
	"y":    true,
	"on":   true,
}

// CoerceFavorite maps an arbitrary favorite value to "1" or "". The value
// is normalized like a header name first, so "TRUE", "Yes" and "on" all
// count. Anything unrecognized (including "0", "false", garbage) yields ""
// rather than an error.
func CoerceFavorite(val string) string {
	if truthy[fieldmap.Norm(val)] {
		return "1"
	}
	return ""
}

var (
	schemeRe = regexp.MustCompile(`(?i)^(https?://)`)
	domainRe = regexp.MustCompile(`(?i)^[a-z0-9.-]+\.[a-z]{2,}(/.*)?$`)
)

// looksLikeURLOrDomain reports whether s is an http(s) URL or a bare
// domain, optionally with a path ("example.com", "example.co.uk/login").
// The domain shape is deliberately loose and can match non-URL strings
// with a dot and a short alphabetic suffix.
func looksLikeURLOrDomain(s string) bool {
	s = strings.TrimSpace(s)
	if s == "" {
		return false
	}
	return schemeRe.MatchString(s) || domainRe.MatchString(s)
}

// guessName picks a display name: the title when present, otherwise the
// URL's hostname, otherwise the raw URL string. Parse failures never
// propagate; the raw URL is returned as-is.
func guessName(title, rawURL string) string {
	if t := strings.TrimSpace(title); t != "" {
		return t
	}

	u := strings.TrimSpace(rawURL)
	if u == "" {
		return ""
	}

	target := u
	if !strings.Contains(target, "://") {
		target = "https://" + target
	}
	parsed, err := url.Parse(target)
	if err != nil {
		return u
	}
	if host := strings.TrimSpace(parsed.Hostname()); host != "" {
		return host
	}
	return u
}

// FromEntry normalizes one input entry into a Bitwarden record.
//
// The favorite flag is coerced to "1"/"", an empty URL is backfilled from a
// URL-shaped title (the title itself stays untouched), and the name is
// derived from title or URL. The second return value is false when the
// record carries no login data at all and must not be emitted.
func FromEntry(e model.Entry) (Record, bool) {
	urlStr := e.URL
	if urlStr == "" && looksLikeURLOrDomain(e.Title) {
		urlStr = strings.TrimSpace(e.Title)
	}

	rec := Record{
		Folder:        e.Folder,
		Favorite:      CoerceFavorite(e.Favorite),
		Type:          TypeLogin,
		Name:          guessName(e.Title, urlStr),
		Notes:         e.Notes,
		Fields:        "",
		LoginURI:      urlStr,
		LoginUsername: e.Username,
		LoginPassword: e.Password,
		LoginTOTP:     e.TOTP,
	}

	return rec, rec.HasLoginData()
}

// Convert normalizes a batch of entries, preserving input order and
// dropping filtered rows. It returns the surviving records and the number
// of entries skipped by the emptiness filter.
func Convert(entries []model.Entry) (records []Record, skipped int) {
	records = make([]Record, 0, len(entries))
	for _, e := range entries {
		rec, ok := FromEntry(e)
		if !ok {
			skipped++
			continue
		}
		records = append(records, rec)
	}
	return records, skipped
}
