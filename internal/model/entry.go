// Package model defines the intermediate representation between the input
// CSV and the Bitwarden output schema.
package model

// Entry represents one row read from a password-manager CSV export, with
// values already resolved through the header field map and trimmed.
// Favorite holds the raw flag value before boolean coercion.
type Entry struct {
	// ID is a unique identifier assigned when the entry is read.
	ID string

	// Line is the 1-based line number in the input file, for diagnostics.
	Line int

	// Title is the display name of the entry.
	Title string

	// URL is the associated website or service URL.
	URL string

	// Username for the login.
	Username string

	// Password for the login.
	Password string

	// Notes contains free-form text notes.
	Notes string

	// TOTP is the one-time-password secret, carried through opaquely.
	TOTP string

	// Folder is the folder or group name.
	Folder string

	// Favorite is the raw favorite flag as found in the input.
	Favorite string
}

// IsEmpty returns true if the entry carries no data at all.
func (e *Entry) IsEmpty() bool {
	if e == nil {
		return true
	}
	return e.Title == "" && e.URL == "" && e.Username == "" && e.Password == "" &&
		e.Notes == "" && e.TOTP == "" && e.Folder == "" && e.Favorite == ""
}
