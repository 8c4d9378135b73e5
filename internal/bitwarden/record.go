// Package bitwarden produces the fixed-schema Bitwarden CSV import format.
package bitwarden

// FieldNames is the mandated output column order. The output header row is
// always exactly these ten names regardless of input shape.
var FieldNames = []string{
	"folder",
	"favorite",
	"type",
	"name",
	"notes",
	"fields",
	"login_uri",
	"login_username",
	"login_password",
	"login_totp",
}

// TypeLogin is the only item type this converter emits.
const TypeLogin = "login"

// Record is one row of the Bitwarden CSV import schema. Every field is a
// plain string; missing data is the empty string, never omitted.
type Record struct {
	Folder        string
	Favorite      string // "" or "1"
	Type          string // always "login"
	Name          string
	Notes         string
	Fields        string // always "" (custom fields are not representable)
	LoginURI      string
	LoginUsername string
	LoginPassword string
	LoginTOTP     string
}

// Values returns the record's fields in the FieldNames order.
func (r Record) Values() []string {
	return []string{
		r.Folder,
		r.Favorite,
		r.Type,
		r.Name,
		r.Notes,
		r.Fields,
		r.LoginURI,
		r.LoginUsername,
		r.LoginPassword,
		r.LoginTOTP,
	}
}

// HasLoginData reports whether the record is worth emitting: at least one
// of name, login_uri, login_username, login_password, or notes is set.
// Favorite, folder, and totp alone do not justify emission.
func (r Record) HasLoginData() bool {
	return r.Name != "" || r.LoginURI != "" || r.LoginUsername != "" ||
		r.LoginPassword != "" || r.Notes != ""
}
