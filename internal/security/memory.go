// Package security provides helpers for handling sensitive data in memory.
package security

// Wipe zeroes and nils out a byte slice.
// This should be called via defer to ensure cleanup.
func Wipe(data *[]byte) {
	if data == nil || *data == nil {
		return
	}
	for i := range *data {
		(*data)[i] = 0
	}
	*data = nil
}

// WipeString attempts to clear a string's backing array.
// Note: This is best-effort as Go strings are immutable.
func WipeString(s *string) {
	if s == nil {
		return
	}
	// Convert to byte slice and wipe
	// This may not work if the string is interned or shared
	b := []byte(*s)
	for i := range b {
		b[i] = 0
	}
	*s = ""
}
