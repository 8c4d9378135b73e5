package security

import "testing"

func TestWipe(t *testing.T) {
	data := []byte("hunter2")
	Wipe(&data)
	if data != nil {
		t.Errorf("Wipe() left data = %v, want nil", data)
	}

	// Nil-safe
	Wipe(nil)
	var empty []byte
	Wipe(&empty)
}

func TestWipeString(t *testing.T) {
	s := "hunter2"
	WipeString(&s)
	if s != "" {
		t.Errorf("WipeString() left s = %q, want \"\"", s)
	}

	// Nil-safe
	WipeString(nil)
}
