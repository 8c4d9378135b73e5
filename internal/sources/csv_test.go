package sources

import (
	"os"
	"path/filepath"
	"testing"
)

// writeTempCSV writes content to a temp file and returns its path.
func writeTempCSV(t *testing.T, content []byte) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "export.csv")
	if err := os.WriteFile(path, content, 0o600); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestCSVSource_Interface(t *testing.T) {
	s := NewCSVSource()

	if s.Name() != "csv" {
		t.Errorf("Name() = %v, want csv", s.Name())
	}
	if s.Description() == "" {
		t.Error("Description() should not be empty")
	}
}

func TestCSVSource_Open(t *testing.T) {
	t.Run("Non-existent file", func(t *testing.T) {
		s := NewCSVSource()
		err := s.Open("/nonexistent/passwords.csv")
		if err == nil {
			t.Fatal("Expected error for non-existent file")
		}
		if !IsNotFound(err) {
			t.Errorf("Open() error = %v, want ErrFileNotFound", err)
		}
	})

	t.Run("Directory instead of file", func(t *testing.T) {
		s := NewCSVSource()
		err := s.Open(t.TempDir())
		if err == nil {
			t.Fatal("Expected error when opening directory")
		}
		if !IsFormatError(err) {
			t.Errorf("Open() error = %v, want ErrInvalidFormat", err)
		}
	})

	t.Run("Double open", func(t *testing.T) {
		path := writeTempCSV(t, []byte("Title,Username\n"))

		s := NewCSVSource()
		if err := s.Open(path); err != nil {
			t.Fatalf("Open() error = %v", err)
		}
		defer s.Close()

		if err := s.Open(path); err != ErrAlreadyOpen {
			t.Errorf("Double Open() error = %v, want ErrAlreadyOpen", err)
		}
	})
}

func TestCSVSource_Read(t *testing.T) {
	t.Run("Read before Open", func(t *testing.T) {
		s := NewCSVSource()
		if _, err := s.Read(); err != ErrNotOpen {
			t.Errorf("Read() error = %v, want ErrNotOpen", err)
		}
	})

	t.Run("Basic export", func(t *testing.T) {
		path := writeTempCSV(t, []byte(
			"Title,URL,Username,Password,Notes\n"+
				"Example,https://example.com,bob,hunter2,work\n"+
				"Other,https://other.example,alice,secret,\n"))

		s := NewCSVSource()
		if err := s.Open(path); err != nil {
			t.Fatalf("Open() error = %v", err)
		}
		defer s.Close()

		entries, err := s.Read()
		if err != nil {
			t.Fatalf("Read() error = %v", err)
		}
		if len(entries) != 2 {
			t.Fatalf("len(entries) = %d, want 2", len(entries))
		}

		e := entries[0]
		if e.Title != "Example" || e.URL != "https://example.com" ||
			e.Username != "bob" || e.Password != "hunter2" || e.Notes != "work" {
			t.Errorf("entries[0] = %+v", e)
		}
		if e.ID == "" {
			t.Error("entries[0].ID should be set")
		}
		if e.Line != 2 {
			t.Errorf("entries[0].Line = %d, want 2", e.Line)
		}
		if entries[1].Title != "Other" {
			t.Errorf("entries[1].Title = %q, want \"Other\"", entries[1].Title)
		}
	})

	t.Run("UTF-8 BOM is skipped", func(t *testing.T) {
		content := append([]byte{0xEF, 0xBB, 0xBF}, []byte(
			"Title,Username,Password\nExample,bob,pw\n")...)
		path := writeTempCSV(t, content)

		s := NewCSVSource()
		if err := s.Open(path); err != nil {
			t.Fatalf("Open() error = %v", err)
		}
		defer s.Close()

		entries, err := s.Read()
		if err != nil {
			t.Fatalf("Read() error = %v", err)
		}
		if got := s.Headers()[0]; got != "Title" {
			t.Errorf("first header = %q, want \"Title\" (BOM leaked)", got)
		}
		if len(entries) != 1 || entries[0].Title != "Example" {
			t.Errorf("entries = %+v", entries)
		}
	})

	t.Run("Missing header row", func(t *testing.T) {
		path := writeTempCSV(t, nil)

		s := NewCSVSource()
		if err := s.Open(path); err != nil {
			t.Fatalf("Open() error = %v", err)
		}
		defer s.Close()

		_, err := s.Read()
		if err == nil {
			t.Fatal("Expected error for empty input")
		}
		if !IsFormatError(err) {
			t.Errorf("Read() error = %v, want ErrInvalidFormat", err)
		}
	})

	t.Run("Header only", func(t *testing.T) {
		path := writeTempCSV(t, []byte("Title,Username,Password\n"))

		s := NewCSVSource()
		if err := s.Open(path); err != nil {
			t.Fatalf("Open() error = %v", err)
		}
		defer s.Close()

		entries, err := s.Read()
		if err != nil {
			t.Fatalf("Read() error = %v", err)
		}
		if len(entries) != 0 {
			t.Errorf("len(entries) = %d, want 0", len(entries))
		}
	})

	t.Run("Short rows yield empty trailing fields", func(t *testing.T) {
		path := writeTempCSV(t, []byte(
			"Title,Username,Password,Notes\nExample,bob\n"))

		s := NewCSVSource()
		if err := s.Open(path); err != nil {
			t.Fatalf("Open() error = %v", err)
		}
		defer s.Close()

		entries, err := s.Read()
		if err != nil {
			t.Fatalf("Read() error = %v", err)
		}
		if len(entries) != 1 {
			t.Fatalf("len(entries) = %d, want 1", len(entries))
		}
		e := entries[0]
		if e.Title != "Example" || e.Username != "bob" || e.Password != "" || e.Notes != "" {
			t.Errorf("entry = %+v", e)
		}
	})

	t.Run("Fully empty rows are skipped", func(t *testing.T) {
		path := writeTempCSV(t, []byte(
			"Title,Username\nExample,bob\n,\n , \nOther,alice\n"))

		s := NewCSVSource()
		if err := s.Open(path); err != nil {
			t.Fatalf("Open() error = %v", err)
		}
		defer s.Close()

		entries, err := s.Read()
		if err != nil {
			t.Fatalf("Read() error = %v", err)
		}
		if len(entries) != 2 {
			t.Errorf("len(entries) = %d, want 2", len(entries))
		}
	})

	t.Run("Values are trimmed", func(t *testing.T) {
		path := writeTempCSV(t, []byte(
			"Title,Username\n\"  Example \",\" bob \"\n"))

		s := NewCSVSource()
		if err := s.Open(path); err != nil {
			t.Fatalf("Open() error = %v", err)
		}
		defer s.Close()

		entries, err := s.Read()
		if err != nil {
			t.Fatalf("Read() error = %v", err)
		}
		if entries[0].Title != "Example" || entries[0].Username != "bob" {
			t.Errorf("entry = %+v", entries[0])
		}
	})

	t.Run("Duplicate headers: first column wins", func(t *testing.T) {
		// Two columns normalize to "password". Both the field map and the
		// row lookup resolve to the first one, consistently.
		path := writeTempCSV(t, []byte(
			"Title,Password,password\nExample,first,second\n"))

		s := NewCSVSource()
		if err := s.Open(path); err != nil {
			t.Fatalf("Open() error = %v", err)
		}
		defer s.Close()

		entries, err := s.Read()
		if err != nil {
			t.Fatalf("Read() error = %v", err)
		}
		if entries[0].Password != "first" {
			t.Errorf("Password = %q, want \"first\"", entries[0].Password)
		}
	})

	t.Run("Identical duplicate headers: first column wins", func(t *testing.T) {
		path := writeTempCSV(t, []byte(
			"Title,Password,Password\nExample,first,second\n"))

		s := NewCSVSource()
		if err := s.Open(path); err != nil {
			t.Fatalf("Open() error = %v", err)
		}
		defer s.Close()

		entries, err := s.Read()
		if err != nil {
			t.Fatalf("Read() error = %v", err)
		}
		if entries[0].Password != "first" {
			t.Errorf("Password = %q, want \"first\"", entries[0].Password)
		}
	})

	t.Run("Cached across calls", func(t *testing.T) {
		path := writeTempCSV(t, []byte("Title,Username\nExample,bob\n"))

		s := NewCSVSource()
		if err := s.Open(path); err != nil {
			t.Fatalf("Open() error = %v", err)
		}
		defer s.Close()

		first, err := s.Read()
		if err != nil {
			t.Fatal(err)
		}
		second, err := s.Read()
		if err != nil {
			t.Fatal(err)
		}
		if len(first) != len(second) || first[0].ID != second[0].ID {
			t.Error("Read() should return cached results")
		}
	})
}

func TestCSVSource_FieldMap(t *testing.T) {
	path := writeTempCSV(t, []byte("Website URL,User Name,Password\nexample.com,bob,pw\n"))

	s := NewCSVSource()
	if err := s.Open(path); err != nil {
		t.Fatalf("Open() error = %v", err)
	}
	defer s.Close()

	if s.FieldMap() != nil {
		t.Error("FieldMap() should be nil before Read")
	}

	if _, err := s.Read(); err != nil {
		t.Fatalf("Read() error = %v", err)
	}

	m := s.FieldMap()
	if m == nil {
		t.Fatal("FieldMap() is nil after Read")
	}
	if len(s.Headers()) != 3 {
		t.Errorf("Headers() = %v, want 3 columns", s.Headers())
	}
}

func TestCSVSource_Close(t *testing.T) {
	path := writeTempCSV(t, []byte("Title,Username\nExample,bob\n"))

	s := NewCSVSource()
	if err := s.Open(path); err != nil {
		t.Fatalf("Open() error = %v", err)
	}
	if _, err := s.Read(); err != nil {
		t.Fatal(err)
	}
	if err := s.Close(); err != nil {
		t.Fatalf("Close() error = %v", err)
	}

	if _, err := s.Read(); err != ErrNotOpen {
		t.Errorf("Read() after Close error = %v, want ErrNotOpen", err)
	}

	// Reusable after Close
	if err := s.Open(path); err != nil {
		t.Errorf("Open() after Close error = %v", err)
	}
	s.Close()
}
