// Package sources reads password-manager CSV exports into the internal model.
package sources

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/google/uuid"

	"bwporter/internal/fieldmap"
	"bwporter/internal/model"
	"bwporter/internal/security"
)

// CSVSource reads a generic password-manager CSV export. Column names vary
// by vendor (Apple/iCloud Passwords, Safari, and others); they are resolved
// against the semantic field set by name-based heuristics, see fieldmap.
type CSVSource struct {
	filePath string
	isOpen   bool
	fields   fieldmap.Map
	headers  []string
	entries  []model.Entry
}

// NewCSVSource creates a new CSV source adapter.
func NewCSVSource() *CSVSource {
	return &CSVSource{}
}

// Name returns the unique identifier for this source.
func (s *CSVSource) Name() string {
	return "csv"
}

// Description returns a human-readable description.
func (s *CSVSource) Description() string {
	return "Password-manager CSV export (column names auto-detected)"
}

// Open initializes the source with the given file path.
func (s *CSVSource) Open(path string) error {
	if s.isOpen {
		return ErrAlreadyOpen
	}

	info, err := os.Stat(path)
	if err != nil {
		if os.IsNotExist(err) {
			return &ErrFileNotFound{Path: path}
		}
		return fmt.Errorf("stat %q: %w", path, err)
	}

	if info.IsDir() {
		return &ErrInvalidFormat{
			Source:  s.Name(),
			Path:    path,
			Details: "path must be a file, not a directory",
		}
	}

	s.filePath = path
	s.isOpen = true
	s.fields = nil
	s.headers = nil
	s.entries = nil

	return nil
}

// Read parses the CSV and returns the entries in file order.
// A missing or empty header row is fatal; per-row parse errors are
// accumulated into ErrPartialRead and the run continues.
func (s *CSVSource) Read() ([]model.Entry, error) {
	if !s.isOpen {
		return nil, ErrNotOpen
	}

	// Return cached results if available
	if s.entries != nil {
		return s.entries, nil
	}

	f, err := os.Open(s.filePath)
	if err != nil {
		return nil, fmt.Errorf("open %q: %w", s.filePath, err)
	}
	defer f.Close()

	// Apple exports are often UTF-8 with BOM
	reader := newBOMSkippingReader(f)
	csvReader := csv.NewReader(reader)
	csvReader.LazyQuotes = true
	csvReader.TrimLeadingSpace = true
	csvReader.FieldsPerRecord = -1 // Variable field count

	header, err := csvReader.Read()
	if err != nil {
		return nil, &ErrInvalidFormat{
			Source:  s.Name(),
			Path:    s.filePath,
			Details: "input CSV has no header row",
			Err:     err,
		}
	}

	s.headers = header
	s.fields = fieldmap.Build(header)

	// Column index by original header string. When the same header appears
	// twice the first occurrence wins, matching the field map's first-wins
	// rule on normalization collisions.
	colIndex := make(map[string]int, len(header))
	for i, h := range header {
		if _, ok := colIndex[h]; !ok {
			colIndex[h] = i
		}
	}

	entries := make([]model.Entry, 0, 64)
	partialErr := &ErrPartialRead{Source: s.Name()}

	lineNum := 1 // Start at 1 because we already read header
	for {
		lineNum++
		record, err := csvReader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			partialErr.TotalItems++
			partialErr.AddFailure(fmt.Sprintf("line %d: parse error", lineNum), err)
			continue
		}

		partialErr.TotalItems++

		if isEmptyRecord(record) {
			continue
		}

		entries = append(entries, s.parseRecord(record, colIndex, lineNum))
		partialErr.ReadItems++
	}

	s.entries = entries

	if partialErr.HasFailures() {
		return entries, partialErr
	}

	return entries, nil
}

// parseRecord resolves one CSV record into an entry via the field map.
// Short rows yield empty values for trailing columns.
func (s *CSVSource) parseRecord(record []string, colIndex map[string]int, lineNum int) model.Entry {
	getField := func(key fieldmap.Key) string {
		h, ok := s.fields[key]
		if !ok {
			return ""
		}
		if idx, ok := colIndex[h]; ok && idx < len(record) {
			return strings.TrimSpace(record[idx])
		}
		return ""
	}

	return model.Entry{
		ID:       uuid.New().String(),
		Line:     lineNum,
		Title:    getField(fieldmap.KeyTitle),
		URL:      getField(fieldmap.KeyURL),
		Username: getField(fieldmap.KeyUsername),
		Password: getField(fieldmap.KeyPassword),
		Notes:    getField(fieldmap.KeyNotes),
		TOTP:     getField(fieldmap.KeyTOTP),
		Folder:   getField(fieldmap.KeyFolder),
		Favorite: getField(fieldmap.KeyFavorite),
	}
}

// FieldMap returns the header mapping resolved by Read, or nil before Read.
func (s *CSVSource) FieldMap() fieldmap.Map {
	return s.fields
}

// Headers returns the raw header row as read from the input file.
func (s *CSVSource) Headers() []string {
	return s.headers
}

// Close releases resources and clears cached secrets from memory.
func (s *CSVSource) Close() error {
	for i := range s.entries {
		security.WipeString(&s.entries[i].Password)
		security.WipeString(&s.entries[i].TOTP)
	}
	s.isOpen = false
	s.filePath = ""
	s.fields = nil
	s.headers = nil
	s.entries = nil
	return nil
}

// isEmptyRecord checks if a CSV record has only empty fields.
func isEmptyRecord(record []string) bool {
	for _, field := range record {
		if strings.TrimSpace(field) != "" {
			return false
		}
	}
	return true
}

// bomSkippingReader wraps a reader and skips UTF-8 BOM if present.
type bomSkippingReader struct {
	r       io.Reader
	checked bool
}

func newBOMSkippingReader(r io.Reader) *bomSkippingReader {
	return &bomSkippingReader{r: r}
}

func (r *bomSkippingReader) Read(p []byte) (int, error) {
	if !r.checked {
		r.checked = true

		// Read first 3 bytes to check for BOM
		bom := make([]byte, 3)
		n, err := r.r.Read(bom)
		if err != nil {
			return 0, err
		}

		// Check for UTF-8 BOM (0xEF, 0xBB, 0xBF)
		if n >= 3 && bom[0] == 0xEF && bom[1] == 0xBB && bom[2] == 0xBF {
			// BOM found, skip it
			return r.r.Read(p)
		}

		// No BOM, copy what we read to output
		copy(p, bom[:n])
		if n < len(p) {
			n2, err := r.r.Read(p[n:])
			return n + n2, err
		}
		return n, nil
	}
	return r.r.Read(p)
}
