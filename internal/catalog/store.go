package catalog

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
)

// Store manages the catalog records in file order.
type Store struct {
	path    string
	records []*Record
	index   map[string]int
}

// LoadOrCreate reads the catalog at path, or returns an empty store bound to
// that path when the file does not exist yet.
func LoadOrCreate(path string) (*Store, error) {
	store := &Store{path: path, index: make(map[string]int)}

	file, err := os.Open(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return store, nil
		}
		return nil, fmt.Errorf("open catalog: %w", err)
	}
	defer file.Close()

	reader := csv.NewReader(file)
	reader.FieldsPerRecord = len(Columns)

	header, err := reader.Read()
	if err != nil {
		return nil, fmt.Errorf("read catalog header: %w", err)
	}
	for i, name := range Columns {
		if header[i] != name {
			return nil, fmt.Errorf("catalog header column %d is %q, want %q", i, header[i], name)
		}
	}

	for line := 2; ; line++ {
		row, err := reader.Read()
		if err != nil {
			if errors.Is(err, io.EOF) {
				break
			}
			return nil, fmt.Errorf("read catalog line %d: %w", line, err)
		}
		record, err := recordFromRow(row)
		if err != nil {
			return nil, fmt.Errorf("catalog line %d: %w", line, err)
		}
		store.records = append(store.records, record)
		store.index[record.ImdbID] = len(store.records) - 1
	}
	return store, nil
}

// Path returns the file backing the store.
func (s *Store) Path() string { return s.path }

// Len returns the number of records.
func (s *Store) Len() int { return len(s.records) }

// Contains reports whether a record with exactly the given identifier exists.
func (s *Store) Contains(imdbID string) bool {
	_, ok := s.index[imdbID]
	return ok
}

// Append adds a record at the end of the store. Deduplication is the
// caller's responsibility; the ingestion loop checks Contains first.
func (s *Store) Append(record *Record) {
	s.records = append(s.records, record)
	s.index[record.ImdbID] = len(s.records) - 1
}

// SetVerdict updates the in_rym field of the matching record.
func (s *Store) SetVerdict(imdbID string, verdict Verdict) error {
	i, ok := s.index[imdbID]
	if !ok {
		return fmt.Errorf("catalog: no record with id %s", imdbID)
	}
	s.records[i].InRYM = verdict
	return nil
}

// MissingVerdict returns, in store order, the records of the given type that
// have not been checked yet.
func (s *Store) MissingVerdict(typeFilter string) []*Record {
	var pending []*Record
	for _, record := range s.records {
		if record.InRYM == VerdictUnknown && record.Type == typeFilter {
			pending = append(pending, record)
		}
	}
	return pending
}

// Records returns all records in store order.
func (s *Store) Records() []*Record { return s.records }

// Flush rewrites the whole catalog file, header included. The write goes to
// a temp file first and is moved into place so a crash mid-write cannot
// leave a truncated catalog behind.
func (s *Store) Flush() error {
	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("create catalog directory: %w", err)
	}

	tmp, err := os.CreateTemp(dir, filepath.Base(s.path)+".tmp-*")
	if err != nil {
		return fmt.Errorf("create catalog temp file: %w", err)
	}
	tmpPath := tmp.Name()

	writer := csv.NewWriter(tmp)
	writeErr := writer.Write(Columns)
	if writeErr == nil {
		for _, record := range s.records {
			if writeErr = writer.Write(record.row()); writeErr != nil {
				break
			}
		}
	}
	if writeErr == nil {
		writer.Flush()
		writeErr = writer.Error()
	}
	if closeErr := tmp.Close(); writeErr == nil {
		writeErr = closeErr
	}
	if writeErr != nil {
		_ = os.Remove(tmpPath)
		return fmt.Errorf("write catalog: %w", writeErr)
	}

	if err := os.Rename(tmpPath, s.path); err != nil {
		_ = os.Remove(tmpPath)
		return fmt.Errorf("replace catalog: %w", err)
	}
	return nil
}
