// Package report derives the list of films confirmed absent from the
// community site.
package report

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"

	"rymgap/internal/catalog"
)

// Entry is one reported film.
type Entry struct {
	ImdbID string
	Title  string
	Year   string
}

// columns is the report file header.
var columns = []string{"imdb_id", "title", "year"}

// Generate returns, in store order, the films whose verdict is strictly
// absent. Records that were never checked are excluded: an unknown verdict
// is not evidence of absence.
func Generate(store *catalog.Store) []Entry {
	var entries []Entry
	for _, record := range store.Records() {
		if record.InRYM != catalog.VerdictAbsent {
			continue
		}
		entries = append(entries, Entry{
			ImdbID: record.ImdbID,
			Title:  record.Title,
			Year:   record.Year,
		})
	}
	return entries
}

// WriteCSV writes the report to path, overwriting prior contents.
func WriteCSV(path string, entries []Entry) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("create report directory: %w", err)
	}
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create report: %w", err)
	}

	writer := csv.NewWriter(file)
	writeErr := writer.Write(columns)
	if writeErr == nil {
		for _, entry := range entries {
			if writeErr = writer.Write([]string{entry.ImdbID, entry.Title, entry.Year}); writeErr != nil {
				break
			}
		}
	}
	if writeErr == nil {
		writer.Flush()
		writeErr = writer.Error()
	}
	if closeErr := file.Close(); writeErr == nil {
		writeErr = closeErr
	}
	if writeErr != nil {
		return fmt.Errorf("write report: %w", writeErr)
	}
	return nil
}
