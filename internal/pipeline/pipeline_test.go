package pipeline_test

import (
	"context"
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"rymgap/internal/catalog"
	"rymgap/internal/config"
	"rymgap/internal/imdbid"
	"rymgap/internal/pipeline"
	"rymgap/internal/rym"
	"rymgap/internal/sweep"
)

// seqFetcher knows the first known titles and reports everything past them
// as missing.
type seqFetcher struct {
	known map[string]*catalog.Record
	calls int
}

func (f *seqFetcher) Fetch(_ context.Context, imdbID string) (*catalog.Record, error) {
	f.calls++
	return f.known[imdbID], nil
}

// titleSearcher returns a listed result for present titles and an empty
// results region otherwise.
type titleSearcher struct {
	present  map[string]bool
	searches int
}

func (s *titleSearcher) SearchFilm(_ context.Context, title string) (*rym.Fragment, error) {
	s.searches++
	if !s.present[title] {
		return &rym.Fragment{}, nil
	}
	return &rym.Fragment{Candidates: []rym.Candidate{
		{Title: title, HasTitle: true, YearText: "Film, 2010"},
	}}, nil
}

func knownMovies(t *testing.T, count int) map[string]*catalog.Record {
	t.Helper()
	known := make(map[string]*catalog.Record, count)
	for n := 0; n < count; n++ {
		id, err := imdbid.FromSequence(int64(n))
		if err != nil {
			t.Fatalf("FromSequence(%d): %v", n, err)
		}
		known[id] = &catalog.Record{
			Title:  fmt.Sprintf("Film %d", n),
			Year:   "2010",
			ImdbID: id,
			Type:   catalog.TypeMovie,
		}
	}
	return known
}

func testConfig(t *testing.T) *config.Config {
	t.Helper()
	dir := t.TempDir()
	cfg := config.Default()
	cfg.Catalog.Path = filepath.Join(dir, "movie_list.csv")
	cfg.Catalog.ReportPath = filepath.Join(dir, "non_rym.csv")
	cfg.Pacing.RequestDelay = 0
	return &cfg
}

func TestRunSweepsVerifiesAndReports(t *testing.T) {
	cfg := testConfig(t)
	fetcher := &seqFetcher{known: knownMovies(t, 3)}
	searcher := &titleSearcher{present: map[string]bool{"Film 0": true, "Film 2": true}}

	p, err := pipeline.New(pipeline.Options{Config: cfg, Fetcher: fetcher, Searcher: searcher})
	if err != nil {
		t.Fatalf("New returned error: %v", err)
	}

	summary, err := p.Run(context.Background(), sweep.Range{Start: 0, End: 10})
	if err != nil {
		t.Fatalf("Run returned error: %v", err)
	}

	if summary.Sweep.State != sweep.StateHalted {
		t.Fatalf("expected halted sweep, got %v", summary.Sweep.State)
	}
	if summary.Sweep.Fetched != 3 {
		t.Fatalf("expected 3 fetched, got %d", summary.Sweep.Fetched)
	}
	if summary.Annotated != 3 {
		t.Fatalf("expected 3 annotated, got %d", summary.Annotated)
	}
	if summary.Missing != 1 {
		t.Fatalf("expected 1 missing, got %d", summary.Missing)
	}
	if summary.CatalogLen != 3 {
		t.Fatalf("expected catalog of 3, got %d", summary.CatalogLen)
	}
	if summary.RunID == "" {
		t.Fatal("expected a run id")
	}

	store, err := catalog.LoadOrCreate(cfg.Catalog.Path)
	if err != nil {
		t.Fatalf("reload catalog: %v", err)
	}
	if store.Len() != 3 {
		t.Fatalf("expected 3 persisted records, got %d", store.Len())
	}
	for _, record := range store.Records() {
		if record.InRYM == catalog.VerdictUnknown {
			t.Fatalf("expected verdict for %s", record.ImdbID)
		}
	}

	file, err := os.Open(cfg.Catalog.ReportPath)
	if err != nil {
		t.Fatalf("open report: %v", err)
	}
	defer file.Close()
	rows, err := csv.NewReader(file).ReadAll()
	if err != nil {
		t.Fatalf("read report: %v", err)
	}
	if len(rows) != 2 {
		t.Fatalf("expected header plus one row, got %d rows", len(rows))
	}
	if rows[1][1] != "Film 1" {
		t.Fatalf("expected Film 1 in report, got %q", rows[1][1])
	}
}

func TestRunResumesWithoutRefetching(t *testing.T) {
	cfg := testConfig(t)
	known := knownMovies(t, 2)
	searcher := &titleSearcher{present: map[string]bool{"Film 0": true, "Film 1": true}}

	first := &seqFetcher{known: known}
	p, err := pipeline.New(pipeline.Options{Config: cfg, Fetcher: first, Searcher: searcher})
	if err != nil {
		t.Fatalf("New returned error: %v", err)
	}
	if _, err := p.Run(context.Background(), sweep.Range{Start: 0, End: 5}); err != nil {
		t.Fatalf("first Run returned error: %v", err)
	}

	second := &seqFetcher{known: known}
	searches := searcher.searches
	p, err = pipeline.New(pipeline.Options{Config: cfg, Fetcher: second, Searcher: searcher})
	if err != nil {
		t.Fatalf("New returned error: %v", err)
	}
	summary, err := p.Run(context.Background(), sweep.Range{Start: 0, End: 5})
	if err != nil {
		t.Fatalf("second Run returned error: %v", err)
	}

	if summary.Sweep.Skipped != 2 {
		t.Fatalf("expected 2 skipped, got %d", summary.Sweep.Skipped)
	}
	// Only the halting miss needs a fresh lookup.
	if second.calls != 1 {
		t.Fatalf("expected 1 fetch on resume, got %d", second.calls)
	}
	if searcher.searches != searches {
		t.Fatalf("expected no new searches, got %d", searcher.searches-searches)
	}
	if summary.Annotated != 0 {
		t.Fatalf("expected nothing newly annotated, got %d", summary.Annotated)
	}
}

func TestSweepStageFlushesWithoutVerifying(t *testing.T) {
	cfg := testConfig(t)
	fetcher := &seqFetcher{known: knownMovies(t, 2)}

	p, err := pipeline.New(pipeline.Options{Config: cfg, Fetcher: fetcher})
	if err != nil {
		t.Fatalf("New returned error: %v", err)
	}
	result, err := p.Sweep(context.Background(), sweep.Range{Start: 0, End: 5})
	if err != nil {
		t.Fatalf("Sweep returned error: %v", err)
	}
	if result.Fetched != 2 {
		t.Fatalf("expected 2 fetched, got %d", result.Fetched)
	}

	store, err := catalog.LoadOrCreate(cfg.Catalog.Path)
	if err != nil {
		t.Fatalf("reload catalog: %v", err)
	}
	if store.Len() != 2 {
		t.Fatalf("expected 2 persisted records, got %d", store.Len())
	}
	for _, record := range store.Records() {
		if record.InRYM != catalog.VerdictUnknown {
			t.Fatalf("expected unknown verdict for %s", record.ImdbID)
		}
	}
}

func TestVerifyStageRequiresSearcher(t *testing.T) {
	cfg := testConfig(t)
	p, err := pipeline.New(pipeline.Options{Config: cfg, Fetcher: &seqFetcher{}})
	if err != nil {
		t.Fatalf("New returned error: %v", err)
	}
	if _, err := p.Verify(context.Background()); err == nil {
		t.Fatal("expected error without a searcher")
	}
}

func TestReportStageReadsExistingCatalog(t *testing.T) {
	cfg := testConfig(t)

	store, err := catalog.LoadOrCreate(cfg.Catalog.Path)
	if err != nil {
		t.Fatalf("LoadOrCreate: %v", err)
	}
	store.Append(&catalog.Record{Title: "Gone", Year: "1999", ImdbID: "tt0000001", Type: catalog.TypeMovie, InRYM: catalog.VerdictAbsent})
	store.Append(&catalog.Record{Title: "Found", Year: "2000", ImdbID: "tt0000002", Type: catalog.TypeMovie, InRYM: catalog.VerdictPresent})
	if err := store.Flush(); err != nil {
		t.Fatalf("flush: %v", err)
	}

	p, err := pipeline.New(pipeline.Options{Config: cfg})
	if err != nil {
		t.Fatalf("New returned error: %v", err)
	}
	entries, err := p.Report()
	if err != nil {
		t.Fatalf("Report returned error: %v", err)
	}
	if len(entries) != 1 || entries[0].Title != "Gone" {
		t.Fatalf("unexpected entries: %+v", entries)
	}
	if _, err := os.Stat(cfg.Catalog.ReportPath); err != nil {
		t.Fatalf("expected report file: %v", err)
	}
}
