package application

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"runtime"
	"sort"
	"strings"
	"sync"

	"github.com/AkatukiSora/poker-hand-stats/internal/parser"
	"github.com/AkatukiSora/poker-hand-stats/internal/stats"
)

// ErrNoInput means no hand-history files (or text) were found at all.
var ErrNoInput = errors.New("no hand history input found")

// ErrNoHeroHands means input was present but produced zero Hero hands, which
// callers should surface instead of rendering an all-zero dashboard.
var ErrNoHeroHands = errors.New("input contained no hands dealt to Hero")

// LogFileLocator returns the hand-history files to import.
type LogFileLocator func() ([]string, error)

// DirectoryLocator locates .txt exports under dir, sorted by name so batches
// import in a stable order.
func DirectoryLocator(dir string) LogFileLocator {
	return func() ([]string, error) {
		entries, err := os.ReadDir(dir)
		if err != nil {
			return nil, fmt.Errorf("read history dir: %w", err)
		}
		var paths []string
		for _, e := range entries {
			if e.IsDir() || !strings.EqualFold(filepath.Ext(e.Name()), ".txt") {
				continue
			}
			paths = append(paths, filepath.Join(dir, e.Name()))
		}
		sort.Strings(paths)
		return paths, nil
	}
}

// Service owns the parsed hand set and its aggregate. The UI layer depends on
// it for imports, live log updates and report queries.
type Service struct {
	mu     sync.RWMutex
	locate LogFileLocator

	hands   []*parser.Hand
	handIDs map[string]bool
	agg     *stats.Aggregate
}

func NewService(locator LogFileLocator) *Service {
	if locator == nil {
		locator = func() ([]string, error) {
			return nil, fmt.Errorf("log file locator is not configured")
		}
	}
	return &Service{
		locate:  locator,
		handIDs: make(map[string]bool),
		agg:     stats.AggregateHands(nil),
	}
}

// ImportProgress carries per-file progress during a batch import.
type ImportProgress struct {
	Current int
	Total   int
	Path    string
}

type readResult struct {
	path string
	text string
	err  error
}

// ImportAll reads every located file with a small worker pool, parses the
// combined text and rebuilds the aggregate. Returns the number of Hero hands
// now held. onProgress may be nil.
func (s *Service) ImportAll(ctx context.Context, onProgress func(ImportProgress)) (int, error) {
	paths, err := s.locate()
	if err != nil {
		return 0, err
	}
	if len(paths) == 0 {
		return 0, ErrNoInput
	}
	slog.Info("importing hand histories", "files", len(paths))

	workers := runtime.GOMAXPROCS(0)
	if workers > 4 {
		workers = 4
	}
	if workers < 1 {
		workers = 1
	}

	jobCh := make(chan string, len(paths))
	resultCh := make(chan readResult, workers*2)

	var wg sync.WaitGroup
	for range workers {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for path := range jobCh {
				if ctx.Err() != nil {
					return
				}
				data, err := os.ReadFile(path)
				resultCh <- readResult{path: path, text: string(data), err: err}
			}
		}()
	}
	for _, p := range paths {
		jobCh <- p
	}
	close(jobCh)
	go func() {
		wg.Wait()
		close(resultCh)
	}()

	// Collect out-of-order reads, then parse in path order so the batch is
	// reproducible run to run.
	texts := make(map[string]string, len(paths))
	for res := range resultCh {
		if res.err != nil {
			return 0, fmt.Errorf("read %q: %w", res.path, res.err)
		}
		texts[res.path] = res.text
	}
	if err := ctx.Err(); err != nil {
		return 0, err
	}

	blobs := make([]string, 0, len(paths))
	prog := ImportProgress{Total: len(paths)}
	for _, p := range paths {
		blobs = append(blobs, texts[p])
		prog.Current++
		prog.Path = p
		if onProgress != nil {
			onProgress(prog)
		}
	}

	return s.ingest(blobs)
}

// AppendText feeds newly appended log text (from the live file watcher) into
// the hand set. Partial trailing hands simply fail to parse and are retried
// when more text arrives.
func (s *Service) AppendText(text string) int {
	added, err := s.ingest([]string{text})
	if err != nil {
		return 0
	}
	return added
}

// ingest parses blobs, deduplicates against known hand IDs and rebuilds the
// aggregate over the full set.
func (s *Service) ingest(blobs []string) (int, error) {
	parsed := parser.ParseHandHistories(blobs)

	s.mu.Lock()
	defer s.mu.Unlock()

	added := 0
	for _, h := range parsed {
		if s.handIDs[h.ID] {
			continue
		}
		s.handIDs[h.ID] = true
		s.hands = append(s.hands, h)
		added++
	}

	if len(s.hands) == 0 {
		return 0, ErrNoHeroHands
	}
	if added > 0 {
		s.agg = stats.AggregateHands(s.hands)
		slog.Debug("aggregate rebuilt", "new_hands", added, "total_hands", len(s.hands))
	}
	return len(s.hands), nil
}

// Aggregate returns the current aggregate. Callers must treat it as
// read-only; it is replaced wholesale on the next import.
func (s *Service) Aggregate() *stats.Aggregate {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.agg
}

// Report finalizes the current aggregate.
func (s *Service) Report() *stats.Report {
	return stats.Finalize(s.Aggregate())
}

// ReportForGameType finalizes a report restricted to one game type; "All"
// keeps everything.
func (s *Service) ReportForGameType(gameType string) *stats.Report {
	return stats.FilterByGameType(s.Aggregate(), gameType)
}

// GameTypes lists the game types seen so far, "All" first.
func (s *Service) GameTypes() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]string, 0, len(s.agg.GameTypes)+1)
	out = append(out, "All")
	out = append(out, s.agg.GameTypes...)
	return out
}

// Hands returns the current hand records in chronological order.
func (s *Service) Hands() []*parser.Hand {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.agg.RawHands
}

// ExportAggregate writes the raw aggregate to path for later merging.
func (s *Service) ExportAggregate(path string) error {
	data, err := stats.Export(s.Aggregate())
	if err != nil {
		return err
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write export: %w", err)
	}
	slog.Info("aggregate exported", "path", path)
	return nil
}

// ImportAggregate merges a previously exported aggregate into the current
// hand set by re-aggregating over the combined raw hands.
func (s *Service) ImportAggregate(path string) (int, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return 0, fmt.Errorf("read export: %w", err)
	}
	imported, err := stats.Import(data)
	if err != nil {
		return 0, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	added := 0
	for _, h := range imported.RawHands {
		if s.handIDs[h.ID] {
			continue
		}
		s.handIDs[h.ID] = true
		s.hands = append(s.hands, h)
		added++
	}
	if len(s.hands) == 0 {
		return 0, ErrNoHeroHands
	}
	if added > 0 {
		s.agg = stats.AggregateHands(s.hands)
	}
	slog.Info("aggregate imported", "path", path, "new_hands", added)
	return len(s.hands), nil
}
