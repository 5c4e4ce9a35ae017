package watcher

import (
	"bufio"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
)

// HistoryWatcher monitors a hand-history export file for appended content.
// The poker room appends finished hands to the current export and starts a
// new file per session, so the watcher also reports newly created exports.
type HistoryWatcher struct {
	Path     string
	offset   int64
	watcher  *fsnotify.Watcher
	done     chan struct{}
	mu       sync.Mutex
	readMu   sync.Mutex
	stopOnce sync.Once

	cleanPath string
	onNewData func(text string, startOffset int64, endOffset int64)
	onNewFile func(path string)
	onError   func(err error)
}

type Config struct {
	OnNewData func(text string, startOffset int64, endOffset int64)
	OnNewFile func(path string)
	OnError   func(err error)
}

// New creates a watcher for the given export file path.
func New(path string, cfg Config) (*HistoryWatcher, error) {
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("create fsnotify watcher: %w", err)
	}

	return &HistoryWatcher{
		Path:      path,
		watcher:   w,
		done:      make(chan struct{}),
		cleanPath: filepath.Clean(path),
		onNewData: cfg.OnNewData,
		onNewFile: cfg.OnNewFile,
		onError:   cfg.OnError,
	}, nil
}

// Start begins watching for file changes. The containing directory is
// watched rather than the file itself so rotation to a new export is seen.
func (hw *HistoryWatcher) Start() error {
	slog.Info("watcher starting", "path", hw.Path)
	dir := filepath.Dir(hw.Path)
	if err := hw.watcher.Add(dir); err != nil {
		return fmt.Errorf("watch directory %s: %w", dir, err)
	}

	// Read existing content first only when no explicit offset is set.
	// This keeps caller-specified offsets (e.g. EOF after initial import).
	// A failed initial read is retried by the poll ticker.
	if hw.offset == 0 {
		_ = hw.readNewContent()
	}

	go hw.watchLoop()
	return nil
}

// Stop stops the watcher.
func (hw *HistoryWatcher) Stop() {
	hw.stopOnce.Do(func() {
		slog.Info("watcher stopped", "path", hw.Path)
		close(hw.done)
		_ = hw.watcher.Close()
	})
}

// SetOffset sets the initial read offset (for resuming after an import).
func (hw *HistoryWatcher) SetOffset(offset int64) {
	hw.mu.Lock()
	defer hw.mu.Unlock()
	hw.offset = offset
}

func (hw *HistoryWatcher) watchLoop() {
	ticker := time.NewTicker(500 * time.Millisecond)
	defer ticker.Stop()

	for {
		select {
		case <-hw.done:
			return
		case event, ok := <-hw.watcher.Events:
			if !ok {
				return
			}
			if event.Has(fsnotify.Create) && isHistoryFile(event.Name) {
				if filepath.Clean(event.Name) != hw.cleanPath && hw.onNewFile != nil {
					hw.onNewFile(event.Name)
				}
			}
			if event.Has(fsnotify.Write) || event.Has(fsnotify.Create) {
				if filepath.Clean(event.Name) == hw.cleanPath {
					if err := hw.readNewContent(); err != nil && hw.onError != nil {
						hw.onError(err)
					}
				}
			}
		case err, ok := <-hw.watcher.Errors:
			if !ok {
				return
			}
			if hw.onError != nil {
				hw.onError(err)
			}
		case <-ticker.C:
			// Periodic poll as fallback
			if err := hw.readNewContent(); err != nil && hw.onError != nil {
				hw.onError(err)
			}
		}
	}
}

func (hw *HistoryWatcher) readNewContent() error {
	hw.readMu.Lock()
	defer hw.readMu.Unlock()

	f, err := os.Open(hw.Path)
	if err != nil {
		return err
	}
	defer f.Close()

	info, err := f.Stat()
	if err != nil {
		return err
	}

	hw.mu.Lock()
	defer hw.mu.Unlock()
	if info.Size() < hw.offset {
		// Truncated or replaced; start over.
		hw.offset = 0
	}
	if info.Size() <= hw.offset {
		return nil // No new content
	}
	startOffset := hw.offset

	if _, err := f.Seek(startOffset, io.SeekStart); err != nil {
		return err
	}

	endOffset := info.Size()
	hw.offset = endOffset

	var text []byte
	scanner := bufio.NewScanner(f)
	scanner.Buffer(make([]byte, 64*1024), 4*1024*1024)
	for scanner.Scan() {
		text = append(text, scanner.Bytes()...)
		text = append(text, '\n')
	}
	if err := scanner.Err(); err != nil {
		return err
	}

	if len(text) > 0 && hw.onNewData != nil {
		slog.Debug("new data detected", "path", hw.Path, "bytes", len(text))
		hw.onNewData(string(text), startOffset, endOffset)
	}

	return nil
}

// collectHistoryFiles lists the export files in dir. It does not sort.
func collectHistoryFiles(dir string) []string {
	matches, err := filepath.Glob(filepath.Join(dir, "*.txt"))
	if err != nil {
		return nil
	}
	return matches
}

// DetectLatestHistoryFile finds the most recently modified export in dir.
func DetectLatestHistoryFile(dir string) (string, error) {
	candidates := collectHistoryFiles(dir)
	if len(candidates) == 0 {
		return "", fmt.Errorf("no hand history files found in %s", dir)
	}

	sortByModTimeDesc(candidates)
	return candidates[0], nil
}

// DetectAllHistoryFiles finds all exports in dir sorted newest first.
func DetectAllHistoryFiles(dir string) ([]string, error) {
	candidates := collectHistoryFiles(dir)
	if len(candidates) == 0 {
		return nil, fmt.Errorf("no hand history files found in %s", dir)
	}

	sortByModTimeDesc(candidates)
	return candidates, nil
}

// sortByModTimeDesc sorts paths newest-first using a single os.Stat per file,
// avoiding repeated stat calls inside the sort comparator.
func sortByModTimeDesc(paths []string) {
	modTimes := make(map[string]time.Time, len(paths))
	for _, p := range paths {
		if info, err := os.Stat(p); err == nil {
			modTimes[p] = info.ModTime()
		}
	}
	sort.Slice(paths, func(i, j int) bool {
		return modTimes[paths[i]].After(modTimes[paths[j]])
	})
}

func isHistoryFile(path string) bool {
	matched, err := filepath.Match("*.txt", filepath.Base(path))
	return err == nil && matched
}
