package events

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/fsnotify/fsnotify"

	"github.com/morshedulmunna/faaaa-sound/internal/logging"
)

// newDirWatcher watches the directory containing path. Watching the
// directory rather than the file survives the file being created or
// replaced after startup. Failure here means the capability is
// unavailable: callers log and drop the source instead of aborting.
func newDirWatcher(path string) (*fsnotify.Watcher, error) {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("creating watcher: %w", err)
	}
	dir := filepath.Dir(path)
	if err := watcher.Add(dir); err != nil {
		watcher.Close()
		return nil, fmt.Errorf("watching %s: %w", dir, err)
	}
	return watcher, nil
}

func touchesPath(ev fsnotify.Event, path string) bool {
	if filepath.Clean(ev.Name) != filepath.Clean(path) {
		return false
	}
	return ev.Op&(fsnotify.Write|fsnotify.Create) != 0
}

// TailSource follows a JSONL event file: each line is one JSON object
// with a "type" discriminator. Lines appended while watching are decoded
// and emitted; malformed lines are logged and skipped. Content already in
// the file at startup is history and is not replayed.
type TailSource struct {
	path    string
	watcher *fsnotify.Watcher
	offset  int64
}

// NewTailSource sets up the file watch eagerly so an unavailable events
// file is detected at startup, not mid-run.
func NewTailSource(path string) (*TailSource, error) {
	watcher, err := newDirWatcher(path)
	if err != nil {
		return nil, err
	}
	src := &TailSource{path: path, watcher: watcher}
	if info, err := os.Stat(path); err == nil {
		src.offset = info.Size()
	}
	return src, nil
}

// Run emits decoded events until ctx is cancelled.
func (s *TailSource) Run(ctx context.Context, emit func(Event)) error {
	defer s.watcher.Close()
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case ev, ok := <-s.watcher.Events:
			if !ok {
				return nil
			}
			if !touchesPath(ev, s.path) {
				continue
			}
			s.drain(emit)
		case err, ok := <-s.watcher.Errors:
			if !ok {
				return nil
			}
			logging.Logf("events: watcher error: %v", err)
		}
	}
}

// drain reads complete lines appended since the last offset. A partial
// trailing line without a newline is left for the next write.
func (s *TailSource) drain(emit func(Event)) {
	f, err := os.Open(s.path)
	if err != nil {
		return
	}
	defer f.Close()

	if info, err := f.Stat(); err == nil && info.Size() < s.offset {
		// Truncated: start over from the beginning.
		s.offset = 0
	}
	if _, err := f.Seek(s.offset, io.SeekStart); err != nil {
		return
	}

	reader := bufio.NewReader(f)
	for {
		line, err := reader.ReadString('\n')
		if err != nil {
			return
		}
		s.offset += int64(len(line))
		trimmed := strings.TrimSpace(line)
		if trimmed == "" {
			continue
		}
		event, err := Decode([]byte(trimmed))
		if err != nil {
			logging.Logf("events: skipping malformed line: %v", err)
			continue
		}
		emit(event)
	}
}

// WatchSource emits DiagnosticsChanged whenever the watched file is
// written. The event carries no payload by contract; the handler
// re-reads the snapshot itself.
type WatchSource struct {
	path    string
	watcher *fsnotify.Watcher
}

// NewWatchSource sets up the diagnostics file watch eagerly, matching
// NewTailSource.
func NewWatchSource(path string) (*WatchSource, error) {
	watcher, err := newDirWatcher(path)
	if err != nil {
		return nil, err
	}
	return &WatchSource{path: path, watcher: watcher}, nil
}

// Run emits a payload-less DiagnosticsChanged per write until ctx is
// cancelled.
func (s *WatchSource) Run(ctx context.Context, emit func(Event)) error {
	defer s.watcher.Close()
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case ev, ok := <-s.watcher.Events:
			if !ok {
				return nil
			}
			if !touchesPath(ev, s.path) {
				continue
			}
			emit(DiagnosticsChanged{})
		case err, ok := <-s.watcher.Errors:
			if !ok {
				return nil
			}
			logging.Logf("diagnostics: watcher error: %v", err)
		}
	}
}
