package logtail

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/fsnotify/fsnotify"
)

// Follow delivers the last backlog lines of path to fn and then every line
// appended to it until ctx is done. A missing file is followed once it is
// created; truncation restarts reading from the beginning. Follow blocks and
// returns nil when ctx is cancelled.
func Follow(ctx context.Context, path string, backlog int, fn func(string)) error {
	abs, err := filepath.Abs(path)
	if err != nil {
		return fmt.Errorf("resolve log path: %w", err)
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("create watcher: %w", err)
	}
	defer func() { _ = watcher.Close() }()

	// Watch the directory so rotation and late creation are seen.
	if err := watcher.Add(filepath.Dir(abs)); err != nil {
		return fmt.Errorf("watch %s: %w", filepath.Dir(abs), err)
	}

	f := &follower{path: abs, emit: fn}
	defer f.close()
	if err := f.open(backlog); err != nil {
		return err
	}

	for {
		select {
		case <-ctx.Done():
			return nil
		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(event.Name) != abs {
				continue
			}
			if err := f.handle(event); err != nil {
				return err
			}
		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			return fmt.Errorf("watch log: %w", err)
		}
	}
}

type follower struct {
	path    string
	file    *os.File
	offset  int64
	partial []byte
	emit    func(string)
}

func (f *follower) open(backlog int) error {
	file, err := os.Open(f.path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("open log: %w", err)
	}
	info, err := file.Stat()
	if err != nil {
		_ = file.Close()
		return fmt.Errorf("stat log: %w", err)
	}
	lines, err := lastLines(io.LimitReader(file, info.Size()), backlog)
	if err != nil {
		_ = file.Close()
		return err
	}
	f.file = file
	f.offset = info.Size()
	f.partial = nil
	for _, line := range lines {
		f.emit(line)
	}
	return nil
}

func (f *follower) handle(event fsnotify.Event) error {
	switch {
	case event.Has(fsnotify.Remove), event.Has(fsnotify.Rename):
		f.close()
		return nil
	case event.Has(fsnotify.Create):
		f.close()
		if err := f.reopen(); err != nil {
			return err
		}
		return f.drain()
	case event.Has(fsnotify.Write):
		if f.file == nil {
			if err := f.reopen(); err != nil {
				return err
			}
		}
		return f.drain()
	}
	return nil
}

// reopen starts over at the beginning of a newly created file.
func (f *follower) reopen() error {
	if err := f.open(0); err != nil {
		return err
	}
	f.offset = 0
	return nil
}

// drain reads everything past offset and emits complete lines.
func (f *follower) drain() error {
	if f.file == nil {
		return nil
	}
	info, err := f.file.Stat()
	if err != nil {
		return fmt.Errorf("stat log: %w", err)
	}
	if info.Size() < f.offset {
		f.offset = 0
		f.partial = nil
	}
	if info.Size() == f.offset {
		return nil
	}
	chunk, err := io.ReadAll(io.NewSectionReader(f.file, f.offset, info.Size()-f.offset))
	if err != nil {
		return fmt.Errorf("read log: %w", err)
	}
	f.offset += int64(len(chunk))

	data := append(f.partial, chunk...)
	for {
		i := bytes.IndexByte(data, '\n')
		if i < 0 {
			break
		}
		f.emit(strings.TrimRight(string(data[:i]), "\r"))
		data = data[i+1:]
	}
	f.partial = append([]byte(nil), data...)
	return nil
}

func (f *follower) close() {
	if f.file != nil {
		_ = f.file.Close()
		f.file = nil
	}
	f.offset = 0
	f.partial = nil
}
