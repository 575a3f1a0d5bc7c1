package sinks

import (
	"os"
	"path/filepath"
	"sync"

	"github.com/pkg/errors"

	"github.com/willibrandon/glog/core"
	"github.com/willibrandon/glog/formatters"
	"github.com/willibrandon/glog/selflog"
)

// FileSink writes rendered log lines to a file, using the same glog
// prefix layout as the console sink but never color. The sink owns the
// file handle: Close syncs and closes it, and later Emit calls are
// dropped.
type FileSink struct {
	path string
	file *os.File
	mu   sync.Mutex
	buf  []byte
	open bool
}

// NewFileSink creates a file sink appending to the file at path,
// creating the parent directory if needed.
func NewFileSink(path string) (*FileSink, error) {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return nil, errors.Wrapf(err, "create log directory for %s", path)
		}
	}

	file, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return nil, errors.Wrapf(err, "open log file %s", path)
	}

	return &FileSink{path: path, file: file, open: true}, nil
}

// Path returns the file the sink writes to.
func (fs *FileSink) Path() string {
	return fs.path
}

// Emit writes the log event to the file as a single Write call.
func (fs *FileSink) Emit(event *core.LogEvent) {
	fs.mu.Lock()
	defer fs.mu.Unlock()

	if !fs.open {
		return
	}

	buf := fs.buf[:0]

	body := event.Message
	if n := len(body); n > 0 && body[n-1] == '\n' {
		body = body[:n-1]
	}

	buf = formatters.AppendPrefix(buf, event)
	buf = append(buf, body...)
	buf = append(buf, '\n')
	fs.buf = buf

	if _, err := fs.file.Write(buf); err != nil {
		if selflog.IsEnabled() {
			selflog.Printf("[file] write failed for %s: %v", fs.path, err)
		}
	}
}

// Close syncs and closes the underlying file. Closing twice is safe.
func (fs *FileSink) Close() error {
	fs.mu.Lock()
	defer fs.mu.Unlock()

	if !fs.open {
		return nil
	}
	fs.open = false

	if err := fs.file.Sync(); err != nil {
		fs.file.Close()
		return errors.Wrapf(err, "sync log file %s", fs.path)
	}
	if err := fs.file.Close(); err != nil {
		return errors.Wrapf(err, "close log file %s", fs.path)
	}
	return nil
}
