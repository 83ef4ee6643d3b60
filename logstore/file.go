package logstore

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
)

// FileStore keeps one <category>.log file per category under a base
// directory. Each Append is a single write to a file opened with O_APPEND,
// so concurrent appends from independent messages never interleave within
// a record.
type FileStore struct {
	dir string
}

func NewFileStore(dir string) (*FileStore, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("logstore: create dir: %w", err)
	}
	return &FileStore{dir: dir}, nil
}

func (s *FileStore) Append(_ context.Context, cat Category, record any) error {
	line, err := encodeRecord(cat, record)
	if err != nil {
		return err
	}

	f, err := os.OpenFile(s.path(cat), os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return fmt.Errorf("logstore: open %s: %w", cat, err)
	}
	defer f.Close()

	// Single write of record + newline keeps the append atomic.
	if _, err := f.Write(append(line, '\n')); err != nil {
		return fmt.Errorf("logstore: append %s: %w", cat, err)
	}
	return nil
}

func (s *FileStore) Tail(_ context.Context, cat Category, n int) ([]json.RawMessage, error) {
	if !cat.Valid() {
		return nil, fmt.Errorf("logstore: unknown category %q", cat)
	}
	if n <= 0 {
		return nil, nil
	}

	data, err := os.ReadFile(s.path(cat))
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, nil
		}
		return nil, fmt.Errorf("logstore: read %s: %w", cat, err)
	}

	lines := bytes.Split(bytes.TrimSpace(data), []byte("\n"))
	records := make([]json.RawMessage, 0, n)
	for i := len(lines) - 1; i >= 0 && len(records) < n; i-- {
		line := bytes.TrimSpace(lines[i])
		if len(line) == 0 {
			continue
		}
		records = append(records, json.RawMessage(bytes.Clone(line)))
	}
	return records, nil
}

func (s *FileStore) path(cat Category) string {
	return filepath.Join(s.dir, string(cat)+".log")
}
